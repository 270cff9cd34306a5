package models

import "time"

type JobStatus string

const (
	JobDraft    JobStatus = "draft"
	JobActive   JobStatus = "active"
	JobClosed   JobStatus = "closed"
	JobArchived JobStatus = "archived"
)

func (s JobStatus) IsValid() bool {
	switch s {
	case JobDraft, JobActive, JobClosed, JobArchived:
		return true
	}
	return false
}

type Job struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Location        string    `json:"location"`
	Type            string    `json:"type"`
	Department      string    `json:"department"`
	ExperienceLevel string    `json:"experience_level"`
	Status          JobStatus `json:"status"`
	Applicants      int       `json:"applicants"`
	CreatedAt       time.Time `json:"created_at"`
	Channels        []string  `json:"channels"`
	Description     string    `json:"description"`
	Requirements    string    `json:"requirements"`
	Benefits        string    `json:"benefits"`
}

// JobForm is the single form-state record the creation wizard edits
// field by field across its steps.
type JobForm struct {
	Title           string `json:"title"`
	Location        string `json:"location"`
	JobType         string `json:"job_type"`
	Department      string `json:"department"`
	ExperienceLevel string `json:"experience_level"`
	Description     string `json:"description"`
	Requirements    string `json:"requirements"`
	Benefits        string `json:"benefits"`
}
