package models

type InterviewType string

const (
	InterviewVideo    InterviewType = "video"
	InterviewPhone    InterviewType = "phone"
	InterviewInPerson InterviewType = "in-person"
)

func (t InterviewType) IsValid() bool {
	switch t {
	case InterviewVideo, InterviewPhone, InterviewInPerson:
		return true
	}
	return false
}

type InterviewStatus string

const (
	InterviewScheduled   InterviewStatus = "scheduled"
	InterviewCompleted   InterviewStatus = "completed"
	InterviewCancelled   InterviewStatus = "cancelled"
	InterviewRescheduled InterviewStatus = "rescheduled"
)

// Interview records a booked interview slot. Seeded legacy rows carry
// only the embedded candidate name; rows created through the scheduler
// also carry the candidate id.
type Interview struct {
	ID              string          `json:"id"`
	CandidateID     string          `json:"candidate_id,omitempty"`
	CandidateName   string          `json:"candidate_name"`
	Position        string          `json:"position"`
	Date            string          `json:"date"` // YYYY-MM-DD
	Time            string          `json:"time"` // HH:MM, 24h
	DurationMinutes int             `json:"duration_minutes"`
	Type            InterviewType   `json:"type"`
	Status          InterviewStatus `json:"status"`
	Interviewers    []string        `json:"interviewers"`
	Location        string          `json:"location"`
	Notes           string          `json:"notes,omitempty"`
}

// Interviewer is an entry in the fixed interviewer catalog offered by
// the scheduling form.
type Interviewer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title"`
}
