package store

import (
	"github.com/Sortedsinghal/URE-HR/internal/errors"
	"github.com/Sortedsinghal/URE-HR/internal/filter"
	"github.com/Sortedsinghal/URE-HR/internal/models"
)

type JobFilter struct {
	Search string
	Status string
}

func (f JobFilter) Matches(j models.Job) bool {
	return filter.MatchesSearch(f.Search, j.Title) &&
		filter.MatchesEnum(f.Status, string(j.Status))
}

func (s *Store) ListJobs(f JobFilter) []models.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		if f.Matches(j) {
			out = append(out, j)
		}
	}
	return out
}

func (s *Store) GetJob(id string) (models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, j := range s.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return models.Job{}, errors.NotFound("job not found", nil)
}

func (s *Store) CreateJob(j models.Job) models.Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, j)
	return j
}

// JobStats summarizes the job board header figures.
type JobStats struct {
	Active          int `json:"active"`
	Draft           int `json:"draft"`
	Closed          int `json:"closed"`
	TotalApplicants int `json:"total_applicants"`
}

func (s *Store) JobStats() JobStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var st JobStats
	for _, j := range s.jobs {
		switch j.Status {
		case models.JobActive:
			st.Active++
		case models.JobDraft:
			st.Draft++
		case models.JobClosed:
			st.Closed++
		}
		st.TotalApplicants += j.Applicants
	}
	return st
}
