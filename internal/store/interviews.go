package store

import (
	"github.com/Sortedsinghal/URE-HR/internal/filter"
	"github.com/Sortedsinghal/URE-HR/internal/models"
)

type InterviewFilter struct {
	Search string
	Status string
}

func (f InterviewFilter) Matches(i models.Interview) bool {
	return filter.MatchesSearch(f.Search, i.CandidateName, i.Position) &&
		filter.MatchesEnum(f.Status, string(i.Status))
}

func (s *Store) ListInterviews(f InterviewFilter) []models.Interview {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Interview, 0, len(s.interviews))
	for _, i := range s.interviews {
		if f.Matches(i) {
			out = append(out, i)
		}
	}
	return out
}

func (s *Store) CreateInterview(i models.Interview) models.Interview {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.interviews = append(s.interviews, i)
	return i
}

// ScheduledOn returns interviews still occupying the calendar on the
// given date. Cancelled interviews do not block a slot.
func (s *Store) ScheduledOn(date string) []models.Interview {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Interview
	for _, i := range s.interviews {
		if i.Date != date || i.Status == models.InterviewCancelled {
			continue
		}
		out = append(out, i)
	}
	return out
}

func (s *Store) Interviewers() []models.Interviewer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.interviewers)
}

func (s *Store) GetInterviewer(id string) (models.Interviewer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, iv := range s.interviewers {
		if iv.ID == id {
			return iv, true
		}
	}
	return models.Interviewer{}, false
}
