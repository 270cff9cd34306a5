package store

import (
	"github.com/Sortedsinghal/URE-HR/internal/errors"
	"github.com/Sortedsinghal/URE-HR/internal/filter"
	"github.com/Sortedsinghal/URE-HR/internal/models"
)

type CandidateFilter struct {
	Search string
	Status string
}

func (f CandidateFilter) Matches(c models.Candidate) bool {
	return filter.MatchesSearch(f.Search, c.Name, c.Position) &&
		filter.MatchesEnum(f.Status, string(c.Status))
}

func (s *Store) ListCandidates(f CandidateFilter) []models.Candidate {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Candidate, 0, len(s.candidates))
	for _, c := range s.candidates {
		if f.Matches(c) {
			out = append(out, c)
		}
	}
	return out
}

func (s *Store) GetCandidate(id string) (models.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.candidates {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Candidate{}, errors.NotFound("candidate not found", nil)
}

type TalentFilter struct {
	Search     string
	Location   string
	Experience string
}

// Matches applies the talent-pool search contract: the query matches
// against name, title, or any skill; location is a contains match and
// experience an exact one.
func (f TalentFilter) Matches(t models.TalentPoolEntry) bool {
	matchesSearch := filter.MatchesSearch(f.Search, t.Name, t.Title) ||
		filter.MatchesAnySearch(f.Search, t.Skills)
	return matchesSearch &&
		filter.MatchesContains(f.Location, t.Location) &&
		filter.MatchesEnum(f.Experience, t.Experience)
}

func (s *Store) ListTalent(f TalentFilter) []models.TalentPoolEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.TalentPoolEntry, 0, len(s.talent))
	for _, t := range s.talent {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}
