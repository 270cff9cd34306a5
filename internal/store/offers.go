package store

import (
	"time"

	"github.com/Sortedsinghal/URE-HR/internal/filter"
	"github.com/Sortedsinghal/URE-HR/internal/models"
)

type OfferFilter struct {
	Search string
	Status string
}

func (f OfferFilter) Matches(o models.Offer) bool {
	return filter.MatchesSearch(f.Search, o.CandidateName, o.Position) &&
		filter.MatchesEnum(f.Status, string(o.Status))
}

func (s *Store) ListOffers(f OfferFilter) []models.Offer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Offer, 0, len(s.offers))
	for _, o := range s.offers {
		if f.Matches(o) {
			out = append(out, o)
		}
	}
	return out
}

func (s *Store) OfferStats(now time.Time) models.OfferStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var st models.OfferStats
	st.Total = len(s.offers)
	for _, o := range s.offers {
		switch o.Status {
		case models.OfferPending:
			st.Pending++
			if o.ExpiringSoon(now) {
				st.ExpiringSoon++
			}
		case models.OfferAccepted:
			st.Accepted++
		}
	}
	return st
}
