package store

import (
	"github.com/Sortedsinghal/URE-HR/internal/errors"
	"github.com/Sortedsinghal/URE-HR/internal/filter"
	"github.com/Sortedsinghal/URE-HR/internal/models"
)

type AssessmentFilter struct {
	Search string
	Type   string
}

func (f AssessmentFilter) Matches(a models.Assessment) bool {
	return filter.MatchesSearch(f.Search, a.Name) &&
		filter.MatchesEnum(f.Type, a.Type)
}

func (s *Store) ListAssessments(f AssessmentFilter) []models.Assessment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Assessment, 0, len(s.assessments))
	for _, a := range s.assessments {
		if f.Matches(a) {
			out = append(out, a)
		}
	}
	return out
}

func (s *Store) ListAssessmentResults() []models.AssessmentResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.results)
}

func (s *Store) ListVideoInterviews() []models.VideoInterview {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.videos)
}

func (s *Store) GetVideoInsights(interviewID string) (models.VideoInsights, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if in, ok := s.insights[interviewID]; ok {
		return in, nil
	}
	return models.VideoInsights{}, errors.NotFound("no insights for interview", nil)
}

func (s *Store) KPIs() []models.KPI {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.kpis)
}

func (s *Store) Funnel() []models.FunnelStage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.funnel)
}

func (s *Store) Sources() []models.SourcePerformance {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.sources)
}

func (s *Store) Diversity() []models.DiversityMetric {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.diversity)
}

func (s *Store) ListFeatures() []models.Feature {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.features)
}

func (s *Store) GetFeature(slug string) (models.Feature, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, f := range s.features {
		if f.Slug == slug {
			return f, nil
		}
	}
	return models.Feature{}, errors.NotFound("feature not found", nil)
}

func (s *Store) ListHelpCategories() []models.HelpCategory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.helpCategories)
}

func (s *Store) GetHelpCategory(slug string) (models.HelpCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.helpCategories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return models.HelpCategory{}, errors.NotFound("help category not found", nil)
}

func (s *Store) GetHelpArticle(slug string) (models.HelpArticle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.helpArticles {
		if a.Slug == slug {
			return a, nil
		}
	}
	return models.HelpArticle{}, errors.NotFound("help article not found", nil)
}
