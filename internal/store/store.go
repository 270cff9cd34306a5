// Package store keeps every ATS collection in memory, seeded at
// startup. There is no persistence layer behind it; mutations live for
// the lifetime of the process.
package store

import (
	"sync"

	"github.com/Sortedsinghal/URE-HR/internal/models"
)

type Store struct {
	mu sync.RWMutex

	jobs         []models.Job
	candidates   []models.Candidate
	interviews   []models.Interview
	offers       []models.Offer
	templates    []models.Template
	integrations []models.Integration
	assessments  []models.Assessment
	results      []models.AssessmentResult
	talent       []models.TalentPoolEntry
	videos       []models.VideoInterview
	insights     map[string]models.VideoInsights
	interviewers []models.Interviewer

	kpis      []models.KPI
	funnel    []models.FunnelStage
	sources   []models.SourcePerformance
	diversity []models.DiversityMetric

	features       []models.Feature
	helpCategories []models.HelpCategory
	helpArticles   []models.HelpArticle
}

func New() *Store {
	s := &Store{insights: make(map[string]models.VideoInsights)}
	s.seed()
	return s
}

func copySlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
