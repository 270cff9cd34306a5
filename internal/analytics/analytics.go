// Package analytics assembles the recruitment dashboard: KPIs, the
// hiring funnel, source performance with derived conversion rates,
// diversity metrics and offer statistics. Snapshots are cached so the
// dashboard refresh does not recompute on every request.
package analytics

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/Sortedsinghal/URE-HR/internal/cache"
	"github.com/Sortedsinghal/URE-HR/internal/models"
	"github.com/Sortedsinghal/URE-HR/internal/store"
	"github.com/Sortedsinghal/URE-HR/internal/telemetry"
)

var tracer = telemetry.GetTracer("urehr/analytics")

// Snapshot is the full dashboard payload.
type Snapshot struct {
	KPIs      []models.KPI               `json:"kpis"`
	Funnel    []models.FunnelStage       `json:"funnel"`
	Sources   []models.SourcePerformance `json:"sources"`
	Diversity []models.DiversityMetric   `json:"diversity"`
	Offers    models.OfferStats          `json:"offers"`
}

type Service struct {
	store     *store.Store
	cache     cache.Cache
	ttl       time.Duration
	namespace string
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(st *store.Store, c cache.Cache, ttl time.Duration, namespace string, logger *zap.Logger) *Service {
	return &Service{
		store:     st,
		cache:     c,
		ttl:       ttl,
		namespace: namespace,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *Service) key(name string) string {
	return s.namespace + ":" + name
}

// conversionRate is hires over applications as a percentage, rounded
// to one decimal place.
func conversionRate(hires, applications int) float64 {
	if applications == 0 {
		return 0
	}
	return math.Round(float64(hires)/float64(applications)*1000) / 10
}

// Sources returns source performance with conversion rates computed
// from the raw application and hire counts.
func (s *Service) Sources() []models.SourcePerformance {
	sources := s.store.Sources()
	for i := range sources {
		sources[i].ConversionRate = conversionRate(sources[i].Hires, sources[i].Applications)
	}
	return sources
}

func (s *Service) build() Snapshot {
	return Snapshot{
		KPIs:      s.store.KPIs(),
		Funnel:    s.store.Funnel(),
		Sources:   s.Sources(),
		Diversity: s.store.Diversity(),
		Offers:    s.store.OfferStats(s.now()),
	}
}

// Dashboard returns the cached snapshot, rebuilding it on a miss.
// Cache failures degrade to a fresh rebuild rather than an error.
func (s *Service) Dashboard(ctx context.Context) Snapshot {
	ctx, span := tracer.Start(ctx, "analytics.Dashboard")
	defer span.End()

	key := s.key("dashboard")
	var snapshot Snapshot
	if err := s.cache.Get(ctx, key, &snapshot); err == nil {
		span.SetAttributes(telemetry.String("cache", "hit"))
		return snapshot
	} else if err != cache.ErrNotFound {
		s.logger.Warn("analytics cache read failed", zap.Error(err))
	}

	snapshot = s.build()
	if err := s.cache.Set(ctx, key, snapshot, s.ttl); err != nil {
		s.logger.Warn("analytics cache write failed", zap.Error(err))
	}
	span.SetAttributes(telemetry.String("cache", "miss"))
	return snapshot
}

// Invalidate drops the cached snapshot, forcing the next read to
// rebuild. Called when offer or pipeline data changes.
func (s *Service) Invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, s.key("dashboard")); err != nil && err != cache.ErrNotFound {
		s.logger.Warn("analytics cache invalidation failed", zap.Error(err))
	}
}
