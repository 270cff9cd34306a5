package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Sortedsinghal/URE-HR/internal/cache"
	cachememory "github.com/Sortedsinghal/URE-HR/internal/cache/memory"
	"github.com/Sortedsinghal/URE-HR/internal/models"
	"github.com/Sortedsinghal/URE-HR/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	c := cachememory.New(cache.DefaultOptions())
	t.Cleanup(func() { c.Close() })

	return NewService(store.New(), c, time.Minute, "analytics", zap.NewNop())
}

func TestConversionRate(t *testing.T) {
	tests := []struct {
		name         string
		hires        int
		applications int
		want         float64
	}{
		{"linkedin figures", 12, 145, 8.3},
		{"referral figures", 18, 34, 52.9},
		{"whole percentage", 15, 67, 22.4},
		{"zero applications", 5, 0, 0},
		{"zero hires", 0, 89, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, conversionRate(tt.hires, tt.applications))
		})
	}
}

func TestSourcesCarryConversionRates(t *testing.T) {
	svc := newTestService(t)

	sources := svc.Sources()
	require.Len(t, sources, 5)

	for _, s := range sources {
		assert.Equal(t, conversionRate(s.Hires, s.Applications), s.ConversionRate, s.Source)
	}
	assert.Equal(t, 8.3, sources[0].ConversionRate, "LinkedIn")
	assert.Equal(t, 52.9, sources[3].ConversionRate, "Employee Referrals")
}

func TestDashboardSnapshot(t *testing.T) {
	svc := newTestService(t)

	snapshot := svc.Dashboard(context.Background())

	assert.Len(t, snapshot.KPIs, 4)
	require.Len(t, snapshot.Funnel, 5)
	assert.Equal(t, 100, snapshot.Funnel[0].Percentage)
	assert.Len(t, snapshot.Sources, 5)
	assert.Len(t, snapshot.Diversity, 4)
	assert.Equal(t, 3, snapshot.Offers.Total)
	assert.Equal(t, 1, snapshot.Offers.Pending)
}

func TestDashboardServedFromCache(t *testing.T) {
	svc := newTestService(t)

	seeded := Snapshot{Offers: models.OfferStats{Total: 99}}
	require.NoError(t, svc.cache.Set(context.Background(), "analytics:dashboard", seeded, time.Minute))

	got := svc.Dashboard(context.Background())
	assert.Equal(t, 99, got.Offers.Total, "a valid cache entry is returned as-is")
}

func TestInvalidateDropsSnapshot(t *testing.T) {
	svc := newTestService(t)

	_ = svc.Dashboard(context.Background())
	svc.Invalidate(context.Background())

	var cached Snapshot
	err := svc.cache.Get(context.Background(), "analytics:dashboard", &cached)
	assert.ErrorIs(t, err, cache.ErrNotFound)
}
