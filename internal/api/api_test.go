package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Sortedsinghal/URE-HR/internal/analytics"
	"github.com/Sortedsinghal/URE-HR/internal/cache"
	cachememory "github.com/Sortedsinghal/URE-HR/internal/cache/memory"
	"github.com/Sortedsinghal/URE-HR/internal/events"
	"github.com/Sortedsinghal/URE-HR/internal/metrics"
	"github.com/Sortedsinghal/URE-HR/internal/scheduling"
	"github.com/Sortedsinghal/URE-HR/internal/store"
	"github.com/Sortedsinghal/URE-HR/internal/templates"
	"github.com/Sortedsinghal/URE-HR/internal/wizard"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	st := store.New()
	pub := events.NopPublisher{}

	c := cachememory.New(cache.DefaultOptions())
	t.Cleanup(func() { c.Close() })

	handler := NewHandler(
		st,
		wizard.NewService(st, pub, logger),
		scheduling.NewService(st, pub, logger),
		templates.NewService(st, pub, logger),
		analytics.NewService(st, c, time.Minute, "analytics", logger),
		pub,
		metrics.NopRecorder{},
		logger,
	)
	return NewRouter(handler, logger)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUnknownRouteReturnsJSON404(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/does-not-exist", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	decode(t, w, &body)
	assert.Equal(t, "NOT_FOUND", body["type"])
	assert.NotEmpty(t, body["error"])
}

func TestListJobsWithFilter(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/jobs?status=active", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Count int `json:"count"`
	}
	decode(t, w, &body)
	assert.Equal(t, 2, body.Count)
}

func TestGetCandidateNotFound(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/candidates/999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	decode(t, w, &body)
	assert.Equal(t, "NOT_FOUND", body["type"])
}

func TestWizardFlowOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/jobs/drafts", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var draft wizard.Draft
	decode(t, w, &draft)
	require.NotEmpty(t, draft.ID)
	base := "/api/jobs/drafts/" + draft.ID

	// Advancing without title and location is rejected.
	w = doJSON(t, r, http.MethodPost, base+"/next", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, base+"/fields", map[string]string{
		"title":    "Staff Engineer",
		"location": "Remote",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, base+"/next", nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodPost, base+"/next", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPut, base+"/channels", map[string]interface{}{
		"name":    "Indeed",
		"enabled": false,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, base+"/publish", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var job struct {
		ID       string   `json:"id"`
		Status   string   `json:"status"`
		Channels []string `json:"channels"`
	}
	decode(t, w, &job)
	assert.Equal(t, "active", job.Status)
	assert.Equal(t, []string{"LinkedIn"}, job.Channels)

	// The published job is now listed.
	w = doJSON(t, r, http.MethodGet, "/api/jobs/"+job.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestScheduleInterviewOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	date := time.Now().AddDate(0, 0, 7).Format("2006-01-02")

	req := map[string]interface{}{
		"candidate_id":     "1",
		"date":             date,
		"time":             "10:00",
		"duration_minutes": 60,
		"type":             "video",
		"interviewer_ids":  []string{"1"},
	}

	w := doJSON(t, r, http.MethodPost, "/api/interviews", req)
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Summary struct {
			Interviewers []string `json:"interviewers"`
		} `json:"summary"`
	}
	decode(t, w, &body)
	assert.Equal(t, []string{"Sarah Johnson"}, body.Summary.Interviewers)

	// The same interviewer overlapping is a conflict.
	req["candidate_id"] = "2"
	req["time"] = "10:30"
	w = doJSON(t, r, http.MethodPost, "/api/interviews", req)
	require.Equal(t, http.StatusConflict, w.Code)

	var conflict map[string]string
	decode(t, w, &conflict)
	assert.Equal(t, "CONFLICT", conflict["type"])
}

func TestScheduleInterviewValidationOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/interviews", map[string]interface{}{
		"candidate_id": "1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTemplateEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/templates/1/duplicate", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var dup struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Usage int    `json:"usage"`
	}
	decode(t, w, &dup)
	assert.Equal(t, "Interview Invitation (Copy)", dup.Name)
	assert.Equal(t, 0, dup.Usage)

	w = doJSON(t, r, http.MethodDelete, "/api/templates/"+dup.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/templates", map[string]string{
		"name": "No channel",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/templates/3/send", map[string]interface{}{
		"recipient": "+1 (555) 000-1111",
		"data": map[string]string{
			"candidate.name": "Sarah Johnson",
			"interview.time": "10:00",
			"job.title":      "Senior Frontend Developer",
			"interview.link": "https://meet.example.com/abc",
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var sent struct {
		Body  string `json:"body"`
		Usage int    `json:"usage"`
	}
	decode(t, w, &sent)
	assert.Contains(t, sent.Body, "Sarah Johnson")
	assert.Equal(t, 68, sent.Usage)
}

func TestIntegrationEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/integrations/2/connect", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var integration struct {
		Status   string          `json:"status"`
		Settings map[string]bool `json:"settings"`
	}
	decode(t, w, &integration)
	assert.Equal(t, "connected", integration.Status)
	assert.True(t, integration.Settings["autoSync"])

	w = doJSON(t, r, http.MethodPut, "/api/integrations/2/settings", map[string]interface{}{
		"setting": "autoSync",
		"value":   false,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/integrations/2/disconnect", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/integrations/2/settings", map[string]interface{}{
		"setting": "autoSync",
		"value":   true,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyticsEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/analytics/overview", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var overview analytics.Snapshot
	decode(t, w, &overview)
	assert.Len(t, overview.KPIs, 4)
	assert.Equal(t, 3, overview.Offers.Total)

	w = doJSON(t, r, http.MethodGet, "/api/analytics/sources", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var sources struct {
		Sources []struct {
			Source         string  `json:"source"`
			ConversionRate float64 `json:"conversion_rate"`
		} `json:"sources"`
	}
	decode(t, w, &sources)
	require.Len(t, sources.Sources, 5)
	assert.Equal(t, 8.3, sources.Sources[0].ConversionRate)
}

func TestContentEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/content/features/job-distribution", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/content/features/unknown-slug", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/content/help/articles/how-to-submit-a-job-requirement", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/content/help/getting-started", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestInterviewCatalogEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/interviews/slots", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var slots struct {
		Slots []string `json:"slots"`
	}
	decode(t, w, &slots)
	assert.Equal(t, scheduling.TimeSlots, slots.Slots)
	assert.NotContains(t, slots.Slots, "12:00", "lunch hour is not offered")

	w = doJSON(t, r, http.MethodGet, "/api/interviews/interviewers", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var interviewers struct {
		Interviewers []struct {
			Name string `json:"name"`
		} `json:"interviewers"`
	}
	decode(t, w, &interviewers)
	assert.Len(t, interviewers.Interviewers, 4)
}
