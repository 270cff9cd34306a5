package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Sortedsinghal/URE-HR/internal/metrics"
	"github.com/Sortedsinghal/URE-HR/internal/store"
	"github.com/Sortedsinghal/URE-HR/internal/wizard"
)

func (h *Handler) listJobs(c *gin.Context) {
	jobs := h.store.ListJobs(store.JobFilter{
		Search: c.Query("search"),
		Status: c.DefaultQuery("status", "all"),
	})
	c.JSON(http.StatusOK, gin.H{"jobs": jobs, "count": len(jobs)})
}

func (h *Handler) jobStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.JobStats())
}

func (h *Handler) getJob(c *gin.Context) {
	job, err := h.store.GetJob(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *Handler) createDraft(c *gin.Context) {
	c.JSON(http.StatusCreated, h.wizard.CreateDraft())
}

func (h *Handler) getDraft(c *gin.Context) {
	draft, err := h.wizard.GetDraft(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (h *Handler) updateDraftFields(c *gin.Context) {
	var updates wizard.FieldUpdates
	if !bindJSON(c, &updates) {
		return
	}
	draft, err := h.wizard.UpdateFields(c.Param("id"), updates)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (h *Handler) draftNext(c *gin.Context) {
	draft, err := h.wizard.Next(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (h *Handler) draftBack(c *gin.Context) {
	draft, err := h.wizard.Back(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (h *Handler) setDraftChannel(c *gin.Context) {
	var req struct {
		Name    string `json:"name"`
		Enabled bool   `json:"enabled"`
	}
	if !bindJSON(c, &req) {
		return
	}
	draft, err := h.wizard.SetChannel(c.Param("id"), req.Name, req.Enabled)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (h *Handler) publishDraft(c *gin.Context) {
	job, err := h.wizard.Publish(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	h.recordEvent(c, "job.published", job.ID, job)
	h.analytics.Invalidate(c.Request.Context())

	c.JSON(http.StatusCreated, job)
}

// recordEvent forwards an activity record to the warehouse recorder;
// a payload that fails to marshal is recorded without detail.
func (h *Handler) recordEvent(c *gin.Context, eventType, subjectID string, payload interface{}) {
	detail, err := json.Marshal(payload)
	if err != nil {
		detail = nil
	}
	h.recorder.Record(c.Request.Context(), metrics.Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		SubjectID:  subjectID,
		Actor:      c.ClientIP(),
		Payload:    string(detail),
		OccurredAt: time.Now().UTC(),
	})
}
