package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sortedsinghal/URE-HR/internal/scheduling"
	"github.com/Sortedsinghal/URE-HR/internal/store"
)

func (h *Handler) listCandidates(c *gin.Context) {
	candidates := h.store.ListCandidates(store.CandidateFilter{
		Search: c.Query("search"),
		Status: c.DefaultQuery("status", "all"),
	})
	c.JSON(http.StatusOK, gin.H{"candidates": candidates, "count": len(candidates)})
}

func (h *Handler) getCandidate(c *gin.Context) {
	candidate, err := h.store.GetCandidate(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidate)
}

func (h *Handler) listTalent(c *gin.Context) {
	entries := h.store.ListTalent(store.TalentFilter{
		Search:     c.Query("search"),
		Location:   c.DefaultQuery("location", "all"),
		Experience: c.DefaultQuery("experience", "all"),
	})
	c.JSON(http.StatusOK, gin.H{"talent": entries, "count": len(entries)})
}

func (h *Handler) listAssessments(c *gin.Context) {
	assessments := h.store.ListAssessments(store.AssessmentFilter{
		Search: c.Query("search"),
		Type:   c.DefaultQuery("type", "all"),
	})
	c.JSON(http.StatusOK, gin.H{"assessments": assessments, "count": len(assessments)})
}

func (h *Handler) listAssessmentResults(c *gin.Context) {
	results := h.store.ListAssessmentResults()
	c.JSON(http.StatusOK, gin.H{"results": results, "count": len(results)})
}

func (h *Handler) listInterviews(c *gin.Context) {
	interviews := h.store.ListInterviews(store.InterviewFilter{
		Search: c.Query("search"),
		Status: c.DefaultQuery("status", "all"),
	})
	c.JSON(http.StatusOK, gin.H{"interviews": interviews, "count": len(interviews)})
}

func (h *Handler) scheduleInterview(c *gin.Context) {
	var req scheduling.Request
	if !bindJSON(c, &req) {
		return
	}

	interview, summary, err := h.scheduler.Schedule(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.recordEvent(c, "interview.scheduled", interview.ID, interview)
	h.analytics.Invalidate(c.Request.Context())

	c.JSON(http.StatusCreated, gin.H{"interview": interview, "summary": summary})
}

func (h *Handler) listTimeSlots(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"slots": scheduling.TimeSlots})
}

func (h *Handler) listInterviewers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"interviewers": h.store.Interviewers()})
}

func (h *Handler) listVideoInterviews(c *gin.Context) {
	videos := h.store.ListVideoInterviews()
	c.JSON(http.StatusOK, gin.H{"video_interviews": videos, "count": len(videos)})
}

func (h *Handler) getVideoInsights(c *gin.Context) {
	insights, err := h.store.GetVideoInsights(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, insights)
}

func (h *Handler) listOffers(c *gin.Context) {
	offers := h.store.ListOffers(store.OfferFilter{
		Search: c.Query("search"),
		Status: c.DefaultQuery("status", "all"),
	})
	c.JSON(http.StatusOK, gin.H{"offers": offers, "count": len(offers)})
}

func (h *Handler) offerStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.OfferStats(time.Now()))
}
