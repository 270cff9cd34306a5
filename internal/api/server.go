// Package api exposes the recruitment surface as a JSON API. Routes
// mirror the product's page structure; every unmatched path gets a
// JSON 404 rather than a blank response.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Sortedsinghal/URE-HR/internal/analytics"
	"github.com/Sortedsinghal/URE-HR/internal/events"
	"github.com/Sortedsinghal/URE-HR/internal/metrics"
	"github.com/Sortedsinghal/URE-HR/internal/scheduling"
	"github.com/Sortedsinghal/URE-HR/internal/store"
	"github.com/Sortedsinghal/URE-HR/internal/templates"
	"github.com/Sortedsinghal/URE-HR/internal/wizard"
)

type Handler struct {
	store     *store.Store
	wizard    *wizard.Service
	scheduler *scheduling.Service
	templates *templates.Service
	analytics *analytics.Service
	publisher events.Publisher
	recorder  metrics.Recorder
	logger    *zap.Logger
}

func NewHandler(
	st *store.Store,
	wiz *wizard.Service,
	scheduler *scheduling.Service,
	tpl *templates.Service,
	an *analytics.Service,
	publisher events.Publisher,
	recorder metrics.Recorder,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		store:     st,
		wizard:    wiz,
		scheduler: scheduler,
		templates: tpl,
		analytics: an,
		publisher: publisher,
		recorder:  recorder,
		logger:    logger,
	}
}

func NewRouter(h *Handler, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		jobs := api.Group("/jobs")
		{
			jobs.GET("", h.listJobs)
			jobs.GET("/stats", h.jobStats)
			jobs.GET("/:id", h.getJob)

			drafts := jobs.Group("/drafts")
			{
				drafts.POST("", h.createDraft)
				drafts.GET("/:id", h.getDraft)
				drafts.PUT("/:id/fields", h.updateDraftFields)
				drafts.POST("/:id/next", h.draftNext)
				drafts.POST("/:id/back", h.draftBack)
				drafts.PUT("/:id/channels", h.setDraftChannel)
				drafts.POST("/:id/publish", h.publishDraft)
			}
		}

		api.GET("/candidates", h.listCandidates)
		api.GET("/candidates/:id", h.getCandidate)
		api.GET("/talent-pool", h.listTalent)

		api.GET("/assessments", h.listAssessments)
		api.GET("/assessments/results", h.listAssessmentResults)

		interviews := api.Group("/interviews")
		{
			interviews.GET("", h.listInterviews)
			interviews.POST("", h.scheduleInterview)
			interviews.GET("/slots", h.listTimeSlots)
			interviews.GET("/interviewers", h.listInterviewers)
		}

		api.GET("/video-interviews", h.listVideoInterviews)
		api.GET("/video-interviews/:id/insights", h.getVideoInsights)

		api.GET("/offers", h.listOffers)
		api.GET("/offers/stats", h.offerStats)

		tpl := api.Group("/templates")
		{
			tpl.GET("", h.listTemplates)
			tpl.POST("", h.createTemplate)
			tpl.PUT("/:id", h.updateTemplate)
			tpl.DELETE("/:id", h.deleteTemplate)
			tpl.POST("/:id/duplicate", h.duplicateTemplate)
			tpl.POST("/:id/send", h.sendTemplate)
		}

		integrations := api.Group("/integrations")
		{
			integrations.GET("", h.listIntegrations)
			integrations.POST("/:id/connect", h.connectIntegration)
			integrations.POST("/:id/disconnect", h.disconnectIntegration)
			integrations.PUT("/:id/settings", h.updateIntegrationSetting)
		}

		an := api.Group("/analytics")
		{
			an.GET("/overview", h.analyticsOverview)
			an.GET("/funnel", h.analyticsFunnel)
			an.GET("/sources", h.analyticsSources)
			an.GET("/diversity", h.analyticsDiversity)
		}

		content := api.Group("/content")
		{
			content.GET("/features", h.listFeatures)
			content.GET("/features/:slug", h.getFeature)
			content.GET("/help", h.listHelpCategories)
			content.GET("/help/articles/:slug", h.getHelpArticle)
			content.GET("/help/:category", h.getHelpCategory)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "page not found",
			"type":  "NOT_FOUND",
		})
	})

	return router
}
