package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) analyticsOverview(c *gin.Context) {
	c.JSON(http.StatusOK, h.analytics.Dashboard(c.Request.Context()))
}

func (h *Handler) analyticsFunnel(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"funnel": h.store.Funnel()})
}

func (h *Handler) analyticsSources(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sources": h.analytics.Sources()})
}

func (h *Handler) analyticsDiversity(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"diversity": h.store.Diversity()})
}

func (h *Handler) listFeatures(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"features": h.store.ListFeatures()})
}

func (h *Handler) getFeature(c *gin.Context) {
	feature, err := h.store.GetFeature(c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, feature)
}

func (h *Handler) listHelpCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.store.ListHelpCategories()})
}

func (h *Handler) getHelpCategory(c *gin.Context) {
	category, err := h.store.GetHelpCategory(c.Param("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *Handler) getHelpArticle(c *gin.Context) {
	article, err := h.store.GetHelpArticle(c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}
