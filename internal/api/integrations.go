package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Sortedsinghal/URE-HR/internal/events"
)

func (h *Handler) listIntegrations(c *gin.Context) {
	list := h.store.ListIntegrations()
	c.JSON(http.StatusOK, gin.H{"integrations": list, "count": len(list)})
}

func (h *Handler) connectIntegration(c *gin.Context) {
	integration, err := h.store.ConnectIntegration(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	connected := events.IntegrationConnected{
		IntegrationID: integration.ID,
		Name:          integration.Name,
		Category:      integration.Category,
	}
	if err := h.publisher.IntegrationConnected(c.Request.Context(), connected); err != nil {
		h.logger.Error("failed to publish integration event",
			zap.String("integration_id", integration.ID),
			zap.Error(err))
	}
	h.recordEvent(c, "integration.connected", integration.ID, connected)

	c.JSON(http.StatusOK, integration)
}

func (h *Handler) disconnectIntegration(c *gin.Context) {
	integration, err := h.store.DisconnectIntegration(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, integration)
}

func (h *Handler) updateIntegrationSetting(c *gin.Context) {
	var req struct {
		Setting string `json:"setting"`
		Value   bool   `json:"value"`
	}
	if !bindJSON(c, &req) {
		return
	}

	integration, err := h.store.UpdateIntegrationSetting(c.Param("id"), req.Setting, req.Value)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, integration)
}
