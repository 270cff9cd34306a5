package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sortedsinghal/URE-HR/internal/errors"
	"github.com/Sortedsinghal/URE-HR/internal/models"
	"github.com/Sortedsinghal/URE-HR/internal/store"
	"github.com/Sortedsinghal/URE-HR/internal/templates"
)

func (h *Handler) listTemplates(c *gin.Context) {
	list := h.store.ListTemplates()
	c.JSON(http.StatusOK, gin.H{
		"templates":    list,
		"count":        len(list),
		"placeholders": models.Placeholders,
	})
}

func validateTemplateFields(f store.TemplateFields) error {
	if f.Name == "" {
		return errors.InvalidInput("template name is required", nil)
	}
	if !f.Channel.IsValid() {
		return errors.InvalidInput("channel must be email, sms or whatsapp", nil)
	}
	if f.Content == "" {
		return errors.InvalidInput("template content is required", nil)
	}
	return nil
}

func (h *Handler) createTemplate(c *gin.Context) {
	var fields store.TemplateFields
	if !bindJSON(c, &fields) {
		return
	}
	if err := validateTemplateFields(fields); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.store.CreateTemplate(fields))
}

func (h *Handler) updateTemplate(c *gin.Context) {
	var fields store.TemplateFields
	if !bindJSON(c, &fields) {
		return
	}
	if err := validateTemplateFields(fields); err != nil {
		respondError(c, err)
		return
	}
	tpl, err := h.store.UpdateTemplate(c.Param("id"), fields)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tpl)
}

func (h *Handler) deleteTemplate(c *gin.Context) {
	if err := h.store.DeleteTemplate(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) duplicateTemplate(c *gin.Context) {
	tpl, err := h.store.DuplicateTemplate(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tpl)
}

func (h *Handler) sendTemplate(c *gin.Context) {
	var req templates.SendRequest
	if !bindJSON(c, &req) {
		return
	}
	req.TemplateID = c.Param("id")

	result, err := h.templates.Send(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.recordEvent(c, "template.sent", result.TemplateID, result)

	c.JSON(http.StatusOK, result)
}
