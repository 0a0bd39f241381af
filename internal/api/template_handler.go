package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/catalog-feed-api/internal/mapping"
	"github.com/catalog-feed-api/internal/mapstore"
)

// TemplateHandler handles saved mapping template endpoints
type TemplateHandler struct {
	maps mapstore.Store
	log  zerolog.Logger
}

// NewTemplateHandler creates a new TemplateHandler
func NewTemplateHandler(maps mapstore.Store, log zerolog.Logger) *TemplateHandler {
	return &TemplateHandler{
		maps: maps,
		log:  log.With().Str("handler", "template").Logger(),
	}
}

// ListTemplates handles GET /v1/templates
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	names, err := h.maps.ListTemplates()
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list templates")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list templates"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": names})
}

// GetTemplate handles GET /v1/templates/:name
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	name := c.Param("name")

	template, ok, err := h.maps.Template(name)
	if err != nil {
		h.log.Error().Err(err).Str("template", name).Msg("Failed to load template")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load template"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":    name,
		"mapping": template,
	})
}

// SaveTemplate handles PUT /v1/templates/:name
// A template may not bind two headers to the same target field.
func (h *TemplateHandler) SaveTemplate(c *gin.Context) {
	name := c.Param("name")

	var req struct {
		Mapping map[string]string `json:"mapping"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Mapping) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mapping object is required"})
		return
	}

	if duplicates := mapping.DetectDuplicateTargets(req.Mapping); len(duplicates) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "mapping binds several headers to one field",
			"duplicate_targets": duplicates,
		})
		return
	}

	if err := h.maps.SaveTemplate(name, req.Mapping); err != nil {
		h.log.Error().Err(err).Str("template", name).Msg("Failed to save template")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save template"})
		return
	}

	h.log.Info().Str("template", name).Int("headers", len(req.Mapping)).Msg("Template saved")
	c.JSON(http.StatusOK, gin.H{
		"name":    name,
		"mapping": req.Mapping,
	})
}

// DeleteTemplate handles DELETE /v1/templates/:name
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	name := c.Param("name")

	deleted, err := h.maps.DeleteTemplate(name)
	if err != nil {
		h.log.Error().Err(err).Str("template", name).Msg("Failed to delete template")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete template"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": name})
}
