package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/magazine-platform/internal/models"
	"github.com/magazine-platform/internal/service"
	"github.com/rs/zerolog"
)

// ContentHandler serves the combined content payload the frontend boots
// from: every category plus the merged article collection.
type ContentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(services *service.Services, log zerolog.Logger) *ContentHandler {
	return &ContentHandler{
		services: services,
		log:      log.With().Str("handler", "content").Logger(),
	}
}

// GetContent handles GET /api/content
func (h *ContentHandler) GetContent(c *gin.Context) {
	ctx := c.Request.Context()

	categories, err := h.services.Category.List(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list categories")
		respondError(c, err)
		return
	}

	articles, err := h.services.Article.List(ctx, "", false)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list articles")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ContentResponse{
		Categories: categories,
		Articles:   articles,
	})
}
