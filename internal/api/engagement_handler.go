package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/magazine-platform/internal/service"
	"github.com/rs/zerolog"
)

// EngagementHandler handles like, bookmark and share endpoints. All of
// them are idempotent where it matters: liking twice does not double
// the count, unliking below zero clamps at zero.
type EngagementHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewEngagementHandler creates a new EngagementHandler
func NewEngagementHandler(services *service.Services, log zerolog.Logger) *EngagementHandler {
	return &EngagementHandler{
		services: services,
		log:      log.With().Str("handler", "engagement").Logger(),
	}
}

// Like handles POST /api/articles/:id/like
func (h *EngagementHandler) Like(c *gin.Context) {
	ctx := c.Request.Context()
	articleID := c.Param("id")

	count, err := h.services.Engagement.Like(ctx, articleID)
	if err != nil {
		h.log.Error().Err(err).Str("article_id", articleID).Msg("Failed to like article")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"articleId": articleID, "likeCount": count, "liked": true})
}

// Unlike handles POST /api/articles/:id/unlike
func (h *EngagementHandler) Unlike(c *gin.Context) {
	ctx := c.Request.Context()
	articleID := c.Param("id")

	count, err := h.services.Engagement.Unlike(ctx, articleID)
	if err != nil {
		h.log.Error().Err(err).Str("article_id", articleID).Msg("Failed to unlike article")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"articleId": articleID, "likeCount": count, "liked": false})
}

// Bookmark handles POST /api/articles/:id/bookmark
func (h *EngagementHandler) Bookmark(c *gin.Context) {
	ctx := c.Request.Context()
	articleID := c.Param("id")

	if err := h.services.Engagement.Bookmark(ctx, articleID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"articleId": articleID, "bookmarked": true})
}

// Unbookmark handles POST /api/articles/:id/unbookmark
func (h *EngagementHandler) Unbookmark(c *gin.Context) {
	ctx := c.Request.Context()
	articleID := c.Param("id")

	if err := h.services.Engagement.Unbookmark(ctx, articleID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"articleId": articleID, "bookmarked": false})
}

// Share handles POST /api/articles/:id/share
func (h *EngagementHandler) Share(c *gin.Context) {
	ctx := c.Request.Context()
	articleID := c.Param("id")

	count, err := h.services.Engagement.Share(ctx, articleID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"articleId": articleID, "shareCount": count})
}

// State handles GET /api/engagement
func (h *EngagementHandler) State(c *gin.Context) {
	ctx := c.Request.Context()

	state, err := h.services.Engagement.State(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}
