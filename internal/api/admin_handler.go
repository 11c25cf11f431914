package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/magazine-platform/internal/models"
	"github.com/magazine-platform/internal/service"
	"github.com/magazine-platform/internal/validation"
	"github.com/rs/zerolog"
)

// AdminHandler handles the admin article management endpoints. Every
// route behind it runs under the auth middleware, so user_id is always
// present in the context.
type AdminHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(services *service.Services, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		services: services,
		log:      log.With().Str("handler", "admin").Logger(),
	}
}

// MyArticles handles GET /api/admin/articles
func (h *AdminHandler) MyArticles(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetString("user_id")

	articles, err := h.services.Admin.MyArticles(ctx, userID)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", userID).Msg("Failed to list admin articles")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"articles": articles,
		"count":    len(articles),
	})
}

// CreateArticle handles POST /api/admin/articles
func (h *AdminHandler) CreateArticle(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetString("user_id")

	var in models.ArticleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if errs := validation.ValidateArticle(&in); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	article, err := h.services.Admin.CreateArticle(ctx, userID, &in)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", userID).Msg("Failed to create article")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, article)
}

// UpdateArticle handles PUT /api/admin/articles/:id
func (h *AdminHandler) UpdateArticle(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetString("user_id")
	id := c.Param("id")

	var in models.ArticleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if errs := validation.ValidateArticle(&in); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	article, err := h.services.Admin.UpdateArticle(ctx, userID, id, &in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

// DeleteArticle handles DELETE /api/admin/articles/:id
func (h *AdminHandler) DeleteArticle(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetString("user_id")
	id := c.Param("id")

	if err := h.services.Admin.DeleteArticle(ctx, userID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Stats handles GET /api/admin/articles/:id/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	stats, err := h.services.Admin.Stats(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// AllComments handles GET /api/admin/comments
// Returns a flat moderation view spanning the caller's articles plus the
// base collection, replies included.
func (h *AdminHandler) AllComments(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetString("user_id")

	comments, err := h.services.Admin.AllComments(ctx, userID)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", userID).Msg("Failed to list comments")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"comments": comments,
		"count":    len(comments),
	})
}
