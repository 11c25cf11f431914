package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/magazine-platform/internal/models"
	"github.com/magazine-platform/internal/service"
	"github.com/magazine-platform/internal/validation"
	"github.com/rs/zerolog"
)

// ArticleHandler handles the public article endpoints
type ArticleHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// List handles GET /api/articles
// Supports ?category=<name> and ?trending=true filters.
func (h *ArticleHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	category := c.Query("category")
	trending := c.Query("trending") == "true"

	articles, err := h.services.Article.List(ctx, category, trending)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list articles")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"articles": articles,
		"count":    len(articles),
	})
}

// Get handles GET /api/articles/:id
func (h *ArticleHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	article, err := h.services.Article.Get(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

// Create handles POST /api/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var in models.ArticleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if errs := validation.ValidateArticle(&in); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	article, err := h.services.Article.Create(ctx, &in)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to create article")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, article)
}

// Update handles PUT /api/articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()
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

	article, err := h.services.Article.Update(ctx, id, &in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

// Delete handles DELETE /api/articles/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if err := h.services.Article.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
