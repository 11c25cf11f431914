package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/magazine-platform/internal/models"
	"github.com/magazine-platform/internal/service"
	"github.com/magazine-platform/internal/validation"
	"github.com/rs/zerolog"
)

// CommentHandler handles article comment endpoints. Replies nest exactly
// one level; a reply cannot itself receive replies.
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

// List handles GET /api/articles/:id/comments
func (h *CommentHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	articleID := c.Param("id")

	comments, err := h.services.Comment.List(ctx, articleID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"comments": comments,
		"count":    len(comments),
	})
}

// Post handles POST /api/articles/:id/comments
func (h *CommentHandler) Post(c *gin.Context) {
	ctx := c.Request.Context()
	articleID := c.Param("id")

	var in models.CommentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if errs := validation.ValidateComment(&in); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	comment, err := h.services.Comment.Post(ctx, articleID, &in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// Reply handles POST /api/articles/:id/comments/:comment_id/replies
func (h *CommentHandler) Reply(c *gin.Context) {
	ctx := c.Request.Context()
	articleID := c.Param("id")
	commentID := c.Param("comment_id")

	var in models.CommentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if errs := validation.ValidateComment(&in); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	reply, err := h.services.Comment.Reply(ctx, articleID, commentID, &in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reply)
}

// Delete handles DELETE /api/admin/articles/:id/comments/:comment_id
// Pass ?parent_id=<id> to delete a reply under that comment; without it
// the top-level comment is removed along with its replies. Deletion is
// an admin operation; visitors can only post.
func (h *CommentHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	articleID := c.Param("id")
	commentID := c.Param("comment_id")
	parentID := c.Query("parent_id")

	if err := h.services.Comment.Delete(ctx, articleID, commentID, parentID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
