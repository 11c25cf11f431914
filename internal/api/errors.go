package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/magazine-platform/internal/service"
)

// respondError translates service sentinel errors into HTTP statuses.
// Unknown errors come back as 500 with a generic body so internal
// details never leak to clients.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
	case errors.Is(err, service.ErrReadOnlySource):
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "bundled content is read-only"})
	case errors.Is(err, service.ErrBaseArticle):
		c.JSON(http.StatusForbidden, gin.H{"error": "base articles cannot be deleted"})
	case errors.Is(err, service.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "article belongs to another user"})
	case errors.Is(err, service.ErrSlugTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "category slug already exists"})
	case errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "user with this email already exists"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
