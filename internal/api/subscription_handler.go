package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/magazine-platform/internal/models"
	"github.com/magazine-platform/internal/service"
	"github.com/magazine-platform/internal/validation"
	"github.com/rs/zerolog"
)

// SubscriptionHandler records premium cancellation feedback
type SubscriptionHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewSubscriptionHandler creates a new SubscriptionHandler
func NewSubscriptionHandler(services *service.Services, log zerolog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		services: services,
		log:      log.With().Str("handler", "subscription").Logger(),
	}
}

// RecordCancellation handles POST /api/subscription/cancellations
func (h *SubscriptionHandler) RecordCancellation(c *gin.Context) {
	ctx := c.Request.Context()

	var in models.CancellationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if errs := validation.ValidateCancellation(&in); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	cancellation, err := h.services.Subscription.RecordCancellation(ctx, &in)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to record cancellation")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, cancellation)
}

// ListCancellations handles GET /api/admin/cancellations
func (h *SubscriptionHandler) ListCancellations(c *gin.Context) {
	ctx := c.Request.Context()

	cancellations, err := h.services.Subscription.Cancellations(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cancellations": cancellations,
		"count":         len(cancellations),
	})
}
