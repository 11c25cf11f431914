package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/magazine-platform/internal/models"
	"github.com/magazine-platform/internal/overlay"
	"github.com/rs/zerolog"
)

// subscriptionService appends cancellation feedback to the overlay so
// the reasons survive restarts and can be reviewed later.
type subscriptionService struct {
	overlay *overlay.Store
	log     zerolog.Logger
	now     func() time.Time
}

func newSubscriptionService(o *overlay.Store, log zerolog.Logger) SubscriptionService {
	return &subscriptionService{
		overlay: o,
		log:     log.With().Str("service", "subscription").Logger(),
		now:     time.Now,
	}
}

func (s *subscriptionService) RecordCancellation(ctx context.Context, in *models.CancellationInput) (*models.Cancellation, error) {
	c := models.Cancellation{
		ID:     uuid.New().String(),
		Reason: in.Reason,
		Date:   s.now().UTC().Format(time.RFC3339),
	}

	existing := s.overlay.Cancellations()
	if err := s.overlay.SaveCancellations(append(existing, c)); err != nil {
		return nil, err
	}

	s.log.Info().Str("cancellation_id", c.ID).Str("reason", c.Reason).Msg("recorded subscription cancellation")
	return &c, nil
}

func (s *subscriptionService) Cancellations(ctx context.Context) ([]models.Cancellation, error) {
	return s.overlay.Cancellations(), nil
}
