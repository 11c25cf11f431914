package service

import (
	"context"

	"github.com/magazine-platform/internal/models"
	"github.com/magazine-platform/internal/overlay"
	"github.com/rs/zerolog"
)

// engagementService keeps likes, bookmarks and share counters in the
// overlay. Like and bookmark are guarded by list membership, so repeating
// an operation is a no-op and like/unlike round-trips leave the count
// where it started. Counts never go below zero.
type engagementService struct {
	overlay *overlay.Store
	log     zerolog.Logger
}

func newEngagementService(o *overlay.Store, log zerolog.Logger) EngagementService {
	return &engagementService{
		overlay: o,
		log:     log.With().Str("service", "engagement").Logger(),
	}
}

func (s *engagementService) Like(ctx context.Context, articleID string) (int, error) {
	liked := s.overlay.LikedArticles()
	counts := s.overlay.LikeCounts()

	if contains(liked, articleID) {
		return counts[articleID], nil
	}

	liked = append(liked, articleID)
	if err := s.overlay.SaveLikedArticles(liked); err != nil {
		return 0, err
	}

	counts[articleID]++
	if err := s.overlay.SaveLikeCounts(counts); err != nil {
		return 0, err
	}
	return counts[articleID], nil
}

func (s *engagementService) Unlike(ctx context.Context, articleID string) (int, error) {
	liked := s.overlay.LikedArticles()
	counts := s.overlay.LikeCounts()

	if !contains(liked, articleID) {
		return counts[articleID], nil
	}

	if err := s.overlay.SaveLikedArticles(remove(liked, articleID)); err != nil {
		return 0, err
	}

	if counts[articleID] > 0 {
		counts[articleID]--
	}
	if err := s.overlay.SaveLikeCounts(counts); err != nil {
		return 0, err
	}
	return counts[articleID], nil
}

func (s *engagementService) Bookmark(ctx context.Context, articleID string) error {
	bookmarked := s.overlay.BookmarkedArticles()
	if contains(bookmarked, articleID) {
		return nil
	}
	return s.overlay.SaveBookmarkedArticles(append(bookmarked, articleID))
}

func (s *engagementService) Unbookmark(ctx context.Context, articleID string) error {
	bookmarked := s.overlay.BookmarkedArticles()
	if !contains(bookmarked, articleID) {
		return nil
	}
	return s.overlay.SaveBookmarkedArticles(remove(bookmarked, articleID))
}

func (s *engagementService) Share(ctx context.Context, articleID string) (int, error) {
	counts := s.overlay.ShareCounts()
	counts[articleID]++
	if err := s.overlay.SaveShareCounts(counts); err != nil {
		return 0, err
	}
	return counts[articleID], nil
}

func (s *engagementService) State(ctx context.Context) (*models.EngagementState, error) {
	state := &models.EngagementState{
		LikedArticles:      s.overlay.LikedArticles(),
		BookmarkedArticles: s.overlay.BookmarkedArticles(),
		LikeCounts:         s.overlay.LikeCounts(),
		ShareCounts:        s.overlay.ShareCounts(),
	}
	if state.LikedArticles == nil {
		state.LikedArticles = []string{}
	}
	if state.BookmarkedArticles == nil {
		state.BookmarkedArticles = []string{}
	}
	return state, nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func remove(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
