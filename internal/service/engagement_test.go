package service

import (
	"context"
	"testing"

	"github.com/magazine-platform/internal/overlay"
	"github.com/rs/zerolog"
)

func newTestEngagementService() (EngagementService, *overlay.Store) {
	os := overlay.NewStore(overlay.NewMemoryKV(), zerolog.Nop())
	return newEngagementService(os, zerolog.Nop()), os
}

func TestLikeIsIdempotent(t *testing.T) {
	svc, _ := newTestEngagementService()
	ctx := context.Background()

	count, err := svc.Like(ctx, "1")
	if err != nil {
		t.Fatalf("Like failed: %v", err)
	}
	if count != 1 {
		t.Errorf("first Like count = %d, want 1", count)
	}

	// Liking again from the same browser does not double the count.
	count, err = svc.Like(ctx, "1")
	if err != nil {
		t.Fatalf("second Like failed: %v", err)
	}
	if count != 1 {
		t.Errorf("repeated Like count = %d, want 1", count)
	}
}

func TestLikeUnlikeRoundTrip(t *testing.T) {
	svc, _ := newTestEngagementService()
	ctx := context.Background()

	if _, err := svc.Like(ctx, "1"); err != nil {
		t.Fatalf("Like failed: %v", err)
	}
	count, err := svc.Unlike(ctx, "1")
	if err != nil {
		t.Fatalf("Unlike failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Unlike count = %d, want 0", count)
	}

	state, _ := svc.State(ctx)
	if len(state.LikedArticles) != 0 {
		t.Errorf("LikedArticles after round trip = %v", state.LikedArticles)
	}
}

func TestUnlikeWithoutLike(t *testing.T) {
	svc, _ := newTestEngagementService()

	count, err := svc.Unlike(context.Background(), "1")
	if err != nil {
		t.Fatalf("Unlike failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Unlike on never-liked article = %d, want 0", count)
	}
}

// A pre-seeded count (another browser's likes) dips by one but never
// below zero.
func TestUnlikeFloorsAtZero(t *testing.T) {
	svc, os := newTestEngagementService()
	ctx := context.Background()

	if err := os.SaveLikedArticles([]string{"1"}); err != nil {
		t.Fatalf("SaveLikedArticles failed: %v", err)
	}
	if err := os.SaveLikeCounts(map[string]int{"1": 0}); err != nil {
		t.Fatalf("SaveLikeCounts failed: %v", err)
	}

	count, err := svc.Unlike(ctx, "1")
	if err != nil {
		t.Fatalf("Unlike failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Unlike clamped count = %d, want 0", count)
	}
}

func TestBookmarkToggle(t *testing.T) {
	svc, _ := newTestEngagementService()
	ctx := context.Background()

	if err := svc.Bookmark(ctx, "2"); err != nil {
		t.Fatalf("Bookmark failed: %v", err)
	}
	// Repeat is a no-op, not a duplicate.
	if err := svc.Bookmark(ctx, "2"); err != nil {
		t.Fatalf("repeat Bookmark failed: %v", err)
	}

	state, _ := svc.State(ctx)
	if len(state.BookmarkedArticles) != 1 {
		t.Errorf("BookmarkedArticles = %v, want one entry", state.BookmarkedArticles)
	}

	if err := svc.Unbookmark(ctx, "2"); err != nil {
		t.Fatalf("Unbookmark failed: %v", err)
	}
	state, _ = svc.State(ctx)
	if len(state.BookmarkedArticles) != 0 {
		t.Errorf("BookmarkedArticles after unbookmark = %v", state.BookmarkedArticles)
	}
}

func TestShareAlwaysIncrements(t *testing.T) {
	svc, _ := newTestEngagementService()
	ctx := context.Background()

	for want := 1; want <= 3; want++ {
		count, err := svc.Share(ctx, "1")
		if err != nil {
			t.Fatalf("Share failed: %v", err)
		}
		if count != want {
			t.Errorf("Share count = %d, want %d", count, want)
		}
	}
}

func TestStateDefaults(t *testing.T) {
	svc, _ := newTestEngagementService()

	state, err := svc.State(context.Background())
	if err != nil {
		t.Fatalf("State failed: %v", err)
	}
	if state.LikedArticles == nil || state.BookmarkedArticles == nil {
		t.Error("State slices must be empty, not nil")
	}
	if state.LikeCounts == nil || state.ShareCounts == nil {
		t.Error("State maps must be empty, not nil")
	}
}
