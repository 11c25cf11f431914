package service

import (
	"context"
	"testing"
	"time"

	"github.com/magazine-platform/internal/models"
	"github.com/magazine-platform/internal/overlay"
	"github.com/magazine-platform/internal/resolver"
	"github.com/rs/zerolog"
)

func newTestCommentService(t *testing.T) (*commentService, *overlay.Store) {
	t.Helper()

	cs := testContentStore()
	os := overlay.NewStore(overlay.NewMemoryKV(), zerolog.Nop())
	svc := newCommentService(resolver.New(cs, os), os, zerolog.Nop()).(*commentService)

	base := time.UnixMilli(1718200000000)
	calls := 0
	svc.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Millisecond)
	}
	return svc, os
}

func TestPostComment(t *testing.T) {
	svc, _ := newTestCommentService(t)
	ctx := context.Background()

	comment, err := svc.Post(ctx, "1", &models.CommentInput{Author: "Sam", Text: "great read"})
	if err != nil {
		t.Fatalf("Post failed: %v", err)
	}
	if comment.ID == "" {
		t.Error("comment has no id")
	}
	if comment.Date == "" {
		t.Error("comment has no display date")
	}

	list, err := svc.List(ctx, "1")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 1 || list[0].Author != "Sam" {
		t.Errorf("List = %+v", list)
	}
}

func TestPostCommentMissingArticle(t *testing.T) {
	svc, _ := newTestCommentService(t)

	if _, err := svc.Post(context.Background(), "999", &models.CommentInput{Author: "Sam", Text: "x"}); err != ErrNotFound {
		t.Errorf("Post on missing article = %v, want ErrNotFound", err)
	}
}

func TestListEmptyIsNotNil(t *testing.T) {
	svc, _ := newTestCommentService(t)

	list, err := svc.List(context.Background(), "1")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if list == nil {
		t.Error("List on commentless article returned nil, want empty slice")
	}

	if _, err := svc.List(context.Background(), "999"); err != ErrNotFound {
		t.Errorf("List on missing article = %v, want ErrNotFound", err)
	}
}

func TestReplyNestsOneLevel(t *testing.T) {
	svc, _ := newTestCommentService(t)
	ctx := context.Background()

	parent, err := svc.Post(ctx, "1", &models.CommentInput{Author: "Sam", Text: "great read"})
	if err != nil {
		t.Fatalf("Post failed: %v", err)
	}

	reply, err := svc.Reply(ctx, "1", parent.ID, &models.CommentInput{Author: "Lee", Text: "agreed"})
	if err != nil {
		t.Fatalf("Reply failed: %v", err)
	}

	list, _ := svc.List(ctx, "1")
	if len(list) != 1 || len(list[0].Replies) != 1 {
		t.Fatalf("List after reply = %+v", list)
	}
	if list[0].Replies[0].Author != "Lee" {
		t.Errorf("reply author = %q", list[0].Replies[0].Author)
	}

	// Replies are not reply targets: depth stops at one level.
	if _, err := svc.Reply(ctx, "1", reply.ID, &models.CommentInput{Author: "Kim", Text: "nested"}); err != ErrNotFound {
		t.Errorf("Reply to a reply = %v, want ErrNotFound", err)
	}
}

func TestReplyMissingParent(t *testing.T) {
	svc, _ := newTestCommentService(t)

	if _, err := svc.Reply(context.Background(), "1", "no-such-comment", &models.CommentInput{Author: "Lee", Text: "x"}); err != ErrNotFound {
		t.Errorf("Reply to missing comment = %v, want ErrNotFound", err)
	}
}

func TestDeleteTopLevelRemovesReplies(t *testing.T) {
	svc, _ := newTestCommentService(t)
	ctx := context.Background()

	parent, _ := svc.Post(ctx, "1", &models.CommentInput{Author: "Sam", Text: "great read"})
	if _, err := svc.Reply(ctx, "1", parent.ID, &models.CommentInput{Author: "Lee", Text: "agreed"}); err != nil {
		t.Fatalf("Reply failed: %v", err)
	}

	if err := svc.Delete(ctx, "1", parent.ID, ""); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	list, _ := svc.List(ctx, "1")
	if len(list) != 0 {
		t.Errorf("List after delete = %+v", list)
	}
}

func TestDeleteSingleReply(t *testing.T) {
	svc, _ := newTestCommentService(t)
	ctx := context.Background()

	parent, _ := svc.Post(ctx, "1", &models.CommentInput{Author: "Sam", Text: "great read"})
	reply, _ := svc.Reply(ctx, "1", parent.ID, &models.CommentInput{Author: "Lee", Text: "agreed"})

	if err := svc.Delete(ctx, "1", reply.ID, parent.ID); err != nil {
		t.Fatalf("Delete reply failed: %v", err)
	}

	list, _ := svc.List(ctx, "1")
	if len(list) != 1 {
		t.Fatalf("parent vanished: %+v", list)
	}
	if len(list[0].Replies) != 0 {
		t.Errorf("reply survived delete: %+v", list[0].Replies)
	}
}

func TestDeleteMissingComment(t *testing.T) {
	svc, _ := newTestCommentService(t)

	if err := svc.Delete(context.Background(), "1", "nope", ""); err != ErrNotFound {
		t.Errorf("Delete missing comment = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(context.Background(), "1", "nope", "also-nope"); err != ErrNotFound {
		t.Errorf("Delete reply under missing parent = %v, want ErrNotFound", err)
	}
}
