package service

import (
	"context"
	"strconv"
	"time"

	"github.com/magazine-platform/internal/models"
	"github.com/magazine-platform/internal/overlay"
	"github.com/magazine-platform/internal/resolver"
	"github.com/rs/zerolog"
)

// commentDateFormat matches the display format the frontend renders,
// e.g. "Jun 12, 2025". Dates are display strings, never parsed back.
const commentDateFormat = "Jan 2, 2006"

// commentService stores comments per article in the overlay. Replies nest
// exactly one level: a reply target is only ever looked up among
// top-level comments, so replying to a reply reads as not found.
type commentService struct {
	resolver *resolver.Resolver
	overlay  *overlay.Store
	log      zerolog.Logger
	now      func() time.Time
}

func newCommentService(r *resolver.Resolver, o *overlay.Store, log zerolog.Logger) CommentService {
	return &commentService{
		resolver: r,
		overlay:  o,
		log:      log.With().Str("service", "comments").Logger(),
		now:      time.Now,
	}
}

func (s *commentService) List(ctx context.Context, articleID string) ([]models.Comment, error) {
	if _, ok := s.resolver.ByID(articleID); !ok {
		return nil, ErrNotFound
	}
	comments := s.overlay.Comments(articleID)
	if comments == nil {
		comments = []models.Comment{}
	}
	return comments, nil
}

func (s *commentService) Post(ctx context.Context, articleID string, in *models.CommentInput) (*models.Comment, error) {
	if _, ok := s.resolver.ByID(articleID); !ok {
		return nil, ErrNotFound
	}

	comment := s.newComment(in)
	comments := append(s.overlay.Comments(articleID), comment)
	if err := s.overlay.SaveComments(articleID, comments); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *commentService) Reply(ctx context.Context, articleID, commentID string, in *models.CommentInput) (*models.Comment, error) {
	if _, ok := s.resolver.ByID(articleID); !ok {
		return nil, ErrNotFound
	}

	comments := s.overlay.Comments(articleID)
	for i, c := range comments {
		if c.ID != commentID {
			continue
		}
		reply := s.newComment(in)
		reply.Replies = nil
		comments[i].Replies = append(comments[i].Replies, reply)
		if err := s.overlay.SaveComments(articleID, comments); err != nil {
			return nil, err
		}
		return &reply, nil
	}
	return nil, ErrNotFound
}

// Delete removes a top-level comment (with its replies) when parentID is
// empty, or a single reply from the given parent otherwise.
func (s *commentService) Delete(ctx context.Context, articleID, commentID, parentID string) error {
	comments := s.overlay.Comments(articleID)

	if parentID == "" {
		for i, c := range comments {
			if c.ID == commentID {
				comments = append(comments[:i], comments[i+1:]...)
				return s.overlay.SaveComments(articleID, comments)
			}
		}
		return ErrNotFound
	}

	for i, c := range comments {
		if c.ID != parentID {
			continue
		}
		for j, reply := range c.Replies {
			if reply.ID == commentID {
				comments[i].Replies = append(c.Replies[:j], c.Replies[j+1:]...)
				return s.overlay.SaveComments(articleID, comments)
			}
		}
	}
	return ErrNotFound
}

func (s *commentService) newComment(in *models.CommentInput) models.Comment {
	now := s.now()
	return models.Comment{
		ID:     strconv.FormatInt(now.UnixMilli(), 10),
		Author: in.Author,
		Text:   in.Text,
		Date:   now.Format(commentDateFormat),
	}
}
