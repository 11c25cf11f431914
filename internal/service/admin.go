package service

import (
	"context"
	"strconv"
	"time"

	"github.com/magazine-platform/internal/content"
	"github.com/magazine-platform/internal/models"
	"github.com/magazine-platform/internal/overlay"
	"github.com/magazine-platform/internal/resolver"
	"github.com/rs/zerolog"
)

// adminService manages overlay articles. Overlay article ids are the
// creation time in unix milliseconds, and each creation writes a parallel
// ownership key so admins only manage their own articles. Bundled "base"
// articles have no ownership key: they can never be deleted, and their
// comments are visible to every admin.
type adminService struct {
	resolver *resolver.Resolver
	content  *content.Store
	overlay  *overlay.Store
	log      zerolog.Logger
	now      func() time.Time
}

func newAdminService(r *resolver.Resolver, c *content.Store, o *overlay.Store, log zerolog.Logger) AdminService {
	return &adminService{
		resolver: r,
		content:  c,
		overlay:  o,
		log:      log.With().Str("service", "admin").Logger(),
		now:      time.Now,
	}
}

func (s *adminService) CreateArticle(ctx context.Context, userID string, in *models.ArticleInput) (*models.Article, error) {
	id := strconv.FormatInt(s.now().UnixMilli(), 10)
	article := in.Article(id)

	articles := s.overlay.AdminArticles()
	articles = append(articles, article)
	if err := s.overlay.SaveAdminArticles(articles); err != nil {
		return nil, err
	}

	// Separate key, separate write: create + tag is not atomic.
	if err := s.overlay.SetArticleOwner(id, userID); err != nil {
		return nil, err
	}

	s.log.Info().Str("article_id", id).Str("user_id", userID).Msg("Overlay article created")
	return &article, nil
}

func (s *adminService) UpdateArticle(ctx context.Context, userID, id string, in *models.ArticleInput) (*models.Article, error) {
	articles := s.overlay.AdminArticles()
	for i, a := range articles {
		if a.ID != id {
			continue
		}
		if owner, ok := s.overlay.ArticleOwner(id); ok && owner != userID {
			return nil, ErrNotOwner
		}

		updated := in.Article(id)
		articles[i] = updated
		if err := s.overlay.SaveAdminArticles(articles); err != nil {
			return nil, err
		}
		return &updated, nil
	}

	if s.isBaseArticle(id) {
		return nil, ErrBaseArticle
	}
	return nil, ErrNotFound
}

// DeleteArticle removes an overlay article and cascades to its comment
// list and like-count entry. The ownership tag key is intentionally left
// behind. Base articles are refused and stay untouched.
func (s *adminService) DeleteArticle(ctx context.Context, userID, id string) error {
	articles := s.overlay.AdminArticles()
	index := -1
	for i, a := range articles {
		if a.ID == id {
			index = i
			break
		}
	}

	if index < 0 {
		if s.isBaseArticle(id) {
			return ErrBaseArticle
		}
		return ErrNotFound
	}

	if owner, ok := s.overlay.ArticleOwner(id); ok && owner != userID {
		return ErrNotOwner
	}

	articles = append(articles[:index], articles[index+1:]...)
	if err := s.overlay.SaveAdminArticles(articles); err != nil {
		return err
	}

	if err := s.overlay.DeleteComments(id); err != nil {
		return err
	}

	counts := s.overlay.LikeCounts()
	if _, ok := counts[id]; ok {
		delete(counts, id)
		if err := s.overlay.SaveLikeCounts(counts); err != nil {
			return err
		}
	}

	s.log.Info().Str("article_id", id).Str("user_id", userID).Msg("Overlay article deleted")
	return nil
}

// MyArticles returns the overlay articles whose ownership tag matches the
// given user.
func (s *adminService) MyArticles(ctx context.Context, userID string) ([]models.Article, error) {
	var mine []models.Article
	for _, a := range s.overlay.AdminArticles() {
		if owner, ok := s.overlay.ArticleOwner(a.ID); ok && owner == userID {
			mine = append(mine, a)
		}
	}
	return mine, nil
}

// AllComments flattens every comment and reply the given admin may
// moderate: comments on their own articles plus comments on base
// articles, which belong to no one in particular.
func (s *adminService) AllComments(ctx context.Context, userID string) ([]models.CommentWithArticle, error) {
	var out []models.CommentWithArticle
	for _, article := range s.resolver.All() {
		owner, tagged := s.overlay.ArticleOwner(article.ID)
		if tagged && owner != userID {
			continue
		}

		for _, comment := range s.overlay.Comments(article.ID) {
			out = append(out, models.CommentWithArticle{
				ArticleID:    article.ID,
				ArticleTitle: article.Title,
				Comment:      comment,
				IsReply:      false,
			})
			for _, reply := range comment.Replies {
				out = append(out, models.CommentWithArticle{
					ArticleID:       article.ID,
					ArticleTitle:    article.Title,
					Comment:         reply,
					IsReply:         true,
					ParentCommentID: comment.ID,
				})
			}
		}
	}
	return out, nil
}

// Stats aggregates engagement numbers for one article. The comment count
// includes replies.
func (s *adminService) Stats(ctx context.Context, articleID string) (*models.ArticleStats, error) {
	if _, ok := s.resolver.ByID(articleID); !ok {
		return nil, ErrNotFound
	}

	commentCount := 0
	for _, c := range s.overlay.Comments(articleID) {
		commentCount += 1 + len(c.Replies)
	}

	return &models.ArticleStats{
		ArticleID:    articleID,
		LikeCount:    s.overlay.LikeCounts()[articleID],
		CommentCount: commentCount,
		ShareCount:   s.overlay.ShareCounts()[articleID],
	}, nil
}

func (s *adminService) isBaseArticle(id string) bool {
	for _, a := range s.content.Articles() {
		if a.ID == id {
			return true
		}
	}
	return false
}
