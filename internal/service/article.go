package service

import (
	"context"
	"strconv"

	"github.com/magazine-platform/internal/models"
	"github.com/magazine-platform/internal/repository"
	"github.com/magazine-platform/internal/resolver"
	"github.com/rs/zerolog"
)

// bundleArticleService reads from the merged static+overlay collection.
// Mutations go through the admin surface, never through here.
type bundleArticleService struct {
	resolver *resolver.Resolver
	log      zerolog.Logger
}

func newBundleArticleService(r *resolver.Resolver, log zerolog.Logger) ArticleService {
	return &bundleArticleService{
		resolver: r,
		log:      log.With().Str("service", "articles").Str("source", "bundle").Logger(),
	}
}

func (s *bundleArticleService) List(ctx context.Context, category string, trending bool) ([]models.Article, error) {
	switch {
	case category != "":
		return s.resolver.ByCategory(category), nil
	case trending:
		return s.resolver.Trending(), nil
	default:
		return s.resolver.All(), nil
	}
}

func (s *bundleArticleService) Get(ctx context.Context, id string) (*models.Article, error) {
	article, ok := s.resolver.ByID(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &article, nil
}

func (s *bundleArticleService) Create(ctx context.Context, in *models.ArticleInput) (*models.Article, error) {
	return nil, ErrReadOnlySource
}

func (s *bundleArticleService) Update(ctx context.Context, id string, in *models.ArticleInput) (*models.Article, error) {
	return nil, ErrReadOnlySource
}

func (s *bundleArticleService) Delete(ctx context.Context, id string) error {
	return ErrReadOnlySource
}

// dbArticleService is the externalized-content path: full CRUD over the
// relational article table. IDs are stringified integers at this boundary.
type dbArticleService struct {
	repo repository.ArticleRepository
	log  zerolog.Logger
}

func newDBArticleService(repo repository.ArticleRepository, log zerolog.Logger) ArticleService {
	return &dbArticleService{
		repo: repo,
		log:  log.With().Str("service", "articles").Str("source", "database").Logger(),
	}
}

func (s *dbArticleService) List(ctx context.Context, category string, trending bool) ([]models.Article, error) {
	switch {
	case category != "":
		return s.repo.FindByCategory(ctx, category)
	case trending:
		return s.repo.FindTrending(ctx)
	default:
		return s.repo.FindAll(ctx)
	}
}

func (s *dbArticleService) Get(ctx context.Context, id string) (*models.Article, error) {
	numericID, err := parseArticleID(id)
	if err != nil {
		return nil, err
	}

	article, err := s.repo.FindByID(ctx, numericID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrNotFound
	}
	return article, nil
}

func (s *dbArticleService) Create(ctx context.Context, in *models.ArticleInput) (*models.Article, error) {
	article, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("article_id", article.ID).Str("title", article.Title).Msg("Article created")
	return article, nil
}

func (s *dbArticleService) Update(ctx context.Context, id string, in *models.ArticleInput) (*models.Article, error) {
	numericID, err := parseArticleID(id)
	if err != nil {
		return nil, err
	}

	article, err := s.repo.Update(ctx, numericID, in)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrNotFound
	}
	return article, nil
}

func (s *dbArticleService) Delete(ctx context.Context, id string) error {
	numericID, err := parseArticleID(id)
	if err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, numericID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	s.log.Info().Str("article_id", id).Msg("Article deleted")
	return nil
}

func parseArticleID(id string) (int64, error) {
	numericID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}
	return numericID, nil
}
