package service

import (
	"context"

	"github.com/magazine-platform/internal/content"
	"github.com/magazine-platform/internal/models"
	"github.com/magazine-platform/internal/repository"
	"github.com/rs/zerolog"
)

// bundleCategoryService serves the static category table. Categories have
// no lifecycle in bundle mode, so creation is rejected.
type bundleCategoryService struct {
	content *content.Store
	log     zerolog.Logger
}

func newBundleCategoryService(c *content.Store, log zerolog.Logger) CategoryService {
	return &bundleCategoryService{
		content: c,
		log:     log.With().Str("service", "categories").Str("source", "bundle").Logger(),
	}
}

func (s *bundleCategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.content.Categories(), nil
}

func (s *bundleCategoryService) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	for _, c := range s.content.Categories() {
		if c.Slug == slug {
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (s *bundleCategoryService) Create(ctx context.Context, c *models.Category) (*models.Category, error) {
	return nil, ErrReadOnlySource
}

// dbCategoryService serves categories from Postgres.
type dbCategoryService struct {
	repo repository.CategoryRepository
	log  zerolog.Logger
}

func newDBCategoryService(repo repository.CategoryRepository, log zerolog.Logger) CategoryService {
	return &dbCategoryService{
		repo: repo,
		log:  log.With().Str("service", "categories").Str("source", "database").Logger(),
	}
}

func (s *dbCategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.repo.FindAll(ctx)
}

func (s *dbCategoryService) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	category, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}

func (s *dbCategoryService) Create(ctx context.Context, c *models.Category) (*models.Category, error) {
	exists, err := s.repo.SlugExists(ctx, c.Slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrSlugTaken
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	s.log.Info().Str("slug", c.Slug).Msg("Category created")
	return c, nil
}
