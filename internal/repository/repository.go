package repository

import (
	"context"

	"github.com/magazine-platform/internal/database"
	"github.com/magazine-platform/internal/models"
)

// ArticleRepository defines the relational article operations used by the
// externalized-content deployment. IDs are integers at this boundary and
// stringified in the API payloads.
type ArticleRepository interface {
	FindAll(ctx context.Context) ([]models.Article, error)
	FindByID(ctx context.Context, id int64) (*models.Article, error)
	FindByCategory(ctx context.Context, category string) ([]models.Article, error)
	FindTrending(ctx context.Context) ([]models.Article, error)
	Create(ctx context.Context, in *models.ArticleInput) (*models.Article, error)
	Update(ctx context.Context, id int64, in *models.ArticleInput) (*models.Article, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int, error)
}

// CategoryRepository defines the relational category operations.
type CategoryRepository interface {
	FindAll(ctx context.Context) ([]models.Category, error)
	FindBySlug(ctx context.Context, slug string) (*models.Category, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, c *models.Category) error
	Count(ctx context.Context) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Article  ArticleRepository
	Category CategoryRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Article:  NewArticleRepo(db),
		Category: NewCategoryRepo(db),
	}
}
