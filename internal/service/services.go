package service

import (
	"context"
	"errors"

	"github.com/magazine-platform/internal/auth"
	"github.com/magazine-platform/internal/config"
	"github.com/magazine-platform/internal/content"
	"github.com/magazine-platform/internal/models"
	"github.com/magazine-platform/internal/overlay"
	"github.com/magazine-platform/internal/repository"
	"github.com/magazine-platform/internal/resolver"
	"github.com/rs/zerolog"
)

// Sentinel errors mapped to HTTP statuses by the handlers.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidID          = errors.New("invalid id")
	ErrReadOnlySource     = errors.New("bundled content is read-only")
	ErrBaseArticle        = errors.New("base articles cannot be deleted")
	ErrNotOwner           = errors.New("article belongs to another user")
	ErrSlugTaken          = errors.New("category slug already exists")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ArticleService serves the public article read/write surface. The bundle
// implementation reads the merged static+overlay collection and rejects
// writes; the database implementation is full CRUD over Postgres.
type ArticleService interface {
	List(ctx context.Context, category string, trending bool) ([]models.Article, error)
	Get(ctx context.Context, id string) (*models.Article, error)
	Create(ctx context.Context, in *models.ArticleInput) (*models.Article, error)
	Update(ctx context.Context, id string, in *models.ArticleInput) (*models.Article, error)
	Delete(ctx context.Context, id string) error
}

// CategoryService serves the category surface.
type CategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	Create(ctx context.Context, c *models.Category) (*models.Category, error)
}

// AdminService manages overlay-created articles on behalf of an admin
// user: ownership-tagged creation, update-in-place, cascading deletion,
// and the moderation views.
type AdminService interface {
	CreateArticle(ctx context.Context, userID string, in *models.ArticleInput) (*models.Article, error)
	UpdateArticle(ctx context.Context, userID, id string, in *models.ArticleInput) (*models.Article, error)
	DeleteArticle(ctx context.Context, userID, id string) error
	MyArticles(ctx context.Context, userID string) ([]models.Article, error)
	AllComments(ctx context.Context, userID string) ([]models.CommentWithArticle, error)
	Stats(ctx context.Context, articleID string) (*models.ArticleStats, error)
}

// CommentService manages visitor comments. Comments never require
// moderation before becoming visible.
type CommentService interface {
	List(ctx context.Context, articleID string) ([]models.Comment, error)
	Post(ctx context.Context, articleID string, in *models.CommentInput) (*models.Comment, error)
	Reply(ctx context.Context, articleID, commentID string, in *models.CommentInput) (*models.Comment, error)
	Delete(ctx context.Context, articleID, commentID, parentID string) error
}

// EngagementService manages likes, bookmarks and share counters.
type EngagementService interface {
	Like(ctx context.Context, articleID string) (int, error)
	Unlike(ctx context.Context, articleID string) (int, error)
	Bookmark(ctx context.Context, articleID string) error
	Unbookmark(ctx context.Context, articleID string) error
	Share(ctx context.Context, articleID string) (int, error)
	State(ctx context.Context) (*models.EngagementState, error)
}

// AuthService manages admin accounts and sessions.
type AuthService interface {
	Register(ctx context.Context, in *models.RegisterInput) (*models.User, string, error)
	Login(ctx context.Context, in *models.LoginInput) (*models.User, string, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
}

// SubscriptionService records premium cancellation feedback.
type SubscriptionService interface {
	RecordCancellation(ctx context.Context, in *models.CancellationInput) (*models.Cancellation, error)
	Cancellations(ctx context.Context) ([]models.Cancellation, error)
}

// Services holds all service interfaces
type Services struct {
	Article      ArticleService
	Category     CategoryService
	Admin        AdminService
	Comment      CommentService
	Engagement   EngagementService
	Auth         AuthService
	Subscription SubscriptionService
}

// Deps are the wired dependencies the services are built from. Repos is
// nil in bundle mode; Tokens is nil when JWT_SECRET is unset, which
// disables the auth and admin routes entirely.
type Deps struct {
	Config   *config.Config
	Content  *content.Store
	Overlay  *overlay.Store
	Resolver *resolver.Resolver
	Repos    *repository.Repositories
	Hasher   *auth.PasswordHasher
	Tokens   *auth.TokenService
}

// NewServices creates all services
func NewServices(deps Deps, log zerolog.Logger) *Services {
	var articleSvc ArticleService
	var categorySvc CategoryService

	if deps.Config.Content.Source == config.SourceDatabase && deps.Repos != nil {
		articleSvc = newDBArticleService(deps.Repos.Article, log)
		categorySvc = newDBCategoryService(deps.Repos.Category, log)
	} else {
		articleSvc = newBundleArticleService(deps.Resolver, log)
		categorySvc = newBundleCategoryService(deps.Content, log)
	}

	return &Services{
		Article:      articleSvc,
		Category:     categorySvc,
		Admin:        newAdminService(deps.Resolver, deps.Content, deps.Overlay, log),
		Comment:      newCommentService(deps.Resolver, deps.Overlay, log),
		Engagement:   newEngagementService(deps.Overlay, log),
		Auth:         newAuthService(deps.Overlay, deps.Hasher, deps.Tokens, log),
		Subscription: newSubscriptionService(deps.Overlay, log),
	}
}
