package mocks

import (
	"context"
	"strconv"
	"strings"

	"github.com/magazine-platform/internal/models"
	"github.com/magazine-platform/internal/repository"
)

// MockArticleRepository is a mock implementation of ArticleRepository
type MockArticleRepository struct {
	Articles    map[int64]models.Article
	NextID      int64
	FindError   error
	CreateError error
	CreateCalls int
	DeleteCalls int
}

// Verify interface compliance
var _ repository.ArticleRepository = (*MockArticleRepository)(nil)

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{
		Articles: make(map[int64]models.Article),
		NextID:   1,
	}
}

// Seed inserts an article directly, bypassing Create bookkeeping.
func (m *MockArticleRepository) Seed(a models.Article) {
	id, _ := strconv.ParseInt(a.ID, 10, 64)
	m.Articles[id] = a
	if id >= m.NextID {
		m.NextID = id + 1
	}
}

func (m *MockArticleRepository) FindAll(ctx context.Context) ([]models.Article, error) {
	if m.FindError != nil {
		return nil, m.FindError
	}
	out := make([]models.Article, 0, len(m.Articles))
	for _, a := range m.Articles {
		out = append(out, a)
	}
	return out, nil
}

func (m *MockArticleRepository) FindByID(ctx context.Context, id int64) (*models.Article, error) {
	if m.FindError != nil {
		return nil, m.FindError
	}
	a, ok := m.Articles[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (m *MockArticleRepository) FindByCategory(ctx context.Context, category string) ([]models.Article, error) {
	var out []models.Article
	for _, a := range m.Articles {
		if strings.EqualFold(a.Category, category) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *MockArticleRepository) FindTrending(ctx context.Context) ([]models.Article, error) {
	var out []models.Article
	for _, a := range m.Articles {
		if a.Trending {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *MockArticleRepository) Create(ctx context.Context, in *models.ArticleInput) (*models.Article, error) {
	m.CreateCalls++
	if m.CreateError != nil {
		return nil, m.CreateError
	}
	id := m.NextID
	m.NextID++
	article := in.Article(strconv.FormatInt(id, 10))
	m.Articles[id] = article
	return &article, nil
}

func (m *MockArticleRepository) Update(ctx context.Context, id int64, in *models.ArticleInput) (*models.Article, error) {
	if _, ok := m.Articles[id]; !ok {
		return nil, nil
	}
	article := in.Article(strconv.FormatInt(id, 10))
	m.Articles[id] = article
	return &article, nil
}

func (m *MockArticleRepository) Delete(ctx context.Context, id int64) (bool, error) {
	m.DeleteCalls++
	if _, ok := m.Articles[id]; !ok {
		return false, nil
	}
	delete(m.Articles, id)
	return true, nil
}

func (m *MockArticleRepository) Count(ctx context.Context) (int, error) {
	return len(m.Articles), nil
}

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockCategoryRepository struct {
	Categories  map[string]models.Category
	CreateError error
	CreateCalls int
}

// Verify interface compliance
var _ repository.CategoryRepository = (*MockCategoryRepository)(nil)

func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{
		Categories: make(map[string]models.Category),
	}
}

func (m *MockCategoryRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	out := make([]models.Category, 0, len(m.Categories))
	for _, c := range m.Categories {
		out = append(out, c)
	}
	return out, nil
}

func (m *MockCategoryRepository) FindBySlug(ctx context.Context, slug string) (*models.Category, error) {
	c, ok := m.Categories[slug]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (m *MockCategoryRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	_, exists := m.Categories[slug]
	return exists, nil
}

func (m *MockCategoryRepository) Create(ctx context.Context, c *models.Category) error {
	m.CreateCalls++
	if m.CreateError != nil {
		return m.CreateError
	}
	m.Categories[c.Slug] = *c
	return nil
}

func (m *MockCategoryRepository) Count(ctx context.Context) (int, error) {
	return len(m.Categories), nil
}
