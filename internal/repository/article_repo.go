package repository

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/lib/pq"
	"github.com/magazine-platform/internal/database"
	"github.com/magazine-platform/internal/models"
)

const articleColumns = "id, title, excerpt, content, author, date, category, image, read_time, trending, tags, takeaways"

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

// FindAll retrieves all articles, newest first
func (r *articleRepo) FindAll(ctx context.Context) ([]models.Article, error) {
	query := "SELECT " + articleColumns + " FROM articles ORDER BY created_at DESC"
	return r.queryArticles(ctx, query)
}

// FindByCategory retrieves articles matching the category display name
func (r *articleRepo) FindByCategory(ctx context.Context, category string) ([]models.Article, error) {
	query := "SELECT " + articleColumns + " FROM articles WHERE LOWER(category) = LOWER($1) ORDER BY created_at DESC"
	return r.queryArticles(ctx, query, category)
}

// FindTrending retrieves articles flagged as trending
func (r *articleRepo) FindTrending(ctx context.Context) ([]models.Article, error) {
	query := "SELECT " + articleColumns + " FROM articles WHERE trending = TRUE ORDER BY created_at DESC"
	return r.queryArticles(ctx, query)
}

// FindByID retrieves a single article. Returns (nil, nil) when the row
// does not exist.
func (r *articleRepo) FindByID(ctx context.Context, id int64) (*models.Article, error) {
	query := "SELECT " + articleColumns + " FROM articles WHERE id = $1"
	row := r.db.QueryRowContext(ctx, query, id)

	article, err := scanArticle(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return article, nil
}

// Create inserts a new article and returns it with its assigned id
func (r *articleRepo) Create(ctx context.Context, in *models.ArticleInput) (*models.Article, error) {
	query := `
		INSERT INTO articles (title, excerpt, content, author, date, category, image, read_time, trending, tags, takeaways)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRowContext(ctx, query,
		in.Title, in.Excerpt, in.Content, in.Author, in.Date, in.Category,
		in.Image, in.ReadTime, in.Trending,
		pq.Array(stringsOrEmpty(in.Tags)), pq.Array(stringsOrEmpty(in.Takeaways)),
	).Scan(&id)
	if err != nil {
		return nil, err
	}

	article := in.Article(strconv.FormatInt(id, 10))
	return &article, nil
}

// Update replaces all mutable columns of an article. Returns (nil, nil)
// when the row does not exist.
func (r *articleRepo) Update(ctx context.Context, id int64, in *models.ArticleInput) (*models.Article, error) {
	query := `
		UPDATE articles
		SET title = $1, excerpt = $2, content = $3, author = $4, date = $5,
			category = $6, image = $7, read_time = $8, trending = $9,
			tags = $10, takeaways = $11
		WHERE id = $12
	`
	res, err := r.db.ExecContext(ctx, query,
		in.Title, in.Excerpt, in.Content, in.Author, in.Date, in.Category,
		in.Image, in.ReadTime, in.Trending,
		pq.Array(stringsOrEmpty(in.Tags)), pq.Array(stringsOrEmpty(in.Takeaways)),
		id,
	)
	if err != nil {
		return nil, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, nil
	}

	article := in.Article(strconv.FormatInt(id, 10))
	return &article, nil
}

// Delete removes an article, reporting whether a row was deleted
func (r *articleRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM articles WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Count returns the total number of articles
func (r *articleRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles").Scan(&count)
	return count, err
}

func (r *articleRepo) queryArticles(ctx context.Context, query string, args ...interface{}) ([]models.Article, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []models.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, *article)
	}
	return articles, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanArticle(row rowScanner) (*models.Article, error) {
	var (
		article models.Article
		id      int64
		tags    pq.StringArray
		takes   pq.StringArray
	)

	err := row.Scan(
		&id, &article.Title, &article.Excerpt, &article.Content, &article.Author,
		&article.Date, &article.Category, &article.Image, &article.ReadTime,
		&article.Trending, &tags, &takes,
	)
	if err != nil {
		return nil, err
	}

	article.ID = strconv.FormatInt(id, 10)
	article.Tags = tags
	article.Takeaways = takes
	return &article, nil
}

func stringsOrEmpty(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
