package main

import (
	"context"
	"time"

	"github.com/lib/pq"
	"github.com/magazine-platform/internal/config"
	"github.com/magazine-platform/internal/content"
	"github.com/magazine-platform/internal/database"
	"github.com/magazine-platform/pkg/logger"
)

// seed loads the static content bundle into Postgres so the server can
// run in database mode with the same starting collection as bundle
// mode. Re-running is safe: rows that already exist are skipped.
func main() {
	log := logger.New()
	log.Info().Msg("Seeding database from content bundle...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	store, err := content.Load(cfg.Content.BundlePath, log)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Content.BundlePath).Msg("Failed to load content bundle")
	}

	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	if err := db.RunMigrations(cfg.Database.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	categoriesInserted := 0
	for _, c := range store.Categories() {
		res, err := db.ExecContext(ctx,
			`INSERT INTO categories (name, slug) VALUES ($1, $2)
			 ON CONFLICT (slug) DO NOTHING`,
			c.Name, c.Slug,
		)
		if err != nil {
			log.Fatal().Err(err).Str("slug", c.Slug).Msg("Failed to insert category")
		}
		if n, _ := res.RowsAffected(); n > 0 {
			categoriesInserted++
		}
	}

	articlesInserted := 0
	for _, a := range store.Articles() {
		res, err := db.ExecContext(ctx,
			`INSERT INTO articles (title, excerpt, content, author, date, category, image, read_time, trending, tags, takeaways)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			 ON CONFLICT ON CONSTRAINT articles_natural_key DO NOTHING`,
			a.Title, a.Excerpt, a.Content, a.Author, a.Date, a.Category,
			a.Image, a.ReadTime, a.Trending,
			pq.Array(a.Tags), pq.Array(a.Takeaways),
		)
		if err != nil {
			log.Fatal().Err(err).Str("title", a.Title).Msg("Failed to insert article")
		}
		if n, _ := res.RowsAffected(); n > 0 {
			articlesInserted++
		}
	}

	log.Info().
		Int("categories", categoriesInserted).
		Int("articles", articlesInserted).
		Msg("Seed completed")
}
