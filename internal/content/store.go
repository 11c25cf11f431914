package content

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/magazine-platform/internal/models"
	"github.com/rs/zerolog"
)

// Store holds the static content bundle. It is loaded once at startup and
// never mutated afterwards; every accessor returns copies so callers cannot
// reach the underlying slices.
type Store struct {
	bundle models.ContentBundle
	log    zerolog.Logger
}

// Load reads the bundle JSON from disk.
func Load(path string, log zerolog.Logger) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content bundle: %w", err)
	}

	var bundle models.ContentBundle
	if err := json.Unmarshal(raw, &bundle); err != nil {
		return nil, fmt.Errorf("failed to parse content bundle: %w", err)
	}

	s := &Store{
		bundle: bundle,
		log:    log.With().Str("component", "content").Logger(),
	}

	s.log.Info().
		Str("path", path).
		Int("articles", len(bundle.Articles)).
		Int("categories", len(bundle.Categories)).
		Int("authors", len(bundle.Authors)).
		Msg("Content bundle loaded")

	return s, nil
}

// NewStore wraps an in-memory bundle. Used by tests and by callers that
// already hold the parsed bundle.
func NewStore(bundle models.ContentBundle) *Store {
	return &Store{bundle: bundle, log: zerolog.Nop()}
}

// Site returns the masthead copy.
func (s *Store) Site() models.SiteContent {
	return s.bundle.Site
}

// Articles returns the bundled articles in bundle order.
func (s *Store) Articles() []models.Article {
	out := make([]models.Article, len(s.bundle.Articles))
	copy(out, s.bundle.Articles)
	return out
}

// Categories returns the bundled categories.
func (s *Store) Categories() []models.Category {
	out := make([]models.Category, len(s.bundle.Categories))
	copy(out, s.bundle.Categories)
	return out
}

// Authors returns the bundled authors.
func (s *Store) Authors() []models.Author {
	out := make([]models.Author, len(s.bundle.Authors))
	copy(out, s.bundle.Authors)
	return out
}

// AuthorByName looks up an author by display name, case-insensitively.
// A miss is not an error: articles reference authors by name with no
// referential integrity, so callers fall back to a placeholder.
func (s *Store) AuthorByName(name string) (models.Author, bool) {
	for _, a := range s.bundle.Authors {
		if strings.EqualFold(a.Name, name) {
			return a, true
		}
	}
	return models.Author{}, false
}

// AuthorBySlug looks up an author by slug.
func (s *Store) AuthorBySlug(slug string) (models.Author, bool) {
	for _, a := range s.bundle.Authors {
		if a.Slug == slug {
			return a, true
		}
	}
	return models.Author{}, false
}

// AuthorSlug derives a URL slug from an author display name: lowercase,
// spaces to hyphens, dots stripped. Used for authors that only exist as a
// name on an article.
func AuthorSlug(name string) string {
	slug := strings.ToLower(name)
	slug = strings.Join(strings.Fields(slug), "-")
	return strings.ReplaceAll(slug, ".", "")
}
