package resolver

import (
	"strings"

	"github.com/magazine-platform/internal/content"
	"github.com/magazine-platform/internal/models"
	"github.com/magazine-platform/internal/overlay"
)

// Resolver merges the static content bundle with overlay-created articles
// into one logical collection. Static articles come first, each source
// keeps its internal order, and ids are never de-duplicated: an overlay
// article reusing a bundled id appears alongside it.
type Resolver struct {
	content *content.Store
	overlay *overlay.Store
}

// New creates a resolver over the given stores.
func New(contentStore *content.Store, overlayStore *overlay.Store) *Resolver {
	return &Resolver{content: contentStore, overlay: overlayStore}
}

// All returns static articles concatenated with overlay articles.
// Malformed overlay data reads as empty, so the static set always renders.
func (r *Resolver) All() []models.Article {
	static := r.content.Articles()
	admin := r.overlay.AdminArticles()
	out := make([]models.Article, 0, len(static)+len(admin))
	out = append(out, static...)
	out = append(out, admin...)
	return out
}

// ByID finds an article by exact string id. The empty id never matches.
func (r *Resolver) ByID(id string) (models.Article, bool) {
	for _, a := range r.All() {
		if a.ID == id {
			return a, true
		}
	}
	return models.Article{}, false
}

// ByCategory returns articles whose category matches name
// case-insensitively.
func (r *Resolver) ByCategory(name string) []models.Article {
	var out []models.Article
	for _, a := range r.All() {
		if strings.EqualFold(a.Category, name) {
			out = append(out, a)
		}
	}
	return out
}

// Trending returns articles flagged for promotional placement.
func (r *Resolver) Trending() []models.Article {
	var out []models.Article
	for _, a := range r.All() {
		if a.Trending {
			out = append(out, a)
		}
	}
	return out
}

// Search returns articles where the query appears, case-insensitively, in
// the title, excerpt, category, author, or any tag. A blank or
// whitespace-only query yields no results rather than everything.
func (r *Resolver) Search(query string) []models.Article {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var out []models.Article
	for _, a := range r.All() {
		if articleMatches(a, q) {
			out = append(out, a)
		}
	}
	return out
}

// SearchCategories returns categories whose name contains the query,
// case-insensitively. Blank queries yield no results.
func (r *Resolver) SearchCategories(query string) []models.Category {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var out []models.Category
	for _, c := range r.content.Categories() {
		if strings.Contains(strings.ToLower(c.Name), q) {
			out = append(out, c)
		}
	}
	return out
}

func articleMatches(a models.Article, q string) bool {
	if strings.Contains(strings.ToLower(a.Title), q) ||
		strings.Contains(strings.ToLower(a.Excerpt), q) ||
		strings.Contains(strings.ToLower(a.Category), q) ||
		strings.Contains(strings.ToLower(a.Author), q) {
		return true
	}
	for _, tag := range a.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
