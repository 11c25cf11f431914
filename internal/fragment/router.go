// Package fragment resolves URL fragments into page selections. The
// fragment is the client's only routing signal and is never sent to a
// server; this package exists so the route grammar lives in one place and
// its ordering invariants are testable.
package fragment

import (
	"strings"

	"github.com/magazine-platform/internal/models"
)

// PageKind identifies which page a fragment selects.
type PageKind string

const (
	PageLanding  PageKind = "landing"
	PageArticle  PageKind = "article"
	PageAuthor   PageKind = "author"
	PagePremium  PageKind = "premium"
	PageAdmin    PageKind = "admin"
	PageCategory PageKind = "category"
)

// Page is the result of resolving a fragment. Exactly one of the
// parameter fields is set, depending on Kind.
type Page struct {
	Kind         PageKind
	ArticleID    string
	AuthorSlug   string
	CategorySlug string
}

// Router maps fragments to pages. Matching is order-sensitive and
// first-match-wins; in particular the admin check runs before category
// lookup, so a category whose slug is "admin" can never shadow the admin
// page. That ordering is an invariant, not an accident.
type Router struct {
	categorySlugs map[string]struct{}
}

// NewRouter builds a router over the given category table.
func NewRouter(categories []models.Category) *Router {
	slugs := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		slugs[c.Slug] = struct{}{}
	}
	return &Router{categorySlugs: slugs}
}

// Resolve maps a fragment to a page. Malformed or unknown fragments never
// error; they fall through to the landing page. An empty id segment (e.g.
// "#/article/") yields an empty ArticleID, which downstream lookup treats
// as not found.
func (r *Router) Resolve(fragment string) Page {
	hash := strings.TrimSpace(fragment)
	normalized := strings.ToLower(hash)

	// Article detail: id is everything after the second slash.
	if strings.HasPrefix(hash, "#/article/") {
		return Page{Kind: PageArticle, ArticleID: segment(hash, 2)}
	}

	// Author detail.
	if strings.HasPrefix(hash, "#/author/") {
		return Page{Kind: PageAuthor, AuthorSlug: segment(hash, 2)}
	}

	// Premium: two accepted spellings, case-insensitive.
	if normalized == "#/premium" || normalized == "#premium" {
		return Page{Kind: PagePremium}
	}

	// Admin: four accepted literal variants, checked before categories.
	if hash == "#/admin" || hash == "#admin" ||
		normalized == "#/admin" || normalized == "#admin" {
		return Page{Kind: PageAdmin}
	}

	// Category: strip the leading "#" and the first "/" only, then exact
	// match against the category table.
	slug := strings.Replace(strings.Replace(hash, "#", "", 1), "/", "", 1)
	if _, ok := r.categorySlugs[slug]; ok {
		return Page{Kind: PageCategory, CategorySlug: slug}
	}

	return Page{Kind: PageLanding}
}

// segment returns the nth slash-separated segment of the fragment, or ""
// when absent.
func segment(hash string, n int) string {
	parts := strings.Split(hash, "/")
	if n >= len(parts) {
		return ""
	}
	return parts[n]
}
