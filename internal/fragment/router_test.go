package fragment

import (
	"testing"

	"github.com/magazine-platform/internal/models"
)

func testRouter() *Router {
	return NewRouter([]models.Category{
		{Name: "Win Tickets", Slug: "win"},
		{Name: "Toronto", Slug: "toronto"},
		{Name: "Food & Drink", Slug: "food-drink"},
	})
}

func TestResolve(t *testing.T) {
	router := testRouter()

	tests := []struct {
		name     string
		fragment string
		want     Page
	}{
		{
			name:     "empty fragment falls back to landing",
			fragment: "",
			want:     Page{Kind: PageLanding},
		},
		{
			name:     "bare hash falls back to landing",
			fragment: "#",
			want:     Page{Kind: PageLanding},
		},
		{
			name:     "article with id",
			fragment: "#/article/3",
			want:     Page{Kind: PageArticle, ArticleID: "3"},
		},
		{
			name:     "article with timestamp id",
			fragment: "#/article/1718200000000",
			want:     Page{Kind: PageArticle, ArticleID: "1718200000000"},
		},
		{
			name:     "article with empty id segment",
			fragment: "#/article/",
			want:     Page{Kind: PageArticle, ArticleID: ""},
		},
		{
			name:     "author detail",
			fragment: "#/author/mara-delacroix",
			want:     Page{Kind: PageAuthor, AuthorSlug: "mara-delacroix"},
		},
		{
			name:     "premium with slash",
			fragment: "#/premium",
			want:     Page{Kind: PagePremium},
		},
		{
			name:     "premium without slash",
			fragment: "#premium",
			want:     Page{Kind: PagePremium},
		},
		{
			name:     "premium uppercase",
			fragment: "#/PREMIUM",
			want:     Page{Kind: PagePremium},
		},
		{
			name:     "admin with slash",
			fragment: "#/admin",
			want:     Page{Kind: PageAdmin},
		},
		{
			name:     "admin without slash",
			fragment: "#admin",
			want:     Page{Kind: PageAdmin},
		},
		{
			name:     "admin mixed case",
			fragment: "#/Admin",
			want:     Page{Kind: PageAdmin},
		},
		{
			name:     "known category with slash",
			fragment: "#/toronto",
			want:     Page{Kind: PageCategory, CategorySlug: "toronto"},
		},
		{
			name:     "known category without slash",
			fragment: "#win",
			want:     Page{Kind: PageCategory, CategorySlug: "win"},
		},
		{
			name:     "hyphenated category slug",
			fragment: "#/food-drink",
			want:     Page{Kind: PageCategory, CategorySlug: "food-drink"},
		},
		{
			name:     "unknown slug falls back to landing",
			fragment: "#/gardening",
			want:     Page{Kind: PageLanding},
		},
		{
			name:     "category match is case-sensitive",
			fragment: "#/Toronto",
			want:     Page{Kind: PageLanding},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := router.Resolve(tt.fragment)
			if got != tt.want {
				t.Errorf("Resolve(%q) = %+v, want %+v", tt.fragment, got, tt.want)
			}
		})
	}
}

// A category whose slug is literally "admin" must never shadow the admin
// page: the admin check runs first.
func TestResolveAdminBeatsCategorySlug(t *testing.T) {
	router := NewRouter([]models.Category{
		{Name: "Admin Stories", Slug: "admin"},
	})

	got := router.Resolve("#/admin")
	if got.Kind != PageAdmin {
		t.Errorf("Resolve(#/admin) = %+v, want admin page", got)
	}

	got = router.Resolve("#admin")
	if got.Kind != PageAdmin {
		t.Errorf("Resolve(#admin) = %+v, want admin page", got)
	}
}

// Only the first "/" is stripped during category lookup: "#/food/drink"
// reads as "food/drink", which matches nothing.
func TestResolveCategoryStripsFirstSlashOnly(t *testing.T) {
	router := testRouter()

	got := router.Resolve("#/food/drink")
	if got.Kind != PageLanding {
		t.Errorf("Resolve(#/food/drink) = %+v, want landing", got)
	}
}

func TestSegment(t *testing.T) {
	tests := []struct {
		hash string
		n    int
		want string
	}{
		{"#/article/42", 2, "42"},
		{"#/article/42/extra", 2, "42"},
		{"#/article/", 2, ""},
		{"#/article", 2, ""},
		{"", 2, ""},
	}

	for _, tt := range tests {
		if got := segment(tt.hash, tt.n); got != tt.want {
			t.Errorf("segment(%q, %d) = %q, want %q", tt.hash, tt.n, got, tt.want)
		}
	}
}
