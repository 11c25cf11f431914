package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/magazine-platform/internal/models"
	"github.com/rs/zerolog"
)

const bundleJSON = `{
	"site": {"name": "Palate", "tagline": "Taste the city"},
	"categories": [
		{"name": "Toronto", "slug": "toronto"},
		{"name": "Food & Drink", "slug": "food-drink"}
	],
	"articles": [
		{"id": "1", "title": "Night Market Returns", "author": "Mara Delacroix", "category": "Toronto", "readTime": "4 min read", "trending": true}
	],
	"authors": [
		{"id": "a1", "name": "Mara Delacroix", "slug": "mara-delacroix"}
	]
}`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.json")
	if err := os.WriteFile(path, []byte(bundleJSON), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	s, err := Load(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if s.Site().Name != "Palate" {
		t.Errorf("Site().Name = %q", s.Site().Name)
	}
	if got := len(s.Articles()); got != 1 {
		t.Errorf("Articles() returned %d, want 1", got)
	}
	if got := len(s.Categories()); got != 2 {
		t.Errorf("Categories() returned %d, want 2", got)
	}
	if s.Articles()[0].ReadTime != "4 min read" {
		t.Errorf("readTime field not decoded: %+v", s.Articles()[0])
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json"), zerolog.Nop()); err == nil {
		t.Error("Load on missing file should fail")
	}
}

func TestLoadMalformedBundle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := Load(path, zerolog.Nop()); err == nil {
		t.Error("Load on malformed bundle should fail")
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := NewStore(models.ContentBundle{
		Articles: []models.Article{{ID: "1", Title: "Original"}},
	})

	got := s.Articles()
	got[0].Title = "Mutated"

	if s.Articles()[0].Title != "Original" {
		t.Error("Articles() exposed the underlying slice")
	}
}

func TestAuthorLookups(t *testing.T) {
	s := NewStore(models.ContentBundle{
		Authors: []models.Author{
			{ID: "a1", Name: "Mara Delacroix", Slug: "mara-delacroix"},
		},
	})

	if _, ok := s.AuthorByName("mara delacroix"); !ok {
		t.Error("AuthorByName should match case-insensitively")
	}
	if _, ok := s.AuthorBySlug("mara-delacroix"); !ok {
		t.Error("AuthorBySlug missed")
	}
	if _, ok := s.AuthorBySlug("nobody"); ok {
		t.Error("AuthorBySlug false positive")
	}
}

func TestAuthorSlug(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Mara Delacroix", "mara-delacroix"},
		{"Dr. J. Smith", "dr-j-smith"},
		{"Single", "single"},
		{"  Spaced  Out  ", "spaced-out"},
	}

	for _, tt := range tests {
		if got := AuthorSlug(tt.name); got != tt.want {
			t.Errorf("AuthorSlug(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
