package benchmark

import (
	"fmt"
	"testing"

	"github.com/magazine-platform/internal/content"
	"github.com/magazine-platform/internal/fragment"
	"github.com/magazine-platform/internal/models"
	"github.com/magazine-platform/internal/overlay"
	"github.com/magazine-platform/internal/resolver"
	"github.com/rs/zerolog"
)

func buildResolver(articleCount int) *resolver.Resolver {
	categories := []string{"Toronto", "Food & Drink", "Concerts", "Sports", "Win Tickets"}

	articles := make([]models.Article, articleCount)
	for i := range articles {
		articles[i] = models.Article{
			ID:       fmt.Sprintf("%d", i+1),
			Title:    fmt.Sprintf("Story %d about the city", i+1),
			Excerpt:  "A short teaser for the story",
			Author:   fmt.Sprintf("Author %d", i%20),
			Category: categories[i%len(categories)],
			Trending: i%7 == 0,
			Tags:     []string{"city", fmt.Sprintf("tag-%d", i%50)},
		}
	}

	store := content.NewStore(models.ContentBundle{Articles: articles})
	return resolver.New(store, overlay.NewStore(overlay.NewMemoryKV(), zerolog.Nop()))
}

// BenchmarkSearch measures substring search over the merged collection.
func BenchmarkSearch(b *testing.B) {
	r := buildResolver(1000)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		r.Search("city")
	}

	b.ReportMetric(float64(1000*b.N)/b.Elapsed().Seconds(), "articles/sec")
}

// BenchmarkSearchMiss measures the worst case: every article scanned,
// nothing matches.
func BenchmarkSearchMiss(b *testing.B) {
	r := buildResolver(1000)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		r.Search("zzzznothing")
	}
}

// BenchmarkByCategory measures the category filter path used by every
// category page render.
func BenchmarkByCategory(b *testing.B) {
	r := buildResolver(1000)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		r.ByCategory("Toronto")
	}
}

// BenchmarkFragmentResolve measures hash routing, which runs on every
// navigation.
func BenchmarkFragmentResolve(b *testing.B) {
	router := fragment.NewRouter([]models.Category{
		{Name: "Toronto", Slug: "toronto"},
		{Name: "Food & Drink", Slug: "food-drink"},
		{Name: "Concerts", Slug: "concerts"},
	})

	fragments := []string{
		"#/article/42",
		"#/toronto",
		"#/admin",
		"#/author/mara-delacroix",
		"#/unknown",
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		router.Resolve(fragments[i%len(fragments)])
	}
}
