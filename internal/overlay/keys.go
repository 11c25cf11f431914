package overlay

import "fmt"

// Well-known overlay keys. The namespace is flat and string-keyed; there
// is no transactional grouping across keys, so multi-key updates (create
// article + tag owner) are not atomic.
const (
	KeyAdminArticles  = "adminArticles"
	KeyLikeCounts     = "articleLikeCounts"
	KeyShareCounts    = "articleShareCounts"
	KeyLikedArticles  = "likedArticles"
	KeyBookmarked     = "bookmarkedArticles"
	KeyAdminUsers     = "adminUsers"
	KeyAdminPasswords = "adminPasswords"
	KeyCancellations  = "subscriptionCancellations"
)

// CommentsKey returns the per-article comment list key.
func CommentsKey(articleID string) string {
	return fmt.Sprintf("comments-%s", articleID)
}

// OwnerKey returns the per-article ownership tag key. Bundled articles
// never have one, which is how they are told apart from overlay articles.
func OwnerKey(articleID string) string {
	return fmt.Sprintf("article-%s-user", articleID)
}
