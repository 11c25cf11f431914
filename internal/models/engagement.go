package models

// EngagementState is the full engagement snapshot for a client: which
// articles it liked and bookmarked, plus the shared per-article counters.
type EngagementState struct {
	LikedArticles      []string       `json:"likedArticles"`
	BookmarkedArticles []string       `json:"bookmarkedArticles"`
	LikeCounts         map[string]int `json:"likeCounts"`
	ShareCounts        map[string]int `json:"shareCounts"`
}
