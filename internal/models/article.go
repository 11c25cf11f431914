package models

// Article represents a single story as the magazine frontend consumes it.
// IDs are strings everywhere: bundled and relational articles carry a
// stringified integer, overlay articles a unix-millisecond timestamp.
type Article struct {
	ID        string   `json:"id" db:"id"`
	Title     string   `json:"title" db:"title"`
	Excerpt   string   `json:"excerpt" db:"excerpt"`
	Content   string   `json:"content" db:"content"`
	Author    string   `json:"author" db:"author"`
	Date      string   `json:"date" db:"date"`
	Category  string   `json:"category" db:"category"`
	Image     string   `json:"image" db:"image"`
	ReadTime  string   `json:"readTime" db:"read_time"`
	Trending  bool     `json:"trending" db:"trending"`
	Tags      []string `json:"tags,omitempty" db:"-"`
	Takeaways []string `json:"takeaways,omitempty" db:"-"`
}

// ArticleInput is the payload accepted by article create and update
// endpoints. The ID is always assigned server-side.
type ArticleInput struct {
	Title     string   `json:"title"`
	Excerpt   string   `json:"excerpt"`
	Content   string   `json:"content"`
	Author    string   `json:"author"`
	Date      string   `json:"date"`
	Category  string   `json:"category"`
	Image     string   `json:"image"`
	ReadTime  string   `json:"readTime"`
	Trending  bool     `json:"trending"`
	Tags      []string `json:"tags"`
	Takeaways []string `json:"takeaways"`
}

// Article builds an Article from the input with the given id.
func (in *ArticleInput) Article(id string) Article {
	return Article{
		ID:        id,
		Title:     in.Title,
		Excerpt:   in.Excerpt,
		Content:   in.Content,
		Author:    in.Author,
		Date:      in.Date,
		Category:  in.Category,
		Image:     in.Image,
		ReadTime:  in.ReadTime,
		Trending:  in.Trending,
		Tags:      in.Tags,
		Takeaways: in.Takeaways,
	}
}

// ArticleStats aggregates per-article engagement numbers for the admin view.
// The comment count includes replies.
type ArticleStats struct {
	ArticleID    string `json:"articleId"`
	LikeCount    int    `json:"likeCount"`
	CommentCount int    `json:"commentCount"`
	ShareCount   int    `json:"shareCount"`
}
