package models

// Comment is an unmoderated visitor comment on an article. Comments nest
// exactly one level: replies never carry replies of their own.
//
// IDs are unix-millisecond timestamps as strings; Date is a display string,
// not a parseable timestamp.
type Comment struct {
	ID      string    `json:"id"`
	Author  string    `json:"author"`
	Text    string    `json:"text"`
	Date    string    `json:"date"`
	Replies []Comment `json:"replies,omitempty"`
}

// CommentWithArticle pairs a comment (or reply) with the article it belongs
// to, for the admin moderation listing.
type CommentWithArticle struct {
	ArticleID       string  `json:"articleId"`
	ArticleTitle    string  `json:"articleTitle"`
	Comment         Comment `json:"comment"`
	IsReply         bool    `json:"isReply"`
	ParentCommentID string  `json:"parentCommentId,omitempty"`
}

// CommentInput is the payload for posting a comment or a reply.
type CommentInput struct {
	Author string `json:"author"`
	Text   string `json:"text"`
}
