// Package client is a typed Go client for the magazine platform HTTP
// API. Each method performs exactly one request; non-2xx responses are
// surfaced as errors carrying the status and server message.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/magazine-platform/internal/models"
)

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api returned status %d: %s", e.StatusCode, e.Message)
}

// Client talks to a magazine platform server.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithToken sets the Bearer token used for auth and admin endpoints.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a Client for the given base URL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken updates the session token after a login.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody struct {
			Error string `json:"error"`
		}
		raw, _ := io.ReadAll(resp.Body)
		message := strings.TrimSpace(string(raw))
		if json.Unmarshal(raw, &errBody) == nil && errBody.Error != "" {
			message = errBody.Error
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Content fetches the combined categories-plus-articles payload.
func (c *Client) Content(ctx context.Context) (*models.ContentResponse, error) {
	var out models.ContentResponse
	if err := c.do(ctx, http.MethodGet, "/api/content", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Articles lists articles, optionally filtered by category or trending.
func (c *Client) Articles(ctx context.Context, category string, trending bool) ([]models.Article, error) {
	q := url.Values{}
	if category != "" {
		q.Set("category", category)
	}
	if trending {
		q.Set("trending", "true")
	}
	path := "/api/articles"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out struct {
		Articles []models.Article `json:"articles"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Articles, nil
}

// Article fetches a single article by id.
func (c *Client) Article(ctx context.Context, id string) (*models.Article, error) {
	var out models.Article
	if err := c.do(ctx, http.MethodGet, "/api/articles/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Categories lists all categories.
func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var out struct {
		Categories []models.Category `json:"categories"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/categories", nil, &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

// Comments lists the comments on an article.
func (c *Client) Comments(ctx context.Context, articleID string) ([]models.Comment, error) {
	var out struct {
		Comments []models.Comment `json:"comments"`
	}
	path := "/api/articles/" + url.PathEscape(articleID) + "/comments"
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Comments, nil
}

// PostComment posts a top-level comment.
func (c *Client) PostComment(ctx context.Context, articleID string, in *models.CommentInput) (*models.Comment, error) {
	var out models.Comment
	path := "/api/articles/" + url.PathEscape(articleID) + "/comments"
	if err := c.do(ctx, http.MethodPost, path, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PostReply posts a reply to a top-level comment.
func (c *Client) PostReply(ctx context.Context, articleID, commentID string, in *models.CommentInput) (*models.Comment, error) {
	var out models.Comment
	path := "/api/articles/" + url.PathEscape(articleID) + "/comments/" + url.PathEscape(commentID) + "/replies"
	if err := c.do(ctx, http.MethodPost, path, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Like likes an article and returns the new like count.
func (c *Client) Like(ctx context.Context, articleID string) (int, error) {
	var out struct {
		LikeCount int `json:"likeCount"`
	}
	path := "/api/articles/" + url.PathEscape(articleID) + "/like"
	if err := c.do(ctx, http.MethodPost, path, nil, &out); err != nil {
		return 0, err
	}
	return out.LikeCount, nil
}

// Unlike removes a like and returns the new like count.
func (c *Client) Unlike(ctx context.Context, articleID string) (int, error) {
	var out struct {
		LikeCount int `json:"likeCount"`
	}
	path := "/api/articles/" + url.PathEscape(articleID) + "/unlike"
	if err := c.do(ctx, http.MethodPost, path, nil, &out); err != nil {
		return 0, err
	}
	return out.LikeCount, nil
}

// Bookmark bookmarks an article.
func (c *Client) Bookmark(ctx context.Context, articleID string) error {
	return c.do(ctx, http.MethodPost, "/api/articles/"+url.PathEscape(articleID)+"/bookmark", nil, nil)
}

// Unbookmark removes a bookmark.
func (c *Client) Unbookmark(ctx context.Context, articleID string) error {
	return c.do(ctx, http.MethodPost, "/api/articles/"+url.PathEscape(articleID)+"/unbookmark", nil, nil)
}

// Share records a share and returns the new share count.
func (c *Client) Share(ctx context.Context, articleID string) (int, error) {
	var out struct {
		ShareCount int `json:"shareCount"`
	}
	path := "/api/articles/" + url.PathEscape(articleID) + "/share"
	if err := c.do(ctx, http.MethodPost, path, nil, &out); err != nil {
		return 0, err
	}
	return out.ShareCount, nil
}

// Engagement fetches the full engagement snapshot.
func (c *Client) Engagement(ctx context.Context) (*models.EngagementState, error) {
	var out models.EngagementState
	if err := c.do(ctx, http.MethodGet, "/api/engagement", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Session is returned by Register and Login.
type Session struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// Register creates an admin account and stores the session token on the
// client for subsequent admin calls.
func (c *Client) Register(ctx context.Context, in *models.RegisterInput) (*Session, error) {
	var out Session
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", in, &out); err != nil {
		return nil, err
	}
	c.token = out.Token
	return &out, nil
}

// Login authenticates and stores the session token on the client.
func (c *Client) Login(ctx context.Context, in *models.LoginInput) (*Session, error) {
	var out Session
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", in, &out); err != nil {
		return nil, err
	}
	c.token = out.Token
	return &out, nil
}

// Me fetches the authenticated user.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MyArticles lists the authenticated admin's articles.
func (c *Client) MyArticles(ctx context.Context) ([]models.Article, error) {
	var out struct {
		Articles []models.Article `json:"articles"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/admin/articles", nil, &out); err != nil {
		return nil, err
	}
	return out.Articles, nil
}

// CreateArticle creates an article on the public write surface. Servers
// running on bundled content reject this with an APIError (405).
func (c *Client) CreateArticle(ctx context.Context, in *models.ArticleInput) (*models.Article, error) {
	var out models.Article
	if err := c.do(ctx, http.MethodPost, "/api/articles", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateArticle updates an article on the public write surface.
func (c *Client) UpdateArticle(ctx context.Context, id string, in *models.ArticleInput) (*models.Article, error) {
	var out models.Article
	if err := c.do(ctx, http.MethodPut, "/api/articles/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteArticle deletes an article on the public write surface.
func (c *Client) DeleteArticle(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/articles/"+url.PathEscape(id), nil, nil)
}

// AdminCreateArticle creates an overlay article owned by the
// authenticated admin.
func (c *Client) AdminCreateArticle(ctx context.Context, in *models.ArticleInput) (*models.Article, error) {
	var out models.Article
	if err := c.do(ctx, http.MethodPost, "/api/admin/articles", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminUpdateArticle updates one of the authenticated admin's articles.
func (c *Client) AdminUpdateArticle(ctx context.Context, id string, in *models.ArticleInput) (*models.Article, error) {
	var out models.Article
	if err := c.do(ctx, http.MethodPut, "/api/admin/articles/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminDeleteArticle deletes one of the authenticated admin's articles
// along with its comments and engagement counters.
func (c *Client) AdminDeleteArticle(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/admin/articles/"+url.PathEscape(id), nil, nil)
}

// AdminDeleteComment removes a comment from an article. Pass parentID
// to delete a single reply under that comment; leave it empty to delete
// a top-level comment along with its replies.
func (c *Client) AdminDeleteComment(ctx context.Context, articleID, commentID, parentID string) error {
	path := "/api/admin/articles/" + url.PathEscape(articleID) + "/comments/" + url.PathEscape(commentID)
	if parentID != "" {
		path += "?parent_id=" + url.QueryEscape(parentID)
	}
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// ArticleStats fetches engagement stats for an article.
func (c *Client) ArticleStats(ctx context.Context, id string) (*models.ArticleStats, error) {
	var out models.ArticleStats
	if err := c.do(ctx, http.MethodGet, "/api/admin/articles/"+url.PathEscape(id)+"/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelSubscription records a premium cancellation reason.
func (c *Client) CancelSubscription(ctx context.Context, reason string) (*models.Cancellation, error) {
	var out models.Cancellation
	in := models.CancellationInput{Reason: reason}
	if err := c.do(ctx, http.MethodPost, "/api/subscription/cancellations", &in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
