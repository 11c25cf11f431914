package overlay

import (
	"encoding/json"
	"fmt"

	"github.com/magazine-platform/internal/models"
	"github.com/rs/zerolog"
)

// Store exposes the overlay's logical entities over a KV backend. Reads
// never fail from the caller's perspective: a missing or corrupt value
// comes back as the empty default and the parse error goes to the debug
// log only. Writes propagate errors.
type Store struct {
	kv  KV
	log zerolog.Logger
}

// NewStore creates an overlay store over the given KV backend.
func NewStore(kv KV, log zerolog.Logger) *Store {
	return &Store{
		kv:  kv,
		log: log.With().Str("component", "overlay").Logger(),
	}
}

// read unmarshals the value under key into out, leaving out untouched on
// a missing key or malformed data.
func (s *Store) read(key string, out interface{}) {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		s.log.Debug().Err(err).Str("key", key).Msg("Overlay read failed, using empty value")
		return
	}
	if !ok {
		return
	}
	if err := json.Unmarshal(raw, out); err != nil {
		s.log.Debug().Err(err).Str("key", key).Msg("Corrupt overlay value, using empty value")
	}
}

// write marshals v and stores it under key.
func (s *Store) write(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode overlay value for %s: %w", key, err)
	}
	if err := s.kv.Set(key, raw); err != nil {
		return fmt.Errorf("failed to write overlay key %s: %w", key, err)
	}
	return nil
}

// AdminArticles returns the overlay-created articles in insertion order.
func (s *Store) AdminArticles() []models.Article {
	var articles []models.Article
	s.read(KeyAdminArticles, &articles)
	return articles
}

// SaveAdminArticles replaces the overlay article list wholesale.
func (s *Store) SaveAdminArticles(articles []models.Article) error {
	if articles == nil {
		articles = []models.Article{}
	}
	return s.write(KeyAdminArticles, articles)
}

// ArticleOwner returns the user id that created the given overlay article.
// Bundled articles have no owner.
func (s *Store) ArticleOwner(articleID string) (string, bool) {
	var owner string
	s.read(OwnerKey(articleID), &owner)
	return owner, owner != ""
}

// SetArticleOwner tags an overlay article with the user that created it.
func (s *Store) SetArticleOwner(articleID, userID string) error {
	return s.write(OwnerKey(articleID), userID)
}

// Comments returns the comment list for an article, replies nested one
// level under their parents.
func (s *Store) Comments(articleID string) []models.Comment {
	var comments []models.Comment
	s.read(CommentsKey(articleID), &comments)
	return comments
}

// SaveComments replaces an article's comment list wholesale.
func (s *Store) SaveComments(articleID string, comments []models.Comment) error {
	if comments == nil {
		comments = []models.Comment{}
	}
	return s.write(CommentsKey(articleID), comments)
}

// DeleteComments removes an article's comment list entirely.
func (s *Store) DeleteComments(articleID string) error {
	return s.kv.Delete(CommentsKey(articleID))
}

// LikeCounts returns the per-article like count map.
func (s *Store) LikeCounts() map[string]int {
	counts := make(map[string]int)
	s.read(KeyLikeCounts, &counts)
	return counts
}

// SaveLikeCounts replaces the like count map wholesale.
func (s *Store) SaveLikeCounts(counts map[string]int) error {
	return s.write(KeyLikeCounts, counts)
}

// ShareCounts returns the per-article share count map.
func (s *Store) ShareCounts() map[string]int {
	counts := make(map[string]int)
	s.read(KeyShareCounts, &counts)
	return counts
}

// SaveShareCounts replaces the share count map wholesale.
func (s *Store) SaveShareCounts(counts map[string]int) error {
	return s.write(KeyShareCounts, counts)
}

// LikedArticles returns the per-browser liked article id list.
func (s *Store) LikedArticles() []string {
	var ids []string
	s.read(KeyLikedArticles, &ids)
	return ids
}

// SaveLikedArticles replaces the liked list wholesale.
func (s *Store) SaveLikedArticles(ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	return s.write(KeyLikedArticles, ids)
}

// BookmarkedArticles returns the bookmarked article id list.
func (s *Store) BookmarkedArticles() []string {
	var ids []string
	s.read(KeyBookmarked, &ids)
	return ids
}

// SaveBookmarkedArticles replaces the bookmark list wholesale.
func (s *Store) SaveBookmarkedArticles(ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	return s.write(KeyBookmarked, ids)
}

// Users returns all admin accounts.
func (s *Store) Users() []models.User {
	var users []models.User
	s.read(KeyAdminUsers, &users)
	return users
}

// SaveUsers replaces the admin account list wholesale.
func (s *Store) SaveUsers(users []models.User) error {
	if users == nil {
		users = []models.User{}
	}
	return s.write(KeyAdminUsers, users)
}

// Passwords returns the user-id to password-hash map.
func (s *Store) Passwords() map[string]string {
	passwords := make(map[string]string)
	s.read(KeyAdminPasswords, &passwords)
	return passwords
}

// SavePasswords replaces the password map wholesale.
func (s *Store) SavePasswords(passwords map[string]string) error {
	return s.write(KeyAdminPasswords, passwords)
}

// Cancellations returns the subscription cancellation log.
func (s *Store) Cancellations() []models.Cancellation {
	var entries []models.Cancellation
	s.read(KeyCancellations, &entries)
	return entries
}

// SaveCancellations replaces the cancellation log wholesale.
func (s *Store) SaveCancellations(entries []models.Cancellation) error {
	if entries == nil {
		entries = []models.Cancellation{}
	}
	return s.write(KeyCancellations, entries)
}
