package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/magazine-platform/internal/auth"
	"github.com/magazine-platform/internal/models"
	"github.com/magazine-platform/internal/overlay"
	"github.com/rs/zerolog"
)

// authService stores admin accounts in the overlay: the user records
// under one key and a separate user-id-to-hash map under another. Emails
// compare case-insensitively, and login failures always return the same
// generic error so the response does not reveal which field was wrong.
type authService struct {
	overlay *overlay.Store
	hasher  *auth.PasswordHasher
	tokens  *auth.TokenService
	log     zerolog.Logger
	now     func() time.Time
}

func newAuthService(o *overlay.Store, hasher *auth.PasswordHasher, tokens *auth.TokenService, log zerolog.Logger) AuthService {
	return &authService{
		overlay: o,
		hasher:  hasher,
		tokens:  tokens,
		log:     log.With().Str("service", "auth").Logger(),
		now:     time.Now,
	}
}

func (s *authService) Register(ctx context.Context, in *models.RegisterInput) (*models.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	users := s.overlay.Users()
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return nil, "", ErrEmailTaken
		}
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, "", err
	}

	user := models.User{
		ID:        strconv.FormatInt(s.now().UnixMilli(), 10),
		Email:     email,
		Name:      strings.TrimSpace(in.Name),
		Role:      models.RoleAdmin,
		CreatedAt: s.now().UTC().Format(time.RFC3339),
	}

	if err := s.overlay.SaveUsers(append(users, user)); err != nil {
		return nil, "", err
	}

	passwords := s.overlay.Passwords()
	passwords[user.ID] = hash
	if err := s.overlay.SavePasswords(passwords); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, "", err
	}

	s.log.Info().Str("user_id", user.ID).Msg("registered admin user")
	return &user, token, nil
}

func (s *authService) Login(ctx context.Context, in *models.LoginInput) (*models.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	var user *models.User
	for _, u := range s.overlay.Users() {
		if strings.EqualFold(u.Email, email) {
			u := u
			user = &u
			break
		}
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	hash, ok := s.overlay.Passwords()[user.ID]
	if !ok || !s.hasher.Verify(hash, in.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, "", err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user logged in")
	return user, token, nil
}

func (s *authService) GetUser(ctx context.Context, id string) (*models.User, error) {
	for _, u := range s.overlay.Users() {
		if u.ID == id {
			u := u
			return &u, nil
		}
	}
	return nil, ErrNotFound
}
