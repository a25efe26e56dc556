package auth

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/meridian-pos/meridian-pos/internal/platform/httpx"
)

// Service wraps authentication business rules.
type Service struct {
	repo   Repository
	tokens *TokenManager
	now    func() time.Time
}

// NewService constructs a new Service.
func NewService(repo Repository, tokens *TokenManager) *Service {
	return &Service{repo: repo, tokens: tokens, now: func() time.Time { return time.Now().UTC() }}
}

// LoginResult carries the issued token and the authenticated profile.
type LoginResult struct {
	Token string
	User  *User
}

// Login validates credentials and issues a bearer token. Every rejection
// surfaces as the same unauthorized error so usernames cannot be enumerated.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid username or password", httpx.ErrUnauthorized)
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: invalid username or password", httpx.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: invalid username or password", httpx.ErrUnauthorized)
	}
	token, err := s.tokens.Issue(user.ID, user.Role, s.now())
	if err != nil {
		return nil, fmt.Errorf("auth: sign token: %w", err)
	}
	return &LoginResult{Token: token, User: user}, nil
}
