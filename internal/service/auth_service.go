package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/driving-records/internal/auth"
	"github.com/spec-kit/driving-records/internal/domain"
	"github.com/spec-kit/driving-records/internal/repository"
	apperrors "github.com/spec-kit/driving-records/pkg/util/errorutil"
)

// AuthResult is the outcome of a successful login.
type AuthResult struct {
	UserID    string
	Username  string
	Token     string
	ExpiresAt time.Time
}

// AuthService coordinates login and account provisioning.
type AuthService struct {
	users  repository.UserRepository
	hasher *auth.PasswordHasher
	tokens *auth.TokenManager
}

// NewAuthService builds the service.
func NewAuthService(users repository.UserRepository, hasher *auth.PasswordHasher, tokens *auth.TokenManager) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

// Authenticate checks the credentials and issues a bearer token.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*AuthResult, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("User not found")
		}
		return nil, apperrors.NewInternalError(err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, apperrors.NewUnauthorized("Unauthorised")
	}

	token, exp, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return &AuthResult{
		UserID:    user.ID,
		Username:  user.Username,
		Token:     token,
		ExpiresAt: exp,
	}, nil
}

// CreateUser provisions a login account with a hashed password.
func (s *AuthService) CreateUser(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, errors.New("username and password are required")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}
