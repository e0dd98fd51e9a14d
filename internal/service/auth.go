// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tripforge/tripforge/internal/auth"
	"github.com/tripforge/tripforge/internal/metrics"
	"github.com/tripforge/tripforge/internal/model"
	"github.com/tripforge/tripforge/internal/store"
)

// Auth service errors.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// CredentialHasher abstracts the password hashing scheme so it is explicit
// and injectable at every call site.
type CredentialHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, credential string) (bool, error)
}

// Argon2Hasher is the production CredentialHasher.
type Argon2Hasher struct{}

func (Argon2Hasher) Hash(plaintext string) (string, error) {
	return auth.HashPassword(plaintext)
}

func (Argon2Hasher) Verify(plaintext, credential string) (bool, error) {
	return auth.VerifyPassword(plaintext, credential)
}

// AuthService handles registration and login.
type AuthService struct {
	users       store.UserStore
	hasher      CredentialHasher
	tokens      *auth.TokenCodec
	adminEmails map[string]bool
	metrics     metrics.Recorder
}

// NewAuthService creates an AuthService.
// adminEmails are accounts granted the admin flag at registration.
func NewAuthService(users store.UserStore, hasher CredentialHasher, tokens *auth.TokenCodec, adminEmails []string, recorder metrics.Recorder) *AuthService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	admins := make(map[string]bool, len(adminEmails))
	for _, e := range adminEmails {
		admins[strings.ToLower(e)] = true
	}
	return &AuthService{
		users:       users,
		hasher:      hasher,
		tokens:      tokens,
		adminEmails: admins,
		metrics:     recorder,
	}
}

// RegisterInput defines input for registration.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Contact  string
}

// AuthResult is the outcome of a successful register or login.
type AuthResult struct {
	User  *model.User
	Token string
}

// Register creates a user account and issues a token.
// Registering an already-used email returns ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           newID(),
		Name:         input.Name,
		Email:        email,
		PasswordHash: hash,
		Contact:      input.Contact,
		IsAdmin:      s.adminEmails[email],
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Sign(user.ID)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	s.metrics.IncUserRegistered()

	return &AuthResult{User: user, Token: token}, nil
}

// Login verifies credentials and issues a token.
// An unknown email and a wrong password both return ErrInvalidCredentials:
// login failures never reveal whether the account exists.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.metrics.IncLogin("failure")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	match, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil || !match {
		s.metrics.IncLogin("failure")
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Sign(user.ID)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	s.metrics.IncLogin("success")

	return &AuthResult{User: user, Token: token}, nil
}
