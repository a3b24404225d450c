package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kaustubh-git5/my-mvp-startup-backend/pkg/logging"
)

// AuthUseCase describes registration/authentication behavior.
type AuthUseCase interface {
	Register(ctx context.Context, username, email, password string) (User, error)
	Login(ctx context.Context, username, password string) (LoginResult, error)
}

// LoginResult carries the issued bearer credential.
type LoginResult struct {
	AccessToken string
	TokenType   string
}

type authService struct {
	repo   UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
	log    logging.Logger
}

// NewAuthService returns the default implementation of AuthUseCase.
func NewAuthService(repo UserRepository, hasher PasswordHasher, tokens TokenIssuer, log logging.Logger) AuthUseCase {
	return &authService{repo: repo, hasher: hasher, tokens: tokens, log: log.With("component", "auth")}
}

func (s *authService) Register(ctx context.Context, username, email, password string) (User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return User{}, fmt.Errorf("%w: username is required", ErrValidation)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return User{}, fmt.Errorf("%w: invalid email address", ErrValidation)
	}
	if password == "" {
		return User{}, fmt.Errorf("%w: password is required", ErrValidation)
	}

	// Best-effort duplicate check; the store's unique constraints are the
	// real serialization point under concurrent registration.
	if _, err := s.repo.FindByUsernameOrEmail(ctx, username, email); err == nil {
		return User{}, ErrUserAlreadyExists
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return User{}, err
	}

	user := User{
		ID:           uuid.New(),
		Username:     username,
		Email:        strings.ToLower(email),
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return User{}, err
	}

	s.log.Info(ctx, "user registered", "user_id", user.ID.String(), "username", user.Username)
	return user, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (LoginResult, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// Same failure as a bad password: do not reveal whether the
			// username exists.
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, err
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		// Stored hash is unreadable. Log the corruption, fail the login.
		s.log.Error(ctx, "stored password hash is unreadable", "user_id", user.ID.String(), "error", err)
		return LoginResult{}, ErrInvalidCredentials
	}
	if !ok {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(ctx, user)
	if err != nil {
		return LoginResult{}, err
	}

	s.log.Info(ctx, "user logged in", "user_id", user.ID.String())
	return LoginResult{AccessToken: token, TokenType: "bearer"}, nil
}
