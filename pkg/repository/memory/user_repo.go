// Package memory provides an in-memory auth.UserRepository. It backs unit
// tests and can serve local development without a database.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/kaustubh-git5/my-mvp-startup-backend/pkg/auth"
)

// UserRepository is a mutex-guarded map of users keyed by id.
type UserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]auth.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[uuid.UUID]auth.User)}
}

func (r *UserRepository) Create(_ context.Context, user auth.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username || strings.EqualFold(u.Email, user.Email) {
			return auth.ErrUserAlreadyExists
		}
	}
	user.Email = strings.ToLower(user.Email)
	r.users[user.ID] = user
	return nil
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (auth.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return auth.User{}, auth.ErrNotFound
}

func (r *UserRepository) FindByUsernameOrEmail(_ context.Context, username, email string) (auth.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username || strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return auth.User{}, auth.ErrNotFound
}

func (r *UserRepository) FindByID(_ context.Context, id uuid.UUID) (auth.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return auth.User{}, auth.ErrNotFound
	}
	return u, nil
}

// Delete removes a user. Not part of auth.UserRepository; tests use it to
// simulate an account deleted after a token was issued.
func (r *UserRepository) Delete(_ context.Context, id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
}
