package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Common errors used by repository/use cases
var (
	ErrNotFound           = errors.New("not found")
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("validation error")
)

// UserRepository abstracts the user-directory store from the domain layer.
// Implementations may be in-memory, SQL, NoSQL, etc. The store enforces
// uniqueness on both username and email; Create under a race on the same
// username must not produce two rows (the store is the serialization point).
type UserRepository interface {
	Create(ctx context.Context, user User) error
	FindByUsername(ctx context.Context, username string) (User, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) (User, error)
	FindByID(ctx context.Context, id uuid.UUID) (User, error)
}
