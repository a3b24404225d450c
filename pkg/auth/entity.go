package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is a domain entity representing a registered account.
// PasswordHash is the only credential ever stored; the plaintext password
// never leaves the registration/login request path.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
