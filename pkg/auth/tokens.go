package auth

import "context"

// TokenIssuer abstracts bearer-credential creation (e.g., JWT).
// It allows use cases to stay framework-agnostic.
type TokenIssuer interface {
	Issue(ctx context.Context, user User) (string, error)
}

// PasswordHasher abstracts one-way password hashing.
//
// Hash must reject an empty password and must never silently truncate long
// input. Verify returns (true, nil) on match, (false, nil) on mismatch, and
// a non-nil error only when the stored hash itself is unreadable.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) (bool, error)
}
