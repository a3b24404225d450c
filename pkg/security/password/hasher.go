// Package password implements one-way password hashing with argon2id.
//
// Hashes are stored in PHC string format
// ($argon2id$v=19$m=...,t=...,p=...$<salt>$<digest>), so every hash carries
// the parameters it was created with. Verification reads them back out of the
// stored value, which lets the work factor be raised later without
// invalidating existing hashes. Unlike bcrypt, argon2id has no input-length
// ceiling, so arbitrarily long passwords are hashed in full.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/kaustubh-git5/my-mvp-startup-backend/pkg/auth"
)

// Params controls the argon2id work factor for newly created hashes.
type Params struct {
	Time    uint32 // iterations
	Memory  uint32 // KiB
	Threads uint8
	SaltLen uint32
	KeyLen  uint32
}

// DefaultParams follows the OWASP argon2id recommendation.
var DefaultParams = Params{
	Time:    1,
	Memory:  64 * 1024,
	Threads: 4,
	SaltLen: 16,
	KeyLen:  32,
}

// ErrInvalidHash reports a stored hash that cannot be parsed; distinct from a
// plain mismatch, which Verify reports as (false, nil).
var ErrInvalidHash = errors.New("invalid password hash")

// Hasher implements auth.PasswordHasher using argon2id.
type Hasher struct {
	params Params
}

// NewHasher creates a Hasher with DefaultParams.
func NewHasher() *Hasher {
	return &Hasher{params: DefaultParams}
}

// NewHasherWithParams creates a Hasher with a custom work factor.
func NewHasherWithParams(p Params) *Hasher {
	return &Hasher{params: p}
}

// Hash produces a salted argon2id hash of the password in PHC format.
// An empty password is a validation error, never hashed.
func (h *Hasher) Hash(pw string) (string, error) {
	if pw == "" {
		return "", fmt.Errorf("%w: password is required", auth.ErrValidation)
	}

	salt := make([]byte, h.params.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	digest := argon2.IDKey([]byte(pw), salt, h.params.Time, h.params.Memory, h.params.Threads, h.params.KeyLen)

	encoded := fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.Memory,
		h.params.Time,
		h.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(digest),
	)
	return encoded, nil
}

// Verify reports whether pw matches the stored hash, recomputing the digest
// with the parameters embedded in the hash itself.
func (h *Hasher) Verify(pw, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 {
		return false, fmt.Errorf("%w: unexpected format", ErrInvalidHash)
	}
	if parts[1] != "argon2id" {
		return false, fmt.Errorf("%w: unsupported algorithm %q", ErrInvalidHash, parts[1])
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, fmt.Errorf("%w: bad version segment", ErrInvalidHash)
	}
	if version != argon2.Version {
		return false, fmt.Errorf("%w: unsupported version %d", ErrInvalidHash, version)
	}

	var memory, time uint32
	var threads uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return false, fmt.Errorf("%w: bad parameter segment", ErrInvalidHash)
	}
	// The parameters come from the stored row; bound them before handing them
	// to argon2.IDKey, which panics on time < 1 and allocates memory KiB.
	if time == 0 {
		return false, fmt.Errorf("%w: iteration count must be positive", ErrInvalidHash)
	}
	if threads == 0 || threads > 255 {
		return false, fmt.Errorf("%w: parallelism %d out of range", ErrInvalidHash, threads)
	}
	if memory < 8*threads || memory > 4*1024*1024 {
		return false, fmt.Errorf("%w: memory size %d out of range", ErrInvalidHash, memory)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("%w: bad salt encoding", ErrInvalidHash)
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, fmt.Errorf("%w: bad digest encoding", ErrInvalidHash)
	}
	if len(want) == 0 {
		return false, fmt.Errorf("%w: empty digest", ErrInvalidHash)
	}

	got := argon2.IDKey([]byte(pw), salt, time, memory, uint8(threads), uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
