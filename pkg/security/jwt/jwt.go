// Package jwt implements the session-token service: issuing and verifying
// signed, time-bounded bearer tokens carrying a subject identifier.
package jwt

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kaustubh-git5/my-mvp-startup-backend/pkg/auth"
)

// Decode failure kinds. Callers may distinguish them (e.g. for logs), but the
// HTTP boundary collapses all of them into one generic 401.
var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenSignature = errors.New("token signature invalid")
	ErrTokenMalformed = errors.New("token malformed")
)

// Generator issues and decodes HS256-signed tokens. Tokens are stateless:
// validity is fully determined by the signature and expiry at decode time.
type Generator struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewGenerator builds a Generator. The secret must already be resolved and
// non-empty; config.Load refuses to start without one.
func NewGenerator(secret, issuer string, ttl time.Duration) *Generator {
	return &Generator{secret: []byte(secret), issuer: issuer, ttl: ttl, now: time.Now}
}

// WithClock overrides the time source used for issuance and expiry checks.
// Tests use it to evaluate decode at a chosen instant.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Issue creates a token whose subject is the user's id and whose expiry is
// now + ttl. No sliding expiration: the timestamp is absolute.
func (g *Generator) Issue(ctx context.Context, user auth.User) (string, error) {
	now := g.now().UTC()
	claims := jwt.RegisteredClaims{
		Issuer:    g.issuer,
		Subject:   user.ID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(g.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(g.secret)
}

// Decode verifies the token's signature and expiry and returns its subject.
// Failures map onto exactly one of ErrTokenSignature, ErrTokenExpired, or
// ErrTokenMalformed (which also covers a missing subject claim).
func (g *Generator) Decode(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return g.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}), jwt.WithTimeFunc(g.now))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", ErrTokenSignature
		default:
			return "", ErrTokenMalformed
		}
	}
	if !token.Valid {
		return "", ErrTokenSignature
	}
	if claims.Subject == "" {
		return "", ErrTokenMalformed
	}
	return claims.Subject, nil
}
