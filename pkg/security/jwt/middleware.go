package jwt

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/kaustubh-git5/my-mvp-startup-backend/pkg/auth"
	"github.com/kaustubh-git5/my-mvp-startup-backend/pkg/logging"
)

// ContextUserKey is the fiber.Ctx locals key holding the resolved auth.User.
const ContextUserKey = "currentUser"

// UserFromContext returns the identity attached by the auth middleware.
func UserFromContext(c *fiber.Ctx) (auth.User, bool) {
	user, ok := c.Locals(ContextUserKey).(auth.User)
	return user, ok
}

// NewAuthMiddleware returns a Fiber middleware that resolves the caller's
// identity from the Authorization header: extract token, decode, look the
// subject up in the user store, attach the user to the request context.
//
// A "Bearer " prefix is stripped when present; a bare token is accepted as-is
// for legacy clients. Every failure is a 401; the specific decode failure is
// only logged, never returned to the client.
func NewAuthMiddleware(tokens *Generator, users auth.UserRepository, log logging.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"detail": "Missing authorization header"})
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")

		subject, err := tokens.Decode(tokenStr)
		if err != nil {
			log.Debug(c.Context(), "token rejected", "reason", err)
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"detail": "Invalid token"})
		}

		id, err := uuid.Parse(subject)
		if err != nil {
			log.Debug(c.Context(), "token subject is not a user id", "subject", subject)
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"detail": "Invalid token"})
		}

		user, err := users.FindByID(c.Context(), id)
		if err != nil {
			if errors.Is(err, auth.ErrNotFound) {
				// Subject existed at issuance but is gone now (user deleted).
				log.Debug(c.Context(), "token subject no longer exists", "user_id", id.String())
				return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"detail": "User not found"})
			}
			log.Error(c.Context(), "user lookup failed", "user_id", id.String(), "error", err)
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"detail": "internal error"})
		}

		c.Locals(ContextUserKey, user)
		return c.Next()
	}
}
