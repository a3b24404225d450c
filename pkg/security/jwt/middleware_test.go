package jwt_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaustubh-git5/my-mvp-startup-backend/pkg/auth"
	"github.com/kaustubh-git5/my-mvp-startup-backend/pkg/logging"
	"github.com/kaustubh-git5/my-mvp-startup-backend/pkg/repository/memory"
	securityjwt "github.com/kaustubh-git5/my-mvp-startup-backend/pkg/security/jwt"
)

func newProtectedApp(t *testing.T) (*fiber.App, *memory.UserRepository, *securityjwt.Generator) {
	t.Helper()

	repo := memory.NewUserRepository()
	gen := securityjwt.NewGenerator(testSecret, "test", time.Hour)
	mw := securityjwt.NewAuthMiddleware(gen, repo, logging.NewNop())

	app := fiber.New()
	app.Get("/protected", mw, func(c *fiber.Ctx) error {
		user, ok := securityjwt.UserFromContext(c)
		require.True(t, ok)
		return c.JSON(fiber.Map{"username": user.Username})
	})
	return app, repo, gen
}

func registerUser(t *testing.T, repo *memory.UserRepository) auth.User {
	t.Helper()
	user := auth.User{ID: uuid.New(), Username: "alice", Email: "alice@x.com", PasswordHash: "irrelevant"}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func protectedRequest(t *testing.T, app *fiber.App, authorization string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		app, _, _ := newProtectedApp(t)
		resp := protectedRequest(t, app, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), "Missing authorization header")
	})

	t.Run("accepts Bearer-prefixed token", func(t *testing.T) {
		app, repo, gen := newProtectedApp(t)
		user := registerUser(t, repo)
		token, err := gen.Issue(context.Background(), user)
		require.NoError(t, err)

		resp := protectedRequest(t, app, "Bearer "+token)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), "alice")
	})

	t.Run("accepts bare token without prefix", func(t *testing.T) {
		app, repo, gen := newProtectedApp(t)
		user := registerUser(t, repo)
		token, err := gen.Issue(context.Background(), user)
		require.NoError(t, err)

		resp := protectedRequest(t, app, token)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("rejects invalid token", func(t *testing.T) {
		app, _, _ := newProtectedApp(t)
		resp := protectedRequest(t, app, "Bearer not-a-token")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), "Invalid token")
	})

	t.Run("rejects token signed with another secret", func(t *testing.T) {
		app, repo, _ := newProtectedApp(t)
		user := registerUser(t, repo)
		other := securityjwt.NewGenerator("other-secret", "test", time.Hour)
		token, err := other.Issue(context.Background(), user)
		require.NoError(t, err)

		resp := protectedRequest(t, app, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("rejects token whose subject was deleted", func(t *testing.T) {
		app, repo, gen := newProtectedApp(t)
		user := registerUser(t, repo)
		token, err := gen.Issue(context.Background(), user)
		require.NoError(t, err)

		repo.Delete(context.Background(), user.ID)

		resp := protectedRequest(t, app, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), "User not found")
	})

	t.Run("rejects token for a subject that never existed", func(t *testing.T) {
		app, _, gen := newProtectedApp(t)
		token, err := gen.Issue(context.Background(), auth.User{ID: uuid.New()})
		require.NoError(t, err)

		resp := protectedRequest(t, app, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
