package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaustubh-git5/my-mvp-startup-backend/pkg/auth"
	"github.com/kaustubh-git5/my-mvp-startup-backend/pkg/repository/memory"
)

func newUser(username, email string) auth.User {
	return auth.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC(),
	}
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create and find", func(t *testing.T) {
		repo := memory.NewUserRepository()
		user := newUser("alice", "alice@x.com")
		require.NoError(t, repo.Create(ctx, user))

		byName, err := repo.FindByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, user.ID, byName.ID)

		byID, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice", byID.Username)
	})

	t.Run("enforces username and email uniqueness", func(t *testing.T) {
		repo := memory.NewUserRepository()
		require.NoError(t, repo.Create(ctx, newUser("alice", "alice@x.com")))

		err := repo.Create(ctx, newUser("alice", "other@x.com"))
		assert.ErrorIs(t, err, auth.ErrUserAlreadyExists)

		err = repo.Create(ctx, newUser("bob", "ALICE@x.com"))
		assert.ErrorIs(t, err, auth.ErrUserAlreadyExists)
	})

	t.Run("find by username or email", func(t *testing.T) {
		repo := memory.NewUserRepository()
		user := newUser("alice", "alice@x.com")
		require.NoError(t, repo.Create(ctx, user))

		got, err := repo.FindByUsernameOrEmail(ctx, "nobody", "alice@x.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)

		_, err = repo.FindByUsernameOrEmail(ctx, "nobody", "nobody@x.com")
		assert.ErrorIs(t, err, auth.ErrNotFound)
	})

	t.Run("delete removes the user", func(t *testing.T) {
		repo := memory.NewUserRepository()
		user := newUser("alice", "alice@x.com")
		require.NoError(t, repo.Create(ctx, user))

		repo.Delete(ctx, user.ID)

		_, err := repo.FindByID(ctx, user.ID)
		assert.ErrorIs(t, err, auth.ErrNotFound)
	})
}
