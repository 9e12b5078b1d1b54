package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"navigation-api/internal/entities"
	apperrors "navigation-api/pkg/errors"
)

func TestUserService_GetUserByID(t *testing.T) {
	ctx := context.Background()
	alice := entities.User{ID: 1, Name: "Alice", AllowedRoutes: []int64{1, 2, 3}, CostLimit: 4}

	t.Run("returns user by id", func(t *testing.T) {
		repo := &fakeUserRepo{users: []entities.User{alice}}
		svc := NewUserService(repo, zap.NewNop())

		user, err := svc.GetUserByID(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, alice, *user)
		assert.Equal(t, int64(1), repo.requestedID)
	})

	t.Run("missing user returns nil without error", func(t *testing.T) {
		svc := NewUserService(&fakeUserRepo{users: []entities.User{alice}}, zap.NewNop())

		user, err := svc.GetUserByID(ctx, 2)

		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("rejects non-positive ids before hitting the store", func(t *testing.T) {
		for _, id := range []int64{0, -1} {
			repo := &fakeUserRepo{users: []entities.User{alice}}
			svc := NewUserService(repo, zap.NewNop())

			user, err := svc.GetUserByID(ctx, id)

			assert.ErrorIs(t, err, apperrors.ErrInvalidUserID)
			assert.Nil(t, user)
			assert.Zero(t, repo.requestedID)
		}
	})

	t.Run("wraps repository errors", func(t *testing.T) {
		dbErr := errors.New("Service error")
		svc := NewUserService(&fakeUserRepo{err: dbErr}, zap.NewNop())

		_, err := svc.GetUserByID(ctx, 1)

		assert.ErrorIs(t, err, apperrors.ErrUserUnavailable)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestUserService_GetAllUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("returns all users", func(t *testing.T) {
		users := []entities.User{
			{ID: 1, Name: "Alice", AllowedRoutes: []int64{1, 2, 3}, CostLimit: 5},
			{ID: 2, Name: "Bob", AllowedRoutes: []int64{2, 3, 4}, CostLimit: 4},
		}
		svc := NewUserService(&fakeUserRepo{users: users}, zap.NewNop())

		got, err := svc.GetAllUsers(ctx)

		require.NoError(t, err)
		assert.Equal(t, users, got)
	})

	t.Run("empty table is not an error", func(t *testing.T) {
		svc := NewUserService(&fakeUserRepo{users: []entities.User{}}, zap.NewNop())

		got, err := svc.GetAllUsers(ctx)

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("wraps repository errors", func(t *testing.T) {
		svc := NewUserService(&fakeUserRepo{err: errors.New("boom")}, zap.NewNop())

		got, err := svc.GetAllUsers(ctx)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, apperrors.ErrUsersUnavailable)
	})
}
