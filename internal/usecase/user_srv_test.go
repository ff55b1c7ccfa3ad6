package usecase

import (
	"context"
	"testing"

	"yamdb/internal/data/entity"
	repoMocks "yamdb/internal/data/repository/mocks"
	"yamdb/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUserService_UpdateProfileIgnoresRole(t *testing.T) {
	ctx := context.Background()
	users := new(repoMocks.MockUserRepository)
	svc := NewUserService(users, zap.NewNop())

	me := existingUser("alice", "alice@example.com")
	users.On("FindByID", ctx, me.ID).Return(me, nil)
	users.On("Update", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Role == entity.RoleUser && u.Bio == "hello"
	})).Return(nil)

	resp, err := svc.UpdateProfile(ctx, me.ID, &request.UpdateUserRequest{
		Bio:  strPtr("hello"),
		Role: strPtr("admin"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, resp.Role)
	assert.Equal(t, "hello", resp.Bio)
	users.AssertExpectations(t)
}

func TestUserService_UpdateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("admin changes role", func(t *testing.T) {
		users := new(repoMocks.MockUserRepository)
		svc := NewUserService(users, zap.NewNop())
		bob := existingUser("bob", "bob@example.com")
		users.On("FindByUsername", ctx, "bob").Return(bob, nil)
		users.On("Update", ctx, mock.Anything).Return(nil)

		resp, err := svc.UpdateUser(ctx, "bob", &request.UpdateUserRequest{Role: strPtr("moderator")})
		require.NoError(t, err)
		assert.Equal(t, entity.RoleModerator, resp.Role)
	})

	t.Run("unknown role", func(t *testing.T) {
		users := new(repoMocks.MockUserRepository)
		svc := NewUserService(users, zap.NewNop())
		users.On("FindByUsername", ctx, "bob").Return(existingUser("bob", "bob@example.com"), nil)

		_, err := svc.UpdateUser(ctx, "bob", &request.UpdateUserRequest{Role: strPtr("owner")})

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "role")
	})

	t.Run("email held by someone else", func(t *testing.T) {
		users := new(repoMocks.MockUserRepository)
		svc := NewUserService(users, zap.NewNop())
		users.On("FindByUsername", ctx, "bob").Return(existingUser("bob", "bob@example.com"), nil)
		users.On("FindByEmail", ctx, "carol@example.com").Return(existingUser("carol", "carol@example.com"), nil)

		_, err := svc.UpdateUser(ctx, "bob", &request.UpdateUserRequest{Email: strPtr("carol@example.com")})

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "email")
		users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("missing user", func(t *testing.T) {
		users := new(repoMocks.MockUserRepository)
		svc := NewUserService(users, zap.NewNop())
		users.On("FindByUsername", ctx, "ghost").Return(nil, nil)

		_, err := svc.UpdateUser(ctx, "ghost", &request.UpdateUserRequest{})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUserService_CreateUser(t *testing.T) {
	ctx := context.Background()
	users := new(repoMocks.MockUserRepository)
	svc := NewUserService(users, zap.NewNop())

	users.On("FindByUsername", ctx, "dave").Return(nil, nil)
	users.On("FindByEmail", ctx, "dave@example.com").Return(nil, nil)
	users.On("Create", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Role == entity.RoleUser && u.IsActive
	})).Return(nil)

	resp, err := svc.CreateUser(ctx, &request.CreateUserRequest{Username: "dave", Email: "dave@example.com"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, resp.Role)
	users.AssertExpectations(t)
}

func TestUserService_CreateAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("superuser with admin role", func(t *testing.T) {
		users := new(repoMocks.MockUserRepository)
		svc := NewUserService(users, zap.NewNop())

		users.On("FindByUsername", ctx, "root").Return(nil, nil)
		users.On("FindByEmail", ctx, "root@example.com").Return(nil, nil)
		users.On("Create", ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Role == entity.RoleAdmin && u.IsSuperuser && u.IsActive
		})).Return(nil)

		resp, err := svc.CreateAdmin(ctx, "root", "root@example.com")
		require.NoError(t, err)
		assert.Equal(t, entity.RoleAdmin, resp.Role)
		users.AssertExpectations(t)
	})

	t.Run("taken username", func(t *testing.T) {
		users := new(repoMocks.MockUserRepository)
		svc := NewUserService(users, zap.NewNop())

		users.On("FindByUsername", ctx, "root").Return(&entity.User{BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()}}, nil)
		users.On("FindByEmail", ctx, "root@example.com").Return(nil, nil)

		_, err := svc.CreateAdmin(ctx, "root", "root@example.com")
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "username")
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
