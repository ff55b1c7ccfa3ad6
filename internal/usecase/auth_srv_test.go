package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"yamdb/internal/data/entity"
	"yamdb/internal/data/repository"
	repoMocks "yamdb/internal/data/repository/mocks"
	"yamdb/internal/dto/request"
	"yamdb/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type sentMail struct {
	to, subject, body string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (f *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

type authFixture struct {
	users   *repoMocks.MockUserRepository
	codes   *repoMocks.MockConfirmationCodeRepository
	mailer  *fakeMailer
	tokens  *utils.TokenManager
	service AuthService
}

func newAuthFixture() *authFixture {
	f := &authFixture{
		users:  new(repoMocks.MockUserRepository),
		codes:  new(repoMocks.MockConfirmationCodeRepository),
		mailer: &fakeMailer{},
		tokens: utils.NewTokenManager("test-secret", time.Hour),
	}
	repo := &repository.Repository{User: f.users, ConfirmationCode: f.codes}
	config := &utils.Config{OTP: utils.OTPConfig{ExpiryMinutes: 10, Length: 6}}
	f.service = NewAuthService(repo, config, f.tokens, f.mailer, zap.NewNop())
	return f
}

func existingUser(username, email string) *entity.User {
	return &entity.User{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		Username:     username,
		Email:        email,
		Role:         entity.RoleUser,
	}
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("new user gets a code by mail", func(t *testing.T) {
		f := newAuthFixture()
		f.users.On("FindByUsername", ctx, "alice").Return(nil, nil)
		f.users.On("FindByEmail", ctx, "alice@example.com").Return(nil, nil)
		f.users.On("Create", ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Username == "alice" && u.Role == entity.RoleUser && u.IsActive
		})).Return(nil)
		f.codes.On("InvalidateForUser", ctx, mock.Anything).Return(nil)
		f.codes.On("Create", ctx, mock.MatchedBy(func(c *entity.ConfirmationCode) bool {
			return c.CodeHash != "" && !c.IsUsed && c.ExpiresAt.After(time.Now())
		})).Return(nil)

		resp, err := f.service.Signup(ctx, &request.SignupRequest{Email: "alice@example.com", Username: "alice"})
		require.NoError(t, err)
		assert.Equal(t, "alice", resp.Username)
		assert.Equal(t, "alice@example.com", resp.Email)

		require.Len(t, f.mailer.sent, 1)
		assert.Equal(t, "alice@example.com", f.mailer.sent[0].to)
		f.users.AssertExpectations(t)
		f.codes.AssertExpectations(t)
	})

	t.Run("same pair resends code", func(t *testing.T) {
		f := newAuthFixture()
		user := existingUser("alice", "alice@example.com")
		f.users.On("FindByUsername", ctx, "alice").Return(user, nil)
		f.users.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)
		f.codes.On("InvalidateForUser", ctx, user.ID).Return(nil)
		f.codes.On("Create", ctx, mock.Anything).Return(nil)

		_, err := f.service.Signup(ctx, &request.SignupRequest{Email: "alice@example.com", Username: "alice"})
		require.NoError(t, err)
		assert.Len(t, f.mailer.sent, 1)
		f.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("username taken with other email", func(t *testing.T) {
		f := newAuthFixture()
		f.users.On("FindByUsername", ctx, "alice").Return(existingUser("alice", "old@example.com"), nil)
		f.users.On("FindByEmail", ctx, "alice@example.com").Return(nil, nil)

		_, err := f.service.Signup(ctx, &request.SignupRequest{Email: "alice@example.com", Username: "alice"})

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "username")
		assert.NotContains(t, vErr.Fields, "email")
		assert.Empty(t, f.mailer.sent)
	})

	t.Run("email taken by other username", func(t *testing.T) {
		f := newAuthFixture()
		f.users.On("FindByUsername", ctx, "alice").Return(nil, nil)
		f.users.On("FindByEmail", ctx, "alice@example.com").Return(existingUser("bob", "alice@example.com"), nil)

		_, err := f.service.Signup(ctx, &request.SignupRequest{Email: "alice@example.com", Username: "alice"})

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "email")
	})

	t.Run("reserved username", func(t *testing.T) {
		for _, name := range []string{"me", "Me", "ME"} {
			f := newAuthFixture()
			_, err := f.service.Signup(ctx, &request.SignupRequest{Email: "x@example.com", Username: name})

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr, name)
			assert.Contains(t, vErr.Fields, "username")
		}
	})

	t.Run("mail failure is reported", func(t *testing.T) {
		f := newAuthFixture()
		f.mailer.err = errors.New("smtp down")
		user := existingUser("alice", "alice@example.com")
		f.users.On("FindByUsername", ctx, "alice").Return(user, nil)
		f.users.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)
		f.codes.On("InvalidateForUser", ctx, user.ID).Return(nil)
		f.codes.On("Create", ctx, mock.Anything).Return(nil)

		_, err := f.service.Signup(ctx, &request.SignupRequest{Email: "alice@example.com", Username: "alice"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "smtp down")
	})
}

func TestAuthService_Token(t *testing.T) {
	ctx := context.Background()

	hash, err := utils.HashSecret("123456")
	require.NoError(t, err)

	t.Run("valid code issues token once", func(t *testing.T) {
		f := newAuthFixture()
		user := existingUser("alice", "alice@example.com")
		code := &entity.ConfirmationCode{BaseSimple: entity.BaseSimple{ID: uuid.New()}, UserID: user.ID, CodeHash: hash}
		f.users.On("FindByUsername", ctx, "alice").Return(user, nil)
		f.codes.On("FindLatestActive", ctx, user.ID).Return(code, nil)
		f.codes.On("MarkAsUsed", ctx, code.ID).Return(nil)

		resp, err := f.service.Token(ctx, &request.TokenRequest{Username: "alice", ConfirmationCode: "123456"})
		require.NoError(t, err)

		userID, err := f.tokens.Parse(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, userID)
		f.codes.AssertExpectations(t)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newAuthFixture()
		f.users.On("FindByUsername", ctx, "ghost").Return(nil, nil)

		_, err := f.service.Token(ctx, &request.TokenRequest{Username: "ghost", ConfirmationCode: "123456"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("wrong code", func(t *testing.T) {
		f := newAuthFixture()
		user := existingUser("alice", "alice@example.com")
		code := &entity.ConfirmationCode{BaseSimple: entity.BaseSimple{ID: uuid.New()}, UserID: user.ID, CodeHash: hash}
		f.users.On("FindByUsername", ctx, "alice").Return(user, nil)
		f.codes.On("FindLatestActive", ctx, user.ID).Return(code, nil)

		_, err := f.service.Token(ctx, &request.TokenRequest{Username: "alice", ConfirmationCode: "000000"})
		assert.ErrorIs(t, err, ErrInvalidCode)
		f.codes.AssertNotCalled(t, "MarkAsUsed", mock.Anything, mock.Anything)
	})

	t.Run("used or expired code", func(t *testing.T) {
		f := newAuthFixture()
		user := existingUser("alice", "alice@example.com")
		f.users.On("FindByUsername", ctx, "alice").Return(user, nil)
		f.codes.On("FindLatestActive", ctx, user.ID).Return(nil, nil)

		_, err := f.service.Token(ctx, &request.TokenRequest{Username: "alice", ConfirmationCode: "123456"})
		assert.ErrorIs(t, err, ErrInvalidCode)
	})

	t.Run("code consumed concurrently", func(t *testing.T) {
		f := newAuthFixture()
		user := existingUser("alice", "alice@example.com")
		code := &entity.ConfirmationCode{BaseSimple: entity.BaseSimple{ID: uuid.New()}, UserID: user.ID, CodeHash: hash}
		f.users.On("FindByUsername", ctx, "alice").Return(user, nil)
		f.codes.On("FindLatestActive", ctx, user.ID).Return(code, nil)
		f.codes.On("MarkAsUsed", ctx, code.ID).Return(repository.ErrCodeAlreadyUsed)

		_, err := f.service.Token(ctx, &request.TokenRequest{Username: "alice", ConfirmationCode: "123456"})
		assert.ErrorIs(t, err, ErrInvalidCode)
	})

	t.Run("missing fields", func(t *testing.T) {
		f := newAuthFixture()
		_, err := f.service.Token(ctx, &request.TokenRequest{})

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "username")
		assert.Contains(t, vErr.Fields, "confirmation_code")
	})
}
