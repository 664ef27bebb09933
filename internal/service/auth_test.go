package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"scoutportal/internal/auth"
	"scoutportal/internal/config"
	"scoutportal/internal/model"
	repomocks "scoutportal/internal/repository/mocks"
)

func newAuthFixture(t *testing.T) (*repomocks.MockUserRepository, *auth.TokenManager, AuthService) {
	t.Helper()
	tokens, err := auth.NewTokenManager(config.AuthConfig{JWTSecret: "test-secret", TokenTTLMin: 15})
	require.NoError(t, err)
	mRepo := new(repomocks.MockUserRepository)
	return mRepo, tokens, NewAuthService(mRepo, auth.NewPasswordHasher(), tokens)
}

func TestAuthRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mRepo, tokens, svc := newAuthFixture(t)
		mRepo.On("Create", mock.Anything, mock.MatchedBy(func(user *model.User) bool {
			return user.Email == "scout@example.org" &&
				user.Role == model.RoleUser &&
				user.PasswordHash != "" && user.PasswordHash != "s3cret"
		})).Return(func(_ context.Context, user *model.User) *model.User { return user }, nil)

		res, err := svc.Register(ctx, "  Scout@Example.org ", "s3cret", "")
		require.NoError(t, err)
		require.NotNil(t, res.User)

		claims, err := tokens.Verify(res.Token)
		require.NoError(t, err)
		assert.Equal(t, res.User.ID, claims.UserID)
		assert.Equal(t, "scout@example.org", claims.Email)
		assert.Equal(t, model.RoleUser, claims.Role)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mRepo, _, svc := newAuthFixture(t)
		mRepo.On("Create", mock.Anything, mock.Anything).
			Return(nil, &pgconn.PgError{Code: "23505"})

		_, err := svc.Register(ctx, "scout@example.org", "s3cret", "")
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("unknown role", func(t *testing.T) {
		mRepo, _, svc := newAuthFixture(t)
		_, err := svc.Register(ctx, "scout@example.org", "s3cret", "superuser")
		assert.ErrorIs(t, err, ErrInvalidInput)
		mRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing credentials", func(t *testing.T) {
		_, _, svc := newAuthFixture(t)
		_, err := svc.Register(ctx, "", "s3cret", "")
		assert.ErrorIs(t, err, ErrInvalidInput)
		_, err = svc.Register(ctx, "scout@example.org", "", "")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestAuthLogin(t *testing.T) {
	ctx := context.Background()
	hasher := auth.NewPasswordHasher()
	hash, err := hasher.Hash("s3cret")
	require.NoError(t, err)
	user := &model.User{ID: "u1", Email: "scout@example.org", PasswordHash: hash, Role: model.RoleEditor}

	t.Run("success", func(t *testing.T) {
		mRepo, tokens, svc := newAuthFixture(t)
		mRepo.On("FindByEmail", mock.Anything, "scout@example.org").Return(user, nil)

		res, err := svc.Login(ctx, "Scout@Example.org", "s3cret")
		require.NoError(t, err)

		claims, err := tokens.Verify(res.Token)
		require.NoError(t, err)
		assert.Equal(t, "u1", claims.UserID)
		assert.Equal(t, model.RoleEditor, claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		mRepo, _, svc := newAuthFixture(t)
		mRepo.On("FindByEmail", mock.Anything, "scout@example.org").Return(user, nil)

		_, err := svc.Login(ctx, "scout@example.org", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email is indistinguishable from wrong password", func(t *testing.T) {
		mRepo, _, svc := newAuthFixture(t)
		mRepo.On("FindByEmail", mock.Anything, "nobody@example.org").Return(nil, sql.ErrNoRows)

		_, err := svc.Login(ctx, "nobody@example.org", "s3cret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
