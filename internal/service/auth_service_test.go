package service

import (
	"context"
	"testing"
	"time"

	"braik-api/internal/cache"
	cachemocks "braik-api/internal/cache/mocks"
	apperrors "braik-api/internal/errors"
	"braik-api/internal/models"
	repomocks "braik-api/internal/repository/mocks"
	"braik-api/pkg/auth"
	authmocks "braik-api/pkg/auth/mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

type authFixture struct {
	userRepo *repomocks.MockUserRepository
	cache    *cachemocks.MockCache
	sessions *authmocks.MockSessionTokenManager
	service  *AuthService
}

func newAuthFixture(t *testing.T) *authFixture {
	ctrl := gomock.NewController(t)
	f := &authFixture{
		userRepo: repomocks.NewMockUserRepository(ctrl),
		cache:    cachemocks.NewMockCache(ctrl),
		sessions: authmocks.NewMockSessionTokenManager(ctrl),
	}
	users := NewUserService(f.userRepo, f.cache, time.Minute)
	f.service = NewAuthService(f.userRepo, users, f.sessions)
	return f
}

func TestAuthService_Register(t *testing.T) {
	createUserReq := &models.CreateUserRequest{
		Email:    "coach@example.com",
		Password: "password123",
		Name:     "Jordan Reyes",
	}
	expiresAt := time.Date(2024, 1, 16, 9, 30, 0, 0, time.UTC)

	t.Run("successfully registers new user", func(t *testing.T) {
		f := newAuthFixture(t)

		f.userRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, user *models.User) error {
				user.ID = primitive.NewObjectID()
				assert.Equal(t, createUserReq.Email, user.Email)
				assert.Equal(t, createUserReq.Name, user.Name)
				assert.NotEqual(t, createUserReq.Password, user.Password) // Should be hashed
				return nil
			})

		f.sessions.EXPECT().
			GenerateToken(gomock.Any()).
			Return("session-token", expiresAt, nil)

		resp, err := f.service.Register(context.Background(), createUserReq)

		require.NoError(t, err)
		assert.Equal(t, "session-token", resp.Token)
		assert.Equal(t, expiresAt, resp.ExpiresAt)
		assert.Equal(t, createUserReq.Email, resp.User.Email)
	})

	t.Run("returns error when user creation fails", func(t *testing.T) {
		f := newAuthFixture(t)

		f.userRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(apperrors.ErrUserAlreadyExists)

		resp, err := f.service.Register(context.Background(), createUserReq)

		assert.Nil(t, resp)
		assert.Equal(t, apperrors.ErrUserAlreadyExists, err)
	})

	t.Run("returns error when token generation fails", func(t *testing.T) {
		f := newAuthFixture(t)

		f.userRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil)
		f.sessions.EXPECT().
			GenerateToken(gomock.Any()).
			Return("", time.Time{}, assert.AnError)

		resp, err := f.service.Register(context.Background(), createUserReq)

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestAuthService_Login(t *testing.T) {
	validUserID := primitive.NewObjectID()
	hashedPassword, err := auth.HashPassword("password123")
	require.NoError(t, err)
	validUser := &models.User{
		ID:       validUserID,
		Email:    "coach@example.com",
		Password: hashedPassword,
		Name:     "Jordan Reyes",
	}

	t.Run("successfully logs in user", func(t *testing.T) {
		f := newAuthFixture(t)

		f.userRepo.EXPECT().
			FindByEmail(gomock.Any(), "coach@example.com").
			Return(validUser, nil)
		f.sessions.EXPECT().
			GenerateToken(validUserID.Hex()).
			Return("session-token", time.Now().Add(time.Hour), nil)

		resp, err := f.service.Login(context.Background(), &models.LoginRequest{
			Email:    "coach@example.com",
			Password: "password123",
		})

		require.NoError(t, err)
		assert.Equal(t, "session-token", resp.Token)
		assert.Equal(t, validUserID, resp.User.ID)
	})

	t.Run("returns error for non-existent user", func(t *testing.T) {
		f := newAuthFixture(t)

		f.userRepo.EXPECT().
			FindByEmail(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrUserNotFound)

		resp, err := f.service.Login(context.Background(), &models.LoginRequest{
			Email:    "nobody@example.com",
			Password: "password123",
		})

		assert.Nil(t, resp)
		assert.Equal(t, apperrors.ErrInvalidCredentials, err)
	})

	t.Run("returns error for wrong password", func(t *testing.T) {
		f := newAuthFixture(t)

		f.userRepo.EXPECT().
			FindByEmail(gomock.Any(), gomock.Any()).
			Return(validUser, nil)

		resp, err := f.service.Login(context.Background(), &models.LoginRequest{
			Email:    "coach@example.com",
			Password: "wrongpassword",
		})

		assert.Nil(t, resp)
		assert.Equal(t, apperrors.ErrInvalidCredentials, err)
	})
}

func TestAuthService_ResolveSession(t *testing.T) {
	userID := primitive.NewObjectID()
	user := &models.User{
		ID:           userID,
		Email:        "admin@example.com",
		Name:         "Ops",
		PlatformRole: models.PlatformRoleAdmin,
	}

	t.Run("resolves user from cache", func(t *testing.T) {
		f := newAuthFixture(t)

		f.sessions.EXPECT().
			ValidateToken("tok").
			Return(&auth.Claims{UserID: userID.Hex()}, nil)
		f.cache.EXPECT().
			Get(gomock.Any(), cache.UserCacheKey(userID.Hex()), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, dest interface{}) (bool, error) {
				*dest.(*models.User) = *user
				return true, nil
			})

		session, err := f.service.ResolveSession(context.Background(), "tok")

		require.NoError(t, err)
		assert.Equal(t, userID, session.ID)
		assert.True(t, session.IsPlatformAdmin())
	})

	t.Run("falls back to database on cache miss", func(t *testing.T) {
		f := newAuthFixture(t)

		f.sessions.EXPECT().
			ValidateToken("tok").
			Return(&auth.Claims{UserID: userID.Hex()}, nil)
		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, nil)
		f.userRepo.EXPECT().
			FindByID(gomock.Any(), userID).
			Return(user, nil)
		f.cache.EXPECT().
			Set(gomock.Any(), cache.UserCacheKey(userID.Hex()), gomock.Any(), time.Minute).
			Return(nil)

		session, err := f.service.ResolveSession(context.Background(), "tok")

		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", session.Email)
	})

	t.Run("maps expired tokens", func(t *testing.T) {
		f := newAuthFixture(t)

		f.sessions.EXPECT().
			ValidateToken("old").
			Return(nil, jwt.ErrTokenExpired)

		session, err := f.service.ResolveSession(context.Background(), "old")

		assert.Nil(t, session)
		assert.Equal(t, apperrors.ErrTokenExpired, err)
	})

	t.Run("rejects malformed tokens", func(t *testing.T) {
		f := newAuthFixture(t)

		f.sessions.EXPECT().
			ValidateToken("garbage").
			Return(nil, jwt.ErrTokenMalformed)

		_, err := f.service.ResolveSession(context.Background(), "garbage")

		assert.Equal(t, apperrors.ErrInvalidToken, err)
	})

	t.Run("rejects claims without an object id", func(t *testing.T) {
		f := newAuthFixture(t)

		f.sessions.EXPECT().
			ValidateToken("tok").
			Return(&auth.Claims{UserID: "not-an-id"}, nil)

		_, err := f.service.ResolveSession(context.Background(), "tok")

		assert.Equal(t, apperrors.ErrInvalidToken, err)
	})

	t.Run("rejects sessions of deleted users", func(t *testing.T) {
		f := newAuthFixture(t)

		f.sessions.EXPECT().
			ValidateToken("tok").
			Return(&auth.Claims{UserID: userID.Hex()}, nil)
		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, nil)
		f.userRepo.EXPECT().
			FindByID(gomock.Any(), userID).
			Return(nil, apperrors.ErrUserNotFound)

		_, err := f.service.ResolveSession(context.Background(), "tok")

		assert.Equal(t, apperrors.ErrUnauthorized, err)
	})
}
