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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func TestNewUserService(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := repomocks.NewMockUserRepository(ctrl)
	mockCache := cachemocks.NewMockCache(ctrl)

	service := NewUserService(mockRepo, mockCache, 5*time.Minute)

	assert.NotNil(t, service)
	assert.Equal(t, mockRepo, service.repo)
	assert.Equal(t, mockCache, service.cache)
	assert.Equal(t, 5*time.Minute, service.cacheTTL)
}

func TestUserService_GetUser(t *testing.T) {
	validUserID := primitive.NewObjectID()
	validUser := &models.User{
		ID:       validUserID,
		Email:    "coach@example.com",
		Password: "$2a$10$hash",
		Name:     "Jordan Reyes",
	}
	key := cache.UserCacheKey(validUserID.Hex())

	t.Run("returns user from cache when cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := repomocks.NewMockUserRepository(ctrl)
		mockCache := cachemocks.NewMockCache(ctrl)

		mockCache.EXPECT().
			Get(gomock.Any(), key, gomock.Any()).
			DoAndReturn(func(ctx context.Context, key string, dest interface{}) (bool, error) {
				*dest.(*models.User) = *validUser
				return true, nil
			})

		service := NewUserService(mockRepo, mockCache, time.Minute)
		user, err := service.GetUser(context.Background(), validUserID)

		require.NoError(t, err)
		assert.Equal(t, validUser.Email, user.Email)
	})

	t.Run("fetches from database and caches without password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := repomocks.NewMockUserRepository(ctrl)
		mockCache := cachemocks.NewMockCache(ctrl)

		mockCache.EXPECT().
			Get(gomock.Any(), key, gomock.Any()).
			Return(false, nil)
		mockRepo.EXPECT().
			FindByID(gomock.Any(), validUserID).
			Return(validUser, nil)
		mockCache.EXPECT().
			Set(gomock.Any(), key, gomock.Any(), time.Minute).
			DoAndReturn(func(_ context.Context, _ string, value interface{}, _ time.Duration) error {
				assert.Empty(t, value.(*models.User).Password)
				return nil
			})

		service := NewUserService(mockRepo, mockCache, time.Minute)
		user, err := service.GetUser(context.Background(), validUserID)

		require.NoError(t, err)
		assert.Equal(t, validUser, user)
	})

	t.Run("falls through to database on cache error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := repomocks.NewMockUserRepository(ctrl)
		mockCache := cachemocks.NewMockCache(ctrl)

		mockCache.EXPECT().
			Get(gomock.Any(), key, gomock.Any()).
			Return(false, assert.AnError)
		mockRepo.EXPECT().
			FindByID(gomock.Any(), validUserID).
			Return(validUser, nil)
		mockCache.EXPECT().
			Set(gomock.Any(), key, gomock.Any(), time.Minute).
			Return(assert.AnError) // ignored

		service := NewUserService(mockRepo, mockCache, time.Minute)
		user, err := service.GetUser(context.Background(), validUserID)

		require.NoError(t, err)
		assert.Equal(t, validUser.ID, user.ID)
	})

	t.Run("returns not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := repomocks.NewMockUserRepository(ctrl)
		mockCache := cachemocks.NewMockCache(ctrl)

		mockCache.EXPECT().
			Get(gomock.Any(), key, gomock.Any()).
			Return(false, nil)
		mockRepo.EXPECT().
			FindByID(gomock.Any(), validUserID).
			Return(nil, apperrors.ErrUserNotFound)

		service := NewUserService(mockRepo, mockCache, time.Minute)
		user, err := service.GetUser(context.Background(), validUserID)

		assert.Nil(t, user)
		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})
}

func TestUserService_UpdateUser(t *testing.T) {
	validUserID := primitive.NewObjectID()
	newName := "Jordan R."
	req := &models.UpdateUserRequest{Name: &newName}

	t.Run("updates and invalidates cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := repomocks.NewMockUserRepository(ctrl)
		mockCache := cachemocks.NewMockCache(ctrl)

		mockRepo.EXPECT().
			Update(gomock.Any(), validUserID, req).
			Return(&models.User{ID: validUserID, Name: newName}, nil)
		mockCache.EXPECT().
			Delete(gomock.Any(), cache.UserCacheKey(validUserID.Hex())).
			Return(nil)

		service := NewUserService(mockRepo, mockCache, time.Minute)
		user, err := service.UpdateUser(context.Background(), validUserID, req)

		require.NoError(t, err)
		assert.Equal(t, newName, user.Name)
	})

	t.Run("does not touch cache on failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := repomocks.NewMockUserRepository(ctrl)
		mockCache := cachemocks.NewMockCache(ctrl)

		mockRepo.EXPECT().
			Update(gomock.Any(), validUserID, req).
			Return(nil, apperrors.ErrUserAlreadyExists)

		service := NewUserService(mockRepo, mockCache, time.Minute)
		user, err := service.UpdateUser(context.Background(), validUserID, req)

		assert.Nil(t, user)
		assert.Equal(t, apperrors.ErrUserAlreadyExists, err)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	validUserID := primitive.NewObjectID()

	t.Run("deletes and invalidates cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := repomocks.NewMockUserRepository(ctrl)
		mockCache := cachemocks.NewMockCache(ctrl)

		mockRepo.EXPECT().Delete(gomock.Any(), validUserID).Return(nil)
		mockCache.EXPECT().
			Delete(gomock.Any(), cache.UserCacheKey(validUserID.Hex())).
			Return(assert.AnError) // ignored

		service := NewUserService(mockRepo, mockCache, time.Minute)

		assert.NoError(t, service.DeleteUser(context.Background(), validUserID))
	})

	t.Run("returns repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := repomocks.NewMockUserRepository(ctrl)
		mockCache := cachemocks.NewMockCache(ctrl)

		mockRepo.EXPECT().Delete(gomock.Any(), validUserID).Return(apperrors.ErrUserNotFound)

		service := NewUserService(mockRepo, mockCache, time.Minute)

		assert.Equal(t, apperrors.ErrUserNotFound, service.DeleteUser(context.Background(), validUserID))
	})
}
