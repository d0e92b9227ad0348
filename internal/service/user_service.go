package service

import (
	"context"
	"time"

	"braik-api/internal/cache"
	"braik-api/internal/models"
	"braik-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserService handles business logic for user operations.
type UserService struct {
	repo     repository.UserRepository
	cache    cache.Cache
	cacheTTL time.Duration
}

// NewUserService creates a new UserService.
func NewUserService(repo repository.UserRepository, c cache.Cache, cacheTTL time.Duration) *UserService {
	return &UserService{
		repo:     repo,
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

// GetUser retrieves a user by ID (with caching).
func (s *UserService) GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	cacheKey := cache.UserCacheKey(id.Hex())
	var user models.User
	found, err := s.cache.Get(ctx, cacheKey, &user)
	if err == nil && found {
		return &user, nil
	}

	dbUser, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Store in cache (ignore errors - cache is best effort)
	_ = s.cache.Set(ctx, cacheKey, cachedUser(dbUser), s.cacheTTL)

	return dbUser, nil
}

// cachedUser returns a copy safe to write to the cache. The password hash
// never leaves the database.
func cachedUser(u *models.User) *models.User {
	c := *u
	c.Password = ""
	return &c
}

// UpdateUser updates a user's information.
func (s *UserService) UpdateUser(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error) {
	user, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, cache.UserCacheKey(id.Hex()))

	return user, nil
}

// DeleteUser removes a user.
func (s *UserService) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, cache.UserCacheKey(id.Hex()))

	return nil
}
