package service

import (
	"context"
	"errors"

	apperrors "braik-api/internal/errors"
	"braik-api/internal/models"
	"braik-api/internal/repository"
	"braik-api/pkg/auth"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthService handles authentication business logic.
type AuthService struct {
	userRepo repository.UserRepository
	users    UserServicer
	sessions auth.SessionTokenManager
}

// NewAuthService creates a new AuthService. users is the cached user lookup
// used when resolving sessions.
func NewAuthService(userRepo repository.UserRepository, users UserServicer, sessions auth.SessionTokenManager) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		users:    users,
		sessions: sessions,
	}
}

// Register creates a new user account and returns a session token.
func (s *AuthService) Register(ctx context.Context, req *models.CreateUserRequest) (*models.AuthResponse, error) {
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    req.Email,
		Password: hashedPassword,
		Name:     req.Name,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.generateAuthResponse(user)
}

// Login authenticates a user and returns a session token.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := auth.CheckPassword(req.Password, user.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.generateAuthResponse(user)
}

// ResolveSession turns a session token into the current user. Tokens for
// deleted users are rejected.
func (s *AuthService) ResolveSession(ctx context.Context, token string) (*models.SessionUser, error) {
	claims, err := s.sessions.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	return models.NewSessionUser(user), nil
}

func (s *AuthService) generateAuthResponse(user *models.User) (*models.AuthResponse, error) {
	token, expiresAt, err := s.sessions.GenerateToken(user.ID.Hex())
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      *user,
	}, nil
}
