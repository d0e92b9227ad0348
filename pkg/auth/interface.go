package auth

import "time"

//go:generate mockgen -destination=mocks/mock_session.go -package=mocks braik-api/pkg/auth SessionTokenManager

// SessionTokenManager issues and verifies signed session tokens.
type SessionTokenManager interface {
	// GenerateToken creates a session token for a user and returns its expiry.
	GenerateToken(userID string) (string, time.Time, error)
	// ValidateToken parses and validates a session token, returning the claims if valid.
	ValidateToken(tokenString string) (*Claims, error)
}

var _ SessionTokenManager = (*JWTManager)(nil)
