// Package models defines data structures for the application.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlatformRoleAdmin marks a user as platform staff with access to the admin console.
const PlatformRoleAdmin = "admin"

// User represents a user in the system.
type User struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Email           string             `json:"email" bson:"email" example:"coach@example.com"`
	Password        string             `json:"-" bson:"password"` // "-" = never include in JSON response
	Name            string             `json:"name" bson:"name" example:"Jordan Reyes"`
	PlatformRole    string             `json:"platformRole,omitempty" bson:"platformRole,omitempty" example:"admin"`
	IsPlatformOwner bool               `json:"isPlatformOwner" bson:"isPlatformOwner"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// IsPlatformAdmin reports whether the user may use the admin console.
func (u *User) IsPlatformAdmin() bool {
	return u != nil && (u.IsPlatformOwner || u.PlatformRole == PlatformRoleAdmin)
}

// Summary returns the embeddable representation of the user.
func (u *User) Summary() *UserSummary {
	return &UserSummary{ID: u.ID, Email: u.Email, Name: u.Name}
}

// UserSummary is a minimal user representation for embedding.
type UserSummary struct {
	ID    primitive.ObjectID `json:"id" example:"507f1f77bcf86cd799439013"`
	Email string             `json:"email" example:"player@example.com"`
	Name  string             `json:"name" example:"Sam Lee"`
}

// CreateUserRequest is the payload for creating a user.
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email" example:"coach@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"secret123"`
	Name     string `json:"name" binding:"required,min=2" example:"Jordan Reyes"`
}

// UpdateUserRequest is the payload for updating a user.
type UpdateUserRequest struct {
	Email *string `json:"email" binding:"omitempty,email" example:"newemail@example.com"`
	Name  *string `json:"name" binding:"omitempty,min=2" example:"Jordan R."`
}

// LoginRequest is the payload for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"coach@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// AuthResponse is returned after register and login.
type AuthResponse struct {
	Token     string    `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
	ExpiresAt time.Time `json:"expiresAt" example:"2024-01-16T09:30:00Z"`
	User      User      `json:"user"`
}
