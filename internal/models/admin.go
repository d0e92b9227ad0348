package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ImpersonationSession lets a platform admin act as another user for a short window.
// Only the SHA-256 hash of the support token is stored.
type ImpersonationSession struct {
	ID           primitive.ObjectID  `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	ActorAdminID primitive.ObjectID  `json:"actorAdminId" bson:"actorAdminId"`
	TargetUserID primitive.ObjectID  `json:"targetUserId" bson:"targetUserId"`
	TargetTeamID *primitive.ObjectID `json:"targetTeamId,omitempty" bson:"targetTeamId,omitempty"`
	TokenHash    string              `json:"-" bson:"tokenHash"`
	Reason       string              `json:"reason,omitempty" bson:"reason,omitempty" example:"ticket #4821"`
	Active       bool                `json:"active" bson:"active"`
	ExpiresAt    time.Time           `json:"expiresAt" bson:"expiresAt"`
	CreatedAt    time.Time           `json:"createdAt" bson:"createdAt"`
	EndedAt      *time.Time          `json:"endedAt,omitempty" bson:"endedAt,omitempty"`
}

// StartImpersonationRequest is the payload for starting impersonation.
type StartImpersonationRequest struct {
	TargetUserID    string `json:"targetUserId" binding:"required" example:"507f1f77bcf86cd799439013"`
	TargetTeamID    string `json:"targetTeamId" example:"507f1f77bcf86cd799439012"`
	DurationMinutes int    `json:"durationMinutes" binding:"required" example:"10"`
	Reason          string `json:"reason" binding:"omitempty,max=500" example:"ticket #4821"`
}

// ImpersonationSessionListResponse is the response for listing sessions.
type ImpersonationSessionListResponse struct {
	Items []ImpersonationSession `json:"items"`
}

// SystemConfig is one immutable version of a platform setting.
type SystemConfig struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Key       string             `json:"key" bson:"key" example:"ai.default_credits"`
	Version   int64              `json:"version" bson:"version" example:"3"`
	Value     any                `json:"value" bson:"value"`
	UpdatedBy primitive.ObjectID `json:"updatedBy" bson:"updatedBy"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// PutSystemConfigRequest writes a new config version.
type PutSystemConfigRequest struct {
	Value any `json:"value" binding:"required"`
}

// SystemConfigListResponse is the response for listing config history.
type SystemConfigListResponse struct {
	Items []SystemConfig `json:"items"`
}
