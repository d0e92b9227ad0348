package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuditScope selects which audit collection a row belongs to.
type AuditScope string

// Audit scopes.
const (
	AuditScopeTeam     AuditScope = "team"
	AuditScopePlatform AuditScope = "platform"
)

// AuditLog is an append-only record of a state-changing action.
// TeamID is nil for platform-scoped rows.
type AuditLog struct {
	ID             primitive.ObjectID  `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	TeamID         *primitive.ObjectID `json:"teamId,omitempty" bson:"teamId,omitempty" example:"507f1f77bcf86cd799439012"`
	ActorID        primitive.ObjectID  `json:"actorId" bson:"actorId" example:"507f1f77bcf86cd799439013"`
	ImpersonatorID *primitive.ObjectID `json:"impersonatorId,omitempty" bson:"impersonatorId,omitempty"`
	Action         string              `json:"action" bson:"action" example:"announcement.created"`
	TargetType     string              `json:"targetType" bson:"targetType" example:"announcement"`
	TargetID       string              `json:"targetId" bson:"targetId" example:"507f1f77bcf86cd799439014"`
	Metadata       map[string]any      `json:"metadata,omitempty" bson:"metadata,omitempty"`
	IPAddress      string              `json:"ipAddress,omitempty" bson:"ipAddress,omitempty" example:"203.0.113.7"`
	UserAgent      string              `json:"userAgent,omitempty" bson:"userAgent,omitempty"`
	CreatedAt      time.Time           `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
}

// AuditLogFilter narrows an audit log listing.
type AuditLogFilter struct {
	TeamID  *primitive.ObjectID
	ActorID *primitive.ObjectID
	Action  string
}

// AuditLogListResponse is the response for listing audit logs.
type AuditLogListResponse struct {
	Items      []AuditLog `json:"items"`
	Pagination Pagination `json:"pagination"`
}
