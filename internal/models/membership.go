package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is a user's role inside a team.
type Role string

// Team roles.
const (
	RoleHeadCoach      Role = "HEAD_COACH"
	RoleAssistantCoach Role = "ASSISTANT_COACH"
	RolePlayer         Role = "PLAYER"
	RoleParent         Role = "PARENT"
)

// Roles lists every team role, highest privilege first.
var Roles = []Role{RoleHeadCoach, RoleAssistantCoach, RolePlayer, RoleParent}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleHeadCoach, RoleAssistantCoach, RolePlayer, RoleParent:
		return true
	}
	return false
}

// MembershipPermissions holds per-member flags that refine the role.
type MembershipPermissions struct {
	CoordinatorType string   `json:"coordinatorType,omitempty" bson:"coordinatorType,omitempty" example:"offensive"`
	PositionGroups  []string `json:"positionGroups,omitempty" bson:"positionGroups,omitempty" example:"QB,WR"`
}

// Membership links a user to a team with a role.
type Membership struct {
	ID          primitive.ObjectID    `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	TeamID      primitive.ObjectID    `json:"teamId" bson:"teamId" example:"507f1f77bcf86cd799439012"`
	UserID      primitive.ObjectID    `json:"userId" bson:"userId" example:"507f1f77bcf86cd799439013"`
	Role        Role                  `json:"role" bson:"role" example:"PLAYER"`
	Permissions MembershipPermissions `json:"permissions" bson:"permissions"`
	JoinedAt    time.Time             `json:"joinedAt" bson:"joinedAt" example:"2024-01-15T09:30:00Z"`
}

// MembershipWithUser is a membership with expanded user information.
type MembershipWithUser struct {
	Membership
	User *UserSummary `json:"user,omitempty"`
}

// AddMemberRequest adds an existing user to the roster.
type AddMemberRequest struct {
	Email       string                `json:"email" binding:"required,email" example:"player@example.com"`
	Role        Role                  `json:"role" binding:"required,team_role" example:"PLAYER"`
	Permissions MembershipPermissions `json:"permissions"`
}

// UpdateMemberRequest changes a member's role and flags.
type UpdateMemberRequest struct {
	Role        Role                   `json:"role" binding:"required,team_role" example:"ASSISTANT_COACH"`
	Permissions *MembershipPermissions `json:"permissions"`
}

// MembershipListResponse is the response for listing team members.
type MembershipListResponse struct {
	Items []MembershipWithUser `json:"items"`
}
