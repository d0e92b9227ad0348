// Package authz decides whether a user may act on a team.
package authz

import (
	"context"

	"braik-api/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -destination=mocks/mock_authorizer.go -package=mocks braik-api/internal/authz Authorizer,OperationGuard

// Authorizer checks team membership against the role-permission table.
type Authorizer interface {
	// RequireTeamPermission returns the caller's membership when its role
	// grants perm. A missing membership yields ErrAccessDenied and a role
	// outside the permission's set yields ErrForbidden.
	RequireTeamPermission(ctx context.Context, userID, teamID primitive.ObjectID, perm Permission) (*models.Membership, error)

	// GetMembership returns the membership, or ErrNotTeamMember.
	GetMembership(ctx context.Context, userID, teamID primitive.ObjectID) (*models.Membership, error)
}

// OperationGuard gates operation classes on the team's lifecycle state.
type OperationGuard interface {
	RequireTeamOperationAccess(ctx context.Context, teamID primitive.ObjectID, op Operation) (*models.Team, error)
}
