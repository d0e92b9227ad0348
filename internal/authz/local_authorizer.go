package authz

import (
	"context"
	"errors"

	apperrors "braik-api/internal/errors"
	"braik-api/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MembershipFinder is the lookup LocalAuthorizer needs from the membership store.
type MembershipFinder interface {
	FindByTeamAndUser(ctx context.Context, teamID, userID primitive.ObjectID) (*models.Membership, error)
}

// LocalAuthorizer implements Authorizer with a membership lookup per check.
// Nothing is cached: a role change is visible on the next request.
type LocalAuthorizer struct {
	memberships MembershipFinder
}

// NewLocalAuthorizer creates a new LocalAuthorizer.
func NewLocalAuthorizer(memberships MembershipFinder) *LocalAuthorizer {
	return &LocalAuthorizer{
		memberships: memberships,
	}
}

var _ Authorizer = (*LocalAuthorizer)(nil)

// RequireTeamPermission checks membership and the role-permission table.
func (a *LocalAuthorizer) RequireTeamPermission(ctx context.Context, userID, teamID primitive.ObjectID, perm Permission) (*models.Membership, error) {
	membership, err := a.memberships.FindByTeamAndUser(ctx, teamID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotTeamMember) {
			return nil, apperrors.ErrAccessDenied
		}
		return nil, err
	}

	if !RoleHasPermission(membership.Role, perm) {
		return nil, apperrors.ErrForbidden.WithDetails(map[string]any{
			"permission": perm.String(),
			"role":       string(membership.Role),
		})
	}

	return membership, nil
}

// GetMembership returns the user's membership in a team.
func (a *LocalAuthorizer) GetMembership(ctx context.Context, userID, teamID primitive.ObjectID) (*models.Membership, error) {
	return a.memberships.FindByTeamAndUser(ctx, teamID, userID)
}
