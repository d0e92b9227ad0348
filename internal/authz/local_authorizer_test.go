package authz

import (
	"context"
	"errors"
	"testing"

	apperrors "braik-api/internal/errors"
	"braik-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// mockMembershipFinder is a test double for MembershipFinder.
type mockMembershipFinder struct {
	membership *models.Membership
	err        error
	calls      int
}

func (m *mockMembershipFinder) FindByTeamAndUser(_ context.Context, _, _ primitive.ObjectID) (*models.Membership, error) {
	m.calls++
	return m.membership, m.err
}

func TestLocalAuthorizer_RequireTeamPermission(t *testing.T) {
	userID := primitive.NewObjectID()
	teamID := primitive.NewObjectID()
	ctx := context.Background()

	tests := []struct {
		name    string
		role    models.Role
		perm    Permission
		wantErr error
	}{
		{"head coach can manage billing", models.RoleHeadCoach, PermManageBilling, nil},
		{"assistant can edit roster", models.RoleAssistantCoach, PermEditRoster, nil},
		{"assistant cannot manage members", models.RoleAssistantCoach, PermManageMembers, apperrors.ErrForbidden},
		{"player can use assistant", models.RolePlayer, PermUseAIAssistant, nil},
		{"player cannot post announcements", models.RolePlayer, PermPostAnnouncements, apperrors.ErrForbidden},
		{"parent can view documents", models.RoleParent, PermViewDocuments, nil},
		{"parent cannot approve ai actions", models.RoleParent, PermApproveAIActions, apperrors.ErrForbidden},
		{"unknown role is forbidden", models.Role("SCOUT"), PermViewTeam, apperrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			finder := &mockMembershipFinder{
				membership: &models.Membership{TeamID: teamID, UserID: userID, Role: tt.role},
			}
			auth := NewLocalAuthorizer(finder)

			membership, err := auth.RequireTeamPermission(ctx, userID, teamID, tt.perm)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, membership)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.role, membership.Role)
		})
	}

	t.Run("non-member is access denied", func(t *testing.T) {
		auth := NewLocalAuthorizer(&mockMembershipFinder{err: apperrors.ErrNotTeamMember})

		membership, err := auth.RequireTeamPermission(ctx, userID, teamID, PermViewTeam)

		assert.ErrorIs(t, err, apperrors.ErrAccessDenied)
		assert.Nil(t, membership)
	})

	t.Run("forbidden carries permission and role details", func(t *testing.T) {
		auth := NewLocalAuthorizer(&mockMembershipFinder{
			membership: &models.Membership{Role: models.RoleParent},
		})

		_, err := auth.RequireTeamPermission(ctx, userID, teamID, PermManageBilling)

		coded, ok := apperrors.AsCoded(err)
		require.True(t, ok)
		assert.Equal(t, "manage_billing", coded.Details["permission"])
		assert.Equal(t, "PARENT", coded.Details["role"])
	})

	t.Run("database error is propagated", func(t *testing.T) {
		dbError := errors.New("database connection failed")
		auth := NewLocalAuthorizer(&mockMembershipFinder{err: dbError})

		membership, err := auth.RequireTeamPermission(ctx, userID, teamID, PermViewTeam)

		assert.Equal(t, dbError, err)
		assert.Nil(t, membership)
	})

	t.Run("every check performs a fresh lookup", func(t *testing.T) {
		finder := &mockMembershipFinder{membership: &models.Membership{Role: models.RoleHeadCoach}}
		auth := NewLocalAuthorizer(finder)

		_, _ = auth.RequireTeamPermission(ctx, userID, teamID, PermViewTeam)
		finder.membership = &models.Membership{Role: models.RolePlayer}
		_, err := auth.RequireTeamPermission(ctx, userID, teamID, PermEditTeamSettings)

		assert.Equal(t, 2, finder.calls)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})
}

func TestLocalAuthorizer_GetMembership(t *testing.T) {
	userID := primitive.NewObjectID()
	teamID := primitive.NewObjectID()
	ctx := context.Background()

	t.Run("returns membership", func(t *testing.T) {
		want := &models.Membership{Role: models.RoleAssistantCoach}
		auth := NewLocalAuthorizer(&mockMembershipFinder{membership: want})

		got, err := auth.GetMembership(ctx, userID, teamID)

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("returns not-member error", func(t *testing.T) {
		auth := NewLocalAuthorizer(&mockMembershipFinder{err: apperrors.ErrNotTeamMember})

		got, err := auth.GetMembership(ctx, userID, teamID)

		assert.ErrorIs(t, err, apperrors.ErrNotTeamMember)
		assert.Nil(t, got)
	})
}
