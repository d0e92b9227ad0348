package service

import (
	"context"
	"testing"
	"time"

	"braik-api/internal/audit"
	apperrors "braik-api/internal/errors"
	"braik-api/internal/models"
	repomocks "braik-api/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

type invitationFixture struct {
	invitationRepo *repomocks.MockInvitationRepository
	memberRepo     *repomocks.MockMembershipRepository
	teamRepo       *repomocks.MockTeamRepository
	userRepo       *repomocks.MockUserRepository
	audit          *recordingAudit
	service        *InvitationService
}

func newInvitationFixture(t *testing.T) *invitationFixture {
	ctrl := gomock.NewController(t)
	f := &invitationFixture{
		invitationRepo: repomocks.NewMockInvitationRepository(ctrl),
		memberRepo:     repomocks.NewMockMembershipRepository(ctrl),
		teamRepo:       repomocks.NewMockTeamRepository(ctrl),
		userRepo:       repomocks.NewMockUserRepository(ctrl),
		audit:          &recordingAudit{},
	}
	f.service = NewInvitationService(f.invitationRepo, f.memberRepo, f.teamRepo, f.userRepo, f.audit, newTestClock())
	return f
}

func TestInvitationService_CreateInvitation(t *testing.T) {
	teamID := primitive.NewObjectID()
	inviterID := primitive.NewObjectID()
	req := &models.CreateInvitationRequest{Email: "parent@example.com", Role: models.RoleParent}

	t.Run("creates invitation for unknown email", func(t *testing.T) {
		f := newInvitationFixture(t)

		f.userRepo.EXPECT().FindByEmail(gomock.Any(), req.Email).Return(nil, apperrors.ErrUserNotFound)
		f.invitationRepo.EXPECT().FindByTeamAndEmail(gomock.Any(), teamID, req.Email, testNow).
			Return(nil, apperrors.ErrInvitationNotFound)
		f.invitationRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, inv *models.Invitation) error {
				inv.ID = primitive.NewObjectID()
				return nil
			})

		inv, err := f.service.CreateInvitation(context.Background(), teamID, inviterID, req)

		require.NoError(t, err)
		assert.Equal(t, testNow.Add(7*24*time.Hour), inv.ExpiresAt)
		assert.Equal(t, models.RoleParent, inv.Role)
		assert.Equal(t, []string{audit.ActionInvitationCreated}, f.audit.actions())
	})

	t.Run("refuses existing member", func(t *testing.T) {
		f := newInvitationFixture(t)
		user := &models.User{ID: primitive.NewObjectID(), Email: req.Email}

		f.userRepo.EXPECT().FindByEmail(gomock.Any(), req.Email).Return(user, nil)
		f.memberRepo.EXPECT().FindByTeamAndUser(gomock.Any(), teamID, user.ID).Return(&models.Membership{}, nil)

		_, err := f.service.CreateInvitation(context.Background(), teamID, inviterID, req)

		assert.Equal(t, apperrors.ErrAlreadyMember, err)
	})

	t.Run("refuses duplicate pending invitation", func(t *testing.T) {
		f := newInvitationFixture(t)
		user := &models.User{ID: primitive.NewObjectID(), Email: req.Email}

		f.userRepo.EXPECT().FindByEmail(gomock.Any(), req.Email).Return(user, nil)
		f.memberRepo.EXPECT().FindByTeamAndUser(gomock.Any(), teamID, user.ID).Return(nil, apperrors.ErrNotTeamMember)
		f.invitationRepo.EXPECT().FindByTeamAndEmail(gomock.Any(), teamID, req.Email, testNow).
			Return(&models.Invitation{}, nil)

		_, err := f.service.CreateInvitation(context.Background(), teamID, inviterID, req)

		assert.Equal(t, apperrors.ErrPendingInvitation, err)
	})

	t.Run("rejects invalid role", func(t *testing.T) {
		f := newInvitationFixture(t)

		_, err := f.service.CreateInvitation(context.Background(), teamID, inviterID,
			&models.CreateInvitationRequest{Email: "x@example.com", Role: "ADMIN"})

		assert.Equal(t, apperrors.ErrInvalidRole, err)
	})
}

func TestInvitationService_CancelInvitation(t *testing.T) {
	teamID := primitive.NewObjectID()
	actorID := primitive.NewObjectID()
	invID := primitive.NewObjectID()

	t.Run("cancels team invitation", func(t *testing.T) {
		f := newInvitationFixture(t)

		f.invitationRepo.EXPECT().FindByID(gomock.Any(), invID).Return(&models.Invitation{ID: invID, TeamID: teamID}, nil)
		f.invitationRepo.EXPECT().Delete(gomock.Any(), invID).Return(nil)

		require.NoError(t, f.service.CancelInvitation(context.Background(), actorID, teamID, invID))
		assert.Equal(t, []string{audit.ActionInvitationCancelled}, f.audit.actions())
	})

	t.Run("hides invitations of other teams", func(t *testing.T) {
		f := newInvitationFixture(t)

		f.invitationRepo.EXPECT().FindByID(gomock.Any(), invID).
			Return(&models.Invitation{ID: invID, TeamID: primitive.NewObjectID()}, nil)

		err := f.service.CancelInvitation(context.Background(), actorID, teamID, invID)

		assert.Equal(t, apperrors.ErrInvitationNotFound, err)
	})
}

func TestInvitationService_ListMyInvitations(t *testing.T) {
	liveTeam := &models.Team{ID: primitive.NewObjectID(), Name: "Eagles", Slug: "eagles"}
	deletedTeamID := primitive.NewObjectID()
	inviter := &models.User{ID: primitive.NewObjectID(), Name: "Coach"}

	f := newInvitationFixture(t)
	f.invitationRepo.EXPECT().FindByEmail(gomock.Any(), "parent@example.com", testNow).Return([]models.Invitation{
		{ID: primitive.NewObjectID(), TeamID: liveTeam.ID, InvitedBy: inviter.ID, Role: models.RoleParent},
		{ID: primitive.NewObjectID(), TeamID: deletedTeamID, InvitedBy: inviter.ID, Role: models.RoleParent},
	}, nil)
	f.userRepo.EXPECT().FindByIDs(gomock.Any(), gomock.Any()).
		Return(map[primitive.ObjectID]*models.User{inviter.ID: inviter}, nil)
	f.teamRepo.EXPECT().FindByID(gomock.Any(), liveTeam.ID).Return(liveTeam, nil)
	f.teamRepo.EXPECT().FindByID(gomock.Any(), deletedTeamID).Return(nil, apperrors.ErrTeamNotFound)

	resp, err := f.service.ListMyInvitations(context.Background(), "parent@example.com")

	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "eagles", resp.Items[0].Team.Slug)
	assert.Equal(t, "Coach", resp.Items[0].InvitedBy.Name)
}

func TestInvitationService_AcceptInvitation(t *testing.T) {
	teamID := primitive.NewObjectID()
	invID := primitive.NewObjectID()
	user := &models.SessionUser{ID: primitive.NewObjectID(), Email: "Parent@Example.com"}
	pending := &models.Invitation{
		ID:        invID,
		TeamID:    teamID,
		Email:     "parent@example.com",
		Role:      models.RoleParent,
		ExpiresAt: testNow.Add(time.Hour),
	}
	active := &models.Team{
		ID:                 teamID,
		TeamStatus:         models.TeamStatusActive,
		SubscriptionStatus: models.SubscriptionActive,
	}

	t.Run("creates membership and consumes invitation", func(t *testing.T) {
		f := newInvitationFixture(t)

		f.invitationRepo.EXPECT().FindByID(gomock.Any(), invID).Return(pending, nil)
		f.teamRepo.EXPECT().FindByID(gomock.Any(), teamID).Return(active, nil)
		f.memberRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m *models.Membership) error {
				assert.Equal(t, user.ID, m.UserID)
				assert.Equal(t, models.RoleParent, m.Role)
				return nil
			})
		f.invitationRepo.EXPECT().Delete(gomock.Any(), invID).Return(nil)

		resp, err := f.service.AcceptInvitation(context.Background(), invID, user)

		require.NoError(t, err)
		assert.Equal(t, teamID.Hex(), resp.TeamID)
		assert.Equal(t, []string{audit.ActionInvitationAccepted}, f.audit.actions())
	})

	t.Run("rejects mismatched email", func(t *testing.T) {
		f := newInvitationFixture(t)
		other := &models.SessionUser{ID: primitive.NewObjectID(), Email: "other@example.com"}

		f.invitationRepo.EXPECT().FindByID(gomock.Any(), invID).Return(pending, nil)

		_, err := f.service.AcceptInvitation(context.Background(), invID, other)

		assert.Equal(t, apperrors.ErrInvitationEmailMismatch, err)
	})

	t.Run("rejects expired invitation", func(t *testing.T) {
		f := newInvitationFixture(t)
		expired := *pending
		expired.ExpiresAt = testNow

		f.invitationRepo.EXPECT().FindByID(gomock.Any(), invID).Return(&expired, nil)

		_, err := f.service.AcceptInvitation(context.Background(), invID, user)

		assert.Equal(t, apperrors.ErrInvitationExpired, err)
	})

	t.Run("cleans up when already a member", func(t *testing.T) {
		f := newInvitationFixture(t)

		f.invitationRepo.EXPECT().FindByID(gomock.Any(), invID).Return(pending, nil)
		f.teamRepo.EXPECT().FindByID(gomock.Any(), teamID).Return(active, nil)
		f.memberRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(apperrors.ErrAlreadyMember)
		f.invitationRepo.EXPECT().Delete(gomock.Any(), invID).Return(nil)

		_, err := f.service.AcceptInvitation(context.Background(), invID, user)

		assert.Equal(t, apperrors.ErrAlreadyMember, err)
		assert.Empty(t, f.audit.actions())
	})

	blocked := []struct {
		name string
		team models.Team
		code string
	}{
		{
			name: "terminated subscription",
			team: models.Team{TeamStatus: models.TeamStatusSuspended, SubscriptionStatus: models.SubscriptionTerminated},
			code: "TEAM_SUBSCRIPTION_TERMINATED",
		},
		{
			name: "suspended team",
			team: models.Team{TeamStatus: models.TeamStatusSuspended, SubscriptionStatus: models.SubscriptionActive},
			code: "TEAM_SUSPENDED_WRITE_BLOCKED",
		},
		{
			name: "cancelled team",
			team: models.Team{TeamStatus: models.TeamStatusCancelled, SubscriptionStatus: models.SubscriptionActive},
			code: "TEAM_SUSPENDED_WRITE_BLOCKED",
		},
	}
	for _, tt := range blocked {
		t.Run("refuses to join a team with "+tt.name, func(t *testing.T) {
			f := newInvitationFixture(t)
			team := tt.team
			team.ID = teamID

			f.invitationRepo.EXPECT().FindByID(gomock.Any(), invID).Return(pending, nil)
			f.teamRepo.EXPECT().FindByID(gomock.Any(), teamID).Return(&team, nil)
			// gomock fails the test on any Create or Delete call.

			resp, err := f.service.AcceptInvitation(context.Background(), invID, user)

			assert.Nil(t, resp)
			coded, ok := apperrors.AsCoded(err)
			require.True(t, ok, "expected coded error, got %v", err)
			assert.Equal(t, tt.code, coded.Code)
			assert.Empty(t, f.audit.actions())
		})
	}

	t.Run("refuses when the team is gone", func(t *testing.T) {
		f := newInvitationFixture(t)

		f.invitationRepo.EXPECT().FindByID(gomock.Any(), invID).Return(pending, nil)
		f.teamRepo.EXPECT().FindByID(gomock.Any(), teamID).Return(nil, apperrors.ErrTeamNotFound)

		_, err := f.service.AcceptInvitation(context.Background(), invID, user)

		assert.ErrorIs(t, err, apperrors.ErrTeamNotFound)
	})
}

func TestInvitationService_DeclineInvitation(t *testing.T) {
	invID := primitive.NewObjectID()
	user := &models.SessionUser{ID: primitive.NewObjectID(), Email: "parent@example.com"}

	f := newInvitationFixture(t)
	f.invitationRepo.EXPECT().FindByID(gomock.Any(), invID).
		Return(&models.Invitation{ID: invID, TeamID: primitive.NewObjectID(), Email: user.Email}, nil)
	f.invitationRepo.EXPECT().Delete(gomock.Any(), invID).Return(nil)

	require.NoError(t, f.service.DeclineInvitation(context.Background(), invID, user))
	assert.Equal(t, []string{audit.ActionInvitationDeclined}, f.audit.actions())
}
