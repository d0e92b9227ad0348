package service

import (
	"context"
	"testing"

	"braik-api/internal/audit"
	auditmocks "braik-api/internal/audit/mocks"
	apperrors "braik-api/internal/errors"
	"braik-api/internal/models"
	repomocks "braik-api/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

type teamFixture struct {
	teamRepo       *repomocks.MockTeamRepository
	memberRepo     *repomocks.MockMembershipRepository
	invitationRepo *repomocks.MockInvitationRepository
	audit          *recordingAudit
	service        *TeamService
}

func newTeamFixture(t *testing.T) *teamFixture {
	ctrl := gomock.NewController(t)
	f := &teamFixture{
		teamRepo:       repomocks.NewMockTeamRepository(ctrl),
		memberRepo:     repomocks.NewMockMembershipRepository(ctrl),
		invitationRepo: repomocks.NewMockInvitationRepository(ctrl),
		audit:          &recordingAudit{},
	}
	f.service = NewTeamService(f.teamRepo, f.memberRepo, f.invitationRepo, f.audit, newTestClock())
	return f
}

func TestTeamService_CreateTeam(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("creates team with head coach membership", func(t *testing.T) {
		f := newTeamFixture(t)
		req := &models.CreateTeamRequest{Name: "Westview Varsity", Slug: "westview", Sport: "football"}

		f.teamRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, team *models.Team) error {
				team.ID = primitive.NewObjectID()
				assert.Equal(t, "westview", team.Slug)
				assert.Equal(t, userID, team.OwnerID)
				return nil
			})
		f.memberRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, m *models.Membership) error {
				assert.Equal(t, models.RoleHeadCoach, m.Role)
				assert.Equal(t, userID, m.UserID)
				assert.Equal(t, testNow, m.JoinedAt)
				return nil
			})

		team, err := f.service.CreateTeam(context.Background(), userID, req)

		require.NoError(t, err)
		assert.Equal(t, "Westview Varsity", team.Name)
		assert.Equal(t, []string{audit.ActionTeamCreated}, f.audit.actions())
		assert.Equal(t, models.AuditScopeTeam, f.audit.last().Scope)
	})

	t.Run("derives slug from name", func(t *testing.T) {
		f := newTeamFixture(t)

		f.teamRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, team *models.Team) error {
				assert.Equal(t, "westview-varsity-football", team.Slug)
				return nil
			})
		f.memberRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.service.CreateTeam(context.Background(), userID, &models.CreateTeamRequest{Name: "Westview Varsity Football"})

		require.NoError(t, err)
	})

	t.Run("suffixes a generated slug on collision", func(t *testing.T) {
		f := newTeamFixture(t)

		var tried []string
		f.teamRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, team *models.Team) error {
				tried = append(tried, team.Slug)
				if len(tried) < 3 {
					return apperrors.ErrTeamSlugTaken
				}
				return nil
			}).Times(3)
		f.memberRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		team, err := f.service.CreateTeam(context.Background(), userID, &models.CreateTeamRequest{Name: "Eagles"})

		require.NoError(t, err)
		assert.Equal(t, []string{"eagles", "eagles-2", "eagles-3"}, tried)
		assert.Equal(t, "eagles-3", team.Slug)
	})

	t.Run("does not retry an explicit slug", func(t *testing.T) {
		f := newTeamFixture(t)

		f.teamRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(apperrors.ErrTeamSlugTaken)

		team, err := f.service.CreateTeam(context.Background(), userID, &models.CreateTeamRequest{Name: "Eagles", Slug: "eagles"})

		assert.Nil(t, team)
		assert.Equal(t, apperrors.ErrTeamSlugTaken, err)
		assert.Empty(t, f.audit.actions())
	})

	t.Run("rolls back team on member creation failure", func(t *testing.T) {
		f := newTeamFixture(t)
		teamID := primitive.NewObjectID()

		f.teamRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, team *models.Team) error {
				team.ID = teamID
				return nil
			})
		f.memberRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(assert.AnError)
		f.teamRepo.EXPECT().SoftDelete(gomock.Any(), teamID).Return(nil)

		team, err := f.service.CreateTeam(context.Background(), userID, &models.CreateTeamRequest{Name: "Eagles"})

		assert.Nil(t, team)
		assert.ErrorIs(t, err, assert.AnError)
		assert.Empty(t, f.audit.actions())
	})
}

func TestTeamService_ListTeams(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("returns paginated teams", func(t *testing.T) {
		f := newTeamFixture(t)
		teams := []models.Team{{Name: "A"}, {Name: "B"}}

		f.teamRepo.EXPECT().
			FindByUserID(gomock.Any(), userID, 2, 2).
			Return(teams, 5, nil)

		resp, err := f.service.ListTeams(context.Background(), userID, 2, 2)

		require.NoError(t, err)
		assert.Len(t, resp.Items, 2)
		assert.Equal(t, 3, resp.Pagination.TotalPages)
		assert.Equal(t, 5, resp.Pagination.TotalItems)
	})

	t.Run("sets default page and limit values", func(t *testing.T) {
		f := newTeamFixture(t)

		f.teamRepo.EXPECT().
			FindByUserID(gomock.Any(), userID, 1, 20).
			Return([]models.Team{}, 0, nil)

		resp, err := f.service.ListTeams(context.Background(), userID, 0, 0)

		require.NoError(t, err)
		assert.Equal(t, 1, resp.Pagination.Page)
		assert.Equal(t, 20, resp.Pagination.Limit)
	})

	t.Run("caps limit at 50", func(t *testing.T) {
		f := newTeamFixture(t)

		f.teamRepo.EXPECT().
			FindByUserID(gomock.Any(), userID, 1, 50).
			Return([]models.Team{}, 0, nil)

		_, err := f.service.ListTeams(context.Background(), userID, 1, 500)

		require.NoError(t, err)
	})
}

func TestTeamService_UpdateTeam(t *testing.T) {
	teamID := primitive.NewObjectID()
	actorID := primitive.NewObjectID()

	t.Run("updates name and records changes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		teamRepo := repomocks.NewMockTeamRepository(ctrl)
		auditLog := auditmocks.NewMockLogger(ctrl)
		service := NewTeamService(teamRepo, repomocks.NewMockMembershipRepository(ctrl),
			repomocks.NewMockInvitationRepository(ctrl), auditLog, newTestClock())

		name := "Westview JV"
		teamRepo.EXPECT().FindByID(gomock.Any(), teamID).Return(&models.Team{ID: teamID, Name: "Old"}, nil)
		teamRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		auditLog.EXPECT().
			Record(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, e audit.Entry) {
				assert.Equal(t, audit.ActionTeamUpdated, e.Action)
				assert.Equal(t, actorID, e.ActorID)
				assert.Equal(t, map[string]any{"name": name}, e.Metadata)
			})

		team, err := service.UpdateTeam(context.Background(), actorID, teamID, &models.UpdateTeamRequest{Name: &name})

		require.NoError(t, err)
		assert.Equal(t, name, team.Name)
	})

	t.Run("returns error when new slug is taken", func(t *testing.T) {
		f := newTeamFixture(t)
		newSlug := "taken"

		f.teamRepo.EXPECT().FindByID(gomock.Any(), teamID).Return(&models.Team{ID: teamID}, nil)
		f.teamRepo.EXPECT().FindBySlug(gomock.Any(), newSlug).Return(&models.Team{ID: primitive.NewObjectID()}, nil)

		team, err := f.service.UpdateTeam(context.Background(), actorID, teamID, &models.UpdateTeamRequest{Slug: &newSlug})

		assert.Nil(t, team)
		assert.Equal(t, apperrors.ErrTeamSlugTaken, err)
	})

	t.Run("allows same slug for same team", func(t *testing.T) {
		f := newTeamFixture(t)
		sameSlug := "mine"

		f.teamRepo.EXPECT().FindByID(gomock.Any(), teamID).Return(&models.Team{ID: teamID, Slug: sameSlug}, nil)
		f.teamRepo.EXPECT().FindBySlug(gomock.Any(), sameSlug).Return(&models.Team{ID: teamID}, nil)
		f.teamRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.service.UpdateTeam(context.Background(), actorID, teamID, &models.UpdateTeamRequest{Slug: &sameSlug})

		require.NoError(t, err)
	})

	t.Run("returns not found", func(t *testing.T) {
		f := newTeamFixture(t)

		f.teamRepo.EXPECT().FindByID(gomock.Any(), teamID).Return(nil, apperrors.ErrTeamNotFound)

		_, err := f.service.UpdateTeam(context.Background(), actorID, teamID, &models.UpdateTeamRequest{})

		assert.ErrorIs(t, err, apperrors.ErrTeamNotFound)
	})
}

func TestTeamService_DeleteTeam(t *testing.T) {
	teamID := primitive.NewObjectID()
	actorID := primitive.NewObjectID()

	t.Run("deletes team and related data", func(t *testing.T) {
		f := newTeamFixture(t)

		gomock.InOrder(
			f.memberRepo.EXPECT().DeleteAllByTeamID(gomock.Any(), teamID).Return(nil),
			f.invitationRepo.EXPECT().DeleteAllByTeamID(gomock.Any(), teamID).Return(nil),
			f.teamRepo.EXPECT().SoftDelete(gomock.Any(), teamID).Return(nil),
		)

		require.NoError(t, f.service.DeleteTeam(context.Background(), actorID, teamID))
		assert.Equal(t, []string{audit.ActionTeamDeleted}, f.audit.actions())
	})

	t.Run("stops when roster removal fails", func(t *testing.T) {
		f := newTeamFixture(t)

		f.memberRepo.EXPECT().DeleteAllByTeamID(gomock.Any(), teamID).Return(assert.AnError)

		assert.ErrorIs(t, f.service.DeleteTeam(context.Background(), actorID, teamID), assert.AnError)
		assert.Empty(t, f.audit.actions())
	})
}
