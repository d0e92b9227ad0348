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

type mockTeamFinder struct {
	team *models.Team
	err  error
}

func (m *mockTeamFinder) FindByID(_ context.Context, _ primitive.ObjectID) (*models.Team, error) {
	return m.team, m.err
}

type recordingDenials struct {
	codes []string
}

func (r *recordingDenials) GuardDenied(code string) {
	r.codes = append(r.codes, code)
}

func activeTeam() *models.Team {
	return &models.Team{
		ID:                 primitive.NewObjectID(),
		TeamStatus:         models.TeamStatusActive,
		SubscriptionStatus: models.SubscriptionActive,
		AIEnabled:          true,
	}
}

var allOps = []Operation{OpWrite, OpAI, OpBilling, OpView}

func TestCheckTeamOperation_TerminatedBlocksEverything(t *testing.T) {
	for _, teamStatus := range []models.TeamStatus{models.TeamStatusActive, models.TeamStatusSuspended, models.TeamStatusTerminated} {
		for _, op := range allOps {
			team := activeTeam()
			team.TeamStatus = teamStatus
			team.SubscriptionStatus = models.SubscriptionTerminated

			err := CheckTeamOperation(team, op)

			assert.ErrorIs(t, err, apperrors.ErrTeamSubscriptionTerminated, "%s/%s", teamStatus, op)
			coded, _ := apperrors.AsCoded(err)
			require.NotNil(t, coded)
			assert.Equal(t, 423, coded.Status)
		}
	}
}

func TestCheckTeamOperation_SuspendedTeam(t *testing.T) {
	team := activeTeam()
	team.TeamStatus = models.TeamStatusSuspended
	team.SubscriptionStatus = models.SubscriptionPastDue

	assert.NoError(t, CheckTeamOperation(team, OpView))
	assert.NoError(t, CheckTeamOperation(team, OpBilling))

	err := CheckTeamOperation(team, OpWrite)
	assert.ErrorIs(t, err, apperrors.ErrTeamSuspendedWriteBlocked)
	coded, _ := apperrors.AsCoded(err)
	require.NotNil(t, coded)
	assert.Equal(t, "suspended", coded.Details["teamStatus"])
	assert.Equal(t, "past_due", coded.Details["subscriptionStatus"])

	assert.ErrorIs(t, CheckTeamOperation(team, OpAI), apperrors.ErrTeamSuspendedWriteBlocked)
}

func TestCheckTeamOperation_AISwitches(t *testing.T) {
	tests := []struct {
		name                 string
		aiEnabled            bool
		aiDisabledByPlatform bool
		wantErr              error
	}{
		{"enabled", true, false, nil},
		{"team turned ai off", false, false, apperrors.ErrTeamAIDisabled},
		{"platform turned ai off", true, true, apperrors.ErrTeamAIDisabled},
		{"both off", false, true, apperrors.ErrTeamAIDisabled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			team := activeTeam()
			team.AIEnabled = tt.aiEnabled
			team.AIDisabledByPlatform = tt.aiDisabledByPlatform

			err := CheckTeamOperation(team, OpAI)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}

			// write is unaffected by the AI switches
			assert.NoError(t, CheckTeamOperation(team, OpWrite))
		})
	}
}

func TestCheckTeamOperation_ActiveTeamAllowsAll(t *testing.T) {
	for _, sub := range []models.SubscriptionStatus{models.SubscriptionActive, models.SubscriptionPastDue, models.SubscriptionGracePeriod} {
		team := activeTeam()
		team.SubscriptionStatus = sub
		for _, op := range allOps {
			assert.NoError(t, CheckTeamOperation(team, op), "%s/%s", sub, op)
		}
	}
}

func TestCheckTeamOperation_NilTeam(t *testing.T) {
	assert.ErrorIs(t, CheckTeamOperation(nil, OpView), apperrors.ErrTeamNotFound)
}

func TestTeamOperationGuard_RequireTeamOperationAccess(t *testing.T) {
	ctx := context.Background()
	teamID := primitive.NewObjectID()

	t.Run("returns team when allowed", func(t *testing.T) {
		team := activeTeam()
		guard := NewTeamOperationGuard(&mockTeamFinder{team: team}, nil)

		got, err := guard.RequireTeamOperationAccess(ctx, teamID, OpWrite)

		require.NoError(t, err)
		assert.Equal(t, team, got)
	})

	t.Run("missing team is not found and counted", func(t *testing.T) {
		denials := &recordingDenials{}
		guard := NewTeamOperationGuard(&mockTeamFinder{err: apperrors.ErrTeamNotFound}, denials)

		got, err := guard.RequireTeamOperationAccess(ctx, teamID, OpView)

		assert.ErrorIs(t, err, apperrors.ErrTeamNotFound)
		assert.Nil(t, got)
		assert.Equal(t, []string{"TEAM_NOT_FOUND"}, denials.codes)
	})

	t.Run("denial is counted by code", func(t *testing.T) {
		team := activeTeam()
		team.AIDisabledByPlatform = true
		denials := &recordingDenials{}
		guard := NewTeamOperationGuard(&mockTeamFinder{team: team}, denials)

		_, err := guard.RequireTeamOperationAccess(ctx, teamID, OpAI)

		assert.ErrorIs(t, err, apperrors.ErrTeamAIDisabled)
		assert.Equal(t, []string{"TEAM_AI_DISABLED"}, denials.codes)
	})

	t.Run("store error is propagated and not counted", func(t *testing.T) {
		dbErr := errors.New("connection reset")
		denials := &recordingDenials{}
		guard := NewTeamOperationGuard(&mockTeamFinder{err: dbErr}, denials)

		_, err := guard.RequireTeamOperationAccess(ctx, teamID, OpView)

		assert.Equal(t, dbErr, err)
		assert.Empty(t, denials.codes)
	})
}
