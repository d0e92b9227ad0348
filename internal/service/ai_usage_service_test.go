package service

import (
	"context"
	"testing"
	"time"

	apperrors "braik-api/internal/errors"
	"braik-api/internal/metrics"
	"braik-api/internal/models"
	repomocks "braik-api/internal/repository/mocks"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func TestRoleWeight(t *testing.T) {
	assert.Equal(t, 1.0, RoleWeight(models.RoleHeadCoach))
	assert.Equal(t, 0.75, RoleWeight(models.RoleAssistantCoach))
	assert.Equal(t, 0.25, RoleWeight(models.RolePlayer))
	assert.Equal(t, 0.25, RoleWeight(models.RoleParent))
	assert.Equal(t, 0.25, RoleWeight("SCOUT"))
}

func TestWeightedTokens(t *testing.T) {
	tests := []struct {
		name string
		raw  int64
		role models.Role
		want int64
	}{
		{"head coach is unweighted", 1000, models.RoleHeadCoach, 1000},
		{"assistant coach", 1000, models.RoleAssistantCoach, 750},
		{"player", 1000, models.RolePlayer, 250},
		{"rounds half away from zero", 2, models.RolePlayer, 1},
		{"rounds down below half", 1, models.RolePlayer, 0},
		{"assistant rounding", 3, models.RoleAssistantCoach, 2},
		{"zero", 0, models.RoleParent, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeightedTokens(tt.raw, tt.role))
		})
	}
}

func TestModeFor(t *testing.T) {
	tests := []struct {
		name  string
		used  int64
		limit int64
		want  models.AIMode
	}{
		{"fresh season", 0, 100000, models.AIModeFull},
		{"just under 80 percent", 79999, 100000, models.AIModeFull},
		{"exactly 80 percent", 80000, 100000, models.AIModeSuggestionOnly},
		{"just under limit", 99999, 100000, models.AIModeSuggestionOnly},
		{"at limit", 100000, 100000, models.AIModeDisabled},
		{"over limit", 150000, 100000, models.AIModeDisabled},
		{"zero limit", 0, 0, models.AIModeDisabled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ModeFor(tt.used, tt.limit))
		})
	}
}

type aiUsageFixture struct {
	usageRepo  *repomocks.MockAIUsageRepository
	teamRepo   *repomocks.MockTeamRepository
	configRepo *repomocks.MockSystemConfigRepository
	metrics    *metrics.Metrics
	service    *AIUsageService
}

func newAIUsageFixture(t *testing.T) *aiUsageFixture {
	ctrl := gomock.NewController(t)
	f := &aiUsageFixture{
		usageRepo:  repomocks.NewMockAIUsageRepository(ctrl),
		teamRepo:   repomocks.NewMockTeamRepository(ctrl),
		configRepo: repomocks.NewMockSystemConfigRepository(ctrl),
		metrics:    metrics.New(),
	}
	f.service = NewAIUsageService(f.usageRepo, f.teamRepo, f.configRepo, 100000, newTestClock(), f.metrics, nil)
	return f
}

func TestAIUsageService_RecordUsage(t *testing.T) {
	teamID := primitive.NewObjectID()
	userID := primitive.NewObjectID()

	t.Run("records weighted usage and bumps aggregate", func(t *testing.T) {
		f := newAIUsageFixture(t)

		f.usageRepo.EXPECT().
			InsertRecord(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *models.AIUsageRecord) error {
				assert.Equal(t, 2024, r.SeasonYear)
				assert.Equal(t, int64(400), r.RawTokens)
				assert.Equal(t, 0.75, r.RoleWeight)
				assert.Equal(t, "chat", r.Feature)
				return nil
			})
		f.usageRepo.EXPECT().
			Increment(gomock.Any(), teamID, 2024, int64(300), testNow).
			Return(&models.AIUsage{TokensUsed: 300, RequestsCount: 1}, nil)
		f.teamRepo.EXPECT().IncrementAIUsage(gomock.Any(), teamID, int64(300)).Return(nil)

		record, err := f.service.RecordUsage(context.Background(), teamID, userID, models.RoleAssistantCoach, "chat", 400)

		require.NoError(t, err)
		assert.Equal(t, int64(300), record.WeightedTokens)
		count, err := testutil.GatherAndCount(f.metrics.Registry(), "braik_ai_weighted_tokens_total")
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("ignores team counter failure", func(t *testing.T) {
		f := newAIUsageFixture(t)

		f.usageRepo.EXPECT().InsertRecord(gomock.Any(), gomock.Any()).Return(nil)
		f.usageRepo.EXPECT().Increment(gomock.Any(), teamID, 2024, int64(10), testNow).Return(&models.AIUsage{}, nil)
		f.teamRepo.EXPECT().IncrementAIUsage(gomock.Any(), teamID, int64(10)).Return(assert.AnError)

		_, err := f.service.RecordUsage(context.Background(), teamID, userID, models.RoleHeadCoach, "chat", 10)

		require.NoError(t, err)
	})

	t.Run("fails when aggregate update fails", func(t *testing.T) {
		f := newAIUsageFixture(t)

		f.usageRepo.EXPECT().InsertRecord(gomock.Any(), gomock.Any()).Return(nil)
		f.usageRepo.EXPECT().Increment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, assert.AnError)

		_, err := f.service.RecordUsage(context.Background(), teamID, userID, models.RolePlayer, "chat", 10)

		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("clamps negative token counts", func(t *testing.T) {
		f := newAIUsageFixture(t)

		f.usageRepo.EXPECT().InsertRecord(gomock.Any(), gomock.Any()).Return(nil)
		f.usageRepo.EXPECT().Increment(gomock.Any(), teamID, 2024, int64(0), testNow).Return(&models.AIUsage{}, nil)
		f.teamRepo.EXPECT().IncrementAIUsage(gomock.Any(), teamID, int64(0)).Return(nil)

		record, err := f.service.RecordUsage(context.Background(), teamID, userID, models.RolePlayer, "chat", -50)

		require.NoError(t, err)
		assert.Zero(t, record.RawTokens)
	})
}

func TestAIUsageService_GetUsage(t *testing.T) {
	teamID := primitive.NewObjectID()

	t.Run("uses team credits when set", func(t *testing.T) {
		f := newAIUsageFixture(t)

		f.teamRepo.EXPECT().FindByID(gomock.Any(), teamID).Return(&models.Team{ID: teamID, BaseAICredits: 1000}, nil)
		f.usageRepo.EXPECT().Find(gomock.Any(), teamID, 2024).Return(&models.AIUsage{TokensUsed: 850, RequestsCount: 12}, nil)

		summary, err := f.service.GetUsage(context.Background(), teamID)

		require.NoError(t, err)
		assert.Equal(t, int64(1000), summary.Limit)
		assert.Equal(t, int64(12), summary.RequestsCount)
		assert.Equal(t, models.AIModeSuggestionOnly, summary.Mode)
	})

	t.Run("falls back to system config", func(t *testing.T) {
		f := newAIUsageFixture(t)

		f.teamRepo.EXPECT().FindByID(gomock.Any(), teamID).Return(&models.Team{ID: teamID}, nil)
		f.configRepo.EXPECT().FindLatest(gomock.Any(), ConfigKeyAIDefaultCredits).
			Return(&models.SystemConfig{Value: int32(500)}, nil)
		f.usageRepo.EXPECT().Find(gomock.Any(), teamID, 2024).Return(&models.AIUsage{TokensUsed: 500}, nil)

		summary, err := f.service.GetUsage(context.Background(), teamID)

		require.NoError(t, err)
		assert.Equal(t, int64(500), summary.Limit)
		assert.Equal(t, models.AIModeDisabled, summary.Mode)
	})

	t.Run("falls back to configured default", func(t *testing.T) {
		f := newAIUsageFixture(t)

		f.teamRepo.EXPECT().FindByID(gomock.Any(), teamID).Return(&models.Team{ID: teamID}, nil)
		f.configRepo.EXPECT().FindLatest(gomock.Any(), ConfigKeyAIDefaultCredits).Return(nil, apperrors.ErrConfigNotFound)
		f.usageRepo.EXPECT().Find(gomock.Any(), teamID, 2024).Return(&models.AIUsage{}, nil)

		summary, err := f.service.GetUsage(context.Background(), teamID)

		require.NoError(t, err)
		assert.Equal(t, int64(100000), summary.Limit)
		assert.Equal(t, models.AIModeFull, summary.Mode)
	})

	t.Run("ignores non-numeric config", func(t *testing.T) {
		f := newAIUsageFixture(t)

		f.teamRepo.EXPECT().FindByID(gomock.Any(), teamID).Return(&models.Team{ID: teamID}, nil)
		f.configRepo.EXPECT().FindLatest(gomock.Any(), ConfigKeyAIDefaultCredits).
			Return(&models.SystemConfig{Value: bson.M{"credits": 5}}, nil)
		f.usageRepo.EXPECT().Find(gomock.Any(), teamID, 2024).Return(&models.AIUsage{}, nil)

		summary, err := f.service.GetUsage(context.Background(), teamID)

		require.NoError(t, err)
		assert.Equal(t, int64(100000), summary.Limit)
	})
}

func TestAIUsageService_SeasonRollsWithClock(t *testing.T) {
	ctrl := gomock.NewController(t)
	usageRepo := repomocks.NewMockAIUsageRepository(ctrl)
	teamRepo := repomocks.NewMockTeamRepository(ctrl)
	clk := newTestClock()
	service := NewAIUsageService(usageRepo, teamRepo, repomocks.NewMockSystemConfigRepository(ctrl), 100, clk, nil, nil)
	teamID := primitive.NewObjectID()

	teamRepo.EXPECT().FindByID(gomock.Any(), teamID).Return(&models.Team{ID: teamID, BaseAICredits: 100}, nil).Times(2)
	usageRepo.EXPECT().Find(gomock.Any(), teamID, 2024).Return(&models.AIUsage{TokensUsed: 100}, nil)
	usageRepo.EXPECT().Find(gomock.Any(), teamID, 2025).Return(&models.AIUsage{}, nil)

	mode, err := service.Mode(context.Background(), teamID)
	require.NoError(t, err)
	assert.Equal(t, models.AIModeDisabled, mode)

	clk.Set(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	mode, err = service.Mode(context.Background(), teamID)
	require.NoError(t, err)
	assert.Equal(t, models.AIModeFull, mode)
}
