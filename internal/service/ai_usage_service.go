package service

import (
	"context"
	"errors"
	"math"

	"braik-api/internal/clock"
	apperrors "braik-api/internal/errors"
	"braik-api/internal/metrics"
	"braik-api/internal/models"
	"braik-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ConfigKeyAIDefaultCredits is the system config key holding the season
// credit limit for teams without their own baseAiCredits.
const ConfigKeyAIDefaultCredits = "ai.default_credits"

// Mode thresholds as fractions of the limit: suggestion_only from 4/5, disabled at 1.
const (
	suggestionOnlyNumerator   = 4
	suggestionOnlyDenominator = 5
)

var roleWeights = map[models.Role]float64{
	models.RoleHeadCoach:      1.0,
	models.RoleAssistantCoach: 0.75,
	models.RolePlayer:         0.25,
	models.RoleParent:         0.25,
}

const defaultRoleWeight = 0.25

// RoleWeight returns the usage weight applied to a role's raw tokens.
func RoleWeight(role models.Role) float64 {
	if w, ok := roleWeights[role]; ok {
		return w
	}
	return defaultRoleWeight
}

// WeightedTokens converts raw tokens into weighted usage, rounding half away from zero.
func WeightedTokens(rawTokens int64, role models.Role) int64 {
	return int64(math.Round(float64(rawTokens) * RoleWeight(role)))
}

// ModeFor derives the assistant mode from usage and limit.
// A non-positive limit leaves nothing to spend.
func ModeFor(tokensUsed, limit int64) models.AIMode {
	switch {
	case limit <= 0 || tokensUsed >= limit:
		return models.AIModeDisabled
	case tokensUsed*suggestionOnlyDenominator >= limit*suggestionOnlyNumerator:
		return models.AIModeSuggestionOnly
	default:
		return models.AIModeFull
	}
}

// AIUsageService records weighted assistant usage and derives the team's mode.
type AIUsageService struct {
	usageRepo      repository.AIUsageRepository
	teamRepo       repository.TeamRepository
	configRepo     repository.SystemConfigRepository
	defaultCredits int64
	clock          clock.Clock
	metrics        *metrics.Metrics
	log            *zap.Logger
}

// NewAIUsageService creates a new AIUsageService. m may be nil.
func NewAIUsageService(
	usageRepo repository.AIUsageRepository,
	teamRepo repository.TeamRepository,
	configRepo repository.SystemConfigRepository,
	defaultCredits int64,
	clk clock.Clock,
	m *metrics.Metrics,
	log *zap.Logger,
) *AIUsageService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AIUsageService{
		usageRepo:      usageRepo,
		teamRepo:       teamRepo,
		configRepo:     configRepo,
		defaultCredits: defaultCredits,
		clock:          clk,
		metrics:        m,
		log:            log.Named("ai_usage"),
	}
}

// SeasonYear is the UTC calendar year of the service clock.
func (s *AIUsageService) SeasonYear() int {
	return s.clock.Now().UTC().Year()
}

// RecordUsage stores one weighted usage event and bumps the season aggregate.
func (s *AIUsageService) RecordUsage(ctx context.Context, teamID, userID primitive.ObjectID, role models.Role, feature string, rawTokens int64) (*models.AIUsageRecord, error) {
	if rawTokens < 0 {
		rawTokens = 0
	}
	now := s.clock.Now()

	record := &models.AIUsageRecord{
		TeamID:         teamID,
		UserID:         userID,
		SeasonYear:     now.UTC().Year(),
		Role:           role,
		Feature:        feature,
		RawTokens:      rawTokens,
		RoleWeight:     RoleWeight(role),
		WeightedTokens: WeightedTokens(rawTokens, role),
		CreatedAt:      now,
	}
	if err := s.usageRepo.InsertRecord(ctx, record); err != nil {
		return nil, err
	}

	if _, err := s.usageRepo.Increment(ctx, teamID, record.SeasonYear, record.WeightedTokens, now); err != nil {
		return nil, err
	}

	// The team counter is a display convenience; the aggregate is authoritative.
	if err := s.teamRepo.IncrementAIUsage(ctx, teamID, record.WeightedTokens); err != nil {
		s.log.Warn("failed to bump team usage counter",
			zap.String("teamId", teamID.Hex()),
			zap.Error(err),
		)
	}

	s.metrics.AIUsageRecorded(string(role), record.WeightedTokens)
	return record, nil
}

// Mode re-reads the aggregate and limit and derives the current mode.
func (s *AIUsageService) Mode(ctx context.Context, teamID primitive.ObjectID) (models.AIMode, error) {
	summary, err := s.GetUsage(ctx, teamID)
	if err != nil {
		return "", err
	}
	return summary.Mode, nil
}

// GetUsage returns this season's aggregate, the limit, and the derived mode.
func (s *AIUsageService) GetUsage(ctx context.Context, teamID primitive.ObjectID) (*models.AIUsageSummary, error) {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	limit, err := s.limitFor(ctx, team)
	if err != nil {
		return nil, err
	}

	year := s.SeasonYear()
	usage, err := s.usageRepo.Find(ctx, teamID, year)
	if err != nil {
		return nil, err
	}

	return &models.AIUsageSummary{
		SeasonYear:    year,
		TokensUsed:    usage.TokensUsed,
		RequestsCount: usage.RequestsCount,
		Limit:         limit,
		Mode:          ModeFor(usage.TokensUsed, limit),
	}, nil
}

// limitFor resolves the season limit: the team's own credits, then the
// platform default from system config, then the configured fallback.
func (s *AIUsageService) limitFor(ctx context.Context, team *models.Team) (int64, error) {
	if team.BaseAICredits > 0 {
		return team.BaseAICredits, nil
	}

	cfg, err := s.configRepo.FindLatest(ctx, ConfigKeyAIDefaultCredits)
	switch {
	case errors.Is(err, apperrors.ErrConfigNotFound):
		return s.defaultCredits, nil
	case err != nil:
		return 0, err
	}

	if n, ok := numericValue(cfg.Value); ok {
		return n, nil
	}
	s.log.Warn("ignoring non-numeric system config value", zap.String("key", ConfigKeyAIDefaultCredits))
	return s.defaultCredits, nil
}

func numericValue(v any) (int64, bool) {
	switch n := v.(type) {
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}
