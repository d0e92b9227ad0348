package service

import (
	"context"

	"braik-api/internal/audit"
	"braik-api/internal/models"
	"braik-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminService handles platform-level team administration.
type AdminService struct {
	teamRepo repository.TeamRepository
	audit    audit.Logger
}

// NewAdminService creates a new AdminService.
func NewAdminService(teamRepo repository.TeamRepository, auditLog audit.Logger) *AdminService {
	return &AdminService{teamRepo: teamRepo, audit: auditLog}
}

// ListTeams lists every team on the platform.
func (s *AdminService) ListTeams(ctx context.Context, page, limit int) (*models.TeamListResponse, error) {
	page, limit = normalizePage(page, limit, 100)

	teams, total, err := s.teamRepo.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	return &models.TeamListResponse{
		Items:      teams,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

// UpdateTeamStatus sets a team's lifecycle and subscription state.
func (s *AdminService) UpdateTeamStatus(ctx context.Context, actorID, teamID primitive.ObjectID, req *models.UpdateTeamStatusRequest) (*models.Team, error) {
	before, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	team, err := s.teamRepo.UpdateStatus(ctx, teamID, req)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.PlatformEntry(actorID, audit.ActionTeamStatusChanged, "team", teamID.Hex()).
		With(map[string]any{
			"teamId": teamID.Hex(),
			"from": map[string]any{
				"teamStatus":         string(before.TeamStatus),
				"subscriptionStatus": string(before.SubscriptionStatus),
			},
			"to": map[string]any{
				"teamStatus":         string(team.TeamStatus),
				"subscriptionStatus": string(team.SubscriptionStatus),
			},
			"reason": req.Reason,
		}))

	return team, nil
}

// UpdateTeamAISettings changes platform AI controls for a team.
func (s *AdminService) UpdateTeamAISettings(ctx context.Context, actorID, teamID primitive.ObjectID, req *models.UpdateTeamAISettingsRequest) (*models.Team, error) {
	team, err := s.teamRepo.UpdateAISettings(ctx, teamID, req)
	if err != nil {
		return nil, err
	}

	changed := map[string]any{"teamId": teamID.Hex()}
	if req.AIEnabled != nil {
		changed["aiEnabled"] = *req.AIEnabled
	}
	if req.AIDisabledByPlatform != nil {
		changed["aiDisabledByPlatform"] = *req.AIDisabledByPlatform
	}
	if req.BaseAICredits != nil {
		changed["baseAiCredits"] = *req.BaseAICredits
	}
	s.audit.Record(ctx, audit.PlatformEntry(actorID, audit.ActionTeamAISettingsChanged, "team", teamID.Hex()).With(changed))

	return team, nil
}
