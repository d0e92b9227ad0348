package service

import (
	"context"

	"braik-api/internal/models"
	"braik-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuditLogService reads audit rows back. There is no write or delete path here.
type AuditLogService struct {
	repo repository.AuditLogRepository
}

// NewAuditLogService creates a new AuditLogService.
func NewAuditLogService(repo repository.AuditLogRepository) *AuditLogService {
	return &AuditLogService{repo: repo}
}

// ListTeamLogs lists one team's audit rows.
func (s *AuditLogService) ListTeamLogs(ctx context.Context, teamID primitive.ObjectID, filter models.AuditLogFilter, page, limit int) (*models.AuditLogListResponse, error) {
	filter.TeamID = &teamID
	return s.list(ctx, models.AuditScopeTeam, filter, page, limit)
}

// ListPlatformLogs lists platform-scoped audit rows.
func (s *AuditLogService) ListPlatformLogs(ctx context.Context, filter models.AuditLogFilter, page, limit int) (*models.AuditLogListResponse, error) {
	return s.list(ctx, models.AuditScopePlatform, filter, page, limit)
}

func (s *AuditLogService) list(ctx context.Context, scope models.AuditScope, filter models.AuditLogFilter, page, limit int) (*models.AuditLogListResponse, error) {
	page, limit = normalizePage(page, limit, 100)

	items, total, err := s.repo.List(ctx, scope, filter, page, limit)
	if err != nil {
		return nil, err
	}

	return &models.AuditLogListResponse{
		Items:      items,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}
