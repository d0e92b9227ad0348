package service

import (
	"context"

	"braik-api/internal/audit"
	"braik-api/internal/clock"
	"braik-api/internal/models"
	"braik-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SystemConfigService manages versioned platform settings. Every write
// appends a new version; nothing is updated in place.
type SystemConfigService struct {
	repo  repository.SystemConfigRepository
	audit audit.Logger
	clock clock.Clock
}

// NewSystemConfigService creates a new SystemConfigService.
func NewSystemConfigService(repo repository.SystemConfigRepository, auditLog audit.Logger, clk clock.Clock) *SystemConfigService {
	return &SystemConfigService{repo: repo, audit: auditLog, clock: clk}
}

// Get returns the latest version of key.
func (s *SystemConfigService) Get(ctx context.Context, key string) (*models.SystemConfig, error) {
	return s.repo.FindLatest(ctx, key)
}

// Put writes value as the next version of key.
func (s *SystemConfigService) Put(ctx context.Context, actorID primitive.ObjectID, key string, value any) (*models.SystemConfig, error) {
	version, err := s.repo.NextVersion(ctx, key)
	if err != nil {
		return nil, err
	}

	cfg := &models.SystemConfig{
		Key:       key,
		Version:   version,
		Value:     value,
		UpdatedBy: actorID,
		CreatedAt: s.clock.Now(),
	}
	if err := s.repo.Insert(ctx, cfg); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.PlatformEntry(actorID, audit.ActionConfigUpdated, "system_config", key).
		With(map[string]any{"version": version}))

	return cfg, nil
}

// History lists versions of key, newest first.
func (s *SystemConfigService) History(ctx context.Context, key string, limit int) (*models.SystemConfigListResponse, error) {
	_, limit = normalizePage(1, limit, 200)

	items, err := s.repo.FindHistory(ctx, key, limit)
	if err != nil {
		return nil, err
	}
	return &models.SystemConfigListResponse{Items: items}, nil
}
