package service

import (
	"context"

	"braik-api/internal/audit"
	"braik-api/internal/clock"
	"braik-api/internal/models"
	"braik-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AnnouncementService handles team announcements.
type AnnouncementService struct {
	repo  repository.AnnouncementRepository
	audit audit.Logger
	clock clock.Clock
}

// NewAnnouncementService creates a new AnnouncementService.
func NewAnnouncementService(repo repository.AnnouncementRepository, auditLog audit.Logger, clk clock.Clock) *AnnouncementService {
	return &AnnouncementService{repo: repo, audit: auditLog, clock: clk}
}

// VisibleAudiences returns the audiences a role may read. Nil means every audience.
func VisibleAudiences(role models.Role) []string {
	switch role {
	case models.RoleHeadCoach, models.RoleAssistantCoach:
		return nil
	case models.RolePlayer:
		return []string{models.AudienceAll, models.AudiencePlayers}
	case models.RoleParent:
		return []string{models.AudienceAll, models.AudienceParents}
	default:
		return []string{models.AudienceAll}
	}
}

// ListAnnouncements lists the announcements visible to role, newest first.
func (s *AnnouncementService) ListAnnouncements(ctx context.Context, teamID primitive.ObjectID, role models.Role, page, limit int) (*models.AnnouncementListResponse, error) {
	page, limit = normalizePage(page, limit, 100)

	items, total, err := s.repo.FindByTeamID(ctx, teamID, VisibleAudiences(role), page, limit)
	if err != nil {
		return nil, err
	}

	return &models.AnnouncementListResponse{
		Items:      items,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

// CreateAnnouncement posts an announcement to the team.
func (s *AnnouncementService) CreateAnnouncement(ctx context.Context, actorID, teamID primitive.ObjectID, req *models.CreateAnnouncementRequest) (*models.Announcement, error) {
	announcement := &models.Announcement{
		TeamID:    teamID,
		AuthorID:  actorID,
		Title:     req.Title,
		Body:      req.Body,
		Audience:  req.Audience,
		CreatedAt: s.clock.Now(),
	}
	if err := s.repo.Create(ctx, announcement); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.TeamEntry(teamID, actorID, audit.ActionAnnouncementCreated, "announcement", announcement.ID.Hex()).
		With(map[string]any{"audience": announcement.Audience}))

	return announcement, nil
}

// DeleteAnnouncement removes an announcement.
func (s *AnnouncementService) DeleteAnnouncement(ctx context.Context, actorID, teamID, announcementID primitive.ObjectID) error {
	if err := s.repo.Delete(ctx, teamID, announcementID); err != nil {
		return err
	}

	s.audit.Record(ctx, audit.TeamEntry(teamID, actorID, audit.ActionAnnouncementDeleted, "announcement", announcementID.Hex()))
	return nil
}
