package service

import (
	"context"
	"errors"
	"fmt"

	"braik-api/internal/audit"
	"braik-api/internal/clock"
	apperrors "braik-api/internal/errors"
	"braik-api/internal/models"
	"braik-api/internal/repository"

	"github.com/gosimple/slug"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// maxSlugAttempts bounds the suffixes tried when a generated slug collides.
const maxSlugAttempts = 5

// TeamService handles business logic for team operations.
type TeamService struct {
	teamRepo       repository.TeamRepository
	memberRepo     repository.MembershipRepository
	invitationRepo repository.InvitationRepository
	audit          audit.Logger
	clock          clock.Clock
}

// NewTeamService creates a new TeamService.
func NewTeamService(
	teamRepo repository.TeamRepository,
	memberRepo repository.MembershipRepository,
	invitationRepo repository.InvitationRepository,
	auditLog audit.Logger,
	clk clock.Clock,
) *TeamService {
	return &TeamService{
		teamRepo:       teamRepo,
		memberRepo:     memberRepo,
		invitationRepo: invitationRepo,
		audit:          auditLog,
		clock:          clk,
	}
}

// CreateTeam creates a new team and adds the creator as head coach.
// When no slug is given one is derived from the name.
func (s *TeamService) CreateTeam(ctx context.Context, userID primitive.ObjectID, req *models.CreateTeamRequest) (*models.Team, error) {
	team := &models.Team{
		Name:    req.Name,
		Sport:   req.Sport,
		OwnerID: userID,
	}

	if err := s.createWithSlug(ctx, team, req.Slug); err != nil {
		return nil, err
	}

	member := &models.Membership{
		TeamID:   team.ID,
		UserID:   userID,
		Role:     models.RoleHeadCoach,
		JoinedAt: s.clock.Now(),
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		// Rollback team creation on failure
		_ = s.teamRepo.SoftDelete(ctx, team.ID)
		return nil, err
	}

	s.audit.Record(ctx, audit.TeamEntry(team.ID, userID, audit.ActionTeamCreated, "team", team.ID.Hex()).
		With(map[string]any{"name": team.Name, "slug": team.Slug}))

	return team, nil
}

func (s *TeamService) createWithSlug(ctx context.Context, team *models.Team, requested string) error {
	if requested != "" {
		team.Slug = requested
		return s.teamRepo.Create(ctx, team)
	}

	base := slug.Make(team.Name)
	if base == "" {
		base = "team"
	}

	for attempt := 1; attempt <= maxSlugAttempts; attempt++ {
		team.Slug = base
		if attempt > 1 {
			team.Slug = fmt.Sprintf("%s-%d", base, attempt)
		}
		err := s.teamRepo.Create(ctx, team)
		if !errors.Is(err, apperrors.ErrTeamSlugTaken) {
			return err
		}
	}
	return apperrors.ErrTeamSlugTaken
}

// ListTeams returns paginated teams for a user.
func (s *TeamService) ListTeams(ctx context.Context, userID primitive.ObjectID, page, limit int) (*models.TeamListResponse, error) {
	page, limit = normalizePage(page, limit, 50)

	teams, total, err := s.teamRepo.FindByUserID(ctx, userID, page, limit)
	if err != nil {
		return nil, err
	}

	return &models.TeamListResponse{
		Items:      teams,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

// GetTeam retrieves a team by ID.
func (s *TeamService) GetTeam(ctx context.Context, teamID primitive.ObjectID) (*models.Team, error) {
	return s.teamRepo.FindByID(ctx, teamID)
}

// UpdateTeam updates a team's information.
func (s *TeamService) UpdateTeam(ctx context.Context, actorID, teamID primitive.ObjectID, req *models.UpdateTeamRequest) (*models.Team, error) {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	changed := map[string]any{}
	if req.Name != nil {
		team.Name = *req.Name
		changed["name"] = team.Name
	}
	if req.Slug != nil {
		// Check if new slug is taken by another team
		existing, err := s.teamRepo.FindBySlug(ctx, *req.Slug)
		if err == nil && existing.ID != teamID {
			return nil, apperrors.ErrTeamSlugTaken
		}
		if err != nil && !errors.Is(err, apperrors.ErrTeamNotFound) {
			return nil, err
		}
		team.Slug = *req.Slug
		changed["slug"] = team.Slug
	}
	if req.Sport != nil {
		team.Sport = *req.Sport
		changed["sport"] = team.Sport
	}

	if err := s.teamRepo.Update(ctx, team); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.TeamEntry(teamID, actorID, audit.ActionTeamUpdated, "team", teamID.Hex()).With(changed))

	return team, nil
}

// DeleteTeam soft deletes a team and removes its roster and pending invitations.
func (s *TeamService) DeleteTeam(ctx context.Context, actorID, teamID primitive.ObjectID) error {
	if err := s.memberRepo.DeleteAllByTeamID(ctx, teamID); err != nil {
		return err
	}

	if err := s.invitationRepo.DeleteAllByTeamID(ctx, teamID); err != nil {
		return err
	}

	if err := s.teamRepo.SoftDelete(ctx, teamID); err != nil {
		return err
	}

	s.audit.Record(ctx, audit.TeamEntry(teamID, actorID, audit.ActionTeamDeleted, "team", teamID.Hex()))
	return nil
}
