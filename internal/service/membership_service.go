package service

import (
	"context"

	"braik-api/internal/audit"
	"braik-api/internal/clock"
	apperrors "braik-api/internal/errors"
	"braik-api/internal/models"
	"braik-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MembershipService handles roster operations.
type MembershipService struct {
	memberRepo repository.MembershipRepository
	userRepo   repository.UserRepository
	audit      audit.Logger
	clock      clock.Clock
}

// NewMembershipService creates a new MembershipService.
func NewMembershipService(
	memberRepo repository.MembershipRepository,
	userRepo repository.UserRepository,
	auditLog audit.Logger,
	clk clock.Clock,
) *MembershipService {
	return &MembershipService{
		memberRepo: memberRepo,
		userRepo:   userRepo,
		audit:      auditLog,
		clock:      clk,
	}
}

// ListMembers returns the roster with user details expanded.
func (s *MembershipService) ListMembers(ctx context.Context, teamID primitive.ObjectID) (*models.MembershipListResponse, error) {
	memberships, err := s.memberRepo.FindByTeamID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	userIDs := make([]primitive.ObjectID, len(memberships))
	for i, m := range memberships {
		userIDs[i] = m.UserID
	}

	users, err := s.userRepo.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	items := make([]models.MembershipWithUser, len(memberships))
	for i, m := range memberships {
		items[i] = models.MembershipWithUser{Membership: m}
		if u, ok := users[m.UserID]; ok {
			items[i].User = u.Summary()
		}
	}

	return &models.MembershipListResponse{Items: items}, nil
}

// AddMember puts an existing user on the roster directly.
func (s *MembershipService) AddMember(ctx context.Context, actorID, teamID primitive.ObjectID, req *models.AddMemberRequest) (*models.MembershipWithUser, error) {
	if !req.Role.Valid() {
		return nil, apperrors.ErrInvalidRole
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	membership := &models.Membership{
		TeamID:      teamID,
		UserID:      user.ID,
		Role:        req.Role,
		Permissions: req.Permissions,
		JoinedAt:    s.clock.Now(),
	}
	if err := s.memberRepo.Create(ctx, membership); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.TeamEntry(teamID, actorID, audit.ActionMemberAdded, "membership", user.ID.Hex()).
		With(map[string]any{"role": string(req.Role)}))

	return &models.MembershipWithUser{Membership: *membership, User: user.Summary()}, nil
}

// UpdateMember changes a member's role and flags.
func (s *MembershipService) UpdateMember(ctx context.Context, actorID, teamID, targetUserID primitive.ObjectID, req *models.UpdateMemberRequest) (*models.Membership, error) {
	if !req.Role.Valid() {
		return nil, apperrors.ErrInvalidRole
	}

	current, err := s.memberRepo.FindByTeamAndUser(ctx, teamID, targetUserID)
	if err != nil {
		return nil, err
	}

	if current.Role == models.RoleHeadCoach && req.Role != models.RoleHeadCoach {
		if err := s.ensureAnotherHeadCoach(ctx, teamID); err != nil {
			return nil, err
		}
	}

	updated, err := s.memberRepo.Update(ctx, teamID, targetUserID, req.Role, req.Permissions)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.TeamEntry(teamID, actorID, audit.ActionMemberRoleChanged, "membership", targetUserID.Hex()).
		With(map[string]any{"from": string(current.Role), "to": string(req.Role)}))

	return updated, nil
}

// RemoveMember takes another user off the roster.
func (s *MembershipService) RemoveMember(ctx context.Context, actorID, teamID, targetUserID primitive.ObjectID) error {
	if actorID == targetUserID {
		return apperrors.ErrCannotRemoveSelf
	}

	if err := s.removeMembership(ctx, teamID, targetUserID); err != nil {
		return err
	}

	s.audit.Record(ctx, audit.TeamEntry(teamID, actorID, audit.ActionMemberRemoved, "membership", targetUserID.Hex()))
	return nil
}

// LeaveTeam removes the caller from the roster.
func (s *MembershipService) LeaveTeam(ctx context.Context, teamID, userID primitive.ObjectID) error {
	if err := s.removeMembership(ctx, teamID, userID); err != nil {
		return err
	}

	s.audit.Record(ctx, audit.TeamEntry(teamID, userID, audit.ActionMemberLeft, "membership", userID.Hex()))
	return nil
}

func (s *MembershipService) removeMembership(ctx context.Context, teamID, userID primitive.ObjectID) error {
	membership, err := s.memberRepo.FindByTeamAndUser(ctx, teamID, userID)
	if err != nil {
		return err
	}

	if membership.Role == models.RoleHeadCoach {
		if err := s.ensureAnotherHeadCoach(ctx, teamID); err != nil {
			return err
		}
	}

	return s.memberRepo.Delete(ctx, teamID, userID)
}

// ensureAnotherHeadCoach fails when the team has a single head coach left.
func (s *MembershipService) ensureAnotherHeadCoach(ctx context.Context, teamID primitive.ObjectID) error {
	count, err := s.memberRepo.CountByRole(ctx, teamID, models.RoleHeadCoach)
	if err != nil {
		return err
	}
	if count <= 1 {
		return apperrors.ErrLastHeadCoach
	}
	return nil
}
