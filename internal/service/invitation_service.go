package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"braik-api/internal/audit"
	"braik-api/internal/authz"
	"braik-api/internal/clock"
	apperrors "braik-api/internal/errors"
	"braik-api/internal/models"
	"braik-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InvitationTTL is how long an invitation can be accepted.
const InvitationTTL = 7 * 24 * time.Hour

// InvitationService handles team invitations.
type InvitationService struct {
	invitationRepo repository.InvitationRepository
	memberRepo     repository.MembershipRepository
	teamRepo       repository.TeamRepository
	userRepo       repository.UserRepository
	audit          audit.Logger
	clock          clock.Clock
}

// NewInvitationService creates a new InvitationService.
func NewInvitationService(
	invitationRepo repository.InvitationRepository,
	memberRepo repository.MembershipRepository,
	teamRepo repository.TeamRepository,
	userRepo repository.UserRepository,
	auditLog audit.Logger,
	clk clock.Clock,
) *InvitationService {
	return &InvitationService{
		invitationRepo: invitationRepo,
		memberRepo:     memberRepo,
		teamRepo:       teamRepo,
		userRepo:       userRepo,
		audit:          auditLog,
		clock:          clk,
	}
}

// CreateInvitation invites an email address to the team.
func (s *InvitationService) CreateInvitation(ctx context.Context, teamID, inviterID primitive.ObjectID, req *models.CreateInvitationRequest) (*models.Invitation, error) {
	if !req.Role.Valid() {
		return nil, apperrors.ErrInvalidRole
	}
	now := s.clock.Now()

	// Existing accounts that are already on the roster cannot be invited again.
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	switch {
	case err == nil:
		if _, err := s.memberRepo.FindByTeamAndUser(ctx, teamID, user.ID); err == nil {
			return nil, apperrors.ErrAlreadyMember
		} else if !errors.Is(err, apperrors.ErrNotTeamMember) {
			return nil, err
		}
	case !errors.Is(err, apperrors.ErrUserNotFound):
		return nil, err
	}

	if _, err := s.invitationRepo.FindByTeamAndEmail(ctx, teamID, req.Email, now); err == nil {
		return nil, apperrors.ErrPendingInvitation
	} else if !errors.Is(err, apperrors.ErrInvitationNotFound) {
		return nil, err
	}

	invitation := &models.Invitation{
		TeamID:    teamID,
		Email:     req.Email,
		InvitedBy: inviterID,
		Role:      req.Role,
		ExpiresAt: now.Add(InvitationTTL),
		CreatedAt: now,
	}
	if err := s.invitationRepo.Create(ctx, invitation); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.TeamEntry(teamID, inviterID, audit.ActionInvitationCreated, "invitation", invitation.ID.Hex()).
		With(map[string]any{"email": invitation.Email, "role": string(invitation.Role)}))

	return invitation, nil
}

// ListTeamInvitations lists pending invitations for a team.
func (s *InvitationService) ListTeamInvitations(ctx context.Context, teamID primitive.ObjectID) (*models.InvitationListResponse, error) {
	invitations, err := s.invitationRepo.FindByTeamID(ctx, teamID, s.clock.Now())
	if err != nil {
		return nil, err
	}
	return &models.InvitationListResponse{Items: invitations}, nil
}

// CancelInvitation withdraws a pending invitation.
func (s *InvitationService) CancelInvitation(ctx context.Context, actorID, teamID, invitationID primitive.ObjectID) error {
	invitation, err := s.invitationRepo.FindByID(ctx, invitationID)
	if err != nil {
		return err
	}
	if invitation.TeamID != teamID {
		return apperrors.ErrInvitationNotFound
	}

	if err := s.invitationRepo.Delete(ctx, invitationID); err != nil {
		return err
	}

	s.audit.Record(ctx, audit.TeamEntry(teamID, actorID, audit.ActionInvitationCancelled, "invitation", invitationID.Hex()))
	return nil
}

// ListMyInvitations lists the pending invitations addressed to an email,
// with team and inviter details. Invitations to deleted teams are skipped.
func (s *InvitationService) ListMyInvitations(ctx context.Context, userEmail string) (*models.MyInvitationListResponse, error) {
	invitations, err := s.invitationRepo.FindByEmail(ctx, userEmail, s.clock.Now())
	if err != nil {
		return nil, err
	}

	inviterIDs := make([]primitive.ObjectID, 0, len(invitations))
	for _, inv := range invitations {
		inviterIDs = append(inviterIDs, inv.InvitedBy)
	}
	inviters, err := s.userRepo.FindByIDs(ctx, inviterIDs)
	if err != nil {
		return nil, err
	}

	teams := make(map[primitive.ObjectID]*models.Team)
	items := make([]models.InvitationWithDetails, 0, len(invitations))
	for _, inv := range invitations {
		team, ok := teams[inv.TeamID]
		if !ok {
			team, err = s.teamRepo.FindByID(ctx, inv.TeamID)
			if errors.Is(err, apperrors.ErrTeamNotFound) {
				teams[inv.TeamID] = nil
				continue
			}
			if err != nil {
				return nil, err
			}
			teams[inv.TeamID] = team
		}
		if team == nil {
			continue
		}

		item := models.InvitationWithDetails{
			ID:        inv.ID,
			Team:      team.Summary(),
			Role:      inv.Role,
			ExpiresAt: inv.ExpiresAt,
			CreatedAt: inv.CreatedAt,
		}
		if inviter, ok := inviters[inv.InvitedBy]; ok {
			item.InvitedBy = inviter.Summary()
		}
		items = append(items, item)
	}

	return &models.MyInvitationListResponse{Items: items}, nil
}

// AcceptInvitation adds the invited user to the team and consumes the invitation.
// Joining is a write on the team, so the team must pass the write guard.
func (s *InvitationService) AcceptInvitation(ctx context.Context, invitationID primitive.ObjectID, user *models.SessionUser) (*models.AcceptInvitationResponse, error) {
	invitation, err := s.invitationFor(ctx, invitationID, user)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if !now.Before(invitation.ExpiresAt) {
		return nil, apperrors.ErrInvitationExpired
	}

	team, err := s.teamRepo.FindByID(ctx, invitation.TeamID)
	if err != nil {
		return nil, err
	}
	if err := authz.CheckTeamOperation(team, authz.OpWrite); err != nil {
		return nil, err
	}

	membership := &models.Membership{
		TeamID:   invitation.TeamID,
		UserID:   user.ID,
		Role:     invitation.Role,
		JoinedAt: now,
	}
	if err := s.memberRepo.Create(ctx, membership); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyMember) {
			_ = s.invitationRepo.Delete(ctx, invitationID)
		}
		return nil, err
	}

	// The membership exists now; a leftover invitation only clutters listings.
	_ = s.invitationRepo.Delete(ctx, invitationID)

	s.audit.Record(ctx, audit.TeamEntry(invitation.TeamID, user.ID, audit.ActionInvitationAccepted, "invitation", invitationID.Hex()).
		With(map[string]any{"role": string(invitation.Role)}))

	return &models.AcceptInvitationResponse{
		Message: "invitation accepted",
		TeamID:  invitation.TeamID.Hex(),
	}, nil
}

// DeclineInvitation deletes an invitation addressed to the user.
func (s *InvitationService) DeclineInvitation(ctx context.Context, invitationID primitive.ObjectID, user *models.SessionUser) error {
	invitation, err := s.invitationFor(ctx, invitationID, user)
	if err != nil {
		return err
	}

	if err := s.invitationRepo.Delete(ctx, invitationID); err != nil {
		return err
	}

	s.audit.Record(ctx, audit.TeamEntry(invitation.TeamID, user.ID, audit.ActionInvitationDeclined, "invitation", invitationID.Hex()))
	return nil
}

func (s *InvitationService) invitationFor(ctx context.Context, invitationID primitive.ObjectID, user *models.SessionUser) (*models.Invitation, error) {
	invitation, err := s.invitationRepo.FindByID(ctx, invitationID)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(strings.TrimSpace(user.Email), invitation.Email) {
		return nil, apperrors.ErrInvitationEmailMismatch
	}
	return invitation, nil
}
