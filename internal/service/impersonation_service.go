package service

import (
	"context"
	"errors"
	"time"

	"braik-api/internal/audit"
	"braik-api/internal/clock"
	apperrors "braik-api/internal/errors"
	"braik-api/internal/metrics"
	"braik-api/internal/models"
	"braik-api/internal/repository"
	"braik-api/pkg/auth"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Impersonation duration bounds in minutes.
const (
	MinImpersonationMinutes = 5
	MaxImpersonationMinutes = 15
)

// Impersonation metric events.
const (
	impersonationStarted = "start"
	impersonationEnded   = "end"
	impersonationExpired = "expired"
)

// ImpersonationService manages short-lived admin impersonation sessions.
type ImpersonationService struct {
	repo     repository.ImpersonationRepository
	userRepo repository.UserRepository
	tokens   auth.SupportTokenGenerator
	audit    audit.Logger
	clock    clock.Clock
	metrics  *metrics.Metrics
}

// NewImpersonationService creates a new ImpersonationService. m may be nil.
func NewImpersonationService(
	repo repository.ImpersonationRepository,
	userRepo repository.UserRepository,
	tokens auth.SupportTokenGenerator,
	auditLog audit.Logger,
	clk clock.Clock,
	m *metrics.Metrics,
) *ImpersonationService {
	return &ImpersonationService{
		repo:     repo,
		userRepo: userRepo,
		tokens:   tokens,
		audit:    auditLog,
		clock:    clk,
		metrics:  m,
	}
}

// Start opens a session for actor to act as the target user. It returns the
// stored session and the raw token, which is never persisted.
func (s *ImpersonationService) Start(ctx context.Context, actor *models.SessionUser, req *models.StartImpersonationRequest) (*models.ImpersonationSession, string, error) {
	if !actor.IsPlatformAdmin() {
		return nil, "", apperrors.ErrPlatformAdminRequired
	}
	if req.DurationMinutes < MinImpersonationMinutes || req.DurationMinutes > MaxImpersonationMinutes {
		return nil, "", apperrors.ErrInvalidImpersonationDuration
	}

	targetID, err := primitive.ObjectIDFromHex(req.TargetUserID)
	if err != nil {
		return nil, "", apperrors.ErrUserNotFound
	}
	if targetID == actor.ID {
		return nil, "", apperrors.ErrCannotImpersonateSelf
	}
	if _, err := s.userRepo.FindByID(ctx, targetID); err != nil {
		return nil, "", err
	}

	var targetTeamID *primitive.ObjectID
	if req.TargetTeamID != "" {
		id, err := primitive.ObjectIDFromHex(req.TargetTeamID)
		if err != nil {
			return nil, "", apperrors.ErrTeamNotFound
		}
		targetTeamID = &id
	}

	token, hash, err := s.tokens.Generate()
	if err != nil {
		return nil, "", err
	}

	now := s.clock.Now()
	session := &models.ImpersonationSession{
		ActorAdminID: actor.ID,
		TargetUserID: targetID,
		TargetTeamID: targetTeamID,
		TokenHash:    hash,
		Reason:       req.Reason,
		Active:       true,
		ExpiresAt:    now.Add(time.Duration(req.DurationMinutes) * time.Minute),
		CreatedAt:    now,
	}
	if err := s.repo.Create(ctx, session); err != nil {
		return nil, "", err
	}

	metadata := map[string]any{
		"targetUserId":    targetID.Hex(),
		"durationMinutes": req.DurationMinutes,
		"reason":          req.Reason,
	}
	if targetTeamID != nil {
		metadata["targetTeamId"] = targetTeamID.Hex()
	}
	s.audit.Record(ctx, audit.PlatformEntry(actor.ID, audit.ActionImpersonationStart, "impersonation_session", session.ID.Hex()).With(metadata))
	s.metrics.ImpersonationEvent(impersonationStarted)

	return session, token, nil
}

// Resolve returns the live session for a raw token. A session found past its
// expiry is closed on the spot and reported as expired.
func (s *ImpersonationService) Resolve(ctx context.Context, rawToken string) (*models.ImpersonationSession, error) {
	session, err := s.repo.FindByTokenHash(ctx, s.tokens.Hash(rawToken))
	if err != nil {
		return nil, err
	}
	if !session.Active {
		return nil, apperrors.ErrImpersonationInvalid
	}

	now := s.clock.Now()
	if now.Before(session.ExpiresAt) {
		return session, nil
	}

	flipped, err := s.repo.Deactivate(ctx, session.ID, now)
	if err != nil {
		return nil, err
	}
	if flipped {
		s.audit.Record(ctx, audit.PlatformEntry(session.ActorAdminID, audit.ActionImpersonationExpired, "impersonation_session", session.ID.Hex()).
			With(map[string]any{"targetUserId": session.TargetUserID.Hex()}))
		s.metrics.ImpersonationEvent(impersonationExpired)
	}
	return nil, apperrors.ErrImpersonationExpired
}

// End closes the actor's session. Ending an already closed session is a no-op.
func (s *ImpersonationService) End(ctx context.Context, actorID primitive.ObjectID, rawToken string) error {
	session, err := s.repo.FindByTokenHash(ctx, s.tokens.Hash(rawToken))
	if err != nil {
		if errors.Is(err, apperrors.ErrImpersonationInvalid) {
			return nil
		}
		return err
	}
	if session.ActorAdminID != actorID {
		return apperrors.ErrImpersonationInvalid
	}

	flipped, err := s.repo.Deactivate(ctx, session.ID, s.clock.Now())
	if err != nil {
		return err
	}
	if flipped {
		s.audit.Record(ctx, audit.PlatformEntry(actorID, audit.ActionImpersonationEnd, "impersonation_session", session.ID.Hex()).
			With(map[string]any{"targetUserId": session.TargetUserID.Hex()}))
		s.metrics.ImpersonationEvent(impersonationEnded)
	}
	return nil
}

// ListActive lists sessions that are active and unexpired.
func (s *ImpersonationService) ListActive(ctx context.Context) (*models.ImpersonationSessionListResponse, error) {
	sessions, err := s.repo.FindActive(ctx, s.clock.Now())
	if err != nil {
		return nil, err
	}
	return &models.ImpersonationSessionListResponse{Items: sessions}, nil
}
