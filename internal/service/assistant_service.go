package service

import (
	"context"

	"braik-api/internal/assistant"
	"braik-api/internal/audit"
	"braik-api/internal/clock"
	apperrors "braik-api/internal/errors"
	"braik-api/internal/models"
	"braik-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// FeatureChat labels usage recorded by assistant chat turns.
const FeatureChat = "chat"

// AssistantService runs the team assistant and its action proposals.
type AssistantService struct {
	provider  assistant.Provider
	usage     AIUsageServicer
	proposals repository.AIProposalRepository
	executors map[string]ProposalExecutor
	audit     audit.Logger
	clock     clock.Clock
	log       *zap.Logger
}

// NewAssistantService creates a new AssistantService with the given executors
// keyed by action type.
func NewAssistantService(
	provider assistant.Provider,
	usage AIUsageServicer,
	proposals repository.AIProposalRepository,
	executors map[string]ProposalExecutor,
	auditLog audit.Logger,
	clk clock.Clock,
	log *zap.Logger,
) *AssistantService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AssistantService{
		provider:  provider,
		usage:     usage,
		proposals: proposals,
		executors: executors,
		audit:     auditLog,
		clock:     clk,
		log:       log.Named("assistant"),
	}
}

// Chat answers one message and records the weighted usage of the turn.
func (s *AssistantService) Chat(ctx context.Context, team *models.Team, membership *models.Membership, req *models.ChatRequest) (*models.ChatResponse, error) {
	mode, err := s.usage.Mode(ctx, team.ID)
	if err != nil {
		return nil, err
	}
	if mode == models.AIModeDisabled {
		return nil, apperrors.ErrAIUsageExhausted
	}

	completion, err := s.provider.Complete(ctx, assistant.Request{
		TeamName: team.Name,
		Role:     string(membership.Role),
		Mode:     string(mode),
		Message:  req.Message,
	})
	if err != nil {
		return nil, err
	}

	record, err := s.usage.RecordUsage(ctx, team.ID, membership.UserID, membership.Role, FeatureChat, completion.TotalTokens())
	if err != nil {
		return nil, err
	}

	return &models.ChatResponse{
		Reply:          completion.Text,
		WeightedTokens: record.WeightedTokens,
		Mode:           mode,
	}, nil
}

// CreateProposal stores a pending action proposal. Proposals are allowed in
// suggestion_only mode; only execution needs full mode.
func (s *AssistantService) CreateProposal(ctx context.Context, teamID primitive.ObjectID, membership *models.Membership, req *models.CreateProposalRequest) (*models.AIActionProposal, error) {
	executor, ok := s.executors[req.ActionType]
	if !ok {
		return nil, apperrors.ErrUnknownProposalAction
	}
	if err := executor.Validate(req.Payload); err != nil {
		return nil, err
	}

	mode, err := s.usage.Mode(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if mode == models.AIModeDisabled {
		return nil, apperrors.ErrAIUsageExhausted
	}

	proposal := &models.AIActionProposal{
		TeamID:                 teamID,
		UserID:                 membership.UserID,
		ActionType:             req.ActionType,
		Payload:                req.Payload,
		AffectedRecordsPreview: req.AffectedRecordsPreview,
		CreatedAt:              s.clock.Now(),
	}
	if err := s.proposals.Create(ctx, proposal); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.TeamEntry(teamID, membership.UserID, audit.ActionAIProposalCreated, "ai_proposal", proposal.ID.Hex()).
		With(map[string]any{"actionType": proposal.ActionType}))

	return proposal, nil
}

// ListProposals lists a team's proposals, optionally filtered by status.
func (s *AssistantService) ListProposals(ctx context.Context, teamID primitive.ObjectID, status string) (*models.ProposalListResponse, error) {
	switch status {
	case "", models.ProposalPending, models.ProposalExecuted, models.ProposalRejected, models.ProposalFailed:
	default:
		return &models.ProposalListResponse{Items: []models.AIActionProposal{}}, nil
	}

	items, err := s.proposals.FindByTeamID(ctx, teamID, status)
	if err != nil {
		return nil, err
	}
	return &models.ProposalListResponse{Items: items}, nil
}

// ExecuteProposal approves a pending proposal and applies it. The status flip
// happens first, so a proposal runs at most once even under concurrent approval.
func (s *AssistantService) ExecuteProposal(ctx context.Context, teamID, proposalID, approverID primitive.ObjectID) (*models.AIActionProposal, error) {
	mode, err := s.usage.Mode(ctx, teamID)
	if err != nil {
		return nil, err
	}
	switch mode {
	case models.AIModeDisabled:
		return nil, apperrors.ErrAIUsageExhausted
	case models.AIModeSuggestionOnly:
		return nil, apperrors.ErrAISuggestionOnly
	}

	pending, err := s.proposals.FindByID(ctx, teamID, proposalID)
	if err != nil {
		return nil, err
	}
	executor, ok := s.executors[pending.ActionType]
	if !ok {
		return nil, apperrors.ErrUnknownProposalAction
	}

	proposal, err := s.proposals.Transition(ctx, teamID, proposalID, models.ProposalExecuted, approverID, s.clock.Now())
	if err != nil {
		return nil, err
	}

	entry := audit.TeamEntry(teamID, approverID, audit.ActionAIProposalExecuted, "ai_proposal", proposalID.Hex())
	if err := executor.Execute(ctx, proposal, approverID); err != nil {
		s.log.Error("proposal execution failed",
			zap.String("proposalId", proposalID.Hex()),
			zap.String("actionType", proposal.ActionType),
			zap.Error(err),
		)
		if markErr := s.proposals.MarkFailed(ctx, teamID, proposalID, err.Error()); markErr != nil {
			s.log.Warn("mark proposal failed", zap.String("proposalId", proposalID.Hex()), zap.Error(markErr))
		}
		s.audit.Record(ctx, entry.With(map[string]any{"actionType": proposal.ActionType, "error": err.Error()}))
		return nil, err
	}

	s.audit.Record(ctx, entry.With(map[string]any{"actionType": proposal.ActionType}))
	return proposal, nil
}

// RejectProposal closes a pending proposal without applying it.
func (s *AssistantService) RejectProposal(ctx context.Context, teamID, proposalID, actorID primitive.ObjectID) (*models.AIActionProposal, error) {
	proposal, err := s.proposals.Transition(ctx, teamID, proposalID, models.ProposalRejected, actorID, s.clock.Now())
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.TeamEntry(teamID, actorID, audit.ActionAIProposalRejected, "ai_proposal", proposalID.Hex()))
	return proposal, nil
}
