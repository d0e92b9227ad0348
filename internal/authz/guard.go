package authz

import (
	"context"

	apperrors "braik-api/internal/errors"
	"braik-api/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Operation is the class of work a request performs on a team.
type Operation string

// Operation classes.
const (
	OpWrite   Operation = "write"
	OpAI      Operation = "ai"
	OpBilling Operation = "billing"
	OpView    Operation = "view"
)

// TeamFinder loads a team by ID, returning ErrTeamNotFound when absent.
type TeamFinder interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Team, error)
}

// DenialRecorder counts guard denials by error code.
type DenialRecorder interface {
	GuardDenied(code string)
}

// TeamOperationGuard implements OperationGuard over the team store.
type TeamOperationGuard struct {
	teams   TeamFinder
	metrics DenialRecorder
}

// NewTeamOperationGuard creates a new TeamOperationGuard. metrics may be nil.
func NewTeamOperationGuard(teams TeamFinder, metrics DenialRecorder) *TeamOperationGuard {
	return &TeamOperationGuard{teams: teams, metrics: metrics}
}

var _ OperationGuard = (*TeamOperationGuard)(nil)

// RequireTeamOperationAccess loads the team and applies CheckTeamOperation.
func (g *TeamOperationGuard) RequireTeamOperationAccess(ctx context.Context, teamID primitive.ObjectID, op Operation) (*models.Team, error) {
	team, err := g.teams.FindByID(ctx, teamID)
	if err != nil {
		if coded, ok := apperrors.AsCoded(err); ok {
			g.recordDenial(coded.Code)
		}
		return nil, err
	}

	if err := CheckTeamOperation(team, op); err != nil {
		if coded, ok := apperrors.AsCoded(err); ok {
			g.recordDenial(coded.Code)
		}
		return nil, err
	}
	return team, nil
}

func (g *TeamOperationGuard) recordDenial(code string) {
	if g.metrics != nil {
		g.metrics.GuardDenied(code)
	}
}

// CheckTeamOperation decides op against the team's state. Evaluation order:
// terminated subscription blocks everything; billing and view pass; any
// non-active team blocks the rest; ai additionally needs AI switched on.
func CheckTeamOperation(team *models.Team, op Operation) error {
	if team == nil {
		return apperrors.ErrTeamNotFound
	}

	details := map[string]any{
		"teamStatus":         string(team.TeamStatus),
		"subscriptionStatus": string(team.SubscriptionStatus),
	}

	if team.SubscriptionStatus == models.SubscriptionTerminated {
		return apperrors.ErrTeamSubscriptionTerminated.WithDetails(details)
	}

	if op == OpBilling || op == OpView {
		return nil
	}

	if team.TeamStatus != models.TeamStatusActive {
		return apperrors.ErrTeamSuspendedWriteBlocked.WithDetails(details)
	}

	if op == OpAI && (!team.AIEnabled || team.AIDisabledByPlatform) {
		details["aiEnabled"] = team.AIEnabled
		details["aiDisabledByPlatform"] = team.AIDisabledByPlatform
		return apperrors.ErrTeamAIDisabled.WithDetails(details)
	}

	return nil
}
