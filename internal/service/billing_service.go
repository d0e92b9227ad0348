package service

import (
	"context"

	"braik-api/internal/audit"
	"braik-api/internal/models"
	"braik-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BillingService exposes a team's billing state. Checkout and invoicing live
// with the payment provider; the API only tracks status and the payout link.
type BillingService struct {
	teamRepo repository.TeamRepository
	audit    audit.Logger
}

// NewBillingService creates a new BillingService.
func NewBillingService(teamRepo repository.TeamRepository, auditLog audit.Logger) *BillingService {
	return &BillingService{teamRepo: teamRepo, audit: auditLog}
}

// GetBilling summarises an already loaded team.
func (s *BillingService) GetBilling(_ context.Context, team *models.Team) *models.BillingSummary {
	return &models.BillingSummary{
		TeamID:              team.ID,
		TeamStatus:          team.TeamStatus,
		SubscriptionStatus:  team.SubscriptionStatus,
		PayoutAccountLinked: team.PayoutAccountID != "",
	}
}

// ConnectPayoutAccount links an external payout account to the team.
func (s *BillingService) ConnectPayoutAccount(ctx context.Context, actorID, teamID primitive.ObjectID, req *models.ConnectPayoutAccountRequest) (*models.BillingSummary, error) {
	if err := s.teamRepo.SetPayoutAccount(ctx, teamID, req.AccountID); err != nil {
		return nil, err
	}

	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.TeamEntry(teamID, actorID, audit.ActionPayoutConnected, "team", teamID.Hex()).
		With(map[string]any{"accountSuffix": accountSuffix(req.AccountID)}))

	return s.GetBilling(ctx, team), nil
}

// accountSuffix keeps the last four characters of an account identifier.
func accountSuffix(accountID string) string {
	if len(accountID) <= 4 {
		return accountID
	}
	return accountID[len(accountID)-4:]
}
