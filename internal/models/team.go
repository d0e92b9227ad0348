package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamStatus is the lifecycle state of a team.
type TeamStatus string

// Team lifecycle states.
const (
	TeamStatusActive     TeamStatus = "active"
	TeamStatusSuspended  TeamStatus = "suspended"
	TeamStatusCancelled  TeamStatus = "cancelled"
	TeamStatusTerminated TeamStatus = "terminated"
)

// SubscriptionStatus is the billing state of a team.
type SubscriptionStatus string

// Subscription states.
const (
	SubscriptionActive      SubscriptionStatus = "active"
	SubscriptionPastDue     SubscriptionStatus = "past_due"
	SubscriptionGracePeriod SubscriptionStatus = "grace_period"
	SubscriptionSuspended   SubscriptionStatus = "suspended"
	SubscriptionCancelled   SubscriptionStatus = "cancelled"
	SubscriptionTerminated  SubscriptionStatus = "terminated"
)

// Team represents a team in the system.
type Team struct {
	ID                   primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Name                 string             `json:"name" bson:"name" example:"Westview Varsity Football"`
	Slug                 string             `json:"slug" bson:"slug" example:"westview-varsity-football"`
	Sport                string             `json:"sport" bson:"sport" example:"football"`
	OwnerID              primitive.ObjectID `json:"ownerId" bson:"ownerId" example:"507f1f77bcf86cd799439012"`
	TeamStatus           TeamStatus         `json:"teamStatus" bson:"teamStatus" example:"active"`
	SubscriptionStatus   SubscriptionStatus `json:"subscriptionStatus" bson:"subscriptionStatus" example:"active"`
	AIEnabled            bool               `json:"aiEnabled" bson:"aiEnabled"`
	AIDisabledByPlatform bool               `json:"aiDisabledByPlatform" bson:"aiDisabledByPlatform"`
	BaseAICredits        int64              `json:"baseAiCredits" bson:"baseAiCredits" example:"100000"`
	AIUsageThisCycle     int64              `json:"aiUsageThisCycle" bson:"aiUsageThisCycle" example:"2500"`
	PayoutAccountID      string             `json:"-" bson:"payoutAccountId,omitempty"`
	CreatedAt            time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt            time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
	DeletedAt            *time.Time         `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`
}

// Summary returns the embeddable representation of the team.
func (t *Team) Summary() *TeamSummary {
	return &TeamSummary{ID: t.ID, Name: t.Name, Slug: t.Slug}
}

// TeamSummary is a minimal team representation for embedding.
type TeamSummary struct {
	ID   primitive.ObjectID `json:"id" example:"507f1f77bcf86cd799439012"`
	Name string             `json:"name" example:"Westview Varsity Football"`
	Slug string             `json:"slug" example:"westview-varsity-football"`
}

// CreateTeamRequest is the payload for creating a team.
type CreateTeamRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=100" example:"Westview Varsity Football"`
	Slug  string `json:"slug" binding:"omitempty,min=2,max=60,slug" example:"westview-varsity-football"`
	Sport string `json:"sport" binding:"omitempty,max=50" example:"football"`
}

// UpdateTeamRequest is the payload for updating a team.
type UpdateTeamRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=2,max=100" example:"Westview JV Football"`
	Slug  *string `json:"slug" binding:"omitempty,min=2,max=60,slug" example:"westview-jv-football"`
	Sport *string `json:"sport" binding:"omitempty,max=50" example:"football"`
}

// UpdateTeamStatusRequest is the admin payload for changing team lifecycle state.
type UpdateTeamStatusRequest struct {
	TeamStatus         *TeamStatus         `json:"teamStatus" binding:"omitempty,oneof=active suspended cancelled terminated" example:"suspended"`
	SubscriptionStatus *SubscriptionStatus `json:"subscriptionStatus" binding:"omitempty,oneof=active past_due grace_period suspended cancelled terminated" example:"past_due"`
	Reason             string              `json:"reason" binding:"omitempty,max=500" example:"chargeback"`
}

// UpdateTeamAISettingsRequest is the admin payload for team AI controls.
type UpdateTeamAISettingsRequest struct {
	AIEnabled            *bool  `json:"aiEnabled"`
	AIDisabledByPlatform *bool  `json:"aiDisabledByPlatform"`
	BaseAICredits        *int64 `json:"baseAiCredits" binding:"omitempty,min=0" example:"200000"`
}

// TeamListResponse is the response for listing teams.
type TeamListResponse struct {
	Items      []Team     `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// BillingSummary is the billing view of a team.
type BillingSummary struct {
	TeamID              primitive.ObjectID `json:"teamId"`
	TeamStatus          TeamStatus         `json:"teamStatus" example:"active"`
	SubscriptionStatus  SubscriptionStatus `json:"subscriptionStatus" example:"active"`
	PayoutAccountLinked bool               `json:"payoutAccountLinked"`
}

// ConnectPayoutAccountRequest links an external payout account to a team.
type ConnectPayoutAccountRequest struct {
	AccountID string `json:"accountId" binding:"required,min=3,max=100" example:"acct_1Nv0FGQ9RKHgCVdK"`
}
