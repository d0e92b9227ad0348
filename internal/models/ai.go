package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AIMode is the usage-derived capability level of a team's assistant.
type AIMode string

// Assistant modes.
const (
	AIModeFull           AIMode = "full"
	AIModeSuggestionOnly AIMode = "suggestion_only"
	AIModeDisabled       AIMode = "disabled"
)

// AIUsage is the per-team, per-season weighted usage aggregate.
type AIUsage struct {
	ID            primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	TeamID        primitive.ObjectID `json:"teamId" bson:"teamId"`
	SeasonYear    int                `json:"seasonYear" bson:"seasonYear" example:"2024"`
	TokensUsed    int64              `json:"tokensUsed" bson:"tokensUsed" example:"81234"`
	RequestsCount int64              `json:"requestsCount" bson:"requestsCount" example:"412"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// AIUsageRecord is one weighted usage event.
type AIUsageRecord struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	TeamID         primitive.ObjectID `json:"teamId" bson:"teamId"`
	UserID         primitive.ObjectID `json:"userId" bson:"userId"`
	SeasonYear     int                `json:"seasonYear" bson:"seasonYear"`
	Role           Role               `json:"role" bson:"role"`
	Feature        string             `json:"feature" bson:"feature" example:"chat"`
	RawTokens      int64              `json:"rawTokens" bson:"rawTokens"`
	RoleWeight     float64            `json:"roleWeight" bson:"roleWeight"`
	WeightedTokens int64              `json:"weightedTokens" bson:"weightedTokens"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
}

// AIUsageSummary is the usage view returned to team members.
type AIUsageSummary struct {
	SeasonYear    int    `json:"seasonYear" example:"2024"`
	TokensUsed    int64  `json:"tokensUsed" example:"81234"`
	RequestsCount int64  `json:"requestsCount" example:"412"`
	Limit         int64  `json:"limit" example:"100000"`
	Mode          AIMode `json:"mode" example:"suggestion_only"`
}

// Proposal states.
const (
	ProposalPending  = "pending"
	ProposalExecuted = "executed"
	ProposalRejected = "rejected"
	ProposalFailed   = "failed"
)

// AIActionProposal is an assistant-suggested mutation awaiting approval.
type AIActionProposal struct {
	ID                     primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	TeamID                 primitive.ObjectID  `json:"teamId" bson:"teamId"`
	UserID                 primitive.ObjectID  `json:"userId" bson:"userId"`
	ActionType             string              `json:"actionType" bson:"actionType" example:"post_announcement"`
	Payload                map[string]any      `json:"payload" bson:"payload"`
	AffectedRecordsPreview []string            `json:"affectedRecordsPreview,omitempty" bson:"affectedRecordsPreview,omitempty"`
	Status                 string              `json:"status" bson:"status" example:"pending"`
	CreatedAt              time.Time           `json:"createdAt" bson:"createdAt"`
	ExecutedAt             *time.Time          `json:"executedAt,omitempty" bson:"executedAt,omitempty"`
	ExecutedBy             *primitive.ObjectID `json:"executedBy,omitempty" bson:"executedBy,omitempty"`
	FailureReason          string              `json:"failureReason,omitempty" bson:"failureReason,omitempty"`
}

// ChatRequest is a message for the team assistant.
type ChatRequest struct {
	Message string `json:"message" binding:"required,min=1,max=4000" example:"Draft a reminder about Saturday's game."`
}

// ChatResponse is the assistant reply.
type ChatResponse struct {
	Reply          string `json:"reply"`
	WeightedTokens int64  `json:"weightedTokens" example:"42"`
	Mode           AIMode `json:"mode" example:"full"`
}

// CreateProposalRequest is the payload for proposing an assistant action.
type CreateProposalRequest struct {
	ActionType             string         `json:"actionType" binding:"required" example:"post_announcement"`
	Payload                map[string]any `json:"payload" binding:"required"`
	AffectedRecordsPreview []string       `json:"affectedRecordsPreview"`
}

// ProposalListResponse is the response for listing proposals.
type ProposalListResponse struct {
	Items []AIActionProposal `json:"items"`
}
