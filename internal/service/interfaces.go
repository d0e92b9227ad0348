// Package service contains business logic for the application.
package service

import (
	"context"

	"braik-api/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthServicer defines the interface for authentication operations.
type AuthServicer interface {
	Register(ctx context.Context, req *models.CreateUserRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	ResolveSession(ctx context.Context, token string) (*models.SessionUser, error)
}

// UserServicer defines the interface for user operations.
type UserServicer interface {
	GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	UpdateUser(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id primitive.ObjectID) error
}

// TeamServicer defines the interface for team operations.
type TeamServicer interface {
	CreateTeam(ctx context.Context, userID primitive.ObjectID, req *models.CreateTeamRequest) (*models.Team, error)
	ListTeams(ctx context.Context, userID primitive.ObjectID, page, limit int) (*models.TeamListResponse, error)
	GetTeam(ctx context.Context, teamID primitive.ObjectID) (*models.Team, error)
	UpdateTeam(ctx context.Context, actorID, teamID primitive.ObjectID, req *models.UpdateTeamRequest) (*models.Team, error)
	DeleteTeam(ctx context.Context, actorID, teamID primitive.ObjectID) error
}

// MembershipServicer defines the interface for roster operations.
type MembershipServicer interface {
	ListMembers(ctx context.Context, teamID primitive.ObjectID) (*models.MembershipListResponse, error)
	AddMember(ctx context.Context, actorID, teamID primitive.ObjectID, req *models.AddMemberRequest) (*models.MembershipWithUser, error)
	UpdateMember(ctx context.Context, actorID, teamID, targetUserID primitive.ObjectID, req *models.UpdateMemberRequest) (*models.Membership, error)
	RemoveMember(ctx context.Context, actorID, teamID, targetUserID primitive.ObjectID) error
	LeaveTeam(ctx context.Context, teamID, userID primitive.ObjectID) error
}

// InvitationServicer defines the interface for invitation operations.
type InvitationServicer interface {
	CreateInvitation(ctx context.Context, teamID, inviterID primitive.ObjectID, req *models.CreateInvitationRequest) (*models.Invitation, error)
	ListTeamInvitations(ctx context.Context, teamID primitive.ObjectID) (*models.InvitationListResponse, error)
	CancelInvitation(ctx context.Context, actorID, teamID, invitationID primitive.ObjectID) error
	ListMyInvitations(ctx context.Context, userEmail string) (*models.MyInvitationListResponse, error)
	AcceptInvitation(ctx context.Context, invitationID primitive.ObjectID, user *models.SessionUser) (*models.AcceptInvitationResponse, error)
	DeclineInvitation(ctx context.Context, invitationID primitive.ObjectID, user *models.SessionUser) error
}

// AnnouncementServicer defines the interface for announcement operations.
type AnnouncementServicer interface {
	ListAnnouncements(ctx context.Context, teamID primitive.ObjectID, role models.Role, page, limit int) (*models.AnnouncementListResponse, error)
	CreateAnnouncement(ctx context.Context, actorID, teamID primitive.ObjectID, req *models.CreateAnnouncementRequest) (*models.Announcement, error)
	DeleteAnnouncement(ctx context.Context, actorID, teamID, announcementID primitive.ObjectID) error
}

// DocumentServicer defines the interface for document operations.
type DocumentServicer interface {
	ListDocuments(ctx context.Context, teamID primitive.ObjectID, page, limit int) (*models.DocumentListResponse, error)
	CreateDocument(ctx context.Context, actorID, teamID primitive.ObjectID, req *models.CreateDocumentRequest) (*models.DocumentUploadResponse, error)
	ConfirmUpload(ctx context.Context, actorID, teamID, documentID primitive.ObjectID) (*models.Document, error)
	GetDownloadURL(ctx context.Context, teamID, documentID primitive.ObjectID) (*models.DocumentURLResponse, error)
	DeleteDocument(ctx context.Context, actorID, teamID, documentID primitive.ObjectID) error
}

// BillingServicer defines the interface for billing operations.
type BillingServicer interface {
	GetBilling(ctx context.Context, team *models.Team) *models.BillingSummary
	ConnectPayoutAccount(ctx context.Context, actorID, teamID primitive.ObjectID, req *models.ConnectPayoutAccountRequest) (*models.BillingSummary, error)
}

// AIUsageServicer defines the interface for weighted AI usage accounting.
type AIUsageServicer interface {
	RecordUsage(ctx context.Context, teamID, userID primitive.ObjectID, role models.Role, feature string, rawTokens int64) (*models.AIUsageRecord, error)
	Mode(ctx context.Context, teamID primitive.ObjectID) (models.AIMode, error)
	GetUsage(ctx context.Context, teamID primitive.ObjectID) (*models.AIUsageSummary, error)
}

// AssistantServicer defines the interface for the team assistant.
type AssistantServicer interface {
	Chat(ctx context.Context, team *models.Team, membership *models.Membership, req *models.ChatRequest) (*models.ChatResponse, error)
	CreateProposal(ctx context.Context, teamID primitive.ObjectID, membership *models.Membership, req *models.CreateProposalRequest) (*models.AIActionProposal, error)
	ListProposals(ctx context.Context, teamID primitive.ObjectID, status string) (*models.ProposalListResponse, error)
	ExecuteProposal(ctx context.Context, teamID, proposalID, approverID primitive.ObjectID) (*models.AIActionProposal, error)
	RejectProposal(ctx context.Context, teamID, proposalID, actorID primitive.ObjectID) (*models.AIActionProposal, error)
}

// ImpersonationServicer defines the interface for admin impersonation.
type ImpersonationServicer interface {
	Start(ctx context.Context, actor *models.SessionUser, req *models.StartImpersonationRequest) (*models.ImpersonationSession, string, error)
	Resolve(ctx context.Context, rawToken string) (*models.ImpersonationSession, error)
	End(ctx context.Context, actorID primitive.ObjectID, rawToken string) error
	ListActive(ctx context.Context) (*models.ImpersonationSessionListResponse, error)
}

// AdminServicer defines the interface for platform team administration.
type AdminServicer interface {
	ListTeams(ctx context.Context, page, limit int) (*models.TeamListResponse, error)
	UpdateTeamStatus(ctx context.Context, actorID, teamID primitive.ObjectID, req *models.UpdateTeamStatusRequest) (*models.Team, error)
	UpdateTeamAISettings(ctx context.Context, actorID, teamID primitive.ObjectID, req *models.UpdateTeamAISettingsRequest) (*models.Team, error)
}

// SystemConfigServicer defines the interface for versioned platform settings.
type SystemConfigServicer interface {
	Get(ctx context.Context, key string) (*models.SystemConfig, error)
	Put(ctx context.Context, actorID primitive.ObjectID, key string, value any) (*models.SystemConfig, error)
	History(ctx context.Context, key string, limit int) (*models.SystemConfigListResponse, error)
}

// AuditLogServicer defines the interface for reading audit rows.
type AuditLogServicer interface {
	ListTeamLogs(ctx context.Context, teamID primitive.ObjectID, filter models.AuditLogFilter, page, limit int) (*models.AuditLogListResponse, error)
	ListPlatformLogs(ctx context.Context, filter models.AuditLogFilter, page, limit int) (*models.AuditLogListResponse, error)
}
