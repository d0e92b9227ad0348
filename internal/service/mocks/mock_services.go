// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"

	"braik-api/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockAuthService is a mock implementation of AuthServicer.
type MockAuthService struct {
	RegisterFunc       func(ctx context.Context, req *models.CreateUserRequest) (*models.AuthResponse, error)
	LoginFunc          func(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	ResolveSessionFunc func(ctx context.Context, token string) (*models.SessionUser, error)
}

func (m *MockAuthService) Register(ctx context.Context, req *models.CreateUserRequest) (*models.AuthResponse, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) ResolveSession(ctx context.Context, token string) (*models.SessionUser, error) {
	if m.ResolveSessionFunc != nil {
		return m.ResolveSessionFunc(ctx, token)
	}
	return nil, nil
}

// MockUserService is a mock implementation of UserServicer.
type MockUserService struct {
	GetUserFunc    func(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	UpdateUserFunc func(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error)
	DeleteUserFunc func(ctx context.Context, id primitive.ObjectID) error
}

func (m *MockUserService) GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserService) UpdateUser(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error) {
	if m.UpdateUserFunc != nil {
		return m.UpdateUserFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockUserService) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteUserFunc != nil {
		return m.DeleteUserFunc(ctx, id)
	}
	return nil
}

// MockTeamService is a mock implementation of TeamServicer.
type MockTeamService struct {
	CreateTeamFunc func(ctx context.Context, userID primitive.ObjectID, req *models.CreateTeamRequest) (*models.Team, error)
	ListTeamsFunc  func(ctx context.Context, userID primitive.ObjectID, page, limit int) (*models.TeamListResponse, error)
	GetTeamFunc    func(ctx context.Context, teamID primitive.ObjectID) (*models.Team, error)
	UpdateTeamFunc func(ctx context.Context, actorID, teamID primitive.ObjectID, req *models.UpdateTeamRequest) (*models.Team, error)
	DeleteTeamFunc func(ctx context.Context, actorID, teamID primitive.ObjectID) error
}

func (m *MockTeamService) CreateTeam(ctx context.Context, userID primitive.ObjectID, req *models.CreateTeamRequest) (*models.Team, error) {
	if m.CreateTeamFunc != nil {
		return m.CreateTeamFunc(ctx, userID, req)
	}
	return nil, nil
}

func (m *MockTeamService) ListTeams(ctx context.Context, userID primitive.ObjectID, page, limit int) (*models.TeamListResponse, error) {
	if m.ListTeamsFunc != nil {
		return m.ListTeamsFunc(ctx, userID, page, limit)
	}
	return nil, nil
}

func (m *MockTeamService) GetTeam(ctx context.Context, teamID primitive.ObjectID) (*models.Team, error) {
	if m.GetTeamFunc != nil {
		return m.GetTeamFunc(ctx, teamID)
	}
	return nil, nil
}

func (m *MockTeamService) UpdateTeam(ctx context.Context, actorID, teamID primitive.ObjectID, req *models.UpdateTeamRequest) (*models.Team, error) {
	if m.UpdateTeamFunc != nil {
		return m.UpdateTeamFunc(ctx, actorID, teamID, req)
	}
	return nil, nil
}

func (m *MockTeamService) DeleteTeam(ctx context.Context, actorID, teamID primitive.ObjectID) error {
	if m.DeleteTeamFunc != nil {
		return m.DeleteTeamFunc(ctx, actorID, teamID)
	}
	return nil
}

// MockMembershipService is a mock implementation of MembershipServicer.
type MockMembershipService struct {
	ListMembersFunc  func(ctx context.Context, teamID primitive.ObjectID) (*models.MembershipListResponse, error)
	AddMemberFunc    func(ctx context.Context, actorID, teamID primitive.ObjectID, req *models.AddMemberRequest) (*models.MembershipWithUser, error)
	UpdateMemberFunc func(ctx context.Context, actorID, teamID, targetUserID primitive.ObjectID, req *models.UpdateMemberRequest) (*models.Membership, error)
	RemoveMemberFunc func(ctx context.Context, actorID, teamID, targetUserID primitive.ObjectID) error
	LeaveTeamFunc    func(ctx context.Context, teamID, userID primitive.ObjectID) error
}

func (m *MockMembershipService) ListMembers(ctx context.Context, teamID primitive.ObjectID) (*models.MembershipListResponse, error) {
	if m.ListMembersFunc != nil {
		return m.ListMembersFunc(ctx, teamID)
	}
	return nil, nil
}

func (m *MockMembershipService) AddMember(ctx context.Context, actorID, teamID primitive.ObjectID, req *models.AddMemberRequest) (*models.MembershipWithUser, error) {
	if m.AddMemberFunc != nil {
		return m.AddMemberFunc(ctx, actorID, teamID, req)
	}
	return nil, nil
}

func (m *MockMembershipService) UpdateMember(ctx context.Context, actorID, teamID, targetUserID primitive.ObjectID, req *models.UpdateMemberRequest) (*models.Membership, error) {
	if m.UpdateMemberFunc != nil {
		return m.UpdateMemberFunc(ctx, actorID, teamID, targetUserID, req)
	}
	return nil, nil
}

func (m *MockMembershipService) RemoveMember(ctx context.Context, actorID, teamID, targetUserID primitive.ObjectID) error {
	if m.RemoveMemberFunc != nil {
		return m.RemoveMemberFunc(ctx, actorID, teamID, targetUserID)
	}
	return nil
}

func (m *MockMembershipService) LeaveTeam(ctx context.Context, teamID, userID primitive.ObjectID) error {
	if m.LeaveTeamFunc != nil {
		return m.LeaveTeamFunc(ctx, teamID, userID)
	}
	return nil
}

// MockInvitationService is a mock implementation of InvitationServicer.
type MockInvitationService struct {
	CreateInvitationFunc    func(ctx context.Context, teamID, inviterID primitive.ObjectID, req *models.CreateInvitationRequest) (*models.Invitation, error)
	ListTeamInvitationsFunc func(ctx context.Context, teamID primitive.ObjectID) (*models.InvitationListResponse, error)
	CancelInvitationFunc    func(ctx context.Context, actorID, teamID, invitationID primitive.ObjectID) error
	ListMyInvitationsFunc   func(ctx context.Context, userEmail string) (*models.MyInvitationListResponse, error)
	AcceptInvitationFunc    func(ctx context.Context, invitationID primitive.ObjectID, user *models.SessionUser) (*models.AcceptInvitationResponse, error)
	DeclineInvitationFunc   func(ctx context.Context, invitationID primitive.ObjectID, user *models.SessionUser) error
}

func (m *MockInvitationService) CreateInvitation(ctx context.Context, teamID, inviterID primitive.ObjectID, req *models.CreateInvitationRequest) (*models.Invitation, error) {
	if m.CreateInvitationFunc != nil {
		return m.CreateInvitationFunc(ctx, teamID, inviterID, req)
	}
	return nil, nil
}

func (m *MockInvitationService) ListTeamInvitations(ctx context.Context, teamID primitive.ObjectID) (*models.InvitationListResponse, error) {
	if m.ListTeamInvitationsFunc != nil {
		return m.ListTeamInvitationsFunc(ctx, teamID)
	}
	return nil, nil
}

func (m *MockInvitationService) CancelInvitation(ctx context.Context, actorID, teamID, invitationID primitive.ObjectID) error {
	if m.CancelInvitationFunc != nil {
		return m.CancelInvitationFunc(ctx, actorID, teamID, invitationID)
	}
	return nil
}

func (m *MockInvitationService) ListMyInvitations(ctx context.Context, userEmail string) (*models.MyInvitationListResponse, error) {
	if m.ListMyInvitationsFunc != nil {
		return m.ListMyInvitationsFunc(ctx, userEmail)
	}
	return nil, nil
}

func (m *MockInvitationService) AcceptInvitation(ctx context.Context, invitationID primitive.ObjectID, user *models.SessionUser) (*models.AcceptInvitationResponse, error) {
	if m.AcceptInvitationFunc != nil {
		return m.AcceptInvitationFunc(ctx, invitationID, user)
	}
	return nil, nil
}

func (m *MockInvitationService) DeclineInvitation(ctx context.Context, invitationID primitive.ObjectID, user *models.SessionUser) error {
	if m.DeclineInvitationFunc != nil {
		return m.DeclineInvitationFunc(ctx, invitationID, user)
	}
	return nil
}

// MockAnnouncementService is a mock implementation of AnnouncementServicer.
type MockAnnouncementService struct {
	ListAnnouncementsFunc  func(ctx context.Context, teamID primitive.ObjectID, role models.Role, page, limit int) (*models.AnnouncementListResponse, error)
	CreateAnnouncementFunc func(ctx context.Context, actorID, teamID primitive.ObjectID, req *models.CreateAnnouncementRequest) (*models.Announcement, error)
	DeleteAnnouncementFunc func(ctx context.Context, actorID, teamID, announcementID primitive.ObjectID) error
}

func (m *MockAnnouncementService) ListAnnouncements(ctx context.Context, teamID primitive.ObjectID, role models.Role, page, limit int) (*models.AnnouncementListResponse, error) {
	if m.ListAnnouncementsFunc != nil {
		return m.ListAnnouncementsFunc(ctx, teamID, role, page, limit)
	}
	return nil, nil
}

func (m *MockAnnouncementService) CreateAnnouncement(ctx context.Context, actorID, teamID primitive.ObjectID, req *models.CreateAnnouncementRequest) (*models.Announcement, error) {
	if m.CreateAnnouncementFunc != nil {
		return m.CreateAnnouncementFunc(ctx, actorID, teamID, req)
	}
	return nil, nil
}

func (m *MockAnnouncementService) DeleteAnnouncement(ctx context.Context, actorID, teamID, announcementID primitive.ObjectID) error {
	if m.DeleteAnnouncementFunc != nil {
		return m.DeleteAnnouncementFunc(ctx, actorID, teamID, announcementID)
	}
	return nil
}

// MockDocumentService is a mock implementation of DocumentServicer.
type MockDocumentService struct {
	ListDocumentsFunc  func(ctx context.Context, teamID primitive.ObjectID, page, limit int) (*models.DocumentListResponse, error)
	CreateDocumentFunc func(ctx context.Context, actorID, teamID primitive.ObjectID, req *models.CreateDocumentRequest) (*models.DocumentUploadResponse, error)
	ConfirmUploadFunc  func(ctx context.Context, actorID, teamID, documentID primitive.ObjectID) (*models.Document, error)
	GetDownloadURLFunc func(ctx context.Context, teamID, documentID primitive.ObjectID) (*models.DocumentURLResponse, error)
	DeleteDocumentFunc func(ctx context.Context, actorID, teamID, documentID primitive.ObjectID) error
}

func (m *MockDocumentService) ListDocuments(ctx context.Context, teamID primitive.ObjectID, page, limit int) (*models.DocumentListResponse, error) {
	if m.ListDocumentsFunc != nil {
		return m.ListDocumentsFunc(ctx, teamID, page, limit)
	}
	return nil, nil
}

func (m *MockDocumentService) CreateDocument(ctx context.Context, actorID, teamID primitive.ObjectID, req *models.CreateDocumentRequest) (*models.DocumentUploadResponse, error) {
	if m.CreateDocumentFunc != nil {
		return m.CreateDocumentFunc(ctx, actorID, teamID, req)
	}
	return nil, nil
}

func (m *MockDocumentService) ConfirmUpload(ctx context.Context, actorID, teamID, documentID primitive.ObjectID) (*models.Document, error) {
	if m.ConfirmUploadFunc != nil {
		return m.ConfirmUploadFunc(ctx, actorID, teamID, documentID)
	}
	return nil, nil
}

func (m *MockDocumentService) GetDownloadURL(ctx context.Context, teamID, documentID primitive.ObjectID) (*models.DocumentURLResponse, error) {
	if m.GetDownloadURLFunc != nil {
		return m.GetDownloadURLFunc(ctx, teamID, documentID)
	}
	return nil, nil
}

func (m *MockDocumentService) DeleteDocument(ctx context.Context, actorID, teamID, documentID primitive.ObjectID) error {
	if m.DeleteDocumentFunc != nil {
		return m.DeleteDocumentFunc(ctx, actorID, teamID, documentID)
	}
	return nil
}

// MockBillingService is a mock implementation of BillingServicer.
type MockBillingService struct {
	GetBillingFunc           func(ctx context.Context, team *models.Team) *models.BillingSummary
	ConnectPayoutAccountFunc func(ctx context.Context, actorID, teamID primitive.ObjectID, req *models.ConnectPayoutAccountRequest) (*models.BillingSummary, error)
}

func (m *MockBillingService) GetBilling(ctx context.Context, team *models.Team) *models.BillingSummary {
	if m.GetBillingFunc != nil {
		return m.GetBillingFunc(ctx, team)
	}
	return nil
}

func (m *MockBillingService) ConnectPayoutAccount(ctx context.Context, actorID, teamID primitive.ObjectID, req *models.ConnectPayoutAccountRequest) (*models.BillingSummary, error) {
	if m.ConnectPayoutAccountFunc != nil {
		return m.ConnectPayoutAccountFunc(ctx, actorID, teamID, req)
	}
	return nil, nil
}

// MockAIUsageService is a mock implementation of AIUsageServicer.
type MockAIUsageService struct {
	RecordUsageFunc func(ctx context.Context, teamID, userID primitive.ObjectID, role models.Role, feature string, rawTokens int64) (*models.AIUsageRecord, error)
	ModeFunc        func(ctx context.Context, teamID primitive.ObjectID) (models.AIMode, error)
	GetUsageFunc    func(ctx context.Context, teamID primitive.ObjectID) (*models.AIUsageSummary, error)
}

func (m *MockAIUsageService) RecordUsage(ctx context.Context, teamID, userID primitive.ObjectID, role models.Role, feature string, rawTokens int64) (*models.AIUsageRecord, error) {
	if m.RecordUsageFunc != nil {
		return m.RecordUsageFunc(ctx, teamID, userID, role, feature, rawTokens)
	}
	return nil, nil
}

func (m *MockAIUsageService) Mode(ctx context.Context, teamID primitive.ObjectID) (models.AIMode, error) {
	if m.ModeFunc != nil {
		return m.ModeFunc(ctx, teamID)
	}
	return "", nil
}

func (m *MockAIUsageService) GetUsage(ctx context.Context, teamID primitive.ObjectID) (*models.AIUsageSummary, error) {
	if m.GetUsageFunc != nil {
		return m.GetUsageFunc(ctx, teamID)
	}
	return nil, nil
}

// MockAssistantService is a mock implementation of AssistantServicer.
type MockAssistantService struct {
	ChatFunc            func(ctx context.Context, team *models.Team, membership *models.Membership, req *models.ChatRequest) (*models.ChatResponse, error)
	CreateProposalFunc  func(ctx context.Context, teamID primitive.ObjectID, membership *models.Membership, req *models.CreateProposalRequest) (*models.AIActionProposal, error)
	ListProposalsFunc   func(ctx context.Context, teamID primitive.ObjectID, status string) (*models.ProposalListResponse, error)
	ExecuteProposalFunc func(ctx context.Context, teamID, proposalID, approverID primitive.ObjectID) (*models.AIActionProposal, error)
	RejectProposalFunc  func(ctx context.Context, teamID, proposalID, actorID primitive.ObjectID) (*models.AIActionProposal, error)
}

func (m *MockAssistantService) Chat(ctx context.Context, team *models.Team, membership *models.Membership, req *models.ChatRequest) (*models.ChatResponse, error) {
	if m.ChatFunc != nil {
		return m.ChatFunc(ctx, team, membership, req)
	}
	return nil, nil
}

func (m *MockAssistantService) CreateProposal(ctx context.Context, teamID primitive.ObjectID, membership *models.Membership, req *models.CreateProposalRequest) (*models.AIActionProposal, error) {
	if m.CreateProposalFunc != nil {
		return m.CreateProposalFunc(ctx, teamID, membership, req)
	}
	return nil, nil
}

func (m *MockAssistantService) ListProposals(ctx context.Context, teamID primitive.ObjectID, status string) (*models.ProposalListResponse, error) {
	if m.ListProposalsFunc != nil {
		return m.ListProposalsFunc(ctx, teamID, status)
	}
	return nil, nil
}

func (m *MockAssistantService) ExecuteProposal(ctx context.Context, teamID, proposalID, approverID primitive.ObjectID) (*models.AIActionProposal, error) {
	if m.ExecuteProposalFunc != nil {
		return m.ExecuteProposalFunc(ctx, teamID, proposalID, approverID)
	}
	return nil, nil
}

func (m *MockAssistantService) RejectProposal(ctx context.Context, teamID, proposalID, actorID primitive.ObjectID) (*models.AIActionProposal, error) {
	if m.RejectProposalFunc != nil {
		return m.RejectProposalFunc(ctx, teamID, proposalID, actorID)
	}
	return nil, nil
}

// MockImpersonationService is a mock implementation of ImpersonationServicer.
type MockImpersonationService struct {
	StartFunc      func(ctx context.Context, actor *models.SessionUser, req *models.StartImpersonationRequest) (*models.ImpersonationSession, string, error)
	ResolveFunc    func(ctx context.Context, rawToken string) (*models.ImpersonationSession, error)
	EndFunc        func(ctx context.Context, actorID primitive.ObjectID, rawToken string) error
	ListActiveFunc func(ctx context.Context) (*models.ImpersonationSessionListResponse, error)
}

func (m *MockImpersonationService) Start(ctx context.Context, actor *models.SessionUser, req *models.StartImpersonationRequest) (*models.ImpersonationSession, string, error) {
	if m.StartFunc != nil {
		return m.StartFunc(ctx, actor, req)
	}
	return nil, "", nil
}

func (m *MockImpersonationService) Resolve(ctx context.Context, rawToken string) (*models.ImpersonationSession, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, rawToken)
	}
	return nil, nil
}

func (m *MockImpersonationService) End(ctx context.Context, actorID primitive.ObjectID, rawToken string) error {
	if m.EndFunc != nil {
		return m.EndFunc(ctx, actorID, rawToken)
	}
	return nil
}

func (m *MockImpersonationService) ListActive(ctx context.Context) (*models.ImpersonationSessionListResponse, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

// MockAdminService is a mock implementation of AdminServicer.
type MockAdminService struct {
	ListTeamsFunc            func(ctx context.Context, page, limit int) (*models.TeamListResponse, error)
	UpdateTeamStatusFunc     func(ctx context.Context, actorID, teamID primitive.ObjectID, req *models.UpdateTeamStatusRequest) (*models.Team, error)
	UpdateTeamAISettingsFunc func(ctx context.Context, actorID, teamID primitive.ObjectID, req *models.UpdateTeamAISettingsRequest) (*models.Team, error)
}

func (m *MockAdminService) ListTeams(ctx context.Context, page, limit int) (*models.TeamListResponse, error) {
	if m.ListTeamsFunc != nil {
		return m.ListTeamsFunc(ctx, page, limit)
	}
	return nil, nil
}

func (m *MockAdminService) UpdateTeamStatus(ctx context.Context, actorID, teamID primitive.ObjectID, req *models.UpdateTeamStatusRequest) (*models.Team, error) {
	if m.UpdateTeamStatusFunc != nil {
		return m.UpdateTeamStatusFunc(ctx, actorID, teamID, req)
	}
	return nil, nil
}

func (m *MockAdminService) UpdateTeamAISettings(ctx context.Context, actorID, teamID primitive.ObjectID, req *models.UpdateTeamAISettingsRequest) (*models.Team, error) {
	if m.UpdateTeamAISettingsFunc != nil {
		return m.UpdateTeamAISettingsFunc(ctx, actorID, teamID, req)
	}
	return nil, nil
}

// MockSystemConfigService is a mock implementation of SystemConfigServicer.
type MockSystemConfigService struct {
	GetFunc     func(ctx context.Context, key string) (*models.SystemConfig, error)
	PutFunc     func(ctx context.Context, actorID primitive.ObjectID, key string, value any) (*models.SystemConfig, error)
	HistoryFunc func(ctx context.Context, key string, limit int) (*models.SystemConfigListResponse, error)
}

func (m *MockSystemConfigService) Get(ctx context.Context, key string) (*models.SystemConfig, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	return nil, nil
}

func (m *MockSystemConfigService) Put(ctx context.Context, actorID primitive.ObjectID, key string, value any) (*models.SystemConfig, error) {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, actorID, key, value)
	}
	return nil, nil
}

func (m *MockSystemConfigService) History(ctx context.Context, key string, limit int) (*models.SystemConfigListResponse, error) {
	if m.HistoryFunc != nil {
		return m.HistoryFunc(ctx, key, limit)
	}
	return nil, nil
}

// MockAuditLogService is a mock implementation of AuditLogServicer.
type MockAuditLogService struct {
	ListTeamLogsFunc     func(ctx context.Context, teamID primitive.ObjectID, filter models.AuditLogFilter, page, limit int) (*models.AuditLogListResponse, error)
	ListPlatformLogsFunc func(ctx context.Context, filter models.AuditLogFilter, page, limit int) (*models.AuditLogListResponse, error)
}

func (m *MockAuditLogService) ListTeamLogs(ctx context.Context, teamID primitive.ObjectID, filter models.AuditLogFilter, page, limit int) (*models.AuditLogListResponse, error) {
	if m.ListTeamLogsFunc != nil {
		return m.ListTeamLogsFunc(ctx, teamID, filter, page, limit)
	}
	return nil, nil
}

func (m *MockAuditLogService) ListPlatformLogs(ctx context.Context, filter models.AuditLogFilter, page, limit int) (*models.AuditLogListResponse, error) {
	if m.ListPlatformLogsFunc != nil {
		return m.ListPlatformLogsFunc(ctx, filter, page, limit)
	}
	return nil, nil
}
