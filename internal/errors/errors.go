// Package errors provides custom error types for the application.
package errors

import (
	"errors"
	"net/http"
)

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Auth errors
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Team errors
var (
	ErrTeamSlugTaken    = errors.New("team slug is already taken")
	ErrNotTeamMember    = errors.New("you are not a member of this team")
	ErrLastHeadCoach    = errors.New("team must keep at least one head coach")
	ErrCannotRemoveSelf = errors.New("cannot remove yourself, use leave endpoint")
	ErrInvalidRole      = errors.New("invalid role")
)

// Invitation errors
var (
	ErrInvitationNotFound      = errors.New("invitation not found")
	ErrInvitationExpired       = errors.New("invitation has expired")
	ErrInvitationEmailMismatch = errors.New("invitation email does not match your account")
	ErrAlreadyMember           = errors.New("user is already a team member")
	ErrPendingInvitation       = errors.New("invitation already pending for this email")
)

// Content errors
var (
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrDocumentNotFound     = errors.New("document not found")
	ErrDocumentNotUploaded  = errors.New("document upload has not completed")
)

// Assistant errors
var (
	ErrProposalNotFound      = errors.New("proposal not found")
	ErrProposalNotPending    = errors.New("proposal is no longer pending")
	ErrUnknownProposalAction = errors.New("unknown proposal action type")
	ErrInvalidProposal       = errors.New("proposal payload is invalid")
)

// Admin errors
var (
	ErrImpersonationInvalid  = errors.New("impersonation session is invalid")
	ErrImpersonationExpired  = errors.New("impersonation session has expired")
	ErrCannotImpersonateSelf = errors.New("cannot impersonate yourself")
	ErrConfigNotFound        = errors.New("config key not found")
)

// CodedError is an error with a stable machine-readable code and HTTP status.
type CodedError struct {
	Status  int
	Code    string
	Message string
	Details map[string]any
}

func (e *CodedError) Error() string {
	return e.Message
}

// Is matches any CodedError carrying the same code, so errors.Is works
// against the package-level values after WithDetails copies them.
func (e *CodedError) Is(target error) bool {
	t, ok := target.(*CodedError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// WithDetails returns a copy of e with details attached.
func (e *CodedError) WithDetails(details map[string]any) *CodedError {
	cp := *e
	cp.Details = details
	return &cp
}

// NewCoded creates a CodedError.
func NewCoded(status int, code, message string) *CodedError {
	return &CodedError{Status: status, Code: code, Message: message}
}

// AsCoded extracts a CodedError from err.
func AsCoded(err error) (*CodedError, bool) {
	var coded *CodedError
	if errors.As(err, &coded) {
		return coded, true
	}
	return nil, false
}

// Permission errors
var (
	ErrAccessDenied          = NewCoded(http.StatusForbidden, "ACCESS_DENIED", "you are not a member of this team")
	ErrForbidden             = NewCoded(http.StatusForbidden, "FORBIDDEN", "your role does not allow this action")
	ErrPlatformAdminRequired = NewCoded(http.StatusForbidden, "PLATFORM_ADMIN_REQUIRED", "platform admin access required")
)

// Team operation guard errors
var (
	ErrTeamNotFound               = NewCoded(http.StatusNotFound, "TEAM_NOT_FOUND", "team not found")
	ErrTeamSubscriptionTerminated = NewCoded(http.StatusLocked, "TEAM_SUBSCRIPTION_TERMINATED", "team subscription has been terminated")
	ErrTeamSuspendedWriteBlocked  = NewCoded(http.StatusForbidden, "TEAM_SUSPENDED_WRITE_BLOCKED", "team is not active; changes are blocked")
	ErrTeamAIDisabled             = NewCoded(http.StatusForbidden, "TEAM_AI_DISABLED", "AI features are disabled for this team")
)

// AI usage errors
var (
	ErrAIUsageExhausted = NewCoded(http.StatusForbidden, "AI_USAGE_EXHAUSTED", "AI usage for this season is exhausted")
	ErrAISuggestionOnly = NewCoded(http.StatusForbidden, "AI_SUGGESTION_ONLY", "AI is limited to suggestions for the rest of this season")
)

// Impersonation errors
var (
	ErrImpersonationRestricted      = NewCoded(http.StatusForbidden, "IMPERSONATION_RESTRICTED", "this action is not allowed while impersonating")
	ErrInvalidImpersonationDuration = NewCoded(http.StatusBadRequest, "INVALID_IMPERSONATION_DURATION", "impersonation duration must be between 5 and 15 minutes")
)
