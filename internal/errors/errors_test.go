package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrUserNotFound", ErrUserNotFound, "user not found"},
		{"ErrUserAlreadyExists", ErrUserAlreadyExists, "user with this email already exists"},
		{"ErrInvalidCredentials", ErrInvalidCredentials, "invalid email or password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestGuardErrorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		err    *CodedError
		status int
		code   string
	}{
		{"not found", ErrTeamNotFound, http.StatusNotFound, "TEAM_NOT_FOUND"},
		{"terminated", ErrTeamSubscriptionTerminated, http.StatusLocked, "TEAM_SUBSCRIPTION_TERMINATED"},
		{"suspended", ErrTeamSuspendedWriteBlocked, http.StatusForbidden, "TEAM_SUSPENDED_WRITE_BLOCKED"},
		{"ai disabled", ErrTeamAIDisabled, http.StatusForbidden, "TEAM_AI_DISABLED"},
		{"access denied", ErrAccessDenied, http.StatusForbidden, "ACCESS_DENIED"},
		{"forbidden", ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{"impersonation restricted", ErrImpersonationRestricted, http.StatusForbidden, "IMPERSONATION_RESTRICTED"},
		{"bad duration", ErrInvalidImpersonationDuration, http.StatusBadRequest, "INVALID_IMPERSONATION_DURATION"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}
}

func TestCodedError_WithDetails(t *testing.T) {
	withDetails := ErrTeamSuspendedWriteBlocked.WithDetails(map[string]any{"teamStatus": "suspended"})

	assert.Nil(t, ErrTeamSuspendedWriteBlocked.Details, "package value must not be mutated")
	assert.Equal(t, "suspended", withDetails.Details["teamStatus"])
	assert.True(t, errors.Is(withDetails, ErrTeamSuspendedWriteBlocked))
	assert.False(t, errors.Is(withDetails, ErrTeamAIDisabled))
}

func TestAsCoded(t *testing.T) {
	wrapped := fmt.Errorf("guard: %w", ErrTeamAIDisabled)

	coded, ok := AsCoded(wrapped)
	require.True(t, ok)
	assert.Equal(t, "TEAM_AI_DISABLED", coded.Code)

	_, ok = AsCoded(ErrUserNotFound)
	assert.False(t, ok)
}

func TestErrorsIsComparison(t *testing.T) {
	tests := []struct {
		name   string
		target error
		err    error
		want   bool
	}{
		{"same error", ErrUserNotFound, ErrUserNotFound, true},
		{"different error", ErrUserNotFound, ErrUserAlreadyExists, false},
		{"wrapped with %w", ErrProposalNotPending, fmt.Errorf("execute: %w", ErrProposalNotPending), true},
		{"same text only", ErrUserNotFound, errors.New("wrapped: " + ErrUserNotFound.Error()), false},
		{"coded vs sentinel", ErrAccessDenied, ErrNotTeamMember, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.Is(tt.err, tt.target))
		})
	}
}

func TestAllCodesAreUnique(t *testing.T) {
	all := []*CodedError{
		ErrAccessDenied,
		ErrForbidden,
		ErrPlatformAdminRequired,
		ErrTeamNotFound,
		ErrTeamSubscriptionTerminated,
		ErrTeamSuspendedWriteBlocked,
		ErrTeamAIDisabled,
		ErrAIUsageExhausted,
		ErrAISuggestionOnly,
		ErrImpersonationRestricted,
		ErrInvalidImpersonationDuration,
	}

	seen := make(map[string]bool)
	for _, err := range all {
		if seen[err.Code] {
			t.Errorf("duplicate error code found: %s", err.Code)
		}
		seen[err.Code] = true
	}
}
