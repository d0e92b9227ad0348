package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	apperrors "braik-api/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRespondError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"coded guard error", apperrors.ErrTeamSuspendedWriteBlocked, http.StatusForbidden, "TEAM_SUSPENDED_WRITE_BLOCKED"},
		{"coded with details", apperrors.ErrTeamSubscriptionTerminated.WithDetails(map[string]any{"x": 1}), http.StatusLocked, "TEAM_SUBSCRIPTION_TERMINATED"},
		{"wrapped sentinel", fmt.Errorf("accept: %w", apperrors.ErrInvitationExpired), http.StatusBadRequest, "INVITATION_EXPIRED"},
		{"not found", apperrors.ErrDocumentNotFound, http.StatusNotFound, "DOCUMENT_NOT_FOUND"},
		{"conflict", apperrors.ErrProposalNotPending, http.StatusConflict, "PROPOSAL_NOT_PENDING"},
		{"unknown error", errors.New("mongo: connection reset"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/", func(c *gin.Context) { respondError(c, tt.err) })

			w := performRequest(t, router, http.MethodGet, "/", nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, errorCode(t, w))
			if tt.wantStatus == http.StatusInternalServerError {
				assert.NotContains(t, w.Body.String(), "connection reset")
			}
		})
	}
}

func TestErrorMappingsAreUnique(t *testing.T) {
	seen := map[error]bool{}
	for _, m := range errorMappings {
		assert.False(t, seen[m.err], "duplicate mapping for %v", m.err)
		seen[m.err] = true
	}
}
