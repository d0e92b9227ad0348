package handler

import (
	"errors"
	"net/http"

	apperrors "braik-api/internal/errors"
	"braik-api/internal/logger"
	"braik-api/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type errorMapping struct {
	err    error
	status int
	code   string
}

// errorMappings translates sentinel errors into HTTP responses. Coded errors
// carry their own status and are handled before this table is consulted.
var errorMappings = []errorMapping{
	{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
	{apperrors.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
	{apperrors.ErrInvalidToken, http.StatusUnauthorized, "UNAUTHORIZED"},
	{apperrors.ErrTokenExpired, http.StatusUnauthorized, "TOKEN_EXPIRED"},

	{apperrors.ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND"},
	{apperrors.ErrInvitationNotFound, http.StatusNotFound, "INVITATION_NOT_FOUND"},
	{apperrors.ErrAnnouncementNotFound, http.StatusNotFound, "ANNOUNCEMENT_NOT_FOUND"},
	{apperrors.ErrDocumentNotFound, http.StatusNotFound, "DOCUMENT_NOT_FOUND"},
	{apperrors.ErrProposalNotFound, http.StatusNotFound, "PROPOSAL_NOT_FOUND"},
	{apperrors.ErrConfigNotFound, http.StatusNotFound, "CONFIG_NOT_FOUND"},
	{apperrors.ErrNotTeamMember, http.StatusNotFound, "NOT_TEAM_MEMBER"},

	{apperrors.ErrUserAlreadyExists, http.StatusConflict, "USER_EXISTS"},
	{apperrors.ErrTeamSlugTaken, http.StatusConflict, "SLUG_TAKEN"},
	{apperrors.ErrAlreadyMember, http.StatusConflict, "ALREADY_MEMBER"},
	{apperrors.ErrPendingInvitation, http.StatusConflict, "INVITATION_PENDING"},
	{apperrors.ErrLastHeadCoach, http.StatusConflict, "LAST_HEAD_COACH"},
	{apperrors.ErrProposalNotPending, http.StatusConflict, "PROPOSAL_NOT_PENDING"},
	{apperrors.ErrDocumentNotUploaded, http.StatusConflict, "DOCUMENT_NOT_UPLOADED"},

	{apperrors.ErrInvitationEmailMismatch, http.StatusForbidden, "INVITATION_EMAIL_MISMATCH"},
	{apperrors.ErrImpersonationInvalid, http.StatusForbidden, "IMPERSONATION_INVALID"},
	{apperrors.ErrImpersonationExpired, http.StatusForbidden, "IMPERSONATION_EXPIRED"},

	{apperrors.ErrInvitationExpired, http.StatusBadRequest, "INVITATION_EXPIRED"},
	{apperrors.ErrCannotRemoveSelf, http.StatusBadRequest, "CANNOT_REMOVE_SELF"},
	{apperrors.ErrCannotImpersonateSelf, http.StatusBadRequest, "CANNOT_IMPERSONATE_SELF"},
	{apperrors.ErrInvalidRole, http.StatusBadRequest, "INVALID_ROLE"},
	{apperrors.ErrUnknownProposalAction, http.StatusBadRequest, "UNKNOWN_PROPOSAL_ACTION"},
	{apperrors.ErrInvalidProposal, http.StatusBadRequest, "INVALID_PROPOSAL"},
}

// respondError writes the response for err. Unknown errors are logged and
// reported as a 500 without leaking their message.
func respondError(c *gin.Context, err error) {
	if coded, ok := apperrors.AsCoded(err); ok {
		response.Coded(c, coded.Status, coded.Code, coded.Message, coded.Details)
		return
	}
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			response.Coded(c, m.status, m.code, m.err.Error(), nil)
			return
		}
	}

	logger.FromContext(c.Request.Context()).Error("request failed",
		zap.String("route", c.FullPath()), zap.Error(err))
	_ = c.Error(err)
	response.InternalError(c)
}
