package handler

import (
	"braik-api/internal/models"
	"braik-api/internal/service"
	"braik-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// TeamInvitationHandler handles HTTP requests for invitations.
type TeamInvitationHandler struct {
	service service.InvitationServicer
}

// NewTeamInvitationHandler creates a new TeamInvitationHandler.
func NewTeamInvitationHandler(service service.InvitationServicer) *TeamInvitationHandler {
	return &TeamInvitationHandler{service: service}
}

// CreateInvitation godoc
// @Summary      Invite someone to the team
// @Description  Invitations expire after 7 days.
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Param        teamId  path      string                          true  "Team ID"
// @Param        body    body      models.CreateInvitationRequest  true  "Invitation details"
// @Success      201     {object}  response.Response{data=models.Invitation}
// @Failure      400     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/invitations [post]
func (h *TeamInvitationHandler) CreateInvitation(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}
	teamID, _, ok := teamContext(c)
	if !ok {
		return
	}

	var req models.CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	invitation, err := h.service.CreateInvitation(c.Request.Context(), teamID, user.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, invitation)
}

// ListTeamInvitations godoc
// @Summary      List pending team invitations
// @Tags         invitations
// @Produce      json
// @Param        teamId  path      string  true  "Team ID"
// @Success      200     {object}  response.Response{data=models.InvitationListResponse}
// @Failure      403     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/invitations [get]
func (h *TeamInvitationHandler) ListTeamInvitations(c *gin.Context) {
	teamID, _, ok := teamContext(c)
	if !ok {
		return
	}

	result, err := h.service.ListTeamInvitations(c.Request.Context(), teamID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, result)
}

// CancelInvitation godoc
// @Summary      Cancel an invitation
// @Tags         invitations
// @Param        teamId  path  string  true  "Team ID"
// @Param        id      path  string  true  "Invitation ID"
// @Success      204
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/invitations/{id} [delete]
func (h *TeamInvitationHandler) CancelInvitation(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}
	teamID, _, ok := teamContext(c)
	if !ok {
		return
	}
	invitationID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.CancelInvitation(c.Request.Context(), user.ID, teamID, invitationID); err != nil {
		respondError(c, err)
		return
	}

	response.NoContent(c)
}

// ListMyInvitations godoc
// @Summary      List my invitations
// @Description  Pending invitations addressed to the caller's email
// @Tags         invitations
// @Produce      json
// @Success      200  {object}  response.Response{data=models.MyInvitationListResponse}
// @Failure      401  {object}  response.Response
// @Security     BearerAuth
// @Router       /invitations [get]
func (h *TeamInvitationHandler) ListMyInvitations(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}

	result, err := h.service.ListMyInvitations(c.Request.Context(), user.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, result)
}

// AcceptInvitation godoc
// @Summary      Accept an invitation
// @Tags         invitations
// @Produce      json
// @Param        id  path      string  true  "Invitation ID"
// @Success      200  {object}  response.Response{data=models.AcceptInvitationResponse}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /invitations/{id}/accept [post]
func (h *TeamInvitationHandler) AcceptInvitation(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}
	invitationID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.service.AcceptInvitation(c.Request.Context(), invitationID, user)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, result)
}

// DeclineInvitation godoc
// @Summary      Decline an invitation
// @Tags         invitations
// @Param        id  path  string  true  "Invitation ID"
// @Success      204
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /invitations/{id}/decline [post]
func (h *TeamInvitationHandler) DeclineInvitation(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}
	invitationID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeclineInvitation(c.Request.Context(), invitationID, user); err != nil {
		respondError(c, err)
		return
	}

	response.NoContent(c)
}
