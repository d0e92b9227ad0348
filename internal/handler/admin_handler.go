package handler

import (
	"braik-api/internal/models"
	"braik-api/internal/service"
	"braik-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles platform administration of teams.
type AdminHandler struct {
	service service.AdminServicer
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(service service.AdminServicer) *AdminHandler {
	return &AdminHandler{service: service}
}

// ListTeams godoc
// @Summary      List all teams
// @Tags         admin
// @Produce      json
// @Param        page   query     int  false  "Page number (default: 1)"
// @Param        limit  query     int  false  "Items per page (default: 20, max: 100)"
// @Success      200    {object}  response.Response{data=models.TeamListResponse}
// @Failure      403    {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/teams [get]
func (h *AdminHandler) ListTeams(c *gin.Context) {
	page, limit := pageParams(c)
	result, err := h.service.ListTeams(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, result)
}

// UpdateTeamStatus godoc
// @Summary      Set team status
// @Description  Change teamStatus and/or subscriptionStatus. Audited with the previous values.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        teamId  path      string                          true  "Team ID"
// @Param        body    body      models.UpdateTeamStatusRequest  true  "New status"
// @Success      200     {object}  response.Response{data=models.Team}
// @Failure      400     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/teams/{teamId}/status [put]
func (h *AdminHandler) UpdateTeamStatus(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}
	teamID, ok := objectIDParam(c, "teamId")
	if !ok {
		return
	}

	var req models.UpdateTeamStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if req.TeamStatus == nil && req.SubscriptionStatus == nil {
		response.BadRequest(c, "teamStatus or subscriptionStatus is required")
		return
	}

	team, err := h.service.UpdateTeamStatus(c.Request.Context(), user.ID, teamID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, team)
}

// UpdateTeamAISettings godoc
// @Summary      Set team AI controls
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        teamId  path      string                              true  "Team ID"
// @Param        body    body      models.UpdateTeamAISettingsRequest  true  "AI settings"
// @Success      200     {object}  response.Response{data=models.Team}
// @Failure      400     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/teams/{teamId}/ai [put]
func (h *AdminHandler) UpdateTeamAISettings(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}
	teamID, ok := objectIDParam(c, "teamId")
	if !ok {
		return
	}

	var req models.UpdateTeamAISettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	team, err := h.service.UpdateTeamAISettings(c.Request.Context(), user.ID, teamID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, team)
}
