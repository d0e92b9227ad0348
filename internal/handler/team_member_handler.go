package handler

import (
	"braik-api/internal/models"
	"braik-api/internal/service"
	"braik-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// TeamMemberHandler handles HTTP requests for roster operations.
type TeamMemberHandler struct {
	service service.MembershipServicer
}

// NewTeamMemberHandler creates a new TeamMemberHandler.
func NewTeamMemberHandler(service service.MembershipServicer) *TeamMemberHandler {
	return &TeamMemberHandler{service: service}
}

// ListMembers godoc
// @Summary      List team members
// @Tags         members
// @Produce      json
// @Param        teamId  path      string  true  "Team ID"
// @Success      200     {object}  response.Response{data=models.MembershipListResponse}
// @Failure      403     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/members [get]
func (h *TeamMemberHandler) ListMembers(c *gin.Context) {
	teamID, _, ok := teamContext(c)
	if !ok {
		return
	}

	result, err := h.service.ListMembers(c.Request.Context(), teamID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, result)
}

// AddMember godoc
// @Summary      Add a member to the roster
// @Description  Add an existing user by email. Requires edit_roster.
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        teamId  path      string                   true  "Team ID"
// @Param        body    body      models.AddMemberRequest  true  "Member details"
// @Success      201     {object}  response.Response{data=models.MembershipWithUser}
// @Failure      400     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/members [post]
func (h *TeamMemberHandler) AddMember(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}
	teamID, _, ok := teamContext(c)
	if !ok {
		return
	}

	var req models.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	member, err := h.service.AddMember(c.Request.Context(), user.ID, teamID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, member)
}

// UpdateMember godoc
// @Summary      Update a member's role
// @Description  Change role and permission flags. The last head coach cannot be demoted.
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        teamId  path      string                      true  "Team ID"
// @Param        userId  path      string                      true  "User ID"
// @Param        body    body      models.UpdateMemberRequest  true  "New role"
// @Success      200     {object}  response.Response{data=models.Membership}
// @Failure      400     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/members/{userId} [put]
func (h *TeamMemberHandler) UpdateMember(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}
	teamID, _, ok := teamContext(c)
	if !ok {
		return
	}
	targetID, ok := objectIDParam(c, "userId")
	if !ok {
		return
	}

	var req models.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	member, err := h.service.UpdateMember(c.Request.Context(), user.ID, teamID, targetID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, member)
}

// RemoveMember godoc
// @Summary      Remove a member
// @Tags         members
// @Param        teamId  path  string  true  "Team ID"
// @Param        userId  path  string  true  "User ID"
// @Success      204
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/members/{userId} [delete]
func (h *TeamMemberHandler) RemoveMember(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}
	teamID, _, ok := teamContext(c)
	if !ok {
		return
	}
	targetID, ok := objectIDParam(c, "userId")
	if !ok {
		return
	}

	if err := h.service.RemoveMember(c.Request.Context(), user.ID, teamID, targetID); err != nil {
		respondError(c, err)
		return
	}

	response.NoContent(c)
}

// LeaveTeam godoc
// @Summary      Leave a team
// @Tags         members
// @Param        teamId  path  string  true  "Team ID"
// @Success      204
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/leave [post]
func (h *TeamMemberHandler) LeaveTeam(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}
	teamID, _, ok := teamContext(c)
	if !ok {
		return
	}

	if err := h.service.LeaveTeam(c.Request.Context(), teamID, user.ID); err != nil {
		respondError(c, err)
		return
	}

	response.NoContent(c)
}
