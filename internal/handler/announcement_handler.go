package handler

import (
	"braik-api/internal/models"
	"braik-api/internal/service"
	"braik-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// AnnouncementHandler handles HTTP requests for team announcements.
type AnnouncementHandler struct {
	service service.AnnouncementServicer
}

// NewAnnouncementHandler creates a new AnnouncementHandler.
func NewAnnouncementHandler(service service.AnnouncementServicer) *AnnouncementHandler {
	return &AnnouncementHandler{service: service}
}

// ListAnnouncements godoc
// @Summary      List announcements
// @Description  Players and parents only see announcements addressed to them.
// @Tags         announcements
// @Produce      json
// @Param        teamId  path      string  true   "Team ID"
// @Param        page    query     int     false  "Page number (default: 1)"
// @Param        limit   query     int     false  "Items per page (default: 20, max: 100)"
// @Success      200     {object}  response.Response{data=models.AnnouncementListResponse}
// @Failure      403     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/announcements [get]
func (h *AnnouncementHandler) ListAnnouncements(c *gin.Context) {
	teamID, membership, ok := teamContext(c)
	if !ok {
		return
	}
	var role models.Role
	if membership != nil {
		role = membership.Role
	}

	page, limit := pageParams(c)
	result, err := h.service.ListAnnouncements(c.Request.Context(), teamID, role, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, result)
}

// CreateAnnouncement godoc
// @Summary      Post an announcement
// @Tags         announcements
// @Accept       json
// @Produce      json
// @Param        teamId  path      string                            true  "Team ID"
// @Param        body    body      models.CreateAnnouncementRequest  true  "Announcement"
// @Success      201     {object}  response.Response{data=models.Announcement}
// @Failure      400     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/announcements [post]
func (h *AnnouncementHandler) CreateAnnouncement(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}
	teamID, _, ok := teamContext(c)
	if !ok {
		return
	}

	var req models.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	announcement, err := h.service.CreateAnnouncement(c.Request.Context(), user.ID, teamID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, announcement)
}

// DeleteAnnouncement godoc
// @Summary      Delete an announcement
// @Tags         announcements
// @Param        teamId  path  string  true  "Team ID"
// @Param        id      path  string  true  "Announcement ID"
// @Success      204
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/announcements/{id} [delete]
func (h *AnnouncementHandler) DeleteAnnouncement(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}
	teamID, _, ok := teamContext(c)
	if !ok {
		return
	}
	announcementID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteAnnouncement(c.Request.Context(), user.ID, teamID, announcementID); err != nil {
		respondError(c, err)
		return
	}

	response.NoContent(c)
}
