package handler

import (
	"braik-api/internal/models"
	"braik-api/internal/service"
	"braik-api/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuditLogHandler reads back audit rows.
type AuditLogHandler struct {
	service service.AuditLogServicer
}

// NewAuditLogHandler creates a new AuditLogHandler.
func NewAuditLogHandler(service service.AuditLogServicer) *AuditLogHandler {
	return &AuditLogHandler{service: service}
}

// ListTeamLogs godoc
// @Summary      List team audit log
// @Tags         audit
// @Produce      json
// @Param        teamId   path      string  true   "Team ID"
// @Param        actorId  query     string  false  "Filter by actor"
// @Param        action   query     string  false  "Filter by action"
// @Param        page     query     int     false  "Page number (default: 1)"
// @Param        limit    query     int     false  "Items per page (default: 20, max: 100)"
// @Success      200      {object}  response.Response{data=models.AuditLogListResponse}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/audit-logs [get]
func (h *AuditLogHandler) ListTeamLogs(c *gin.Context) {
	teamID, _, ok := teamContext(c)
	if !ok {
		return
	}
	filter, ok := auditFilter(c)
	if !ok {
		return
	}

	page, limit := pageParams(c)
	result, err := h.service.ListTeamLogs(c.Request.Context(), teamID, filter, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, result)
}

// ListPlatformLogs godoc
// @Summary      List platform audit log
// @Tags         admin
// @Produce      json
// @Param        actorId  query     string  false  "Filter by actor"
// @Param        action   query     string  false  "Filter by action"
// @Param        page     query     int     false  "Page number (default: 1)"
// @Param        limit    query     int     false  "Items per page (default: 20, max: 100)"
// @Success      200      {object}  response.Response{data=models.AuditLogListResponse}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/audit-logs [get]
func (h *AuditLogHandler) ListPlatformLogs(c *gin.Context) {
	filter, ok := auditFilter(c)
	if !ok {
		return
	}

	page, limit := pageParams(c)
	result, err := h.service.ListPlatformLogs(c.Request.Context(), filter, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, result)
}

func auditFilter(c *gin.Context) (models.AuditLogFilter, bool) {
	filter := models.AuditLogFilter{Action: c.Query("action")}
	if raw := c.Query("actorId"); raw != "" {
		actorID, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			response.BadRequest(c, "invalid actorId format")
			return filter, false
		}
		filter.ActorID = &actorID
	}
	return filter, true
}
