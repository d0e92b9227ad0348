package handler

import (
	"strconv"

	"braik-api/internal/models"
	"braik-api/internal/service"
	"braik-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// SystemConfigHandler exposes versioned platform settings.
type SystemConfigHandler struct {
	service service.SystemConfigServicer
}

// NewSystemConfigHandler creates a new SystemConfigHandler.
func NewSystemConfigHandler(service service.SystemConfigServicer) *SystemConfigHandler {
	return &SystemConfigHandler{service: service}
}

// Get godoc
// @Summary      Get the latest config value
// @Tags         admin
// @Produce      json
// @Param        key  path      string  true  "Config key"
// @Success      200  {object}  response.Response{data=models.SystemConfig}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/config/{key} [get]
func (h *SystemConfigHandler) Get(c *gin.Context) {
	cfg, err := h.service.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, cfg)
}

// Put godoc
// @Summary      Write a new config version
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        key   path      string                         true  "Config key"
// @Param        body  body      models.PutSystemConfigRequest  true  "New value"
// @Success      201   {object}  response.Response{data=models.SystemConfig}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/config/{key} [put]
func (h *SystemConfigHandler) Put(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}

	var req models.PutSystemConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	cfg, err := h.service.Put(c.Request.Context(), user.ID, c.Param("key"), req.Value)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, cfg)
}

// History godoc
// @Summary      List config versions
// @Tags         admin
// @Produce      json
// @Param        key    path      string  true   "Config key"
// @Param        limit  query     int     false  "Versions to return (default: 20, max: 200)"
// @Success      200    {object}  response.Response{data=models.SystemConfigListResponse}
// @Failure      403    {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/config/{key}/history [get]
func (h *SystemConfigHandler) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	result, err := h.service.History(c.Request.Context(), c.Param("key"), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, result)
}
