package handler

import (
	"braik-api/internal/middleware"
	"braik-api/internal/models"
	"braik-api/internal/service"
	"braik-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for the caller's own account.
type UserHandler struct {
	service       service.UserServicer
	secureCookies bool
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service service.UserServicer, secureCookies bool) *UserHandler {
	return &UserHandler{service: service, secureCookies: secureCookies}
}

// GetMe godoc
// @Summary      Get my profile
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response{data=models.User}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}

	result, err := h.service.GetUser(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, result)
}

// UpdateMe godoc
// @Summary      Update my profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      models.UpdateUserRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=models.User}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Security     BearerAuth
// @Router       /users/me [put]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.UpdateUser(c.Request.Context(), user.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteMe godoc
// @Summary      Delete my account
// @Description  Refused while impersonating.
// @Tags         users
// @Success      204
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Security     BearerAuth
// @Router       /users/me [delete]
func (h *UserHandler) DeleteMe(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), user.ID); err != nil {
		respondError(c, err)
		return
	}

	middleware.ClearSessionCookie(c, h.secureCookies)
	response.NoContent(c)
}
