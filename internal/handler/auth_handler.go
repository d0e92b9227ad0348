// Package handler contains HTTP handlers for the API.
package handler

import (
	"braik-api/internal/middleware"
	"braik-api/internal/models"
	"braik-api/internal/service"
	"braik-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	service       service.AuthServicer
	secureCookies bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service service.AuthServicer, secureCookies bool) *AuthHandler {
	return &AuthHandler{service: service, secureCookies: secureCookies}
}

// Register godoc
// @Summary      Register a new user
// @Description  Create a new user account and start a session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateUserRequest  true  "User registration details"
// @Success      201      {object}  response.Response{data=models.AuthResponse}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.SetSessionCookie(c, result.Token, result.ExpiresAt, h.secureCookies)
	response.Created(c, result)
}

// Login godoc
// @Summary      User login
// @Description  Authenticate and set the braik_session cookie. The token is also returned for bearer use.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.LoginRequest  true  "User credentials"
// @Success      200      {object}  response.Response{data=models.AuthResponse}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.SetSessionCookie(c, result.Token, result.ExpiresAt, h.secureCookies)
	response.Success(c, result)
}

// Logout godoc
// @Summary      Logout
// @Description  Clear the session and any impersonation cookie
// @Tags         auth
// @Produce      json
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c, h.secureCookies)
	middleware.ClearSupportCookie(c, h.secureCookies)
	response.NoContent(c)
}

// MeResponse describes the caller. Impersonator is set while an admin is impersonating.
type MeResponse struct {
	User         *models.SessionUser `json:"user"`
	Impersonator *models.SessionUser `json:"impersonator,omitempty"`
}

// Me godoc
// @Summary      Current user
// @Description  Return the effective user, and the impersonating admin when there is one
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response{data=MeResponse}
// @Failure      401  {object}  response.Response
// @Security     BearerAuth
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}

	resp := MeResponse{User: user}
	if impersonator, ok := middleware.GetImpersonator(c); ok {
		resp.Impersonator = impersonator
	}
	response.Success(c, resp)
}
