package handler

import (
	"braik-api/internal/middleware"
	"braik-api/internal/models"
	"braik-api/internal/service"
	"braik-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// ImpersonationHandler starts and ends admin impersonation sessions.
type ImpersonationHandler struct {
	service       service.ImpersonationServicer
	secureCookies bool
}

// NewImpersonationHandler creates a new ImpersonationHandler.
func NewImpersonationHandler(service service.ImpersonationServicer, secureCookies bool) *ImpersonationHandler {
	return &ImpersonationHandler{service: service, secureCookies: secureCookies}
}

// Start godoc
// @Summary      Start impersonating a user
// @Description  Sets the braik_support_token cookie for 5 to 15 minutes. The raw token is never returned in the body.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      models.StartImpersonationRequest  true  "Target and duration"
// @Success      201   {object}  response.Response{data=models.ImpersonationSession}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/impersonation [post]
func (h *ImpersonationHandler) Start(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}

	var req models.StartImpersonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	session, token, err := h.service.Start(c.Request.Context(), user, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.SetSupportCookie(c, token, session.ExpiresAt, h.secureCookies)
	response.Created(c, session)
}

// End godoc
// @Summary      Stop impersonating
// @Description  Works from inside the impersonated session. Always clears the cookie.
// @Tags         admin
// @Success      204
// @Failure      403  {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/impersonation [delete]
func (h *ImpersonationHandler) End(c *gin.Context) {
	actor, ok := middleware.GetImpersonator(c)
	if !ok {
		if actor, ok = sessionUser(c); !ok {
			return
		}
	}

	token, err := c.Cookie(middleware.SupportCookieName)
	if err == nil && token != "" {
		if err := h.service.End(c.Request.Context(), actor.ID, token); err != nil {
			respondError(c, err)
			return
		}
	}

	middleware.ClearSupportCookie(c, h.secureCookies)
	response.NoContent(c)
}

// ListSessions godoc
// @Summary      List active impersonation sessions
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response{data=models.ImpersonationSessionListResponse}
// @Failure      403  {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/impersonation/sessions [get]
func (h *ImpersonationHandler) ListSessions(c *gin.Context) {
	result, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, result)
}
