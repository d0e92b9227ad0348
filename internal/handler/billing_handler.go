package handler

import (
	"braik-api/internal/middleware"
	"braik-api/internal/models"
	"braik-api/internal/service"
	"braik-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// BillingHandler handles HTTP requests for team billing.
type BillingHandler struct {
	service service.BillingServicer
	teams   service.TeamServicer
}

// NewBillingHandler creates a new BillingHandler.
func NewBillingHandler(service service.BillingServicer, teams service.TeamServicer) *BillingHandler {
	return &BillingHandler{service: service, teams: teams}
}

// GetBilling godoc
// @Summary      Get billing summary
// @Description  Reachable while the team is suspended so the head coach can fix payment.
// @Tags         billing
// @Produce      json
// @Param        teamId  path      string  true  "Team ID"
// @Success      200     {object}  response.Response{data=models.BillingSummary}
// @Failure      403     {object}  response.Response
// @Failure      423     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/billing [get]
func (h *BillingHandler) GetBilling(c *gin.Context) {
	team, ok := middleware.GetTeam(c)
	if !ok {
		teamID, _, ok := teamContext(c)
		if !ok {
			return
		}
		var err error
		if team, err = h.teams.GetTeam(c.Request.Context(), teamID); err != nil {
			respondError(c, err)
			return
		}
	}

	response.Success(c, h.service.GetBilling(c.Request.Context(), team))
}

// ConnectPayoutAccount godoc
// @Summary      Connect a payout account
// @Description  Refused while impersonating.
// @Tags         billing
// @Accept       json
// @Produce      json
// @Param        teamId  path      string                              true  "Team ID"
// @Param        body    body      models.ConnectPayoutAccountRequest  true  "Payout account"
// @Success      200     {object}  response.Response{data=models.BillingSummary}
// @Failure      400     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      423     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/billing/payout-account [post]
func (h *BillingHandler) ConnectPayoutAccount(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}
	teamID, _, ok := teamContext(c)
	if !ok {
		return
	}

	var req models.ConnectPayoutAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	summary, err := h.service.ConnectPayoutAccount(c.Request.Context(), user.ID, teamID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, summary)
}
