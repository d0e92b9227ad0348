package handler

import (
	"context"

	"braik-api/internal/middleware"
	"braik-api/internal/models"
	"braik-api/internal/service"
	"braik-api/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AIHandler handles HTTP requests for the team assistant.
type AIHandler struct {
	assistant service.AssistantServicer
	usage     service.AIUsageServicer
	teams     service.TeamServicer
}

// NewAIHandler creates a new AIHandler.
func NewAIHandler(assistant service.AssistantServicer, usage service.AIUsageServicer, teams service.TeamServicer) *AIHandler {
	return &AIHandler{assistant: assistant, usage: usage, teams: teams}
}

// Chat godoc
// @Summary      Chat with the team assistant
// @Description  Usage is weighted by the caller's role. Refused once the season allowance is exhausted.
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        teamId  path      string              true  "Team ID"
// @Param        body    body      models.ChatRequest  true  "Message"
// @Success      200     {object}  response.Response{data=models.ChatResponse}
// @Failure      400     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/ai/chat [post]
func (h *AIHandler) Chat(c *gin.Context) {
	teamID, membership, ok := teamContext(c)
	if !ok {
		return
	}

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	team, ok := middleware.GetTeam(c)
	if !ok {
		var err error
		if team, err = h.teams.GetTeam(c.Request.Context(), teamID); err != nil {
			respondError(c, err)
			return
		}
	}

	result, err := h.assistant.Chat(c.Request.Context(), team, membership, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, result)
}

// CreateProposal godoc
// @Summary      Propose an assistant action
// @Description  Stores a pending proposal for a head coach to approve or reject.
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        teamId  path      string                        true  "Team ID"
// @Param        body    body      models.CreateProposalRequest  true  "Proposal"
// @Success      201     {object}  response.Response{data=models.AIActionProposal}
// @Failure      400     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/ai/proposals [post]
func (h *AIHandler) CreateProposal(c *gin.Context) {
	teamID, membership, ok := teamContext(c)
	if !ok {
		return
	}

	var req models.CreateProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	proposal, err := h.assistant.CreateProposal(c.Request.Context(), teamID, membership, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, proposal)
}

// ListProposals godoc
// @Summary      List assistant proposals
// @Tags         ai
// @Produce      json
// @Param        teamId  path      string  true   "Team ID"
// @Param        status  query     string  false  "pending, executed, rejected or failed"
// @Success      200     {object}  response.Response{data=models.ProposalListResponse}
// @Failure      403     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/ai/proposals [get]
func (h *AIHandler) ListProposals(c *gin.Context) {
	teamID, _, ok := teamContext(c)
	if !ok {
		return
	}

	result, err := h.assistant.ListProposals(c.Request.Context(), teamID, c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, result)
}

// ExecuteProposal godoc
// @Summary      Approve and execute a proposal
// @Description  Requires full AI mode. A proposal executes at most once.
// @Tags         ai
// @Produce      json
// @Param        teamId  path      string  true  "Team ID"
// @Param        id      path      string  true  "Proposal ID"
// @Success      200     {object}  response.Response{data=models.AIActionProposal}
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/ai/proposals/{id}/execute [post]
func (h *AIHandler) ExecuteProposal(c *gin.Context) {
	h.decide(c, h.assistant.ExecuteProposal)
}

// RejectProposal godoc
// @Summary      Reject a proposal
// @Tags         ai
// @Produce      json
// @Param        teamId  path      string  true  "Team ID"
// @Param        id      path      string  true  "Proposal ID"
// @Success      200     {object}  response.Response{data=models.AIActionProposal}
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/ai/proposals/{id}/reject [post]
func (h *AIHandler) RejectProposal(c *gin.Context) {
	h.decide(c, h.assistant.RejectProposal)
}

type proposalDecision func(ctx context.Context, teamID, proposalID, actorID primitive.ObjectID) (*models.AIActionProposal, error)

func (h *AIHandler) decide(c *gin.Context, decision proposalDecision) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}
	teamID, _, ok := teamContext(c)
	if !ok {
		return
	}
	proposalID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	proposal, err := decision(c.Request.Context(), teamID, proposalID, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, proposal)
}

// GetUsage godoc
// @Summary      Get AI usage
// @Description  Season aggregate, limit and the derived mode
// @Tags         ai
// @Produce      json
// @Param        teamId  path      string  true  "Team ID"
// @Success      200     {object}  response.Response{data=models.AIUsageSummary}
// @Failure      403     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/ai/usage [get]
func (h *AIHandler) GetUsage(c *gin.Context) {
	teamID, _, ok := teamContext(c)
	if !ok {
		return
	}

	result, err := h.usage.GetUsage(c.Request.Context(), teamID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, result)
}
