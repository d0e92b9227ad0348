package handler

import (
	"braik-api/internal/models"
	"braik-api/internal/service"
	"braik-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// DocumentHandler handles HTTP requests for team documents.
type DocumentHandler struct {
	service service.DocumentServicer
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(service service.DocumentServicer) *DocumentHandler {
	return &DocumentHandler{service: service}
}

// ListDocuments godoc
// @Summary      List documents
// @Tags         documents
// @Produce      json
// @Param        teamId  path      string  true   "Team ID"
// @Param        page    query     int     false  "Page number (default: 1)"
// @Param        limit   query     int     false  "Items per page (default: 20, max: 100)"
// @Success      200     {object}  response.Response{data=models.DocumentListResponse}
// @Failure      403     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/documents [get]
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	teamID, _, ok := teamContext(c)
	if !ok {
		return
	}

	page, limit := pageParams(c)
	result, err := h.service.ListDocuments(c.Request.Context(), teamID, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, result)
}

// CreateDocument godoc
// @Summary      Register a document upload
// @Description  Creates a pending document and returns a presigned PUT URL. Call confirm once the upload finishes.
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        teamId  path      string                        true  "Team ID"
// @Param        body    body      models.CreateDocumentRequest  true  "Document metadata"
// @Success      201     {object}  response.Response{data=models.DocumentUploadResponse}
// @Failure      400     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/documents [post]
func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}
	teamID, _, ok := teamContext(c)
	if !ok {
		return
	}

	var req models.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreateDocument(c.Request.Context(), user.ID, teamID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, result)
}

// ConfirmUpload godoc
// @Summary      Confirm a document upload
// @Tags         documents
// @Produce      json
// @Param        teamId  path      string  true  "Team ID"
// @Param        id      path      string  true  "Document ID"
// @Success      200     {object}  response.Response{data=models.Document}
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/documents/{id}/confirm [post]
func (h *DocumentHandler) ConfirmUpload(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}
	teamID, _, ok := teamContext(c)
	if !ok {
		return
	}
	documentID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	doc, err := h.service.ConfirmUpload(c.Request.Context(), user.ID, teamID, documentID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, doc)
}

// GetDownloadURL godoc
// @Summary      Get a document download URL
// @Tags         documents
// @Produce      json
// @Param        teamId  path      string  true  "Team ID"
// @Param        id      path      string  true  "Document ID"
// @Success      200     {object}  response.Response{data=models.DocumentURLResponse}
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/documents/{id}/url [get]
func (h *DocumentHandler) GetDownloadURL(c *gin.Context) {
	teamID, _, ok := teamContext(c)
	if !ok {
		return
	}
	documentID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.service.GetDownloadURL(c.Request.Context(), teamID, documentID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteDocument godoc
// @Summary      Delete a document
// @Tags         documents
// @Param        teamId  path  string  true  "Team ID"
// @Param        id      path  string  true  "Document ID"
// @Success      204
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/documents/{id} [delete]
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}
	teamID, _, ok := teamContext(c)
	if !ok {
		return
	}
	documentID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteDocument(c.Request.Context(), user.ID, teamID, documentID); err != nil {
		respondError(c, err)
		return
	}

	response.NoContent(c)
}
