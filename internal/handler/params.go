package handler

import (
	"strconv"

	"braik-api/internal/middleware"
	"braik-api/internal/models"
	"braik-api/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// sessionUser returns the effective user or writes a 401.
func sessionUser(c *gin.Context) (*models.SessionUser, bool) {
	user, ok := middleware.GetSessionUser(c)
	if !ok {
		response.Unauthorized(c, "user not authenticated")
		return nil, false
	}
	return user, true
}

// teamContext returns the team ID and caller membership set by TeamPermission.
func teamContext(c *gin.Context) (primitive.ObjectID, *models.Membership, bool) {
	teamID, ok := middleware.GetTeamID(c)
	if !ok {
		response.BadRequest(c, "team id not found in context")
		return primitive.NilObjectID, nil, false
	}
	membership, _ := middleware.GetMembership(c)
	return teamID, membership, true
}

// objectIDParam parses a path parameter or writes a 400.
func objectIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		response.BadRequest(c, "invalid "+name+" format")
		return primitive.NilObjectID, false
	}
	return id, true
}

// pageParams reads page and limit. Bounds are applied by the services.
func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	return page, limit
}
