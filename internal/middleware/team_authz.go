package middleware

import (
	"braik-api/internal/authz"
	"braik-api/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamPermission returns a middleware that requires the caller's role in the
// :teamId team to grant perm. It stores the team ID and membership for handlers.
func TeamPermission(authorizer authz.Authorizer, perm authz.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			response.Unauthorized(c, "user not authenticated")
			c.Abort()
			return
		}

		teamID, ok := teamIDParam(c)
		if !ok {
			return
		}

		membership, err := authorizer.RequireTeamPermission(c.Request.Context(), userID, teamID, perm)
		if err != nil {
			abortWithError(c, err)
			return
		}

		c.Set(TeamIDKey, teamID)
		c.Set(MembershipKey, membership)
		c.Next()
	}
}

// TeamOperation returns a middleware that checks the team's lifecycle state
// allows op. The loaded team is stored for handlers.
func TeamOperation(guard authz.OperationGuard, op authz.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		teamID, ok := GetTeamID(c)
		if !ok {
			if teamID, ok = teamIDParam(c); !ok {
				return
			}
			c.Set(TeamIDKey, teamID)
		}

		team, err := guard.RequireTeamOperationAccess(c.Request.Context(), teamID, op)
		if err != nil {
			abortWithError(c, err)
			return
		}

		c.Set(TeamKey, team)
		c.Next()
	}
}

// teamIDParam parses :teamId, writing a 400 and aborting when it is malformed.
func teamIDParam(c *gin.Context) (primitive.ObjectID, bool) {
	raw := c.Param("teamId")
	if raw == "" {
		response.BadRequest(c, "team id is required")
		c.Abort()
		return primitive.NilObjectID, false
	}
	teamID, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		response.BadRequest(c, "invalid team id format")
		c.Abort()
		return primitive.NilObjectID, false
	}
	return teamID, true
}
