// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"braik-api/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Context keys for request-scoped data.
const (
	SessionUserKey   = "sessionUser"
	ImpersonatorKey  = "impersonator"
	ImpersonationKey = "impersonation"
	TeamIDKey        = "teamID"
	MembershipKey    = "membership"
	TeamKey          = "team"
)

// GetSessionUser returns the effective user. While impersonating this is the target.
func GetSessionUser(c *gin.Context) (*models.SessionUser, bool) {
	v, exists := c.Get(SessionUserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.SessionUser)
	return user, ok && user != nil
}

// GetUserID returns the effective user's ID.
func GetUserID(c *gin.Context) (primitive.ObjectID, bool) {
	user, ok := GetSessionUser(c)
	if !ok {
		return primitive.NilObjectID, false
	}
	return user.ID, true
}

// GetImpersonator returns the platform admin behind an impersonated request.
func GetImpersonator(c *gin.Context) (*models.SessionUser, bool) {
	v, exists := c.Get(ImpersonatorKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.SessionUser)
	return user, ok && user != nil
}

// IsImpersonating reports whether the request runs under an impersonation session.
func IsImpersonating(c *gin.Context) bool {
	_, ok := GetImpersonator(c)
	return ok
}

// GetTeamID retrieves the team ID from the context.
func GetTeamID(c *gin.Context) (primitive.ObjectID, bool) {
	teamID, exists := c.Get(TeamIDKey)
	if !exists {
		return primitive.NilObjectID, false
	}
	id, ok := teamID.(primitive.ObjectID)
	return id, ok
}

// GetMembership retrieves the caller's membership in the route's team.
func GetMembership(c *gin.Context) (*models.Membership, bool) {
	v, exists := c.Get(MembershipKey)
	if !exists {
		return nil, false
	}
	m, ok := v.(*models.Membership)
	return m, ok && m != nil
}

// GetTeam retrieves the team loaded by the operation guard.
func GetTeam(c *gin.Context) (*models.Team, bool) {
	v, exists := c.Get(TeamKey)
	if !exists {
		return nil, false
	}
	t, ok := v.(*models.Team)
	return t, ok && t != nil
}
