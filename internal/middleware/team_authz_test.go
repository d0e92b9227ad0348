package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"braik-api/internal/authz"
	"braik-api/internal/authz/mocks"
	apperrors "braik-api/internal/errors"
	"braik-api/internal/models"
	"braik-api/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func decodeError(t *testing.T, body []byte) *response.ErrorBody {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.Unmarshal(body, &resp))
	require.NotNil(t, resp.Error)
	return resp.Error
}

func TestTeamPermission(t *testing.T) {
	userID := primitive.NewObjectID()
	teamID := primitive.NewObjectID()
	user := &models.SessionUser{ID: userID}

	newCtx := func(teamParam string) (*gin.Context, *httptest.ResponseRecorder) {
		c, w := newTestContext(http.MethodGet, "/teams/"+teamParam)
		c.Params = gin.Params{{Key: "teamId", Value: teamParam}}
		c.Set(SessionUserKey, user)
		return c, w
	}

	t.Run("stores team and membership when permitted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		authorizer := mocks.NewMockAuthorizer(ctrl)
		membership := &models.Membership{TeamID: teamID, UserID: userID, Role: models.RoleHeadCoach}
		authorizer.EXPECT().
			RequireTeamPermission(gomock.Any(), userID, teamID, authz.PermManageMembers).
			Return(membership, nil)

		c, _ := newCtx(teamID.Hex())
		TeamPermission(authorizer, authz.PermManageMembers)(c)

		require.False(t, c.IsAborted())
		gotTeam, ok := GetTeamID(c)
		assert.True(t, ok)
		assert.Equal(t, teamID, gotTeam)
		gotMembership, ok := GetMembership(c)
		assert.True(t, ok)
		assert.Equal(t, models.RoleHeadCoach, gotMembership.Role)
	})

	t.Run("non-member gets ACCESS_DENIED", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		authorizer := mocks.NewMockAuthorizer(ctrl)
		authorizer.EXPECT().
			RequireTeamPermission(gomock.Any(), userID, teamID, authz.PermViewTeam).
			Return(nil, apperrors.ErrAccessDenied)

		c, rec := newCtx(teamID.Hex())
		TeamPermission(authorizer, authz.PermViewTeam)(c)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "ACCESS_DENIED", decodeError(t, rec.Body.Bytes()).Code)
	})

	t.Run("wrong role gets FORBIDDEN", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		authorizer := mocks.NewMockAuthorizer(ctrl)
		authorizer.EXPECT().
			RequireTeamPermission(gomock.Any(), userID, teamID, authz.PermManageBilling).
			Return(nil, apperrors.ErrForbidden)

		c, rec := newCtx(teamID.Hex())
		TeamPermission(authorizer, authz.PermManageBilling)(c)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "FORBIDDEN", decodeError(t, rec.Body.Bytes()).Code)
	})

	t.Run("malformed team id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		authorizer := mocks.NewMockAuthorizer(ctrl)

		c, rec := newCtx("not-an-id")
		TeamPermission(authorizer, authz.PermViewTeam)(c)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("no session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		authorizer := mocks.NewMockAuthorizer(ctrl)

		c, w := newTestContext(http.MethodGet, "/")
		c.Params = gin.Params{{Key: "teamId", Value: teamID.Hex()}}
		TeamPermission(authorizer, authz.PermViewTeam)(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestTeamOperation(t *testing.T) {
	teamID := primitive.NewObjectID()

	t.Run("stores the team when allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		guard := mocks.NewMockOperationGuard(ctrl)
		team := &models.Team{ID: teamID, TeamStatus: models.TeamStatusActive}
		guard.EXPECT().RequireTeamOperationAccess(gomock.Any(), teamID, authz.OpWrite).Return(team, nil)

		c, _ := newTestContext(http.MethodPost, "/")
		c.Set(TeamIDKey, teamID)
		TeamOperation(guard, authz.OpWrite)(c)

		require.False(t, c.IsAborted())
		got, ok := GetTeam(c)
		assert.True(t, ok)
		assert.Equal(t, teamID, got.ID)
	})

	t.Run("reads the path when no permission check ran", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		guard := mocks.NewMockOperationGuard(ctrl)
		guard.EXPECT().RequireTeamOperationAccess(gomock.Any(), teamID, authz.OpView).
			Return(&models.Team{ID: teamID}, nil)

		c, _ := newTestContext(http.MethodPost, "/")
		c.Params = gin.Params{{Key: "teamId", Value: teamID.Hex()}}
		TeamOperation(guard, authz.OpView)(c)

		require.False(t, c.IsAborted())
		got, ok := GetTeamID(c)
		assert.True(t, ok)
		assert.Equal(t, teamID, got)
	})

	t.Run("terminated subscription is 423 with details", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		guard := mocks.NewMockOperationGuard(ctrl)
		guard.EXPECT().RequireTeamOperationAccess(gomock.Any(), teamID, authz.OpBilling).
			Return(nil, apperrors.ErrTeamSubscriptionTerminated.WithDetails(map[string]any{
				"subscriptionStatus": "terminated",
			}))

		c, w := newTestContext(http.MethodGet, "/")
		c.Set(TeamIDKey, teamID)
		TeamOperation(guard, authz.OpBilling)(c)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusLocked, w.Code)
		body := decodeError(t, w.Body.Bytes())
		assert.Equal(t, "TEAM_SUBSCRIPTION_TERMINATED", body.Code)
		assert.Equal(t, "terminated", body.Details["subscriptionStatus"])

		var raw struct {
			Error map[string]any `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
		assert.Equal(t, "terminated", raw.Error["subscriptionStatus"])
	})

	t.Run("missing team is 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		guard := mocks.NewMockOperationGuard(ctrl)
		guard.EXPECT().RequireTeamOperationAccess(gomock.Any(), teamID, authz.OpView).
			Return(nil, apperrors.ErrTeamNotFound)

		c, w := newTestContext(http.MethodGet, "/")
		c.Set(TeamIDKey, teamID)
		TeamOperation(guard, authz.OpView)(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "TEAM_NOT_FOUND", decodeError(t, w.Body.Bytes()).Code)
	})
}
