package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"braik-api/internal/middleware"
	"braik-api/internal/models"
	"braik-api/internal/validator"
	"braik-api/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.RegisterCustomValidators()
}

// setSession simulates the Auth middleware.
func setSession(user *models.SessionUser) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user != nil {
			c.Set(middleware.SessionUserKey, user)
		}
		c.Next()
	}
}

// setTeam simulates TeamPermission and TeamOperation.
func setTeam(teamID primitive.ObjectID, membership *models.Membership, team *models.Team) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.TeamIDKey, teamID)
		if membership != nil {
			c.Set(middleware.MembershipKey, membership)
		}
		if team != nil {
			c.Set(middleware.TeamKey, team)
		}
		c.Next()
	}
}

func performRequest(t *testing.T, router *gin.Engine, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeData unmarshals the success envelope's data into target.
func decodeData(t *testing.T, w *httptest.ResponseRecorder, target any) {
	t.Helper()
	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.True(t, envelope.Success, w.Body.String())
	require.NoError(t, json.Unmarshal(envelope.Data, target))
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error, w.Body.String())
	return resp.Error.Code
}

func newSessionUser() *models.SessionUser {
	return &models.SessionUser{ID: primitive.NewObjectID(), Email: "coach@example.com", Name: "Jordan Reyes"}
}
