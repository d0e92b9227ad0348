package handler

import (
	"context"
	"net/http"
	"testing"

	apperrors "braik-api/internal/errors"
	"braik-api/internal/models"
	"braik-api/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newConfigRouter(svc *mocks.MockSystemConfigService) *gin.Engine {
	h := NewSystemConfigHandler(svc)
	router := gin.New()
	cfg := router.Group("/admin/config", setSession(newAdminUser()))
	cfg.GET("/:key", h.Get)
	cfg.PUT("/:key", h.Put)
	cfg.GET("/:key/history", h.History)
	return router
}

func TestSystemConfigHandler_Get(t *testing.T) {
	svc := &mocks.MockSystemConfigService{
		GetFunc: func(_ context.Context, key string) (*models.SystemConfig, error) {
			if key != "ai.default_credits" {
				return nil, apperrors.ErrConfigNotFound
			}
			return &models.SystemConfig{Key: key, Version: 3, Value: float64(150000)}, nil
		},
	}
	router := newConfigRouter(svc)

	w := performRequest(t, router, http.MethodGet, "/admin/config/ai.default_credits", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cfg models.SystemConfig
	decodeData(t, w, &cfg)
	assert.Equal(t, int64(3), cfg.Version)

	w = performRequest(t, router, http.MethodGet, "/admin/config/unknown", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "CONFIG_NOT_FOUND", errorCode(t, w))
}

func TestSystemConfigHandler_Put(t *testing.T) {
	var gotValue any
	svc := &mocks.MockSystemConfigService{
		PutFunc: func(_ context.Context, _ primitive.ObjectID, key string, value any) (*models.SystemConfig, error) {
			gotValue = value
			return &models.SystemConfig{Key: key, Version: 4, Value: value}, nil
		},
	}
	router := newConfigRouter(svc)

	w := performRequest(t, router, http.MethodPut, "/admin/config/ai.default_credits", `{"value":200000}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, float64(200000), gotValue)

	w = performRequest(t, router, http.MethodPut, "/admin/config/ai.default_credits", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSystemConfigHandler_History(t *testing.T) {
	var gotLimit int
	svc := &mocks.MockSystemConfigService{
		HistoryFunc: func(_ context.Context, _ string, limit int) (*models.SystemConfigListResponse, error) {
			gotLimit = limit
			return &models.SystemConfigListResponse{Items: []models.SystemConfig{{Version: 2}, {Version: 1}}}, nil
		},
	}

	w := performRequest(t, newConfigRouter(svc), http.MethodGet, "/admin/config/ai.default_credits/history?limit=5", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, gotLimit)
}
