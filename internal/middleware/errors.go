package middleware

import (
	apperrors "braik-api/internal/errors"
	"braik-api/internal/logger"
	"braik-api/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// abortWithError writes coded errors as-is and anything else as a 500.
func abortWithError(c *gin.Context, err error) {
	if coded, ok := apperrors.AsCoded(err); ok {
		response.Coded(c, coded.Status, coded.Code, coded.Message, coded.Details)
		c.Abort()
		return
	}
	logger.FromContext(c.Request.Context()).Error("middleware failed", zap.Error(err))
	response.InternalError(c)
	c.Abort()
}
