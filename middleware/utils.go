package middleware

import (
	"github.com/flux-image/flux-image/common/helper"
	"github.com/flux-image/flux-image/common/logger"
	"github.com/gin-gonic/gin"
)

// abortWithMessage uses the same {success, error} body as the generate endpoint.
func abortWithMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   helper.MessageWithRequestId(message, c.GetString(logger.RequestIdKey)),
	})
	c.Abort()
	logger.Error(c.Request.Context(), message)
}
