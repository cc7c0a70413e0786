package middleware

import (
	"context"

	"github.com/flux-image/flux-image/common/helper"
	"github.com/flux-image/flux-image/common/logger"
	"github.com/gin-gonic/gin"
)

// RequestId keeps a caller supplied X-Request-Id and generates one otherwise.
func RequestId() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(logger.RequestIdKey)
		if id == "" {
			id = helper.GenRequestID()
		}
		c.Set(logger.RequestIdKey, id)
		ctx := context.WithValue(c.Request.Context(), logger.RequestIdKey, id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(logger.RequestIdKey, id)
		c.Next()
	}
}
