package middleware

import (
	"net/http"

	"github.com/flux-image/flux-image/common/logger"
	"github.com/gin-gonic/gin"
	cors "github.com/rs/cors/wrapper/gin"
)

// CORS lets a separately hosted page call /generate and /health with cookies.
func CORS() gin.HandlerFunc {
	options := cors.Options{
		AllowOriginFunc: func(origin string) bool {
			return true
		},
		AllowCredentials: true,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{logger.RequestIdKey},
	}
	return cors.New(options)
}
