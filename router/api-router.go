package router

import (
	"github.com/flux-image/flux-image/controller"
	"github.com/flux-image/flux-image/middleware"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func SetApiRouter(router *gin.Engine, ctl *controller.ImageController) {
	apiRouter := router.Group("/")
	apiRouter.Use(gzip.Gzip(gzip.DefaultCompression))
	apiRouter.Use(middleware.PanicRecover())
	{
		apiRouter.POST("/generate", ctl.Generate)
		apiRouter.GET("/health", ctl.Health)
		apiRouter.GET("/api/status", ctl.GetStatus)
	}
}
