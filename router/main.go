package router

import (
	"io/fs"

	"github.com/flux-image/flux-image/controller"
	"github.com/flux-image/flux-image/middleware"
	"github.com/gin-gonic/gin"
)

// SetRouter expects the sessions middleware to be installed already; the locale
// lookup reads from the session.
func SetRouter(router *gin.Engine, buildFS fs.FS, ctl *controller.ImageController) {
	router.Use(middleware.CORS())
	router.Use(middleware.Locale())
	SetApiRouter(router, ctl)
	SetWebRouter(router, buildFS, ctl)
}
