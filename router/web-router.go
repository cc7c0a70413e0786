package router

import (
	"html/template"
	"io/fs"
	"net/http"

	"github.com/flux-image/flux-image/common"
	"github.com/flux-image/flux-image/common/logger"
	"github.com/flux-image/flux-image/controller"
	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const openAPIPath = "/openapi.json"

func SetWebRouter(router *gin.Engine, buildFS fs.FS, ctl *controller.ImageController) {
	router.SetHTMLTemplate(template.Must(template.New("").ParseFS(buildFS, "web/templates/*.html")))
	router.Use(static.Serve("/static", common.EmbedFolder(buildFS, "web/static")))
	router.GET("/", ctl.Index)

	openAPI, err := fs.ReadFile(buildFS, "web/openapi.json")
	if err != nil {
		logger.FatalLog("failed to read embedded openapi.json: " + err.Error())
	}
	router.GET(openAPIPath, func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", openAPI)
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL(openAPIPath)))
	logger.SysLog("Swagger UI enabled at /swagger/index.html")
}
