package main

import (
	"embed"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/flux-image/flux-image/common"
	"github.com/flux-image/flux-image/common/config"
	"github.com/flux-image/flux-image/common/i18n"
	"github.com/flux-image/flux-image/common/logger"
	"github.com/flux-image/flux-image/controller"
	"github.com/flux-image/flux-image/inject"
	"github.com/flux-image/flux-image/middleware"
	"github.com/flux-image/flux-image/router"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/samber/do"
)

//go:embed web
var buildFS embed.FS

func newServer(buildFS fs.FS, ctl *controller.ImageController) *gin.Engine {
	server := gin.New()
	server.Use(gin.Recovery())
	server.Use(middleware.RequestId())
	middleware.SetUpLogger(server)
	store := cookie.NewStore([]byte(config.SessionSecret))
	server.Use(sessions.Sessions("session", store))

	router.SetRouter(server, buildFS, ctl)
	return server
}

func main() {
	common.Init()
	logger.SysLog(fmt.Sprintf("%s %s started", config.SystemName, common.Version))
	if config.DebugEnabled {
		gin.SetMode(gin.DebugMode)
		logger.SysLog("running in debug mode")
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	injector := inject.Setup()
	ctl, err := do.Invoke[*controller.ImageController](injector)
	if err != nil {
		logger.FatalLog("failed to initialize image generator: " + err.Error())
	}

	server := newServer(buildFS, ctl)

	port := strconv.Itoa(config.DefaultPort)
	printer := i18n.NewPrinter(i18n.Match(config.Locale))
	fmt.Println(printer.Sprintf(i18n.MsgServerBanner))
	fmt.Println(printer.Sprintf(i18n.MsgServerListening, "http://localhost:"+port))
	if ctl.DefaultGenerator != nil {
		fmt.Println(printer.Sprintf(i18n.MsgServerKeyFound))
	} else {
		fmt.Println(printer.Sprintf(i18n.MsgServerKeyMissing))
	}

	err = server.Run("0.0.0.0:" + port)
	if err != nil {
		logger.FatalLog("failed to start HTTP server: " + err.Error())
	}
}
