package controller

import (
	"net/http"

	"github.com/flux-image/flux-image/common"
	"github.com/flux-image/flux-image/common/config"
	"github.com/flux-image/flux-image/common/i18n"
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

func (ctl *ImageController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":                    "ok",
		"server_api_key_configured": ctl.DefaultGenerator != nil,
		"supports_frontend_api_key": true,
	})
}

func (ctl *ImageController) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "",
		"data": gin.H{
			"version":                   common.Version,
			"start_time":                common.StartTime,
			"system_name":               config.SystemName,
			"model":                     ctl.Model,
			"base_url":                  ctl.BaseURL,
			"locale":                    localeOf(c).String(),
			"server_api_key_configured": ctl.DefaultGenerator != nil,
		},
	})
}

func (ctl *ImageController) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"SystemName":          config.SystemName,
		"Model":               ctl.Model,
		"Locale":              localeOf(c).String(),
		"ServerKeyConfigured": ctl.DefaultGenerator != nil,
	})
}

func localeOf(c *gin.Context) language.Tag {
	if v, ok := c.Get(i18n.ContextKey); ok {
		if tag, ok := v.(language.Tag); ok {
			return tag
		}
	}
	return i18n.Match(config.Locale)
}
