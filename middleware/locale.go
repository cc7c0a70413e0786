package middleware

import (
	"net/http"

	"github.com/flux-image/flux-image/common/config"
	"github.com/flux-image/flux-image/common/i18n"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const sessionLocaleKey = "locale"

// Locale resolves the message language for the request: ?lang= (remembered in the
// session), then the session, then Accept-Language, then LOCALE.
func Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if lang := c.Query("lang"); lang != "" {
			tag := i18n.Match(lang)
			session.Set(sessionLocaleKey, tag.String())
			if err := session.Save(); err != nil {
				abortWithMessage(c, http.StatusInternalServerError, "failed to save session: "+err.Error())
				return
			}
			c.Set(i18n.ContextKey, tag)
			c.Next()
			return
		}
		stored, _ := session.Get(sessionLocaleKey).(string)
		c.Set(i18n.ContextKey, i18n.Match(stored, c.GetHeader("Accept-Language"), config.Locale))
		c.Next()
	}
}
