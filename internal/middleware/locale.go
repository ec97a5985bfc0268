package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fuzumoe/alarm-service/internal/i18n"
)

const (
	// LangParam switches the locale for this and later requests.
	LangParam = "lang"
	// LangCookie remembers the chosen locale.
	LangCookie = "lang"
)

// Locale resolves the request locale from the lang query parameter, then
// the lang cookie, then the bundle default. A supported lang parameter is
// persisted in the cookie.
func Locale(bundle *i18n.Bundle) gin.HandlerFunc {
	return func(c *gin.Context) {
		requested := c.Query(LangParam)
		stored, _ := c.Cookie(LangCookie)

		locale := bundle.Resolve(requested, stored)
		if requested != "" && bundle.Supports(requested) && locale != stored {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(LangCookie, locale, 0, "/", "", false, true)
		}

		c.Set(i18n.ContextKey, locale)
		c.Next()
	}
}
