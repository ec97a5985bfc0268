package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/fuzumoe/alarm-service/internal/response"
	"github.com/fuzumoe/alarm-service/internal/service"
)

// Context keys set by SessionAuth.
const (
	UserIDKey = "user_id"
	UserKey   = "user"
)

// SessionAuth returns middleware that requires a live session. The session
// token is read from the cookie named cookieName.
func SessionAuth(sessions service.SessionService, cookieName string, resp *response.Writer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			resp.Error(c, service.ErrUnauthorized)
			return
		}

		user, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			resp.Error(c, err)
			return
		}

		// store authenticated user in context
		c.Set(UserIDKey, user.UserID)
		c.Set(UserKey, user)
		c.Next()
	}
}
