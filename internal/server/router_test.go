package server_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuzumoe/alarm-service/internal/i18n"
	"github.com/fuzumoe/alarm-service/internal/server"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	bundle, err := i18n.New("ko")
	require.NoError(t, err)

	routes := server.Routes{
		Health: server.RouteFunc(func(rg *gin.RouterGroup) {
			rg.GET("/health", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
		}),
		Public: []server.RouteRegistrar{
			server.RouteFunc(func(rg *gin.RouterGroup) {
				rg.POST("/users", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(i18n.ContextKey)) })
				rg.GET("/panic", func(c *gin.Context) { panic("boom") })
			}),
		},
		Protected: []server.RouteRegistrar{
			server.RouteFunc(func(rg *gin.RouterGroup) {
				rg.GET("/users", func(c *gin.Context) { c.String(http.StatusOK, "listed") })
			}),
		},
		Auth: func(c *gin.Context) {
			if c.GetHeader("X-Test-Session") == "" {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.Next()
		},
	}
	return server.NewRouter(gin.TestMode, zerolog.Nop(), bundle, routes)
}

func TestRouter(t *testing.T) {
	r := newTestRouter(t)

	serve := func(req *http.Request) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	t.Run("health", func(t *testing.T) {
		rec := serve(httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("public route with locale", func(t *testing.T) {
		rec := serve(httptest.NewRequest(http.MethodPost, "/api/v1/users?lang=en", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "en", rec.Body.String())
	})

	t.Run("protected route without session", func(t *testing.T) {
		rec := serve(httptest.NewRequest(http.MethodGet, "/api/v1/users", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("protected route with session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
		req.Header.Set("X-Test-Session", "1")
		rec := serve(req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "listed", rec.Body.String())
	})

	t.Run("panics are recovered", func(t *testing.T) {
		rec := serve(httptest.NewRequest(http.MethodGet, "/api/v1/panic", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("swagger", func(t *testing.T) {
		rec := serve(httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "/users/{userId}")
	})
}
