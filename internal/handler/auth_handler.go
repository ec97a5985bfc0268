package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fuzumoe/alarm-service/internal/model"
	"github.com/fuzumoe/alarm-service/internal/response"
	"github.com/fuzumoe/alarm-service/internal/service"
)

// SessionCookie describes the cookie carrying the session token.
type SessionCookie struct {
	Name   string
	MaxAge time.Duration
	Secure bool
}

// AuthHandler provides endpoints for login and logout.
type AuthHandler struct {
	sessions service.SessionService
	cookie   SessionCookie
	resp     *response.Writer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(sessions service.SessionService, cookie SessionCookie, resp *response.Writer) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
		cookie:   cookie,
		resp:     resp,
	}
}

func (h *AuthHandler) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, value, maxAge, "/", "", h.cookie.Secure, true)
}

// Login godoc
// @Summary      Log in
// @Description  Verifies the credentials and starts a session carried by an HttpOnly cookie
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        loginRequest  body      model.LoginInput  true  "Login request payload"
// @Success      200           {object}  model.UserDTO
// @Failure      400           {object}  response.ErrorBody
// @Failure      401           {object}  response.ErrorBody
// @Failure      404           {object}  response.ErrorBody
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.resp.BadRequest(c, err)
		return
	}

	res, err := h.sessions.Login(c.Request.Context(), &req)
	if err != nil {
		h.resp.Error(c, err)
		return
	}

	h.setCookie(c, res.Token, int(h.cookie.MaxAge.Seconds()))
	c.JSON(http.StatusOK, res.User)
}

// Logout godoc
// @Summary      Log out
// @Description  Ends the current session, if any, and clears the session cookie
// @Tags         auth
// @Success      200
// @Failure      500 {object} response.ErrorBody
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie(h.cookie.Name)
	if err := h.sessions.Logout(c.Request.Context(), token); err != nil {
		h.resp.Error(c, err)
		return
	}

	h.setCookie(c, "", -1)
	c.Status(http.StatusOK)
}

// RegisterPublicRoutes registers the public auth endpoints.
func (h *AuthHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/login", h.Login)
	rg.POST("/logout", h.Logout)
}
