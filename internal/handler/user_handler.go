package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fuzumoe/alarm-service/internal/model"
	"github.com/fuzumoe/alarm-service/internal/response"
	"github.com/fuzumoe/alarm-service/internal/service"
)

// UserLister serves paginated user listings.
type UserLister interface {
	ListUsers(ctx context.Context, in model.UserSearchInput) (*model.UserPage, error)
}

type UserHandler struct {
	userService service.UserService
	lister      UserLister
	resp        *response.Writer
}

func NewUserHandler(userService service.UserService, lister UserLister, resp *response.Writer) *UserHandler {
	return &UserHandler{
		userService: userService,
		lister:      lister,
		resp:        resp,
	}
}

func (h *UserHandler) parseUintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		h.resp.BadRequest(c, err)
		return 0, false
	}
	return uint(v), true
}

// @Summary Join
// @Tags    users
// @Accept  json
// @Produce json
// @Param   input body model.CreateUserInput true "Account to register"
// @Success 200 {integer} integer "new user id"
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router  /users [post]
func (h *UserHandler) Join(c *gin.Context) {
	var input model.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.resp.BadRequest(c, err)
		return
	}

	userID, err := h.userService.Join(c.Request.Context(), &input)
	if err != nil {
		h.resp.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, userID)
}

// @Summary Get User
// @Tags    users
// @Produce json
// @Param   userId path uint true "User ID"
// @Success 200 {object} model.UserDTO
// @Failure 400 {object} response.ErrorBody
// @Failure 401 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router  /users/{userId} [get]
func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := h.parseUintParam(c, "userId")
	if !ok {
		return
	}

	user, err := h.userService.Get(c.Request.Context(), id)
	if err != nil {
		h.resp.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// @Summary List Users
// @Description Newest first. Sizes below the default are raised to it.
// @Tags    users
// @Produce json
// @Param   searchEmail query string false "Email substring"
// @Param   page        query int    false "Page number, 1-based"
// @Param   size        query int    false "Rows per page"
// @Success 200 {object} model.UserPage
// @Failure 400 {object} response.ErrorBody
// @Failure 401 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router  /users [get]
func (h *UserHandler) List(c *gin.Context) {
	var in model.UserSearchInput
	if err := c.ShouldBindQuery(&in); err != nil {
		h.resp.BadRequest(c, err)
		return
	}

	page, err := h.lister.ListUsers(c.Request.Context(), in)
	if err != nil {
		h.resp.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// RegisterPublicRoutes registers the endpoints open to anonymous clients.
func (h *UserHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/users", h.Join)
}

// RegisterProtectedRoutes registers the endpoints that need a session.
func (h *UserHandler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/users", h.List)
	rg.GET("/users/:userId", h.GetByID)
}
