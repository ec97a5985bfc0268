package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fuzumoe/alarm-service/internal/service"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Service        string `json:"service"`
	Status         string `json:"status"`
	Database       string `json:"database"`
	Sessions       string `json:"sessions"`
	ActiveSessions int64  `json:"activeSessions"`
	Checked        string `json:"checked"`
}

// HealthHandler reports whether the database and session store answer.
type HealthHandler struct {
	healthService service.HealthService
}

func NewHealthHandler(hs service.HealthService) *HealthHandler {
	return &HealthHandler{healthService: hs}
}

// @Summary Health
// @Description 503 when the database or the session store does not answer.
// @Tags    health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router  /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	stat := h.healthService.Check(c.Request.Context())

	resp := HealthResponse{
		Service:        stat.Service,
		Status:         "ok",
		Database:       stat.Database,
		Sessions:       stat.Sessions,
		ActiveSessions: stat.ActiveSessions,
		Checked:        stat.Checked.Format(time.RFC3339),
	}
	code := http.StatusOK
	if !stat.Healthy {
		code = http.StatusServiceUnavailable
		resp.Status = "degraded"
	}
	c.JSON(code, resp)
}

// RegisterRoutes mounts the health endpoint on the given router group.
func (h *HealthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
}
