package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether a backing store is reachable
type Pinger interface {
	Ping() error
}

// SystemHandler handles health and system info endpoints
type SystemHandler struct {
	BaseHandler
	store     Pinger
	startTime time.Time
}

// NewSystemHandler creates a new SystemHandler. store may be nil when
// the service runs on the in-memory repository.
func NewSystemHandler(store Pinger) *SystemHandler {
	return &SystemHandler{store: store, startTime: time.Now()}
}

// HealthResponse reports service liveness
type HealthResponse struct {
	Status    string `json:"status"`
	GoVersion string `json:"goVersion"`
	Uptime    string `json:"uptime"`
}

// Health reports 200 when the service and its store are usable
func (h *SystemHandler) Health(c *gin.Context) {
	if h.store != nil {
		if err := h.store.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, HealthResponse{
				Status:    "DOWN",
				GoVersion: runtime.Version(),
				Uptime:    time.Since(h.startTime).Round(time.Second).String(),
			})
			return
		}
	}
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "UP",
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	})
}
