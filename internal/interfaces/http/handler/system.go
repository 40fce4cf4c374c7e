package handler

import (
	"runtime"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/interbanking/backend/internal/domain/shared"
)

// SystemHandler serves build and liveness information
type SystemHandler struct {
	BaseHandler
	name        string
	version     string
	environment string
	startTime   time.Time
	now         func() time.Time
}

// SystemOption configures a SystemHandler
type SystemOption func(*SystemHandler)

// WithEnvironment reports env, e.g. "production", in system info.
func WithEnvironment(env string) SystemOption {
	return func(h *SystemHandler) {
		h.environment = env
	}
}

// NewSystemHandler creates a SystemHandler. Uptime counts from this call.
func NewSystemHandler(name, version string, opts ...SystemOption) *SystemHandler {
	h := &SystemHandler{
		name:      name,
		version:   version,
		startTime: time.Now(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// SystemInfoResponse represents the system information response
// @name HandlerSystemInfoResponse
type SystemInfoResponse struct {
	Name        string `json:"name" example:"Interbanking API"`
	Version     string `json:"version" example:"1.0.0"`
	Environment string `json:"environment,omitempty" example:"production"`
	GoVersion   string `json:"go_version" example:"go1.25.5"`
	StartedAt   string `json:"started_at" example:"2024-01-15T10:30:00.000Z"`
	Uptime      string `json:"uptime" example:"1h30m45s"`
}

// GetSystemInfo godoc
// @ID           getSystemSystemInfo
// @Summary      Get system information
// @Description  Returns the service name, version, environment and uptime
// @Tags         system
// @Produce      json
// @Success      200 {object} APIResponse[SystemInfoResponse]
// @Router       /system/info [get]
func (h *SystemHandler) GetSystemInfo(c *gin.Context) {
	h.Success(c, SystemInfoResponse{
		Name:        h.name,
		Version:     h.version,
		Environment: h.environment,
		GoVersion:   runtime.Version(),
		StartedAt:   shared.FormatTimestamp(h.startTime),
		Uptime:      h.now().Sub(h.startTime).Round(time.Second).String(),
	})
}

// PingResponse represents the ping response
// @name HandlerPingResponse
type PingResponse struct {
	Message   string `json:"message" example:"pong"`
	Timestamp string `json:"timestamp" example:"2024-01-15T10:30:00.000Z"`
}

// Ping godoc
// @ID           pingSystem
// @Summary      Ping the API
// @Description  Answers pong with the server time in UTC
// @Tags         system
// @Produce      json
// @Success      200 {object} APIResponse[PingResponse]
// @Router       /system/ping [get]
func (h *SystemHandler) Ping(c *gin.Context) {
	h.Success(c, PingResponse{
		Message:   "pong",
		Timestamp: shared.FormatTimestamp(h.now()),
	})
}
