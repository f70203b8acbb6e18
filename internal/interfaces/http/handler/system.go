package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goldledger/backend/internal/interfaces/http/dto"
	"github.com/goldledger/backend/internal/interfaces/http/middleware"
)

// APIName is reported by the banner and the system info endpoint
const APIName = "Goldsmith Ledger API"

// IdempotencyStatsProvider exposes duplicate-submit guard counters
type IdempotencyStatsProvider interface {
	Stats() middleware.IdempotencyStats
}

// SystemHandler handles system-related API endpoints
type SystemHandler struct {
	BaseHandler
	startTime   time.Time
	version     string
	idempotency IdempotencyStatsProvider
}

// NewSystemHandler creates a new SystemHandler.
// idempotency may be nil when the guard is not installed.
func NewSystemHandler(version string, idempotency IdempotencyStatsProvider) *SystemHandler {
	if version == "" {
		version = "1.0.0"
	}
	return &SystemHandler{
		startTime:   time.Now(),
		version:     version,
		idempotency: idempotency,
	}
}

// SystemInfoResponse represents the system information response
// @name HandlerSystemInfoResponse
type SystemInfoResponse struct {
	Name        string                       `json:"name" example:"Goldsmith Ledger API"`
	Version     string                       `json:"version" example:"1.0.0"`
	GoVersion   string                       `json:"go_version" example:"go1.25.5"`
	Uptime      string                       `json:"uptime" example:"1h30m45s"`
	Idempotency *middleware.IdempotencyStats `json:"idempotency,omitempty"`
}

// Banner godoc
// @ID           getBanner
// @Summary      API banner
// @Tags         system
// @Produce      json
// @Success      200 {object} BannerResponse
// @Router       / [get]
func (h *SystemHandler) Banner(c *gin.Context) {
	c.JSON(http.StatusOK, BannerResponse{Message: APIName})
}

// GetSystemInfo godoc
// @ID           getSystemSystemInfo
// @Summary      Get system information
// @Description  Returns basic system information including version and uptime
// @Tags         system
// @Produce      json
// @Success      200 {object} APIResponse[SystemInfoResponse]
// @Failure      500 {object} ErrorResponse
// @Router       /system/info [get]
func (h *SystemHandler) GetSystemInfo(c *gin.Context) {
	info := SystemInfoResponse{
		Name:      APIName,
		Version:   h.version,
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	}
	if h.idempotency != nil {
		stats := h.idempotency.Stats()
		info.Idempotency = &stats
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(info))
}

// PingResponse represents the ping response
// @name HandlerPingResponse
type PingResponse struct {
	Message   string `json:"message" example:"pong"`
	Timestamp string `json:"timestamp" example:"2026-01-23T12:00:00Z"`
}

// Ping godoc
// @ID           pingSystem
// @Summary      Ping the API
// @Description  Simple ping endpoint to check if the API is responsive
// @Tags         system
// @Produce      json
// @Success      200 {object} APIResponse[PingResponse]
// @Router       /system/ping [get]
func (h *SystemHandler) Ping(c *gin.Context) {
	response := PingResponse{
		Message:   "pong",
		Timestamp: time.Now().Format(time.RFC3339),
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}
