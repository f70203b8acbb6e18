package handler

import (
	"github.com/gin-gonic/gin"
	reportapp "github.com/goldledger/backend/internal/application/report"
)

// DashboardHandler serves the workshop summary
type DashboardHandler struct {
	BaseHandler
	dashboardService *reportapp.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *reportapp.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Get godoc
// @ID           getDashboard
// @Summary      Get dashboard statistics
// @Description  Net gold and money over the whole ledger, active job count (in progress or completed), customer and transaction totals
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} APIResponse[report.DashboardStats]
// @Failure      500 {object} ErrorResponse
// @Router       /dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	stats, err := h.dashboardService.GetDashboard(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, stats)
}
