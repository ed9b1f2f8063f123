package handler

import (
	"github.com/gin-gonic/gin"

	"shgportal/internal/service"
)

// DashboardHandler serves the role dashboards.
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats handles GET /api/v1/dashboard
// @Summary Dashboard cards
// @Description Counts and savings within the caller's jurisdiction with a per-area breakdown.
// @Tags dashboard
// @Produce json
// @Success 200 {object} Response{data=domain.DashboardStats}
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	actor, ok := extractActor(c)
	if !ok {
		return
	}

	stats, err := h.dashboardService.Stats(c.Request.Context(), actor)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, stats)
}
