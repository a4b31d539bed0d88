// internal/handlers/dashboard.go
package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/atelier-gestor/atelier/internal/models"
	"github.com/atelier-gestor/atelier/internal/utils"
)

type DashboardService interface {
	GetDashboard(ctx context.Context) (*models.Dashboard, error)
}

type DashboardHandler struct {
	dashboardService DashboardService
}

func NewDashboardHandler(dashboardService DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GET /dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	dashboard, err := h.dashboardService.GetDashboard(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, dashboard)
}
