package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/jobboard-admin/internal/api/dto"
	"github.com/spec-kit/jobboard-admin/internal/service"
)

// DashboardHandler serves the admin overview.
type DashboardHandler struct {
	dashboard *service.DashboardService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboardService}
}

// Get handles GET /dashboard.
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	dash, err := h.dashboard.Overview(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewDashboardResponse(dash))
}
