package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/academia-backend/internal/services"
)

// DashboardHandler expõe os números do painel administrativo
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler cria um novo DashboardHandler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetSummary devolve os agregados do painel
// @Summary Painel administrativo
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} entities.DashboardSummary
// @Failure 403 {object} dto.ErrorResponse
// @Router /dashboard [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary, err := h.dashboardService.Summary(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
