package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobtracker/internal/api/middleware"
	"jobtracker/internal/tracker"
)

// DashboardHandler serves the derived metrics endpoint.
type DashboardHandler struct {
	service *tracker.MetricsService
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(service *tracker.MetricsService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GetDashboard recomputes and returns the current user's dashboard figures.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	metrics, err := h.service.Dashboard(c.Request.Context(), userID)
	if err != nil {
		middleware.LoggerFromContext(c).Error("dashboard aggregation failed", slog.Any("error", err))
		Internal(c, "internal error")
		return
	}

	c.JSON(http.StatusOK, metrics)
}
