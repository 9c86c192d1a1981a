package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"redeemedstrength/internal/models/response_models"
	"redeemedstrength/internal/services"
	"redeemedstrength/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardService
}

func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetReport godoc
// @Summary Get the admin analytics report
// @Description KPIs, revenue and signup series, tier mix and recent activity feeds for the requested window
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Param start query string false "RFC3339 window start"
// @Param end query string false "RFC3339 window end"
// @Param interval query string false "Bucket interval: day, week or month"
// @Success 200 {object} utils.APIResponse
// @Router /admin/dashboard [get]
func (d *DashboardController) GetReport(c *gin.Context) {
	var rng response_models.TimeRange

	if raw := c.Query("start"); raw != "" {
		start, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid start timestamp")
			return
		}
		rng.Start = start
	}
	if raw := c.Query("end"); raw != "" {
		end, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid end timestamp")
			return
		}
		rng.End = end
	}
	rng.Interval = c.DefaultQuery("interval", "day")

	report, err := d.dashboardService.BuildDashboard(c.Request.Context(), rng)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Dashboard retrieved successfully")
}
