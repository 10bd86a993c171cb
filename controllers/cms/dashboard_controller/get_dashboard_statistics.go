package dashboard_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/git-senpai/fashion-sub001/config"
	"github.com/git-senpai/fashion-sub001/models"
	"github.com/git-senpai/fashion-sub001/services"
	dashboard_stats "github.com/git-senpai/fashion-sub001/stats"
)

// GetDashboardStatistics godoc
// @Summary Get admin dashboard statistics
// @Description Returns KPIs, status and category breakdowns, 6-month revenue and signup trends, and top selling products
// @Tags Admin - Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.DashboardStatistics}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Router /admin/dashboard [get]
func GetDashboardStatistics(c *gin.Context) {
	log.Printf("[admin.dashboard] start")

	// Five concurrent table scans share this window, so it is wider than the
	// default single-query timeout.
	ctx, cancel := config.WithCustomTimeout(15 * time.Second)
	defer cancel()

	// Fetch the five raw collections concurrently. A failing source arrives
	// as an empty collection, so the dashboard degrades instead of erroring.
	snap := services.GetSnapshotService().Fetch(ctx)

	statistics := dashboard_stats.Compute(snap, time.Now())

	log.Printf("[admin.dashboard] respond 200 orders=%d users=%d products=%d revenue=%.2f",
		statistics.TotalOrders, statistics.TotalUsers, statistics.TotalProducts, statistics.TotalSales)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Dashboard statistics retrieved", statistics))
}
