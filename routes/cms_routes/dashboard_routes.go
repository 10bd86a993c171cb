package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/git-senpai/fashion-sub001/controllers/cms/dashboard_controller"
)

func SetupDashboardRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", dashboard_controller.GetDashboardStatistics)
}
