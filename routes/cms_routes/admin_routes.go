package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/git-senpai/fashion-sub001/controllers/cms/admin_controller"
	admin_auth "github.com/git-senpai/fashion-sub001/controllers/cms/admin_controller/auth"
	"github.com/git-senpai/fashion-sub001/middleware"
)

// SetupAdminRoutes sets up admin auth and management routes with appropriate middleware
func SetupAdminRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/admin/auth")

	// Public (no auth required)
	auth.POST("/login", admin_auth.AdminLogin)

	// Protected (auth required)
	protected := auth.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	{
		protected.POST("/logout", admin_auth.AdminLogout)
		protected.GET("/me", admin_auth.GetAdminMe)
	}

	// Super admin only
	superAdmin := rg.Group("/admin")
	superAdmin.Use(
		middleware.AdminAuthMiddleware(),
		middleware.RequireSuperAdminMiddleware(),
	)
	{
		superAdmin.GET("/admins", admin_controller.GetAdmins)
	}
}
