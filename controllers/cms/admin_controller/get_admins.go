package admin_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/git-senpai/fashion-sub001/config"
	"github.com/git-senpai/fashion-sub001/models"
	"github.com/git-senpai/fashion-sub001/services"
)

// GetAdmins godoc
// @Summary List all admins
// @Description Get list of all admins with their current status
// @Tags Admin - Management
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.AdminResponse}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 403 {object} models.ApiResponse "Forbidden"
// @Router /admin/admins [get]
func GetAdmins(c *gin.Context) {
	log.Printf("[admin.list] request")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var admins []models.Admin
	if err := config.Gorm.WithContext(ctx).
		Order("joined_at DESC").
		Find(&admins).Error; err != nil {
		log.Printf("[admin.list] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	// Status is derived on read, not stored: stale logins surface as inactive
	authService := services.GetAdminAuthService()
	responses := make([]models.AdminResponse, len(admins))
	for i, admin := range admins {
		admin.Status = authService.GetAdminStatus(admin.Status, admin.LastLoginAt)
		responses[i] = admin.ToResponse()
	}

	log.Printf("[admin.list] respond 200 count=%d", len(responses))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Admins retrieved", responses))
}
