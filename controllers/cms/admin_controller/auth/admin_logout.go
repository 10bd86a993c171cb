package admin_auth_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/git-senpai/fashion-sub001/models"
)

// AdminLogout godoc
// @Summary Logout admin
// @Description Clears the admin token cookie
// @Tags Admin - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /admin/auth/logout [post]
func AdminLogout(c *gin.Context) {
	if adminID, exists := c.Get("adminID"); exists {
		log.Printf("[admin.logout] admin logging out: %s", adminID)
	}

	// Clear token cookie
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"admin_token",
		"",
		-1,
		"/",
		"",
		false,
		true,
	)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logout successful", nil))
}
