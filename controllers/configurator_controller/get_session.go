package configurator_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krystian2077/smartpc-builder/config"
	"github.com/krystian2077/smartpc-builder/models"
)

// GetSession godoc
// @Summary Get a configurator session
// @Tags Configurator
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.ApiResponse{data=configurator.Session}
// @Failure 404 {object} models.ApiResponse "Session not found"
// @Router /configurator/sessions/{id} [get]
func GetSession(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	session, ok := loadSession(c, ctx)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Session fetched", session))
}
