package configurator_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krystian2077/smartpc-builder/config"
	"github.com/krystian2077/smartpc-builder/models"
)

// RemoveComponent godoc
// @Summary Clear the selection for a category
// @Description Remove the chosen product for one component category. A complete configuration drops back to partial.
// @Tags Configurator
// @Produce json
// @Param id path string true "Session ID"
// @Param type path string true "Component category"
// @Success 200 {object} models.ApiResponse{data=configurator.Session}
// @Failure 400 {object} models.ApiResponse "Unknown category"
// @Failure 404 {object} models.ApiResponse "Session not found"
// @Router /configurator/sessions/{id}/components/{type} [delete]
func RemoveComponent(c *gin.Context) {
	category, ok := pathComponentType(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	session, ok := loadSession(c, ctx)
	if !ok {
		return
	}

	session.Selection.Remove(category)
	if !saveSession(c, ctx, session) {
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Component removed", session))
}
