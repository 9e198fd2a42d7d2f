package configurator_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krystian2077/smartpc-builder/config"
	"github.com/krystian2077/smartpc-builder/models"
)

type setAssemblyRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// SetAssembly godoc
// @Summary Toggle the assembly service
// @Description Enable or disable the flat-fee assembly add-on for the session.
// @Tags Configurator
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param assembly body setAssemblyRequest true "Assembly flag"
// @Success 200 {object} models.ApiResponse{data=configurator.Session}
// @Failure 404 {object} models.ApiResponse "Session not found"
// @Router /configurator/sessions/{id}/assembly [put]
func SetAssembly(c *gin.Context) {
	var req setAssemblyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	session, ok := loadSession(c, ctx)
	if !ok {
		return
	}

	session.AssemblyService = *req.Active
	if !saveSession(c, ctx, session) {
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Assembly service updated", session))
}
