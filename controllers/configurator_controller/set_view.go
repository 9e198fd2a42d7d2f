package configurator_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krystian2077/smartpc-builder/config"
	"github.com/krystian2077/smartpc-builder/models"
)

type setViewRequest struct {
	Filter *string `json:"filter"`
	Sort   *string `json:"sort"`
}

// SetView godoc
// @Summary Set the filter and sort tags for a category
// @Description Update the active filter and/or sort tag for one component category. Tags are independent of the selection and only reset by explicit request.
// @Tags Configurator
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param type path string true "Component category"
// @Param view body setViewRequest true "Tags to update (either field may be omitted)"
// @Success 200 {object} models.ApiResponse{data=configurator.Session}
// @Failure 400 {object} models.ApiResponse "Unknown category"
// @Failure 404 {object} models.ApiResponse "Session not found"
// @Router /configurator/sessions/{id}/view/{type} [put]
func SetView(c *gin.Context) {
	category, ok := pathComponentType(c)
	if !ok {
		return
	}

	var req setViewRequest
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

	if req.Filter != nil {
		session.Filters[category] = *req.Filter
	}
	if req.Sort != nil {
		session.Sorting[category] = *req.Sort
	}
	if !saveSession(c, ctx, session) {
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "View updated", session))
}
