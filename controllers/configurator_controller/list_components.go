package configurator_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krystian2077/smartpc-builder/config"
	"github.com/krystian2077/smartpc-builder/configurator"
	"github.com/krystian2077/smartpc-builder/models"
)

// ListComponents godoc
// @Summary List a category's products through the session's view
// @Description Retrieve the catalog products for one category, narrowed and ordered by the session's active filter and sort tags. A failed upstream fetch yields an empty list.
// @Tags Configurator
// @Produce json
// @Param id path string true "Session ID"
// @Param type path string true "Component category"
// @Success 200 {object} models.ApiResponse{data=[]models.Product}
// @Failure 400 {object} models.ApiResponse "Unknown category"
// @Failure 404 {object} models.ApiResponse "Session not found"
// @Router /configurator/sessions/{id}/components/{type} [get]
func ListComponents(c *gin.Context) {
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

	products := catalogService.Products(ctx, category)
	products = configurator.Filter(category, session.FilterFor(category), products)
	products = configurator.Sort(session.SortFor(category), products)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Components fetched", products))
}
