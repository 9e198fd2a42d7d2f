package component_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krystian2077/smartpc-builder/config"
	"github.com/krystian2077/smartpc-builder/configurator"
	"github.com/krystian2077/smartpc-builder/models"
)

// GetComponents godoc
// @Summary List components of one category
// @Description Retrieve the catalog products for a component category, optionally narrowed by a filter tag and ordered by a sort tag. A failed upstream fetch yields an empty list, not an error.
// @Tags Storefront - Components
// @Produce json
// @Param type query string true "Component category (cpu, motherboard, gpu, ram, storage, psu, case, cooler)"
// @Param filter query string false "Filter tag" default(all)
// @Param sort query string false "Sort tag (default, price-asc, price-desc)" default(default)
// @Success 200 {object} models.ApiResponse{data=[]models.Product} "Components fetched successfully"
// @Failure 400 {object} models.ApiResponse "Unknown component category"
// @Router /components [get]
func GetComponents(c *gin.Context) {
	category, ok := models.ParseComponentType(c.Query("type"))
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown component category"))
		return
	}

	filterTag := c.DefaultQuery("filter", configurator.FilterAll)
	sortTag := c.DefaultQuery("sort", configurator.SortDefault)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	products := catalogService.Products(ctx, category)
	products = configurator.Filter(category, filterTag, products)
	products = configurator.Sort(sortTag, products)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Components fetched", products))
}
