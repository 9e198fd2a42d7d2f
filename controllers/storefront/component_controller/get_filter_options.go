package component_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krystian2077/smartpc-builder/configurator"
	"github.com/krystian2077/smartpc-builder/models"
)

type categoryFilters struct {
	Type    models.ComponentType        `json:"type"`
	Label   string                      `json:"label"`
	Filters []configurator.FilterOption `json:"filters"`
}

type filterMetadata struct {
	Categories  []categoryFilters           `json:"categories"`
	SortOptions []configurator.FilterOption `json:"sort_options"`
}

// GetFilterOptions godoc
// @Summary Get filter and sort metadata
// @Description Returns the available filter chips per component category and the shared sort options.
// @Tags Storefront - Components
// @Produce json
// @Success 200 {object} models.ApiResponse{data=filterMetadata}
// @Router /components/filters [get]
func GetFilterOptions(c *gin.Context) {
	metadata := filterMetadata{
		Categories:  make([]categoryFilters, 0, len(models.ComponentOrder)),
		SortOptions: configurator.SortOptions(),
	}
	for _, category := range models.ComponentOrder {
		metadata.Categories = append(metadata.Categories, categoryFilters{
			Type:    category,
			Label:   models.ComponentLabels[category],
			Filters: configurator.FilterOptions(category),
		})
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", metadata))
}
