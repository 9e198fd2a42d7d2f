package preset_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krystian2077/smartpc-builder/config"
	"github.com/krystian2077/smartpc-builder/models"
)

// GetPresetDetails godoc
// @Summary Get one preset with its components
// @Description Retrieve a preset including the nested product list.
// @Tags Storefront - Presets
// @Produce json
// @Param id path string true "Preset ID"
// @Success 200 {object} models.ApiResponse{data=models.PresetDetails} "Preset fetched successfully"
// @Failure 502 {object} models.ApiResponse "Upstream catalog unavailable"
// @Router /presets/{id} [get]
func GetPresetDetails(c *gin.Context) {
	presetID := c.Param("id")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	details, err := catalogService.PresetDetails(ctx, presetID)
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch preset"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Preset fetched", details))
}
