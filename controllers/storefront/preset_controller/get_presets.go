package preset_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/krystian2077/smartpc-builder/config"
	"github.com/krystian2077/smartpc-builder/models"
)

type presetSummary struct {
	models.Preset
	Series string `json:"series"`
}

// GetPresets godoc
// @Summary List curated presets
// @Description Retrieve the pre-assembled PC bundles, each annotated with its marketing series.
// @Tags Storefront - Presets
// @Produce json
// @Param limit query int false "Maximum number of presets"
// @Success 200 {object} models.ApiResponse{data=[]presetSummary} "Presets fetched successfully"
// @Failure 502 {object} models.ApiResponse "Upstream catalog unavailable"
// @Router /presets [get]
func GetPresets(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	ctx, cancel := config.WithTimeout()
	defer cancel()

	presets, err := catalogService.Presets(ctx, limit)
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch presets"))
		return
	}

	summaries := make([]presetSummary, 0, len(presets))
	for _, preset := range presets {
		summaries = append(summaries, presetSummary{
			Preset: preset,
			Series: models.SeriesName(preset.TotalPrice),
		})
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Presets fetched", summaries))
}
