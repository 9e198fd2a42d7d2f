package configurator_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krystian2077/smartpc-builder/config"
	"github.com/krystian2077/smartpc-builder/configurator"
	"github.com/krystian2077/smartpc-builder/models"
)

type componentSummary struct {
	Type      models.ComponentType `json:"type"`
	Label     string               `json:"label"`
	ProductID string               `json:"product_id,omitempty"`
	// Product is nil when nothing is selected or the id no longer resolves
	// against the current catalog (selected but unresolved).
	Product *models.Product `json:"product,omitempty"`
}

type summaryResponse struct {
	Components      []componentSummary     `json:"components"`
	TotalPrice      float64                `json:"total_price"`
	AssemblyService bool                   `json:"assembly_service"`
	AssemblyPrice   float64                `json:"assembly_price"`
	Missing         []models.ComponentType `json:"missing"`
	Complete        bool                   `json:"complete"`
}

// GetSummary godoc
// @Summary Get the configuration summary
// @Description Resolve every selection against the full catalog (all eight categories fetched concurrently) and return the total price, the missing categories in canonical order, and the completeness flag.
// @Tags Configurator
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.ApiResponse{data=summaryResponse}
// @Failure 404 {object} models.ApiResponse "Session not found"
// @Router /configurator/sessions/{id}/summary [get]
func GetSummary(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	session, ok := loadSession(c, ctx)
	if !ok {
		return
	}

	catalog := catalogService.FullCatalog(ctx)
	summary := buildSummary(session, catalog)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Summary fetched", summary))
}

func buildSummary(session *configurator.Session, catalog configurator.Catalog) summaryResponse {
	components := make([]componentSummary, 0, len(models.ComponentOrder))
	for _, category := range models.ComponentOrder {
		entry := componentSummary{
			Type:  category,
			Label: models.ComponentLabels[category],
		}
		if productID := session.Selection.Get(category); productID != "" {
			entry.ProductID = productID
			if product, found := catalog.Resolve(productID); found {
				entry.Product = &product
			}
		}
		components = append(components, entry)
	}

	return summaryResponse{
		Components:      components,
		TotalPrice:      configurator.Total(session.Selection, catalog, session.AssemblyService),
		AssemblyService: session.AssemblyService,
		AssemblyPrice:   configurator.AssemblyPrice,
		Missing:         session.Selection.Missing(),
		Complete:        session.Selection.Complete(),
	}
}
