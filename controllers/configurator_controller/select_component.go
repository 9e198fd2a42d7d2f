package configurator_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krystian2077/smartpc-builder/config"
	"github.com/krystian2077/smartpc-builder/models"
)

type selectComponentRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// SelectComponent godoc
// @Summary Select a product for a category
// @Description Record the chosen product id for one component category, replacing any prior choice. The id is not validated against the catalog here; a stale id resolves to an unpriced selection downstream.
// @Tags Configurator
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param type path string true "Component category"
// @Param selection body selectComponentRequest true "Product to select"
// @Success 200 {object} models.ApiResponse{data=configurator.Session}
// @Failure 400 {object} models.ApiResponse "Unknown category or invalid body"
// @Failure 404 {object} models.ApiResponse "Session not found"
// @Router /configurator/sessions/{id}/components/{type} [put]
func SelectComponent(c *gin.Context) {
	category, ok := pathComponentType(c)
	if !ok {
		return
	}

	var req selectComponentRequest
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

	session.Selection.Select(category, req.ProductID)
	if !saveSession(c, ctx, session) {
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Component selected", session))
}
