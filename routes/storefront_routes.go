package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/krystian2077/smartpc-builder/controllers/storefront/component_controller"
	"github.com/krystian2077/smartpc-builder/controllers/storefront/inquiry_controller"
	"github.com/krystian2077/smartpc-builder/controllers/storefront/preset_controller"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)

	components := router.Group("/components")
	{
		components.GET("", component_controller.GetComponents)            // List with filter/sort tags
		components.GET("/filters", component_controller.GetFilterOptions) // Filter metadata
	}

	presets := router.Group("/presets")
	{
		presets.GET("", preset_controller.GetPresets)           // List all
		presets.GET("/:id", preset_controller.GetPresetDetails) // Single preset with products
	}

	router.POST("/inquiries", inquiry_controller.CreateInquiry)
}
