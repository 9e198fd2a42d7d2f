package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/krystian2077/smartpc-builder/controllers/configurator_controller"
)

func SetupConfiguratorRoutes(router *gin.RouterGroup) {
	sessions := router.Group("/configurator/sessions")
	{
		sessions.POST("", configurator_controller.CreateSession)
		sessions.GET("/:id", configurator_controller.GetSession)
		sessions.GET("/:id/summary", configurator_controller.GetSummary)
		sessions.POST("/:id/submit", configurator_controller.SubmitInquiry)
		sessions.PUT("/:id/assembly", configurator_controller.SetAssembly)
		sessions.PUT("/:id/view/:type", configurator_controller.SetView)

		sessions.GET("/:id/components/:type", configurator_controller.ListComponents)
		sessions.PUT("/:id/components/:type", configurator_controller.SelectComponent)
		sessions.DELETE("/:id/components/:type", configurator_controller.RemoveComponent)
	}
}
