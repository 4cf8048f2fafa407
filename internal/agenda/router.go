package agenda

import (
	"github.com/gin-gonic/gin"
)

// SetupAgendaRoutes configures all agenda-related routes
func SetupAgendaRoutes(rg *gin.RouterGroup, controller *Controller) {
	routes := rg.Group("/agenda")
	{
		routes.GET("", controller.GetAgenda)                      // GET  /api/v1/agenda?start=&end=
		routes.POST("/sections/toggle", controller.ToggleSection) // POST /api/v1/agenda/sections/toggle
	}
}
