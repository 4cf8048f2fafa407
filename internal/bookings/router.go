package bookings

import (
	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes configures all booking-detail routes
func SetupBookingRoutes(rg *gin.RouterGroup, controller *Controller) {
	routes := rg.Group("/bookings")
	{
		routes.GET("/:id", controller.GetDetail)                     // GET  /api/v1/bookings/:id
		routes.POST("/:id/products", controller.AdjustProduct)       // POST /api/v1/bookings/:id/products
		routes.POST("/:id/payment/toggle", controller.TogglePayment) // POST /api/v1/bookings/:id/payment/toggle
	}
}
