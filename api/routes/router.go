// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"courtdesk/internal/agenda"
	"courtdesk/internal/bookings"
	"courtdesk/internal/reva"
	"courtdesk/internal/shared/config"
	"courtdesk/internal/shared/middleware"
	"courtdesk/pkg/cache"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config       *config.Config
	cacheService cache.Service
	revaClient   reva.Client
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, cacheService cache.Service, revaClient reva.Client) *Router {
	return &Router{
		config:       cfg,
		cacheService: cacheService,
		revaClient:   revaClient,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	api.Use(
		middleware.RequestID(),
		middleware.SessionID(),
		middleware.OperatorAuthWithConfig(r.config),
	)
	{
		r.setupAgendaRoutes(api)
		r.setupBookingRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.cacheService.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "courtdesk-gateway",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "courtdesk-gateway",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupAgendaRoutes configures agenda listing routes
func (r *Router) setupAgendaRoutes(rg *gin.RouterGroup) {
	agendaService := agenda.NewService(r.revaClient, r.cacheService, r.config)
	agendaController := agenda.NewController(agendaService)

	agenda.SetupAgendaRoutes(rg, agendaController)
}

// setupBookingRoutes configures booking-detail routes
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	bookingService := bookings.NewService(r.cacheService, r.config)
	bookingController := bookings.NewController(bookingService)

	bookings.SetupBookingRoutes(rg, bookingController)
}
