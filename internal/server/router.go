// Package server assembles the HTTP router of the API.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"globetrotter/internal/catalog"
	"globetrotter/internal/handlers"
	"globetrotter/internal/metrics"
	"globetrotter/internal/middleware"
	"globetrotter/internal/services"
)

// Deps holds everything the router needs. Broadcaster may be nil.
type Deps struct {
	JWTSecret       string
	CatalogAdminKey string

	Trips      services.TripServicer
	Stops      services.StopServicer
	Activities services.ActivityServicer
	Budgets    services.BudgetServicer
	Public     services.PublicTripServicer
	Audit      services.AuditServicer

	Catalog     catalog.Reader
	Invalidator catalog.Invalidator
	Broadcaster handlers.Broadcaster
}

// NewRouter wires middleware and the /api/v1 routes.
func NewRouter(d Deps) *gin.Engine {
	tripHandler := handlers.NewTripHandler(d.Trips, d.Audit)
	stopHandler := handlers.NewStopHandler(d.Stops, d.Audit)
	activityHandler := handlers.NewActivityHandler(d.Activities, d.Audit)
	budgetHandler := handlers.NewBudgetHandler(d.Budgets)
	publicHandler := handlers.NewPublicHandler(d.Public)
	catalogHandler := handlers.NewCatalogHandler(d.Catalog, d.Invalidator, d.Broadcaster)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.Metrics())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public routes
	v1.GET("/public/trips/:token", publicHandler.GetPublicTrip)
	v1.GET("/cities", catalogHandler.SearchCities)
	v1.GET("/cities/:id", catalogHandler.GetCity)
	v1.GET("/cities/:id/activities", catalogHandler.CityActivities)

	// Catalog service callback
	admin := v1.Group("/admin")
	admin.Use(middleware.ServiceKeyMiddleware(d.CatalogAdminKey))
	admin.POST("/catalog/invalidate", catalogHandler.InvalidateCatalog)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(d.JWTSecret))

	trips := protected.Group("/trips")
	trips.POST("", tripHandler.CreateTrip)
	trips.GET("", tripHandler.GetUserTrips)
	trips.GET("/:id", tripHandler.GetTrip)
	trips.PUT("/:id", tripHandler.UpdateTrip)
	trips.DELETE("/:id", tripHandler.DeleteTrip)
	trips.POST("/:id/publish", tripHandler.PublishTrip)
	trips.POST("/:id/unpublish", tripHandler.UnpublishTrip)
	trips.GET("/:id/stops", stopHandler.ListStops)
	trips.POST("/:id/stops", stopHandler.AddStop)
	trips.GET("/:id/activities", activityHandler.ListTripActivities)
	trips.GET("/:id/budget", budgetHandler.GetTripBudget)

	protected.DELETE("/stops/:id", stopHandler.RemoveStop)
	protected.POST("/stops/:id/activities", activityHandler.AddActivity)
	protected.DELETE("/activities/:id", activityHandler.RemoveActivity)

	return router
}
