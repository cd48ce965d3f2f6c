package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"seatwise/internal/constraints"
	"seatwise/internal/exports"
	"seatwise/internal/guests"
	"seatwise/internal/notifications"
	"seatwise/internal/plans"
	"seatwise/internal/shared/config"
	"seatwise/internal/shared/database"
	"seatwise/internal/tables"
	"seatwise/pkg/cache"
	"seatwise/pkg/ratelimit"
)

// SetupRouter wires every feature module and mounts it under the API
// base path.
func SetupRouter(router *gin.Engine, db *database.DB, cfg *config.Config, rateLimiter *ratelimit.RateLimiter, events notifications.Publisher) {
	cacheService := cache.NewService(db.GetRedisClient())

	// Repositories
	guestRepo := guests.NewRepository(db.GetPostgreSQL())
	tableRepo := tables.NewRepository(db.GetPostgreSQL())
	constraintRepo := constraints.NewRepository(db.GetPostgreSQL())
	planRepo := plans.NewRepository(db.GetPostgreSQL())

	// Services
	guestService := guests.NewService(guestRepo)
	guestService.SetCacheService(cacheService)

	tableService := tables.NewService(tableRepo)
	constraintService := constraints.NewService(constraintRepo, guestService)

	planService := plans.NewService(planRepo, guestService, constraintService, cfg.Seating.NearDistanceThreshold)
	planService.SetCacheService(cacheService)
	planService.SetEventPublisher(events)

	// Layout mutations bump the plan version through this hook
	tableService.SetPlanRefresher(planService)

	exportService := exports.NewService(planService, constraintService, guestService)

	// Controllers
	tableController := tables.NewController(tableService)
	constraintController := constraints.NewController(constraintService)
	planController := plans.NewController(planService)
	exportController := exports.NewController(exportService)

	registerHealthRoutes(router, db)

	api := router.Group(cfg.GetAPIBasePath())
	if rateLimiter != nil {
		api.Use(ratelimit.Middleware(rateLimiter))
	}

	plans.RegisterRoutes(api, planController)
	tables.RegisterRoutes(api, tableController)
	constraints.RegisterRoutes(api, constraintController)
	exports.RegisterRoutes(api, exportController)
}

func registerHealthRoutes(router *gin.Engine, db *database.DB) {
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	router.GET("/health", func(c *gin.Context) {
		if err := db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	router.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "seatwise",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})
}
