package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"gateapp-http-service/internal/app/middleware"
	"gateapp-http-service/internal/domain/services/container"
	"gateapp-http-service/internal/error/response"
)

var startTime = time.Now()

// InterfaceHealthController handles liveness and readiness endpoints
type InterfaceHealthController interface {
	Ping()
	Health()
	Status()
	CacheStats()
}

// HealthController implements InterfaceHealthController
type HealthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthController creates a HealthController
func NewHealthController(ctx *gin.Context, container *container.ServiceContainer) *HealthController {
	return &HealthController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleHealthFunc dispatches health endpoints
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthController(ctx, container)
		switch method {
		case "ping":
			controller.Ping()
		case "health":
			controller.Health()
		case "status":
			controller.Status()
		case "cacheStats":
			controller.CacheStats()
		default:
			response.NotFound(ctx, "method not found")
		}
	}
}

// Ping godoc
// @Summary      Liveness probe
// @Description  Returns pong if the service is up
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /ping [get]
func (c *HealthController) Ping() {
	response.Success(c.Ctx, gin.H{"message": "pong"})
}

// Health godoc
// @Summary      Readiness probe
// @Description  Reports service and database health
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /health [get]
func (c *HealthController) Health() {
	dbStatus := "not configured"
	if c.Container.DB != nil {
		dbStatus = "up"
		if sqlDB, err := c.Container.DB.DB(); err != nil || sqlDB.Ping() != nil {
			dbStatus = "down"
		}
	}

	response.Success(c.Ctx, gin.H{
		"status":   "up",
		"database": dbStatus,
		"time":     time.Now().UTC().Format(time.RFC3339),
	})
}

// Status godoc
// @Summary      Runtime status
// @Description  Reports uptime and database pool statistics
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /health/status [get]
func (c *HealthController) Status() {
	payload := gin.H{
		"uptime": time.Since(startTime).String(),
		"env":    c.Container.Config.EnvType,
	}

	if c.Container.DB != nil {
		if sqlDB, err := c.Container.DB.DB(); err == nil {
			stats := sqlDB.Stats()
			payload["db_pool"] = gin.H{
				"open_connections": stats.OpenConnections,
				"in_use":           stats.InUse,
				"idle":             stats.Idle,
				"wait_count":       stats.WaitCount,
			}
		}
	}

	response.Success(c.Ctx, payload)
}

// CacheStats godoc
// @Summary      Response cache statistics
// @Description  Reports hit, miss and store counts for the response cache
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /health/cache-stats [get]
func (c *HealthController) CacheStats() {
	response.Success(c.Ctx, middleware.CacheStats())
}
