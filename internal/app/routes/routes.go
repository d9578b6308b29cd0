package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"gateapp-http-service/internal/app/controllers"
	"gateapp-http-service/internal/app/middleware"
	"gateapp-http-service/internal/domain/services/container"
)

// CORS allows the dashboard frontend to call the API from another origin
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

// SetupRoutes registers all HTTP routes
func SetupRoutes(r *gin.Engine, c *container.ServiceContainer) {
	r.Use(CORS())

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.Use(middleware.RateLimiter(10, 20))

	// Public endpoints. Health probes sit behind the response cache; the
	// visitor routes never do.
	api.GET("/ping", middleware.ResponseCache(30*time.Second), controllers.HandleHealthFunc(c, "ping"))
	api.GET("/health", middleware.ResponseCache(10*time.Second), controllers.HandleHealthFunc(c, "health"))
	api.GET("/health/status", controllers.HandleHealthFunc(c, "status"))
	api.GET("/health/cache-stats", controllers.HandleHealthFunc(c, "cacheStats"))
	api.POST("/auth/login", controllers.HandleAuthFunc(c, "login"))

	// Authenticated endpoints
	auth := api.Group("")
	auth.Use(middleware.JWTAuth(c))
	{
		auth.GET("/visitors/requests", controllers.HandleVisitorFunc(c, "listRequests"))
		auth.GET("/visitors/summary", controllers.HandleVisitorFunc(c, "summary"))
		auth.PATCH("/visitors/requests/:id", middleware.RequireRole("admin"), controllers.HandleVisitorFunc(c, "decide"))

		auth.GET("/daylog", controllers.HandleDayLogFunc(c, "list"))
		auth.POST("/daylog/:id/checkout", controllers.HandleDayLogFunc(c, "checkout"))
		auth.POST("/daylog/:id/pass", controllers.HandleDayLogFunc(c, "issuePass"))
		auth.GET("/daylog/pass/:token", controllers.HandleDayLogFunc(c, "resolvePass"))
	}
}
