package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	_ "gateapp-http-service/docs"
	"gateapp-http-service/internal/app/routes"
	"gateapp-http-service/internal/domain/models"
	"gateapp-http-service/internal/domain/services"
	"gateapp-http-service/internal/domain/services/container"
	"gateapp-http-service/internal/infrastructure/config"
	"gateapp-http-service/internal/infrastructure/database"
	"gateapp-http-service/pkg/logger"
)

// @title           Gate App HTTP Service API
// @version         1.0
// @description     Visitor management service aggregating staff, vendor and family visit requests
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	// .env is optional; real deployments set variables directly
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	if err := logger.SetupLogger(); err != nil {
		log.Fatalf("failed to set up logger: %v", err)
	}

	cfg := config.GetConfig()

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		logger.Error("failed to connect to database: %v", err)
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	db := pool.GetDB()
	if cfg.DBMigrationMode == "drop" {
		if err := db.Migrator().DropTable(&models.User{}, &models.DecisionLog{}); err != nil {
			logger.Warning("failed to drop tables: %v", err)
		}
	}
	if err := db.AutoMigrate(&models.User{}, &models.DecisionLog{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	serviceContainer := container.NewServiceContainer(db, cfg)
	defer serviceContainer.Close()

	userService := serviceContainer.GetService("user").(services.InterfaceUserService)
	if err := userService.EnsureDefaultAdmin(cfg.DefaultAdminPassword); err != nil {
		logger.Warning("failed to seed default admin: %v", err)
	}

	if cfg.EnvType == "SERVER" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	routes.SetupRoutes(r, serviceContainer)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	logger.Info("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
