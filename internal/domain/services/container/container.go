package container

import (
	"gorm.io/gorm"

	"gateapp-http-service/internal/domain/services"
	"gateapp-http-service/internal/infrastructure/config"
)

// ServiceContainer wires the service graph once at startup and hands
// controllers their dependencies by name
type ServiceContainer struct {
	DB       *gorm.DB
	Config   *config.Config
	services map[string]interface{}
}

// NewServiceContainer builds every service. db may be nil when running
// without a database; services that need it degrade accordingly.
func NewServiceContainer(db *gorm.DB, cfg *config.Config) *ServiceContainer {
	container := &ServiceContainer{
		DB:       db,
		Config:   cfg,
		services: make(map[string]interface{}),
	}

	visitAPI := services.NewVisitAPIService(cfg)
	aggregation := services.NewAggregationService(visitAPI)
	gateEvents := services.NewGateEventService(cfg)
	view := services.NewVisitorViewService(aggregation, visitAPI, gateEvents, db)
	passes := services.NewPassService(cfg)
	jwtService := services.NewJWTService(cfg)
	userService := services.NewUserService(db)

	container.services["visit_api"] = visitAPI
	container.services["aggregation"] = aggregation
	container.services["gate_events"] = gateEvents
	container.services["visitor_view"] = view
	container.services["pass"] = passes
	container.services["jwt"] = jwtService
	container.services["user"] = userService

	return container
}

// GetService returns a service by name; callers assert the interface
func (c *ServiceContainer) GetService(name string) interface{} {
	return c.services[name]
}

// Close releases long-lived connections held by services
func (c *ServiceContainer) Close() {
	if events, ok := c.services["gate_events"].(services.InterfaceGateEventService); ok {
		events.Close()
	}
}
