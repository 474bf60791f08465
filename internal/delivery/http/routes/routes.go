package routes

import (
	"talent-ops/internal/delivery/http/handler"
	v1 "talent-ops/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health      *handler.HealthHandler
	staffing    *handler.StaffingHandler
	domains     *handler.DomainAnalysisHandler
	assignments *handler.AssignmentHandler
}

func NewRegistry(
	health *handler.HealthHandler,
	staffing *handler.StaffingHandler,
	domains *handler.DomainAnalysisHandler,
	assignments *handler.AssignmentHandler,
) *Registry {
	return &Registry{
		health:      health,
		staffing:    staffing,
		domains:     domains,
		assignments: assignments,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.health != nil {
		r.health.RegisterRoutes(app)
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.staffing, r.domains, r.assignments)
}
