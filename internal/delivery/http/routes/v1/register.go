package v1

import (
	"talent-ops/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func Register(
	r fiber.Router,
	staffing *handler.StaffingHandler,
	domains *handler.DomainAnalysisHandler,
	assignments *handler.AssignmentHandler,
) {
	if r == nil {
		return
	}

	if staffing != nil {
		staffing.RegisterRoutes(r)
	}
	if domains != nil {
		domains.RegisterRoutes(r)
	}
	if assignments != nil {
		assignments.RegisterRoutes(r)
	}
}
