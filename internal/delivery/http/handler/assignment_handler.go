package handler

import (
	"errors"
	"time"

	"talent-ops/internal/delivery/http/dto"
	"talent-ops/internal/delivery/http/middleware"
	"talent-ops/internal/pkg/response"
	"talent-ops/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AssignmentHandler struct {
	uc usecase.AssignmentUsecase
}

func NewAssignmentHandler(uc usecase.AssignmentUsecase) *AssignmentHandler {
	return &AssignmentHandler{uc: uc}
}

func (h *AssignmentHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/projects")
	grp.Post("/:project_id/assignments", h.Assign)
}

func (h *AssignmentHandler) Assign(c fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("project_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid project id", nil, err)
	}

	var req dto.AssignmentRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	params := usecase.AssignmentParams{
		ProjectID:  projectID,
		EmployeeID: req.EmployeeID,
		Role:       req.Role,
		EndDate:    req.EndDate,
	}
	if req.StartDate != nil {
		params.StartDate = *req.StartDate
	}

	if err := h.uc.Assign(c.Context(), params); err != nil {
		return mapAssignmentUsecaseError(err)
	}

	startDate := params.StartDate
	if startDate.IsZero() {
		startDate = time.Now().UTC()
	}
	out := dto.AssignmentResponse{
		ProjectID:  projectID,
		EmployeeID: req.EmployeeID,
		Role:       req.Role,
		StartDate:  startDate,
	}

	return response.Success(c, fiber.StatusCreated, "assigned", out)
}

func mapAssignmentUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Project not found", nil, err)
	case errors.Is(err, usecase.ErrEmployeeNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Employee not found", nil, err)
	case errors.Is(err, usecase.ErrAssignmentConflict):
		return middleware.NewAppError(fiber.StatusConflict, "Employee already assigned", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
}
