package usecase

import (
	"context"
	"errors"
	"time"

	"talent-ops/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrAssignmentConflict = errors.New("employee already assigned")
)

type AssignmentParams struct {
	ProjectID  uuid.UUID
	EmployeeID uuid.UUID
	Role       string
	StartDate  time.Time
	EndDate    *time.Time
}

type AssignmentUsecase interface {
	Assign(ctx context.Context, params AssignmentParams) error
}

type AssignmentService struct {
	projects    repository.ProjectRepository
	assignments repository.AssignmentRepository
	logger      *zap.Logger
	now         func() time.Time
}

func NewAssignmentUsecase(
	projects repository.ProjectRepository,
	assignments repository.AssignmentRepository,
	logger *zap.Logger,
) *AssignmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssignmentService{
		projects:    projects,
		assignments: assignments,
		logger:      logger,
		now:         time.Now,
	}
}

// Assign places an employee on a project. The repository enforces the
// one-active-assignment rule under a row lock; this layer only validates
// input and maps storage errors.
func (s *AssignmentService) Assign(ctx context.Context, params AssignmentParams) error {
	if params.ProjectID == uuid.Nil || params.EmployeeID == uuid.Nil {
		return ErrInvalidInput
	}

	if _, err := s.projects.FindByID(ctx, params.ProjectID); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return ErrProjectNotFound
		}
		return ErrInternal
	}

	startDate := params.StartDate
	if startDate.IsZero() {
		startDate = s.now().UTC()
	}

	err := s.assignments.Assign(ctx, repository.Assignment{
		ProjectID:  params.ProjectID,
		EmployeeID: params.EmployeeID,
		Role:       params.Role,
		StartDate:  startDate,
		EndDate:    params.EndDate,
	})
	switch {
	case err == nil:
		s.logger.Info("employee assigned",
			zap.String("employee_id", params.EmployeeID.String()),
			zap.String("project_id", params.ProjectID.String()))
		return nil
	case errors.Is(err, repository.ErrEmployeeNotFound):
		return ErrEmployeeNotFound
	case errors.Is(err, repository.ErrAssignmentConflict):
		return ErrAssignmentConflict
	default:
		s.logger.Error("assignment write failed", zap.Error(err))
		return ErrInternal
	}
}
