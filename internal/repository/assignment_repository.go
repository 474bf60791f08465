package repository

import (
	"context"
	"errors"
	"time"

	"talent-ops/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrAssignmentConflict = errors.New("employee already assigned to a project")
)

type Assignment struct {
	ProjectID  uuid.UUID
	EmployeeID uuid.UUID
	Role       string
	StartDate  time.Time
	EndDate    *time.Time
}

type AssignmentRepository interface {
	Assign(ctx context.Context, a Assignment) error
}

type PostgresAssignmentRepository struct {
	db database.DB
}

func NewPostgresAssignmentRepository(db database.DB) *PostgresAssignmentRepository {
	return &PostgresAssignmentRepository{db: db}
}

// Assign is a check-then-set under a row lock: an employee can hold at most
// one active assignment, and two concurrent assignment requests for the
// same employee must not both succeed.
func (r *PostgresAssignmentRepository) Assign(ctx context.Context, a Assignment) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var current *uuid.UUID
	err = tx.QueryRow(ctx,
		`SELECT current_project_id FROM employees WHERE id = $1 FOR UPDATE`,
		a.EmployeeID,
	).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrEmployeeNotFound
		}
		return err
	}
	if current != nil && *current != uuid.Nil {
		return ErrAssignmentConflict
	}

	if _, err := tx.Exec(ctx,
		`UPDATE employees
		 SET current_project_id = $1, current_project_role = $2
		 WHERE id = $3`,
		a.ProjectID, a.Role, a.EmployeeID,
	); err != nil {
		return err
	}

	start := a.StartDate
	if start.IsZero() {
		start = time.Now().UTC()
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO project_members (id, project_id, employee_id, role, start_date, end_date)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.New(), a.ProjectID, a.EmployeeID, a.Role, start, a.EndDate,
	); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
