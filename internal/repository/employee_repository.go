package repository

import (
	"context"

	"talent-ops/internal/database"
	"talent-ops/internal/domain/employee"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const listBatchSize = 500

type EmployeeRepository interface {
	ListEmployees(ctx context.Context) ([]employee.Profile, error)
}

type PostgresEmployeeRepository struct {
	db     database.DB
	logger *zap.Logger
}

func NewPostgresEmployeeRepository(db database.DB, logger *zap.Logger) *PostgresEmployeeRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PostgresEmployeeRepository{db: db, logger: logger}
}

// ListEmployees loads the full employee snapshot in keyset-paginated
// batches, then attaches skills and work history. Work-history periods are
// parsed here, at the boundary; a row with an unparsable period keeps its
// stint but loses the recency signal.
func (r *PostgresEmployeeRepository) ListEmployees(ctx context.Context) ([]employee.Profile, error) {
	profiles := make([]employee.Profile, 0)
	byID := make(map[uuid.UUID]int)

	var last uuid.UUID
	for {
		rows, err := r.db.Query(ctx,
			`SELECT e.id, e.name, e.role, COALESCE(e.years_of_experience, 0),
			        e.current_project_id, COALESCE(p.name, ''), COALESCE(e.current_project_role, '')
			 FROM employees e
			 LEFT JOIN projects p ON p.id = e.current_project_id
			 WHERE e.id > $1
			 ORDER BY e.id ASC
			 LIMIT $2`,
			last, listBatchSize,
		)
		if err != nil {
			return nil, err
		}

		n := 0
		for rows.Next() {
			var prof employee.Profile
			var assignedProject *uuid.UUID
			var assignedName, assignedRole string
			if err := rows.Scan(&prof.ID, &prof.Name, &prof.Role, &prof.YearsOfExperience,
				&assignedProject, &assignedName, &assignedRole); err != nil {
				rows.Close()
				return nil, err
			}
			if assignedProject != nil && *assignedProject != uuid.Nil {
				prof.CurrentAssignment = &employee.AssignmentRef{
					ProjectID:   *assignedProject,
					ProjectName: assignedName,
					Role:        assignedRole,
				}
			}
			byID[prof.ID] = len(profiles)
			profiles = append(profiles, prof)
			last = prof.ID
			n++
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return nil, err
		}
		if n < listBatchSize {
			break
		}
	}

	if len(profiles) == 0 {
		return profiles, nil
	}

	ids := make([]uuid.UUID, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.ID)
	}

	if err := r.attachSkills(ctx, ids, byID, profiles); err != nil {
		return nil, err
	}
	if err := r.attachWorkHistory(ctx, ids, byID, profiles); err != nil {
		return nil, err
	}

	return profiles, nil
}

func (r *PostgresEmployeeRepository) attachSkills(ctx context.Context, ids []uuid.UUID, byID map[uuid.UUID]int, profiles []employee.Profile) error {
	rows, err := r.db.Query(ctx,
		`SELECT employee_id, name, COALESCE(level, 'Intermediate'), COALESCE(years, 0)
		 FROM employee_skills
		 WHERE employee_id = ANY($1)
		 ORDER BY employee_id, name`,
		ids,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var employeeID uuid.UUID
		var skill employee.Skill
		var level string
		if err := rows.Scan(&employeeID, &skill.Name, &level, &skill.Years); err != nil {
			return err
		}
		skill.Level = employee.SkillLevel(level)
		if idx, ok := byID[employeeID]; ok {
			profiles[idx].Skills = append(profiles[idx].Skills, skill)
		}
	}
	return rows.Err()
}

func (r *PostgresEmployeeRepository) attachWorkHistory(ctx context.Context, ids []uuid.UUID, byID map[uuid.UUID]int, profiles []employee.Profile) error {
	rows, err := r.db.Query(ctx,
		`SELECT employee_id, project_name, COALESCE(period, ''), COALESCE(role, ''), COALESCE(domain_hint, '')
		 FROM work_history
		 WHERE employee_id = ANY($1)
		 ORDER BY employee_id, project_name`,
		ids,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var employeeID uuid.UUID
		var stint employee.ProjectStint
		var rawPeriod string
		if err := rows.Scan(&employeeID, &stint.ProjectName, &rawPeriod, &stint.Role, &stint.DomainHint); err != nil {
			return err
		}

		if rawPeriod != "" {
			period, err := employee.ParsePeriod(rawPeriod)
			if err != nil {
				r.logger.Warn("work-history period unparsable, dropping recency signal",
					zap.String("employee_id", employeeID.String()),
					zap.String("period", rawPeriod),
					zap.Error(err))
			} else {
				stint.Period = &period
			}
		}

		if idx, ok := byID[employeeID]; ok {
			profiles[idx].WorkHistory = append(profiles[idx].WorkHistory, stint)
		}
	}
	return rows.Err()
}
