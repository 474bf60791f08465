package repository

import (
	"context"
	"errors"

	"talent-ops/internal/database"
	"talent-ops/internal/domain/project"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrProjectNotFound = errors.New("project not found")

type ProjectRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (project.Requirement, error)
	ListProjects(ctx context.Context) ([]project.Requirement, error)
}

type PostgresProjectRepository struct {
	db database.DB
}

func NewPostgresProjectRepository(db database.DB) *PostgresProjectRepository {
	return &PostgresProjectRepository{db: db}
}

func (r *PostgresProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (project.Requirement, error) {
	var p project.Requirement
	var status string
	err := r.db.QueryRow(ctx,
		`SELECT id, name, COALESCE(description, ''), COALESCE(required_skills, '{}'),
		        COALESCE(team_size_target, 0), status, COALESCE(client_industry, '')
		 FROM projects
		 WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Name, &p.Description, &p.RequiredSkills, &p.TeamSizeTarget, &status, &p.ClientIndustry)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Requirement{}, ErrProjectNotFound
		}
		return project.Requirement{}, err
	}
	p.Status = project.Status(status)
	return p, nil
}

func (r *PostgresProjectRepository) ListProjects(ctx context.Context) ([]project.Requirement, error) {
	out := make([]project.Requirement, 0)

	var last uuid.UUID
	for {
		rows, err := r.db.Query(ctx,
			`SELECT id, name, COALESCE(description, ''), COALESCE(required_skills, '{}'),
			        COALESCE(team_size_target, 0), status, COALESCE(client_industry, '')
			 FROM projects
			 WHERE id > $1
			 ORDER BY id ASC
			 LIMIT $2`,
			last, listBatchSize,
		)
		if err != nil {
			return nil, err
		}

		n := 0
		for rows.Next() {
			var p project.Requirement
			var status string
			if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.RequiredSkills,
				&p.TeamSizeTarget, &status, &p.ClientIndustry); err != nil {
				rows.Close()
				return nil, err
			}
			p.Status = project.Status(status)
			out = append(out, p)
			last = p.ID
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

	return out, nil
}
