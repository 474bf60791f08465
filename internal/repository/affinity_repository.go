package repository

import (
	"context"

	"talent-ops/internal/database"
	"talent-ops/internal/domain/affinity"
)

type AffinityRepository interface {
	ListEdges(ctx context.Context) ([]affinity.Edge, error)
}

type PostgresAffinityRepository struct {
	db database.DB
}

func NewPostgresAffinityRepository(db database.DB) *PostgresAffinityRepository {
	return &PostgresAffinityRepository{db: db}
}

// ListEdges returns every stored affinity pair. Validation (self-edges,
// unknown employees, out-of-range scores) happens in the affinity graph so
// one bad row never fails the read.
func (r *PostgresAffinityRepository) ListEdges(ctx context.Context) ([]affinity.Edge, error) {
	rows, err := r.db.Query(ctx,
		`SELECT employee_a, employee_b, COALESCE(score, 0)
		 FROM employee_affinity
		 ORDER BY employee_a, employee_b`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]affinity.Edge, 0)
	for rows.Next() {
		var e affinity.Edge
		if err := rows.Scan(&e.EmployeeA, &e.EmployeeB, &e.Score); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
