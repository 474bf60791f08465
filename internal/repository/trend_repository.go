package repository

import (
	"context"

	"talent-ops/internal/database"
	"talent-ops/internal/domain/trend"
)

type TrendRepository interface {
	ListTrendRecords(ctx context.Context) ([]trend.Record, error)
}

type PostgresTrendRepository struct {
	db database.DB
}

func NewPostgresTrendRepository(db database.DB) *PostgresTrendRepository {
	return &PostgresTrendRepository{db: db}
}

func (r *PostgresTrendRepository) ListTrendRecords(ctx context.Context) ([]trend.Record, error) {
	out := make([]trend.Record, 0)

	last := ""
	for {
		rows, err := r.db.Query(ctx,
			`SELECT tech_name, COALESCE(category, ''), COALESCE(related_domains, '{}'),
			        COALESCE(growth_rate, 0), COALESCE(demand_score, 0), COALESCE(trend_score, 0)
			 FROM tech_trends
			 WHERE tech_name > $1
			 ORDER BY tech_name ASC
			 LIMIT $2`,
			last, listBatchSize,
		)
		if err != nil {
			return nil, err
		}

		n := 0
		for rows.Next() {
			var rec trend.Record
			if err := rows.Scan(&rec.TechName, &rec.Category, &rec.RelatedDomains,
				&rec.GrowthRate, &rec.DemandScore, &rec.TrendScore); err != nil {
				rows.Close()
				return nil, err
			}
			out = append(out, rec)
			last = rec.TechName
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
