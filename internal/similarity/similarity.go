package similarity

import (
	"context"

	"github.com/google/uuid"
)

// Searcher supplies the precomputed semantic-similarity signal: per-employee
// 0-100 scores for a project, produced by an external embedding pipeline.
// Implementations return an empty map when no scores exist; the scoring core
// then treats every candidate as 0 rather than fabricating a value.
type Searcher interface {
	ScoresForProject(ctx context.Context, projectID uuid.UUID) (map[uuid.UUID]float64, error)
}

// Noop is the degraded-mode searcher: no similarity signal at all.
type Noop struct{}

func (Noop) ScoresForProject(context.Context, uuid.UUID) (map[uuid.UUID]float64, error) {
	return map[uuid.UUID]float64{}, nil
}
