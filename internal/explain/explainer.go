package explain

import (
	"context"

	"talent-ops/internal/domain/expansion"
	"talent-ops/internal/domain/staffing"
)

// Explainer produces the human-readable reasoning attached to staffing
// recommendations and domain candidates. Implementations must always return
// a non-empty string; explanation generation is never allowed to fail a
// scoring request.
type Explainer interface {
	ExplainStaffing(ctx context.Context, c staffing.Candidate) string
	ExplainDomain(ctx context.Context, c expansion.Candidate) string
}
