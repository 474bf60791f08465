package similarity

import (
	"context"

	"talent-ops/internal/infrastructure/cache"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const keyPrefix = "similarity:project:"

// RedisStore reads the per-project score maps the embedding pipeline writes
// into Redis. A missing key, malformed entry, or unreachable Redis all
// degrade to an empty score map; similarity is an optional signal and its
// absence must never fail a staffing request.
type RedisStore struct {
	cache  *cache.Redis
	logger *zap.Logger
}

func NewRedisStore(c *cache.Redis, logger *zap.Logger) *RedisStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisStore{cache: c, logger: logger}
}

func (s *RedisStore) ScoresForProject(ctx context.Context, projectID uuid.UUID) (map[uuid.UUID]float64, error) {
	out := map[uuid.UUID]float64{}
	if s == nil || s.cache == nil || projectID == uuid.Nil {
		return out, nil
	}

	raw := map[string]float64{}
	found, err := s.cache.GetJSON(ctx, keyPrefix+projectID.String(), &raw)
	if err != nil {
		s.logger.Warn("similarity lookup degraded, scoring without similarity",
			zap.String("project_id", projectID.String()), zap.Error(err))
		return out, nil
	}
	if !found {
		return out, nil
	}

	for k, v := range raw {
		id, err := uuid.Parse(k)
		if err != nil {
			s.logger.Warn("skipping similarity entry with invalid employee id", zap.String("key", k))
			continue
		}
		if v < 0 {
			v = 0
		}
		if v > 100 {
			v = 100
		}
		out[id] = v
	}
	return out, nil
}
