package app

import (
	"context"
	"time"

	"talent-ops/internal/config"
	"talent-ops/internal/database"
	dbpostgres "talent-ops/internal/database/postgres"
	"talent-ops/internal/delivery/http/handler"
	"talent-ops/internal/delivery/http/routes"
	"talent-ops/internal/domain/expansion"
	"talent-ops/internal/domain/staffing"
	"talent-ops/internal/explain"
	"talent-ops/internal/infrastructure/cache"
	"talent-ops/internal/repository"
	"talent-ops/internal/similarity"
	"talent-ops/internal/usecase"

	"go.uber.org/zap"
)

type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
	Cache  *cache.Redis
	Routes *routes.Registry
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	scoring := staffing.DefaultParams()
	if len(cfg.Scoring.DomainBonusKeywords) > 0 {
		scoring.DomainBonusKeywords = cfg.Scoring.DomainBonusKeywords
	}
	scoring.DomainBonusRate = cfg.Scoring.DomainBonusRate
	scoring.RecencyDecayLambda = cfg.Scoring.RecencyDecayLambda
	scoring.DefaultRecencyWeight = cfg.Scoring.DefaultRecencyWeight

	expand := expansion.DefaultParams()
	expand.TransferableThreshold = cfg.Scoring.TransferableThreshold
	expand.MinTeamSize = cfg.Scoring.MinTeamSize
	expand.MaxCandidates = cfg.Scoring.MaxDomainCandidates

	employeeRepo := repository.NewPostgresEmployeeRepository(db, logger)
	projectRepo := repository.NewPostgresProjectRepository(db)
	trendRepo := repository.NewPostgresTrendRepository(db)
	affinityRepo := repository.NewPostgresAffinityRepository(db)
	assignmentRepo := repository.NewPostgresAssignmentRepository(db)

	searcher := similarity.NewRedisStore(redisCache, logger)
	explainer := buildExplainer(context.Background(), cfg.AI, logger)

	staffingUC := usecase.NewStaffingUsecase(
		projectRepo, employeeRepo, affinityRepo, searcher, explainer, scoring, logger)
	domainUC := usecase.NewDomainAnalysisUsecase(
		projectRepo, employeeRepo, trendRepo, explainer, expand, logger)
	assignmentUC := usecase.NewAssignmentUsecase(projectRepo, assignmentRepo, logger)

	registry := routes.NewRegistry(
		handler.NewHealthHandler(cfg.App.AppName),
		handler.NewStaffingHandler(staffingUC),
		handler.NewDomainAnalysisHandler(domainUC),
		handler.NewAssignmentHandler(assignmentUC),
	)

	return &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  redisCache,
		Routes: registry,
	}, nil
}

// buildExplainer prefers the Gemini-backed explainer and degrades to the
// deterministic template when no API key is configured or the client cannot
// be built. Recommendations never fail for lack of prose.
func buildExplainer(ctx context.Context, cfg config.AIConfig, logger *zap.Logger) explain.Explainer {
	template := explain.NewTemplate()
	if cfg.GeminiAPIKey == "" {
		return template
	}

	generator, err := explain.NewGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		logger.Warn("gemini client unavailable, using template explanations", zap.Error(err))
		return template
	}
	return explain.NewGemini(generator, template, cfg.ExplainTimeout, logger)
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			c.Logger.Warn("cache close failed", zap.Error(err))
		}
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
