package usecase

import (
	"context"
	"errors"
	"time"

	"talent-ops/internal/domain/affinity"
	"talent-ops/internal/domain/staffing"
	"talent-ops/internal/explain"
	"talent-ops/internal/repository"
	"talent-ops/internal/similarity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrProjectNotFound = errors.New("project not found")
	ErrInternal        = errors.New("internal error")
)

// Fallback when a project row carries no target headcount.
const defaultRequiredMembers = 5

type StaffingParams struct {
	ProjectID      uuid.UUID
	RequiredSkills []string
	TeamSize       int
	Priority       staffing.Priority
}

type StaffingResult struct {
	ProjectID       uuid.UUID
	Recommendations []staffing.Candidate
	Warnings        []string
}

type StaffingUsecase interface {
	Recommend(ctx context.Context, params StaffingParams) (StaffingResult, error)
}

type Staffing struct {
	projects   repository.ProjectRepository
	employees  repository.EmployeeRepository
	affinities repository.AffinityRepository
	searcher   similarity.Searcher
	explainer  explain.Explainer
	scoring    staffing.Params
	logger     *zap.Logger
	now        func() time.Time
}

func NewStaffingUsecase(
	projects repository.ProjectRepository,
	employees repository.EmployeeRepository,
	affinities repository.AffinityRepository,
	searcher similarity.Searcher,
	explainer explain.Explainer,
	scoring staffing.Params,
	logger *zap.Logger,
) *Staffing {
	if searcher == nil {
		searcher = similarity.Noop{}
	}
	if explainer == nil {
		explainer = explain.NewTemplate()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Staffing{
		projects:   projects,
		employees:  employees,
		affinities: affinities,
		searcher:   searcher,
		explainer:  explainer,
		scoring:    scoring,
		logger:     logger,
		now:        time.Now,
	}
}

// Recommend scores every unassigned employee against the project's required
// skills, blends in similarity and affinity, and returns the ranked top
// teamSize candidates with reasoning attached. teamSize defaults to twice
// the project's target headcount so a human picks the final team. Missing
// data is an empty result; only a missing project id or project is an error.
func (u *Staffing) Recommend(ctx context.Context, params StaffingParams) (StaffingResult, error) {
	if params.ProjectID == uuid.Nil {
		return StaffingResult{}, ErrInvalidInput
	}

	proj, err := u.projects.FindByID(ctx, params.ProjectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return StaffingResult{}, ErrProjectNotFound
		}
		return StaffingResult{}, ErrInternal
	}

	result := StaffingResult{ProjectID: proj.ID, Recommendations: []staffing.Candidate{}}

	requiredSkills := params.RequiredSkills
	if len(requiredSkills) == 0 {
		requiredSkills = proj.RequiredSkills
	}
	if len(requiredSkills) == 0 {
		return result, nil
	}

	teamSize := params.TeamSize
	if teamSize <= 0 {
		requiredMembers := proj.TeamSizeTarget
		if requiredMembers <= 0 {
			requiredMembers = defaultRequiredMembers
		}
		teamSize = requiredMembers * 2
	}

	profiles, err := u.employees.ListEmployees(ctx)
	if err != nil {
		return StaffingResult{}, ErrInternal
	}
	if len(profiles) == 0 {
		return result, nil
	}

	currentYear := u.now().UTC().Year()

	// Every employee is a legitimate edge endpoint: collaboration history
	// with the current (assigned) team is exactly what the affinity signal
	// measures. Assignment status only gates who can be a candidate.
	known := make(map[uuid.UUID]struct{}, len(profiles))
	for _, prof := range profiles {
		known[prof.ID] = struct{}{}
	}

	candidates := make(map[uuid.UUID]*staffing.Candidate)

	for _, prof := range profiles {
		if prof.Assigned() {
			continue
		}

		match, ok := staffing.MatchSkills(prof, requiredSkills, currentYear, u.scoring)
		if !ok {
			continue
		}
		candidates[prof.ID] = &staffing.Candidate{
			EmployeeID:        prof.ID,
			Name:              prof.Name,
			Role:              prof.Role,
			YearsOfExperience: prof.YearsOfExperience,
			MatchedSkills:     match.MatchedSkills,
			SkillDetails:      match.SkillDetails,
			SkillMatchScore:   match.Score,
			DomainBonus:       match.DomainBonus,
			Availability:      staffing.Available,
		}
	}

	simScores, err := u.searcher.ScoresForProject(ctx, proj.ID)
	if err != nil {
		u.logger.Warn("similarity search degraded, continuing without it", zap.Error(err))
		result.Warnings = append(result.Warnings, "similarity search unavailable")
		simScores = map[uuid.UUID]float64{}
	}
	for _, prof := range profiles {
		if prof.Assigned() {
			continue
		}
		score, ok := simScores[prof.ID]
		if !ok || score <= 0 {
			continue
		}
		if c, exists := candidates[prof.ID]; exists {
			c.SimilarityScore = score
			continue
		}
		candidates[prof.ID] = &staffing.Candidate{
			EmployeeID:        prof.ID,
			Name:              prof.Name,
			Role:              prof.Role,
			YearsOfExperience: prof.YearsOfExperience,
			MatchedSkills:     []string{},
			SimilarityScore:   score,
			Availability:      staffing.Available,
		}
	}

	edges, err := u.affinities.ListEdges(ctx)
	if err != nil {
		u.logger.Warn("affinity lookup degraded, continuing without it", zap.Error(err))
		result.Warnings = append(result.Warnings, "affinity scores unavailable")
		edges = nil
	}
	graph := affinity.NewGraph(edges, known)
	if skipped := graph.Skipped(); skipped > 0 {
		u.logger.Warn("skipped malformed affinity edges", zap.Int("count", skipped))
	}

	weights := params.Priority.Weights()
	ranked := make([]staffing.Candidate, 0, len(candidates))
	for _, c := range candidates {
		c.AffinityScore = graph.AverageFor(c.EmployeeID)
		c.OverallScore = weights.Overall(c.SkillMatchScore, c.SimilarityScore, c.AffinityScore)
		ranked = append(ranked, *c)
	}

	staffing.Rank(ranked)
	if len(ranked) > teamSize {
		ranked = ranked[:teamSize]
	}

	for i := range ranked {
		ranked[i].Reasoning = u.explainer.ExplainStaffing(ctx, ranked[i])
	}

	result.Recommendations = ranked
	return result, nil
}
