package usecase

import (
	"context"
	"sort"
	"strings"

	"talent-ops/internal/domain/employee"
	"talent-ops/internal/domain/expansion"
	"talent-ops/internal/explain"
	"talent-ops/internal/repository"

	"go.uber.org/zap"
)

const (
	AnalysisNewDomains        = "new_domains"
	AnalysisExpansionStrategy = "expansion_strategy"

	// expansion_strategy narrows the identified list to the strongest picks.
	strategyTopN = 3
)

type DomainAnalysisParams struct {
	AnalysisType string
}

type DomainCandidate struct {
	expansion.Candidate
	Reasoning string
}

type DomainAnalysisResult struct {
	AnalysisType          string
	CurrentDomains        []string
	IdentifiedDomains     []DomainCandidate
	RecommendedDomains    []DomainCandidate
	TotalProjectsAnalyzed int
	TotalEmployees        int
}

type DomainAnalysisUsecase interface {
	Analyze(ctx context.Context, params DomainAnalysisParams) (DomainAnalysisResult, error)
}

type DomainAnalysis struct {
	projects  repository.ProjectRepository
	employees repository.EmployeeRepository
	trends    repository.TrendRepository
	explainer explain.Explainer
	expansion expansion.Params
	logger    *zap.Logger
}

func NewDomainAnalysisUsecase(
	projects repository.ProjectRepository,
	employees repository.EmployeeRepository,
	trends repository.TrendRepository,
	explainer explain.Explainer,
	params expansion.Params,
	logger *zap.Logger,
) *DomainAnalysis {
	if explainer == nil {
		explainer = explain.NewTemplate()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DomainAnalysis{
		projects:  projects,
		employees: employees,
		trends:    trends,
		explainer: explainer,
		expansion: params,
		logger:    logger,
	}
}

// Analyze rebuilds the expansion picture from the current snapshot on every
// call. It never caches: trends, projects and the workforce all drift, and a
// stale feasibility score is worse than a slow one.
func (u *DomainAnalysis) Analyze(ctx context.Context, params DomainAnalysisParams) (DomainAnalysisResult, error) {
	analysisType := normalizeAnalysisType(params.AnalysisType)

	projects, err := u.projects.ListProjects(ctx)
	if err != nil {
		return DomainAnalysisResult{}, ErrInternal
	}
	profiles, err := u.employees.ListEmployees(ctx)
	if err != nil {
		return DomainAnalysisResult{}, ErrInternal
	}
	records, err := u.trends.ListTrendRecords(ctx)
	if err != nil {
		return DomainAnalysisResult{}, ErrInternal
	}

	currentDomains := expansion.CurrentDomains(projects, u.expansion.DomainKeywords)
	orgSkills, proficiency := expansion.OrgSkillInventory(profiles)

	result := DomainAnalysisResult{
		AnalysisType:          analysisType,
		CurrentDomains:        currentDomains,
		IdentifiedDomains:     []DomainCandidate{},
		TotalProjectsAnalyzed: len(projects),
		TotalEmployees:        len(profiles),
	}

	candidates := expansion.BuildCandidates(records, orgSkills, currentDomains, u.expansion.MaxCandidates)
	if len(candidates) == 0 {
		return result, nil
	}

	identified := make([]DomainCandidate, 0, len(candidates))
	for _, c := range candidates {
		c.Transferable = expansion.Transferable(profiles, c.RequiredSkills, u.expansion.TransferableThreshold)
		c.FeasibilityScore = expansion.Feasibility(
			c.RequiredSkills, orgSkills, len(c.Transferable), c.Market, u.expansion.MinTeamSize)
		c.SkillProficiency = matchedProficiency(c.MatchedSkills, proficiency)

		identified = append(identified, DomainCandidate{
			Candidate: c,
			Reasoning: u.explainer.ExplainDomain(ctx, c),
		})
	}

	sort.SliceStable(identified, func(i, j int) bool {
		if identified[i].FeasibilityScore != identified[j].FeasibilityScore {
			return identified[i].FeasibilityScore > identified[j].FeasibilityScore
		}
		return identified[i].DomainName < identified[j].DomainName
	})

	result.IdentifiedDomains = identified
	if analysisType == AnalysisExpansionStrategy {
		top := identified
		if len(top) > strategyTopN {
			top = top[:strategyTopN]
		}
		result.RecommendedDomains = top
	}
	return result, nil
}

func normalizeAnalysisType(t string) string {
	switch strings.ToLower(strings.TrimSpace(t)) {
	case AnalysisExpansionStrategy:
		return AnalysisExpansionStrategy
	default:
		return AnalysisNewDomains
	}
}

func matchedProficiency(matched []string, levels map[string]employee.SkillLevel) map[string]employee.SkillLevel {
	out := make(map[string]employee.SkillLevel, len(matched))
	for _, name := range matched {
		if lvl, ok := levels[strings.ToLower(name)]; ok {
			out[name] = lvl
		}
	}
	return out
}
