package dto

import "github.com/google/uuid"

type DomainAnalysisRequest struct {
	AnalysisType string `json:"analysis_type"`
}

type MarketSignalResponse struct {
	GrowthRate  float64 `json:"growth_rate"`
	DemandScore float64 `json:"demand_score"`
	TrendScore  float64 `json:"trend_score"`
}

type TransferableEmployeeResponse struct {
	EmployeeID uuid.UUID `json:"employee_id"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
}

type DomainCandidateResponse struct {
	DomainName        string                         `json:"domain_name"`
	RequiredSkills    []string                       `json:"required_skills"`
	MatchedSkills     []string                       `json:"matched_skills"`
	SkillGap          []string                       `json:"skill_gap"`
	SkillProficiency  map[string]string              `json:"skill_proficiency"`
	Market            MarketSignalResponse           `json:"market"`
	SkillMatchRate    float64                        `json:"skill_match_rate"`
	OpportunityScore  float64                        `json:"opportunity_score"`
	FeasibilityScore  float64                        `json:"feasibility_score"`
	TransferableTotal int                            `json:"transferable_total"`
	RecommendedTeam   []TransferableEmployeeResponse `json:"recommended_team"`
	Reasoning         string                         `json:"reasoning"`
}

type DomainAnalysisResponse struct {
	AnalysisType          string                    `json:"analysis_type"`
	CurrentDomains        []string                  `json:"current_domains"`
	IdentifiedDomains     []DomainCandidateResponse `json:"identified_domains"`
	RecommendedDomains    []DomainCandidateResponse `json:"recommended_domains,omitempty"`
	TotalProjectsAnalyzed int                       `json:"total_projects_analyzed"`
	TotalEmployees        int                       `json:"total_employees"`
}
