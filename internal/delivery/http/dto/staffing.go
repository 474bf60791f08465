package dto

import "github.com/google/uuid"

type StaffingRecommendationRequest struct {
	RequiredSkills []string `json:"required_skills"`
	TeamSize       int      `json:"team_size"`
	Priority       string   `json:"priority"`
}

type SkillDetailResponse struct {
	Skill string  `json:"skill"`
	Level string  `json:"level"`
	Years float64 `json:"years"`
	Score float64 `json:"score"`
}

type CandidateResponse struct {
	EmployeeID        uuid.UUID             `json:"employee_id"`
	Name              string                `json:"name"`
	Role              string                `json:"role"`
	YearsOfExperience float64               `json:"years_of_experience"`
	MatchedSkills     []string              `json:"matched_skills"`
	SkillDetails      []SkillDetailResponse `json:"skill_details"`
	SkillMatchScore   float64               `json:"skill_match_score"`
	SimilarityScore   float64               `json:"similarity_score"`
	AffinityScore     float64               `json:"affinity_score"`
	OverallScore      float64               `json:"overall_score"`
	DomainBonus       bool                  `json:"domain_bonus"`
	Availability      string                `json:"availability"`
	Reasoning         string                `json:"reasoning"`
}

type StaffingRecommendationResponse struct {
	ProjectID       uuid.UUID           `json:"project_id"`
	Priority        string              `json:"priority"`
	TotalCandidates int                 `json:"total_candidates"`
	Recommendations []CandidateResponse `json:"recommendations"`
	Warnings        []string            `json:"warnings,omitempty"`
}
