package staffing

import (
	"sort"

	"github.com/google/uuid"
)

// Priority selects the weight triple used when blending the skill,
// similarity, and affinity signals into the overall score.
type Priority string

const (
	PrioritySkill    Priority = "skill"
	PriorityAffinity Priority = "affinity"
	PriorityBalanced Priority = "balanced"
)

// ParsePriority falls back to balanced for unknown values; priority is a
// hint, not an identifier, so no validation error is surfaced.
func ParsePriority(s string) Priority {
	switch Priority(s) {
	case PrioritySkill:
		return PrioritySkill
	case PriorityAffinity:
		return PriorityAffinity
	default:
		return PriorityBalanced
	}
}

type Weights struct {
	Skill      float64
	Similarity float64
	Affinity   float64
}

func (p Priority) Weights() Weights {
	switch p {
	case PrioritySkill:
		return Weights{Skill: 0.6, Similarity: 0.3, Affinity: 0.1}
	case PriorityAffinity:
		return Weights{Skill: 0.3, Similarity: 0.2, Affinity: 0.5}
	default:
		return Weights{Skill: 0.4, Similarity: 0.3, Affinity: 0.3}
	}
}

func (w Weights) Overall(skill, similarity, affinity float64) float64 {
	return skill*w.Skill + similarity*w.Similarity + affinity*w.Affinity
}

type Availability string

const (
	Available Availability = "Available"
	Busy      Availability = "Busy"
)

// Candidate is one employee's merged scoring state across all signals.
type Candidate struct {
	EmployeeID        uuid.UUID
	Name              string
	Role              string
	YearsOfExperience float64
	MatchedSkills     []string
	SkillDetails      []SkillDetail
	SkillMatchScore   float64
	SimilarityScore   float64
	AffinityScore     float64
	OverallScore      float64
	DomainBonus       bool
	Availability      Availability
	Reasoning         string
}

// Rank orders candidates for presentation: overall score descending, then
// skill match score descending, then employee id ascending so equal scores
// always come back in the same order.
func Rank(candidates []Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].OverallScore != candidates[j].OverallScore {
			return candidates[i].OverallScore > candidates[j].OverallScore
		}
		if candidates[i].SkillMatchScore != candidates[j].SkillMatchScore {
			return candidates[i].SkillMatchScore > candidates[j].SkillMatchScore
		}
		return candidates[i].EmployeeID.String() < candidates[j].EmployeeID.String()
	})
}
