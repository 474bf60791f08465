package staffing

import (
	"math"
	"strings"

	"talent-ops/internal/domain/employee"

	"github.com/google/uuid"
)

// Params carries the scoring tunables. The defaults reproduce the production
// weighting; deployments override the keyword list per client portfolio.
type Params struct {
	// DomainBonusKeywords mark work-history project names that earn the
	// one-shot domain-experience bonus. Matching is case-insensitive
	// substring.
	DomainBonusKeywords []string
	// DomainBonusRate is the fraction of the accumulated weighted score
	// added once when any stint matches a keyword.
	DomainBonusRate float64
	// RecencyDecayLambda is the exponential decay constant applied per year
	// since a stint ended.
	RecencyDecayLambda float64
	// DefaultRecencyWeight applies when no stint carries a usable period.
	DefaultRecencyWeight float64
}

func DefaultParams() Params {
	return Params{
		DomainBonusKeywords:  []string{"finance", "banking", "금융", "은행"},
		DomainBonusRate:      0.3,
		RecencyDecayLambda:   0.3,
		DefaultRecencyWeight: 0.5,
	}
}

type SkillDetail struct {
	Skill string
	Level employee.SkillLevel
	Years float64
	Score float64
}

type SkillMatchResult struct {
	EmployeeID    uuid.UUID
	MatchedSkills []string
	SkillDetails  []SkillDetail
	Score         float64
	DomainBonus   bool
}

// MatchSkills computes the weighted skill-match score of one employee
// against a required skill list for the given calendar year.
//
// Per required skill: contribution = S_match * W_level * W_recency, where
// W_level comes from the proficiency level and W_recency is the best
// exponential decay over the employee's dated stints. A one-shot domain
// bonus of DomainBonusRate is added when any stint name hits a configured
// keyword. The total is normalized to 0-100 against the required list size.
//
// The second return is false when the employee matched nothing (or the
// required list is empty); such employees are omitted from results rather
// than scored as zero. Callers must exclude assigned employees before
// scoring.
func MatchSkills(p employee.Profile, requiredSkills []string, currentYear int, params Params) (SkillMatchResult, bool) {
	if len(requiredSkills) == 0 {
		return SkillMatchResult{}, false
	}

	recency := bestRecencyWeight(p.WorkHistory, currentYear, params)

	var weighted float64
	matched := make([]string, 0, len(requiredSkills))
	details := make([]SkillDetail, 0, len(requiredSkills))

	for _, req := range requiredSkills {
		skill, ok := p.FindSkill(req)
		if !ok {
			continue
		}

		score := 1.0 * skill.Level.Weight() * recency
		weighted += score

		matched = append(matched, req)
		details = append(details, SkillDetail{
			Skill: skill.Name,
			Level: skill.Level,
			Years: skill.Years,
			Score: score,
		})
	}

	if len(matched) == 0 {
		return SkillMatchResult{}, false
	}

	bonus := hasDomainExperience(p.WorkHistory, params.DomainBonusKeywords)
	if bonus {
		weighted += weighted * params.DomainBonusRate
	}

	score := math.Min(100, (weighted/float64(len(requiredSkills)))*50)

	return SkillMatchResult{
		EmployeeID:    p.ID,
		MatchedSkills: matched,
		SkillDetails:  details,
		Score:         score,
		DomainBonus:   bonus,
	}, true
}

// bestRecencyWeight takes the maximum decay weight over all dated stints,
// floored at the default weight. Stints without a parsed period carry no
// recency signal. Stints ending in the future count as current.
func bestRecencyWeight(history []employee.ProjectStint, currentYear int, params Params) float64 {
	best := params.DefaultRecencyWeight
	for _, stint := range history {
		if stint.Period == nil {
			continue
		}
		yearsAgo := currentYear - stint.Period.EndYear
		if yearsAgo < 0 {
			yearsAgo = 0
		}
		w := math.Exp(-params.RecencyDecayLambda * float64(yearsAgo))
		if w > best {
			best = w
		}
	}
	return best
}

func hasDomainExperience(history []employee.ProjectStint, keywords []string) bool {
	for _, stint := range history {
		name := strings.ToLower(stint.ProjectName)
		hint := strings.ToLower(stint.DomainHint)
		for _, kw := range keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				continue
			}
			if strings.Contains(name, kw) || (hint != "" && strings.Contains(hint, kw)) {
				return true
			}
		}
	}
	return false
}
