package explain

import (
	"context"
	"fmt"
	"strings"

	"talent-ops/internal/domain/expansion"
	"talent-ops/internal/domain/staffing"
)

// Template is the deterministic explainer. It is the default and the
// fallback behind the LLM-backed one: same inputs, same sentence, no
// external calls.
type Template struct{}

func NewTemplate() *Template {
	return &Template{}
}

func (t *Template) ExplainStaffing(_ context.Context, c staffing.Candidate) string {
	var b strings.Builder

	switch {
	case c.SkillMatchScore >= 70:
		fmt.Fprintf(&b, "Strong skill fit (%.1f/100)", c.SkillMatchScore)
	case c.SkillMatchScore >= 50:
		fmt.Fprintf(&b, "Adequate skill fit (%.1f/100)", c.SkillMatchScore)
	case len(c.MatchedSkills) > 0:
		fmt.Fprintf(&b, "Partial skill fit (%.1f/100)", c.SkillMatchScore)
	default:
		fmt.Fprintf(&b, "Profile similarity fit (%.1f/100 similarity)", c.SimilarityScore)
	}

	if len(c.MatchedSkills) > 0 {
		fmt.Fprintf(&b, " covering %s", joinCapped(c.MatchedSkills, 5))
	}
	b.WriteString(".")

	if c.YearsOfExperience > 0 {
		fmt.Fprintf(&b, " %.0f years of experience as %s.", c.YearsOfExperience, orDefault(c.Role, "a developer"))
	}

	if c.DomainBonus {
		b.WriteString(" Prior delivery in a related industry adds a domain-experience bonus.")
	}

	switch {
	case c.AffinityScore > 50:
		fmt.Fprintf(&b, " Team affinity %.1f suggests strong collaboration synergy with the current team.", c.AffinityScore)
	case c.AffinityScore > 0:
		fmt.Fprintf(&b, " Team affinity %.1f indicates workable collaboration history.", c.AffinityScore)
	default:
		b.WriteString(" No affinity history yet; would join as a new collaborator.")
	}

	if c.Availability == staffing.Available {
		b.WriteString(" Available for immediate assignment.")
	}

	return b.String()
}

func (t *Template) ExplainDomain(_ context.Context, c expansion.Candidate) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[Market] The %s domain shows %.1f%% annual growth and a demand score of %.0f.",
		c.DomainName, c.Market.GrowthRate, c.Market.DemandScore)

	band, strategy := feasibilityBand(c.FeasibilityScore)
	fmt.Fprintf(&b, " [Feasibility: %s]", band)

	if len(c.MatchedSkills) > 0 {
		fmt.Fprintf(&b, " The organization holds %d of the required technologies (%s) with %d transferable employees.",
			len(c.MatchedSkills), joinCapped(c.MatchedSkills, 3), len(c.Transferable))
	} else {
		fmt.Fprintf(&b, " No required technology is held in depth yet, though %d employees could transfer after training.",
			len(c.Transferable))
	}

	if len(c.SkillGap) > 0 {
		fmt.Fprintf(&b, " %d technologies still need to be acquired, notably %s.",
			len(c.SkillGap), joinCapped(c.SkillGap, 3))
	}

	fmt.Fprintf(&b, " [Strategy] %s.", strategy)

	return b.String()
}

func feasibilityBand(score float64) (band, strategy string) {
	switch {
	case score >= 70:
		return "high", "Immediate entry is viable"
	case score >= 40:
		return "medium", "Entry is viable after short-term training"
	default:
		return "low", "Long-term preparation is required"
	}
}

func joinCapped(items []string, max int) string {
	if len(items) <= max {
		return strings.Join(items, ", ")
	}
	return fmt.Sprintf("%s and %d more", strings.Join(items[:max], ", "), len(items)-max)
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
