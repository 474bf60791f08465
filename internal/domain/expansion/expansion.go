package expansion

import (
	"sort"
	"strings"

	"talent-ops/internal/domain/employee"
	"talent-ops/internal/domain/project"
	"talent-ops/internal/domain/trend"
)

// Params carries the feasibility tunables. The threshold and team size were
// fixed constants in early deployments; they are configuration here.
type Params struct {
	// TransferableThreshold is the minimum fraction of a domain's required
	// skills an employee must already hold to count as transferable. The
	// boundary is inclusive.
	TransferableThreshold float64
	// MinTeamSize is the headcount against which transferable availability
	// saturates.
	MinTeamSize int
	// MaxCandidates caps the identified-domain list.
	MaxCandidates int
	// DomainKeywords classifies unlabeled projects into domains by name and
	// description keywords. Used only when no project carries an industry
	// label.
	DomainKeywords map[string][]string
}

func DefaultParams() Params {
	return Params{
		TransferableThreshold: 0.3,
		MinTeamSize:           5,
		MaxCandidates:         8,
		DomainKeywords:        defaultDomainKeywords(),
	}
}

func defaultDomainKeywords() map[string][]string {
	return map[string][]string{
		"Finance":            {"finance", "banking", "payment", "fintech"},
		"Healthcare":         {"health", "medical", "hospital", "patient"},
		"E-commerce":         {"ecommerce", "e-commerce", "shopping", "retail"},
		"Manufacturing":      {"manufacturing", "factory", "production"},
		"Logistics":          {"logistics", "delivery", "shipping", "warehouse"},
		"Education":          {"education", "learning", "school", "university"},
		"Government":         {"government", "public", "civic"},
		"Telecommunications": {"telecom", "network", "communication"},
		"Insurance":          {"insurance", "policy", "claim"},
		"Real Estate":        {"real estate", "property", "housing"},
	}
}

// Market is the averaged trend signal for one domain bucket.
type Market struct {
	GrowthRate  float64
	DemandScore float64
	TrendScore  float64
}

// Candidate is a derived view of one prospective business domain. It has no
// lifecycle; every analysis request rebuilds it from the trend snapshot.
type Candidate struct {
	DomainName       string
	RequiredSkills   []string
	MatchedSkills    []string
	SkillGap         []string
	SkillProficiency map[string]employee.SkillLevel
	Market           Market
	SkillMatchRate   float64
	OpportunityScore float64
	FeasibilityScore float64
	Transferable     []employee.Profile
}

// CurrentDomains extracts the organization's operating domains from active
// projects. Industry labels win; when no active project carries one, project
// names and descriptions are classified against the keyword table. The
// result is sorted for stable output.
func CurrentDomains(projects []project.Requirement, keywords map[string][]string) []string {
	seen := make(map[string]struct{})
	for _, p := range projects {
		if !p.Status.Active() {
			continue
		}
		industry := strings.TrimSpace(p.ClientIndustry)
		if industry != "" {
			seen[industry] = struct{}{}
		}
	}

	if len(seen) == 0 {
		domains := make([]string, 0, len(keywords))
		for d := range keywords {
			domains = append(domains, d)
		}
		sort.Strings(domains)

		for _, p := range projects {
			if !p.Status.Active() {
				continue
			}
			text := strings.ToLower(p.Name + " " + p.Description)
			for _, domain := range domains {
				if containsAny(text, keywords[domain]) {
					seen[domain] = struct{}{}
					break
				}
			}
		}
	}

	out := make([]string, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" && strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// OrgSkillInventory aggregates the whole organization's skill set: the
// lowercased name set and the best proficiency level seen per name.
func OrgSkillInventory(employees []employee.Profile) (map[string]struct{}, map[string]employee.SkillLevel) {
	names := make(map[string]struct{})
	best := make(map[string]employee.SkillLevel)
	for _, e := range employees {
		for _, s := range e.Skills {
			name := strings.ToLower(strings.TrimSpace(s.Name))
			if name == "" {
				continue
			}
			names[name] = struct{}{}
			if cur, ok := best[name]; !ok || s.Level.Rank() > cur.Rank() {
				best[name] = s.Level
			}
		}
	}
	return names, best
}

// BuildCandidates groups trend records into domain buckets, averages their
// market signals, and keeps the domains the organization could plausibly
// enter: at least one required technology matched by the org skill set and
// not already an operating domain. Buckets inherit the record's related
// domains, or its category when none are recorded.
//
// Candidates are ranked by opportunity score (skill match rate 60%, growth
// 20%, demand 20%) and capped at maxCandidates.
func BuildCandidates(trends []trend.Record, orgSkills map[string]struct{}, currentDomains []string, maxCandidates int) []Candidate {
	current := make(map[string]struct{}, len(currentDomains))
	for _, d := range currentDomains {
		current[d] = struct{}{}
	}

	type bucket struct {
		techs   []string
		matched []string
		growth  float64
		demand  float64
		trendSc float64
		count   int
	}
	buckets := make(map[string]*bucket)

	for _, rec := range trends {
		tech := strings.TrimSpace(rec.TechName)
		if tech == "" {
			continue
		}
		for _, domain := range rec.Domains() {
			domain = strings.TrimSpace(domain)
			if domain == "" {
				continue
			}
			b := buckets[domain]
			if b == nil {
				b = &bucket{}
				buckets[domain] = b
			}
			b.techs = append(b.techs, tech)
			if _, ok := orgSkills[strings.ToLower(tech)]; ok {
				b.matched = append(b.matched, tech)
			}
			b.growth += rec.GrowthRate
			b.demand += rec.DemandScore
			b.trendSc += rec.TrendScore
			b.count++
		}
	}

	out := make([]Candidate, 0, len(buckets))
	for domain, b := range buckets {
		if len(b.matched) == 0 {
			continue
		}
		if _, ok := current[domain]; ok {
			continue
		}

		n := float64(b.count)
		market := Market{
			GrowthRate:  b.growth / n,
			DemandScore: b.demand / n,
			TrendScore:  b.trendSc / n,
		}
		matchRate := float64(len(b.matched)) / float64(len(b.techs)) * 100

		out = append(out, Candidate{
			DomainName:       domain,
			RequiredSkills:   b.techs,
			MatchedSkills:    b.matched,
			SkillGap:         gap(b.techs, b.matched),
			Market:           market,
			SkillMatchRate:   matchRate,
			OpportunityScore: matchRate*0.6 + market.GrowthRate*0.2 + market.DemandScore*0.2,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].OpportunityScore != out[j].OpportunityScore {
			return out[i].OpportunityScore > out[j].OpportunityScore
		}
		return out[i].DomainName < out[j].DomainName
	})

	if maxCandidates > 0 && len(out) > maxCandidates {
		out = out[:maxCandidates]
	}
	return out
}

func gap(required, matched []string) []string {
	have := make(map[string]struct{}, len(matched))
	for _, m := range matched {
		have[strings.ToLower(m)] = struct{}{}
	}
	out := make([]string, 0, len(required))
	seen := make(map[string]struct{}, len(required))
	for _, r := range required {
		key := strings.ToLower(r)
		if _, ok := have[key]; ok {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return out
}

// Transferable returns the employees whose current skills cover at least
// threshold of the required set. The boundary is inclusive; the returned
// order follows the input order.
func Transferable(employees []employee.Profile, requiredSkills []string, threshold float64) []employee.Profile {
	required := make(map[string]struct{}, len(requiredSkills))
	for _, r := range requiredSkills {
		key := strings.ToLower(strings.TrimSpace(r))
		if key != "" {
			required[key] = struct{}{}
		}
	}
	if len(required) == 0 {
		return nil
	}

	need := threshold * float64(len(required))

	out := make([]employee.Profile, 0)
	for _, e := range employees {
		overlap := 0
		for name := range e.SkillNames() {
			if _, ok := required[name]; ok {
				overlap++
			}
		}
		if float64(overlap) >= need && overlap > 0 {
			out = append(out, e)
		}
	}
	return out
}

// Feasibility estimates 0-100 readiness to enter a domain from skill
// coverage, transferable headcount, and averaged market signals.
//
// positive = coverage*marketWeight*50 + availability*30 + trend/100*20
// negative = gapPenalty*riskWeight*30
// where marketWeight = clamp((growth/100*0.4 + demand/100*0.4 +
// trend/100*0.2)*2, 0.5, 2.0) and riskWeight = 1 + gapPenalty*0.5.
func Feasibility(requiredSkills []string, orgSkills map[string]struct{}, transferableCount int, market Market, minTeamSize int) float64 {
	if len(requiredSkills) == 0 {
		return 0
	}
	if minTeamSize <= 0 {
		minTeamSize = 1
	}

	total := 0
	matched := 0
	seen := make(map[string]struct{}, len(requiredSkills))
	for _, r := range requiredSkills {
		key := strings.ToLower(strings.TrimSpace(r))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		total++
		if _, ok := orgSkills[key]; ok {
			matched++
		}
	}
	if total == 0 {
		return 0
	}

	coverage := float64(matched) / float64(total)
	gapPenalty := float64(total-matched) / float64(total)

	availability := float64(transferableCount) / float64(minTeamSize)
	if availability > 1 {
		availability = 1
	}

	marketWeight := (market.GrowthRate/100)*0.4 + (market.DemandScore/100)*0.4 + (market.TrendScore/100)*0.2
	marketWeight *= 2
	marketWeight = clamp(marketWeight, 0.5, 2.0)

	riskWeight := 1.0 + gapPenalty*0.5

	positive := coverage*marketWeight*50 + availability*30 + (market.TrendScore/100)*20
	negative := gapPenalty * riskWeight * 30

	return clamp(positive-negative, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
