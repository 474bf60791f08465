package trend

// Record is an external, read-only market-trend observation for a single
// technology. Scores are 0-100, GrowthRate is a percentage.
type Record struct {
	TechName       string
	Category       string
	RelatedDomains []string
	GrowthRate     float64
	DemandScore    float64
	TrendScore     float64
}

// Domains returns the domains the record speaks for, falling back to the
// category when no related domains were recorded.
func (r Record) Domains() []string {
	if len(r.RelatedDomains) > 0 {
		return r.RelatedDomains
	}
	if r.Category != "" {
		return []string{r.Category}
	}
	return nil
}
