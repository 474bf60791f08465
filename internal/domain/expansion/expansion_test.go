package expansion

import (
	"math"
	"testing"

	"talent-ops/internal/domain/employee"
	"talent-ops/internal/domain/project"
	"talent-ops/internal/domain/trend"

	"github.com/google/uuid"
)

func TestFeasibility_WorkedExample(t *testing.T) {
	// coverage 0.5, availability min(1, 6/5)=1.0, marketWeight 1.16.
	// positive = 0.5*1.16*50 + 30 + 18 = 77; negative = 0.5*1.25*30 = 18.75.
	got := Feasibility(
		[]string{"A", "B", "C", "D"},
		map[string]struct{}{"a": {}, "b": {}},
		6,
		Market{GrowthRate: 20, DemandScore: 80, TrendScore: 90},
		5,
	)
	if math.Abs(got-58.25) > 1e-9 {
		t.Fatalf("feasibility = %v, want 58.25", got)
	}
}

func TestFeasibility_Bounds(t *testing.T) {
	cases := []struct {
		name         string
		org          map[string]struct{}
		transferable int
		market       Market
	}{
		{"no coverage weak market", map[string]struct{}{}, 0, Market{}},
		{"full coverage hot market", map[string]struct{}{"a": {}, "b": {}}, 50, Market{GrowthRate: 100, DemandScore: 100, TrendScore: 100}},
		{"extreme signals", map[string]struct{}{"a": {}}, 1000, Market{GrowthRate: 1e6, DemandScore: 1e6, TrendScore: 1e6}},
	}
	for _, tc := range cases {
		got := Feasibility([]string{"A", "B"}, tc.org, tc.transferable, tc.market, 5)
		if got < 0 || got > 100 {
			t.Fatalf("%s: feasibility %v out of [0,100]", tc.name, got)
		}
	}
}

func TestFeasibility_EmptyRequired(t *testing.T) {
	if got := Feasibility(nil, map[string]struct{}{"a": {}}, 3, Market{}, 5); got != 0 {
		t.Fatalf("expected 0 for empty required skills, got %v", got)
	}
}

func TestTransferable_InclusiveThreshold(t *testing.T) {
	required := []string{"Go", "Python", "Kubernetes", "Terraform", "Postgres",
		"Redis", "Kafka", "Docker", "Linux", "Grafana"}

	withSkills := func(names ...string) employee.Profile {
		p := employee.Profile{ID: uuid.New()}
		for _, n := range names {
			p.Skills = append(p.Skills, employee.Skill{Name: n, Level: employee.LevelIntermediate})
		}
		return p
	}

	exactlyAt := withSkills("Go", "Python", "Kubernetes") // 3/10 = 0.3
	below := withSkills("Go", "Python")                   // 0.2
	unrelated := withSkills("Cobol")

	got := Transferable([]employee.Profile{exactlyAt, below, unrelated}, required, 0.3)
	if len(got) != 1 {
		t.Fatalf("expected 1 transferable employee, got %d", len(got))
	}
	if got[0].ID != exactlyAt.ID {
		t.Fatalf("expected the boundary employee to qualify")
	}
}

func TestBuildCandidates_ExcludesCurrentAndUnmatched(t *testing.T) {
	trends := []trend.Record{
		{TechName: "Go", RelatedDomains: []string{"Fintech"}, GrowthRate: 40, DemandScore: 80, TrendScore: 70},
		{TechName: "Rust", RelatedDomains: []string{"Fintech"}, GrowthRate: 60, DemandScore: 70, TrendScore: 80},
		{TechName: "Solidity", RelatedDomains: []string{"Blockchain"}, GrowthRate: 90, DemandScore: 50, TrendScore: 60},
		{TechName: "Python", RelatedDomains: []string{"Healthcare"}, GrowthRate: 30, DemandScore: 90, TrendScore: 75},
	}
	org := map[string]struct{}{"go": {}, "python": {}}

	out := BuildCandidates(trends, org, []string{"Healthcare"}, 8)

	if len(out) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(out))
	}
	c := out[0]
	if c.DomainName != "Fintech" {
		t.Fatalf("expected Fintech, got %s", c.DomainName)
	}
	if len(c.MatchedSkills) != 1 || c.MatchedSkills[0] != "Go" {
		t.Fatalf("unexpected matched skills: %v", c.MatchedSkills)
	}
	if len(c.SkillGap) != 1 || c.SkillGap[0] != "Rust" {
		t.Fatalf("unexpected skill gap: %v", c.SkillGap)
	}
	if math.Abs(c.SkillMatchRate-50) > 1e-9 {
		t.Fatalf("expected 50%% match rate, got %v", c.SkillMatchRate)
	}
	if math.Abs(c.Market.GrowthRate-50) > 1e-9 {
		t.Fatalf("expected averaged growth 50, got %v", c.Market.GrowthRate)
	}
}

func TestBuildCandidates_CategoryFallbackAndCap(t *testing.T) {
	trends := []trend.Record{
		{TechName: "Go", Category: "Backend", GrowthRate: 10, DemandScore: 10, TrendScore: 10},
	}
	org := map[string]struct{}{"go": {}}

	out := BuildCandidates(trends, org, nil, 8)
	if len(out) != 1 || out[0].DomainName != "Backend" {
		t.Fatalf("expected category fallback bucket, got %+v", out)
	}

	if got := BuildCandidates(trends, org, nil, 0); len(got) != 1 {
		t.Fatalf("non-positive cap should not truncate, got %d", len(got))
	}
}

func TestBuildCandidates_OrderedByOpportunity(t *testing.T) {
	trends := []trend.Record{
		{TechName: "Go", RelatedDomains: []string{"Low"}, GrowthRate: 10, DemandScore: 10, TrendScore: 10},
		{TechName: "Go", RelatedDomains: []string{"High"}, GrowthRate: 90, DemandScore: 90, TrendScore: 90},
	}
	org := map[string]struct{}{"go": {}}

	out := BuildCandidates(trends, org, nil, 8)
	if len(out) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(out))
	}
	if out[0].DomainName != "High" || out[1].DomainName != "Low" {
		t.Fatalf("unexpected order: %s, %s", out[0].DomainName, out[1].DomainName)
	}
}

func TestCurrentDomains_IndustryLabelsWin(t *testing.T) {
	projects := []project.Requirement{
		{Name: "Banking Portal", ClientIndustry: "Finance", Status: project.StatusInProgress},
		{Name: "Clinic App", ClientIndustry: "Healthcare", Status: project.StatusCompleted},
		{Name: "Old Retail Thing", ClientIndustry: "E-commerce", Status: project.StatusPlanning},
	}
	got := CurrentDomains(projects, DefaultParams().DomainKeywords)
	if len(got) != 2 || got[0] != "Finance" || got[1] != "Healthcare" {
		t.Fatalf("unexpected domains: %v", got)
	}
}

func TestCurrentDomains_KeywordFallback(t *testing.T) {
	projects := []project.Requirement{
		{Name: "Payment Gateway Revamp", Status: project.StatusInProgress},
		{Name: "Hospital Patient Portal", Status: project.StatusCompleted},
	}
	got := CurrentDomains(projects, DefaultParams().DomainKeywords)
	if len(got) != 2 || got[0] != "Finance" || got[1] != "Healthcare" {
		t.Fatalf("unexpected domains: %v", got)
	}
}

func TestOrgSkillInventory_BestLevelWins(t *testing.T) {
	employees := []employee.Profile{
		{ID: uuid.New(), Skills: []employee.Skill{{Name: "Go", Level: employee.LevelBeginner}}},
		{ID: uuid.New(), Skills: []employee.Skill{{Name: "go", Level: employee.LevelExpert}}},
	}
	names, best := OrgSkillInventory(employees)
	if _, ok := names["go"]; !ok {
		t.Fatalf("expected go in inventory")
	}
	if best["go"] != employee.LevelExpert {
		t.Fatalf("expected Expert to win, got %s", best["go"])
	}
}
