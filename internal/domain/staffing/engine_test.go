package staffing

import (
	"math"
	"testing"

	"talent-ops/internal/domain/employee"

	"github.com/google/uuid"
)

const currentYear = 2026

func expertPython() employee.Profile {
	return employee.Profile{
		ID:   uuid.New(),
		Name: "Kim",
		Skills: []employee.Skill{
			{Name: "Python", Level: employee.LevelExpert, Years: 5},
		},
		WorkHistory: []employee.ProjectStint{
			{ProjectName: "Data Platform", Period: &employee.Period{StartYear: 2025, EndYear: currentYear}},
		},
	}
}

func TestMatchSkills_ExpertRecentStint(t *testing.T) {
	res, ok := MatchSkills(expertPython(), []string{"Python"}, currentYear, DefaultParams())
	if !ok {
		t.Fatalf("expected a match")
	}
	// 1.0 * 2.0 * exp(0) = 2.0, normalized to min(100, 2.0/1*50).
	if res.Score != 100 {
		t.Fatalf("expected score 100, got %v", res.Score)
	}
	if len(res.MatchedSkills) != 1 || res.MatchedSkills[0] != "Python" {
		t.Fatalf("unexpected matched skills: %v", res.MatchedSkills)
	}
	if res.DomainBonus {
		t.Fatalf("unexpected domain bonus")
	}
}

func TestMatchSkills_BeginnerDefaultRecency(t *testing.T) {
	p := employee.Profile{
		ID:     uuid.New(),
		Skills: []employee.Skill{{Name: "Python", Level: employee.LevelBeginner}},
	}
	res, ok := MatchSkills(p, []string{"Python"}, currentYear, DefaultParams())
	if !ok {
		t.Fatalf("expected a match")
	}
	// 1.0 * 1.0 * 0.5 = 0.5, normalized to 25.
	if res.Score != 25 {
		t.Fatalf("expected score 25, got %v", res.Score)
	}
}

func TestMatchSkills_ZeroMatchesOmitted(t *testing.T) {
	p := employee.Profile{
		ID:     uuid.New(),
		Skills: []employee.Skill{{Name: "Rust", Level: employee.LevelExpert}},
	}
	if _, ok := MatchSkills(p, []string{"Python", "Go"}, currentYear, DefaultParams()); ok {
		t.Fatalf("expected no match result")
	}
}

func TestMatchSkills_EmptyRequired(t *testing.T) {
	if _, ok := MatchSkills(expertPython(), nil, currentYear, DefaultParams()); ok {
		t.Fatalf("expected no match result for empty required list")
	}
}

func TestMatchSkills_CaseInsensitive(t *testing.T) {
	res, ok := MatchSkills(expertPython(), []string{"PYTHON"}, currentYear, DefaultParams())
	if !ok || res.Score != 100 {
		t.Fatalf("expected case-insensitive match, got ok=%v score=%v", ok, res.Score)
	}
}

func TestMatchSkills_LevelMonotonicity(t *testing.T) {
	required := []string{"Go"}
	params := DefaultParams()
	prev := -1.0
	for _, level := range []employee.SkillLevel{
		employee.LevelBeginner,
		employee.LevelIntermediate,
		employee.LevelAdvanced,
		employee.LevelExpert,
	} {
		p := employee.Profile{
			ID:     uuid.New(),
			Skills: []employee.Skill{{Name: "Go", Level: level}},
		}
		res, ok := MatchSkills(p, required, currentYear, params)
		if !ok {
			t.Fatalf("expected match at level %s", level)
		}
		if res.Score < prev {
			t.Fatalf("score decreased at level %s: %v < %v", level, res.Score, prev)
		}
		prev = res.Score
	}
}

func TestMatchSkills_DomainBonus(t *testing.T) {
	p := employee.Profile{
		ID:     uuid.New(),
		Skills: []employee.Skill{{Name: "Java", Level: employee.LevelIntermediate}},
		WorkHistory: []employee.ProjectStint{
			{ProjectName: "Banking Core Renewal"},
		},
	}
	res, ok := MatchSkills(p, []string{"Java"}, currentYear, DefaultParams())
	if !ok {
		t.Fatalf("expected a match")
	}
	if !res.DomainBonus {
		t.Fatalf("expected domain bonus")
	}
	// 1.5 * 0.5 = 0.75, bonus once: 0.75 * 1.3 = 0.975, normalized 48.75.
	if math.Abs(res.Score-48.75) > 1e-9 {
		t.Fatalf("expected score 48.75, got %v", res.Score)
	}
}

func TestMatchSkills_DomainBonusAppliedOnce(t *testing.T) {
	p := employee.Profile{
		ID:     uuid.New(),
		Skills: []employee.Skill{{Name: "Java", Level: employee.LevelIntermediate}},
		WorkHistory: []employee.ProjectStint{
			{ProjectName: "Banking Core Renewal"},
			{ProjectName: "금융 데이터 플랫폼"},
		},
	}
	res, _ := MatchSkills(p, []string{"Java"}, currentYear, DefaultParams())
	if math.Abs(res.Score-48.75) > 1e-9 {
		t.Fatalf("expected one-shot bonus score 48.75, got %v", res.Score)
	}
}

func TestBestRecencyWeight_Decay(t *testing.T) {
	params := DefaultParams()

	prev := 2.0
	for yearsAgo := 0; yearsAgo <= 2; yearsAgo++ {
		history := []employee.ProjectStint{
			{Period: &employee.Period{EndYear: currentYear - yearsAgo}},
		}
		w := bestRecencyWeight(history, currentYear, params)
		if w <= 0 || w > 1 {
			t.Fatalf("weight out of (0,1]: %v", w)
		}
		if w >= prev {
			t.Fatalf("weight did not strictly decrease at yearsAgo=%d: %v >= %v", yearsAgo, w, prev)
		}
		prev = w
	}
}

func TestBestRecencyWeight_FloorsAtDefault(t *testing.T) {
	params := DefaultParams()
	history := []employee.ProjectStint{
		{Period: &employee.Period{EndYear: currentYear - 30}},
	}
	if w := bestRecencyWeight(history, currentYear, params); w != params.DefaultRecencyWeight {
		t.Fatalf("expected floor %v, got %v", params.DefaultRecencyWeight, w)
	}
}

func TestBestRecencyWeight_FutureStintCountsAsCurrent(t *testing.T) {
	history := []employee.ProjectStint{
		{Period: &employee.Period{EndYear: currentYear + 1}},
	}
	if w := bestRecencyWeight(history, currentYear, DefaultParams()); w != 1.0 {
		t.Fatalf("expected weight 1.0, got %v", w)
	}
}

func TestBestRecencyWeight_NilPeriodIgnored(t *testing.T) {
	params := DefaultParams()
	history := []employee.ProjectStint{{ProjectName: "Legacy", Period: nil}}
	if w := bestRecencyWeight(history, currentYear, params); w != params.DefaultRecencyWeight {
		t.Fatalf("expected default weight, got %v", w)
	}
}

func TestMatchSkills_Deterministic(t *testing.T) {
	p := expertPython()
	p.Skills = append(p.Skills, employee.Skill{Name: "Go", Level: employee.LevelAdvanced, Years: 3})
	required := []string{"Python", "Go", "Kubernetes"}

	a, _ := MatchSkills(p, required, currentYear, DefaultParams())
	b, _ := MatchSkills(p, required, currentYear, DefaultParams())
	if a.Score != b.Score || len(a.MatchedSkills) != len(b.MatchedSkills) {
		t.Fatalf("results differ: %+v vs %+v", a, b)
	}
	for i := range a.MatchedSkills {
		if a.MatchedSkills[i] != b.MatchedSkills[i] {
			t.Fatalf("matched skill order differs")
		}
	}
}
