package employee

import "testing"

func TestParsePeriod_FullRange(t *testing.T) {
	p, err := ParsePeriod("2024-01 ~ 2025-07")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.StartYear != 2024 || p.StartMonth != 1 {
		t.Fatalf("unexpected start: %+v", p)
	}
	if p.EndYear != 2025 || p.EndMonth != 7 {
		t.Fatalf("unexpected end: %+v", p)
	}
}

func TestParsePeriod_YearOnly(t *testing.T) {
	p, err := ParsePeriod("2023 ~ 2024")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.StartYear != 2023 || p.StartMonth != 0 {
		t.Fatalf("unexpected start: %+v", p)
	}
	if p.EndYear != 2024 || p.EndMonth != 0 {
		t.Fatalf("unexpected end: %+v", p)
	}
}

func TestParsePeriod_SingleDate(t *testing.T) {
	p, err := ParsePeriod("2022-05")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.StartYear != 2022 || p.EndYear != 2022 || p.EndMonth != 5 {
		t.Fatalf("unexpected period: %+v", p)
	}
}

func TestParsePeriod_Invalid(t *testing.T) {
	for _, raw := range []string{"", "ongoing", "abcd-01 ~ 2024-02", "150 ~ 200"} {
		if _, err := ParsePeriod(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestSkillLevel_Weight(t *testing.T) {
	cases := map[SkillLevel]float64{
		LevelBeginner:     1.0,
		LevelIntermediate: 1.5,
		LevelAdvanced:     1.8,
		LevelExpert:       2.0,
		SkillLevel("???"): 1.0,
	}
	for level, want := range cases {
		if got := level.Weight(); got != want {
			t.Fatalf("Weight(%s) = %v, want %v", level, got, want)
		}
	}
}

func TestProfile_FindSkill_CaseInsensitive(t *testing.T) {
	p := Profile{Skills: []Skill{{Name: "Python", Level: LevelExpert, Years: 5}}}

	s, ok := p.FindSkill("python")
	if !ok {
		t.Fatalf("expected match")
	}
	if s.Name != "Python" {
		t.Fatalf("unexpected skill: %+v", s)
	}
	if _, ok := p.FindSkill("Java"); ok {
		t.Fatalf("unexpected match")
	}
}

func TestProfile_Assigned(t *testing.T) {
	if (Profile{}).Assigned() {
		t.Fatalf("expected unassigned")
	}
	p := Profile{CurrentAssignment: &AssignmentRef{ProjectName: "Phoenix"}}
	if !p.Assigned() {
		t.Fatalf("expected assigned")
	}
}
