package explain

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"talent-ops/internal/domain/expansion"
	"talent-ops/internal/domain/staffing"
)

type stubGenerator struct {
	out     string
	err     error
	prompts []string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.out, nil
}

func TestGemini_ExplainStaffing_UsesModelOutput(t *testing.T) {
	gen := &stubGenerator{out: "Kim is a strong fit for this project."}
	g := NewGemini(gen, nil, time.Second, nil)

	out := g.ExplainStaffing(context.Background(), staffing.Candidate{Name: "Kim", MatchedSkills: []string{"Go"}})
	if out != "Kim is a strong fit for this project." {
		t.Fatalf("expected model output, got %q", out)
	}
	if len(gen.prompts) != 1 || !strings.Contains(gen.prompts[0], "Kim") {
		t.Fatalf("prompt did not carry candidate data: %v", gen.prompts)
	}
}

func TestGemini_ExplainStaffing_FallsBackOnError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("quota exceeded")}
	g := NewGemini(gen, nil, time.Second, nil)

	c := staffing.Candidate{SkillMatchScore: 85, MatchedSkills: []string{"Go"}}
	out := g.ExplainStaffing(context.Background(), c)
	want := NewTemplate().ExplainStaffing(context.Background(), c)
	if out != want {
		t.Fatalf("expected template fallback %q, got %q", want, out)
	}
}

func TestGemini_ExplainDomain_FallsBackOnEmptyOutput(t *testing.T) {
	gen := &stubGenerator{out: "   "}
	g := NewGemini(gen, nil, time.Second, nil)

	c := expansion.Candidate{DomainName: "Healthcare", FeasibilityScore: 55}
	out := g.ExplainDomain(context.Background(), c)
	want := NewTemplate().ExplainDomain(context.Background(), c)
	if out != want {
		t.Fatalf("expected template fallback on blank output, got %q", out)
	}
}

func TestGemini_NilGeneratorUsesFallback(t *testing.T) {
	g := NewGemini(nil, nil, time.Second, nil)
	c := staffing.Candidate{SkillMatchScore: 30, MatchedSkills: []string{"Go"}}
	if g.ExplainStaffing(context.Background(), c) != NewTemplate().ExplainStaffing(context.Background(), c) {
		t.Fatalf("nil generator should defer to the template")
	}
}
