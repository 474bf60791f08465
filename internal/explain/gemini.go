package explain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"talent-ops/internal/domain/expansion"
	"talent-ops/internal/domain/staffing"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Generator wraps the Google GenAI client for simple prompt-in, text-out
// calls.
type Generator struct {
	client    *genai.Client
	modelName string
}

func NewGenerator(ctx context.Context, apiKey, model string) (*Generator, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	return &Generator{client: client, modelName: model}, nil
}

func (g *Generator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if g == nil || g.client == nil {
		return "", errors.New("gemini generator is not initialized")
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	var b strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString(text)
		}
	}

	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", errors.New("gemini api returned empty response")
	}
	return out, nil
}

// Gemini decorates the template explainer with model-generated prose under a
// bounded timeout. Any error, timeout, or empty response falls back to the
// deterministic template; the caller can never tell the model was down
// except by the phrasing.
type Gemini struct {
	generator contentGenerator
	fallback  Explainer
	timeout   time.Duration
	logger    *zap.Logger
}

func NewGemini(generator contentGenerator, fallback Explainer, timeout time.Duration, logger *zap.Logger) *Gemini {
	if fallback == nil {
		fallback = NewTemplate()
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gemini{generator: generator, fallback: fallback, timeout: timeout, logger: logger}
}

func (g *Gemini) ExplainStaffing(ctx context.Context, c staffing.Candidate) string {
	prompt := fmt.Sprintf(
		`Write 2-3 sentences explaining why this employee fits a project, for an HR manager.
Employee: %s (%s, %.0f years of experience)
Matched skills: %s
Skill match score: %.1f/100, team affinity: %.1f/100, overall: %.1f/100
Domain experience bonus applied: %t
Respond with plain prose only.`,
		c.Name, orDefault(c.Role, "developer"), c.YearsOfExperience,
		strings.Join(c.MatchedSkills, ", "),
		c.SkillMatchScore, c.AffinityScore, c.OverallScore,
		c.DomainBonus,
	)

	return g.generate(ctx, prompt, func() string { return g.fallback.ExplainStaffing(ctx, c) })
}

func (g *Gemini) ExplainDomain(ctx context.Context, c expansion.Candidate) string {
	prompt := fmt.Sprintf(
		`Write 3-4 sentences assessing whether the organization should expand into a new business domain.
Domain: %s (feasibility %.1f/100)
Held technologies: %s
Missing technologies: %s
Transferable employees: %d
Market: %.1f%% growth, demand score %.0f
Cover current strengths, entry barriers, and a recommended strategy. Plain prose only.`,
		c.DomainName, c.FeasibilityScore,
		strings.Join(c.MatchedSkills, ", "),
		strings.Join(c.SkillGap, ", "),
		len(c.Transferable),
		c.Market.GrowthRate, c.Market.DemandScore,
	)

	return g.generate(ctx, prompt, func() string { return g.fallback.ExplainDomain(ctx, c) })
}

func (g *Gemini) generate(ctx context.Context, prompt string, fallback func() string) string {
	if g.generator == nil {
		return fallback()
	}

	genCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	out, err := g.generator.GenerateContent(genCtx, prompt)
	if err != nil {
		g.logger.Warn("llm explanation failed, using template", zap.Error(err))
		return fallback()
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return fallback()
	}
	return out
}
