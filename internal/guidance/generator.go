package guidance

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/edurisk/internal/llm"
	"github.com/abhisek/edurisk/internal/risk"
)

// Generator produces guidance plans through an LLM provider.
type Generator struct {
	provider llm.Provider
	cfg      Config
}

// NewGenerator creates an LLM-backed plan generator.
func NewGenerator(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, cfg: cfg}
}

// planOutput is the raw LLM response.
type planOutput struct {
	Title   string   `json:"title"`
	Actions []string `json:"actions"`
}

// Generate builds a personalized plan for the given level and weak areas.
func (g *Generator) Generate(ctx context.Context, level risk.Level, weakAreas []risk.WeakArea) (*Plan, error) {
	ctx = llm.WithPurpose(ctx, "guidance")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: planSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPlanUserMessage(level, weakAreas)},
		},
		Schema:      PlanSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("plan generation: %w", err)
	}

	var out planOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse plan response: %w", err)
	}
	if out.Title == "" || len(out.Actions) == 0 {
		return nil, fmt.Errorf("plan response missing title or actions")
	}

	var b strings.Builder
	for i, a := range out.Actions {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("• ")
		b.WriteString(a)
	}

	return &Plan{
		Title:  out.Title,
		Body:   b.String(),
		Source: SourceRemote,
	}, nil
}
