package guidance

import "github.com/abhisek/edurisk/internal/llm"

// PlanSchema defines the JSON schema for LLM-generated guidance plans.
var PlanSchema = &llm.Schema{
	Name:        "guidance-plan",
	Description: "A personalized study plan for a student at a given academic risk level",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short plan title, e.g. 'Urgent Recovery Plan'",
			},
			"actions": map[string]any{
				"type":        "array",
				"minItems":    3,
				"maxItems":    6,
				"items":       map[string]any{"type": "string"},
				"description": "Concrete action items, each one short imperative sentence",
			},
		},
		"required":             []any{"title", "actions"},
		"additionalProperties": false,
	},
}
