package predict

import "github.com/abhisek/edurisk/internal/llm"

// PredictionSchema defines the JSON schema for remote risk classification
// responses.
var PredictionSchema = &llm.Schema{
	Name:        "risk-prediction",
	Description: "Academic risk classification for a single student record",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"risk_level": map[string]any{
				"type":        "string",
				"enum":        []any{"High", "Medium", "Low"},
				"description": "The predicted academic risk level",
			},
			"confidence": map[string]any{
				"type":        "number",
				"minimum":     0.0,
				"maximum":     1.0,
				"description": "Confidence score (0.0–1.0) for the predicted level",
			},
			"reasoning": map[string]any{
				"type":        "string",
				"description": "Brief one-sentence explanation of the classification",
			},
		},
		"required":             []any{"risk_level", "confidence", "reasoning"},
		"additionalProperties": false,
	},
}
