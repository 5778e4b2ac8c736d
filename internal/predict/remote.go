package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/abhisek/edurisk/internal/llm"
	"github.com/abhisek/edurisk/internal/risk"
)

// RemoteConfig holds configuration for the remote predictor.
type RemoteConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultRemoteConfig returns sensible defaults.
func DefaultRemoteConfig() RemoteConfig {
	return RemoteConfig{
		MaxTokens:   256,
		Temperature: 0.2,
	}
}

// Remote classifies students through an LLM provider. The weighted score is
// always computed locally; only the level and confidence come from the model,
// and critical-metric overrides still take precedence over the model's answer.
type Remote struct {
	provider llm.Provider
	cfg      RemoteConfig
}

// NewRemote creates an LLM-backed predictor.
func NewRemote(provider llm.Provider, cfg RemoteConfig) *Remote {
	return &Remote{provider: provider, cfg: cfg}
}

// predictionOutput is the raw LLM response.
type predictionOutput struct {
	RiskLevel  string  `json:"risk_level"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

func (r *Remote) Predict(ctx context.Context, m risk.StudentMetrics) (*Prediction, error) {
	ctx = llm.WithPurpose(ctx, "risk-predict")

	userMsg, err := buildPredictMessage(m)
	if err != nil {
		return nil, fmt.Errorf("build prediction prompt: %w", err)
	}

	resp, err := r.provider.Generate(ctx, llm.Request{
		System: predictSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      PredictionSchema,
		MaxTokens:   r.cfg.MaxTokens,
		Temperature: r.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("remote prediction failed: %w", err)
	}

	var raw predictionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse prediction response: %w", err)
	}

	level := risk.Level(raw.RiskLevel)
	if !level.Valid() {
		return nil, fmt.Errorf("remote returned unknown risk level %q", raw.RiskLevel)
	}
	if raw.Confidence < 0 || raw.Confidence > 1 {
		return nil, fmt.Errorf("remote returned confidence %v outside [0,1]", raw.Confidence)
	}

	assessment := risk.Assessment{
		Level:         level,
		Confidence:    raw.Confidence,
		WeightedScore: risk.WeightedScore(m, risk.DefaultWeights()),
		RuleName:      "remote-model",
	}

	// Critical-metric overrides are non-negotiable: a student below any hard
	// cutoff is High risk no matter what the model says.
	if name := risk.RunOverrides(risk.DefaultOverrides(), m); name != "" {
		assessment.Level = risk.LevelHigh
		assessment.Confidence = risk.OverrideConfidence
		assessment.RuleName = name
	}

	return &Prediction{
		Assessment: assessment,
		Source:     SourceRemote,
		Reasoning:  raw.Reasoning,
	}, nil
}

const predictSystemPrompt = `You are an academic early-warning system. Given one student's performance metrics, classify their academic risk as High, Medium, or Low.

Guidance:
- High risk: the student is likely to fail or drop out without intervention.
- Medium risk: the student is passing but trending toward trouble in one or more areas.
- Low risk: the student is performing well across the board.
- Provide a confidence score (0.0–1.0) for your classification.
- Keep reasoning to one sentence.`

var predictUserTemplate = template.Must(template.New("predict").Parse(`Attendance: {{printf "%.1f" .AttendancePct}}%
Assignment score: {{printf "%.1f" .AssignmentScore}}/100
Quiz score: {{printf "%.1f" .QuizScore}}/100
Midterm score: {{printf "%.1f" .MidtermScore}}/100
Study hours per week: {{printf "%.1f" .StudyHoursPerWeek}}
Previous GPA: {{printf "%.1f" .PreviousGPA}}/10`))

func buildPredictMessage(m risk.StudentMetrics) (string, error) {
	var buf bytes.Buffer
	if err := predictUserTemplate.Execute(&buf, m); err != nil {
		return "", err
	}
	return buf.String(), nil
}
