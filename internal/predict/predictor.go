// Package predict decides a student's risk level, either locally through
// the deterministic scorer or through a remote model, with the local scorer
// as the guaranteed fallback.
package predict

import (
	"context"

	"github.com/abhisek/edurisk/internal/risk"
)

// Source identifies which path produced a prediction.
type Source string

const (
	SourceLocal    Source = "local"
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback" // remote was configured but failed
)

// Prediction is a risk assessment plus provenance.
type Prediction struct {
	Assessment risk.Assessment
	Source     Source
	Reasoning  string // remote model rationale; empty for local decisions
	RemoteErr  error  // the remote failure behind a fallback, for reporting
}

// Predictor classifies one student record.
type Predictor interface {
	Predict(ctx context.Context, m risk.StudentMetrics) (*Prediction, error)
}

// Local is the deterministic predictor backed by risk.Score. It never
// fails for validated input.
type Local struct{}

// NewLocal creates the deterministic local predictor.
func NewLocal() *Local {
	return &Local{}
}

func (l *Local) Predict(_ context.Context, m risk.StudentMetrics) (*Prediction, error) {
	return &Prediction{
		Assessment: risk.Score(m),
		Source:     SourceLocal,
	}, nil
}
