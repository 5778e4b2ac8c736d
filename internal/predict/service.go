package predict

import (
	"context"

	"github.com/abhisek/edurisk/internal/llm"
	"github.com/abhisek/edurisk/internal/risk"
)

// Service coordinates risk prediction. It prefers the remote predictor when
// one is configured and falls back to the local scorer on any remote failure,
// so Predict never fails for validated input.
type Service struct {
	local  *Local
	remote *Remote
}

// NewService creates a prediction service. If provider is nil, only local
// scoring is available.
func NewService(provider llm.Provider) *Service {
	s := &Service{local: NewLocal()}
	if provider != nil {
		s.remote = NewRemote(provider, DefaultRemoteConfig())
	}
	return s
}

// RemoteEnabled reports whether a remote predictor is configured.
func (s *Service) RemoteEnabled() bool {
	return s.remote != nil
}

// Predict validates the metrics and classifies the student. Invalid metrics
// are the only error path; remote failures degrade to the local scorer with
// Source set to SourceFallback and the remote error carried for reporting.
func (s *Service) Predict(ctx context.Context, m risk.StudentMetrics) (*Prediction, error) {
	if err := risk.Validate(m); err != nil {
		return nil, err
	}

	if s.remote == nil {
		return s.local.Predict(ctx, m)
	}

	p, err := s.remote.Predict(ctx, m)
	if err == nil {
		return p, nil
	}

	p, _ = s.local.Predict(ctx, m)
	p.Source = SourceFallback
	p.RemoteErr = err
	return p, nil
}
