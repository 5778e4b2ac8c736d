package guidance

import (
	"context"

	"github.com/abhisek/edurisk/internal/llm"
	"github.com/abhisek/edurisk/internal/risk"
)

// Service coordinates plan delivery. It prefers the remote generator when
// one is configured and falls back to the static templates on any remote
// failure, so Plan always returns a usable plan.
type Service struct {
	generator *Generator
}

// NewService creates a guidance service. If provider is nil, only template
// plans are available.
func NewService(provider llm.Provider) *Service {
	s := &Service{}
	if provider != nil {
		s.generator = NewGenerator(provider, DefaultConfig())
	}
	return s
}

// RemoteEnabled reports whether a remote generator is configured.
func (s *Service) RemoteEnabled() bool {
	return s.generator != nil
}

// Plan returns a guidance plan for the given level and weak areas. Remote
// failures degrade to the template plan with Source set to SourceFallback
// and the remote error carried for reporting.
func (s *Service) Plan(ctx context.Context, level risk.Level, weakAreas []risk.WeakArea) Plan {
	if s.generator == nil {
		return Select(level, weakAreas)
	}

	p, err := s.generator.Generate(ctx, level, weakAreas)
	if err == nil {
		return *p
	}

	fallback := Select(level, weakAreas)
	fallback.Source = SourceFallback
	fallback.RemoteErr = err
	return fallback
}
