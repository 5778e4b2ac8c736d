// Package guidance turns a risk assessment into an actionable study plan,
// either from static templates or from an LLM generator with the templates
// as the guaranteed fallback.
package guidance

// Source identifies which path produced a plan.
type Source string

const (
	SourceTemplate Source = "template"
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback" // remote was configured but failed
)

// Plan is a rendered guidance plan plus provenance.
type Plan struct {
	Title     string
	Body      string // markdown-ish bulleted text, ready to display
	Source    Source
	RemoteErr error // the remote failure behind a fallback, for reporting
}

// Config holds remote plan generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for plan generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.5,
	}
}
