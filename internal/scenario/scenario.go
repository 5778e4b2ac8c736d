// Package scenario holds built-in demo student profiles. Presets are plain
// values handed to the caller; applying one never touches shared state.
package scenario

import (
	"fmt"
	"sort"

	"github.com/abhisek/edurisk/internal/risk"
)

// Scenario is a named, immutable demo profile.
type Scenario struct {
	Name        string
	Description string
	Metrics     risk.StudentMetrics
}

var scenarios = map[string]Scenario{
	"struggling": {
		Name:        "struggling",
		Description: "Multiple critical metrics, clear high risk",
		Metrics: risk.StudentMetrics{
			AttendancePct:     45,
			AssignmentScore:   38,
			QuizScore:         42,
			MidtermScore:      35,
			StudyHoursPerWeek: 4,
			PreviousGPA:       3.8,
		},
	},
	"borderline": {
		Name:        "borderline",
		Description: "Metrics at or just above their improvement targets",
		Metrics: risk.StudentMetrics{
			AttendancePct:     75,
			AssignmentScore:   65,
			QuizScore:         60,
			MidtermScore:      62,
			StudyHoursPerWeek: 10,
			PreviousGPA:       6.5,
		},
	},
	"thriving": {
		Name:        "thriving",
		Description: "Strong performer across the board",
		Metrics: risk.StudentMetrics{
			AttendancePct:     98,
			AssignmentScore:   92,
			QuizScore:         88,
			MidtermScore:      94,
			StudyHoursPerWeek: 22,
			PreviousGPA:       9.1,
		},
	},
}

// Default is the profile loaded into a fresh assessment form.
func Default() Scenario {
	return scenarios["borderline"]
}

// ByName looks up a scenario by name.
func ByName(name string) (Scenario, error) {
	s, ok := scenarios[name]
	if !ok {
		return Scenario{}, fmt.Errorf("unknown scenario %q (have: %s)", name, nameList())
	}
	return s, nil
}

// All returns every scenario sorted by name.
func All() []Scenario {
	out := make([]Scenario, 0, len(scenarios))
	for _, s := range scenarios {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func nameList() string {
	names := ""
	for i, s := range All() {
		if i > 0 {
			names += ", "
		}
		names += s.Name
	}
	return names
}
