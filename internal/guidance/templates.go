package guidance

import (
	"fmt"
	"strings"

	"github.com/abhisek/edurisk/internal/risk"
)

// NoWeakAreasLine is substituted when a plan slot has no weak areas to list.
const NoWeakAreasLine = "• No major weak areas"

// planTemplate is one static guidance plan. Plans with weakSlot render the
// weak-area bullet list above the action items.
type planTemplate struct {
	title    string
	weakSlot bool
	actions  []string
}

var planTemplates = map[risk.Level]planTemplate{
	risk.LevelHigh: {
		title:    "Urgent Recovery Plan",
		weakSlot: true,
		actions: []string{
			"Meet academic advisor immediately",
			"5–6 hours focused study daily",
			"Mandatory tutoring",
			"Strict attendance tracking",
		},
	},
	risk.LevelMedium: {
		title:    "Improvement Plan",
		weakSlot: true,
		actions: []string{
			"3–4 hours structured study",
			"Focus weakest subject daily",
			"Weekly progress review",
		},
	},
	risk.LevelLow: {
		title: "Excellence Plan",
		actions: []string{
			"Maintain consistency",
			"Peer mentoring",
			"Advanced learning projects",
		},
	},
}

// Select renders the static plan for the given level. Pure and
// deterministic: identical input yields byte-identical output. Weak areas
// render critical-first in the plan's slot; an empty list substitutes the
// fixed no-weak-areas line. Low-risk plans carry no weak-area slot.
func Select(level risk.Level, weakAreas []risk.WeakArea) Plan {
	tpl, ok := planTemplates[level]
	if !ok {
		tpl = planTemplates[risk.LevelHigh]
	}

	var b strings.Builder
	if tpl.weakSlot {
		b.WriteString(renderWeakAreas(weakAreas))
		b.WriteString("\n\n")
	}
	for i, a := range tpl.actions {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("• ")
		b.WriteString(a)
	}

	return Plan{
		Title:  tpl.title,
		Body:   b.String(),
		Source: SourceTemplate,
	}
}

func renderWeakAreas(areas []risk.WeakArea) string {
	if len(areas) == 0 {
		return NoWeakAreasLine
	}
	var b strings.Builder
	for i, a := range risk.CriticalFirst(areas) {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("• %s: %s (target %s)", a.Label, formatValue(a.Value, a.Unit), formatValue(a.Target, a.Unit)))
		if a.Severity == risk.SeverityCritical {
			b.WriteString(" — critical")
		}
	}
	return b.String()
}

func formatValue(v float64, unit string) string {
	switch unit {
	case "%":
		return fmt.Sprintf("%.0f%%", v)
	case "/10":
		return fmt.Sprintf("%.1f/10", v)
	default:
		return fmt.Sprintf("%.0f %s", v, unit)
	}
}
