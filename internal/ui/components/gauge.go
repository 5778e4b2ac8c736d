package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/edurisk/internal/ui/theme"
)

// Gauge displays a 0-100 metric as a horizontal bar colored by the report
// bands (green at or above 75, amber at or above 60, red below).
type Gauge struct {
	Label     string
	Value     float64 // 0-100
	ShowValue bool
	Width     int
}

// NewGauge creates a new metric gauge.
func NewGauge(label string, value float64, showValue bool, width int) Gauge {
	return Gauge{
		Label:     label,
		Value:     value,
		ShowValue: showValue,
		Width:     width,
	}
}

// View renders the gauge.
func (g Gauge) View() string {
	var result string

	if g.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(g.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	valueWidth := 0
	if g.ShowValue {
		valueWidth = 7 // "  100.0"
	}

	barWidth := g.Width - labelWidth - valueWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * g.Value / 100)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	filledStr := lipgloss.NewStyle().
		Background(theme.GaugeColor(g.Value)).
		Render(strings.Repeat(" ", filled))

	emptyStr := lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	result += filledStr + emptyStr

	if g.ShowValue {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %5.1f", g.Value))
	}

	return result
}
