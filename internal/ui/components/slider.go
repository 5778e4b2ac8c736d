package components

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/edurisk/internal/ui/theme"
)

// Slider is a bounded numeric input. Arrow keys nudge the value by Step;
// pressing enter opens a text field for direct entry.
type Slider struct {
	Label   string
	Value   float64
	Min     float64
	Max     float64
	Step    float64
	Unit    string
	Decimal bool // render with one decimal place (GPA); otherwise whole numbers
	Focused bool

	editing bool
	input   textinput.Model
}

// NewSlider creates a slider over [min, max].
func NewSlider(label string, value, min, max, step float64, unit string, decimal bool) Slider {
	ti := textinput.New()
	ti.CharLimit = 6
	return Slider{
		Label:   label,
		Value:   value,
		Min:     min,
		Max:     max,
		Step:    step,
		Unit:    unit,
		Decimal: decimal,
		input:   ti,
	}
}

// Editing reports whether the slider is in direct-entry mode.
func (s Slider) Editing() bool {
	return s.editing
}

// Update handles key events for a focused slider.
func (s Slider) Update(msg tea.Msg) (Slider, tea.Cmd) {
	if !s.Focused {
		return s, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.editing {
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	if s.editing {
		switch kmsg.String() {
		case "enter":
			s.commitInput()
			return s, nil
		case "esc":
			s.editing = false
			s.input.Blur()
			return s, nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	switch kmsg.String() {
	case "left", "h":
		s.Value = s.clamp(s.Value - s.Step)
	case "right", "l":
		s.Value = s.clamp(s.Value + s.Step)
	case "enter":
		s.editing = true
		s.input.SetValue(s.formatValue())
		return s, s.input.Focus()
	}
	return s, nil
}

func (s *Slider) commitInput() {
	s.editing = false
	s.input.Blur()
	v, err := strconv.ParseFloat(strings.TrimSpace(s.input.Value()), 64)
	if err != nil {
		return // keep the previous value on bad input
	}
	s.Value = s.clamp(v)
}

func (s Slider) clamp(v float64) float64 {
	if v < s.Min {
		return s.Min
	}
	if v > s.Max {
		return s.Max
	}
	return v
}

func (s Slider) formatValue() string {
	if s.Decimal {
		return fmt.Sprintf("%.1f", s.Value)
	}
	return fmt.Sprintf("%.0f", s.Value)
}

// View renders the slider as a track with a value readout.
func (s Slider) View() string {
	labelStyle := theme.Unselected
	if s.Focused {
		labelStyle = theme.Selected
	}
	label := labelStyle.Render(fmt.Sprintf("%-18s", s.Label))

	if s.editing {
		return label + s.input.View() + theme.Hint.Render("  enter to set, esc to cancel")
	}

	const trackWidth = 24
	frac := 0.0
	if s.Max > s.Min {
		frac = (s.Value - s.Min) / (s.Max - s.Min)
	}
	filled := int(frac * trackWidth)
	if filled > trackWidth {
		filled = trackWidth
	}
	if filled < 0 {
		filled = 0
	}

	track := lipgloss.NewStyle().Foreground(theme.Primary).Render(strings.Repeat("━", filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", trackWidth-filled))

	readout := lipgloss.NewStyle().Foreground(theme.Text).Render(
		fmt.Sprintf(" %6s%s", s.formatValue(), s.Unit))

	return label + track + readout
}
