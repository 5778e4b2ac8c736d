package assess

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/edurisk/internal/guidance"
	"github.com/abhisek/edurisk/internal/predict"
	"github.com/abhisek/edurisk/internal/risk"
	"github.com/abhisek/edurisk/internal/ui/components"
	"github.com/abhisek/edurisk/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// View renders the screen for the current phase.
func (s *Screen) View(width, height int) string {
	switch s.phase {
	case phaseAnalyzing:
		return s.renderAnalyzing(width, height)
	case phaseReport:
		return s.renderReport(width, height)
	default:
		return s.renderForm(width, height)
	}
}

func (s *Screen) renderForm(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Student Profile"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Set the six metrics, then analyze"))
	b.WriteString("\n\n")

	for i := range s.sliders {
		b.WriteString("    ")
		b.WriteString(s.sliders[i].View())
		b.WriteString("\n")
	}

	b.WriteString("\n    ")
	analyze := components.NewButton("Analyze Risk", s.focus == fieldAnalyze, nil)
	b.WriteString(analyze.View())
	b.WriteString("\n")

	if s.errMsg != "" {
		b.WriteString("\n    ")
		b.WriteString(theme.Critical.Render("Error: " + s.errMsg))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *Screen) renderAnalyzing(width, height int) string {
	frame := spinnerFrames[s.spinnerFrame%len(spinnerFrames)]
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(frame + "  Analyzing academic risk...")
}

func (s *Screen) renderReport(width, height int) string {
	p := s.prediction
	if p == nil {
		return ""
	}
	a := p.Assessment

	var b strings.Builder

	// Risk banner.
	banner := lipgloss.NewStyle().
		Width(width-8).
		Align(lipgloss.Center).
		Background(theme.LevelColor(a.Level)).
		Foreground(theme.Text).
		Bold(true).
		Padding(0, 1).
		Render(fmt.Sprintf("%s RISK  ·  score %.1f  ·  confidence %.0f%%",
			strings.ToUpper(string(a.Level)), a.WeightedScore, a.Confidence*100))
	b.WriteString("\n    " + banner + "\n\n")

	// Metric gauges.
	m := s.Metrics()
	gauges := []struct {
		label string
		value float64
	}{
		{"Attendance", m.AttendancePct},
		{"Assignments", m.AssignmentScore},
		{"Quizzes", m.QuizScore},
		{"Midterm", m.MidtermScore},
		{"Study (norm)", risk.NormalizeStudyHours(m.StudyHoursPerWeek)},
		{"GPA (norm)", risk.NormalizeGPA(m.PreviousGPA)},
	}
	gaugeWidth := width - 12
	if gaugeWidth > 60 {
		gaugeWidth = 60
	}
	for _, g := range gauges {
		b.WriteString("    ")
		b.WriteString(components.NewGauge(fmt.Sprintf("%-13s", g.label), g.value, true, gaugeWidth).View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Weak areas.
	if len(s.weakAreas) > 0 {
		b.WriteString("    " + theme.Warning.Render("Weak areas") + "\n")
		for _, w := range risk.CriticalFirst(s.weakAreas) {
			style := theme.Body
			marker := "•"
			if w.Severity == risk.SeverityCritical {
				style = theme.Critical
				marker = "‼"
			}
			b.WriteString("      " + style.Render(fmt.Sprintf("%s %s: %.1f (target %.1f)", marker, w.Label, w.Value, w.Target)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Guidance plan.
	b.WriteString("    " + theme.Selected.Render(s.plan.Title) + "\n")
	for _, line := range strings.Split(s.plan.Body, "\n") {
		b.WriteString("      " + theme.Body.Render(line) + "\n")
	}

	// Provenance line.
	b.WriteString("\n    " + theme.Hint.Render(s.provenanceLine()) + "\n")

	return b.String()
}

func (s *Screen) provenanceLine() string {
	p := s.prediction
	parts := []string{fmt.Sprintf("assessment %s", s.id)}

	switch p.Source {
	case predict.SourceRemote:
		parts = append(parts, "prediction: remote model")
	case predict.SourceFallback:
		parts = append(parts, "prediction: local (remote unavailable)")
	default:
		parts = append(parts, "prediction: local")
	}
	if s.plan.Source == guidance.SourceFallback {
		parts = append(parts, "guidance: template (remote unavailable)")
	}
	if p.Reasoning != "" {
		parts = append(parts, p.Reasoning)
	}
	return strings.Join(parts, "  ·  ")
}
