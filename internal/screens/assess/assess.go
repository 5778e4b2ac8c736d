// Package assess implements the interactive assessment screen: a profile
// form with six sliders, an analyzing phase, and the risk report.
package assess

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/edurisk/internal/guidance"
	"github.com/abhisek/edurisk/internal/predict"
	"github.com/abhisek/edurisk/internal/risk"
	"github.com/abhisek/edurisk/internal/scenario"
	"github.com/abhisek/edurisk/internal/ui/components"
	"github.com/abhisek/edurisk/internal/ui/layout"
)

type phase int

const (
	phaseForm phase = iota
	phaseAnalyzing
	phaseReport
)

// slider indices, in form order
const (
	fieldAttendance = iota
	fieldAssignment
	fieldQuiz
	fieldMidterm
	fieldStudyHours
	fieldGPA
	fieldAnalyze // the analyze button slot
	fieldCount
)

// Screen is the assessment screen model.
type Screen struct {
	predictSvc  *predict.Service
	guidanceSvc *guidance.Service

	phase   phase
	sliders [6]components.Slider
	focus   int

	spinnerFrame int

	id         string
	prediction *predict.Prediction
	weakAreas  []risk.WeakArea
	plan       guidance.Plan
	errMsg     string
}

// New creates the assessment screen preloaded with the default profile.
func New(predictSvc *predict.Service, guidanceSvc *guidance.Service) *Screen {
	s := &Screen{
		predictSvc:  predictSvc,
		guidanceSvc: guidanceSvc,
	}
	s.loadMetrics(scenario.Default().Metrics)
	s.sliders[0].Focused = true
	return s
}

func (s *Screen) loadMetrics(m risk.StudentMetrics) {
	s.sliders = [6]components.Slider{
		components.NewSlider("Attendance", m.AttendancePct, 0, 100, 1, "%", false),
		components.NewSlider("Assignment Score", m.AssignmentScore, 0, 100, 1, "", false),
		components.NewSlider("Quiz Score", m.QuizScore, 0, 100, 1, "", false),
		components.NewSlider("Midterm Score", m.MidtermScore, 0, 100, 1, "", false),
		components.NewSlider("Study Hours/Week", m.StudyHoursPerWeek, 0, 40, 1, "h", false),
		components.NewSlider("Previous GPA", m.PreviousGPA, 0, 10, 0.1, "", true),
	}
	for i := range s.sliders {
		s.sliders[i].Focused = s.focus == i
	}
}

// Metrics assembles the current form values.
func (s *Screen) Metrics() risk.StudentMetrics {
	return risk.StudentMetrics{
		AttendancePct:     s.sliders[fieldAttendance].Value,
		AssignmentScore:   s.sliders[fieldAssignment].Value,
		QuizScore:         s.sliders[fieldQuiz].Value,
		MidtermScore:      s.sliders[fieldMidterm].Value,
		StudyHoursPerWeek: s.sliders[fieldStudyHours].Value,
		PreviousGPA:       s.sliders[fieldGPA].Value,
	}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	switch s.phase {
	case phaseAnalyzing:
		return "Analyzing"
	case phaseReport:
		return "Risk Report"
	default:
		return "Student Profile"
	}
}

// KeyHints returns the footer hints for the current phase.
func (s *Screen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseAnalyzing:
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	case phaseReport:
		return []layout.KeyHint{
			{Key: "Enter", Description: "New assessment"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	default:
		if s.editingSlider() {
			return []layout.KeyHint{
				{Key: "Enter", Description: "Set value"},
				{Key: "Esc", Description: "Cancel"},
			}
		}
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Field"},
			{Key: "←→", Description: "Adjust"},
			{Key: "Enter", Description: "Edit / Analyze"},
			{Key: "1-3", Description: "Scenario"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
}

func (s *Screen) editingSlider() bool {
	for i := range s.sliders {
		if s.sliders[i].Editing() {
			return true
		}
	}
	return false
}

func (s *Screen) Update(msg tea.Msg) (*Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case analysisDoneMsg:
		return s.handleAnalysisDone(msg)
	case spinnerTickMsg:
		if s.phase != phaseAnalyzing {
			return s, nil
		}
		s.spinnerFrame++
		return s, spinnerTick()
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (*Screen, tea.Cmd) {
	switch s.phase {
	case phaseAnalyzing:
		return s, nil

	case phaseReport:
		switch msg.String() {
		case "enter", "esc", "n":
			s.phase = phaseForm
			s.prediction = nil
			s.errMsg = ""
		}
		return s, nil
	}

	// Form phase. An editing slider consumes everything first.
	if s.editingSlider() {
		var cmd tea.Cmd
		s.sliders[s.focus], cmd = s.sliders[s.focus].Update(msg)
		return s, cmd
	}

	switch msg.String() {
	case "up", "k":
		s.setFocus(s.focus - 1)
		return s, nil
	case "down", "j", "tab":
		s.setFocus(s.focus + 1)
		return s, nil
	case "1", "2", "3":
		names := []string{"struggling", "borderline", "thriving"}
		if sc, err := scenario.ByName(names[int(msg.String()[0]-'1')]); err == nil {
			s.loadMetrics(sc.Metrics)
		}
		return s, nil
	case "enter":
		if s.focus == fieldAnalyze {
			return s.startAnalysis()
		}
	}

	if s.focus < len(s.sliders) {
		var cmd tea.Cmd
		s.sliders[s.focus], cmd = s.sliders[s.focus].Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) setFocus(f int) {
	if f < 0 {
		f = fieldCount - 1
	}
	if f >= fieldCount {
		f = 0
	}
	s.focus = f
	for i := range s.sliders {
		s.sliders[i].Focused = i == f
	}
}

func (s *Screen) startAnalysis() (*Screen, tea.Cmd) {
	s.phase = phaseAnalyzing
	s.spinnerFrame = 0
	m := s.Metrics()
	predictSvc := s.predictSvc
	guidanceSvc := s.guidanceSvc

	analyze := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		p, err := predictSvc.Predict(ctx, m)
		if err != nil {
			return analysisDoneMsg{Err: err}
		}
		weak := risk.DetectWeakAreas(m)
		plan := guidanceSvc.Plan(ctx, p.Assessment.Level, weak)
		return analysisDoneMsg{
			ID:         uuid.NewString(),
			Prediction: p,
			Plan:       plan,
		}
	}
	return s, tea.Batch(analyze, spinnerTick())
}

func (s *Screen) handleAnalysisDone(msg analysisDoneMsg) (*Screen, tea.Cmd) {
	if msg.Err != nil {
		s.phase = phaseForm
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.phase = phaseReport
	s.errMsg = ""
	s.id = msg.ID
	s.prediction = msg.Prediction
	s.weakAreas = risk.DetectWeakAreas(s.Metrics())
	s.plan = msg.Plan
	return s, nil
}

func spinnerTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
