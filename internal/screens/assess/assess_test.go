package assess

import (
	"strings"
	"testing"

	"github.com/abhisek/edurisk/internal/guidance"
	"github.com/abhisek/edurisk/internal/predict"
	"github.com/abhisek/edurisk/internal/risk"
	"github.com/abhisek/edurisk/internal/scenario"
)

func newTestScreen() *Screen {
	return New(predict.NewService(nil), guidance.NewService(nil))
}

func TestNew_LoadsDefaultProfile(t *testing.T) {
	s := newTestScreen()

	want := scenario.Default().Metrics
	if got := s.Metrics(); got != want {
		t.Errorf("initial metrics = %+v, want %+v", got, want)
	}
	if s.phase != phaseForm {
		t.Errorf("initial phase = %d, want form", s.phase)
	}
	if !s.sliders[fieldAttendance].Focused {
		t.Error("first slider should start focused")
	}
}

func TestFocusWrapsAroundForm(t *testing.T) {
	s := newTestScreen()

	s.setFocus(fieldCount) // past the analyze button
	if s.focus != 0 {
		t.Errorf("focus = %d, want wrap to 0", s.focus)
	}
	s.setFocus(-1)
	if s.focus != fieldAnalyze {
		t.Errorf("focus = %d, want wrap to analyze button", s.focus)
	}
	for i := range s.sliders {
		if s.sliders[i].Focused {
			t.Errorf("slider %d still focused with button selected", i)
		}
	}
}

func TestAnalysisDone_ShowsReport(t *testing.T) {
	s := newTestScreen()
	sc, _ := scenario.ByName("struggling")
	s.loadMetrics(sc.Metrics)

	p, err := predict.NewService(nil).Predict(t.Context(), sc.Metrics)
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	plan := guidance.Select(p.Assessment.Level, risk.DetectWeakAreas(sc.Metrics))

	s, _ = s.Update(analysisDoneMsg{ID: "abc-123", Prediction: p, Plan: plan})
	if s.phase != phaseReport {
		t.Fatalf("phase = %d, want report", s.phase)
	}

	view := s.View(100, 40)
	for _, want := range []string{"HIGH RISK", "Urgent Recovery Plan", "abc-123", "Weak areas"} {
		if !strings.Contains(view, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestAnalysisDone_ErrorReturnsToForm(t *testing.T) {
	s := newTestScreen()
	s.phase = phaseAnalyzing

	s, _ = s.Update(analysisDoneMsg{Err: errForTest("bad input")})
	if s.phase != phaseForm {
		t.Errorf("phase = %d, want form after error", s.phase)
	}
	if !strings.Contains(s.View(100, 40), "bad input") {
		t.Error("form should surface the error message")
	}
}

type errForTest string

func (e errForTest) Error() string { return string(e) }

func TestReportTitlePerPhase(t *testing.T) {
	s := newTestScreen()
	if s.Title() != "Student Profile" {
		t.Errorf("form title = %q", s.Title())
	}
	s.phase = phaseAnalyzing
	if s.Title() != "Analyzing" {
		t.Errorf("analyzing title = %q", s.Title())
	}
	s.phase = phaseReport
	if s.Title() != "Risk Report" {
		t.Errorf("report title = %q", s.Title())
	}
}
