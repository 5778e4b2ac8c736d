package guidance

import (
	"strings"
	"testing"

	"github.com/abhisek/edurisk/internal/risk"
)

func sampleWeakAreas() []risk.WeakArea {
	return []risk.WeakArea{
		{Metric: "attendance_pct", Label: "Attendance", Value: 70, Target: 75, Unit: "%", Severity: risk.SeverityWeak},
		{Metric: "quiz_score", Label: "Quizzes", Value: 42, Target: 60, Unit: "%", Severity: risk.SeverityCritical},
		{Metric: "previous_gpa", Label: "GPA", Value: 5.5, Target: 6.0, Unit: "/10", Severity: risk.SeverityWeak},
	}
}

func TestSelect_HighPlan(t *testing.T) {
	p := Select(risk.LevelHigh, sampleWeakAreas())

	if p.Title != "Urgent Recovery Plan" {
		t.Errorf("title = %q", p.Title)
	}
	if p.Source != SourceTemplate {
		t.Errorf("source = %q, want %q", p.Source, SourceTemplate)
	}
	for _, want := range []string{
		"Meet academic advisor immediately",
		"Mandatory tutoring",
		"Quizzes: 42% (target 60%) — critical",
		"GPA: 5.5/10 (target 6.0/10)",
	} {
		if !strings.Contains(p.Body, want) {
			t.Errorf("body missing %q:\n%s", want, p.Body)
		}
	}
}

func TestSelect_CriticalAreasListedFirst(t *testing.T) {
	p := Select(risk.LevelMedium, sampleWeakAreas())

	quiz := strings.Index(p.Body, "Quizzes")
	att := strings.Index(p.Body, "Attendance")
	if quiz == -1 || att == -1 {
		t.Fatalf("body missing weak areas:\n%s", p.Body)
	}
	if quiz > att {
		t.Errorf("critical Quizzes entry should precede weak Attendance entry:\n%s", p.Body)
	}
}

func TestSelect_MediumPlan(t *testing.T) {
	p := Select(risk.LevelMedium, nil)

	if p.Title != "Improvement Plan" {
		t.Errorf("title = %q", p.Title)
	}
	if !strings.Contains(p.Body, NoWeakAreasLine) {
		t.Errorf("empty weak areas should render the placeholder line:\n%s", p.Body)
	}
	if !strings.Contains(p.Body, "Weekly progress review") {
		t.Errorf("body missing action item:\n%s", p.Body)
	}
}

func TestSelect_LowPlanHasNoWeakSlot(t *testing.T) {
	// The excellence plan never lists weak areas, even if some exist.
	p := Select(risk.LevelLow, sampleWeakAreas())

	if p.Title != "Excellence Plan" {
		t.Errorf("title = %q", p.Title)
	}
	if strings.Contains(p.Body, "Quizzes") {
		t.Errorf("low-risk plan should not list weak areas:\n%s", p.Body)
	}
	if !strings.Contains(p.Body, "Peer mentoring") {
		t.Errorf("body missing action item:\n%s", p.Body)
	}
}

func TestSelect_Deterministic(t *testing.T) {
	areas := sampleWeakAreas()
	first := Select(risk.LevelHigh, areas)
	for range 10 {
		if got := Select(risk.LevelHigh, areas); got.Body != first.Body || got.Title != first.Title {
			t.Fatal("Select is not byte-identical for identical input")
		}
	}
}

func TestSelect_UnknownLevelFallsBackToHigh(t *testing.T) {
	p := Select(risk.Level("Bogus"), nil)
	if p.Title != "Urgent Recovery Plan" {
		t.Errorf("title = %q, want the high-risk plan", p.Title)
	}
}
