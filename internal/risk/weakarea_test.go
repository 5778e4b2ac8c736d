package risk

import "testing"

func TestDetectWeakAreas_FixedOrder(t *testing.T) {
	// Everything weak → entries come back in metric order.
	m := StudentMetrics{
		AttendancePct:     10,
		AssignmentScore:   10,
		QuizScore:         10,
		MidtermScore:      10,
		StudyHoursPerWeek: 1,
		PreviousGPA:       1,
	}
	areas := DetectWeakAreas(m)
	wantOrder := []string{
		"attendance_pct", "assignment_score", "quiz_score",
		"midterm_score", "study_hours_per_week", "previous_gpa",
	}
	if len(areas) != len(wantOrder) {
		t.Fatalf("got %d weak areas, want %d", len(areas), len(wantOrder))
	}
	for i, want := range wantOrder {
		if areas[i].Metric != want {
			t.Errorf("areas[%d].Metric = %q, want %q", i, areas[i].Metric, want)
		}
	}
}

func TestDetectWeakAreas_OrderHoldsWithGaps(t *testing.T) {
	// Only quiz and GPA below target → still metric order, no duplicates.
	m := StudentMetrics{
		AttendancePct:     90,
		AssignmentScore:   80,
		QuizScore:         55,
		MidtermScore:      70,
		StudyHoursPerWeek: 12,
		PreviousGPA:       5.5,
	}
	areas := DetectWeakAreas(m)
	if len(areas) != 2 {
		t.Fatalf("got %d weak areas, want 2: %v", len(areas), areas)
	}
	if areas[0].Metric != "quiz_score" || areas[1].Metric != "previous_gpa" {
		t.Errorf("unexpected order: %v", areas)
	}
}

func TestDetectWeakAreas_ExactTargetNotFlagged(t *testing.T) {
	m := StudentMetrics{
		AttendancePct:     TargetAttendance,
		AssignmentScore:   TargetAssignment,
		QuizScore:         TargetQuiz,
		MidtermScore:      TargetMidterm,
		StudyHoursPerWeek: TargetStudyHours,
		PreviousGPA:       TargetGPA,
	}
	if areas := DetectWeakAreas(m); len(areas) != 0 {
		t.Errorf("values exactly at targets were flagged: %v", areas)
	}
}

func TestDetectWeakAreas_Severity(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  Severity
	}{
		{"just below target", 74, SeverityWeak},
		{"at critical cutoff", 60, SeverityWeak},
		{"below critical cutoff", 59, SeverityCritical},
		{"far below", 0, SeverityCritical},
	}
	for _, tt := range tests {
		m := StudentMetrics{
			AttendancePct:     tt.value,
			AssignmentScore:   90,
			QuizScore:         90,
			MidtermScore:      90,
			StudyHoursPerWeek: 15,
			PreviousGPA:       8,
		}
		areas := DetectWeakAreas(m)
		if len(areas) != 1 {
			t.Fatalf("%s: got %d areas, want 1", tt.name, len(areas))
		}
		if areas[0].Severity != tt.want {
			t.Errorf("%s: severity = %q, want %q", tt.name, areas[0].Severity, tt.want)
		}
	}
}

func TestDetectWeakAreas_CarriesValueAndTarget(t *testing.T) {
	m := StudentMetrics{
		AttendancePct:     68,
		AssignmentScore:   90,
		QuizScore:         90,
		MidtermScore:      90,
		StudyHoursPerWeek: 15,
		PreviousGPA:       8,
	}
	areas := DetectWeakAreas(m)
	if len(areas) != 1 {
		t.Fatalf("got %d areas, want 1", len(areas))
	}
	a := areas[0]
	if a.Value != 68 || a.Target != TargetAttendance {
		t.Errorf("got value=%.0f target=%.0f, want 68/%.0f", a.Value, a.Target, TargetAttendance)
	}
	if a.Label != "Attendance" || a.Unit != "%" {
		t.Errorf("got label=%q unit=%q", a.Label, a.Unit)
	}
}

func TestCriticalFirst(t *testing.T) {
	m := StudentMetrics{
		AttendancePct:     70, // weak
		AssignmentScore:   40, // critical
		QuizScore:         55, // weak
		MidtermScore:      30, // critical
		StudyHoursPerWeek: 15,
		PreviousGPA:       8,
	}
	ordered := CriticalFirst(DetectWeakAreas(m))
	wantOrder := []string{"assignment_score", "midterm_score", "attendance_pct", "quiz_score"}
	if len(ordered) != len(wantOrder) {
		t.Fatalf("got %d areas, want %d", len(ordered), len(wantOrder))
	}
	for i, want := range wantOrder {
		if ordered[i].Metric != want {
			t.Errorf("ordered[%d].Metric = %q, want %q", i, ordered[i].Metric, want)
		}
	}
}

func TestCriticalFirst_Empty(t *testing.T) {
	if got := CriticalFirst(nil); len(got) != 0 {
		t.Errorf("CriticalFirst(nil) = %v, want empty", got)
	}
}
