package risk

// Severity sub-classifies a weak area. Critical entries sit below the
// override tier; weak entries merely miss the improvement target.
type Severity string

const (
	SeverityWeak     Severity = "weak"
	SeverityCritical Severity = "critical"
)

// Improvement targets. A metric at or above its target is not flagged;
// exactly at the target is NOT a weak area.
const (
	TargetAttendance = 75.0
	TargetAssignment = 60.0
	TargetQuiz       = 60.0
	TargetMidterm    = 60.0
	TargetStudyHours = 10.0
	TargetGPA        = 6.0
)

// WeakArea is one metric that fell below its improvement target, carrying
// the observed value and the target for interpolation into guidance text.
type WeakArea struct {
	Metric   string   `json:"metric"`
	Label    string   `json:"label"` // display name, e.g. "Attendance"
	Value    float64  `json:"value"`
	Target   float64  `json:"target"`
	Unit     string   `json:"unit"` // "%", "hrs/week", "/10"
	Severity Severity `json:"severity"`
}

// DetectWeakAreas flags metrics below their improvement targets, always in
// the fixed metric order: attendance, assignment, quiz, midterm, study
// hours, GPA. At most one entry per metric. Pure and deterministic.
func DetectWeakAreas(m StudentMetrics) []WeakArea {
	checks := []struct {
		metric   string
		label    string
		value    float64
		target   float64
		unit     string
		critical float64 // below this, severity is critical
	}{
		{"attendance_pct", "Attendance", m.AttendancePct, TargetAttendance, "%", OverrideAttendanceBelow},
		{"assignment_score", "Assignments", m.AssignmentScore, TargetAssignment, "%", OverrideAssignmentBelow},
		{"quiz_score", "Quizzes", m.QuizScore, TargetQuiz, "%", OverrideQuizBelow},
		{"midterm_score", "Midterm", m.MidtermScore, TargetMidterm, "%", OverrideMidtermBelow},
		{"study_hours_per_week", "Study Hours", m.StudyHoursPerWeek, TargetStudyHours, "hrs/week", OverrideStudyBelow},
		{"previous_gpa", "GPA", m.PreviousGPA, TargetGPA, "/10", OverrideGPABelow},
	}

	var areas []WeakArea
	for _, c := range checks {
		if c.value >= c.target {
			continue
		}
		sev := SeverityWeak
		if c.value < c.critical {
			sev = SeverityCritical
		}
		areas = append(areas, WeakArea{
			Metric:   c.metric,
			Label:    c.label,
			Value:    c.value,
			Target:   c.target,
			Unit:     c.unit,
			Severity: sev,
		})
	}
	return areas
}

// CriticalFirst returns the weak areas reordered with critical entries
// before weak ones, preserving metric order within each tier. Detection
// order itself is always metric order; this ordering is for rendering.
func CriticalFirst(areas []WeakArea) []WeakArea {
	out := make([]WeakArea, 0, len(areas))
	for _, a := range areas {
		if a.Severity == SeverityCritical {
			out = append(out, a)
		}
	}
	for _, a := range areas {
		if a.Severity != SeverityCritical {
			out = append(out, a)
		}
	}
	return out
}
