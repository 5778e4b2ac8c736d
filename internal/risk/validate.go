package risk

import "fmt"

// ValidationError reports a metric outside its documented domain.
type ValidationError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
	Open  bool // true when the domain has no upper bound (Max is ignored)
}

func (e *ValidationError) Error() string {
	if e.Open {
		return fmt.Sprintf("%s out of range: %.2f (must be >= %.0f)", e.Field, e.Value, e.Min)
	}
	return fmt.Sprintf("%s out of range: %.2f (must be within [%.0f, %.0f])", e.Field, e.Value, e.Min, e.Max)
}

// Validate rejects out-of-domain metrics before scoring. The scorer never
// clamps silently: GPA above 10 or a negative score is an input error, not
// a value to be repaired. The one intentional clamp (study hours at 20)
// happens inside normalization and is documented there.
func Validate(m StudentMetrics) error {
	checks := []struct {
		field string
		value float64
		min   float64
		max   float64
		open  bool
	}{
		{"attendance_pct", m.AttendancePct, 0, 100, false},
		{"assignment_score", m.AssignmentScore, 0, 100, false},
		{"quiz_score", m.QuizScore, 0, 100, false},
		{"midterm_score", m.MidtermScore, 0, 100, false},
		{"study_hours_per_week", m.StudyHoursPerWeek, 0, 0, true},
		{"previous_gpa", m.PreviousGPA, 0, 10, false},
	}

	for _, c := range checks {
		if c.value < c.min || (!c.open && c.value > c.max) {
			return &ValidationError{Field: c.field, Value: c.value, Min: c.min, Max: c.max, Open: c.open}
		}
	}
	return nil
}
