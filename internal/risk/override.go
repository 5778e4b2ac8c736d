package risk

// OverrideConfidence is the fixed confidence attached to any override
// decision.
const OverrideConfidence = 0.95

// Override cutoffs. A single metric below its cutoff forces a High
// classification regardless of the weighted score, because weighted
// averaging can mask one catastrophic metric behind five average ones.
const (
	OverrideAttendanceBelow = 60.0
	OverrideAssignmentBelow = 50.0
	OverrideQuizBelow       = 50.0
	OverrideMidtermBelow    = 50.0
	OverrideStudyBelow      = 5.0
	OverrideGPABelow        = 5.0
)

// OverrideRule is a hard rule that forces a High classification when a
// single metric is catastrophic. Returns false if the rule doesn't apply.
type OverrideRule interface {
	Name() string
	Triggered(m StudentMetrics) bool
}

type thresholdRule struct {
	name   string
	below  float64
	metric func(StudentMetrics) float64
}

func (r *thresholdRule) Name() string { return r.name }

func (r *thresholdRule) Triggered(m StudentMetrics) bool {
	return r.metric(m) < r.below
}

// DefaultOverrides returns the override rules in fixed metric order.
// Order only affects which rule name is reported; any trigger forces High.
func DefaultOverrides() []OverrideRule {
	return []OverrideRule{
		&thresholdRule{"attendance-critical", OverrideAttendanceBelow, func(m StudentMetrics) float64 { return m.AttendancePct }},
		&thresholdRule{"assignment-critical", OverrideAssignmentBelow, func(m StudentMetrics) float64 { return m.AssignmentScore }},
		&thresholdRule{"quiz-critical", OverrideQuizBelow, func(m StudentMetrics) float64 { return m.QuizScore }},
		&thresholdRule{"midterm-critical", OverrideMidtermBelow, func(m StudentMetrics) float64 { return m.MidtermScore }},
		&thresholdRule{"study-critical", OverrideStudyBelow, func(m StudentMetrics) float64 { return m.StudyHoursPerWeek }},
		&thresholdRule{"gpa-critical", OverrideGPABelow, func(m StudentMetrics) float64 { return m.PreviousGPA }},
	}
}

// RunOverrides executes the override rules in order and returns the name of
// the first triggered rule, or "" if none apply.
func RunOverrides(rules []OverrideRule, m StudentMetrics) string {
	for _, r := range rules {
		if r.Triggered(m) {
			return r.Name()
		}
	}
	return ""
}
