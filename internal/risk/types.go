package risk

// Level classifies a student's academic risk.
type Level string

const (
	LevelHigh   Level = "High"
	LevelMedium Level = "Medium"
	LevelLow    Level = "Low"
)

// AllLevels returns all risk levels in order from highest to lowest risk.
func AllLevels() []Level {
	return []Level{LevelHigh, LevelMedium, LevelLow}
}

// Valid reports whether l is a known risk level.
func (l Level) Valid() bool {
	switch l {
	case LevelHigh, LevelMedium, LevelLow:
		return true
	}
	return false
}

// StudentMetrics holds the six raw performance metrics for one evaluation.
// A value is immutable once constructed; every evaluation gets a fresh copy.
type StudentMetrics struct {
	AttendancePct     float64 `json:"attendance_pct"`       // [0,100]
	AssignmentScore   float64 `json:"assignment_score"`     // [0,100]
	QuizScore         float64 `json:"quiz_score"`           // [0,100]
	MidtermScore      float64 `json:"midterm_score"`        // [0,100]
	StudyHoursPerWeek float64 `json:"study_hours_per_week"` // [0,∞), practically [0,40]
	PreviousGPA       float64 `json:"previous_gpa"`         // [0,10], 10-point scale
}

// Assessment is the output of scoring one student record.
type Assessment struct {
	Level         Level   `json:"risk_level"`
	Confidence    float64 `json:"confidence"`     // fixed constant per decision branch
	WeightedScore float64 `json:"weighted_score"` // ~[0,100]
	RuleName      string  `json:"rule_name"`      // which override rule or threshold band decided
}
