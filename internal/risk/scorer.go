package risk

// Study hours beyond StudyHoursCap contribute no extra normalized value.
const StudyHoursCap = 20.0

// Threshold bands for the weighted score. A boundary value belongs to the
// lower-risk bucket: exactly 55 is Medium, exactly 70 is Low.
const (
	HighBelow    = 55.0
	LowAtOrAbove = 70.0
)

// Confidence constants per threshold band.
const (
	HighConfidence   = 0.90
	MediumConfidence = 0.85
	LowConfidence    = 0.88
)

// NormalizeStudyHours maps weekly study hours onto a 0–100 scale, clamping
// at StudyHoursCap. This clamp is intentional and documented; it is the only
// place the scorer clamps an input.
func NormalizeStudyHours(hours float64) float64 {
	if hours > StudyHoursCap {
		hours = StudyHoursCap
	}
	return hours / StudyHoursCap * 100
}

// NormalizeGPA maps a 10-point GPA onto a 0–100 scale. Values above 10 are
// rejected by Validate before scoring, so the result stays within [0,100]
// for validated input.
func NormalizeGPA(gpa float64) float64 {
	return gpa * 10
}

// WeightedScore computes the convex combination of the six metrics using
// the given weights. Study hours and GPA enter through their normalized
// values.
func WeightedScore(m StudentMetrics, w Weights) float64 {
	return m.AttendancePct*w.Attendance +
		m.AssignmentScore*w.Assignment +
		m.QuizScore*w.Quiz +
		m.MidtermScore*w.Midterm +
		NormalizeStudyHours(m.StudyHoursPerWeek)*w.StudyNorm +
		NormalizeGPA(m.PreviousGPA)*w.GPANorm
}

// Score classifies a student record. Pure and deterministic: identical
// metrics always yield an identical Assessment. Input is assumed to be
// in-domain; call Validate first at the boundary.
func Score(m StudentMetrics) Assessment {
	return ScoreWith(m, DefaultWeights(), DefaultOverrides())
}

// ScoreWith is Score with an explicit weight vector and override rule set.
func ScoreWith(m StudentMetrics, w Weights, overrides []OverrideRule) Assessment {
	score := WeightedScore(m, w)

	if rule := RunOverrides(overrides, m); rule != "" {
		return Assessment{
			Level:         LevelHigh,
			Confidence:    OverrideConfidence,
			WeightedScore: score,
			RuleName:      rule,
		}
	}

	switch {
	case score < HighBelow:
		return Assessment{LevelHigh, HighConfidence, score, "score-band-high"}
	case score < LowAtOrAbove:
		return Assessment{LevelMedium, MediumConfidence, score, "score-band-medium"}
	default:
		return Assessment{LevelLow, LowConfidence, score, "score-band-low"}
	}
}
