package risk

import "math"

// Weights is the convex combination applied to the six normalized metrics.
// The study-hours and GPA weights apply to the normalized 0–100 values, not
// the raw inputs.
type Weights struct {
	Attendance float64
	Assignment float64
	Quiz       float64
	Midterm    float64
	StudyNorm  float64
	GPANorm    float64
}

// DefaultWeights is the single source of truth for the scoring vector.
// The vector must sum to 1.0 so a student with every normalized input at
// 100 scores exactly 100.
func DefaultWeights() Weights {
	return Weights{
		Attendance: 0.25,
		Assignment: 0.20,
		Quiz:       0.20,
		Midterm:    0.25,
		StudyNorm:  0.05,
		GPANorm:    0.05,
	}
}

// Sum returns the total of all six weights.
func (w Weights) Sum() float64 {
	return w.Attendance + w.Assignment + w.Quiz + w.Midterm + w.StudyNorm + w.GPANorm
}

// Convex reports whether the weights form a convex combination (sum 1.0,
// all components non-negative).
func (w Weights) Convex() bool {
	for _, c := range []float64{w.Attendance, w.Assignment, w.Quiz, w.Midterm, w.StudyNorm, w.GPANorm} {
		if c < 0 {
			return false
		}
	}
	return math.Abs(w.Sum()-1.0) <= 1e-9
}
