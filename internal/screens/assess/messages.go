package assess

import (
	"time"

	"github.com/abhisek/edurisk/internal/guidance"
	"github.com/abhisek/edurisk/internal/predict"
)

// analysisDoneMsg is sent when prediction and guidance are both ready.
type analysisDoneMsg struct {
	ID         string
	Prediction *predict.Prediction
	Plan       guidance.Plan
	Err        error
}

// spinnerTickMsg is sent at short intervals to animate the analyzing spinner.
type spinnerTickMsg time.Time
