package domain

// Classification is the discretized Extraversion bucket.
type Classification string

const (
	// ClassificationLow covers scores at or below the low threshold.
	ClassificationLow Classification = "Low"
	// ClassificationMedium covers scores between the thresholds.
	ClassificationMedium Classification = "Medium"
	// ClassificationHigh covers scores above the high threshold.
	ClassificationHigh Classification = "High"
)

// Valid reports whether c is one of the three known buckets.
func (c Classification) Valid() bool {
	return c == ClassificationLow || c == ClassificationMedium || c == ClassificationHigh
}

// Trait scale bounds and midpoint.
const (
	ScaleMin     = 1.0
	ScaleMax     = 5.0
	NeutralScore = 3.0
)

// Thresholds holds the score cut points for classification.
type Thresholds struct {
	Low  float64
	High float64
}

// DefaultThresholds returns the standard cut points (<=2.3 Low, <=3.6 Medium, else High).
func DefaultThresholds() Thresholds {
	return Thresholds{Low: 2.3, High: 3.6}
}

// Classify maps a 1-5 score to Low / Medium / High.
func (t Thresholds) Classify(score float64) Classification {
	switch {
	case score <= t.Low:
		return ClassificationLow
	case score <= t.High:
		return ClassificationMedium
	default:
		return ClassificationHigh
	}
}

// ClampScore clips a score into the valid [1.0, 5.0] range.
func ClampScore(v float64) float64 {
	if v < 1.0 {
		return 1.0
	}
	if v > 5.0 {
		return 5.0
	}
	return v
}

// ClampConfidence clips a confidence into the valid [0.0, 1.0] range.
func ClampConfidence(v float64) float64 {
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}
