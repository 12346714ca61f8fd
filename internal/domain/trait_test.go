package domain

import "testing"

func TestThresholds_Classify(t *testing.T) {
	th := DefaultThresholds()

	tests := []struct {
		score float64
		want  Classification
	}{
		{1.0, ClassificationLow},
		{2.3, ClassificationLow}, // boundary is inclusive on the low side
		{2.31, ClassificationMedium},
		{3.0, ClassificationMedium},
		{3.6, ClassificationMedium},
		{3.61, ClassificationHigh},
		{5.0, ClassificationHigh},
	}
	for _, tt := range tests {
		if got := th.Classify(tt.score); got != tt.want {
			t.Errorf("Classify(%v) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestClampScore(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.5, 1.0},
		{1.0, 1.0},
		{3.3, 3.3},
		{5.0, 5.0},
		{7.2, 5.0},
	}
	for _, tt := range tests {
		if got := ClampScore(tt.in); got != tt.want {
			t.Errorf("ClampScore(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClampConfidence(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-0.1, 0.0},
		{0.0, 0.0},
		{0.42, 0.42},
		{1.0, 1.0},
		{1.5, 1.0},
	}
	for _, tt := range tests {
		if got := ClampConfidence(tt.in); got != tt.want {
			t.Errorf("ClampConfidence(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClassification_Valid(t *testing.T) {
	for _, c := range []Classification{ClassificationLow, ClassificationMedium, ClassificationHigh} {
		if !c.Valid() {
			t.Errorf("%v should be valid", c)
		}
	}
	if Classification("Extreme").Valid() {
		t.Error("unknown bucket should not be valid")
	}
}
