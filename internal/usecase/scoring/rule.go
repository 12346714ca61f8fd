// Package scoring implements the three trait scoring methods and the
// ensemble that fuses them.
package scoring

import (
	"math"

	"github.com/Recognifygeneral/Psychometricist-AI/internal/domain"
	"github.com/Recognifygeneral/Psychometricist-AI/internal/domain/features"
	"github.com/Recognifygeneral/Psychometricist-AI/internal/domain/verdict"
)

// featureWeight maps one linguistic feature to its scoring parameters.
// Baselines are the expected values for an average (3.0) respondent;
// weights are calibrated from the personality-language literature
// (Pennebaker & King 1999; Mairesse et al. 2007; Yarkoni 2010;
// Schwartz et al. 2013).
type featureWeight struct {
	name      string
	baseline  float64
	direction float64 // +1 = higher value means more extraverted
	weight    float64
}

var ruleWeights = []featureWeight{
	{"positive_emotion_ratio", 0.04, +1.0, 12.0},
	{"negative_emotion_ratio", 0.03, -1.0, 8.0},
	{"social_reference_ratio", 0.04, +1.0, 14.0},
	{"first_person_plural_ratio", 0.015, +1.0, 10.0},
	{"assertive_ratio", 0.025, +1.0, 10.0},
	{"hedging_ratio", 0.04, -1.0, 8.0},
	{"excitement_ratio", 0.01, +1.0, 15.0},
	{"exclamation_ratio", 0.08, +1.0, 3.0},
	{"word_count", 25.0, +1.0, 0.008},
	{"lexical_diversity", 0.65, +1.0, 2.0},
}

// RuleScorer produces a deterministic score from linguistic features.
// Runs entirely locally, no provider calls.
type RuleScorer struct {
	thresholds domain.Thresholds
}

// NewRuleScorer creates the rule-based scorer.
func NewRuleScorer(thresholds domain.Thresholds) *RuleScorer {
	return &RuleScorer{thresholds: thresholds}
}

// Score maps the feature vector to a trait score:
//
//	score = clip(3.0 + Σ weight·direction·(value − baseline), 1, 5)
//
// Confidence grows with distance from the neutral midpoint, saturating
// at ±1.5.
func (s *RuleScorer) Score(v features.Vector) verdict.Rule {
	if v.WordCount == 0 {
		out := verdict.Rule{Verdict: verdict.Neutral(verdict.MethodRule, s.thresholds)}
		out.Warning = "No text to analyze, defaulting to neutral."
		return out
	}

	vec := v.ScoringVector()
	contributions := make(map[string]float64, len(ruleWeights))
	total := 0.0

	for _, w := range ruleWeights {
		contribution := w.weight * w.direction * (vec[w.name] - w.baseline)
		contributions[w.name] = round4(contribution)
		total += contribution
	}

	rawScore := domain.NeutralScore + total
	score := domain.ClampScore(rawScore)

	used := make(map[string]float64, len(vec))
	for k, val := range vec {
		used[k] = round4(val)
	}

	return verdict.Rule{
		Verdict: verdict.Verdict{
			Method:         verdict.MethodRule,
			Score:          round2(score),
			Classification: s.thresholds.Classify(score),
			Confidence:     round3(confidenceFromMidpoint(score)),
		},
		Contributions: contributions,
		FeaturesUsed:  used,
		RawScore:      round4(rawScore),
	}
}

// confidenceFromMidpoint estimates confidence from the score's distance
// to the neutral midpoint. Ambiguous scores near 3.0 get low confidence.
func confidenceFromMidpoint(score float64) float64 {
	return math.Min(1.0, math.Abs(score-domain.NeutralScore)/1.5)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
