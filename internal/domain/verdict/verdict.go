// Package verdict holds the result shapes produced by the scoring
// methods and the fused ensemble outcome.
package verdict

import "github.com/Recognifygeneral/Psychometricist-AI/internal/domain"

// Method names reported in results and logs.
const (
	MethodRule       = "rule"
	MethodSimilarity = "similarity"
	MethodJudgment   = "judgment"
	MethodFacets     = "judgment_facets"
)

// Verdict is the common shape every scoring method produces. Concrete
// method results embed it, so the fuser can treat them uniformly.
type Verdict struct {
	Method         string                `json:"method"`
	Score          float64               `json:"score"`
	Classification domain.Classification `json:"classification"`
	Confidence     float64               `json:"confidence"`
	Warning        string                `json:"warning,omitempty"`
	Error          string                `json:"error,omitempty"`
}

// Usable reports whether the verdict may contribute to fusion.
func (v Verdict) Usable() bool { return v.Error == "" }

// Neutral returns the midpoint verdict for a method, used when a
// scorer cannot produce a signal.
func Neutral(method string, thresholds domain.Thresholds) Verdict {
	return Verdict{
		Method:         method,
		Score:          domain.NeutralScore,
		Classification: thresholds.Classify(domain.NeutralScore),
		Confidence:     0.0,
	}
}

// Rule is the deterministic rule scorer result with its
// per-feature contribution breakdown for explainability.
type Rule struct {
	Verdict
	Contributions map[string]float64 `json:"feature_contributions,omitempty"`
	FeaturesUsed  map[string]float64 `json:"features_used,omitempty"`
	RawScore      float64            `json:"raw_unclipped_score,omitempty"`
}

// Similarity is the embedding similarity scorer result.
type Similarity struct {
	Verdict
	HighSimilarity float64 `json:"high_similarity"`
	LowSimilarity  float64 `json:"low_similarity"`
	Balance        float64 `json:"balance"`
}

// Judgment is the generative judge result.
type Judgment struct {
	Verdict
	Evidence string `json:"evidence,omitempty"`
}

// FacetScore is one facet-level sub-score from the secondary judgment mode.
type FacetScore struct {
	Code     string  `json:"facet_code"`
	Name     string  `json:"facet_name"`
	Score    float64 `json:"score"`
	Evidence string  `json:"evidence,omitempty"`
}

// Facets is the optional facet-level judgment result. It is
// supplementary detail only and never contributes to fusion.
type Facets struct {
	Method         string                `json:"method"`
	Scores         []FacetScore          `json:"facet_scores"`
	Overall        float64               `json:"overall_score"`
	Classification domain.Classification `json:"classification"`
	Error          string                `json:"error,omitempty"`
}

// Ensemble is the fused multi-method assessment outcome.
// Score is always in [1.0, 5.0], Confidence in [0.0, 1.0], and
// Classification is derived from Score via the fixed thresholds.
type Ensemble struct {
	Score          float64                       `json:"ensemble_score"`
	Classification domain.Classification         `json:"ensemble_classification"`
	MajorityVote   domain.Classification         `json:"majority_vote_classification"`
	Confidence     float64                       `json:"ensemble_confidence"`
	FusionMethod   string                        `json:"fusion_method"`
	MethodsUsed    int                           `json:"methods_used"`
	MethodsAgree   bool                          `json:"methods_agree"`
	Votes          map[domain.Classification]int `json:"classification_votes,omitempty"`
	Warning        string                        `json:"warning,omitempty"`

	Rule       *Rule       `json:"rule,omitempty"`
	Similarity *Similarity `json:"similarity,omitempty"`
	Judgment   *Judgment   `json:"judgment,omitempty"`
	Facets     *Facets     `json:"judgment_facets,omitempty"`
}

// PerMethod returns the individual verdicts keyed by method name.
func (e *Ensemble) PerMethod() map[string]Verdict {
	out := make(map[string]Verdict, 3)
	if e.Rule != nil {
		out[e.Rule.Method] = e.Rule.Verdict
	}
	if e.Similarity != nil {
		out[e.Similarity.Method] = e.Similarity.Verdict
	}
	if e.Judgment != nil {
		out[e.Judgment.Method] = e.Judgment.Verdict
	}
	return out
}
