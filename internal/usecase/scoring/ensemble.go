package scoring

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/Recognifygeneral/Psychometricist-AI/internal/domain"
	"github.com/Recognifygeneral/Psychometricist-AI/internal/domain/features"
	"github.com/Recognifygeneral/Psychometricist-AI/internal/domain/verdict"
)

// agreementBonus is added to the mean confidence when every method
// lands in the same classification bucket.
const agreementBonus = 0.15

// RuleMethod produces a verdict from linguistic features (consumer interface).
type RuleMethod interface {
	Score(v features.Vector) verdict.Rule
}

// SimilarityMethod produces a verdict from embedding similarity.
type SimilarityMethod interface {
	Score(ctx context.Context, transcript string) verdict.Similarity
}

// JudgmentMethod produces a verdict from a generative judge, with an
// optional facet-level secondary mode.
type JudgmentMethod interface {
	Score(ctx context.Context, transcript string) verdict.Judgment
	ScoreFacets(ctx context.Context, transcript string) verdict.Facets
}

// Options selects which scoring methods the fuser runs.
type Options struct {
	RunRule       bool
	RunSimilarity bool
	RunJudgment   bool
	ScoreFacets   bool // secondary facet detail, never fused
}

// DefaultOptions runs all three primary methods.
func DefaultOptions() Options {
	return Options{RunRule: true, RunSimilarity: true, RunJudgment: true}
}

// Fuser runs the enabled scoring methods and combines their verdicts.
// Comparing independent methods per transcript gives a convergent
// validity signal on top of the score itself.
type Fuser struct {
	rule       RuleMethod
	similarity SimilarityMethod
	judgment   JudgmentMethod
	thresholds domain.Thresholds
	opts       Options
	logger     *zap.Logger
}

// NewFuser creates the ensemble. Scorers for disabled methods may be nil.
func NewFuser(
	rule RuleMethod,
	similarity SimilarityMethod,
	judgment JudgmentMethod,
	thresholds domain.Thresholds,
	opts Options,
	logger *zap.Logger,
) *Fuser {
	return &Fuser{
		rule:       rule,
		similarity: similarity,
		judgment:   judgment,
		thresholds: thresholds,
		opts:       opts,
		logger:     logger,
	}
}

// Fuse runs the enabled methods over the transcript and fuses the
// usable verdicts. precomputed carries aggregate features when the
// caller already extracted them; pass nil to extract here.
//
// Fusion is a confidence-weighted mean; when every confidence is zero
// it falls back to the arithmetic mean. With zero usable methods the
// outcome is neutral with a warning. Errored methods are excluded from
// fusion but still reported.
func (f *Fuser) Fuse(ctx context.Context, transcript string, precomputed *features.Vector) verdict.Ensemble {
	var (
		out             verdict.Ensemble
		scores          []float64
		confidences     []float64
		classifications []domain.Classification
	)

	collect := func(v verdict.Verdict) {
		if !v.Usable() {
			return
		}
		scores = append(scores, v.Score)
		confidences = append(confidences, v.Confidence)
		classifications = append(classifications, v.Classification)
	}

	if f.opts.RunRule && f.rule != nil {
		vec := precomputed
		if vec == nil {
			extracted := features.Extract(transcript)
			vec = &extracted
		}
		r := f.rule.Score(*vec)
		out.Rule = &r
		collect(r.Verdict)
	}

	if f.opts.RunSimilarity && f.similarity != nil {
		s := f.similarity.Score(ctx, transcript)
		out.Similarity = &s
		collect(s.Verdict)
	}

	if f.opts.RunJudgment && f.judgment != nil {
		j := f.judgment.Score(ctx, transcript)
		out.Judgment = &j
		collect(j.Verdict)

		if f.opts.ScoreFacets {
			facets := f.judgment.ScoreFacets(ctx, transcript)
			out.Facets = &facets
		}
	}

	if len(scores) == 0 {
		out.Score = domain.NeutralScore
		out.Classification = f.thresholds.Classify(domain.NeutralScore)
		out.MajorityVote = out.Classification
		out.FusionMethod = "none"
		out.Warning = "No scoring methods produced results."
		f.logger.Warn("Ensemble produced no usable verdicts")
		return out
	}

	var fused float64
	totalWeight := sum(confidences)
	if totalWeight > 0 {
		for i, s := range scores {
			fused += s * confidences[i]
		}
		fused /= totalWeight
		out.FusionMethod = "confidence_weighted_mean"
	} else {
		fused = sum(scores) / float64(len(scores))
		out.FusionMethod = "arithmetic_mean"
	}

	out.Score = round2(domain.ClampScore(fused))
	out.Classification = f.thresholds.Classify(out.Score)
	out.MethodsUsed = len(scores)
	out.MethodsAgree = allEqual(classifications)

	meanConfidence := sum(confidences) / float64(len(confidences))
	if out.MethodsAgree {
		meanConfidence += agreementBonus
	}
	out.Confidence = round3(math.Min(1.0, meanConfidence))

	out.Votes = make(map[domain.Classification]int, 3)
	for _, c := range classifications {
		out.Votes[c]++
	}
	out.MajorityVote = majorityVote(out.Votes)

	return out
}

// majorityVote returns the plurality classification. Ties prefer
// Medium over High over Low, the conservative ordering.
func majorityVote(votes map[domain.Classification]int) domain.Classification {
	if len(votes) == 0 {
		return domain.ClassificationMedium
	}

	maxCount := 0
	for _, n := range votes {
		if n > maxCount {
			maxCount = n
		}
	}

	for _, pref := range []domain.Classification{
		domain.ClassificationMedium,
		domain.ClassificationHigh,
		domain.ClassificationLow,
	} {
		if votes[pref] == maxCount {
			return pref
		}
	}
	return domain.ClassificationMedium
}

func allEqual(cs []domain.Classification) bool {
	for _, c := range cs {
		if c != cs[0] {
			return false
		}
	}
	return len(cs) > 0
}

func sum(vs []float64) float64 {
	var total float64
	for _, v := range vs {
		total += v
	}
	return total
}
