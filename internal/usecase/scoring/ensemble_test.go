package scoring

import (
	"context"
	"math"
	"testing"

	"go.uber.org/zap"

	"github.com/Recognifygeneral/Psychometricist-AI/internal/domain"
	"github.com/Recognifygeneral/Psychometricist-AI/internal/domain/features"
	"github.com/Recognifygeneral/Psychometricist-AI/internal/domain/verdict"
)

type stubRule struct{ out verdict.Rule }

func (s stubRule) Score(_ features.Vector) verdict.Rule { return s.out }

type stubSimilarity struct{ out verdict.Similarity }

func (s stubSimilarity) Score(_ context.Context, _ string) verdict.Similarity { return s.out }

type stubJudgment struct {
	out        verdict.Judgment
	facets     verdict.Facets
	facetCalls int
}

func (s *stubJudgment) Score(_ context.Context, _ string) verdict.Judgment { return s.out }

func (s *stubJudgment) ScoreFacets(_ context.Context, _ string) verdict.Facets {
	s.facetCalls++
	return s.facets
}

func mkVerdict(method string, score, confidence float64) verdict.Verdict {
	return verdict.Verdict{
		Method:         method,
		Score:          score,
		Classification: domain.DefaultThresholds().Classify(score),
		Confidence:     confidence,
	}
}

func newTestFuser(rule verdict.Rule, sim verdict.Similarity, judge verdict.Judgment, opts Options) *Fuser {
	return NewFuser(
		stubRule{out: rule},
		stubSimilarity{out: sim},
		&stubJudgment{out: judge},
		domain.DefaultThresholds(),
		opts,
		zap.NewNop(),
	)
}

func TestFuse_ConfidenceWeightedMean(t *testing.T) {
	fuser := newTestFuser(
		verdict.Rule{Verdict: mkVerdict(verdict.MethodRule, 4.0, 0.8)},
		verdict.Similarity{Verdict: mkVerdict(verdict.MethodSimilarity, 4.5, 0.6)},
		verdict.Judgment{Verdict: mkVerdict(verdict.MethodJudgment, 4.0, 0.6)},
		DefaultOptions(),
	)

	result := fuser.Fuse(context.Background(), "transcript", nil)

	if result.FusionMethod != "confidence_weighted_mean" {
		t.Errorf("fusion method = %q, expected confidence_weighted_mean", result.FusionMethod)
	}
	// (4.0*0.8 + 4.5*0.6 + 4.0*0.6) / 2.0 = 4.15
	if math.Abs(result.Score-4.15) > 0.001 {
		t.Errorf("score = %f, expected 4.15", result.Score)
	}
	if result.MethodsUsed != 3 {
		t.Errorf("methods used = %d, expected 3", result.MethodsUsed)
	}
	if !result.MethodsAgree {
		t.Error("expected methods to agree (all High)")
	}
	// mean confidence (0.8+0.6+0.6)/3 + 0.15 agreement bonus = 0.817
	if math.Abs(result.Confidence-0.817) > 0.001 {
		t.Errorf("confidence = %f, expected 0.817", result.Confidence)
	}
	if result.MajorityVote != domain.ClassificationHigh {
		t.Errorf("majority vote = %q, expected High", result.MajorityVote)
	}
	if result.Rule == nil || result.Similarity == nil || result.Judgment == nil {
		t.Error("expected all individual results attached")
	}
}

func TestFuse_ArithmeticMeanWhenZeroConfidence(t *testing.T) {
	fuser := newTestFuser(
		verdict.Rule{Verdict: mkVerdict(verdict.MethodRule, 3.0, 0)},
		verdict.Similarity{Verdict: mkVerdict(verdict.MethodSimilarity, 3.0, 0)},
		verdict.Judgment{Verdict: mkVerdict(verdict.MethodJudgment, 3.0, 0)},
		DefaultOptions(),
	)

	result := fuser.Fuse(context.Background(), "transcript", nil)

	if result.FusionMethod != "arithmetic_mean" {
		t.Errorf("fusion method = %q, expected arithmetic_mean", result.FusionMethod)
	}
	if result.Score != 3.0 {
		t.Errorf("score = %f, expected 3.0", result.Score)
	}
	// all agree on Medium: 0 mean confidence + 0.15 bonus
	if math.Abs(result.Confidence-0.15) > 0.001 {
		t.Errorf("confidence = %f, expected 0.15", result.Confidence)
	}
}

func TestFuse_ErroredMethodExcluded(t *testing.T) {
	failedSim := verdict.Similarity{Verdict: mkVerdict(verdict.MethodSimilarity, 3.0, 0)}
	failedSim.Error = "provider down"

	fuser := newTestFuser(
		verdict.Rule{Verdict: mkVerdict(verdict.MethodRule, 4.0, 0.5)},
		failedSim,
		verdict.Judgment{Verdict: mkVerdict(verdict.MethodJudgment, 4.0, 0.5)},
		DefaultOptions(),
	)

	result := fuser.Fuse(context.Background(), "transcript", nil)

	if result.MethodsUsed != 2 {
		t.Errorf("methods used = %d, expected 2 (similarity errored)", result.MethodsUsed)
	}
	if result.Score != 4.0 {
		t.Errorf("score = %f, expected 4.0", result.Score)
	}
	// The errored result is still reported for post-hoc analysis.
	if result.Similarity == nil || result.Similarity.Error == "" {
		t.Error("expected errored similarity result attached with its error")
	}
}

func TestFuse_AllFailedIsNeutralWithWarning(t *testing.T) {
	failed := func(method string) verdict.Verdict {
		v := mkVerdict(method, 3.0, 0)
		v.Error = "down"
		return v
	}

	fuser := newTestFuser(
		verdict.Rule{Verdict: failed(verdict.MethodRule)},
		verdict.Similarity{Verdict: failed(verdict.MethodSimilarity)},
		verdict.Judgment{Verdict: failed(verdict.MethodJudgment)},
		DefaultOptions(),
	)

	result := fuser.Fuse(context.Background(), "transcript", nil)

	if result.Score != domain.NeutralScore {
		t.Errorf("score = %f, expected neutral", result.Score)
	}
	if result.Classification != domain.ClassificationMedium {
		t.Errorf("classification = %q, expected Medium", result.Classification)
	}
	if result.Confidence != 0 {
		t.Errorf("confidence = %f, expected 0", result.Confidence)
	}
	if result.FusionMethod != "none" {
		t.Errorf("fusion method = %q, expected none", result.FusionMethod)
	}
	if result.Warning == "" {
		t.Error("expected warning for zero usable methods")
	}
}

func TestFuse_MajorityVoteTieBreak(t *testing.T) {
	// High and Low tie 1-1: the conservative ordering prefers High over Low,
	// with Medium first whenever it is among the winners.
	fuser := NewFuser(
		stubRule{out: verdict.Rule{Verdict: mkVerdict(verdict.MethodRule, 4.5, 0.5)}},
		stubSimilarity{out: verdict.Similarity{Verdict: mkVerdict(verdict.MethodSimilarity, 1.5, 0.5)}},
		nil,
		domain.DefaultThresholds(),
		Options{RunRule: true, RunSimilarity: true},
		zap.NewNop(),
	)

	result := fuser.Fuse(context.Background(), "transcript", nil)

	if result.MajorityVote != domain.ClassificationHigh {
		t.Errorf("majority vote = %q, expected High on High/Low tie", result.MajorityVote)
	}
	if result.MethodsAgree {
		t.Error("methods disagree, flag should be false")
	}
	if result.Votes[domain.ClassificationHigh] != 1 || result.Votes[domain.ClassificationLow] != 1 {
		t.Errorf("unexpected votes: %v", result.Votes)
	}
}

func TestFuse_DisabledMethodsSkipped(t *testing.T) {
	judge := &stubJudgment{out: verdict.Judgment{Verdict: mkVerdict(verdict.MethodJudgment, 4.0, 0.5)}}
	fuser := NewFuser(
		stubRule{out: verdict.Rule{Verdict: mkVerdict(verdict.MethodRule, 2.0, 0.5)}},
		nil,
		judge,
		domain.DefaultThresholds(),
		Options{RunRule: true},
		zap.NewNop(),
	)

	result := fuser.Fuse(context.Background(), "transcript", nil)

	if result.MethodsUsed != 1 {
		t.Errorf("methods used = %d, expected 1", result.MethodsUsed)
	}
	if result.Judgment != nil {
		t.Error("disabled judgment must not be attached")
	}
	if result.Similarity != nil {
		t.Error("disabled similarity must not be attached")
	}
}

func TestFuse_FacetModeAttachesDetail(t *testing.T) {
	judge := &stubJudgment{
		out: verdict.Judgment{Verdict: mkVerdict(verdict.MethodJudgment, 4.0, 0.5)},
		facets: verdict.Facets{
			Method:  verdict.MethodFacets,
			Overall: 4.2,
			Scores:  []verdict.FacetScore{{Code: "E1", Name: "Friendliness", Score: 4.2}},
		},
	}
	fuser := NewFuser(
		nil, nil, judge,
		domain.DefaultThresholds(),
		Options{RunJudgment: true, ScoreFacets: true},
		zap.NewNop(),
	)

	result := fuser.Fuse(context.Background(), "transcript", nil)

	if result.Facets == nil {
		t.Fatal("expected facet detail attached")
	}
	if judge.facetCalls != 1 {
		t.Errorf("expected 1 facet call, got %d", judge.facetCalls)
	}
	// Facets are detail only; fusion still uses the single judgment verdict.
	if result.MethodsUsed != 1 {
		t.Errorf("methods used = %d, expected 1", result.MethodsUsed)
	}
	if result.Score != 4.0 {
		t.Errorf("score = %f, expected the domain judgment score 4.0", result.Score)
	}
}

func TestFuse_UsesPrecomputedFeatures(t *testing.T) {
	// A real rule scorer with a precomputed vector: Fuse must not
	// re-extract from the transcript.
	fuser := NewFuser(
		NewRuleScorer(domain.DefaultThresholds()),
		nil, nil,
		domain.DefaultThresholds(),
		Options{RunRule: true},
		zap.NewNop(),
	)

	vec := features.Extract(extravertedText)
	result := fuser.Fuse(context.Background(), "completely different text", &vec)

	direct := NewRuleScorer(domain.DefaultThresholds()).Score(vec)
	if result.Rule == nil || result.Rule.Score != direct.Score {
		t.Errorf("expected precomputed features to drive the rule score")
	}
}
