package scoring

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/Recognifygeneral/Psychometricist-AI/internal/domain"
)

type mockCompleter struct {
	content string
	err     error
	gotReq  domain.CompletionRequest
	calls   int
}

func (m *mockCompleter) Complete(_ context.Context, req domain.CompletionRequest) (domain.CompletionResult, error) {
	m.calls++
	m.gotReq = req
	if m.err != nil {
		return domain.CompletionResult{}, m.err
	}
	return domain.CompletionResult{Content: m.content}, nil
}

func TestJudgment_ParsesWellFormedOutput(t *testing.T) {
	c := &mockCompleter{content: `{"score": 4.2, "classification": "High", "confidence": 0.8, "evidence": "Frequent social references."}`}
	scorer := NewJudgmentScorer(c, domain.DefaultThresholds(), zap.NewNop())

	result := scorer.Score(context.Background(), "I love big parties and meeting everyone there!")

	if result.Score != 4.2 {
		t.Errorf("score = %f, expected 4.2", result.Score)
	}
	if result.Classification != domain.ClassificationHigh {
		t.Errorf("classification = %q, expected High", result.Classification)
	}
	if result.Confidence != 0.8 {
		t.Errorf("confidence = %f, expected 0.8", result.Confidence)
	}
	if result.Evidence != "Frequent social references." {
		t.Errorf("unexpected evidence: %q", result.Evidence)
	}
	if c.gotReq.Temperature != 0.0 {
		t.Errorf("expected temperature 0, got %f", c.gotReq.Temperature)
	}
	if c.gotReq.System == "" {
		t.Error("expected system prompt to be set")
	}
}

func TestJudgment_StripsMarkdownFences(t *testing.T) {
	c := &mockCompleter{content: "```json\n{\"score\": 2.0, \"classification\": \"Low\", \"confidence\": 0.6, \"evidence\": \"ok\"}\n```"}
	scorer := NewJudgmentScorer(c, domain.DefaultThresholds(), zap.NewNop())

	result := scorer.Score(context.Background(), "I prefer staying home alone most evenings.")

	if result.Score != 2.0 {
		t.Errorf("score = %f, expected 2.0 after fence stripping", result.Score)
	}
	if result.Classification != domain.ClassificationLow {
		t.Errorf("classification = %q, expected Low", result.Classification)
	}
}

func TestJudgment_ClampsOutOfRangeValues(t *testing.T) {
	c := &mockCompleter{content: `{"score": 7.5, "classification": "High", "confidence": 1.4, "evidence": ""}`}
	scorer := NewJudgmentScorer(c, domain.DefaultThresholds(), zap.NewNop())

	result := scorer.Score(context.Background(), "some transcript text here")

	if result.Score != 5.0 {
		t.Errorf("score = %f, expected clamped 5.0", result.Score)
	}
	if result.Confidence != 1.0 {
		t.Errorf("confidence = %f, expected clamped 1.0", result.Confidence)
	}
}

func TestJudgment_DerivesClassificationWhenInvalid(t *testing.T) {
	c := &mockCompleter{content: `{"score": 4.0, "classification": "Extremely High", "confidence": 0.5}`}
	scorer := NewJudgmentScorer(c, domain.DefaultThresholds(), zap.NewNop())

	result := scorer.Score(context.Background(), "some transcript text here")

	if result.Classification != domain.ClassificationHigh {
		t.Errorf("expected classification derived from score, got %q", result.Classification)
	}
}

func TestJudgment_ParseErrorIsNeutralNotError(t *testing.T) {
	c := &mockCompleter{content: "I think this person is quite extraverted."}
	scorer := NewJudgmentScorer(c, domain.DefaultThresholds(), zap.NewNop())

	result := scorer.Score(context.Background(), "some transcript text here")

	if result.Score != domain.NeutralScore {
		t.Errorf("score = %f, expected neutral on parse failure", result.Score)
	}
	if result.Error != "" {
		t.Errorf("parse failure must stay usable, got error %q", result.Error)
	}
	if result.Evidence == "" {
		t.Error("expected parse failure noted in evidence")
	}
}

func TestJudgment_MissingScoreKeyIsNeutral(t *testing.T) {
	c := &mockCompleter{content: `{"classification": "Medium", "confidence": 0.8, "evidence": "none"}`}
	scorer := NewJudgmentScorer(c, domain.DefaultThresholds(), zap.NewNop())

	result := scorer.Score(context.Background(), "some transcript text here")

	if result.Score != domain.NeutralScore {
		t.Errorf("score = %f, expected neutral when score key is absent", result.Score)
	}
	if result.Classification != domain.ClassificationMedium {
		t.Errorf("classification = %q, expected Medium from neutral score", result.Classification)
	}
	if result.Confidence != 0 {
		t.Errorf("confidence = %f, expected 0 on malformed reply", result.Confidence)
	}
	if result.Error != "" {
		t.Errorf("malformed reply must stay usable, got error %q", result.Error)
	}
	if result.Evidence == "" {
		t.Error("expected missing key noted in evidence")
	}
}

func TestJudgment_MissingConfidenceDefaults(t *testing.T) {
	c := &mockCompleter{content: `{"score": 4.0, "classification": "High", "evidence": "ok"}`}
	scorer := NewJudgmentScorer(c, domain.DefaultThresholds(), zap.NewNop())

	result := scorer.Score(context.Background(), "some transcript text here")

	if result.Score != 4.0 {
		t.Errorf("score = %f, expected 4.0", result.Score)
	}
	if result.Confidence != 0.5 {
		t.Errorf("confidence = %f, expected 0.5 default when absent", result.Confidence)
	}
}

func TestJudgment_ProviderErrorIsUnusable(t *testing.T) {
	c := &mockCompleter{err: errors.New("api down")}
	scorer := NewJudgmentScorer(c, domain.DefaultThresholds(), zap.NewNop())

	result := scorer.Score(context.Background(), "some transcript text here")

	if result.Score != domain.NeutralScore {
		t.Errorf("score = %f, expected neutral on provider failure", result.Score)
	}
	if result.Error == "" {
		t.Error("expected error recorded on verdict")
	}
	if result.Usable() {
		t.Error("provider failure must exclude verdict from fusion")
	}
}

func TestJudgment_EmptyTranscriptSkipsProvider(t *testing.T) {
	c := &mockCompleter{err: errors.New("must not be called")}
	scorer := NewJudgmentScorer(c, domain.DefaultThresholds(), zap.NewNop())

	result := scorer.Score(context.Background(), "   ")

	if c.calls != 0 {
		t.Errorf("expected no provider call for empty transcript, got %d", c.calls)
	}
	if result.Score != domain.NeutralScore {
		t.Errorf("score = %f, expected neutral", result.Score)
	}
}

func TestScoreFacets_ParsesAndAverages(t *testing.T) {
	c := &mockCompleter{content: `{"facet_scores": [
		{"facet_code": "E1", "facet_name": "Friendliness", "score": 4.0, "evidence": "a"},
		{"facet_code": "E2", "facet_name": "Gregariousness", "score": 5.0, "evidence": "b"},
		{"facet_code": "E3", "facet_name": "Assertiveness", "score": 3.0, "evidence": "c"},
		{"facet_code": "E4", "facet_name": "Activity Level", "score": 4.0, "evidence": "d"},
		{"facet_code": "E5", "facet_name": "Excitement-Seeking", "score": 4.0, "evidence": "e"},
		{"facet_code": "E6", "facet_name": "Cheerfulness", "score": 4.0, "evidence": "f"}
	]}`}
	scorer := NewJudgmentScorer(c, domain.DefaultThresholds(), zap.NewNop())

	result := scorer.ScoreFacets(context.Background(), "some transcript text here")

	if len(result.Scores) != 6 {
		t.Fatalf("expected 6 facet scores, got %d", len(result.Scores))
	}
	if result.Overall != 4.0 {
		t.Errorf("overall = %f, expected 4.0", result.Overall)
	}
	if result.Classification != domain.ClassificationHigh {
		t.Errorf("classification = %q, expected High", result.Classification)
	}
}

func TestScoreFacets_ErrorRecorded(t *testing.T) {
	c := &mockCompleter{err: errors.New("api down")}
	scorer := NewJudgmentScorer(c, domain.DefaultThresholds(), zap.NewNop())

	result := scorer.ScoreFacets(context.Background(), "some transcript text here")

	if result.Error == "" {
		t.Error("expected error recorded")
	}
	if result.Overall != domain.NeutralScore {
		t.Errorf("overall = %f, expected neutral", result.Overall)
	}
}

func TestScoreFacets_EmptyListIsNeutral(t *testing.T) {
	c := &mockCompleter{content: `{"facet_scores": []}`}
	scorer := NewJudgmentScorer(c, domain.DefaultThresholds(), zap.NewNop())

	result := scorer.ScoreFacets(context.Background(), "some transcript text here")

	if result.Overall != domain.NeutralScore {
		t.Errorf("overall = %f, expected neutral", result.Overall)
	}
	if result.Error != "facet output contained no facet scores" {
		t.Errorf("unexpected error message: %q", result.Error)
	}
}

func TestStripFences(t *testing.T) {
	cases := []struct{ in, want string }{
		{`{"a": 1}`, `{"a": 1}`},
		{"```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"  {\"a\": 1}  ", `{"a": 1}`},
	}
	for _, tc := range cases {
		if got := stripFences(tc.in); got != tc.want {
			t.Errorf("stripFences(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}
