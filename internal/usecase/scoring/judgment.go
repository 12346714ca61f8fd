package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Recognifygeneral/Psychometricist-AI/internal/domain"
	"github.com/Recognifygeneral/Psychometricist-AI/internal/domain/verdict"
)

// JudgmentScorer asks a generative model to rate the transcript
// holistically, like a human rater doing consensus coding.
type JudgmentScorer struct {
	completer  domain.Completer
	thresholds domain.Thresholds
	logger     *zap.Logger
}

// NewJudgmentScorer creates the generative judge scorer.
func NewJudgmentScorer(completer domain.Completer, thresholds domain.Thresholds, logger *zap.Logger) *JudgmentScorer {
	return &JudgmentScorer{completer: completer, thresholds: thresholds, logger: logger}
}

// Score rates overall Extraversion from the transcript. Malformed model
// output and provider failures both degrade to a neutral verdict.
func (s *JudgmentScorer) Score(ctx context.Context, transcript string) verdict.Judgment {
	if strings.TrimSpace(transcript) == "" {
		out := verdict.Judgment{Verdict: verdict.Neutral(verdict.MethodJudgment, s.thresholds)}
		out.Evidence = "Empty transcript, no evidence to score."
		return out
	}

	res, err := s.completer.Complete(ctx, domain.CompletionRequest{
		System: domainJudgePrompt,
		Messages: []domain.ChatMessage{
			{Role: "user", Content: transcriptMessage(transcript)},
		},
		Temperature: 0.0,
	})
	if err != nil {
		s.logger.Warn("Judgment scorer failed", zap.Error(err))
		out := verdict.Judgment{Verdict: verdict.Neutral(verdict.MethodJudgment, s.thresholds)}
		out.Error = fmt.Sprintf("Judgment scorer failed: %v", err)
		return out
	}

	// Pointer fields distinguish an absent key from a literal zero: a
	// reply without "score" is malformed, not a 1.0 rating.
	var parsed struct {
		Score          *float64              `json:"score"`
		Classification domain.Classification `json:"classification"`
		Confidence     *float64              `json:"confidence"`
		Evidence       string                `json:"evidence"`
	}
	err = json.Unmarshal([]byte(stripFences(res.Content)), &parsed)
	if err == nil && parsed.Score == nil {
		err = fmt.Errorf("missing required key %q", "score")
	}
	if err != nil {
		s.logger.Warn("Judgment output unparseable", zap.Error(err), zap.String("raw", res.Content))
		out := verdict.Judgment{Verdict: verdict.Neutral(verdict.MethodJudgment, s.thresholds)}
		out.Evidence = fmt.Sprintf("Judge output parse error: %v. Defaulting to neutral.", err)
		return out
	}

	score := domain.ClampScore(*parsed.Score)
	classification := parsed.Classification
	if !classification.Valid() {
		classification = s.thresholds.Classify(score)
	}
	confidence := 0.5
	if parsed.Confidence != nil {
		confidence = *parsed.Confidence
	}

	return verdict.Judgment{
		Verdict: verdict.Verdict{
			Method:         verdict.MethodJudgment,
			Score:          round2(score),
			Classification: classification,
			Confidence:     round3(domain.ClampConfidence(confidence)),
		},
		Evidence: parsed.Evidence,
	}
}

// ScoreFacets rates each trait facet separately. Supplementary detail,
// never part of fusion.
func (s *JudgmentScorer) ScoreFacets(ctx context.Context, transcript string) verdict.Facets {
	if strings.TrimSpace(transcript) == "" {
		return verdict.Facets{
			Method:         verdict.MethodFacets,
			Overall:        domain.NeutralScore,
			Classification: s.thresholds.Classify(domain.NeutralScore),
		}
	}

	res, err := s.completer.Complete(ctx, domain.CompletionRequest{
		System: facetJudgePrompt,
		Messages: []domain.ChatMessage{
			{Role: "user", Content: transcriptMessage(transcript)},
		},
		Temperature: 0.0,
	})
	if err != nil {
		s.logger.Warn("Facet scorer failed", zap.Error(err))
		return verdict.Facets{
			Method:         verdict.MethodFacets,
			Overall:        domain.NeutralScore,
			Classification: s.thresholds.Classify(domain.NeutralScore),
			Error:          err.Error(),
		}
	}

	var parsed struct {
		FacetScores []verdict.FacetScore `json:"facet_scores"`
	}
	if err := json.Unmarshal([]byte(stripFences(res.Content)), &parsed); err != nil {
		return verdict.Facets{
			Method:         verdict.MethodFacets,
			Overall:        domain.NeutralScore,
			Classification: s.thresholds.Classify(domain.NeutralScore),
			Error:          fmt.Sprintf("facet output parse error: %v", err),
		}
	}
	if len(parsed.FacetScores) == 0 {
		return verdict.Facets{
			Method:         verdict.MethodFacets,
			Overall:        domain.NeutralScore,
			Classification: s.thresholds.Classify(domain.NeutralScore),
			Error:          "facet output contained no facet scores",
		}
	}

	var sum float64
	for i := range parsed.FacetScores {
		parsed.FacetScores[i].Score = domain.ClampScore(parsed.FacetScores[i].Score)
		sum += parsed.FacetScores[i].Score
	}
	overall := sum / float64(len(parsed.FacetScores))

	return verdict.Facets{
		Method:         verdict.MethodFacets,
		Scores:         parsed.FacetScores,
		Overall:        round2(overall),
		Classification: s.thresholds.Classify(overall),
	}
}

func transcriptMessage(transcript string) string {
	return "INTERVIEW TRANSCRIPT (user responses only):\n\n" + transcript
}

// stripFences removes a wrapping markdown code fence from model output.
func stripFences(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	if _, rest, ok := strings.Cut(text, "\n"); ok {
		text = rest
	}
	if i := strings.LastIndex(text, "```"); i >= 0 {
		text = text[:i]
	}
	return strings.TrimSpace(text)
}
