package scoring

import (
	"context"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/Recognifygeneral/Psychometricist-AI/internal/domain"
	"github.com/Recognifygeneral/Psychometricist-AI/internal/domain/verdict"
)

// similarityAmplification expands the balance signal before mapping to
// the 1-5 scale. Cosine similarities to both poles tend to be close.
const similarityAmplification = 3.0

// SimilarityScorer scores the transcript by comparing its embedding
// against reference vignettes of both trait poles.
type SimilarityScorer struct {
	embedder   domain.Embedder
	batch      domain.BatchEmbedder
	thresholds domain.Thresholds
	minWords   int
	logger     *zap.Logger
}

// NewSimilarityScorer creates the embedding similarity scorer.
// minWords guards against scoring transcripts too short to carry signal.
func NewSimilarityScorer(
	embedder domain.Embedder,
	batch domain.BatchEmbedder,
	thresholds domain.Thresholds,
	minWords int,
	logger *zap.Logger,
) *SimilarityScorer {
	return &SimilarityScorer{
		embedder:   embedder,
		batch:      batch,
		thresholds: thresholds,
		minWords:   minWords,
		logger:     logger,
	}
}

// Score embeds the transcript and both vignette sets, then maps the
// relative similarity balance to a trait score:
//
//	balance = (highSim − lowSim) / (highSim + lowSim)
//	score   = clip(3.0 + 3.0·balance, 1, 5)
//
// Provider failures degrade to a neutral verdict with the error recorded,
// they never propagate.
func (s *SimilarityScorer) Score(ctx context.Context, transcript string) verdict.Similarity {
	wordCount := len(strings.Fields(transcript))
	if wordCount < s.minWords {
		out := verdict.Similarity{Verdict: verdict.Neutral(verdict.MethodSimilarity, s.thresholds)}
		out.Warning = fmt.Sprintf("Transcript too short (%d words < %d). Defaulting to neutral.",
			wordCount, s.minWords)
		return out
	}

	userRes, err := s.embedder.Embed(ctx, transcript)
	if err != nil {
		return s.failed(fmt.Errorf("embed transcript: %w", err))
	}

	highSim, err := s.meanSimilarity(ctx, userRes.Embedding, highExtraversionRefs)
	if err != nil {
		return s.failed(fmt.Errorf("embed high pole references: %w", err))
	}
	lowSim, err := s.meanSimilarity(ctx, userRes.Embedding, lowExtraversionRefs)
	if err != nil {
		return s.failed(fmt.Errorf("embed low pole references: %w", err))
	}

	var balance float64
	if denom := highSim + lowSim; denom >= 1e-8 {
		balance = (highSim - lowSim) / denom
	}

	amplified := balance * similarityAmplification
	score := domain.ClampScore(domain.NeutralScore + amplified)

	return verdict.Similarity{
		Verdict: verdict.Verdict{
			Method:         verdict.MethodSimilarity,
			Score:          round2(score),
			Classification: s.thresholds.Classify(score),
			Confidence:     round3(math.Min(1.0, math.Abs(amplified)/1.5)),
		},
		HighSimilarity: round4(highSim),
		LowSimilarity:  round4(lowSim),
		Balance:        round4(balance),
	}
}

func (s *SimilarityScorer) meanSimilarity(ctx context.Context, user []float32, refs []string) (float64, error) {
	res, err := s.batch.BatchEmbed(ctx, refs)
	if err != nil {
		return 0, err
	}

	var sum float64
	for _, ref := range res.Embeddings {
		sum += cosineSimilarity(user, ref)
	}
	return sum / float64(len(res.Embeddings)), nil
}

func (s *SimilarityScorer) failed(err error) verdict.Similarity {
	s.logger.Warn("Similarity scorer failed", zap.Error(err))
	out := verdict.Similarity{Verdict: verdict.Neutral(verdict.MethodSimilarity, s.thresholds)}
	out.Error = fmt.Sprintf("Similarity scorer failed: %v", err)
	return out
}

func cosineSimilarity(a, b []float32) float64 {
	var dot, normA, normB float64
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	norm := math.Sqrt(normA) * math.Sqrt(normB)
	if norm == 0 {
		return 0
	}
	return dot / norm
}
