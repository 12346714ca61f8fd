// Package features extracts numeric linguistic features from interview
// responses. The extracted ratios are empirically associated with
// Extraversion in the personality-language literature.
package features

import (
	"math"
	"regexp"
	"strings"
)

var (
	tokenRe    = regexp.MustCompile(`\b[a-z]+(?:'[a-z]+)?\b`)
	sentenceRe = regexp.MustCompile(`[.!?]+(?:\s+|$)`)
)

// Vector holds all raw counts and derived ratios for a text span.
// It is a value object: recomputed whenever needed, never mutated.
// All ratio fields are normalized by word count except the
// exclamation/question ratios, which are per sentence.
type Vector struct {
	WordCount       int `json:"word_count"`
	SentenceCount   int `json:"sentence_count"`
	UniqueWordCount int `json:"unique_word_count"`

	ExclamationCount int `json:"exclamation_count"`
	QuestionCount    int `json:"question_count"`

	PositiveEmotionCount     int `json:"positive_emotion_count"`
	NegativeEmotionCount     int `json:"negative_emotion_count"`
	SocialReferenceCount     int `json:"social_reference_count"`
	FirstPersonSingularCount int `json:"first_person_singular_count"`
	FirstPersonPluralCount   int `json:"first_person_plural_count"`
	AssertiveCount           int `json:"assertive_count"`
	HedgingCount             int `json:"hedging_count"`
	ExcitementCount          int `json:"excitement_count"`

	HedgePhraseCount     int `json:"hedge_phrase_count"`
	AssertivePhraseCount int `json:"assertive_phrase_count"`

	AvgWordLength     float64 `json:"avg_word_length"`
	AvgSentenceLength float64 `json:"avg_sentence_length"`
	LexicalDiversity  float64 `json:"lexical_diversity"`

	PositiveEmotionRatio     float64 `json:"positive_emotion_ratio"`
	NegativeEmotionRatio     float64 `json:"negative_emotion_ratio"`
	SocialReferenceRatio     float64 `json:"social_reference_ratio"`
	FirstPersonSingularRatio float64 `json:"first_person_singular_ratio"`
	FirstPersonPluralRatio   float64 `json:"first_person_plural_ratio"`
	AssertiveRatio           float64 `json:"assertive_ratio"`
	HedgingRatio             float64 `json:"hedging_ratio"`
	ExcitementRatio          float64 `json:"excitement_ratio"`
	ExclamationRatio         float64 `json:"exclamation_ratio"`
	QuestionRatio            float64 `json:"question_ratio"`
}

// ScoringVector returns the twelve named fields used for scoring.
// This subset is the stable contract the rule scorer depends on; the
// full Vector is a superset used for display and logging only.
func (v Vector) ScoringVector() map[string]float64 {
	return map[string]float64{
		"positive_emotion_ratio":      v.PositiveEmotionRatio,
		"negative_emotion_ratio":      v.NegativeEmotionRatio,
		"social_reference_ratio":      v.SocialReferenceRatio,
		"first_person_singular_ratio": v.FirstPersonSingularRatio,
		"first_person_plural_ratio":   v.FirstPersonPluralRatio,
		"assertive_ratio":             v.AssertiveRatio,
		"hedging_ratio":               v.HedgingRatio,
		"excitement_ratio":            v.ExcitementRatio,
		"exclamation_ratio":           v.ExclamationRatio,
		"avg_sentence_length":         v.AvgSentenceLength,
		"lexical_diversity":           v.LexicalDiversity,
		"word_count":                  float64(v.WordCount),
	}
}

// Extract computes all linguistic features for a text span.
// Empty or whitespace-only input yields the zero Vector; Extract never fails.
func Extract(text string) Vector {
	if strings.TrimSpace(text) == "" {
		return Vector{}
	}

	words := tokenize(text)
	wordCount := len(words)
	if wordCount == 0 {
		return Vector{}
	}

	sentenceCount := countSentences(text)

	unique := make(map[string]struct{}, wordCount)
	var letterTotal int
	for _, w := range words {
		unique[w] = struct{}{}
		letterTotal += len(strings.ReplaceAll(w, "'", ""))
	}

	exclamations := strings.Count(text, "!")
	questions := strings.Count(text, "?")

	positive := countMatches(words, positiveEmotion)
	negative := countMatches(words, negativeEmotion)
	social := countMatches(words, socialReferences)
	fpSingular := countMatches(words, firstPersonSingular)
	fpPlural := countMatches(words, firstPersonPlural)
	assertive := countMatches(words, assertiveLanguage)
	hedging := countMatches(words, hedgingLanguage)
	excitement := countMatches(words, excitementWords)

	hedgePhraseHits := countPhrases(text, hedgePhrases)
	assertivePhraseHits := countPhrases(text, assertivePhrases)

	// Phrase hits fold into the single-word counts for the combined ratios.
	totalHedge := hedging + hedgePhraseHits
	totalAssertive := assertive + assertivePhraseHits

	wc := float64(wordCount)
	sc := float64(sentenceCount)
	ratio := func(count int) float64 { return round(float64(count)/wc, 4) }

	return Vector{
		WordCount:       wordCount,
		SentenceCount:   sentenceCount,
		UniqueWordCount: len(unique),

		ExclamationCount: exclamations,
		QuestionCount:    questions,

		PositiveEmotionCount:     positive,
		NegativeEmotionCount:     negative,
		SocialReferenceCount:     social,
		FirstPersonSingularCount: fpSingular,
		FirstPersonPluralCount:   fpPlural,
		AssertiveCount:           totalAssertive,
		HedgingCount:             totalHedge,
		ExcitementCount:          excitement,

		HedgePhraseCount:     hedgePhraseHits,
		AssertivePhraseCount: assertivePhraseHits,

		AvgWordLength:     round(float64(letterTotal)/wc, 3),
		AvgSentenceLength: round(wc/sc, 2),
		LexicalDiversity:  round(float64(len(unique))/wc, 3),

		PositiveEmotionRatio:     ratio(positive),
		NegativeEmotionRatio:     ratio(negative),
		SocialReferenceRatio:     ratio(social),
		FirstPersonSingularRatio: ratio(fpSingular),
		FirstPersonPluralRatio:   ratio(fpPlural),
		AssertiveRatio:           ratio(totalAssertive),
		HedgingRatio:             ratio(totalHedge),
		ExcitementRatio:          ratio(excitement),
		ExclamationRatio:         round(float64(exclamations)/sc, 4),
		QuestionRatio:            round(float64(questions)/sc, 4),
	}
}

// ExtractAll extracts features from the concatenation of multiple turns.
func ExtractAll(turns []string) Vector {
	parts := make([]string, 0, len(turns))
	for _, t := range turns {
		if s := strings.TrimSpace(t); s != "" {
			parts = append(parts, s)
		}
	}
	return Extract(strings.Join(parts, " "))
}

// AggregateTurns computes the mean scoring vector across per-turn features.
// Returns nil for empty input.
func AggregateTurns(turnFeatures []Vector) map[string]float64 {
	if len(turnFeatures) == 0 {
		return nil
	}

	sums := make(map[string]float64)
	for _, tf := range turnFeatures {
		for k, v := range tf.ScoringVector() {
			sums[k] += v
		}
	}

	n := float64(len(turnFeatures))
	means := make(map[string]float64, len(sums))
	for k, sum := range sums {
		means[k] = round(sum/n, 4)
	}
	return means
}

// tokenize splits text into lowercase word tokens, preserving internal
// apostrophes so contractions count as one token. Smart quotes are
// normalized to ASCII first.
func tokenize(text string) []string {
	r := strings.NewReplacer(
		"’", "'", "‘", "'",
		"“", `"`, "”", `"`,
	)
	return tokenRe.FindAllString(strings.ToLower(r.Replace(text)), -1)
}

// countSentences counts sentences with a punctuation-boundary heuristic:
// split on one-or-more .!? followed by whitespace or end, floor of 1.
func countSentences(text string) int {
	n := 0
	for _, s := range sentenceRe.Split(strings.TrimSpace(text), -1) {
		if strings.TrimSpace(s) != "" {
			n++
		}
	}
	if n < 1 {
		return 1
	}
	return n
}

func countMatches(words []string, set map[string]struct{}) int {
	n := 0
	for _, w := range words {
		if _, ok := set[w]; ok {
			n++
		}
	}
	return n
}

// countPhrases counts multi-word phrase occurrences over the raw
// lowercased text, not tokens.
func countPhrases(text string, phrases []string) int {
	lower := strings.ToLower(text)
	n := 0
	for _, p := range phrases {
		n += strings.Count(lower, p)
	}
	return n
}

func round(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}
