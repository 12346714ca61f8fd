package verdict

import (
	"testing"

	"github.com/Recognifygeneral/Psychometricist-AI/internal/domain"
)

func TestVerdict_Usable(t *testing.T) {
	ok := Verdict{Method: MethodRule, Score: 3.2}
	if !ok.Usable() {
		t.Error("verdict without error must be usable")
	}

	failed := Verdict{Method: MethodJudgment, Error: "provider unavailable"}
	if failed.Usable() {
		t.Error("verdict carrying an error must not be usable")
	}
}

func TestNeutral(t *testing.T) {
	v := Neutral(MethodSimilarity, domain.DefaultThresholds())

	if v.Method != MethodSimilarity {
		t.Errorf("Method = %q, want %q", v.Method, MethodSimilarity)
	}
	if v.Score != domain.NeutralScore {
		t.Errorf("Score = %v, want %v", v.Score, domain.NeutralScore)
	}
	if v.Classification != domain.ClassificationMedium {
		t.Errorf("Classification = %v, want Medium at the midpoint", v.Classification)
	}
	if v.Confidence != 0 {
		t.Errorf("Confidence = %v, want 0", v.Confidence)
	}
}

func TestEnsemble_PerMethod(t *testing.T) {
	e := &Ensemble{
		Rule: &Rule{Verdict: Verdict{Method: MethodRule, Score: 2.8}},
		Judgment: &Judgment{
			Verdict:  Verdict{Method: MethodJudgment, Score: 4.1},
			Evidence: "frequent social references",
		},
	}

	per := e.PerMethod()
	if len(per) != 2 {
		t.Fatalf("len = %d, want 2 (similarity absent)", len(per))
	}
	if per[MethodRule].Score != 2.8 {
		t.Errorf("rule score = %v, want 2.8", per[MethodRule].Score)
	}
	if per[MethodJudgment].Score != 4.1 {
		t.Errorf("judgment score = %v, want 4.1", per[MethodJudgment].Score)
	}
	if _, ok := per[MethodSimilarity]; ok {
		t.Error("similarity must be absent when not populated")
	}
}
