package bench

import (
	"math"
	"testing"

	sentseg "github.com/jamesainslie/go-sentseg"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEvaluate(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name      string
		predicted []int
		truth     []int
		tol       int
		wantTP    int
		wantFP    int
		wantFN    int
	}{
		{name: "perfect", predicted: []int{10, 20}, truth: []int{10, 20}, wantTP: 2},
		{name: "extra prediction", predicted: []int{5, 10, 20}, truth: []int{10, 20}, wantTP: 2, wantFP: 1},
		{name: "missed boundary", predicted: []int{10}, truth: []int{10, 20}, wantTP: 1, wantFN: 1},
		{name: "within tolerance", predicted: []int{11, 19}, truth: []int{10, 20}, tol: 1, wantTP: 2},
		{name: "outside tolerance", predicted: []int{13}, truth: []int{10}, tol: 2, wantFP: 1, wantFN: 1},
		{name: "empty", wantTP: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cfg
			c.Tolerance = tt.tol
			m := Evaluate(tt.predicted, tt.truth, c)
			if m.TruePositives != tt.wantTP || m.FalsePositives != tt.wantFP || m.FalseNegatives != tt.wantFN {
				t.Errorf("got TP=%d FP=%d FN=%d, want TP=%d FP=%d FN=%d",
					m.TruePositives, m.FalsePositives, m.FalseNegatives, tt.wantTP, tt.wantFP, tt.wantFN)
			}
		})
	}
}

func TestScore(t *testing.T) {
	m := Score(3, 1, 2, Config{PrecisionWeight: 2, RecallWeight: 1})

	if !almostEqual(m.Precision, 0.75) {
		t.Errorf("Precision = %f, want 0.75", m.Precision)
	}
	if !almostEqual(m.Recall, 0.6) {
		t.Errorf("Recall = %f, want 0.6", m.Recall)
	}
	if !almostEqual(m.F1, 2*0.75*0.6/1.35) {
		t.Errorf("F1 = %f", m.F1)
	}
	if !almostEqual(m.WeightedScore, (2*0.75+0.6)/3) {
		t.Errorf("WeightedScore = %f", m.WeightedScore)
	}
}

func TestEvaluateDocument(t *testing.T) {
	text, sentences := ParseSentences("Hello world.\nGood morning!\nYes? No.")
	doc := &Document{ID: "inline", Text: text, Sentences: sentences}

	m := EvaluateDocument(sentseg.New(), doc, DefaultConfig())

	// "Yes? No." is one ground-truth line but two UAX#29 sentences.
	if m.TruePositives != 3 || m.FalsePositives != 1 || m.FalseNegatives != 0 {
		t.Errorf("got %+v", m)
	}
}

func TestEvaluateCorpus(t *testing.T) {
	var docs []*Document
	for _, body := range []string{"One.\nTwo.", "Three!"} {
		text, sentences := ParseSentences(body)
		docs = append(docs, &Document{Text: text, Sentences: sentences})
	}

	m := EvaluateCorpus(sentseg.New(), docs, DefaultConfig())
	if m.TruePositives != 3 || !almostEqual(m.F1, 1) {
		t.Errorf("got %+v, want 3 true positives and F1 1", m)
	}
}
