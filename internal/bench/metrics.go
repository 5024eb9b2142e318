package bench

import (
	sentseg "github.com/jamesainslie/go-sentseg"
)

// Config holds evaluation parameters.
type Config struct {
	Tolerance       int // byte match tolerance
	PrecisionWeight float64
	RecallWeight    float64
}

// DefaultConfig returns default evaluation configuration.
func DefaultConfig() Config {
	return Config{
		Tolerance:       0,
		PrecisionWeight: 1.0,
		RecallWeight:    1.0,
	}
}

// Metrics holds evaluation results.
type Metrics struct {
	TruePositives  int
	FalsePositives int
	FalseNegatives int
	Precision      float64
	Recall         float64
	F1             float64
	WeightedScore  float64
}

// Evaluate compares predicted boundaries against ground truth.
// Uses greedy left-to-right matching within tolerance.
func Evaluate(predicted, truth []int, cfg Config) Metrics {
	matched := make([]bool, len(truth))
	tp := 0

	for _, p := range predicted {
		for i, t := range truth {
			if matched[i] {
				continue
			}
			diff := p - t
			if diff < 0 {
				diff = -diff
			}
			if diff <= cfg.Tolerance {
				matched[i] = true
				tp++
				break
			}
		}
	}

	return Score(tp, len(predicted)-tp, len(truth)-tp, cfg)
}

// Score derives precision, recall, F1 and the weighted score from counts.
func Score(tp, fp, fn int, cfg Config) Metrics {
	m := Metrics{
		TruePositives:  tp,
		FalsePositives: fp,
		FalseNegatives: fn,
	}

	if tp+fp > 0 {
		m.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		m.Recall = float64(tp) / float64(tp+fn)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}

	wp := cfg.PrecisionWeight
	wr := cfg.RecallWeight
	if wp+wr > 0 {
		m.WeightedScore = (wp*m.Precision + wr*m.Recall) / (wp + wr)
	}

	return m
}

// Add sums the counts of two results and rescores them.
func (m Metrics) Add(other Metrics, cfg Config) Metrics {
	return Score(
		m.TruePositives+other.TruePositives,
		m.FalsePositives+other.FalsePositives,
		m.FalseNegatives+other.FalseNegatives,
		cfg,
	)
}

// EvaluateDocument segments doc.Text in Trimmed mode and scores the
// sentence end offsets against the ground truth.
func EvaluateDocument(seg *sentseg.Segmenter, doc *Document, cfg Config) Metrics {
	spans := seg.SegmentSpans(doc.Text, sentseg.Trimmed)
	predicted := make([]int, len(spans))
	for i, s := range spans {
		predicted[i] = s.End
	}
	return Evaluate(predicted, doc.Boundaries(), cfg)
}

// EvaluateCorpus sums EvaluateDocument over docs.
func EvaluateCorpus(seg *sentseg.Segmenter, docs []*Document, cfg Config) Metrics {
	var total Metrics
	for _, doc := range docs {
		total = total.Add(EvaluateDocument(seg, doc, cfg), cfg)
	}
	return total
}
