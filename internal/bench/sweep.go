package bench

import (
	"context"
	"sort"
	"time"

	"github.com/samber/lo"

	sentseg "github.com/jamesainslie/go-sentseg"
)

// SweepResult holds the timing of one worker count.
type SweepResult struct {
	Workers    int
	Elapsed    time.Duration // fastest round
	TextsPerMS float64
}

// SweepWorkerCounts returns the powers of two below limit, plus limit.
func SweepWorkerCounts(limit int) []int {
	if limit < 1 {
		limit = 1
	}
	var counts []int
	for n := 1; n < limit; n *= 2 {
		counts = append(counts, n)
	}
	return lo.Uniq(append(counts, limit))
}

// SweepWorkers times SegmentBatchN over texts for each worker count and
// returns results sorted by throughput, fastest first. Each count runs
// rounds times and keeps its fastest round.
func SweepWorkers(ctx context.Context, seg *sentseg.Segmenter, texts []string, workers []int, rounds int) ([]SweepResult, error) {
	if rounds < 1 {
		rounds = 1
	}

	results := make([]SweepResult, 0, len(workers))
	for _, w := range workers {
		var best time.Duration
		for r := 0; r < rounds; r++ {
			start := time.Now()
			if _, err := seg.SegmentBatchN(ctx, texts, sentseg.Trimmed, w); err != nil {
				return nil, err
			}
			if elapsed := time.Since(start); r == 0 || elapsed < best {
				best = elapsed
			}
		}

		res := SweepResult{Workers: w, Elapsed: best}
		if ms := float64(best) / float64(time.Millisecond); ms > 0 {
			res.TextsPerMS = float64(len(texts)) / ms
		}
		results = append(results, res)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Elapsed < results[j].Elapsed
	})

	return results, nil
}
