package sentseg

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

type strategy int

const (
	serial strategy = iota
	parallel
)

func (s strategy) String() string {
	if s == parallel {
		return "parallel"
	}
	return "serial"
}

// plan describes how a batch is dispatched.
type plan struct {
	strategy  strategy
	workers   int
	chunkSize int // parallel only
}

// planBatch picks the execution strategy for n texts and workers workers.
// Parallel dispatch only pays off once every worker has at least one text.
// ceil(n/workers) keeps the chunk count at or below workers.
func planBatch(n, workers int) plan {
	if n < workers {
		return plan{strategy: serial, workers: workers}
	}
	return plan{
		strategy:  parallel,
		workers:   workers,
		chunkSize: (n + workers - 1) / workers,
	}
}

// SegmentBatch segments every text in texts. Result i holds the sentences
// of texts[i]. The worker count is the one set by WithWorkers, or
// DefaultWorkerBudget when none was set.
func (s *Segmenter) SegmentBatch(ctx context.Context, texts []string, mode Mode) ([][]string, error) {
	if s.workersSet {
		return s.SegmentBatchN(ctx, texts, mode, s.workers)
	}
	return s.segmentBatch(ctx, texts, mode, 0)
}

// SegmentBatchN is SegmentBatch with an explicit worker count, which must
// be at least one.
func (s *Segmenter) SegmentBatchN(ctx context.Context, texts []string, mode Mode, workers int) ([][]string, error) {
	if workers < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWorkerCount, workers)
	}
	return s.segmentBatch(ctx, texts, mode, workers)
}

// segmentBatch dispatches texts; workers == 0 selects the process budget.
func (s *Segmenter) segmentBatch(ctx context.Context, texts []string, mode Mode, workers int) ([][]string, error) {
	if len(texts) == 0 {
		return [][]string{}, nil
	}

	if workers == 0 {
		n, err := s.budget.get()
		if err != nil {
			return nil, err
		}
		workers = n
	}

	p := planBatch(len(texts), workers)
	s.logger.DebugContext(ctx, "dispatching batch",
		slog.Int("texts", len(texts)),
		slog.String("strategy", p.strategy.String()),
		slog.Int("workers", p.workers),
		slog.Int("chunk_size", p.chunkSize),
		slog.String("mode", mode.String()),
	)

	if p.strategy == serial {
		return s.segmentSerial(ctx, texts, mode)
	}
	return s.segmentParallel(ctx, texts, mode, p.chunkSize)
}

func (s *Segmenter) segmentSerial(ctx context.Context, texts []string, mode Mode) ([][]string, error) {
	results := make([][]string, 0, len(texts))
	for _, text := range texts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		results = append(results, s.Segment(text, mode))
	}
	return results, nil
}

// segmentParallel runs one goroutine per contiguous chunk. Each chunk
// writes only its own slot, so joining the slots in order restores the
// input order.
func (s *Segmenter) segmentParallel(ctx context.Context, texts []string, mode Mode, chunkSize int) ([][]string, error) {
	chunks := lo.Chunk(texts, chunkSize)
	slots := make([][][]string, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	for i, chunk := range chunks {
		g.Go(func() error {
			local := make([][]string, 0, len(chunk))
			for _, text := range chunk {
				if err := gctx.Err(); err != nil {
					return err
				}
				local = append(local, s.Segment(text, mode))
			}
			slots[i] = local
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return lo.Flatten(slots), nil
}

// SegmentBatch segments texts with the default Segmenter and worker budget.
func SegmentBatch(ctx context.Context, texts []string, mode Mode) ([][]string, error) {
	return defaultSegmenter.SegmentBatch(ctx, texts, mode)
}

// SegmentBatchN segments texts with the default Segmenter and an explicit
// worker count.
func SegmentBatchN(ctx context.Context, texts []string, mode Mode, workers int) ([][]string, error) {
	return defaultSegmenter.SegmentBatchN(ctx, texts, mode, workers)
}
