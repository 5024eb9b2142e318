// Package sentseg splits text into sentences on Unicode UAX#29 sentence
// boundaries, one text at a time or in large batches.
//
// # Quick Start
//
//	sentences := sentseg.Segment("Hello world. Good morning!", sentseg.Trimmed)
//	// ["Hello world." "Good morning!"]
//
//	results, err := sentseg.SegmentBatch(ctx, texts, sentseg.Trimmed)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Modes
//
// Trimmed (the default) returns sentences without surrounding whitespace
// and skips runs that contain no letter or digit. RawBounds returns every
// run verbatim, so the sentences of a text join back into the text.
//
// # Batches
//
// SegmentBatch processes a batch serially when it holds fewer texts than
// workers, and otherwise splits it into at most one contiguous chunk per
// worker and segments the chunks concurrently. Either way result i belongs
// to text i. The default worker count is the number of online logical
// CPUs, queried once per process; see DefaultWorkerBudget.
//
// # Thread Safety
//
// Segmenter is safe for concurrent use.
package sentseg
