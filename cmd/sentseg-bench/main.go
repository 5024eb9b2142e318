package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	sentseg "github.com/jamesainslie/go-sentseg"
	"github.com/jamesainslie/go-sentseg/boundary"
	"github.com/jamesainslie/go-sentseg/internal/bench"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		corpusDir = flag.String("corpus", "testdata/corpus", "Directory containing corpus files")
		backends  = flag.String("backends", strings.Join(boundary.Names(), ","), "Comma-separated boundary backends to compare")
		tolerance = flag.Int("tolerance", 0, "Byte tolerance for boundary matching")
		wp        = flag.Float64("wp", 1.0, "Precision weight")
		wr        = flag.Float64("wr", 1.0, "Recall weight")
		sweep     = flag.Bool("sweep", false, "Run a worker-count throughput sweep")
		maxWork   = flag.Int("max-workers", 0, "Largest worker count in the sweep (default: online CPUs)")
		repeat    = flag.Int("repeat", 64, "Times the corpus is repeated to form the sweep batch")
		rounds    = flag.Int("rounds", 3, "Timed rounds per worker count")
		showVer   = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVer {
		fmt.Printf("sentseg-bench %s (commit %s, built %s)\n", version, commit, date)
		return
	}

	docs, err := bench.LoadCorpus(*corpusDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading corpus: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d documents from %s\n\n", len(docs), *corpusDir)

	cfg := bench.Config{
		Tolerance:       *tolerance,
		PrecisionWeight: *wp,
		RecallWeight:    *wr,
	}

	var sources []namedSource
	for _, name := range strings.Split(*backends, ",") {
		src, err := boundary.Lookup(strings.TrimSpace(name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		sources = append(sources, namedSource{name: strings.TrimSpace(name), src: src})
	}

	runAccuracy(docs, sources, cfg)

	if *sweep {
		limit := *maxWork
		if limit == 0 {
			limit, err = sentseg.DefaultWorkerBudget()
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}
		}
		runSweep(context.Background(), docs, sources[0], limit, *repeat, *rounds)
	}
}

type namedSource struct {
	name string
	src  boundary.Source
}

func runAccuracy(docs []*bench.Document, sources []namedSource, cfg bench.Config) {
	fmt.Printf("Backend Comparison (wp=%.1f, wr=%.1f)\n", cfg.PrecisionWeight, cfg.RecallWeight)
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("%-10s %-8s %-8s %-8s %-8s\n", "Backend", "Prec", "Rec", "F1", "Weighted")

	for _, ns := range sources {
		m := bench.EvaluateCorpus(sentseg.New(sentseg.WithSource(ns.src)), docs, cfg)
		fmt.Printf("%-10s %-8.2f %-8.2f %-8.2f %-8.2f\n",
			ns.name, m.Precision, m.Recall, m.F1, m.WeightedScore)
	}
	fmt.Println()
}

func runSweep(ctx context.Context, docs []*bench.Document, ns namedSource, limit, repeat, rounds int) {
	texts := make([]string, 0, len(docs)*repeat)
	for i := 0; i < repeat; i++ {
		texts = append(texts, bench.Texts(docs)...)
	}

	fmt.Printf("Worker Sweep (%s, %d texts, %d rounds)\n", ns.name, len(texts), rounds)
	fmt.Println(strings.Repeat("-", 40))
	fmt.Printf("%-8s %-14s %-12s\n", "Workers", "Elapsed", "Texts/ms")

	results, err := bench.SweepWorkers(ctx, sentseg.New(sentseg.WithSource(ns.src)), texts, bench.SweepWorkerCounts(limit), rounds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error during sweep: %v\n", err)
		os.Exit(1)
	}

	for _, r := range results {
		fmt.Printf("%-8d %-14s %-12.1f\n", r.Workers, r.Elapsed, r.TextsPerMS)
	}

	fmt.Println(strings.Repeat("-", 40))
	if len(results) > 0 {
		fmt.Printf("Fastest: %d workers\n", results[0].Workers)
	}
}
