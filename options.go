package sentseg

import (
	"log/slog"

	"github.com/jamesainslie/go-sentseg/boundary"
)

// Option configures a Segmenter.
type Option func(*config)

type config struct {
	source     boundary.Source
	workers    int
	workersSet bool
	logger     *slog.Logger
}

func defaultConfig() config {
	return config{
		source: boundary.Default(),
		logger: slog.Default(),
	}
}

// WithSource sets the boundary source (default: boundary.UAX29).
func WithSource(src boundary.Source) Option {
	return func(c *config) {
		if src != nil {
			c.source = src
		}
	}
}

// WithWorkers fixes the worker count used by SegmentBatch
// (default: DefaultWorkerBudget). Values below one are reported as
// ErrInvalidWorkerCount when a batch is segmented.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
		c.workersSet = true
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
