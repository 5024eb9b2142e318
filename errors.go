package sentseg

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrInvalidWorkerCount indicates a worker override below one.
	ErrInvalidWorkerCount = errors.New("sentseg: invalid worker count")

	// ErrBudgetUnavailable indicates the host could not report its logical CPU count.
	ErrBudgetUnavailable = errors.New("sentseg: worker budget unavailable")

	// ErrUnknownMode indicates a mode name that ParseMode does not recognize.
	ErrUnknownMode = errors.New("sentseg: unknown segmentation mode")
)
