package sentseg

import (
	"fmt"
	"strings"
)

// Mode selects how sentence runs are materialized.
type Mode int

const (
	// Trimmed strips whitespace and control characters around each sentence
	// and drops runs holding no letter or digit.
	Trimmed Mode = iota

	// RawBounds keeps every boundary-delimited run verbatim. The runs
	// partition the input: joining them reproduces it byte for byte.
	RawBounds
)

// String returns the mode name accepted by ParseMode.
func (m Mode) String() string {
	switch m {
	case Trimmed:
		return "trimmed"
	case RawBounds:
		return "raw"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a mode name ("trimmed" or "raw") to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "trimmed":
		return Trimmed, nil
	case "raw", "bounds":
		return RawBounds, nil
	default:
		return Trimmed, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}
