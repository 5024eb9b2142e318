package sentseg

import (
	"log/slog"
	"unicode"
	"unicode/utf8"

	"github.com/jamesainslie/go-sentseg/boundary"
)

// Segmenter splits text into sentences on UAX#29 sentence boundaries.
// It is safe for concurrent use.
type Segmenter struct {
	source     boundary.Source
	workers    int
	workersSet bool
	budget     *budget
	logger     *slog.Logger
}

// New creates a Segmenter.
func New(opts ...Option) *Segmenter {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Segmenter{
		source:     cfg.source,
		workers:    cfg.workers,
		workersSet: cfg.workersSet,
		budget:     processBudget,
		logger:     cfg.logger,
	}
}

// Builder receives the sentences of a text in order. It lets callers
// collect sentences into any container without a second pass.
type Builder interface {
	Add(sentence string, span boundary.Span)
}

// SegmentTo feeds the sentences of text to b in order.
func (s *Segmenter) SegmentTo(text string, mode Mode, b Builder) {
	for _, span := range s.source.Spans(text) {
		if mode == RawBounds {
			b.Add(text[span.Start:span.End], span)
			continue
		}
		if trimmed, ok := trim(text, span); ok {
			b.Add(text[trimmed.Start:trimmed.End], trimmed)
		}
	}
}

// Segment returns the sentences of text in order. An empty text yields
// no sentences. The returned strings share memory with text.
func (s *Segmenter) Segment(text string, mode Mode) []string {
	var b sentences
	s.SegmentTo(text, mode, &b)
	return b
}

// SegmentSpans returns the byte spans of the sentences of text.
func (s *Segmenter) SegmentSpans(text string, mode Mode) []boundary.Span {
	var b spans
	s.SegmentTo(text, mode, &b)
	return b
}

type sentences []string

func (b *sentences) Add(sentence string, _ boundary.Span) { *b = append(*b, sentence) }

type spans []boundary.Span

func (b *spans) Add(_ string, span boundary.Span) { *b = append(*b, span) }

// trim narrows span to its content, skipping surrounding whitespace and
// control characters. ok is false when the run holds no letter or digit.
func trim(text string, span boundary.Span) (boundary.Span, bool) {
	start, end := span.Start, span.End
	for start < end {
		r, size := utf8.DecodeRuneInString(text[start:end])
		if !isSeparator(r) {
			break
		}
		start += size
	}
	for end > start {
		r, size := utf8.DecodeLastRuneInString(text[start:end])
		if !isSeparator(r) {
			break
		}
		end -= size
	}

	for _, r := range text[start:end] {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return boundary.Span{Start: start, End: end}, true
		}
	}
	return boundary.Span{}, false
}

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsControl(r)
}

var defaultSegmenter = New()

// Segment splits text into sentences with the default Segmenter.
func Segment(text string, mode Mode) []string {
	return defaultSegmenter.Segment(text, mode)
}
