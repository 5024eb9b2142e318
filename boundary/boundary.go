// Package boundary provides UAX#29 sentence boundary sources.
//
// A Source reports the raw sentence runs of a text as byte spans. The spans
// are ordered, contiguous and cover the whole input, so concatenating the
// substrings they address reproduces the text exactly.
package boundary

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownBackend indicates a backend name that is not registered.
var ErrUnknownBackend = errors.New("boundary: unknown backend")

// Span is a half-open byte range [Start, End) within a text.
type Span struct {
	Start int
	End   int
}

// Len returns the span length in bytes.
func (s Span) Len() int { return s.End - s.Start }

// Source yields the raw sentence boundaries of a text.
// Implementations must be safe for concurrent use.
type Source interface {
	// Spans returns the sentence runs of text in order. An empty text
	// yields no spans.
	Spans(text string) []Span
}

// Backend names accepted by Lookup.
const (
	NameUAX29  = "uax29"
	NameUniseg = "uniseg"
)

var backends = map[string]Source{
	NameUAX29:  UAX29{},
	NameUniseg: Uniseg{},
}

// Default returns the default Source.
func Default() Source {
	return UAX29{}
}

// Lookup returns the Source registered under name.
func Lookup(name string) (Source, error) {
	src, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
	return src, nil
}

// Names returns the registered backend names, sorted.
func Names() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
