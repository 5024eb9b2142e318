package boundary

import "github.com/rivo/uniseg"

// Uniseg segments with github.com/rivo/uniseg.
type Uniseg struct{}

// Spans implements Source.
func (Uniseg) Spans(text string) []Span {
	var (
		spans    []Span
		sentence string
		start    int
	)
	rest, state := text, -1
	for rest != "" {
		sentence, rest, state = uniseg.FirstSentenceInString(rest, state)
		end := start + len(sentence)
		spans = append(spans, Span{Start: start, End: end})
		start = end
	}
	return spans
}
