package boundary

import "github.com/clipperhouse/uax29/v2/sentences"

// UAX29 segments with github.com/clipperhouse/uax29.
type UAX29 struct{}

// Spans implements Source.
func (UAX29) Spans(text string) []Span {
	if text == "" {
		return nil
	}

	var spans []Span
	start := 0
	tokens := sentences.FromString(text)
	for tokens.Next() {
		end := start + len(tokens.Value())
		spans = append(spans, Span{Start: start, End: end})
		start = end
	}
	return spans
}
