package sentseg

import (
	"strings"
	"testing"

	"github.com/jamesainslie/go-sentseg/boundary"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name string
		text string
		mode Mode
		want []string
	}{
		{
			name: "trimmed two sentences",
			text: "Hello world. Good morning!",
			mode: Trimmed,
			want: []string{"Hello world.", "Good morning!"},
		},
		{
			name: "trimmed questions",
			text: "Yes? No.",
			mode: Trimmed,
			want: []string{"Yes?", "No."},
		},
		{
			name: "raw keeps trailing space",
			text: "Hello world. Good morning!",
			mode: RawBounds,
			want: []string{"Hello world. ", "Good morning!"},
		},
		{
			name: "trimmed surrounding whitespace",
			text: "  One.   Two.  ",
			mode: Trimmed,
			want: []string{"One.", "Two."},
		},
		{
			name: "trimmed drops punctuation-only runs",
			text: "\n\n",
			mode: Trimmed,
			want: nil,
		},
		{
			name: "no terminal punctuation",
			text: "just some words",
			mode: Trimmed,
			want: []string{"just some words"},
		},
		{
			name: "empty trimmed",
			text: "",
			mode: Trimmed,
			want: nil,
		},
		{
			name: "empty raw",
			text: "",
			mode: RawBounds,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Segment(tt.text, tt.mode)
			if !equalStrings(got, tt.want) {
				t.Errorf("Segment(%q, %v) = %q, want %q", tt.text, tt.mode, got, tt.want)
			}
		})
	}
}

func TestSegment_RawLossless(t *testing.T) {
	texts := []string{
		"Hello world. Good morning!",
		"  padded.  \n\nAnother paragraph?  Yes!  ",
		"Ünïcödé text. 日本語の文。次の文。",
		"\t\r\n",
	}

	for _, src := range []boundary.Source{boundary.UAX29{}, boundary.Uniseg{}} {
		seg := New(WithSource(src))
		for _, text := range texts {
			if got := strings.Join(seg.Segment(text, RawBounds), ""); got != text {
				t.Errorf("%T: joined %q, want %q", src, got, text)
			}
		}
	}
}

func TestSegment_TrimmedWithinRaw(t *testing.T) {
	text := "  First one.  Second?\n\nThird! "
	seg := New()

	prev := 0
	for _, span := range seg.SegmentSpans(text, Trimmed) {
		if span.Start < prev {
			t.Fatalf("span %+v overlaps previous end %d", span, prev)
		}
		for _, r := range text[prev:span.Start] {
			if !isSeparator(r) {
				t.Errorf("elided content %q before %+v", text[prev:span.Start], span)
				break
			}
		}
		prev = span.End
	}
}

func TestSegment_Idempotent(t *testing.T) {
	text := "Mr. Smith went home. He was tired. Then? Sleep!"
	for _, mode := range []Mode{Trimmed, RawBounds} {
		first := Segment(text, mode)
		second := Segment(text, mode)
		if !equalStrings(first, second) {
			t.Errorf("mode %v: %q != %q", mode, first, second)
		}
	}
}

func TestSegmentSpans(t *testing.T) {
	text := "Hello world. Good morning!"
	got := New().SegmentSpans(text, Trimmed)
	want := []boundary.Span{{Start: 0, End: 12}, {Start: 13, End: 26}}
	if len(got) != len(want) {
		t.Fatalf("got %d spans, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("span[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

type countingBuilder struct {
	n     int
	bytes int
}

func (b *countingBuilder) Add(sentence string, _ boundary.Span) {
	b.n++
	b.bytes += len(sentence)
}

func TestSegmentTo_CustomBuilder(t *testing.T) {
	var b countingBuilder
	New().SegmentTo("One. Two. Three.", RawBounds, &b)
	if b.n != 3 {
		t.Errorf("expected 3 sentences, got %d", b.n)
	}
	if b.bytes != len("One. Two. Three.") {
		t.Errorf("expected %d bytes, got %d", len("One. Two. Three."), b.bytes)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{in: "", want: Trimmed},
		{in: "trimmed", want: Trimmed},
		{in: "RAW", want: RawBounds},
		{in: "bounds", want: RawBounds},
		{in: "words", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if got, _ := ParseMode(RawBounds.String()); got != RawBounds {
		t.Errorf("round trip of %v failed", RawBounds)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
