// Package bench measures sentence segmentation accuracy and batch throughput.
package bench

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Header contains metadata parsed from the comment header of a corpus file.
type Header struct {
	Source string
	Title  string
}

// ParseHeader extracts metadata from leading "# Key: value" lines.
// Returns the header, the text after the header, and any error.
func ParseHeader(text string) (Header, string, error) {
	var h Header
	scanner := bufio.NewScanner(strings.NewReader(text))
	offset := 0
	bodyStart := len(text)

	for scanner.Scan() {
		line := scanner.Text()
		lineStart := offset
		offset += len(line) + 1

		if strings.TrimSpace(line) == "" {
			continue
		}
		if !strings.HasPrefix(line, "#") {
			bodyStart = lineStart
			break
		}

		line = strings.TrimSpace(strings.TrimPrefix(line, "#"))
		if value, ok := strings.CutPrefix(line, "Source:"); ok {
			h.Source = strings.TrimSpace(value)
		} else if value, ok := strings.CutPrefix(line, "Title:"); ok {
			h.Title = strings.TrimSpace(value)
		}
	}

	if err := scanner.Err(); err != nil {
		return Header{}, "", fmt.Errorf("scan header: %w", err)
	}

	if h.Source == "" {
		return Header{}, "", errors.New("missing Source in header")
	}

	return h, text[bodyStart:], nil
}

// Sentence is a ground-truth sentence with byte offsets into Document.Text.
type Sentence struct {
	Text  string
	Start int
	End   int
}

// ParseSentences reads one sentence per non-blank line and joins them with
// single spaces. It returns the joined text and the sentence offsets in it.
func ParseSentences(body string) (string, []Sentence) {
	var (
		b         strings.Builder
		sentences []Sentence
	)
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		start := b.Len()
		b.WriteString(line)
		sentences = append(sentences, Sentence{Text: line, Start: start, End: b.Len()})
	}
	return b.String(), sentences
}

// Document is a corpus file with its ground-truth segmentation.
type Document struct {
	ID        string // filename without extension
	Source    string
	Title     string
	Text      string
	Sentences []Sentence
}

// Boundaries returns the end offset of every ground-truth sentence.
func (d *Document) Boundaries() []int {
	ends := make([]int, len(d.Sentences))
	for i, s := range d.Sentences {
		ends[i] = s.End
	}
	return ends
}

// LoadDocument loads and parses a corpus file.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	header, body, err := ParseHeader(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}

	text, sentences := ParseSentences(body)
	base := filepath.Base(path)

	return &Document{
		ID:        strings.TrimSuffix(base, filepath.Ext(base)),
		Source:    header.Source,
		Title:     header.Title,
		Text:      text,
		Sentences: sentences,
	}, nil
}

// LoadCorpus loads all .txt files from a directory.
func LoadCorpus(dir string) ([]*Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var docs []*Document
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".txt" {
			continue
		}

		doc, err := LoadDocument(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", entry.Name(), err)
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

// Texts returns the text of every document, in order.
func Texts(docs []*Document) []string {
	texts := make([]string, len(docs))
	for i, d := range docs {
		texts[i] = d.Text
	}
	return texts
}
