//go:build ignore

// Convert Universal Dependencies CoNLL-U files into sentseg-bench corpus
// files: a "# Source:" header followed by one gold sentence per line.
// Each "# newdoc id" starts a new corpus file.
// Usage: go run ./scripts/conllu-corpus.go -in en_ewt-ud-test.conllu -out testdata/corpus
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

const source = "https://github.com/UniversalDependencies/UD_English-EWT"

// document is one CoNLL-U document with its sentence texts.
type document struct {
	ID        string
	Sentences []string
}

var unsafeID = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

func main() {
	inFile := flag.String("in", "", "CoNLL-U input file (required)")
	outDir := flag.String("out", "testdata/corpus", "Output directory")
	minSentences := flag.Int("min", 3, "Skip documents with fewer sentences")
	flag.Parse()

	if *inFile == "" {
		fmt.Fprintln(os.Stderr, "error: -in required")
		os.Exit(1)
	}

	docs, err := readCoNLLU(*inFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", *inFile, err)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", *outDir, err)
		os.Exit(1)
	}

	written := 0
	for _, doc := range docs {
		if len(doc.Sentences) < *minSentences {
			continue
		}
		path := filepath.Join(*outDir, unsafeID.ReplaceAllString(doc.ID, "_")+".txt")
		if err := writeDocument(path, doc); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
			continue
		}
		written++
	}

	fmt.Printf("Wrote %d of %d documents to %s\n", written, len(docs), *outDir)
}

func readCoNLLU(path string) ([]document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	var (
		docs    []document
		current *document
	)

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()

		if id, ok := strings.CutPrefix(line, "# newdoc id = "); ok {
			docs = append(docs, document{ID: strings.TrimSpace(id)})
			current = &docs[len(docs)-1]
			continue
		}

		if text, ok := strings.CutPrefix(line, "# text = "); ok {
			if current == nil {
				docs = append(docs, document{ID: "doc"})
				current = &docs[len(docs)-1]
			}
			current.Sentences = append(current.Sentences, strings.TrimSpace(text))
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning file: %w", err)
	}
	return docs, nil
}

func writeDocument(path string, doc document) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# Source: %s\n# Title: %s\n\n", source, doc.ID)
	for _, s := range doc.Sentences {
		b.WriteString(s)
		b.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}
