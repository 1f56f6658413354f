package vocab

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// lemmaHeaders are the accepted names for the lemma column, compared
// case-insensitively. "wort" is the source language's own word for "word".
var lemmaHeaders = []string{"lemma", "word", "german", "wort"}

// readLemmaColumn extracts the lemma column from a CSV vocabulary source.
// Rows shorter than the lemma column and empty cells are skipped.
func readLemmaColumn(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	defer f.Close()

	return parseLemmaColumn(f)
}

func parseLemmaColumn(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow variable column count

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("source is empty")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	col := lemmaColumnIndex(header)
	if col < 0 {
		return nil, fmt.Errorf("no lemma column in header %v", header)
	}

	var lemmas []string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		if col >= len(record) {
			continue
		}
		lemma := strings.TrimSpace(record[col])
		if lemma == "" {
			continue
		}
		lemmas = append(lemmas, lemma)
	}

	return lemmas, nil
}

// lemmaColumnIndex finds the first header cell matching a recognized
// lemma-column name, or -1.
func lemmaColumnIndex(header []string) int {
	for i, cell := range header {
		cell = strings.ToLower(strings.TrimSpace(cell))
		for _, name := range lemmaHeaders {
			if cell == name {
				return i
			}
		}
	}
	return -1
}
