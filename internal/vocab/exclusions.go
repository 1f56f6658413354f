package vocab

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/patri2022onw/GermanTextLevel/internal/domain"
)

// Exclusions holds the two disjoint sets of lemmas dropped from
// classification: stopwords loaded from a file and the fixed closed-class
// core-word set.
type Exclusions struct {
	stopwords map[string]struct{}
	core      map[string]struct{}
}

// NewExclusions loads the stopword file and combines it with the built-in
// core-word set. A missing or unreadable stopword file is logged and
// treated as an empty set; core words are always present.
func NewExclusions(stopwordPath string, log *slog.Logger) *Exclusions {
	e := &Exclusions{
		stopwords: make(map[string]struct{}),
		core:      coreWordSet(),
	}

	if stopwordPath == "" {
		return e
	}

	n, err := e.loadStopwords(stopwordPath)
	if err != nil {
		log.Warn("stopword source skipped",
			slog.String("path", stopwordPath),
			slog.String("error", err.Error()),
		)
		return e
	}

	log.Info("stopwords loaded", slog.String("path", stopwordPath), slog.Int("words", n))
	return e
}

// loadStopwords reads a newline-delimited word list. Blank lines and lines
// starting with ';' are comments.
func (e *Exclusions) loadStopwords(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open stopwords: %w", err)
	}
	defer f.Close()

	n := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		e.stopwords[domain.NormalizeLemma(line)] = struct{}{}
		n++
	}
	if err := scanner.Err(); err != nil {
		return n, fmt.Errorf("read stopwords: %w", err)
	}

	return n, nil
}

// IsStopword reports membership in the loaded stopword set.
// The lemma must already be normalized.
func (e *Exclusions) IsStopword(lemma string) bool {
	_, ok := e.stopwords[lemma]
	return ok
}

// IsCoreWord reports membership in the closed-class core-word set.
// The lemma must already be normalized.
func (e *Exclusions) IsCoreWord(lemma string) bool {
	_, ok := e.core[lemma]
	return ok
}

// StopwordCount returns the number of loaded stopwords.
func (e *Exclusions) StopwordCount() int { return len(e.stopwords) }

// CoreWordCount returns the size of the core-word set.
func (e *Exclusions) CoreWordCount() int { return len(e.core) }
