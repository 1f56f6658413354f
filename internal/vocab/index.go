// Package vocab builds the tiered vocabulary index and the exclusion sets
// used by the analyzer. Sources are plain files on disk; a missing or
// malformed source degrades that source's contribution to zero words, it
// never aborts the build.
package vocab

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/patri2022onw/GermanTextLevel/internal/domain"
)

// TierSource names one vocabulary file and the level it attests.
type TierSource struct {
	Level domain.Level
	Path  string
}

// DefaultSources returns the canonical five sources under dir, in
// increasing-difficulty order.
func DefaultSources(dir string) []TierSource {
	names := map[domain.Level]string{
		domain.LevelA1: "A1.csv",
		domain.LevelA2: "A2.csv",
		domain.LevelB1: "B1.csv",
		domain.LevelB2: "B2.csv",
		domain.LevelC1: "C1.csv",
	}
	sources := make([]TierSource, 0, len(domain.Levels))
	for _, lvl := range domain.Levels {
		sources = append(sources, TierSource{Level: lvl, Path: dir + "/" + names[lvl]})
	}
	return sources
}

// Index is the immutable lemma → level mapping. Build it once with
// BuildIndex; lookups are safe for concurrent use.
type Index struct {
	levels map[string]domain.Level
	counts map[domain.Level]int
}

// BuildIndex ingests the sources in the given order with first-tier-wins
// semantics: a lemma attested by an earlier (easier) source keeps that
// level, later duplicates are dropped. Unreadable sources and sources
// without a recognized lemma column are logged and skipped.
//
// Returns domain.ErrEmptyVocabulary when no source contributed anything.
func BuildIndex(sources []TierSource, log *slog.Logger) (*Index, error) {
	idx := &Index{
		levels: make(map[string]domain.Level),
		counts: make(map[domain.Level]int),
	}

	for _, src := range sources {
		lemmas, err := readLemmaColumn(src.Path)
		if err != nil {
			log.Warn("vocabulary source skipped",
				slog.String("path", src.Path),
				slog.String("level", src.Level.String()),
				slog.String("error", err.Error()),
			)
			continue
		}

		added := 0
		for _, lemma := range lemmas {
			if idx.add(lemma, src.Level) {
				added++
			}
		}

		log.Info("vocabulary source loaded",
			slog.String("level", src.Level.String()),
			slog.String("path", src.Path),
			slog.Int("words", added),
		)
	}

	if len(idx.levels) == 0 {
		return nil, fmt.Errorf("build vocabulary from %d sources: %w", len(sources), domain.ErrEmptyVocabulary)
	}

	return idx, nil
}

// add inserts a normalized lemma unless an earlier source already claimed it.
func (idx *Index) add(lemma string, level domain.Level) bool {
	key := domain.NormalizeLemma(lemma)
	if key == "" {
		return false
	}
	if _, exists := idx.levels[key]; exists {
		return false
	}
	idx.levels[key] = level
	idx.counts[level]++
	return true
}

// Lookup returns the attested level for a lemma. The lemma is normalized
// before lookup.
func (idx *Index) Lookup(lemma string) (domain.Level, bool) {
	level, ok := idx.levels[domain.NormalizeLemma(lemma)]
	return level, ok
}

// Len returns the number of distinct lemmas in the index.
func (idx *Index) Len() int { return len(idx.levels) }

// CountByLevel returns how many lemmas the given level ended up with.
func (idx *Index) CountByLevel(level domain.Level) int { return idx.counts[level] }

// Suggest returns up to limit lemmas sharing a prefix with the given word,
// sorted alphabetically. Used by the word-lookup endpoint when a word is
// not found. The prefix is the first three runes (or the whole word when
// shorter).
func (idx *Index) Suggest(word string, limit int) []string {
	key := domain.NormalizeLemma(word)
	if key == "" || limit <= 0 {
		return nil
	}

	runes := []rune(key)
	if len(runes) > 3 {
		runes = runes[:3]
	}
	prefix := string(runes)

	var matches []string
	for lemma := range idx.levels {
		if strings.HasPrefix(lemma, prefix) && lemma != key {
			matches = append(matches, lemma)
		}
	}
	sort.Strings(matches)
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
