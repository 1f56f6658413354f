package analyzer

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/patri2022onw/GermanTextLevel/internal/domain"
	"github.com/patri2022onw/GermanTextLevel/internal/translate"
	"github.com/patri2022onw/GermanTextLevel/internal/vocab"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// buildIndex writes one single-column CSV per level into a temp dir and
// builds a real index from them.
func buildIndex(t *testing.T, byLevel map[domain.Level][]string) *vocab.Index {
	t.Helper()

	dir := t.TempDir()
	var sources []vocab.TierSource
	for _, level := range domain.Levels {
		words, ok := byLevel[level]
		if !ok {
			continue
		}
		path := filepath.Join(dir, level.String()+".csv")
		content := "Lemma\n" + strings.Join(words, "\n") + "\n"
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
		sources = append(sources, vocab.TierSource{Level: level, Path: path})
	}

	idx, err := vocab.BuildIndex(sources, testLogger())
	if err != nil {
		t.Fatalf("BuildIndex: %v", err)
	}
	return idx
}

func testExclusions(t *testing.T) *vocab.Exclusions {
	t.Helper()
	return vocab.NewExclusions("", testLogger())
}

func testService(t *testing.T, idx *vocab.Index, tagger Tagger) *Service {
	t.Helper()
	cache := translate.NewCache(nil, translate.DefaultBatchThreshold, testLogger())
	return NewService(testLogger(), idx, testExclusions(t), tagger, cache)
}

func word(surface, lemma string, index int) domain.TaggedToken {
	return domain.TaggedToken{Surface: surface, Lemma: lemma, Index: index}
}

func punct(surface string, index int) domain.TaggedToken {
	return domain.TaggedToken{Surface: surface, Lemma: surface, IsPunct: true, Index: index}
}
