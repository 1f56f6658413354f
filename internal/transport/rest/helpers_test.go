package rest

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/patri2022onw/GermanTextLevel/internal/domain"
	"github.com/patri2022onw/GermanTextLevel/internal/service/analyzer"
	"github.com/patri2022onw/GermanTextLevel/internal/translate"
	"github.com/patri2022onw/GermanTextLevel/internal/vocab"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestService builds a real analyzer service over a temp-dir vocabulary.
func newTestService(t *testing.T, byLevel map[domain.Level][]string) *analyzer.Service {
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

	exclusions := vocab.NewExclusions("", testLogger())
	cache := translate.NewCache(nil, translate.DefaultBatchThreshold, testLogger())

	return analyzer.NewService(testLogger(), idx, exclusions, analyzer.NewBasicTagger(), cache)
}

func defaultTestService(t *testing.T) *analyzer.Service {
	t.Helper()
	return newTestService(t, map[domain.Level][]string{
		domain.LevelA1: {"Haus", "gehen"},
		domain.LevelB2: {"Gelegenheit"},
		domain.LevelC1: {"außergewöhnlich"},
	})
}
