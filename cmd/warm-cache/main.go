// Command warm-cache translates a list of words (one per line, from a file
// or stdin) and persists the results in the database-backed translation
// cache, so that later requests hit the cache instead of the translator.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"bufio"
	"context"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/patri2022onw/GermanTextLevel/internal/adapter/postgres"
	"github.com/patri2022onw/GermanTextLevel/internal/adapter/postgres/translationstore"
	"github.com/patri2022onw/GermanTextLevel/internal/adapter/provider/claude"
	"github.com/patri2022onw/GermanTextLevel/internal/app"
	"github.com/patri2022onw/GermanTextLevel/internal/config"
	"github.com/patri2022onw/GermanTextLevel/internal/translate"
)

func main() {
	langFlag := flag.String("lang", "", "target language (default from config)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if !cfg.Database.Enabled() {
		logger.Error("warm-cache requires a configured database")
		os.Exit(1)
	}
	if cfg.Translator.Provider != "claude" {
		logger.Error("warm-cache requires a configured translator",
			slog.String("provider", cfg.Translator.Provider))
		os.Exit(1)
	}

	lang := *langFlag
	if lang == "" {
		lang = cfg.Translator.DefaultLanguage
	}

	words, err := readWords(flag.Arg(0))
	if err != nil {
		logger.Error("read word list", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if len(words) == 0 {
		logger.Info("nothing to do")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	store := translationstore.New(pool)
	cache := translate.NewCache(store, cfg.Translator.BatchThreshold, logger)
	translator := claude.New(cfg.Translator.APIKey, cfg.Translator.Model, logger)

	resolved := cache.BatchGetOrTranslate(ctx, words, lang, translator)

	logger.Info("cache warmed",
		slog.String("lang", lang),
		slog.Int("requested", len(words)),
		slog.Int("resolved", len(resolved)),
	)

	if len(resolved) < len(words) {
		logger.Warn("some words could not be translated",
			slog.Int("missing", len(words)-len(resolved)))
		os.Exit(1)
	}
}

func readWords(path string) ([]string, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var words []string
	seen := make(map[string]struct{})
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := scanner.Text()
		if word == "" {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}
	return words, scanner.Err()
}
