// Command analyze runs the classification pipeline on a text from a file
// or stdin and prints the result. Modes: report (default, per-level
// summary), level (leveled text), words (word list CSV).
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/patri2022onw/GermanTextLevel/internal/adapter/provider/claude"
	"github.com/patri2022onw/GermanTextLevel/internal/adapter/provider/spacy"
	"github.com/patri2022onw/GermanTextLevel/internal/app"
	"github.com/patri2022onw/GermanTextLevel/internal/config"
	"github.com/patri2022onw/GermanTextLevel/internal/domain"
	"github.com/patri2022onw/GermanTextLevel/internal/service/analyzer"
	"github.com/patri2022onw/GermanTextLevel/internal/translate"
	"github.com/patri2022onw/GermanTextLevel/internal/vocab"
)

func main() {
	levelFlag := flag.String("level", "B1", "target CEFR level (A1..C1)")
	modeFlag := flag.String("mode", "report", "output mode: report, level, words")
	langFlag := flag.String("lang", "", "target language for the word list (default from config)")
	rewriteFlag := flag.Bool("rewrite", false, "use the generative rewriter for -mode level")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	target, ok := domain.ParseLevel(*levelFlag)
	if !ok {
		logger.Error("unknown level", slog.String("level", *levelFlag))
		os.Exit(1)
	}

	text, err := readText(flag.Arg(0))
	if err != nil {
		logger.Error("read input", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	svc, translator, rewriter, err := buildPipeline(cfg, logger)
	if err != nil {
		logger.Error("setup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	cls, tokens, err := svc.Analyze(ctx, text, target)
	if err != nil {
		logger.Error("analyze failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	lang := *langFlag
	if lang == "" {
		lang = cfg.Translator.DefaultLanguage
	}

	switch *modeFlag {
	case "report":
		printReport(cls)
	case "level":
		var rw analyzer.Rewriter
		if *rewriteFlag {
			rw = rewriter
		}
		leveled := svc.RenderLeveledText(ctx, text, tokens, cls, rw)
		fmt.Println(leveled.Text)
	case "words":
		list := svc.BuildWordList(ctx, cls, lang, translator)
		if err := analyzer.WriteWordListCSV(os.Stdout, list); err != nil {
			logger.Error("write word list", slog.String("error", err.Error()))
			os.Exit(1)
		}
	default:
		logger.Error("unknown mode", slog.String("mode", *modeFlag))
		os.Exit(1)
	}
}

func readText(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

func buildPipeline(cfg *config.Config, logger *slog.Logger) (*analyzer.Service, translate.Translator, analyzer.Rewriter, error) {
	index, err := vocab.BuildIndex(vocab.DefaultSources(cfg.Vocabulary.Dir), logger)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("build vocabulary index: %w", err)
	}
	exclusions := vocab.NewExclusions(cfg.Vocabulary.StopwordFile, logger)

	var tagger analyzer.Tagger
	if cfg.NLP.BaseURL != "" {
		tagger = analyzer.NewFallbackTagger(spacy.NewProviderWithURL(cfg.NLP.BaseURL, logger), logger)
	} else {
		tagger = analyzer.NewBasicTagger()
	}

	cache := translate.NewCache(nil, cfg.Translator.BatchThreshold, logger)
	svc := analyzer.NewService(logger, index, exclusions, tagger, cache)

	var translator translate.Translator
	var rewriter analyzer.Rewriter
	if cfg.Translator.Provider == "claude" {
		client := claude.New(cfg.Translator.APIKey, cfg.Translator.Model, logger)
		translator = client
		rewriter = client
	}

	return svc, translator, rewriter, nil
}

func printReport(cls *domain.Classification) {
	fmt.Printf("Target level: %s\n", cls.TargetLevel)
	fmt.Printf("Considered words: %d\n", cls.TotalWords)
	fmt.Printf("Above level: %d\n", cls.AboveLevelCount())
	fmt.Printf("Skipped entities: %d\n", len(cls.SkippedEntities))

	for _, group := range cls.AboveLevel {
		fmt.Printf("\n%s:\n", group.Level)
		for _, w := range group.Words {
			fmt.Printf("  %s (%s)\n", w.Surface, w.Lemma)
		}
	}
}
