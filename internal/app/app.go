// Package app assembles the service: configuration, logging, vocabulary
// loading, adapters, and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/patri2022onw/GermanTextLevel/internal/adapter/postgres"
	"github.com/patri2022onw/GermanTextLevel/internal/adapter/postgres/translationstore"
	"github.com/patri2022onw/GermanTextLevel/internal/adapter/provider/claude"
	"github.com/patri2022onw/GermanTextLevel/internal/adapter/provider/spacy"
	"github.com/patri2022onw/GermanTextLevel/internal/config"
	"github.com/patri2022onw/GermanTextLevel/internal/service/analyzer"
	"github.com/patri2022onw/GermanTextLevel/internal/translate"
	"github.com/patri2022onw/GermanTextLevel/internal/transport/middleware"
	"github.com/patri2022onw/GermanTextLevel/internal/transport/rest"
	"github.com/patri2022onw/GermanTextLevel/internal/vocab"
)

// Run is the application entry point. It loads configuration, builds the
// vocabulary index and all adapters, and serves HTTP until ctx is
// cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	components, err := buildComponents(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if components.pool != nil {
		defer components.pool.Close()
	}

	return serveHTTP(ctx, cfg, logger, components)
}

// components holds everything the transport layer needs.
type components struct {
	svc        *analyzer.Service
	rewriter   analyzer.Rewriter
	translator translate.Translator
	pool       *pgxpool.Pool
}

func buildComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*components, error) {
	index, err := vocab.BuildIndex(vocab.DefaultSources(cfg.Vocabulary.Dir), logger)
	if err != nil {
		return nil, fmt.Errorf("build vocabulary index: %w", err)
	}
	exclusions := vocab.NewExclusions(cfg.Vocabulary.StopwordFile, logger)

	logger.Info("vocabulary loaded",
		slog.Int("words", index.Len()),
		slog.Int("stopwords", exclusions.StopwordCount()),
	)

	var pool *pgxpool.Pool
	var store translate.Store
	if cfg.Database.Enabled() {
		pool, err = postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		store = translationstore.New(pool)
		logger.Info("translation persistence enabled")
	}

	cache := translate.NewCache(store, cfg.Translator.BatchThreshold, logger)

	var tagger analyzer.Tagger
	if cfg.NLP.BaseURL != "" {
		tagger = analyzer.NewFallbackTagger(spacy.NewProviderWithURL(cfg.NLP.BaseURL, logger), logger)
	} else {
		logger.Warn("no NLP service configured, using basic tokenizer")
		tagger = analyzer.NewBasicTagger()
	}

	c := &components{
		svc:  analyzer.NewService(logger, index, exclusions, tagger, cache),
		pool: pool,
	}

	if cfg.Translator.Provider == "claude" {
		client := claude.New(cfg.Translator.APIKey, cfg.Translator.Model, logger)
		c.translator = client
		c.rewriter = client
	}

	return c, nil
}

func serveHTTP(ctx context.Context, cfg *config.Config, logger *slog.Logger, c *components) error {
	var db interface{ Ping(context.Context) error }
	if c.pool != nil {
		db = c.pool
	}

	health := rest.NewHealthHandler(c.svc, db, BuildVersion())
	analyze := rest.NewAnalyzeHandler(c.svc, c.rewriter, c.translator, cfg.Translator.DefaultLanguage)
	words := rest.NewWordsHandler(c.svc)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.RateLimit.RequestsPerMinute),
	)(rest.NewRouter(health, analyze, words))

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
