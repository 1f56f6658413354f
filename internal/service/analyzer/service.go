// Package analyzer implements the vocabulary-tier classification engine:
// classifying tagged tokens against a target CEFR level, rendering leveled
// text, and building translated word lists.
package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/patri2022onw/GermanTextLevel/internal/domain"
	"github.com/patri2022onw/GermanTextLevel/internal/translate"
	"github.com/patri2022onw/GermanTextLevel/internal/vocab"
)

// Tagger is the external tokenizer/lemmatizer/NER collaborator.
type Tagger interface {
	Tag(ctx context.Context, text string) ([]domain.TaggedToken, error)
}

// Rewriter is the optional generative text-simplification collaborator.
// When it fails, the deterministic placeholder rendering takes over.
type Rewriter interface {
	Rewrite(ctx context.Context, text string, target domain.Level, wordsToReplace []string) (string, error)
}

// Service runs the analyze → render/build pipeline. One pipeline runs to
// completion per request; the only state shared between requests is the
// translation cache, which synchronizes itself.
type Service struct {
	log        *slog.Logger
	index      *vocab.Index
	exclusions *vocab.Exclusions
	tagger     Tagger
	cache      *translate.Cache
}

// NewService wires the analyzer. All dependencies are required except that
// the index may have been built from partial sources; an empty index is
// rejected at Analyze time.
func NewService(logger *slog.Logger, index *vocab.Index, exclusions *vocab.Exclusions, tagger Tagger, cache *translate.Cache) *Service {
	return &Service{
		log:        logger.With("service", "analyzer"),
		index:      index,
		exclusions: exclusions,
		tagger:     tagger,
		cache:      cache,
	}
}

// Index exposes the vocabulary index for lookup-style operations.
func (s *Service) Index() *vocab.Index { return s.index }

// Exclusions exposes the exclusion sets for stats reporting.
func (s *Service) Exclusions() *vocab.Exclusions { return s.exclusions }

// Analyze tags the text and classifies the resulting token stream against
// the target level. The token stream is returned alongside the
// classification because rendering needs it.
func (s *Service) Analyze(ctx context.Context, text string, target domain.Level) (*domain.Classification, []domain.TaggedToken, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil, domain.NewValidationError("text", "must not be empty")
	}
	if !target.IsValid() {
		return nil, nil, domain.NewValidationError("target_level", fmt.Sprintf("unknown level %q", target))
	}
	if s.index.Len() == 0 {
		return nil, nil, domain.ErrEmptyVocabulary
	}

	tokens, err := s.tagger.Tag(ctx, text)
	if err != nil {
		return nil, nil, fmt.Errorf("tag text: %w", err)
	}

	cls := Classify(tokens, target, s.index, s.exclusions)

	s.log.DebugContext(ctx, "text analyzed",
		slog.String("target_level", target.String()),
		slog.Int("tokens", len(tokens)),
		slog.Int("considered", cls.TotalWords),
		slog.Int("above_level", cls.AboveLevelCount()),
		slog.Int("entities_skipped", len(cls.SkippedEntities)),
	)

	return cls, tokens, nil
}
