package analyzer

import (
	"context"
	"log/slog"
	"unicode"

	"github.com/patri2022onw/GermanTextLevel/internal/domain"
)

// BasicTagger is the degraded tokenizer used when the full NLP collaborator
// is unavailable: it splits words and punctuation, sets lemma = surface,
// and tags no entities, so tokens still flow through the pipeline without
// lemmatization or entity suppression. It never fails.
type BasicTagger struct{}

// NewBasicTagger creates the fallback tokenizer.
func NewBasicTagger() BasicTagger { return BasicTagger{} }

// Tag splits text into word and punctuation tokens. Runs of letters and
// digits (including in-word hyphens) form words; every other non-space
// rune is its own punctuation token.
func (BasicTagger) Tag(_ context.Context, text string) ([]domain.TaggedToken, error) {
	var tokens []domain.TaggedToken
	runes := []rune(text)

	emit := func(surface string, punct bool) {
		tokens = append(tokens, domain.TaggedToken{
			Surface: surface,
			Lemma:   surface,
			IsPunct: punct,
			Index:   len(tokens),
		})
	}

	var word []rune
	flush := func() {
		if len(word) > 0 {
			emit(string(word), false)
			word = word[:0]
		}
	}

	for i, r := range runes {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			word = append(word, r)
		case r == '-' && len(word) > 0 && i+1 < len(runes) && unicode.IsLetter(runes[i+1]):
			word = append(word, r)
		case unicode.IsSpace(r):
			flush()
		default:
			flush()
			emit(string(r), true)
		}
	}
	flush()

	return tokens, nil
}

// FallbackTagger asks the primary tagger first and degrades to the basic
// tokenizer when it fails, keeping analysis available while the NLP
// collaborator is down.
type FallbackTagger struct {
	primary  Tagger
	fallback BasicTagger
	log      *slog.Logger
}

// NewFallbackTagger wraps primary with basic-tokenizer degradation.
// A nil primary means the basic tokenizer is used outright.
func NewFallbackTagger(primary Tagger, logger *slog.Logger) *FallbackTagger {
	return &FallbackTagger{
		primary: primary,
		log:     logger.With("component", "tagger"),
	}
}

func (f *FallbackTagger) Tag(ctx context.Context, text string) ([]domain.TaggedToken, error) {
	if f.primary == nil {
		return f.fallback.Tag(ctx, text)
	}

	tokens, err := f.primary.Tag(ctx, text)
	if err != nil {
		f.log.WarnContext(ctx, "full tagger unavailable, using basic tokenizer",
			slog.String("error", err.Error()))
		return f.fallback.Tag(ctx, text)
	}
	return tokens, nil
}
