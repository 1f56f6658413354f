// Package translate defines the translator capability and the process-wide
// translation cache that sits in front of any external translator.
package translate

import (
	"context"
	"fmt"
	"strings"
)

// Translator is the external translation collaborator. Implementations:
// the Claude adapter and the deterministic Placeholder below. The caller
// picks one and injects it; nothing in the core branches on model names.
type Translator interface {
	// Name identifies the translator for cache keying. Two translators
	// with the same name share cache entries.
	Name() string
	// TranslateOne translates a single word into the target language.
	TranslateOne(ctx context.Context, word, targetLang string) (string, error)
	// TranslateBatch translates words into the target language. The result
	// is aligned positionally with the input and may be shorter when the
	// backend returned fewer lines than requested.
	TranslateBatch(ctx context.Context, words []string, targetLang string) ([]string, error)
}

// Placeholder is the no-op translator used when no AI backend is
// configured. It never fails and produces the deterministic
// "<word> (XX)" form.
type Placeholder struct{}

// NewPlaceholder creates the deterministic no-op translator.
func NewPlaceholder() Placeholder { return Placeholder{} }

func (Placeholder) Name() string { return "none" }

func (Placeholder) TranslateOne(_ context.Context, word, targetLang string) (string, error) {
	return PlaceholderTranslation(word, targetLang), nil
}

func (Placeholder) TranslateBatch(_ context.Context, words []string, targetLang string) ([]string, error) {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = PlaceholderTranslation(w, targetLang)
	}
	return out, nil
}

// PlaceholderTranslation is the guaranteed-non-empty fallback translation:
// the word itself plus the two-letter language code.
func PlaceholderTranslation(word, targetLang string) string {
	return fmt.Sprintf("%s (%s)", word, LangCode(targetLang))
}

// LangCode derives the uppercase two-letter code from a language name,
// e.g. "English" → "EN".
func LangCode(targetLang string) string {
	runes := []rune(strings.TrimSpace(targetLang))
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return strings.ToUpper(string(runes))
}
