package analyzer

import (
	"context"
	"log/slog"
	"strings"

	"github.com/patri2022onw/GermanTextLevel/internal/domain"
	"github.com/patri2022onw/GermanTextLevel/internal/vocab"
)

// PlaceholderMarker replaces above-level words in the deterministic
// leveled rendering.
const PlaceholderMarker = "[...]"

// noSpaceBefore is the punctuation that attaches to the preceding token.
const noSpaceBefore = ".,;:!?"

// RenderLeveledText produces the leveled text. When a rewriter is provided
// and at least one above-level word exists, it is asked first; any failure
// or empty response degrades to the deterministic placeholder rendering.
// Rendering never fails.
func (s *Service) RenderLeveledText(ctx context.Context, text string, tokens []domain.TaggedToken, cls *domain.Classification, rewriter Rewriter) domain.LeveledText {
	if rewriter != nil && cls.AboveLevelCount() > 0 {
		rewritten, err := rewriter.Rewrite(ctx, text, cls.TargetLevel, cls.AboveLevelLemmas())
		if err == nil && strings.TrimSpace(rewritten) != "" {
			return domain.LeveledText{Text: rewritten, Method: domain.RenderMethodRewriter}
		}
		if err != nil {
			s.log.WarnContext(ctx, "rewriter failed, falling back to placeholders",
				slog.String("error", err.Error()))
		} else {
			s.log.WarnContext(ctx, "rewriter returned empty text, falling back to placeholders")
		}
		return domain.LeveledText{
			Text:     RenderPlaceholders(tokens, cls.TargetLevel, s.index),
			Method:   domain.RenderMethodPlaceholder,
			Degraded: true,
		}
	}

	return domain.LeveledText{
		Text:   RenderPlaceholders(tokens, cls.TargetLevel, s.index),
		Method: domain.RenderMethodPlaceholder,
	}
}

// RenderPlaceholders reconstructs the text with every above-target word
// replaced by PlaceholderMarker.
//
// Spacing: a single space precedes each token except the first one,
// sentence punctuation (".,;:!?"), and any token directly following a
// placeholder.
func RenderPlaceholders(tokens []domain.TaggedToken, target domain.Level, index *vocab.Index) string {
	emitted := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t.IsSpace {
			continue
		}

		level, found := index.Lookup(t.EffectiveLemma())
		if found && level.IsAbove(target) {
			emitted = append(emitted, PlaceholderMarker)
			continue
		}
		emitted = append(emitted, t.Surface)
	}

	var b strings.Builder
	for i, tok := range emitted {
		if i > 0 && !isAttachedPunct(tok) && emitted[i-1] != PlaceholderMarker {
			b.WriteByte(' ')
		}
		b.WriteString(tok)
	}
	return b.String()
}

func isAttachedPunct(tok string) bool {
	return len(tok) == 1 && strings.Contains(noSpaceBefore, tok)
}
