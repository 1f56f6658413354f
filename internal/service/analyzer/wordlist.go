package analyzer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"

	"github.com/patri2022onw/GermanTextLevel/internal/domain"
	"github.com/patri2022onw/GermanTextLevel/internal/translate"
)

// BuildWordList produces the labeled word list for a classification:
// one record per above-level occurrence, iterated group by group in the
// order the classifier emitted them, each with a guaranteed non-empty
// translation.
//
// All distinct lemmas go through the cache's batch path at most once;
// any lemma the batch left unresolved gets one single-word attempt, and
// a placeholder after that. A nil translator skips external calls
// entirely and yields placeholder translations.
func (s *Service) BuildWordList(ctx context.Context, cls *domain.Classification, targetLang string, tr translate.Translator) domain.WordList {
	list := domain.WordList{Language: targetLang, Records: []domain.WordRecord{}}

	lemmas := cls.AboveLevelLemmas()
	if len(lemmas) == 0 {
		return list
	}

	var translations map[string]string
	if tr != nil {
		translations = s.cache.BatchGetOrTranslate(ctx, lemmas, targetLang, tr)
	}

	for _, group := range cls.AboveLevel {
		for _, w := range group.Words {
			record := domain.WordRecord{
				Surface: w.Surface,
				Lemma:   w.Lemma,
				POS:     w.POS,
				Level:   group.Level,
				Source:  domain.TranslationSourceTranslator,
			}
			record.Translation, record.Source = s.resolveTranslation(ctx, w.Lemma, targetLang, tr, translations)
			if record.Source == domain.TranslationSourcePlaceholder && tr != nil {
				list.Degraded = true
			}
			list.Records = append(list.Records, record)
		}
	}

	return list
}

// resolveTranslation picks the batch result, then a single-word retry,
// then the deterministic placeholder.
func (s *Service) resolveTranslation(ctx context.Context, lemma, targetLang string, tr translate.Translator, batch map[string]string) (string, domain.TranslationSource) {
	if tr == nil {
		return translate.PlaceholderTranslation(lemma, targetLang), domain.TranslationSourcePlaceholder
	}

	if translation, ok := batch[lemma]; ok && translation != "" {
		return translation, domain.TranslationSourceTranslator
	}

	translation, err := s.cache.GetOrTranslate(ctx, lemma, targetLang, tr)
	if err != nil {
		s.log.WarnContext(ctx, "translation degraded to placeholder",
			slog.String("lemma", lemma), slog.String("error", err.Error()))
		return translate.PlaceholderTranslation(lemma, targetLang), domain.TranslationSourcePlaceholder
	}
	return translation, domain.TranslationSourceTranslator
}

// wordListHeader is the column layout of the CSV serialization.
var wordListHeader = []string{"German Word", "Lemma", "Part of Speech", "Level", "Translation"}

// WriteWordListCSV serializes a word list to CSV, one row per record.
func WriteWordListCSV(w io.Writer, list domain.WordList) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(wordListHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range list.Records {
		row := []string{r.Surface, r.Lemma, r.POS, r.Level.String(), r.Translation}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write record %q: %w", r.Lemma, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
