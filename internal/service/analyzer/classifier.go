package analyzer

import (
	"github.com/patri2022onw/GermanTextLevel/internal/domain"
	"github.com/patri2022onw/GermanTextLevel/internal/vocab"
)

// Classify walks the token stream in order and produces the classification
// for the given target level. It is a pure function of its inputs.
//
// Per-token rule order is fixed: structural skip, then entity skip, then
// stopword/core-word exclusion, then vocabulary lookup. A token matching
// several rules is attributed to the first one, so an entity that is also
// a stopword counts only as a skipped entity.
func Classify(tokens []domain.TaggedToken, target domain.Level, index *vocab.Index, exclusions *vocab.Exclusions) *domain.Classification {
	cls := &domain.Classification{
		TargetLevel:     target,
		AboveLevel:      []domain.LevelGroup{},
		AllWords:        []domain.ConsideredWord{},
		SkippedEntities: make(map[string]struct{}),
	}
	groupIdx := make(map[domain.Level]int)

	for _, t := range tokens {
		if t.IsPunct || t.IsSpace {
			continue
		}

		lemma := t.EffectiveLemma()

		if t.EntityType != "" {
			cls.SkippedEntities[t.Surface] = struct{}{}
			continue
		}

		normalized := domain.NormalizeLemma(lemma)
		if exclusions.IsStopword(normalized) || exclusions.IsCoreWord(normalized) {
			continue
		}

		cls.AllWords = append(cls.AllWords, domain.ConsideredWord{Surface: t.Surface, Lemma: lemma})

		level, found := index.Lookup(normalized)
		if !found || !level.IsAbove(target) {
			continue
		}

		gi, ok := groupIdx[level]
		if !ok {
			gi = len(cls.AboveLevel)
			groupIdx[level] = gi
			cls.AboveLevel = append(cls.AboveLevel, domain.LevelGroup{Level: level})
		}
		cls.AboveLevel[gi].Words = append(cls.AboveLevel[gi].Words, domain.ClassifiedWord{
			Surface: t.Surface,
			Lemma:   lemma,
			POS:     t.POS,
			Index:   t.Index,
		})
	}

	cls.TotalWords = len(cls.AllWords)
	return cls
}
