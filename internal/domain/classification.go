package domain

// ClassifiedWord is one occurrence of a word whose level is above the
// analysis target.
type ClassifiedWord struct {
	Surface string `json:"surface"`
	Lemma   string `json:"lemma"`
	POS     string `json:"pos"`
	Index   int    `json:"index"`
}

// LevelGroup holds the above-level occurrences of one level, in original
// text order.
type LevelGroup struct {
	Level Level            `json:"level"`
	Words []ClassifiedWord `json:"words"`
}

// ConsideredWord is a (surface, lemma) pair that survived exclusion
// filtering, whether or not it was found in the vocabulary.
type ConsideredWord struct {
	Surface string `json:"surface"`
	Lemma   string `json:"lemma"`
}

// Classification is the immutable result of classifying one token stream
// against a target level. Groups appear in the order their level was first
// encountered in the text, and must be iterated in that order downstream.
type Classification struct {
	TargetLevel Level `json:"target_level"`

	// AboveLevel groups the above-target occurrences by level.
	AboveLevel []LevelGroup `json:"above_level"`

	// AllWords lists every considered word in original order.
	AllWords []ConsideredWord `json:"all_words"`

	// SkippedEntities is the set of named-entity surface forms that were
	// exempted from leveling.
	SkippedEntities map[string]struct{} `json:"-"`

	// TotalWords is len(AllWords), kept explicit for callers.
	TotalWords int `json:"total_words"`
}

// AboveLevelCount returns the number of above-target occurrences across
// all groups.
func (c *Classification) AboveLevelCount() int {
	n := 0
	for _, g := range c.AboveLevel {
		n += len(g.Words)
	}
	return n
}

// AboveLevelLemmas returns the lemmas of all above-target occurrences,
// group by group, in the order the word list iterates them. Duplicates
// are preserved.
func (c *Classification) AboveLevelLemmas() []string {
	lemmas := make([]string, 0, c.AboveLevelCount())
	for _, g := range c.AboveLevel {
		for _, w := range g.Words {
			lemmas = append(lemmas, w.Lemma)
		}
	}
	return lemmas
}
