package domain

// TranslationSource records where a word record's translation came from.
type TranslationSource string

const (
	// TranslationSourceTranslator means the configured translator produced it.
	TranslationSourceTranslator TranslationSource = "TRANSLATOR"
	// TranslationSourcePlaceholder means the deterministic "<word> (XX)"
	// fallback was used (no translator, or the call failed).
	TranslationSourcePlaceholder TranslationSource = "PLACEHOLDER"
)

// WordRecord is one row of the labeled word list: a single above-level
// word occurrence with its translation.
type WordRecord struct {
	Surface     string            `json:"surface"`
	Lemma       string            `json:"lemma"`
	POS         string            `json:"pos"`
	Level       Level             `json:"level"`
	Translation string            `json:"translation"`
	Source      TranslationSource `json:"source"`
}

// WordList is the ordered labeling output for one analysis.
type WordList struct {
	Language string       `json:"language"`
	Records  []WordRecord `json:"records"`
	// Degraded is true when at least one record fell back to a
	// placeholder translation.
	Degraded bool `json:"degraded"`
}

// RenderMethod records how a leveled text was produced.
type RenderMethod string

const (
	// RenderMethodRewriter means the AI rewriting collaborator produced it.
	RenderMethodRewriter RenderMethod = "REWRITER"
	// RenderMethodPlaceholder means the deterministic placeholder pass
	// produced it.
	RenderMethodPlaceholder RenderMethod = "PLACEHOLDER"
)

// LeveledText is the leveling output. Rendering never fails: when the
// rewriting collaborator was requested but errored, Method is
// RenderMethodPlaceholder and Degraded is true.
type LeveledText struct {
	Text     string       `json:"text"`
	Method   RenderMethod `json:"method"`
	Degraded bool         `json:"degraded"`
}
