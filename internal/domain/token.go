package domain

// PronounPlaceholder is the degenerate lemma some taggers emit for pronouns
// they cannot resolve. When seen, the surface form is used as the lemma.
const PronounPlaceholder = "-PRON-"

// TaggedToken is one token of the input text as produced by the external
// tokenizer/lemmatizer/NER collaborator. The analyzer treats it as read-only.
type TaggedToken struct {
	// Surface is the token text exactly as it appears in the input.
	Surface string `json:"text"`
	// Lemma is the dictionary form; equals Surface when the tagger has
	// no real lemmatization (basic-tokenizer fallback).
	Lemma string `json:"lemma"`
	// POS is the coarse part-of-speech tag (e.g. "NOUN", "ADJ").
	POS string `json:"pos"`
	// EntityType is non-empty when the token is part of a named entity.
	EntityType string `json:"ent_type"`
	// IsPunct marks punctuation tokens.
	IsPunct bool `json:"is_punct"`
	// IsSpace marks pure-whitespace tokens.
	IsSpace bool `json:"is_space"`
	// Index is the sequential position of the token in the stream.
	Index int `json:"index"`
}

// EffectiveLemma resolves the lemma used for lookups: the tagged lemma,
// unless it is the unresolved-pronoun placeholder, in which case the
// surface form.
func (t TaggedToken) EffectiveLemma() string {
	if t.Lemma == "" || t.Lemma == PronounPlaceholder {
		return t.Surface
	}
	return t.Lemma
}
