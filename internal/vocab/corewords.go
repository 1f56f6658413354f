package vocab

// coreWords is the closed-class German function-word list: articles,
// pronouns, prepositions, conjunctions, interrogatives, a small adverb
// set, and the number words one through twenty. These are excluded from
// classification regardless of the target level.
var coreWords = []string{
	// Articles
	"der", "die", "das", "den", "dem", "des", "ein", "eine", "einen", "einem", "einer", "eines",
	// Personal pronouns
	"ich", "du", "er", "sie", "es", "wir", "ihr",
	"mich", "dich", "ihn", "uns", "euch",
	"mir", "dir", "ihm", "ihnen",
	// Possessive pronouns
	"mein", "dein", "sein", "unser", "euer",
	"meine", "deine", "seine", "ihre", "unsere", "eure",
	// Common prepositions
	"in", "an", "auf", "unter", "über", "vor", "hinter", "neben", "zwischen",
	"mit", "ohne", "für", "gegen", "durch", "um", "aus", "bei", "nach", "von", "zu",
	// Common conjunctions
	"und", "oder", "aber", "denn", "sondern", "sowie", "als", "wie", "wenn", "weil", "dass",
	// Question words
	"was", "wer", "wo", "wann", "warum", "welche", "welcher", "welches",
	// Common adverbs
	"nicht", "sehr", "auch", "noch", "schon", "nur", "hier", "da", "dort",
	// Numbers 1-20
	"eins", "zwei", "drei", "vier", "fünf", "sechs", "sieben", "acht", "neun", "zehn",
	"elf", "zwölf", "dreizehn", "vierzehn", "fünfzehn", "sechzehn", "siebzehn",
	"achtzehn", "neunzehn", "zwanzig",
}

func coreWordSet() map[string]struct{} {
	set := make(map[string]struct{}, len(coreWords))
	for _, w := range coreWords {
		set[w] = struct{}{}
	}
	return set
}
