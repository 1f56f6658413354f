package domain

// Level represents a CEFR proficiency level.
type Level string

const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
	LevelC1 Level = "C1"
)

// Levels lists all recognized levels in increasing difficulty order.
// Vocabulary sources are ingested in this order (first-tier-wins).
var Levels = []Level{LevelA1, LevelA2, LevelB1, LevelB2, LevelC1}

func (l Level) String() string { return string(l) }

func (l Level) IsValid() bool {
	switch l {
	case LevelA1, LevelA2, LevelB1, LevelB2, LevelC1:
		return true
	}
	return false
}

// Rank returns the 1-based ordinal of the level (A1=1 .. C1=5),
// or 0 for an unrecognized level.
func (l Level) Rank() int {
	switch l {
	case LevelA1:
		return 1
	case LevelA2:
		return 2
	case LevelB1:
		return 3
	case LevelB2:
		return 4
	case LevelC1:
		return 5
	}
	return 0
}

// IsAbove reports whether l is strictly harder than target.
// Total by design: if either side is unrecognized the answer is false,
// so classification never has to branch on malformed level labels.
func (l Level) IsAbove(target Level) bool {
	lr, tr := l.Rank(), target.Rank()
	if lr == 0 || tr == 0 {
		return false
	}
	return lr > tr
}

// ParseLevel converts a string like "b1" into a Level.
// Returns false for anything outside A1..C1.
func ParseLevel(s string) (Level, bool) {
	switch s {
	case "A1", "a1":
		return LevelA1, true
	case "A2", "a2":
		return LevelA2, true
	case "B1", "b1":
		return LevelB1, true
	case "B2", "b2":
		return LevelB2, true
	case "C1", "c1":
		return LevelC1, true
	}
	return "", false
}
