package rest

import (
	"net/http"
	"strconv"

	"github.com/patri2022onw/GermanTextLevel/internal/domain"
	"github.com/patri2022onw/GermanTextLevel/internal/service/analyzer"
)

const defaultSuggestLimit = 5

// WordsHandler serves single-word vocabulary lookups.
type WordsHandler struct {
	svc *analyzer.Service
}

// NewWordsHandler creates a WordsHandler.
func NewWordsHandler(svc *analyzer.Service) *WordsHandler {
	return &WordsHandler{svc: svc}
}

// WordResponse is the body of GET /v1/words/{word}.
type WordResponse struct {
	Word        string       `json:"word"`
	Found       bool         `json:"found"`
	Level       domain.Level `json:"level,omitempty"`
	Stopword    bool         `json:"stopword"`
	CoreWord    bool         `json:"core_word"`
	Suggestions []string     `json:"suggestions,omitempty"`
}

// Lookup resolves one word against the vocabulary index. Unknown words
// come back with prefix suggestions instead of an error.
func (h *WordsHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	word := r.PathValue("word")
	if word == "" {
		writeError(w, domain.NewValidationError("word", "must not be empty"))
		return
	}

	limit := defaultSuggestLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 50 {
			writeError(w, domain.NewValidationError("limit", "must be an integer between 1 and 50"))
			return
		}
		limit = n
	}

	normalized := domain.NormalizeLemma(word)
	resp := WordResponse{
		Word:     word,
		Stopword: h.svc.Exclusions().IsStopword(normalized),
		CoreWord: h.svc.Exclusions().IsCoreWord(normalized),
	}

	if level, found := h.svc.Index().Lookup(word); found {
		resp.Found = true
		resp.Level = level
	} else {
		resp.Suggestions = h.svc.Index().Suggest(word, limit)
	}

	writeJSON(w, http.StatusOK, resp)
}
