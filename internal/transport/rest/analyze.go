package rest

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/patri2022onw/GermanTextLevel/internal/domain"
	"github.com/patri2022onw/GermanTextLevel/internal/service/analyzer"
	"github.com/patri2022onw/GermanTextLevel/internal/translate"
)

// AnalyzeHandler serves the text analysis endpoints.
type AnalyzeHandler struct {
	svc         *analyzer.Service
	rewriter    analyzer.Rewriter    // nil when no generative backend is configured
	translator  translate.Translator // nil when provider is "none"
	defaultLang string
}

// NewAnalyzeHandler creates an AnalyzeHandler. rewriter and translator
// may be nil; the handlers then serve deterministic fallbacks.
func NewAnalyzeHandler(svc *analyzer.Service, rewriter analyzer.Rewriter, translator translate.Translator, defaultLang string) *AnalyzeHandler {
	return &AnalyzeHandler{
		svc:         svc,
		rewriter:    rewriter,
		translator:  translator,
		defaultLang: defaultLang,
	}
}

// AnalyzeRequest is the body of POST /v1/analyze, /v1/level and /v1/wordlist.
type AnalyzeRequest struct {
	Text        string `json:"text"`
	TargetLevel string `json:"target_level"`
	UseRewriter bool   `json:"use_rewriter,omitempty"`
	Language    string `json:"language,omitempty"`
	Format      string `json:"format,omitempty"`
}

// AnalyzeResponse extends the classification with the entity list, which
// is a set internally and serializes as a sorted array.
type AnalyzeResponse struct {
	*domain.Classification
	AboveLevelTotal int      `json:"above_level_total"`
	SkippedEntities []string `json:"skipped_entities"`
}

// Analyze classifies a text against a target level.
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	req, target, err := h.decodeAnalyzeRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	cls, _, err := h.svc.Analyze(r.Context(), req.Text, target)
	if err != nil {
		writeError(w, err)
		return
	}

	entities := make([]string, 0, len(cls.SkippedEntities))
	for e := range cls.SkippedEntities {
		entities = append(entities, e)
	}
	sort.Strings(entities)

	writeJSON(w, http.StatusOK, AnalyzeResponse{
		Classification:  cls,
		AboveLevelTotal: cls.AboveLevelCount(),
		SkippedEntities: entities,
	})
}

// LevelResponse is the body of a successful POST /v1/level.
type LevelResponse struct {
	TargetLevel     domain.Level        `json:"target_level"`
	LeveledText     string              `json:"leveled_text"`
	Method          domain.RenderMethod `json:"method"`
	Degraded        bool                `json:"degraded"`
	AboveLevelTotal int                 `json:"above_level_total"`
}

// Level renders the leveled version of a text. The rewriter is only used
// when the client asks for it and one is configured.
func (h *AnalyzeHandler) Level(w http.ResponseWriter, r *http.Request) {
	req, target, err := h.decodeAnalyzeRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	cls, tokens, err := h.svc.Analyze(r.Context(), req.Text, target)
	if err != nil {
		writeError(w, err)
		return
	}

	var rewriter analyzer.Rewriter
	if req.UseRewriter {
		rewriter = h.rewriter
	}
	leveled := h.svc.RenderLeveledText(r.Context(), req.Text, tokens, cls, rewriter)

	writeJSON(w, http.StatusOK, LevelResponse{
		TargetLevel:     target,
		LeveledText:     leveled.Text,
		Method:          leveled.Method,
		Degraded:        leveled.Degraded,
		AboveLevelTotal: cls.AboveLevelCount(),
	})
}

// WordList builds the labeled word list for a text, as JSON or CSV.
func (h *AnalyzeHandler) WordList(w http.ResponseWriter, r *http.Request) {
	req, target, err := h.decodeAnalyzeRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if req.Format != "" && req.Format != "json" && req.Format != "csv" {
		writeError(w, domain.NewValidationError("format", fmt.Sprintf("unsupported format %q", req.Format)))
		return
	}

	lang := req.Language
	if lang == "" {
		lang = h.defaultLang
	}

	cls, _, err := h.svc.Analyze(r.Context(), req.Text, target)
	if err != nil {
		writeError(w, err)
		return
	}

	list := h.svc.BuildWordList(r.Context(), cls, lang, h.translator)

	if req.Format == "csv" {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="wordlist.csv"`)
		if err := analyzer.WriteWordListCSV(w, list); err != nil {
			writeError(w, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, list)
}

func (h *AnalyzeHandler) decodeAnalyzeRequest(r *http.Request) (AnalyzeRequest, domain.Level, error) {
	var req AnalyzeRequest
	if err := decodeJSON(r, &req); err != nil {
		return req, "", err
	}

	target, ok := domain.ParseLevel(req.TargetLevel)
	if !ok {
		return req, "", domain.NewValidationError("target_level",
			fmt.Sprintf("unknown level %q", req.TargetLevel))
	}
	return req, target, nil
}
