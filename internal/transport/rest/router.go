package rest

import "net/http"

// NewRouter wires all REST routes onto a ServeMux.
func NewRouter(health *HealthHandler, analyze *AnalyzeHandler, words *WordsHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.HandleFunc("GET /v1/stats", health.Stats)
	mux.HandleFunc("GET /v1/words/{word}", words.Lookup)
	mux.HandleFunc("POST /v1/analyze", analyze.Analyze)
	mux.HandleFunc("POST /v1/level", analyze.Level)
	mux.HandleFunc("POST /v1/wordlist", analyze.WordList)

	return mux
}
