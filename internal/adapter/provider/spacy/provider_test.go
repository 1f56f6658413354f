package spacy

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProvider_Tag_Success(t *testing.T) {
	t.Parallel()

	body := `{
		"tokens": [
			{"text": "Das", "lemma": "der", "pos": "DET", "ent_type": "", "is_punct": false, "is_space": false, "index": 0},
			{"text": "Haus", "lemma": "Haus", "pos": "NOUN", "ent_type": "", "is_punct": false, "is_space": false, "index": 1},
			{"text": "Berlin", "lemma": "Berlin", "pos": "PROPN", "ent_type": "LOC", "is_punct": false, "is_space": false, "index": 2},
			{"text": ".", "lemma": ".", "pos": "PUNCT", "ent_type": "", "is_punct": true, "is_space": false, "index": 3}
		]
	}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tag" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}

		var req tagRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Text != "Das Haus Berlin." {
			t.Errorf("request text = %q", req.Text)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(body))
	}))
	defer srv.Close()

	p := NewProviderWithURL(srv.URL, newTestLogger())
	tokens, err := p.Tag(context.Background(), "Das Haus Berlin.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tokens) != 4 {
		t.Fatalf("len(tokens) = %d, want 4", len(tokens))
	}
	if tokens[0].Lemma != "der" || tokens[0].POS != "DET" {
		t.Errorf("tokens[0] = %+v", tokens[0])
	}
	if tokens[2].EntityType != "LOC" {
		t.Errorf("tokens[2].EntityType = %q, want %q", tokens[2].EntityType, "LOC")
	}
	if !tokens[3].IsPunct {
		t.Error("tokens[3].IsPunct = false, want true")
	}
}

func TestProvider_Tag_RetriesOn5xx(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// The retried request must carry the body again.
		var req tagRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
			t.Errorf("retry lost request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"tokens": [{"text": "Hallo", "lemma": "hallo", "index": 0}]}`))
	}))
	defer srv.Close()

	p := NewProviderWithURL(srv.URL, newTestLogger())
	tokens, err := p.Tag(context.Background(), "Hallo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls.Load() != 2 {
		t.Errorf("calls = %d, want 2", calls.Load())
	}
	if len(tokens) != 1 || tokens[0].Surface != "Hallo" {
		t.Errorf("tokens = %v", tokens)
	}
}

func TestProvider_Tag_FailsAfterRetry(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	p := NewProviderWithURL(srv.URL, newTestLogger())
	if _, err := p.Tag(context.Background(), "Hallo"); err == nil {
		t.Fatal("expected error")
	}
	if calls.Load() != 2 {
		t.Errorf("calls = %d, want 2", calls.Load())
	}
}

func TestProvider_Tag_BadJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"tokens": `))
	}))
	defer srv.Close()

	p := NewProviderWithURL(srv.URL, newTestLogger())
	if _, err := p.Tag(context.Background(), "Hallo"); err == nil {
		t.Fatal("expected error")
	}
}
