// Package spacy talks to the external NLP tagging service that performs
// tokenization, lemmatization, POS tagging and named-entity recognition.
package spacy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/patri2022onw/GermanTextLevel/internal/domain"
)

const defaultBaseURL = "http://localhost:8090"

// Provider fetches tagged tokens from the NLP tagging service.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider with the default service URL.
func NewProvider(logger *slog.Logger) *Provider {
	return NewProviderWithURL(defaultBaseURL, logger)
}

// NewProviderWithURL creates a Provider with a custom base URL (for testing).
func NewProviderWithURL(baseURL string, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		log:        logger.With("adapter", "spacy"),
	}
}

type tagRequest struct {
	Text  string `json:"text"`
	Model string `json:"model"`
}

type tagResponse struct {
	Tokens []domain.TaggedToken `json:"tokens"`
}

// Tag sends the text to the tagging service and returns its token stream.
func (p *Provider) Tag(ctx context.Context, text string) ([]domain.TaggedToken, error) {
	payload, err := json.Marshal(tagRequest{Text: text, Model: "de_core_news_sm"})
	if err != nil {
		return nil, fmt.Errorf("spacy: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/tag", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("spacy: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	p.log.DebugContext(ctx, "spacy request", slog.Int("text_len", len(text)))

	resp, err := p.doWithRetry(ctx, req, payload)
	if err != nil {
		p.log.ErrorContext(ctx, "spacy request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("spacy: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("spacy: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("spacy: read body: %w", err)
	}

	var out tagResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("spacy: decode json: %w", err)
	}

	p.log.DebugContext(ctx, "spacy response", slog.Int("tokens", len(out.Tokens)))

	return out.Tokens, nil
}

// doWithRetry executes the request with a single retry on 5xx or network
// errors. The body is re-attached because the first attempt consumes it.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request, payload []byte) (*http.Response, error) {
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "spacy retry", slog.String("reason", reason))

	// Close body from the failed attempt before retrying.
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	retry := req.Clone(ctx)
	retry.Body = io.NopCloser(bytes.NewReader(payload))

	return p.httpClient.Do(retry)
}
