// Package claude adapts the Anthropic API to the translator and rewriter
// capabilities of the analysis pipeline.
package claude

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/patri2022onw/GermanTextLevel/internal/domain"
)

// DefaultModel is used when the configuration names no model.
const DefaultModel = "claude-3-5-haiku-latest"

// Client implements word translation and text simplification on top of
// the Anthropic Messages API.
type Client struct {
	api   anthropic.Client
	model string
	log   *slog.Logger
}

// New creates a Client for the given API key and model. An empty model
// selects DefaultModel.
func New(apiKey, model string, logger *slog.Logger) *Client {
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		api:   anthropic.NewClient(option.WithAPIKey(apiKey)),
		model: model,
		log:   logger.With("adapter", "claude"),
	}
}

// Name identifies this translator for cache keying. All Claude models
// share one cache namespace.
func (c *Client) Name() string { return "claude" }

// TranslateOne translates a single German word into the target language.
func (c *Client) TranslateOne(ctx context.Context, word, targetLang string) (string, error) {
	text, err := c.complete(ctx, buildTranslatePrompt(word, targetLang), 50)
	if err != nil {
		return "", fmt.Errorf("claude: translate %q: %w", word, err)
	}

	translation := firstLine(text)
	if translation == "" {
		return "", fmt.Errorf("claude: empty translation for %q", word)
	}
	return translation, nil
}

// TranslateBatch translates words in one request. The response lines are
// aligned positionally with the input and may be fewer than requested;
// the caller resolves the shortfall.
func (c *Client) TranslateBatch(ctx context.Context, words []string, targetLang string) ([]string, error) {
	if len(words) == 0 {
		return nil, nil
	}

	text, err := c.complete(ctx, buildBatchPrompt(words, targetLang), 1024)
	if err != nil {
		return nil, fmt.Errorf("claude: translate batch of %d: %w", len(words), err)
	}

	translations := parseBatchResponse(text)
	c.log.DebugContext(ctx, "batch translated",
		slog.Int("requested", len(words)),
		slog.Int("received", len(translations)),
	)
	return translations, nil
}

// Rewrite simplifies the text to the target level, replacing the listed
// above-level words.
func (c *Client) Rewrite(ctx context.Context, text string, target domain.Level, wordsToReplace []string) (string, error) {
	out, err := c.complete(ctx, buildRewritePrompt(text, target, wordsToReplace), 1024)
	if err != nil {
		return "", fmt.Errorf("claude: rewrite: %w", err)
	}
	return strings.TrimSpace(out), nil
}

func (c *Client) complete(ctx context.Context, prompt string, maxTokens int64) (string, error) {
	msg, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", err
	}
	if len(msg.Content) == 0 {
		return "", fmt.Errorf("empty response")
	}
	return msg.Content[0].Text, nil
}

func buildTranslatePrompt(word, targetLang string) string {
	return fmt.Sprintf(`Translate the German word "%s" to %s.
Provide ONLY the translation, no explanations or additional text.
If the word has multiple meanings, provide the most common one.

German word: %s
%s translation:`, word, targetLang, word, targetLang)
}

func buildBatchPrompt(words []string, targetLang string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = fmt.Sprintf("%q", w)
	}
	return fmt.Sprintf(`Translate these German words to %s.
Format your response as a simple list with one translation per line,
in the same order as the input words.

German words: %s

Provide ONLY the translations, one per line:`, targetLang, strings.Join(quoted, ", "))
}

func buildRewritePrompt(text string, target domain.Level, wordsToReplace []string) string {
	return fmt.Sprintf(`Please simplify the following German text to %s level.
Replace these words that are above %s level: %s
Keep the meaning as close as possible to the original.

Original text: %s

Simplified text:`, target, target, strings.Join(wordsToReplace, ", "), text)
}

// parseBatchResponse splits the model output into one translation per
// line, dropping blank lines and list numbering.
func parseBatchResponse(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, stripListMarker(line))
	}
	return out
}

// stripListMarker removes a leading "1." / "1)" / "-" marker the model
// sometimes adds despite the prompt.
func stripListMarker(line string) string {
	trimmed := strings.TrimLeft(line, "0123456789")
	if trimmed != line {
		if rest, ok := strings.CutPrefix(trimmed, "."); ok {
			return strings.TrimSpace(rest)
		}
		if rest, ok := strings.CutPrefix(trimmed, ")"); ok {
			return strings.TrimSpace(rest)
		}
		return line
	}
	if rest, ok := strings.CutPrefix(line, "- "); ok {
		return strings.TrimSpace(rest)
	}
	return line
}

func firstLine(text string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	return strings.TrimSpace(line)
}
