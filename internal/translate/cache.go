package translate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/patri2022onw/GermanTextLevel/internal/domain"
)

// DefaultBatchThreshold is the uncached-word count above which a single
// batch call is issued instead of per-word calls.
const DefaultBatchThreshold = 5

// Entry is one cached translation, keyed by (word, language, translator).
type Entry struct {
	Word        string
	Language    string
	Translator  string
	Translation string
}

// Store is an optional persistent layer under the in-memory cache.
// Get returns domain.ErrNotFound for a missing key. Implementations must
// be safe for concurrent use.
type Store interface {
	Get(ctx context.Context, word, lang, translator string) (string, error)
	GetBatch(ctx context.Context, words []string, lang, translator string) (map[string]string, error)
	Put(ctx context.Context, e Entry) error
	PutBatch(ctx context.Context, entries []Entry) error
}

type cacheKey struct {
	word       string
	lang       string
	translator string
}

// Cache is the process-wide translation cache. Entries live for the
// process lifetime and are never invalidated by the analyzer. Reads and
// writes are synchronized; the external translator is invoked outside the
// lock, so two concurrent misses for one key may both call it; the map
// itself stays consistent.
type Cache struct {
	mu      sync.Mutex
	entries map[cacheKey]string

	store     Store // optional write-through persistence
	threshold int
	log       *slog.Logger
}

// NewCache creates a Cache. store may be nil (memory only). A threshold
// below 1 falls back to DefaultBatchThreshold.
func NewCache(store Store, threshold int, logger *slog.Logger) *Cache {
	if threshold < 1 {
		threshold = DefaultBatchThreshold
	}
	return &Cache{
		entries:   make(map[cacheKey]string),
		store:     store,
		threshold: threshold,
		log:       logger.With("component", "translation_cache"),
	}
}

// Len returns the number of in-memory entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// GetOrTranslate returns the cached translation for (word, lang, tr.Name())
// or invokes the translator on a miss, stores the result, and returns it.
// An empty translator result is an error; nothing is cached in that case.
func (c *Cache) GetOrTranslate(ctx context.Context, word, lang string, tr Translator) (string, error) {
	key := cacheKey{word: word, lang: lang, translator: tr.Name()}

	if cached, ok := c.lookup(ctx, key); ok {
		return cached, nil
	}

	translation, err := tr.TranslateOne(ctx, word, lang)
	if err != nil {
		return "", fmt.Errorf("translate %q: %w", word, err)
	}
	if translation == "" {
		return "", fmt.Errorf("translate %q: empty result", word)
	}

	c.put(ctx, key, translation)
	return translation, nil
}

// BatchGetOrTranslate resolves translations for all words, consulting the
// cache first and issuing at most one batch call for the uncached subset
// (per-word calls below the threshold). Translator failures are absorbed:
// the returned map simply lacks the unresolved words and callers fall back
// to placeholders for them.
func (c *Cache) BatchGetOrTranslate(ctx context.Context, words []string, lang string, tr Translator) map[string]string {
	result := make(map[string]string, len(words))

	// Deduplicate while preserving order; resolve from memory first.
	seen := make(map[string]struct{}, len(words))
	var misses []string
	c.mu.Lock()
	for _, w := range words {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}

		if cached, ok := c.entries[cacheKey{word: w, lang: lang, translator: tr.Name()}]; ok {
			result[w] = cached
			continue
		}
		misses = append(misses, w)
	}
	c.mu.Unlock()

	uncached := c.resolveFromStore(ctx, misses, lang, tr.Name(), result)

	if len(uncached) == 0 {
		return result
	}

	if len(uncached) > c.threshold {
		c.batchTranslate(ctx, uncached, lang, tr, result)
		return result
	}

	// Small remainder: per-word calls are acceptable and simpler.
	for _, w := range uncached {
		translation, err := c.GetOrTranslate(ctx, w, lang, tr)
		if err != nil {
			c.log.WarnContext(ctx, "single translation failed",
				slog.String("word", w), slog.String("error", err.Error()))
			continue
		}
		result[w] = translation
	}

	return result
}

// resolveFromStore fills result with persisted translations for the given
// misses, promoting hits into memory, and returns the words still
// unresolved. Store failures degrade to "all missed".
func (c *Cache) resolveFromStore(ctx context.Context, misses []string, lang, translator string, result map[string]string) []string {
	if c.store == nil || len(misses) == 0 {
		return misses
	}

	stored, err := c.store.GetBatch(ctx, misses, lang, translator)
	if err != nil {
		c.log.WarnContext(ctx, "translation store batch read failed",
			slog.Int("words", len(misses)), slog.String("error", err.Error()))
		return misses
	}

	var uncached []string
	for _, w := range misses {
		translation, ok := stored[w]
		if !ok || translation == "" {
			uncached = append(uncached, w)
			continue
		}
		c.memPut(cacheKey{word: w, lang: lang, translator: translator}, translation)
		result[w] = translation
	}
	return uncached
}

// batchTranslate issues one batch call and stores every resolved word.
// A response shorter than the request leaves the tail unresolved.
func (c *Cache) batchTranslate(ctx context.Context, words []string, lang string, tr Translator, result map[string]string) {
	translations, err := tr.TranslateBatch(ctx, words, lang)
	if err != nil {
		c.log.WarnContext(ctx, "batch translation failed",
			slog.Int("words", len(words)), slog.String("error", err.Error()))
		return
	}

	var entries []Entry
	for i, w := range words {
		if i >= len(translations) || translations[i] == "" {
			continue
		}
		key := cacheKey{word: w, lang: lang, translator: tr.Name()}
		c.memPut(key, translations[i])
		result[w] = translations[i]
		entries = append(entries, Entry{Word: w, Language: lang, Translator: tr.Name(), Translation: translations[i]})
	}

	c.storePutBatch(ctx, entries)
}

// lookup checks memory first, then the persistent store. A store hit is
// promoted into memory.
func (c *Cache) lookup(ctx context.Context, key cacheKey) (string, bool) {
	c.mu.Lock()
	cached, ok := c.entries[key]
	c.mu.Unlock()
	if ok {
		return cached, true
	}

	if c.store == nil {
		return "", false
	}

	stored, err := c.store.Get(ctx, key.word, key.lang, key.translator)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			c.log.WarnContext(ctx, "translation store read failed",
				slog.String("word", key.word), slog.String("error", err.Error()))
		}
		return "", false
	}

	c.memPut(key, stored)
	return stored, true
}

func (c *Cache) memPut(key cacheKey, translation string) {
	c.mu.Lock()
	c.entries[key] = translation
	c.mu.Unlock()
}

// put stores in memory and writes through to the store when configured.
func (c *Cache) put(ctx context.Context, key cacheKey, translation string) {
	c.memPut(key, translation)

	if c.store == nil {
		return
	}
	e := Entry{Word: key.word, Language: key.lang, Translator: key.translator, Translation: translation}
	if err := c.store.Put(ctx, e); err != nil {
		c.log.WarnContext(ctx, "translation store write failed",
			slog.String("word", key.word), slog.String("error", err.Error()))
	}
}

func (c *Cache) storePutBatch(ctx context.Context, entries []Entry) {
	if c.store == nil || len(entries) == 0 {
		return
	}
	if err := c.store.PutBatch(ctx, entries); err != nil {
		c.log.WarnContext(ctx, "translation store batch write failed",
			slog.Int("entries", len(entries)), slog.String("error", err.Error()))
	}
}
