// Package translationstore persists the translation cache in PostgreSQL,
// giving cached translations a lifetime beyond one process.
package translationstore

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/patri2022onw/GermanTextLevel/internal/domain"
	"github.com/patri2022onw/GermanTextLevel/internal/translate"
)

const table = "translation_cache"

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo implements translate.Store on top of a pgx pool.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new translation store.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Get returns the stored translation for one key, or domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, word, lang, translator string) (string, error) {
	query, args, err := qb.Select("translation").
		From(table).
		Where(sq.Eq{"word": word, "lang": lang, "translator": translator}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build get query: %w", err)
	}

	var translation string
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&translation); err != nil {
		return "", mapError(err, word)
	}
	return translation, nil
}

// GetBatch returns the stored translations for the given words under one
// (lang, translator) pair. Missing words are simply absent from the map.
func (r *Repo) GetBatch(ctx context.Context, words []string, lang, translator string) (map[string]string, error) {
	if len(words) == 0 {
		return map[string]string{}, nil
	}

	query, args, err := qb.Select("word", "translation").
		From(table).
		Where(sq.Eq{"word": words, "lang": lang, "translator": translator}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build batch get query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get translations batch: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string, len(words))
	for rows.Next() {
		var word, translation string
		if err := rows.Scan(&word, &translation); err != nil {
			return nil, fmt.Errorf("scan translation row: %w", err)
		}
		out[word] = translation
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get translations batch: %w", err)
	}
	return out, nil
}

const upsertSuffix = `ON CONFLICT (word, lang, translator)
DO UPDATE SET translation = EXCLUDED.translation, updated_at = now()`

// Put stores one translation, overwriting an existing entry for the key.
func (r *Repo) Put(ctx context.Context, e translate.Entry) error {
	query, args, err := upsert(e).ToSql()
	if err != nil {
		return fmt.Errorf("build put query: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return mapError(err, e.Word)
	}
	return nil
}

// PutBatch stores all entries in one round trip.
func (r *Repo) PutBatch(ctx context.Context, entries []translate.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, e := range entries {
		query, args, err := upsert(e).ToSql()
		if err != nil {
			return fmt.Errorf("build batch put query: %w", err)
		}
		batch.Queue(query, args...)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for _, e := range entries {
		if _, err := results.Exec(); err != nil {
			return mapError(err, e.Word)
		}
	}
	return nil
}

// Count returns the number of persisted entries, for stats reporting.
func (r *Repo) Count(ctx context.Context) (int64, error) {
	query, _, err := qb.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var n int64
	if err := r.pool.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("count translations: %w", err)
	}
	return n, nil
}

func upsert(e translate.Entry) sq.InsertBuilder {
	return qb.Insert(table).
		Columns("word", "lang", "translator", "translation").
		Values(e.Word, e.Language, e.Translator, e.Translation).
		Suffix(upsertSuffix)
}

// mapError converts pgx errors to domain errors. Context errors pass
// through unmapped.
func mapError(err error, word string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("translation %q: %w", word, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("translation %q: %w", word, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23514" { // check_violation
		return fmt.Errorf("translation %q: %w", word, domain.ErrValidation)
	}

	return fmt.Errorf("translation %q: %w", word, err)
}
