// Package word implements the WordPair repository using PostgreSQL.
// Translations are stored as a text[] column.
package word

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/wordtrainer/internal/adapter/postgres"
	"github.com/heartmarshall/wordtrainer/internal/domain"
)

const returning = "RETURNING id, dictionary_id, term, translations, created_at"

var columns = []string{"id", "dictionary_id", "term", "translations", "created_at"}

// Repo provides word pair persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new word repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ListByDictionary returns the dictionary's word pairs in creation order.
func (r *Repo) ListByDictionary(ctx context.Context, dictionaryID uuid.UUID) ([]domain.WordPair, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("words").
		Where(squirrel.Eq{"dictionary_id": dictionaryID}).
		OrderBy("seq").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list words: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	defer rows.Close()

	result := []domain.WordPair{}
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		result = append(result, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}

	return result, nil
}

// GetByTerm returns the pair for a normalized term.
func (r *Repo) GetByTerm(ctx context.Context, dictionaryID uuid.UUID, term string) (*domain.WordPair, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("words").
		Where(squirrel.Eq{"dictionary_id": dictionaryID, "term": term}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get word: %w", err)
	}

	w, err := scanWord(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "word", term)
	}
	return w, nil
}

// Create inserts a new pair. A duplicate term yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, w *domain.WordPair) (*domain.WordPair, error) {
	id := w.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query, args, err := postgres.Builder().
		Insert("words").
		Columns("id", "dictionary_id", "term", "translations").
		Values(id, w.DictionaryID, w.Term, w.Translations.Values()).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create word: %w", err)
	}

	created, err := scanWord(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "word", w.Term)
	}
	return created, nil
}

// UpdateTranslations replaces the translation set of an existing pair.
func (r *Repo) UpdateTranslations(ctx context.Context, id uuid.UUID, translations domain.TranslationSet) (*domain.WordPair, error) {
	query, args, err := postgres.Builder().
		Update("words").
		Set("translations", translations.Values()).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update word: %w", err)
	}

	updated, err := scanWord(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "word", id)
	}
	return updated, nil
}

// Delete removes the pair for term. Returns domain.ErrNotFound when absent.
func (r *Repo) Delete(ctx context.Context, dictionaryID uuid.UUID, term string) error {
	query, args, err := postgres.Builder().
		Delete("words").
		Where(squirrel.Eq{"dictionary_id": dictionaryID, "term": term}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete word: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "word", term)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("word %s: %w", term, domain.ErrNotFound)
	}
	return nil
}

func scanWord(row pgx.Row) (*domain.WordPair, error) {
	var (
		w            domain.WordPair
		translations []string
	)
	if err := row.Scan(&w.ID, &w.DictionaryID, &w.Term, &translations, &w.CreatedAt); err != nil {
		return nil, err
	}
	w.Translations = domain.NewTranslationSet(translations...)
	return &w, nil
}
