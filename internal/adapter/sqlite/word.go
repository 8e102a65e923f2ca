package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/wordtrainer/internal/domain"
)

// translationsSeparator joins the translation set in the translations column.
const translationsSeparator = ";"

const wordReturning = "RETURNING id, dictionary_id, term, translations, created_at"

var wordColumns = []string{"id", "dictionary_id", "term", "translations", "created_at"}

// WordRepo provides word pair persistence backed by SQLite.
type WordRepo struct {
	db Querier
}

// NewWordRepo creates a new word repository.
func NewWordRepo(db Querier) *WordRepo {
	return &WordRepo{db: db}
}

// ListByDictionary returns the dictionary's word pairs in creation order.
func (r *WordRepo) ListByDictionary(ctx context.Context, dictionaryID uuid.UUID) ([]domain.WordPair, error) {
	query, args, err := builder().
		Select(wordColumns...).
		From("words").
		Where(squirrel.Eq{"dictionary_id": dictionaryID}).
		OrderBy("rowid").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list words: %w", err)
	}

	rows, err := QuerierFromCtx(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "words of dictionary", dictionaryID)
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
func (r *WordRepo) GetByTerm(ctx context.Context, dictionaryID uuid.UUID, term string) (*domain.WordPair, error) {
	query, args, err := builder().
		Select(wordColumns...).
		From("words").
		Where(squirrel.Eq{"dictionary_id": dictionaryID, "term": term}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get word: %w", err)
	}

	w, err := scanWord(QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, mapError(err, "word", term)
	}
	return w, nil
}

// Create inserts a new pair. A duplicate term yields domain.ErrAlreadyExists.
func (r *WordRepo) Create(ctx context.Context, w *domain.WordPair) (*domain.WordPair, error) {
	id := w.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query, args, err := builder().
		Insert("words").
		Columns("id", "dictionary_id", "term", "translations").
		Values(id, w.DictionaryID, w.Term, w.Translations.Join(translationsSeparator)).
		Suffix(wordReturning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create word: %w", err)
	}

	created, err := scanWord(QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, mapError(err, "word", w.Term)
	}
	return created, nil
}

// UpdateTranslations replaces the translation set of an existing pair.
func (r *WordRepo) UpdateTranslations(ctx context.Context, id uuid.UUID, translations domain.TranslationSet) (*domain.WordPair, error) {
	query, args, err := builder().
		Update("words").
		Set("translations", translations.Join(translationsSeparator)).
		Where(squirrel.Eq{"id": id}).
		Suffix(wordReturning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update word: %w", err)
	}

	updated, err := scanWord(QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, mapError(err, "word", id)
	}
	return updated, nil
}

// Delete removes the pair for term. Returns domain.ErrNotFound when absent.
func (r *WordRepo) Delete(ctx context.Context, dictionaryID uuid.UUID, term string) error {
	query, args, err := builder().
		Delete("words").
		Where(squirrel.Eq{"dictionary_id": dictionaryID, "term": term}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete word: %w", err)
	}

	res, err := QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return mapError(err, "word", term)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete word %s: %w", term, err)
	}
	if n == 0 {
		return fmt.Errorf("word %s: %w", term, domain.ErrNotFound)
	}
	return nil
}

func scanWord(row scanner) (*domain.WordPair, error) {
	var (
		w            domain.WordPair
		translations string
	)
	if err := row.Scan(&w.ID, &w.DictionaryID, &w.Term, &translations, timestamp{&w.CreatedAt}); err != nil {
		return nil, err
	}
	w.Translations = domain.NewTranslationSet(strings.Split(translations, translationsSeparator)...)
	return &w, nil
}
