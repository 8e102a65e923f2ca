package sqlite

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/wordtrainer/internal/domain"
)

var dictionaryColumns = []string{"id", "user_id", "name", "created_at"}

// DictionaryRepo provides dictionary persistence backed by SQLite.
type DictionaryRepo struct {
	db Querier
}

// NewDictionaryRepo creates a new dictionary repository.
func NewDictionaryRepo(db Querier) *DictionaryRepo {
	return &DictionaryRepo{db: db}
}

// Create inserts a dictionary. A duplicate (user, name) yields domain.ErrAlreadyExists.
func (r *DictionaryRepo) Create(ctx context.Context, d *domain.Dictionary) (*domain.Dictionary, error) {
	id := d.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query, args, err := builder().
		Insert("dictionaries").
		Columns("id", "user_id", "name").
		Values(id, int64(d.UserID), d.Name).
		Suffix("RETURNING id, user_id, name, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create dictionary: %w", err)
	}

	created, err := scanDictionary(QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, mapError(err, "dictionary", d.Name)
	}
	return created, nil
}

// GetByID returns a dictionary owned by userID.
func (r *DictionaryRepo) GetByID(ctx context.Context, userID domain.UserID, id uuid.UUID) (*domain.Dictionary, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id, "user_id": int64(userID)}, id)
}

// GetByName returns the dictionary named name owned by userID.
func (r *DictionaryRepo) GetByName(ctx context.Context, userID domain.UserID, name string) (*domain.Dictionary, error) {
	return r.getOne(ctx, squirrel.Eq{"user_id": int64(userID), "name": name}, name)
}

func (r *DictionaryRepo) getOne(ctx context.Context, where squirrel.Eq, key any) (*domain.Dictionary, error) {
	query, args, err := builder().
		Select(dictionaryColumns...).
		From("dictionaries").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get dictionary: %w", err)
	}

	d, err := scanDictionary(QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, mapError(err, "dictionary", key)
	}
	return d, nil
}

// ListByUser returns the user's dictionaries in creation order.
func (r *DictionaryRepo) ListByUser(ctx context.Context, userID domain.UserID) ([]domain.Dictionary, error) {
	query, args, err := builder().
		Select(dictionaryColumns...).
		From("dictionaries").
		Where(squirrel.Eq{"user_id": int64(userID)}).
		OrderBy("rowid").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list dictionaries: %w", err)
	}

	rows, err := QuerierFromCtx(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "dictionaries of user", int64(userID))
	}
	defer rows.Close()

	result := []domain.Dictionary{}
	for rows.Next() {
		d, err := scanDictionary(rows)
		if err != nil {
			return nil, fmt.Errorf("scan dictionary: %w", err)
		}
		result = append(result, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list dictionaries: %w", err)
	}
	return result, nil
}

// LockForUpdate checks the dictionary exists inside the current transaction.
// Transactions are opened with an immediate write lock, which already
// serializes word mutations and rating upserts.
func (r *DictionaryRepo) LockForUpdate(ctx context.Context, id uuid.UUID) error {
	query, args, err := builder().
		Select("id").
		From("dictionaries").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build lock dictionary: %w", err)
	}

	var locked uuid.UUID
	if err := QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...).Scan(&locked); err != nil {
		return mapError(err, "dictionary", id)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDictionary(row scanner) (*domain.Dictionary, error) {
	var (
		d      domain.Dictionary
		userID int64
	)
	if err := row.Scan(&d.ID, &userID, &d.Name, timestamp{&d.CreatedAt}); err != nil {
		return nil, err
	}
	d.UserID = domain.UserID(userID)
	return &d, nil
}
