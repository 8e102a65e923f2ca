package sqlite

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/wordtrainer/internal/domain"
)

const ratingUpsertSuffix = `ON CONFLICT (user_id, dictionary_id) DO UPDATE SET
    last_score  = excluded.last_score,
    best_score  = MAX(ratings.best_score, excluded.last_score),
    total_words = excluded.total_words,
    updated_at  = CURRENT_TIMESTAMP
RETURNING user_id, dictionary_id, last_score, best_score, total_words, updated_at`

// RatingRepo provides rating persistence backed by SQLite.
type RatingRepo struct {
	db Querier
}

// NewRatingRepo creates a new rating repository.
func NewRatingRepo(db Querier) *RatingRepo {
	return &RatingRepo{db: db}
}

// Get returns the rating for (userID, dictionaryID).
func (r *RatingRepo) Get(ctx context.Context, userID domain.UserID, dictionaryID uuid.UUID) (*domain.Rating, error) {
	query, args, err := builder().
		Select("user_id", "dictionary_id", "last_score", "best_score", "total_words", "updated_at").
		From("ratings").
		Where(squirrel.Eq{"user_id": int64(userID), "dictionary_id": dictionaryID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get rating: %w", err)
	}

	rt, err := scanRating(QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, mapError(err, "rating", dictionaryID)
	}
	return rt, nil
}

// Upsert records a completed session, creating the rating on first use.
func (r *RatingRepo) Upsert(ctx context.Context, userID domain.UserID, dictionaryID uuid.UUID, lastScore, totalWords int) (*domain.Rating, error) {
	query, args, err := builder().
		Insert("ratings").
		Columns("user_id", "dictionary_id", "last_score", "best_score", "total_words").
		Values(int64(userID), dictionaryID, lastScore, lastScore, totalWords).
		Suffix(ratingUpsertSuffix).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert rating: %w", err)
	}

	rt, err := scanRating(QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, mapError(err, "rating", dictionaryID)
	}
	return rt, nil
}

// DeleteByDictionary removes every rating of the dictionary.
func (r *RatingRepo) DeleteByDictionary(ctx context.Context, dictionaryID uuid.UUID) (int64, error) {
	query, args, err := builder().
		Delete("ratings").
		Where(squirrel.Eq{"dictionary_id": dictionaryID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete ratings: %w", err)
	}

	res, err := QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, mapError(err, "rating", dictionaryID)
	}
	return res.RowsAffected()
}

func scanRating(row scanner) (*domain.Rating, error) {
	var (
		rt     domain.Rating
		userID int64
	)
	if err := row.Scan(&userID, &rt.DictionaryID, &rt.LastScore, &rt.BestScore, &rt.TotalWords, timestamp{&rt.UpdatedAt}); err != nil {
		return nil, err
	}
	rt.UserID = domain.UserID(userID)
	return &rt, nil
}
