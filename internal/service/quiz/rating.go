package quiz

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/wordtrainer/internal/domain"
)

// GetRating returns the user's rating for the dictionary or domain.ErrNotFound
// when no session has completed since the word set last changed.
func (e *Engine) GetRating(ctx context.Context, userID domain.UserID, dictionaryID uuid.UUID) (*domain.Rating, error) {
	var rating *domain.Rating
	err := e.read(ctx, "get rating", func(ctx context.Context) error {
		var err error
		rating, err = e.ratings.Get(ctx, userID, dictionaryID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rating, nil
}

// GetRatingByName is GetRating for a dictionary addressed by name.
func (e *Engine) GetRatingByName(ctx context.Context, userID domain.UserID, name string) (*domain.Rating, error) {
	dict, err := e.resolve(ctx, userID, name)
	if err != nil {
		return nil, err
	}
	return e.GetRating(ctx, userID, dict.ID)
}

// InvalidateRatingOnWordChange deletes the dictionary's rating. Word
// changes call it inside their own transaction; the row lock it takes
// orders it against a concurrent session commit.
func (e *Engine) InvalidateRatingOnWordChange(ctx context.Context, userID domain.UserID, dictionaryID uuid.UUID) error {
	var deleted int64
	err := e.write(ctx, "invalidate rating", func(ctx context.Context) error {
		return e.tx.RunInTx(ctx, func(txCtx context.Context) error {
			if err := e.dictionaries.LockForUpdate(txCtx, dictionaryID); err != nil {
				return err
			}
			var err error
			deleted, err = e.ratings.DeleteByDictionary(txCtx, dictionaryID)
			return err
		})
	})
	if err != nil {
		return err
	}

	if deleted > 0 {
		e.log.InfoContext(ctx, "rating invalidated",
			slog.Int64("user_id", int64(userID)),
			slog.String("dictionary_id", dictionaryID.String()),
		)
	}
	return nil
}
