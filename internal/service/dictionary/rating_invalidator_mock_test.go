package dictionary

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/wordtrainer/internal/domain"
)

var _ ratingInvalidator = &ratingInvalidatorMock{}

type ratingInvalidatorMock struct {
	InvalidateRatingOnWordChangeFunc func(ctx context.Context, userID domain.UserID, dictionaryID uuid.UUID) error

	calls struct {
		InvalidateRatingOnWordChange []struct {
			Ctx          context.Context
			UserID       domain.UserID
			DictionaryID uuid.UUID
		}
	}
	lockInvalidateRatingOnWordChange sync.RWMutex
}

func (mock *ratingInvalidatorMock) InvalidateRatingOnWordChange(ctx context.Context, userID domain.UserID, dictionaryID uuid.UUID) error {
	if mock.InvalidateRatingOnWordChangeFunc == nil {
		panic("ratingInvalidatorMock.InvalidateRatingOnWordChangeFunc: method is nil but ratingInvalidator.InvalidateRatingOnWordChange was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		UserID       domain.UserID
		DictionaryID uuid.UUID
	}{Ctx: ctx, UserID: userID, DictionaryID: dictionaryID}
	mock.lockInvalidateRatingOnWordChange.Lock()
	mock.calls.InvalidateRatingOnWordChange = append(mock.calls.InvalidateRatingOnWordChange, callInfo)
	mock.lockInvalidateRatingOnWordChange.Unlock()
	return mock.InvalidateRatingOnWordChangeFunc(ctx, userID, dictionaryID)
}

func (mock *ratingInvalidatorMock) InvalidateRatingOnWordChangeCalls() []struct {
	Ctx          context.Context
	UserID       domain.UserID
	DictionaryID uuid.UUID
} {
	mock.lockInvalidateRatingOnWordChange.RLock()
	calls := mock.calls.InvalidateRatingOnWordChange
	mock.lockInvalidateRatingOnWordChange.RUnlock()
	return calls
}
