package quiz

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/wordtrainer/internal/domain"
)

var _ ratingRepo = &ratingRepoMock{}

type ratingRepoMock struct {
	GetFunc                func(ctx context.Context, userID domain.UserID, dictionaryID uuid.UUID) (*domain.Rating, error)
	UpsertFunc             func(ctx context.Context, userID domain.UserID, dictionaryID uuid.UUID, lastScore int, totalWords int) (*domain.Rating, error)
	DeleteByDictionaryFunc func(ctx context.Context, dictionaryID uuid.UUID) (int64, error)

	calls struct {
		Get []struct {
			Ctx          context.Context
			UserID       domain.UserID
			DictionaryID uuid.UUID
		}
		Upsert []struct {
			Ctx          context.Context
			UserID       domain.UserID
			DictionaryID uuid.UUID
			LastScore    int
			TotalWords   int
		}
		DeleteByDictionary []struct {
			Ctx          context.Context
			DictionaryID uuid.UUID
		}
	}
	lockGet                sync.RWMutex
	lockUpsert             sync.RWMutex
	lockDeleteByDictionary sync.RWMutex
}

func (mock *ratingRepoMock) Get(ctx context.Context, userID domain.UserID, dictionaryID uuid.UUID) (*domain.Rating, error) {
	if mock.GetFunc == nil {
		panic("ratingRepoMock.GetFunc: method is nil but ratingRepo.Get was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		UserID       domain.UserID
		DictionaryID uuid.UUID
	}{Ctx: ctx, UserID: userID, DictionaryID: dictionaryID}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, userID, dictionaryID)
}

func (mock *ratingRepoMock) GetCalls() []struct {
	Ctx          context.Context
	UserID       domain.UserID
	DictionaryID uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *ratingRepoMock) Upsert(ctx context.Context, userID domain.UserID, dictionaryID uuid.UUID, lastScore int, totalWords int) (*domain.Rating, error) {
	if mock.UpsertFunc == nil {
		panic("ratingRepoMock.UpsertFunc: method is nil but ratingRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		UserID       domain.UserID
		DictionaryID uuid.UUID
		LastScore    int
		TotalWords   int
	}{Ctx: ctx, UserID: userID, DictionaryID: dictionaryID, LastScore: lastScore, TotalWords: totalWords}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, userID, dictionaryID, lastScore, totalWords)
}

func (mock *ratingRepoMock) UpsertCalls() []struct {
	Ctx          context.Context
	UserID       domain.UserID
	DictionaryID uuid.UUID
	LastScore    int
	TotalWords   int
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *ratingRepoMock) DeleteByDictionary(ctx context.Context, dictionaryID uuid.UUID) (int64, error) {
	if mock.DeleteByDictionaryFunc == nil {
		panic("ratingRepoMock.DeleteByDictionaryFunc: method is nil but ratingRepo.DeleteByDictionary was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		DictionaryID uuid.UUID
	}{Ctx: ctx, DictionaryID: dictionaryID}
	mock.lockDeleteByDictionary.Lock()
	mock.calls.DeleteByDictionary = append(mock.calls.DeleteByDictionary, callInfo)
	mock.lockDeleteByDictionary.Unlock()
	return mock.DeleteByDictionaryFunc(ctx, dictionaryID)
}

func (mock *ratingRepoMock) DeleteByDictionaryCalls() []struct {
	Ctx          context.Context
	DictionaryID uuid.UUID
} {
	mock.lockDeleteByDictionary.RLock()
	calls := mock.calls.DeleteByDictionary
	mock.lockDeleteByDictionary.RUnlock()
	return calls
}
