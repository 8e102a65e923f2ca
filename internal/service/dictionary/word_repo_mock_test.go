package dictionary

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/wordtrainer/internal/domain"
)

var _ wordRepo = &wordRepoMock{}

type wordRepoMock struct {
	ListByDictionaryFunc   func(ctx context.Context, dictionaryID uuid.UUID) ([]domain.WordPair, error)
	GetByTermFunc          func(ctx context.Context, dictionaryID uuid.UUID, term string) (*domain.WordPair, error)
	CreateFunc             func(ctx context.Context, w *domain.WordPair) (*domain.WordPair, error)
	UpdateTranslationsFunc func(ctx context.Context, id uuid.UUID, translations domain.TranslationSet) (*domain.WordPair, error)
	DeleteFunc             func(ctx context.Context, dictionaryID uuid.UUID, term string) error

	calls struct {
		ListByDictionary []struct {
			Ctx          context.Context
			DictionaryID uuid.UUID
		}
		GetByTerm []struct {
			Ctx          context.Context
			DictionaryID uuid.UUID
			Term         string
		}
		Create []struct {
			Ctx context.Context
			W   *domain.WordPair
		}
		UpdateTranslations []struct {
			Ctx          context.Context
			ID           uuid.UUID
			Translations domain.TranslationSet
		}
		Delete []struct {
			Ctx          context.Context
			DictionaryID uuid.UUID
			Term         string
		}
	}
	lockListByDictionary   sync.RWMutex
	lockGetByTerm          sync.RWMutex
	lockCreate             sync.RWMutex
	lockUpdateTranslations sync.RWMutex
	lockDelete             sync.RWMutex
}

func (mock *wordRepoMock) ListByDictionary(ctx context.Context, dictionaryID uuid.UUID) ([]domain.WordPair, error) {
	if mock.ListByDictionaryFunc == nil {
		panic("wordRepoMock.ListByDictionaryFunc: method is nil but wordRepo.ListByDictionary was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		DictionaryID uuid.UUID
	}{Ctx: ctx, DictionaryID: dictionaryID}
	mock.lockListByDictionary.Lock()
	mock.calls.ListByDictionary = append(mock.calls.ListByDictionary, callInfo)
	mock.lockListByDictionary.Unlock()
	return mock.ListByDictionaryFunc(ctx, dictionaryID)
}

func (mock *wordRepoMock) ListByDictionaryCalls() []struct {
	Ctx          context.Context
	DictionaryID uuid.UUID
} {
	mock.lockListByDictionary.RLock()
	calls := mock.calls.ListByDictionary
	mock.lockListByDictionary.RUnlock()
	return calls
}

func (mock *wordRepoMock) GetByTerm(ctx context.Context, dictionaryID uuid.UUID, term string) (*domain.WordPair, error) {
	if mock.GetByTermFunc == nil {
		panic("wordRepoMock.GetByTermFunc: method is nil but wordRepo.GetByTerm was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		DictionaryID uuid.UUID
		Term         string
	}{Ctx: ctx, DictionaryID: dictionaryID, Term: term}
	mock.lockGetByTerm.Lock()
	mock.calls.GetByTerm = append(mock.calls.GetByTerm, callInfo)
	mock.lockGetByTerm.Unlock()
	return mock.GetByTermFunc(ctx, dictionaryID, term)
}

func (mock *wordRepoMock) GetByTermCalls() []struct {
	Ctx          context.Context
	DictionaryID uuid.UUID
	Term         string
} {
	mock.lockGetByTerm.RLock()
	calls := mock.calls.GetByTerm
	mock.lockGetByTerm.RUnlock()
	return calls
}

func (mock *wordRepoMock) Create(ctx context.Context, w *domain.WordPair) (*domain.WordPair, error) {
	if mock.CreateFunc == nil {
		panic("wordRepoMock.CreateFunc: method is nil but wordRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		W   *domain.WordPair
	}{Ctx: ctx, W: w}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, w)
}

func (mock *wordRepoMock) CreateCalls() []struct {
	Ctx context.Context
	W   *domain.WordPair
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *wordRepoMock) UpdateTranslations(ctx context.Context, id uuid.UUID, translations domain.TranslationSet) (*domain.WordPair, error) {
	if mock.UpdateTranslationsFunc == nil {
		panic("wordRepoMock.UpdateTranslationsFunc: method is nil but wordRepo.UpdateTranslations was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		ID           uuid.UUID
		Translations domain.TranslationSet
	}{Ctx: ctx, ID: id, Translations: translations}
	mock.lockUpdateTranslations.Lock()
	mock.calls.UpdateTranslations = append(mock.calls.UpdateTranslations, callInfo)
	mock.lockUpdateTranslations.Unlock()
	return mock.UpdateTranslationsFunc(ctx, id, translations)
}

func (mock *wordRepoMock) UpdateTranslationsCalls() []struct {
	Ctx          context.Context
	ID           uuid.UUID
	Translations domain.TranslationSet
} {
	mock.lockUpdateTranslations.RLock()
	calls := mock.calls.UpdateTranslations
	mock.lockUpdateTranslations.RUnlock()
	return calls
}

func (mock *wordRepoMock) Delete(ctx context.Context, dictionaryID uuid.UUID, term string) error {
	if mock.DeleteFunc == nil {
		panic("wordRepoMock.DeleteFunc: method is nil but wordRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		DictionaryID uuid.UUID
		Term         string
	}{Ctx: ctx, DictionaryID: dictionaryID, Term: term}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, dictionaryID, term)
}

func (mock *wordRepoMock) DeleteCalls() []struct {
	Ctx          context.Context
	DictionaryID uuid.UUID
	Term         string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
