package chat

import (
	"context"
	"sync"

	"github.com/heartmarshall/wordtrainer/internal/domain"
	"github.com/heartmarshall/wordtrainer/internal/service/dictionary"
)

var _ dictionaryService = &dictionaryServiceMock{}

type dictionaryServiceMock struct {
	RegisterUserFunc      func(ctx context.Context, userID domain.UserID) error
	CreateDictionaryFunc  func(ctx context.Context, input dictionary.CreateDictionaryInput) (*domain.Dictionary, error)
	ListDictionariesFunc  func(ctx context.Context, userID domain.UserID) ([]domain.Dictionary, error)
	ResolveDictionaryFunc func(ctx context.Context, userID domain.UserID, name string) (*domain.Dictionary, error)
	AddWordFunc           func(ctx context.Context, input dictionary.AddWordInput) (*dictionary.AddWordResult, error)
	DeleteWordFunc        func(ctx context.Context, input dictionary.DeleteWordInput) error
	ListWordsFunc         func(ctx context.Context, userID domain.UserID, name string) ([]domain.WordPair, error)

	calls struct {
		RegisterUser []struct {
			Ctx    context.Context
			UserID domain.UserID
		}
		CreateDictionary []struct {
			Ctx   context.Context
			Input dictionary.CreateDictionaryInput
		}
		ListDictionaries []struct {
			Ctx    context.Context
			UserID domain.UserID
		}
		ResolveDictionary []struct {
			Ctx    context.Context
			UserID domain.UserID
			Name   string
		}
		AddWord []struct {
			Ctx   context.Context
			Input dictionary.AddWordInput
		}
		DeleteWord []struct {
			Ctx   context.Context
			Input dictionary.DeleteWordInput
		}
		ListWords []struct {
			Ctx    context.Context
			UserID domain.UserID
			Name   string
		}
	}
	lockRegisterUser      sync.RWMutex
	lockCreateDictionary  sync.RWMutex
	lockListDictionaries  sync.RWMutex
	lockResolveDictionary sync.RWMutex
	lockAddWord           sync.RWMutex
	lockDeleteWord        sync.RWMutex
	lockListWords         sync.RWMutex
}

func (mock *dictionaryServiceMock) RegisterUser(ctx context.Context, userID domain.UserID) error {
	if mock.RegisterUserFunc == nil {
		panic("dictionaryServiceMock.RegisterUserFunc: method is nil but dictionaryService.RegisterUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID domain.UserID
	}{Ctx: ctx, UserID: userID}
	mock.lockRegisterUser.Lock()
	mock.calls.RegisterUser = append(mock.calls.RegisterUser, callInfo)
	mock.lockRegisterUser.Unlock()
	return mock.RegisterUserFunc(ctx, userID)
}

func (mock *dictionaryServiceMock) RegisterUserCalls() []struct {
	Ctx    context.Context
	UserID domain.UserID
} {
	mock.lockRegisterUser.RLock()
	calls := mock.calls.RegisterUser
	mock.lockRegisterUser.RUnlock()
	return calls
}

func (mock *dictionaryServiceMock) CreateDictionary(ctx context.Context, input dictionary.CreateDictionaryInput) (*domain.Dictionary, error) {
	if mock.CreateDictionaryFunc == nil {
		panic("dictionaryServiceMock.CreateDictionaryFunc: method is nil but dictionaryService.CreateDictionary was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input dictionary.CreateDictionaryInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateDictionary.Lock()
	mock.calls.CreateDictionary = append(mock.calls.CreateDictionary, callInfo)
	mock.lockCreateDictionary.Unlock()
	return mock.CreateDictionaryFunc(ctx, input)
}

func (mock *dictionaryServiceMock) CreateDictionaryCalls() []struct {
	Ctx   context.Context
	Input dictionary.CreateDictionaryInput
} {
	mock.lockCreateDictionary.RLock()
	calls := mock.calls.CreateDictionary
	mock.lockCreateDictionary.RUnlock()
	return calls
}

func (mock *dictionaryServiceMock) ListDictionaries(ctx context.Context, userID domain.UserID) ([]domain.Dictionary, error) {
	if mock.ListDictionariesFunc == nil {
		panic("dictionaryServiceMock.ListDictionariesFunc: method is nil but dictionaryService.ListDictionaries was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID domain.UserID
	}{Ctx: ctx, UserID: userID}
	mock.lockListDictionaries.Lock()
	mock.calls.ListDictionaries = append(mock.calls.ListDictionaries, callInfo)
	mock.lockListDictionaries.Unlock()
	return mock.ListDictionariesFunc(ctx, userID)
}

func (mock *dictionaryServiceMock) ListDictionariesCalls() []struct {
	Ctx    context.Context
	UserID domain.UserID
} {
	mock.lockListDictionaries.RLock()
	calls := mock.calls.ListDictionaries
	mock.lockListDictionaries.RUnlock()
	return calls
}

func (mock *dictionaryServiceMock) ResolveDictionary(ctx context.Context, userID domain.UserID, name string) (*domain.Dictionary, error) {
	if mock.ResolveDictionaryFunc == nil {
		panic("dictionaryServiceMock.ResolveDictionaryFunc: method is nil but dictionaryService.ResolveDictionary was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID domain.UserID
		Name   string
	}{Ctx: ctx, UserID: userID, Name: name}
	mock.lockResolveDictionary.Lock()
	mock.calls.ResolveDictionary = append(mock.calls.ResolveDictionary, callInfo)
	mock.lockResolveDictionary.Unlock()
	return mock.ResolveDictionaryFunc(ctx, userID, name)
}

func (mock *dictionaryServiceMock) ResolveDictionaryCalls() []struct {
	Ctx    context.Context
	UserID domain.UserID
	Name   string
} {
	mock.lockResolveDictionary.RLock()
	calls := mock.calls.ResolveDictionary
	mock.lockResolveDictionary.RUnlock()
	return calls
}

func (mock *dictionaryServiceMock) AddWord(ctx context.Context, input dictionary.AddWordInput) (*dictionary.AddWordResult, error) {
	if mock.AddWordFunc == nil {
		panic("dictionaryServiceMock.AddWordFunc: method is nil but dictionaryService.AddWord was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input dictionary.AddWordInput
	}{Ctx: ctx, Input: input}
	mock.lockAddWord.Lock()
	mock.calls.AddWord = append(mock.calls.AddWord, callInfo)
	mock.lockAddWord.Unlock()
	return mock.AddWordFunc(ctx, input)
}

func (mock *dictionaryServiceMock) AddWordCalls() []struct {
	Ctx   context.Context
	Input dictionary.AddWordInput
} {
	mock.lockAddWord.RLock()
	calls := mock.calls.AddWord
	mock.lockAddWord.RUnlock()
	return calls
}

func (mock *dictionaryServiceMock) DeleteWord(ctx context.Context, input dictionary.DeleteWordInput) error {
	if mock.DeleteWordFunc == nil {
		panic("dictionaryServiceMock.DeleteWordFunc: method is nil but dictionaryService.DeleteWord was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input dictionary.DeleteWordInput
	}{Ctx: ctx, Input: input}
	mock.lockDeleteWord.Lock()
	mock.calls.DeleteWord = append(mock.calls.DeleteWord, callInfo)
	mock.lockDeleteWord.Unlock()
	return mock.DeleteWordFunc(ctx, input)
}

func (mock *dictionaryServiceMock) DeleteWordCalls() []struct {
	Ctx   context.Context
	Input dictionary.DeleteWordInput
} {
	mock.lockDeleteWord.RLock()
	calls := mock.calls.DeleteWord
	mock.lockDeleteWord.RUnlock()
	return calls
}

func (mock *dictionaryServiceMock) ListWords(ctx context.Context, userID domain.UserID, name string) ([]domain.WordPair, error) {
	if mock.ListWordsFunc == nil {
		panic("dictionaryServiceMock.ListWordsFunc: method is nil but dictionaryService.ListWords was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID domain.UserID
		Name   string
	}{Ctx: ctx, UserID: userID, Name: name}
	mock.lockListWords.Lock()
	mock.calls.ListWords = append(mock.calls.ListWords, callInfo)
	mock.lockListWords.Unlock()
	return mock.ListWordsFunc(ctx, userID, name)
}

func (mock *dictionaryServiceMock) ListWordsCalls() []struct {
	Ctx    context.Context
	UserID domain.UserID
	Name   string
} {
	mock.lockListWords.RLock()
	calls := mock.calls.ListWords
	mock.lockListWords.RUnlock()
	return calls
}
