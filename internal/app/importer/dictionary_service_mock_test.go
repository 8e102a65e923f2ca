package importer

import (
	"context"
	"sync"

	"github.com/heartmarshall/wordtrainer/internal/domain"
	"github.com/heartmarshall/wordtrainer/internal/service/dictionary"
)

var _ dictionaryService = &dictionaryServiceMock{}

type dictionaryServiceMock struct {
	RegisterUserFunc     func(ctx context.Context, userID domain.UserID) error
	CreateDictionaryFunc func(ctx context.Context, input dictionary.CreateDictionaryInput) (*domain.Dictionary, error)
	ImportWordsFunc      func(ctx context.Context, userID domain.UserID, name string, items []dictionary.WordPairInput) (*dictionary.ImportResult, error)

	calls struct {
		RegisterUser []struct {
			Ctx    context.Context
			UserID domain.UserID
		}
		CreateDictionary []struct {
			Ctx   context.Context
			Input dictionary.CreateDictionaryInput
		}
		ImportWords []struct {
			Ctx    context.Context
			UserID domain.UserID
			Name   string
			Items  []dictionary.WordPairInput
		}
	}
	lockRegisterUser     sync.RWMutex
	lockCreateDictionary sync.RWMutex
	lockImportWords      sync.RWMutex
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

func (mock *dictionaryServiceMock) ImportWords(ctx context.Context, userID domain.UserID, name string, items []dictionary.WordPairInput) (*dictionary.ImportResult, error) {
	if mock.ImportWordsFunc == nil {
		panic("dictionaryServiceMock.ImportWordsFunc: method is nil but dictionaryService.ImportWords was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID domain.UserID
		Name   string
		Items  []dictionary.WordPairInput
	}{Ctx: ctx, UserID: userID, Name: name, Items: items}
	mock.lockImportWords.Lock()
	mock.calls.ImportWords = append(mock.calls.ImportWords, callInfo)
	mock.lockImportWords.Unlock()
	return mock.ImportWordsFunc(ctx, userID, name, items)
}

func (mock *dictionaryServiceMock) ImportWordsCalls() []struct {
	Ctx    context.Context
	UserID domain.UserID
	Name   string
	Items  []dictionary.WordPairInput
} {
	mock.lockImportWords.RLock()
	calls := mock.calls.ImportWords
	mock.lockImportWords.RUnlock()
	return calls
}
