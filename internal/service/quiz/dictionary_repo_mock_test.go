package quiz

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/wordtrainer/internal/domain"
)

var _ dictionaryRepo = &dictionaryRepoMock{}

type dictionaryRepoMock struct {
	GetByIDFunc       func(ctx context.Context, userID domain.UserID, id uuid.UUID) (*domain.Dictionary, error)
	GetByNameFunc     func(ctx context.Context, userID domain.UserID, name string) (*domain.Dictionary, error)
	LockForUpdateFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx    context.Context
			UserID domain.UserID
			Id     uuid.UUID
		}
		GetByName []struct {
			Ctx    context.Context
			UserID domain.UserID
			Name   string
		}
		LockForUpdate []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockGetByID       sync.RWMutex
	lockGetByName     sync.RWMutex
	lockLockForUpdate sync.RWMutex
}

func (mock *dictionaryRepoMock) GetByID(ctx context.Context, userID domain.UserID, id uuid.UUID) (*domain.Dictionary, error) {
	if mock.GetByIDFunc == nil {
		panic("dictionaryRepoMock.GetByIDFunc: method is nil but dictionaryRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID domain.UserID
		Id     uuid.UUID
	}{Ctx: ctx, UserID: userID, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, id)
}

func (mock *dictionaryRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID domain.UserID
	Id     uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *dictionaryRepoMock) GetByName(ctx context.Context, userID domain.UserID, name string) (*domain.Dictionary, error) {
	if mock.GetByNameFunc == nil {
		panic("dictionaryRepoMock.GetByNameFunc: method is nil but dictionaryRepo.GetByName was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID domain.UserID
		Name   string
	}{Ctx: ctx, UserID: userID, Name: name}
	mock.lockGetByName.Lock()
	mock.calls.GetByName = append(mock.calls.GetByName, callInfo)
	mock.lockGetByName.Unlock()
	return mock.GetByNameFunc(ctx, userID, name)
}

func (mock *dictionaryRepoMock) GetByNameCalls() []struct {
	Ctx    context.Context
	UserID domain.UserID
	Name   string
} {
	mock.lockGetByName.RLock()
	calls := mock.calls.GetByName
	mock.lockGetByName.RUnlock()
	return calls
}

func (mock *dictionaryRepoMock) LockForUpdate(ctx context.Context, id uuid.UUID) error {
	if mock.LockForUpdateFunc == nil {
		panic("dictionaryRepoMock.LockForUpdateFunc: method is nil but dictionaryRepo.LockForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockLockForUpdate.Lock()
	mock.calls.LockForUpdate = append(mock.calls.LockForUpdate, callInfo)
	mock.lockLockForUpdate.Unlock()
	return mock.LockForUpdateFunc(ctx, id)
}

func (mock *dictionaryRepoMock) LockForUpdateCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockLockForUpdate.RLock()
	calls := mock.calls.LockForUpdate
	mock.lockLockForUpdate.RUnlock()
	return calls
}
