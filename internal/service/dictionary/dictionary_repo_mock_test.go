package dictionary

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/wordtrainer/internal/domain"
)

var _ dictionaryRepo = &dictionaryRepoMock{}

type dictionaryRepoMock struct {
	CreateFunc        func(ctx context.Context, d *domain.Dictionary) (*domain.Dictionary, error)
	GetByNameFunc     func(ctx context.Context, userID domain.UserID, name string) (*domain.Dictionary, error)
	ListByUserFunc    func(ctx context.Context, userID domain.UserID) ([]domain.Dictionary, error)
	LockForUpdateFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			D   *domain.Dictionary
		}
		GetByName []struct {
			Ctx    context.Context
			UserID domain.UserID
			Name   string
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID domain.UserID
		}
		LockForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate        sync.RWMutex
	lockGetByName     sync.RWMutex
	lockListByUser    sync.RWMutex
	lockLockForUpdate sync.RWMutex
}

func (mock *dictionaryRepoMock) Create(ctx context.Context, d *domain.Dictionary) (*domain.Dictionary, error) {
	if mock.CreateFunc == nil {
		panic("dictionaryRepoMock.CreateFunc: method is nil but dictionaryRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		D   *domain.Dictionary
	}{Ctx: ctx, D: d}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, d)
}

func (mock *dictionaryRepoMock) CreateCalls() []struct {
	Ctx context.Context
	D   *domain.Dictionary
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
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

func (mock *dictionaryRepoMock) ListByUser(ctx context.Context, userID domain.UserID) ([]domain.Dictionary, error) {
	if mock.ListByUserFunc == nil {
		panic("dictionaryRepoMock.ListByUserFunc: method is nil but dictionaryRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID domain.UserID
	}{Ctx: ctx, UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *dictionaryRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID domain.UserID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *dictionaryRepoMock) LockForUpdate(ctx context.Context, id uuid.UUID) error {
	if mock.LockForUpdateFunc == nil {
		panic("dictionaryRepoMock.LockForUpdateFunc: method is nil but dictionaryRepo.LockForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockLockForUpdate.Lock()
	mock.calls.LockForUpdate = append(mock.calls.LockForUpdate, callInfo)
	mock.lockLockForUpdate.Unlock()
	return mock.LockForUpdateFunc(ctx, id)
}

func (mock *dictionaryRepoMock) LockForUpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockLockForUpdate.RLock()
	calls := mock.calls.LockForUpdate
	mock.lockLockForUpdate.RUnlock()
	return calls
}
