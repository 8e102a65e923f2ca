package chat

import (
	"context"
	"sync"

	"github.com/heartmarshall/wordtrainer/internal/domain"
)

var _ quizEngine = &quizEngineMock{}

type quizEngineMock struct {
	StartSessionByNameFunc func(ctx context.Context, userID domain.UserID, name string) (domain.Prompt, error)
	SubmitAnswerFunc       func(ctx context.Context, userID domain.UserID, raw string) (domain.AnswerOutcome, error)
	GetRatingByNameFunc    func(ctx context.Context, userID domain.UserID, name string) (*domain.Rating, error)
	CurrentPromptFunc      func(userID domain.UserID) (domain.Prompt, bool)

	calls struct {
		StartSessionByName []struct {
			Ctx    context.Context
			UserID domain.UserID
			Name   string
		}
		SubmitAnswer []struct {
			Ctx    context.Context
			UserID domain.UserID
			Raw    string
		}
		GetRatingByName []struct {
			Ctx    context.Context
			UserID domain.UserID
			Name   string
		}
		CurrentPrompt []struct {
			UserID domain.UserID
		}
	}
	lockStartSessionByName sync.RWMutex
	lockSubmitAnswer       sync.RWMutex
	lockGetRatingByName    sync.RWMutex
	lockCurrentPrompt      sync.RWMutex
}

func (mock *quizEngineMock) StartSessionByName(ctx context.Context, userID domain.UserID, name string) (domain.Prompt, error) {
	if mock.StartSessionByNameFunc == nil {
		panic("quizEngineMock.StartSessionByNameFunc: method is nil but quizEngine.StartSessionByName was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID domain.UserID
		Name   string
	}{Ctx: ctx, UserID: userID, Name: name}
	mock.lockStartSessionByName.Lock()
	mock.calls.StartSessionByName = append(mock.calls.StartSessionByName, callInfo)
	mock.lockStartSessionByName.Unlock()
	return mock.StartSessionByNameFunc(ctx, userID, name)
}

func (mock *quizEngineMock) StartSessionByNameCalls() []struct {
	Ctx    context.Context
	UserID domain.UserID
	Name   string
} {
	mock.lockStartSessionByName.RLock()
	calls := mock.calls.StartSessionByName
	mock.lockStartSessionByName.RUnlock()
	return calls
}

func (mock *quizEngineMock) SubmitAnswer(ctx context.Context, userID domain.UserID, raw string) (domain.AnswerOutcome, error) {
	if mock.SubmitAnswerFunc == nil {
		panic("quizEngineMock.SubmitAnswerFunc: method is nil but quizEngine.SubmitAnswer was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID domain.UserID
		Raw    string
	}{Ctx: ctx, UserID: userID, Raw: raw}
	mock.lockSubmitAnswer.Lock()
	mock.calls.SubmitAnswer = append(mock.calls.SubmitAnswer, callInfo)
	mock.lockSubmitAnswer.Unlock()
	return mock.SubmitAnswerFunc(ctx, userID, raw)
}

func (mock *quizEngineMock) SubmitAnswerCalls() []struct {
	Ctx    context.Context
	UserID domain.UserID
	Raw    string
} {
	mock.lockSubmitAnswer.RLock()
	calls := mock.calls.SubmitAnswer
	mock.lockSubmitAnswer.RUnlock()
	return calls
}

func (mock *quizEngineMock) GetRatingByName(ctx context.Context, userID domain.UserID, name string) (*domain.Rating, error) {
	if mock.GetRatingByNameFunc == nil {
		panic("quizEngineMock.GetRatingByNameFunc: method is nil but quizEngine.GetRatingByName was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID domain.UserID
		Name   string
	}{Ctx: ctx, UserID: userID, Name: name}
	mock.lockGetRatingByName.Lock()
	mock.calls.GetRatingByName = append(mock.calls.GetRatingByName, callInfo)
	mock.lockGetRatingByName.Unlock()
	return mock.GetRatingByNameFunc(ctx, userID, name)
}

func (mock *quizEngineMock) GetRatingByNameCalls() []struct {
	Ctx    context.Context
	UserID domain.UserID
	Name   string
} {
	mock.lockGetRatingByName.RLock()
	calls := mock.calls.GetRatingByName
	mock.lockGetRatingByName.RUnlock()
	return calls
}

func (mock *quizEngineMock) CurrentPrompt(userID domain.UserID) (domain.Prompt, bool) {
	if mock.CurrentPromptFunc == nil {
		panic("quizEngineMock.CurrentPromptFunc: method is nil but quizEngine.CurrentPrompt was just called")
	}
	callInfo := struct {
		UserID domain.UserID
	}{UserID: userID}
	mock.lockCurrentPrompt.Lock()
	mock.calls.CurrentPrompt = append(mock.calls.CurrentPrompt, callInfo)
	mock.lockCurrentPrompt.Unlock()
	return mock.CurrentPromptFunc(userID)
}

func (mock *quizEngineMock) CurrentPromptCalls() []struct {
	UserID domain.UserID
} {
	mock.lockCurrentPrompt.RLock()
	calls := mock.calls.CurrentPrompt
	mock.lockCurrentPrompt.RUnlock()
	return calls
}
