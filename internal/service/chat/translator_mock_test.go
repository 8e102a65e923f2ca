package chat

import (
	"context"
	"sync"
)

var _ translator = &translatorMock{}

type translatorMock struct {
	TranslateFunc func(ctx context.Context, text string, source string, target string) (string, error)

	calls struct {
		Translate []struct {
			Ctx    context.Context
			Text   string
			Source string
			Target string
		}
	}
	lockTranslate sync.RWMutex
}

func (mock *translatorMock) Translate(ctx context.Context, text string, source string, target string) (string, error) {
	if mock.TranslateFunc == nil {
		panic("translatorMock.TranslateFunc: method is nil but translator.Translate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Text   string
		Source string
		Target string
	}{Ctx: ctx, Text: text, Source: source, Target: target}
	mock.lockTranslate.Lock()
	mock.calls.Translate = append(mock.calls.Translate, callInfo)
	mock.lockTranslate.Unlock()
	return mock.TranslateFunc(ctx, text, source, target)
}

func (mock *translatorMock) TranslateCalls() []struct {
	Ctx    context.Context
	Text   string
	Source string
	Target string
} {
	mock.lockTranslate.RLock()
	calls := mock.calls.Translate
	mock.lockTranslate.RUnlock()
	return calls
}
