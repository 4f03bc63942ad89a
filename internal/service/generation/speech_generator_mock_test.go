package generation

import (
	"context"
	"sync"
)

var _ speechGenerator = &speechGeneratorMock{}

type speechGeneratorMock struct {
	GenerateSpeechFunc func(ctx context.Context, text string) ([]byte, error)

	calls struct {
		GenerateSpeech []struct {
			Ctx  context.Context
			Text string
		}
	}
	lockGenerateSpeech sync.RWMutex
}

func (mock *speechGeneratorMock) GenerateSpeech(ctx context.Context, text string) ([]byte, error) {
	if mock.GenerateSpeechFunc == nil {
		panic("speechGeneratorMock.GenerateSpeechFunc: method is nil but speechGenerator.GenerateSpeech was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Text string
	}{Ctx: ctx, Text: text}
	mock.lockGenerateSpeech.Lock()
	mock.calls.GenerateSpeech = append(mock.calls.GenerateSpeech, callInfo)
	mock.lockGenerateSpeech.Unlock()
	return mock.GenerateSpeechFunc(ctx, text)
}

func (mock *speechGeneratorMock) GenerateSpeechCalls() []struct {
	Ctx  context.Context
	Text string
} {
	var calls []struct {
		Ctx  context.Context
		Text string
	}
	mock.lockGenerateSpeech.RLock()
	calls = mock.calls.GenerateSpeech
	mock.lockGenerateSpeech.RUnlock()
	return calls
}
