package generation

import (
	"context"
	"sync"
)

var _ transcoder = &transcoderMock{}

type transcoderMock struct {
	PCMToMP3Func func(ctx context.Context, pcm []byte) ([]byte, error)

	calls struct {
		PCMToMP3 []struct {
			Ctx context.Context
			Pcm []byte
		}
	}
	lockPCMToMP3 sync.RWMutex
}

func (mock *transcoderMock) PCMToMP3(ctx context.Context, pcm []byte) ([]byte, error) {
	if mock.PCMToMP3Func == nil {
		panic("transcoderMock.PCMToMP3Func: method is nil but transcoder.PCMToMP3 was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Pcm []byte
	}{Ctx: ctx, Pcm: pcm}
	mock.lockPCMToMP3.Lock()
	mock.calls.PCMToMP3 = append(mock.calls.PCMToMP3, callInfo)
	mock.lockPCMToMP3.Unlock()
	return mock.PCMToMP3Func(ctx, pcm)
}

func (mock *transcoderMock) PCMToMP3Calls() []struct {
	Ctx context.Context
	Pcm []byte
} {
	var calls []struct {
		Ctx context.Context
		Pcm []byte
	}
	mock.lockPCMToMP3.RLock()
	calls = mock.calls.PCMToMP3
	mock.lockPCMToMP3.RUnlock()
	return calls
}
