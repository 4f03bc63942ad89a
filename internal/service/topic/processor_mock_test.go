package topic

import (
	"context"
	"sync"

	"github.com/Jeetch8/softfix-helper/internal/service/poller"
)

var _ processor = &processorMock{}

type processorMock struct {
	ProcessNowFunc func(ctx context.Context) (poller.Result, error)

	calls struct {
		ProcessNow []struct {
			Ctx context.Context
		}
	}
	lockProcessNow sync.RWMutex
}

func (mock *processorMock) ProcessNow(ctx context.Context) (poller.Result, error) {
	if mock.ProcessNowFunc == nil {
		panic("processorMock.ProcessNowFunc: method is nil but processor.ProcessNow was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockProcessNow.Lock()
	mock.calls.ProcessNow = append(mock.calls.ProcessNow, callInfo)
	mock.lockProcessNow.Unlock()
	return mock.ProcessNowFunc(ctx)
}

func (mock *processorMock) ProcessNowCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockProcessNow.RLock()
	calls = mock.calls.ProcessNow
	mock.lockProcessNow.RUnlock()
	return calls
}
