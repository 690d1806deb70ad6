package dispatcher

import (
	"context"
	"edumentor/internal/core/domain/logging"
	dispatchduereminders "edumentor/internal/core/services/dispatch_due_reminders"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingService struct {
	runs  int64
	panic bool
	err   error
}

func (s *countingService) Run(
	ctx context.Context,
	input dispatchduereminders.Input,
) (dispatchduereminders.Result, error) {
	atomic.AddInt64(&s.runs, 1)
	if s.panic {
		panic("boom")
	}
	return dispatchduereminders.Result{}, s.err
}

func (s *countingService) Runs() int64 {
	return atomic.LoadInt64(&s.runs)
}

func waitFor(t *testing.T, condition func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition was not met in time")
}

func TestDispatcherTicksPeriodically(t *testing.T) {
	logger := logging.NewFakeLogger()
	service := &countingService{}
	d := New(logger, service, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		d.Run(ctx)
		close(done)
	}()

	waitFor(t, func() bool { return service.Runs() >= 3 })
	cancel()
	<-done

	lastTickAt, ok := d.LastTickAt()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now(), lastTickAt, 5*time.Second)
}

func TestDispatcherSurvivesPanickingTick(t *testing.T) {
	logger := logging.NewFakeLogger()
	service := &countingService{panic: true}
	d := New(logger, service, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		d.Run(ctx)
		close(done)
	}()

	waitFor(t, func() bool { return service.Runs() >= 2 })
	cancel()
	<-done

	require.NotEmpty(t, logger.LoggedWithLevel(logging.ERROR))
	_, ok := d.LastTickAt()
	assert.True(t, ok)
}

func TestDispatcherLastTickBeforeFirstTick(t *testing.T) {
	logger := logging.NewFakeLogger()
	d := New(logger, &countingService{}, time.Hour)

	_, ok := d.LastTickAt()

	assert.False(t, ok)
}

func TestDispatcherStopsOnContextCancel(t *testing.T) {
	logger := logging.NewFakeLogger()
	d := New(logger, &countingService{}, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		d.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatcher did not stop after context cancellation")
	}
}

func TestNewPanicsOnInvalidArguments(t *testing.T) {
	logger := logging.NewFakeLogger()
	service := &countingService{}

	assert.Panics(t, func() { New(nil, service, time.Second) })
	assert.Panics(t, func() { New(logger, nil, time.Second) })
	assert.Panics(t, func() { New(logger, service, 0) })
	assert.Panics(t, func() { New(logger, service, -time.Second) })
}
