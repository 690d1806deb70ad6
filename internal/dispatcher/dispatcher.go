package dispatcher

import (
	"context"
	e "edumentor/internal/core/domain/errors"
	"edumentor/internal/core/domain/logging"
	"edumentor/internal/core/services"
	dispatchduereminders "edumentor/internal/core/services/dispatch_due_reminders"
	"sync/atomic"
	"time"
)

// Dispatcher runs the periodic reminder scan for the lifetime of the
// process. A panic or error inside one tick never terminates the loop,
// the next tick starts after the same period. The timestamp of the last
// finished tick is exposed for health reporting.
type Dispatcher struct {
	log      logging.Logger
	service  services.Service[dispatchduereminders.Input, dispatchduereminders.Result]
	period   time.Duration
	lastTick int64
}

func New(
	log logging.Logger,
	service services.Service[dispatchduereminders.Input, dispatchduereminders.Result],
	period time.Duration,
) *Dispatcher {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	if period <= 0 {
		panic("dispatcher period must be positive")
	}
	return &Dispatcher{log: log, service: service, period: period}
}

// Run blocks until ctx is canceled. Cancellation lets the current tick
// finish before returning.
func (d *Dispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(d.period)
	defer ticker.Stop()

	d.log.Info(
		ctx,
		"Starting reminder dispatcher.",
		logging.Entry("periodSeconds", d.period.Seconds()),
	)
	for {
		select {
		case <-ctx.Done():
			d.log.Info(context.Background(), "Stopping reminder dispatcher.")
			return
		case <-ticker.C:
			d.tick(ctx)
		}
	}
}

// LastTickAt reports when the most recent tick finished; ok is false
// before the first tick.
func (d *Dispatcher) LastTickAt() (at time.Time, ok bool) {
	nanos := atomic.LoadInt64(&d.lastTick)
	if nanos == 0 {
		return at, false
	}
	return time.Unix(0, nanos), true
}

func (d *Dispatcher) tick(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error(
				context.Background(),
				"Recovered from panic in dispatcher tick.",
				logging.Entry("panic", r),
			)
		}
		atomic.StoreInt64(&d.lastTick, time.Now().UnixNano())
	}()

	if _, err := d.service.Run(ctx, dispatchduereminders.Input{}); err != nil {
		d.log.Error(ctx, "Dispatcher tick returned an error.", logging.Entry("err", err))
	}
}
