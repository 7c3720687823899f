package sigsched

import (
	"context"
	"fmt"
	"runtime"
	"time"

	boff "github.com/Andrej220/go-utils/backoff"
	lg "github.com/Andrej220/go-utils/zlog"
)

// executor is the per-item drain step shared by both scheduler variants.
//
// It owns the cancellation check, panic containment, error reporting and
// the retry loop. Whatever a single action does, the queue keeps
// draining for other items.
type executor struct {
	name            string
	retry           RetryPolicy
	metrics         MetricsPolicy
	onActionError   func(error)
	onInternalError func(error)
}

func newExecutor(o Options) executor {
	return executor{
		name:            o.Name,
		retry:           o.Retry,
		metrics:         o.Metrics,
		onActionError:   o.OnActionError,
		onInternalError: o.OnInternalError,
	}
}

// runOne executes a single dequeued action on the calling worker or
// driver, then yields the processor before the caller re-enters the
// drain loop.
//
// The cancellation flag is read at the latest possible moment before
// execution; a flip that lands strictly after that read is accepted to
// lose the race.
func (e *executor) runOne(ctx context.Context, act *scheduledAction) {
	defer runtime.Gosched()

	if act.canceled.Load() {
		e.metrics.IncSkipped()
		lg.FromContext(ctx).Info("action skipped",
			lg.String("scheduler", e.name),
			lg.String("action", act.id.String()),
		)
		return
	}

	logger := lg.FromContext(ctx).With(
		lg.String("scheduler", e.name),
		lg.String("action", act.id.String()),
	)

	pol := e.retry
	if act.retry != nil {
		// override non-zero per-action values
		if act.retry.Attempts > 0 {
			pol.Attempts = act.retry.Attempts
		}
		if act.retry.Initial > 0 {
			pol.Initial = act.retry.Initial
		}
		if act.retry.Max > 0 {
			pol.Max = act.retry.Max
		}
	}

	bo := boff.New(pol.Initial, pol.Max, time.Now().UnixNano())

	for attempt := 1; attempt <= pol.Attempts; attempt++ {
		if attempt > 1 && act.canceled.Load() {
			// cancelled between attempts
			e.metrics.IncSkipped()
			return
		}

		err, panicked := e.invoke(act)
		if err == nil {
			e.metrics.IncExecuted()
			return
		}
		e.reportActionError(err)

		if panicked || attempt == pol.Attempts {
			e.metrics.IncFailed()
			logger.Error("action failed", lg.Int("attempt", attempt), lg.Any("error", err))
			return
		}

		delay := bo.Next()
		logger.Warn("action attempt failed; backing off",
			lg.Int("attempt", attempt),
			lg.String("sleep", delay.String()),
			lg.Any("error", err),
		)
		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			if !timer.Stop() {
				<-timer.C // drain if timer is fired
			}
			e.metrics.IncFailed()
			logger.Info("retry abandoned", lg.Any("reason", ctx.Err()))
			return
		}
	}
}

// invoke runs the action once, converting a panic into an error.
// Panicked attempts are never retried.
func (e *executor) invoke(act *scheduledAction) (err error, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			panicked = true
			err = fmt.Errorf("sigsched: action panicked: %v", r)
		}
	}()
	return act.fn(), false
}
