package sigsched

import (
	"context"
	"sync/atomic"

	lg "github.com/Andrej220/go-utils/zlog"
)

// MainScheduler is the externally driven variant. It never spawns a
// worker; a single driver (typically the host's main loop) owns the
// instance and calls Run, which blocks while the queue is empty and
// executes actions as they arrive, strictly in arrival order.
type MainScheduler struct {
	queue *actionQueue
	exec  executor

	// wake carries at most one pending notification; the drain loop
	// re-checks the queue after every receive, so collapsed signals
	// are harmless.
	wake chan struct{}

	// driving makes the instance's owner explicit: only one Run may be
	// active at a time.
	driving atomic.Bool
}

var _ Scheduler = (*MainScheduler)(nil)

// NewMain creates a main-loop scheduler with default options.
func NewMain() *MainScheduler {
	return NewMainFromOptions(Options{})
}

// NewMainFromOptions creates a main-loop scheduler from o.
// Zero fields in o are filled with defaults.
func NewMainFromOptions(o Options) *MainScheduler {
	o.FillDefaults()
	return &MainScheduler{
		queue: newActionQueue(o.InitialQueueCapacity),
		exec:  newExecutor(o),
		wake:  make(chan struct{}, 1),
	}
}

// Schedule enqueues fn unconditionally and wakes the driver if it is
// waiting. It never blocks and never spawns.
func (s *MainScheduler) Schedule(fn Action) *Disposable {
	return s.ScheduleWithPolicy(fn, nil)
}

// ScheduleWithPolicy is Schedule with a per-action retry override.
// A nil policy means "use the scheduler's default".
func (s *MainScheduler) ScheduleWithPolicy(fn Action, rp *RetryPolicy) *Disposable {
	if fn == nil {
		s.exec.reportInternalError(ErrNilAction)
		d := EmptyDisposable()
		d.Dispose()
		return d
	}

	act, disp := newScheduledAction(fn, rp)
	s.exec.metrics.IncScheduled()
	s.queue.push(act)

	select {
	case s.wake <- struct{}{}:
	default:
	}
	return disp
}

// Run claims the instance for the calling driver and drains forever:
// block cooperatively until an action is available, dequeue exactly one,
// execute it, yield, repeat. It returns ctx.Err() when ctx ends, or
// ErrDriverAttached if another driver already holds the instance.
//
// The claim is released on return, so a host may stop one loop and hand
// the instance to another.
func (s *MainScheduler) Run(ctx context.Context) error {
	if !s.driving.CompareAndSwap(false, true) {
		return ErrDriverAttached
	}
	defer s.driving.Store(false)

	logger := lg.FromContext(ctx).With(lg.String("scheduler", s.exec.name))
	logger.Info("driver attached")
	defer logger.Info("driver detached")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if act, ok := s.queue.pop(); ok {
			s.exec.runOne(ctx, act)
			continue
		}

		select {
		case <-s.wake:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// QueueLength returns the number of actions waiting in the queue.
func (s *MainScheduler) QueueLength() int { return s.queue.Len() }
