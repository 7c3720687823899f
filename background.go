package sigsched

import (
	"context"
	"sync/atomic"

	lg "github.com/Andrej220/go-utils/zlog"
)

// BackgroundScheduler is the self-driving variant. Scheduling onto an
// empty queue spawns a worker goroutine; the worker drains until the
// queue is transiently empty and then terminates, so an idle instance
// holds zero background goroutines.
//
// Instances are fully independent: no shared pool, no cross-instance
// ordering.
type BackgroundScheduler struct {
	queue *actionQueue
	exec  executor

	// activeWorkers tracks live worker goroutines. It reaches zero
	// whenever the queue has fully drained.
	activeWorkers atomic.Int32
}

var _ Scheduler = (*BackgroundScheduler)(nil)

// NewBackground creates a background scheduler with default options.
func NewBackground() *BackgroundScheduler {
	return NewBackgroundFromOptions(Options{})
}

// NewBackgroundFromOptions creates a background scheduler from o.
// Zero fields in o are filled with defaults.
func NewBackgroundFromOptions(o Options) *BackgroundScheduler {
	o.FillDefaults()
	return &BackgroundScheduler{
		queue: newActionQueue(o.InitialQueueCapacity),
		exec:  newExecutor(o),
	}
}

// Schedule enqueues fn for later, possibly-never execution and returns
// its cancellation handle. It never blocks.
//
// The was-empty check and the enqueue are one indivisible step: of two
// callers racing on an empty queue, exactly one observes it empty and
// spawns the worker; the other's action is picked up by that worker.
func (s *BackgroundScheduler) Schedule(fn Action) *Disposable {
	return s.ScheduleWithPolicy(fn, nil)
}

// ScheduleWithPolicy is Schedule with a per-action retry override.
// A nil policy means "use the scheduler's default".
func (s *BackgroundScheduler) ScheduleWithPolicy(fn Action, rp *RetryPolicy) *Disposable {
	if fn == nil {
		s.exec.reportInternalError(ErrNilAction)
		d := EmptyDisposable()
		d.Dispose()
		return d
	}

	act, disp := newScheduledAction(fn, rp)
	s.exec.metrics.IncScheduled()

	if wasEmpty := s.queue.push(act); wasEmpty {
		s.spawnWorker()
	}
	return disp
}

// Run performs one drain pass: non-blocking dequeues until the queue is
// empty, handing each action to the shared executor. It returns nil on a
// drained queue, or ctx.Err() if ctx ends between items.
//
// Spawned workers call Run themselves; calling it directly is also valid
// and simply drains on the caller's goroutine.
func (s *BackgroundScheduler) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		act, ok := s.queue.pop()
		if !ok {
			// idle capacity returns to zero here
			return nil
		}
		s.exec.runOne(ctx, act)
	}
}

// ActiveWorkers returns the number of live worker goroutines.
func (s *BackgroundScheduler) ActiveWorkers() int32 { return s.activeWorkers.Load() }

// QueueLength returns the number of actions waiting in the queue.
func (s *BackgroundScheduler) QueueLength() int { return s.queue.Len() }

func (s *BackgroundScheduler) spawnWorker() {
	s.activeWorkers.Add(1)
	s.exec.metrics.IncWorkerSpawn()
	go s.worker()
}

func (s *BackgroundScheduler) worker() {
	ctx := context.Background()
	logger := lg.FromContext(ctx).With(lg.String("scheduler", s.exec.name))
	logger.Info("worker started", lg.Int32("active_workers", s.activeWorkers.Load()))

	defer func() {
		n := s.activeWorkers.Add(-1)
		logger.Info("worker exiting", lg.Int32("active_workers", n))
	}()

	_ = s.Run(ctx)
}
