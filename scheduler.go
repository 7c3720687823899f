package sigsched

import (
	"context"
	"errors"
)

var (
	// ErrNilAction is reported via OnInternalError when a nil function
	// is scheduled.
	ErrNilAction = errors.New("sigsched: action func is nil")

	// ErrDriverAttached is returned by MainScheduler.Run when another
	// driver is already running the instance.
	ErrDriverAttached = errors.New("sigsched: scheduler already has a running driver")
)

// Scheduler is the capability shared by both variants: enqueue an action
// for later, possibly-never execution, and run the variant's drain step.
//
// Higher-level code (the signal layer) is written against this interface
// and never needs to know which variant it holds.
//
// Schedule never blocks and always succeeds; the returned Disposable
// cancels the action if disposed before execution starts, and is a
// harmless no-op afterwards.
//
// Run's contract differs by variant: a BackgroundScheduler performs one
// drain pass and returns when its queue is transiently empty, while a
// MainScheduler blocks and keeps draining until ctx ends. Both execute
// items strictly in arrival order.
type Scheduler interface {
	Schedule(fn Action) *Disposable
	Run(ctx context.Context) error
}

// ScheduleAll schedules fns in order on s and returns a Disposable that
// cancels every action not yet started.
func ScheduleAll(s Scheduler, fns ...Action) *Disposable {
	ds := make([]*Disposable, 0, len(fns))
	for _, fn := range fns {
		ds = append(ds, s.Schedule(fn))
	}
	return Combine(ds...)
}
