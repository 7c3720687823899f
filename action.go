package sigsched

import (
	"sync/atomic"

	"github.com/segmentio/ksuid"
)

// Action is the unit of deferred work submitted to a scheduler.
//
// The scheduler never inspects a result value; the error return exists
// only for fault reporting and optional retry (see Options).
type Action func() error

// scheduledAction pairs an Action with its cancellation flag.
//
// The flag transitions at most once, from false to true, and is the only
// state shared between the token holder and a running worker. Once set,
// the action must never start, even if the flip races with dequeue.
type scheduledAction struct {
	// id correlates log records for one action across schedule,
	// execution, retries and skips.
	id ksuid.KSUID

	fn Action

	canceled atomic.Bool

	// retry overrides the scheduler's default policy when non-nil.
	retry *RetryPolicy
}

// newScheduledAction builds the action together with the Disposable that
// flips its flag. No side effects occur here; the action is not yet
// visible to any worker.
func newScheduledAction(fn Action, retry *RetryPolicy) (*scheduledAction, *Disposable) {
	act := &scheduledAction{
		id:    ksuid.New(),
		fn:    fn,
		retry: retry,
	}
	return act, NewDisposable(func() {
		act.canceled.Store(true)
	})
}
