// Package sigsched provides the scheduling primitive used by the signal
// layer to defer delivery of values onto a chosen execution context.
//
// Design goals
//
// The package is designed around the following principles:
//
//   - Strict FIFO execution within one scheduler instance
//   - Cancellation of not-yet-started actions without queue removal
//   - Zero background threads while a scheduler is idle
//   - A single capability interface so callers never know which
//     variant they hold
//
// Rather than pooling workers, sigsched keeps each scheduler instance
// fully independent and pays a goroutine-spawn cost only on the
// transition from idle to busy.
//
// Architecture overview
//
// The scheduler is composed of three loosely coupled layers:
//
//   1. Queueing (actionQueue)
//      An unbounded FIFO of scheduled actions. The empty-check used to
//      decide whether a worker must be spawned happens inside the same
//      critical section as the enqueue, so it is never stale.
//
//   2. Execution (executor)
//      A shared per-item step used by both variants. It checks the
//      cancellation flag at the last possible moment, runs the action,
//      and yields between items.
//
//   3. Action lifecycle
//      Actions carry their function, a one-way cancellation flag, and
//      an identifier used for log correlation. Scheduling returns a
//      Disposable whose disposal flips the flag.
//
// Scheduler variants
//
// BackgroundScheduler drives itself: scheduling onto an empty queue
// spawns a worker goroutine which drains until the queue is empty and
// then terminates. MainScheduler never spawns; a single external driver
// (typically the host's main loop) calls Run, which blocks while the
// queue is empty and executes items as they arrive.
//
// Cancellation model
//
// Schedule returns a Disposable. Disposing it before the action is
// dequeued guarantees the action never runs. Disposal is idempotent and
// is a harmless no-op after the action has executed. Cancellation is
// cooperative: an action that has already started is never interrupted.
//
// Error handling
//
// The package distinguishes between two classes of errors:
//
//   - Action errors: returned by action functions or produced by panic
//     recovery
//   - Internal errors: misuse of the scheduler itself, such as
//     scheduling a nil function
//
// Errors are reported via user-provided handlers and never stop the
// drain; the queue keeps processing subsequent items regardless of any
// single action's fault. Failing actions may be retried with capped
// exponential backoff when a retry policy is configured. Panics are
// recovered, reported, and never retried.
//
// Intended use cases
//
// sigsched is well suited for:
//
//   - Deferring signal/event delivery off the producing goroutine
//   - Serializing effects onto a host-owned main loop
//   - Any fan-in point where submission must never block
//
// It is not a general-purpose worker pool: there is no parallelism
// within an instance, no priorities, no delays, and no fairness
// guarantee across instances.
package sigsched
