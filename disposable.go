package sigsched

import (
	"sync/atomic"
)

// Disposable is a scoped cancellation handle. Disposing it runs the
// attached cleanup exactly once; every later call is a no-op.
//
// A nil *Disposable is safe to dispose.
type Disposable struct {
	disposed atomic.Bool
	cleanup  func()
}

// NewDisposable returns a Disposable that runs cleanup on first disposal.
// cleanup may be nil.
func NewDisposable(cleanup func()) *Disposable {
	return &Disposable{cleanup: cleanup}
}

// EmptyDisposable returns a Disposable with no cleanup effect.
func EmptyDisposable() *Disposable {
	return &Disposable{}
}

// Dispose triggers the cleanup. Only the first call has an effect.
func (d *Disposable) Dispose() {
	if d == nil {
		return
	}
	if d.disposed.CompareAndSwap(false, true) {
		if d.cleanup != nil {
			d.cleanup()
		}
	}
}

// Disposed reports whether Dispose has been called.
func (d *Disposable) Disposed() bool {
	if d == nil {
		return true
	}
	return d.disposed.Load()
}

// Combine returns a Disposable that disposes all children. Disposing the
// composite more than once disposes each child at most once.
func Combine(ds ...*Disposable) *Disposable {
	return NewDisposable(func() {
		for _, d := range ds {
			d.Dispose()
		}
	})
}
