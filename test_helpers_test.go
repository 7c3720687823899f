package sigsched_test

import (
	"runtime"
	"sync"
	"testing"
	"time"

	ss "github.com/Andrej220/go-utils/sigsched"
)

const testTimeout = 2 * time.Second

// recorder collects labels appended by executed actions so tests can
// assert on execution order.
type recorder struct {
	mu  sync.Mutex
	out []string
}

func (r *recorder) action(label string) ss.Action {
	return func() error {
		r.mu.Lock()
		r.out = append(r.out, label)
		r.mu.Unlock()
		return nil
	}
}

func (r *recorder) got() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.out))
	copy(out, r.out)
	return out
}

func (r *recorder) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.out)
}

// errCollector captures errors delivered to an error handler.
type errCollector struct {
	mu   sync.Mutex
	errs []error
}

func (c *errCollector) handler() func(error) {
	return func(err error) {
		c.mu.Lock()
		c.errs = append(c.errs, err)
		c.mu.Unlock()
	}
}

func (c *errCollector) got() []error {
	c.mu.Lock()
	defer c.mu.Unlock()
	errs := make([]error, len(c.errs))
	copy(errs, c.errs)
	return errs
}

func waitUntil(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		runtime.Gosched()
	}
	t.Fatal("condition not satisfied before timeout")
}
