package sigsched

import (
	"time"
)

const (
	// defaultAttempts is 1: an action runs once and is never retried
	// unless a policy asks for more.
	defaultAttempts     = 1
	defaultRetryAttempt = 3
	defaultInitialRetry = 200 * time.Millisecond
	defaultMaxRetry     = 5 * time.Second
)

// RetryPolicy describes how many times and how often a failing action
// should be retried. Zero values are treated as "use scheduler defaults".
//
// Retries apply to error returns only; a panicking action is never
// retried.
type RetryPolicy struct {
	// Attempts is the maximum number of tries for an action.
	Attempts int

	// Initial is the first backoff duration.
	Initial time.Duration

	// Max is the cap for backoff duration.
	Max time.Duration
}

// GetDefaultRP returns a pointer to a retrying policy with package
// defaults. Useful in tests or as a per-action override.
func GetDefaultRP() *RetryPolicy {
	rp := RetryPolicy{
		Attempts: defaultRetryAttempt,
		Initial:  defaultInitialRetry,
		Max:      defaultMaxRetry,
	}
	return &rp
}
