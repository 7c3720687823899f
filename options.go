package sigsched

// Options configure a scheduler instance.
//
// All zero values are replaced with sensible defaults in FillDefaults.
type Options struct {
	// Name identifies the instance in log output.
	Name string

	// Retry is the default policy applied to failing actions.
	// The zero value means "run once, never retry".
	Retry RetryPolicy

	// OnActionError receives errors returned by actions and errors
	// produced by panic recovery. May be nil.
	OnActionError func(error)

	// OnInternalError receives scheduler misuse errors such as
	// ErrNilAction. May be nil.
	OnInternalError func(error)

	// Metrics receives queueing and execution counters.
	Metrics MetricsPolicy

	// InitialQueueCapacity sizes the queue buffer before the first grow.
	InitialQueueCapacity int
}

func (o *Options) FillDefaults() {
	if o.Name == "" {
		o.Name = "sigsched"
	}
	if o.Retry.Attempts <= 0 {
		o.Retry.Attempts = defaultAttempts
	}
	if o.Retry.Initial <= 0 {
		o.Retry.Initial = defaultInitialRetry
	}
	if o.Retry.Max <= 0 {
		o.Retry.Max = defaultMaxRetry
	}
	if o.Metrics == nil {
		o.Metrics = &NoopMetrics{}
	}
	if o.InitialQueueCapacity <= 0 {
		o.InitialQueueCapacity = defaultQueueCapacity
	}
}
