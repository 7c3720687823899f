package sigsched

// reportInternalError reports a scheduler misuse error.
//
// Internal errors are non-action failures such as scheduling a nil
// function. If no handler is registered, the error is silently ignored.
func (e *executor) reportInternalError(err error) {
	if e.onInternalError != nil {
		e.onInternalError(err)
	}
}

// reportActionError reports an error returned by an action or produced
// by panic recovery.
//
// Action errors never stop the drain and are reported synchronously from
// the worker or driver via the configured handler.
func (e *executor) reportActionError(err error) {
	if e.onActionError != nil {
		e.onActionError(err)
	}
}
