package arrgo

type options struct {
	pinned bool
	logger *Logger
}

func defaultOptions() options {
	return options{
		logger: NoopLogger(),
	}
}

// Option configures allocation behavior for the unboxed-primitive kind.
//
// Boxed kinds take no options; their storage is always ordinary heap memory.
type Option func(*options)

// WithPinned requests storage whose address is fixed for the array's
// lifetime, a precondition for exporting a raw pointer to it.
//
// Pinning is best-effort: on hosts without anonymous mappings the allocation
// falls back to heap storage and the array reports Pinned() == false.
func WithPinned() Option {
	return func(o *options) {
		o.pinned = true
	}
}

// WithLogger sets the logger used to report degraded allocations.
//
// If nil is passed, the no-op logger is used.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
