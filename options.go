package stackpool

type options struct {
	capacity         int
	trustedHandles   bool
	logger           *Logger
	metricsCollector MetricsCollector
}

// Option configures Pool construction.
//
// Options exist to avoid exploding the constructor surface; the zero
// configuration (checked handles, no capacity hint, silent logger) is
// always valid.
type Option func(*options)

// WithCapacity pre-sizes the node store for n nodes, so the first n pushes
// never reallocate backing storage. Equivalent to calling Reserve(n) on a
// fresh pool.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithTrustedHandles disables handle validation on Push and Pop.
//
// In trusted mode operations assume their preconditions hold: passing a
// stale or out-of-range handle is undefined behavior, and popping the
// empty stack is a benign no-op returning None instead of ErrEmptyStack.
// Use this when handle discipline is enforced by construction and the
// validation cost matters.
func WithTrustedHandles() Option {
	return func(o *options) {
		o.trustedHandles = true
	}
}

// WithLogger configures the logger used for growth and reclaim events.
// If nil is passed, logging stays disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &stackpool.BasicMetricsCollector{}
//	p := stackpool.New[int](stackpool.WithMetricsCollector(metrics))
func WithMetricsCollector(c MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = c
	}
}
