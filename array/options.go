package array

// Option configures a new Array.
type Option func(*Array)

// WithTracer installs an observer notified of every strategy transition.
// Tracing is purely observational and never affects behavior.
func WithTracer(t TransitionTracer) Option {
	return func(a *Array) {
		a.tracer = t
	}
}

// WithCapacity reserves room for n elements without allocating; the first
// materializing write sizes its block from this hint.
func WithCapacity(n int) Option {
	return func(a *Array) {
		if n > a.capacity {
			a.capacity = n
		}
	}
}
