package array

import "log/slog"

// TransitionTracer observes storage strategy transitions. Implementations
// must not mutate the array from inside the callback.
type TransitionTracer interface {
	// ArrayTransition is called after a transition completes, with the
	// old and new kinds, the index whose operation triggered it, and the
	// value being written (Undefined for structural transitions).
	ArrayTransition(oldKind, newKind Kind, index int, value Value)
}

// NewSlogTracer returns a tracer that logs every transition at debug level.
func NewSlogTracer(l *slog.Logger) TransitionTracer {
	return slogTracer{l: l}
}

type slogTracer struct {
	l *slog.Logger
}

func (t slogTracer) ArrayTransition(oldKind, newKind Kind, index int, value Value) {
	t.l.Debug("array transition",
		"from", oldKind.String(),
		"to", newKind.String(),
		"index", index,
		"value", value.String(),
	)
}
