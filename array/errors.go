package array

import "errors"

var (
	// ErrFrozen indicates a write, delete, or resize on a frozen array.
	ErrFrozen = errors.New("array: frozen")

	// ErrSealed indicates a delete or truncation on a sealed array.
	ErrSealed = errors.New("array: sealed")

	// ErrNotExtensible indicates growth (a write to an absent index,
	// length growth, or range insertion) on a non-extensible array.
	ErrNotExtensible = errors.New("array: not extensible")

	// ErrBadRange indicates a range or index outside the checked
	// preconditions (negative, inverted, or beyond backing storage).
	ErrBadRange = errors.New("array: range out of bounds")

	// ErrBadLength indicates a negative target length.
	ErrBadLength = errors.New("array: bad length")

	// ErrLevelLowered indicates an attempt to relax an integrity level.
	// Levels only ratchet upward.
	ErrLevelLowered = errors.New("array: integrity level cannot be lowered")
)
