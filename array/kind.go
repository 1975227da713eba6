package array

// Kind identifies the storage strategy currently backing an Array.
//
// The set is closed: transition logic switches over it exhaustively, and
// every transition is monotonic in width (int < double < object) and in the
// holes dimension (dense -> holes, never reverted automatically).
type Kind uint8

const (
	// KindConstantEmpty has no backing storage at all; only capacity
	// bookkeeping is kept so that allocation can be deferred until the
	// first element write.
	KindConstantEmpty Kind = iota

	// Constant kinds hold freshly-constructed literal storage. They are
	// never mutated in place; any write transitions to a writable kind.
	KindConstantInt
	KindConstantDouble
	KindConstantObject

	// Zero-based kinds are writable and dense: indices [0, used) are all
	// populated, everything at or above used reads as absent.
	KindZeroBasedInt
	KindZeroBasedDouble
	KindZeroBasedObject

	// Holes kinds are writable with per-slot hole tracking. See the
	// sentinel encodings documented in holes.go.
	KindHolesInt
	KindHolesDouble
	KindHolesObject
)

// String returns the kind name used in traces and diagnostics.
func (k Kind) String() string {
	switch k {
	case KindConstantEmpty:
		return "constant-empty"
	case KindConstantInt:
		return "constant-int"
	case KindConstantDouble:
		return "constant-double"
	case KindConstantObject:
		return "constant-object"
	case KindZeroBasedInt:
		return "zero-based-int"
	case KindZeroBasedDouble:
		return "zero-based-double"
	case KindZeroBasedObject:
		return "zero-based-object"
	case KindHolesInt:
		return "holes-int"
	case KindHolesDouble:
		return "holes-double"
	case KindHolesObject:
		return "holes-object"
	default:
		return "unknown"
	}
}

// IsConstant reports whether the kind is one of the immutable literal kinds
// (including constant-empty).
func (k Kind) IsConstant() bool {
	return k <= KindConstantObject
}

// HasHoles reports whether the kind tracks holes per slot.
func (k Kind) HasHoles() bool {
	return k >= KindHolesInt
}

// width orders element representations: 0 = none, 1 = int, 2 = double,
// 3 = generic object. Transitions never decrease it.
func (k Kind) width() int {
	switch k {
	case KindConstantEmpty:
		return 0
	case KindConstantInt, KindZeroBasedInt, KindHolesInt:
		return 1
	case KindConstantDouble, KindZeroBasedDouble, KindHolesDouble:
		return 2
	default:
		return 3
	}
}

// IntegrityLevel is the restriction tier governing which structural and
// value changes an array permits. Levels only ever ratchet upward.
type IntegrityLevel uint8

const (
	// LevelNone permits all operations.
	LevelNone IntegrityLevel = iota

	// LevelNonExtensible forbids growth: no writes to absent indices, no
	// length growth, no range insertion.
	LevelNonExtensible

	// LevelSealed additionally forbids deletes and truncation.
	LevelSealed

	// LevelFrozen additionally forbids element writes; the array is
	// fully immutable.
	LevelFrozen
)

// String returns the level name used in traces and diagnostics.
func (l IntegrityLevel) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelNonExtensible:
		return "non-extensible"
	case LevelSealed:
		return "sealed"
	case LevelFrozen:
		return "frozen"
	default:
		return "unknown"
	}
}
