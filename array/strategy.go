package array

// strategy is the operation contract every storage representation
// implements. A strategy value is an immutable (kind, integrity level)
// descriptor; the element data it describes lives on the Array entity.
//
// Division of labor with the Array facade:
//
//   - The facade validates integrity levels and range preconditions
//     before delegating; strategy methods assume preconditions hold.
//   - Strategy methods own all physical storage and the used/capacity/
//     holeCount bookkeeping. They may grow the declared length as a side
//     effect of a write past it.
//   - Declared-length arithmetic for setLength, removeRange, and addRange
//     is performed by the facade after the strategy call returns.
//
// Every mutating method returns the strategy the entity must use from now
// on. Returning the receiver means the operation was served in place; any
// other return is a widening transition that has already copied, converted,
// and applied the pending mutation (the caller never retries).
type strategy interface {
	kind() Kind
	integrity() IntegrityLevel

	// withIntegrity returns the same kind carrying a new integrity
	// level. O(1); storage untouched.
	withIntegrity(l IntegrityLevel) strategy

	// get returns the element at i, or Undefined for holes and
	// out-of-bounds reads. Never an error.
	get(a *Array, i int) Value

	// has reports whether i holds an element (bounds and hole check).
	has(a *Array, i int) bool

	// physLen is the physical extent of backing storage the range
	// operations work against: used for dense kinds, the full block for
	// holes kinds, the literal block for constant kinds, and the
	// reserved capacity for constant-empty.
	physLen(a *Array) int

	// set writes v at i, transitioning first if v's kind or position
	// cannot be represented. May grow a.length.
	set(a *Array, i int, v Value) strategy

	// deleteAt marks i as a hole without shrinking the declared length,
	// forcing a writable representation. Deleting the last remaining
	// element degenerates to constant-empty, reclaiming storage.
	deleteAt(a *Array, i int) strategy

	// setLength adjusts physical storage for a new declared length n.
	// Truncation drops elements; n == 0 degenerates to constant-empty
	// so later growth can defer allocation.
	setLength(a *Array, n int) strategy

	// removeRange physically compacts storage, collapsing [start, end).
	// An empty result degenerates to constant-empty.
	removeRange(a *Array, start, end int) strategy

	// addRange inserts size hole slots at offset. On empty storage this
	// is pure capacity bookkeeping; no allocation happens until the
	// first write.
	addRange(a *Array, offset, size int) strategy
}

// meta carries the integrity level shared by every concrete strategy.
type meta struct {
	lvl IntegrityLevel
}

func (m meta) integrity() IntegrityLevel { return m.lvl }
