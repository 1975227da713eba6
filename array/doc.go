// Package array implements an adaptive storage engine for script arrays.
//
// # Overview
//
// A script array's backing storage changes representation as its usage
// pattern changes: an all-integer literal starts on compact int storage,
// a fractional write widens it to doubles, a delete introduces hole
// tracking, and emptying it reclaims storage entirely. This package
// provides the strategy family, the conversion codec, and the transition
// policy that make those moves transparent while preserving array
// semantics (gaps, length truncation, integrity levels).
//
// # Strategy family
//
// Ten interchangeable strategies back a single Array entity:
//
//	constant-empty                    capacity bookkeeping only, no storage
//	constant-{int,double,object}      immutable literal storage
//	zero-based-{int,double,object}    writable dense storage
//	holes-{int,double,object}         writable storage with hole tracking
//
// Each strategy implements the full operation contract (get, has, set,
// delete, setLength, removeRange, addRange, withIntegrityLevel). When an
// operation cannot be served in the current representation, the transition
// policy builds the minimal wider strategy from a converted copy of the
// backing storage with the pending mutation already applied, so triggering
// operations are never retried.
//
// # Transitions
//
// Transitions are monotonic: representational width only grows
// (int < double < object) and the holes dimension is never reverted
// automatically, avoiding oscillation under repeated writes. Two
// degenerate moves reclaim storage: deleting the last element and setting
// length zero both fall back to constant-empty, where later growth is
// recorded as capacity bookkeeping until the next write allocates.
//
// # Usage Example
//
//	a := array.FromInts([]int32{1, 2, 3})
//	_ = a.Set(1, array.Double(2.5)) // widens to zero-based-double
//	v := a.Get(1)                   // Double(2.5)
//	_ = a.Delete(0)                 // transitions to holes-double
//	a.Freeze()                      // further writes return ErrFrozen
//
// # Integrity levels
//
// LevelNone < LevelNonExtensible < LevelSealed < LevelFrozen. The engine
// never raises language-level errors itself: operations return sentinel
// errors (ErrFrozen, ErrSealed, ErrNotExtensible) and the permission
// predicates (CanSet, CanDelete, CanSetLength) let callers decide between
// silent failure and a thrown error. Levels only ratchet upward.
//
// # Error semantics
//
// Out-of-bounds reads and reads of holes are not errors; they return
// Undefined. Representation-incompatible writes are never errors; they
// transition. Range preconditions (removeRange, addRange against physical
// storage bounds) are checked and fail fast with ErrBadRange rather than
// silently corrupting storage.
//
// # Tracing
//
// An optional TransitionTracer observer, injected via WithTracer, receives
// (old kind, new kind, triggering index, triggering value) for every
// transition. Tracing is purely observational.
//
// # Thread Safety
//
// Array instances are not thread-safe. The engine targets one execution
// thread per realm; embedders requiring concurrent access must serialize
// externally.
package array
