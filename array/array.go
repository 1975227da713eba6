package array

// Array is a logical script array: a replaceable storage strategy plus the
// raw backing storage that strategy describes. All element data is owned by
// the entity and private to the current strategy; at most one of the typed
// storage slices is non-nil at a time, matching the strategy kind.
//
// Instances are not safe for concurrent mutation; callers serialize access
// externally, matching the engine's one-thread-per-realm execution model.
type Array struct {
	strat strategy

	// Backing storage. Exactly the slice matching strat's kind is live;
	// the others are nil. constant-empty keeps all three nil.
	ints    []int32
	doubles []float64
	objects []Value

	// length is the declared length. It can exceed the physical storage
	// extent for constant and sparse representations.
	length int

	// used is the dense populated prefix for zero-based kinds.
	used int

	// capacity is reserved-but-unallocated room for constant-empty.
	capacity int

	// holeCount counts sentinel slots for holes kinds.
	holeCount int

	tracer TransitionTracer
}

// New returns an empty array on the constant-empty strategy. No element
// storage is allocated until the first write.
func New(opts ...Option) *Array {
	a := &Array{strat: constantEmptyArray{}}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewWithLength returns an array of declared length n with no allocated
// storage; every index reads as absent until written.
func NewWithLength(n int, opts ...Option) *Array {
	a := New(opts...)
	a.length = n
	if a.capacity < n {
		a.capacity = n
	}
	return a
}

// FromInts builds a constant-int array from a freshly parsed literal.
// The input is copied.
func FromInts(xs []int32, opts ...Option) *Array {
	a := New(opts...)
	if len(xs) == 0 {
		return a
	}
	a.ints = append([]int32(nil), xs...)
	a.length = len(xs)
	a.strat = constantIntArray{}
	return a
}

// FromDoubles builds a constant array from a double literal, narrowing to
// constant-int when every element is exactly representable. The input is
// copied and NaN payloads are canonicalized.
func FromDoubles(xs []float64, opts ...Option) *Array {
	a := New(opts...)
	if len(xs) == 0 {
		return a
	}
	if ints, ok := doubleToInt(xs); ok {
		a.ints = ints
		a.strat = constantIntArray{}
	} else {
		out := make([]float64, len(xs))
		for i, x := range xs {
			out[i] = Double(x).Double()
		}
		a.doubles = out
		a.strat = constantDoubleArray{}
	}
	a.length = len(xs)
	return a
}

// FromValues builds a constant array from a mixed literal, picking the
// narrowest representation that holds every element exactly.
func FromValues(vs []Value, opts ...Option) *Array {
	a := New(opts...)
	if len(vs) == 0 {
		return a
	}
	a.length = len(vs)
	if ints, ok := valuesToInts(vs); ok {
		a.ints = ints
		a.strat = constantIntArray{}
		return a
	}
	if doubles, ok := valuesToDoubles(vs); ok {
		a.doubles = doubles
		a.strat = constantDoubleArray{}
		return a
	}
	out := make([]Value, len(vs))
	for i, v := range vs {
		if v.kind == valueAbsent {
			v = Undefined
		}
		out[i] = v
	}
	a.objects = out
	a.strat = constantObjectArray{}
	return a
}

// Kind returns the kind of the current storage strategy.
func (a *Array) Kind() Kind { return a.strat.kind() }

// IntegrityLevel returns the current integrity level.
func (a *Array) IntegrityLevel() IntegrityLevel { return a.strat.integrity() }

// Length returns the declared length.
func (a *Array) Length() int { return a.length }

// Get returns the element at i. Out-of-bounds reads and holes return
// Undefined, never an error.
func (a *Array) Get(i int) Value {
	if i < 0 {
		return Undefined
	}
	return a.strat.get(a, i)
}

// Has reports whether index i holds an element (bounds and hole check).
func (a *Array) Has(i int) bool {
	if i < 0 {
		return false
	}
	return a.strat.has(a, i)
}

// CanSet reports whether writing at i is permitted under the current
// integrity level. Frozen arrays reject all writes; non-extensible and
// sealed arrays reject writes to absent indices.
func (a *Array) CanSet(i int) bool {
	lvl := a.strat.integrity()
	if lvl == LevelFrozen {
		return false
	}
	if !a.Has(i) && lvl >= LevelNonExtensible {
		return false
	}
	return true
}

// Set writes v at index i, transitioning the storage strategy if the value
// kind or position cannot be served in the current representation. Writes
// past the declared length grow it. A zero Value is treated as Undefined.
func (a *Array) Set(i int, v Value) error {
	if i < 0 {
		return ErrBadRange
	}
	if !a.CanSet(i) {
		if a.strat.integrity() == LevelFrozen {
			return ErrFrozen
		}
		return ErrNotExtensible
	}
	if v.kind == valueAbsent {
		v = Undefined
	}
	a.strat = a.strat.set(a, i, v)
	return nil
}

// CanDelete reports whether deleting index i is permitted. Deleting an
// absent index is always permitted (it is a no-op).
func (a *Array) CanDelete(i int) bool {
	return !a.Has(i) || a.strat.integrity() < LevelSealed
}

// Delete removes the element at i, leaving a hole. The declared length is
// unchanged. Deleting an absent index is a no-op.
func (a *Array) Delete(i int) error {
	if i < 0 || !a.strat.has(a, i) {
		return nil
	}
	switch lvl := a.strat.integrity(); {
	case lvl == LevelFrozen:
		return ErrFrozen
	case lvl >= LevelSealed:
		return ErrSealed
	}
	a.strat = a.strat.deleteAt(a, i)
	return nil
}

// CanSetLength reports whether resizing to n is permitted: growth requires
// an extensible array, truncation an unsealed one.
func (a *Array) CanSetLength(n int) bool {
	switch lvl := a.strat.integrity(); {
	case n == a.length:
		return true
	case n > a.length:
		return lvl < LevelNonExtensible
	default:
		return lvl < LevelSealed
	}
}

// SetLength resizes the declared length. Truncation drops elements and
// physical storage; setting length 0 reclaims storage entirely, deferring
// any reallocation until the next write.
func (a *Array) SetLength(n int) error {
	if n < 0 {
		return ErrBadLength
	}
	if n == a.length {
		return nil
	}
	if !a.CanSetLength(n) {
		switch lvl := a.strat.integrity(); {
		case lvl == LevelFrozen:
			return ErrFrozen
		case n < a.length:
			return ErrSealed
		default:
			return ErrNotExtensible
		}
	}
	a.strat = a.strat.setLength(a, n)
	a.length = n
	return nil
}

// RemoveRange collapses the index gap [start, end), shifting later
// elements left and shrinking the declared length by end-start. The range
// must lie within the physical backing storage and the declared length
// (checked precondition); capacity-only storage may reserve more room
// than the declared length covers.
func (a *Array) RemoveRange(start, end int) error {
	if start < 0 || end < start || end > a.strat.physLen(a) || end > a.length {
		return ErrBadRange
	}
	switch lvl := a.strat.integrity(); {
	case lvl == LevelFrozen:
		return ErrFrozen
	case lvl >= LevelSealed:
		return ErrSealed
	}
	if start == end {
		return nil
	}
	a.strat = a.strat.removeRange(a, start, end)
	a.length -= end - start
	return nil
}

// AddRange inserts size hole slots at offset, shifting later elements
// right and growing the declared length by size. On an empty array this is
// recorded as capacity bookkeeping only. The offset must lie within the
// physical backing storage (checked precondition).
func (a *Array) AddRange(offset, size int) error {
	if offset < 0 || size < 0 || offset > a.strat.physLen(a) {
		return ErrBadRange
	}
	if lvl := a.strat.integrity(); lvl >= LevelNonExtensible {
		if lvl == LevelFrozen {
			return ErrFrozen
		}
		return ErrNotExtensible
	}
	if size == 0 {
		return nil
	}
	a.strat = a.strat.addRange(a, offset, size)
	a.length += size
	return nil
}

// SetIntegrityLevel ratchets the integrity level up to l. Lowering is
// rejected. Length and element values are untouched; only permissions
// derived from the level change.
func (a *Array) SetIntegrityLevel(l IntegrityLevel) error {
	cur := a.strat.integrity()
	if l < cur {
		return ErrLevelLowered
	}
	if l > cur {
		a.strat = a.strat.withIntegrity(l)
	}
	return nil
}

// PreventExtensions forbids growth. No-op if already at a higher level.
func (a *Array) PreventExtensions() { a.ratchet(LevelNonExtensible) }

// Seal additionally forbids deletes and truncation.
func (a *Array) Seal() { a.ratchet(LevelSealed) }

// Freeze makes the array fully immutable.
func (a *Array) Freeze() { a.ratchet(LevelFrozen) }

func (a *Array) ratchet(l IntegrityLevel) {
	if l > a.strat.integrity() {
		a.strat = a.strat.withIntegrity(l)
	}
}

// ToValues exports the array as generic values of declared length. Holes
// and unset trailing indices export as Undefined. Storage is not mutated
// and the strategy does not change.
func (a *Array) ToValues() []Value {
	out := make([]Value, a.length)
	for i := range out {
		out[i] = Undefined
	}
	switch a.strat.kind() {
	case KindConstantInt, KindZeroBasedInt:
		// Dense int storage has no holes; a stored literal equal to the
		// sentinel is a real element and must export as one.
		for i, x := range a.intRegion() {
			out[i] = Int(x)
		}
	case KindHolesInt:
		for i, x := range a.ints {
			if x != intHole {
				out[i] = Int(x)
			}
		}
	case KindConstantDouble, KindZeroBasedDouble, KindHolesDouble:
		for i, x := range a.doubleRegion() {
			if !isDoubleHole(x) {
				out[i] = Double(x)
			}
		}
	case KindConstantObject, KindZeroBasedObject, KindHolesObject:
		for i, v := range a.objectRegion() {
			if v.kind != valueAbsent {
				out[i] = v
			}
		}
	}
	return out
}

// intRegion returns the populated extent of int storage for export.
func (a *Array) intRegion() []int32 {
	if a.strat.kind() == KindZeroBasedInt {
		return a.ints[:a.used]
	}
	return a.ints
}

func (a *Array) doubleRegion() []float64 {
	if a.strat.kind() == KindZeroBasedDouble {
		return a.doubles[:a.used]
	}
	return a.doubles
}

func (a *Array) objectRegion() []Value {
	if a.strat.kind() == KindZeroBasedObject {
		return a.objects[:a.used]
	}
	return a.objects
}

// traceTransition reports a completed strategy transition to the optional
// observer. Purely observational.
func (a *Array) traceTransition(old Kind, next strategy, i int, v Value) {
	if a.tracer != nil {
		a.tracer.ArrayTransition(old, next.kind(), i, v)
	}
}
