package array

// Transition policy: given the current strategy and an operation it cannot
// serve, pick the minimal strategy kind that can, build its backing storage
// from a converted copy of the current storage, apply the pending mutation
// into the new storage, install it, and report the transition.
//
// Transitions are monotonic: width only grows (int < double < object) and
// the holes dimension is never reverted automatically. Narrowing back is
// deliberately avoided to prevent representation oscillation.
//
// The copy + convert + apply + install sequence is atomic from the caller's
// perspective: the old block stays live and referenced until the new block
// is fully populated, so a failed allocation leaves the entity untouched.

// valueWidth returns the minimal representation width for v. An int equal
// to the int hole sentinel is bumped to double width so it can never be
// mistaken for a hole.
func valueWidth(v Value) int {
	switch v.kind {
	case ValueInt:
		if v.Int() == intHole {
			return 2
		}
		return 1
	case ValueDouble:
		return 2
	default:
		return 3
	}
}

// makesHole reports whether writing at i under kind k would leave unset
// slots below i, forcing a holes representation.
func makesHole(a *Array, k Kind, i int) bool {
	switch {
	case k == KindConstantEmpty:
		return i > 0
	case k == KindConstantInt:
		return i > len(a.ints)
	case k == KindConstantDouble:
		return i > len(a.doubles)
	case k == KindConstantObject:
		return i > len(a.objects)
	case k.HasHoles():
		return false
	default:
		return i > a.used
	}
}

// intSentinelCollision reports whether dense int storage holds a value
// equal to the int hole sentinel. Converting such storage into holes-int
// would turn the value into a phantom hole, so the policy widens to double
// instead (every int32 survives that conversion exactly).
func intSentinelCollision(a *Array, k Kind) bool {
	var xs []int32
	switch k {
	case KindConstantInt:
		xs = a.ints
	case KindZeroBasedInt:
		xs = a.ints[:a.used]
	default:
		return false
	}
	for _, x := range xs {
		if x == intHole {
			return true
		}
	}
	return false
}

// srcHoleCount returns the hole count carried over from the current kind.
func srcHoleCount(a *Array, k Kind) int {
	if k.HasHoles() {
		return a.holeCount
	}
	return 0
}

// valuesCount returns the number of populated elements under kind k.
func valuesCount(a *Array, k Kind) int {
	switch k {
	case KindConstantEmpty:
		return 0
	case KindConstantInt:
		return len(a.ints)
	case KindConstantDouble:
		return len(a.doubles)
	case KindConstantObject:
		return len(a.objects)
	case KindHolesInt:
		return len(a.ints) - a.holeCount
	case KindHolesDouble:
		return len(a.doubles) - a.holeCount
	case KindHolesObject:
		return len(a.objects) - a.holeCount
	default:
		return a.used
	}
}

// --- block builders (element codec application per source kind) ---

// buildInts copies the entity's elements into a fresh int block. Valid for
// int-width and empty sources only.
func buildInts(a *Array, k Kind) []int32 {
	switch k {
	case KindConstantEmpty:
		if a.capacity > 0 {
			return make([]int32, 0, a.capacity)
		}
		return nil
	case KindZeroBasedInt:
		return append([]int32(nil), a.ints[:a.used]...)
	default: // constant-int, holes-int
		return append([]int32(nil), a.ints...)
	}
}

// buildDoubles copies the entity's elements into a fresh double block,
// widening ints and propagating hole sentinels.
func buildDoubles(a *Array, k Kind) []float64 {
	switch k {
	case KindConstantEmpty:
		if a.capacity > 0 {
			return make([]float64, 0, a.capacity)
		}
		return nil
	case KindConstantInt:
		return intToDouble(a.ints)
	case KindZeroBasedInt:
		return intToDouble(a.ints[:a.used])
	case KindHolesInt:
		return intToDoubleHoles(a.ints)
	case KindZeroBasedDouble:
		return append([]float64(nil), a.doubles[:a.used]...)
	default: // constant-double, holes-double
		return append([]float64(nil), a.doubles...)
	}
}

// buildObjects copies the entity's elements into a fresh generic block,
// widening numeric storage and propagating hole sentinels.
func buildObjects(a *Array, k Kind) []Value {
	switch k {
	case KindConstantEmpty:
		if a.capacity > 0 {
			return make([]Value, 0, a.capacity)
		}
		return nil
	case KindConstantInt:
		return intToObject(a.ints)
	case KindZeroBasedInt:
		return intToObject(a.ints[:a.used])
	case KindHolesInt:
		return intToObjectHoles(a.ints)
	case KindConstantDouble:
		return doubleToObject(a.doubles)
	case KindZeroBasedDouble:
		return doubleToObject(a.doubles[:a.used])
	case KindHolesDouble:
		return doubleToObjectHoles(a.doubles)
	case KindZeroBasedObject:
		return append([]Value(nil), a.objects[:a.used]...)
	default: // constant-object, holes-object
		return append([]Value(nil), a.objects...)
	}
}

// --- storage installers ---

func (a *Array) installInts(xs []int32) {
	a.ints, a.doubles, a.objects = xs, nil, nil
}

func (a *Array) installDoubles(xs []float64) {
	a.ints, a.doubles, a.objects = nil, xs, nil
}

func (a *Array) installObjects(xs []Value) {
	a.ints, a.doubles, a.objects = nil, nil, xs
}

// --- transitions ---

// widenForWrite serves a write the current strategy cannot take in place.
// It returns the new strategy with the write already applied.
func widenForWrite(a *Array, cur strategy, i int, v Value) strategy {
	old := cur.kind()
	width := max(old.width(), valueWidth(v))
	toHoles := old.HasHoles() || makesHole(a, old, i)
	if width == 1 && toHoles && intSentinelCollision(a, old) {
		width = 2
	}
	lvl := cur.integrity()

	var next strategy
	switch width {
	case 1:
		xs := buildInts(a, old)
		if toHoles {
			holes := srcHoleCount(a, old)
			if i >= len(xs) {
				holes += i - len(xs)
				xs = extendHoles(xs, i+1, int32(intHole))
			} else if xs[i] == intHole {
				holes--
			}
			xs[i] = v.Int()
			a.installInts(xs)
			a.used, a.holeCount, a.capacity = 0, holes, 0
			next = holesIntArray{meta{lvl}}
		} else {
			if i == len(xs) {
				xs = append(xs, 0)
			}
			xs[i] = v.Int()
			a.installInts(xs)
			a.used, a.holeCount, a.capacity = len(xs), 0, 0
			next = zeroBasedIntArray{meta{lvl}}
		}
	case 2:
		xs := buildDoubles(a, old)
		if toHoles {
			holes := srcHoleCount(a, old)
			if i >= len(xs) {
				holes += i - len(xs)
				xs = extendHoles(xs, i+1, doubleHole())
			} else if isDoubleHole(xs[i]) {
				holes--
			}
			xs[i] = Double(v.Float()).Double()
			a.installDoubles(xs)
			a.used, a.holeCount, a.capacity = 0, holes, 0
			next = holesDoubleArray{meta{lvl}}
		} else {
			if i == len(xs) {
				xs = append(xs, 0)
			}
			xs[i] = Double(v.Float()).Double()
			a.installDoubles(xs)
			a.used, a.holeCount, a.capacity = len(xs), 0, 0
			next = zeroBasedDoubleArray{meta{lvl}}
		}
	default:
		xs := buildObjects(a, old)
		if toHoles {
			holes := srcHoleCount(a, old)
			if i >= len(xs) {
				holes += i - len(xs)
				xs = extendHoles(xs, i+1, Value{})
			} else if xs[i].kind == valueAbsent {
				holes--
			}
			xs[i] = v
			a.installObjects(xs)
			a.used, a.holeCount, a.capacity = 0, holes, 0
			next = holesObjectArray{meta{lvl}}
		} else {
			if i == len(xs) {
				xs = append(xs, Value{})
			}
			xs[i] = v
			a.installObjects(xs)
			a.used, a.holeCount, a.capacity = len(xs), 0, 0
			next = zeroBasedObjectArray{meta{lvl}}
		}
	}

	if i >= a.length {
		a.length = i + 1
	}
	a.traceTransition(old, next, i, v)
	return next
}

// holesForDelete converts a constant or dense representation into its holes
// variant with a hole at i. Deleting the sole remaining element degenerates
// straight to constant-empty instead, reclaiming storage.
func holesForDelete(a *Array, cur strategy, i int) strategy {
	old := cur.kind()
	if valuesCount(a, old) == 1 {
		return degenerateToEmpty(a, cur, cur.physLen(a), i)
	}
	width := old.width()
	if width == 1 && intSentinelCollision(a, old) {
		width = 2
	}
	lvl := cur.integrity()

	var next strategy
	switch width {
	case 1:
		xs := buildInts(a, old)
		xs[i] = intHole
		a.installInts(xs)
		next = holesIntArray{meta{lvl}}
	case 2:
		xs := buildDoubles(a, old)
		xs[i] = doubleHole()
		a.installDoubles(xs)
		next = holesDoubleArray{meta{lvl}}
	default:
		xs := buildObjects(a, old)
		xs[i] = Value{}
		a.installObjects(xs)
		next = holesObjectArray{meta{lvl}}
	}
	a.used, a.holeCount, a.capacity = 0, 1, 0
	a.traceTransition(old, next, i, Undefined)
	return next
}

// holesForAddRange converts a constant or dense representation into its
// holes variant with size hole slots spliced in at off.
func holesForAddRange(a *Array, cur strategy, off, size int) strategy {
	old := cur.kind()
	width := old.width()
	if width == 1 && intSentinelCollision(a, old) {
		width = 2
	}
	lvl := cur.integrity()

	var next strategy
	switch width {
	case 1:
		a.installInts(insertGap(buildInts(a, old), off, size, int32(intHole)))
		next = holesIntArray{meta{lvl}}
	case 2:
		a.installDoubles(insertGap(buildDoubles(a, old), off, size, doubleHole()))
		next = holesDoubleArray{meta{lvl}}
	default:
		a.installObjects(insertGap(buildObjects(a, old), off, size, Value{}))
		next = holesObjectArray{meta{lvl}}
	}
	a.used, a.holeCount, a.capacity = 0, size, 0
	a.traceTransition(old, next, off, Undefined)
	return next
}

// writableTruncated converts a constant representation into a dense
// writable one truncated to n elements (0 < n < physical length).
func writableTruncated(a *Array, cur strategy, n int) strategy {
	old := cur.kind()
	lvl := cur.integrity()

	var next strategy
	switch old {
	case KindConstantInt:
		a.installInts(append([]int32(nil), a.ints[:n]...))
		next = zeroBasedIntArray{meta{lvl}}
	case KindConstantDouble:
		a.installDoubles(append([]float64(nil), a.doubles[:n]...))
		next = zeroBasedDoubleArray{meta{lvl}}
	default:
		a.installObjects(append([]Value(nil), a.objects[:n]...))
		next = zeroBasedObjectArray{meta{lvl}}
	}
	a.used, a.holeCount, a.capacity = n, 0, 0
	a.traceTransition(old, next, n, Undefined)
	return next
}

// degenerateToEmpty reclaims all storage, leaving a capacity-only
// representation so the hot delete-in-loop pattern does not keep a dead
// physical block alive.
func degenerateToEmpty(a *Array, cur strategy, capacity, i int) strategy {
	old := cur.kind()
	a.ints, a.doubles, a.objects = nil, nil, nil
	a.used, a.holeCount = 0, 0
	a.capacity = capacity
	next := constantEmptyArray{meta{cur.integrity()}}
	a.traceTransition(old, next, i, Undefined)
	return next
}
