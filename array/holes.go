package array

import "math"

// Holes strategies are the writable sparse representations. Every slot of
// the backing block is meaningful: either an element or the kind's hole
// sentinel, with the sentinel population counted in the entity's holeCount.
//
// Sentinel encodings, and why they cannot collide with element data:
//
//   - holes-int: math.MinInt32. The transition policy widens any int
//     element equal to the sentinel to double width before it can reach
//     int storage headed for a holes representation.
//   - holes-double: a dedicated non-canonical quiet NaN payload. Double
//     element construction canonicalizes every NaN, so the payload is
//     unreachable from element data.
//   - holes-object: the zero Value, which the public constructors never
//     produce.
const intHole int32 = math.MinInt32

// doubleHoleBits is the non-canonical quiet NaN payload marking holes in
// double storage.
const doubleHoleBits = 0x7FF8000000000001

func doubleHole() float64 { return math.Float64frombits(doubleHoleBits) }

func isDoubleHole(f float64) bool { return math.Float64bits(f) == doubleHoleBits }

// holesIntArray: writable int storage with hole tracking.
type holesIntArray struct {
	meta
}

func (h holesIntArray) kind() Kind { return KindHolesInt }

func (h holesIntArray) withIntegrity(l IntegrityLevel) strategy {
	return holesIntArray{meta{l}}
}

func (h holesIntArray) get(a *Array, i int) Value {
	if i < len(a.ints) && a.ints[i] != intHole {
		return Int(a.ints[i])
	}
	return Undefined
}

func (h holesIntArray) has(a *Array, i int) bool {
	return i < len(a.ints) && a.ints[i] != intHole
}

func (h holesIntArray) physLen(a *Array) int { return len(a.ints) }

func (h holesIntArray) set(a *Array, i int, v Value) strategy {
	if valueWidth(v) > 1 {
		return widenForWrite(a, h, i, v)
	}
	if i < len(a.ints) {
		if a.ints[i] == intHole {
			a.holeCount--
		}
		a.ints[i] = v.Int()
		return h
	}
	a.holeCount += i - len(a.ints)
	a.ints = extendHoles(a.ints, i+1, intHole)
	a.ints[i] = v.Int()
	if i >= a.length {
		a.length = i + 1
	}
	return h
}

func (h holesIntArray) deleteAt(a *Array, i int) strategy {
	a.ints[i] = intHole
	a.holeCount++
	if a.holeCount == len(a.ints) {
		return degenerateToEmpty(a, h, len(a.ints), i)
	}
	return h
}

func (h holesIntArray) setLength(a *Array, n int) strategy {
	if n == 0 {
		return degenerateToEmpty(a, h, 0, 0)
	}
	if n < len(a.ints) {
		for _, x := range a.ints[n:] {
			if x == intHole {
				a.holeCount--
			}
		}
		a.ints = a.ints[:n]
	}
	return h
}

func (h holesIntArray) removeRange(a *Array, start, end int) strategy {
	for _, x := range a.ints[start:end] {
		if x == intHole {
			a.holeCount--
		}
	}
	copy(a.ints[start:], a.ints[end:])
	a.ints = a.ints[:len(a.ints)-(end-start)]
	if len(a.ints) == 0 {
		return degenerateToEmpty(a, h, 0, start)
	}
	return h
}

func (h holesIntArray) addRange(a *Array, offset, size int) strategy {
	a.ints = insertGap(a.ints, offset, size, intHole)
	a.holeCount += size
	return h
}

// holesDoubleArray: writable double storage with NaN-payload hole tracking.
type holesDoubleArray struct {
	meta
}

func (h holesDoubleArray) kind() Kind { return KindHolesDouble }

func (h holesDoubleArray) withIntegrity(l IntegrityLevel) strategy {
	return holesDoubleArray{meta{l}}
}

func (h holesDoubleArray) get(a *Array, i int) Value {
	if i < len(a.doubles) && !isDoubleHole(a.doubles[i]) {
		return Double(a.doubles[i])
	}
	return Undefined
}

func (h holesDoubleArray) has(a *Array, i int) bool {
	return i < len(a.doubles) && !isDoubleHole(a.doubles[i])
}

func (h holesDoubleArray) physLen(a *Array) int { return len(a.doubles) }

func (h holesDoubleArray) set(a *Array, i int, v Value) strategy {
	if valueWidth(v) > 2 {
		return widenForWrite(a, h, i, v)
	}
	if i < len(a.doubles) {
		if isDoubleHole(a.doubles[i]) {
			a.holeCount--
		}
		a.doubles[i] = v.Float()
		return h
	}
	a.holeCount += i - len(a.doubles)
	a.doubles = extendHoles(a.doubles, i+1, doubleHole())
	a.doubles[i] = v.Float()
	if i >= a.length {
		a.length = i + 1
	}
	return h
}

func (h holesDoubleArray) deleteAt(a *Array, i int) strategy {
	a.doubles[i] = doubleHole()
	a.holeCount++
	if a.holeCount == len(a.doubles) {
		return degenerateToEmpty(a, h, len(a.doubles), i)
	}
	return h
}

func (h holesDoubleArray) setLength(a *Array, n int) strategy {
	if n == 0 {
		return degenerateToEmpty(a, h, 0, 0)
	}
	if n < len(a.doubles) {
		for _, x := range a.doubles[n:] {
			if isDoubleHole(x) {
				a.holeCount--
			}
		}
		a.doubles = a.doubles[:n]
	}
	return h
}

func (h holesDoubleArray) removeRange(a *Array, start, end int) strategy {
	for _, x := range a.doubles[start:end] {
		if isDoubleHole(x) {
			a.holeCount--
		}
	}
	copy(a.doubles[start:], a.doubles[end:])
	a.doubles = a.doubles[:len(a.doubles)-(end-start)]
	if len(a.doubles) == 0 {
		return degenerateToEmpty(a, h, 0, start)
	}
	return h
}

func (h holesDoubleArray) addRange(a *Array, offset, size int) strategy {
	a.doubles = insertGap(a.doubles, offset, size, doubleHole())
	a.holeCount += size
	return h
}

// holesObjectArray: writable generic storage with zero-Value hole tracking.
// The widest representation; nothing transitions away from it.
type holesObjectArray struct {
	meta
}

func (h holesObjectArray) kind() Kind { return KindHolesObject }

func (h holesObjectArray) withIntegrity(l IntegrityLevel) strategy {
	return holesObjectArray{meta{l}}
}

func (h holesObjectArray) get(a *Array, i int) Value {
	if i < len(a.objects) && a.objects[i].kind != valueAbsent {
		return a.objects[i]
	}
	return Undefined
}

func (h holesObjectArray) has(a *Array, i int) bool {
	return i < len(a.objects) && a.objects[i].kind != valueAbsent
}

func (h holesObjectArray) physLen(a *Array) int { return len(a.objects) }

func (h holesObjectArray) set(a *Array, i int, v Value) strategy {
	if i < len(a.objects) {
		if a.objects[i].kind == valueAbsent {
			a.holeCount--
		}
		a.objects[i] = v
		return h
	}
	a.holeCount += i - len(a.objects)
	a.objects = extendHoles(a.objects, i+1, Value{})
	a.objects[i] = v
	if i >= a.length {
		a.length = i + 1
	}
	return h
}

func (h holesObjectArray) deleteAt(a *Array, i int) strategy {
	a.objects[i] = Value{}
	a.holeCount++
	if a.holeCount == len(a.objects) {
		return degenerateToEmpty(a, h, len(a.objects), i)
	}
	return h
}

func (h holesObjectArray) setLength(a *Array, n int) strategy {
	if n == 0 {
		return degenerateToEmpty(a, h, 0, 0)
	}
	if n < len(a.objects) {
		for _, x := range a.objects[n:] {
			if x.kind == valueAbsent {
				a.holeCount--
			}
		}
		a.objects = a.objects[:n]
	}
	return h
}

func (h holesObjectArray) removeRange(a *Array, start, end int) strategy {
	for _, x := range a.objects[start:end] {
		if x.kind == valueAbsent {
			a.holeCount--
		}
	}
	copy(a.objects[start:], a.objects[end:])
	next := len(a.objects) - (end - start)
	for i := next; i < len(a.objects); i++ {
		a.objects[i] = Value{}
	}
	a.objects = a.objects[:next]
	if next == 0 {
		return degenerateToEmpty(a, h, 0, start)
	}
	return h
}

func (h holesObjectArray) addRange(a *Array, offset, size int) strategy {
	a.objects = insertGap(a.objects, offset, size, Value{})
	a.holeCount += size
	return h
}
