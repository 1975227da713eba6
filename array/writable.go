package array

// Zero-based strategies are the writable dense representations: indices
// [0, used) are all populated and the slice length equals used (spare
// room lives in slice capacity). Reads at or past used are absent, which
// also covers a declared length grown past the populated prefix. Any write
// that would leave a gap below its index transitions to the holes variant.

// zeroBasedIntArray: writable dense int storage.
type zeroBasedIntArray struct {
	meta
}

func (z zeroBasedIntArray) kind() Kind { return KindZeroBasedInt }

func (z zeroBasedIntArray) withIntegrity(l IntegrityLevel) strategy {
	return zeroBasedIntArray{meta{l}}
}

func (z zeroBasedIntArray) get(a *Array, i int) Value {
	if i < a.used {
		return Int(a.ints[i])
	}
	return Undefined
}

func (z zeroBasedIntArray) has(a *Array, i int) bool { return i < a.used }

func (z zeroBasedIntArray) physLen(a *Array) int { return a.used }

func (z zeroBasedIntArray) set(a *Array, i int, v Value) strategy {
	if valueWidth(v) > 1 || i > a.used {
		return widenForWrite(a, z, i, v)
	}
	if i < a.used {
		a.ints[i] = v.Int()
		return z
	}
	a.ints = append(a.ints, v.Int())
	a.used++
	if i >= a.length {
		a.length = i + 1
	}
	return z
}

func (z zeroBasedIntArray) deleteAt(a *Array, i int) strategy {
	if i == a.used-1 {
		a.used--
		a.ints = a.ints[:a.used]
		if a.used == 0 {
			return degenerateToEmpty(a, z, cap(a.ints), i)
		}
		return z
	}
	return holesForDelete(a, z, i)
}

func (z zeroBasedIntArray) setLength(a *Array, n int) strategy {
	if n == 0 {
		return degenerateToEmpty(a, z, 0, 0)
	}
	if n < a.used {
		a.used = n
		a.ints = a.ints[:n]
	}
	return z
}

func (z zeroBasedIntArray) removeRange(a *Array, start, end int) strategy {
	copy(a.ints[start:], a.ints[end:])
	a.used -= end - start
	a.ints = a.ints[:a.used]
	if a.used == 0 {
		return degenerateToEmpty(a, z, 0, start)
	}
	return z
}

func (z zeroBasedIntArray) addRange(a *Array, offset, size int) strategy {
	if offset == a.used {
		// Tail insertion: the new slots sit past the populated prefix,
		// which the dense representation already reads as absent.
		return z
	}
	return holesForAddRange(a, z, offset, size)
}

// zeroBasedDoubleArray: writable dense double storage. Int writes are
// stored widened; they never narrow the representation back.
type zeroBasedDoubleArray struct {
	meta
}

func (z zeroBasedDoubleArray) kind() Kind { return KindZeroBasedDouble }

func (z zeroBasedDoubleArray) withIntegrity(l IntegrityLevel) strategy {
	return zeroBasedDoubleArray{meta{l}}
}

func (z zeroBasedDoubleArray) get(a *Array, i int) Value {
	if i < a.used {
		return Double(a.doubles[i])
	}
	return Undefined
}

func (z zeroBasedDoubleArray) has(a *Array, i int) bool { return i < a.used }

func (z zeroBasedDoubleArray) physLen(a *Array) int { return a.used }

func (z zeroBasedDoubleArray) set(a *Array, i int, v Value) strategy {
	if valueWidth(v) > 2 || i > a.used {
		return widenForWrite(a, z, i, v)
	}
	if i < a.used {
		a.doubles[i] = v.Float()
		return z
	}
	a.doubles = append(a.doubles, v.Float())
	a.used++
	if i >= a.length {
		a.length = i + 1
	}
	return z
}

func (z zeroBasedDoubleArray) deleteAt(a *Array, i int) strategy {
	if i == a.used-1 {
		a.used--
		a.doubles = a.doubles[:a.used]
		if a.used == 0 {
			return degenerateToEmpty(a, z, cap(a.doubles), i)
		}
		return z
	}
	return holesForDelete(a, z, i)
}

func (z zeroBasedDoubleArray) setLength(a *Array, n int) strategy {
	if n == 0 {
		return degenerateToEmpty(a, z, 0, 0)
	}
	if n < a.used {
		a.used = n
		a.doubles = a.doubles[:n]
	}
	return z
}

func (z zeroBasedDoubleArray) removeRange(a *Array, start, end int) strategy {
	copy(a.doubles[start:], a.doubles[end:])
	a.used -= end - start
	a.doubles = a.doubles[:a.used]
	if a.used == 0 {
		return degenerateToEmpty(a, z, 0, start)
	}
	return z
}

func (z zeroBasedDoubleArray) addRange(a *Array, offset, size int) strategy {
	if offset == a.used {
		return z
	}
	return holesForAddRange(a, z, offset, size)
}

// zeroBasedObjectArray: writable dense generic storage; takes any element
// value in place.
type zeroBasedObjectArray struct {
	meta
}

func (z zeroBasedObjectArray) kind() Kind { return KindZeroBasedObject }

func (z zeroBasedObjectArray) withIntegrity(l IntegrityLevel) strategy {
	return zeroBasedObjectArray{meta{l}}
}

func (z zeroBasedObjectArray) get(a *Array, i int) Value {
	if i < a.used {
		return a.objects[i]
	}
	return Undefined
}

func (z zeroBasedObjectArray) has(a *Array, i int) bool { return i < a.used }

func (z zeroBasedObjectArray) physLen(a *Array) int { return a.used }

func (z zeroBasedObjectArray) set(a *Array, i int, v Value) strategy {
	if i > a.used {
		return widenForWrite(a, z, i, v)
	}
	if i < a.used {
		a.objects[i] = v
		return z
	}
	a.objects = append(a.objects, v)
	a.used++
	if i >= a.length {
		a.length = i + 1
	}
	return z
}

func (z zeroBasedObjectArray) deleteAt(a *Array, i int) strategy {
	if i == a.used-1 {
		a.used--
		a.objects[a.used] = Value{} // release the reference
		a.objects = a.objects[:a.used]
		if a.used == 0 {
			return degenerateToEmpty(a, z, cap(a.objects), i)
		}
		return z
	}
	return holesForDelete(a, z, i)
}

func (z zeroBasedObjectArray) setLength(a *Array, n int) strategy {
	if n == 0 {
		return degenerateToEmpty(a, z, 0, 0)
	}
	if n < a.used {
		for i := n; i < a.used; i++ {
			a.objects[i] = Value{}
		}
		a.used = n
		a.objects = a.objects[:n]
	}
	return z
}

func (z zeroBasedObjectArray) removeRange(a *Array, start, end int) strategy {
	copy(a.objects[start:], a.objects[end:])
	next := a.used - (end - start)
	for i := next; i < a.used; i++ {
		a.objects[i] = Value{}
	}
	a.used = next
	a.objects = a.objects[:next]
	if a.used == 0 {
		return degenerateToEmpty(a, z, 0, start)
	}
	return z
}

func (z zeroBasedObjectArray) addRange(a *Array, offset, size int) strategy {
	if offset == a.used {
		return z
	}
	return holesForAddRange(a, z, offset, size)
}
