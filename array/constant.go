package array

// Constant strategies back freshly-constructed literals. Their storage is
// never mutated element-wise in place; every write, delete, or hole
// insertion transitions to a writable kind first. Range compaction may
// replace the whole block with a fresh copy, which keeps the kind.

// constantEmptyArray is the capacity-only representation: no backing block
// exists, and growth is recorded as bookkeeping until the first element
// write materializes storage.
type constantEmptyArray struct {
	meta
}

func (c constantEmptyArray) kind() Kind { return KindConstantEmpty }

func (c constantEmptyArray) withIntegrity(l IntegrityLevel) strategy {
	return constantEmptyArray{meta{l}}
}

func (c constantEmptyArray) get(a *Array, i int) Value { return Undefined }

func (c constantEmptyArray) has(a *Array, i int) bool { return false }

func (c constantEmptyArray) physLen(a *Array) int { return a.capacity }

func (c constantEmptyArray) set(a *Array, i int, v Value) strategy {
	return widenForWrite(a, c, i, v)
}

// deleteAt is unreachable: an empty array holds nothing to delete.
func (c constantEmptyArray) deleteAt(a *Array, i int) strategy { return c }

func (c constantEmptyArray) setLength(a *Array, n int) strategy {
	a.capacity = n
	return c
}

func (c constantEmptyArray) removeRange(a *Array, start, end int) strategy {
	a.capacity -= end - start
	return c
}

func (c constantEmptyArray) addRange(a *Array, offset, size int) strategy {
	a.capacity += size
	return c
}

// constantIntArray: immutable homogeneous int storage.
type constantIntArray struct {
	meta
}

func (c constantIntArray) kind() Kind { return KindConstantInt }

func (c constantIntArray) withIntegrity(l IntegrityLevel) strategy {
	return constantIntArray{meta{l}}
}

func (c constantIntArray) get(a *Array, i int) Value {
	if i < len(a.ints) {
		return Int(a.ints[i])
	}
	return Undefined
}

func (c constantIntArray) has(a *Array, i int) bool { return i < len(a.ints) }

func (c constantIntArray) physLen(a *Array) int { return len(a.ints) }

func (c constantIntArray) set(a *Array, i int, v Value) strategy {
	return widenForWrite(a, c, i, v)
}

func (c constantIntArray) deleteAt(a *Array, i int) strategy {
	return holesForDelete(a, c, i)
}

func (c constantIntArray) setLength(a *Array, n int) strategy {
	switch {
	case n == 0:
		return degenerateToEmpty(a, c, 0, 0)
	case n < len(a.ints):
		return writableTruncated(a, c, n)
	default:
		// Growth is declared-length bookkeeping only; materialization
		// stays deferred.
		return c
	}
}

func (c constantIntArray) removeRange(a *Array, start, end int) strategy {
	if len(a.ints)-(end-start) == 0 {
		return degenerateToEmpty(a, c, 0, start)
	}
	a.ints = cutRange(a.ints, start, end)
	return c
}

func (c constantIntArray) addRange(a *Array, offset, size int) strategy {
	if len(a.ints) == 0 {
		a.capacity += size
		return c
	}
	return holesForAddRange(a, c, offset, size)
}

// constantDoubleArray: immutable homogeneous double storage.
type constantDoubleArray struct {
	meta
}

func (c constantDoubleArray) kind() Kind { return KindConstantDouble }

func (c constantDoubleArray) withIntegrity(l IntegrityLevel) strategy {
	return constantDoubleArray{meta{l}}
}

func (c constantDoubleArray) get(a *Array, i int) Value {
	if i < len(a.doubles) {
		return Double(a.doubles[i])
	}
	return Undefined
}

func (c constantDoubleArray) has(a *Array, i int) bool { return i < len(a.doubles) }

func (c constantDoubleArray) physLen(a *Array) int { return len(a.doubles) }

func (c constantDoubleArray) set(a *Array, i int, v Value) strategy {
	return widenForWrite(a, c, i, v)
}

func (c constantDoubleArray) deleteAt(a *Array, i int) strategy {
	return holesForDelete(a, c, i)
}

func (c constantDoubleArray) setLength(a *Array, n int) strategy {
	switch {
	case n == 0:
		return degenerateToEmpty(a, c, 0, 0)
	case n < len(a.doubles):
		return writableTruncated(a, c, n)
	default:
		return c
	}
}

func (c constantDoubleArray) removeRange(a *Array, start, end int) strategy {
	if len(a.doubles)-(end-start) == 0 {
		return degenerateToEmpty(a, c, 0, start)
	}
	a.doubles = cutRange(a.doubles, start, end)
	return c
}

func (c constantDoubleArray) addRange(a *Array, offset, size int) strategy {
	if len(a.doubles) == 0 {
		a.capacity += size
		return c
	}
	return holesForAddRange(a, c, offset, size)
}

// constantObjectArray: immutable generic storage.
type constantObjectArray struct {
	meta
}

func (c constantObjectArray) kind() Kind { return KindConstantObject }

func (c constantObjectArray) withIntegrity(l IntegrityLevel) strategy {
	return constantObjectArray{meta{l}}
}

func (c constantObjectArray) get(a *Array, i int) Value {
	if i < len(a.objects) {
		return a.objects[i]
	}
	return Undefined
}

func (c constantObjectArray) has(a *Array, i int) bool { return i < len(a.objects) }

func (c constantObjectArray) physLen(a *Array) int { return len(a.objects) }

func (c constantObjectArray) set(a *Array, i int, v Value) strategy {
	return widenForWrite(a, c, i, v)
}

func (c constantObjectArray) deleteAt(a *Array, i int) strategy {
	return holesForDelete(a, c, i)
}

func (c constantObjectArray) setLength(a *Array, n int) strategy {
	switch {
	case n == 0:
		return degenerateToEmpty(a, c, 0, 0)
	case n < len(a.objects):
		return writableTruncated(a, c, n)
	default:
		return c
	}
}

func (c constantObjectArray) removeRange(a *Array, start, end int) strategy {
	if len(a.objects)-(end-start) == 0 {
		return degenerateToEmpty(a, c, 0, start)
	}
	a.objects = cutRange(a.objects, start, end)
	return c
}

func (c constantObjectArray) addRange(a *Array, offset, size int) strategy {
	if len(a.objects) == 0 {
		a.capacity += size
		return c
	}
	return holesForAddRange(a, c, offset, size)
}
