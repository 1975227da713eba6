package array

// minAlloc is the smallest backing block materialized on first write.
const minAlloc = 8

// growCapacity returns the allocation size for a block that must hold at
// least need elements. Growth over-allocates by half so that append-heavy
// usage does not reallocate per write.
func growCapacity(need, hint int) int {
	c := hint
	if c < minAlloc {
		c = minAlloc
	}
	for c < need {
		c += c >> 1
	}
	return c
}

// extendHoles grows xs to length n, filling new slots with the hole
// sentinel. The input may be returned when capacity suffices.
func extendHoles[T any](xs []T, n int, hole T) []T {
	if n <= len(xs) {
		return xs
	}
	if n <= cap(xs) {
		grown := xs[:n]
		for i := len(xs); i < n; i++ {
			grown[i] = hole
		}
		return grown
	}
	grown := make([]T, n, growCapacity(n, cap(xs)))
	copy(grown, xs)
	for i := len(xs); i < n; i++ {
		grown[i] = hole
	}
	return grown
}

// insertGap returns a fresh block with size fill slots spliced in at off.
// Caller guarantees 0 <= off <= len(xs).
func insertGap[T any](xs []T, off, size int, fill T) []T {
	out := make([]T, len(xs)+size)
	copy(out, xs[:off])
	for i := off; i < off+size; i++ {
		out[i] = fill
	}
	copy(out[off+size:], xs[off:])
	return out
}

// cutRange returns a fresh block with [start, end) removed, elements after
// end shifted left. Caller guarantees 0 <= start <= end <= len(xs).
func cutRange[T any](xs []T, start, end int) []T {
	out := make([]T, len(xs)-(end-start))
	copy(out, xs[:start])
	copy(out[start:], xs[end:])
	return out
}
