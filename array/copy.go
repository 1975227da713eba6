package array

import "math"

// Element codec: pure conversions between backing-storage blocks.
//
// Every function allocates a fresh block and never mutates its input.
// Widening directions (int -> double -> object) are total. Narrowing
// directions report representability instead of converting lossily; the
// transition policy only calls them when it is prepared to fall back to a
// wider kind. The codec itself never fails.

// --- widening, dense ---

func intToDouble(xs []int32) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = float64(x)
	}
	return out
}

func intToObject(xs []int32) []Value {
	out := make([]Value, len(xs))
	for i, x := range xs {
		out[i] = Int(x)
	}
	return out
}

func doubleToObject(xs []float64) []Value {
	out := make([]Value, len(xs))
	for i, x := range xs {
		out[i] = Double(x)
	}
	return out
}

// --- widening, hole-aware ---
//
// Hole sentinels (see holes.go) are propagated unchanged: an int hole
// becomes the double hole NaN, and either becomes the zero Value.

func intToDoubleHoles(xs []int32) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		if x == intHole {
			out[i] = doubleHole()
		} else {
			out[i] = float64(x)
		}
	}
	return out
}

func intToObjectHoles(xs []int32) []Value {
	out := make([]Value, len(xs))
	for i, x := range xs {
		if x != intHole {
			out[i] = Int(x)
		}
	}
	return out
}

func doubleToObjectHoles(xs []float64) []Value {
	out := make([]Value, len(xs))
	for i, x := range xs {
		if !isDoubleHole(x) {
			out[i] = Double(x)
		}
	}
	return out
}

// --- narrowing, construction-time only ---

// doubleToInt narrows a double block to int storage. It reports false if
// any element is not exactly representable as an int32 (fractional,
// out of range, negative zero, NaN, or colliding with the int hole
// sentinel).
func doubleToInt(xs []float64) ([]int32, bool) {
	out := make([]int32, len(xs))
	for i, x := range xs {
		n, ok := intFits(x)
		if !ok {
			return nil, false
		}
		out[i] = n
	}
	return out, true
}

// valuesToInts narrows generic values to int storage, reporting
// representability.
func valuesToInts(vs []Value) ([]int32, bool) {
	out := make([]int32, len(vs))
	for i, v := range vs {
		switch v.Kind() {
		case ValueInt:
			if v.Int() == intHole {
				return nil, false
			}
			out[i] = v.Int()
		case ValueDouble:
			n, ok := intFits(v.Double())
			if !ok {
				return nil, false
			}
			out[i] = n
		default:
			return nil, false
		}
	}
	return out, true
}

// valuesToDoubles narrows generic values to double storage, reporting
// representability.
func valuesToDoubles(vs []Value) ([]float64, bool) {
	out := make([]float64, len(vs))
	for i, v := range vs {
		switch v.Kind() {
		case ValueInt, ValueDouble:
			out[i] = v.Float()
		default:
			return nil, false
		}
	}
	return out, true
}

// intFits reports whether f is exactly representable as an int32 that does
// not collide with the int hole sentinel. Negative zero is rejected so the
// sign bit survives a round trip.
func intFits(f float64) (int32, bool) {
	if f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, false
	}
	if f == 0 && math.Signbit(f) {
		return 0, false
	}
	n := int32(f)
	if n == intHole {
		return 0, false
	}
	return n, true
}
