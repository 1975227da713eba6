package array

import (
	"fmt"
	"math"
)

// ValueKind identifies the representation of a single element value.
type ValueKind uint8

const (
	// valueAbsent is the zero Value. It is reserved as the hole sentinel
	// for object-kind storage and is never produced by the public
	// constructors, so a stored element can always be told apart from a
	// hole by comparing against it.
	valueAbsent ValueKind = iota

	ValueUndefined
	ValueInt
	ValueDouble
	ValueObject
)

// String returns the value-kind name used in traces and diagnostics.
func (k ValueKind) String() string {
	switch k {
	case valueAbsent:
		return "absent"
	case ValueUndefined:
		return "undefined"
	case ValueInt:
		return "int"
	case ValueDouble:
		return "double"
	case ValueObject:
		return "object"
	default:
		return "unknown"
	}
}

// canonicalNaNBits is the quiet NaN every NaN-valued Double is normalized
// to on construction. This keeps the distinct hole NaN payload (holes.go)
// unreachable from element data.
const canonicalNaNBits = 0x7FF8000000000000

// Value is a single array element: undefined, a 32-bit integer, a float64,
// or an arbitrary host object. The zero Value means "no element here".
type Value struct {
	kind ValueKind
	bits uint64
	ref  any
}

// Undefined is the explicitly-assigned undefined value. It is a real
// element: an array slot holding Undefined is not a hole.
var Undefined = Value{kind: ValueUndefined}

// Int returns an int-kind element value.
func Int(i int32) Value {
	return Value{kind: ValueInt, bits: uint64(uint32(i))}
}

// Double returns a double-kind element value. NaN payloads are canonicalized.
func Double(f float64) Value {
	bits := math.Float64bits(f)
	if f != f {
		bits = canonicalNaNBits
	}
	return Value{kind: ValueDouble, bits: bits}
}

// Object returns a generic object-kind element value wrapping v.
func Object(v any) Value {
	return Value{kind: ValueObject, ref: v}
}

// Kind returns the value's representation kind.
func (v Value) Kind() ValueKind { return v.kind }

// IsUndefined reports whether the value is the explicit undefined value.
func (v Value) IsUndefined() bool { return v.kind == ValueUndefined }

// Int returns the int payload. Valid only when Kind() == ValueInt.
func (v Value) Int() int32 { return int32(uint32(v.bits)) }

// Double returns the double payload. Valid only when Kind() == ValueDouble.
func (v Value) Double() float64 { return math.Float64frombits(v.bits) }

// Object returns the object payload. Valid only when Kind() == ValueObject.
func (v Value) Object() any { return v.ref }

// Float returns the numeric payload widened to float64. Every int is
// exactly representable, so this never loses information for int values.
// Valid only for int- and double-kind values.
func (v Value) Float() float64 {
	if v.kind == ValueInt {
		return float64(v.Int())
	}
	return v.Double()
}

// String renders the value for diagnostics.
func (v Value) String() string {
	switch v.kind {
	case valueAbsent:
		return "<absent>"
	case ValueUndefined:
		return "undefined"
	case ValueInt:
		return fmt.Sprintf("%d", v.Int())
	case ValueDouble:
		return fmt.Sprintf("%g", v.Double())
	default:
		return fmt.Sprintf("%v", v.ref)
	}
}
