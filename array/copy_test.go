package array

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodec_WideningDense(t *testing.T) {
	ints := []int32{1, -2, math.MaxInt32}

	ds := intToDouble(ints)
	require.Equal(t, []float64{1, -2, math.MaxInt32}, ds)
	// Input untouched.
	require.Equal(t, []int32{1, -2, math.MaxInt32}, ints)

	vs := intToObject(ints)
	require.Equal(t, []Value{Int(1), Int(-2), Int(math.MaxInt32)}, vs)

	os := doubleToObject([]float64{1.5, 2})
	require.Equal(t, []Value{Double(1.5), Double(2)}, os)
}

func TestCodec_HolePropagation(t *testing.T) {
	ints := []int32{7, intHole, 9}

	ds := intToDoubleHoles(ints)
	require.Equal(t, 7.0, ds[0])
	require.True(t, isDoubleHole(ds[1]))
	require.Equal(t, 9.0, ds[2])

	vs := intToObjectHoles(ints)
	require.Equal(t, Int(7), vs[0])
	require.Equal(t, valueAbsent, vs[1].Kind())
	require.Equal(t, Int(9), vs[2])

	ws := doubleToObjectHoles(ds)
	require.Equal(t, Double(7), ws[0])
	require.Equal(t, valueAbsent, ws[1].Kind())
	require.Equal(t, Double(9), ws[2])
}

func TestCodec_DoubleToInt(t *testing.T) {
	out, ok := doubleToInt([]float64{1, 2, -3})
	require.True(t, ok)
	require.Equal(t, []int32{1, 2, -3}, out)

	_, ok = doubleToInt([]float64{1, 2.5})
	require.False(t, ok)

	_, ok = doubleToInt([]float64{math.MaxInt32 + 1})
	require.False(t, ok)

	_, ok = doubleToInt([]float64{math.NaN()})
	require.False(t, ok)

	// Negative zero loses its sign bit as an int; must not narrow.
	_, ok = doubleToInt([]float64{math.Copysign(0, -1)})
	require.False(t, ok)

	// The int hole sentinel is reserved.
	_, ok = doubleToInt([]float64{math.MinInt32})
	require.False(t, ok)
}

func TestCodec_ValuesNarrowing(t *testing.T) {
	out, ok := valuesToInts([]Value{Int(1), Double(2)})
	require.True(t, ok)
	require.Equal(t, []int32{1, 2}, out)

	_, ok = valuesToInts([]Value{Int(1), Double(2.5)})
	require.False(t, ok)

	_, ok = valuesToInts([]Value{Int(1), Undefined})
	require.False(t, ok)

	_, ok = valuesToInts([]Value{Int(intHole)})
	require.False(t, ok)

	ds, ok := valuesToDoubles([]Value{Int(1), Double(2.5)})
	require.True(t, ok)
	require.Equal(t, []float64{1, 2.5}, ds)

	_, ok = valuesToDoubles([]Value{Object("x")})
	require.False(t, ok)
}
