package array

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_Empty(t *testing.T) {
	a := New()
	require.Equal(t, KindConstantEmpty, a.Kind())
	require.Equal(t, 0, a.Length())
	require.Equal(t, Undefined, a.Get(0))
	require.False(t, a.Has(0))
}

func TestNewWithLength(t *testing.T) {
	a := NewWithLength(5)
	require.Equal(t, KindConstantEmpty, a.Kind())
	require.Equal(t, 5, a.Length())
	require.False(t, a.Has(3))
	require.Equal(t, Undefined, a.Get(3))
}

func TestFromInts_ConstantInt(t *testing.T) {
	src := []int32{1, 2, 3}
	a := FromInts(src)
	require.Equal(t, KindConstantInt, a.Kind())
	require.Equal(t, 3, a.Length())
	require.Equal(t, Int(2), a.Get(1))
	require.True(t, a.Has(2))

	// Literal input is copied, not aliased.
	src[0] = 99
	require.Equal(t, Int(1), a.Get(0))
}

func TestFromDoubles_NarrowsWhenExact(t *testing.T) {
	a := FromDoubles([]float64{1, 2, 3})
	require.Equal(t, KindConstantInt, a.Kind())
	require.Equal(t, Int(3), a.Get(2))

	b := FromDoubles([]float64{1, 2.5})
	require.Equal(t, KindConstantDouble, b.Kind())
	require.Equal(t, Double(2.5), b.Get(1))
}

func TestFromValues_PicksNarrowestKind(t *testing.T) {
	a := FromValues([]Value{Int(1), Double(2)})
	require.Equal(t, KindConstantInt, a.Kind())

	b := FromValues([]Value{Int(1), Double(2.5)})
	require.Equal(t, KindConstantDouble, b.Kind())

	c := FromValues([]Value{Int(1), Object("x")})
	require.Equal(t, KindConstantObject, c.Kind())
	require.Equal(t, Object("x"), c.Get(1))

	d := FromValues(nil)
	require.Equal(t, KindConstantEmpty, d.Kind())
}

func TestGet_OutOfBoundsIsUndefined(t *testing.T) {
	a := FromInts([]int32{1, 2, 3})
	require.Equal(t, Undefined, a.Get(17))
	require.Equal(t, Undefined, a.Get(-1))
	require.False(t, a.Has(-1))
}

func TestSet_NegativeIndex(t *testing.T) {
	a := New()
	require.ErrorIs(t, a.Set(-1, Int(1)), ErrBadRange)
}

func TestSet_GrowsLength(t *testing.T) {
	a := FromInts([]int32{1})
	require.NoError(t, a.Set(1, Int(2)))
	require.Equal(t, 2, a.Length())
	require.Equal(t, KindZeroBasedInt, a.Kind())
	require.Equal(t, Int(2), a.Get(1))
}

func TestSetLength_GrowOnConstantDefersStorage(t *testing.T) {
	a := FromInts([]int32{1, 2, 3})
	require.NoError(t, a.SetLength(10))
	require.Equal(t, KindConstantInt, a.Kind())
	require.Equal(t, 10, a.Length())
	require.False(t, a.Has(7))
	require.Equal(t, Int(3), a.Get(2))
}

func TestSetLength_TruncateConstantGoesWritable(t *testing.T) {
	a := FromInts([]int32{1, 2, 3})
	require.NoError(t, a.SetLength(2))
	require.Equal(t, KindZeroBasedInt, a.Kind())
	require.Equal(t, 2, a.Length())
	require.False(t, a.Has(2))
	require.Equal(t, Int(2), a.Get(1))
}

func TestSetLength_Negative(t *testing.T) {
	a := New()
	require.ErrorIs(t, a.SetLength(-1), ErrBadLength)
}

func TestToValues_ExportsHolesAsUndefined(t *testing.T) {
	a := FromInts([]int32{1, 2, 3})
	require.NoError(t, a.Delete(1))
	require.NoError(t, a.SetLength(5))
	vs := a.ToValues()
	require.Equal(t, []Value{Int(1), Undefined, Int(3), Undefined, Undefined}, vs)
}

func TestToValues_DenseAfterTailDelete(t *testing.T) {
	a := FromInts([]int32{1, 2, 3})
	require.NoError(t, a.Set(2, Int(30))) // go writable
	require.NoError(t, a.Delete(2))       // dense tail delete
	require.Equal(t, KindZeroBasedInt, a.Kind())
	require.Equal(t, []Value{Int(1), Int(2), Undefined}, a.ToValues())
}

func TestToValues_KeepsSentinelValuedLiteral(t *testing.T) {
	// A literal holding the int hole sentinel as a real element stays on
	// constant-int storage; export must not mistake it for a hole.
	a := FromInts([]int32{math.MinInt32, 5})
	require.Equal(t, KindConstantInt, a.Kind())
	require.True(t, a.Has(0))
	require.Equal(t, []Value{Int(math.MinInt32), Int(5)}, a.ToValues())
}

func TestWriteReadRoundTrip_AllKinds(t *testing.T) {
	cases := []struct {
		name string
		v    Value
	}{
		{"int", Int(7)},
		{"int-min", Int(math.MinInt32)},
		{"double", Double(3.25)},
		{"object", Object("str")},
		{"undefined", Undefined},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			starts := map[string]*Array{
				"empty":           New(),
				"constant-int":    FromInts([]int32{1, 2, 3}),
				"constant-double": FromDoubles([]float64{1.5, 2.5}),
				"constant-object": FromValues([]Value{Object("a")}),
			}
			for name, a := range starts {
				require.NoError(t, a.Set(1, tc.v), name)
				got := a.Get(1)
				switch tc.v.Kind() {
				case ValueInt:
					// Widening may legitimately return the value
					// as a double; the numeric payload survives.
					require.Equal(t, tc.v.Float(), got.Float(), name)
				default:
					require.Equal(t, tc.v, got, name)
				}
				require.True(t, a.Has(1), name)
			}
		})
	}
}
