package array

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDelete_LeavesHoleKeepsLength(t *testing.T) {
	a := FromInts([]int32{1, 2, 3})
	require.NoError(t, a.Delete(1))

	require.Equal(t, KindHolesInt, a.Kind())
	require.Equal(t, 3, a.Length())
	require.False(t, a.Has(1))
	require.Equal(t, Undefined, a.Get(1))
	require.Equal(t, Int(1), a.Get(0))
	require.Equal(t, Int(3), a.Get(2))
}

func TestDelete_AbsentIndexIsNoop(t *testing.T) {
	a := FromInts([]int32{1})
	require.NoError(t, a.Delete(5))
	require.NoError(t, a.Delete(-1))
	require.Equal(t, KindConstantInt, a.Kind())
}

func TestDelete_TailOnDenseShrinksInPlace(t *testing.T) {
	a := New()
	require.NoError(t, a.Set(0, Int(1)))
	require.NoError(t, a.Set(1, Int(2)))
	require.NoError(t, a.Delete(1))

	require.Equal(t, KindZeroBasedInt, a.Kind())
	require.Equal(t, 2, a.Length())
	require.False(t, a.Has(1))
}

func TestDelete_AllElementsDegeneratesToEmpty(t *testing.T) {
	a := FromInts([]int32{1, 2, 3})
	for i := 0; i < 3; i++ {
		require.NoError(t, a.Delete(i))
	}
	require.Equal(t, KindConstantEmpty, a.Kind())
	require.Equal(t, 3, a.Length())
	require.False(t, a.Has(0))
}

func TestDelete_SoleConstantElementDegenerates(t *testing.T) {
	a := FromInts([]int32{42})
	require.NoError(t, a.Delete(0))
	require.Equal(t, KindConstantEmpty, a.Kind())
	require.Equal(t, 1, a.Length())
}

func TestHoles_DistinctFromExplicitUndefined(t *testing.T) {
	a := NewWithLength(2)
	require.NoError(t, a.Set(0, Undefined))

	require.True(t, a.Has(0))  // explicitly assigned undefined
	require.False(t, a.Has(1)) // hole
	require.Equal(t, Undefined, a.Get(0))
	require.Equal(t, Undefined, a.Get(1))
}

func TestHoles_FillPastEndExtends(t *testing.T) {
	a := FromInts([]int32{1})
	require.NoError(t, a.Delete(0)) // degenerates (sole element)
	require.NoError(t, a.Set(4, Int(9)))

	require.Equal(t, KindHolesInt, a.Kind())
	require.Equal(t, 5, a.Length())
	require.False(t, a.Has(1))
	require.Equal(t, Int(9), a.Get(4))
}

func TestHoles_ObjectKindTracksZeroValue(t *testing.T) {
	a := FromValues([]Value{Object("a"), Object("b"), Object("c")})
	require.NoError(t, a.Delete(1))
	require.Equal(t, KindHolesObject, a.Kind())
	require.False(t, a.Has(1))
	require.Equal(t, Object("c"), a.Get(2))

	// Refilling clears the hole bookkeeping.
	require.NoError(t, a.Set(1, Object("B")))
	require.True(t, a.Has(1))
	require.Equal(t, 0, a.holeCount)
}

func TestHoles_SetLengthTruncationRecounts(t *testing.T) {
	a := FromInts([]int32{1, 2, 3, 4})
	require.NoError(t, a.Delete(1))
	require.NoError(t, a.Delete(3))
	require.Equal(t, 2, a.holeCount)

	require.NoError(t, a.SetLength(3))
	require.Equal(t, 1, a.holeCount)
	require.Equal(t, 3, a.Length())
	require.Equal(t, Int(3), a.Get(2))
}

func TestSetLength_ZeroDegeneratesAnyKind(t *testing.T) {
	arrays := map[string]*Array{
		"constant-int":    FromInts([]int32{1, 2}),
		"constant-double": FromDoubles([]float64{1.5}),
		"constant-object": FromValues([]Value{Object("x")}),
	}
	for name, a := range arrays {
		require.NoError(t, a.SetLength(0), name)
		require.Equal(t, KindConstantEmpty, a.Kind(), name)
		require.Equal(t, 0, a.Length(), name)
	}

	b := New()
	require.NoError(t, b.Set(0, Int(1)))
	require.NoError(t, b.SetLength(0))
	require.Equal(t, KindConstantEmpty, b.Kind())

	c := FromInts([]int32{1, 2, 3})
	require.NoError(t, c.Delete(1))
	require.NoError(t, c.SetLength(0))
	require.Equal(t, KindConstantEmpty, c.Kind())
}
