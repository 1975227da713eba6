package array

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// recordingTracer captures transitions for assertions.
type recordingTracer struct {
	events []transitionEvent
}

type transitionEvent struct {
	from, to Kind
	index    int
	value    Value
}

func (r *recordingTracer) ArrayTransition(from, to Kind, index int, value Value) {
	r.events = append(r.events, transitionEvent{from, to, index, value})
}

func TestTransition_ConstantIntWidensOnDoubleWrite(t *testing.T) {
	rec := &recordingTracer{}
	a := FromInts([]int32{1, 2, 3}, WithTracer(rec))

	require.NoError(t, a.Set(1, Double(2.5)))

	require.Equal(t, KindZeroBasedDouble, a.Kind())
	require.Equal(t, []Value{Double(1), Double(2.5), Double(3)}, a.ToValues())

	require.Len(t, rec.events, 1)
	require.Equal(t, transitionEvent{
		from:  KindConstantInt,
		to:    KindZeroBasedDouble,
		index: 1,
		value: Double(2.5),
	}, rec.events[0])
}

func TestTransition_NeverNarrows(t *testing.T) {
	a := FromInts([]int32{1, 2, 3})
	require.NoError(t, a.Set(0, Double(0.5)))
	require.Equal(t, KindZeroBasedDouble, a.Kind())

	// Integral-valued double writes must not re-narrow to int storage.
	for i := 0; i < 3; i++ {
		require.NoError(t, a.Set(i, Double(float64(i))))
		require.Equal(t, KindZeroBasedDouble, a.Kind())
	}

	require.NoError(t, a.Set(0, Object("x")))
	require.Equal(t, KindZeroBasedObject, a.Kind())

	// Numeric writes keep the object representation.
	require.NoError(t, a.Set(0, Int(1)))
	require.Equal(t, KindZeroBasedObject, a.Kind())
}

func TestTransition_HolesDimensionSticks(t *testing.T) {
	a := FromInts([]int32{1, 2, 3})
	require.NoError(t, a.Delete(1))
	require.Equal(t, KindHolesInt, a.Kind())

	// Filling the hole back in does not revert to dense.
	require.NoError(t, a.Set(1, Int(2)))
	require.Equal(t, KindHolesInt, a.Kind())
	require.Equal(t, Int(2), a.Get(1))
}

func TestTransition_GapWriteGoesToHoles(t *testing.T) {
	a := New()
	require.NoError(t, a.Set(3, Int(7)))
	require.Equal(t, KindHolesInt, a.Kind())
	require.Equal(t, 4, a.Length())
	require.False(t, a.Has(0))
	require.False(t, a.Has(2))
	require.Equal(t, Int(7), a.Get(3))
}

func TestTransition_DenseAppendStaysDense(t *testing.T) {
	a := New()
	for i := 0; i < 100; i++ {
		require.NoError(t, a.Set(i, Int(int32(i))))
	}
	require.Equal(t, KindZeroBasedInt, a.Kind())
	require.Equal(t, 100, a.Length())
	for i := 0; i < 100; i++ {
		require.Equal(t, Int(int32(i)), a.Get(i))
	}
}

func TestTransition_IntHoleSentinelWrite(t *testing.T) {
	// Writing the int hole sentinel value must land in double storage so
	// it cannot masquerade as a hole later.
	a := New()
	require.NoError(t, a.Set(0, Int(math.MinInt32)))
	require.Equal(t, KindZeroBasedDouble, a.Kind())
	require.Equal(t, float64(math.MinInt32), a.Get(0).Float())
	require.True(t, a.Has(0))
}

func TestTransition_IntHoleSentinelLiteralCollision(t *testing.T) {
	// A literal may contain the sentinel as a value; converting it into
	// a holes representation must widen to double instead.
	a := FromInts([]int32{math.MinInt32, 5})
	require.NoError(t, a.Delete(1))
	require.Equal(t, KindHolesDouble, a.Kind())
	require.True(t, a.Has(0))
	require.False(t, a.Has(1))
	require.Equal(t, float64(math.MinInt32), a.Get(0).Float())
}

func TestTransition_IntegrityLevelSurvives(t *testing.T) {
	a := FromInts([]int32{1, 2, 3})
	a.Seal()
	require.NoError(t, a.Set(1, Double(9.5)))
	require.Equal(t, KindZeroBasedDouble, a.Kind())
	require.Equal(t, LevelSealed, a.IntegrityLevel())
}

func TestTransition_TraceSequence(t *testing.T) {
	rec := &recordingTracer{}
	a := New(WithTracer(rec))

	require.NoError(t, a.Set(0, Int(1)))      // empty -> dense int
	require.NoError(t, a.Set(1, Double(0.5))) // dense int -> dense double
	require.NoError(t, a.Delete(0))           // dense double -> holes double
	require.NoError(t, a.Delete(1))           // all holes -> constant-empty

	kinds := make([][2]Kind, 0, len(rec.events))
	for _, e := range rec.events {
		kinds = append(kinds, [2]Kind{e.from, e.to})
	}
	require.Equal(t, [][2]Kind{
		{KindConstantEmpty, KindZeroBasedInt},
		{KindZeroBasedInt, KindZeroBasedDouble},
		{KindZeroBasedDouble, KindHolesDouble},
		{KindHolesDouble, KindConstantEmpty},
	}, kinds)
}

func TestWithCapacity_PreallocatesOnFirstWrite(t *testing.T) {
	a := New(WithCapacity(64))
	require.NoError(t, a.Set(0, Int(1)))
	require.Equal(t, KindZeroBasedInt, a.Kind())
	require.GreaterOrEqual(t, cap(a.ints), 64)
}
