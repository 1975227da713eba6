package array

import "testing"

func BenchmarkDenseAppend(b *testing.B) {
	for n := 0; n < b.N; n++ {
		a := New()
		for i := 0; i < 1024; i++ {
			_ = a.Set(i, Int(int32(i)))
		}
	}
}

func BenchmarkDenseOverwrite(b *testing.B) {
	a := New()
	for i := 0; i < 1024; i++ {
		_ = a.Set(i, Int(int32(i)))
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		_ = a.Set(512, Int(7))
	}
}

func BenchmarkWideningTransition(b *testing.B) {
	src := make([]int32, 1024)
	for i := range src {
		src[i] = int32(i)
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		a := FromInts(src)
		_ = a.Set(0, Double(0.5))
	}
}

func BenchmarkHolesWrite(b *testing.B) {
	a := New()
	_ = a.Set(1023, Int(1)) // sparse: holes-int
	b.ResetTimer()
	i := 0
	for n := 0; n < b.N; n++ {
		_ = a.Set(i&1023, Int(int32(i)))
		i++
	}
}

func BenchmarkGet(b *testing.B) {
	a := FromInts(make([]int32, 1024))
	b.ResetTimer()
	i := 0
	for n := 0; n < b.N; n++ {
		_ = a.Get(i & 1023)
		i++
	}
}
