package fixnum_test

import (
	"testing"

	"github.com/katalvlaran/fixwidth/fixnum"
)

// BenchmarkAdd_Wrap measures the wrapping fast path (no allocation).
func BenchmarkAdd_Wrap(b *testing.B) {
	x, _ := fixnum.New(200, fixnum.W8, fixnum.Wrap)
	y, _ := fixnum.New(100, fixnum.W8, fixnum.Wrap)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = fixnum.Add(x, y, fixnum.Wrap)
	}
}

// BenchmarkMul_Wrap measures the scalar-multiply kernel.
func BenchmarkMul_Wrap(b *testing.B) {
	x, _ := fixnum.New(14, fixnum.W8, fixnum.Wrap)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = fixnum.Mul(x, 20, fixnum.Wrap)
	}
}
