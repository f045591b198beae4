package matrix_test

import (
	"testing"

	"github.com/katalvlaran/numlab/matrix"
)

// benchSquare builds an n×n Dense filled with predictable values.
func benchSquare(b *testing.B, n int) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatalf("NewDense: %v", err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			_ = m.Set(i, j, float64(i*n+j%7))
		}
	}

	return m
}

// BenchmarkMul_Dense64 benchmarks the flat fast path on 64×64 operands.
func BenchmarkMul_Dense64(b *testing.B) {
	x := benchSquare(b, 64)
	y := benchSquare(b, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Mul(x, y); err != nil {
			b.Fatalf("Mul failed: %v", err)
		}
	}
}

// BenchmarkMul_Fallback64 benchmarks the At/Set path on 64×64 operands.
func BenchmarkMul_Fallback64(b *testing.B) {
	x := benchSquare(b, 64)
	y := benchSquare(b, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Mul(hide{x}, hide{y}); err != nil {
			b.Fatalf("Mul failed: %v", err)
		}
	}
}

// BenchmarkAdd_Dense256 benchmarks element-wise addition.
func BenchmarkAdd_Dense256(b *testing.B) {
	x := benchSquare(b, 256)
	y := benchSquare(b, 256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Add(x, y); err != nil {
			b.Fatalf("Add failed: %v", err)
		}
	}
}
