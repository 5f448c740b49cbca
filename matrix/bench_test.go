// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the kernels driven by the
// factorization loop, using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/symnmf/matrix"
)

// benchSizes are the point counts to benchmark (n×n similarity, n×k factor).
var benchSizes = []int{128, 256, 512}

// benchRank is the factor width used by the n×k kernels.
const benchRank = 8

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkV []float64
	sinkF float64
)

func mustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		tb.Fatal(err)
	}

	return m
}

// fillDenseRand fills m with values in [0,1) from a seeded source.
func fillDenseRand(tb testing.TB, m *matrix.Dense, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	if err := m.Apply(func(_, _ int, _ float64) float64 { return rng.Float64() }); err != nil {
		tb.Fatal(err)
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("WH_n=%d", n), func(b *testing.B) {
			W := mustDense(b, n, n)
			H := mustDense(b, n, benchRank)
			fillDenseRand(b, W, 1337)
			fillDenseRand(b, H, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				C, err := matrix.Mul(W, H)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = C
			}
		})
	}
}

func BenchmarkMulTransA(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("HtH_n=%d", n), func(b *testing.B) {
			H := mustDense(b, n, benchRank)
			fillDenseRand(b, H, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				C, err := matrix.MulTransA(H, H)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = C
			}
		})
	}
}

func BenchmarkMulTransB(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("HHt_n=%d", n), func(b *testing.B) {
			H := mustDense(b, n, benchRank)
			fillDenseRand(b, H, 8)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				C, err := matrix.MulTransB(H, H)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = C
			}
		})
	}
}

func BenchmarkSub(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			B := mustDense(b, n, n)
			fillDenseRand(b, A, 11)
			fillDenseRand(b, B, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				C, err := matrix.Sub(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = C
			}
		})
	}
}

func BenchmarkHadamard(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			B := mustDense(b, n, n)
			fillDenseRand(b, A, 1)
			fillDenseRand(b, B, 2)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				C, err := matrix.Hadamard(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = C
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n+8) // rectangular
			fillDenseRand(b, A, 3)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				T, err := matrix.Transpose(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = T
			}
		})
	}
}

func BenchmarkRowSums(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			fillDenseRand(b, A, 5)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s, err := matrix.RowSums(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = s
			}
		})
	}
}

func BenchmarkFrobeniusDistSq(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, benchRank)
			B := mustDense(b, n, benchRank)
			fillDenseRand(b, A, 13)
			fillDenseRand(b, B, 14)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := matrix.FrobeniusDistSq(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}

// BenchmarkAllCloseFallback measures the materializing path for non-*Dense operands.
func BenchmarkAllCloseFallback(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			X := mustDense(b, n, n)
			Y := mustDense(b, n, n)
			fillDenseRand(b, X, 1313)
			fillDenseRand(b, Y, 1313) // same values ⇒ true
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				ok, err := matrix.AllClose(hide{X}, hide{Y}, 1e-9, 1e-12)
				if err != nil || !ok {
					b.Fatalf("AllClose: ok=%v err=%v", ok, err)
				}
			}
		})
	}
}
