// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/gfaster/Peroxide/matrix"
)

func benchDense(b *testing.B, r, c int, seed int64) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		b.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}
	rng := rand.New(rand.NewSource(seed))
	data := m.RawData()
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}

	return m
}

func BenchmarkMulDense_64(b *testing.B) {
	x := benchDense(b, 64, 64, 1)
	y := benchDense(b, 64, 64, 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.MulDense(x, y); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMulDense_256(b *testing.B) {
	x := benchDense(b, 256, 256, 3)
	y := benchDense(b, 256, 256, 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.MulDense(x, y); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAdd_256(b *testing.B) {
	x := benchDense(b, 256, 256, 5)
	y := benchDense(b, 256, 256, 6)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Add(x, y); err != nil {
			b.Fatal(err)
		}
	}
}
