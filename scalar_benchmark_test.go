package vspace

import (
	"math/rand"
	"testing"
	"time"

	"gonum.org/v1/gonum/blas/blas32"
)

func randomPair() (float64, float64) {
	s := rand.NewSource(time.Now().Unix())
	r := rand.New(s)

	return r.Float64()*2 - 1, r.Float64()*2 - 1
}

func scalarDotWithSize(b *testing.B, size int) {
	adata := make([]float32, size)
	bdata := make([]float32, size)

	s := rand.NewSource(time.Now().Unix())
	r := rand.New(s)

	for i := 0; i < size; i++ {
		adata[i] = r.Float32()
		bdata[i] = r.Float32()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		acc := Float32.Zero()
		for j := 0; j < size; j++ {
			acc = Float32.Add(acc, Float32.Dot(adata[j], bdata[j]))
		}
		_ = acc
	}
}

func blasDotWithSize(b *testing.B, size int) {
	adata := make([]float32, size)
	bdata := make([]float32, size)

	s := rand.NewSource(time.Now().Unix())
	r := rand.New(s)

	for i := 0; i < size; i++ {
		adata[i] = r.Float32()
		bdata[i] = r.Float32()
	}

	va := blas32.Vector{N: size, Inc: 1, Data: adata}
	vb := blas32.Vector{N: size, Inc: 1, Data: bdata}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = blas32.Dot(va, vb)
	}
}

func BenchmarkFloat64Negate(b *testing.B) {
	v, _ := randomPair()

	for i := 0; i < b.N; i++ {
		_ = Negate(Float64, v)
	}
}

func BenchmarkFloat64Sub(b *testing.B) {
	v, w := randomPair()

	for i := 0; i < b.N; i++ {
		_ = Sub(Float64, v, w)
	}
}

func BenchmarkFloat64Div(b *testing.B) {
	v, w := randomPair()

	for i := 0; i < b.N; i++ {
		_ = Div(Float64, v, w)
	}
}

func BenchmarkFloat64Norm(b *testing.B) {
	v, _ := randomPair()

	for i := 0; i < b.N; i++ {
		_ = Float64.Norm(v)
	}
}

func BenchmarkFloat64Normalize(b *testing.B) {
	v, _ := randomPair()

	for i := 0; i < b.N; i++ {
		_, _ = Normalize(Float64, v)
	}
}

func BenchmarkScalarDot128(b *testing.B) {
	scalarDotWithSize(b, 128)
}

func BenchmarkScalarDot256(b *testing.B) {
	scalarDotWithSize(b, 256)
}

func BenchmarkScalarDot512(b *testing.B) {
	scalarDotWithSize(b, 512)
}

func BenchmarkScalarDot1024(b *testing.B) {
	scalarDotWithSize(b, 1024)
}

func BenchmarkBLAS32Dot128(b *testing.B) {
	blasDotWithSize(b, 128)
}

func BenchmarkBLAS32Dot256(b *testing.B) {
	blasDotWithSize(b, 256)
}

func BenchmarkBLAS32Dot512(b *testing.B) {
	blasDotWithSize(b, 512)
}

func BenchmarkBLAS32Dot1024(b *testing.B) {
	blasDotWithSize(b, 1024)
}
