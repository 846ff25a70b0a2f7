package vspace

import (
	"math"
)

// scalarRing treats a primitive scalar type as a one dimensional module
// over itself: addition is the native addition of S and the scalar action
// is the native multiplication, which is also the inner product.
type scalarRing[S Ring] struct{}

func (scalarRing[S]) Zero() S {
	return 0
}

func (scalarRing[S]) Add(a, b S) S {
	return a + b
}

func (scalarRing[S]) Scale(s, v S) S {
	return s * v
}

func (scalarRing[S]) Dot(a, b S) S {
	return a * b
}

// scalarField extends scalarRing with a length function, making the
// floating point scalars full normed spaces over themselves.
type scalarField[S Field] struct {
	scalarRing[S]
}

// Norm of a scalar is its absolute value: the one dimensional reading of
// sqrt(dot(v, v)) that does not overflow for large v.
func (scalarField[S]) Norm(v S) S {
	return S(math.Abs(float64(v)))
}

// ScalarRing returns the module and inner product conformance of a
// primitive ring type over itself. Integer ground rings have no
// multiplicative inverses, so the result deliberately stops short of
// VectorSpace: scalar division over an integer instance does not compile.
func ScalarRing[S Ring]() InnerProductSpace[S, S] {
	return scalarRing[S]{}
}

// ScalarField returns the full normed space conformance of a primitive
// field type over itself.
func ScalarField[S Field]() NormedSpace[S, S] {
	return scalarField[S]{}
}

// Conformances of the built in numeric scalars, each a one dimensional
// vector over its own type. Int and Int64 are modules with an inner
// product, Float32 and Float64 are full normed spaces.
var (
	Int     InnerProductSpace[int, int]     = ScalarRing[int]()
	Int64   InnerProductSpace[int64, int64] = ScalarRing[int64]()
	Float32 NormedSpace[float32, float32]   = ScalarField[float32]()
	Float64 NormedSpace[float64, float64]   = ScalarField[float64]()
)
