package vspace

import (
	"errors"
	"math"
)

// ErrZeroVectorNormalization is returned by Normalize when the norm of the
// input is exactly the additive identity of the scalar field: the zero
// vector has no direction to preserve.
var ErrZeroVectorNormalization = errors.New("cannot normalize the zero vector")

// NormedSpace is an InnerProductSpace over a Field with a length function.
// Conforming types with no better way to measure length implement Norm by
// delegating to EuclideanNorm.
//
// Every conforming type must satisfy the norm laws:
//
//	ns.Norm(ns.Scale(s, v))  == |s| * ns.Norm(v)
//	ns.Norm(ns.Add(a, b))    <= ns.Norm(a) + ns.Norm(b)
type NormedSpace[V any, S Field] interface {
	InnerProductSpace[V, S]
	VectorSpace[V, S]

	// Norm returns the length of v.
	Norm(v V) S
}

// Norm returns the length of a vector of the space ns.
func Norm[V any, S Field](ns NormedSpace[V, S], v V) S {
	return ns.Norm(v)
}

// EuclideanNorm returns the canonical length sqrt(dot(v, v)). It is the
// default body for the Norm method of conforming types.
func EuclideanNorm[V any, S Field](ip InnerProductSpace[V, S], v V) S {
	return S(math.Sqrt(float64(ip.Dot(v, v))))
}

// Normalize returns the unit length vector pointing in the direction of v.
// If the norm of v is exactly zero it returns the zero vector and
// ErrZeroVectorNormalization.
func Normalize[V any, S Field](ns NormedSpace[V, S], v V) (V, error) {
	nv := ns.Norm(v)
	if nv == S(0) {
		return ns.Zero(), ErrZeroVectorNormalization
	}
	return Div[V, S](ns, v, nv), nil
}

// CosineSimilarity returns dot(a, b) / (norm(a) * norm(b)), the cosine of
// the angle between two vectors: 1 for the same direction, 0 for orthogonal
// vectors, -1 for opposite directions. If either vector has zero norm the
// similarity is 0.
func CosineSimilarity[V any, S Field](ns NormedSpace[V, S], a, b V) S {
	na, nb := ns.Norm(a), ns.Norm(b)
	if na == S(0) || nb == S(0) {
		return S(0)
	}
	return ns.Dot(a, b) / (na * nb)
}
