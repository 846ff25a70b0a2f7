package vspace

// Module is the contract of an R-module: values of type V form an abelian
// group under Add, and the ground ring S acts linearly on them through
// Scale. Conforming types supply these three operations only, everything
// else is derived by the package level functions.
//
// Every conforming type must satisfy the module laws:
//
//	m.Add(a, b)              == m.Add(b, a)
//	m.Scale(s, m.Zero())     == m.Zero()
//	m.Scale(s, m.Add(a, b))  == m.Add(m.Scale(s, a), m.Scale(s, b))
//
// The laws are not checked at runtime, the vspacetest package verifies them
// on generated values.
type Module[V any, S Ring] interface {
	// Zero returns the additive identity of V.
	Zero() V
	// Add returns the sum of two vectors.
	Add(a, b V) V
	// Scale returns the left scalar action s * v.
	Scale(s S, v V) V
}

// Zero returns the additive identity of the module m.
func Zero[V any, S Ring](m Module[V, S]) V {
	return m.Zero()
}

// Add returns the sum of two vectors of the module m.
func Add[V any, S Ring](m Module[V, S], a, b V) V {
	return m.Add(a, b)
}

// Scale returns the left scalar action s * v.
func Scale[V any, S Ring](m Module[V, S], s S, v V) V {
	return m.Scale(s, v)
}

// ScaleBy returns the right scalar action v * s, the flipped form of Scale.
// A conforming type implements the single Scale method and gets both forms,
// the two are equal by law.
func ScaleBy[V any, S Ring](m Module[V, S], v V, s S) V {
	return m.Scale(s, v)
}

// Negate returns the additive inverse of v, derived as (-1) * v.
func Negate[V any, S Ring](m Module[V, S], v V) V {
	return m.Scale(S(-1), v)
}

// Sub returns the difference of two vectors, derived as a + (-b).
func Sub[V any, S Ring](m Module[V, S], a, b V) V {
	return m.Add(a, Negate(m, b))
}

// Sum folds Add over its arguments starting from the zero vector, so that
// Sum(m) is m.Zero().
func Sum[V any, S Ring](m Module[V, S], vs ...V) V {
	total := m.Zero()
	for _, v := range vs {
		total = m.Add(total, v)
	}
	return total
}
