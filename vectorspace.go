package vspace

// VectorSpace is a Module whose ground ring is a Field. It adds no methods
// of its own: a module over a field is automatically a vector space, and
// scalar division is fully determined by the module structure (see Div).
// The constraint on S is what rejects, at compile time, division over a
// ground ring without multiplicative inverses.
type VectorSpace[V any, S Field] interface {
	Module[V, S]
}

// Div returns the scalar division of v by a, defined as (1/a) * v. There is
// no override point: conforming types cannot supply a division that drifts
// from their own scalar action. Division by zero is not guarded and inherits
// the IEEE semantics of the scalar field, producing an infinity or NaN.
func Div[V any, S Field](m Module[V, S], v V, a S) V {
	return m.Scale(S(1)/a, v)
}
