package vspace

// InnerProductSpace is a Module with a symmetric bilinear scalar valued
// product. Dot has no derived form: every conforming type supplies its own.
//
// Every conforming type must satisfy the inner product laws:
//
//	ip.Dot(a, b)                 == ip.Dot(b, a)
//	ip.Dot(ip.Add(a, b), c)      == ip.Dot(a, c) + ip.Dot(b, c)
//	ip.Dot(ip.Scale(s, a), b)    == s * ip.Dot(a, b)
type InnerProductSpace[V any, S Ring] interface {
	Module[V, S]

	// Dot returns the inner product of two vectors.
	Dot(a, b V) S
}

// Dot returns the inner product of two vectors of the space ip.
func Dot[V any, S Ring](ip InnerProductSpace[V, S], a, b V) S {
	return ip.Dot(a, b)
}

// Project returns the orthogonal projection of u onto v, the vector
// (dot(u, v) / dot(v, v)) * v. If v is the zero vector the scalar division
// inherits the field semantics for division by zero.
func Project[V any, S Field](ip InnerProductSpace[V, S], u, v V) V {
	return ip.Scale(ip.Dot(u, v)/ip.Dot(v, v), v)
}
