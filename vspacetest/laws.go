package vspacetest

import (
	"math"
	"testing"

	"github.com/evilsocket/islazy/log"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/evilsocket/vspace"
)

// CheckModule verifies the module laws on generated cases: commutativity of
// addition, zero scaling, distributivity of the scalar action over addition,
// left and right action equivalence, negation and subtraction consistency.
func CheckModule[V any, S vspace.Ring](t *testing.T, m vspace.Module[V, S], cfg Config, genV Gen[V], genS Gen[S], eq Eq[V]) {
	r := cfg.rng()
	n := cfg.cases()

	log.Debug("checking module laws on %d cases", n)

	for i := 0; i < n; i++ {
		a := genS(r)
		v1 := genV(r)
		v2 := genV(r)

		require.True(t, eq(m.Add(v1, v2), m.Add(v2, v1)),
			"addition must be commutative: v1=%v v2=%v", v1, v2)

		require.True(t, eq(m.Scale(a, m.Zero()), m.Zero()),
			"scaling the zero vector must yield the zero vector: a=%v", a)

		require.True(t, eq(m.Scale(a, m.Add(v1, v2)), m.Add(m.Scale(a, v1), m.Scale(a, v2))),
			"the scalar action must distribute over addition: a=%v v1=%v v2=%v", a, v1, v2)

		require.True(t, eq(vspace.Scale(m, a, v1), vspace.ScaleBy(m, v1, a)),
			"left and right scalar actions must agree: a=%v v=%v", a, v1)

		require.True(t, eq(vspace.Negate(m, v1), m.Scale(S(-1), v1)),
			"negation must equal scaling by -1: v=%v", v1)

		require.True(t, eq(vspace.Sub(m, v1, v2), m.Add(v1, vspace.Negate(m, v2))),
			"subtraction must equal adding the negation: v1=%v v2=%v", v1, v2)
	}
}

// CheckVectorSpace verifies the scalar division law on generated cases with
// nonzero scalars: dividing by a must equal scaling by 1/a.
func CheckVectorSpace[V any, S vspace.Field](t *testing.T, m vspace.Module[V, S], cfg Config, genV Gen[V], genS Gen[S], eq Eq[V]) {
	r := cfg.rng()
	n := cfg.cases()

	log.Debug("checking vector space laws on %d cases", n)

	for i := 0; i < n; i++ {
		a := genS(r)
		if a == S(0) {
			continue
		}
		v := genV(r)

		require.True(t, eq(vspace.Div(m, v, a), m.Scale(S(1)/a, v)),
			"division must equal scaling by the inverse: a=%v v=%v", a, v)
	}
}

// CheckInnerProduct verifies symmetry and bilinearity of the inner product
// on generated cases.
func CheckInnerProduct[V any, S vspace.Ring](t *testing.T, ip vspace.InnerProductSpace[V, S], cfg Config, genV Gen[V], genS Gen[S], eqS Eq[S]) {
	r := cfg.rng()
	n := cfg.cases()

	log.Debug("checking inner product laws on %d cases", n)

	for i := 0; i < n; i++ {
		a := genS(r)
		v1 := genV(r)
		v2 := genV(r)
		v3 := genV(r)

		require.True(t, eqS(ip.Dot(v1, v2), ip.Dot(v2, v1)),
			"the inner product must be symmetric: v1=%v v2=%v", v1, v2)

		require.True(t, eqS(ip.Dot(ip.Add(v1, v2), v3), ip.Dot(v1, v3)+ip.Dot(v2, v3)),
			"the inner product must be additive in its first argument: v1=%v v2=%v v3=%v", v1, v2, v3)

		require.True(t, eqS(ip.Dot(ip.Scale(a, v1), v2), a*ip.Dot(v1, v2)),
			"the inner product must be homogeneous in its first argument: a=%v v1=%v v2=%v", a, v1, v2)
	}
}

// CheckNormedSpace verifies norm homogeneity, the triangle inequality and
// the behavior of Normalize: unit norm for nonzero vectors, a checked error
// for the zero vector.
func CheckNormedSpace[V any, S vspace.Field](t *testing.T, ns vspace.NormedSpace[V, S], cfg Config, genV Gen[V], genS Gen[S], eqS Eq[S]) {
	r := cfg.rng()
	n := cfg.cases()

	log.Debug("checking normed space laws on %d cases", n)

	for i := 0; i < n; i++ {
		a := genS(r)
		v1 := genV(r)
		v2 := genV(r)

		require.True(t, eqS(ns.Norm(ns.Scale(a, v1)), S(math.Abs(float64(a)))*ns.Norm(v1)),
			"the norm must be homogeneous: a=%v v=%v", a, v1)

		lhs := float64(ns.Norm(ns.Add(v1, v2)))
		rhs := float64(ns.Norm(v1)) + float64(ns.Norm(v2))
		require.True(t, lhs <= rhs || scalar.EqualWithinAbsOrRel(lhs, rhs, 1e-6, 1e-6),
			"the triangle inequality must hold: v1=%v v2=%v norm(v1+v2)=%v norm(v1)+norm(v2)=%v", v1, v2, lhs, rhs)

		if ns.Norm(v1) != S(0) {
			u, err := vspace.Normalize(ns, v1)
			require.NoError(t, err, "normalizing a nonzero vector must not fail: v=%v", v1)
			require.True(t, eqS(ns.Norm(u), S(1)),
				"a normalized vector must have unit norm: v=%v normalized=%v", v1, u)
		}
	}

	_, err := vspace.Normalize(ns, ns.Zero())
	require.ErrorIs(t, err, vspace.ErrZeroVectorNormalization,
		"normalizing the zero vector must fail with the dedicated error")
}
