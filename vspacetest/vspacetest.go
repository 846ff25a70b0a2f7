/*
Package vspacetest verifies the algebraic laws of the vspace capability
contracts on arbitrary generated values.

The package exists so that conforming types outside this module can assert
their own conformance the same way the primitive scalar instances do: build
generators for the vector and scalar types, pick the right equality (exact
for integer ground rings, tolerance based for floating ones) and run the
Check functions from a test.
*/
package vspacetest

import (
	"math/rand"
	"time"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/evilsocket/vspace"
)

// Gen generates one arbitrary value from the given source.
type Gen[T any] func(r *rand.Rand) T

// Eq reports whether two values are equal for the purpose of law checking.
type Eq[T any] func(a, b T) bool

// Config controls how many cases each law is checked on and how the random
// source is seeded.
type Config struct {
	// Cases is the number of generated cases per law, 0 means the
	// default of 100.
	Cases int
	// Seed for the random source, 0 means the current time.
	Seed int64
}

// DefaultConfig returns the configuration used when there is no reason to
// deviate: 100 cases per law, time based seed.
func DefaultConfig() Config {
	return Config{Cases: 100}
}

func (c Config) cases() int {
	if c.Cases <= 0 {
		return 100
	}
	return c.Cases
}

func (c Config) rng() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().Unix()
	}
	return rand.New(rand.NewSource(seed))
}

// ScalarGen returns a generator of ring values roughly uniform on
// [-scale, scale]. The scale must fit the range of S, integer values are
// truncated.
func ScalarGen[S vspace.Ring](scale float64) Gen[S] {
	return func(r *rand.Rand) S {
		return S((r.Float64()*2 - 1) * scale)
	}
}

// EqExact compares values with ==, the right equality for integer ground
// rings.
func EqExact[T comparable]() Eq[T] {
	return func(a, b T) bool {
		return a == b
	}
}

// EqTol compares scalars within the given tolerance, absolute or relative,
// the right equality for floating ground rings.
func EqTol[S vspace.Ring](tol float64) Eq[S] {
	return func(a, b S) bool {
		return scalar.EqualWithinAbsOrRel(float64(a), float64(b), tol, tol)
	}
}
