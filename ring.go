package vspace

import (
	"golang.org/x/exp/constraints"
)

// Ring is the constraint satisfied by the scalar types usable as the ground
// ring of a Module: the built in signed integer and floating point types.
// Membership grants native addition, multiplication, negation and conversion
// from integer constants. Unsigned integers are excluded because -1 is not
// constructible in them, which breaks negation by scaling.
type Ring interface {
	constraints.Signed | constraints.Float
}

// Field is the constraint satisfied by ground rings that also have
// multiplicative inverses for every nonzero element: the floating point
// types. Division follows IEEE 754 semantics, including division by zero
// producing an infinity or NaN.
type Field interface {
	constraints.Float
}
