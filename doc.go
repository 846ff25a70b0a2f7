/*
Package vspace defines a minimal hierarchy of algebraic capability contracts
for vector types, together with conformances for the primitive numeric
scalars:

	- Module: abelian group under addition with a linear scalar action
	  of a ground ring
	- VectorSpace: module whose ground ring is a field
	- InnerProductSpace: module with a symmetric bilinear scalar product
	- NormedSpace: inner product space with a length function

Each capability is a generic interface parameterized by the vector type V and
its ground ring S. Conforming types implement only the minimal operations;
negation, subtraction, the flipped scalar action, division, the euclidean
norm and normalization are derived by package level functions that accept any
conforming value.

The primitive scalar instances (Int, Int64, Float32, Float64) treat each
numeric type as a one dimensional vector over itself. Integer instances stop
at InnerProductSpace: their ground ring has no multiplicative inverses, so
scalar division over them is rejected at compile time.

All operations are pure. Arithmetic edge cases (integer wrap around, IEEE
NaN and infinity propagation, division by zero) keep the semantics of the
underlying scalar type. The only error this package produces itself is
ErrZeroVectorNormalization.

The laws every conforming type must satisfy are documented on the interfaces
and verified on generated values by the vspacetest package.
*/
package vspace
