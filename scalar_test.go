package vspace

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Every integer width in the ring constraint can be built through
// ScalarRing, the named instances just cover the common ones. There is no
// VectorSpace over any of them: Div over an integer scalar does not
// compile, the rejection happens in the type system rather than at
// runtime.
func TestScalarRingOtherWidths(t *testing.T) {
	i32 := ScalarRing[int32]()

	if got := i32.Add(5, 7); got != 12 {
		t.Fatalf("expected 5 + 7 == 12, got %v", got)
	} else if got := i32.Dot(3, 6); got != 18 {
		t.Fatalf("expected dot(3, 6) == 18, got %v", got)
	} else if got := Negate(i32, int32(42)); got != -42 {
		t.Fatalf("expected negation of 42 to be -42, got %v", got)
	}
}

func TestScalarFieldConstructor(t *testing.T) {
	f64 := ScalarField[float64]()

	nv, err := Normalize(f64, 4.0)
	require.NoError(t, err)
	require.Equal(t, 1.0, nv)
	require.Equal(t, 5.0, f64.Norm(-5.0))
}

// Integer overflow keeps the wrap around semantics of the scalar type, the
// module layer adds no guard of its own.
func TestIntInstanceInheritsWrapAround(t *testing.T) {
	var max int64 = 1<<63 - 1

	if got := Add(Int64, max, 1); got != -1<<63 {
		t.Fatalf("expected the native wrap around, got %v", got)
	}
}

func TestInstancesAreStateless(t *testing.T) {
	a := ScalarField[float64]()
	b := ScalarField[float64]()

	require.Equal(t, a, b)
	require.Equal(t, 7.0, a.Add(3, b.Add(2, 2)))
}
