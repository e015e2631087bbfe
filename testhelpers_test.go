package algocomplex

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// Shared test helper functions used across multiple test files

const (
	testTol64 = 1e-10
	testTol32 = 1e-5
)

func assertApproxTolf[T Float](t *testing.T, got, want Complex[T], tol float64, format string, args ...any) {
	t.Helper()

	if !scalar.EqualWithinAbs(float64(got.Re), float64(want.Re), tol) ||
		!scalar.EqualWithinAbs(float64(got.Im), float64(want.Im), tol) {
		t.Fatalf(format+": got %v want %v", append(args, got, want)...)
	}
}

// randomComplex returns n values with both components drawn uniformly from
// [-1, 1). The range keeps triple products well inside float32 territory so
// the same tolerances hold at both precisions.
func randomComplex[T Float](n int, seed int64) []Complex[T] {
	rnd := rand.New(rand.NewSource(seed))

	out := make([]Complex[T], n)
	for i := range out {
		out[i] = New(T(rnd.Float64()*2-1), T(rnd.Float64()*2-1))
	}

	return out
}

// randomScalars returns n element values drawn uniformly from [-1, 1).
func randomScalars[T Float](n int, seed int64) []T {
	rnd := rand.New(rand.NewSource(seed))

	out := make([]T, n)
	for i := range out {
		out[i] = T(rnd.Float64()*2 - 1)
	}

	return out
}
