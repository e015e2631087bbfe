package algocomplex

import (
	"testing"

	"github.com/cwbudde/algo-complex/internal/scalar"
)

func TestIsNaN(t *testing.T) {
	t.Parallel()

	t.Run("float32", func(t *testing.T) {
		t.Parallel()
		testIsNaN[float32](t)
	})

	t.Run("float64", func(t *testing.T) {
		t.Parallel()
		testIsNaN[float64](t)
	})
}

func testIsNaN[T Float](t *testing.T) {
	t.Helper()

	nan := scalar.NaN[T]()
	inf := scalar.Inf[T](1)

	cases := []struct {
		name string
		z    Complex[T]
		want bool
	}{
		{"zero", Zero[T](), false},
		{"finite", New[T](1, -2), false},
		{"nan re", New(nan, 0), true},
		{"nan im", New(0, nan), true},
		{"nan both", NaN[T](), true},
		{"inf re", New(inf, 0), false},
		// An infinite component outranks NaN, as in math/cmplx.
		{"nan re inf im", New(nan, inf), false},
		{"inf re nan im", New(inf, nan), false},
	}

	for _, tc := range cases {
		if got := tc.z.IsNaN(); got != tc.want {
			t.Errorf("%s: IsNaN(%v) = %v, want %v", tc.name, tc.z, got, tc.want)
		}
	}
}

func TestIsInf(t *testing.T) {
	t.Parallel()

	t.Run("float32", func(t *testing.T) {
		t.Parallel()
		testIsInf[float32](t)
	})

	t.Run("float64", func(t *testing.T) {
		t.Parallel()
		testIsInf[float64](t)
	})
}

func testIsInf[T Float](t *testing.T) {
	t.Helper()

	nan := scalar.NaN[T]()

	cases := []struct {
		name string
		z    Complex[T]
		want bool
	}{
		{"zero", Zero[T](), false},
		{"finite", New[T](1, -2), false},
		{"+inf re", New(scalar.Inf[T](1), 0), true},
		{"-inf im", New(0, scalar.Inf[T](-1)), true},
		{"inf both", Inf[T](), true},
		{"nan only", New(nan, nan), false},
		{"inf re nan im", New(scalar.Inf[T](1), nan), true},
	}

	for _, tc := range cases {
		if got := tc.z.IsInf(); got != tc.want {
			t.Errorf("%s: IsInf(%v) = %v, want %v", tc.name, tc.z, got, tc.want)
		}
	}
}

func TestNaNInfConstructors(t *testing.T) {
	t.Parallel()

	t.Run("float32", func(t *testing.T) {
		t.Parallel()
		testNaNInfConstructors[float32](t)
	})

	t.Run("float64", func(t *testing.T) {
		t.Parallel()
		testNaNInfConstructors[float64](t)
	})
}

func testNaNInfConstructors[T Float](t *testing.T) {
	t.Helper()

	n := NaN[T]()
	if !scalar.IsNaN(n.Re) || !scalar.IsNaN(n.Im) {
		t.Errorf("NaN() = %v, want NaN components", n)
	}
	if !n.IsNaN() {
		t.Errorf("NaN().IsNaN() = false, want true")
	}

	inf := Inf[T]()
	if !scalar.IsInf(inf.Re) || !scalar.IsInf(inf.Im) {
		t.Errorf("Inf() = %v, want infinite components", inf)
	}
	if !inf.IsInf() {
		t.Errorf("Inf().IsInf() = false, want true")
	}
}
