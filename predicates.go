package algocomplex

import "github.com/cwbudde/algo-complex/internal/scalar"

// IsNaN reports whether either component of z is NaN and neither is an
// infinity, matching the convention of math/cmplx.
func (z Complex[T]) IsNaN() bool {
	switch {
	case scalar.IsInf(z.Re) || scalar.IsInf(z.Im):
		return false
	case scalar.IsNaN(z.Re) || scalar.IsNaN(z.Im):
		return true
	}

	return false
}

// IsInf reports whether either component of z is an infinity.
func (z Complex[T]) IsInf() bool {
	return scalar.IsInf(z.Re) || scalar.IsInf(z.Im)
}

// NaN returns a complex "not-a-number" value: NaN in both components.
func NaN[T Float]() Complex[T] {
	nan := scalar.NaN[T]()

	return Complex[T]{Re: nan, Im: nan}
}

// Inf returns a complex infinity: +Inf in both components.
func Inf[T Float]() Complex[T] {
	inf := scalar.Inf[T](1)

	return Complex[T]{Re: inf, Im: inf}
}
