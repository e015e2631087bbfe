package algocomplex

// FromComplex128 converts a native complex128 into a Complex[T], rounding
// both components to the element type. At T = float64 the conversion is
// exact; at T = float32 each component is rounded to nearest independently.
func FromComplex128[T Float](z complex128) Complex[T] {
	return Complex[T]{Re: T(real(z)), Im: T(imag(z))}
}

// Complex128 returns z as a native complex128, widening float32 components
// exactly. The bridge makes z reachable by Go's infix complex operators and
// by math/cmplx.
func (z Complex[T]) Complex128() complex128 {
	return complex(float64(z.Re), float64(z.Im))
}
