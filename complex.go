package algocomplex

import "github.com/cwbudde/algo-complex/internal/scalar"

// Complex is a complex number Re + Im·i with components of element type T.
//
// Both components are public and independent; no canonical form is imposed,
// so -0 and NaN components are stored as given. The zero value is 0 + 0i and
// ready to use. Values compare with ==, which is field-by-field IEEE-754
// equality: a NaN component makes any two values unequal, while -0 and +0
// compare equal. Copying a value is a bitwise duplication of the pair.
type Complex[T Float] struct {
	Re, Im T
}

// New returns the complex number re + im·i.
func New[T Float](re, im T) Complex[T] {
	return Complex[T]{Re: re, Im: im}
}

// Zero returns 0 + 0i, the additive identity.
func Zero[T Float]() Complex[T] {
	return Complex[T]{}
}

// One returns 1 + 0i, the multiplicative identity.
func One[T Float]() Complex[T] {
	return Complex[T]{Re: 1}
}

// I returns 0 + 1i, the imaginary unit. Multiplying by I rotates a value a
// quarter turn counterclockwise: (x + y·i)·i = -y + x·i.
func I[T Float]() Complex[T] {
	return Complex[T]{Im: 1}
}

// Conj returns the complex conjugate (Re, -Im). Conjugation is involutive:
// z.Conj().Conj() has exactly the bits of z.
func (z Complex[T]) Conj() Complex[T] {
	return Complex[T]{Re: z.Re, Im: -z.Im}
}

// NormSq returns |z|² = Re·Re + Im·Im. It avoids the square root of Norm,
// which makes it the better choice for magnitude comparisons and
// probability-like accumulations.
func (z Complex[T]) NormSq() T {
	return z.Re*z.Re + z.Im*z.Im
}

// Norm returns |z| = sqrt(Re·Re + Im·Im), computed with the plain formula at
// the element precision. Components near the overflow threshold can saturate
// the intermediate squares; callers needing a scaled magnitude at such
// extremes should work through math.Hypot on the components instead.
func (z Complex[T]) Norm() T {
	return scalar.Sqrt(z.NormSq())
}

// Add returns the sum z + w.
func (z Complex[T]) Add(w Complex[T]) Complex[T] {
	return Complex[T]{Re: z.Re + w.Re, Im: z.Im + w.Im}
}

// Sub returns the difference z - w.
func (z Complex[T]) Sub(w Complex[T]) Complex[T] {
	return Complex[T]{Re: z.Re - w.Re, Im: z.Im - w.Im}
}

// Mul returns the product z·w:
//
//	(a + b·i)(c + d·i) = (ac - bd) + (ad + bc)·i
func (z Complex[T]) Mul(w Complex[T]) Complex[T] {
	return Complex[T]{
		Re: z.Re*w.Re - z.Im*w.Im,
		Im: z.Re*w.Im + z.Im*w.Re,
	}
}

// Div returns the quotient z / w:
//
//	(a + b·i) / (c + d·i) = ((ac + bd) + (bc - ad)·i) / (c² + d²)
//
// The denominator is not rescaled. Division by 0 + 0i follows IEEE-754
// division-by-zero semantics and yields infinities and/or NaNs in the
// result components rather than an error.
func (z Complex[T]) Div(w Complex[T]) Complex[T] {
	d := w.NormSq()

	return Complex[T]{
		Re: (z.Re*w.Re + z.Im*w.Im) / d,
		Im: (z.Im*w.Re - z.Re*w.Im) / d,
	}
}

// Neg returns -z, the additive inverse (-Re, -Im).
func (z Complex[T]) Neg() Complex[T] {
	return Complex[T]{Re: -z.Re, Im: -z.Im}
}

// Scale returns z·s with both components multiplied by the scalar s.
func (z Complex[T]) Scale(s T) Complex[T] {
	return Complex[T]{Re: z.Re * s, Im: z.Im * s}
}
