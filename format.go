package algocomplex

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-complex/internal/scalar"
)

// String renders z as "{re} + {im}i" with the imaginary part shown as its
// absolute value behind an explicit sign separator. The separator is "-"
// exactly when Im < 0, so +0, -0, and NaN imaginary parts all take the "+"
// branch and formatting is total. Components are rendered by the default
// formatter at the element's own precision.
func (z Complex[T]) String() string {
	sep := " + "
	if z.Im < 0 {
		sep = " - "
	}

	return scalar.Format(z.Re) + sep + scalar.Format(scalar.Abs(z.Im)) + "i"
}

// Format implements fmt.Formatter.
//
// The %v verb produces the String form, %+v an annotated {Re:…, Im:…} pair,
// and %#v a Go-syntax-like value. The floating-point verbs e, E, f, F, g,
// and G apply to both components with any width, precision, and flags
// carried over, keeping the sign-separator layout of String.
func (z Complex[T]) Format(fs fmt.State, verb rune) {
	prec, pOk := fs.Precision()
	if !pOk {
		prec = -1
	}

	width, wOk := fs.Width()
	if !wOk {
		width = -1
	}

	switch verb {
	case 'v':
		if fs.Flag('#') {
			fmt.Fprintf(fs, "%T{Re:%#v, Im:%#v}", z, z.Re, z.Im)
			return
		}

		if fs.Flag('+') {
			fmt.Fprintf(fs, "{Re:%+v, Im:%+v}", z.Re, z.Im)
			return
		}

		verb = 'g'
		prec = -1

		fallthrough
	case 'e', 'E', 'f', 'F', 'g', 'G':
		spec := verbSpec(fs, verb, prec, width)

		sep := " + "
		if z.Im < 0 {
			sep = " - "
		}

		fmt.Fprintf(fs, spec+"%s"+spec+"i", z.Re, sep, scalar.Abs(z.Im))
	default:
		fmt.Fprintf(fs, "%%!%c(%T=%[2]v)", verb, z)
	}
}

// verbSpec reassembles the format directive for a single component from the
// formatting state, so flags, width, and precision survive the dispatch.
func verbSpec(fs fmt.State, verb rune, prec, width int) string {
	var b strings.Builder

	b.WriteByte('%')

	for _, f := range "#0+- " {
		if fs.Flag(int(f)) {
			b.WriteByte(byte(f))
		}
	}

	if width >= 0 {
		fmt.Fprint(&b, width)
	}

	if prec >= 0 {
		b.WriteByte('.')
		fmt.Fprint(&b, prec)
	}

	b.WriteRune(verb)

	return b.String()
}
