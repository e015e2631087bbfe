// Package scalar wraps the host floating-point primitives in a form generic
// over the element precision. Every helper routes through float64, which is
// exact for float32 arguments, so results match the corresponding math
// function applied at the element's own precision.
package scalar

import (
	"math"
	"strconv"

	"github.com/cwbudde/algo-complex/internal/cxtypes"
)

// Float is a type alias for the element constraint.
// The canonical definition is in internal/cxtypes.
type Float = cxtypes.Float

// Sqrt returns the square root of x at the precision of T.
// Widening to float64, rounding once there, and narrowing back yields the
// correctly rounded float32 result, so no separate 32-bit path is needed.
func Sqrt[T Float](x T) T {
	return T(math.Sqrt(float64(x)))
}

// Abs returns the absolute value of x. Abs(-0) is +0, Abs(NaN) is NaN and
// Abs(±Inf) is +Inf, matching math.Abs.
func Abs[T Float](x T) T {
	return T(math.Abs(float64(x)))
}

// IsNaN reports whether x is an IEEE-754 "not-a-number" value.
func IsNaN[T Float](x T) bool {
	return math.IsNaN(float64(x))
}

// IsInf reports whether x is an infinity of either sign.
func IsInf[T Float](x T) bool {
	return math.IsInf(float64(x), 0)
}

// NaN returns an IEEE-754 "not-a-number" value of type T.
func NaN[T Float]() T {
	return T(math.NaN())
}

// Inf returns an infinity of type T: positive if sign >= 0, negative if
// sign < 0.
func Inf[T Float](sign int) T {
	return T(math.Inf(sign))
}

// BitSize reports the width in bits of the element type T (32 or 64).
func BitSize[T Float]() int {
	// MaxFloat64 overflows float32, so the conversion lands on +Inf exactly
	// when T is 32 bits wide. This stays correct for named float types.
	big := math.MaxFloat64
	if math.IsInf(float64(T(big)), 1) {
		return 32
	}

	return 64
}

// Format renders x the way the default %v verb does: the shortest decimal
// string that parses back to the same value at the element's own bit width.
func Format[T Float](x T) string {
	return strconv.FormatFloat(float64(x), 'g', -1, BitSize[T]())
}
