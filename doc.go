// Package algocomplex provides a complex number value type that is generic
// over the floating-point element precision.
//
// A Complex[T] is a plain pair of Re and Im components of the same element
// type T (float32 or float64). Values are immutable: every operation takes
// its operands by value and returns a fresh result. There is no hidden
// normalization, no heap allocation, and no error path; degenerate inputs
// propagate through the component formulas under the usual IEEE-754 rules,
// and callers inspect the result components (or use IsNaN/IsInf) when they
// need to detect them.
//
// The package deliberately stops at the field operations, conjugation, and
// magnitudes. Transcendental functions and polar form belong to math/cmplx
// and are out of scope here; use the Complex128 bridge to reach them.
package algocomplex
