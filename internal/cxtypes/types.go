// Package cxtypes holds the canonical type constraints shared across
// algo-complex packages. Other packages alias these definitions instead of
// redeclaring them so that instantiations stay interchangeable.
package cxtypes

import "golang.org/x/exp/constraints"

// Float is the element constraint for complex values: any IEEE-754 binary
// floating-point type (float32 or float64, including named types based on
// them). Both precisions share the same public surface.
type Float interface {
	constraints.Float
}
