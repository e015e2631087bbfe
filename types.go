package algocomplex

import "github.com/cwbudde/algo-complex/internal/cxtypes"

// Float is a type constraint for the element type of a complex value.
// The canonical definition is in internal/cxtypes.
type Float = cxtypes.Float
