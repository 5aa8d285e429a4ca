package algoquant

import "github.com/cwbudde/algo-quant/internal/qtypes"

// Complex is a type constraint for the complex element types supported by
// operators. The canonical definition is in internal/qtypes.
type Complex = qtypes.Complex

// Float is a type constraint for the matching real component types.
// The canonical definition is in internal/qtypes.
type Float = qtypes.Float
