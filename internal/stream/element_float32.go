//go:build streamfloat32

package stream

// Element is the array element type, fixed at compile time. This build
// measures single-precision traffic.
type Element = float32

// ElementBytes is the in-memory width of one Element.
const ElementBytes = 4

// verifyEpsilon is looser here: ten iterations of the recurrence push
// values past what a 24-bit mantissa stores exactly.
const verifyEpsilon = 1e-6
