//go:build !streamfloat32

// Package stream implements the memory bandwidth measurement engine: a
// fixed pool of workers each owning three equal-length buffers, the four
// vector kernels run fork-join across the pool, and the timing reduction
// that turns best-case kernel time into bandwidth.
package stream

// Element is the array element type, fixed at compile time. The default
// build measures double-precision traffic; build with -tags streamfloat32
// to measure single precision.
type Element = float64

// ElementBytes is the in-memory width of one Element.
const ElementBytes = 8

// verifyEpsilon bounds the relative error accepted when checking results
// against the closed-form recurrence.
const verifyEpsilon = 1e-13
