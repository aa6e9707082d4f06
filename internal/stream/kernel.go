package stream

// Scalar is the multiplier applied by the Scale and Triad kernels.
const Scalar Element = 3.0

// Kernel identifies one of the four measured vector operations.
type Kernel int

const (
	// Copy is C[i] = A[i].
	Copy Kernel = iota
	// Scale is B[i] = Scalar * C[i].
	Scale
	// Add is C[i] = A[i] + B[i].
	Add
	// Triad is A[i] = B[i] + Scalar * C[i].
	Triad
)

// NumKernels is the number of measured kernels.
const NumKernels = 4

var kernelNames = [NumKernels]string{"Copy", "Scale", "Add", "Triad"}

func (k Kernel) String() string {
	if k < 0 || int(k) >= NumKernels {
		return "Unknown"
	}
	return kernelNames[k]
}

// Words is the number of elements read plus written per index position:
// Copy and Scale touch two arrays, Add and Triad three.
func (k Kernel) Words() int64 {
	switch k {
	case Copy, Scale:
		return 2
	default:
		return 3
	}
}

// run executes the kernel over one worker's partition. The loops are kept
// as plain stride-1 element sweeps; that access pattern is the thing being
// measured, so no bulk-copy shortcuts.
func (k Kernel) run(a, b, c []Element) {
	switch k {
	case Copy:
		for i := range c {
			c[i] = a[i]
		}
	case Scale:
		for i := range b {
			b[i] = Scalar * c[i]
		}
	case Add:
		for i := range c {
			c[i] = a[i] + b[i]
		}
	case Triad:
		for i := range a {
			a[i] = b[i] + Scalar*c[i]
		}
	}
}

// doublePass is the untimed A[i] = 2*A[i] sweep used to estimate how long
// one timed kernel will take. A stays doubled afterwards; the verification
// recurrence starts from that value.
func doublePass(a []Element) {
	for i := range a {
		a[i] = 2 * a[i]
	}
}
