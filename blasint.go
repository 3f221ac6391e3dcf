//go:build !ilp64

package blasbridge

// Int is the integer width of the kernel calling convention. The default
// is LP64 (32-bit BLAS integers); building with the ilp64 tag switches
// every kernel signature to 64-bit integers for ILP64 kernel sets.
type Int = int32
