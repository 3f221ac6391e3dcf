//go:build ilp64

package blasbridge

// Int is the integer width of the kernel calling convention, 64-bit when
// built with the ilp64 tag.
type Int = int64
