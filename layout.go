package blasbridge

// The row-major story: an M x N row-major buffer with leading dimension
// ld is, bit for bit, an N x M column-major buffer with the same ld.
// Every row-major entry point reinterprets its buffers that way and
// rewrites flags and dimensions instead of copying matrix data. The flag
// rewrite primitives live in types.go (flipUplo, flipSide, flipTransReal,
// flipTransConj); below are the vector helpers for the few Hermitian
// rewrites that need a conjugated scratch copy. Scratch copies are only
// ever vectors, never matrices.

// vecIdx returns the buffer index of logical element i of an n-element
// vector with stride inc, honoring the BLAS convention that a negative
// stride walks the buffer from its far end.
func vecIdx(i, n, inc int) int {
	if inc < 0 {
		return (n - 1 - i) * -inc
	}
	return i * inc
}

func conj64(v complex64) complex64 { return complex(real(v), -imag(v)) }

func conj128(v complex128) complex128 { return complex(real(v), -imag(v)) }

// conjVec64 packs the conjugate of a strided vector into a fresh unit
// stride buffer in logical order.
func conjVec64(x []complex64, n, inc int) []complex64 {
	out := make([]complex64, n)
	for i := 0; i < n; i++ {
		out[i] = conj64(x[vecIdx(i, n, inc)])
	}
	return out
}

// conjVec128 is conjVec64 for double complex.
func conjVec128(x []complex128, n, inc int) []complex128 {
	out := make([]complex128, n)
	for i := 0; i < n; i++ {
		out[i] = conj128(x[vecIdx(i, n, inc)])
	}
	return out
}

// conjInPlace64 conjugates the n logical elements of a strided vector.
func conjInPlace64(y []complex64, n, inc int) {
	for i := 0; i < n; i++ {
		j := vecIdx(i, n, inc)
		y[j] = conj64(y[j])
	}
}

// conjInPlace128 is conjInPlace64 for double complex.
func conjInPlace128(y []complex128, n, inc int) {
	for i := 0; i < n; i++ {
		j := vecIdx(i, n, inc)
		y[j] = conj128(y[j])
	}
}
