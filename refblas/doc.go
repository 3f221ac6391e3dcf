// Package refblas provides portable column-major reference kernels for
// every routine the bridge dispatches, in the Fortran argument
// convention the kernel types encode: scalars arrive by reference, flags
// are single characters, matrices are column-major, and the complex dot
// products return their result by value.
//
// The kernels make a Backend usable without a native BLAS and double as
// a correctness baseline for one. RegisterAll binds the full set. The
// loops follow the netlib reference semantics, including its edge
// behavior: reductions return zero for non-positive increments, scal is
// a no-op for non-positive increments, iamax indices are 1-based, and
// Hermitian updates keep stored diagonals real.
//
// Flag characters match case-insensitively, as LSAME does. Transpose
// flags additionally accept 'R', the conjugate-no-transpose extension
// used by the row-major rewrite rules. An option character no BLAS
// accepts is a programmer error and panics, the in-process analog of
// XERBLA stopping the program.
//
// Only sgemm and dgemm carry cache blocking, with panel sizes picked
// from the detected CPU class. Everything else is written for clarity
// over speed.
package refblas
