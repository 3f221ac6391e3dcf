// Package blasbridge exposes a CBLAS-shaped Go API backed by BLAS kernels
// registered at runtime as raw function pointers.
//
// A Backend is a registry mapping each BLAS routine to a kernel that uses the
// Fortran calling convention: every argument passed by reference, flag
// arguments as the characters 'N', 'T', 'C' (and the 'R' conjugate-no-transpose
// extension), and IAMAX results reported 1-based. Callers use Go-native
// CBLAS semantics and the bridge translates per call:
//
//   - Scalars, dimensions, and enum flags are converted to pointer arguments
//     and flag characters.
//   - Row-major calls are rewritten as column-major kernel calls on the same
//     buffers, swapping or flipping dimensions, triangles, sides, and
//     transpose flags. Only the Hermitian rank updates and conjugated outer
//     products stage a small conjugated copy.
//   - IAMAX results are rebased to 0-based indices.
//   - Complex dot products honor a per-backend (or per-routine) return style,
//     covering kernels that return the value and kernels that write it
//     through a hidden first argument.
//
// Kernels never see invalid arguments from the bridge. Dimension, increment,
// and flag validation happens before the kernel call and reports a
// BridgeError, so a failed call leaves its output arguments untouched.
//
// The refblas subpackage provides portable reference kernels for all 108
// routines and can populate a Backend when no external implementation is
// loaded.
//
// Index arguments are the Int type, which is int32 by default and int64 when
// building with the ilp64 tag, matching 32-bit and 64-bit integer BLAS
// interfaces.
package blasbridge
