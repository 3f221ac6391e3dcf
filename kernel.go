package blasbridge

import (
	"unsafe"
)

// Routine identifies a kernel slot by its lowercase BLAS name ("dgemm",
// "zdotc"). Registration and dispatch agree on these identities, and the
// convention policy uses them to address the four complex dot routines.
type Routine string

// The four routines whose Fortran ABI depends on the complex return
// convention. Every other routine has a single, unambiguous shape.
const (
	Cdotu Routine = "cdotu"
	Cdotc Routine = "cdotc"
	Zdotu Routine = "zdotu"
	Zdotc Routine = "zdotc"
)

// eraseFunc strips a kernel's type, leaving the single word that
// represents the func value. The word still references the underlying
// closure, so the kernel stays reachable while the table holds it.
func eraseFunc[F any](fn F) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(&fn))
}

// funcOf rebuilds a typed kernel from an erased word. The caller asserts
// the type; nothing about the word itself can be checked, which is the
// same bargain a foreign function pointer offers.
func funcOf[F any](fp unsafe.Pointer) F {
	return *(*F)(unsafe.Pointer(&fp))
}

// ptr returns the address of the first element, or nil for an empty
// slice. Kernels receive nil exactly when a zero extent means the
// operand is never dereferenced.
func ptr[T any](s []T) *T {
	if len(s) == 0 {
		return nil
	}
	return &s[0]
}

// A DotKernel is an opaque handle to one of the four complex dot product
// routines. The handle does not record which return convention the
// underlying routine follows; the backend's complex return style decides
// how the handle is invoked at dispatch time. Declaring a style that does
// not match the routine behind the handle makes the eventual call
// undefined, exactly as it would be through a foreign function pointer.
type DotKernel struct {
	fp unsafe.Pointer
}

// CdotuValue wraps a cdotu kernel that returns its result by value.
func CdotuValue(fn CdotuKernel) DotKernel { return DotKernel{fp: eraseFunc(fn)} }

// CdotuHidden wraps a cdotu kernel that writes its result through a
// leading hidden argument.
func CdotuHidden(fn CdotuHiddenKernel) DotKernel { return DotKernel{fp: eraseFunc(fn)} }

// CdotcValue wraps a cdotc kernel that returns its result by value.
func CdotcValue(fn CdotcKernel) DotKernel { return DotKernel{fp: eraseFunc(fn)} }

// CdotcHidden wraps a cdotc kernel that writes its result through a
// leading hidden argument.
func CdotcHidden(fn CdotcHiddenKernel) DotKernel { return DotKernel{fp: eraseFunc(fn)} }

// ZdotuValue wraps a zdotu kernel that returns its result by value.
func ZdotuValue(fn ZdotuKernel) DotKernel { return DotKernel{fp: eraseFunc(fn)} }

// ZdotuHidden wraps a zdotu kernel that writes its result through a
// leading hidden argument.
func ZdotuHidden(fn ZdotuHiddenKernel) DotKernel { return DotKernel{fp: eraseFunc(fn)} }

// ZdotcValue wraps a zdotc kernel that returns its result by value.
func ZdotcValue(fn ZdotcKernel) DotKernel { return DotKernel{fp: eraseFunc(fn)} }

// ZdotcHidden wraps a zdotc kernel that writes its result through a
// leading hidden argument.
func ZdotcHidden(fn ZdotcHiddenKernel) DotKernel { return DotKernel{fp: eraseFunc(fn)} }
