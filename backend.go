package blasbridge

import (
	"fmt"
	"sync"
	"unsafe"
)

// Backend holds the kernels and conventions behind the CBLAS-style entry
// points: a table from routine identity to a registered kernel, and the
// complex return style those kernels follow. Backends are independent of
// each other, so a program can drive two BLAS implementations side by
// side or build a throwaway backend in a test. The zero value is an empty
// backend ready for registration.
//
// Dispatch methods may be called concurrently. Registration and policy
// changes are setup-time operations; they are serialized against dispatch
// but a kernel resolved by an in-flight call keeps executing even if it
// is replaced mid-call.
type Backend struct {
	mu      sync.RWMutex
	kernels map[Routine]unsafe.Pointer
	style   ComplexReturnStyle
	styles  map[Routine]ComplexReturnStyle
}

// New returns an empty backend with the default complex return style.
func New() *Backend {
	return &Backend{
		kernels: make(map[Routine]unsafe.Pointer),
	}
}

// Default is the process-wide backend used by programs that bridge a
// single BLAS implementation. Libraries that may share a process with
// other BLAS users should carry their own backend instead.
var Default = New()

// put stores or replaces a kernel. Registering again overwrites: the last
// write wins, so a fallback can be installed early and upgraded later.
func (be *Backend) put(r Routine, fp unsafe.Pointer) {
	if fp == nil {
		panic(fmt.Sprintf("blasbridge: register %s: nil kernel", r))
	}
	be.mu.Lock()
	if be.kernels == nil {
		be.kernels = make(map[Routine]unsafe.Pointer)
	}
	be.kernels[r] = fp
	be.mu.Unlock()
}

// kernel resolves a routine to its erased kernel word.
func (be *Backend) kernel(op string, r Routine) (unsafe.Pointer, error) {
	be.mu.RLock()
	fp, ok := be.kernels[r]
	be.mu.RUnlock()
	if !ok {
		return nil, NewUnregisteredError(op, r)
	}
	return fp, nil
}

// dotKernel resolves one of the complex dot routines together with the
// return style in force for it. The style is read in the same critical
// section as the kernel so a concurrent policy change cannot split the
// pair.
func (be *Backend) dotKernel(op string, r Routine) (unsafe.Pointer, ComplexReturnStyle, error) {
	be.mu.RLock()
	fp, ok := be.kernels[r]
	style, overridden := be.styles[r]
	if !overridden {
		style = be.style
	}
	be.mu.RUnlock()
	if !ok {
		return nil, 0, NewUnregisteredError(op, r)
	}
	if style != ReturnValue && style != HiddenArgument {
		return nil, 0, NewConventionError(op, fmt.Sprintf("unknown complex return style %d", int(style)))
	}
	return fp, style, nil
}

// Registered reports whether a kernel is bound for the routine.
func (be *Backend) Registered(r Routine) bool {
	be.mu.RLock()
	_, ok := be.kernels[r]
	be.mu.RUnlock()
	return ok
}

// Reset drops every registered kernel and restores the default convention
// policy. Mainly test support.
func (be *Backend) Reset() {
	be.mu.Lock()
	be.kernels = make(map[Routine]unsafe.Pointer)
	be.styles = nil
	be.style = ReturnValue
	be.mu.Unlock()
}
