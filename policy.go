package blasbridge

import "fmt"

// ComplexReturnStyle declares the ABI a Fortran kernel uses to return a
// complex value. The Fortran standard never pinned this down, so the two
// styles coexist: OpenBLAS, BLIS, and MKL's Intel layer return through
// registers, while gfortran-compiled references and MKL's gf layer write
// through a hidden leading argument. Only cdotu, cdotc, zdotu, and zdotc
// are affected.
//
// The style is a declaration about the registered kernel, not a request:
// the bridge has no way to verify it, and a wrong declaration corrupts
// the call exactly as a wrong C prototype would.
type ComplexReturnStyle int

const (
	// ReturnValue kernels return the complex result directly.
	ReturnValue ComplexReturnStyle = 0
	// HiddenArgument kernels write the result through an extra pointer
	// argument inserted before all others.
	HiddenArgument ComplexReturnStyle = 1
)

// String returns the conventional name of the style.
func (s ComplexReturnStyle) String() string {
	switch s {
	case ReturnValue:
		return "ReturnValue"
	case HiddenArgument:
		return "HiddenArgument"
	default:
		return fmt.Sprintf("ComplexReturnStyle(%d)", int(s))
	}
}

func (s ComplexReturnStyle) valid() bool {
	return s == ReturnValue || s == HiddenArgument
}

// dotRoutine reports whether r is one of the four routines the complex
// return convention applies to.
func dotRoutine(r Routine) bool {
	switch r {
	case Cdotu, Cdotc, Zdotu, Zdotc:
		return true
	}
	return false
}

// SetComplexReturnStyle sets the backend-wide return style for the
// complex dot routines. It applies to subsequent dispatches, including
// those of kernels registered before the change.
func (be *Backend) SetComplexReturnStyle(style ComplexReturnStyle) error {
	if !style.valid() {
		return NewConventionError("SetComplexReturnStyle",
			fmt.Sprintf("unknown complex return style %d", int(style)))
	}
	be.mu.Lock()
	be.style = style
	be.mu.Unlock()
	return nil
}

// SetComplexReturnStyleFor overrides the return style for a single dot
// routine, leaving the backend default in place for the others. Mixed
// kernel sets need this when, say, zdotc comes from a gfortran reference
// build while the rest is OpenBLAS.
func (be *Backend) SetComplexReturnStyleFor(r Routine, style ComplexReturnStyle) error {
	const op = "SetComplexReturnStyleFor"
	if !dotRoutine(r) {
		return NewInvalidArgError(op, fmt.Sprintf("%q has no complex return convention", r))
	}
	if !style.valid() {
		return NewConventionError(op, fmt.Sprintf("unknown complex return style %d", int(style)))
	}
	be.mu.Lock()
	if be.styles == nil {
		be.styles = make(map[Routine]ComplexReturnStyle)
	}
	be.styles[r] = style
	be.mu.Unlock()
	return nil
}

// ComplexReturnStyleFor reports the style in force for a dot routine:
// its override if one is set, the backend default otherwise.
func (be *Backend) ComplexReturnStyleFor(r Routine) ComplexReturnStyle {
	be.mu.RLock()
	style, ok := be.styles[r]
	if !ok {
		style = be.style
	}
	be.mu.RUnlock()
	return style
}
