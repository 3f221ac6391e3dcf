package blasbridge

// CBLAS-compatible flag enums. The numeric values match OpenBLAS's cblas.h
// so that callers porting C code can pass constants straight through.

// Order selects the memory layout of matrix arguments.
type Order int

const (
	// RowMajor is C-style layout: consecutive elements of a row are adjacent.
	RowMajor Order = 101
	// ColMajor is Fortran-style layout: consecutive elements of a column are adjacent.
	ColMajor Order = 102
)

// Transpose selects the operation applied to a matrix operand.
//
// ConjNoTrans (conjugate without transposition) is the OpenBLAS extension
// value; kernels that predate it reject the 'R' flag character themselves.
type Transpose int

const (
	NoTrans     Transpose = 111
	Trans       Transpose = 112
	ConjTrans   Transpose = 113
	ConjNoTrans Transpose = 114
)

// Uplo selects the stored triangle of a symmetric, Hermitian, or
// triangular matrix.
type Uplo int

const (
	Upper Uplo = 121
	Lower Uplo = 122
)

// Diag declares whether a triangular matrix has a unit diagonal.
type Diag int

const (
	NonUnit Diag = 131
	Unit    Diag = 132
)

// Side selects which side a symmetric/triangular operand multiplies from.
type Side int

const (
	Left  Side = 141
	Right Side = 142
)

func (o Order) valid() bool {
	return o == RowMajor || o == ColMajor
}

func (t Transpose) valid() bool {
	return t >= NoTrans && t <= ConjNoTrans
}

// validReal reports whether t is usable for a real-valued routine once
// conjugation has been normalized away.
func (t Transpose) validReal() bool {
	return t.valid()
}

func (u Uplo) valid() bool {
	return u == Upper || u == Lower
}

func (d Diag) valid() bool {
	return d == NonUnit || d == Unit
}

func (s Side) valid() bool {
	return s == Left || s == Right
}

// normalizeReal folds the conjugating flags onto their plain counterparts.
// Conjugation is a no-op for real data, and Fortran real kernels only
// accept 'N' and 'T'.
func (t Transpose) normalizeReal() Transpose {
	switch t {
	case ConjTrans:
		return Trans
	case ConjNoTrans:
		return NoTrans
	}
	return t
}

// Flag characters in the Fortran calling convention.

func transChar(t Transpose) byte {
	switch t {
	case NoTrans:
		return 'N'
	case Trans:
		return 'T'
	case ConjTrans:
		return 'C'
	case ConjNoTrans:
		return 'R'
	}
	return 0
}

func uploChar(u Uplo) byte {
	if u == Upper {
		return 'U'
	}
	return 'L'
}

func diagChar(d Diag) byte {
	if d == NonUnit {
		return 'N'
	}
	return 'U'
}

func sideChar(s Side) byte {
	if s == Left {
		return 'L'
	}
	return 'R'
}

// flipUplo exchanges the stored triangle, the first step of every
// row-major rewrite over symmetric and triangular operands.
func flipUplo(u Uplo) Uplo {
	if u == Upper {
		return Lower
	}
	return Upper
}

// flipSide exchanges the multiplication side for row-major symm/hemm and
// trmm/trsm rewrites.
func flipSide(s Side) Side {
	if s == Left {
		return Right
	}
	return Left
}

// flipTransReal exchanges NoTrans and Trans after real normalization.
func flipTransReal(t Transpose) Transpose {
	if t.normalizeReal() == NoTrans {
		return Trans
	}
	return NoTrans
}

// flipTransConj exchanges transposition while preserving conjugation:
// NoTrans <-> Trans and ConjNoTrans <-> ConjTrans. Used by complex
// gemv/trmv/trsv row-major rewrites.
func flipTransConj(t Transpose) Transpose {
	switch t {
	case NoTrans:
		return Trans
	case Trans:
		return NoTrans
	case ConjNoTrans:
		return ConjTrans
	default:
		return ConjNoTrans
	}
}

// flipTransHerk exchanges NoTrans and ConjTrans. herk and her2k only
// distinguish those two; any other flag maps like NoTrans and the kernel
// rejects it.
func flipTransHerk(t Transpose) Transpose {
	if t == ConjTrans {
		return NoTrans
	}
	return ConjTrans
}
