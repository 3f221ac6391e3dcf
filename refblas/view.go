package refblas

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/LynnColeArt/blasbridge"
)

// Int is the kernel integer width, an alias of the bridge's Int so the
// function signatures here line up under both integer build modes.
type Int = blasbridge.Int

// Real constrains the single and double precision element types.
type Real interface {
	~float32 | ~float64
}

// Complex constrains the complex element types.
type Complex interface {
	~complex64 | ~complex128
}

// Number spans every element type the kernels operate on.
type Number interface {
	Real | Complex
}

// vec views the buffer behind a strided vector argument. The slice spans
// 1+(n-1)*|inc| elements; idx maps a logical position into it.
func vec[T any](p *T, n, inc int) []T {
	if n <= 0 {
		return nil
	}
	step := inc
	if step < 0 {
		step = -step
	}
	return unsafe.Slice(p, 1+(n-1)*step)
}

// idx is the offset of logical element i in an n-element vector with
// stride inc. Negative strides walk from the far end, so the pointer is
// always the lowest address.
func idx(i, n, inc int) int {
	if inc < 0 {
		return (n - 1 - i) * -inc
	}
	return i * inc
}

// mat views a column-major rows x cols matrix argument with leading
// dimension ld.
func mat[T any](p *T, rows, cols, ld int) []T {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	return unsafe.Slice(p, (cols-1)*ld+rows)
}

// upperFlag folds a flag character to upper case, matching LSAME.
func upperFlag(f byte) byte {
	if 'a' <= f && f <= 'z' {
		f -= 'a' - 'A'
	}
	return f
}

// badFlag reports an option character no BLAS accepts. The bridge
// validates before dispatch, so this fires only when a kernel is invoked
// directly with a bad flag.
func badFlag(routine string, flag byte) {
	panic(fmt.Sprintf("refblas: %s: bad flag %q", routine, flag))
}

// transMode decodes a transpose character. Real routines fold 'C' into
// 'T'; complex routines track conjugation separately and also accept the
// conjugate-no-transpose extension 'R'.
func transMode(routine string, t byte, cplx bool) (doTrans, doConj bool) {
	switch upperFlag(t) {
	case 'N':
	case 'T':
		doTrans = true
	case 'C':
		doTrans = true
		doConj = cplx
	case 'R':
		if !cplx {
			badFlag(routine, t)
		}
		doConj = true
	default:
		badFlag(routine, t)
	}
	return doTrans, doConj
}

// transModeSyrk decodes the syrk/syr2k transpose character. The complex
// forms admit only 'N' and 'T'.
func transModeSyrk(routine string, t byte, cplx bool) bool {
	switch upperFlag(t) {
	case 'N':
		return false
	case 'T':
		return true
	case 'C':
		if cplx {
			badFlag(routine, t)
		}
		return true
	default:
		badFlag(routine, t)
	}
	return false
}

// transModeHerk decodes the herk/her2k transpose character, which admits
// only 'N' and 'C'.
func transModeHerk(routine string, t byte) bool {
	switch upperFlag(t) {
	case 'N':
		return false
	case 'C':
		return true
	default:
		badFlag(routine, t)
	}
	return false
}

func uploMode(routine string, u byte) bool {
	switch upperFlag(u) {
	case 'U':
		return true
	case 'L':
		return false
	default:
		badFlag(routine, u)
	}
	return false
}

func sideMode(routine string, s byte) bool {
	switch upperFlag(s) {
	case 'L':
		return true
	case 'R':
		return false
	default:
		badFlag(routine, s)
	}
	return false
}

func diagMode(routine string, d byte) bool {
	switch upperFlag(d) {
	case 'U':
		return true
	case 'N':
		return false
	default:
		badFlag(routine, d)
	}
	return false
}

// conjOf is the complex conjugate in the element's own precision.
func conjOf[C Complex](v C) C {
	w := complex128(v)
	return C(complex(real(w), -imag(w)))
}

// realOnly keeps the real part and zeroes the imaginary part.
func realOnly[C Complex](v C) C {
	return C(complex(real(complex128(v)), 0))
}

// re extracts the real part at full precision.
func re[C Complex](v C) float64 {
	return real(complex128(v))
}

// scaleRe multiplies a complex value by a real scalar componentwise, the
// way Fortran evaluates REAL*COMPLEX.
func scaleRe[C Complex](s float64, v C) C {
	w := complex128(v)
	return C(complex(s*real(w), s*imag(w)))
}

// absF is ABS for either real width.
func absF[F Real](v F) F {
	return F(math.Abs(float64(v)))
}

// cabs1f and cabs1d are the |re|+|im| metric, summed in the metric's own
// precision.
func cabs1f(v complex64) float32 {
	return float32(math.Abs(float64(real(v)))) + float32(math.Abs(float64(imag(v))))
}

func cabs1d(v complex128) float64 {
	return math.Abs(real(v)) + math.Abs(imag(v))
}
