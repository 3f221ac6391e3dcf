package refblas

import (
	"math"
	"unsafe"
)

// Level 1: rotations.

func rotgv[F Real](a, b, c, s *F) {
	sa, sb := *a, *b
	roe := sb
	if absF(sa) > absF(sb) {
		roe = sa
	}
	scale := absF(sa) + absF(sb)
	if scale == 0 {
		*c, *s = 1, 0
		*a, *b = 0, 0
		return
	}
	qa, qb := sa/scale, sb/scale
	r := scale * F(math.Sqrt(float64(qa*qa+qb*qb)))
	if roe < 0 {
		r = -r
	}
	*c = sa / r
	*s = sb / r
	z := F(1)
	if absF(sa) > absF(sb) {
		z = *s
	}
	if absF(sb) >= absF(sa) && *c != 0 {
		z = 1 / *c
	}
	*a = r
	*b = z
}

// Srotg constructs a Givens rotation zeroing b; a receives r and b the
// reconstruction value z.
func Srotg(a, b, c, s *float32) { rotgv(a, b, c, s) }

// Drotg is the float64 Srotg.
func Drotg(a, b, c, s *float64) { rotgv(a, b, c, s) }

func rotv[F Real](n int, xp *F, incX int, yp *F, incY int, c, s F) {
	if n <= 0 {
		return
	}
	x, y := vec(xp, n, incX), vec(yp, n, incY)
	for i := 0; i < n; i++ {
		ix, iy := idx(i, n, incX), idx(i, n, incY)
		t := c*x[ix] + s*y[iy]
		y[iy] = c*y[iy] - s*x[ix]
		x[ix] = t
	}
}

// Srot applies a plane rotation to the pair of vectors.
func Srot(n *Int, x *float32, incX *Int, y *float32, incY *Int, c, s *float32) {
	rotv(int(*n), x, int(*incX), y, int(*incY), *c, *s)
}

// Drot is the float64 Srot.
func Drot(n *Int, x *float64, incX *Int, y *float64, incY *Int, c, s *float64) {
	rotv(int(*n), x, int(*incX), y, int(*incY), *c, *s)
}

func rotmv[F Real](n int, xp *F, incX int, yp *F, incY int, pp *F) {
	param := unsafe.Slice(pp, 5)
	flag := param[0]
	if n <= 0 || flag == -2 {
		return
	}
	var h11, h12, h21, h22 F
	switch {
	case flag < 0:
		h11, h21, h12, h22 = param[1], param[2], param[3], param[4]
	case flag == 0:
		h11, h22 = 1, 1
		h21, h12 = param[2], param[3]
	default:
		h12, h21 = 1, -1
		h11, h22 = param[1], param[4]
	}
	x, y := vec(xp, n, incX), vec(yp, n, incY)
	for i := 0; i < n; i++ {
		ix, iy := idx(i, n, incX), idx(i, n, incY)
		w, z := x[ix], y[iy]
		x[ix] = w*h11 + z*h12
		y[iy] = w*h21 + z*h22
	}
}

// Srotm applies the modified rotation encoded in the 5-element param.
func Srotm(n *Int, x *float32, incX *Int, y *float32, incY *Int, param *float32) {
	rotmv(int(*n), x, int(*incX), y, int(*incY), param)
}

// Drotm is the float64 Srotm.
func Drotm(n *Int, x *float64, incX *Int, y *float64, incY *Int, param *float64) {
	rotmv(int(*n), x, int(*incX), y, int(*incY), param)
}

func rotmgv[F Real](d1, d2, b1 *F, b2 F, pp *F) {
	const gam = 4096
	const gamsq = gam * gam
	const rgamsq = 5.9604645e-8
	param := unsafe.Slice(pp, 5)
	var flag, h11, h12, h21, h22 F
	pd1, pd2, pb1 := *d1, *d2, *b1
	if pd1 < 0 {
		flag = -1
		pd1, pd2, pb1 = 0, 0, 0
	} else {
		p2 := pd2 * b2
		if p2 == 0 {
			param[0] = -2
			return
		}
		p1 := pd1 * pb1
		q2 := p2 * b2
		q1 := p1 * pb1
		if absF(q1) > absF(q2) {
			h21 = -b2 / pb1
			h12 = p2 / p1
			u := 1 - h12*h21
			if u > 0 {
				flag = 0
				pd1 /= u
				pd2 /= u
				pb1 *= u
			} else {
				flag = -1
				h11, h12, h21, h22 = 0, 0, 0, 0
				pd1, pd2, pb1 = 0, 0, 0
			}
		} else if q2 < 0 {
			flag = -1
			h11, h12, h21, h22 = 0, 0, 0, 0
			pd1, pd2, pb1 = 0, 0, 0
		} else {
			flag = 1
			h11 = p1 / p2
			h22 = pb1 / b2
			u := 1 + h11*h22
			pd1, pd2 = pd2/u, pd1/u
			pb1 = b2 * u
		}
		if pd1 != 0 {
			for pd1 <= rgamsq || pd1 >= gamsq {
				if flag == 0 {
					h11, h22 = 1, 1
				} else {
					h21, h12 = -1, 1
				}
				flag = -1
				if pd1 <= rgamsq {
					pd1 *= gamsq
					pb1 /= gam
					h11 /= gam
					h12 /= gam
				} else {
					pd1 /= gamsq
					pb1 *= gam
					h11 *= gam
					h12 *= gam
				}
			}
		}
		if pd2 != 0 {
			for absF(pd2) <= rgamsq || absF(pd2) >= gamsq {
				if flag == 0 {
					h11, h22 = 1, 1
				} else {
					h21, h12 = -1, 1
				}
				flag = -1
				if absF(pd2) <= rgamsq {
					pd2 *= gamsq
					h21 /= gam
					h22 /= gam
				} else {
					pd2 /= gamsq
					h21 *= gam
					h22 *= gam
				}
			}
		}
	}
	switch {
	case flag < 0:
		param[1], param[2], param[3], param[4] = h11, h21, h12, h22
	case flag == 0:
		param[2], param[3] = h21, h12
	default:
		param[1], param[4] = h11, h22
	}
	param[0] = flag
	*d1, *d2, *b1 = pd1, pd2, pb1
}

// Srotmg constructs the modified Givens transform that zeroes the second
// component of (sqrt(d1)*b1, sqrt(d2)*b2), rescaling the d factors to
// keep them in range.
func Srotmg(d1, d2, b1, b2, param *float32) { rotmgv(d1, d2, b1, *b2, param) }

// Drotmg is the float64 Srotmg.
func Drotmg(d1, d2, b1, b2, param *float64) { rotmgv(d1, d2, b1, *b2, param) }

// Level 1: vector moves and scaling.

func swapv[T Number](n int, xp *T, incX int, yp *T, incY int) {
	if n <= 0 {
		return
	}
	x, y := vec(xp, n, incX), vec(yp, n, incY)
	for i := 0; i < n; i++ {
		ix, iy := idx(i, n, incX), idx(i, n, incY)
		x[ix], y[iy] = y[iy], x[ix]
	}
}

// Sswap exchanges the elements of two vectors.
func Sswap(n *Int, x *float32, incX *Int, y *float32, incY *Int) {
	swapv(int(*n), x, int(*incX), y, int(*incY))
}

// Dswap is the float64 Sswap.
func Dswap(n *Int, x *float64, incX *Int, y *float64, incY *Int) {
	swapv(int(*n), x, int(*incX), y, int(*incY))
}

// Cswap is the complex64 Sswap.
func Cswap(n *Int, x *complex64, incX *Int, y *complex64, incY *Int) {
	swapv(int(*n), x, int(*incX), y, int(*incY))
}

// Zswap is the complex128 Sswap.
func Zswap(n *Int, x *complex128, incX *Int, y *complex128, incY *Int) {
	swapv(int(*n), x, int(*incX), y, int(*incY))
}

func copyv[T Number](n int, xp *T, incX int, yp *T, incY int) {
	if n <= 0 {
		return
	}
	x, y := vec(xp, n, incX), vec(yp, n, incY)
	for i := 0; i < n; i++ {
		y[idx(i, n, incY)] = x[idx(i, n, incX)]
	}
}

// Scopy copies x into y.
func Scopy(n *Int, x *float32, incX *Int, y *float32, incY *Int) {
	copyv(int(*n), x, int(*incX), y, int(*incY))
}

// Dcopy is the float64 Scopy.
func Dcopy(n *Int, x *float64, incX *Int, y *float64, incY *Int) {
	copyv(int(*n), x, int(*incX), y, int(*incY))
}

// Ccopy is the complex64 Scopy.
func Ccopy(n *Int, x *complex64, incX *Int, y *complex64, incY *Int) {
	copyv(int(*n), x, int(*incX), y, int(*incY))
}

// Zcopy is the complex128 Scopy.
func Zcopy(n *Int, x *complex128, incX *Int, y *complex128, incY *Int) {
	copyv(int(*n), x, int(*incX), y, int(*incY))
}

func axpyv[T Number](n int, alpha T, xp *T, incX int, yp *T, incY int) {
	if n <= 0 || alpha == 0 {
		return
	}
	x, y := vec(xp, n, incX), vec(yp, n, incY)
	for i := 0; i < n; i++ {
		y[idx(i, n, incY)] += alpha * x[idx(i, n, incX)]
	}
}

// Saxpy computes y += alpha*x.
func Saxpy(n *Int, alpha *float32, x *float32, incX *Int, y *float32, incY *Int) {
	axpyv(int(*n), *alpha, x, int(*incX), y, int(*incY))
}

// Daxpy is the float64 Saxpy.
func Daxpy(n *Int, alpha *float64, x *float64, incX *Int, y *float64, incY *Int) {
	axpyv(int(*n), *alpha, x, int(*incX), y, int(*incY))
}

// Caxpy is the complex64 Saxpy.
func Caxpy(n *Int, alpha *complex64, x *complex64, incX *Int, y *complex64, incY *Int) {
	axpyv(int(*n), *alpha, x, int(*incX), y, int(*incY))
}

// Zaxpy is the complex128 Saxpy.
func Zaxpy(n *Int, alpha *complex128, x *complex128, incX *Int, y *complex128, incY *Int) {
	axpyv(int(*n), *alpha, x, int(*incX), y, int(*incY))
}

func scalv[T Number](n int, alpha T, xp *T, incX int) {
	if n <= 0 || incX <= 0 {
		return
	}
	x := vec(xp, n, incX)
	for i := 0; i < n; i++ {
		x[i*incX] *= alpha
	}
}

// scalRe scales a complex vector by a real factor, componentwise the way
// the mixed-type routines define it.
func scalRe[C Complex](n int, alpha float64, xp *C, incX int) {
	if n <= 0 || incX <= 0 {
		return
	}
	x := vec(xp, n, incX)
	for i := 0; i < n; i++ {
		x[i*incX] = scaleRe(alpha, x[i*incX])
	}
}

// Sscal computes x *= alpha. Non-positive increments leave x untouched.
func Sscal(n *Int, alpha *float32, x *float32, incX *Int) {
	scalv(int(*n), *alpha, x, int(*incX))
}

// Dscal is the float64 Sscal.
func Dscal(n *Int, alpha *float64, x *float64, incX *Int) {
	scalv(int(*n), *alpha, x, int(*incX))
}

// Cscal is the complex64 Sscal.
func Cscal(n *Int, alpha *complex64, x *complex64, incX *Int) {
	scalv(int(*n), *alpha, x, int(*incX))
}

// Zscal is the complex128 Sscal.
func Zscal(n *Int, alpha *complex128, x *complex128, incX *Int) {
	scalv(int(*n), *alpha, x, int(*incX))
}

// Csscal scales a complex64 vector by a real factor.
func Csscal(n *Int, alpha *float32, x *complex64, incX *Int) {
	scalRe(int(*n), float64(*alpha), x, int(*incX))
}

// Zdscal scales a complex128 vector by a real factor.
func Zdscal(n *Int, alpha *float64, x *complex128, incX *Int) {
	scalRe(int(*n), *alpha, x, int(*incX))
}

// Level 1: dot products.

func dotv[F Real](n int, xp *F, incX int, yp *F, incY int) F {
	if n <= 0 {
		return 0
	}
	x, y := vec(xp, n, incX), vec(yp, n, incY)
	var sum F
	for i := 0; i < n; i++ {
		sum += x[idx(i, n, incX)] * y[idx(i, n, incY)]
	}
	return sum
}

func dsdotv(n int, xp *float32, incX int, yp *float32, incY int) float64 {
	if n <= 0 {
		return 0
	}
	x, y := vec(xp, n, incX), vec(yp, n, incY)
	var sum float64
	for i := 0; i < n; i++ {
		sum += float64(x[idx(i, n, incX)]) * float64(y[idx(i, n, incY)])
	}
	return sum
}

func dotuv[C Complex](n int, xp *C, incX int, yp *C, incY int) C {
	if n <= 0 {
		return 0
	}
	x, y := vec(xp, n, incX), vec(yp, n, incY)
	var sum C
	for i := 0; i < n; i++ {
		sum += x[idx(i, n, incX)] * y[idx(i, n, incY)]
	}
	return sum
}

func dotcv[C Complex](n int, xp *C, incX int, yp *C, incY int) C {
	if n <= 0 {
		return 0
	}
	x, y := vec(xp, n, incX), vec(yp, n, incY)
	var sum C
	for i := 0; i < n; i++ {
		sum += conjOf(x[idx(i, n, incX)]) * y[idx(i, n, incY)]
	}
	return sum
}

// Sdot returns the inner product of x and y.
func Sdot(n *Int, x *float32, incX *Int, y *float32, incY *Int) float32 {
	return dotv(int(*n), x, int(*incX), y, int(*incY))
}

// Ddot is the float64 Sdot.
func Ddot(n *Int, x *float64, incX *Int, y *float64, incY *Int) float64 {
	return dotv(int(*n), x, int(*incX), y, int(*incY))
}

// Dsdot accumulates a float32 inner product in float64.
func Dsdot(n *Int, x *float32, incX *Int, y *float32, incY *Int) float64 {
	return dsdotv(int(*n), x, int(*incX), y, int(*incY))
}

// Sdsdot accumulates sb plus the inner product in float64, then rounds
// to float32.
func Sdsdot(n *Int, sb *float32, x *float32, incX *Int, y *float32, incY *Int) float32 {
	return float32(float64(*sb) + dsdotv(int(*n), x, int(*incX), y, int(*incY)))
}

// Cdotu returns the unconjugated complex inner product.
func Cdotu(n *Int, x *complex64, incX *Int, y *complex64, incY *Int) complex64 {
	return dotuv(int(*n), x, int(*incX), y, int(*incY))
}

// Cdotc returns the inner product with x conjugated.
func Cdotc(n *Int, x *complex64, incX *Int, y *complex64, incY *Int) complex64 {
	return dotcv(int(*n), x, int(*incX), y, int(*incY))
}

// Zdotu is the complex128 Cdotu.
func Zdotu(n *Int, x *complex128, incX *Int, y *complex128, incY *Int) complex128 {
	return dotuv(int(*n), x, int(*incX), y, int(*incY))
}

// Zdotc is the complex128 Cdotc.
func Zdotc(n *Int, x *complex128, incX *Int, y *complex128, incY *Int) complex128 {
	return dotcv(int(*n), x, int(*incX), y, int(*incY))
}

// Level 1: norms, absolute sums, and index of max.

func nrm2v[F Real](n int, xp *F, incX int) F {
	if n < 1 || incX < 1 {
		return 0
	}
	x := vec(xp, n, incX)
	if n == 1 {
		return absF(x[0])
	}
	var scale F
	ssq := F(1)
	for i := 0; i < n; i++ {
		v := x[i*incX]
		if v == 0 {
			continue
		}
		v = absF(v)
		if scale < v {
			r := scale / v
			ssq = 1 + ssq*r*r
			scale = v
		} else {
			r := v / scale
			ssq += r * r
		}
	}
	return scale * F(math.Sqrt(float64(ssq)))
}

func scnrm2(n int, xp *complex64, incX int) float32 {
	if n < 1 || incX < 1 {
		return 0
	}
	x := vec(xp, n, incX)
	var scale float32
	ssq := float32(1)
	step := func(p float32) {
		if p == 0 {
			return
		}
		if p < 0 {
			p = -p
		}
		if scale < p {
			r := scale / p
			ssq = 1 + ssq*r*r
			scale = p
		} else {
			r := p / scale
			ssq += r * r
		}
	}
	for i := 0; i < n; i++ {
		v := x[i*incX]
		step(real(v))
		step(imag(v))
	}
	return scale * float32(math.Sqrt(float64(ssq)))
}

func dznrm2(n int, xp *complex128, incX int) float64 {
	if n < 1 || incX < 1 {
		return 0
	}
	x := vec(xp, n, incX)
	var scale float64
	ssq := float64(1)
	step := func(p float64) {
		if p == 0 {
			return
		}
		if p < 0 {
			p = -p
		}
		if scale < p {
			r := scale / p
			ssq = 1 + ssq*r*r
			scale = p
		} else {
			r := p / scale
			ssq += r * r
		}
	}
	for i := 0; i < n; i++ {
		v := x[i*incX]
		step(real(v))
		step(imag(v))
	}
	return scale * math.Sqrt(ssq)
}

// Snrm2 returns the Euclidean norm of x, scaled against overflow.
func Snrm2(n *Int, x *float32, incX *Int) float32 { return nrm2v(int(*n), x, int(*incX)) }

// Dnrm2 is the float64 Snrm2.
func Dnrm2(n *Int, x *float64, incX *Int) float64 { return nrm2v(int(*n), x, int(*incX)) }

// Scnrm2 is the complex64 norm, returned as float32.
func Scnrm2(n *Int, x *complex64, incX *Int) float32 { return scnrm2(int(*n), x, int(*incX)) }

// Dznrm2 is the complex128 norm, returned as float64.
func Dznrm2(n *Int, x *complex128, incX *Int) float64 { return dznrm2(int(*n), x, int(*incX)) }

func asumv[F Real](n int, xp *F, incX int) F {
	if n <= 0 || incX <= 0 {
		return 0
	}
	x := vec(xp, n, incX)
	var sum F
	for i := 0; i < n; i++ {
		sum += absF(x[i*incX])
	}
	return sum
}

func scasum(n int, xp *complex64, incX int) float32 {
	if n <= 0 || incX <= 0 {
		return 0
	}
	x := vec(xp, n, incX)
	var sum float32
	for i := 0; i < n; i++ {
		sum += cabs1f(x[i*incX])
	}
	return sum
}

func dzasum(n int, xp *complex128, incX int) float64 {
	if n <= 0 || incX <= 0 {
		return 0
	}
	x := vec(xp, n, incX)
	var sum float64
	for i := 0; i < n; i++ {
		sum += cabs1d(x[i*incX])
	}
	return sum
}

// Sasum returns the sum of absolute values of x.
func Sasum(n *Int, x *float32, incX *Int) float32 { return asumv(int(*n), x, int(*incX)) }

// Dasum is the float64 Sasum.
func Dasum(n *Int, x *float64, incX *Int) float64 { return asumv(int(*n), x, int(*incX)) }

// Scasum sums |re|+|im| over a complex64 vector.
func Scasum(n *Int, x *complex64, incX *Int) float32 { return scasum(int(*n), x, int(*incX)) }

// Dzasum is the complex128 Scasum.
func Dzasum(n *Int, x *complex128, incX *Int) float64 { return dzasum(int(*n), x, int(*incX)) }

func iamaxv[F Real](n int, xp *F, incX int) Int {
	if n < 1 || incX <= 0 {
		return 0
	}
	if n == 1 {
		return 1
	}
	x := vec(xp, n, incX)
	best := Int(1)
	bmax := absF(x[0])
	for i := 1; i < n; i++ {
		if v := absF(x[i*incX]); v > bmax {
			best, bmax = Int(i+1), v
		}
	}
	return best
}

func icamax(n int, xp *complex64, incX int) Int {
	if n < 1 || incX <= 0 {
		return 0
	}
	if n == 1 {
		return 1
	}
	x := vec(xp, n, incX)
	best := Int(1)
	bmax := cabs1f(x[0])
	for i := 1; i < n; i++ {
		if v := cabs1f(x[i*incX]); v > bmax {
			best, bmax = Int(i+1), v
		}
	}
	return best
}

func izamax(n int, xp *complex128, incX int) Int {
	if n < 1 || incX <= 0 {
		return 0
	}
	if n == 1 {
		return 1
	}
	x := vec(xp, n, incX)
	best := Int(1)
	bmax := cabs1d(x[0])
	for i := 1; i < n; i++ {
		if v := cabs1d(x[i*incX]); v > bmax {
			best, bmax = Int(i+1), v
		}
	}
	return best
}

// Isamax returns the 1-based index of the first element with the largest
// absolute value, or 0 when n < 1 or incX <= 0.
func Isamax(n *Int, x *float32, incX *Int) Int { return iamaxv(int(*n), x, int(*incX)) }

// Idamax is the float64 Isamax.
func Idamax(n *Int, x *float64, incX *Int) Int { return iamaxv(int(*n), x, int(*incX)) }

// Icamax ranks complex64 elements by |re|+|im|.
func Icamax(n *Int, x *complex64, incX *Int) Int { return icamax(int(*n), x, int(*incX)) }

// Izamax is the complex128 Icamax.
func Izamax(n *Int, x *complex128, incX *Int) Int { return izamax(int(*n), x, int(*incX)) }

// Scabs1 returns |re|+|im| of a complex64 scalar.
func Scabs1(z *complex64) float32 { return cabs1f(*z) }

// Dcabs1 is the complex128 Scabs1.
func Dcabs1(z *complex128) float64 { return cabs1d(*z) }
