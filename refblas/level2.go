package refblas

// Level 2: general matrix-vector products.

func gemvReal[F Real](doTrans bool, m, n int, alpha F, ap *F, lda int, xp *F, incX int, beta F, yp *F, incY int) {
	if m == 0 || n == 0 || (alpha == 0 && beta == 1) {
		return
	}
	lenX, lenY := n, m
	if doTrans {
		lenX, lenY = m, n
	}
	x := vec(xp, lenX, incX)
	y := vec(yp, lenY, incY)
	if beta != 1 {
		for i := 0; i < lenY; i++ {
			iy := idx(i, lenY, incY)
			if beta == 0 {
				y[iy] = 0
			} else {
				y[iy] *= beta
			}
		}
	}
	if alpha == 0 {
		return
	}
	a := mat(ap, m, n, lda)
	if !doTrans {
		for j := 0; j < n; j++ {
			temp := alpha * x[idx(j, n, incX)]
			for i := 0; i < m; i++ {
				y[idx(i, m, incY)] += temp * a[i+j*lda]
			}
		}
		return
	}
	for j := 0; j < n; j++ {
		var temp F
		for i := 0; i < m; i++ {
			temp += a[i+j*lda] * x[idx(i, m, incX)]
		}
		y[idx(j, n, incY)] += alpha * temp
	}
}

func gemvCplx[C Complex](doTrans, doConj bool, m, n int, alpha C, ap *C, lda int, xp *C, incX int, beta C, yp *C, incY int) {
	if m == 0 || n == 0 || (alpha == 0 && beta == 1) {
		return
	}
	lenX, lenY := n, m
	if doTrans {
		lenX, lenY = m, n
	}
	x := vec(xp, lenX, incX)
	y := vec(yp, lenY, incY)
	if beta != 1 {
		for i := 0; i < lenY; i++ {
			iy := idx(i, lenY, incY)
			if beta == 0 {
				y[iy] = 0
			} else {
				y[iy] *= beta
			}
		}
	}
	if alpha == 0 {
		return
	}
	a := mat(ap, m, n, lda)
	if !doTrans {
		for j := 0; j < n; j++ {
			temp := alpha * x[idx(j, n, incX)]
			for i := 0; i < m; i++ {
				av := a[i+j*lda]
				if doConj {
					av = conjOf(av)
				}
				y[idx(i, m, incY)] += temp * av
			}
		}
		return
	}
	for j := 0; j < n; j++ {
		var temp C
		for i := 0; i < m; i++ {
			av := a[i+j*lda]
			if doConj {
				av = conjOf(av)
			}
			temp += av * x[idx(i, m, incX)]
		}
		y[idx(j, n, incY)] += alpha * temp
	}
}

// Sgemv computes y := alpha*op(A)*x + beta*y.
func Sgemv(trans *byte, m, n *Int, alpha *float32, a *float32, lda *Int, x *float32, incX *Int, beta *float32, y *float32, incY *Int) {
	t, _ := transMode("sgemv", *trans, false)
	gemvReal(t, int(*m), int(*n), *alpha, a, int(*lda), x, int(*incX), *beta, y, int(*incY))
}

// Dgemv is the float64 Sgemv.
func Dgemv(trans *byte, m, n *Int, alpha *float64, a *float64, lda *Int, x *float64, incX *Int, beta *float64, y *float64, incY *Int) {
	t, _ := transMode("dgemv", *trans, false)
	gemvReal(t, int(*m), int(*n), *alpha, a, int(*lda), x, int(*incX), *beta, y, int(*incY))
}

// Cgemv is the complex64 Sgemv; op may also conjugate without
// transposing ('R').
func Cgemv(trans *byte, m, n *Int, alpha *complex64, a *complex64, lda *Int, x *complex64, incX *Int, beta *complex64, y *complex64, incY *Int) {
	t, cj := transMode("cgemv", *trans, true)
	gemvCplx(t, cj, int(*m), int(*n), *alpha, a, int(*lda), x, int(*incX), *beta, y, int(*incY))
}

// Zgemv is the complex128 Cgemv.
func Zgemv(trans *byte, m, n *Int, alpha *complex128, a *complex128, lda *Int, x *complex128, incX *Int, beta *complex128, y *complex128, incY *Int) {
	t, cj := transMode("zgemv", *trans, true)
	gemvCplx(t, cj, int(*m), int(*n), *alpha, a, int(*lda), x, int(*incX), *beta, y, int(*incY))
}

// Level 2: symmetric and Hermitian matrix-vector products.

func symv[F Real](upper bool, n int, alpha F, ap *F, lda int, xp *F, incX int, beta F, yp *F, incY int) {
	if n == 0 || (alpha == 0 && beta == 1) {
		return
	}
	x := vec(xp, n, incX)
	y := vec(yp, n, incY)
	if beta != 1 {
		for i := 0; i < n; i++ {
			iy := idx(i, n, incY)
			if beta == 0 {
				y[iy] = 0
			} else {
				y[iy] *= beta
			}
		}
	}
	if alpha == 0 {
		return
	}
	a := mat(ap, n, n, lda)
	if upper {
		for j := 0; j < n; j++ {
			temp1 := alpha * x[idx(j, n, incX)]
			var temp2 F
			for i := 0; i < j; i++ {
				y[idx(i, n, incY)] += temp1 * a[i+j*lda]
				temp2 += a[i+j*lda] * x[idx(i, n, incX)]
			}
			y[idx(j, n, incY)] += temp1*a[j+j*lda] + alpha*temp2
		}
		return
	}
	for j := 0; j < n; j++ {
		temp1 := alpha * x[idx(j, n, incX)]
		var temp2 F
		y[idx(j, n, incY)] += temp1 * a[j+j*lda]
		for i := j + 1; i < n; i++ {
			y[idx(i, n, incY)] += temp1 * a[i+j*lda]
			temp2 += a[i+j*lda] * x[idx(i, n, incX)]
		}
		y[idx(j, n, incY)] += alpha * temp2
	}
}

func hemv[C Complex](upper bool, n int, alpha C, ap *C, lda int, xp *C, incX int, beta C, yp *C, incY int) {
	if n == 0 || (alpha == 0 && beta == 1) {
		return
	}
	x := vec(xp, n, incX)
	y := vec(yp, n, incY)
	if beta != 1 {
		for i := 0; i < n; i++ {
			iy := idx(i, n, incY)
			if beta == 0 {
				y[iy] = 0
			} else {
				y[iy] *= beta
			}
		}
	}
	if alpha == 0 {
		return
	}
	a := mat(ap, n, n, lda)
	// Stored diagonal imaginary parts are ignored.
	if upper {
		for j := 0; j < n; j++ {
			temp1 := alpha * x[idx(j, n, incX)]
			var temp2 C
			for i := 0; i < j; i++ {
				y[idx(i, n, incY)] += temp1 * a[i+j*lda]
				temp2 += conjOf(a[i+j*lda]) * x[idx(i, n, incX)]
			}
			y[idx(j, n, incY)] += temp1*realOnly(a[j+j*lda]) + alpha*temp2
		}
		return
	}
	for j := 0; j < n; j++ {
		temp1 := alpha * x[idx(j, n, incX)]
		var temp2 C
		y[idx(j, n, incY)] += temp1 * realOnly(a[j+j*lda])
		for i := j + 1; i < n; i++ {
			y[idx(i, n, incY)] += temp1 * a[i+j*lda]
			temp2 += conjOf(a[i+j*lda]) * x[idx(i, n, incX)]
		}
		y[idx(j, n, incY)] += alpha * temp2
	}
}

// Ssymv computes y := alpha*A*x + beta*y for symmetric A stored in one
// triangle.
func Ssymv(uplo *byte, n *Int, alpha *float32, a *float32, lda *Int, x *float32, incX *Int, beta *float32, y *float32, incY *Int) {
	symv(uploMode("ssymv", *uplo), int(*n), *alpha, a, int(*lda), x, int(*incX), *beta, y, int(*incY))
}

// Dsymv is the float64 Ssymv.
func Dsymv(uplo *byte, n *Int, alpha *float64, a *float64, lda *Int, x *float64, incX *Int, beta *float64, y *float64, incY *Int) {
	symv(uploMode("dsymv", *uplo), int(*n), *alpha, a, int(*lda), x, int(*incX), *beta, y, int(*incY))
}

// Chemv computes y := alpha*A*x + beta*y for Hermitian A.
func Chemv(uplo *byte, n *Int, alpha *complex64, a *complex64, lda *Int, x *complex64, incX *Int, beta *complex64, y *complex64, incY *Int) {
	hemv(uploMode("chemv", *uplo), int(*n), *alpha, a, int(*lda), x, int(*incX), *beta, y, int(*incY))
}

// Zhemv is the complex128 Chemv.
func Zhemv(uplo *byte, n *Int, alpha *complex128, a *complex128, lda *Int, x *complex128, incX *Int, beta *complex128, y *complex128, incY *Int) {
	hemv(uploMode("zhemv", *uplo), int(*n), *alpha, a, int(*lda), x, int(*incX), *beta, y, int(*incY))
}

// Level 2: triangular matrix-vector products and solves.

func trmvReal[F Real](upper, doTrans, unit bool, n int, ap *F, lda int, xp *F, incX int) {
	if n == 0 {
		return
	}
	a := mat(ap, n, n, lda)
	x := vec(xp, n, incX)
	if !doTrans {
		if upper {
			for j := 0; j < n; j++ {
				jx := idx(j, n, incX)
				if x[jx] == 0 {
					continue
				}
				temp := x[jx]
				for i := 0; i < j; i++ {
					x[idx(i, n, incX)] += temp * a[i+j*lda]
				}
				if !unit {
					x[jx] *= a[j+j*lda]
				}
			}
			return
		}
		for j := n - 1; j >= 0; j-- {
			jx := idx(j, n, incX)
			if x[jx] == 0 {
				continue
			}
			temp := x[jx]
			for i := n - 1; i > j; i-- {
				x[idx(i, n, incX)] += temp * a[i+j*lda]
			}
			if !unit {
				x[jx] *= a[j+j*lda]
			}
		}
		return
	}
	if upper {
		for j := n - 1; j >= 0; j-- {
			jx := idx(j, n, incX)
			temp := x[jx]
			if !unit {
				temp *= a[j+j*lda]
			}
			for i := j - 1; i >= 0; i-- {
				temp += a[i+j*lda] * x[idx(i, n, incX)]
			}
			x[jx] = temp
		}
		return
	}
	for j := 0; j < n; j++ {
		jx := idx(j, n, incX)
		temp := x[jx]
		if !unit {
			temp *= a[j+j*lda]
		}
		for i := j + 1; i < n; i++ {
			temp += a[i+j*lda] * x[idx(i, n, incX)]
		}
		x[jx] = temp
	}
}

func trmvCplx[C Complex](upper, doTrans, doConj, unit bool, n int, ap *C, lda int, xp *C, incX int) {
	if n == 0 {
		return
	}
	a := mat(ap, n, n, lda)
	x := vec(xp, n, incX)
	el := func(i, j int) C {
		v := a[i+j*lda]
		if doConj {
			v = conjOf(v)
		}
		return v
	}
	if !doTrans {
		if upper {
			for j := 0; j < n; j++ {
				jx := idx(j, n, incX)
				if x[jx] == 0 {
					continue
				}
				temp := x[jx]
				for i := 0; i < j; i++ {
					x[idx(i, n, incX)] += temp * el(i, j)
				}
				if !unit {
					x[jx] *= el(j, j)
				}
			}
			return
		}
		for j := n - 1; j >= 0; j-- {
			jx := idx(j, n, incX)
			if x[jx] == 0 {
				continue
			}
			temp := x[jx]
			for i := n - 1; i > j; i-- {
				x[idx(i, n, incX)] += temp * el(i, j)
			}
			if !unit {
				x[jx] *= el(j, j)
			}
		}
		return
	}
	if upper {
		for j := n - 1; j >= 0; j-- {
			jx := idx(j, n, incX)
			temp := x[jx]
			if !unit {
				temp *= el(j, j)
			}
			for i := j - 1; i >= 0; i-- {
				temp += el(i, j) * x[idx(i, n, incX)]
			}
			x[jx] = temp
		}
		return
	}
	for j := 0; j < n; j++ {
		jx := idx(j, n, incX)
		temp := x[jx]
		if !unit {
			temp *= el(j, j)
		}
		for i := j + 1; i < n; i++ {
			temp += el(i, j) * x[idx(i, n, incX)]
		}
		x[jx] = temp
	}
}

func trsvReal[F Real](upper, doTrans, unit bool, n int, ap *F, lda int, xp *F, incX int) {
	if n == 0 {
		return
	}
	a := mat(ap, n, n, lda)
	x := vec(xp, n, incX)
	if !doTrans {
		if upper {
			for j := n - 1; j >= 0; j-- {
				jx := idx(j, n, incX)
				if x[jx] == 0 {
					continue
				}
				if !unit {
					x[jx] /= a[j+j*lda]
				}
				temp := x[jx]
				for i := j - 1; i >= 0; i-- {
					x[idx(i, n, incX)] -= temp * a[i+j*lda]
				}
			}
			return
		}
		for j := 0; j < n; j++ {
			jx := idx(j, n, incX)
			if x[jx] == 0 {
				continue
			}
			if !unit {
				x[jx] /= a[j+j*lda]
			}
			temp := x[jx]
			for i := j + 1; i < n; i++ {
				x[idx(i, n, incX)] -= temp * a[i+j*lda]
			}
		}
		return
	}
	if upper {
		for j := 0; j < n; j++ {
			jx := idx(j, n, incX)
			temp := x[jx]
			for i := 0; i < j; i++ {
				temp -= a[i+j*lda] * x[idx(i, n, incX)]
			}
			if !unit {
				temp /= a[j+j*lda]
			}
			x[jx] = temp
		}
		return
	}
	for j := n - 1; j >= 0; j-- {
		jx := idx(j, n, incX)
		temp := x[jx]
		for i := n - 1; i > j; i-- {
			temp -= a[i+j*lda] * x[idx(i, n, incX)]
		}
		if !unit {
			temp /= a[j+j*lda]
		}
		x[jx] = temp
	}
}

func trsvCplx[C Complex](upper, doTrans, doConj, unit bool, n int, ap *C, lda int, xp *C, incX int) {
	if n == 0 {
		return
	}
	a := mat(ap, n, n, lda)
	x := vec(xp, n, incX)
	el := func(i, j int) C {
		v := a[i+j*lda]
		if doConj {
			v = conjOf(v)
		}
		return v
	}
	if !doTrans {
		if upper {
			for j := n - 1; j >= 0; j-- {
				jx := idx(j, n, incX)
				if x[jx] == 0 {
					continue
				}
				if !unit {
					x[jx] /= el(j, j)
				}
				temp := x[jx]
				for i := j - 1; i >= 0; i-- {
					x[idx(i, n, incX)] -= temp * el(i, j)
				}
			}
			return
		}
		for j := 0; j < n; j++ {
			jx := idx(j, n, incX)
			if x[jx] == 0 {
				continue
			}
			if !unit {
				x[jx] /= el(j, j)
			}
			temp := x[jx]
			for i := j + 1; i < n; i++ {
				x[idx(i, n, incX)] -= temp * el(i, j)
			}
		}
		return
	}
	if upper {
		for j := 0; j < n; j++ {
			jx := idx(j, n, incX)
			temp := x[jx]
			for i := 0; i < j; i++ {
				temp -= el(i, j) * x[idx(i, n, incX)]
			}
			if !unit {
				temp /= el(j, j)
			}
			x[jx] = temp
		}
		return
	}
	for j := n - 1; j >= 0; j-- {
		jx := idx(j, n, incX)
		temp := x[jx]
		for i := n - 1; i > j; i-- {
			temp -= el(i, j) * x[idx(i, n, incX)]
		}
		if !unit {
			temp /= el(j, j)
		}
		x[jx] = temp
	}
}

// Strmv computes x := op(A)*x for triangular A.
func Strmv(uplo, trans, diag *byte, n *Int, a *float32, lda *Int, x *float32, incX *Int) {
	t, _ := transMode("strmv", *trans, false)
	trmvReal(uploMode("strmv", *uplo), t, diagMode("strmv", *diag), int(*n), a, int(*lda), x, int(*incX))
}

// Dtrmv is the float64 Strmv.
func Dtrmv(uplo, trans, diag *byte, n *Int, a *float64, lda *Int, x *float64, incX *Int) {
	t, _ := transMode("dtrmv", *trans, false)
	trmvReal(uploMode("dtrmv", *uplo), t, diagMode("dtrmv", *diag), int(*n), a, int(*lda), x, int(*incX))
}

// Ctrmv is the complex64 Strmv.
func Ctrmv(uplo, trans, diag *byte, n *Int, a *complex64, lda *Int, x *complex64, incX *Int) {
	t, cj := transMode("ctrmv", *trans, true)
	trmvCplx(uploMode("ctrmv", *uplo), t, cj, diagMode("ctrmv", *diag), int(*n), a, int(*lda), x, int(*incX))
}

// Ztrmv is the complex128 Strmv.
func Ztrmv(uplo, trans, diag *byte, n *Int, a *complex128, lda *Int, x *complex128, incX *Int) {
	t, cj := transMode("ztrmv", *trans, true)
	trmvCplx(uploMode("ztrmv", *uplo), t, cj, diagMode("ztrmv", *diag), int(*n), a, int(*lda), x, int(*incX))
}

// Strsv solves op(A)*x = b in place, with b arriving in x.
func Strsv(uplo, trans, diag *byte, n *Int, a *float32, lda *Int, x *float32, incX *Int) {
	t, _ := transMode("strsv", *trans, false)
	trsvReal(uploMode("strsv", *uplo), t, diagMode("strsv", *diag), int(*n), a, int(*lda), x, int(*incX))
}

// Dtrsv is the float64 Strsv.
func Dtrsv(uplo, trans, diag *byte, n *Int, a *float64, lda *Int, x *float64, incX *Int) {
	t, _ := transMode("dtrsv", *trans, false)
	trsvReal(uploMode("dtrsv", *uplo), t, diagMode("dtrsv", *diag), int(*n), a, int(*lda), x, int(*incX))
}

// Ctrsv is the complex64 Strsv.
func Ctrsv(uplo, trans, diag *byte, n *Int, a *complex64, lda *Int, x *complex64, incX *Int) {
	t, cj := transMode("ctrsv", *trans, true)
	trsvCplx(uploMode("ctrsv", *uplo), t, cj, diagMode("ctrsv", *diag), int(*n), a, int(*lda), x, int(*incX))
}

// Ztrsv is the complex128 Strsv.
func Ztrsv(uplo, trans, diag *byte, n *Int, a *complex128, lda *Int, x *complex128, incX *Int) {
	t, cj := transMode("ztrsv", *trans, true)
	trsvCplx(uploMode("ztrsv", *uplo), t, cj, diagMode("ztrsv", *diag), int(*n), a, int(*lda), x, int(*incX))
}

// Level 2: rank-1 and rank-2 updates.

func ger[T Number](m, n int, alpha T, xp *T, incX int, yp *T, incY int, ap *T, lda int) {
	if m == 0 || n == 0 || alpha == 0 {
		return
	}
	a := mat(ap, m, n, lda)
	x := vec(xp, m, incX)
	y := vec(yp, n, incY)
	for j := 0; j < n; j++ {
		yv := y[idx(j, n, incY)]
		if yv == 0 {
			continue
		}
		temp := alpha * yv
		for i := 0; i < m; i++ {
			a[i+j*lda] += x[idx(i, m, incX)] * temp
		}
	}
}

func gerc[C Complex](m, n int, alpha C, xp *C, incX int, yp *C, incY int, ap *C, lda int) {
	if m == 0 || n == 0 || alpha == 0 {
		return
	}
	a := mat(ap, m, n, lda)
	x := vec(xp, m, incX)
	y := vec(yp, n, incY)
	for j := 0; j < n; j++ {
		yv := y[idx(j, n, incY)]
		if yv == 0 {
			continue
		}
		temp := alpha * conjOf(yv)
		for i := 0; i < m; i++ {
			a[i+j*lda] += x[idx(i, m, incX)] * temp
		}
	}
}

// Sger computes A += alpha*x*y^T.
func Sger(m, n *Int, alpha *float32, x *float32, incX *Int, y *float32, incY *Int, a *float32, lda *Int) {
	ger(int(*m), int(*n), *alpha, x, int(*incX), y, int(*incY), a, int(*lda))
}

// Dger is the float64 Sger.
func Dger(m, n *Int, alpha *float64, x *float64, incX *Int, y *float64, incY *Int, a *float64, lda *Int) {
	ger(int(*m), int(*n), *alpha, x, int(*incX), y, int(*incY), a, int(*lda))
}

// Cgeru computes A += alpha*x*y^T without conjugation.
func Cgeru(m, n *Int, alpha *complex64, x *complex64, incX *Int, y *complex64, incY *Int, a *complex64, lda *Int) {
	ger(int(*m), int(*n), *alpha, x, int(*incX), y, int(*incY), a, int(*lda))
}

// Zgeru is the complex128 Cgeru.
func Zgeru(m, n *Int, alpha *complex128, x *complex128, incX *Int, y *complex128, incY *Int, a *complex128, lda *Int) {
	ger(int(*m), int(*n), *alpha, x, int(*incX), y, int(*incY), a, int(*lda))
}

// Cgerc computes A += alpha*x*y^H.
func Cgerc(m, n *Int, alpha *complex64, x *complex64, incX *Int, y *complex64, incY *Int, a *complex64, lda *Int) {
	gerc(int(*m), int(*n), *alpha, x, int(*incX), y, int(*incY), a, int(*lda))
}

// Zgerc is the complex128 Cgerc.
func Zgerc(m, n *Int, alpha *complex128, x *complex128, incX *Int, y *complex128, incY *Int, a *complex128, lda *Int) {
	gerc(int(*m), int(*n), *alpha, x, int(*incX), y, int(*incY), a, int(*lda))
}

func syr[F Real](upper bool, n int, alpha F, xp *F, incX int, ap *F, lda int) {
	if n == 0 || alpha == 0 {
		return
	}
	a := mat(ap, n, n, lda)
	x := vec(xp, n, incX)
	for j := 0; j < n; j++ {
		xv := x[idx(j, n, incX)]
		if xv == 0 {
			continue
		}
		temp := alpha * xv
		if upper {
			for i := 0; i <= j; i++ {
				a[i+j*lda] += x[idx(i, n, incX)] * temp
			}
		} else {
			for i := j; i < n; i++ {
				a[i+j*lda] += x[idx(i, n, incX)] * temp
			}
		}
	}
}

func her[C Complex, F Real](upper bool, n int, alpha F, xp *C, incX int, ap *C, lda int) {
	if n == 0 || alpha == 0 {
		return
	}
	a := mat(ap, n, n, lda)
	x := vec(xp, n, incX)
	af := float64(alpha)
	for j := 0; j < n; j++ {
		jj := j + j*lda
		xv := x[idx(j, n, incX)]
		if xv == 0 {
			a[jj] = realOnly(a[jj])
			continue
		}
		temp := scaleRe(af, conjOf(xv))
		if upper {
			for i := 0; i < j; i++ {
				a[i+j*lda] += x[idx(i, n, incX)] * temp
			}
		} else {
			for i := j + 1; i < n; i++ {
				a[i+j*lda] += x[idx(i, n, incX)] * temp
			}
		}
		a[jj] = C(complex(re(a[jj])+re(xv*temp), 0))
	}
}

func syr2[F Real](upper bool, n int, alpha F, xp *F, incX int, yp *F, incY int, ap *F, lda int) {
	if n == 0 || alpha == 0 {
		return
	}
	a := mat(ap, n, n, lda)
	x := vec(xp, n, incX)
	y := vec(yp, n, incY)
	for j := 0; j < n; j++ {
		xv, yv := x[idx(j, n, incX)], y[idx(j, n, incY)]
		if xv == 0 && yv == 0 {
			continue
		}
		temp1 := alpha * yv
		temp2 := alpha * xv
		if upper {
			for i := 0; i <= j; i++ {
				a[i+j*lda] += x[idx(i, n, incX)]*temp1 + y[idx(i, n, incY)]*temp2
			}
		} else {
			for i := j; i < n; i++ {
				a[i+j*lda] += x[idx(i, n, incX)]*temp1 + y[idx(i, n, incY)]*temp2
			}
		}
	}
}

func her2[C Complex](upper bool, n int, alpha C, xp *C, incX int, yp *C, incY int, ap *C, lda int) {
	if n == 0 || alpha == 0 {
		return
	}
	a := mat(ap, n, n, lda)
	x := vec(xp, n, incX)
	y := vec(yp, n, incY)
	for j := 0; j < n; j++ {
		jj := j + j*lda
		xv, yv := x[idx(j, n, incX)], y[idx(j, n, incY)]
		if xv == 0 && yv == 0 {
			a[jj] = realOnly(a[jj])
			continue
		}
		temp1 := alpha * conjOf(yv)
		temp2 := conjOf(alpha * xv)
		if upper {
			for i := 0; i < j; i++ {
				a[i+j*lda] += x[idx(i, n, incX)]*temp1 + y[idx(i, n, incY)]*temp2
			}
		} else {
			for i := j + 1; i < n; i++ {
				a[i+j*lda] += x[idx(i, n, incX)]*temp1 + y[idx(i, n, incY)]*temp2
			}
		}
		a[jj] = C(complex(re(a[jj])+re(xv*temp1+yv*temp2), 0))
	}
}

// Ssyr computes A += alpha*x*x^T on the stored triangle.
func Ssyr(uplo *byte, n *Int, alpha *float32, x *float32, incX *Int, a *float32, lda *Int) {
	syr(uploMode("ssyr", *uplo), int(*n), *alpha, x, int(*incX), a, int(*lda))
}

// Dsyr is the float64 Ssyr.
func Dsyr(uplo *byte, n *Int, alpha *float64, x *float64, incX *Int, a *float64, lda *Int) {
	syr(uploMode("dsyr", *uplo), int(*n), *alpha, x, int(*incX), a, int(*lda))
}

// Cher computes A += alpha*x*x^H with real alpha; stored diagonals stay
// real.
func Cher(uplo *byte, n *Int, alpha *float32, x *complex64, incX *Int, a *complex64, lda *Int) {
	her(uploMode("cher", *uplo), int(*n), *alpha, x, int(*incX), a, int(*lda))
}

// Zher is the complex128 Cher.
func Zher(uplo *byte, n *Int, alpha *float64, x *complex128, incX *Int, a *complex128, lda *Int) {
	her(uploMode("zher", *uplo), int(*n), *alpha, x, int(*incX), a, int(*lda))
}

// Ssyr2 computes A += alpha*(x*y^T + y*x^T) on the stored triangle.
func Ssyr2(uplo *byte, n *Int, alpha *float32, x *float32, incX *Int, y *float32, incY *Int, a *float32, lda *Int) {
	syr2(uploMode("ssyr2", *uplo), int(*n), *alpha, x, int(*incX), y, int(*incY), a, int(*lda))
}

// Dsyr2 is the float64 Ssyr2.
func Dsyr2(uplo *byte, n *Int, alpha *float64, x *float64, incX *Int, y *float64, incY *Int, a *float64, lda *Int) {
	syr2(uploMode("dsyr2", *uplo), int(*n), *alpha, x, int(*incX), y, int(*incY), a, int(*lda))
}

// Cher2 computes A += alpha*x*y^H + conj(alpha)*y*x^H; stored diagonals
// stay real.
func Cher2(uplo *byte, n *Int, alpha *complex64, x *complex64, incX *Int, y *complex64, incY *Int, a *complex64, lda *Int) {
	her2(uploMode("cher2", *uplo), int(*n), *alpha, x, int(*incX), y, int(*incY), a, int(*lda))
}

// Zher2 is the complex128 Cher2.
func Zher2(uplo *byte, n *Int, alpha *complex128, x *complex128, incX *Int, y *complex128, incY *Int, a *complex128, lda *Int) {
	her2(uploMode("zher2", *uplo), int(*n), *alpha, x, int(*incX), y, int(*incY), a, int(*lda))
}
