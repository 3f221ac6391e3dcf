package blasbridge

// Level 2 matrix-vector entry points. Row-major calls reinterpret the
// matrix buffer as its column-major transpose and compensate by rewriting
// flags, dimensions, and occasionally vector operands. Symmetric and
// triangular rewrites only touch flags; the Hermitian ones also need
// conjugated scratch vectors because transposing a Hermitian matrix
// conjugates it.

// Sgemv computes y = alpha*op(A)*x + beta*y for a general m x n matrix A.
func (be *Backend) Sgemv(order Order, trans Transpose, m, n int, alpha float32, a []float32, lda int, x []float32, incX int, beta float32, y []float32, incY int) error {
	const op = "Sgemv"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkTrans(op, trans); err != nil {
		return err
	}
	if err := checkDim(op, "m", m); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkMatrix(op, "a", order, m, n, lda, len(a)); err != nil {
		return err
	}
	lenX, lenY := n, m
	if trans == Trans || trans == ConjTrans {
		lenX, lenY = m, n
	}
	if err := checkVector(op, "x", lenX, incX, len(x)); err != nil {
		return err
	}
	if err := checkVector(op, "y", lenY, incY, len(y)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "sgemv")
	if err != nil {
		return err
	}
	kt, km, kn := trans.normalizeReal(), m, n
	if order == RowMajor {
		kt, km, kn = flipTransReal(trans), n, m
	}
	tc := transChar(kt)
	cm, cn, clda, cix, ciy := Int(km), Int(kn), Int(lda), Int(incX), Int(incY)
	funcOf[SgemvKernel](fp)(&tc, &cm, &cn, &alpha, ptr(a), &clda, ptr(x), &cix, &beta, ptr(y), &ciy)
	return nil
}

// Dgemv computes y = alpha*op(A)*x + beta*y for a general m x n matrix A.
func (be *Backend) Dgemv(order Order, trans Transpose, m, n int, alpha float64, a []float64, lda int, x []float64, incX int, beta float64, y []float64, incY int) error {
	const op = "Dgemv"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkTrans(op, trans); err != nil {
		return err
	}
	if err := checkDim(op, "m", m); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkMatrix(op, "a", order, m, n, lda, len(a)); err != nil {
		return err
	}
	lenX, lenY := n, m
	if trans == Trans || trans == ConjTrans {
		lenX, lenY = m, n
	}
	if err := checkVector(op, "x", lenX, incX, len(x)); err != nil {
		return err
	}
	if err := checkVector(op, "y", lenY, incY, len(y)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "dgemv")
	if err != nil {
		return err
	}
	kt, km, kn := trans.normalizeReal(), m, n
	if order == RowMajor {
		kt, km, kn = flipTransReal(trans), n, m
	}
	tc := transChar(kt)
	cm, cn, clda, cix, ciy := Int(km), Int(kn), Int(lda), Int(incX), Int(incY)
	funcOf[DgemvKernel](fp)(&tc, &cm, &cn, &alpha, ptr(a), &clda, ptr(x), &cix, &beta, ptr(y), &ciy)
	return nil
}

// Cgemv computes y = alpha*op(A)*x + beta*y for a general m x n matrix A.
// ConjNoTrans requests conjugation without transposition and reaches the
// kernel as the 'R' flag.
func (be *Backend) Cgemv(order Order, trans Transpose, m, n int, alpha complex64, a []complex64, lda int, x []complex64, incX int, beta complex64, y []complex64, incY int) error {
	const op = "Cgemv"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkTrans(op, trans); err != nil {
		return err
	}
	if err := checkDim(op, "m", m); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkMatrix(op, "a", order, m, n, lda, len(a)); err != nil {
		return err
	}
	lenX, lenY := n, m
	if trans == Trans || trans == ConjTrans {
		lenX, lenY = m, n
	}
	if err := checkVector(op, "x", lenX, incX, len(x)); err != nil {
		return err
	}
	if err := checkVector(op, "y", lenY, incY, len(y)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "cgemv")
	if err != nil {
		return err
	}
	kt, km, kn := trans, m, n
	if order == RowMajor {
		kt, km, kn = flipTransConj(trans), n, m
	}
	tc := transChar(kt)
	cm, cn, clda, cix, ciy := Int(km), Int(kn), Int(lda), Int(incX), Int(incY)
	funcOf[CgemvKernel](fp)(&tc, &cm, &cn, &alpha, ptr(a), &clda, ptr(x), &cix, &beta, ptr(y), &ciy)
	return nil
}

// Zgemv computes y = alpha*op(A)*x + beta*y for a general m x n matrix A.
// ConjNoTrans requests conjugation without transposition and reaches the
// kernel as the 'R' flag.
func (be *Backend) Zgemv(order Order, trans Transpose, m, n int, alpha complex128, a []complex128, lda int, x []complex128, incX int, beta complex128, y []complex128, incY int) error {
	const op = "Zgemv"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkTrans(op, trans); err != nil {
		return err
	}
	if err := checkDim(op, "m", m); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkMatrix(op, "a", order, m, n, lda, len(a)); err != nil {
		return err
	}
	lenX, lenY := n, m
	if trans == Trans || trans == ConjTrans {
		lenX, lenY = m, n
	}
	if err := checkVector(op, "x", lenX, incX, len(x)); err != nil {
		return err
	}
	if err := checkVector(op, "y", lenY, incY, len(y)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "zgemv")
	if err != nil {
		return err
	}
	kt, km, kn := trans, m, n
	if order == RowMajor {
		kt, km, kn = flipTransConj(trans), n, m
	}
	tc := transChar(kt)
	cm, cn, clda, cix, ciy := Int(km), Int(kn), Int(lda), Int(incX), Int(incY)
	funcOf[ZgemvKernel](fp)(&tc, &cm, &cn, &alpha, ptr(a), &clda, ptr(x), &cix, &beta, ptr(y), &ciy)
	return nil
}

// Ssymv computes y = alpha*A*x + beta*y for a symmetric matrix A of which
// the uplo triangle is stored.
func (be *Backend) Ssymv(order Order, uplo Uplo, n int, alpha float32, a []float32, lda int, x []float32, incX int, beta float32, y []float32, incY int) error {
	const op = "Ssymv"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkUplo(op, uplo); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkMatrix(op, "a", order, n, n, lda, len(a)); err != nil {
		return err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return err
	}
	if err := checkVector(op, "y", n, incY, len(y)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "ssymv")
	if err != nil {
		return err
	}
	ku := uplo
	if order == RowMajor {
		ku = flipUplo(uplo)
	}
	uc := uploChar(ku)
	cn, clda, cix, ciy := Int(n), Int(lda), Int(incX), Int(incY)
	funcOf[SsymvKernel](fp)(&uc, &cn, &alpha, ptr(a), &clda, ptr(x), &cix, &beta, ptr(y), &ciy)
	return nil
}

// Dsymv computes y = alpha*A*x + beta*y for a symmetric matrix A of which
// the uplo triangle is stored.
func (be *Backend) Dsymv(order Order, uplo Uplo, n int, alpha float64, a []float64, lda int, x []float64, incX int, beta float64, y []float64, incY int) error {
	const op = "Dsymv"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkUplo(op, uplo); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkMatrix(op, "a", order, n, n, lda, len(a)); err != nil {
		return err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return err
	}
	if err := checkVector(op, "y", n, incY, len(y)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "dsymv")
	if err != nil {
		return err
	}
	ku := uplo
	if order == RowMajor {
		ku = flipUplo(uplo)
	}
	uc := uploChar(ku)
	cn, clda, cix, ciy := Int(n), Int(lda), Int(incX), Int(incY)
	funcOf[DsymvKernel](fp)(&uc, &cn, &alpha, ptr(a), &clda, ptr(x), &cix, &beta, ptr(y), &ciy)
	return nil
}

// Chemv computes y = alpha*A*x + beta*y for a Hermitian matrix A of which
// the uplo triangle is stored.
//
// Row-major calls run the transposed kernel on conjugated data: alpha,
// beta, and a scratch copy of x are conjugated, y is conjugated in place
// around the call, and the triangle flag flips. The scratch copy has unit
// stride, so incX does not reach the kernel.
func (be *Backend) Chemv(order Order, uplo Uplo, n int, alpha complex64, a []complex64, lda int, x []complex64, incX int, beta complex64, y []complex64, incY int) error {
	const op = "Chemv"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkUplo(op, uplo); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkMatrix(op, "a", order, n, n, lda, len(a)); err != nil {
		return err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return err
	}
	if err := checkVector(op, "y", n, incY, len(y)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "chemv")
	if err != nil {
		return err
	}
	cn, clda, cix, ciy := Int(n), Int(lda), Int(incX), Int(incY)
	if order == ColMajor {
		uc := uploChar(uplo)
		funcOf[ChemvKernel](fp)(&uc, &cn, &alpha, ptr(a), &clda, ptr(x), &cix, &beta, ptr(y), &ciy)
		return nil
	}
	if n == 0 {
		return nil
	}
	uc := uploChar(flipUplo(uplo))
	ca, cb := conj64(alpha), conj64(beta)
	xc := conjVec64(x, n, incX)
	one := Int(1)
	conjInPlace64(y, n, incY)
	funcOf[ChemvKernel](fp)(&uc, &cn, &ca, ptr(a), &clda, ptr(xc), &one, &cb, ptr(y), &ciy)
	conjInPlace64(y, n, incY)
	return nil
}

// Zhemv computes y = alpha*A*x + beta*y for a Hermitian matrix A of which
// the uplo triangle is stored. See Chemv for the row-major rewrite.
func (be *Backend) Zhemv(order Order, uplo Uplo, n int, alpha complex128, a []complex128, lda int, x []complex128, incX int, beta complex128, y []complex128, incY int) error {
	const op = "Zhemv"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkUplo(op, uplo); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkMatrix(op, "a", order, n, n, lda, len(a)); err != nil {
		return err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return err
	}
	if err := checkVector(op, "y", n, incY, len(y)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "zhemv")
	if err != nil {
		return err
	}
	cn, clda, cix, ciy := Int(n), Int(lda), Int(incX), Int(incY)
	if order == ColMajor {
		uc := uploChar(uplo)
		funcOf[ZhemvKernel](fp)(&uc, &cn, &alpha, ptr(a), &clda, ptr(x), &cix, &beta, ptr(y), &ciy)
		return nil
	}
	if n == 0 {
		return nil
	}
	uc := uploChar(flipUplo(uplo))
	ca, cb := conj128(alpha), conj128(beta)
	xc := conjVec128(x, n, incX)
	one := Int(1)
	conjInPlace128(y, n, incY)
	funcOf[ZhemvKernel](fp)(&uc, &cn, &ca, ptr(a), &clda, ptr(xc), &one, &cb, ptr(y), &ciy)
	conjInPlace128(y, n, incY)
	return nil
}

// Strmv computes x = op(A)*x for a triangular matrix A.
func (be *Backend) Strmv(order Order, uplo Uplo, trans Transpose, diag Diag, n int, a []float32, lda int, x []float32, incX int) error {
	const op = "Strmv"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkUplo(op, uplo); err != nil {
		return err
	}
	if err := checkTrans(op, trans); err != nil {
		return err
	}
	if err := checkDiag(op, diag); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkMatrix(op, "a", order, n, n, lda, len(a)); err != nil {
		return err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "strmv")
	if err != nil {
		return err
	}
	ku, kt := uplo, trans.normalizeReal()
	if order == RowMajor {
		ku, kt = flipUplo(uplo), flipTransReal(trans)
	}
	uc, tc, dc := uploChar(ku), transChar(kt), diagChar(diag)
	cn, clda, cix := Int(n), Int(lda), Int(incX)
	funcOf[StrmvKernel](fp)(&uc, &tc, &dc, &cn, ptr(a), &clda, ptr(x), &cix)
	return nil
}

// Dtrmv computes x = op(A)*x for a triangular matrix A.
func (be *Backend) Dtrmv(order Order, uplo Uplo, trans Transpose, diag Diag, n int, a []float64, lda int, x []float64, incX int) error {
	const op = "Dtrmv"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkUplo(op, uplo); err != nil {
		return err
	}
	if err := checkTrans(op, trans); err != nil {
		return err
	}
	if err := checkDiag(op, diag); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkMatrix(op, "a", order, n, n, lda, len(a)); err != nil {
		return err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "dtrmv")
	if err != nil {
		return err
	}
	ku, kt := uplo, trans.normalizeReal()
	if order == RowMajor {
		ku, kt = flipUplo(uplo), flipTransReal(trans)
	}
	uc, tc, dc := uploChar(ku), transChar(kt), diagChar(diag)
	cn, clda, cix := Int(n), Int(lda), Int(incX)
	funcOf[DtrmvKernel](fp)(&uc, &tc, &dc, &cn, ptr(a), &clda, ptr(x), &cix)
	return nil
}

// Ctrmv computes x = op(A)*x for a triangular matrix A. The row-major
// rewrite flips the triangle and exchanges transposition while keeping
// conjugation, so ConjTrans becomes the 'R' flag.
func (be *Backend) Ctrmv(order Order, uplo Uplo, trans Transpose, diag Diag, n int, a []complex64, lda int, x []complex64, incX int) error {
	const op = "Ctrmv"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkUplo(op, uplo); err != nil {
		return err
	}
	if err := checkTrans(op, trans); err != nil {
		return err
	}
	if err := checkDiag(op, diag); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkMatrix(op, "a", order, n, n, lda, len(a)); err != nil {
		return err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "ctrmv")
	if err != nil {
		return err
	}
	ku, kt := uplo, trans
	if order == RowMajor {
		ku, kt = flipUplo(uplo), flipTransConj(trans)
	}
	uc, tc, dc := uploChar(ku), transChar(kt), diagChar(diag)
	cn, clda, cix := Int(n), Int(lda), Int(incX)
	funcOf[CtrmvKernel](fp)(&uc, &tc, &dc, &cn, ptr(a), &clda, ptr(x), &cix)
	return nil
}

// Ztrmv computes x = op(A)*x for a triangular matrix A. See Ctrmv for
// the row-major rewrite.
func (be *Backend) Ztrmv(order Order, uplo Uplo, trans Transpose, diag Diag, n int, a []complex128, lda int, x []complex128, incX int) error {
	const op = "Ztrmv"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkUplo(op, uplo); err != nil {
		return err
	}
	if err := checkTrans(op, trans); err != nil {
		return err
	}
	if err := checkDiag(op, diag); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkMatrix(op, "a", order, n, n, lda, len(a)); err != nil {
		return err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "ztrmv")
	if err != nil {
		return err
	}
	ku, kt := uplo, trans
	if order == RowMajor {
		ku, kt = flipUplo(uplo), flipTransConj(trans)
	}
	uc, tc, dc := uploChar(ku), transChar(kt), diagChar(diag)
	cn, clda, cix := Int(n), Int(lda), Int(incX)
	funcOf[ZtrmvKernel](fp)(&uc, &tc, &dc, &cn, ptr(a), &clda, ptr(x), &cix)
	return nil
}

// Strsv solves op(A)*x = b for x, overwriting x, where A is triangular.
func (be *Backend) Strsv(order Order, uplo Uplo, trans Transpose, diag Diag, n int, a []float32, lda int, x []float32, incX int) error {
	const op = "Strsv"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkUplo(op, uplo); err != nil {
		return err
	}
	if err := checkTrans(op, trans); err != nil {
		return err
	}
	if err := checkDiag(op, diag); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkMatrix(op, "a", order, n, n, lda, len(a)); err != nil {
		return err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "strsv")
	if err != nil {
		return err
	}
	ku, kt := uplo, trans.normalizeReal()
	if order == RowMajor {
		ku, kt = flipUplo(uplo), flipTransReal(trans)
	}
	uc, tc, dc := uploChar(ku), transChar(kt), diagChar(diag)
	cn, clda, cix := Int(n), Int(lda), Int(incX)
	funcOf[StrsvKernel](fp)(&uc, &tc, &dc, &cn, ptr(a), &clda, ptr(x), &cix)
	return nil
}

// Dtrsv solves op(A)*x = b for x, overwriting x, where A is triangular.
func (be *Backend) Dtrsv(order Order, uplo Uplo, trans Transpose, diag Diag, n int, a []float64, lda int, x []float64, incX int) error {
	const op = "Dtrsv"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkUplo(op, uplo); err != nil {
		return err
	}
	if err := checkTrans(op, trans); err != nil {
		return err
	}
	if err := checkDiag(op, diag); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkMatrix(op, "a", order, n, n, lda, len(a)); err != nil {
		return err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "dtrsv")
	if err != nil {
		return err
	}
	ku, kt := uplo, trans.normalizeReal()
	if order == RowMajor {
		ku, kt = flipUplo(uplo), flipTransReal(trans)
	}
	uc, tc, dc := uploChar(ku), transChar(kt), diagChar(diag)
	cn, clda, cix := Int(n), Int(lda), Int(incX)
	funcOf[DtrsvKernel](fp)(&uc, &tc, &dc, &cn, ptr(a), &clda, ptr(x), &cix)
	return nil
}

// Ctrsv solves op(A)*x = b for x, overwriting x, where A is triangular.
// See Ctrmv for the row-major rewrite.
func (be *Backend) Ctrsv(order Order, uplo Uplo, trans Transpose, diag Diag, n int, a []complex64, lda int, x []complex64, incX int) error {
	const op = "Ctrsv"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkUplo(op, uplo); err != nil {
		return err
	}
	if err := checkTrans(op, trans); err != nil {
		return err
	}
	if err := checkDiag(op, diag); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkMatrix(op, "a", order, n, n, lda, len(a)); err != nil {
		return err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "ctrsv")
	if err != nil {
		return err
	}
	ku, kt := uplo, trans
	if order == RowMajor {
		ku, kt = flipUplo(uplo), flipTransConj(trans)
	}
	uc, tc, dc := uploChar(ku), transChar(kt), diagChar(diag)
	cn, clda, cix := Int(n), Int(lda), Int(incX)
	funcOf[CtrsvKernel](fp)(&uc, &tc, &dc, &cn, ptr(a), &clda, ptr(x), &cix)
	return nil
}

// Ztrsv solves op(A)*x = b for x, overwriting x, where A is triangular.
// See Ctrmv for the row-major rewrite.
func (be *Backend) Ztrsv(order Order, uplo Uplo, trans Transpose, diag Diag, n int, a []complex128, lda int, x []complex128, incX int) error {
	const op = "Ztrsv"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkUplo(op, uplo); err != nil {
		return err
	}
	if err := checkTrans(op, trans); err != nil {
		return err
	}
	if err := checkDiag(op, diag); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkMatrix(op, "a", order, n, n, lda, len(a)); err != nil {
		return err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "ztrsv")
	if err != nil {
		return err
	}
	ku, kt := uplo, trans
	if order == RowMajor {
		ku, kt = flipUplo(uplo), flipTransConj(trans)
	}
	uc, tc, dc := uploChar(ku), transChar(kt), diagChar(diag)
	cn, clda, cix := Int(n), Int(lda), Int(incX)
	funcOf[ZtrsvKernel](fp)(&uc, &tc, &dc, &cn, ptr(a), &clda, ptr(x), &cix)
	return nil
}

// Sger performs the rank one update A += alpha*x*y^T on an m x n matrix.
func (be *Backend) Sger(order Order, m, n int, alpha float32, x []float32, incX int, y []float32, incY int, a []float32, lda int) error {
	const op = "Sger"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkDim(op, "m", m); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkVector(op, "x", m, incX, len(x)); err != nil {
		return err
	}
	if err := checkVector(op, "y", n, incY, len(y)); err != nil {
		return err
	}
	if err := checkMatrix(op, "a", order, m, n, lda, len(a)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "sger")
	if err != nil {
		return err
	}
	km, kn := m, n
	kx, kix, ky, kiy := x, incX, y, incY
	if order == RowMajor {
		km, kn = n, m
		kx, kix, ky, kiy = y, incY, x, incX
	}
	cm, cn, clda, cix, ciy := Int(km), Int(kn), Int(lda), Int(kix), Int(kiy)
	funcOf[SgerKernel](fp)(&cm, &cn, &alpha, ptr(kx), &cix, ptr(ky), &ciy, ptr(a), &clda)
	return nil
}

// Dger performs the rank one update A += alpha*x*y^T on an m x n matrix.
func (be *Backend) Dger(order Order, m, n int, alpha float64, x []float64, incX int, y []float64, incY int, a []float64, lda int) error {
	const op = "Dger"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkDim(op, "m", m); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkVector(op, "x", m, incX, len(x)); err != nil {
		return err
	}
	if err := checkVector(op, "y", n, incY, len(y)); err != nil {
		return err
	}
	if err := checkMatrix(op, "a", order, m, n, lda, len(a)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "dger")
	if err != nil {
		return err
	}
	km, kn := m, n
	kx, kix, ky, kiy := x, incX, y, incY
	if order == RowMajor {
		km, kn = n, m
		kx, kix, ky, kiy = y, incY, x, incX
	}
	cm, cn, clda, cix, ciy := Int(km), Int(kn), Int(lda), Int(kix), Int(kiy)
	funcOf[DgerKernel](fp)(&cm, &cn, &alpha, ptr(kx), &cix, ptr(ky), &ciy, ptr(a), &clda)
	return nil
}

// Cgeru performs the rank one update A += alpha*x*y^T on an m x n matrix.
func (be *Backend) Cgeru(order Order, m, n int, alpha complex64, x []complex64, incX int, y []complex64, incY int, a []complex64, lda int) error {
	const op = "Cgeru"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkDim(op, "m", m); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkVector(op, "x", m, incX, len(x)); err != nil {
		return err
	}
	if err := checkVector(op, "y", n, incY, len(y)); err != nil {
		return err
	}
	if err := checkMatrix(op, "a", order, m, n, lda, len(a)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "cgeru")
	if err != nil {
		return err
	}
	km, kn := m, n
	kx, kix, ky, kiy := x, incX, y, incY
	if order == RowMajor {
		km, kn = n, m
		kx, kix, ky, kiy = y, incY, x, incX
	}
	cm, cn, clda, cix, ciy := Int(km), Int(kn), Int(lda), Int(kix), Int(kiy)
	funcOf[CgeruKernel](fp)(&cm, &cn, &alpha, ptr(kx), &cix, ptr(ky), &ciy, ptr(a), &clda)
	return nil
}

// Zgeru performs the rank one update A += alpha*x*y^T on an m x n matrix.
func (be *Backend) Zgeru(order Order, m, n int, alpha complex128, x []complex128, incX int, y []complex128, incY int, a []complex128, lda int) error {
	const op = "Zgeru"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkDim(op, "m", m); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkVector(op, "x", m, incX, len(x)); err != nil {
		return err
	}
	if err := checkVector(op, "y", n, incY, len(y)); err != nil {
		return err
	}
	if err := checkMatrix(op, "a", order, m, n, lda, len(a)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "zgeru")
	if err != nil {
		return err
	}
	km, kn := m, n
	kx, kix, ky, kiy := x, incX, y, incY
	if order == RowMajor {
		km, kn = n, m
		kx, kix, ky, kiy = y, incY, x, incX
	}
	cm, cn, clda, cix, ciy := Int(km), Int(kn), Int(lda), Int(kix), Int(kiy)
	funcOf[ZgeruKernel](fp)(&cm, &cn, &alpha, ptr(kx), &cix, ptr(ky), &ciy, ptr(a), &clda)
	return nil
}

// Cgerc performs the rank one update A += alpha*x*y^H on an m x n matrix.
//
// The row-major rewrite targets A^T = conj(y)*(conj(x))^H scaled by
// alpha, so the kernel sees conjugated scratch copies of y and x in the
// swapped operand slots and alpha passes through unchanged.
func (be *Backend) Cgerc(order Order, m, n int, alpha complex64, x []complex64, incX int, y []complex64, incY int, a []complex64, lda int) error {
	const op = "Cgerc"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkDim(op, "m", m); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkVector(op, "x", m, incX, len(x)); err != nil {
		return err
	}
	if err := checkVector(op, "y", n, incY, len(y)); err != nil {
		return err
	}
	if err := checkMatrix(op, "a", order, m, n, lda, len(a)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "cgerc")
	if err != nil {
		return err
	}
	clda := Int(lda)
	if order == ColMajor {
		cm, cn, cix, ciy := Int(m), Int(n), Int(incX), Int(incY)
		funcOf[CgercKernel](fp)(&cm, &cn, &alpha, ptr(x), &cix, ptr(y), &ciy, ptr(a), &clda)
		return nil
	}
	if m == 0 || n == 0 {
		return nil
	}
	yc := conjVec64(y, n, incY)
	xc := conjVec64(x, m, incX)
	cm, cn, one := Int(n), Int(m), Int(1)
	funcOf[CgercKernel](fp)(&cm, &cn, &alpha, ptr(yc), &one, ptr(xc), &one, ptr(a), &clda)
	return nil
}

// Zgerc performs the rank one update A += alpha*x*y^H on an m x n matrix.
// See Cgerc for the row-major rewrite.
func (be *Backend) Zgerc(order Order, m, n int, alpha complex128, x []complex128, incX int, y []complex128, incY int, a []complex128, lda int) error {
	const op = "Zgerc"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkDim(op, "m", m); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkVector(op, "x", m, incX, len(x)); err != nil {
		return err
	}
	if err := checkVector(op, "y", n, incY, len(y)); err != nil {
		return err
	}
	if err := checkMatrix(op, "a", order, m, n, lda, len(a)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "zgerc")
	if err != nil {
		return err
	}
	clda := Int(lda)
	if order == ColMajor {
		cm, cn, cix, ciy := Int(m), Int(n), Int(incX), Int(incY)
		funcOf[ZgercKernel](fp)(&cm, &cn, &alpha, ptr(x), &cix, ptr(y), &ciy, ptr(a), &clda)
		return nil
	}
	if m == 0 || n == 0 {
		return nil
	}
	yc := conjVec128(y, n, incY)
	xc := conjVec128(x, m, incX)
	cm, cn, one := Int(n), Int(m), Int(1)
	funcOf[ZgercKernel](fp)(&cm, &cn, &alpha, ptr(yc), &one, ptr(xc), &one, ptr(a), &clda)
	return nil
}

// Ssyr performs the symmetric rank one update A += alpha*x*x^T on the
// uplo triangle of A.
func (be *Backend) Ssyr(order Order, uplo Uplo, n int, alpha float32, x []float32, incX int, a []float32, lda int) error {
	const op = "Ssyr"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkUplo(op, uplo); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return err
	}
	if err := checkMatrix(op, "a", order, n, n, lda, len(a)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "ssyr")
	if err != nil {
		return err
	}
	ku := uplo
	if order == RowMajor {
		ku = flipUplo(uplo)
	}
	uc := uploChar(ku)
	cn, clda, cix := Int(n), Int(lda), Int(incX)
	funcOf[SsyrKernel](fp)(&uc, &cn, &alpha, ptr(x), &cix, ptr(a), &clda)
	return nil
}

// Dsyr performs the symmetric rank one update A += alpha*x*x^T on the
// uplo triangle of A.
func (be *Backend) Dsyr(order Order, uplo Uplo, n int, alpha float64, x []float64, incX int, a []float64, lda int) error {
	const op = "Dsyr"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkUplo(op, uplo); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return err
	}
	if err := checkMatrix(op, "a", order, n, n, lda, len(a)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "dsyr")
	if err != nil {
		return err
	}
	ku := uplo
	if order == RowMajor {
		ku = flipUplo(uplo)
	}
	uc := uploChar(ku)
	cn, clda, cix := Int(n), Int(lda), Int(incX)
	funcOf[DsyrKernel](fp)(&uc, &cn, &alpha, ptr(x), &cix, ptr(a), &clda)
	return nil
}

// Cher performs the Hermitian rank one update A += alpha*x*x^H on the
// uplo triangle of A. alpha is real.
//
// Row-major calls flip the triangle and hand the kernel a conjugated
// scratch copy of x, since the transposed update is conj(x)*conj(x)^H.
func (be *Backend) Cher(order Order, uplo Uplo, n int, alpha float32, x []complex64, incX int, a []complex64, lda int) error {
	const op = "Cher"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkUplo(op, uplo); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return err
	}
	if err := checkMatrix(op, "a", order, n, n, lda, len(a)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "cher")
	if err != nil {
		return err
	}
	cn, clda := Int(n), Int(lda)
	if order == ColMajor {
		uc, cix := uploChar(uplo), Int(incX)
		funcOf[CherKernel](fp)(&uc, &cn, &alpha, ptr(x), &cix, ptr(a), &clda)
		return nil
	}
	if n == 0 {
		return nil
	}
	uc := uploChar(flipUplo(uplo))
	xc := conjVec64(x, n, incX)
	one := Int(1)
	funcOf[CherKernel](fp)(&uc, &cn, &alpha, ptr(xc), &one, ptr(a), &clda)
	return nil
}

// Zher performs the Hermitian rank one update A += alpha*x*x^H on the
// uplo triangle of A. alpha is real. See Cher for the row-major rewrite.
func (be *Backend) Zher(order Order, uplo Uplo, n int, alpha float64, x []complex128, incX int, a []complex128, lda int) error {
	const op = "Zher"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkUplo(op, uplo); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return err
	}
	if err := checkMatrix(op, "a", order, n, n, lda, len(a)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "zher")
	if err != nil {
		return err
	}
	cn, clda := Int(n), Int(lda)
	if order == ColMajor {
		uc, cix := uploChar(uplo), Int(incX)
		funcOf[ZherKernel](fp)(&uc, &cn, &alpha, ptr(x), &cix, ptr(a), &clda)
		return nil
	}
	if n == 0 {
		return nil
	}
	uc := uploChar(flipUplo(uplo))
	xc := conjVec128(x, n, incX)
	one := Int(1)
	funcOf[ZherKernel](fp)(&uc, &cn, &alpha, ptr(xc), &one, ptr(a), &clda)
	return nil
}

// Ssyr2 performs the symmetric rank two update
// A += alpha*x*y^T + alpha*y*x^T on the uplo triangle of A.
func (be *Backend) Ssyr2(order Order, uplo Uplo, n int, alpha float32, x []float32, incX int, y []float32, incY int, a []float32, lda int) error {
	const op = "Ssyr2"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkUplo(op, uplo); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return err
	}
	if err := checkVector(op, "y", n, incY, len(y)); err != nil {
		return err
	}
	if err := checkMatrix(op, "a", order, n, n, lda, len(a)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "ssyr2")
	if err != nil {
		return err
	}
	ku := uplo
	if order == RowMajor {
		ku = flipUplo(uplo)
	}
	uc := uploChar(ku)
	cn, clda, cix, ciy := Int(n), Int(lda), Int(incX), Int(incY)
	funcOf[Ssyr2Kernel](fp)(&uc, &cn, &alpha, ptr(x), &cix, ptr(y), &ciy, ptr(a), &clda)
	return nil
}

// Dsyr2 performs the symmetric rank two update
// A += alpha*x*y^T + alpha*y*x^T on the uplo triangle of A.
func (be *Backend) Dsyr2(order Order, uplo Uplo, n int, alpha float64, x []float64, incX int, y []float64, incY int, a []float64, lda int) error {
	const op = "Dsyr2"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkUplo(op, uplo); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return err
	}
	if err := checkVector(op, "y", n, incY, len(y)); err != nil {
		return err
	}
	if err := checkMatrix(op, "a", order, n, n, lda, len(a)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "dsyr2")
	if err != nil {
		return err
	}
	ku := uplo
	if order == RowMajor {
		ku = flipUplo(uplo)
	}
	uc := uploChar(ku)
	cn, clda, cix, ciy := Int(n), Int(lda), Int(incX), Int(incY)
	funcOf[Dsyr2Kernel](fp)(&uc, &cn, &alpha, ptr(x), &cix, ptr(y), &ciy, ptr(a), &clda)
	return nil
}

// Cher2 performs the Hermitian rank two update
// A += alpha*x*y^H + conj(alpha)*y*x^H on the uplo triangle of A.
//
// The transposed update swaps the roles of the conjugated vectors, so the
// row-major rewrite hands the kernel conj(y) in the x slot and conj(x) in
// the y slot with alpha unchanged.
func (be *Backend) Cher2(order Order, uplo Uplo, n int, alpha complex64, x []complex64, incX int, y []complex64, incY int, a []complex64, lda int) error {
	const op = "Cher2"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkUplo(op, uplo); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return err
	}
	if err := checkVector(op, "y", n, incY, len(y)); err != nil {
		return err
	}
	if err := checkMatrix(op, "a", order, n, n, lda, len(a)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "cher2")
	if err != nil {
		return err
	}
	cn, clda := Int(n), Int(lda)
	if order == ColMajor {
		uc, cix, ciy := uploChar(uplo), Int(incX), Int(incY)
		funcOf[Cher2Kernel](fp)(&uc, &cn, &alpha, ptr(x), &cix, ptr(y), &ciy, ptr(a), &clda)
		return nil
	}
	if n == 0 {
		return nil
	}
	uc := uploChar(flipUplo(uplo))
	yc := conjVec64(y, n, incY)
	xc := conjVec64(x, n, incX)
	one := Int(1)
	funcOf[Cher2Kernel](fp)(&uc, &cn, &alpha, ptr(yc), &one, ptr(xc), &one, ptr(a), &clda)
	return nil
}

// Zher2 performs the Hermitian rank two update
// A += alpha*x*y^H + conj(alpha)*y*x^H on the uplo triangle of A.
// See Cher2 for the row-major rewrite.
func (be *Backend) Zher2(order Order, uplo Uplo, n int, alpha complex128, x []complex128, incX int, y []complex128, incY int, a []complex128, lda int) error {
	const op = "Zher2"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkUplo(op, uplo); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return err
	}
	if err := checkVector(op, "y", n, incY, len(y)); err != nil {
		return err
	}
	if err := checkMatrix(op, "a", order, n, n, lda, len(a)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "zher2")
	if err != nil {
		return err
	}
	cn, clda := Int(n), Int(lda)
	if order == ColMajor {
		uc, cix, ciy := uploChar(uplo), Int(incX), Int(incY)
		funcOf[Zher2Kernel](fp)(&uc, &cn, &alpha, ptr(x), &cix, ptr(y), &ciy, ptr(a), &clda)
		return nil
	}
	if n == 0 {
		return nil
	}
	uc := uploChar(flipUplo(uplo))
	yc := conjVec128(y, n, incY)
	xc := conjVec128(x, n, incX)
	one := Int(1)
	funcOf[Zher2Kernel](fp)(&uc, &cn, &alpha, ptr(yc), &one, ptr(xc), &one, ptr(a), &clda)
	return nil
}
