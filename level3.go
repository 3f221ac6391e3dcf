package blasbridge

// Level 3 matrix-matrix entry points. The row-major rewrites never copy
// matrix data. gemm runs the kernel on the transposed product B^T A^T by
// exchanging the operand slots; symm/hemm and trmm/trsm move the
// triangular operand to the other side; the rank-k updates flip the
// stored triangle and the transposition flag, with her2k additionally
// conjugating alpha.

// Sgemm computes C = alpha*op(A)*op(B) + beta*C where op(A) is m x k,
// op(B) is k x n, and C is m x n.
func (be *Backend) Sgemm(order Order, transA, transB Transpose, m, n, k int, alpha float32, a []float32, lda int, b []float32, ldb int, beta float32, c []float32, ldc int) error {
	const op = "Sgemm"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkTrans(op, transA); err != nil {
		return err
	}
	if err := checkTrans(op, transB); err != nil {
		return err
	}
	if err := checkDim(op, "m", m); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkDim(op, "k", k); err != nil {
		return err
	}
	ra, ca := opDims(transA, m, k)
	if err := checkMatrix(op, "a", order, ra, ca, lda, len(a)); err != nil {
		return err
	}
	rb, cb := opDims(transB, k, n)
	if err := checkMatrix(op, "b", order, rb, cb, ldb, len(b)); err != nil {
		return err
	}
	if err := checkMatrix(op, "c", order, m, n, ldc, len(c)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "sgemm")
	if err != nil {
		return err
	}
	ta, tb := transChar(transA.normalizeReal()), transChar(transB.normalizeReal())
	clda, cldb, cldc, ck := Int(lda), Int(ldb), Int(ldc), Int(k)
	if order == ColMajor {
		cm, cn := Int(m), Int(n)
		funcOf[SgemmKernel](fp)(&ta, &tb, &cm, &cn, &ck, &alpha, ptr(a), &clda, ptr(b), &cldb, &beta, ptr(c), &cldc)
		return nil
	}
	cm, cn := Int(n), Int(m)
	funcOf[SgemmKernel](fp)(&tb, &ta, &cm, &cn, &ck, &alpha, ptr(b), &cldb, ptr(a), &clda, &beta, ptr(c), &cldc)
	return nil
}

// Dgemm computes C = alpha*op(A)*op(B) + beta*C where op(A) is m x k,
// op(B) is k x n, and C is m x n.
func (be *Backend) Dgemm(order Order, transA, transB Transpose, m, n, k int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) error {
	const op = "Dgemm"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkTrans(op, transA); err != nil {
		return err
	}
	if err := checkTrans(op, transB); err != nil {
		return err
	}
	if err := checkDim(op, "m", m); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkDim(op, "k", k); err != nil {
		return err
	}
	ra, ca := opDims(transA, m, k)
	if err := checkMatrix(op, "a", order, ra, ca, lda, len(a)); err != nil {
		return err
	}
	rb, cb := opDims(transB, k, n)
	if err := checkMatrix(op, "b", order, rb, cb, ldb, len(b)); err != nil {
		return err
	}
	if err := checkMatrix(op, "c", order, m, n, ldc, len(c)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "dgemm")
	if err != nil {
		return err
	}
	ta, tb := transChar(transA.normalizeReal()), transChar(transB.normalizeReal())
	clda, cldb, cldc, ck := Int(lda), Int(ldb), Int(ldc), Int(k)
	if order == ColMajor {
		cm, cn := Int(m), Int(n)
		funcOf[DgemmKernel](fp)(&ta, &tb, &cm, &cn, &ck, &alpha, ptr(a), &clda, ptr(b), &cldb, &beta, ptr(c), &cldc)
		return nil
	}
	cm, cn := Int(n), Int(m)
	funcOf[DgemmKernel](fp)(&tb, &ta, &cm, &cn, &ck, &alpha, ptr(b), &cldb, ptr(a), &clda, &beta, ptr(c), &cldc)
	return nil
}

// Cgemm computes C = alpha*op(A)*op(B) + beta*C where op(A) is m x k,
// op(B) is k x n, and C is m x n. ConjNoTrans reaches the kernel as the
// 'R' flag.
func (be *Backend) Cgemm(order Order, transA, transB Transpose, m, n, k int, alpha complex64, a []complex64, lda int, b []complex64, ldb int, beta complex64, c []complex64, ldc int) error {
	const op = "Cgemm"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkTrans(op, transA); err != nil {
		return err
	}
	if err := checkTrans(op, transB); err != nil {
		return err
	}
	if err := checkDim(op, "m", m); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkDim(op, "k", k); err != nil {
		return err
	}
	ra, ca := opDims(transA, m, k)
	if err := checkMatrix(op, "a", order, ra, ca, lda, len(a)); err != nil {
		return err
	}
	rb, cb := opDims(transB, k, n)
	if err := checkMatrix(op, "b", order, rb, cb, ldb, len(b)); err != nil {
		return err
	}
	if err := checkMatrix(op, "c", order, m, n, ldc, len(c)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "cgemm")
	if err != nil {
		return err
	}
	ta, tb := transChar(transA), transChar(transB)
	clda, cldb, cldc, ck := Int(lda), Int(ldb), Int(ldc), Int(k)
	if order == ColMajor {
		cm, cn := Int(m), Int(n)
		funcOf[CgemmKernel](fp)(&ta, &tb, &cm, &cn, &ck, &alpha, ptr(a), &clda, ptr(b), &cldb, &beta, ptr(c), &cldc)
		return nil
	}
	cm, cn := Int(n), Int(m)
	funcOf[CgemmKernel](fp)(&tb, &ta, &cm, &cn, &ck, &alpha, ptr(b), &cldb, ptr(a), &clda, &beta, ptr(c), &cldc)
	return nil
}

// Zgemm computes C = alpha*op(A)*op(B) + beta*C where op(A) is m x k,
// op(B) is k x n, and C is m x n. ConjNoTrans reaches the kernel as the
// 'R' flag.
func (be *Backend) Zgemm(order Order, transA, transB Transpose, m, n, k int, alpha complex128, a []complex128, lda int, b []complex128, ldb int, beta complex128, c []complex128, ldc int) error {
	const op = "Zgemm"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkTrans(op, transA); err != nil {
		return err
	}
	if err := checkTrans(op, transB); err != nil {
		return err
	}
	if err := checkDim(op, "m", m); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkDim(op, "k", k); err != nil {
		return err
	}
	ra, ca := opDims(transA, m, k)
	if err := checkMatrix(op, "a", order, ra, ca, lda, len(a)); err != nil {
		return err
	}
	rb, cb := opDims(transB, k, n)
	if err := checkMatrix(op, "b", order, rb, cb, ldb, len(b)); err != nil {
		return err
	}
	if err := checkMatrix(op, "c", order, m, n, ldc, len(c)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "zgemm")
	if err != nil {
		return err
	}
	ta, tb := transChar(transA), transChar(transB)
	clda, cldb, cldc, ck := Int(lda), Int(ldb), Int(ldc), Int(k)
	if order == ColMajor {
		cm, cn := Int(m), Int(n)
		funcOf[ZgemmKernel](fp)(&ta, &tb, &cm, &cn, &ck, &alpha, ptr(a), &clda, ptr(b), &cldb, &beta, ptr(c), &cldc)
		return nil
	}
	cm, cn := Int(n), Int(m)
	funcOf[ZgemmKernel](fp)(&tb, &ta, &cm, &cn, &ck, &alpha, ptr(b), &cldb, ptr(a), &clda, &beta, ptr(c), &cldc)
	return nil
}

// Ssymm computes C = alpha*A*B + beta*C (side Left) or
// C = alpha*B*A + beta*C (side Right) where A is symmetric and B and C
// are m x n.
func (be *Backend) Ssymm(order Order, side Side, uplo Uplo, m, n int, alpha float32, a []float32, lda int, b []float32, ldb int, beta float32, c []float32, ldc int) error {
	const op = "Ssymm"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkSide(op, side); err != nil {
		return err
	}
	if err := checkUplo(op, uplo); err != nil {
		return err
	}
	if err := checkDim(op, "m", m); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	ka := m
	if side == Right {
		ka = n
	}
	if err := checkMatrix(op, "a", order, ka, ka, lda, len(a)); err != nil {
		return err
	}
	if err := checkMatrix(op, "b", order, m, n, ldb, len(b)); err != nil {
		return err
	}
	if err := checkMatrix(op, "c", order, m, n, ldc, len(c)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "ssymm")
	if err != nil {
		return err
	}
	ks, ku, km, kn := side, uplo, m, n
	if order == RowMajor {
		ks, ku, km, kn = flipSide(side), flipUplo(uplo), n, m
	}
	sc, uc := sideChar(ks), uploChar(ku)
	cm, cn, clda, cldb, cldc := Int(km), Int(kn), Int(lda), Int(ldb), Int(ldc)
	funcOf[SsymmKernel](fp)(&sc, &uc, &cm, &cn, &alpha, ptr(a), &clda, ptr(b), &cldb, &beta, ptr(c), &cldc)
	return nil
}

// Dsymm computes C = alpha*A*B + beta*C (side Left) or
// C = alpha*B*A + beta*C (side Right) where A is symmetric and B and C
// are m x n.
func (be *Backend) Dsymm(order Order, side Side, uplo Uplo, m, n int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) error {
	const op = "Dsymm"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkSide(op, side); err != nil {
		return err
	}
	if err := checkUplo(op, uplo); err != nil {
		return err
	}
	if err := checkDim(op, "m", m); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	ka := m
	if side == Right {
		ka = n
	}
	if err := checkMatrix(op, "a", order, ka, ka, lda, len(a)); err != nil {
		return err
	}
	if err := checkMatrix(op, "b", order, m, n, ldb, len(b)); err != nil {
		return err
	}
	if err := checkMatrix(op, "c", order, m, n, ldc, len(c)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "dsymm")
	if err != nil {
		return err
	}
	ks, ku, km, kn := side, uplo, m, n
	if order == RowMajor {
		ks, ku, km, kn = flipSide(side), flipUplo(uplo), n, m
	}
	sc, uc := sideChar(ks), uploChar(ku)
	cm, cn, clda, cldb, cldc := Int(km), Int(kn), Int(lda), Int(ldb), Int(ldc)
	funcOf[DsymmKernel](fp)(&sc, &uc, &cm, &cn, &alpha, ptr(a), &clda, ptr(b), &cldb, &beta, ptr(c), &cldc)
	return nil
}

// Csymm computes C = alpha*A*B + beta*C (side Left) or
// C = alpha*B*A + beta*C (side Right) where A is complex symmetric and B
// and C are m x n.
func (be *Backend) Csymm(order Order, side Side, uplo Uplo, m, n int, alpha complex64, a []complex64, lda int, b []complex64, ldb int, beta complex64, c []complex64, ldc int) error {
	const op = "Csymm"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkSide(op, side); err != nil {
		return err
	}
	if err := checkUplo(op, uplo); err != nil {
		return err
	}
	if err := checkDim(op, "m", m); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	ka := m
	if side == Right {
		ka = n
	}
	if err := checkMatrix(op, "a", order, ka, ka, lda, len(a)); err != nil {
		return err
	}
	if err := checkMatrix(op, "b", order, m, n, ldb, len(b)); err != nil {
		return err
	}
	if err := checkMatrix(op, "c", order, m, n, ldc, len(c)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "csymm")
	if err != nil {
		return err
	}
	ks, ku, km, kn := side, uplo, m, n
	if order == RowMajor {
		ks, ku, km, kn = flipSide(side), flipUplo(uplo), n, m
	}
	sc, uc := sideChar(ks), uploChar(ku)
	cm, cn, clda, cldb, cldc := Int(km), Int(kn), Int(lda), Int(ldb), Int(ldc)
	funcOf[CsymmKernel](fp)(&sc, &uc, &cm, &cn, &alpha, ptr(a), &clda, ptr(b), &cldb, &beta, ptr(c), &cldc)
	return nil
}

// Zsymm computes C = alpha*A*B + beta*C (side Left) or
// C = alpha*B*A + beta*C (side Right) where A is complex symmetric and B
// and C are m x n.
func (be *Backend) Zsymm(order Order, side Side, uplo Uplo, m, n int, alpha complex128, a []complex128, lda int, b []complex128, ldb int, beta complex128, c []complex128, ldc int) error {
	const op = "Zsymm"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkSide(op, side); err != nil {
		return err
	}
	if err := checkUplo(op, uplo); err != nil {
		return err
	}
	if err := checkDim(op, "m", m); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	ka := m
	if side == Right {
		ka = n
	}
	if err := checkMatrix(op, "a", order, ka, ka, lda, len(a)); err != nil {
		return err
	}
	if err := checkMatrix(op, "b", order, m, n, ldb, len(b)); err != nil {
		return err
	}
	if err := checkMatrix(op, "c", order, m, n, ldc, len(c)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "zsymm")
	if err != nil {
		return err
	}
	ks, ku, km, kn := side, uplo, m, n
	if order == RowMajor {
		ks, ku, km, kn = flipSide(side), flipUplo(uplo), n, m
	}
	sc, uc := sideChar(ks), uploChar(ku)
	cm, cn, clda, cldb, cldc := Int(km), Int(kn), Int(lda), Int(ldb), Int(ldc)
	funcOf[ZsymmKernel](fp)(&sc, &uc, &cm, &cn, &alpha, ptr(a), &clda, ptr(b), &cldb, &beta, ptr(c), &cldc)
	return nil
}

// Chemm computes C = alpha*A*B + beta*C (side Left) or
// C = alpha*B*A + beta*C (side Right) where A is Hermitian and B and C
// are m x n. The row-major rewrite is the symm one; the flipped triangle
// of the reinterpreted buffer already holds the conjugated matrix.
func (be *Backend) Chemm(order Order, side Side, uplo Uplo, m, n int, alpha complex64, a []complex64, lda int, b []complex64, ldb int, beta complex64, c []complex64, ldc int) error {
	const op = "Chemm"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkSide(op, side); err != nil {
		return err
	}
	if err := checkUplo(op, uplo); err != nil {
		return err
	}
	if err := checkDim(op, "m", m); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	ka := m
	if side == Right {
		ka = n
	}
	if err := checkMatrix(op, "a", order, ka, ka, lda, len(a)); err != nil {
		return err
	}
	if err := checkMatrix(op, "b", order, m, n, ldb, len(b)); err != nil {
		return err
	}
	if err := checkMatrix(op, "c", order, m, n, ldc, len(c)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "chemm")
	if err != nil {
		return err
	}
	ks, ku, km, kn := side, uplo, m, n
	if order == RowMajor {
		ks, ku, km, kn = flipSide(side), flipUplo(uplo), n, m
	}
	sc, uc := sideChar(ks), uploChar(ku)
	cm, cn, clda, cldb, cldc := Int(km), Int(kn), Int(lda), Int(ldb), Int(ldc)
	funcOf[ChemmKernel](fp)(&sc, &uc, &cm, &cn, &alpha, ptr(a), &clda, ptr(b), &cldb, &beta, ptr(c), &cldc)
	return nil
}

// Zhemm computes C = alpha*A*B + beta*C (side Left) or
// C = alpha*B*A + beta*C (side Right) where A is Hermitian and B and C
// are m x n. See Chemm for the row-major rewrite.
func (be *Backend) Zhemm(order Order, side Side, uplo Uplo, m, n int, alpha complex128, a []complex128, lda int, b []complex128, ldb int, beta complex128, c []complex128, ldc int) error {
	const op = "Zhemm"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkSide(op, side); err != nil {
		return err
	}
	if err := checkUplo(op, uplo); err != nil {
		return err
	}
	if err := checkDim(op, "m", m); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	ka := m
	if side == Right {
		ka = n
	}
	if err := checkMatrix(op, "a", order, ka, ka, lda, len(a)); err != nil {
		return err
	}
	if err := checkMatrix(op, "b", order, m, n, ldb, len(b)); err != nil {
		return err
	}
	if err := checkMatrix(op, "c", order, m, n, ldc, len(c)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "zhemm")
	if err != nil {
		return err
	}
	ks, ku, km, kn := side, uplo, m, n
	if order == RowMajor {
		ks, ku, km, kn = flipSide(side), flipUplo(uplo), n, m
	}
	sc, uc := sideChar(ks), uploChar(ku)
	cm, cn, clda, cldb, cldc := Int(km), Int(kn), Int(lda), Int(ldb), Int(ldc)
	funcOf[ZhemmKernel](fp)(&sc, &uc, &cm, &cn, &alpha, ptr(a), &clda, ptr(b), &cldb, &beta, ptr(c), &cldc)
	return nil
}

// Ssyrk computes C = alpha*A*A^T + beta*C (NoTrans) or
// C = alpha*A^T*A + beta*C (Trans) on the uplo triangle of the n x n
// symmetric matrix C; op(A) has k columns.
func (be *Backend) Ssyrk(order Order, uplo Uplo, trans Transpose, n, k int, alpha float32, a []float32, lda int, beta float32, c []float32, ldc int) error {
	const op = "Ssyrk"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkUplo(op, uplo); err != nil {
		return err
	}
	if err := checkTrans(op, trans); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkDim(op, "k", k); err != nil {
		return err
	}
	ra, ca := opDims(trans, n, k)
	if err := checkMatrix(op, "a", order, ra, ca, lda, len(a)); err != nil {
		return err
	}
	if err := checkMatrix(op, "c", order, n, n, ldc, len(c)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "ssyrk")
	if err != nil {
		return err
	}
	ku, kt := uplo, trans.normalizeReal()
	if order == RowMajor {
		ku, kt = flipUplo(uplo), flipTransReal(trans)
	}
	uc, tc := uploChar(ku), transChar(kt)
	cn, ck, clda, cldc := Int(n), Int(k), Int(lda), Int(ldc)
	funcOf[SsyrkKernel](fp)(&uc, &tc, &cn, &ck, &alpha, ptr(a), &clda, &beta, ptr(c), &cldc)
	return nil
}

// Dsyrk computes C = alpha*A*A^T + beta*C (NoTrans) or
// C = alpha*A^T*A + beta*C (Trans) on the uplo triangle of the n x n
// symmetric matrix C; op(A) has k columns.
func (be *Backend) Dsyrk(order Order, uplo Uplo, trans Transpose, n, k int, alpha float64, a []float64, lda int, beta float64, c []float64, ldc int) error {
	const op = "Dsyrk"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkUplo(op, uplo); err != nil {
		return err
	}
	if err := checkTrans(op, trans); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkDim(op, "k", k); err != nil {
		return err
	}
	ra, ca := opDims(trans, n, k)
	if err := checkMatrix(op, "a", order, ra, ca, lda, len(a)); err != nil {
		return err
	}
	if err := checkMatrix(op, "c", order, n, n, ldc, len(c)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "dsyrk")
	if err != nil {
		return err
	}
	ku, kt := uplo, trans.normalizeReal()
	if order == RowMajor {
		ku, kt = flipUplo(uplo), flipTransReal(trans)
	}
	uc, tc := uploChar(ku), transChar(kt)
	cn, ck, clda, cldc := Int(n), Int(k), Int(lda), Int(ldc)
	funcOf[DsyrkKernel](fp)(&uc, &tc, &cn, &ck, &alpha, ptr(a), &clda, &beta, ptr(c), &cldc)
	return nil
}

// Csyrk computes C = alpha*A*A^T + beta*C (NoTrans) or
// C = alpha*A^T*A + beta*C (Trans) on the uplo triangle of the n x n
// complex symmetric matrix C. The conjugating flags are not meaningful
// here and reach the kernel as their flag characters.
func (be *Backend) Csyrk(order Order, uplo Uplo, trans Transpose, n, k int, alpha complex64, a []complex64, lda int, beta complex64, c []complex64, ldc int) error {
	const op = "Csyrk"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkUplo(op, uplo); err != nil {
		return err
	}
	if err := checkTrans(op, trans); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkDim(op, "k", k); err != nil {
		return err
	}
	ra, ca := opDims(trans, n, k)
	if err := checkMatrix(op, "a", order, ra, ca, lda, len(a)); err != nil {
		return err
	}
	if err := checkMatrix(op, "c", order, n, n, ldc, len(c)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "csyrk")
	if err != nil {
		return err
	}
	ku, kt := uplo, trans
	if order == RowMajor {
		ku, kt = flipUplo(uplo), flipTransConj(trans)
	}
	uc, tc := uploChar(ku), transChar(kt)
	cn, ck, clda, cldc := Int(n), Int(k), Int(lda), Int(ldc)
	funcOf[CsyrkKernel](fp)(&uc, &tc, &cn, &ck, &alpha, ptr(a), &clda, &beta, ptr(c), &cldc)
	return nil
}

// Zsyrk computes C = alpha*A*A^T + beta*C (NoTrans) or
// C = alpha*A^T*A + beta*C (Trans) on the uplo triangle of the n x n
// complex symmetric matrix C. See Csyrk for the flag handling.
func (be *Backend) Zsyrk(order Order, uplo Uplo, trans Transpose, n, k int, alpha complex128, a []complex128, lda int, beta complex128, c []complex128, ldc int) error {
	const op = "Zsyrk"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkUplo(op, uplo); err != nil {
		return err
	}
	if err := checkTrans(op, trans); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkDim(op, "k", k); err != nil {
		return err
	}
	ra, ca := opDims(trans, n, k)
	if err := checkMatrix(op, "a", order, ra, ca, lda, len(a)); err != nil {
		return err
	}
	if err := checkMatrix(op, "c", order, n, n, ldc, len(c)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "zsyrk")
	if err != nil {
		return err
	}
	ku, kt := uplo, trans
	if order == RowMajor {
		ku, kt = flipUplo(uplo), flipTransConj(trans)
	}
	uc, tc := uploChar(ku), transChar(kt)
	cn, ck, clda, cldc := Int(n), Int(k), Int(lda), Int(ldc)
	funcOf[ZsyrkKernel](fp)(&uc, &tc, &cn, &ck, &alpha, ptr(a), &clda, &beta, ptr(c), &cldc)
	return nil
}

// Cherk computes C = alpha*A*A^H + beta*C (NoTrans) or
// C = alpha*A^H*A + beta*C (ConjTrans) on the uplo triangle of the n x n
// Hermitian matrix C. alpha and beta are real.
func (be *Backend) Cherk(order Order, uplo Uplo, trans Transpose, n, k int, alpha float32, a []complex64, lda int, beta float32, c []complex64, ldc int) error {
	const op = "Cherk"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkUplo(op, uplo); err != nil {
		return err
	}
	if err := checkTrans(op, trans); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkDim(op, "k", k); err != nil {
		return err
	}
	ra, ca := opDims(trans, n, k)
	if err := checkMatrix(op, "a", order, ra, ca, lda, len(a)); err != nil {
		return err
	}
	if err := checkMatrix(op, "c", order, n, n, ldc, len(c)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "cherk")
	if err != nil {
		return err
	}
	ku, kt := uplo, trans
	if order == RowMajor {
		ku, kt = flipUplo(uplo), flipTransHerk(trans)
	}
	uc, tc := uploChar(ku), transChar(kt)
	cn, ck, clda, cldc := Int(n), Int(k), Int(lda), Int(ldc)
	funcOf[CherkKernel](fp)(&uc, &tc, &cn, &ck, &alpha, ptr(a), &clda, &beta, ptr(c), &cldc)
	return nil
}

// Zherk computes C = alpha*A*A^H + beta*C (NoTrans) or
// C = alpha*A^H*A + beta*C (ConjTrans) on the uplo triangle of the n x n
// Hermitian matrix C. alpha and beta are real.
func (be *Backend) Zherk(order Order, uplo Uplo, trans Transpose, n, k int, alpha float64, a []complex128, lda int, beta float64, c []complex128, ldc int) error {
	const op = "Zherk"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkUplo(op, uplo); err != nil {
		return err
	}
	if err := checkTrans(op, trans); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkDim(op, "k", k); err != nil {
		return err
	}
	ra, ca := opDims(trans, n, k)
	if err := checkMatrix(op, "a", order, ra, ca, lda, len(a)); err != nil {
		return err
	}
	if err := checkMatrix(op, "c", order, n, n, ldc, len(c)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "zherk")
	if err != nil {
		return err
	}
	ku, kt := uplo, trans
	if order == RowMajor {
		ku, kt = flipUplo(uplo), flipTransHerk(trans)
	}
	uc, tc := uploChar(ku), transChar(kt)
	cn, ck, clda, cldc := Int(n), Int(k), Int(lda), Int(ldc)
	funcOf[ZherkKernel](fp)(&uc, &tc, &cn, &ck, &alpha, ptr(a), &clda, &beta, ptr(c), &cldc)
	return nil
}

// Ssyr2k computes C = alpha*(A*B^T + B*A^T) + beta*C (NoTrans) or
// C = alpha*(A^T*B + B^T*A) + beta*C (Trans) on the uplo triangle of the
// n x n symmetric matrix C.
func (be *Backend) Ssyr2k(order Order, uplo Uplo, trans Transpose, n, k int, alpha float32, a []float32, lda int, b []float32, ldb int, beta float32, c []float32, ldc int) error {
	const op = "Ssyr2k"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkUplo(op, uplo); err != nil {
		return err
	}
	if err := checkTrans(op, trans); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkDim(op, "k", k); err != nil {
		return err
	}
	ra, ca := opDims(trans, n, k)
	if err := checkMatrix(op, "a", order, ra, ca, lda, len(a)); err != nil {
		return err
	}
	if err := checkMatrix(op, "b", order, ra, ca, ldb, len(b)); err != nil {
		return err
	}
	if err := checkMatrix(op, "c", order, n, n, ldc, len(c)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "ssyr2k")
	if err != nil {
		return err
	}
	ku, kt := uplo, trans.normalizeReal()
	if order == RowMajor {
		ku, kt = flipUplo(uplo), flipTransReal(trans)
	}
	uc, tc := uploChar(ku), transChar(kt)
	cn, ck, clda, cldb, cldc := Int(n), Int(k), Int(lda), Int(ldb), Int(ldc)
	funcOf[Ssyr2kKernel](fp)(&uc, &tc, &cn, &ck, &alpha, ptr(a), &clda, ptr(b), &cldb, &beta, ptr(c), &cldc)
	return nil
}

// Dsyr2k computes C = alpha*(A*B^T + B*A^T) + beta*C (NoTrans) or
// C = alpha*(A^T*B + B^T*A) + beta*C (Trans) on the uplo triangle of the
// n x n symmetric matrix C.
func (be *Backend) Dsyr2k(order Order, uplo Uplo, trans Transpose, n, k int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) error {
	const op = "Dsyr2k"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkUplo(op, uplo); err != nil {
		return err
	}
	if err := checkTrans(op, trans); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkDim(op, "k", k); err != nil {
		return err
	}
	ra, ca := opDims(trans, n, k)
	if err := checkMatrix(op, "a", order, ra, ca, lda, len(a)); err != nil {
		return err
	}
	if err := checkMatrix(op, "b", order, ra, ca, ldb, len(b)); err != nil {
		return err
	}
	if err := checkMatrix(op, "c", order, n, n, ldc, len(c)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "dsyr2k")
	if err != nil {
		return err
	}
	ku, kt := uplo, trans.normalizeReal()
	if order == RowMajor {
		ku, kt = flipUplo(uplo), flipTransReal(trans)
	}
	uc, tc := uploChar(ku), transChar(kt)
	cn, ck, clda, cldb, cldc := Int(n), Int(k), Int(lda), Int(ldb), Int(ldc)
	funcOf[Dsyr2kKernel](fp)(&uc, &tc, &cn, &ck, &alpha, ptr(a), &clda, ptr(b), &cldb, &beta, ptr(c), &cldc)
	return nil
}

// Csyr2k computes C = alpha*(A*B^T + B*A^T) + beta*C (NoTrans) or
// C = alpha*(A^T*B + B^T*A) + beta*C (Trans) on the uplo triangle of the
// n x n complex symmetric matrix C. See Csyrk for the flag handling.
func (be *Backend) Csyr2k(order Order, uplo Uplo, trans Transpose, n, k int, alpha complex64, a []complex64, lda int, b []complex64, ldb int, beta complex64, c []complex64, ldc int) error {
	const op = "Csyr2k"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkUplo(op, uplo); err != nil {
		return err
	}
	if err := checkTrans(op, trans); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkDim(op, "k", k); err != nil {
		return err
	}
	ra, ca := opDims(trans, n, k)
	if err := checkMatrix(op, "a", order, ra, ca, lda, len(a)); err != nil {
		return err
	}
	if err := checkMatrix(op, "b", order, ra, ca, ldb, len(b)); err != nil {
		return err
	}
	if err := checkMatrix(op, "c", order, n, n, ldc, len(c)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "csyr2k")
	if err != nil {
		return err
	}
	ku, kt := uplo, trans
	if order == RowMajor {
		ku, kt = flipUplo(uplo), flipTransConj(trans)
	}
	uc, tc := uploChar(ku), transChar(kt)
	cn, ck, clda, cldb, cldc := Int(n), Int(k), Int(lda), Int(ldb), Int(ldc)
	funcOf[Csyr2kKernel](fp)(&uc, &tc, &cn, &ck, &alpha, ptr(a), &clda, ptr(b), &cldb, &beta, ptr(c), &cldc)
	return nil
}

// Zsyr2k computes C = alpha*(A*B^T + B*A^T) + beta*C (NoTrans) or
// C = alpha*(A^T*B + B^T*A) + beta*C (Trans) on the uplo triangle of the
// n x n complex symmetric matrix C. See Csyrk for the flag handling.
func (be *Backend) Zsyr2k(order Order, uplo Uplo, trans Transpose, n, k int, alpha complex128, a []complex128, lda int, b []complex128, ldb int, beta complex128, c []complex128, ldc int) error {
	const op = "Zsyr2k"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkUplo(op, uplo); err != nil {
		return err
	}
	if err := checkTrans(op, trans); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkDim(op, "k", k); err != nil {
		return err
	}
	ra, ca := opDims(trans, n, k)
	if err := checkMatrix(op, "a", order, ra, ca, lda, len(a)); err != nil {
		return err
	}
	if err := checkMatrix(op, "b", order, ra, ca, ldb, len(b)); err != nil {
		return err
	}
	if err := checkMatrix(op, "c", order, n, n, ldc, len(c)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "zsyr2k")
	if err != nil {
		return err
	}
	ku, kt := uplo, trans
	if order == RowMajor {
		ku, kt = flipUplo(uplo), flipTransConj(trans)
	}
	uc, tc := uploChar(ku), transChar(kt)
	cn, ck, clda, cldb, cldc := Int(n), Int(k), Int(lda), Int(ldb), Int(ldc)
	funcOf[Zsyr2kKernel](fp)(&uc, &tc, &cn, &ck, &alpha, ptr(a), &clda, ptr(b), &cldb, &beta, ptr(c), &cldc)
	return nil
}

// Cher2k computes C = alpha*A*B^H + conj(alpha)*B*A^H + beta*C (NoTrans)
// or C = alpha*A^H*B + conj(alpha)*B^H*A + beta*C (ConjTrans) on the
// uplo triangle of the n x n Hermitian matrix C. alpha is complex, beta
// is real. The row-major rewrite conjugates alpha alongside the usual
// triangle and transposition flips.
func (be *Backend) Cher2k(order Order, uplo Uplo, trans Transpose, n, k int, alpha complex64, a []complex64, lda int, b []complex64, ldb int, beta float32, c []complex64, ldc int) error {
	const op = "Cher2k"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkUplo(op, uplo); err != nil {
		return err
	}
	if err := checkTrans(op, trans); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkDim(op, "k", k); err != nil {
		return err
	}
	ra, ca := opDims(trans, n, k)
	if err := checkMatrix(op, "a", order, ra, ca, lda, len(a)); err != nil {
		return err
	}
	if err := checkMatrix(op, "b", order, ra, ca, ldb, len(b)); err != nil {
		return err
	}
	if err := checkMatrix(op, "c", order, n, n, ldc, len(c)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "cher2k")
	if err != nil {
		return err
	}
	ku, kt, ka := uplo, trans, alpha
	if order == RowMajor {
		ku, kt, ka = flipUplo(uplo), flipTransHerk(trans), conj64(alpha)
	}
	uc, tc := uploChar(ku), transChar(kt)
	cn, ck, clda, cldb, cldc := Int(n), Int(k), Int(lda), Int(ldb), Int(ldc)
	funcOf[Cher2kKernel](fp)(&uc, &tc, &cn, &ck, &ka, ptr(a), &clda, ptr(b), &cldb, &beta, ptr(c), &cldc)
	return nil
}

// Zher2k computes C = alpha*A*B^H + conj(alpha)*B*A^H + beta*C (NoTrans)
// or C = alpha*A^H*B + conj(alpha)*B^H*A + beta*C (ConjTrans) on the
// uplo triangle of the n x n Hermitian matrix C. alpha is complex, beta
// is real. See Cher2k for the row-major rewrite.
func (be *Backend) Zher2k(order Order, uplo Uplo, trans Transpose, n, k int, alpha complex128, a []complex128, lda int, b []complex128, ldb int, beta float64, c []complex128, ldc int) error {
	const op = "Zher2k"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkUplo(op, uplo); err != nil {
		return err
	}
	if err := checkTrans(op, trans); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkDim(op, "k", k); err != nil {
		return err
	}
	ra, ca := opDims(trans, n, k)
	if err := checkMatrix(op, "a", order, ra, ca, lda, len(a)); err != nil {
		return err
	}
	if err := checkMatrix(op, "b", order, ra, ca, ldb, len(b)); err != nil {
		return err
	}
	if err := checkMatrix(op, "c", order, n, n, ldc, len(c)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "zher2k")
	if err != nil {
		return err
	}
	ku, kt, ka := uplo, trans, alpha
	if order == RowMajor {
		ku, kt, ka = flipUplo(uplo), flipTransHerk(trans), conj128(alpha)
	}
	uc, tc := uploChar(ku), transChar(kt)
	cn, ck, clda, cldb, cldc := Int(n), Int(k), Int(lda), Int(ldb), Int(ldc)
	funcOf[Zher2kKernel](fp)(&uc, &tc, &cn, &ck, &ka, ptr(a), &clda, ptr(b), &cldb, &beta, ptr(c), &cldc)
	return nil
}

// Strmm computes B = alpha*op(A)*B (side Left) or B = alpha*B*op(A)
// (side Right) where A is triangular and B is m x n. The row-major
// rewrite flips side and triangle and swaps the dimensions; trans is not
// flipped.
func (be *Backend) Strmm(order Order, side Side, uplo Uplo, transA Transpose, diag Diag, m, n int, alpha float32, a []float32, lda int, b []float32, ldb int) error {
	const op = "Strmm"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkSide(op, side); err != nil {
		return err
	}
	if err := checkUplo(op, uplo); err != nil {
		return err
	}
	if err := checkTrans(op, transA); err != nil {
		return err
	}
	if err := checkDiag(op, diag); err != nil {
		return err
	}
	if err := checkDim(op, "m", m); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	ka := m
	if side == Right {
		ka = n
	}
	if err := checkMatrix(op, "a", order, ka, ka, lda, len(a)); err != nil {
		return err
	}
	if err := checkMatrix(op, "b", order, m, n, ldb, len(b)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "strmm")
	if err != nil {
		return err
	}
	ks, ku, km, kn := side, uplo, m, n
	if order == RowMajor {
		ks, ku, km, kn = flipSide(side), flipUplo(uplo), n, m
	}
	sc, uc, tc, dc := sideChar(ks), uploChar(ku), transChar(transA.normalizeReal()), diagChar(diag)
	cm, cn, clda, cldb := Int(km), Int(kn), Int(lda), Int(ldb)
	funcOf[StrmmKernel](fp)(&sc, &uc, &tc, &dc, &cm, &cn, &alpha, ptr(a), &clda, ptr(b), &cldb)
	return nil
}

// Dtrmm computes B = alpha*op(A)*B (side Left) or B = alpha*B*op(A)
// (side Right) where A is triangular and B is m x n. See Strmm for the
// row-major rewrite.
func (be *Backend) Dtrmm(order Order, side Side, uplo Uplo, transA Transpose, diag Diag, m, n int, alpha float64, a []float64, lda int, b []float64, ldb int) error {
	const op = "Dtrmm"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkSide(op, side); err != nil {
		return err
	}
	if err := checkUplo(op, uplo); err != nil {
		return err
	}
	if err := checkTrans(op, transA); err != nil {
		return err
	}
	if err := checkDiag(op, diag); err != nil {
		return err
	}
	if err := checkDim(op, "m", m); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	ka := m
	if side == Right {
		ka = n
	}
	if err := checkMatrix(op, "a", order, ka, ka, lda, len(a)); err != nil {
		return err
	}
	if err := checkMatrix(op, "b", order, m, n, ldb, len(b)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "dtrmm")
	if err != nil {
		return err
	}
	ks, ku, km, kn := side, uplo, m, n
	if order == RowMajor {
		ks, ku, km, kn = flipSide(side), flipUplo(uplo), n, m
	}
	sc, uc, tc, dc := sideChar(ks), uploChar(ku), transChar(transA.normalizeReal()), diagChar(diag)
	cm, cn, clda, cldb := Int(km), Int(kn), Int(lda), Int(ldb)
	funcOf[DtrmmKernel](fp)(&sc, &uc, &tc, &dc, &cm, &cn, &alpha, ptr(a), &clda, ptr(b), &cldb)
	return nil
}

// Ctrmm computes B = alpha*op(A)*B (side Left) or B = alpha*B*op(A)
// (side Right) where A is triangular and B is m x n. See Strmm for the
// row-major rewrite; the conjugating flags pass through unchanged.
func (be *Backend) Ctrmm(order Order, side Side, uplo Uplo, transA Transpose, diag Diag, m, n int, alpha complex64, a []complex64, lda int, b []complex64, ldb int) error {
	const op = "Ctrmm"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkSide(op, side); err != nil {
		return err
	}
	if err := checkUplo(op, uplo); err != nil {
		return err
	}
	if err := checkTrans(op, transA); err != nil {
		return err
	}
	if err := checkDiag(op, diag); err != nil {
		return err
	}
	if err := checkDim(op, "m", m); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	ka := m
	if side == Right {
		ka = n
	}
	if err := checkMatrix(op, "a", order, ka, ka, lda, len(a)); err != nil {
		return err
	}
	if err := checkMatrix(op, "b", order, m, n, ldb, len(b)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "ctrmm")
	if err != nil {
		return err
	}
	ks, ku, km, kn := side, uplo, m, n
	if order == RowMajor {
		ks, ku, km, kn = flipSide(side), flipUplo(uplo), n, m
	}
	sc, uc, tc, dc := sideChar(ks), uploChar(ku), transChar(transA), diagChar(diag)
	cm, cn, clda, cldb := Int(km), Int(kn), Int(lda), Int(ldb)
	funcOf[CtrmmKernel](fp)(&sc, &uc, &tc, &dc, &cm, &cn, &alpha, ptr(a), &clda, ptr(b), &cldb)
	return nil
}

// Ztrmm computes B = alpha*op(A)*B (side Left) or B = alpha*B*op(A)
// (side Right) where A is triangular and B is m x n. See Strmm for the
// row-major rewrite; the conjugating flags pass through unchanged.
func (be *Backend) Ztrmm(order Order, side Side, uplo Uplo, transA Transpose, diag Diag, m, n int, alpha complex128, a []complex128, lda int, b []complex128, ldb int) error {
	const op = "Ztrmm"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkSide(op, side); err != nil {
		return err
	}
	if err := checkUplo(op, uplo); err != nil {
		return err
	}
	if err := checkTrans(op, transA); err != nil {
		return err
	}
	if err := checkDiag(op, diag); err != nil {
		return err
	}
	if err := checkDim(op, "m", m); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	ka := m
	if side == Right {
		ka = n
	}
	if err := checkMatrix(op, "a", order, ka, ka, lda, len(a)); err != nil {
		return err
	}
	if err := checkMatrix(op, "b", order, m, n, ldb, len(b)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "ztrmm")
	if err != nil {
		return err
	}
	ks, ku, km, kn := side, uplo, m, n
	if order == RowMajor {
		ks, ku, km, kn = flipSide(side), flipUplo(uplo), n, m
	}
	sc, uc, tc, dc := sideChar(ks), uploChar(ku), transChar(transA), diagChar(diag)
	cm, cn, clda, cldb := Int(km), Int(kn), Int(lda), Int(ldb)
	funcOf[ZtrmmKernel](fp)(&sc, &uc, &tc, &dc, &cm, &cn, &alpha, ptr(a), &clda, ptr(b), &cldb)
	return nil
}

// Strsm solves op(A)*X = alpha*B (side Left) or X*op(A) = alpha*B (side
// Right) for X, overwriting B, where A is triangular and B is m x n.
func (be *Backend) Strsm(order Order, side Side, uplo Uplo, transA Transpose, diag Diag, m, n int, alpha float32, a []float32, lda int, b []float32, ldb int) error {
	const op = "Strsm"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkSide(op, side); err != nil {
		return err
	}
	if err := checkUplo(op, uplo); err != nil {
		return err
	}
	if err := checkTrans(op, transA); err != nil {
		return err
	}
	if err := checkDiag(op, diag); err != nil {
		return err
	}
	if err := checkDim(op, "m", m); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	ka := m
	if side == Right {
		ka = n
	}
	if err := checkMatrix(op, "a", order, ka, ka, lda, len(a)); err != nil {
		return err
	}
	if err := checkMatrix(op, "b", order, m, n, ldb, len(b)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "strsm")
	if err != nil {
		return err
	}
	ks, ku, km, kn := side, uplo, m, n
	if order == RowMajor {
		ks, ku, km, kn = flipSide(side), flipUplo(uplo), n, m
	}
	sc, uc, tc, dc := sideChar(ks), uploChar(ku), transChar(transA.normalizeReal()), diagChar(diag)
	cm, cn, clda, cldb := Int(km), Int(kn), Int(lda), Int(ldb)
	funcOf[StrsmKernel](fp)(&sc, &uc, &tc, &dc, &cm, &cn, &alpha, ptr(a), &clda, ptr(b), &cldb)
	return nil
}

// Dtrsm solves op(A)*X = alpha*B (side Left) or X*op(A) = alpha*B (side
// Right) for X, overwriting B, where A is triangular and B is m x n.
func (be *Backend) Dtrsm(order Order, side Side, uplo Uplo, transA Transpose, diag Diag, m, n int, alpha float64, a []float64, lda int, b []float64, ldb int) error {
	const op = "Dtrsm"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkSide(op, side); err != nil {
		return err
	}
	if err := checkUplo(op, uplo); err != nil {
		return err
	}
	if err := checkTrans(op, transA); err != nil {
		return err
	}
	if err := checkDiag(op, diag); err != nil {
		return err
	}
	if err := checkDim(op, "m", m); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	ka := m
	if side == Right {
		ka = n
	}
	if err := checkMatrix(op, "a", order, ka, ka, lda, len(a)); err != nil {
		return err
	}
	if err := checkMatrix(op, "b", order, m, n, ldb, len(b)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "dtrsm")
	if err != nil {
		return err
	}
	ks, ku, km, kn := side, uplo, m, n
	if order == RowMajor {
		ks, ku, km, kn = flipSide(side), flipUplo(uplo), n, m
	}
	sc, uc, tc, dc := sideChar(ks), uploChar(ku), transChar(transA.normalizeReal()), diagChar(diag)
	cm, cn, clda, cldb := Int(km), Int(kn), Int(lda), Int(ldb)
	funcOf[DtrsmKernel](fp)(&sc, &uc, &tc, &dc, &cm, &cn, &alpha, ptr(a), &clda, ptr(b), &cldb)
	return nil
}

// Ctrsm solves op(A)*X = alpha*B (side Left) or X*op(A) = alpha*B (side
// Right) for X, overwriting B, where A is triangular and B is m x n.
func (be *Backend) Ctrsm(order Order, side Side, uplo Uplo, transA Transpose, diag Diag, m, n int, alpha complex64, a []complex64, lda int, b []complex64, ldb int) error {
	const op = "Ctrsm"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkSide(op, side); err != nil {
		return err
	}
	if err := checkUplo(op, uplo); err != nil {
		return err
	}
	if err := checkTrans(op, transA); err != nil {
		return err
	}
	if err := checkDiag(op, diag); err != nil {
		return err
	}
	if err := checkDim(op, "m", m); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	ka := m
	if side == Right {
		ka = n
	}
	if err := checkMatrix(op, "a", order, ka, ka, lda, len(a)); err != nil {
		return err
	}
	if err := checkMatrix(op, "b", order, m, n, ldb, len(b)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "ctrsm")
	if err != nil {
		return err
	}
	ks, ku, km, kn := side, uplo, m, n
	if order == RowMajor {
		ks, ku, km, kn = flipSide(side), flipUplo(uplo), n, m
	}
	sc, uc, tc, dc := sideChar(ks), uploChar(ku), transChar(transA), diagChar(diag)
	cm, cn, clda, cldb := Int(km), Int(kn), Int(lda), Int(ldb)
	funcOf[CtrsmKernel](fp)(&sc, &uc, &tc, &dc, &cm, &cn, &alpha, ptr(a), &clda, ptr(b), &cldb)
	return nil
}

// Ztrsm solves op(A)*X = alpha*B (side Left) or X*op(A) = alpha*B (side
// Right) for X, overwriting B, where A is triangular and B is m x n.
func (be *Backend) Ztrsm(order Order, side Side, uplo Uplo, transA Transpose, diag Diag, m, n int, alpha complex128, a []complex128, lda int, b []complex128, ldb int) error {
	const op = "Ztrsm"
	if err := checkOrder(op, order); err != nil {
		return err
	}
	if err := checkSide(op, side); err != nil {
		return err
	}
	if err := checkUplo(op, uplo); err != nil {
		return err
	}
	if err := checkTrans(op, transA); err != nil {
		return err
	}
	if err := checkDiag(op, diag); err != nil {
		return err
	}
	if err := checkDim(op, "m", m); err != nil {
		return err
	}
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	ka := m
	if side == Right {
		ka = n
	}
	if err := checkMatrix(op, "a", order, ka, ka, lda, len(a)); err != nil {
		return err
	}
	if err := checkMatrix(op, "b", order, m, n, ldb, len(b)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "ztrsm")
	if err != nil {
		return err
	}
	ks, ku, km, kn := side, uplo, m, n
	if order == RowMajor {
		ks, ku, km, kn = flipSide(side), flipUplo(uplo), n, m
	}
	sc, uc, tc, dc := sideChar(ks), uploChar(ku), transChar(transA), diagChar(diag)
	cm, cn, clda, cldb := Int(km), Int(kn), Int(lda), Int(ldb)
	funcOf[ZtrsmKernel](fp)(&sc, &uc, &tc, &dc, &cm, &cn, &alpha, ptr(a), &clda, ptr(b), &cldb)
	return nil
}
