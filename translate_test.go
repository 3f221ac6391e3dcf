package blasbridge

import (
	"testing"
	"unsafe"
)

// The row-major entry points rewrite flags, dimensions, and operand order
// so that a column-major kernel computes the requested result on the same
// buffers. These tests pin the rewrites down with capturing kernels.

func TestDgemmColMajorPassthrough(t *testing.T) {
	be := New()
	var got struct {
		ta, tb     byte
		m, n, k    Int
		a, b       *float64
		lda, ldb   Int
	}
	be.RegisterDgemm(func(transA, transB *byte, m, n, k *Int, alpha *float64, a *float64, lda *Int, b *float64, ldb *Int, beta *float64, c *float64, ldc *Int) {
		got.ta, got.tb = *transA, *transB
		got.m, got.n, got.k = *m, *n, *k
		got.a, got.b = a, b
		got.lda, got.ldb = *lda, *ldb
	})

	a := make([]float64, 8)  // 2x4 col-major, lda 2
	b := make([]float64, 12) // 3x4 col-major (B^T is 4x3), ldb 3
	c := make([]float64, 6)  // 2x3 col-major, ldc 2
	err := be.Dgemm(ColMajor, NoTrans, Trans, 2, 3, 4, 1, a, 2, b, 3, 0, c, 2)
	if err != nil {
		t.Fatalf("Dgemm failed: %v", err)
	}
	if got.ta != 'N' || got.tb != 'T' {
		t.Errorf("Kernel flags %q %q, want 'N' 'T'", got.ta, got.tb)
	}
	if got.m != 2 || got.n != 3 || got.k != 4 {
		t.Errorf("Kernel dims %d %d %d, want 2 3 4", got.m, got.n, got.k)
	}
	if got.a != &a[0] || got.b != &b[0] {
		t.Error("Column-major call must pass operands through unchanged")
	}
	if got.lda != 2 || got.ldb != 3 {
		t.Errorf("Kernel lda=%d ldb=%d, want 2 3", got.lda, got.ldb)
	}
}

func TestDgemmRowMajorSwapsOperands(t *testing.T) {
	be := New()
	var got struct {
		ta, tb     byte
		m, n, k    Int
		a, b, c    *float64
		lda, ldb   Int
	}
	be.RegisterDgemm(func(transA, transB *byte, m, n, k *Int, alpha *float64, a *float64, lda *Int, b *float64, ldb *Int, beta *float64, c *float64, ldc *Int) {
		got.ta, got.tb = *transA, *transB
		got.m, got.n, got.k = *m, *n, *k
		got.a, got.b, got.c = a, b, c
		got.lda, got.ldb = *lda, *ldb
	})

	// m=2 n=3 k=4 row-major with distinct leading dimensions.
	a := make([]float64, 9)  // 2x4, lda 5
	b := make([]float64, 12) // 3x4 stored (transB=Trans), ldb 4
	c := make([]float64, 6)  // 2x3, ldc 3
	err := be.Dgemm(RowMajor, NoTrans, Trans, 2, 3, 4, 1, a, 5, b, 4, 0, c, 3)
	if err != nil {
		t.Fatalf("Dgemm failed: %v", err)
	}
	// C^T = op(B)^T op(A)^T: operands exchanged, flags exchanged, m and n
	// exchanged, k unchanged.
	if got.ta != 'T' || got.tb != 'N' {
		t.Errorf("Kernel flags %q %q, want 'T' 'N'", got.ta, got.tb)
	}
	if got.m != 3 || got.n != 2 || got.k != 4 {
		t.Errorf("Kernel dims %d %d %d, want 3 2 4", got.m, got.n, got.k)
	}
	if got.a != &b[0] || got.b != &a[0] {
		t.Error("Row-major gemm must pass b as the first operand and a as the second")
	}
	if got.lda != 4 || got.ldb != 5 {
		t.Errorf("Kernel lda=%d ldb=%d, want 4 5", got.lda, got.ldb)
	}
	if got.c != &c[0] {
		t.Error("Row-major gemm must not move c")
	}
}

func TestDgemvRowMajorFlipsTrans(t *testing.T) {
	be := New()
	var got struct {
		trans byte
		m, n  Int
		a     *float64
	}
	be.RegisterDgemv(func(trans *byte, m, n *Int, alpha *float64, a *float64, lda *Int, x *float64, incX *Int, beta *float64, y *float64, incY *Int) {
		got.trans, got.m, got.n, got.a = *trans, *m, *n, a
	})

	a := make([]float64, 6) // 2x3 row-major, lda 3
	x := make([]float64, 3)
	y := make([]float64, 2)
	if err := be.Dgemv(RowMajor, NoTrans, 2, 3, 1, a, 3, x, 1, 0, y, 1); err != nil {
		t.Fatalf("Dgemv failed: %v", err)
	}
	if got.trans != 'T' {
		t.Errorf("Kernel trans %q, want 'T'", got.trans)
	}
	if got.m != 3 || got.n != 2 {
		t.Errorf("Kernel dims %d %d, want 3 2", got.m, got.n)
	}
	if got.a != &a[0] {
		t.Error("Row-major gemv must not move a")
	}

	if err := be.Dgemv(RowMajor, Trans, 2, 3, 1, a, 3, y, 1, 0, x, 1); err != nil {
		t.Fatalf("Dgemv failed: %v", err)
	}
	if got.trans != 'N' {
		t.Errorf("Kernel trans %q, want 'N'", got.trans)
	}
}

func TestZgemvRowMajorKeepsConjugation(t *testing.T) {
	be := New()
	var gotTrans byte
	be.RegisterZgemv(func(trans *byte, m, n *Int, alpha *complex128, a *complex128, lda *Int, x *complex128, incX *Int, beta *complex128, y *complex128, incY *Int) {
		gotTrans = *trans
	})

	a := make([]complex128, 6) // 2x3 row-major
	x := make([]complex128, 3)
	y := make([]complex128, 2)

	cases := []struct {
		trans Transpose
		want  byte
	}{
		{NoTrans, 'T'},
		{Trans, 'N'},
		{ConjTrans, 'R'},
		{ConjNoTrans, 'C'},
	}
	for _, c := range cases {
		xx, yy := x, y
		if c.trans == Trans || c.trans == ConjTrans {
			xx, yy = y, x
		}
		if err := be.Zgemv(RowMajor, c.trans, 2, 3, 1, a, 3, xx, 1, 0, yy, 1); err != nil {
			t.Fatalf("Zgemv(%d) failed: %v", int(c.trans), err)
		}
		if gotTrans != c.want {
			t.Errorf("Zgemv(%d): kernel trans %q, want %q", int(c.trans), gotTrans, c.want)
		}
	}
}

func TestDsymvRowMajorFlipsUplo(t *testing.T) {
	be := New()
	var gotUplo byte
	be.RegisterDsymv(func(uplo *byte, n *Int, alpha *float64, a *float64, lda *Int, x *float64, incX *Int, beta *float64, y *float64, incY *Int) {
		gotUplo = *uplo
	})

	a := make([]float64, 4)
	x := make([]float64, 2)
	y := make([]float64, 2)
	if err := be.Dsymv(RowMajor, Upper, 2, 1, a, 2, x, 1, 0, y, 1); err != nil {
		t.Fatal(err)
	}
	if gotUplo != 'L' {
		t.Errorf("Kernel uplo %q, want 'L'", gotUplo)
	}
	if err := be.Dsymv(ColMajor, Upper, 2, 1, a, 2, x, 1, 0, y, 1); err != nil {
		t.Fatal(err)
	}
	if gotUplo != 'U' {
		t.Errorf("Kernel uplo %q, want 'U'", gotUplo)
	}
}

func TestZtrmvRowMajorFlipsUploAndTrans(t *testing.T) {
	be := New()
	var gotUplo, gotTrans, gotDiag byte
	be.RegisterZtrmv(func(uplo, trans, diag *byte, n *Int, a *complex128, lda *Int, x *complex128, incX *Int) {
		gotUplo, gotTrans, gotDiag = *uplo, *trans, *diag
	})

	a := make([]complex128, 4)
	x := make([]complex128, 2)
	if err := be.Ztrmv(RowMajor, Upper, ConjTrans, NonUnit, 2, a, 2, x, 1); err != nil {
		t.Fatal(err)
	}
	if gotUplo != 'L' || gotTrans != 'R' || gotDiag != 'N' {
		t.Errorf("Kernel flags %q %q %q, want 'L' 'R' 'N'", gotUplo, gotTrans, gotDiag)
	}

	if err := be.Ztrmv(RowMajor, Lower, NoTrans, Unit, 2, a, 2, x, 1); err != nil {
		t.Fatal(err)
	}
	if gotUplo != 'U' || gotTrans != 'T' || gotDiag != 'U' {
		t.Errorf("Kernel flags %q %q %q, want 'U' 'T' 'U'", gotUplo, gotTrans, gotDiag)
	}
}

func TestDtrmmRowMajorFlipsSideAndUplo(t *testing.T) {
	be := New()
	var got struct {
		side, uplo, trans, diag byte
		m, n                    Int
		a, b                    *float64
	}
	be.RegisterDtrmm(func(side, uplo, transA, diag *byte, m, n *Int, alpha *float64, a *float64, lda *Int, b *float64, ldb *Int) {
		got.side, got.uplo, got.trans, got.diag = *side, *uplo, *transA, *diag
		got.m, got.n = *m, *n
		got.a, got.b = a, b
	})

	a := make([]float64, 4) // 2x2 triangle
	b := make([]float64, 6) // 2x3 row-major, ldb 3
	if err := be.Dtrmm(RowMajor, Left, Upper, Trans, Unit, 2, 3, 1, a, 2, b, 3); err != nil {
		t.Fatal(err)
	}
	if got.side != 'R' || got.uplo != 'L' || got.trans != 'T' || got.diag != 'U' {
		t.Errorf("Kernel flags %q %q %q %q, want 'R' 'L' 'T' 'U'", got.side, got.uplo, got.trans, got.diag)
	}
	if got.m != 3 || got.n != 2 {
		t.Errorf("Kernel dims %d %d, want 3 2", got.m, got.n)
	}
	if got.a != &a[0] || got.b != &b[0] {
		t.Error("trmm must not move its operands")
	}
}

func TestZherkRowMajorFlipsHermitianTrans(t *testing.T) {
	be := New()
	var gotUplo, gotTrans byte
	be.RegisterZherk(func(uplo, trans *byte, n, k *Int, alpha *float64, a *complex128, lda *Int, beta *float64, c *complex128, ldc *Int) {
		gotUplo, gotTrans = *uplo, *trans
	})

	a := make([]complex128, 6) // 2x3 row-major
	c := make([]complex128, 4)
	if err := be.Zherk(RowMajor, Upper, NoTrans, 2, 3, 1, a, 3, 0, c, 2); err != nil {
		t.Fatal(err)
	}
	if gotUplo != 'L' || gotTrans != 'C' {
		t.Errorf("Kernel flags %q %q, want 'L' 'C'", gotUplo, gotTrans)
	}

	a2 := make([]complex128, 6) // 3x2 row-major stored for ConjTrans
	if err := be.Zherk(RowMajor, Lower, ConjTrans, 2, 3, 1, a2, 2, 0, c, 2); err != nil {
		t.Fatal(err)
	}
	if gotUplo != 'U' || gotTrans != 'N' {
		t.Errorf("Kernel flags %q %q, want 'U' 'N'", gotUplo, gotTrans)
	}
}

func TestZherRowMajorConjugatesX(t *testing.T) {
	be := New()
	var got struct {
		uplo   byte
		incX   Int
		xv     []complex128
		a      *complex128
	}
	be.RegisterZher(func(uplo *byte, n *Int, alpha *float64, x *complex128, incX *Int, a *complex128, lda *Int) {
		got.uplo = *uplo
		got.incX = *incX
		got.xv = append([]complex128(nil), unsafe.Slice(x, int(*n))...)
		got.a = a
	})

	x := []complex128{1 + 2i, 99, 3 - 4i} // n=2, incX=2
	a := make([]complex128, 4)
	if err := be.Zher(RowMajor, Upper, 2, 0.5, x, 2, a, 2); err != nil {
		t.Fatal(err)
	}
	if got.uplo != 'L' {
		t.Errorf("Kernel uplo %q, want 'L'", got.uplo)
	}
	if got.incX != 1 {
		t.Errorf("Kernel incX %d, want unit stride scratch", got.incX)
	}
	if len(got.xv) != 2 || got.xv[0] != 1-2i || got.xv[1] != 3+4i {
		t.Errorf("Kernel saw x = %v, want conjugated [1-2i 3+4i]", got.xv)
	}
	if got.a != &a[0] {
		t.Error("her must update a in place")
	}
	// The caller's vector is untouched.
	if x[0] != 1+2i || x[2] != 3-4i {
		t.Errorf("Caller x mutated: %v", x)
	}
}

func TestZhemvRowMajorConjugation(t *testing.T) {
	be := New()
	var got struct {
		uplo        byte
		alpha, beta complex128
		xv, yv      []complex128
	}
	be.RegisterZhemv(func(uplo *byte, n *Int, alpha *complex128, a *complex128, lda *Int, x *complex128, incX *Int, beta *complex128, y *complex128, incY *Int) {
		got.uplo = *uplo
		got.alpha, got.beta = *alpha, *beta
		got.xv = append([]complex128(nil), unsafe.Slice(x, int(*n))...)
		got.yv = append([]complex128(nil), unsafe.Slice(y, int(*n))...)
	})

	a := make([]complex128, 4)
	x := []complex128{1 + 1i, 2 - 2i}
	y := []complex128{5 + 6i, 7 - 8i}
	if err := be.Zhemv(RowMajor, Lower, 2, 1+2i, a, 2, x, 1, 3+4i, y, 1); err != nil {
		t.Fatal(err)
	}
	if got.uplo != 'U' {
		t.Errorf("Kernel uplo %q, want 'U'", got.uplo)
	}
	if got.alpha != 1-2i || got.beta != 3-4i {
		t.Errorf("Kernel scalars %v %v, want conjugates 1-2i 3-4i", got.alpha, got.beta)
	}
	if got.xv[0] != 1-1i || got.xv[1] != 2+2i {
		t.Errorf("Kernel saw x = %v, want conjugated", got.xv)
	}
	if got.yv[0] != 5-6i || got.yv[1] != 7+8i {
		t.Errorf("Kernel saw y = %v, want conjugated", got.yv)
	}
	// The kernel wrote nothing, so the double conjugation restores y.
	if y[0] != 5+6i || y[1] != 7-8i {
		t.Errorf("Caller y not restored: %v", y)
	}
}

func TestIamaxRebasesToZero(t *testing.T) {
	be := New()
	ret := Int(3)
	be.RegisterIsamax(func(n *Int, x *float32, incX *Int) Int {
		return ret
	})

	x := []float32{1, 2, 3, 4}
	ix, err := be.Isamax(4, x, 1)
	if err != nil {
		t.Fatal(err)
	}
	if ix != 2 {
		t.Errorf("Expected zero based index 2 for Fortran index 3, got %d", ix)
	}

	// A kernel reporting no element (zero extent) maps to 0.
	ret = 0
	ix, err = be.Isamax(0, nil, 1)
	if err != nil {
		t.Fatal(err)
	}
	if ix != 0 {
		t.Errorf("Expected 0 for empty vector, got %d", ix)
	}
}

func TestValidationShortCircuits(t *testing.T) {
	be := New()
	calls := 0
	be.RegisterDgemm(func(transA, transB *byte, m, n, k *Int, alpha *float64, a *float64, lda *Int, b *float64, ldb *Int, beta *float64, c *float64, ldc *Int) {
		calls++
	})

	a := make([]float64, 8)
	b := make([]float64, 12)
	c := []float64{-1, -1, -1, -1, -1, -1}

	// lda too small for a 2x4 row-major operand.
	err := be.Dgemm(RowMajor, NoTrans, Trans, 2, 3, 4, 1, a, 2, b, 4, 0, c, 3)
	if err == nil {
		t.Fatal("Expected error for bad lda")
	}
	if !IsInvalidArgError(err) {
		t.Errorf("Expected invalid argument error, got %v", err)
	}

	// Unknown transpose flag.
	err = be.Dgemm(RowMajor, Transpose(0), NoTrans, 2, 3, 4, 1, a, 4, b, 4, 0, c, 3)
	if !IsInvalidArgError(err) {
		t.Errorf("Expected invalid argument error for bad flag, got %v", err)
	}

	// Negative dimension.
	err = be.Dgemm(RowMajor, NoTrans, NoTrans, -1, 3, 4, 1, a, 4, b, 4, 0, c, 3)
	if !IsInvalidArgError(err) {
		t.Errorf("Expected invalid argument error for m < 0, got %v", err)
	}

	if calls != 0 {
		t.Errorf("Kernel reached %d times despite invalid arguments", calls)
	}
	for i, v := range c {
		if v != -1 {
			t.Fatalf("c[%d] modified by failed call: %v", i, v)
		}
	}
}

func TestVectorValidation(t *testing.T) {
	be := New()
	be.RegisterDdot(func(n *Int, x *float64, incX *Int, y *float64, incY *Int) float64 { return 0 })

	x := []float64{1, 2, 3}
	// Zero increment.
	if _, err := be.Ddot(3, x, 0, x, 1); !IsInvalidArgError(err) {
		t.Errorf("Expected invalid argument error for zero increment, got %v", err)
	}
	// Slice too short for the stride.
	if _, err := be.Ddot(3, x, 2, x, 1); !IsInvalidArgError(err) {
		t.Errorf("Expected invalid argument error for short x, got %v", err)
	}
	// Negative increments need the same span.
	if _, err := be.Ddot(3, x, -1, x, -1); err != nil {
		t.Errorf("Negative increment rejected: %v", err)
	}
	if _, err := be.Ddot(3, x, -2, x, 1); !IsInvalidArgError(err) {
		t.Errorf("Expected invalid argument error for short reverse x, got %v", err)
	}
}

func TestComplexDotStyles(t *testing.T) {
	t.Run("Return_Value", func(t *testing.T) {
		be := New()
		be.RegisterCdotu(CdotuValue(func(n *Int, x *complex64, incX *Int, y *complex64, incY *Int) complex64 {
			return 5 + 6i
		}))
		var ret complex64
		if err := be.CdotuSub(1, []complex64{0}, 1, []complex64{0}, 1, &ret); err != nil {
			t.Fatal(err)
		}
		if ret != 5+6i {
			t.Errorf("Expected 5+6i, got %v", ret)
		}
	})

	t.Run("Hidden_Argument", func(t *testing.T) {
		be := New()
		be.RegisterCdotu(CdotuHidden(func(ret *complex64, n *Int, x *complex64, incX *Int, y *complex64, incY *Int) {
			*ret = 7 + 8i
		}))
		if err := be.SetComplexReturnStyle(HiddenArgument); err != nil {
			t.Fatal(err)
		}
		var ret complex64
		if err := be.CdotuSub(1, []complex64{0}, 1, []complex64{0}, 1, &ret); err != nil {
			t.Fatal(err)
		}
		if ret != 7+8i {
			t.Errorf("Expected 7+8i, got %v", ret)
		}
	})

	t.Run("Per_Routine_Override", func(t *testing.T) {
		be := New()
		be.RegisterZdotc(ZdotcHidden(func(ret *complex128, n *Int, x *complex128, incX *Int, y *complex128, incY *Int) {
			*ret = 1 + 2i
		}))
		be.RegisterZdotu(ZdotuValue(func(n *Int, x *complex128, incX *Int, y *complex128, incY *Int) complex128 {
			return 3 + 4i
		}))
		if err := be.SetComplexReturnStyleFor(Zdotc, HiddenArgument); err != nil {
			t.Fatal(err)
		}

		var ret complex128
		if err := be.ZdotcSub(1, []complex128{0}, 1, []complex128{0}, 1, &ret); err != nil {
			t.Fatal(err)
		}
		if ret != 1+2i {
			t.Errorf("Expected 1+2i from hidden argument kernel, got %v", ret)
		}
		if err := be.ZdotuSub(1, []complex128{0}, 1, []complex128{0}, 1, &ret); err != nil {
			t.Fatal(err)
		}
		if ret != 3+4i {
			t.Errorf("Expected 3+4i from value kernel, got %v", ret)
		}
	})

	t.Run("Nil_Ret", func(t *testing.T) {
		be := New()
		be.RegisterZdotu(ZdotuValue(func(n *Int, x *complex128, incX *Int, y *complex128, incY *Int) complex128 {
			return 0
		}))
		err := be.ZdotuSub(1, []complex128{0}, 1, []complex128{0}, 1, nil)
		if !IsInvalidArgError(err) {
			t.Errorf("Expected invalid argument error for nil ret, got %v", err)
		}
	})
}

func TestZherRowMajorZeroExtentSkipsKernel(t *testing.T) {
	be := New()
	calls := 0
	be.RegisterZher(func(uplo *byte, n *Int, alpha *float64, x *complex128, incX *Int, a *complex128, lda *Int) {
		calls++
	})
	if err := be.Zher(RowMajor, Upper, 0, 1, nil, 1, nil, 1); err != nil {
		t.Fatal(err)
	}
	if calls != 0 {
		t.Error("Row-major her with zero extent must not build a scratch vector or call the kernel")
	}
	// The column-major path forwards the quick return to the kernel.
	if err := be.Zher(ColMajor, Upper, 0, 1, nil, 1, nil, 1); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("Expected the column-major call to reach the kernel, calls=%d", calls)
	}
}
