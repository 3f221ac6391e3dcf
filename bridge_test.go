package blasbridge_test

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/gonum"

	"github.com/LynnColeArt/blasbridge"
	"github.com/LynnColeArt/blasbridge/refblas"
)

// End-to-end dispatch through the full bridge: refblas kernels registered
// on a backend, results checked against gonum's row-major implementation.
// gonum computes natively in the layout the row-major entry points accept,
// so it sees none of the bridge's rewriting and makes an independent
// oracle for it.

var impl = gonum.Implementation{}

func newRefBackend() *blasbridge.Backend {
	be := blasbridge.New()
	refblas.RegisterAll(be)
	return be
}

func genF64(n, seed int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(float64(i+seed) * 0.1)
	}
	return out
}

func genF32(n, seed int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(math.Sin(float64(i+seed) * 0.1))
	}
	return out
}

func genC128(n, seed int) []complex128 {
	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(math.Sin(float64(i+seed)*0.1), math.Cos(float64(i+seed)*0.1))
	}
	return out
}

func cloneF64(x []float64) []float64 { return append([]float64(nil), x...) }

func cloneC128(x []complex128) []complex128 { return append([]complex128(nil), x...) }

func verifyF64(t *testing.T, want, got []float64) {
	t.Helper()
	if res := blasbridge.VerifyFloat64Array(want, got, blasbridge.DefaultTolerance()); res.NumErrors != 0 {
		t.Errorf("Result differs from gonum reference: %v", res)
	}
}

func verifyF32(t *testing.T, want, got []float32) {
	t.Helper()
	if res := blasbridge.VerifyFloat32Array(want, got, blasbridge.DefaultTolerance()); res.NumErrors != 0 {
		t.Errorf("Result differs from gonum reference: %v", res)
	}
}

func verifyC128(t *testing.T, want, got []complex128) {
	t.Helper()
	if res := blasbridge.VerifyComplex128Array(want, got, blasbridge.DefaultTolerance()); res.NumErrors != 0 {
		t.Errorf("Result differs from gonum reference: %v", res)
	}
}

var gonumTrans = map[blasbridge.Transpose]blas.Transpose{
	blasbridge.NoTrans:   blas.NoTrans,
	blasbridge.Trans:     blas.Trans,
	blasbridge.ConjTrans: blas.ConjTrans,
}

var gonumUplo = map[blasbridge.Uplo]blas.Uplo{
	blasbridge.Upper: blas.Upper,
	blasbridge.Lower: blas.Lower,
}

var gonumDiag = map[blasbridge.Diag]blas.Diag{
	blasbridge.NonUnit: blas.NonUnit,
	blasbridge.Unit:    blas.Unit,
}

var gonumSide = map[blasbridge.Side]blas.Side{
	blasbridge.Left:  blas.Left,
	blasbridge.Right: blas.Right,
}

// storedDims is opDims for test-side bookkeeping: the stored shape of a
// matrix whose op() result is r x c.
func storedDims(tr blasbridge.Transpose, r, c int) (rows, cols int) {
	if tr == blasbridge.Trans || tr == blasbridge.ConjTrans {
		return c, r
	}
	return r, c
}

// transposeF64 returns the column-major image of a row-major rows x cols
// buffer, i.e. the same matrix re-stored with leading dimension rows.
func transposeF64(x []float64, rows, cols, ld int) []float64 {
	out := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out[i+j*rows] = x[i*ld+j]
		}
	}
	return out
}

func TestDgemmReferenceScenario(t *testing.T) {
	be := newRefBackend()

	a := []float64{
		1, 2,
		3, 4,
		5, 6,
	}
	b := []float64{
		1, 2, 3, 4,
		5, 6, 7, 8,
	}
	c := make([]float64, 12)
	want := []float64{
		11, 14, 17, 20,
		23, 30, 37, 44,
		35, 46, 57, 68,
	}

	err := be.Dgemm(blasbridge.RowMajor, blasbridge.NoTrans, blasbridge.NoTrans,
		3, 4, 2, 1, a, 2, b, 4, 0, c, 4)
	if err != nil {
		t.Fatalf("Dgemm failed: %v", err)
	}
	verifyF64(t, want, c)

	cRef := make([]float64, 12)
	impl.Dgemm(blas.NoTrans, blas.NoTrans, 3, 4, 2, 1, a, 2, b, 4, 0, cRef, 4)
	verifyF64(t, cRef, c)
}

func TestDgemmAgainstGonum(t *testing.T) {
	be := newRefBackend()
	shapes := []struct{ m, n, k int }{
		{3, 4, 2},
		{5, 3, 7},
		{1, 6, 4},
		{4, 4, 4},
	}
	transes := []blasbridge.Transpose{blasbridge.NoTrans, blasbridge.Trans}

	for _, sh := range shapes {
		for _, tA := range transes {
			for _, tB := range transes {
				ra, ca := storedDims(tA, sh.m, sh.k)
				rb, cb := storedDims(tB, sh.k, sh.n)
				a := genF64(ra*ca, 1)
				b := genF64(rb*cb, 2)
				c0 := genF64(sh.m*sh.n, 3)

				got := cloneF64(c0)
				err := be.Dgemm(blasbridge.RowMajor, tA, tB, sh.m, sh.n, sh.k,
					1.5, a, ca, b, cb, 0.5, got, sh.n)
				if err != nil {
					t.Fatalf("Dgemm(%dx%dx%d %v %v) failed: %v", sh.m, sh.n, sh.k, tA, tB, err)
				}

				want := cloneF64(c0)
				impl.Dgemm(gonumTrans[tA], gonumTrans[tB], sh.m, sh.n, sh.k,
					1.5, a, ca, b, cb, 0.5, want, sh.n)
				verifyF64(t, want, got)
			}
		}
	}
}

// Both orders must agree on the same mathematical operation: feeding the
// column-major path the re-stored buffers reproduces the row-major result.
func TestDgemmOrdersAgree(t *testing.T) {
	be := newRefBackend()
	const m, n, k = 3, 5, 4

	a := genF64(m*k, 7)
	b := genF64(k*n, 8)
	c0 := genF64(m*n, 9)

	rowC := cloneF64(c0)
	if err := be.Dgemm(blasbridge.RowMajor, blasbridge.NoTrans, blasbridge.NoTrans,
		m, n, k, 2, a, k, b, n, 1, rowC, n); err != nil {
		t.Fatalf("Row-major Dgemm failed: %v", err)
	}

	colC := transposeF64(c0, m, n, n)
	if err := be.Dgemm(blasbridge.ColMajor, blasbridge.NoTrans, blasbridge.NoTrans,
		m, n, k, 2, transposeF64(a, m, k, k), m, transposeF64(b, k, n, n), k, 1, colC, m); err != nil {
		t.Fatalf("Column-major Dgemm failed: %v", err)
	}

	verifyF64(t, transposeF64(rowC, m, n, n), colC)
}

func TestSgemmAgainstGonum(t *testing.T) {
	be := newRefBackend()
	const m, n, k = 4, 3, 5

	a := genF32(m*k, 1)
	b := genF32(k*n, 2)
	c0 := genF32(m*n, 3)

	got := append([]float32(nil), c0...)
	err := be.Sgemm(blasbridge.RowMajor, blasbridge.NoTrans, blasbridge.Trans,
		m, n, k, 1.25, a, k, b, k, -0.5, got, n)
	if err != nil {
		t.Fatalf("Sgemm failed: %v", err)
	}

	want := append([]float32(nil), c0...)
	impl.Sgemm(blas.NoTrans, blas.Trans, m, n, k, 1.25, a, k, b, k, -0.5, want, n)
	verifyF32(t, want, got)
}

func TestZgemmAgainstGonum(t *testing.T) {
	be := newRefBackend()
	const m, n, k = 3, 4, 2
	transes := []blasbridge.Transpose{blasbridge.NoTrans, blasbridge.Trans, blasbridge.ConjTrans}

	for _, tA := range transes {
		for _, tB := range transes {
			ra, ca := storedDims(tA, m, k)
			rb, cb := storedDims(tB, k, n)
			a := genC128(ra*ca, 1)
			b := genC128(rb*cb, 2)
			c0 := genC128(m*n, 3)

			got := cloneC128(c0)
			err := be.Zgemm(blasbridge.RowMajor, tA, tB, m, n, k,
				1+0.5i, a, ca, b, cb, 0.25-1i, got, n)
			if err != nil {
				t.Fatalf("Zgemm(%v %v) failed: %v", tA, tB, err)
			}

			want := cloneC128(c0)
			impl.Zgemm(gonumTrans[tA], gonumTrans[tB], m, n, k,
				1+0.5i, a, ca, b, cb, 0.25-1i, want, n)
			verifyC128(t, want, got)
		}
	}
}

func TestLevel2AgainstGonum(t *testing.T) {
	be := newRefBackend()

	t.Run("Dgemv", func(t *testing.T) {
		const m, n = 5, 4
		a := genF64(m*n, 1)
		for _, tc := range []struct {
			name       string
			trans      blasbridge.Transpose
			incX, incY int
		}{
			{"NoTrans", blasbridge.NoTrans, 1, 1},
			{"Trans", blasbridge.Trans, 1, 1},
			{"Strided", blasbridge.NoTrans, 2, -1},
		} {
			t.Run(tc.name, func(t *testing.T) {
				xn, yn := n, m
				if tc.trans == blasbridge.Trans {
					xn, yn = m, n
				}
				x := genF64(1+(xn-1)*abs(tc.incX), 2)
				y0 := genF64(1+(yn-1)*abs(tc.incY), 3)

				got := cloneF64(y0)
				err := be.Dgemv(blasbridge.RowMajor, tc.trans, m, n,
					1.5, a, n, x, tc.incX, 0.5, got, tc.incY)
				if err != nil {
					t.Fatalf("Dgemv failed: %v", err)
				}

				want := cloneF64(y0)
				impl.Dgemv(gonumTrans[tc.trans], m, n, 1.5, a, n, x, tc.incX, 0.5, want, tc.incY)
				verifyF64(t, want, got)
			})
		}
	})

	t.Run("Zgemv", func(t *testing.T) {
		const m, n = 4, 3
		a := genC128(m*n, 1)
		for _, trans := range []blasbridge.Transpose{blasbridge.NoTrans, blasbridge.Trans, blasbridge.ConjTrans} {
			xn, yn := n, m
			if trans != blasbridge.NoTrans {
				xn, yn = m, n
			}
			x := genC128(xn, 2)
			y0 := genC128(yn, 3)

			got := cloneC128(y0)
			err := be.Zgemv(blasbridge.RowMajor, trans, m, n,
				1-0.5i, a, n, x, 1, 0.5+0.5i, got, 1)
			if err != nil {
				t.Fatalf("Zgemv(%v) failed: %v", trans, err)
			}

			want := cloneC128(y0)
			impl.Zgemv(gonumTrans[trans], m, n, 1-0.5i, a, n, x, 1, 0.5+0.5i, want, 1)
			verifyC128(t, want, got)
		}
	})

	t.Run("Zhemv", func(t *testing.T) {
		const n = 4
		a := genC128(n*n, 1)
		x := genC128(n, 2)
		for _, uplo := range []blasbridge.Uplo{blasbridge.Upper, blasbridge.Lower} {
			y0 := genC128(n, 3)

			got := cloneC128(y0)
			err := be.Zhemv(blasbridge.RowMajor, uplo, n, 2-1i, a, n, x, 1, 0.5i, got, 1)
			if err != nil {
				t.Fatalf("Zhemv(%v) failed: %v", uplo, err)
			}

			want := cloneC128(y0)
			impl.Zhemv(gonumUplo[uplo], n, 2-1i, a, n, x, 1, 0.5i, want, 1)
			verifyC128(t, want, got)
		}
	})

	t.Run("Zher", func(t *testing.T) {
		const n = 4
		x := genC128(n, 5)
		for _, uplo := range []blasbridge.Uplo{blasbridge.Upper, blasbridge.Lower} {
			a0 := genC128(n*n, 1)

			got := cloneC128(a0)
			if err := be.Zher(blasbridge.RowMajor, uplo, n, 0.7, x, 1, got, n); err != nil {
				t.Fatalf("Zher(%v) failed: %v", uplo, err)
			}

			want := cloneC128(a0)
			impl.Zher(gonumUplo[uplo], n, 0.7, x, 1, want, n)
			verifyC128(t, want, got)
		}
	})

	t.Run("Zher2", func(t *testing.T) {
		const n = 4
		x := genC128(n, 5)
		y := genC128(n, 6)
		for _, uplo := range []blasbridge.Uplo{blasbridge.Upper, blasbridge.Lower} {
			a0 := genC128(n*n, 1)

			got := cloneC128(a0)
			if err := be.Zher2(blasbridge.RowMajor, uplo, n, 1+2i, x, 1, y, 1, got, n); err != nil {
				t.Fatalf("Zher2(%v) failed: %v", uplo, err)
			}

			want := cloneC128(a0)
			impl.Zher2(gonumUplo[uplo], n, 1+2i, x, 1, y, 1, want, n)
			verifyC128(t, want, got)
		}
	})

	t.Run("Zgerc", func(t *testing.T) {
		const m, n = 4, 3
		x := genC128(m, 5)
		y := genC128(n, 6)
		a0 := genC128(m*n, 1)

		got := cloneC128(a0)
		if err := be.Zgerc(blasbridge.RowMajor, m, n, 2-0.5i, x, 1, y, 1, got, n); err != nil {
			t.Fatalf("Zgerc failed: %v", err)
		}

		want := cloneC128(a0)
		impl.Zgerc(m, n, 2-0.5i, x, 1, y, 1, want, n)
		verifyC128(t, want, got)
	})

	t.Run("Dtrmv", func(t *testing.T) {
		const n = 5
		a := genF64(n*n, 1)
		for _, uplo := range []blasbridge.Uplo{blasbridge.Upper, blasbridge.Lower} {
			for _, trans := range []blasbridge.Transpose{blasbridge.NoTrans, blasbridge.Trans} {
				for _, diag := range []blasbridge.Diag{blasbridge.NonUnit, blasbridge.Unit} {
					x0 := genF64(n, 2)

					got := cloneF64(x0)
					if err := be.Dtrmv(blasbridge.RowMajor, uplo, trans, diag, n, a, n, got, 1); err != nil {
						t.Fatalf("Dtrmv(%v %v %v) failed: %v", uplo, trans, diag, err)
					}

					want := cloneF64(x0)
					impl.Dtrmv(gonumUplo[uplo], gonumTrans[trans], gonumDiag[diag], n, a, n, want, 1)
					verifyF64(t, want, got)
				}
			}
		}
	})

	t.Run("Ztrsv", func(t *testing.T) {
		const n = 4
		a := genC128(n*n, 1)
		for i := 0; i < n; i++ {
			a[i*n+i] = complex(real(a[i*n+i])+float64(n), imag(a[i*n+i]))
		}
		for _, uplo := range []blasbridge.Uplo{blasbridge.Upper, blasbridge.Lower} {
			for _, trans := range []blasbridge.Transpose{blasbridge.NoTrans, blasbridge.Trans, blasbridge.ConjTrans} {
				x0 := genC128(n, 2)

				got := cloneC128(x0)
				if err := be.Ztrsv(blasbridge.RowMajor, uplo, trans, blasbridge.NonUnit, n, a, n, got, 1); err != nil {
					t.Fatalf("Ztrsv(%v %v) failed: %v", uplo, trans, err)
				}

				want := cloneC128(x0)
				impl.Ztrsv(gonumUplo[uplo], gonumTrans[trans], blas.NonUnit, n, a, n, want, 1)
				verifyC128(t, want, got)
			}
		}
	})

	t.Run("Izamax", func(t *testing.T) {
		x := genC128(9, 4)
		got, err := be.Izamax(len(x), x, 1)
		if err != nil {
			t.Fatalf("Izamax failed: %v", err)
		}
		if want := impl.Izamax(len(x), x, 1); got != want {
			t.Errorf("Izamax = %d, gonum says %d", got, want)
		}
	})
}

func TestLevel3AgainstGonum(t *testing.T) {
	be := newRefBackend()

	t.Run("Dsymm", func(t *testing.T) {
		const m, n = 4, 3
		b := genF64(m*n, 2)
		for _, side := range []blasbridge.Side{blasbridge.Left, blasbridge.Right} {
			na := m
			if side == blasbridge.Right {
				na = n
			}
			a := genF64(na*na, 1)
			for _, uplo := range []blasbridge.Uplo{blasbridge.Upper, blasbridge.Lower} {
				c0 := genF64(m*n, 3)

				got := cloneF64(c0)
				err := be.Dsymm(blasbridge.RowMajor, side, uplo, m, n,
					1.5, a, na, b, n, 0.5, got, n)
				if err != nil {
					t.Fatalf("Dsymm(%v %v) failed: %v", side, uplo, err)
				}

				want := cloneF64(c0)
				impl.Dsymm(gonumSide[side], gonumUplo[uplo], m, n, 1.5, a, na, b, n, 0.5, want, n)
				verifyF64(t, want, got)
			}
		}
	})

	t.Run("Zhemm", func(t *testing.T) {
		const m, n = 3, 4
		b := genC128(m*n, 2)
		for _, tc := range []struct {
			side blasbridge.Side
			uplo blasbridge.Uplo
		}{
			{blasbridge.Left, blasbridge.Upper},
			{blasbridge.Right, blasbridge.Lower},
		} {
			na := m
			if tc.side == blasbridge.Right {
				na = n
			}
			a := genC128(na*na, 1)
			c0 := genC128(m*n, 3)

			got := cloneC128(c0)
			err := be.Zhemm(blasbridge.RowMajor, tc.side, tc.uplo, m, n,
				1+1i, a, na, b, n, 0.5, got, n)
			if err != nil {
				t.Fatalf("Zhemm(%v %v) failed: %v", tc.side, tc.uplo, err)
			}

			want := cloneC128(c0)
			impl.Zhemm(gonumSide[tc.side], gonumUplo[tc.uplo], m, n, 1+1i, a, na, b, n, 0.5, want, n)
			verifyC128(t, want, got)
		}
	})

	t.Run("Dsyrk", func(t *testing.T) {
		const n, k = 4, 3
		for _, uplo := range []blasbridge.Uplo{blasbridge.Upper, blasbridge.Lower} {
			for _, trans := range []blasbridge.Transpose{blasbridge.NoTrans, blasbridge.Trans} {
				ra, ca := storedDims(trans, n, k)
				a := genF64(ra*ca, 1)
				c0 := genF64(n*n, 3)

				got := cloneF64(c0)
				err := be.Dsyrk(blasbridge.RowMajor, uplo, trans, n, k, 1.5, a, ca, 0.5, got, n)
				if err != nil {
					t.Fatalf("Dsyrk(%v %v) failed: %v", uplo, trans, err)
				}

				want := cloneF64(c0)
				impl.Dsyrk(gonumUplo[uplo], gonumTrans[trans], n, k, 1.5, a, ca, 0.5, want, n)
				verifyF64(t, want, got)
			}
		}
	})

	t.Run("Zherk", func(t *testing.T) {
		const n, k = 4, 2
		for _, uplo := range []blasbridge.Uplo{blasbridge.Upper, blasbridge.Lower} {
			for _, trans := range []blasbridge.Transpose{blasbridge.NoTrans, blasbridge.ConjTrans} {
				ra, ca := storedDims(trans, n, k)
				a := genC128(ra*ca, 1)
				c0 := genC128(n*n, 3)

				got := cloneC128(c0)
				err := be.Zherk(blasbridge.RowMajor, uplo, trans, n, k, 1.5, a, ca, 0.5, got, n)
				if err != nil {
					t.Fatalf("Zherk(%v %v) failed: %v", uplo, trans, err)
				}

				want := cloneC128(c0)
				impl.Zherk(gonumUplo[uplo], gonumTrans[trans], n, k, 1.5, a, ca, 0.5, want, n)
				verifyC128(t, want, got)
			}
		}
	})

	t.Run("Zher2k", func(t *testing.T) {
		const n, k = 3, 4
		for _, trans := range []blasbridge.Transpose{blasbridge.NoTrans, blasbridge.ConjTrans} {
			ra, ca := storedDims(trans, n, k)
			a := genC128(ra*ca, 1)
			b := genC128(ra*ca, 2)
			c0 := genC128(n*n, 3)

			got := cloneC128(c0)
			err := be.Zher2k(blasbridge.RowMajor, blasbridge.Lower, trans, n, k,
				1-2i, a, ca, b, ca, 0.5, got, n)
			if err != nil {
				t.Fatalf("Zher2k(%v) failed: %v", trans, err)
			}

			want := cloneC128(c0)
			impl.Zher2k(blas.Lower, gonumTrans[trans], n, k, 1-2i, a, ca, b, ca, 0.5, want, n)
			verifyC128(t, want, got)
		}
	})

	t.Run("Dtrmm", func(t *testing.T) {
		const m, n = 3, 4
		for _, tc := range []struct {
			side  blasbridge.Side
			uplo  blasbridge.Uplo
			trans blasbridge.Transpose
			diag  blasbridge.Diag
		}{
			{blasbridge.Left, blasbridge.Upper, blasbridge.NoTrans, blasbridge.NonUnit},
			{blasbridge.Right, blasbridge.Lower, blasbridge.Trans, blasbridge.Unit},
		} {
			na := m
			if tc.side == blasbridge.Right {
				na = n
			}
			a := genF64(na*na, 1)
			b0 := genF64(m*n, 2)

			got := cloneF64(b0)
			err := be.Dtrmm(blasbridge.RowMajor, tc.side, tc.uplo, tc.trans, tc.diag,
				m, n, 1.5, a, na, got, n)
			if err != nil {
				t.Fatalf("Dtrmm(%v %v %v %v) failed: %v", tc.side, tc.uplo, tc.trans, tc.diag, err)
			}

			want := cloneF64(b0)
			impl.Dtrmm(gonumSide[tc.side], gonumUplo[tc.uplo], gonumTrans[tc.trans], gonumDiag[tc.diag],
				m, n, 1.5, a, na, want, n)
			verifyF64(t, want, got)
		}
	})

	t.Run("Ztrsm", func(t *testing.T) {
		const m, n = 3, 4
		for _, tc := range []struct {
			side  blasbridge.Side
			uplo  blasbridge.Uplo
			trans blasbridge.Transpose
		}{
			{blasbridge.Left, blasbridge.Lower, blasbridge.NoTrans},
			{blasbridge.Right, blasbridge.Upper, blasbridge.ConjTrans},
		} {
			na := m
			if tc.side == blasbridge.Right {
				na = n
			}
			a := genC128(na*na, 1)
			for i := 0; i < na; i++ {
				a[i*na+i] = complex(real(a[i*na+i])+float64(na), imag(a[i*na+i]))
			}
			b0 := genC128(m*n, 2)

			got := cloneC128(b0)
			err := be.Ztrsm(blasbridge.RowMajor, tc.side, tc.uplo, tc.trans, blasbridge.NonUnit,
				m, n, 1+0.5i, a, na, got, n)
			if err != nil {
				t.Fatalf("Ztrsm(%v %v %v) failed: %v", tc.side, tc.uplo, tc.trans, err)
			}

			want := cloneC128(b0)
			impl.Ztrsm(gonumSide[tc.side], gonumUplo[tc.uplo], gonumTrans[tc.trans], blas.NonUnit,
				m, n, 1+0.5i, a, na, want, n)
			verifyC128(t, want, got)
		}
	})
}

func TestZdotcConjugateScenario(t *testing.T) {
	x := []complex128{1 + 2i, 3 + 4i, 5 + 6i, 7 + 8i}
	y := []complex128{1 - 1i, 2 - 2i, 3 - 3i, 4 - 4i}
	want := complex128(-10 - 110i)

	if ref := impl.Zdotc(len(x), x, 1, y, 1); !blasbridge.Complex128NearEqual(ref, want, blasbridge.StrictTolerance()) {
		t.Fatalf("gonum disagrees with the hand result: %v vs %v", ref, want)
	}

	t.Run("Return_Value", func(t *testing.T) {
		be := newRefBackend()
		var got complex128
		if err := be.ZdotcSub(len(x), x, 1, y, 1, &got); err != nil {
			t.Fatalf("ZdotcSub failed: %v", err)
		}
		if !blasbridge.Complex128NearEqual(got, want, blasbridge.StrictTolerance()) {
			t.Errorf("ZdotcSub = %v, want %v", got, want)
		}
	})

	t.Run("Hidden_Argument", func(t *testing.T) {
		be := blasbridge.New()
		be.RegisterZdotc(blasbridge.ZdotcHidden(
			func(ret *complex128, n *blasbridge.Int, x *complex128, incX *blasbridge.Int, y *complex128, incY *blasbridge.Int) {
				*ret = refblas.Zdotc(n, x, incX, y, incY)
			}))
		if err := be.SetComplexReturnStyleFor(blasbridge.Zdotc, blasbridge.HiddenArgument); err != nil {
			t.Fatal(err)
		}
		var got complex128
		if err := be.ZdotcSub(len(x), x, 1, y, 1, &got); err != nil {
			t.Fatalf("ZdotcSub failed: %v", err)
		}
		if !blasbridge.Complex128NearEqual(got, want, blasbridge.StrictTolerance()) {
			t.Errorf("ZdotcSub = %v, want %v", got, want)
		}
	})
}

func TestGemmZeroInnerDimension(t *testing.T) {
	be := newRefBackend()
	const m, n = 3, 4

	c := genF64(m*n, 1)
	want := make([]float64, m*n)
	for i := range c {
		want[i] = 0.5 * c[i]
	}

	err := be.Dgemm(blasbridge.RowMajor, blasbridge.NoTrans, blasbridge.NoTrans,
		m, n, 0, 1.5, nil, 1, nil, n, 0.5, c, n)
	if err != nil {
		t.Fatalf("Dgemm with k=0 failed: %v", err)
	}
	verifyF64(t, want, c)

	// m == 0 and n == 0 leave nothing to write; the call must still succeed.
	if err := be.Dgemm(blasbridge.RowMajor, blasbridge.NoTrans, blasbridge.NoTrans,
		0, n, 2, 1, nil, 2, genF64(2*n, 2), n, 0, nil, n); err != nil {
		t.Fatalf("Dgemm with m=0 failed: %v", err)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
