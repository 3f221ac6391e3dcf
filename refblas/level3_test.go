package refblas

import (
	"math"
	"testing"
)

func fill64(n, seed int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64((i*seed+3)%7) - 3
	}
	return out
}

func fillC(n, seed int) []complex128 {
	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(float64((i*seed+3)%7)-3, float64((i*seed+5)%5)-2)
	}
	return out
}

// refGemm accumulates alpha*op(A)*op(B) + beta*C into a column-major c,
// with the operands supplied elementwise.
func refGemm(m, n, k int, alpha float64, a, b func(int, int) float64, beta float64, c []float64, ldc int) {
	for j := 0; j < n; j++ {
		for i := 0; i < m; i++ {
			var s float64
			for l := 0; l < k; l++ {
				s += a(i, l) * b(l, j)
			}
			v := alpha * s
			if beta != 0 {
				v += beta * c[i+j*ldc]
			}
			c[i+j*ldc] = v
		}
	}
}

func refGemmC(m, n, k int, alpha complex128, a, b func(int, int) complex128, beta complex128, c []complex128, ldc int) {
	for j := 0; j < n; j++ {
		for i := 0; i < m; i++ {
			var s complex128
			for l := 0; l < k; l++ {
				s += a(i, l) * b(l, j)
			}
			v := alpha * s
			if beta != 0 {
				v += beta * c[i+j*ldc]
			}
			c[i+j*ldc] = v
		}
	}
}

// opEl adapts a stored column-major matrix to an op() accessor.
func opEl(a []float64, lda int, trans bool) func(int, int) float64 {
	if trans {
		return func(i, j int) float64 { return a[j+i*lda] }
	}
	return func(i, j int) float64 { return a[i+j*lda] }
}

func opElC(a []complex128, lda int, trans, conj bool) func(int, int) complex128 {
	return func(i, j int) complex128 {
		var v complex128
		if trans {
			v = a[j+i*lda]
		} else {
			v = a[i+j*lda]
		}
		if conj {
			v = conjOf(v)
		}
		return v
	}
}

func TestDgemmBlockedMatchesReference(t *testing.T) {
	// Shrink the panel sizes so a small problem crosses every panel
	// boundary of the blocked loop.
	defer func(old blockSizes) { block64 = old }(block64)
	block64 = blockSizes{mc: 2, kc: 3, nc: 2}

	const m, n, k = 5, 4, 7
	alpha := 1.3
	for _, ta := range []byte{'N', 'T'} {
		for _, tb := range []byte{'N', 'T'} {
			for _, beta := range []float64{0, 1, 0.5} {
				var a []float64
				var lda int
				if ta == 'N' {
					lda = m
					a = fill64(lda*k, 3)
				} else {
					lda = k
					a = fill64(lda*m, 3)
				}
				var b []float64
				var ldb int
				if tb == 'N' {
					ldb = k
					b = fill64(ldb*n, 5)
				} else {
					ldb = n
					b = fill64(ldb*k, 5)
				}
				c := fill64(m*n, 2)
				want := append([]float64(nil), c...)
				if beta == 0 {
					// beta of zero overwrites even NaN.
					for i := range c {
						c[i] = math.NaN()
					}
				}

				refGemm(m, n, k, alpha, opEl(a, lda, ta == 'T'), opEl(b, ldb, tb == 'T'), beta, want, m)
				al, be := alpha, beta
				Dgemm(bp(ta), bp(tb), ip(m), ip(n), ip(k), &al, &a[0], ip(lda), &b[0], ip(ldb), &be, &c[0], ip(m))

				name := string(ta) + string(tb)
				checkSlice64(t, "c "+name, c, want, 1e-12)
			}
		}
	}
}

func TestSgemmBlockedMatchesReference(t *testing.T) {
	defer func(old blockSizes) { block32 = old }(block32)
	block32 = blockSizes{mc: 3, kc: 2, nc: 3}

	const m, n, k = 4, 5, 6
	a64 := fill64(m*k, 3)
	b64 := fill64(k*n, 5)
	a := make([]float32, len(a64))
	b := make([]float32, len(b64))
	for i, v := range a64 {
		a[i] = float32(v)
	}
	for i, v := range b64 {
		b[i] = float32(v)
	}
	c := make([]float32, m*n)
	want := make([]float64, m*n)
	refGemm(m, n, k, 2, opEl(a64, m, false), opEl(b64, k, false), 0, want, m)

	alpha, beta := float32(2), float32(0)
	Sgemm(bp('N'), bp('N'), ip(m), ip(n), ip(k), &alpha, &a[0], ip(m), &b[0], ip(k), &beta, &c[0], ip(m))
	for i := range want {
		if float64(c[i]) != want[i] {
			t.Errorf("c[%d] = %v, want %v", i, c[i], want[i])
		}
	}
}

func TestZgemmFlagGrid(t *testing.T) {
	const m, n, k = 2, 3, 2
	alpha, beta := complex128(1.5-0.5i), complex128(0.25+1i)
	flags := []byte{'N', 'T', 'C', 'R'}

	for _, ta := range flags {
		for _, tb := range flags {
			var a []complex128
			var lda int
			if ta == 'N' || ta == 'R' {
				lda = m
				a = fillC(lda*k, 3)
			} else {
				lda = k
				a = fillC(lda*m, 3)
			}
			var b []complex128
			var ldb int
			if tb == 'N' || tb == 'R' {
				ldb = k
				b = fillC(ldb*n, 7)
			} else {
				ldb = n
				b = fillC(ldb*k, 7)
			}
			c := fillC(m*n, 11)
			want := append([]complex128(nil), c...)

			aEl := opElC(a, lda, ta == 'T' || ta == 'C', ta == 'C' || ta == 'R')
			bEl := opElC(b, ldb, tb == 'T' || tb == 'C', tb == 'C' || tb == 'R')
			refGemmC(m, n, k, alpha, aEl, bEl, beta, want, m)

			al, be := alpha, beta
			Zgemm(bp(ta), bp(tb), ip(m), ip(n), ip(k), &al, &a[0], ip(lda), &b[0], ip(ldb), &be, &c[0], ip(m))

			name := string(ta) + string(tb)
			checkSliceC(t, "c "+name, c, want, 1e-13)
		}
	}
}

func TestGemmDegenerateShapes(t *testing.T) {
	// k of zero leaves only the beta scaling.
	c := []float64{1, 2, 3, 4}
	alpha, beta := 5.0, 2.0
	Dgemm(bp('N'), bp('N'), ip(2), ip(2), ip(0), &alpha, nil, ip(1), nil, ip(1), &beta, &c[0], ip(2))
	checkSlice64(t, "c", c, []float64{2, 4, 6, 8}, 0)

	// Zero alpha never reads A or B.
	an := []float64{math.NaN(), math.NaN(), math.NaN(), math.NaN()}
	zero := 0.0
	Dgemm(bp('N'), bp('N'), ip(2), ip(2), ip(2), &zero, &an[0], ip(2), &an[0], ip(2), &beta, &c[0], ip(2))
	checkSlice64(t, "c alpha=0", c, []float64{4, 8, 12, 16}, 0)

	// Empty output shapes return without touching anything.
	Dgemm(bp('N'), bp('N'), ip(0), ip(2), ip(2), &alpha, nil, ip(1), &an[0], ip(2), &beta, nil, ip(1))
	Dgemm(bp('N'), bp('N'), ip(2), ip(0), ip(2), &alpha, &an[0], ip(2), nil, ip(1), &beta, nil, ip(1))
}

func TestDsymmBothSides(t *testing.T) {
	alpha, beta := 1.5, -0.5
	for _, side := range []byte{'L', 'R'} {
		for _, uplo := range []byte{'U', 'L'} {
			const m, n = 2, 3
			na := m
			if side == 'R' {
				na = n
			}
			// Full symmetric matrix and its single-triangle storage.
			full := make([]float64, na*na)
			stored := make([]float64, na*na)
			for j := 0; j < na; j++ {
				for i := 0; i <= j; i++ {
					v := float64((i+2)*(j+1)%5) + 1
					full[i+j*na] = v
					full[j+i*na] = v
					if uplo == 'U' {
						stored[i+j*na] = v
						if i != j {
							stored[j+i*na] = 999
						}
					} else {
						stored[j+i*na] = v
						if i != j {
							stored[i+j*na] = 999
						}
					}
				}
			}
			b := fill64(m*n, 5)
			c := fill64(m*n, 7)
			want := append([]float64(nil), c...)

			fullEl := opEl(full, na, false)
			bEl := opEl(b, m, false)
			if side == 'L' {
				refGemm(m, n, m, alpha, fullEl, bEl, beta, want, m)
			} else {
				refGemm(m, n, n, alpha, bEl, fullEl, beta, want, m)
			}

			al, be := alpha, beta
			Dsymm(bp(side), bp(uplo), ip(m), ip(n), &al, &stored[0], ip(na), &b[0], ip(m), &be, &c[0], ip(m))
			name := string(side) + string(uplo)
			checkSlice64(t, "c "+name, c, want, 1e-12)
		}
	}
}

func TestZhemmHermitianMirror(t *testing.T) {
	// Upper storage: mirror entries are conjugated, diagonal imaginary
	// parts ignored.
	const m, n = 2, 2
	stored := []complex128{5 + 9i, 999, 2 + 3i, 7 - 4i}
	full := []complex128{5, 2 - 3i, 2 + 3i, 7}
	b := fillC(m*n, 3)
	alpha, beta := complex128(1+1i), complex128(0.5)

	for _, side := range []byte{'L', 'R'} {
		c := fillC(m*n, 11)
		want := append([]complex128(nil), c...)
		fullEl := opElC(full, m, false, false)
		bEl := opElC(b, m, false, false)
		if side == 'L' {
			refGemmC(m, n, m, alpha, fullEl, bEl, beta, want, m)
		} else {
			refGemmC(m, n, n, alpha, bEl, fullEl, beta, want, m)
		}
		al, be := alpha, beta
		Zhemm(bp(side), bp('U'), ip(m), ip(n), &al, &stored[0], ip(m), &b[0], ip(m), &be, &c[0], ip(m))
		checkSliceC(t, "c "+string(side), c, want, 1e-13)
	}
}

func TestDsyrkWritesOneTriangle(t *testing.T) {
	const n, k = 3, 2
	alpha, beta := 2.0, 0.5
	for _, uplo := range []byte{'U', 'L'} {
		for _, trans := range []byte{'N', 'T'} {
			var a []float64
			var lda int
			if trans == 'N' {
				lda = n
				a = fill64(lda*k, 3)
			} else {
				lda = k
				a = fill64(lda*n, 3)
			}
			c := make([]float64, n*n)
			for i := range c {
				c[i] = 10
			}
			want := make([]float64, n*n)
			copy(want, c)
			aEl := opEl(a, lda, trans == 'T')
			aT := func(i, j int) float64 { return aEl(j, i) }
			refGemm(n, n, k, alpha, aEl, aT, beta, want, n)

			al, be := alpha, beta
			Dsyrk(bp(uplo), bp(trans), ip(n), ip(k), &al, &a[0], ip(lda), &be, &c[0], ip(n))

			name := string(uplo) + string(trans)
			for j := 0; j < n; j++ {
				for i := 0; i < n; i++ {
					inTri := (uplo == 'U' && i <= j) || (uplo == 'L' && i >= j)
					got := c[i+j*n]
					if inTri {
						if math.Abs(got-want[i+j*n]) > 1e-12 {
							t.Errorf("%s c(%d,%d) = %v, want %v", name, i, j, got, want[i+j*n])
						}
					} else if got != 10 {
						t.Errorf("%s c(%d,%d) = %v, want untouched 10", name, i, j, got)
					}
				}
			}
		}
	}
}

func TestZherkForcesRealDiagonal(t *testing.T) {
	const n, k = 2, 3
	alpha, beta := 2.0, 0.5
	for _, trans := range []byte{'N', 'C'} {
		var a []complex128
		var lda int
		if trans == 'N' {
			lda = n
			a = fillC(lda*k, 3)
		} else {
			lda = k
			a = fillC(lda*n, 3)
		}
		// Dirty imaginary parts on the diagonal of C.
		c := []complex128{1 + 5i, 0, 2 - 2i, 3 - 7i}
		want := make([]complex128, n*n)
		aEl := opElC(a, lda, trans == 'C', trans == 'C')
		aH := func(i, j int) complex128 { return conjOf(aEl(j, i)) }
		// Reference: upper triangle of alpha*op(A)*op(A)^H + beta*C with
		// only the real part of the diagonal of C referenced.
		for j := 0; j < n; j++ {
			for i := 0; i <= j; i++ {
				var s complex128
				for l := 0; l < k; l++ {
					s += aEl(i, l) * aH(l, j)
				}
				old := c[i+j*n]
				if i == j {
					want[i+j*n] = complex(alpha*real(s)+beta*real(old), 0)
				} else {
					want[i+j*n] = complex(alpha, 0)*s + complex(beta, 0)*old
				}
			}
		}

		al, be := alpha, beta
		Zherk(bp('U'), bp(trans), ip(n), ip(k), &al, &a[0], ip(lda), &be, &c[0], ip(n))

		name := string(trans)
		for j := 0; j < n; j++ {
			for i := 0; i <= j; i++ {
				d := c[i+j*n] - want[i+j*n]
				if math.Abs(real(d)) > 1e-13 || math.Abs(imag(d)) > 1e-13 {
					t.Errorf("%s c(%d,%d) = %v, want %v", name, i, j, c[i+j*n], want[i+j*n])
				}
			}
		}
		if imag(c[0]) != 0 || imag(c[3]) != 0 {
			t.Errorf("%s left imaginary residue on the diagonal: %v %v", name, c[0], c[3])
		}
	}
}

func TestDsyr2k(t *testing.T) {
	const n, k = 2, 3
	a := fill64(n*k, 3)
	b := fill64(n*k, 5)
	alpha, beta := 1.5, 1.0
	c := fill64(n*n, 7)
	want := append([]float64(nil), c...)

	aEl := opEl(a, n, false)
	bEl := opEl(b, n, false)
	// alpha*(A*B^T + B*A^T) + beta*C.
	refGemm(n, n, k, alpha, aEl, func(i, j int) float64 { return bEl(j, i) }, beta, want, n)
	refGemm(n, n, k, alpha, bEl, func(i, j int) float64 { return aEl(j, i) }, 1, want, n)

	al, be := alpha, beta
	Dsyr2k(bp('U'), bp('N'), ip(n), ip(k), &al, &a[0], ip(n), &b[0], ip(n), &be, &c[0], ip(n))
	for j := 0; j < n; j++ {
		for i := 0; i <= j; i++ {
			if math.Abs(c[i+j*n]-want[i+j*n]) > 1e-12 {
				t.Errorf("c(%d,%d) = %v, want %v", i, j, c[i+j*n], want[i+j*n])
			}
		}
	}
}

func TestZher2k(t *testing.T) {
	const n, k = 2, 2
	a := fillC(n*k, 3)
	b := fillC(n*k, 5)
	alpha := complex128(1 + 2i)
	beta := 0.5
	c := []complex128{4 + 9i, 0, 1 + 1i, 6 - 3i}

	aEl := opElC(a, n, false, false)
	bEl := opElC(b, n, false, false)
	want := make([]complex128, n*n)
	for j := 0; j < n; j++ {
		for i := 0; i <= j; i++ {
			var s complex128
			for l := 0; l < k; l++ {
				s += alpha*aEl(i, l)*conjOf(bEl(j, l)) + conjOf(alpha)*bEl(i, l)*conjOf(aEl(j, l))
			}
			old := c[i+j*n]
			if i == j {
				want[i+j*n] = complex(real(s)+beta*real(old), 0)
			} else {
				want[i+j*n] = s + complex(beta, 0)*old
			}
		}
	}

	al, be := alpha, beta
	Zher2k(bp('U'), bp('N'), ip(n), ip(k), &al, &a[0], ip(n), &b[0], ip(n), &be, &c[0], ip(n))
	for j := 0; j < n; j++ {
		for i := 0; i <= j; i++ {
			d := c[i+j*n] - want[i+j*n]
			if math.Abs(real(d)) > 1e-13 || math.Abs(imag(d)) > 1e-13 {
				t.Errorf("c(%d,%d) = %v, want %v", i, j, c[i+j*n], want[i+j*n])
			}
		}
	}
	if imag(c[0]) != 0 || imag(c[3]) != 0 {
		t.Errorf("imaginary residue on the diagonal: %v %v", c[0], c[3])
	}
}

// triEl expands triangular storage into a full matrix accessor.
func triEl(a []float64, lda int, upper, unit bool) func(int, int) float64 {
	return func(i, j int) float64 {
		if i == j {
			if unit {
				return 1
			}
			return a[i+j*lda]
		}
		if (upper && i < j) || (!upper && i > j) {
			return a[i+j*lda]
		}
		return 0
	}
}

func TestDtrmmMatchesReference(t *testing.T) {
	const m, n = 2, 3
	alpha := 1.5
	a := []float64{4, 0.5, 1, 5, 2, 0.75, 3, 1.5, 6} // 3x3, covers both sides
	b0 := fill64(m*n, 5)

	for _, side := range []byte{'L', 'R'} {
		na := m
		if side == 'R' {
			na = n
		}
		for _, uplo := range []byte{'U', 'L'} {
			for _, trans := range []byte{'N', 'T'} {
				for _, diag := range []byte{'N', 'U'} {
					b := append([]float64(nil), b0...)
					want := make([]float64, m*n)

					tri := triEl(a, 3, uplo == 'U', diag == 'U')
					el := tri
					if trans == 'T' {
						el = func(i, j int) float64 { return tri(j, i) }
					}
					bEl := opEl(b0, m, false)
					if side == 'L' {
						refGemm(m, n, na, alpha, el, bEl, 0, want, m)
					} else {
						refGemm(m, n, na, alpha, bEl, el, 0, want, m)
					}

					al := alpha
					Dtrmm(bp(side), bp(uplo), bp(trans), bp(diag), ip(m), ip(n), &al, &a[0], ip(3), &b[0], ip(m))

					name := string(side) + string(uplo) + string(trans) + string(diag)
					checkSlice64(t, "b "+name, b, want, 1e-12)
				}
			}
		}
	}
}

func TestDtrsmInvertsDtrmm(t *testing.T) {
	const m, n = 3, 2
	a := []float64{4, 0.5, 0.25, 1, 5, 0.75, 2, 1.5, 6}
	b0 := fill64(m*n, 7)

	for _, side := range []byte{'L', 'R'} {
		for _, uplo := range []byte{'U', 'L'} {
			for _, trans := range []byte{'N', 'T'} {
				for _, diag := range []byte{'N', 'U'} {
					b := append([]float64(nil), b0...)
					one := 1.0
					Dtrmm(bp(side), bp(uplo), bp(trans), bp(diag), ip(m), ip(n), &one, &a[0], ip(3), &b[0], ip(m))
					Dtrsm(bp(side), bp(uplo), bp(trans), bp(diag), ip(m), ip(n), &one, &a[0], ip(3), &b[0], ip(m))
					name := string(side) + string(uplo) + string(trans) + string(diag)
					checkSlice64(t, "round trip "+name, b, b0, 1e-11)
				}
			}
		}
	}
}

func TestZtrsmInvertsZtrmm(t *testing.T) {
	const m, n = 2, 2
	a := []complex128{4 + 1i, 0.5i, 1 - 1i, 5}
	b0 := fillC(m*n, 5)

	for _, side := range []byte{'L', 'R'} {
		for _, uplo := range []byte{'U', 'L'} {
			for _, trans := range []byte{'N', 'T', 'C', 'R'} {
				b := append([]complex128(nil), b0...)
				one := complex128(1)
				Ztrmm(bp(side), bp(uplo), bp(trans), bp('N'), ip(m), ip(n), &one, &a[0], ip(m), &b[0], ip(m))
				Ztrsm(bp(side), bp(uplo), bp(trans), bp('N'), ip(m), ip(n), &one, &a[0], ip(m), &b[0], ip(m))
				name := string(side) + string(uplo) + string(trans)
				checkSliceC(t, "round trip "+name, b, b0, 1e-11)
			}
		}
	}
}

func TestTrmmAlphaZeroZeroesB(t *testing.T) {
	a := []float64{math.NaN(), math.NaN(), math.NaN(), math.NaN()}
	b := []float64{math.NaN(), 2, 3, math.NaN()}
	zero := 0.0
	Dtrmm(bp('L'), bp('U'), bp('N'), bp('N'), ip(2), ip(2), &zero, &a[0], ip(2), &b[0], ip(2))
	for i, v := range b {
		if v != 0 {
			t.Errorf("b[%d] = %v, want 0", i, v)
		}
	}
}

func TestFlagRejections(t *testing.T) {
	expectPanic := func(name string, fn func()) {
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected panic", name)
			}
		}()
		fn()
	}

	one64 := 1.0
	one32 := float32(1)
	oneC64 := complex64(1)
	a64 := []float64{1}
	a32 := []float32{1}
	c64 := []complex64{1}
	ac := []complex128{1}

	expectPanic("dgemm R", func() {
		Dgemm(bp('R'), bp('N'), ip(1), ip(1), ip(1), &one64, &a64[0], ip(1), &a64[0], ip(1), &one64, &a64[0], ip(1))
	})
	expectPanic("dgemm unknown", func() {
		Dgemm(bp('X'), bp('N'), ip(1), ip(1), ip(1), &one64, &a64[0], ip(1), &a64[0], ip(1), &one64, &a64[0], ip(1))
	})
	expectPanic("zherk T", func() {
		Zherk(bp('U'), bp('T'), ip(1), ip(1), &one64, &ac[0], ip(1), &one64, &ac[0], ip(1))
	})
	expectPanic("csyrk C", func() {
		Csyrk(bp('U'), bp('C'), ip(1), ip(1), &oneC64, &c64[0], ip(1), &oneC64, &c64[0], ip(1))
	})
	expectPanic("ssyrk R", func() {
		Ssyrk(bp('U'), bp('R'), ip(1), ip(1), &one32, &a32[0], ip(1), &one32, &a32[0], ip(1))
	})
}

func TestLevel3LowercaseFlags(t *testing.T) {
	a := []float64{2}
	b := []float64{3}
	c := []float64{1}
	alpha, beta := 1.0, 1.0
	Dgemm(bp('n'), bp('t'), ip(1), ip(1), ip(1), &alpha, &a[0], ip(1), &b[0], ip(1), &beta, &c[0], ip(1))
	if c[0] != 7 {
		t.Errorf("c[0] = %v, want 7", c[0])
	}
}
