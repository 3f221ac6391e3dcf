package refblas

// Level 3 helpers over the stored parts of C and B.

func scaleRect[T Number](c []T, m, n, ldc int, beta T) {
	if beta == 1 {
		return
	}
	for j := 0; j < n; j++ {
		for i := 0; i < m; i++ {
			if beta == 0 {
				c[i+j*ldc] = 0
			} else {
				c[i+j*ldc] *= beta
			}
		}
	}
}

func scaleTri[T Number](c []T, n, ldc int, upper bool, beta T) {
	if beta == 1 {
		return
	}
	for j := 0; j < n; j++ {
		ilo, ihi := 0, j
		if !upper {
			ilo, ihi = j, n-1
		}
		for i := ilo; i <= ihi; i++ {
			if beta == 0 {
				c[i+j*ldc] = 0
			} else {
				c[i+j*ldc] *= beta
			}
		}
	}
}

// scaleTriHerm scales a Hermitian-updated triangle by a real factor and
// realifies the diagonal as the her-family routines do.
func scaleTriHerm[C Complex](c []C, n, ldc int, upper bool, beta float64) {
	for j := 0; j < n; j++ {
		ilo, ihi := 0, j
		if !upper {
			ilo, ihi = j, n-1
		}
		for i := ilo; i <= ihi; i++ {
			ci := i + j*ldc
			switch {
			case beta == 0:
				c[ci] = 0
			case i == j:
				c[ci] = C(complex(beta*re(c[ci]), 0))
			default:
				c[ci] = scaleRe(beta, c[ci])
			}
		}
	}
}

// Level 3: general matrix products.

func gemmReal[F Real](notA, notB bool, m, n, k int, alpha F, ap *F, lda int, bp *F, ldb int, beta F, cp *F, ldc int, blk blockSizes) {
	if m == 0 || n == 0 || ((alpha == 0 || k == 0) && beta == 1) {
		return
	}
	c := mat(cp, m, n, ldc)
	if alpha == 0 || k == 0 {
		scaleRect(c, m, n, ldc, beta)
		return
	}
	var a, b []F
	if notA {
		a = mat(ap, m, k, lda)
	} else {
		a = mat(ap, k, m, lda)
	}
	if notB {
		b = mat(bp, k, n, ldb)
	} else {
		b = mat(bp, n, k, ldb)
	}
	for jc := 0; jc < n; jc += blk.nc {
		jhi := min(jc+blk.nc, n)
		for pc := 0; pc < k; pc += blk.kc {
			phi := min(pc+blk.kc, k)
			first := pc == 0
			for ic := 0; ic < m; ic += blk.mc {
				ihi := min(ic+blk.mc, m)
				for j := jc; j < jhi; j++ {
					for i := ic; i < ihi; i++ {
						var t F
						switch {
						case notA && notB:
							for l := pc; l < phi; l++ {
								t += a[i+l*lda] * b[l+j*ldb]
							}
						case notA:
							for l := pc; l < phi; l++ {
								t += a[i+l*lda] * b[j+l*ldb]
							}
						case notB:
							for l := pc; l < phi; l++ {
								t += a[l+i*lda] * b[l+j*ldb]
							}
						default:
							for l := pc; l < phi; l++ {
								t += a[l+i*lda] * b[j+l*ldb]
							}
						}
						ci := i + j*ldc
						switch {
						case !first:
							c[ci] += alpha * t
						case beta == 0:
							c[ci] = alpha * t
						default:
							c[ci] = alpha*t + beta*c[ci]
						}
					}
				}
			}
		}
	}
}

func gemmCplx[C Complex](tA, cjA, tB, cjB bool, m, n, k int, alpha C, ap *C, lda int, bp *C, ldb int, beta C, cp *C, ldc int) {
	if m == 0 || n == 0 || ((alpha == 0 || k == 0) && beta == 1) {
		return
	}
	c := mat(cp, m, n, ldc)
	if alpha == 0 || k == 0 {
		scaleRect(c, m, n, ldc, beta)
		return
	}
	var a, b []C
	if tA {
		a = mat(ap, k, m, lda)
	} else {
		a = mat(ap, m, k, lda)
	}
	if tB {
		b = mat(bp, n, k, ldb)
	} else {
		b = mat(bp, k, n, ldb)
	}
	for j := 0; j < n; j++ {
		for i := 0; i < m; i++ {
			var t C
			for l := 0; l < k; l++ {
				var av, bv C
				if tA {
					av = a[l+i*lda]
				} else {
					av = a[i+l*lda]
				}
				if cjA {
					av = conjOf(av)
				}
				if tB {
					bv = b[j+l*ldb]
				} else {
					bv = b[l+j*ldb]
				}
				if cjB {
					bv = conjOf(bv)
				}
				t += av * bv
			}
			ci := i + j*ldc
			if beta == 0 {
				c[ci] = alpha * t
			} else {
				c[ci] = alpha*t + beta*c[ci]
			}
		}
	}
}

// Sgemm computes C := alpha*op(A)*op(B) + beta*C with cache blocking.
func Sgemm(transA, transB *byte, m, n, k *Int, alpha *float32, a *float32, lda *Int, b *float32, ldb *Int, beta *float32, c *float32, ldc *Int) {
	ta, _ := transMode("sgemm", *transA, false)
	tb, _ := transMode("sgemm", *transB, false)
	gemmReal(!ta, !tb, int(*m), int(*n), int(*k), *alpha, a, int(*lda), b, int(*ldb), *beta, c, int(*ldc), block32)
}

// Dgemm is the float64 Sgemm.
func Dgemm(transA, transB *byte, m, n, k *Int, alpha *float64, a *float64, lda *Int, b *float64, ldb *Int, beta *float64, c *float64, ldc *Int) {
	ta, _ := transMode("dgemm", *transA, false)
	tb, _ := transMode("dgemm", *transB, false)
	gemmReal(!ta, !tb, int(*m), int(*n), int(*k), *alpha, a, int(*lda), b, int(*ldb), *beta, c, int(*ldc), block64)
}

// Cgemm is the complex64 Sgemm; both op flags may also conjugate without
// transposing ('R').
func Cgemm(transA, transB *byte, m, n, k *Int, alpha *complex64, a *complex64, lda *Int, b *complex64, ldb *Int, beta *complex64, c *complex64, ldc *Int) {
	ta, ca := transMode("cgemm", *transA, true)
	tb, cb := transMode("cgemm", *transB, true)
	gemmCplx(ta, ca, tb, cb, int(*m), int(*n), int(*k), *alpha, a, int(*lda), b, int(*ldb), *beta, c, int(*ldc))
}

// Zgemm is the complex128 Cgemm.
func Zgemm(transA, transB *byte, m, n, k *Int, alpha *complex128, a *complex128, lda *Int, b *complex128, ldb *Int, beta *complex128, c *complex128, ldc *Int) {
	ta, ca := transMode("zgemm", *transA, true)
	tb, cb := transMode("zgemm", *transB, true)
	gemmCplx(ta, ca, tb, cb, int(*m), int(*n), int(*k), *alpha, a, int(*lda), b, int(*ldb), *beta, c, int(*ldc))
}

// Level 3: symmetric and Hermitian products.

func symm[T Number](left, upper bool, m, n int, alpha T, ap *T, lda int, bp *T, ldb int, beta T, cp *T, ldc int) {
	if m == 0 || n == 0 || (alpha == 0 && beta == 1) {
		return
	}
	c := mat(cp, m, n, ldc)
	if alpha == 0 {
		scaleRect(c, m, n, ldc, beta)
		return
	}
	ka := m
	if !left {
		ka = n
	}
	a := mat(ap, ka, ka, lda)
	b := mat(bp, m, n, ldb)
	symEl := func(i, j int) T {
		if (upper && i <= j) || (!upper && i >= j) {
			return a[i+j*lda]
		}
		return a[j+i*lda]
	}
	for j := 0; j < n; j++ {
		for i := 0; i < m; i++ {
			var t T
			if left {
				for l := 0; l < m; l++ {
					t += symEl(i, l) * b[l+j*ldb]
				}
			} else {
				for l := 0; l < n; l++ {
					t += b[i+l*ldb] * symEl(l, j)
				}
			}
			ci := i + j*ldc
			if beta == 0 {
				c[ci] = alpha * t
			} else {
				c[ci] = alpha*t + beta*c[ci]
			}
		}
	}
}

func hemm[C Complex](left, upper bool, m, n int, alpha C, ap *C, lda int, bp *C, ldb int, beta C, cp *C, ldc int) {
	if m == 0 || n == 0 || (alpha == 0 && beta == 1) {
		return
	}
	c := mat(cp, m, n, ldc)
	if alpha == 0 {
		scaleRect(c, m, n, ldc, beta)
		return
	}
	ka := m
	if !left {
		ka = n
	}
	a := mat(ap, ka, ka, lda)
	b := mat(bp, m, n, ldb)
	herEl := func(i, j int) C {
		if i == j {
			return realOnly(a[i+i*lda])
		}
		if (upper && i < j) || (!upper && i > j) {
			return a[i+j*lda]
		}
		return conjOf(a[j+i*lda])
	}
	for j := 0; j < n; j++ {
		for i := 0; i < m; i++ {
			var t C
			if left {
				for l := 0; l < m; l++ {
					t += herEl(i, l) * b[l+j*ldb]
				}
			} else {
				for l := 0; l < n; l++ {
					t += b[i+l*ldb] * herEl(l, j)
				}
			}
			ci := i + j*ldc
			if beta == 0 {
				c[ci] = alpha * t
			} else {
				c[ci] = alpha*t + beta*c[ci]
			}
		}
	}
}

// Ssymm computes C := alpha*A*B + beta*C (or B*A on the right side) for
// symmetric A stored in one triangle.
func Ssymm(side, uplo *byte, m, n *Int, alpha *float32, a *float32, lda *Int, b *float32, ldb *Int, beta *float32, c *float32, ldc *Int) {
	symm(sideMode("ssymm", *side), uploMode("ssymm", *uplo), int(*m), int(*n), *alpha, a, int(*lda), b, int(*ldb), *beta, c, int(*ldc))
}

// Dsymm is the float64 Ssymm.
func Dsymm(side, uplo *byte, m, n *Int, alpha *float64, a *float64, lda *Int, b *float64, ldb *Int, beta *float64, c *float64, ldc *Int) {
	symm(sideMode("dsymm", *side), uploMode("dsymm", *uplo), int(*m), int(*n), *alpha, a, int(*lda), b, int(*ldb), *beta, c, int(*ldc))
}

// Csymm is the complex64 Ssymm; A is symmetric, not Hermitian.
func Csymm(side, uplo *byte, m, n *Int, alpha *complex64, a *complex64, lda *Int, b *complex64, ldb *Int, beta *complex64, c *complex64, ldc *Int) {
	symm(sideMode("csymm", *side), uploMode("csymm", *uplo), int(*m), int(*n), *alpha, a, int(*lda), b, int(*ldb), *beta, c, int(*ldc))
}

// Zsymm is the complex128 Csymm.
func Zsymm(side, uplo *byte, m, n *Int, alpha *complex128, a *complex128, lda *Int, b *complex128, ldb *Int, beta *complex128, c *complex128, ldc *Int) {
	symm(sideMode("zsymm", *side), uploMode("zsymm", *uplo), int(*m), int(*n), *alpha, a, int(*lda), b, int(*ldb), *beta, c, int(*ldc))
}

// Chemm computes C := alpha*A*B + beta*C (or B*A) for Hermitian A; the
// stored diagonal's imaginary parts are ignored.
func Chemm(side, uplo *byte, m, n *Int, alpha *complex64, a *complex64, lda *Int, b *complex64, ldb *Int, beta *complex64, c *complex64, ldc *Int) {
	hemm(sideMode("chemm", *side), uploMode("chemm", *uplo), int(*m), int(*n), *alpha, a, int(*lda), b, int(*ldb), *beta, c, int(*ldc))
}

// Zhemm is the complex128 Chemm.
func Zhemm(side, uplo *byte, m, n *Int, alpha *complex128, a *complex128, lda *Int, b *complex128, ldb *Int, beta *complex128, c *complex128, ldc *Int) {
	hemm(sideMode("zhemm", *side), uploMode("zhemm", *uplo), int(*m), int(*n), *alpha, a, int(*lda), b, int(*ldb), *beta, c, int(*ldc))
}

// Level 3: rank-k and rank-2k updates.

func syrk[T Number](upper, doTrans bool, n, k int, alpha T, ap *T, lda int, beta T, cp *T, ldc int) {
	if n == 0 || ((alpha == 0 || k == 0) && beta == 1) {
		return
	}
	c := mat(cp, n, n, ldc)
	if alpha == 0 || k == 0 {
		scaleTri(c, n, ldc, upper, beta)
		return
	}
	var a []T
	if !doTrans {
		a = mat(ap, n, k, lda)
	} else {
		a = mat(ap, k, n, lda)
	}
	for j := 0; j < n; j++ {
		ilo, ihi := 0, j
		if !upper {
			ilo, ihi = j, n-1
		}
		for i := ilo; i <= ihi; i++ {
			var t T
			if !doTrans {
				for l := 0; l < k; l++ {
					t += a[i+l*lda] * a[j+l*lda]
				}
			} else {
				for l := 0; l < k; l++ {
					t += a[l+i*lda] * a[l+j*lda]
				}
			}
			ci := i + j*ldc
			if beta == 0 {
				c[ci] = alpha * t
			} else {
				c[ci] = alpha*t + beta*c[ci]
			}
		}
	}
}

func herk[C Complex, F Real](upper, conjTrans bool, n, k int, alpha F, ap *C, lda int, beta F, cp *C, ldc int) {
	if n == 0 || ((alpha == 0 || k == 0) && beta == 1) {
		return
	}
	c := mat(cp, n, n, ldc)
	af, bf := float64(alpha), float64(beta)
	if alpha == 0 || k == 0 {
		scaleTriHerm(c, n, ldc, upper, bf)
		return
	}
	var a []C
	if !conjTrans {
		a = mat(ap, n, k, lda)
	} else {
		a = mat(ap, k, n, lda)
	}
	for j := 0; j < n; j++ {
		ilo, ihi := 0, j
		if !upper {
			ilo, ihi = j, n-1
		}
		for i := ilo; i <= ihi; i++ {
			var t C
			if !conjTrans {
				for l := 0; l < k; l++ {
					t += a[i+l*lda] * conjOf(a[j+l*lda])
				}
			} else {
				for l := 0; l < k; l++ {
					t += conjOf(a[l+i*lda]) * a[l+j*lda]
				}
			}
			ci := i + j*ldc
			if i == j {
				d := af * re(t)
				if beta != 0 {
					d += bf * re(c[ci])
				}
				c[ci] = C(complex(d, 0))
				continue
			}
			v := scaleRe(af, t)
			if beta != 0 {
				v += scaleRe(bf, c[ci])
			}
			c[ci] = v
		}
	}
}

func syr2k[T Number](upper, doTrans bool, n, k int, alpha T, ap *T, lda int, bp *T, ldb int, beta T, cp *T, ldc int) {
	if n == 0 || ((alpha == 0 || k == 0) && beta == 1) {
		return
	}
	c := mat(cp, n, n, ldc)
	if alpha == 0 || k == 0 {
		scaleTri(c, n, ldc, upper, beta)
		return
	}
	var a, b []T
	if !doTrans {
		a, b = mat(ap, n, k, lda), mat(bp, n, k, ldb)
	} else {
		a, b = mat(ap, k, n, lda), mat(bp, k, n, ldb)
	}
	for j := 0; j < n; j++ {
		ilo, ihi := 0, j
		if !upper {
			ilo, ihi = j, n-1
		}
		for i := ilo; i <= ihi; i++ {
			var t1, t2 T
			if !doTrans {
				for l := 0; l < k; l++ {
					t1 += a[i+l*lda] * b[j+l*ldb]
					t2 += b[i+l*ldb] * a[j+l*lda]
				}
			} else {
				for l := 0; l < k; l++ {
					t1 += a[l+i*lda] * b[l+j*ldb]
					t2 += b[l+i*ldb] * a[l+j*lda]
				}
			}
			ci := i + j*ldc
			if beta == 0 {
				c[ci] = alpha*t1 + alpha*t2
			} else {
				c[ci] = alpha*t1 + alpha*t2 + beta*c[ci]
			}
		}
	}
}

func her2k[C Complex, F Real](upper, conjTrans bool, n, k int, alpha C, ap *C, lda int, bp *C, ldb int, beta F, cp *C, ldc int) {
	if n == 0 || ((alpha == 0 || k == 0) && beta == 1) {
		return
	}
	c := mat(cp, n, n, ldc)
	bf := float64(beta)
	if alpha == 0 || k == 0 {
		scaleTriHerm(c, n, ldc, upper, bf)
		return
	}
	var a, b []C
	if !conjTrans {
		a, b = mat(ap, n, k, lda), mat(bp, n, k, ldb)
	} else {
		a, b = mat(ap, k, n, lda), mat(bp, k, n, ldb)
	}
	ca := conjOf(alpha)
	for j := 0; j < n; j++ {
		ilo, ihi := 0, j
		if !upper {
			ilo, ihi = j, n-1
		}
		for i := ilo; i <= ihi; i++ {
			var t1, t2 C
			if !conjTrans {
				for l := 0; l < k; l++ {
					t1 += a[i+l*lda] * conjOf(b[j+l*ldb])
					t2 += b[i+l*ldb] * conjOf(a[j+l*lda])
				}
			} else {
				for l := 0; l < k; l++ {
					t1 += conjOf(a[l+i*lda]) * b[l+j*ldb]
					t2 += conjOf(b[l+i*ldb]) * a[l+j*lda]
				}
			}
			sum := alpha*t1 + ca*t2
			ci := i + j*ldc
			if i == j {
				d := re(sum)
				if beta != 0 {
					d += bf * re(c[ci])
				}
				c[ci] = C(complex(d, 0))
				continue
			}
			if beta != 0 {
				sum += scaleRe(bf, c[ci])
			}
			c[ci] = sum
		}
	}
}

// Ssyrk computes C := alpha*A*A^T + beta*C (or A^T*A) on the stored
// triangle.
func Ssyrk(uplo, trans *byte, n, k *Int, alpha *float32, a *float32, lda *Int, beta *float32, c *float32, ldc *Int) {
	syrk(uploMode("ssyrk", *uplo), transModeSyrk("ssyrk", *trans, false), int(*n), int(*k), *alpha, a, int(*lda), *beta, c, int(*ldc))
}

// Dsyrk is the float64 Ssyrk.
func Dsyrk(uplo, trans *byte, n, k *Int, alpha *float64, a *float64, lda *Int, beta *float64, c *float64, ldc *Int) {
	syrk(uploMode("dsyrk", *uplo), transModeSyrk("dsyrk", *trans, false), int(*n), int(*k), *alpha, a, int(*lda), *beta, c, int(*ldc))
}

// Csyrk is the complex64 Ssyrk; only 'N' and 'T' are admitted.
func Csyrk(uplo, trans *byte, n, k *Int, alpha *complex64, a *complex64, lda *Int, beta *complex64, c *complex64, ldc *Int) {
	syrk(uploMode("csyrk", *uplo), transModeSyrk("csyrk", *trans, true), int(*n), int(*k), *alpha, a, int(*lda), *beta, c, int(*ldc))
}

// Zsyrk is the complex128 Csyrk.
func Zsyrk(uplo, trans *byte, n, k *Int, alpha *complex128, a *complex128, lda *Int, beta *complex128, c *complex128, ldc *Int) {
	syrk(uploMode("zsyrk", *uplo), transModeSyrk("zsyrk", *trans, true), int(*n), int(*k), *alpha, a, int(*lda), *beta, c, int(*ldc))
}

// Cherk computes C := alpha*A*A^H + beta*C (or A^H*A) with real scalars;
// the diagonal stays real. Only 'N' and 'C' are admitted.
func Cherk(uplo, trans *byte, n, k *Int, alpha *float32, a *complex64, lda *Int, beta *float32, c *complex64, ldc *Int) {
	herk(uploMode("cherk", *uplo), transModeHerk("cherk", *trans), int(*n), int(*k), *alpha, a, int(*lda), *beta, c, int(*ldc))
}

// Zherk is the complex128 Cherk.
func Zherk(uplo, trans *byte, n, k *Int, alpha *float64, a *complex128, lda *Int, beta *float64, c *complex128, ldc *Int) {
	herk(uploMode("zherk", *uplo), transModeHerk("zherk", *trans), int(*n), int(*k), *alpha, a, int(*lda), *beta, c, int(*ldc))
}

// Ssyr2k computes C := alpha*A*B^T + alpha*B*A^T + beta*C on the stored
// triangle.
func Ssyr2k(uplo, trans *byte, n, k *Int, alpha *float32, a *float32, lda *Int, b *float32, ldb *Int, beta *float32, c *float32, ldc *Int) {
	syr2k(uploMode("ssyr2k", *uplo), transModeSyrk("ssyr2k", *trans, false), int(*n), int(*k), *alpha, a, int(*lda), b, int(*ldb), *beta, c, int(*ldc))
}

// Dsyr2k is the float64 Ssyr2k.
func Dsyr2k(uplo, trans *byte, n, k *Int, alpha *float64, a *float64, lda *Int, b *float64, ldb *Int, beta *float64, c *float64, ldc *Int) {
	syr2k(uploMode("dsyr2k", *uplo), transModeSyrk("dsyr2k", *trans, false), int(*n), int(*k), *alpha, a, int(*lda), b, int(*ldb), *beta, c, int(*ldc))
}

// Csyr2k is the complex64 Ssyr2k; only 'N' and 'T' are admitted.
func Csyr2k(uplo, trans *byte, n, k *Int, alpha *complex64, a *complex64, lda *Int, b *complex64, ldb *Int, beta *complex64, c *complex64, ldc *Int) {
	syr2k(uploMode("csyr2k", *uplo), transModeSyrk("csyr2k", *trans, true), int(*n), int(*k), *alpha, a, int(*lda), b, int(*ldb), *beta, c, int(*ldc))
}

// Zsyr2k is the complex128 Csyr2k.
func Zsyr2k(uplo, trans *byte, n, k *Int, alpha *complex128, a *complex128, lda *Int, b *complex128, ldb *Int, beta *complex128, c *complex128, ldc *Int) {
	syr2k(uploMode("zsyr2k", *uplo), transModeSyrk("zsyr2k", *trans, true), int(*n), int(*k), *alpha, a, int(*lda), b, int(*ldb), *beta, c, int(*ldc))
}

// Cher2k computes C := alpha*A*B^H + conj(alpha)*B*A^H + beta*C with
// real beta; the diagonal stays real. Only 'N' and 'C' are admitted.
func Cher2k(uplo, trans *byte, n, k *Int, alpha *complex64, a *complex64, lda *Int, b *complex64, ldb *Int, beta *float32, c *complex64, ldc *Int) {
	her2k(uploMode("cher2k", *uplo), transModeHerk("cher2k", *trans), int(*n), int(*k), *alpha, a, int(*lda), b, int(*ldb), *beta, c, int(*ldc))
}

// Zher2k is the complex128 Cher2k.
func Zher2k(uplo, trans *byte, n, k *Int, alpha *complex128, a *complex128, lda *Int, b *complex128, ldb *Int, beta *float64, c *complex128, ldc *Int) {
	her2k(uploMode("zher2k", *uplo), transModeHerk("zher2k", *trans), int(*n), int(*k), *alpha, a, int(*lda), b, int(*ldb), *beta, c, int(*ldc))
}

// Level 3: triangular multiplies and solves.

func trmmReal[F Real](left, upper, doTrans, unit bool, m, n int, alpha F, ap *F, lda int, bp *F, ldb int) {
	if m == 0 || n == 0 {
		return
	}
	b := mat(bp, m, n, ldb)
	if alpha == 0 {
		scaleRect(b, m, n, ldb, 0)
		return
	}
	ka := m
	if !left {
		ka = n
	}
	a := mat(ap, ka, ka, lda)
	el := func(i, k int) F {
		if i == k && unit {
			return 1
		}
		if doTrans {
			return a[k+i*lda]
		}
		return a[i+k*lda]
	}
	if left {
		// Row i of op(A) lives in columns [i, m) or [0, i]; the write
		// order keeps unread rows of B intact.
		if upper != doTrans {
			for j := 0; j < n; j++ {
				for i := 0; i < m; i++ {
					var t F
					for k := i; k < m; k++ {
						t += el(i, k) * b[k+j*ldb]
					}
					b[i+j*ldb] = alpha * t
				}
			}
			return
		}
		for j := 0; j < n; j++ {
			for i := m - 1; i >= 0; i-- {
				var t F
				for k := 0; k <= i; k++ {
					t += el(i, k) * b[k+j*ldb]
				}
				b[i+j*ldb] = alpha * t
			}
		}
		return
	}
	if upper != doTrans {
		for j := n - 1; j >= 0; j-- {
			for i := 0; i < m; i++ {
				var t F
				for k := 0; k <= j; k++ {
					t += b[i+k*ldb] * el(k, j)
				}
				b[i+j*ldb] = alpha * t
			}
		}
		return
	}
	for j := 0; j < n; j++ {
		for i := 0; i < m; i++ {
			var t F
			for k := j; k < n; k++ {
				t += b[i+k*ldb] * el(k, j)
			}
			b[i+j*ldb] = alpha * t
		}
	}
}

func trmmCplx[C Complex](left, upper, doTrans, doConj, unit bool, m, n int, alpha C, ap *C, lda int, bp *C, ldb int) {
	if m == 0 || n == 0 {
		return
	}
	b := mat(bp, m, n, ldb)
	if alpha == 0 {
		scaleRect(b, m, n, ldb, 0)
		return
	}
	ka := m
	if !left {
		ka = n
	}
	a := mat(ap, ka, ka, lda)
	el := func(i, k int) C {
		if i == k && unit {
			return 1
		}
		var v C
		if doTrans {
			v = a[k+i*lda]
		} else {
			v = a[i+k*lda]
		}
		if doConj {
			v = conjOf(v)
		}
		return v
	}
	if left {
		if upper != doTrans {
			for j := 0; j < n; j++ {
				for i := 0; i < m; i++ {
					var t C
					for k := i; k < m; k++ {
						t += el(i, k) * b[k+j*ldb]
					}
					b[i+j*ldb] = alpha * t
				}
			}
			return
		}
		for j := 0; j < n; j++ {
			for i := m - 1; i >= 0; i-- {
				var t C
				for k := 0; k <= i; k++ {
					t += el(i, k) * b[k+j*ldb]
				}
				b[i+j*ldb] = alpha * t
			}
		}
		return
	}
	if upper != doTrans {
		for j := n - 1; j >= 0; j-- {
			for i := 0; i < m; i++ {
				var t C
				for k := 0; k <= j; k++ {
					t += b[i+k*ldb] * el(k, j)
				}
				b[i+j*ldb] = alpha * t
			}
		}
		return
	}
	for j := 0; j < n; j++ {
		for i := 0; i < m; i++ {
			var t C
			for k := j; k < n; k++ {
				t += b[i+k*ldb] * el(k, j)
			}
			b[i+j*ldb] = alpha * t
		}
	}
}

func trsmReal[F Real](left, upper, doTrans, unit bool, m, n int, alpha F, ap *F, lda int, bp *F, ldb int) {
	if m == 0 || n == 0 {
		return
	}
	b := mat(bp, m, n, ldb)
	if alpha == 0 {
		scaleRect(b, m, n, ldb, 0)
		return
	}
	ka := m
	if !left {
		ka = n
	}
	a := mat(ap, ka, ka, lda)
	el := func(i, k int) F {
		if doTrans {
			return a[k+i*lda]
		}
		return a[i+k*lda]
	}
	if left {
		// Substitution order follows where the off-diagonal
		// coefficients of row i sit.
		if upper != doTrans {
			for j := 0; j < n; j++ {
				for i := m - 1; i >= 0; i-- {
					t := alpha * b[i+j*ldb]
					for k := i + 1; k < m; k++ {
						t -= el(i, k) * b[k+j*ldb]
					}
					if !unit {
						t /= el(i, i)
					}
					b[i+j*ldb] = t
				}
			}
			return
		}
		for j := 0; j < n; j++ {
			for i := 0; i < m; i++ {
				t := alpha * b[i+j*ldb]
				for k := 0; k < i; k++ {
					t -= el(i, k) * b[k+j*ldb]
				}
				if !unit {
					t /= el(i, i)
				}
				b[i+j*ldb] = t
			}
		}
		return
	}
	if upper != doTrans {
		for j := 0; j < n; j++ {
			for i := 0; i < m; i++ {
				t := alpha * b[i+j*ldb]
				for k := 0; k < j; k++ {
					t -= b[i+k*ldb] * el(k, j)
				}
				if !unit {
					t /= el(j, j)
				}
				b[i+j*ldb] = t
			}
		}
		return
	}
	for j := n - 1; j >= 0; j-- {
		for i := 0; i < m; i++ {
			t := alpha * b[i+j*ldb]
			for k := j + 1; k < n; k++ {
				t -= b[i+k*ldb] * el(k, j)
			}
			if !unit {
				t /= el(j, j)
			}
			b[i+j*ldb] = t
		}
	}
}

func trsmCplx[C Complex](left, upper, doTrans, doConj, unit bool, m, n int, alpha C, ap *C, lda int, bp *C, ldb int) {
	if m == 0 || n == 0 {
		return
	}
	b := mat(bp, m, n, ldb)
	if alpha == 0 {
		scaleRect(b, m, n, ldb, 0)
		return
	}
	ka := m
	if !left {
		ka = n
	}
	a := mat(ap, ka, ka, lda)
	el := func(i, k int) C {
		var v C
		if doTrans {
			v = a[k+i*lda]
		} else {
			v = a[i+k*lda]
		}
		if doConj {
			v = conjOf(v)
		}
		return v
	}
	if left {
		if upper != doTrans {
			for j := 0; j < n; j++ {
				for i := m - 1; i >= 0; i-- {
					t := alpha * b[i+j*ldb]
					for k := i + 1; k < m; k++ {
						t -= el(i, k) * b[k+j*ldb]
					}
					if !unit {
						t /= el(i, i)
					}
					b[i+j*ldb] = t
				}
			}
			return
		}
		for j := 0; j < n; j++ {
			for i := 0; i < m; i++ {
				t := alpha * b[i+j*ldb]
				for k := 0; k < i; k++ {
					t -= el(i, k) * b[k+j*ldb]
				}
				if !unit {
					t /= el(i, i)
				}
				b[i+j*ldb] = t
			}
		}
		return
	}
	if upper != doTrans {
		for j := 0; j < n; j++ {
			for i := 0; i < m; i++ {
				t := alpha * b[i+j*ldb]
				for k := 0; k < j; k++ {
					t -= b[i+k*ldb] * el(k, j)
				}
				if !unit {
					t /= el(j, j)
				}
				b[i+j*ldb] = t
			}
		}
		return
	}
	for j := n - 1; j >= 0; j-- {
		for i := 0; i < m; i++ {
			t := alpha * b[i+j*ldb]
			for k := j + 1; k < n; k++ {
				t -= b[i+k*ldb] * el(k, j)
			}
			if !unit {
				t /= el(j, j)
			}
			b[i+j*ldb] = t
		}
	}
}

// Strmm computes B := alpha*op(A)*B (or B*op(A)) for triangular A.
func Strmm(side, uplo, transA, diag *byte, m, n *Int, alpha *float32, a *float32, lda *Int, b *float32, ldb *Int) {
	t, _ := transMode("strmm", *transA, false)
	trmmReal(sideMode("strmm", *side), uploMode("strmm", *uplo), t, diagMode("strmm", *diag), int(*m), int(*n), *alpha, a, int(*lda), b, int(*ldb))
}

// Dtrmm is the float64 Strmm.
func Dtrmm(side, uplo, transA, diag *byte, m, n *Int, alpha *float64, a *float64, lda *Int, b *float64, ldb *Int) {
	t, _ := transMode("dtrmm", *transA, false)
	trmmReal(sideMode("dtrmm", *side), uploMode("dtrmm", *uplo), t, diagMode("dtrmm", *diag), int(*m), int(*n), *alpha, a, int(*lda), b, int(*ldb))
}

// Ctrmm is the complex64 Strmm.
func Ctrmm(side, uplo, transA, diag *byte, m, n *Int, alpha *complex64, a *complex64, lda *Int, b *complex64, ldb *Int) {
	t, cj := transMode("ctrmm", *transA, true)
	trmmCplx(sideMode("ctrmm", *side), uploMode("ctrmm", *uplo), t, cj, diagMode("ctrmm", *diag), int(*m), int(*n), *alpha, a, int(*lda), b, int(*ldb))
}

// Ztrmm is the complex128 Strmm.
func Ztrmm(side, uplo, transA, diag *byte, m, n *Int, alpha *complex128, a *complex128, lda *Int, b *complex128, ldb *Int) {
	t, cj := transMode("ztrmm", *transA, true)
	trmmCplx(sideMode("ztrmm", *side), uploMode("ztrmm", *uplo), t, cj, diagMode("ztrmm", *diag), int(*m), int(*n), *alpha, a, int(*lda), b, int(*ldb))
}

// Strsm solves op(A)*X = alpha*B (or X*op(A) = alpha*B), writing X over
// B.
func Strsm(side, uplo, transA, diag *byte, m, n *Int, alpha *float32, a *float32, lda *Int, b *float32, ldb *Int) {
	t, _ := transMode("strsm", *transA, false)
	trsmReal(sideMode("strsm", *side), uploMode("strsm", *uplo), t, diagMode("strsm", *diag), int(*m), int(*n), *alpha, a, int(*lda), b, int(*ldb))
}

// Dtrsm is the float64 Strsm.
func Dtrsm(side, uplo, transA, diag *byte, m, n *Int, alpha *float64, a *float64, lda *Int, b *float64, ldb *Int) {
	t, _ := transMode("dtrsm", *transA, false)
	trsmReal(sideMode("dtrsm", *side), uploMode("dtrsm", *uplo), t, diagMode("dtrsm", *diag), int(*m), int(*n), *alpha, a, int(*lda), b, int(*ldb))
}

// Ctrsm is the complex64 Strsm.
func Ctrsm(side, uplo, transA, diag *byte, m, n *Int, alpha *complex64, a *complex64, lda *Int, b *complex64, ldb *Int) {
	t, cj := transMode("ctrsm", *transA, true)
	trsmCplx(sideMode("ctrsm", *side), uploMode("ctrsm", *uplo), t, cj, diagMode("ctrsm", *diag), int(*m), int(*n), *alpha, a, int(*lda), b, int(*ldb))
}

// Ztrsm is the complex128 Strsm.
func Ztrsm(side, uplo, transA, diag *byte, m, n *Int, alpha *complex128, a *complex128, lda *Int, b *complex128, ldb *Int) {
	t, cj := transMode("ztrsm", *transA, true)
	trsmCplx(sideMode("ztrsm", *side), uploMode("ztrsm", *uplo), t, cj, diagMode("ztrsm", *diag), int(*m), int(*n), *alpha, a, int(*lda), b, int(*ldb))
}
