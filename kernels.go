package blasbridge

// Fortran-convention kernel signatures, one exported func type per
// routine. Every argument is passed by reference: integers as *Int, flag
// characters as *byte, scalars as pointers to their element type, arrays
// as pointers to their first element. These are the shapes a Fortran 77
// BLAS exposes, so a cgo-imported symbol, an assembly trampoline, or a
// pure Go routine can all be registered as long as they take addresses.
//
// Value-returning routines (dot, nrm2, asum, iamax, cabs1) return by
// value. The four complex dot routines exist in two shapes because their
// return ABI is not standardized; see DotKernel.

// Level 1: rotations.

type SrotgKernel func(a, b, c, s *float32)
type DrotgKernel func(a, b, c, s *float64)
type SrotmgKernel func(d1, d2, b1, b2, param *float32)
type DrotmgKernel func(d1, d2, b1, b2, param *float64)
type SrotKernel func(n *Int, x *float32, incX *Int, y *float32, incY *Int, c, s *float32)
type DrotKernel func(n *Int, x *float64, incX *Int, y *float64, incY *Int, c, s *float64)
type SrotmKernel func(n *Int, x *float32, incX *Int, y *float32, incY *Int, param *float32)
type DrotmKernel func(n *Int, x *float64, incX *Int, y *float64, incY *Int, param *float64)

// Level 1: swap, copy, axpy, scal.

type SswapKernel func(n *Int, x *float32, incX *Int, y *float32, incY *Int)
type DswapKernel func(n *Int, x *float64, incX *Int, y *float64, incY *Int)
type CswapKernel func(n *Int, x *complex64, incX *Int, y *complex64, incY *Int)
type ZswapKernel func(n *Int, x *complex128, incX *Int, y *complex128, incY *Int)

type ScopyKernel func(n *Int, x *float32, incX *Int, y *float32, incY *Int)
type DcopyKernel func(n *Int, x *float64, incX *Int, y *float64, incY *Int)
type CcopyKernel func(n *Int, x *complex64, incX *Int, y *complex64, incY *Int)
type ZcopyKernel func(n *Int, x *complex128, incX *Int, y *complex128, incY *Int)

type SaxpyKernel func(n *Int, alpha *float32, x *float32, incX *Int, y *float32, incY *Int)
type DaxpyKernel func(n *Int, alpha *float64, x *float64, incX *Int, y *float64, incY *Int)
type CaxpyKernel func(n *Int, alpha *complex64, x *complex64, incX *Int, y *complex64, incY *Int)
type ZaxpyKernel func(n *Int, alpha *complex128, x *complex128, incX *Int, y *complex128, incY *Int)

type SscalKernel func(n *Int, alpha *float32, x *float32, incX *Int)
type DscalKernel func(n *Int, alpha *float64, x *float64, incX *Int)
type CscalKernel func(n *Int, alpha *complex64, x *complex64, incX *Int)
type ZscalKernel func(n *Int, alpha *complex128, x *complex128, incX *Int)

// CsscalKernel scales a complex vector by a real factor.
type CsscalKernel func(n *Int, alpha *float32, x *complex64, incX *Int)

// ZdscalKernel scales a double complex vector by a real factor.
type ZdscalKernel func(n *Int, alpha *float64, x *complex128, incX *Int)

// Level 1: reductions.

type SdotKernel func(n *Int, x *float32, incX *Int, y *float32, incY *Int) float32
type DdotKernel func(n *Int, x *float64, incX *Int, y *float64, incY *Int) float64

// DsdotKernel accumulates a single precision dot product in double
// precision and returns the double.
type DsdotKernel func(n *Int, x *float32, incX *Int, y *float32, incY *Int) float64

// SdsdotKernel accumulates in double precision, adds sb, and rounds the
// sum back to single precision.
type SdsdotKernel func(n *Int, sb *float32, x *float32, incX *Int, y *float32, incY *Int) float32

// The complex dot shapes. The Value forms return through the register
// convention (OpenBLAS, MKL's Intel layer, BLIS); the Hidden forms write
// through a pointer inserted before every other argument (gfortran, MKL's
// gf layer). One routine, two incompatible ABIs.

type CdotuKernel func(n *Int, x *complex64, incX *Int, y *complex64, incY *Int) complex64
type CdotuHiddenKernel func(ret *complex64, n *Int, x *complex64, incX *Int, y *complex64, incY *Int)
type CdotcKernel func(n *Int, x *complex64, incX *Int, y *complex64, incY *Int) complex64
type CdotcHiddenKernel func(ret *complex64, n *Int, x *complex64, incX *Int, y *complex64, incY *Int)
type ZdotuKernel func(n *Int, x *complex128, incX *Int, y *complex128, incY *Int) complex128
type ZdotuHiddenKernel func(ret *complex128, n *Int, x *complex128, incX *Int, y *complex128, incY *Int)
type ZdotcKernel func(n *Int, x *complex128, incX *Int, y *complex128, incY *Int) complex128
type ZdotcHiddenKernel func(ret *complex128, n *Int, x *complex128, incX *Int, y *complex128, incY *Int)

type Snrm2Kernel func(n *Int, x *float32, incX *Int) float32
type Dnrm2Kernel func(n *Int, x *float64, incX *Int) float64
type Scnrm2Kernel func(n *Int, x *complex64, incX *Int) float32
type Dznrm2Kernel func(n *Int, x *complex128, incX *Int) float64

type SasumKernel func(n *Int, x *float32, incX *Int) float32
type DasumKernel func(n *Int, x *float64, incX *Int) float64
type ScasumKernel func(n *Int, x *complex64, incX *Int) float32
type DzasumKernel func(n *Int, x *complex128, incX *Int) float64

// The iamax kernels return Fortran 1-based indices; the bridge rebases
// them to 0 for the CBLAS contract.

type IsamaxKernel func(n *Int, x *float32, incX *Int) Int
type IdamaxKernel func(n *Int, x *float64, incX *Int) Int
type IcamaxKernel func(n *Int, x *complex64, incX *Int) Int
type IzamaxKernel func(n *Int, x *complex128, incX *Int) Int

type Scabs1Kernel func(z *complex64) float32
type Dcabs1Kernel func(z *complex128) float64

// Level 2.

type SgemvKernel func(trans *byte, m, n *Int, alpha *float32, a *float32, lda *Int, x *float32, incX *Int, beta *float32, y *float32, incY *Int)
type DgemvKernel func(trans *byte, m, n *Int, alpha *float64, a *float64, lda *Int, x *float64, incX *Int, beta *float64, y *float64, incY *Int)
type CgemvKernel func(trans *byte, m, n *Int, alpha *complex64, a *complex64, lda *Int, x *complex64, incX *Int, beta *complex64, y *complex64, incY *Int)
type ZgemvKernel func(trans *byte, m, n *Int, alpha *complex128, a *complex128, lda *Int, x *complex128, incX *Int, beta *complex128, y *complex128, incY *Int)

type SsymvKernel func(uplo *byte, n *Int, alpha *float32, a *float32, lda *Int, x *float32, incX *Int, beta *float32, y *float32, incY *Int)
type DsymvKernel func(uplo *byte, n *Int, alpha *float64, a *float64, lda *Int, x *float64, incX *Int, beta *float64, y *float64, incY *Int)
type ChemvKernel func(uplo *byte, n *Int, alpha *complex64, a *complex64, lda *Int, x *complex64, incX *Int, beta *complex64, y *complex64, incY *Int)
type ZhemvKernel func(uplo *byte, n *Int, alpha *complex128, a *complex128, lda *Int, x *complex128, incX *Int, beta *complex128, y *complex128, incY *Int)

type StrmvKernel func(uplo, trans, diag *byte, n *Int, a *float32, lda *Int, x *float32, incX *Int)
type DtrmvKernel func(uplo, trans, diag *byte, n *Int, a *float64, lda *Int, x *float64, incX *Int)
type CtrmvKernel func(uplo, trans, diag *byte, n *Int, a *complex64, lda *Int, x *complex64, incX *Int)
type ZtrmvKernel func(uplo, trans, diag *byte, n *Int, a *complex128, lda *Int, x *complex128, incX *Int)

type StrsvKernel func(uplo, trans, diag *byte, n *Int, a *float32, lda *Int, x *float32, incX *Int)
type DtrsvKernel func(uplo, trans, diag *byte, n *Int, a *float64, lda *Int, x *float64, incX *Int)
type CtrsvKernel func(uplo, trans, diag *byte, n *Int, a *complex64, lda *Int, x *complex64, incX *Int)
type ZtrsvKernel func(uplo, trans, diag *byte, n *Int, a *complex128, lda *Int, x *complex128, incX *Int)

type SgerKernel func(m, n *Int, alpha *float32, x *float32, incX *Int, y *float32, incY *Int, a *float32, lda *Int)
type DgerKernel func(m, n *Int, alpha *float64, x *float64, incX *Int, y *float64, incY *Int, a *float64, lda *Int)
type CgeruKernel func(m, n *Int, alpha *complex64, x *complex64, incX *Int, y *complex64, incY *Int, a *complex64, lda *Int)
type ZgeruKernel func(m, n *Int, alpha *complex128, x *complex128, incX *Int, y *complex128, incY *Int, a *complex128, lda *Int)
type CgercKernel func(m, n *Int, alpha *complex64, x *complex64, incX *Int, y *complex64, incY *Int, a *complex64, lda *Int)
type ZgercKernel func(m, n *Int, alpha *complex128, x *complex128, incX *Int, y *complex128, incY *Int, a *complex128, lda *Int)

type SsyrKernel func(uplo *byte, n *Int, alpha *float32, x *float32, incX *Int, a *float32, lda *Int)
type DsyrKernel func(uplo *byte, n *Int, alpha *float64, x *float64, incX *Int, a *float64, lda *Int)

// Hermitian rank-1 updates take a real alpha.
type CherKernel func(uplo *byte, n *Int, alpha *float32, x *complex64, incX *Int, a *complex64, lda *Int)
type ZherKernel func(uplo *byte, n *Int, alpha *float64, x *complex128, incX *Int, a *complex128, lda *Int)

type Ssyr2Kernel func(uplo *byte, n *Int, alpha *float32, x *float32, incX *Int, y *float32, incY *Int, a *float32, lda *Int)
type Dsyr2Kernel func(uplo *byte, n *Int, alpha *float64, x *float64, incX *Int, y *float64, incY *Int, a *float64, lda *Int)
type Cher2Kernel func(uplo *byte, n *Int, alpha *complex64, x *complex64, incX *Int, y *complex64, incY *Int, a *complex64, lda *Int)
type Zher2Kernel func(uplo *byte, n *Int, alpha *complex128, x *complex128, incX *Int, y *complex128, incY *Int, a *complex128, lda *Int)

// Level 3.

type SgemmKernel func(transA, transB *byte, m, n, k *Int, alpha *float32, a *float32, lda *Int, b *float32, ldb *Int, beta *float32, c *float32, ldc *Int)
type DgemmKernel func(transA, transB *byte, m, n, k *Int, alpha *float64, a *float64, lda *Int, b *float64, ldb *Int, beta *float64, c *float64, ldc *Int)
type CgemmKernel func(transA, transB *byte, m, n, k *Int, alpha *complex64, a *complex64, lda *Int, b *complex64, ldb *Int, beta *complex64, c *complex64, ldc *Int)
type ZgemmKernel func(transA, transB *byte, m, n, k *Int, alpha *complex128, a *complex128, lda *Int, b *complex128, ldb *Int, beta *complex128, c *complex128, ldc *Int)

type SsymmKernel func(side, uplo *byte, m, n *Int, alpha *float32, a *float32, lda *Int, b *float32, ldb *Int, beta *float32, c *float32, ldc *Int)
type DsymmKernel func(side, uplo *byte, m, n *Int, alpha *float64, a *float64, lda *Int, b *float64, ldb *Int, beta *float64, c *float64, ldc *Int)
type CsymmKernel func(side, uplo *byte, m, n *Int, alpha *complex64, a *complex64, lda *Int, b *complex64, ldb *Int, beta *complex64, c *complex64, ldc *Int)
type ZsymmKernel func(side, uplo *byte, m, n *Int, alpha *complex128, a *complex128, lda *Int, b *complex128, ldb *Int, beta *complex128, c *complex128, ldc *Int)
type ChemmKernel func(side, uplo *byte, m, n *Int, alpha *complex64, a *complex64, lda *Int, b *complex64, ldb *Int, beta *complex64, c *complex64, ldc *Int)
type ZhemmKernel func(side, uplo *byte, m, n *Int, alpha *complex128, a *complex128, lda *Int, b *complex128, ldb *Int, beta *complex128, c *complex128, ldc *Int)

type SsyrkKernel func(uplo, trans *byte, n, k *Int, alpha *float32, a *float32, lda *Int, beta *float32, c *float32, ldc *Int)
type DsyrkKernel func(uplo, trans *byte, n, k *Int, alpha *float64, a *float64, lda *Int, beta *float64, c *float64, ldc *Int)
type CsyrkKernel func(uplo, trans *byte, n, k *Int, alpha *complex64, a *complex64, lda *Int, beta *complex64, c *complex64, ldc *Int)
type ZsyrkKernel func(uplo, trans *byte, n, k *Int, alpha *complex128, a *complex128, lda *Int, beta *complex128, c *complex128, ldc *Int)

// Hermitian rank-k updates take real alpha and beta.
type CherkKernel func(uplo, trans *byte, n, k *Int, alpha *float32, a *complex64, lda *Int, beta *float32, c *complex64, ldc *Int)
type ZherkKernel func(uplo, trans *byte, n, k *Int, alpha *float64, a *complex128, lda *Int, beta *float64, c *complex128, ldc *Int)

type Ssyr2kKernel func(uplo, trans *byte, n, k *Int, alpha *float32, a *float32, lda *Int, b *float32, ldb *Int, beta *float32, c *float32, ldc *Int)
type Dsyr2kKernel func(uplo, trans *byte, n, k *Int, alpha *float64, a *float64, lda *Int, b *float64, ldb *Int, beta *float64, c *float64, ldc *Int)
type Csyr2kKernel func(uplo, trans *byte, n, k *Int, alpha *complex64, a *complex64, lda *Int, b *complex64, ldb *Int, beta *complex64, c *complex64, ldc *Int)
type Zsyr2kKernel func(uplo, trans *byte, n, k *Int, alpha *complex128, a *complex128, lda *Int, b *complex128, ldb *Int, beta *complex128, c *complex128, ldc *Int)

// Hermitian rank-2k updates take a complex alpha but a real beta.
type Cher2kKernel func(uplo, trans *byte, n, k *Int, alpha *complex64, a *complex64, lda *Int, b *complex64, ldb *Int, beta *float32, c *complex64, ldc *Int)
type Zher2kKernel func(uplo, trans *byte, n, k *Int, alpha *complex128, a *complex128, lda *Int, b *complex128, ldb *Int, beta *float64, c *complex128, ldc *Int)

type StrmmKernel func(side, uplo, transA, diag *byte, m, n *Int, alpha *float32, a *float32, lda *Int, b *float32, ldb *Int)
type DtrmmKernel func(side, uplo, transA, diag *byte, m, n *Int, alpha *float64, a *float64, lda *Int, b *float64, ldb *Int)
type CtrmmKernel func(side, uplo, transA, diag *byte, m, n *Int, alpha *complex64, a *complex64, lda *Int, b *complex64, ldb *Int)
type ZtrmmKernel func(side, uplo, transA, diag *byte, m, n *Int, alpha *complex128, a *complex128, lda *Int, b *complex128, ldb *Int)

type StrsmKernel func(side, uplo, transA, diag *byte, m, n *Int, alpha *float32, a *float32, lda *Int, b *float32, ldb *Int)
type DtrsmKernel func(side, uplo, transA, diag *byte, m, n *Int, alpha *float64, a *float64, lda *Int, b *float64, ldb *Int)
type CtrsmKernel func(side, uplo, transA, diag *byte, m, n *Int, alpha *complex64, a *complex64, lda *Int, b *complex64, ldb *Int)
type ZtrsmKernel func(side, uplo, transA, diag *byte, m, n *Int, alpha *complex128, a *complex128, lda *Int, b *complex128, ldb *Int)
