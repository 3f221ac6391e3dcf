package blasbridge

// Level 1 vector entry points. No layout translation happens here; these
// routines have no matrix arguments, so dispatch is validate, resolve,
// and a straight call with every scalar passed by address.

// Sswap exchanges the corresponding elements of x and y.
func (be *Backend) Sswap(n int, x []float32, incX int, y []float32, incY int) error {
	const op = "Sswap"
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return err
	}
	if err := checkVector(op, "y", n, incY, len(y)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "sswap")
	if err != nil {
		return err
	}
	cn, cix, ciy := Int(n), Int(incX), Int(incY)
	funcOf[SswapKernel](fp)(&cn, ptr(x), &cix, ptr(y), &ciy)
	return nil
}

// Dswap exchanges the corresponding elements of x and y.
func (be *Backend) Dswap(n int, x []float64, incX int, y []float64, incY int) error {
	const op = "Dswap"
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return err
	}
	if err := checkVector(op, "y", n, incY, len(y)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "dswap")
	if err != nil {
		return err
	}
	cn, cix, ciy := Int(n), Int(incX), Int(incY)
	funcOf[DswapKernel](fp)(&cn, ptr(x), &cix, ptr(y), &ciy)
	return nil
}

// Cswap exchanges the corresponding elements of x and y.
func (be *Backend) Cswap(n int, x []complex64, incX int, y []complex64, incY int) error {
	const op = "Cswap"
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return err
	}
	if err := checkVector(op, "y", n, incY, len(y)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "cswap")
	if err != nil {
		return err
	}
	cn, cix, ciy := Int(n), Int(incX), Int(incY)
	funcOf[CswapKernel](fp)(&cn, ptr(x), &cix, ptr(y), &ciy)
	return nil
}

// Zswap exchanges the corresponding elements of x and y.
func (be *Backend) Zswap(n int, x []complex128, incX int, y []complex128, incY int) error {
	const op = "Zswap"
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return err
	}
	if err := checkVector(op, "y", n, incY, len(y)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "zswap")
	if err != nil {
		return err
	}
	cn, cix, ciy := Int(n), Int(incX), Int(incY)
	funcOf[ZswapKernel](fp)(&cn, ptr(x), &cix, ptr(y), &ciy)
	return nil
}

// Scopy copies x into y.
func (be *Backend) Scopy(n int, x []float32, incX int, y []float32, incY int) error {
	const op = "Scopy"
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return err
	}
	if err := checkVector(op, "y", n, incY, len(y)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "scopy")
	if err != nil {
		return err
	}
	cn, cix, ciy := Int(n), Int(incX), Int(incY)
	funcOf[ScopyKernel](fp)(&cn, ptr(x), &cix, ptr(y), &ciy)
	return nil
}

// Dcopy copies x into y.
func (be *Backend) Dcopy(n int, x []float64, incX int, y []float64, incY int) error {
	const op = "Dcopy"
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return err
	}
	if err := checkVector(op, "y", n, incY, len(y)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "dcopy")
	if err != nil {
		return err
	}
	cn, cix, ciy := Int(n), Int(incX), Int(incY)
	funcOf[DcopyKernel](fp)(&cn, ptr(x), &cix, ptr(y), &ciy)
	return nil
}

// Ccopy copies x into y.
func (be *Backend) Ccopy(n int, x []complex64, incX int, y []complex64, incY int) error {
	const op = "Ccopy"
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return err
	}
	if err := checkVector(op, "y", n, incY, len(y)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "ccopy")
	if err != nil {
		return err
	}
	cn, cix, ciy := Int(n), Int(incX), Int(incY)
	funcOf[CcopyKernel](fp)(&cn, ptr(x), &cix, ptr(y), &ciy)
	return nil
}

// Zcopy copies x into y.
func (be *Backend) Zcopy(n int, x []complex128, incX int, y []complex128, incY int) error {
	const op = "Zcopy"
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return err
	}
	if err := checkVector(op, "y", n, incY, len(y)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "zcopy")
	if err != nil {
		return err
	}
	cn, cix, ciy := Int(n), Int(incX), Int(incY)
	funcOf[ZcopyKernel](fp)(&cn, ptr(x), &cix, ptr(y), &ciy)
	return nil
}

// Saxpy adds alpha times x to y.
func (be *Backend) Saxpy(n int, alpha float32, x []float32, incX int, y []float32, incY int) error {
	const op = "Saxpy"
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return err
	}
	if err := checkVector(op, "y", n, incY, len(y)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "saxpy")
	if err != nil {
		return err
	}
	cn, cix, ciy := Int(n), Int(incX), Int(incY)
	funcOf[SaxpyKernel](fp)(&cn, &alpha, ptr(x), &cix, ptr(y), &ciy)
	return nil
}

// Daxpy adds alpha times x to y.
func (be *Backend) Daxpy(n int, alpha float64, x []float64, incX int, y []float64, incY int) error {
	const op = "Daxpy"
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return err
	}
	if err := checkVector(op, "y", n, incY, len(y)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "daxpy")
	if err != nil {
		return err
	}
	cn, cix, ciy := Int(n), Int(incX), Int(incY)
	funcOf[DaxpyKernel](fp)(&cn, &alpha, ptr(x), &cix, ptr(y), &ciy)
	return nil
}

// Caxpy adds alpha times x to y.
func (be *Backend) Caxpy(n int, alpha complex64, x []complex64, incX int, y []complex64, incY int) error {
	const op = "Caxpy"
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return err
	}
	if err := checkVector(op, "y", n, incY, len(y)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "caxpy")
	if err != nil {
		return err
	}
	cn, cix, ciy := Int(n), Int(incX), Int(incY)
	funcOf[CaxpyKernel](fp)(&cn, &alpha, ptr(x), &cix, ptr(y), &ciy)
	return nil
}

// Zaxpy adds alpha times x to y.
func (be *Backend) Zaxpy(n int, alpha complex128, x []complex128, incX int, y []complex128, incY int) error {
	const op = "Zaxpy"
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return err
	}
	if err := checkVector(op, "y", n, incY, len(y)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "zaxpy")
	if err != nil {
		return err
	}
	cn, cix, ciy := Int(n), Int(incX), Int(incY)
	funcOf[ZaxpyKernel](fp)(&cn, &alpha, ptr(x), &cix, ptr(y), &ciy)
	return nil
}

// Sscal scales x by alpha.
func (be *Backend) Sscal(n int, alpha float32, x []float32, incX int) error {
	const op = "Sscal"
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "sscal")
	if err != nil {
		return err
	}
	cn, cix := Int(n), Int(incX)
	funcOf[SscalKernel](fp)(&cn, &alpha, ptr(x), &cix)
	return nil
}

// Dscal scales x by alpha.
func (be *Backend) Dscal(n int, alpha float64, x []float64, incX int) error {
	const op = "Dscal"
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "dscal")
	if err != nil {
		return err
	}
	cn, cix := Int(n), Int(incX)
	funcOf[DscalKernel](fp)(&cn, &alpha, ptr(x), &cix)
	return nil
}

// Cscal scales x by a complex alpha.
func (be *Backend) Cscal(n int, alpha complex64, x []complex64, incX int) error {
	const op = "Cscal"
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "cscal")
	if err != nil {
		return err
	}
	cn, cix := Int(n), Int(incX)
	funcOf[CscalKernel](fp)(&cn, &alpha, ptr(x), &cix)
	return nil
}

// Zscal scales x by a complex alpha.
func (be *Backend) Zscal(n int, alpha complex128, x []complex128, incX int) error {
	const op = "Zscal"
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "zscal")
	if err != nil {
		return err
	}
	cn, cix := Int(n), Int(incX)
	funcOf[ZscalKernel](fp)(&cn, &alpha, ptr(x), &cix)
	return nil
}

// Csscal scales a complex vector by a real alpha.
func (be *Backend) Csscal(n int, alpha float32, x []complex64, incX int) error {
	const op = "Csscal"
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "csscal")
	if err != nil {
		return err
	}
	cn, cix := Int(n), Int(incX)
	funcOf[CsscalKernel](fp)(&cn, &alpha, ptr(x), &cix)
	return nil
}

// Zdscal scales a double complex vector by a real alpha.
func (be *Backend) Zdscal(n int, alpha float64, x []complex128, incX int) error {
	const op = "Zdscal"
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "zdscal")
	if err != nil {
		return err
	}
	cn, cix := Int(n), Int(incX)
	funcOf[ZdscalKernel](fp)(&cn, &alpha, ptr(x), &cix)
	return nil
}

// Srot applies a plane rotation with cosine c and sine s to x and y.
func (be *Backend) Srot(n int, x []float32, incX int, y []float32, incY int, c, s float32) error {
	const op = "Srot"
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return err
	}
	if err := checkVector(op, "y", n, incY, len(y)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "srot")
	if err != nil {
		return err
	}
	cn, cix, ciy := Int(n), Int(incX), Int(incY)
	funcOf[SrotKernel](fp)(&cn, ptr(x), &cix, ptr(y), &ciy, &c, &s)
	return nil
}

// Drot applies a plane rotation with cosine c and sine s to x and y.
func (be *Backend) Drot(n int, x []float64, incX int, y []float64, incY int, c, s float64) error {
	const op = "Drot"
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return err
	}
	if err := checkVector(op, "y", n, incY, len(y)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "drot")
	if err != nil {
		return err
	}
	cn, cix, ciy := Int(n), Int(incX), Int(incY)
	funcOf[DrotKernel](fp)(&cn, ptr(x), &cix, ptr(y), &ciy, &c, &s)
	return nil
}

// Srotg constructs a Givens rotation that zeroes the second input. All
// four arguments are overwritten with the usual BLAS outputs.
func (be *Backend) Srotg(a, b, c, s *float32) error {
	const op = "Srotg"
	if a == nil || b == nil || c == nil || s == nil {
		return NewInvalidArgError(op, "nil argument")
	}
	fp, err := be.kernel(op, "srotg")
	if err != nil {
		return err
	}
	funcOf[SrotgKernel](fp)(a, b, c, s)
	return nil
}

// Drotg constructs a Givens rotation that zeroes the second input. All
// four arguments are overwritten with the usual BLAS outputs.
func (be *Backend) Drotg(a, b, c, s *float64) error {
	const op = "Drotg"
	if a == nil || b == nil || c == nil || s == nil {
		return NewInvalidArgError(op, "nil argument")
	}
	fp, err := be.kernel(op, "drotg")
	if err != nil {
		return err
	}
	funcOf[DrotgKernel](fp)(a, b, c, s)
	return nil
}

// Srotm applies the modified Givens rotation described by param.
func (be *Backend) Srotm(n int, x []float32, incX int, y []float32, incY int, param []float32) error {
	const op = "Srotm"
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return err
	}
	if err := checkVector(op, "y", n, incY, len(y)); err != nil {
		return err
	}
	if err := checkParam(op, "param", len(param)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "srotm")
	if err != nil {
		return err
	}
	cn, cix, ciy := Int(n), Int(incX), Int(incY)
	funcOf[SrotmKernel](fp)(&cn, ptr(x), &cix, ptr(y), &ciy, &param[0])
	return nil
}

// Drotm applies the modified Givens rotation described by param.
func (be *Backend) Drotm(n int, x []float64, incX int, y []float64, incY int, param []float64) error {
	const op = "Drotm"
	if err := checkDim(op, "n", n); err != nil {
		return err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return err
	}
	if err := checkVector(op, "y", n, incY, len(y)); err != nil {
		return err
	}
	if err := checkParam(op, "param", len(param)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "drotm")
	if err != nil {
		return err
	}
	cn, cix, ciy := Int(n), Int(incX), Int(incY)
	funcOf[DrotmKernel](fp)(&cn, ptr(x), &cix, ptr(y), &ciy, &param[0])
	return nil
}

// Srotmg constructs a modified Givens rotation; param receives its
// five-element description.
func (be *Backend) Srotmg(d1, d2, b1 *float32, b2 float32, param []float32) error {
	const op = "Srotmg"
	if d1 == nil || d2 == nil || b1 == nil {
		return NewInvalidArgError(op, "nil argument")
	}
	if err := checkParam(op, "param", len(param)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "srotmg")
	if err != nil {
		return err
	}
	funcOf[SrotmgKernel](fp)(d1, d2, b1, &b2, &param[0])
	return nil
}

// Drotmg constructs a modified Givens rotation; param receives its
// five-element description.
func (be *Backend) Drotmg(d1, d2, b1 *float64, b2 float64, param []float64) error {
	const op = "Drotmg"
	if d1 == nil || d2 == nil || b1 == nil {
		return NewInvalidArgError(op, "nil argument")
	}
	if err := checkParam(op, "param", len(param)); err != nil {
		return err
	}
	fp, err := be.kernel(op, "drotmg")
	if err != nil {
		return err
	}
	funcOf[DrotmgKernel](fp)(d1, d2, b1, &b2, &param[0])
	return nil
}
