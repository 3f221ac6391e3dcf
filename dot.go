package blasbridge

// Dot products and the other vector reductions. The real-valued dots
// return their result directly in every Fortran ABI, so those calls are
// unconditional. The four complex dots are the only routines whose ABI
// depends on how the backing library was compiled; dispatch reads the
// effective ComplexReturnStyle and reconstructs the pointer under the
// matching signature.

// Sdot returns the dot product of x and y.
func (be *Backend) Sdot(n int, x []float32, incX int, y []float32, incY int) (float32, error) {
	const op = "Sdot"
	if err := checkDim(op, "n", n); err != nil {
		return 0, err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return 0, err
	}
	if err := checkVector(op, "y", n, incY, len(y)); err != nil {
		return 0, err
	}
	fp, err := be.kernel(op, "sdot")
	if err != nil {
		return 0, err
	}
	cn, cix, ciy := Int(n), Int(incX), Int(incY)
	return funcOf[SdotKernel](fp)(&cn, ptr(x), &cix, ptr(y), &ciy), nil
}

// Ddot returns the dot product of x and y.
func (be *Backend) Ddot(n int, x []float64, incX int, y []float64, incY int) (float64, error) {
	const op = "Ddot"
	if err := checkDim(op, "n", n); err != nil {
		return 0, err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return 0, err
	}
	if err := checkVector(op, "y", n, incY, len(y)); err != nil {
		return 0, err
	}
	fp, err := be.kernel(op, "ddot")
	if err != nil {
		return 0, err
	}
	cn, cix, ciy := Int(n), Int(incX), Int(incY)
	return funcOf[DdotKernel](fp)(&cn, ptr(x), &cix, ptr(y), &ciy), nil
}

// Dsdot returns the dot product of two single precision vectors
// accumulated in double precision.
func (be *Backend) Dsdot(n int, x []float32, incX int, y []float32, incY int) (float64, error) {
	const op = "Dsdot"
	if err := checkDim(op, "n", n); err != nil {
		return 0, err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return 0, err
	}
	if err := checkVector(op, "y", n, incY, len(y)); err != nil {
		return 0, err
	}
	fp, err := be.kernel(op, "dsdot")
	if err != nil {
		return 0, err
	}
	cn, cix, ciy := Int(n), Int(incX), Int(incY)
	return funcOf[DsdotKernel](fp)(&cn, ptr(x), &cix, ptr(y), &ciy), nil
}

// Sdsdot returns sb plus the dot product of x and y, accumulated in
// double precision and rounded back to single.
func (be *Backend) Sdsdot(n int, sb float32, x []float32, incX int, y []float32, incY int) (float32, error) {
	const op = "Sdsdot"
	if err := checkDim(op, "n", n); err != nil {
		return 0, err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return 0, err
	}
	if err := checkVector(op, "y", n, incY, len(y)); err != nil {
		return 0, err
	}
	fp, err := be.kernel(op, "sdsdot")
	if err != nil {
		return 0, err
	}
	cn, cix, ciy := Int(n), Int(incX), Int(incY)
	return funcOf[SdsdotKernel](fp)(&cn, &sb, ptr(x), &cix, ptr(y), &ciy), nil
}

// CdotuSub stores the unconjugated dot product of x and y in ret.
func (be *Backend) CdotuSub(n int, x []complex64, incX int, y []complex64, incY int, ret *complex64) error {
	const op = "CdotuSub"
	if ret == nil {
		return NewInvalidArgError(op, "nil ret")
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
	fp, style, err := be.dotKernel(op, Cdotu)
	if err != nil {
		return err
	}
	cn, cix, ciy := Int(n), Int(incX), Int(incY)
	switch style {
	case ReturnValue:
		*ret = funcOf[CdotuKernel](fp)(&cn, ptr(x), &cix, ptr(y), &ciy)
	case HiddenArgument:
		funcOf[CdotuHiddenKernel](fp)(ret, &cn, ptr(x), &cix, ptr(y), &ciy)
	}
	return nil
}

// CdotcSub stores the conjugated dot product conj(x)·y in ret.
func (be *Backend) CdotcSub(n int, x []complex64, incX int, y []complex64, incY int, ret *complex64) error {
	const op = "CdotcSub"
	if ret == nil {
		return NewInvalidArgError(op, "nil ret")
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
	fp, style, err := be.dotKernel(op, Cdotc)
	if err != nil {
		return err
	}
	cn, cix, ciy := Int(n), Int(incX), Int(incY)
	switch style {
	case ReturnValue:
		*ret = funcOf[CdotcKernel](fp)(&cn, ptr(x), &cix, ptr(y), &ciy)
	case HiddenArgument:
		funcOf[CdotcHiddenKernel](fp)(ret, &cn, ptr(x), &cix, ptr(y), &ciy)
	}
	return nil
}

// ZdotuSub stores the unconjugated dot product of x and y in ret.
func (be *Backend) ZdotuSub(n int, x []complex128, incX int, y []complex128, incY int, ret *complex128) error {
	const op = "ZdotuSub"
	if ret == nil {
		return NewInvalidArgError(op, "nil ret")
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
	fp, style, err := be.dotKernel(op, Zdotu)
	if err != nil {
		return err
	}
	cn, cix, ciy := Int(n), Int(incX), Int(incY)
	switch style {
	case ReturnValue:
		*ret = funcOf[ZdotuKernel](fp)(&cn, ptr(x), &cix, ptr(y), &ciy)
	case HiddenArgument:
		funcOf[ZdotuHiddenKernel](fp)(ret, &cn, ptr(x), &cix, ptr(y), &ciy)
	}
	return nil
}

// ZdotcSub stores the conjugated dot product conj(x)·y in ret.
func (be *Backend) ZdotcSub(n int, x []complex128, incX int, y []complex128, incY int, ret *complex128) error {
	const op = "ZdotcSub"
	if ret == nil {
		return NewInvalidArgError(op, "nil ret")
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
	fp, style, err := be.dotKernel(op, Zdotc)
	if err != nil {
		return err
	}
	cn, cix, ciy := Int(n), Int(incX), Int(incY)
	switch style {
	case ReturnValue:
		*ret = funcOf[ZdotcKernel](fp)(&cn, ptr(x), &cix, ptr(y), &ciy)
	case HiddenArgument:
		funcOf[ZdotcHiddenKernel](fp)(ret, &cn, ptr(x), &cix, ptr(y), &ciy)
	}
	return nil
}

// Snrm2 returns the Euclidean norm of x.
func (be *Backend) Snrm2(n int, x []float32, incX int) (float32, error) {
	const op = "Snrm2"
	if err := checkDim(op, "n", n); err != nil {
		return 0, err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return 0, err
	}
	fp, err := be.kernel(op, "snrm2")
	if err != nil {
		return 0, err
	}
	cn, cix := Int(n), Int(incX)
	return funcOf[Snrm2Kernel](fp)(&cn, ptr(x), &cix), nil
}

// Dnrm2 returns the Euclidean norm of x.
func (be *Backend) Dnrm2(n int, x []float64, incX int) (float64, error) {
	const op = "Dnrm2"
	if err := checkDim(op, "n", n); err != nil {
		return 0, err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return 0, err
	}
	fp, err := be.kernel(op, "dnrm2")
	if err != nil {
		return 0, err
	}
	cn, cix := Int(n), Int(incX)
	return funcOf[Dnrm2Kernel](fp)(&cn, ptr(x), &cix), nil
}

// Scnrm2 returns the Euclidean norm of a complex vector.
func (be *Backend) Scnrm2(n int, x []complex64, incX int) (float32, error) {
	const op = "Scnrm2"
	if err := checkDim(op, "n", n); err != nil {
		return 0, err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return 0, err
	}
	fp, err := be.kernel(op, "scnrm2")
	if err != nil {
		return 0, err
	}
	cn, cix := Int(n), Int(incX)
	return funcOf[Scnrm2Kernel](fp)(&cn, ptr(x), &cix), nil
}

// Dznrm2 returns the Euclidean norm of a double complex vector.
func (be *Backend) Dznrm2(n int, x []complex128, incX int) (float64, error) {
	const op = "Dznrm2"
	if err := checkDim(op, "n", n); err != nil {
		return 0, err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return 0, err
	}
	fp, err := be.kernel(op, "dznrm2")
	if err != nil {
		return 0, err
	}
	cn, cix := Int(n), Int(incX)
	return funcOf[Dznrm2Kernel](fp)(&cn, ptr(x), &cix), nil
}

// Sasum returns the sum of the absolute values of the elements of x.
func (be *Backend) Sasum(n int, x []float32, incX int) (float32, error) {
	const op = "Sasum"
	if err := checkDim(op, "n", n); err != nil {
		return 0, err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return 0, err
	}
	fp, err := be.kernel(op, "sasum")
	if err != nil {
		return 0, err
	}
	cn, cix := Int(n), Int(incX)
	return funcOf[SasumKernel](fp)(&cn, ptr(x), &cix), nil
}

// Dasum returns the sum of the absolute values of the elements of x.
func (be *Backend) Dasum(n int, x []float64, incX int) (float64, error) {
	const op = "Dasum"
	if err := checkDim(op, "n", n); err != nil {
		return 0, err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return 0, err
	}
	fp, err := be.kernel(op, "dasum")
	if err != nil {
		return 0, err
	}
	cn, cix := Int(n), Int(incX)
	return funcOf[DasumKernel](fp)(&cn, ptr(x), &cix), nil
}

// Scasum returns the sum of |Re| + |Im| over the elements of x.
func (be *Backend) Scasum(n int, x []complex64, incX int) (float32, error) {
	const op = "Scasum"
	if err := checkDim(op, "n", n); err != nil {
		return 0, err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return 0, err
	}
	fp, err := be.kernel(op, "scasum")
	if err != nil {
		return 0, err
	}
	cn, cix := Int(n), Int(incX)
	return funcOf[ScasumKernel](fp)(&cn, ptr(x), &cix), nil
}

// Dzasum returns the sum of |Re| + |Im| over the elements of x.
func (be *Backend) Dzasum(n int, x []complex128, incX int) (float64, error) {
	const op = "Dzasum"
	if err := checkDim(op, "n", n); err != nil {
		return 0, err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return 0, err
	}
	fp, err := be.kernel(op, "dzasum")
	if err != nil {
		return 0, err
	}
	cn, cix := Int(n), Int(incX)
	return funcOf[DzasumKernel](fp)(&cn, ptr(x), &cix), nil
}

// Isamax returns the zero based index of the element of x with the
// largest absolute value. Fortran kernels report a one based index, or
// zero on their quick-return paths; both the quick return and the first
// element therefore map to index 0.
func (be *Backend) Isamax(n int, x []float32, incX int) (int, error) {
	const op = "Isamax"
	if err := checkDim(op, "n", n); err != nil {
		return 0, err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return 0, err
	}
	fp, err := be.kernel(op, "isamax")
	if err != nil {
		return 0, err
	}
	cn, cix := Int(n), Int(incX)
	ix := funcOf[IsamaxKernel](fp)(&cn, ptr(x), &cix)
	if ix > 0 {
		ix--
	}
	return int(ix), nil
}

// Idamax returns the zero based index of the element of x with the
// largest absolute value. See Isamax for the index convention.
func (be *Backend) Idamax(n int, x []float64, incX int) (int, error) {
	const op = "Idamax"
	if err := checkDim(op, "n", n); err != nil {
		return 0, err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return 0, err
	}
	fp, err := be.kernel(op, "idamax")
	if err != nil {
		return 0, err
	}
	cn, cix := Int(n), Int(incX)
	ix := funcOf[IdamaxKernel](fp)(&cn, ptr(x), &cix)
	if ix > 0 {
		ix--
	}
	return int(ix), nil
}

// Icamax returns the zero based index of the element of x with the
// largest |Re| + |Im|. See Isamax for the index convention.
func (be *Backend) Icamax(n int, x []complex64, incX int) (int, error) {
	const op = "Icamax"
	if err := checkDim(op, "n", n); err != nil {
		return 0, err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return 0, err
	}
	fp, err := be.kernel(op, "icamax")
	if err != nil {
		return 0, err
	}
	cn, cix := Int(n), Int(incX)
	ix := funcOf[IcamaxKernel](fp)(&cn, ptr(x), &cix)
	if ix > 0 {
		ix--
	}
	return int(ix), nil
}

// Izamax returns the zero based index of the element of x with the
// largest |Re| + |Im|. See Isamax for the index convention.
func (be *Backend) Izamax(n int, x []complex128, incX int) (int, error) {
	const op = "Izamax"
	if err := checkDim(op, "n", n); err != nil {
		return 0, err
	}
	if err := checkVector(op, "x", n, incX, len(x)); err != nil {
		return 0, err
	}
	fp, err := be.kernel(op, "izamax")
	if err != nil {
		return 0, err
	}
	cn, cix := Int(n), Int(incX)
	ix := funcOf[IzamaxKernel](fp)(&cn, ptr(x), &cix)
	if ix > 0 {
		ix--
	}
	return int(ix), nil
}

// Scabs1 returns |Re(c)| + |Im(c)|.
func (be *Backend) Scabs1(c complex64) (float32, error) {
	fp, err := be.kernel("Scabs1", "scabs1")
	if err != nil {
		return 0, err
	}
	return funcOf[Scabs1Kernel](fp)(&c), nil
}

// Dcabs1 returns |Re(z)| + |Im(z)|.
func (be *Backend) Dcabs1(z complex128) (float64, error) {
	fp, err := be.kernel("Dcabs1", "dcabs1")
	if err != nil {
		return 0, err
	}
	return funcOf[Dcabs1Kernel](fp)(&z), nil
}
