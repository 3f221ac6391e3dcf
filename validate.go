package blasbridge

import "fmt"

// Argument validation shared by every dispatch adapter. All checks run
// before the kernel is resolved, and a failed check means no output
// argument has been touched. Messages stay terse in the BLAS tradition;
// the failing entry point is carried in the error's Op field.

func checkOrder(op string, o Order) error {
	if !o.valid() {
		return NewInvalidArgError(op, "bad order flag")
	}
	return nil
}

func checkTrans(op string, t Transpose) error {
	if !t.valid() {
		return NewInvalidArgError(op, "bad transpose flag")
	}
	return nil
}

func checkUplo(op string, u Uplo) error {
	if !u.valid() {
		return NewInvalidArgError(op, "bad uplo flag")
	}
	return nil
}

func checkDiag(op string, d Diag) error {
	if !d.valid() {
		return NewInvalidArgError(op, "bad diag flag")
	}
	return nil
}

func checkSide(op string, s Side) error {
	if !s.valid() {
		return NewInvalidArgError(op, "bad side flag")
	}
	return nil
}

func checkDim(op, name string, v int) error {
	if v < 0 {
		return NewInvalidArgError(op, name+" < 0")
	}
	return nil
}

// checkVector validates a strided vector argument: nonzero increment and
// enough elements behind it. Negative increments are the usual BLAS
// reverse traversal and need the same 1+(n-1)*|inc| elements.
func checkVector(op, name string, n, inc, length int) error {
	if inc == 0 {
		return NewInvalidArgError(op, "zero increment for "+name)
	}
	if n == 0 {
		return nil
	}
	step := inc
	if step < 0 {
		step = -step
	}
	if length < 1+(n-1)*step {
		return NewInvalidArgError(op, "insufficient length of "+name)
	}
	return nil
}

// checkMatrix validates a general matrix argument of stored shape
// rows x cols under the given order: the leading dimension must cover
// the minor dimension and the slice must reach the last element. A zero
// extent leaves the buffer unused but the leading dimension still has to
// be at least one, as in Fortran.
func checkMatrix(op, name string, order Order, rows, cols, ld, length int) error {
	minor := rows
	if order == RowMajor {
		minor = cols
	}
	if minor < 1 {
		minor = 1
	}
	if ld < minor {
		return NewInvalidArgError(op, fmt.Sprintf("bad leading dimension for %s", name))
	}
	if rows == 0 || cols == 0 {
		return nil
	}
	var need int
	if order == RowMajor {
		need = (rows-1)*ld + cols
	} else {
		need = (cols-1)*ld + rows
	}
	if length < need {
		return NewInvalidArgError(op, "insufficient length of "+name)
	}
	return nil
}

// opDims returns the stored dimensions of a matrix whose op() result is
// r x c: unchanged for NoTrans/ConjNoTrans, exchanged for the transposing
// flags.
func opDims(t Transpose, r, c int) (rows, cols int) {
	switch t {
	case Trans, ConjTrans:
		return c, r
	}
	return r, c
}

// checkParam validates a rotm/rotmg parameter array, which is always
// five elements.
func checkParam(op, name string, length int) error {
	if length < 5 {
		return NewInvalidArgError(op, "insufficient length of "+name)
	}
	return nil
}
