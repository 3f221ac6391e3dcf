package blasbridge

import (
	"fmt"
	"math"
	"math/cmplx"
)

// ToleranceConfig defines tolerance parameters for floating-point comparison
// of kernel output against a reference result.
type ToleranceConfig struct {
	// AbsTol is the absolute tolerance for values near zero
	AbsTol float64

	// RelTol is the relative tolerance as a fraction of the larger value
	RelTol float64

	// ULPTol is the maximum allowed difference in ULPs (Units in Last Place)
	ULPTol int

	// CheckNaN determines if NaN values should be considered equal
	CheckNaN bool

	// CheckInf determines if Inf values of the same sign should be considered equal
	CheckInf bool
}

// DefaultTolerance returns the default tolerance configuration, suitable for
// single precision results.
func DefaultTolerance() ToleranceConfig {
	return ToleranceConfig{
		AbsTol:   1e-7,
		RelTol:   1e-5,
		ULPTol:   4,
		CheckNaN: true,
		CheckInf: true,
	}
}

// StrictTolerance returns a strict tolerance configuration for double
// precision results.
func StrictTolerance() ToleranceConfig {
	return ToleranceConfig{
		AbsTol:   1e-12,
		RelTol:   1e-10,
		ULPTol:   2,
		CheckNaN: true,
		CheckInf: true,
	}
}

// RelaxedTolerance returns a relaxed tolerance configuration for long
// accumulations such as large matrix products.
func RelaxedTolerance() ToleranceConfig {
	return ToleranceConfig{
		AbsTol:   1e-5,
		RelTol:   1e-3,
		ULPTol:   16,
		CheckNaN: true,
		CheckInf: true,
	}
}

// Float32NearEqual checks if two float32 values are equal within tolerance.
func Float32NearEqual(a, b float32, tol ToleranceConfig) bool {
	if tol.CheckNaN && math.IsNaN(float64(a)) && math.IsNaN(float64(b)) {
		return true
	}

	if tol.CheckInf {
		if math.IsInf(float64(a), 1) && math.IsInf(float64(b), 1) {
			return true
		}
		if math.IsInf(float64(a), -1) && math.IsInf(float64(b), -1) {
			return true
		}
	}

	// Exact match handles ±0.
	if a == b {
		return true
	}

	diff := math.Abs(float64(a) - float64(b))
	if diff <= tol.AbsTol {
		return true
	}

	larger := math.Max(math.Abs(float64(a)), math.Abs(float64(b)))
	if diff <= larger*tol.RelTol {
		return true
	}

	if tol.ULPTol > 0 && Float32ULPDiff(a, b) <= tol.ULPTol {
		return true
	}

	return false
}

// Float64NearEqual checks if two float64 values are equal within tolerance.
func Float64NearEqual(a, b float64, tol ToleranceConfig) bool {
	if tol.CheckNaN && math.IsNaN(a) && math.IsNaN(b) {
		return true
	}

	if tol.CheckInf {
		if math.IsInf(a, 1) && math.IsInf(b, 1) {
			return true
		}
		if math.IsInf(a, -1) && math.IsInf(b, -1) {
			return true
		}
	}

	if a == b {
		return true
	}

	diff := math.Abs(a - b)
	if diff <= tol.AbsTol {
		return true
	}

	larger := math.Max(math.Abs(a), math.Abs(b))
	if diff <= larger*tol.RelTol {
		return true
	}

	if tol.ULPTol > 0 && Float64ULPDiff(a, b) <= int64(tol.ULPTol) {
		return true
	}

	return false
}

// Complex64NearEqual checks both components of two complex64 values. NaN and
// Inf handling follows the real comparisons componentwise.
func Complex64NearEqual(a, b complex64, tol ToleranceConfig) bool {
	return Float32NearEqual(real(a), real(b), tol) && Float32NearEqual(imag(a), imag(b), tol)
}

// Complex128NearEqual checks both components of two complex128 values.
func Complex128NearEqual(a, b complex128, tol ToleranceConfig) bool {
	return Float64NearEqual(real(a), real(b), tol) && Float64NearEqual(imag(a), imag(b), tol)
}

// Float32ULPDiff computes the difference in ULPs between two float32 values.
// Values of opposite sign report math.MaxInt32.
func Float32ULPDiff(a, b float32) int {
	aBits := math.Float32bits(a)
	bBits := math.Float32bits(b)

	if (aBits^bBits)&0x80000000 != 0 {
		return math.MaxInt32
	}

	if aBits > bBits {
		return int(aBits - bBits)
	}
	return int(bBits - aBits)
}

// Float64ULPDiff computes the difference in ULPs between two float64 values.
// Values of opposite sign report math.MaxInt64. Differences beyond
// math.MaxInt64 saturate.
func Float64ULPDiff(a, b float64) int64 {
	aBits := math.Float64bits(a)
	bBits := math.Float64bits(b)

	if (aBits^bBits)&0x8000000000000000 != 0 {
		return math.MaxInt64
	}

	var diff uint64
	if aBits > bBits {
		diff = aBits - bBits
	} else {
		diff = bBits - aBits
	}
	if diff > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(diff)
}

// VerificationResult aggregates the differences found when comparing a
// computed array against its reference.
type VerificationResult struct {
	MaxAbsError float64
	MaxRelError float64
	MaxULPError int64
	NumErrors   int
	TotalItems  int
	FirstError  int // Index of first error, -1 if none
}

// VerifyFloat32Array compares two float32 arrays and returns detailed results.
// Arrays of different lengths count every element as an error.
func VerifyFloat32Array(expected, actual []float32, tol ToleranceConfig) VerificationResult {
	result := VerificationResult{
		TotalItems: len(expected),
		FirstError: -1,
	}

	if len(expected) != len(actual) {
		result.NumErrors = len(expected)
		return result
	}

	for i := range expected {
		if Float32NearEqual(expected[i], actual[i], tol) {
			continue
		}
		result.NumErrors++
		if result.FirstError == -1 {
			result.FirstError = i
		}

		absDiff := math.Abs(float64(expected[i]) - float64(actual[i]))
		if absDiff > result.MaxAbsError {
			result.MaxAbsError = absDiff
		}
		if expected[i] != 0 {
			relDiff := absDiff / math.Abs(float64(expected[i]))
			if relDiff > result.MaxRelError {
				result.MaxRelError = relDiff
			}
		}
		if ulpDiff := int64(Float32ULPDiff(expected[i], actual[i])); ulpDiff > result.MaxULPError {
			result.MaxULPError = ulpDiff
		}
	}

	return result
}

// VerifyFloat64Array compares two float64 arrays and returns detailed results.
func VerifyFloat64Array(expected, actual []float64, tol ToleranceConfig) VerificationResult {
	result := VerificationResult{
		TotalItems: len(expected),
		FirstError: -1,
	}

	if len(expected) != len(actual) {
		result.NumErrors = len(expected)
		return result
	}

	for i := range expected {
		if Float64NearEqual(expected[i], actual[i], tol) {
			continue
		}
		result.NumErrors++
		if result.FirstError == -1 {
			result.FirstError = i
		}

		absDiff := math.Abs(expected[i] - actual[i])
		if absDiff > result.MaxAbsError {
			result.MaxAbsError = absDiff
		}
		if expected[i] != 0 {
			relDiff := absDiff / math.Abs(expected[i])
			if relDiff > result.MaxRelError {
				result.MaxRelError = relDiff
			}
		}
		if ulpDiff := Float64ULPDiff(expected[i], actual[i]); ulpDiff > result.MaxULPError {
			result.MaxULPError = ulpDiff
		}
	}

	return result
}

// VerifyComplex128Array compares two complex128 arrays componentwise.
func VerifyComplex128Array(expected, actual []complex128, tol ToleranceConfig) VerificationResult {
	result := VerificationResult{
		TotalItems: len(expected),
		FirstError: -1,
	}

	if len(expected) != len(actual) {
		result.NumErrors = len(expected)
		return result
	}

	for i := range expected {
		if Complex128NearEqual(expected[i], actual[i], tol) {
			continue
		}
		result.NumErrors++
		if result.FirstError == -1 {
			result.FirstError = i
		}

		absDiff := cmplx.Abs(expected[i] - actual[i])
		if absDiff > result.MaxAbsError {
			result.MaxAbsError = absDiff
		}
		if expected[i] != 0 {
			relDiff := absDiff / cmplx.Abs(expected[i])
			if relDiff > result.MaxRelError {
				result.MaxRelError = relDiff
			}
		}
	}

	return result
}

// IsAcceptable returns true if the verification result is within tolerance.
func (r VerificationResult) IsAcceptable(tol ToleranceConfig) bool {
	return r.NumErrors == 0 ||
		(r.MaxAbsError <= tol.AbsTol &&
			r.MaxRelError <= tol.RelTol &&
			r.MaxULPError <= int64(tol.ULPTol))
}

// String formats the verification result for display.
func (r VerificationResult) String() string {
	if r.NumErrors == 0 {
		return "PASS: All values match within tolerance"
	}

	errorRate := float64(r.NumErrors) / float64(r.TotalItems) * 100
	return fmt.Sprintf("FAIL: %d/%d values differ (%.2f%%)\n"+
		"  Max absolute error: %e\n"+
		"  Max relative error: %e\n"+
		"  Max ULP difference: %d\n"+
		"  First error at index: %d",
		r.NumErrors, r.TotalItems, errorRate,
		r.MaxAbsError, r.MaxRelError, r.MaxULPError,
		r.FirstError)
}
