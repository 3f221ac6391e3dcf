package blasbridge

import (
	"math"
	"strings"
	"testing"
)

func TestFloat32NearEqual(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float32
		tol      ToleranceConfig
		expected bool
	}{
		{
			name:     "Exact_Equal",
			a:        1.0,
			b:        1.0,
			tol:      DefaultTolerance(),
			expected: true,
		},
		{
			name:     "Within_AbsTol",
			a:        1e-8,
			b:        2e-8,
			tol:      DefaultTolerance(),
			expected: true,
		},
		{
			name:     "Within_RelTol",
			a:        1000.0,
			b:        1000.001,
			tol:      DefaultTolerance(),
			expected: true,
		},
		{
			name:     "Outside_RelTol",
			a:        1000.0,
			b:        1100.0,
			tol:      DefaultTolerance(),
			expected: false,
		},
		{
			name:     "Signed_Zero",
			a:        0.0,
			b:        float32(math.Copysign(0, -1)),
			tol:      DefaultTolerance(),
			expected: true,
		},
		{
			name:     "Both_NaN",
			a:        float32(math.NaN()),
			b:        float32(math.NaN()),
			tol:      DefaultTolerance(),
			expected: true,
		},
		{
			name:     "NaN_Vs_Number",
			a:        float32(math.NaN()),
			b:        1.0,
			tol:      DefaultTolerance(),
			expected: false,
		},
		{
			name:     "Both_PosInf",
			a:        float32(math.Inf(1)),
			b:        float32(math.Inf(1)),
			tol:      DefaultTolerance(),
			expected: true,
		},
		{
			name:     "Opposite_Inf",
			a:        float32(math.Inf(1)),
			b:        float32(math.Inf(-1)),
			tol:      DefaultTolerance(),
			expected: false,
		},
		{
			name: "NaN_Check_Disabled",
			a:    float32(math.NaN()),
			b:    float32(math.NaN()),
			tol: ToleranceConfig{
				AbsTol: 1e-7,
				RelTol: 1e-5,
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Float32NearEqual(tt.a, tt.b, tt.tol); got != tt.expected {
				t.Errorf("Float32NearEqual(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestFloat64NearEqual(t *testing.T) {
	tol := StrictTolerance()
	if !Float64NearEqual(1.0, 1.0+1e-13, tol) {
		t.Error("Expected values within strict tolerance to match")
	}
	if Float64NearEqual(1.0, 1.0+1e-8, tol) {
		t.Error("Expected values outside strict tolerance to differ")
	}
	if !Float64NearEqual(math.NaN(), math.NaN(), tol) {
		t.Error("Expected NaN to match NaN with CheckNaN")
	}
	if !Float64NearEqual(math.Inf(-1), math.Inf(-1), tol) {
		t.Error("Expected -Inf to match -Inf with CheckInf")
	}
}

func TestComplexNearEqual(t *testing.T) {
	tol := DefaultTolerance()
	if !Complex128NearEqual(1+2i, 1+2i, tol) {
		t.Error("Identical complex values reported unequal")
	}
	if Complex128NearEqual(1+2i, 1-2i, tol) {
		t.Error("Conjugates reported equal")
	}
	if !Complex64NearEqual(complex(1, 1e-8), complex(1, 2e-8), tol) {
		t.Error("Componentwise tolerance not applied")
	}
}

func TestULPDiff(t *testing.T) {
	if got := Float32ULPDiff(1.0, 1.0); got != 0 {
		t.Errorf("ULP distance of identical values = %d, want 0", got)
	}
	next := math.Float32frombits(math.Float32bits(1.0) + 1)
	if got := Float32ULPDiff(1.0, next); got != 1 {
		t.Errorf("ULP distance of adjacent values = %d, want 1", got)
	}
	if got := Float32ULPDiff(1.0, -1.0); got != math.MaxInt32 {
		t.Errorf("ULP distance across signs = %d, want MaxInt32", got)
	}

	next64 := math.Float64frombits(math.Float64bits(2.0) + 3)
	if got := Float64ULPDiff(2.0, next64); got != 3 {
		t.Errorf("Float64 ULP distance = %d, want 3", got)
	}
	if got := Float64ULPDiff(2.0, -2.0); got != math.MaxInt64 {
		t.Errorf("Float64 ULP distance across signs = %d, want MaxInt64", got)
	}
}

func TestVerifyFloat64Array(t *testing.T) {
	expected := []float64{1, 2, 3, 4}
	actual := []float64{1, 2, 3, 4}
	res := VerifyFloat64Array(expected, actual, StrictTolerance())
	if res.NumErrors != 0 {
		t.Errorf("Expected no errors, got %d", res.NumErrors)
	}
	if res.FirstError != -1 {
		t.Errorf("Expected FirstError -1, got %d", res.FirstError)
	}
	if !res.IsAcceptable(StrictTolerance()) {
		t.Error("Matching arrays reported unacceptable")
	}
	if !strings.HasPrefix(res.String(), "PASS") {
		t.Errorf("Expected PASS summary, got %q", res.String())
	}

	actual[2] = 3.5
	res = VerifyFloat64Array(expected, actual, StrictTolerance())
	if res.NumErrors != 1 {
		t.Errorf("Expected 1 error, got %d", res.NumErrors)
	}
	if res.FirstError != 2 {
		t.Errorf("Expected FirstError 2, got %d", res.FirstError)
	}
	if res.MaxAbsError != 0.5 {
		t.Errorf("Expected MaxAbsError 0.5, got %v", res.MaxAbsError)
	}
	if res.IsAcceptable(StrictTolerance()) {
		t.Error("Mismatched arrays reported acceptable")
	}
	if !strings.HasPrefix(res.String(), "FAIL") {
		t.Errorf("Expected FAIL summary, got %q", res.String())
	}

	// Length mismatch counts everything as an error.
	res = VerifyFloat64Array(expected, actual[:3], StrictTolerance())
	if res.NumErrors != len(expected) {
		t.Errorf("Expected %d errors for length mismatch, got %d", len(expected), res.NumErrors)
	}
}

func TestVerifyComplex128Array(t *testing.T) {
	expected := []complex128{1 + 1i, 2 - 2i}
	actual := []complex128{1 + 1i, 2 - 2i}
	res := VerifyComplex128Array(expected, actual, StrictTolerance())
	if res.NumErrors != 0 {
		t.Errorf("Expected no errors, got %d", res.NumErrors)
	}

	actual[1] = 2 + 2i
	res = VerifyComplex128Array(expected, actual, StrictTolerance())
	if res.NumErrors != 1 || res.FirstError != 1 {
		t.Errorf("Expected 1 error at index 1, got %d at %d", res.NumErrors, res.FirstError)
	}
}
