package blasbridge

import "testing"

func TestFlagChars(t *testing.T) {
	transCases := []struct {
		t    Transpose
		want byte
	}{
		{NoTrans, 'N'},
		{Trans, 'T'},
		{ConjTrans, 'C'},
		{ConjNoTrans, 'R'},
	}
	for _, tt := range transCases {
		if got := transChar(tt.t); got != tt.want {
			t.Errorf("transChar(%d) = %q, want %q", int(tt.t), got, tt.want)
		}
	}

	if got := uploChar(Upper); got != 'U' {
		t.Errorf("uploChar(Upper) = %q, want 'U'", got)
	}
	if got := uploChar(Lower); got != 'L' {
		t.Errorf("uploChar(Lower) = %q, want 'L'", got)
	}
	if got := diagChar(NonUnit); got != 'N' {
		t.Errorf("diagChar(NonUnit) = %q, want 'N'", got)
	}
	if got := diagChar(Unit); got != 'U' {
		t.Errorf("diagChar(Unit) = %q, want 'U'", got)
	}
	if got := sideChar(Left); got != 'L' {
		t.Errorf("sideChar(Left) = %q, want 'L'", got)
	}
	if got := sideChar(Right); got != 'R' {
		t.Errorf("sideChar(Right) = %q, want 'R'", got)
	}
}

func TestEnumValues(t *testing.T) {
	// The numeric values are part of the API contract with cblas.h.
	values := []struct {
		name string
		got  int
		want int
	}{
		{"RowMajor", int(RowMajor), 101},
		{"ColMajor", int(ColMajor), 102},
		{"NoTrans", int(NoTrans), 111},
		{"Trans", int(Trans), 112},
		{"ConjTrans", int(ConjTrans), 113},
		{"ConjNoTrans", int(ConjNoTrans), 114},
		{"Upper", int(Upper), 121},
		{"Lower", int(Lower), 122},
		{"NonUnit", int(NonUnit), 131},
		{"Unit", int(Unit), 132},
		{"Left", int(Left), 141},
		{"Right", int(Right), 142},
	}
	for _, v := range values {
		if v.got != v.want {
			t.Errorf("%s = %d, want %d", v.name, v.got, v.want)
		}
	}
}

func TestValidPredicates(t *testing.T) {
	if Order(0).valid() || Order(103).valid() {
		t.Error("out of range Order reported valid")
	}
	if !RowMajor.valid() || !ColMajor.valid() {
		t.Error("Expected RowMajor and ColMajor to be valid")
	}
	if Transpose(110).valid() || Transpose(115).valid() {
		t.Error("out of range Transpose reported valid")
	}
	for _, tr := range []Transpose{NoTrans, Trans, ConjTrans, ConjNoTrans} {
		if !tr.valid() {
			t.Errorf("Expected Transpose %d to be valid", int(tr))
		}
	}
	if Uplo(0).valid() || Diag(0).valid() || Side(0).valid() {
		t.Error("zero valued flag reported valid")
	}
}

func TestNormalizeReal(t *testing.T) {
	cases := []struct {
		in, want Transpose
	}{
		{NoTrans, NoTrans},
		{Trans, Trans},
		{ConjTrans, Trans},
		{ConjNoTrans, NoTrans},
	}
	for _, c := range cases {
		if got := c.in.normalizeReal(); got != c.want {
			t.Errorf("normalizeReal(%d) = %d, want %d", int(c.in), int(got), int(c.want))
		}
	}
}

func TestFlipHelpers(t *testing.T) {
	if flipUplo(Upper) != Lower || flipUplo(Lower) != Upper {
		t.Error("flipUplo did not exchange the triangles")
	}
	if flipSide(Left) != Right || flipSide(Right) != Left {
		t.Error("flipSide did not exchange the sides")
	}

	realCases := []struct {
		in, want Transpose
	}{
		{NoTrans, Trans},
		{Trans, NoTrans},
		{ConjTrans, NoTrans},
		{ConjNoTrans, Trans},
	}
	for _, c := range realCases {
		if got := flipTransReal(c.in); got != c.want {
			t.Errorf("flipTransReal(%d) = %d, want %d", int(c.in), int(got), int(c.want))
		}
	}

	conjCases := []struct {
		in, want Transpose
	}{
		{NoTrans, Trans},
		{Trans, NoTrans},
		{ConjTrans, ConjNoTrans},
		{ConjNoTrans, ConjTrans},
	}
	for _, c := range conjCases {
		if got := flipTransConj(c.in); got != c.want {
			t.Errorf("flipTransConj(%d) = %d, want %d", int(c.in), int(got), int(c.want))
		}
	}

	if flipTransHerk(NoTrans) != ConjTrans {
		t.Error("flipTransHerk(NoTrans) != ConjTrans")
	}
	if flipTransHerk(ConjTrans) != NoTrans {
		t.Error("flipTransHerk(ConjTrans) != NoTrans")
	}
}

func TestOpDims(t *testing.T) {
	cases := []struct {
		t                  Transpose
		r, c               int
		wantRows, wantCols int
	}{
		{NoTrans, 3, 5, 3, 5},
		{ConjNoTrans, 3, 5, 3, 5},
		{Trans, 3, 5, 5, 3},
		{ConjTrans, 3, 5, 5, 3},
	}
	for _, c := range cases {
		rows, cols := opDims(c.t, c.r, c.c)
		if rows != c.wantRows || cols != c.wantCols {
			t.Errorf("opDims(%d, %d, %d) = (%d, %d), want (%d, %d)",
				int(c.t), c.r, c.c, rows, cols, c.wantRows, c.wantCols)
		}
	}
}
