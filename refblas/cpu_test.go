package refblas

import (
	"strings"
	"testing"
)

func TestKernelClass(t *testing.T) {
	valid := map[string]bool{
		"avx512":  true,
		"avx2":    true,
		"neon":    true,
		"sse4":    true,
		"generic": true,
	}
	if c := KernelClass(); !valid[c] {
		t.Errorf("KernelClass() = %q, not a known class", c)
	}
}

func TestFeaturesString(t *testing.T) {
	f := Features()
	s := f.String()
	if s == "" {
		t.Fatal("Features().String() is empty")
	}
	if f == (CPUFeatures{}) {
		if s != "no SIMD extensions detected" {
			t.Errorf("empty feature set renders as %q", s)
		}
		return
	}
	for _, c := range []struct {
		set  bool
		name string
	}{
		{f.HasSSE4, "SSE4"},
		{f.HasAVX, "AVX"},
		{f.HasAVX2, "AVX2"},
		{f.HasFMA, "FMA"},
		{f.HasAVX512, "AVX512F"},
		{f.HasNEON, "NEON"},
	} {
		if c.set && !strings.Contains(s, c.name) {
			t.Errorf("Features().String() = %q, missing %s", s, c.name)
		}
	}
}

func TestGemmBlockingBounds(t *testing.T) {
	for _, tc := range []struct {
		name string
		blk  blockSizes
	}{
		{"block32", block32},
		{"block64", block64},
	} {
		if tc.blk.kc < 64 || tc.blk.kc > 512 {
			t.Errorf("%s.kc = %d, outside [64, 512]", tc.name, tc.blk.kc)
		}
		if tc.blk.mc < 32 || tc.blk.mc > 768 {
			t.Errorf("%s.mc = %d, outside [32, 768]", tc.name, tc.blk.mc)
		}
		if tc.blk.nc < 128 || tc.blk.nc > 2048 {
			t.Errorf("%s.nc = %d, outside [128, 2048]", tc.name, tc.blk.nc)
		}
	}
	// Wider elements never earn a deeper k panel.
	if block64.kc > block32.kc {
		t.Errorf("block64.kc = %d exceeds block32.kc = %d", block64.kc, block32.kc)
	}
}

func TestClampInt(t *testing.T) {
	if got := clampInt(10, 64, 512); got != 64 {
		t.Errorf("clampInt(10, 64, 512) = %d, want 64", got)
	}
	if got := clampInt(9999, 64, 512); got != 512 {
		t.Errorf("clampInt(9999, 64, 512) = %d, want 512", got)
	}
	if got := clampInt(100, 64, 512); got != 100 {
		t.Errorf("clampInt(100, 64, 512) = %d, want 100", got)
	}
}

func TestCacheSizesOrdered(t *testing.T) {
	l1, l2 := cacheSizes()
	if l1 <= 0 || l2 < l1 {
		t.Errorf("cacheSizes() = (%d, %d), want 0 < l1 <= l2", l1, l2)
	}
}
