package refblas

import (
	"strings"

	"golang.org/x/sys/cpu"
)

// CPUFeatures tracks the instruction set extensions that steer kernel
// tile sizing.
type CPUFeatures struct {
	HasSSE4   bool
	HasAVX    bool
	HasAVX2   bool
	HasAVX512 bool
	HasFMA    bool
	HasNEON   bool
}

var cpuFeatures CPUFeatures

// Panel edges for the blocked real gemm, fixed once at start-up.
var (
	block32 blockSizes
	block64 blockSizes
)

func init() {
	detectCPUFeatures()
	block32 = gemmBlocking(4)
	block64 = gemmBlocking(8)
}

// detectCPUFeatures populates the global cpuFeatures struct.
func detectCPUFeatures() {
	cpuFeatures = CPUFeatures{
		HasSSE4:   cpu.X86.HasSSE41 || cpu.X86.HasSSE42,
		HasAVX:    cpu.X86.HasAVX,
		HasAVX2:   cpu.X86.HasAVX2,
		HasAVX512: cpu.X86.HasAVX512F,
		HasFMA:    cpu.X86.HasFMA,
		HasNEON:   cpu.ARM64.HasASIMD,
	}
}

// Features returns the detected CPU feature set.
func Features() CPUFeatures {
	return cpuFeatures
}

// KernelClass names the widest SIMD class detected. The kernels here are
// portable Go either way; the class only steers tile sizes.
func KernelClass() string {
	switch {
	case cpuFeatures.HasAVX512:
		return "avx512"
	case cpuFeatures.HasAVX2 && cpuFeatures.HasFMA:
		return "avx2"
	case cpuFeatures.HasNEON:
		return "neon"
	case cpuFeatures.HasSSE4:
		return "sse4"
	default:
		return "generic"
	}
}

// String lists the detected extensions.
func (f CPUFeatures) String() string {
	var names []string
	if f.HasSSE4 {
		names = append(names, "SSE4")
	}
	if f.HasAVX {
		names = append(names, "AVX")
	}
	if f.HasAVX2 {
		names = append(names, "AVX2")
	}
	if f.HasFMA {
		names = append(names, "FMA")
	}
	if f.HasAVX512 {
		names = append(names, "AVX512F")
	}
	if f.HasNEON {
		names = append(names, "NEON")
	}
	if len(names) == 0 {
		return "no SIMD extensions detected"
	}
	return strings.Join(names, ", ")
}

type blockSizes struct {
	mc, kc, nc int
}

// cacheSizes guesses per-core L1 data and L2 capacities from the feature
// level. golang.org/x/sys/cpu reports features, not cache geometry, so
// the guess keys off the microarchitecture class the features imply.
func cacheSizes() (l1, l2 int) {
	switch {
	case cpuFeatures.HasAVX512:
		return 48 << 10, 1 << 20
	case cpuFeatures.HasAVX2, cpuFeatures.HasNEON:
		return 32 << 10, 512 << 10
	default:
		return 32 << 10, 256 << 10
	}
}

// gemmBlocking sizes the gemm panels: kc spans L1, an mc x kc tile of A
// takes about half of L2, and nc bounds the slab of B walked per pass.
func gemmBlocking(elemSize int) blockSizes {
	l1, l2 := cacheSizes()
	kc := clampInt(l1/(4*elemSize), 64, 512)
	mc := clampInt(l2/(2*kc*elemSize), 32, 768)
	nc := clampInt(l2/(kc*elemSize), 128, 2048)
	return blockSizes{mc: mc, kc: kc, nc: nc}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
