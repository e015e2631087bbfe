// Package cpu reports the host capabilities that matter for floating-point
// throughput: vector extensions and fused multiply-add support, which change
// how the compiler contracts the complex product.
package cpu

import (
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Features describes CPU capabilities relevant to the arithmetic benchmarks.
type Features struct {
	HasSSE2   bool
	HasAVX2   bool
	HasAVX512 bool
	HasFMA    bool
	HasNEON   bool

	Architecture string
}

// DetectFeatures reports the available CPU features for the current process.
// Fields for foreign architectures stay false, so the result is meaningful
// on every GOARCH.
func DetectFeatures() Features {
	return Features{
		HasSSE2:      cpu.X86.HasSSE2,
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512,
		HasFMA:       cpu.X86.HasFMA,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}

// String returns a space-joined list of the detected capability tags, or
// "generic" when none apply.
func (f Features) String() string {
	tags := make([]string, 0, 5)

	if f.HasSSE2 {
		tags = append(tags, "sse2")
	}

	if f.HasAVX2 {
		tags = append(tags, "avx2")
	}

	if f.HasAVX512 {
		tags = append(tags, "avx512")
	}

	if f.HasFMA {
		tags = append(tags, "fma")
	}

	if f.HasNEON {
		tags = append(tags, "neon")
	}

	if len(tags) == 0 {
		return "generic"
	}

	return strings.Join(tags, " ")
}
