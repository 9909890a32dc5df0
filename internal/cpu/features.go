// Package cpu reports the CPU capabilities used to pick a butterfly kernel.
package cpu

import (
	"runtime"
	"sync"

	"golang.org/x/sys/cpu"
)

// Features describes CPU capabilities relevant to kernel selection.
type Features struct {
	HasSSE2      bool
	HasAVX2      bool
	HasAVX512    bool
	HasNEON      bool
	ForceGeneric bool // Disables unrolled kernels regardless of hardware.
	Architecture string
}

// HasVectorUnit reports whether the CPU has wide vector registers that the
// unrolled kernels keep busy.
func (f Features) HasVectorUnit() bool {
	return f.HasAVX2 || f.HasAVX512 || f.HasNEON
}

var (
	detectOnce sync.Once
	detected   Features
)

// DetectFeatures reports the available CPU features for the current process.
// Detection runs once; later calls return the cached result.
func DetectFeatures() Features {
	detectOnce.Do(func() {
		detected = Features{
			HasSSE2:      cpu.X86.HasSSE2,
			HasAVX2:      cpu.X86.HasAVX2,
			HasAVX512:    cpu.X86.HasAVX512F,
			HasNEON:      cpu.ARM64.HasASIMD,
			Architecture: runtime.GOARCH,
		}
	})
	return detected
}

// Generic returns a feature set with every optional capability disabled.
func Generic() Features {
	return Features{ForceGeneric: true, Architecture: runtime.GOARCH}
}
