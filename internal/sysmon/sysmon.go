// Package sysmon reports host CPU capabilities relevant to the transform
// kernels, for the CLI's environment line in detailed output.
package sysmon

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Stats holds a snapshot of the host's compute characteristics.
type Stats struct {
	NumCPU  int
	HasAVX2 bool // x86 only; false elsewhere
	HasFMA  bool // x86 only; false elsewhere
	HasSSE4 bool // x86 only; false elsewhere
}

// Sample collects the current host capabilities. The x86 feature flags stay
// false on other architectures.
func Sample() Stats {
	return Stats{
		NumCPU:  runtime.NumCPU(),
		HasAVX2: cpu.X86.HasAVX2,
		HasFMA:  cpu.X86.HasFMA,
		HasSSE4: cpu.X86.HasSSE41,
	}
}

// VectorExtensions returns a short human-readable summary of the available
// SIMD extensions, or "none detected" when no known flag is set.
func (s Stats) VectorExtensions() string {
	switch {
	case s.HasAVX2 && s.HasFMA:
		return "AVX2+FMA"
	case s.HasAVX2:
		return "AVX2"
	case s.HasSSE4:
		return "SSE4.1"
	default:
		return "none detected"
	}
}
