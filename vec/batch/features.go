package batch

import "github.com/cwbudde/algo-vecmath/cpu"

// kernelLevels lists the SIMD levels the batch kernels can dispatch to, best first.
var kernelLevels = []cpu.SIMDLevel{cpu.SIMDAVX2, cpu.SIMDSSE2, cpu.SIMDNEON}

// Features reports the CPU features the batch kernels dispatch on.
func Features() cpu.Features {
	return cpu.DetectFeatures()
}

// Level returns the SIMD level selected for the current CPU.
func Level() cpu.SIMDLevel {
	return levelFor(Features())
}

func levelFor(f cpu.Features) cpu.SIMDLevel {
	for _, l := range kernelLevels {
		if cpu.Supports(f, l) {
			return l
		}
	}
	return cpu.SIMDNone
}
