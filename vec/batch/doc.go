// Package batch stores many float64 vectors as structure-of-arrays and runs
// elementwise work on them through the SIMD-dispatched kernels of
// github.com/cwbudde/algo-vecmath.
//
// Every batch result equals the corresponding scalar vec operation applied
// point by point. Batches combined in one call must have equal length;
// mismatched lengths panic, the same way the underlying kernels do.
package batch
