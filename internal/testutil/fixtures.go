package testutil

import "math/rand"

// DeterministicInts returns n rows of dim integers drawn uniformly from
// [lo, hi] with a fixed seed.
func DeterministicInts(seed int64, n, dim int, lo, hi int64) [][]int64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]int64, n)
	for i := range out {
		row := make([]int64, dim)
		for j := range row {
			row[j] = lo + rng.Int63n(hi-lo+1)
		}
		out[i] = row
	}
	return out
}

// DeterministicFloats returns n rows of dim values in [-amplitude, amplitude)
// with a fixed seed.
func DeterministicFloats(seed int64, n, dim int, amplitude float64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]float64, n)
	for i := range out {
		row := make([]float64, dim)
		for j := range row {
			row[j] = (rng.Float64()*2 - 1) * amplitude
		}
		out[i] = row
	}
	return out
}
