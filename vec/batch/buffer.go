package batch

// ensureLen returns a slice with length n, reusing the capacity of buf when
// it is large enough.
func ensureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

func mustMatch(op string, n, m int) {
	if n != m {
		panic("batch: " + op + ": length mismatch")
	}
}
