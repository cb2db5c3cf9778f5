package testutil

import (
	"fmt"
	"math"
	"testing"

	"golang.org/x/exp/constraints"
)

// Number is any element type a vector can hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// RequireAxesNearlyEqual fails t if got and want differ in length or if any
// axis pair differs by more than eps (absolute tolerance).
func RequireAxesNearlyEqual[T Number](t *testing.T, got, want []T, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("axis count mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(float64(got[i]) - float64(want[i]))
		if diff > eps {
			t.Fatalf("axis %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any value is NaN or Inf.
func RequireFinite[T constraints.Float](t *testing.T, data []T) {
	t.Helper()
	for i, v := range data {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the largest absolute difference between a and b.
// It returns an error if the slices differ in length.
func MaxAbsDiff[T Number](a, b []T) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		maxDiff = max(maxDiff, math.Abs(float64(a[i])-float64(b[i])))
	}
	return maxDiff, nil
}
