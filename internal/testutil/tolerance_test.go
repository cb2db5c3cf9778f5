package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	a := []float64{1.0, 2.0, 3.0}
	b := []float64{1.0, 2.1, 3.0}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}
}

func TestMaxAbsDiffIntegers(t *testing.T) {
	d, err := MaxAbsDiff([]int{1, -4, 3}, []int{1, 2, 3})
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}
	if d != 6 {
		t.Fatalf("MaxAbsDiff = %v, want 6", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	_, err := MaxAbsDiff([]float64{1}, []float64{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestRequireAxesNearlyEqual(t *testing.T) {
	RequireAxesNearlyEqual(t, []float32{1, 2}, []float32{1, 2.0000001}, 1e-5)
	RequireFinite(t, []float64{0, -1, 1e300})
}

func TestDeterministicIntsRange(t *testing.T) {
	rows := DeterministicInts(7, 50, 3, -5, 5)
	if len(rows) != 50 {
		t.Fatalf("rows = %d, want 50", len(rows))
	}
	for i, row := range rows {
		if len(row) != 3 {
			t.Fatalf("row %d has %d values, want 3", i, len(row))
		}
		for _, v := range row {
			if v < -5 || v > 5 {
				t.Fatalf("row %d: value %d outside [-5, 5]", i, v)
			}
		}
	}

	again := DeterministicInts(7, 50, 3, -5, 5)
	for i := range rows {
		for j := range rows[i] {
			if rows[i][j] != again[i][j] {
				t.Fatalf("seeded rows differ at %d/%d", i, j)
			}
		}
	}
}

func TestDeterministicFloatsAmplitude(t *testing.T) {
	for _, row := range DeterministicFloats(3, 20, 2, 10) {
		for _, v := range row {
			if math.Abs(v) > 10 {
				t.Fatalf("value %v exceeds amplitude", v)
			}
		}
	}
}
