package batch

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-ndvec/vec"
)

// Space is a batch of 3D vectors. Point i is (X[i], Y[i], Z[i]).
type Space struct {
	X, Y, Z []float64
}

// NewSpace returns a batch of n zero vectors.
func NewSpace(n int) *Space {
	return &Space{X: make([]float64, n), Y: make([]float64, n), Z: make([]float64, n)}
}

// FromVec3s copies vs into a new batch.
func FromVec3s(vs []vec.Vec3[float64]) *Space {
	s := NewSpace(len(vs))
	for i, v := range vs {
		s.Set(i, v)
	}
	return s
}

// Len returns the number of points.
func (s *Space) Len() int { return len(s.X) }

// At returns point i.
func (s *Space) At(i int) vec.Vec3[float64] { return vec.New3(s.X[i], s.Y[i], s.Z[i]) }

// Set stores v as point i.
func (s *Space) Set(i int, v vec.Vec3[float64]) {
	s.X[i], s.Y[i], s.Z[i] = v.X(), v.Y(), v.Z()
}

// Append adds vs to the end of the batch.
func (s *Space) Append(vs ...vec.Vec3[float64]) {
	for _, v := range vs {
		s.X = append(s.X, v.X())
		s.Y = append(s.Y, v.Y())
		s.Z = append(s.Z, v.Z())
	}
}

// Vectors returns the batch as a slice of vectors.
func (s *Space) Vectors() []vec.Vec3[float64] {
	out := make([]vec.Vec3[float64], s.Len())
	for i := range out {
		out[i] = s.At(i)
	}
	return out
}

// MulInPlace multiplies every point of s axis by axis with the matching point of t.
func (s *Space) MulInPlace(t *Space) *Space {
	mustMatch("mul", s.Len(), t.Len())
	vecmath.MulBlockInPlace(s.X, t.X)
	vecmath.MulBlockInPlace(s.Y, t.Y)
	vecmath.MulBlockInPlace(s.Z, t.Z)
	return s
}

// MulSpaces stores the axis-wise products of a and b in dst and returns it.
// A nil dst allocates a new batch.
func MulSpaces(dst, a, b *Space) *Space {
	mustMatch("mul", a.Len(), b.Len())
	if dst == nil {
		dst = &Space{}
	}
	n := a.Len()
	dst.X, dst.Y, dst.Z = ensureLen(dst.X, n), ensureLen(dst.Y, n), ensureLen(dst.Z, n)
	vecmath.MulBlock(dst.X, a.X, b.X)
	vecmath.MulBlock(dst.Y, a.Y, b.Y)
	vecmath.MulBlock(dst.Z, a.Z, b.Z)
	return dst
}

// DotSpaces writes the dot product of each point pair of a and b to dst.
// scratch is reused for the y and z products when large enough.
func DotSpaces(dst, scratch []float64, a, b *Space) []float64 {
	mustMatch("dot", a.Len(), b.Len())
	n := a.Len()
	dst = ensureLen(dst, n)
	scratch = ensureLen(scratch, n)
	vecmath.MulBlock(dst, a.X, b.X)
	vecmath.MulBlock(scratch, a.Y, b.Y)
	for i := range dst {
		dst[i] += scratch[i]
	}
	vecmath.MulBlock(scratch, a.Z, b.Z)
	for i := range dst {
		dst[i] += scratch[i]
	}
	return dst
}
