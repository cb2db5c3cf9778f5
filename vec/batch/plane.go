package batch

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-ndvec/vec"
)

// Plane is a batch of 2D vectors. Point i is (X[i], Y[i]).
type Plane struct {
	X, Y []float64
}

// NewPlane returns a batch of n zero vectors.
func NewPlane(n int) *Plane {
	return &Plane{X: make([]float64, n), Y: make([]float64, n)}
}

// FromVec2s copies vs into a new batch.
func FromVec2s(vs []vec.Vec2[float64]) *Plane {
	p := NewPlane(len(vs))
	for i, v := range vs {
		p.Set(i, v)
	}
	return p
}

// Len returns the number of points.
func (p *Plane) Len() int { return len(p.X) }

// At returns point i.
func (p *Plane) At(i int) vec.Vec2[float64] { return vec.New2(p.X[i], p.Y[i]) }

// Set stores v as point i.
func (p *Plane) Set(i int, v vec.Vec2[float64]) {
	p.X[i], p.Y[i] = v.X(), v.Y()
}

// Append adds vs to the end of the batch.
func (p *Plane) Append(vs ...vec.Vec2[float64]) {
	for _, v := range vs {
		p.X = append(p.X, v.X())
		p.Y = append(p.Y, v.Y())
	}
}

// Vectors returns the batch as a slice of vectors.
func (p *Plane) Vectors() []vec.Vec2[float64] {
	out := make([]vec.Vec2[float64], p.Len())
	for i := range out {
		out[i] = p.At(i)
	}
	return out
}

// Lengths writes the Euclidean length of every point to dst, reusing its
// capacity, and returns it.
func (p *Plane) Lengths(dst []float64) []float64 {
	dst = ensureLen(dst, p.Len())
	vecmath.Magnitude(dst, p.X, p.Y)
	return dst
}

// SquaredLengths writes x*x + y*y for every point to dst and returns it.
func (p *Plane) SquaredLengths(dst []float64) []float64 {
	dst = ensureLen(dst, p.Len())
	vecmath.Power(dst, p.X, p.Y)
	return dst
}

// MulInPlace multiplies every point of p axis by axis with the matching point of q.
func (p *Plane) MulInPlace(q *Plane) *Plane {
	mustMatch("mul", p.Len(), q.Len())
	vecmath.MulBlockInPlace(p.X, q.X)
	vecmath.MulBlockInPlace(p.Y, q.Y)
	return p
}

// MulPlanes stores the axis-wise products of a and b in dst and returns it.
// A nil dst allocates a new batch.
func MulPlanes(dst, a, b *Plane) *Plane {
	mustMatch("mul", a.Len(), b.Len())
	if dst == nil {
		dst = &Plane{}
	}
	dst.X = ensureLen(dst.X, a.Len())
	dst.Y = ensureLen(dst.Y, a.Len())
	vecmath.MulBlock(dst.X, a.X, b.X)
	vecmath.MulBlock(dst.Y, a.Y, b.Y)
	return dst
}

// DotPlanes writes the dot product of each point pair of a and b to dst.
func DotPlanes(dst []float64, a, b *Plane) []float64 {
	mustMatch("dot", a.Len(), b.Len())
	dst = ensureLen(dst, a.Len())
	vecmath.MulBlock(dst, a.X, b.X)
	for i := range dst {
		dst[i] += a.Y[i] * b.Y[i]
	}
	return dst
}
