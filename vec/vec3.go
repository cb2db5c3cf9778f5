package vec

import "fmt"

// Vec3 is a three-axis vector (x, y, z).
type Vec3[T Scalar] [3]T

// New3 returns the vector (x, y, z).
func New3[T Scalar](x, y, z T) Vec3[T] { return Vec3[T]{x, y, z} }

// X returns axis 0.
func (v Vec3[T]) X() T { return v[0] }

// Y returns axis 1.
func (v Vec3[T]) Y() T { return v[1] }

// Z returns axis 2.
func (v Vec3[T]) Z() T { return v[2] }

// SetX sets axis 0.
func (v *Vec3[T]) SetX(x T) { v[0] = x }

// SetY sets axis 1.
func (v *Vec3[T]) SetY(y T) { v[1] = y }

// SetZ sets axis 2.
func (v *Vec3[T]) SetZ(z T) { v[2] = z }

// Len returns 3.
func (Vec3[T]) Len() int { return 3 }

// Axis returns axis i.
func (v Vec3[T]) Axis(i int) T { return v[i] }

// SetAxis sets axis i to x.
func (v *Vec3[T]) SetAxis(i int, x T) { v[i] = x }

// Values returns the axes as a new slice.
func (v Vec3[T]) Values() []T { return append([]T(nil), v[:]...) }

// Apply replaces every axis with fn(axis) and returns v.
func (v *Vec3[T]) Apply(fn func(T) T) *Vec3[T] {
	apply1(v[:], fn)
	return v
}

// ApplyWith replaces axis i with fn(v[i], w[i]) and returns v.
// fn must not depend on the order in which axes are visited.
func (v *Vec3[T]) ApplyWith(fn func(T, T) T, w Vec3[T]) *Vec3[T] {
	apply2(v[:], w[:], fn)
	return v
}

// AddInPlace adds w to v axis by axis and returns v.
func (v *Vec3[T]) AddInPlace(w Vec3[T]) *Vec3[T] { return v.ApplyWith(add[T], w) }

// SubInPlace subtracts w from v axis by axis and returns v.
func (v *Vec3[T]) SubInPlace(w Vec3[T]) *Vec3[T] { return v.ApplyWith(sub[T], w) }

// MulInPlace multiplies v by w axis by axis and returns v.
func (v *Vec3[T]) MulInPlace(w Vec3[T]) *Vec3[T] { return v.ApplyWith(mul[T], w) }

// DivInPlace divides v by w axis by axis and returns v.
// Integer division by a zero axis panics.
func (v *Vec3[T]) DivInPlace(w Vec3[T]) *Vec3[T] { return v.ApplyWith(div[T], w) }

// Add returns v + w.
func (v Vec3[T]) Add(w Vec3[T]) Vec3[T] { return *v.AddInPlace(w) }

// Sub returns v - w.
func (v Vec3[T]) Sub(w Vec3[T]) Vec3[T] { return *v.SubInPlace(w) }

// Mul returns the axis-wise product of v and w.
func (v Vec3[T]) Mul(w Vec3[T]) Vec3[T] { return *v.MulInPlace(w) }

// Div returns the axis-wise quotient of v and w.
func (v Vec3[T]) Div(w Vec3[T]) Vec3[T] { return *v.DivInPlace(w) }

// Min returns the axis-wise minimum of v and w.
func (v Vec3[T]) Min(w Vec3[T]) Vec3[T] { return *v.ApplyWith(minOf[T], w) }

// Max returns the axis-wise maximum of v and w.
func (v Vec3[T]) Max(w Vec3[T]) Vec3[T] { return *v.ApplyWith(maxOf[T], w) }

// Clamp limits every axis of v to the range given by the same axis of lo and hi.
func (v Vec3[T]) Clamp(lo, hi Vec3[T]) Vec3[T] { return v.Min(hi).Max(lo) }

// Abs returns the axis-wise absolute value.
func (v Vec3[T]) Abs() Vec3[T] { return *v.Apply(abs[T]) }

// Signum returns -1, 0 or 1 for every axis.
func (v Vec3[T]) Signum() Vec3[T] { return *v.Apply(signum[T]) }

// Neg returns -v.
func (v Vec3[T]) Neg() Vec3[T] { return *v.Apply(neg[T]) }

// Scale returns v with every axis multiplied by k.
func (v Vec3[T]) Scale(k T) Vec3[T] { return v.Mul(Vec3[T]{k, k, k}) }

// Sum returns x + y + z.
func (v Vec3[T]) Sum() T { return sumOf(v[:]) }

// Prod returns x * y * z.
func (v Vec3[T]) Prod() T { return prodOf(v[:]) }

// MinAxis returns the smallest axis value.
func (v Vec3[T]) MinAxis() T { return minAxis(v[:]) }

// MaxAxis returns the largest axis value.
func (v Vec3[T]) MaxAxis() T { return maxAxis(v[:]) }

// IsZero reports whether every axis is zero.
func (v Vec3[T]) IsZero() bool { return isZero(v[:]) }

// Equal reports whether v == w.
func (v Vec3[T]) Equal(w Vec3[T]) bool { return v == w }

// Compare orders v and w lexicographically, x first.
// It returns -1, 0 or +1.
func (v Vec3[T]) Compare(w Vec3[T]) int { return compareAxes(v[:], w[:]) }

// Less reports whether v sorts before w.
func (v Vec3[T]) Less(w Vec3[T]) bool { return v.Compare(w) < 0 }

// NearlyEqual reports whether every axis of v and w is equal within eps.
func (v Vec3[T]) NearlyEqual(w Vec3[T], eps float64) bool {
	return nearlyEqualAxes(v[:], w[:], eps)
}

// Distance returns the Manhattan distance between v and w.
func (v Vec3[T]) Distance(w Vec3[T]) T { return v.ApplyWith(absDiff[T], w).Sum() }

// Dot returns the dot product of v and w.
func (v Vec3[T]) Dot(w Vec3[T]) T { return v.Mul(w).Sum() }

// Cross returns the cross product v × w.
func (v Vec3[T]) Cross(w Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

// Swap exchanges the contents of v and w.
func (v *Vec3[T]) Swap(w *Vec3[T]) { *v, *w = *w, *v }

// Hash returns a digest consistent with ==. Each axis occupies a 21-bit slot.
func (v Vec3[T]) Hash() uint64 { return hashAxes(v[:]) }

// String formats v as "Vector3(x, y, z)".
func (v Vec3[T]) String() string { return formatAxes(v[:]) }

// MarshalText encodes v as three space-separated tokens.
func (v Vec3[T]) MarshalText() ([]byte, error) { return appendTokens(nil, v[:]), nil }

// UnmarshalText decodes exactly three whitespace-separated tokens.
// v is left unchanged on error.
func (v *Vec3[T]) UnmarshalText(text []byte) error { return unmarshalAxes(v[:], text) }

// Scan implements fmt.Scanner, reading three tokens. v is left unchanged on error.
func (v *Vec3[T]) Scan(state fmt.ScanState, _ rune) error {
	var tmp Vec3[T]
	if err := decodeAxes(tmp[:], stateTokens(state)); err != nil {
		return err
	}
	*v = tmp
	return nil
}

// Parse3 reads the first three whitespace-separated tokens of s.
func Parse3[T Scalar](s string) (Vec3[T], error) {
	var v Vec3[T]
	if err := decodeAxes(v[:], fieldsOf(s)); err != nil {
		return Vec3[T]{}, err
	}
	return v, nil
}
