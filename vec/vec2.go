package vec

import "fmt"

// Vec2 is a two-axis vector (x, y) on the plane.
type Vec2[T Scalar] [2]T

// New2 returns the vector (x, y).
func New2[T Scalar](x, y T) Vec2[T] { return Vec2[T]{x, y} }

// X returns axis 0.
func (v Vec2[T]) X() T { return v[0] }

// Y returns axis 1.
func (v Vec2[T]) Y() T { return v[1] }

// SetX sets axis 0.
func (v *Vec2[T]) SetX(x T) { v[0] = x }

// SetY sets axis 1.
func (v *Vec2[T]) SetY(y T) { v[1] = y }

// Len returns 2.
func (Vec2[T]) Len() int { return 2 }

// Axis returns axis i.
func (v Vec2[T]) Axis(i int) T { return v[i] }

// SetAxis sets axis i to x.
func (v *Vec2[T]) SetAxis(i int, x T) { v[i] = x }

// Values returns the axes as a new slice.
func (v Vec2[T]) Values() []T { return append([]T(nil), v[:]...) }

// Apply replaces every axis with fn(axis) and returns v.
func (v *Vec2[T]) Apply(fn func(T) T) *Vec2[T] {
	apply1(v[:], fn)
	return v
}

// ApplyWith replaces axis i with fn(v[i], w[i]) and returns v.
// fn must not depend on the order in which axes are visited.
func (v *Vec2[T]) ApplyWith(fn func(T, T) T, w Vec2[T]) *Vec2[T] {
	apply2(v[:], w[:], fn)
	return v
}

// AddInPlace adds w to v axis by axis and returns v.
func (v *Vec2[T]) AddInPlace(w Vec2[T]) *Vec2[T] { return v.ApplyWith(add[T], w) }

// SubInPlace subtracts w from v axis by axis and returns v.
func (v *Vec2[T]) SubInPlace(w Vec2[T]) *Vec2[T] { return v.ApplyWith(sub[T], w) }

// MulInPlace multiplies v by w axis by axis and returns v.
func (v *Vec2[T]) MulInPlace(w Vec2[T]) *Vec2[T] { return v.ApplyWith(mul[T], w) }

// DivInPlace divides v by w axis by axis and returns v.
// Integer division by a zero axis panics.
func (v *Vec2[T]) DivInPlace(w Vec2[T]) *Vec2[T] { return v.ApplyWith(div[T], w) }

// Add returns v + w.
func (v Vec2[T]) Add(w Vec2[T]) Vec2[T] { return *v.AddInPlace(w) }

// Sub returns v - w.
func (v Vec2[T]) Sub(w Vec2[T]) Vec2[T] { return *v.SubInPlace(w) }

// Mul returns the axis-wise product of v and w.
func (v Vec2[T]) Mul(w Vec2[T]) Vec2[T] { return *v.MulInPlace(w) }

// Div returns the axis-wise quotient of v and w.
func (v Vec2[T]) Div(w Vec2[T]) Vec2[T] { return *v.DivInPlace(w) }

// Min returns the axis-wise minimum of v and w.
func (v Vec2[T]) Min(w Vec2[T]) Vec2[T] { return *v.ApplyWith(minOf[T], w) }

// Max returns the axis-wise maximum of v and w.
func (v Vec2[T]) Max(w Vec2[T]) Vec2[T] { return *v.ApplyWith(maxOf[T], w) }

// Clamp limits every axis of v to the range given by the same axis of lo and hi.
func (v Vec2[T]) Clamp(lo, hi Vec2[T]) Vec2[T] { return v.Min(hi).Max(lo) }

// Abs returns the axis-wise absolute value.
func (v Vec2[T]) Abs() Vec2[T] { return *v.Apply(abs[T]) }

// Signum returns -1, 0 or 1 for every axis.
func (v Vec2[T]) Signum() Vec2[T] { return *v.Apply(signum[T]) }

// Neg returns -v.
func (v Vec2[T]) Neg() Vec2[T] { return *v.Apply(neg[T]) }

// Scale returns v with every axis multiplied by k.
func (v Vec2[T]) Scale(k T) Vec2[T] { return v.Mul(Vec2[T]{k, k}) }

// Sum returns x + y.
func (v Vec2[T]) Sum() T { return sumOf(v[:]) }

// Prod returns x * y.
func (v Vec2[T]) Prod() T { return prodOf(v[:]) }

// MinAxis returns the smallest axis value.
func (v Vec2[T]) MinAxis() T { return minAxis(v[:]) }

// MaxAxis returns the largest axis value.
func (v Vec2[T]) MaxAxis() T { return maxAxis(v[:]) }

// IsZero reports whether every axis is zero.
func (v Vec2[T]) IsZero() bool { return isZero(v[:]) }

// Equal reports whether v == w.
func (v Vec2[T]) Equal(w Vec2[T]) bool { return v == w }

// Compare orders v and w lexicographically, x first.
// It returns -1, 0 or +1.
func (v Vec2[T]) Compare(w Vec2[T]) int { return compareAxes(v[:], w[:]) }

// Less reports whether v sorts before w.
func (v Vec2[T]) Less(w Vec2[T]) bool { return v.Compare(w) < 0 }

// NearlyEqual reports whether every axis of v and w is equal within eps.
func (v Vec2[T]) NearlyEqual(w Vec2[T], eps float64) bool {
	return nearlyEqualAxes(v[:], w[:], eps)
}

// Distance returns the Manhattan distance between v and w.
func (v Vec2[T]) Distance(w Vec2[T]) T { return v.ApplyWith(absDiff[T], w).Sum() }

// Dot returns the dot product of v and w.
func (v Vec2[T]) Dot(w Vec2[T]) T { return v.Mul(w).Sum() }

// RotateLeft rotates v by 90 degrees counterclockwise about the origin,
// (x, y) -> (-y, x), and returns v.
func (v *Vec2[T]) RotateLeft() *Vec2[T] {
	v[0], v[1] = -v[1], v[0]
	return v
}

// RotateRight rotates v by 90 degrees clockwise about the origin,
// (x, y) -> (y, -x), and returns v.
func (v *Vec2[T]) RotateRight() *Vec2[T] {
	v[0], v[1] = v[1], -v[0]
	return v
}

// Adjacent returns the four axis-aligned neighbors of v at distance 1 in the
// order (x, y-1), (x-1, y), (x+1, y), (x, y+1).
func (v Vec2[T]) Adjacent() [4]Vec2[T] {
	return [4]Vec2[T]{
		v.Sub(Vec2[T]{0, 1}),
		v.Sub(Vec2[T]{1, 0}),
		v.Add(Vec2[T]{1, 0}),
		v.Add(Vec2[T]{0, 1}),
	}
}

// Swap exchanges the contents of v and w.
func (v *Vec2[T]) Swap(w *Vec2[T]) { *v, *w = *w, *v }

// Hash returns a digest consistent with ==. Each axis occupies a 32-bit slot.
func (v Vec2[T]) Hash() uint64 { return hashAxes(v[:]) }

// String formats v as "Vector2(x, y)".
func (v Vec2[T]) String() string { return formatAxes(v[:]) }

// MarshalText encodes v as two space-separated tokens.
func (v Vec2[T]) MarshalText() ([]byte, error) { return appendTokens(nil, v[:]), nil }

// UnmarshalText decodes exactly two whitespace-separated tokens.
// v is left unchanged on error.
func (v *Vec2[T]) UnmarshalText(text []byte) error { return unmarshalAxes(v[:], text) }

// Scan implements fmt.Scanner, reading two tokens. v is left unchanged on error.
func (v *Vec2[T]) Scan(state fmt.ScanState, _ rune) error {
	var tmp Vec2[T]
	if err := decodeAxes(tmp[:], stateTokens(state)); err != nil {
		return err
	}
	*v = tmp
	return nil
}

// Parse2 reads the first two whitespace-separated tokens of s.
func Parse2[T Scalar](s string) (Vec2[T], error) {
	var v Vec2[T]
	if err := decodeAxes(v[:], fieldsOf(s)); err != nil {
		return Vec2[T]{}, err
	}
	return v, nil
}
