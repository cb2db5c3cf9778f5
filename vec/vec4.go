package vec

import "fmt"

// Vec4 is a four-axis vector (x, y, z, w).
type Vec4[T Scalar] [4]T

// New4 returns the vector (x, y, z, w).
func New4[T Scalar](x, y, z, w T) Vec4[T] { return Vec4[T]{x, y, z, w} }

// X returns axis 0.
func (v Vec4[T]) X() T { return v[0] }

// Y returns axis 1.
func (v Vec4[T]) Y() T { return v[1] }

// Z returns axis 2.
func (v Vec4[T]) Z() T { return v[2] }

// W returns axis 3.
func (v Vec4[T]) W() T { return v[3] }

// SetX sets axis 0.
func (v *Vec4[T]) SetX(x T) { v[0] = x }

// SetY sets axis 1.
func (v *Vec4[T]) SetY(y T) { v[1] = y }

// SetZ sets axis 2.
func (v *Vec4[T]) SetZ(z T) { v[2] = z }

// SetW sets axis 3.
func (v *Vec4[T]) SetW(w T) { v[3] = w }

// Len returns 4.
func (Vec4[T]) Len() int { return 4 }

// Axis returns axis i.
func (v Vec4[T]) Axis(i int) T { return v[i] }

// SetAxis sets axis i to x.
func (v *Vec4[T]) SetAxis(i int, x T) { v[i] = x }

// Values returns the axes as a new slice.
func (v Vec4[T]) Values() []T { return append([]T(nil), v[:]...) }

// Apply replaces every axis with fn(axis) and returns v.
func (v *Vec4[T]) Apply(fn func(T) T) *Vec4[T] {
	apply1(v[:], fn)
	return v
}

// ApplyWith replaces axis i with fn(v[i], w[i]) and returns v.
// fn must not depend on the order in which axes are visited.
func (v *Vec4[T]) ApplyWith(fn func(T, T) T, w Vec4[T]) *Vec4[T] {
	apply2(v[:], w[:], fn)
	return v
}

// AddInPlace adds w to v axis by axis and returns v.
func (v *Vec4[T]) AddInPlace(w Vec4[T]) *Vec4[T] { return v.ApplyWith(add[T], w) }

// SubInPlace subtracts w from v axis by axis and returns v.
func (v *Vec4[T]) SubInPlace(w Vec4[T]) *Vec4[T] { return v.ApplyWith(sub[T], w) }

// MulInPlace multiplies v by w axis by axis and returns v.
func (v *Vec4[T]) MulInPlace(w Vec4[T]) *Vec4[T] { return v.ApplyWith(mul[T], w) }

// DivInPlace divides v by w axis by axis and returns v.
// Integer division by a zero axis panics.
func (v *Vec4[T]) DivInPlace(w Vec4[T]) *Vec4[T] { return v.ApplyWith(div[T], w) }

// Add returns v + w.
func (v Vec4[T]) Add(w Vec4[T]) Vec4[T] { return *v.AddInPlace(w) }

// Sub returns v - w.
func (v Vec4[T]) Sub(w Vec4[T]) Vec4[T] { return *v.SubInPlace(w) }

// Mul returns the axis-wise product of v and w.
func (v Vec4[T]) Mul(w Vec4[T]) Vec4[T] { return *v.MulInPlace(w) }

// Div returns the axis-wise quotient of v and w.
func (v Vec4[T]) Div(w Vec4[T]) Vec4[T] { return *v.DivInPlace(w) }

// Min returns the axis-wise minimum of v and w.
func (v Vec4[T]) Min(w Vec4[T]) Vec4[T] { return *v.ApplyWith(minOf[T], w) }

// Max returns the axis-wise maximum of v and w.
func (v Vec4[T]) Max(w Vec4[T]) Vec4[T] { return *v.ApplyWith(maxOf[T], w) }

// Clamp limits every axis of v to the range given by the same axis of lo and hi.
func (v Vec4[T]) Clamp(lo, hi Vec4[T]) Vec4[T] { return v.Min(hi).Max(lo) }

// Abs returns the axis-wise absolute value.
func (v Vec4[T]) Abs() Vec4[T] { return *v.Apply(abs[T]) }

// Signum returns -1, 0 or 1 for every axis.
func (v Vec4[T]) Signum() Vec4[T] { return *v.Apply(signum[T]) }

// Neg returns -v.
func (v Vec4[T]) Neg() Vec4[T] { return *v.Apply(neg[T]) }

// Scale returns v with every axis multiplied by k.
func (v Vec4[T]) Scale(k T) Vec4[T] { return v.Mul(Vec4[T]{k, k, k, k}) }

// Sum returns x + y + z + w.
func (v Vec4[T]) Sum() T { return sumOf(v[:]) }

// Prod returns x * y * z * w.
func (v Vec4[T]) Prod() T { return prodOf(v[:]) }

// MinAxis returns the smallest axis value.
func (v Vec4[T]) MinAxis() T { return minAxis(v[:]) }

// MaxAxis returns the largest axis value.
func (v Vec4[T]) MaxAxis() T { return maxAxis(v[:]) }

// IsZero reports whether every axis is zero.
func (v Vec4[T]) IsZero() bool { return isZero(v[:]) }

// Equal reports whether v == w.
func (v Vec4[T]) Equal(w Vec4[T]) bool { return v == w }

// Compare orders v and w lexicographically, x first.
// It returns -1, 0 or +1.
func (v Vec4[T]) Compare(w Vec4[T]) int { return compareAxes(v[:], w[:]) }

// Less reports whether v sorts before w.
func (v Vec4[T]) Less(w Vec4[T]) bool { return v.Compare(w) < 0 }

// NearlyEqual reports whether every axis of v and w is equal within eps.
func (v Vec4[T]) NearlyEqual(w Vec4[T], eps float64) bool {
	return nearlyEqualAxes(v[:], w[:], eps)
}

// Distance returns the Manhattan distance between v and w.
func (v Vec4[T]) Distance(w Vec4[T]) T { return v.ApplyWith(absDiff[T], w).Sum() }

// Dot returns the dot product of v and w.
func (v Vec4[T]) Dot(w Vec4[T]) T { return v.Mul(w).Sum() }

// Swap exchanges the contents of v and w.
func (v *Vec4[T]) Swap(w *Vec4[T]) { *v, *w = *w, *v }

// Hash returns a digest consistent with ==. Each axis occupies a 16-bit slot.
func (v Vec4[T]) Hash() uint64 { return hashAxes(v[:]) }

// String formats v as "Vector4(x, y, z, w)".
func (v Vec4[T]) String() string { return formatAxes(v[:]) }

// MarshalText encodes v as four space-separated tokens.
func (v Vec4[T]) MarshalText() ([]byte, error) { return appendTokens(nil, v[:]), nil }

// UnmarshalText decodes exactly four whitespace-separated tokens.
// v is left unchanged on error.
func (v *Vec4[T]) UnmarshalText(text []byte) error { return unmarshalAxes(v[:], text) }

// Scan implements fmt.Scanner, reading four tokens. v is left unchanged on error.
func (v *Vec4[T]) Scan(state fmt.ScanState, _ rune) error {
	var tmp Vec4[T]
	if err := decodeAxes(tmp[:], stateTokens(state)); err != nil {
		return err
	}
	*v = tmp
	return nil
}

// Parse4 reads the first four whitespace-separated tokens of s.
func Parse4[T Scalar](s string) (Vec4[T], error) {
	var v Vec4[T]
	if err := decodeAxes(v[:], fieldsOf(s)); err != nil {
		return Vec4[T]{}, err
	}
	return v, nil
}
