package vec

import "fmt"

// Vec1 is a single-axis vector (x).
type Vec1[T Scalar] [1]T

// New1 returns the vector (x).
func New1[T Scalar](x T) Vec1[T] { return Vec1[T]{x} }

// X returns axis 0.
func (v Vec1[T]) X() T { return v[0] }

// SetX sets axis 0.
func (v *Vec1[T]) SetX(x T) { v[0] = x }

// Len returns 1.
func (Vec1[T]) Len() int { return 1 }

// Axis returns axis i.
func (v Vec1[T]) Axis(i int) T { return v[i] }

// SetAxis sets axis i to x.
func (v *Vec1[T]) SetAxis(i int, x T) { v[i] = x }

// Values returns the axes as a new slice.
func (v Vec1[T]) Values() []T { return append([]T(nil), v[:]...) }

// Apply replaces every axis with fn(axis) and returns v.
func (v *Vec1[T]) Apply(fn func(T) T) *Vec1[T] {
	apply1(v[:], fn)
	return v
}

// ApplyWith replaces axis i with fn(v[i], w[i]) and returns v.
// fn must not depend on the order in which axes are visited.
func (v *Vec1[T]) ApplyWith(fn func(T, T) T, w Vec1[T]) *Vec1[T] {
	apply2(v[:], w[:], fn)
	return v
}

// AddInPlace adds w to v axis by axis and returns v.
func (v *Vec1[T]) AddInPlace(w Vec1[T]) *Vec1[T] { return v.ApplyWith(add[T], w) }

// SubInPlace subtracts w from v axis by axis and returns v.
func (v *Vec1[T]) SubInPlace(w Vec1[T]) *Vec1[T] { return v.ApplyWith(sub[T], w) }

// MulInPlace multiplies v by w axis by axis and returns v.
func (v *Vec1[T]) MulInPlace(w Vec1[T]) *Vec1[T] { return v.ApplyWith(mul[T], w) }

// DivInPlace divides v by w axis by axis and returns v.
// Integer division by a zero axis panics.
func (v *Vec1[T]) DivInPlace(w Vec1[T]) *Vec1[T] { return v.ApplyWith(div[T], w) }

// Add returns v + w.
func (v Vec1[T]) Add(w Vec1[T]) Vec1[T] { return *v.AddInPlace(w) }

// Sub returns v - w.
func (v Vec1[T]) Sub(w Vec1[T]) Vec1[T] { return *v.SubInPlace(w) }

// Mul returns the axis-wise product of v and w.
func (v Vec1[T]) Mul(w Vec1[T]) Vec1[T] { return *v.MulInPlace(w) }

// Div returns the axis-wise quotient of v and w.
func (v Vec1[T]) Div(w Vec1[T]) Vec1[T] { return *v.DivInPlace(w) }

// Min returns the axis-wise minimum of v and w.
func (v Vec1[T]) Min(w Vec1[T]) Vec1[T] { return *v.ApplyWith(minOf[T], w) }

// Max returns the axis-wise maximum of v and w.
func (v Vec1[T]) Max(w Vec1[T]) Vec1[T] { return *v.ApplyWith(maxOf[T], w) }

// Clamp limits every axis of v to the range given by the same axis of lo and hi.
func (v Vec1[T]) Clamp(lo, hi Vec1[T]) Vec1[T] { return v.Min(hi).Max(lo) }

// Abs returns the axis-wise absolute value.
func (v Vec1[T]) Abs() Vec1[T] { return *v.Apply(abs[T]) }

// Signum returns -1, 0 or 1 for every axis.
func (v Vec1[T]) Signum() Vec1[T] { return *v.Apply(signum[T]) }

// Neg returns -v.
func (v Vec1[T]) Neg() Vec1[T] { return *v.Apply(neg[T]) }

// Scale returns v with every axis multiplied by k.
func (v Vec1[T]) Scale(k T) Vec1[T] { return v.Mul(Vec1[T]{k}) }

// Sum returns x.
func (v Vec1[T]) Sum() T { return sumOf(v[:]) }

// Prod returns x.
func (v Vec1[T]) Prod() T { return prodOf(v[:]) }

// MinAxis returns the smallest axis value.
func (v Vec1[T]) MinAxis() T { return minAxis(v[:]) }

// MaxAxis returns the largest axis value.
func (v Vec1[T]) MaxAxis() T { return maxAxis(v[:]) }

// IsZero reports whether every axis is zero.
func (v Vec1[T]) IsZero() bool { return isZero(v[:]) }

// Equal reports whether v == w.
func (v Vec1[T]) Equal(w Vec1[T]) bool { return v == w }

// Compare orders v and w lexicographically, x first.
// It returns -1, 0 or +1.
func (v Vec1[T]) Compare(w Vec1[T]) int { return compareAxes(v[:], w[:]) }

// Less reports whether v sorts before w.
func (v Vec1[T]) Less(w Vec1[T]) bool { return v.Compare(w) < 0 }

// NearlyEqual reports whether every axis of v and w is equal within eps.
func (v Vec1[T]) NearlyEqual(w Vec1[T], eps float64) bool {
	return nearlyEqualAxes(v[:], w[:], eps)
}

// Distance returns the Manhattan distance between v and w.
func (v Vec1[T]) Distance(w Vec1[T]) T { return v.ApplyWith(absDiff[T], w).Sum() }

// Dot returns the dot product of v and w.
func (v Vec1[T]) Dot(w Vec1[T]) T { return v.Mul(w).Sum() }

// Swap exchanges the contents of v and w.
func (v *Vec1[T]) Swap(w *Vec1[T]) { *v, *w = *w, *v }

// Hash returns a digest consistent with ==. Each axis occupies a 64-bit slot.
func (v Vec1[T]) Hash() uint64 { return hashAxes(v[:]) }

// String formats v as "Vector1(x)".
func (v Vec1[T]) String() string { return formatAxes(v[:]) }

// MarshalText encodes v as a single token.
func (v Vec1[T]) MarshalText() ([]byte, error) { return appendTokens(nil, v[:]), nil }

// UnmarshalText decodes exactly one token.
// v is left unchanged on error.
func (v *Vec1[T]) UnmarshalText(text []byte) error { return unmarshalAxes(v[:], text) }

// Scan implements fmt.Scanner, reading one token. v is left unchanged on error.
func (v *Vec1[T]) Scan(state fmt.ScanState, _ rune) error {
	var tmp Vec1[T]
	if err := decodeAxes(tmp[:], stateTokens(state)); err != nil {
		return err
	}
	*v = tmp
	return nil
}

// Parse1 reads the first whitespace-separated token of s.
func Parse1[T Scalar](s string) (Vec1[T], error) {
	var v Vec1[T]
	if err := decodeAxes(v[:], fieldsOf(s)); err != nil {
		return Vec1[T]{}, err
	}
	return v, nil
}
