package vec

import (
	"encoding"
	"fmt"
)

// Vector is the read-only surface shared by every arity.
type Vector[T Scalar] interface {
	fmt.Stringer
	encoding.TextMarshaler

	// Len returns the number of axes.
	Len() int
	// Axis returns the value of axis i. It panics if i is out of range.
	Axis(i int) T
	// Values returns a copy of the axes in order.
	Values() []T

	Sum() T
	Prod() T
	MinAxis() T
	MaxAxis() T

	IsZero() bool
	Hash() uint64
}

// Arith is implemented by the vector type V over element type T. It lets
// generic code combine vectors without knowing their arity.
type Arith[T Scalar, V any] interface {
	Vector[T]

	Add(w V) V
	Sub(w V) V
	Mul(w V) V
	Div(w V) V
	Min(w V) V
	Max(w V) V
	Clamp(lo, hi V) V

	Abs() V
	Signum() V
	Neg() V
	Scale(k T) V

	Distance(w V) T
	Dot(w V) T

	Equal(w V) bool
	Compare(w V) int
	Less(w V) bool
	NearlyEqual(w V, eps float64) bool
}

// Text is satisfied by pointers to vector types, which decode in place.
type Text[V any] interface {
	*V
	encoding.TextUnmarshaler
	fmt.Scanner
}

var (
	_ Arith[int, Vec1[int]]         = Vec1[int]{}
	_ Arith[int, Vec2[int]]         = Vec2[int]{}
	_ Arith[float64, Vec3[float64]] = Vec3[float64]{}
	_ Arith[uint8, Vec4[uint8]]     = Vec4[uint8]{}

	_ decoder = (*Vec1[int])(nil)
	_ decoder = (*Vec2[int])(nil)
	_ decoder = (*Vec3[float32])(nil)
	_ decoder = (*Vec4[int64])(nil)
)

// decoder is the method set required by Text.
type decoder interface {
	encoding.TextUnmarshaler
	fmt.Scanner
}
