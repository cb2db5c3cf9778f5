package vec

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Scalar is a constraint for the element types a vector can hold.
type Scalar interface {
	constraints.Integer | constraints.Float
}

type scalarKind uint8

const (
	kindSigned scalarKind = iota
	kindUnsigned
	kindFloat
)

// scalarInfo selects the strconv and hash routines for an element type.
type scalarInfo struct {
	kind scalarKind
	bits int
}

func infoOf[T Scalar]() scalarInfo {
	switch any(*new(T)).(type) {
	case int:
		return scalarInfo{kind: kindSigned, bits: strconv.IntSize}
	case int8:
		return scalarInfo{kind: kindSigned, bits: 8}
	case int16:
		return scalarInfo{kind: kindSigned, bits: 16}
	case int32:
		return scalarInfo{kind: kindSigned, bits: 32}
	case int64:
		return scalarInfo{kind: kindSigned, bits: 64}
	case uint:
		return scalarInfo{kind: kindUnsigned, bits: strconv.IntSize}
	case uint8:
		return scalarInfo{kind: kindUnsigned, bits: 8}
	case uint16:
		return scalarInfo{kind: kindUnsigned, bits: 16}
	case uint32:
		return scalarInfo{kind: kindUnsigned, bits: 32}
	case uint64:
		return scalarInfo{kind: kindUnsigned, bits: 64}
	case float32:
		return scalarInfo{kind: kindFloat, bits: 32}
	case float64:
		return scalarInfo{kind: kindFloat, bits: 64}
	}
	return reflectInfo[T]()
}

// reflectInfo classifies defined element types such as type Meters float64.
func reflectInfo[T Scalar]() scalarInfo {
	t := reflect.TypeFor[T]()
	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		return scalarInfo{kind: kindFloat, bits: t.Bits()}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return scalarInfo{kind: kindUnsigned, bits: t.Bits()}
	default:
		return scalarInfo{kind: kindSigned, bits: t.Bits()}
	}
}

func add[T Scalar](a, b T) T { return a + b }
func sub[T Scalar](a, b T) T { return a - b }
func mul[T Scalar](a, b T) T { return a * b }
func div[T Scalar](a, b T) T { return a / b }

func minOf[T Scalar](a, b T) T { return min(a, b) }
func maxOf[T Scalar](a, b T) T { return max(a, b) }

func neg[T Scalar](a T) T { return -a }

func abs[T Scalar](a T) T {
	if a < 0 {
		return -a
	}
	return a
}

// signum returns 1, 0 or -1. NaN maps to 0.
func signum[T Scalar](a T) T {
	var zero, one T = 0, 1
	switch {
	case zero < a:
		return one
	case a < zero:
		return zero - one
	}
	return zero
}

// absDiff returns |a - b| without wrapping for unsigned element types.
func absDiff[T Scalar](a, b T) T {
	if a < b {
		return b - a
	}
	return a - b
}

const defaultEpsilon = 1e-12

// nearlyEqual reports whether a and b are equal within eps, using a
// relative tolerance for large magnitudes.
func nearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// appendScalar appends the canonical decimal form of x.
func appendScalar[T Scalar](dst []byte, x T, info scalarInfo) []byte {
	switch info.kind {
	case kindSigned:
		return strconv.AppendInt(dst, int64(x), 10)
	case kindUnsigned:
		return strconv.AppendUint(dst, uint64(x), 10)
	}
	return appendFloat(dst, float64(x), info.bits)
}

// appendFloat writes the shortest round-trip form of f, choosing fixed or
// exponent notation by length and preferring fixed on a tie.
func appendFloat(dst []byte, f float64, bits int) []byte {
	switch {
	case math.IsNaN(f):
		return append(dst, "nan"...)
	case math.IsInf(f, 1):
		return append(dst, "inf"...)
	case math.IsInf(f, -1):
		return append(dst, "-inf"...)
	}

	var fixed, exp [32]byte
	fs := strconv.AppendFloat(fixed[:0], f, 'f', -1, bits)
	es := strconv.AppendFloat(exp[:0], f, 'e', -1, bits)
	if len(es) < len(fs) {
		return append(dst, es...)
	}
	return append(dst, fs...)
}

// parseScalar converts one token using the element type's own bit size.
func parseScalar[T Scalar](tok string, info scalarInfo) (T, error) {
	switch info.kind {
	case kindSigned:
		n, err := strconv.ParseInt(tok, 10, info.bits)
		return T(n), err
	case kindUnsigned:
		n, err := strconv.ParseUint(tok, 10, info.bits)
		if errors.Is(err, strconv.ErrSyntax) && isNegativeInteger(tok) {
			err = &strconv.NumError{Func: "ParseUint", Num: tok, Err: strconv.ErrRange}
		}
		return T(n), err
	}
	f, err := strconv.ParseFloat(tok, info.bits)
	return T(f), err
}

// isNegativeInteger reports whether tok is a well-formed negative integer,
// which no unsigned type can hold.
func isNegativeInteger(tok string) bool {
	if !strings.HasPrefix(tok, "-") {
		return false
	}
	_, err := strconv.ParseInt(tok, 10, 64)
	return err == nil || errors.Is(err, strconv.ErrRange)
}

// classify maps a strconv failure onto the package parse sentinels.
func classify(err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return ErrOutOfRange
	}
	return ErrMalformedToken
}

// hashScalar is the per-axis hash for a slot of width bits: the
// sign-extended integer value for integers, and for floats the IEEE bit
// pattern with -0 folded onto 0, XOR-folded down to width bits.
func hashScalar[T Scalar](x T, info scalarInfo, width uint) uint64 {
	switch info.kind {
	case kindSigned:
		return uint64(int64(x))
	case kindUnsigned:
		return uint64(x)
	}
	if x == 0 {
		return 0
	}
	return foldBits(math.Float64bits(float64(x)), width)
}

// foldBits XORs the width-bit chunks of h together.
func foldBits(h uint64, width uint) uint64 {
	if width >= 64 {
		return h
	}
	mask := uint64(1)<<width - 1
	var f uint64
	for ; h != 0; h >>= width {
		f ^= h & mask
	}
	return f
}
