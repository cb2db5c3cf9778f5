package vec

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// apply1 and apply2 are the only places that walk the axes of a vector for an
// elementwise operation. Every arity routes its operators through them.

func apply1[T Scalar](axes []T, fn func(T) T) {
	for i, x := range axes {
		axes[i] = fn(x)
	}
}

func apply2[T Scalar](axes, other []T, fn func(T, T) T) {
	for i, x := range axes {
		axes[i] = fn(x, other[i])
	}
}

func sumOf[T Scalar](axes []T) T {
	var s T
	for _, x := range axes {
		s += x
	}
	return s
}

func prodOf[T Scalar](axes []T) T {
	p := T(1)
	for _, x := range axes {
		p *= x
	}
	return p
}

func minAxis[T Scalar](axes []T) T { return slices.Min(axes) }
func maxAxis[T Scalar](axes []T) T { return slices.Max(axes) }

// compareAxes orders a and b lexicographically, axis 0 first.
func compareAxes[T Scalar](a, b []T) int { return slices.Compare(a, b) }

func isZero[T Scalar](axes []T) bool {
	for _, x := range axes {
		if x != 0 {
			return false
		}
	}
	return true
}

func nearlyEqualAxes[T Scalar](a, b []T, eps float64) bool {
	for i, x := range a {
		if !nearlyEqual(float64(x), float64(b[i]), eps) {
			return false
		}
	}
	return true
}

// hashWidth is the bit width of the digest returned by Hash.
const hashWidth = 64

// hashAxes packs the per-axis hashes into hashWidth/N bit slots and ORs them
// together. Axis i is shifted left by i slots.
func hashAxes[T Scalar](axes []T) uint64 {
	info := infoOf[T]()
	slot := uint(hashWidth / len(axes))
	var h uint64
	for i, x := range axes {
		h |= hashScalar(x, info, slot) << (slot * uint(i))
	}
	return h
}

func formatAxes[T Scalar](axes []T) string {
	info := infoOf[T]()
	b := make([]byte, 0, 16+8*len(axes))
	b = append(b, "Vector"...)
	b = strconv.AppendInt(b, int64(len(axes)), 10)
	b = append(b, '(')
	for i, x := range axes {
		if i > 0 {
			b = append(b, ", "...)
		}
		b = appendScalar(b, x, info)
	}
	b = append(b, ')')
	return string(b)
}

func appendTokens[T Scalar](dst []byte, axes []T) []byte {
	info := infoOf[T]()
	for i, x := range axes {
		if i > 0 {
			dst = append(dst, ' ')
		}
		dst = appendScalar(dst, x, info)
	}
	return dst
}

// tokenSource yields the next whitespace-delimited token, or false once the
// input is exhausted.
type tokenSource func() (string, bool)

func fieldsOf(s string) tokenSource {
	fields := strings.Fields(s)
	return func() (string, bool) {
		if len(fields) == 0 {
			return "", false
		}
		tok := fields[0]
		fields = fields[1:]
		return tok, true
	}
}

func stateTokens(state fmt.ScanState) tokenSource {
	return func() (string, bool) {
		tok, err := state.Token(true, nil)
		if err != nil || len(tok) == 0 {
			return "", false
		}
		return string(tok), true
	}
}

// decodeAxes fills dst from next in axis order. dst is scratch space: on
// error its contents are unspecified and callers must not publish it.
func decodeAxes[T Scalar](dst []T, next tokenSource) error {
	info := infoOf[T]()
	for i := range dst {
		tok, ok := next()
		if !ok {
			return &ParseError{Axis: i, Err: ErrInsufficientInput}
		}
		x, err := parseScalar[T](tok, info)
		if err != nil {
			return &ParseError{Axis: i, Token: tok, Err: classify(err)}
		}
		dst[i] = x
	}
	return nil
}

// unmarshalAxes decodes exactly len(dst) tokens from text and copies them
// into dst only on success.
func unmarshalAxes[T Scalar](dst []T, text []byte) error {
	tmp := slices.Clone(dst)
	next := fieldsOf(string(text))
	if err := decodeAxes(tmp, next); err != nil {
		return err
	}
	if tok, ok := next(); ok {
		return &ParseError{Axis: len(dst), Token: tok, Err: ErrTrailingInput}
	}
	copy(dst, tmp)
	return nil
}
