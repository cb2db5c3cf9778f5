package vec

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	tests := []struct {
		name string
		v    fmt.Stringer
		want string
	}{
		{"vec4 int", New4(1, -2, 3, -4), "Vector4(1, -2, 3, -4)"},
		{"vec1 uint8", New1[uint8](255), "Vector1(255)"},
		{"vec2 int8", New2[int8](-128, 127), "Vector2(-128, 127)"},
		{"vec3 float64", New3(1.5, -0.25, 1e21), "Vector3(1.5, -0.25, 1e+21)"},
		{"vec2 float32", New2[float32](0.1, 2), "Vector2(0.1, 2)"},
		{"vec2 non-finite", New2(math.NaN(), math.Inf(-1)), "Vector2(nan, -inf)"},
		{"vec2 large", New2(1e6, 123456.0), "Vector2(1e+06, 123456)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.String(); got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseWhitespace(t *testing.T) {
	for _, input := range []string{"1 -2 3", "  1   -2    3", "1\t-2\n3", "\n1\r\n-2 3\n", "+1 -2 +3"} {
		got, err := Parse3[int](input)
		if err != nil {
			t.Fatalf("Parse3(%q) error: %v", input, err)
		}
		if got != New3(1, -2, 3) {
			t.Fatalf("Parse3(%q) = %v, want Vector3(1, -2, 3)", input, got)
		}
	}
}

func TestParseThenFormat(t *testing.T) {
	v, err := Parse3[int]("  1   -2    3")
	if err != nil {
		t.Fatalf("Parse3 error: %v", err)
	}
	if got := v.String(); got != "Vector3(1, -2, 3)" {
		t.Fatalf("String() = %q", got)
	}
}

func TestParseIgnoresTrailingTokens(t *testing.T) {
	got, err := Parse2[int]("1 2 3")
	if err != nil {
		t.Fatalf("Parse2 error: %v", err)
	}
	if got != New2(1, 2) {
		t.Fatalf("Parse2 = %v, want Vector2(1, 2)", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		parse func() error
		want  error
		axis  int
	}{
		{"empty", func() error { _, err := Parse3[int](""); return err }, ErrInsufficientInput, 0},
		{"short", func() error { _, err := Parse3[int]("1 2"); return err }, ErrInsufficientInput, 2},
		{"malformed", func() error { _, err := Parse3[int]("1 x 3"); return err }, ErrMalformedToken, 1},
		{"float into int", func() error { _, err := Parse2[int]("1 2.5"); return err }, ErrMalformedToken, 1},
		{"decorated", func() error { _, err := Parse3[int]("Vector3(1, 2, 3)"); return err }, ErrMalformedToken, 0},
		{"int8 overflow", func() error { _, err := Parse2[int8]("1 300"); return err }, ErrOutOfRange, 1},
		{"negative unsigned", func() error { _, err := Parse2[uint]("-1 2"); return err }, ErrOutOfRange, 0},
		{"negative unsigned wide", func() error { _, err := Parse1[uint64]("-99999999999999999999"); return err }, ErrOutOfRange, 0},
		{"negative unsigned second axis", func() error { _, err := Parse2[uint8]("1 -4"); return err }, ErrOutOfRange, 1},
		{"unsigned dash only", func() error { _, err := Parse1[uint16]("-"); return err }, ErrMalformedToken, 0},
		{"unsigned negative float", func() error { _, err := Parse1[uint16]("-1.5"); return err }, ErrMalformedToken, 0},
		{"float32 overflow", func() error { _, err := Parse1[float32]("1e60"); return err }, ErrOutOfRange, 0},
		{"float64 malformed", func() error { _, err := Parse4[float64]("1 2 3 4.4.4"); return err }, ErrMalformedToken, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.parse()
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("err = %T, want *ParseError", err)
			}
			if pe.Axis != tt.axis {
				t.Fatalf("axis = %d, want %d", pe.Axis, tt.axis)
			}
		})
	}
}

func TestParseErrorMessage(t *testing.T) {
	_, err := Parse3[int]("1 x 3")
	if got, want := err.Error(), `vec: axis 1: malformed token "x"`; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	_, err = Parse2[int]("1")
	if got, want := err.Error(), "vec: axis 1: insufficient input"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestUnmarshalTextIsAtomic(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"1 2 x", ErrMalformedToken},
		{"1 2", ErrInsufficientInput},
		{"1 2 3 4", ErrTrailingInput},
		{"1 2 99999999999999999999", ErrOutOfRange},
	}
	for _, tt := range tests {
		v := New3(7, 8, 9)
		err := v.UnmarshalText([]byte(tt.input))
		if !errors.Is(err, tt.want) {
			t.Fatalf("UnmarshalText(%q) err = %v, want %v", tt.input, err, tt.want)
		}
		if v != New3(7, 8, 9) {
			t.Fatalf("UnmarshalText(%q) modified destination: %v", tt.input, v)
		}
	}

	v := New3(7, 8, 9)
	if err := v.UnmarshalText([]byte(" 1 2 3 ")); err != nil {
		t.Fatalf("UnmarshalText error: %v", err)
	}
	if v != New3(1, 2, 3) {
		t.Fatalf("UnmarshalText = %v, want Vector3(1, 2, 3)", v)
	}
}

func TestMarshalTextRoundTrip(t *testing.T) {
	vs := []Vec4[float64]{
		{},
		{1, -2, 3, -4},
		{0.1, 1e-7, -1e21, 123.456},
		{math.MaxFloat64, math.SmallestNonzeroFloat64, math.Inf(1), -0.5},
	}
	for _, v := range vs {
		text, err := v.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText error: %v", err)
		}
		var got Vec4[float64]
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error: %v", text, err)
		}
		if got != v {
			t.Fatalf("round trip %q = %v, want %v", text, got, v)
		}
	}

	text, _ := New2(-3, 14).MarshalText()
	if string(text) != "-3 14" {
		t.Fatalf("MarshalText = %q, want %q", text, "-3 14")
	}
}

func TestSscan(t *testing.T) {
	var v Vec3[int]
	if _, err := fmt.Sscan("   1   -2    3", &v); err != nil {
		t.Fatalf("Sscan error: %v", err)
	}
	if v != New3(1, -2, 3) {
		t.Fatalf("Sscan = %v, want Vector3(1, -2, 3)", v)
	}

	_, err := fmt.Sscan("4 x 6", &v)
	if !errors.Is(err, ErrMalformedToken) {
		t.Fatalf("Sscan err = %v, want ErrMalformedToken", err)
	}
	if v != New3(1, -2, 3) {
		t.Fatalf("failed Sscan modified destination: %v", v)
	}
}

func TestFscanStream(t *testing.T) {
	r := strings.NewReader("1 2\n3   4\n\t5 6\n")
	var got []Vec2[int]
	for {
		var v Vec2[int]
		_, err := fmt.Fscan(r, &v)
		if errors.Is(err, ErrInsufficientInput) {
			break
		}
		if err != nil {
			t.Fatalf("Fscan error: %v", err)
		}
		got = append(got, v)
	}
	want := []Vec2[int]{{1, 2}, {3, 4}, {5, 6}}
	if len(got) != len(want) {
		t.Fatalf("read %d vectors, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("vector %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func decodeText[V any, P Text[V]](s string) (V, error) {
	var v V
	err := P(&v).UnmarshalText([]byte(s))
	return v, err
}

func TestTextConstraint(t *testing.T) {
	v2, err := decodeText[Vec2[int]]("3 -4")
	if err != nil || v2 != New2(3, -4) {
		t.Fatalf("decodeText = %v, %v", v2, err)
	}
	v4, err := decodeText[Vec4[float32]]("1 2 3 4.5")
	if err != nil || v4 != New4[float32](1, 2, 3, 4.5) {
		t.Fatalf("decodeText = %v, %v", v4, err)
	}
	if _, err := decodeText[Vec1[uint8]]("-1"); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("err = %v, want %v", err, ErrOutOfRange)
	}
}
