package vec

import (
	"errors"
	"math"
	"testing"
)

type testInt interface {
	~int16 | ~int32 | ~int64 | ~int
}

func TestHash(t *testing.T) {
	t.Run("int16", testHash[int16])
	t.Run("int32", testHash[int32])
	t.Run("int64", testHash[int64])
	t.Run("int", testHash[int])
}

func testHash[T testInt](t *testing.T) {
	h := func(x T) uint64 { return uint64(int64(x)) }

	tests := []struct {
		name      string
		got, want uint64
	}{
		{"vec1()", Vec1[T]{}.Hash(), h(0)},
		{"vec2()", Vec2[T]{}.Hash(), h(0) | h(0)<<32},
		{"vec3()", Vec3[T]{}.Hash(), h(0) | h(0)<<21 | h(0)<<42},
		{"vec4()", Vec4[T]{}.Hash(), h(0) | h(0)<<16 | h(0)<<32 | h(0)<<48},
		{"vec1(0xabc)", New1[T](0xabc).Hash(), h(0xabc)},
		{"vec2(0xabc, 0x123)", New2[T](0xabc, 0x123).Hash(), h(0xabc) | h(0x123)<<32},
		{
			"vec3(0xabc, 0x123, -0xfed)",
			New3[T](0xabc, 0x123, -0xfed).Hash(),
			h(0xabc) | h(0x123)<<21 | h(-0xfed)<<42,
		},
		{
			"vec4(0xabc, 0x123, 0, -0xfed)",
			New4[T](0xabc, 0x123, 0, -0xfed).Hash(),
			h(0xabc) | h(0x123)<<16 | h(0)<<32 | h(-0xfed)<<48,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("hash = %#x, want %#x", tt.got, tt.want)
			}
		})
	}
}

func TestHashUnsigned(t *testing.T) {
	if got, want := New2[uint16](1, 2).Hash(), uint64(1)|uint64(2)<<32; got != want {
		t.Fatalf("hash = %#x, want %#x", got, want)
	}
}

func TestHashFloatSignedZero(t *testing.T) {
	a := New2(0.0, 1.5)
	b := New2(math.Copysign(0, -1), 1.5)
	if a != b {
		t.Fatal("0 and -0 vectors should compare equal")
	}
	if a.Hash() != b.Hash() {
		t.Fatalf("equal vectors hash differently: %#x vs %#x", a.Hash(), b.Hash())
	}
	if a.Hash() == New2(0.0, 2.5).Hash() {
		t.Fatal("expected different digests for different y")
	}
}

func TestHashFloatUsesEveryAxis(t *testing.T) {
	tests := []struct {
		name string
		hash func(x float64) uint64
	}{
		{"vec2", func(x float64) uint64 { return New2(0, x).Hash() }},
		{"vec3", func(x float64) uint64 { return New3(0, 0, x).Hash() }},
		{"vec4", func(x float64) uint64 { return New4(0, 0, 0, x).Hash() }},
	}
	values := []float64{1, -1, 2, 1.5, 2.5, -0.5, 1e300}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen := make(map[uint64]float64)
			for _, x := range values {
				h := tt.hash(x)
				if prev, ok := seen[h]; ok {
					t.Fatalf("last axis %v and %v hash to %#x", prev, x, h)
				}
				seen[h] = x
			}
		})
	}
}

func TestFoldBits(t *testing.T) {
	tests := []struct {
		h     uint64
		width uint
		want  uint64
	}{
		{0x3ff8000000000000, 64, 0x3ff8000000000000},
		{0x3ff8000000000000, 32, 0x3ff80000},
		{0xbff0000000000000, 16, 0xbff0},
		{0x0000000100000001, 32, 0},
		{0xbff0000000000000, 21, 0x0ffc01},
	}
	for _, tt := range tests {
		if got := foldBits(tt.h, tt.width); got != tt.want {
			t.Fatalf("foldBits(%#x, %d) = %#x, want %#x", tt.h, tt.width, got, tt.want)
		}
	}
}

type celsius float32

type index uint16

func TestInfoOfMatchesReflect(t *testing.T) {
	tests := []struct {
		name      string
		got, want scalarInfo
	}{
		{"int", infoOf[int](), reflectInfo[int]()},
		{"int8", infoOf[int8](), reflectInfo[int8]()},
		{"int16", infoOf[int16](), reflectInfo[int16]()},
		{"int32", infoOf[int32](), reflectInfo[int32]()},
		{"int64", infoOf[int64](), reflectInfo[int64]()},
		{"uint", infoOf[uint](), reflectInfo[uint]()},
		{"uint8", infoOf[uint8](), reflectInfo[uint8]()},
		{"uint16", infoOf[uint16](), reflectInfo[uint16]()},
		{"uint32", infoOf[uint32](), reflectInfo[uint32]()},
		{"uint64", infoOf[uint64](), reflectInfo[uint64]()},
		{"float32", infoOf[float32](), reflectInfo[float32]()},
		{"float64", infoOf[float64](), reflectInfo[float64]()},
		{"celsius", infoOf[celsius](), scalarInfo{kind: kindFloat, bits: 32}},
		{"index", infoOf[index](), scalarInfo{kind: kindUnsigned, bits: 16}},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Fatalf("%s: info = %+v, want %+v", tt.name, tt.got, tt.want)
		}
	}
}

func TestDefinedElementTypes(t *testing.T) {
	v, err := Parse2[index]("7 65535")
	if err != nil {
		t.Fatalf("Parse2: %v", err)
	}
	if got, want := v.String(), "Vector2(7, 65535)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	if _, err := Parse1[index]("-3"); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("err = %v, want %v", err, ErrOutOfRange)
	}
	if got, want := New1[celsius](1.5).String(), "Vector1(1.5)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func BenchmarkHashVec2Int(b *testing.B) {
	v := New2(-3, 17)
	for b.Loop() {
		_ = v.Hash()
	}
}
