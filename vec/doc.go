// Package vec provides small fixed-arity numeric vectors.
//
// Vec1, Vec2, Vec3 and Vec4 are array-backed value types over any integer or
// floating-point element type. The arity is part of the type, so mixing vectors
// of different arity or element type is rejected by the compiler. Vectors are
// comparable with == and can be used directly as map keys.
//
// Every elementwise operation is implemented once, on the axes of the vector,
// through Apply and ApplyWith:
//
//	v := vec.New3(1, -2, 3)
//	w := v.Sub(vec.New3(-3, 2, -1)) // Vector3(4, -4, 4)
//	w.Sum()                         // 4
//
// Dimension-specific helpers only exist on the matching type: Cross on Vec3,
// RotateLeft, RotateRight and Adjacent on Vec2.
//
// Vectors format as "VectorN(a0, a1, ...)" and parse from bare
// whitespace-separated tokens:
//
//	v, err := vec.Parse3[int]("  1   -2    3")
package vec
