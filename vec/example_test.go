package vec_test

import (
	"fmt"

	"github.com/cwbudde/algo-ndvec/vec"
)

func ExampleVec3_Sub() {
	v1 := vec.New3(1, -2, 3)
	v2 := vec.New3(-3, 2, -1)
	v3 := vec.New3(5, 6, 3)

	d := v1.Sub(v2)
	fmt.Println(d, d.Sum(), v1.Distance(v3))

	// Output:
	// Vector3(4, -4, 4) 4 12
}

func ExampleVec3_Cross() {
	fmt.Println(vec.New3(-1, 2, -3).Cross(vec.New3(1, 2, 3)))

	// Output:
	// Vector3(12, 0, -4)
}

func ExampleVec2_RotateLeft() {
	v := vec.New2(3, 4)
	fmt.Println(*v.RotateLeft())
	fmt.Println(*v.RotateRight().RotateRight())

	// Output:
	// Vector2(-4, 3)
	// Vector2(4, -3)
}

func ExampleVec2_Adjacent() {
	for _, n := range vec.New2(0, 0).Adjacent() {
		fmt.Println(n)
	}

	// Output:
	// Vector2(0, -1)
	// Vector2(-1, 0)
	// Vector2(1, 0)
	// Vector2(0, 1)
}

func ExampleParse3() {
	v, err := vec.Parse3[int]("  1   -2    3")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(v)

	_, err = vec.Parse3[int]("1 2")
	fmt.Println(err)

	// Output:
	// Vector3(1, -2, 3)
	// vec: axis 2: insufficient input
}

func ExampleVec4_String() {
	fmt.Println(vec.New4(1, -2, 3, -4))
	fmt.Printf("%v\n", vec.New2(0.5, 1e-9))

	// Output:
	// Vector4(1, -2, 3, -4)
	// Vector2(0.5, 1e-09)
}
