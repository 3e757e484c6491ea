package shapes_test

import (
	"fmt"

	"github.com/gomlx/lazytensors/dtypes"
	"github.com/gomlx/lazytensors/shapes"
)

func ExampleMake() {
	shape := shapes.Make(dtypes.Float, 2, 3)
	fmt.Println(shape)
	// Output: Float[2,3]
}

func ExampleShape_String() {
	fmt.Println(shapes.Make(dtypes.Float, 2, 3))
	fmt.Println(shapes.Make(dtypes.Long))
	// Output:
	// Float[2,3]
	// Long[]
}

func ExampleConvertShapes() {
	converted := shapes.ConvertShapes(
		[]dtypes.DType{dtypes.Float, dtypes.Long},
		[][]int{{2, 3}, {}},
	)
	for _, shape := range converted {
		fmt.Println(shape)
	}
	// Output:
	// Float[2,3]
	// Long[]
}

func ExampleParse() {
	shape, err := shapes.Parse("Half[8,128]")
	if err != nil {
		panic(err)
	}
	fmt.Println(shape.DType, shape.Dimensions)
	// Output: Half [8 128]
}
