package shapes

import (
	"testing"

	. "github.com/gomlx/lazytensors/dtypes"
)

var testShapes = []Shape{
	Make(Float),
	Make(Float, 1000),
	Make(Float, 100, 100),
	Make(Long, 2, 3, 4, 5),
}

var (
	benchString string
	benchBool   bool
	benchResult []Shape
)

func BenchmarkShape_String(b *testing.B) {
	for _, s := range testShapes {
		b.Run(s.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				benchString = s.String()
			}
		})
	}
}

func BenchmarkShape_Equal(b *testing.B) {
	for _, s := range testShapes {
		other := s.Clone()
		b.Run(s.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				benchBool = s.Equal(other)
			}
		})
	}
}

func BenchmarkConvertShapes(b *testing.B) {
	const numShapes = 64
	dtypesList := make([]DType, numShapes)
	dimensionsList := make([][]int, numShapes)
	for i := range numShapes {
		dtypesList[i] = Float
		dimensionsList[i] = []int{i + 1, 8}
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		benchResult = ConvertShapes(dtypesList, dimensionsList)
	}
}
