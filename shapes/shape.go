// Package shapes defines Shape and associated tools.
//
// Shape represents the shape (dtype and dimensions) of either a materialized
// tensor or the expected output of a node in a lazy computation graph. The
// element type is a dtypes.DType, an enum whose names follow the PyTorch
// ScalarType names (Float, Long, Half, ...), see github.com/gomlx/lazytensors/dtypes.
//
// Shapes are cheap value types: pass them by value, compare them with Shape.Equal.
// A Shape carries metadata only. It knows nothing about layout, strides or device
// placement of the data it describes.
//
// Construction with Make performs no validation of the dimension values:
// trace-time code records whatever dimensions the traced program produced, and
// it is up to the consumers of the graph to decide what is valid. The asserts
// in asserts.go help with that.
//
// Go float16 support (commonly used by Nvidia GPUs) uses the github.com/x448/float16
// implementation, and bfloat16 uses the simple implementation in
// github.com/gomlx/gopjrt/dtypes/bfloat16.
//
// ## Glossary
//
//   - Rank: number of axes (dimensions) of a Tensor.
//   - Axis: is the index of a dimension on a multidimensional Tensor. Sometimes used
//     interchangeably with Dimension, but here we try to refer to a dimension index as "axis"
//     (plural axes), and its size as its dimension.
//   - Dimension: the size of a multi-dimensions Tensor in one of its axes.
//   - DType: the data type of the unit element in a tensor.
//   - Scalar: is a shape where there are no axes (or dimensions), only a single value
//     of the associated DType.
//
// Example: The multi-dimensional array `[][]float32{{0, 1, 2}, {3, 4, 5}}` if converted
// to a tensor would have shape `Float[2,3]`. We say it has rank 2 (so 2 axes), axis 0
// has dimension 2, and axis 1 has dimension 3. This shape could be created with
// `shapes.Make(dtypes.Float, 2, 3)`.
package shapes

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/gomlx/exceptions"
	. "github.com/gomlx/lazytensors/dtypes"
)

// Shape represents the shape of either a tensor or the expected output of a
// computation node: the element dtype and the dimension of each axis.
// If len(Dimensions) is 0, it represents a scalar.
//
// Use Make to create a new shape.
type Shape struct {
	DType      DType
	Dimensions []int
}

// Make returns a Shape structure filled with the values given.
// The dimensions are copied, so the caller is free to mutate the slice afterward.
//
// No validation is performed on the dimension values: zero or negative
// dimensions are stored as given. See Shape.Check and Shape.Assert for
// validation at use sites.
func Make(dtype DType, dimensions ...int) Shape {
	return Shape{DType: dtype, Dimensions: slices.Clone(dimensions)}
}

// Scalar returns a scalar Shape for the given type.
func Scalar[T Number]() Shape {
	return Shape{DType: FromGenericsType[T]()}
}

// ConvertShapes builds one Shape per element, pairing dtypesList[i] with
// dimensionsList[i], and preserving order.
//
// The two slices must have the same length: a mismatch means the caller lost
// track of which dtype goes with which dimensions, and it panics.
func ConvertShapes(dtypesList []DType, dimensionsList [][]int) []Shape {
	if len(dtypesList) != len(dimensionsList) {
		exceptions.Panicf("shapes.ConvertShapes: got %d dtypes and %d dimensions lists, their lengths must match",
			len(dtypesList), len(dimensionsList))
	}
	results := make([]Shape, len(dtypesList))
	for ii, dtype := range dtypesList {
		results[ii] = Make(dtype, dimensionsList[ii]...)
	}
	return results
}

// Ok returns whether this is a valid Shape. A "zero" shape, that is just instantiating it with Shape{} will be invalid.
func (s Shape) Ok() bool { return s.DType != Invalid }

// Rank of the shape, that is, the number of axes. A shortcut to len(Shape.Dimensions).
// Scalar values have rank 0.
func (s Shape) Rank() int { return len(s.Dimensions) }

// IsScalar returns whether the shape represents a scalar, that is there are no dimensions (rank==0).
func (s Shape) IsScalar() bool { return s.Ok() && s.Rank() == 0 }

// Dim returns the dimension of the given axis. axis can take negative numbers, in which
// case it counts as starting from the end -- so axis=-1 refers to the last axis.
// Like with a slice indexing, it panics for an out-of-bound axis.
func (s Shape) Dim(axis int) int {
	adjustedAxis := axis
	if adjustedAxis < 0 {
		adjustedAxis += s.Rank()
	}
	if adjustedAxis < 0 || adjustedAxis >= s.Rank() {
		exceptions.Panicf("Shape.Dim(%d) out-of-bounds for rank %d (shape=%s)", axis, s.Rank(), s)
	}
	return s.Dimensions[adjustedAxis]
}

// Shape returns a shallow copy of itself. It implements the HasShape interface.
func (s Shape) Shape() Shape { return s }

// Size returns the number of elements of DType needed for this shape.
// It's the product of all dimensions. E.g.: a Shape of dimensions [3, 5] has
// size 15. A scalar has size 1.
func (s Shape) Size() (size int) {
	size = 1
	for _, dim := range s.Dimensions {
		size *= dim
	}
	return
}

// Memory returns the memory used to store an array of the given shape, the same as the size in bytes.
// Careful, so far all types in Go and on device seem to use the same sizes, but future type this is not guaranteed.
func (s Shape) Memory() uintptr {
	return s.DType.Memory() * uintptr(s.Size())
}

// Clone returns a new deep copy of the shape.
func (s Shape) Clone() (s2 Shape) {
	s2.DType = s.DType
	s2.Dimensions = slices.Clone(s.Dimensions)
	return
}

// Equal compares two shapes for equality: dtype and dimensions are compared element-wise.
//
// A nil Dimensions slice and an empty one compare equal: both represent a scalar.
func (s Shape) Equal(s2 Shape) bool {
	if s.DType != s2.DType {
		return false
	}
	return slices.Equal(s.Dimensions, s2.Dimensions)
}

// EqualDimensions compares two shapes for equality of dimensions. Dtypes can be different.
func (s Shape) EqualDimensions(s2 Shape) bool {
	return slices.Equal(s.Dimensions, s2.Dimensions)
}

// String implements fmt.Stringer and pretty-prints the shape: the dtype name
// followed by the comma-separated dimensions in square brackets, as in
// "Float[2,3]". Scalars print with empty brackets, as in "Float[]".
func (s Shape) String() string {
	var sb strings.Builder
	_ = s.Write(&sb)
	return sb.String()
}

// Write writes the shape to the given writer, in the same format used by String.
func (s Shape) Write(writer io.Writer) error {
	var err error
	w := func(format string, args ...any) {
		if err != nil {
			// No op if an error was encountered earlier
			return
		}
		_, err = fmt.Fprintf(writer, format, args...)
	}

	w("%s[", s.DType)
	for ii, dim := range s.Dimensions {
		if ii > 0 {
			w(",")
		}
		w("%d", dim)
	}
	w("]")
	return err
}

// ConcatenateDimensions of two shapes. The resulting rank is the sum of both ranks. They must
// have the same dtype. If any of them is a scalar, the resulting shape will be a copy of the other.
// If the dtypes are different, or any of the shapes is invalid, it returns an invalid shape.
func ConcatenateDimensions(s1, s2 Shape) (shape Shape) {
	if !s1.Ok() || !s2.Ok() || s1.DType != s2.DType {
		return
	}
	if s1.IsScalar() {
		return s2.Clone()
	} else if s2.IsScalar() {
		return s1.Clone()
	}
	shape.DType = s1.DType
	shape.Dimensions = make([]int, s1.Rank()+s2.Rank())
	copy(shape.Dimensions, s1.Dimensions)
	copy(shape.Dimensions[s1.Rank():], s2.Dimensions)
	return
}
