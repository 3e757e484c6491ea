package dtypes

import (
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/gomlx/gopjrt/dtypes/bfloat16"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestDType_HighestLowestSmallestValues(t *testing.T) {
	require.True(t, math.IsInf(Double.HighestValue().(float64), 1))
	require.True(t, math.IsInf(float64(Float.LowestValue().(float32)), -1))
	_, ok := Half.SmallestNonZeroValueForDType().(float16.Float16)
	require.True(t, ok)
	_, ok = BFloat16.SmallestNonZeroValueForDType().(bfloat16.BFloat16)
	require.True(t, ok)
	require.Equal(t, uint8(math.MaxUint8), Byte.HighestValue().(uint8))
	require.Equal(t, int8(math.MinInt8), Char.LowestValue().(int8))

	// Complex numbers don't define Highest or Lowest, and instead return 0.
	require.Equal(t, complex64(0), ComplexFloat.HighestValue().(complex64))
	require.Equal(t, complex128(0), ComplexDouble.LowestValue().(complex128))
	require.Equal(t, complex64(0), ComplexFloat.SmallestNonZeroValueForDType().(complex64))

	// Dtypes without a Go representation return nil.
	require.Nil(t, ComplexHalf.LowestValue())
	require.Nil(t, Invalid.HighestValue())
}

func TestMapOfNames(t *testing.T) {
	require.Equal(t, Half, MapOfNames["Half"])
	require.Equal(t, Half, MapOfNames["half"])
	require.Equal(t, Half, MapOfNames["Float16"])
	require.Equal(t, Half, MapOfNames["float16"])

	require.Equal(t, BFloat16, MapOfNames["BFloat16"])
	require.Equal(t, BFloat16, MapOfNames["bfloat16"])

	require.Equal(t, Long, MapOfNames["Long"])
	require.Equal(t, Long, MapOfNames["Int64"])
	require.Equal(t, Long, MapOfNames["int64"])

	require.Equal(t, Invalid, MapOfNames["Undefined"])
	require.Equal(t, Invalid, MapOfNames["undefined"])
}

func TestDType_String(t *testing.T) {
	require.Equal(t, "Float", Float.String())
	require.Equal(t, "Long", fmt.Sprintf("%s", Long))
	require.Equal(t, "ComplexDouble", ComplexDouble.String())
	require.Equal(t, "BFloat16", BFloat16.String())
	require.Equal(t, "Invalid", Invalid.String())

	// Out-of-range values fall back to the numeric rendering.
	require.Equal(t, "DType(255)", DType(255).String())
}

func TestDTypeString(t *testing.T) {
	for _, dtype := range DTypeValues() {
		got, err := DTypeString(dtype.String())
		require.NoError(t, err)
		require.Equal(t, dtype, got)
	}

	got, err := DTypeString("double")
	require.NoError(t, err)
	require.Equal(t, Double, got)

	_, err = DTypeString("quaternion")
	require.Error(t, err)

	require.True(t, Float.IsADType())
	require.False(t, DType(255).IsADType())
}

func TestFromGoTypes(t *testing.T) {
	require.Equal(t, Float, FromGenericsType[float32]())
	require.Equal(t, Double, FromGenericsType[float64]())
	require.Equal(t, Half, FromGenericsType[float16.Float16]())
	require.Equal(t, BFloat16, FromGenericsType[bfloat16.BFloat16]())
	require.Equal(t, Byte, FromGenericsType[uint8]())
	require.Equal(t, Bool, FromGenericsType[bool]())
	require.Equal(t, ComplexDouble, FromGenericsType[complex128]())

	// Go's int maps to Int or Long depending on the platform.
	require.Equal(t, strconv.IntSize/8, FromGenericsType[int]().Size())

	require.Equal(t, Long, FromAny(int64(7)))
	require.Equal(t, Float, FromAny(float32(13)))
	require.Equal(t, BFloat16, FromAny(bfloat16.FromFloat32(1.0)))
	require.Equal(t, Half, FromAny(float16.Fromfloat32(3.0)))
	require.Equal(t, Invalid, FromAny("not a scalar"))
}

func TestDType_GoType(t *testing.T) {
	require.Equal(t, "int64", Long.GoStr())
	require.Equal(t, "uint8", Byte.GoStr())
	require.Equal(t, "Float16", Half.GoStr())
	require.Equal(t, "BFloat16", BFloat16.GoStr())
	require.Equal(t, "complex64", ComplexFloat.GoStr())

	for _, dtype := range DTypeValues() {
		if !dtype.IsSupported() {
			continue
		}
		require.Equal(t, dtype, FromGoType(dtype.GoType()))
	}

	// There is no Go complex32, and Invalid has no Go type either.
	require.Panics(t, func() { _ = ComplexHalf.GoType() })
	require.Panics(t, func() { _ = Invalid.GoType() })
}

func TestDType_Size(t *testing.T) {
	require.Equal(t, 8, Long.Size())
	require.Equal(t, 4, Float.Size())
	require.Equal(t, 2, BFloat16.Size())
	require.Equal(t, 4, ComplexHalf.Size())
	require.Equal(t, 16, ComplexDouble.Size())
	require.Equal(t, 64, Double.Bits())
	require.Equal(t, 128, ComplexDouble.Bits())
	require.Panics(t, func() { _ = Invalid.Size() })
}

func TestDType_SizeForDimensions(t *testing.T) {
	require.Equal(t, 2*3*8, Long.SizeForDimensions(2, 3))
	require.Equal(t, 4, Float.SizeForDimensions())
	require.Equal(t, 2, BFloat16.SizeForDimensions(1, 1, 1))
	require.Panics(t, func() { _ = Float.SizeForDimensions(2, -1) })
}

func TestDType_Predicates(t *testing.T) {
	require.True(t, Half.IsFloat())
	require.True(t, BFloat16.IsFloat16())
	require.False(t, Float.IsFloat16())
	require.False(t, ComplexFloat.IsFloat())
	require.True(t, ComplexHalf.IsComplex())
	require.True(t, Byte.IsInt())
	require.True(t, Byte.IsUnsigned())
	require.False(t, Char.IsUnsigned())
	require.False(t, Bool.IsInt())

	require.True(t, Float.IsSupported())
	require.False(t, ComplexHalf.IsSupported())
	require.False(t, Invalid.IsSupported())
}

func TestDType_RealDType(t *testing.T) {
	require.Equal(t, Half, ComplexHalf.RealDType())
	require.Equal(t, Float, ComplexFloat.RealDType())
	require.Equal(t, Double, ComplexDouble.RealDType())
	require.Equal(t, Float, Float.RealDType())
	require.Equal(t, Invalid, Int.RealDType())
}

func TestDType_IsPromotableTo(t *testing.T) {
	require.True(t, Float.IsPromotableTo(Double))
	require.False(t, Double.IsPromotableTo(Float))
	require.False(t, Char.IsPromotableTo(Float))
	require.True(t, Byte.IsPromotableTo(Long))
	require.True(t, Half.IsPromotableTo(BFloat16))
	require.True(t, ComplexHalf.IsPromotableTo(ComplexFloat))
	require.True(t, Bool.IsPromotableTo(Bool))
	require.False(t, Bool.IsPromotableTo(Int))
}
