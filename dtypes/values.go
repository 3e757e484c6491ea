package dtypes

import (
	"math"
	"reflect"

	"github.com/chewxy/math32"
	"github.com/gomlx/gopjrt/dtypes/bfloat16"
	"github.com/x448/float16"
)

// LowestValue for dtype converted to the corresponding Go type.
// For float values it will return negative infinite.
// There is no lowest value for complex numbers, since they are not ordered.
func (dtype DType) LowestValue() any {
	switch dtype {
	case Long:
		return int64(math.MinInt64)
	case Int:
		return int32(math.MinInt32)
	case Short:
		return int16(math.MinInt16)
	case Char:
		return int8(math.MinInt8)

	case Byte:
		return uint8(0)

	case Bool:
		return false

	case Float:
		return math32.Inf(-1)
	case Double:
		return math.Inf(-1)
	case Half:
		return float16.Inf(-1)
	case BFloat16:
		return bfloat16.Inf(-1)

	default:
		// Complex numbers are not ordered and return zero. Dtypes with no Go
		// representation (Invalid, ComplexHalf) return nil.
		if !dtype.IsSupported() {
			return nil
		}
		return reflect.New(dtype.GoType()).Elem().Interface()
	}
}

// HighestValue for dtype converted to the corresponding Go type.
// For float values it will return infinite.
// There is no highest value for complex numbers, since they are not ordered.
func (dtype DType) HighestValue() any {
	switch dtype {
	case Long:
		return int64(math.MaxInt64)
	case Int:
		return int32(math.MaxInt32)
	case Short:
		return int16(math.MaxInt16)
	case Char:
		return int8(math.MaxInt8)

	case Byte:
		return uint8(math.MaxUint8)

	case Bool:
		return true

	case Float:
		return math32.Inf(1)
	case Double:
		return math.Inf(1)
	case Half:
		return float16.Inf(1)
	case BFloat16:
		return bfloat16.Inf(1)

	default:
		// Complex numbers are not ordered and return zero. Dtypes with no Go
		// representation (Invalid, ComplexHalf) return nil.
		if !dtype.IsSupported() {
			return nil
		}
		return reflect.New(dtype.GoType()).Elem().Interface()
	}
}

// SmallestNonZeroValueForDType is the smallest non-zero-value for the dtype.
// Only useful for float types.
// The return value is converted to the corresponding Go type.
// There is no smallest non-zero value for complex numbers, since they are not ordered.
func (dtype DType) SmallestNonZeroValueForDType() any {
	switch dtype {
	case Long:
		return int64(1)
	case Int:
		return int32(1)
	case Short:
		return int16(1)
	case Char:
		return int8(1)

	case Byte:
		return uint8(1)

	case Bool:
		return true

	case Float:
		return float32(math32.SmallestNonzeroFloat32)
	case Double:
		return math.SmallestNonzeroFloat64
	case Half:
		return float16.Float16(0x0001) // 1p-24, see discussion in https://github.com/x448/float16/pull/46
	case BFloat16:
		return bfloat16.SmallestNonzero

	default:
		// Complex numbers are not ordered and return zero. Dtypes with no Go
		// representation (Invalid, ComplexHalf) return nil.
		if !dtype.IsSupported() {
			return nil
		}
		return reflect.New(dtype.GoType()).Elem().Interface()
	}
}
