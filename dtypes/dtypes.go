// Package dtypes defines the DType enum of element types supported by lazytensors,
// and tools to convert them to and from Go types.
//
// The canonical constant names (and hence DType.String) follow the PyTorch ScalarType
// names -- Byte, Char, Short, Int, Long, Half, Float, Double, the complex and boolean
// variants and BFloat16 -- since those are the names rendered inside shape strings
// (see the shapes package). Go-style aliases (Float32, Int64, ...) are provided in
// aliases.go.
//
// Go float16 support (commonly used by Nvidia GPUs) uses the github.com/x448/float16
// implementation, and bfloat16 uses the simple implementation in
// github.com/gomlx/gopjrt/dtypes/bfloat16.
package dtypes

import (
	"maps"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes/bfloat16"
	"github.com/x448/float16"
)

// DType is an enum of the element ("scalar") types a Shape can hold.
//
// The zero value is Invalid, so the zero value of types that embed a DType
// remains invalid until explicitly set.
type DType int32

//go:generate go tool enumer -type=DType dtypes.go

// The constants are listed in the PyTorch ScalarType order, with Invalid first.
const (
	// Invalid represents an invalid (or not set) dtype.
	Invalid DType = iota

	// Byte is an unsigned 8 bits integer.
	Byte

	// Char is a signed 8 bits integer.
	Char

	// Short is a signed 16 bits integer.
	Short

	// Int is a signed 32 bits integer.
	Int

	// Long is a signed 64 bits integer.
	Long

	// Half is an IEEE 754 16 bits floating point.
	Half

	// Float is an IEEE 754 32 bits floating point.
	Float

	// Double is an IEEE 754 64 bits floating point.
	Double

	// ComplexHalf is a pair of Half (real, imag). There is no native Go
	// equivalent, so it has no conversions, but it's still a valid element type.
	ComplexHalf

	// ComplexFloat is a pair of Float (real, imag), as in Go's complex64.
	ComplexFloat

	// ComplexDouble is a pair of Double (real, imag), as in Go's complex128.
	ComplexDouble

	// Bool is a two-state boolean.
	Bool

	// BFloat16 is a truncated 16 bits floating point: 1 bit for the sign,
	// 8 bits for the exponent and 7 bits for the mantissa.
	BFloat16
)

// MapOfNames to their dtypes. It includes the canonical (PyTorch) names and the
// Go-style aliases of the various dtypes.
// It is also later initialized to include the lower-case version of the names.
var MapOfNames = map[string]DType{
	"Invalid":       Invalid,
	"Undefined":     Invalid,
	"Byte":          Byte,
	"Uint8":         Byte,
	"Char":          Char,
	"Int8":          Char,
	"Short":         Short,
	"Int16":         Short,
	"Int":           Int,
	"Int32":         Int,
	"Long":          Long,
	"Int64":         Long,
	"Half":          Half,
	"Float16":       Half,
	"Float":         Float,
	"Float32":       Float,
	"Double":        Double,
	"Float64":       Double,
	"ComplexHalf":   ComplexHalf,
	"ComplexFloat":  ComplexFloat,
	"Complex64":     ComplexFloat,
	"ComplexDouble": ComplexDouble,
	"Complex128":    ComplexDouble,
	"Bool":          Bool,
	"BFloat16":      BFloat16,
}

func init() {
	// Only works for 32 and 64 bits platforms.
	if strconv.IntSize != 32 && strconv.IntSize != 64 {
		exceptions.Panicf("cannot use int of %d bits with lazytensors -- only platforms with int32 or int64 are supported", strconv.IntSize)
	}

	// Add a mapping to the lower-case version of the dtype names.
	keys := slices.Collect(maps.Keys(MapOfNames))
	for _, key := range keys {
		lowerKey := strings.ToLower(key)
		if lowerKey == key {
			continue
		}
		if _, found := MapOfNames[lowerKey]; found {
			continue
		}
		MapOfNames[lowerKey] = MapOfNames[key]
	}
}

// FromGenericsType returns the DType for the given Go type that this package knows about.
func FromGenericsType[T Supported]() DType {
	var t T
	switch (any(t)).(type) {
	case float64:
		return Double
	case float32:
		return Float
	case float16.Float16:
		return Half
	case bfloat16.BFloat16:
		return BFloat16
	case int:
		switch strconv.IntSize {
		case 32:
			return Int
		case 64:
			return Long
		default:
			exceptions.Panicf("cannot use int of %d bits with lazytensors -- try using int32 or int64", strconv.IntSize)
		}
	case int64:
		return Long
	case int32:
		return Int
	case int16:
		return Short
	case int8:
		return Char
	case uint8:
		return Byte
	case bool:
		return Bool
	case complex64:
		return ComplexFloat
	case complex128:
		return ComplexDouble
	}
	return Invalid
}

// FromGoType returns the DType for the given "reflect.Type".
// It returns Invalid for types with no corresponding DType.
func FromGoType(t reflect.Type) DType {
	if t == float16Type {
		return Half
	} else if t == bfloat16Type {
		return BFloat16
	}
	switch t.Kind() {
	case reflect.Int:
		switch strconv.IntSize {
		case 32:
			return Int
		case 64:
			return Long
		default:
			exceptions.Panicf("cannot use int of %d bits with lazytensors -- try using int32 or int64", strconv.IntSize)
		}
	case reflect.Int64:
		return Long
	case reflect.Int32:
		return Int
	case reflect.Int16:
		return Short
	case reflect.Int8:
		return Char

	case reflect.Uint8:
		return Byte

	case reflect.Bool:
		return Bool

	case reflect.Float32:
		return Float
	case reflect.Float64:
		return Double

	case reflect.Complex64:
		return ComplexFloat
	case reflect.Complex128:
		return ComplexDouble
	}
	return Invalid
}

// FromAny introspects the underlying type of any and returns the corresponding DType.
// Non-scalar types, or unsupported types return Invalid.
func FromAny(value any) DType {
	return FromGoType(reflect.TypeOf(value))
}

// Size returns the number of bytes per element for the given DType.
// It panics for Invalid.
func (dtype DType) Size() int {
	switch dtype {
	case Byte, Char, Bool:
		return 1
	case Short, Half, BFloat16:
		return 2
	case Int, Float, ComplexHalf:
		return 4
	case Long, Double, ComplexFloat:
		return 8
	case ComplexDouble:
		return 16
	default:
		exceptions.Panicf("unknown dtype %q (%d) in DType.Size", dtype, dtype)
		panic(nil)
	}
}

// Bits returns the number of bits per element for the given DType.
func (dtype DType) Bits() int {
	return dtype.Size() * 8
}

// Memory returns the number of bytes per element for the given DType.
// It's an alias to Size, converted to uintptr.
func (dtype DType) Memory() uintptr {
	return uintptr(dtype.Size())
}

// SizeForDimensions returns the size in bytes used for the given dimensions.
// This is a safer method than Size in case the dtype uses an underlying size that is not multiple of 8 bits.
//
// It works also for scalar (one element) shapes where the list of dimensions is empty.
func (dtype DType) SizeForDimensions(dimensions ...int) int {
	numElements := 1
	for _, dim := range dimensions {
		if dim < 0 {
			exceptions.Panicf("dim cannot be negative for SizeForDimensions, got %v", dimensions)
		}
		numElements *= dim
	}

	// Default is simply the number of elements times the size in bytes per element.
	return numElements * dtype.Size()
}

// Pre-generate constant reflect.TypeOf for convenience.
var (
	float32Type  = reflect.TypeOf(float32(0))
	float64Type  = reflect.TypeOf(float64(0))
	float16Type  = reflect.TypeOf(float16.Float16(0))
	bfloat16Type = reflect.TypeOf(bfloat16.BFloat16(0))
)

// GoType returns the Go `reflect.Type` corresponding to the DType.
//
// It panics for Invalid and for ComplexHalf, which has no native Go equivalent
// (there is no complex32). See IsSupported.
func (dtype DType) GoType() reflect.Type {
	switch dtype {
	case Long:
		return reflect.TypeOf(int64(0))
	case Int:
		return reflect.TypeOf(int32(0))
	case Short:
		return reflect.TypeOf(int16(0))
	case Char:
		return reflect.TypeOf(int8(0))

	case Byte:
		return reflect.TypeOf(uint8(0))

	case Bool:
		return reflect.TypeOf(true)

	case Half:
		return float16Type
	case BFloat16:
		return bfloat16Type
	case Float:
		return float32Type
	case Double:
		return float64Type

	case ComplexFloat:
		return reflect.TypeOf(complex64(0))
	case ComplexDouble:
		return reflect.TypeOf(complex128(0))

	default:
		exceptions.Panicf("dtype %q (%d) has no Go equivalent type", dtype, dtype)
		panic(nil)
	}
}

// GoStr converts dtype to the corresponding Go type and convert that to string.
// Notice the names are different from the DType names (so the `Long` dtype is
// `int64` in Go).
func (dtype DType) GoStr() string {
	return dtype.GoType().Name()
}

// IsFloat returns whether dtype is a floating point type, including the 16 bits variants.
// It returns false for complex numbers.
func (dtype DType) IsFloat() bool {
	return dtype == Float || dtype == Double || dtype == Half || dtype == BFloat16
}

// IsFloat16 returns whether dtype is a float with 16 bits: [Half] or [BFloat16].
func (dtype DType) IsFloat16() bool {
	return dtype == Half || dtype == BFloat16
}

// IsComplex returns whether dtype is a complex number type.
func (dtype DType) IsComplex() bool {
	return dtype == ComplexHalf || dtype == ComplexFloat || dtype == ComplexDouble
}

// IsInt returns whether dtype is an integer type.
func (dtype DType) IsInt() bool {
	return dtype == Long || dtype == Int || dtype == Short || dtype == Char || dtype == Byte
}

// IsUnsigned returns whether dtype is one of the unsigned types (only Byte for now).
func (dtype DType) IsUnsigned() bool {
	return dtype == Byte
}

// IsSupported returns whether dtype has a Go native (or package provided, for the
// 16 bits floats) representation. ComplexHalf and Invalid don't.
func (dtype DType) IsSupported() bool {
	return dtype == Bool || dtype == Half || dtype == BFloat16 || dtype == Float || dtype == Double ||
		dtype == Long || dtype == Int || dtype == Short || dtype == Char || dtype == Byte ||
		dtype == ComplexFloat || dtype == ComplexDouble
}

// RealDType returns the real component of complex dtypes.
// For float dtypes, it returns itself.
//
// It returns Invalid for other non-(complex or float) dtypes.
func (dtype DType) RealDType() DType {
	if dtype.IsFloat() {
		return dtype
	}
	switch dtype {
	case ComplexHalf:
		return Half
	case ComplexFloat:
		return Float
	case ComplexDouble:
		return Double
	default:
		// RealDType is not defined for other dtypes.
		return Invalid
	}
}

// IsPromotableTo returns whether dtype can be promoted to target.
//
// For example, Int can be promoted to Long, but not to Byte.
//
// See https://openxla.org/stablehlo/spec#functions_on_types for reference.
func (dtype DType) IsPromotableTo(target DType) bool {
	if dtype == target {
		return true
	}

	// Check for same dtype category:
	isSameType := (dtype == Bool && target == Bool) ||
		(dtype.IsInt() && target.IsInt()) ||
		(dtype.IsFloat() && target.IsFloat()) ||
		(dtype.IsComplex() && target.IsComplex())

	if !isSameType {
		return false
	}

	// For integer, float and complex types, check bitwidth.
	if dtype.IsInt() || dtype.IsFloat() || dtype.IsComplex() {
		return dtype.Bits() <= target.Bits()
	}
	return false
}

// Supported lists the Go types that lazytensors knows how to convert.
// Used as traits for generics.
//
// Notice Go's `int` type is not portable, since it may translate to dtypes Int or
// Long depending on the platform.
type Supported interface {
	bool | float16.Float16 | bfloat16.BFloat16 |
		float32 | float64 | int | int8 | int16 | int32 | int64 | uint8 |
		complex64 | complex128
}

// Number represents the Go numeric types corresponding to supported DType's.
// Used as traits for generics.
//
// It includes complex numbers.
// It doesn't include float16.Float16 or bfloat16.BFloat16 because they are not native
// number types.
type Number interface {
	float32 | float64 | int | int8 | int16 | int32 | int64 | uint8 | complex64 | complex128
}

// NumberNotComplex represents the Go numeric types corresponding to supported
// DType's, except the complex numbers.
// Used as a Generics constraint.
//
// See also Number.
type NumberNotComplex interface {
	float32 | float64 | int | int8 | int16 | int32 | int64 | uint8
}

// GoFloat represent a continuous Go numeric type supported by lazytensors.
// It doesn't include complex numbers.
type GoFloat interface {
	float32 | float64
}
