package dtypes

// Aliases to the dtypes under their Go-style names.
const (
	// Undefined (an alias for Invalid) is how PyTorch documentation refers to an
	// unset dtype.
	Undefined = Invalid

	// Uint8 (an alias for Byte) is the only unsigned integer type.
	Uint8 = Byte

	Int8  = Char
	Int16 = Short
	Int32 = Int
	Int64 = Long

	Float16 = Half
	Float32 = Float
	Float64 = Double

	Complex64  = ComplexFloat
	Complex128 = ComplexDouble
)
