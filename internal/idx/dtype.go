package idx

// DataType is the element type code stored in the third byte of the magic number.
type DataType byte

// Element type codes defined by the IDX format.
const (
	Uint8   DataType = 0x08
	Int8    DataType = 0x09
	Int16   DataType = 0x0B
	Int32   DataType = 0x0C
	Float32 DataType = 0x0D
	Float64 DataType = 0x0E
)

// Element is a constraint for the Go types IDX data can be decoded into.
type Element interface {
	uint8 | int8 | int16 | int32 | float32 | float64
}

// Size returns the byte size of the data type, or 0 if it is unknown.
func (dt DataType) Size() int {
	switch dt {
	case Uint8, Int8:
		return 1
	case Int16:
		return 2
	case Int32, Float32:
		return 4
	case Float64:
		return 8
	default:
		return 0
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Uint8:
		return "uint8"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// dataTypeOf infers the DataType from a generic type T.
func dataTypeOf[T Element]() DataType {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return Uint8
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case float32:
		return Float32
	default:
		return Float64
	}
}
