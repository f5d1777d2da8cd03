package hql

// Scalar is a property value type. The enumeration is fixed: text, boolean,
// four float widths, seven integer widths, an opaque identifier type, and a
// date/time type.
type Scalar string

const (
	TypeString  Scalar = "String"
	TypeBoolean Scalar = "Boolean"

	TypeF16  Scalar = "F16"
	TypeF32  Scalar = "F32"
	TypeF64  Scalar = "F64"
	TypeF128 Scalar = "F128"

	TypeI8  Scalar = "I8"
	TypeI16 Scalar = "I16"
	TypeI32 Scalar = "I32"
	TypeI64 Scalar = "I64"
	TypeU8  Scalar = "U8"
	TypeU16 Scalar = "U16"
	TypeU32 Scalar = "U32"

	TypeID   Scalar = "ID"
	TypeDate Scalar = "Date"
)

// Scalars lists every scalar type in declaration order.
var Scalars = []Scalar{
	TypeString, TypeBoolean,
	TypeF16, TypeF32, TypeF64, TypeF128,
	TypeI8, TypeI16, TypeI32, TypeI64, TypeU8, TypeU16, TypeU32,
	TypeID, TypeDate,
}

// String returns the HQL spelling of the scalar.
func (s Scalar) String() string { return string(s) }

// Numeric reports whether the scalar is an integer or float width.
func (s Scalar) Numeric() bool {
	switch s {
	case TypeF16, TypeF32, TypeF64, TypeF128,
		TypeI8, TypeI16, TypeI32, TypeI64, TypeU8, TypeU16, TypeU32:
		return true
	}
	return false
}

// Quoted reports whether literal values of the scalar render inside double
// quotes. Date is quoted except for the NOW keyword, which the caller
// checks separately.
func (s Scalar) Quoted() bool {
	return s == TypeString || s == TypeDate
}

// Valid reports whether s is one of the declared scalar types.
func (s Scalar) Valid() bool {
	for _, t := range Scalars {
		if s == t {
			return true
		}
	}
	return false
}
