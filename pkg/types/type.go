package types

import "fmt"

// Type enumerates the value type tags stored in the upper six bits of a
// packed type byte. The numbers are part of the wire format.
type Type uint8

const (
	TypeNull          Type = 0
	TypeInt           Type = 1
	TypeUint          Type = 2
	TypeFloat         Type = 3
	TypeKey           Type = 4
	TypeString        Type = 5
	TypeIndirectInt   Type = 6
	TypeIndirectUint  Type = 7
	TypeIndirectFloat Type = 8
	TypeMap           Type = 9
	TypeVector        Type = 10

	// Typed vectors: size prefix, no type table.
	TypeVectorInt    Type = 11
	TypeVectorUint   Type = 12
	TypeVectorFloat  Type = 13
	TypeVectorKey    Type = 14
	TypeVectorString Type = 15

	// Fixed typed vectors: no size prefix, no type table.
	TypeVectorInt2   Type = 16
	TypeVectorUint2  Type = 17
	TypeVectorFloat2 Type = 18
	TypeVectorInt3   Type = 19
	TypeVectorUint3  Type = 20
	TypeVectorFloat3 Type = 21
	TypeVectorInt4   Type = 22
	TypeVectorUint4  Type = 23
	TypeVectorFloat4 Type = 24

	TypeBlob Type = 25
	TypeBool Type = 26

	TypeVectorBool Type = 36
)

var typeNames = [...]string{
	TypeNull:          "Null",
	TypeInt:           "Int",
	TypeUint:          "UInt",
	TypeFloat:         "Float",
	TypeKey:           "Key",
	TypeString:        "String",
	TypeIndirectInt:   "IndirectInt",
	TypeIndirectUint:  "IndirectUInt",
	TypeIndirectFloat: "IndirectFloat",
	TypeMap:           "Map",
	TypeVector:        "Vector",
	TypeVectorInt:     "VectorInt",
	TypeVectorUint:    "VectorUInt",
	TypeVectorFloat:   "VectorFloat",
	TypeVectorKey:     "VectorKey",
	TypeVectorString:  "VectorString",
	TypeVectorInt2:    "VectorInt2",
	TypeVectorUint2:   "VectorUInt2",
	TypeVectorFloat2:  "VectorFloat2",
	TypeVectorInt3:    "VectorInt3",
	TypeVectorUint3:   "VectorUInt3",
	TypeVectorFloat3:  "VectorFloat3",
	TypeVectorInt4:    "VectorInt4",
	TypeVectorUint4:   "VectorUInt4",
	TypeVectorFloat4:  "VectorFloat4",
	TypeBlob:          "Blob",
	TypeBool:          "Bool",
}

// String implements the Stringer interface for Type.
func (t Type) String() string {
	if t == TypeVectorBool {
		return "VectorBool"
	}
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("UNKNOWN_TYPE_%d", uint8(t))
}

// Valid reports whether t is one of the tags defined by the wire format.
// Anything else decoded from a buffer signals corruption.
func (t Type) Valid() bool {
	return t <= TypeBool || t == TypeVectorBool
}

// --- Predicates. None of them can fail. ---

func (t Type) IsNull() bool   { return t == TypeNull }
func (t Type) IsInt() bool    { return t == TypeInt || t == TypeIndirectInt }
func (t Type) IsUint() bool   { return t == TypeUint || t == TypeIndirectUint }
func (t Type) IsFloat() bool  { return t == TypeFloat || t == TypeIndirectFloat }
func (t Type) IsKey() bool    { return t == TypeKey }
func (t Type) IsString() bool { return t == TypeString }
func (t Type) IsMap() bool    { return t == TypeMap }
func (t Type) IsBlob() bool   { return t == TypeBlob }
func (t Type) IsBool() bool   { return t == TypeBool }

// IsNumeric is the union of IsInt, IsUint and IsFloat.
func (t Type) IsNumeric() bool {
	return t.IsInt() || t.IsUint() || t.IsFloat()
}

// IsIndirect reports whether the value is stored behind a backward offset
// rather than inline in its slot.
func (t Type) IsIndirect() bool {
	return t >= TypeIndirectInt && t <= TypeIndirectFloat
}

// IsVector reports whether t is any container tag: maps, generic, typed and
// fixed vectors, and VectorBool.
func (t Type) IsVector() bool {
	return (t >= TypeMap && t <= TypeVectorFloat4) || t == TypeVectorBool
}

// IsTypedVector reports whether t is a size-prefixed homogeneous vector.
func (t Type) IsTypedVector() bool {
	return (t >= TypeVectorInt && t <= TypeVectorString) || t == TypeVectorBool
}

// IsFixedTypedVector reports whether t is a 2, 3 or 4 element tuple.
func (t Type) IsFixedTypedVector() bool {
	return t >= TypeVectorInt2 && t <= TypeVectorFloat4
}
