package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	BoolType
	StringType
	IntType
	UintType
	FloatType
	DecimalType
	ObjectType
	ArrayType
)

var typeNames = map[Type]string{
	NullType:    "Null",
	BoolType:    "Bool",
	StringType:  "String",
	IntType:     "Int",
	UintType:    "Uint",
	FloatType:   "Float",
	DecimalType: "Decimal",
	ObjectType:  "Object",
	ArrayType:   "Array",
}

func (t Type) String() string {
	s, ok := typeNames[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for tt, name := range typeNames {
		if name == string(d) {
			*t = tt
			return nil
		}
	}
	return fmt.Errorf("unrecognized type %q", d)
}

func Types() []Type {
	return []Type{
		NullType,
		BoolType,
		StringType,
		IntType,
		UintType,
		FloatType,
		DecimalType,
		ObjectType,
		ArrayType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ObjectType, ArrayType:
		return false
	default:
		return true
	}
}

func (t Type) IsNumber() bool {
	switch t {
	case IntType, UintType, FloatType, DecimalType:
		return true
	default:
		return false
	}
}
