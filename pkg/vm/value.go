package vm

import (
	"fmt"
	"math"
	"strconv"
	"unsafe"
)

type ValueType uint8

const (
	TypeUndefined ValueType = iota
	TypeNull

	TypeBoolean

	TypeFloatNumber
	TypeIntegerNumber

	TypeString

	TypeObject
	TypeFunction
	TypeArray
)

// String returns a human-readable string representation of the ValueType
func (vt ValueType) String() string {
	switch vt {
	case TypeUndefined:
		return "undefined"
	case TypeNull:
		return "null"
	case TypeBoolean:
		return "boolean"
	case TypeFloatNumber, TypeIntegerNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeObject:
		return "object"
	case TypeFunction:
		return "function"
	case TypeArray:
		return "array"
	default:
		return "unknown"
	}
}

// Value is the tagged runtime value. Heap kinds carry their payload behind
// obj; numbers and booleans live in the payload word.
type Value struct {
	typ     ValueType
	payload uint64
	obj     unsafe.Pointer
}

type StringObject struct {
	value string
}

var (
	Undefined = Value{typ: TypeUndefined}
	Null      = Value{typ: TypeNull}
	True      = Value{typ: TypeBoolean, payload: 1}
	False     = Value{typ: TypeBoolean, payload: 0}
	NaN       = Value{typ: TypeFloatNumber, payload: math.Float64bits(math.NaN())}
)

func NumberValue(value float64) Value {
	return Value{typ: TypeFloatNumber, payload: math.Float64bits(value)}
}

func IntegerValue(value int32) Value {
	return Value{typ: TypeIntegerNumber, payload: uint64(int64(value))}
}

func BooleanValue(value bool) Value {
	if value {
		return True
	}
	return False
}

func NewString(value string) Value {
	return Value{typ: TypeString, obj: unsafe.Pointer(&StringObject{value: value})}
}

func (v Value) Type() ValueType { return v.typ }

func (v Value) IsUndefined() bool { return v.typ == TypeUndefined }
func (v Value) IsNull() bool      { return v.typ == TypeNull }
func (v Value) IsBoolean() bool   { return v.typ == TypeBoolean }
func (v Value) IsString() bool    { return v.typ == TypeString }
func (v Value) IsArray() bool     { return v.typ == TypeArray }
func (v Value) IsCallable() bool  { return v.typ == TypeFunction }

func (v Value) IsNumber() bool {
	return v.typ == TypeFloatNumber || v.typ == TypeIntegerNumber
}

// IsObject reports whether the value is an object reference. Function
// entities and arrays are objects too.
func (v Value) IsObject() bool {
	return v.typ == TypeObject || v.typ == TypeFunction || v.typ == TypeArray
}

func (v Value) AsBoolean() bool {
	return v.payload != 0
}

func (v Value) AsFloat() float64 {
	return math.Float64frombits(v.payload)
}

func (v Value) AsInteger() int32 {
	return int32(int64(v.payload))
}

// ToFloat coerces either number representation to float64.
func (v Value) ToFloat() float64 {
	if v.typ == TypeIntegerNumber {
		return float64(v.AsInteger())
	}
	return v.AsFloat()
}

func (v Value) AsString() string {
	return (*StringObject)(v.obj).value
}

func (v Value) AsPlainObject() *PlainObject {
	if v.typ != TypeObject {
		return nil
	}
	return (*PlainObject)(v.obj)
}

func (v Value) AsFunction() *FunctionObject {
	if v.typ != TypeFunction {
		return nil
	}
	return (*FunctionObject)(v.obj)
}

func (v Value) AsArray() *ArrayObject {
	if v.typ != TypeArray {
		return nil
	}
	return (*ArrayObject)(v.obj)
}

// SameValue is the identity-aware equality used by the prototype mutator:
// NaN equals NaN, +0 and -0 are distinct, objects compare by reference.
func SameValue(x, y Value) bool {
	if x.typ != y.typ {
		// Integer and float representations of the same number are the
		// same value as far as the language is concerned.
		if x.IsNumber() && y.IsNumber() {
			return sameValueNumber(x.ToFloat(), y.ToFloat())
		}
		return false
	}
	switch x.typ {
	case TypeUndefined, TypeNull:
		return true
	case TypeBoolean:
		return x.AsBoolean() == y.AsBoolean()
	case TypeIntegerNumber:
		return x.AsInteger() == y.AsInteger()
	case TypeFloatNumber:
		return sameValueNumber(x.AsFloat(), y.AsFloat())
	case TypeString:
		return x.AsString() == y.AsString()
	default:
		// Objects, functions and arrays compare by reference.
		return x.obj == y.obj
	}
}

func sameValueNumber(xf, yf float64) bool {
	if math.IsNaN(xf) && math.IsNaN(yf) {
		return true
	}
	if xf == 0 && yf == 0 {
		// +0 and -0 are distinct under SameValue.
		return math.Signbit(xf) == math.Signbit(yf)
	}
	return xf == yf
}

// Is implements SameValueZero: like SameValue except +0 equals -0.
func (v Value) Is(other Value) bool {
	if v.typ != other.typ && v.IsNumber() && other.IsNumber() {
		vf, of := v.ToFloat(), other.ToFloat()
		if math.IsNaN(vf) && math.IsNaN(of) {
			return true
		}
		return vf == of
	}
	if v.typ != other.typ {
		return false
	}
	if v.typ == TypeFloatNumber {
		vf, of := v.AsFloat(), other.AsFloat()
		if math.IsNaN(vf) && math.IsNaN(of) {
			return true
		}
		return vf == of
	}
	return SameValue(v, other)
}

// Inspect returns a debug rendering of the value.
func (v Value) Inspect() string {
	switch v.typ {
	case TypeUndefined:
		return "undefined"
	case TypeNull:
		return "null"
	case TypeBoolean:
		if v.AsBoolean() {
			return "true"
		}
		return "false"
	case TypeIntegerNumber:
		return strconv.FormatInt(int64(v.AsInteger()), 10)
	case TypeFloatNumber:
		f := v.AsFloat()
		if math.IsNaN(f) {
			return "NaN"
		}
		return strconv.FormatFloat(f, 'g', -1, 64)
	case TypeString:
		return strconv.Quote(v.AsString())
	case TypeObject:
		return "[object Object]"
	case TypeFunction:
		return "[function]"
	case TypeArray:
		arr := v.AsArray()
		return fmt.Sprintf("[array length=%d]", arr.Length())
	default:
		return "<unknown>"
	}
}
