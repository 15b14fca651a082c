package vm

import (
	"math"
	"testing"
)

func TestSameValueNumbers(t *testing.T) {
	if !SameValue(NaN, NaN) {
		t.Errorf("expected SameValue(NaN, NaN) to be true")
	}
	if SameValue(NumberValue(0), NumberValue(math.Copysign(0, -1))) {
		t.Errorf("expected SameValue(+0, -0) to be false")
	}
	if !SameValue(NumberValue(0), NumberValue(0)) {
		t.Errorf("expected SameValue(+0, +0) to be true")
	}
	if !SameValue(IntegerValue(42), NumberValue(42)) {
		t.Errorf("expected integer 42 and float 42 to be the same value")
	}
	if SameValue(IntegerValue(1), IntegerValue(2)) {
		t.Errorf("expected SameValue(1, 2) to be false")
	}
}

func TestSameValueZeroSigns(t *testing.T) {
	// Is implements SameValueZero: +0 equals -0 there, unlike SameValue.
	if !NumberValue(0).Is(NumberValue(math.Copysign(0, -1))) {
		t.Errorf("expected SameValueZero(+0, -0) to be true")
	}
	if !NaN.Is(NaN) {
		t.Errorf("expected SameValueZero(NaN, NaN) to be true")
	}
}

func TestSameValueSingletonsAndStrings(t *testing.T) {
	if !SameValue(Undefined, Undefined) || !SameValue(Null, Null) {
		t.Errorf("expected singleton types to equal themselves")
	}
	if SameValue(Undefined, Null) {
		t.Errorf("expected Undefined and Null to differ")
	}
	if !SameValue(NewString("abc"), NewString("abc")) {
		t.Errorf("expected equal strings to be the same value")
	}
	if SameValue(NewString("abc"), NewString("abd")) {
		t.Errorf("expected different strings to differ")
	}
	if !SameValue(True, BooleanValue(true)) {
		t.Errorf("expected boolean true to equal itself")
	}
}

func TestSameValueObjectIdentity(t *testing.T) {
	a := NewObject(Null)
	b := NewObject(Null)
	if !SameValue(a, a) {
		t.Errorf("expected an object to be the same value as itself")
	}
	if SameValue(a, b) {
		t.Errorf("expected distinct objects to differ")
	}
}

func TestValuePredicates(t *testing.T) {
	obj := NewObject(Null)
	fn := CreateNative(Null, nil, func(this Value, args []Value, ctx *Context) (Value, error) {
		return Undefined, nil
	}, ThisNonLexical)
	arr := NewArray()

	if !obj.IsObject() || !fn.IsObject() || !arr.IsObject() {
		t.Errorf("expected objects, functions and arrays to report IsObject")
	}
	if !fn.IsCallable() || obj.IsCallable() {
		t.Errorf("expected only function entities to be callable")
	}
	if !Null.IsNull() || !Undefined.IsUndefined() {
		t.Errorf("singleton predicates broken")
	}
	if !IntegerValue(1).IsNumber() || !NumberValue(1.5).IsNumber() {
		t.Errorf("expected both number representations to report IsNumber")
	}
}

func TestToFloatCoercion(t *testing.T) {
	if IntegerValue(7).ToFloat() != 7.0 {
		t.Errorf("expected integer 7 to coerce to 7.0")
	}
	if NumberValue(2.5).ToFloat() != 2.5 {
		t.Errorf("expected float round-trip")
	}
}
