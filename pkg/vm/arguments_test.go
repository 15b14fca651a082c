package vm

import "testing"

func TestArgumentsObjectShape(t *testing.T) {
	args := MakeArgumentsObject([]Value{NewString("a"), IntegerValue(2)})
	obj := args.AsPlainObject()

	// Unmapped marker: the slot holds Undefined, distinct from unset (Null).
	if !obj.GetInternalSlot(SlotParameterMap).IsUndefined() {
		t.Errorf("expected ParameterMap slot explicitly Undefined")
	}

	length := mustProp(t, obj, "length")
	if v, _ := length.Value(); v.AsInteger() != 2 {
		t.Errorf("expected length 2, got %s", v.Inspect())
	}
	if !length.Writable() {
		t.Errorf("expected writable length")
	}

	first := mustProp(t, obj, "0")
	if v, _ := first.Value(); v.AsString() != "a" {
		t.Errorf("expected arguments[0] == \"a\", got %s", v.Inspect())
	}
	if !first.Writable() || !first.Enumerable() || !first.Configurable() {
		t.Errorf("index property flags mismatch: writable=%v enumerable=%v configurable=%v",
			first.Writable(), first.Enumerable(), first.Configurable())
	}

	if _, ok := obj.GetOwnProperty("2"); ok {
		t.Errorf("expected no property past the argument count")
	}
	if !obj.GetPrototypeOf().IsNull() {
		t.Errorf("expected Null prototype on the arguments object")
	}
}

func TestArgumentsObjectEmpty(t *testing.T) {
	obj := MakeArgumentsObject(nil).AsPlainObject()
	length := mustProp(t, obj, "length")
	if v, _ := length.Value(); v.AsInteger() != 0 {
		t.Errorf("expected length 0, got %s", v.Inspect())
	}
	if _, ok := obj.GetOwnProperty("0"); ok {
		t.Errorf("expected no index properties")
	}
}
