package vm

import (
	"testing"
)

func TestGetOwnPropertyAbsentSentinel(t *testing.T) {
	obj := NewObject(Null).AsPlainObject()

	// A never-touched key returns the absent sentinel, stable across reads.
	for i := 0; i < 3; i++ {
		if _, ok := obj.GetOwnProperty("x"); ok {
			t.Fatalf("expected absent property on read %d", i)
		}
	}

	// A data descriptor holding Undefined is present, never absent.
	obj.InsertProperty("x", NewProperty().WithValue(Undefined))
	d, ok := obj.GetOwnProperty("x")
	if !ok {
		t.Fatalf("expected property after insert")
	}
	v, has := d.Value()
	if !has || !v.IsUndefined() {
		t.Errorf("expected data descriptor holding Undefined, got has=%v v=%v", has, v.Inspect())
	}
}

func TestGetOwnPropertyProjection(t *testing.T) {
	obj := NewObject(Null).AsPlainObject()

	obj.InsertProperty("data", NewProperty().
		WithValue(IntegerValue(7)).
		WithWritable(true).
		WithEnumerable(true).
		WithConfigurable(false))
	d, ok := obj.GetOwnProperty("data")
	if !ok {
		t.Fatalf("expected data property")
	}
	if !d.IsDataDescriptor() || d.IsAccessorDescriptor() {
		t.Errorf("expected a pure data descriptor projection")
	}
	if v, _ := d.Value(); v.AsInteger() != 7 {
		t.Errorf("expected projected value 7, got %s", v.Inspect())
	}
	if !d.Writable() || !d.Enumerable() || d.Configurable() {
		t.Errorf("projected flags mismatch: writable=%v enumerable=%v configurable=%v",
			d.Writable(), d.Enumerable(), d.Configurable())
	}

	getter := CreateNative(Null, nil, func(this Value, args []Value, ctx *Context) (Value, error) {
		return IntegerValue(1), nil
	}, ThisNonLexical)
	obj.InsertProperty("acc", NewProperty().
		WithGetter(getter).
		WithEnumerable(true).
		WithConfigurable(true))
	a, ok := obj.GetOwnProperty("acc")
	if !ok {
		t.Fatalf("expected accessor property")
	}
	if !a.IsAccessorDescriptor() || a.IsDataDescriptor() {
		t.Errorf("expected a pure accessor descriptor projection")
	}
	if g, has := a.Getter(); !has || !SameValue(g, getter) {
		t.Errorf("expected projected getter")
	}
	if _, has := a.Value(); has {
		t.Errorf("accessor projection must not expose a value")
	}
}

func TestInsertPropertyOverwrites(t *testing.T) {
	obj := NewObject(Null).AsPlainObject()
	obj.InsertProperty("k", NewProperty().WithValue(IntegerValue(1)).WithWritable(false))
	// Insert performs no validity checking: overwriting a non-writable
	// property is the caller's responsibility and must succeed.
	obj.InsertProperty("k", NewProperty().WithValue(IntegerValue(2)))
	d, _ := obj.GetOwnProperty("k")
	if v, _ := d.Value(); v.AsInteger() != 2 {
		t.Errorf("expected unconditional overwrite, got %s", v.Inspect())
	}
}

func TestRemovePropertyNoOpWhenAbsent(t *testing.T) {
	obj := NewObject(Null).AsPlainObject()
	obj.RemoveProperty("missing") // no-op
	obj.InsertProperty("k", NewProperty().WithValue(True))
	obj.RemoveProperty("k")
	if _, ok := obj.GetOwnProperty("k"); ok {
		t.Errorf("expected property removed")
	}
}

func TestInternalSlotNullVersusUndefined(t *testing.T) {
	obj := NewObject(Null).AsPlainObject()
	if !obj.GetInternalSlot("custom").IsNull() {
		t.Errorf("expected unset slot to read as Null")
	}
	obj.SetInternalSlot("custom", Undefined)
	if !obj.GetInternalSlot("custom").IsUndefined() {
		t.Errorf("expected slot explicitly holding Undefined to read as Undefined")
	}
	obj.SetInternalSlot("custom", IntegerValue(3))
	if obj.GetInternalSlot("custom").AsInteger() != 3 {
		t.Errorf("expected slot overwrite")
	}
}

func TestNewObjectSlots(t *testing.T) {
	protoVal := NewObject(Null)
	obj := NewObject(protoVal).AsPlainObject()
	if !SameValue(obj.GetPrototypeOf(), protoVal) {
		t.Errorf("expected prototype slot set at creation")
	}
	if !obj.GetInternalSlot(SlotExtensible).AsBoolean() {
		t.Errorf("expected new objects to be extensible")
	}
}

func TestSetPrototypeOfNoOpOnCurrent(t *testing.T) {
	protoVal := NewObject(Null)
	obj := NewObject(protoVal).AsPlainObject()
	if !obj.SetPrototypeOf(protoVal) {
		t.Errorf("expected setting the current prototype to succeed as no-op")
	}
	if !SameValue(obj.GetPrototypeOf(), protoVal) {
		t.Errorf("expected prototype unchanged")
	}
}

func TestSetPrototypeOfRejectsCycle(t *testing.T) {
	aVal := NewObject(Null)
	bVal := NewObject(aVal) // B's prototype is A
	b := bVal.AsPlainObject()

	a := aVal.AsPlainObject()
	if a.SetPrototypeOf(bVal) {
		t.Errorf("expected prototype cycle to be rejected")
	}
	if !a.GetPrototypeOf().IsNull() {
		t.Errorf("expected A's prototype unchanged after rejected mutation")
	}
	// B is untouched too.
	if !SameValue(b.GetPrototypeOf(), aVal) {
		t.Errorf("expected B's prototype unchanged")
	}
}

func TestSetPrototypeOfRejectsLongerCycle(t *testing.T) {
	aVal := NewObject(Null)
	bVal := NewObject(aVal)
	cVal := NewObject(bVal)

	if aVal.AsPlainObject().SetPrototypeOf(cVal) {
		t.Errorf("expected cycle through two links to be rejected")
	}
	if !aVal.AsPlainObject().GetPrototypeOf().IsNull() {
		t.Errorf("expected A unchanged")
	}
}

func TestSetPrototypeOfRelinks(t *testing.T) {
	aVal := NewObject(Null)
	bVal := NewObject(Null)
	obj := NewObject(aVal).AsPlainObject()

	if !obj.SetPrototypeOf(bVal) {
		t.Fatalf("expected acyclic relink to succeed")
	}
	if !SameValue(obj.GetPrototypeOf(), bVal) {
		t.Errorf("expected prototype updated")
	}
	if !obj.SetPrototypeOf(Null) {
		t.Fatalf("expected relink to Null to succeed")
	}
	if !obj.GetPrototypeOf().IsNull() {
		t.Errorf("expected Null prototype")
	}
}

func TestSetPrototypeOfNonExtensible(t *testing.T) {
	obj := NewObject(Null).AsPlainObject()
	obj.SetInternalSlot(SlotExtensible, False)
	if obj.SetPrototypeOf(NewObject(Null)) {
		t.Errorf("expected non-extensible object to refuse prototype mutation")
	}
	// The unset slot refuses as well.
	bare := NewObject(Null).AsPlainObject()
	delete(bare.slots, SlotExtensible)
	if bare.SetPrototypeOf(NewObject(Null)) {
		t.Errorf("expected unset extensible slot to refuse prototype mutation")
	}
}

func TestSetPrototypeOfThroughFunctionChain(t *testing.T) {
	// Function entities participate in prototype chains like any object.
	fnVal := CreateNative(Null, nil, func(this Value, args []Value, ctx *Context) (Value, error) {
		return Undefined, nil
	}, ThisNonLexical)
	objVal := NewObject(fnVal)

	fn := fnVal.AsFunction()
	if fn.SetPrototypeOf(objVal) {
		t.Errorf("expected cycle through a function entity to be rejected")
	}
	if !fn.SetPrototypeOf(NewObject(Null)) {
		t.Errorf("expected acyclic function prototype mutation to succeed")
	}
}
