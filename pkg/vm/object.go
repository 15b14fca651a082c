package vm

import "unsafe"

// Reserved internal slot names. Slots bypass the own-property table and are
// invisible to property enumeration.
const (
	SlotPrototype    = "prototype"
	SlotExtensible   = "extensible"
	SlotHomeObject   = "home_object"
	SlotParameterMap = "ParameterMap"
)

// baseObject is the storage shared by plain objects and function entities:
// the own-property table and the internal-slot store.
type baseObject struct {
	properties map[string]Property
	slots      map[string]Value
}

func newBaseObject() baseObject {
	return baseObject{
		properties: make(map[string]Property),
		slots:      make(map[string]Value),
	}
}

// GetOwnProperty returns the projected descriptor for key. The second result
// is false when no own property exists, never confusable with a data
// descriptor holding Undefined.
func (o *baseObject) GetOwnProperty(key string) (Property, bool) {
	entry, ok := o.properties[key]
	if !ok {
		return Property{}, false
	}
	return entry.project(), true
}

// InsertProperty stores the descriptor unconditionally. Descriptor validity
// is the caller's responsibility.
func (o *baseObject) InsertProperty(key string, p Property) {
	o.properties[key] = p
}

// RemoveProperty deletes the own property if present, else no-op.
func (o *baseObject) RemoveProperty(key string) {
	delete(o.properties, key)
}

// HasOwnProperty reports whether an own property with the given key exists.
func (o *baseObject) HasOwnProperty(key string) bool {
	_, ok := o.properties[key]
	return ok
}

// OwnKeys returns the own property keys. Order is unspecified.
func (o *baseObject) OwnKeys() []string {
	keys := make([]string, 0, len(o.properties))
	for k := range o.properties {
		keys = append(keys, k)
	}
	return keys
}

// GetInternalSlot returns the slot value, or Null when the slot was never
// set. A slot explicitly holding Undefined reads as Undefined.
func (o *baseObject) GetInternalSlot(name string) Value {
	v, ok := o.slots[name]
	if !ok {
		return Null
	}
	return v
}

func (o *baseObject) SetInternalSlot(name string, v Value) {
	o.slots[name] = v
}

// PlainObject is an ordinary object: property table, internal slots, and a
// prototype link held in an internal slot.
type PlainObject struct {
	baseObject
}

// NewObject creates a plain object with the given prototype (an object
// reference or Null) and extensible=true.
func NewObject(proto Value) Value {
	obj := &PlainObject{baseObject: newBaseObject()}
	if !proto.IsObject() {
		proto = Null
	}
	obj.SetInternalSlot(SlotExtensible, True)
	obj.SetInternalSlot(SlotPrototype, proto)
	return Value{typ: TypeObject, obj: unsafe.Pointer(obj)}
}

// GetPrototypeOf returns the prototype internal slot.
func (o *PlainObject) GetPrototypeOf() Value {
	return o.GetInternalSlot(SlotPrototype)
}

// SetPrototypeOf relinks the prototype chain, refusing cycles.
func (o *PlainObject) SetPrototypeOf(newProto Value) bool {
	return setPrototypeOf(&o.baseObject, unsafe.Pointer(o), newProto)
}

// setPrototypeOf implements the cycle-safe prototype mutation shared by
// plain objects and function entities. Precondition: newProto is an object
// reference or Null.
//
// Setting the current prototype again is a no-op success. A missing or false
// extensible slot refuses the mutation. Otherwise the candidate chain is
// walked: reaching Null proves the chain acyclic, reaching the receiver
// itself would create a cycle and leaves the state unchanged. The scan cost
// is bounded by the candidate chain length.
func setPrototypeOf(o *baseObject, self unsafe.Pointer, newProto Value) bool {
	current := o.GetInternalSlot(SlotPrototype)
	if SameValue(newProto, current) {
		return true
	}
	extensible := o.GetInternalSlot(SlotExtensible)
	if extensible.IsNull() || !extensible.AsBoolean() {
		return false
	}
	p := newProto
	for {
		if p.IsNull() {
			break
		}
		if p.obj == self {
			return false
		}
		p = prototypeOf(p)
	}
	o.SetInternalSlot(SlotPrototype, newProto)
	return true
}

// prototypeOf reads the prototype internal slot of an arbitrary object
// value. Values without slot storage terminate the chain.
func prototypeOf(v Value) Value {
	switch v.typ {
	case TypeObject:
		return v.AsPlainObject().GetInternalSlot(SlotPrototype)
	case TypeFunction:
		return v.AsFunction().GetInternalSlot(SlotPrototype)
	default:
		return Null
	}
}
