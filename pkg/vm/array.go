package vm

import "unsafe"

// ArrayObject is the indexable sequence used to materialize rest
// parameters.
type ArrayObject struct {
	elements []Value
}

func NewArray() Value {
	return Value{typ: TypeArray, obj: unsafe.Pointer(&ArrayObject{})}
}

func (a *ArrayObject) Append(values ...Value) {
	a.elements = append(a.elements, values...)
}

func (a *ArrayObject) Length() int {
	return len(a.elements)
}

// Get returns the element at index i, Undefined when out of range.
func (a *ArrayObject) Get(i int) Value {
	if i < 0 || i >= len(a.elements) {
		return Undefined
	}
	return a.elements[i]
}

// Elements returns a copy of the backing slice.
func (a *ArrayObject) Elements() []Value {
	out := make([]Value, len(a.elements))
	copy(out, a.elements)
	return out
}
