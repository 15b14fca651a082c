package vm

import "strconv"

// MakeArgumentsObject builds the unmapped arguments object for one
// invocation: a plain object exposing the raw argument list under the
// indices "0".."n-1" and a writable length. The ParameterMap slot set to
// Undefined marks the object as unmapped; there is no live aliasing to
// parameter names.
func MakeArgumentsObject(args []Value) Value {
	objVal := NewObject(Null)
	obj := objVal.AsPlainObject()
	obj.SetInternalSlot(SlotParameterMap, Undefined)

	obj.InsertProperty("length", NewProperty().
		WithWritable(true).
		WithValue(IntegerValue(int32(len(args)))))

	for i, arg := range args {
		obj.InsertProperty(strconv.Itoa(i), NewProperty().
			WithValue(arg).
			WithEnumerable(true).
			WithWritable(true).
			WithConfigurable(true))
	}
	return objVal
}
