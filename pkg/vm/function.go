package vm

import (
	"fmt"
	"unsafe"
)

// ThisMode defines how this references are interpreted within the body of
// the function. Arrow functions don't define a `this` of their own and are
// Lexical; `function`s are NonLexical.
type ThisMode uint8

const (
	ThisLexical ThisMode = iota
	ThisNonLexical
)

func (m ThisMode) String() string {
	if m == ThisLexical {
		return "lexical"
	}
	return "non-lexical"
}

// ConstructorKind records whether a constructor is derived. Super-call and
// this-deferral semantics for derived constructors live in the executor.
type ConstructorKind uint8

const (
	ConstructorBase ConstructorKind = iota
	ConstructorDerived
)

// FormalParameter is one entry of the ordered formal-parameter list. A rest
// parameter collects the remaining positional arguments into an array.
type FormalParameter struct {
	Name   string
	IsRest bool
}

// Node is a syntax-tree fragment produced by an external parser. The core
// never inspects it beyond handing it to the executor.
type Node interface {
	String() string
}

// NativeFunc is the signature of a built-in function body.
type NativeFunc func(this Value, args []Value, ctx *Context) (Value, error)

// FunctionBody is a two-case tagged variant: a native Go routine or an
// interpreted syntax node, matched at invocation time.
type FunctionBody struct {
	native NativeFunc
	node   Node
}

func NativeBody(fn NativeFunc) FunctionBody {
	return FunctionBody{native: fn}
}

func OrdinaryBody(node Node) FunctionBody {
	return FunctionBody{node: node}
}

func (b FunctionBody) IsNative() bool { return b.native != nil }

// FunctionObject is the callable entity: own-property table, internal
// slots, body, formal parameters, this mode and the captured closure scope.
type FunctionObject struct {
	baseObject
	Body   FunctionBody
	Params []FormalParameter
	Mode   ThisMode
	Kind   ConstructorKind

	// scope is the lexical environment captured at creation. It may be
	// shared by sibling closures and is nil for natives.
	scope *Environment
}

// Scope returns the captured closure scope, nil for natives created without
// one.
func (f *FunctionObject) Scope() *Environment { return f.scope }

func (f *FunctionObject) GetPrototypeOf() Value {
	return f.GetInternalSlot(SlotPrototype)
}

func (f *FunctionObject) SetPrototypeOf(newProto Value) bool {
	return setPrototypeOf(&f.baseObject, unsafe.Pointer(f), newProto)
}

// CreateOrdinary creates an interpreted function entity capturing the given
// closure scope.
func CreateOrdinary(proto Value, params []FormalParameter, body FunctionBody, scope *Environment, thisMode ThisMode) Value {
	return newFunction(proto, params, body, scope, thisMode)
}

// CreateNative creates a built-in function entity. Natives capture no
// closure scope.
func CreateNative(proto Value, params []FormalParameter, fn NativeFunc, thisMode ThisMode) Value {
	return newFunction(proto, params, NativeBody(fn), nil, thisMode)
}

func newFunction(proto Value, params []FormalParameter, body FunctionBody, scope *Environment, thisMode ThisMode) Value {
	validateParams(params)

	f := &FunctionObject{
		baseObject: newBaseObject(),
		Body:       body,
		Params:     params,
		Mode:       thisMode,
		scope:      scope,
	}

	if !proto.IsObject() {
		proto = Null
	}
	f.SetInternalSlot(SlotExtensible, True)
	f.SetInternalSlot(SlotPrototype, proto)
	f.SetInternalSlot(SlotHomeObject, Undefined)

	f.InsertProperty("length", NewProperty().
		WithWritable(false).
		WithEnumerable(false).
		WithConfigurable(true).
		WithValue(IntegerValue(int32(positionalCount(params)))))

	return Value{typ: TypeFunction, obj: unsafe.Pointer(f)}
}

// positionalCount is the number of non-rest parameters; it is the value of
// the length property.
func positionalCount(params []FormalParameter) int {
	n := 0
	for _, p := range params {
		if !p.IsRest {
			n++
		}
	}
	return n
}

// validateParams enforces the construction-time precondition on parameter
// lists: at most one rest parameter, and only in the last position. A
// malformed list is a defect in the caller, not a runtime error.
func validateParams(params []FormalParameter) {
	for i, p := range params {
		if p.IsRest && i != len(params)-1 {
			panic(fmt.Sprintf("vm: rest parameter %q must be the last formal parameter", p.Name))
		}
	}
}
