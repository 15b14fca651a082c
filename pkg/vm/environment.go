package vm

// Environment is a mutable binding map chained to a parent environment.
// Function environments additionally carry the this-binding and new-target
// for their activation. One environment is created per invocation; a
// closure scope is an environment shared by every entity created inside it.
type Environment struct {
	bindings  map[string]Value
	parent    *Environment
	thisValue Value
	newTarget Value
}

// NewEnvironment creates a plain lexical environment.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		bindings:  make(map[string]Value),
		parent:    parent,
		thisValue: Undefined,
		newTarget: Undefined,
	}
}

// NewFunctionEnvironment creates the activation environment for one
// invocation, parented on the closure scope.
func NewFunctionEnvironment(thisValue, newTarget Value, parent *Environment) *Environment {
	return &Environment{
		bindings:  make(map[string]Value),
		parent:    parent,
		thisValue: thisValue,
		newTarget: newTarget,
	}
}

func (e *Environment) Parent() *Environment { return e.parent }
func (e *Environment) ThisValue() Value     { return e.thisValue }
func (e *Environment) NewTarget() Value     { return e.newTarget }

// CreateMutableBinding declares a binding in this environment. Declaring an
// existing name is a no-op; initialization overwrites it anyway.
func (e *Environment) CreateMutableBinding(name string) {
	if _, ok := e.bindings[name]; !ok {
		e.bindings[name] = Undefined
	}
}

// InitializeBinding sets the value of a binding declared in this
// environment.
func (e *Environment) InitializeBinding(name string, v Value) {
	e.bindings[name] = v
}

// HasBinding reports whether this environment declares name directly.
func (e *Environment) HasBinding(name string) bool {
	_, ok := e.bindings[name]
	return ok
}

// GetBindingValue resolves name along the environment chain.
func (e *Environment) GetBindingValue(name string) (Value, bool) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.bindings[name]; ok {
			return v, true
		}
	}
	return Undefined, false
}

// SetMutableBinding assigns to an existing binding along the chain. Returns
// false when no environment declares name.
func (e *Environment) SetMutableBinding(name string, v Value) bool {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.bindings[name]; ok {
			env.bindings[name] = v
			return true
		}
	}
	return false
}
