package vm

// Call invokes the function with a plain call. It allocates an activation
// parented on the closure scope, binds parameters and the arguments object,
// pushes the activation on the context's scope stack, executes the body and
// pops the activation on every exit path.
//
// Argument-list length mismatches are not errors: short lists bind trailing
// parameters to Undefined, extras remain visible only via "arguments".
func (f *FunctionObject) Call(thisValue Value, args []Value, ctx *Context) (Value, error) {
	f.requireScope()

	env := NewFunctionEnvironment(thisValue, Undefined, f.scope)
	f.bindArguments(env, args)

	ctx.PushEnvironment(env)
	defer ctx.PopEnvironment()

	if f.Body.IsNative() {
		return f.Body.native(thisValue, args, ctx)
	}
	return ctx.runInterpreted(f.Body.node, env)
}

// Construct invokes the function as a constructor. Setup is identical to
// Call except the activation's this-binding is the target under
// construction and new-target is set to it. A native constructor observes
// the target in the position Call gives the this value; interpreted bodies
// resolve the final this-binding and any super chaining in the executor.
func (f *FunctionObject) Construct(newTarget Value, args []Value, ctx *Context) (Value, error) {
	f.requireScope()

	env := NewFunctionEnvironment(newTarget, newTarget, f.scope)
	f.bindArguments(env, args)

	ctx.PushEnvironment(env)
	defer ctx.PopEnvironment()

	if f.Body.IsNative() {
		return f.Body.native(newTarget, args, ctx)
	}
	return ctx.runInterpreted(f.Body.node, env)
}

// requireScope enforces the invariant that interpreted bodies carry a
// closure scope. Absence is a construction defect in the host engine, not a
// recoverable language error.
func (f *FunctionObject) requireScope() {
	if !f.Body.IsNative() && f.scope == nil {
		panic("vm: interpreted function entity has no closure scope")
	}
}

// bindArguments walks the formal parameters left to right. A rest parameter
// collects the remaining arguments into a fresh array and stops positional
// binding; only the first rest is honored. The arguments object is built
// from the full original argument list, independent of rest truncation.
func (f *FunctionObject) bindArguments(env *Environment, args []Value) {
	for i, param := range f.Params {
		if param.IsRest {
			rest := NewArray()
			if i < len(args) {
				rest.AsArray().Append(args[i:]...)
			}
			env.CreateMutableBinding(param.Name)
			env.InitializeBinding(param.Name, rest)
			break
		}
		arg := Undefined
		if i < len(args) {
			arg = args[i]
		}
		env.CreateMutableBinding(param.Name)
		env.InitializeBinding(param.Name, arg)
	}

	argumentsObj := MakeArgumentsObject(args)
	env.CreateMutableBinding("arguments")
	env.InitializeBinding("arguments", argumentsObj)
}
