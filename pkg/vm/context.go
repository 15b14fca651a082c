package vm

// Executor runs an interpreted body in its activation scope. It is an
// external collaborator; the core only threads nodes through to it.
type Executor interface {
	Run(node Node, scope *Environment) (Value, error)
}

// Context is one execution context: the active-scope stack plus the
// executor collaborator. Contexts are explicitly constructed and carry no
// package-global state. A context is single-threaded; sharing values across
// contexts is unsupported.
type Context struct {
	envStack []*Environment
	executor Executor
	global   *Environment
}

// NewContext creates a fresh context with a global environment at the
// bottom of the scope stack. executor may be nil for hosts that only invoke
// native bodies.
func NewContext(executor Executor) *Context {
	global := NewEnvironment(nil)
	return &Context{
		envStack: []*Environment{global},
		executor: executor,
		global:   global,
	}
}

func (c *Context) GlobalEnvironment() *Environment { return c.global }

// ActiveEnvironment returns the environment on top of the scope stack.
func (c *Context) ActiveEnvironment() *Environment {
	return c.envStack[len(c.envStack)-1]
}

// Depth is the current height of the active-scope stack. Invocations nest
// strictly: the depth after any call or construct equals the depth before.
func (c *Context) Depth() int {
	return len(c.envStack)
}

func (c *Context) PushEnvironment(env *Environment) {
	c.envStack = append(c.envStack, env)
}

// runInterpreted hands an interpreted body to the executor collaborator.
func (c *Context) runInterpreted(node Node, scope *Environment) (Value, error) {
	if c.executor == nil {
		panic("vm: context has no executor for interpreted bodies")
	}
	return c.executor.Run(node, scope)
}

func (c *Context) PopEnvironment() *Environment {
	if len(c.envStack) <= 1 {
		panic("vm: active-scope stack underflow")
	}
	top := c.envStack[len(c.envStack)-1]
	c.envStack = c.envStack[:len(c.envStack)-1]
	return top
}
