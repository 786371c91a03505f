package interpreter

import (
	"fmt"

	"github.com/akashmaji946/golox/ast"
)

// Callable is anything that can appear as the callee of a Call
// expression: a LoxFunction, a LoxClass (constructing an instance), or a
// NativeFunction (builtins.clock).
type Callable interface {
	Arity() int
	Call(interp *Interpreter, args []interface{}) (interface{}, error)
}

// NativeFunction wraps a Go function as a callable Lox value, the shape
// the builtins package uses to register `clock`.
type NativeFunction struct {
	Name    string
	ArityN  int
	Fn      func(interp *Interpreter, args []interface{}) (interface{}, error)
}

func (n *NativeFunction) Arity() int { return n.ArityN }
func (n *NativeFunction) Call(interp *Interpreter, args []interface{}) (interface{}, error) {
	return n.Fn(interp, args)
}

// LoxFunction pairs a function declaration with the environment it
// closed over, per spec.md §3. IsInitializer is true only for a method
// literally named "init" inside a class body.
type LoxFunction struct {
	Declaration   *ast.FunctionStmt
	Closure       *Environment
	IsInitializer bool
}

func (f *LoxFunction) Arity() int {
	return len(f.Declaration.Params)
}

// Call creates a fresh environment child of the closure, binds
// parameters to arguments, and executes the body as a block. A `return`
// inside the body is caught here; for an initializer, the call always
// yields `this` regardless of whether a bare `return` appeared.
func (f *LoxFunction) Call(interp *Interpreter, args []interface{}) (interface{}, error) {
	env := NewEnvironment(f.Closure)
	for i, param := range f.Declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	err := interp.executeBlock(f.Declaration.Body, env)
	if sig, ok := err.(returnSignal); ok {
		if f.IsInitializer {
			return f.Closure.GetAt(0, "this"), nil
		}
		return sig.Value, nil
	}
	if err != nil {
		return nil, err
	}
	if f.IsInitializer {
		return f.Closure.GetAt(0, "this"), nil
	}
	return nil, nil
}

// Bind returns a new LoxFunction whose closure is a fresh environment,
// child of the original closure, with "this" pre-bound to instance.
func (f *LoxFunction) Bind(instance *LoxInstance) *LoxFunction {
	env := NewEnvironment(f.Closure)
	env.Define("this", instance)
	return &LoxFunction{Declaration: f.Declaration, Closure: env, IsInitializer: f.IsInitializer}
}

// LoxClass is a named bag of methods, resolved by lexical name with no
// overloading.
type LoxClass struct {
	Name    string
	Methods map[string]*LoxFunction
}

// FindMethod looks up a method by name on the class itself (no
// inheritance chain exists at this spec level).
func (c *LoxClass) FindMethod(name string) (*LoxFunction, bool) {
	m, ok := c.Methods[name]
	return m, ok
}

// Arity equals the arity of `init`, or 0 if the class has none.
func (c *LoxClass) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call constructs a fresh instance and, if the class declares `init`,
// binds and invokes it with the given arguments before returning the
// instance.
func (c *LoxClass) Call(interp *Interpreter, args []interface{}) (interface{}, error) {
	instance := &LoxInstance{Class: c, Fields: make(map[string]interface{})}
	if init, ok := c.FindMethod("init"); ok {
		if _, err := init.Bind(instance).Call(interp, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// LoxInstance is a live object: a class pointer plus a field map.
// Fields are created on first assignment (spec.md §3).
type LoxInstance struct {
	Class  *LoxClass
	Fields map[string]interface{}
}

// Get resolves a property: fields shadow methods, and a method found on
// the class is bound to this instance before being returned.
func (i *LoxInstance) Get(name string) (interface{}, error) {
	if value, ok := i.Fields[name]; ok {
		return value, nil
	}
	if method, ok := i.Class.FindMethod(name); ok {
		return method.Bind(i), nil
	}
	return nil, fmt.Errorf("Undefined property '%s'.", name)
}

// Set assigns a field unconditionally; fields have no declared shape to
// validate against.
func (i *LoxInstance) Set(name string, value interface{}) {
	i.Fields[name] = value
}
