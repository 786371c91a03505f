// Package builtins registers Lox's native functions into an
// interpreter's global environment.
//
// spec.md §4.4 allows "globals may be populated with built-ins (e.g.
// clock())" without mandating a registration mechanism; this package
// follows the teacher lineage's own std.Builtin{Name, Callback} +
// registry-slice pattern (see std/common.go and file/file.go's
// `var fileMethods = []*std.Builtin{...}` plus `init()` registration)
// adapted to Lox's single-function standard library.
package builtins

import (
	"time"

	"github.com/akashmaji946/golox/interpreter"
)

// entry pairs a name with the native function that implements it.
type entry struct {
	name   string
	arity  int
	fn     func(interp *interpreter.Interpreter, args []interface{}) (interface{}, error)
}

// registry lists every native function Lox exposes. Unlike the
// teacher's sprawling std library (arrays, strings, http, ...), Lox's
// Non-goals (spec.md §1) leave exactly one: clock().
var registry = []entry{
	{name: "clock", arity: 0, fn: clock},
}

var start = time.Now()

// clock returns the number of seconds since the interpreter process
// started, as a Lox number.
func clock(interp *interpreter.Interpreter, args []interface{}) (interface{}, error) {
	return time.Since(start).Seconds(), nil
}

// Register installs every native function into globals.
func Register(globals *interpreter.Environment) {
	for _, e := range registry {
		globals.Define(e.name, &interpreter.NativeFunction{Name: e.name, ArityN: e.arity, Fn: e.fn})
	}
}
