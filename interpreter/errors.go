package interpreter

import "github.com/akashmaji946/golox/token"

// RuntimeError is raised by the evaluator for any operation that fails
// at runtime (bad operand types, undefined names, wrong arity, ...). It
// carries the offending token so the caller can render the
// "<message>\n[line N]" diagnostic spec.md §6 requires.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Message
}

// returnSignal is returned as an error value by a `return` statement's
// execution, passed up through execute/executeBlock, and caught by the
// call frame of the nearest enclosing function. It is not a
// RuntimeError: it is ordinary (if unusual) control flow and must never
// reach the top-level caller of Interpret.
type returnSignal struct {
	Value interface{}
}

func (returnSignal) Error() string { return "return" }
