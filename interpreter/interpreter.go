// Package interpreter walks the AST produced by the parser (and
// annotated by the resolver) and evaluates it.
//
// Values are represented as Go `interface{}` holding one of: nil, bool,
// float64, string, *LoxFunction, *NativeFunction, *LoxClass, or
// *LoxInstance — the smallest closed set spec.md §3 names. This mirrors
// the teacher lineage's own tagged-value-behind-an-interface pattern
// (objects/objects.go's GoMixObject), except Lox's value set is small
// enough that a closed `interface{}` union with type switches reads more
// directly than a hand-rolled interface with Get/Type methods on every
// value kind.
package interpreter

import (
	"fmt"
	"io"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/resolver"
	"github.com/akashmaji946/golox/token"
)

// Interpreter holds the global environment, the currently active scope,
// the resolver's side-table, and the writer `print` statements write to.
type Interpreter struct {
	globals     *Environment
	environment *Environment
	locals      resolver.Locals
	stdout      io.Writer
}

// New creates an Interpreter. stdout receives `print` output; register
// populates the global environment with native functions (see the
// builtins package).
func New(stdout io.Writer, register func(globals *Environment)) *Interpreter {
	globals := NewEnvironment(nil)
	if register != nil {
		register(globals)
	}
	return &Interpreter{globals: globals, environment: globals, stdout: stdout, locals: resolver.Locals{}}
}

// Globals exposes the outermost environment, e.g. so the REPL can
// inspect top-level bindings.
func (in *Interpreter) Globals() *Environment { return in.globals }

// SetLocals installs the resolver's frozen side-table. Must be called
// before Interpret.
func (in *Interpreter) SetLocals(locals resolver.Locals) { in.locals = locals }

// Interpret executes a full program (or a single REPL line). A runtime
// error aborts the remaining statements in this call and is returned to
// the caller; it never panics.
func (in *Interpreter) Interpret(statements []ast.Stmt) error {
	for _, stmt := range statements {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// EvaluateTopLevel evaluates a single expression in the current global
// scope without wrapping it in a statement. The REPL uses this to echo
// the value of a bare expression line (SPEC_FULL.md §E6); file-mode
// execution never calls it.
func (in *Interpreter) EvaluateTopLevel(expr ast.Expr) (interface{}, error) {
	return in.evaluate(expr)
}

func (in *Interpreter) execute(stmt ast.Stmt) error {
	result := stmt.AcceptStmt(in)
	if err, ok := result.(error); ok {
		return err
	}
	return nil
}

func (in *Interpreter) evaluate(expr ast.Expr) (interface{}, error) {
	result := expr.AcceptExpr(in)
	if res, ok := result.(evalResult); ok {
		return res.value, res.err
	}
	return result, nil
}

// evalResult lets expression visitors report either a value or an error
// through the single interface{} return value AcceptExpr allows.
type evalResult struct {
	value interface{}
	err   error
}

func ok(value interface{}) evalResult { return evalResult{value: value} }
func fail(err error) evalResult       { return evalResult{err: err} }

// executeBlock runs statements in a fresh environment, restoring the
// previous one on the way out (including when a runtime error or return
// signal unwinds through it).
func (in *Interpreter) executeBlock(statements []ast.Stmt, env *Environment) error {
	previous := in.environment
	in.environment = env
	defer func() { in.environment = previous }()

	for _, stmt := range statements {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) runtimeErr(tok token.Token, message string) evalResult {
	return fail(&RuntimeError{Token: tok, Message: message})
}

// ---- StmtVisitor ----

func (in *Interpreter) VisitExpressionStmt(s *ast.ExpressionStmt) interface{} {
	_, err := in.evaluate(s.Expression)
	return err
}

func (in *Interpreter) VisitPrintStmt(s *ast.PrintStmt) interface{} {
	value, err := in.evaluate(s.Expression)
	if err != nil {
		return err
	}
	fmt.Fprintln(in.stdout, Stringify(value))
	return nil
}

func (in *Interpreter) VisitVarStmt(s *ast.VarStmt) interface{} {
	var value interface{}
	if s.Initializer != nil {
		v, err := in.evaluate(s.Initializer)
		if err != nil {
			return err
		}
		value = v
	}
	in.environment.Define(s.Name.Lexeme, value)
	return nil
}

func (in *Interpreter) VisitBlockStmt(s *ast.BlockStmt) interface{} {
	return in.executeBlock(s.Statements, NewEnvironment(in.environment))
}

func (in *Interpreter) VisitIfStmt(s *ast.IfStmt) interface{} {
	cond, err := in.evaluate(s.Condition)
	if err != nil {
		return err
	}
	if isTruthy(cond) {
		return in.execute(s.Then)
	}
	if s.Else != nil {
		return in.execute(s.Else)
	}
	return nil
}

func (in *Interpreter) VisitWhileStmt(s *ast.WhileStmt) interface{} {
	for {
		cond, err := in.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if !isTruthy(cond) {
			return nil
		}
		if err := in.execute(s.Body); err != nil {
			return err
		}
	}
}

func (in *Interpreter) VisitFunctionStmt(s *ast.FunctionStmt) interface{} {
	fn := &LoxFunction{Declaration: s, Closure: in.environment, IsInitializer: false}
	in.environment.Define(s.Name.Lexeme, fn)
	return nil
}

func (in *Interpreter) VisitReturnStmt(s *ast.ReturnStmt) interface{} {
	var value interface{}
	if s.Value != nil {
		v, err := in.evaluate(s.Value)
		if err != nil {
			return err
		}
		value = v
	}
	return returnSignal{Value: value}
}

func (in *Interpreter) VisitClassStmt(s *ast.ClassStmt) interface{} {
	in.environment.Define(s.Name.Lexeme, nil)

	methods := make(map[string]*LoxFunction, len(s.Methods))
	for _, method := range s.Methods {
		fn := &LoxFunction{
			Declaration:   method,
			Closure:       in.environment,
			IsInitializer: method.Name.Lexeme == "init",
		}
		methods[method.Name.Lexeme] = fn
	}

	class := &LoxClass{Name: s.Name.Lexeme, Methods: methods}
	return in.environment.Assign(s.Name, class)
}

// ---- ExprVisitor ----

func (in *Interpreter) VisitLiteralExpr(e *ast.Literal) interface{} {
	return ok(e.Value)
}

func (in *Interpreter) VisitGroupingExpr(e *ast.Grouping) interface{} {
	v, err := in.evaluate(e.Inner)
	return evalResult{value: v, err: err}
}

func (in *Interpreter) VisitUnaryExpr(e *ast.Unary) interface{} {
	right, err := in.evaluate(e.Right)
	if err != nil {
		return fail(err)
	}
	switch e.Operator.Type {
	case token.BANG:
		return ok(!isTruthy(right))
	case token.MINUS:
		n, isNum := right.(float64)
		if !isNum {
			return in.runtimeErr(e.Operator, "Operand must be a number.")
		}
		return ok(-n)
	}
	return ok(nil)
}

func (in *Interpreter) VisitBinaryExpr(e *ast.Binary) interface{} {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return fail(err)
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return fail(err)
	}

	switch e.Operator.Type {
	case token.MINUS:
		return in.numericBinary(e.Operator, left, right, func(a, b float64) interface{} { return a - b })
	case token.SLASH:
		return in.numericBinary(e.Operator, left, right, func(a, b float64) interface{} { return a / b })
	case token.STAR:
		return in.numericBinary(e.Operator, left, right, func(a, b float64) interface{} { return a * b })
	case token.PLUS:
		return in.plus(e.Operator, left, right)
	case token.GREATER:
		return in.numericBinary(e.Operator, left, right, func(a, b float64) interface{} { return a > b })
	case token.GREATER_EQUAL:
		return in.numericBinary(e.Operator, left, right, func(a, b float64) interface{} { return a >= b })
	case token.LESS:
		return in.numericBinary(e.Operator, left, right, func(a, b float64) interface{} { return a < b })
	case token.LESS_EQUAL:
		return in.numericBinary(e.Operator, left, right, func(a, b float64) interface{} { return a <= b })
	case token.BANG_EQUAL:
		return ok(!isEqual(left, right))
	case token.EQUAL_EQUAL:
		return ok(isEqual(left, right))
	}
	return ok(nil)
}

func (in *Interpreter) numericBinary(op token.Token, left, right interface{}, apply func(a, b float64) interface{}) evalResult {
	l, lok := left.(float64)
	r, rok := right.(float64)
	if !lok || !rok {
		return in.runtimeErr(op, "Operands must be numbers.")
	}
	return ok(apply(l, r))
}

// plus is the one overloaded operator: number+number sums, string+string
// concatenates, anything else is a runtime error. Division by zero is
// handled entirely by IEEE-754 semantics in numericBinary (no special
// case): it is only `+` that needs the type dispatch spec.md §4.4 calls
// out.
func (in *Interpreter) plus(op token.Token, left, right interface{}) evalResult {
	if l, lok := left.(float64); lok {
		if r, rok := right.(float64); rok {
			return ok(l + r)
		}
	}
	if l, lok := left.(string); lok {
		if r, rok := right.(string); rok {
			return ok(l + r)
		}
	}
	return in.runtimeErr(op, "Operands must be two numbers or two strings.")
}

func (in *Interpreter) VisitLogicalExpr(e *ast.Logical) interface{} {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return fail(err)
	}
	if e.Operator.Type == token.OR {
		if isTruthy(left) {
			return ok(left)
		}
	} else {
		if !isTruthy(left) {
			return ok(left)
		}
	}
	right, err := in.evaluate(e.Right)
	return evalResult{value: right, err: err}
}

func (in *Interpreter) VisitVariableExpr(e *ast.Variable) interface{} {
	v, err := in.lookUpVariable(e.Name, e.ID())
	return evalResult{value: v, err: err}
}

func (in *Interpreter) lookUpVariable(name token.Token, exprID int) (interface{}, error) {
	if distance, ok := in.locals[exprID]; ok {
		return in.environment.GetAt(distance, name.Lexeme), nil
	}
	return in.globals.Get(name)
}

func (in *Interpreter) VisitAssignExpr(e *ast.Assign) interface{} {
	value, err := in.evaluate(e.Value)
	if err != nil {
		return fail(err)
	}
	if distance, hasLocal := in.locals[e.ID()]; hasLocal {
		in.environment.AssignAt(distance, e.Name, value)
	} else if err := in.globals.Assign(e.Name, value); err != nil {
		return fail(err)
	}
	return ok(value)
}

func (in *Interpreter) VisitCallExpr(e *ast.Call) interface{} {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return fail(err)
	}

	args := make([]interface{}, 0, len(e.Args))
	for _, argExpr := range e.Args {
		arg, err := in.evaluate(argExpr)
		if err != nil {
			return fail(err)
		}
		args = append(args, arg)
	}

	callable, isCallable := callee.(Callable)
	if !isCallable {
		return in.runtimeErr(e.Paren, "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return in.runtimeErr(e.Paren, fmt.Sprintf("Expected %d arguments but got %d.", callable.Arity(), len(args)))
	}

	result, err := callable.Call(in, args)
	if err != nil {
		if rt, isRuntime := err.(*RuntimeError); isRuntime {
			return fail(rt)
		}
		return in.runtimeErr(e.Paren, err.Error())
	}
	return ok(result)
}

func (in *Interpreter) VisitGetExpr(e *ast.Get) interface{} {
	object, err := in.evaluate(e.Object)
	if err != nil {
		return fail(err)
	}
	instance, isInstance := object.(*LoxInstance)
	if !isInstance {
		return in.runtimeErr(e.Name, "Only instances have properties.")
	}
	value, err := instance.Get(e.Name.Lexeme)
	if err != nil {
		return in.runtimeErr(e.Name, err.Error())
	}
	return ok(value)
}

func (in *Interpreter) VisitSetExpr(e *ast.Set) interface{} {
	object, err := in.evaluate(e.Object)
	if err != nil {
		return fail(err)
	}
	instance, isInstance := object.(*LoxInstance)
	if !isInstance {
		return in.runtimeErr(e.Name, "Only instances have fields.")
	}
	value, err := in.evaluate(e.Value)
	if err != nil {
		return fail(err)
	}
	instance.Set(e.Name.Lexeme, value)
	return ok(value)
}

func (in *Interpreter) VisitThisExpr(e *ast.This) interface{} {
	v, err := in.lookUpVariable(e.Keyword, e.ID())
	return evalResult{value: v, err: err}
}
