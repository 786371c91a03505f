// Package resolver performs the static pass described in spec.md §4.3:
// for every variable/this expression it records the lexical distance
// (depth) to the enclosing scope that binds it, and diagnoses several
// classes of semantic error before the interpreter ever runs.
//
// The scope-stack-of-maps shape here mirrors the map-of-bindings idiom
// the teacher lineage uses for its runtime Scope (see
// interpreter.Environment, itself grounded on the teacher's
// scope/scope.go), but the resolver needs a flat push/pop stack rather
// than a persistent parent chain, since it only ever looks at scopes
// currently open during the walk.
package resolver

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/internal/golox/diag"
	"github.com/akashmaji946/golox/token"
)

type functionType int

const (
	fnNone functionType = iota
	fnFunction
	fnMethod
	fnInitializer
)

type classType int

const (
	classNone classType = iota
	classClass
)

// Locals maps an expression's id to its resolved lexical depth. The
// interpreter consults this side-table instead of walking the
// environment chain from scratch for every lookup.
type Locals map[int]int

// Resolver walks the AST maintaining a stack of lexical scopes.
type Resolver struct {
	scopes          []map[string]bool
	locals          Locals
	reporter        *diag.Reporter
	currentFunction functionType
	currentClass    classType
}

// New creates a Resolver that reports semantic errors to reporter.
func New(reporter *diag.Reporter) *Resolver {
	return &Resolver{locals: Locals{}, reporter: reporter}
}

// Resolve walks every top-level statement and returns the completed
// side-table. It should be called exactly once, before interpretation,
// and the result is frozen thereafter (spec.md §3 invariant).
func (r *Resolver) Resolve(statements []ast.Stmt) Locals {
	r.resolveStmts(statements)
	return r.locals
}

func (r *Resolver) resolveStmts(statements []ast.Stmt) {
	for _, s := range statements {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(s ast.Stmt) {
	s.AcceptStmt(r)
}

func (r *Resolver) resolveExpr(e ast.Expr) {
	e.AcceptExpr(r)
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, map[string]bool{})
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.reporter.ResolveError(name.Line, name.Lexeme, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal records the depth at which name is bound, innermost scope
// first. An unresolved name is left out of the side-table entirely; the
// interpreter then falls back to the global environment.
func (r *Resolver) resolveLocal(exprID int, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[exprID] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *Resolver) resolveFunction(fn *ast.FunctionStmt, typ functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = typ
	defer func() { r.currentFunction = enclosingFunction }()

	r.beginScope()
	defer r.endScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
}

// ---- StmtVisitor ----

func (r *Resolver) VisitBlockStmt(s *ast.BlockStmt) interface{} {
	r.beginScope()
	r.resolveStmts(s.Statements)
	r.endScope()
	return nil
}

func (r *Resolver) VisitVarStmt(s *ast.VarStmt) interface{} {
	r.declare(s.Name)
	if s.Initializer != nil {
		r.resolveExpr(s.Initializer)
	}
	r.define(s.Name)
	return nil
}

func (r *Resolver) VisitFunctionStmt(s *ast.FunctionStmt) interface{} {
	r.declare(s.Name)
	r.define(s.Name)
	r.resolveFunction(s, fnFunction)
	return nil
}

func (r *Resolver) VisitExpressionStmt(s *ast.ExpressionStmt) interface{} {
	r.resolveExpr(s.Expression)
	return nil
}

func (r *Resolver) VisitIfStmt(s *ast.IfStmt) interface{} {
	r.resolveExpr(s.Condition)
	r.resolveStmt(s.Then)
	if s.Else != nil {
		r.resolveStmt(s.Else)
	}
	return nil
}

func (r *Resolver) VisitPrintStmt(s *ast.PrintStmt) interface{} {
	r.resolveExpr(s.Expression)
	return nil
}

func (r *Resolver) VisitReturnStmt(s *ast.ReturnStmt) interface{} {
	if r.currentFunction == fnNone {
		r.reporter.ResolveError(s.Keyword.Line, s.Keyword.Lexeme, "Can't return from top-level code.")
	}
	if s.Value != nil {
		if r.currentFunction == fnInitializer {
			r.reporter.ResolveError(s.Keyword.Line, s.Keyword.Lexeme, "Can't return a value from an initializer.")
		}
		r.resolveExpr(s.Value)
	}
	return nil
}

func (r *Resolver) VisitWhileStmt(s *ast.WhileStmt) interface{} {
	r.resolveExpr(s.Condition)
	r.resolveStmt(s.Body)
	return nil
}

func (r *Resolver) VisitClassStmt(s *ast.ClassStmt) interface{} {
	enclosingClass := r.currentClass
	r.currentClass = classClass
	defer func() { r.currentClass = enclosingClass }()

	r.declare(s.Name)
	r.define(s.Name)

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range s.Methods {
		declaration := fnMethod
		if method.Name.Lexeme == "init" {
			declaration = fnInitializer
		}
		r.resolveFunction(method, declaration)
	}

	r.endScope()
	return nil
}

// ---- ExprVisitor ----

func (r *Resolver) VisitVariableExpr(e *ast.Variable) interface{} {
	if len(r.scopes) > 0 {
		if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
			r.reporter.ResolveError(e.Name.Line, e.Name.Lexeme, "Can't read local variable in its own initializer.")
		}
	}
	r.resolveLocal(e.ID(), e.Name)
	return nil
}

func (r *Resolver) VisitAssignExpr(e *ast.Assign) interface{} {
	r.resolveExpr(e.Value)
	r.resolveLocal(e.ID(), e.Name)
	return nil
}

func (r *Resolver) VisitBinaryExpr(e *ast.Binary) interface{} {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil
}

func (r *Resolver) VisitCallExpr(e *ast.Call) interface{} {
	r.resolveExpr(e.Callee)
	for _, arg := range e.Args {
		r.resolveExpr(arg)
	}
	return nil
}

func (r *Resolver) VisitGetExpr(e *ast.Get) interface{} {
	r.resolveExpr(e.Object)
	return nil
}

func (r *Resolver) VisitGroupingExpr(e *ast.Grouping) interface{} {
	r.resolveExpr(e.Inner)
	return nil
}

func (r *Resolver) VisitLiteralExpr(e *ast.Literal) interface{} {
	return nil
}

func (r *Resolver) VisitLogicalExpr(e *ast.Logical) interface{} {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil
}

func (r *Resolver) VisitSetExpr(e *ast.Set) interface{} {
	r.resolveExpr(e.Value)
	r.resolveExpr(e.Object)
	return nil
}

func (r *Resolver) VisitThisExpr(e *ast.This) interface{} {
	if r.currentClass == classNone {
		r.reporter.ResolveError(e.Keyword.Line, e.Keyword.Lexeme, "Can't use 'this' outside of a class.")
		return nil
	}
	r.resolveLocal(e.ID(), e.Keyword)
	return nil
}

func (r *Resolver) VisitUnaryExpr(e *ast.Unary) interface{} {
	r.resolveExpr(e.Right)
	return nil
}
