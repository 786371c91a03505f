package ast

import "github.com/akashmaji946/golox/token"

// Stmt is any statement node.
type Stmt interface {
	ID() int
	AcceptStmt(v StmtVisitor) interface{}
}

// StmtVisitor dispatches over every Stmt form.
type StmtVisitor interface {
	VisitExpressionStmt(s *ExpressionStmt) interface{}
	VisitPrintStmt(s *PrintStmt) interface{}
	VisitVarStmt(s *VarStmt) interface{}
	VisitBlockStmt(s *BlockStmt) interface{}
	VisitIfStmt(s *IfStmt) interface{}
	VisitWhileStmt(s *WhileStmt) interface{}
	VisitFunctionStmt(s *FunctionStmt) interface{}
	VisitReturnStmt(s *ReturnStmt) interface{}
	VisitClassStmt(s *ClassStmt) interface{}
}

// ExpressionStmt evaluates an expression and discards the result.
type ExpressionStmt struct {
	id         int
	Expression Expr
}

func NewExpressionStmt(expression Expr) *ExpressionStmt {
	return &ExpressionStmt{id: newID(), Expression: expression}
}
func (s *ExpressionStmt) ID() int { return s.id }
func (s *ExpressionStmt) AcceptStmt(v StmtVisitor) interface{} { return v.VisitExpressionStmt(s) }

// PrintStmt evaluates an expression and writes its stringification.
type PrintStmt struct {
	id         int
	Expression Expr
}

func NewPrintStmt(expression Expr) *PrintStmt { return &PrintStmt{id: newID(), Expression: expression} }
func (s *PrintStmt) ID() int                  { return s.id }
func (s *PrintStmt) AcceptStmt(v StmtVisitor) interface{} { return v.VisitPrintStmt(s) }

// VarStmt declares a variable, with an optional initializer expression.
type VarStmt struct {
	id          int
	Name        token.Token
	Initializer Expr // nil if absent
}

func NewVarStmt(name token.Token, initializer Expr) *VarStmt {
	return &VarStmt{id: newID(), Name: name, Initializer: initializer}
}
func (s *VarStmt) ID() int { return s.id }
func (s *VarStmt) AcceptStmt(v StmtVisitor) interface{} { return v.VisitVarStmt(s) }

// BlockStmt is a `{ ... }` sequence of statements executed in a fresh
// child environment.
type BlockStmt struct {
	id         int
	Statements []Stmt
}

func NewBlockStmt(statements []Stmt) *BlockStmt { return &BlockStmt{id: newID(), Statements: statements} }
func (s *BlockStmt) ID() int                    { return s.id }
func (s *BlockStmt) AcceptStmt(v StmtVisitor) interface{} { return v.VisitBlockStmt(s) }

// IfStmt is `if (cond) then [else else]`. Else is nil if absent.
type IfStmt struct {
	id         int
	Condition  Expr
	Then       Stmt
	Else       Stmt
}

func NewIfStmt(condition Expr, then, els Stmt) *IfStmt {
	return &IfStmt{id: newID(), Condition: condition, Then: then, Else: els}
}
func (s *IfStmt) ID() int { return s.id }
func (s *IfStmt) AcceptStmt(v StmtVisitor) interface{} { return v.VisitIfStmt(s) }

// WhileStmt is `while (cond) body`. The parser also uses this to
// desugar `for`.
type WhileStmt struct {
	id        int
	Condition Expr
	Body      Stmt
}

func NewWhileStmt(condition Expr, body Stmt) *WhileStmt {
	return &WhileStmt{id: newID(), Condition: condition, Body: body}
}
func (s *WhileStmt) ID() int { return s.id }
func (s *WhileStmt) AcceptStmt(v StmtVisitor) interface{} { return v.VisitWhileStmt(s) }

// FunctionStmt declares a named function (also reused for class methods).
type FunctionStmt struct {
	id     int
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func NewFunctionStmt(name token.Token, params []token.Token, body []Stmt) *FunctionStmt {
	return &FunctionStmt{id: newID(), Name: name, Params: params, Body: body}
}
func (s *FunctionStmt) ID() int { return s.id }
func (s *FunctionStmt) AcceptStmt(v StmtVisitor) interface{} { return v.VisitFunctionStmt(s) }

// ReturnStmt is `return [value];`. Value is nil if absent.
type ReturnStmt struct {
	id      int
	Keyword token.Token
	Value   Expr
}

func NewReturnStmt(keyword token.Token, value Expr) *ReturnStmt {
	return &ReturnStmt{id: newID(), Keyword: keyword, Value: value}
}
func (s *ReturnStmt) ID() int { return s.id }
func (s *ReturnStmt) AcceptStmt(v StmtVisitor) interface{} { return v.VisitReturnStmt(s) }

// ClassStmt declares a class and its methods.
type ClassStmt struct {
	id      int
	Name    token.Token
	Methods []*FunctionStmt
}

func NewClassStmt(name token.Token, methods []*FunctionStmt) *ClassStmt {
	return &ClassStmt{id: newID(), Name: name, Methods: methods}
}
func (s *ClassStmt) ID() int { return s.id }
func (s *ClassStmt) AcceptStmt(v StmtVisitor) interface{} { return v.VisitClassStmt(s) }
