// Package ast defines the Lox abstract syntax tree: two mutually
// recursive tagged interfaces, Expr and Stmt, each with one concrete
// type per grammar form and a visitor-style Accept method.
//
// Every node carries a monotonic id so the resolver's side-table (which
// maps an expression to its lexical depth) has a plain integer key that
// is easy to log and test, rather than keying on the node pointers.
package ast

import "github.com/akashmaji946/golox/token"

var nextID int

func newID() int {
	nextID++
	return nextID
}

// Expr is any expression node.
type Expr interface {
	ID() int
	AcceptExpr(v ExprVisitor) interface{}
}

// ExprVisitor dispatches over every Expr form.
type ExprVisitor interface {
	VisitLiteralExpr(e *Literal) interface{}
	VisitGroupingExpr(e *Grouping) interface{}
	VisitUnaryExpr(e *Unary) interface{}
	VisitBinaryExpr(e *Binary) interface{}
	VisitLogicalExpr(e *Logical) interface{}
	VisitVariableExpr(e *Variable) interface{}
	VisitAssignExpr(e *Assign) interface{}
	VisitCallExpr(e *Call) interface{}
	VisitGetExpr(e *Get) interface{}
	VisitSetExpr(e *Set) interface{}
	VisitThisExpr(e *This) interface{}
}

// Literal is a constant value baked in at parse time: nil, bool, float64,
// or string.
type Literal struct {
	id    int
	Value interface{}
}

func NewLiteral(value interface{}) *Literal { return &Literal{id: newID(), Value: value} }
func (e *Literal) ID() int                  { return e.id }
func (e *Literal) AcceptExpr(v ExprVisitor) interface{} { return v.VisitLiteralExpr(e) }

// Grouping is a parenthesized expression, kept distinct from its inner
// expression so printers/analyzers can tell `(a)` from `a`.
type Grouping struct {
	id    int
	Inner Expr
}

func NewGrouping(inner Expr) *Grouping { return &Grouping{id: newID(), Inner: inner} }
func (e *Grouping) ID() int            { return e.id }
func (e *Grouping) AcceptExpr(v ExprVisitor) interface{} { return v.VisitGroupingExpr(e) }

// Unary is a prefix operator applied to a single operand: !x or -x.
type Unary struct {
	id       int
	Operator token.Token
	Right    Expr
}

func NewUnary(operator token.Token, right Expr) *Unary {
	return &Unary{id: newID(), Operator: operator, Right: right}
}
func (e *Unary) ID() int                              { return e.id }
func (e *Unary) AcceptExpr(v ExprVisitor) interface{} { return v.VisitUnaryExpr(e) }

// Binary is a two-operand operator: arithmetic, comparison, or equality.
type Binary struct {
	id          int
	Left        Expr
	Operator    token.Token
	Right       Expr
}

func NewBinary(left Expr, operator token.Token, right Expr) *Binary {
	return &Binary{id: newID(), Left: left, Operator: operator, Right: right}
}
func (e *Binary) ID() int                              { return e.id }
func (e *Binary) AcceptExpr(v ExprVisitor) interface{} { return v.VisitBinaryExpr(e) }

// Logical is `and`/`or`, kept distinct from Binary because it
// short-circuits instead of always evaluating both operands.
type Logical struct {
	id       int
	Left     Expr
	Operator token.Token
	Right    Expr
}

func NewLogical(left Expr, operator token.Token, right Expr) *Logical {
	return &Logical{id: newID(), Left: left, Operator: operator, Right: right}
}
func (e *Logical) ID() int                              { return e.id }
func (e *Logical) AcceptExpr(v ExprVisitor) interface{} { return v.VisitLogicalExpr(e) }

// Variable is a bare name reference.
type Variable struct {
	id   int
	Name token.Token
}

func NewVariable(name token.Token) *Variable { return &Variable{id: newID(), Name: name} }
func (e *Variable) ID() int                  { return e.id }
func (e *Variable) AcceptExpr(v ExprVisitor) interface{} { return v.VisitVariableExpr(e) }

// Assign is `name = value`.
type Assign struct {
	id    int
	Name  token.Token
	Value Expr
}

func NewAssign(name token.Token, value Expr) *Assign {
	return &Assign{id: newID(), Name: name, Value: value}
}
func (e *Assign) ID() int                              { return e.id }
func (e *Assign) AcceptExpr(v ExprVisitor) interface{} { return v.VisitAssignExpr(e) }

// Call is `callee(args...)`. Paren is the closing ')' token, kept for
// its line number when reporting arity/callability errors.
type Call struct {
	id     int
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

func NewCall(callee Expr, paren token.Token, args []Expr) *Call {
	return &Call{id: newID(), Callee: callee, Paren: paren, Args: args}
}
func (e *Call) ID() int                              { return e.id }
func (e *Call) AcceptExpr(v ExprVisitor) interface{} { return v.VisitCallExpr(e) }

// Get is property access: `object.name`.
type Get struct {
	id     int
	Object Expr
	Name   token.Token
}

func NewGet(object Expr, name token.Token) *Get { return &Get{id: newID(), Object: object, Name: name} }
func (e *Get) ID() int                          { return e.id }
func (e *Get) AcceptExpr(v ExprVisitor) interface{} { return v.VisitGetExpr(e) }

// Set is property assignment: `object.name = value`.
type Set struct {
	id     int
	Object Expr
	Name   token.Token
	Value  Expr
}

func NewSet(object Expr, name token.Token, value Expr) *Set {
	return &Set{id: newID(), Object: object, Name: name, Value: value}
}
func (e *Set) ID() int                              { return e.id }
func (e *Set) AcceptExpr(v ExprVisitor) interface{} { return v.VisitSetExpr(e) }

// This is the `this` keyword used inside a method body.
type This struct {
	id      int
	Keyword token.Token
}

func NewThis(keyword token.Token) *This { return &This{id: newID(), Keyword: keyword} }
func (e *This) ID() int                 { return e.id }
func (e *This) AcceptExpr(v ExprVisitor) interface{} { return v.VisitThisExpr(e) }
