package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/golox/token"
)

func TestNewID_IsMonotonicAndNeverReused(t *testing.T) {
	a := NewLiteral(1)
	b := NewLiteral(2)
	c := NewLiteral(3)

	assert.Less(t, a.ID(), b.ID())
	assert.Less(t, b.ID(), c.ID())
}

// countingVisitor records which Visit method fired, proving AcceptExpr
// dispatches to the matching visitor method for every node kind.
type countingVisitor struct {
	visited string
}

func (v *countingVisitor) VisitLiteralExpr(e *Literal) interface{}   { v.visited = "literal"; return nil }
func (v *countingVisitor) VisitGroupingExpr(e *Grouping) interface{} { v.visited = "grouping"; return nil }
func (v *countingVisitor) VisitUnaryExpr(e *Unary) interface{}       { v.visited = "unary"; return nil }
func (v *countingVisitor) VisitBinaryExpr(e *Binary) interface{}     { v.visited = "binary"; return nil }
func (v *countingVisitor) VisitLogicalExpr(e *Logical) interface{}   { v.visited = "logical"; return nil }
func (v *countingVisitor) VisitVariableExpr(e *Variable) interface{} { v.visited = "variable"; return nil }
func (v *countingVisitor) VisitAssignExpr(e *Assign) interface{}     { v.visited = "assign"; return nil }
func (v *countingVisitor) VisitCallExpr(e *Call) interface{}         { v.visited = "call"; return nil }
func (v *countingVisitor) VisitGetExpr(e *Get) interface{}           { v.visited = "get"; return nil }
func (v *countingVisitor) VisitSetExpr(e *Set) interface{}           { v.visited = "set"; return nil }
func (v *countingVisitor) VisitThisExpr(e *This) interface{}         { v.visited = "this"; return nil }

func TestExpr_AcceptDispatchesToMatchingVisitor(t *testing.T) {
	name := token.New(token.IDENTIFIER, "x", nil, 1)

	cases := []struct {
		expr Expr
		want string
	}{
		{NewLiteral(1), "literal"},
		{NewGrouping(NewLiteral(1)), "grouping"},
		{NewUnary(token.New(token.MINUS, "-", nil, 1), NewLiteral(1)), "unary"},
		{NewBinary(NewLiteral(1), token.New(token.PLUS, "+", nil, 1), NewLiteral(2)), "binary"},
		{NewLogical(NewLiteral(true), token.New(token.AND, "and", nil, 1), NewLiteral(false)), "logical"},
		{NewVariable(name), "variable"},
		{NewAssign(name, NewLiteral(1)), "assign"},
		{NewCall(NewVariable(name), token.New(token.RIGHT_PAREN, ")", nil, 1), nil), "call"},
		{NewGet(NewVariable(name), name), "get"},
		{NewSet(NewVariable(name), name, NewLiteral(1)), "set"},
		{NewThis(token.New(token.THIS, "this", nil, 1)), "this"},
	}

	for _, tc := range cases {
		v := &countingVisitor{}
		tc.expr.AcceptExpr(v)
		assert.Equal(t, tc.want, v.visited)
	}
}
