package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/internal/golox/diag"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
)

func resolve(t *testing.T, src string) ([]ast.Stmt, Locals, *diag.Reporter) {
	t.Helper()
	reporter := diag.NewReporter()
	tokens := lexer.New(src, reporter).ScanTokens()
	statements := parser.New(tokens, reporter).Parse()
	require.False(t, reporter.HadError(), "fixture must parse cleanly")
	locals := New(reporter).Resolve(statements)
	return statements, locals, reporter
}

func TestResolver_LocalVariableResolvesToEnclosingBlock(t *testing.T) {
	statements, locals, reporter := resolve(t, `
		var a = "global";
		{
			var a = "local";
			print a;
		}
	`)
	assert.False(t, reporter.HadError())

	block := statements[1].(*ast.BlockStmt)
	printStmt := block.Statements[1].(*ast.PrintStmt)
	variable := printStmt.Expression.(*ast.Variable)

	depth, ok := locals[variable.ID()]
	require.True(t, ok)
	assert.Equal(t, 0, depth)
}

func TestResolver_GlobalReferenceIsLeftUnresolved(t *testing.T) {
	statements, locals, reporter := resolve(t, `
		var a = "global";
		print a;
	`)
	assert.False(t, reporter.HadError())

	printStmt := statements[1].(*ast.PrintStmt)
	variable := printStmt.Expression.(*ast.Variable)

	_, ok := locals[variable.ID()]
	assert.False(t, ok)
}

func TestResolver_ClosureCapturesOuterFunctionScope(t *testing.T) {
	statements, locals, reporter := resolve(t, `
		fun makeCounter() {
			var count = 0;
			fun increment() {
				count = count + 1;
				return count;
			}
			return increment;
		}
	`)
	assert.False(t, reporter.HadError())

	outer := statements[0].(*ast.FunctionStmt)
	innerFn := outer.Body[1].(*ast.FunctionStmt)
	assignStmt := innerFn.Body[0].(*ast.ExpressionStmt)
	assign := assignStmt.Expression.(*ast.Assign)

	depth, ok := locals[assign.ID()]
	require.True(t, ok)
	assert.Equal(t, 1, depth)
}

func TestResolver_SelfReferenceInInitializerIsAnError(t *testing.T) {
	_, _, reporter := resolve(t, `
		var a = "outer";
		{
			var a = a;
		}
	`)
	require.True(t, reporter.HadError())
	assert.Contains(t, reporter.Diagnostics()[0].Message, "own initializer")
}

func TestResolver_RedeclarationInSameScopeIsAnError(t *testing.T) {
	_, _, reporter := resolve(t, `
		{
			var a = 1;
			var a = 2;
		}
	`)
	require.True(t, reporter.HadError())
	assert.Contains(t, reporter.Diagnostics()[0].Message, "Already a variable")
}

func TestResolver_ReturnAtTopLevelIsAnError(t *testing.T) {
	_, _, reporter := resolve(t, `return 1;`)
	require.True(t, reporter.HadError())
	assert.Contains(t, reporter.Diagnostics()[0].Message, "top-level code")
}

func TestResolver_ThisOutsideClassIsAnError(t *testing.T) {
	_, _, reporter := resolve(t, `print this;`)
	require.True(t, reporter.HadError())
	assert.Contains(t, reporter.Diagnostics()[0].Message, "outside of a class")
}

func TestResolver_ReturnValueInInitializerIsAnError(t *testing.T) {
	_, _, reporter := resolve(t, `
		class Thing {
			init() {
				return 1;
			}
		}
	`)
	require.True(t, reporter.HadError())
	assert.Contains(t, reporter.Diagnostics()[0].Message, "from an initializer")
}

func TestResolver_ThisInsideMethodResolvesToMethodScope(t *testing.T) {
	statements, locals, reporter := resolve(t, `
		class Thing {
			identify() {
				return this;
			}
		}
	`)
	assert.False(t, reporter.HadError())

	classStmt := statements[0].(*ast.ClassStmt)
	method := classStmt.Methods[0]
	returnStmt := method.Body[0].(*ast.ReturnStmt)
	this := returnStmt.Value.(*ast.This)

	depth, ok := locals[this.ID()]
	require.True(t, ok)
	// one scope for the class body (where "this" is declared), one more
	// for the method's own parameter scope that return sits inside
	assert.Equal(t, 1, depth)
}
