// Package repl implements Lox's interactive Read-Eval-Print Loop.
//
// Grounded directly on the teacher lineage's repl/repl.go: a Repl struct
// carrying banner/version/prompt fields, readline-backed line editing
// and history, and fatih/color-tinted output. There is no per-line
// panic-recovery wrapper: a bad line reports its diagnostics or runtime
// error and the loop moves on to the next line. Adapted to
// drive Lox's scan → parse → resolve → interpret pipeline instead of
// GoMix's Pratt-parser-then-eval pipeline, and to exit only on EOF
// (Ctrl-D) per spec.md §6 rather than the teacher's `.exit` command,
// since Lox has no such surface.
package repl

import (
	"errors"
	"io"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/builtins"
	"github.com/akashmaji946/golox/internal/golox/diag"
	"github.com/akashmaji946/golox/interpreter"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/resolver"
)

var (
	promptColor = color.New(color.FgCyan)
	errorColor  = color.New(color.FgRed)
	bannerColor = color.New(color.FgGreen)
)

// Repl holds the cosmetic configuration for an interactive session.
type Repl struct {
	Banner     string
	Version    string
	Prompt     string
	ShowBanner bool
}

// New creates a Repl with the given prompt. Banner/Version are the
// teacher-lineage conveniences shown at startup unless config disables
// them (see internal/golox/config).
func New(prompt, banner, version string, showBanner bool) *Repl {
	return &Repl{Banner: banner, Version: version, Prompt: prompt, ShowBanner: showBanner}
}

// Start runs the loop, reading from in and writing program output and
// diagnostics to out. It returns when the input stream hits EOF.
func (r *Repl) Start(in io.Reader, out io.Writer) error {
	if r.ShowBanner {
		bannerColor.Fprintln(out, r.Banner)
		promptColor.Fprintf(out, "golox %s — Ctrl-D to exit\n", r.Version)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      r.Prompt,
		Stdin:       io.NopCloser(in),
		Stdout:      out,
		Stderr:      out,
		HistoryFile: "",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	interp := interpreter.New(out, builtins.Register)
	reporter := diag.NewReporter()
	allLocals := resolver.Locals{}

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF on Ctrl-D, readline.ErrInterrupt on Ctrl-C
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			return nil
		}
		if line == "" {
			continue
		}
		r.evalLine(line, interp, reporter, allLocals, out)
	}
}

// evalLine runs one line of source through the full pipeline, printing
// diagnostics or, for a bare expression statement, its value — the
// classic jlox REPL convenience (SPEC_FULL.md §E6). File-mode execution
// never does this; only `print` produces output there.
//
// allLocals accumulates the resolver side-table across every line in the
// session: expression ids are minted from a monotonic counter and never
// reused, so a closure captured on an earlier line still resolves
// correctly once a later line calls it.
func (r *Repl) evalLine(line string, interp *interpreter.Interpreter, reporter *diag.Reporter, allLocals resolver.Locals, out io.Writer) {
	reporter.Reset()

	scan := lexer.New(line, reporter)
	tokens := scan.ScanTokens()

	par := parser.New(tokens, reporter)
	statements := par.Parse()

	if reporter.HadError() {
		reporter.Print(errColorWriter{out})
		return
	}

	res := resolver.New(reporter)
	fresh := res.Resolve(statements)
	if reporter.HadError() {
		reporter.Print(errColorWriter{out})
		return
	}
	for id, depth := range fresh {
		allLocals[id] = depth
	}
	interp.SetLocals(allLocals)

	if value, ok := asBareExpression(statements); ok {
		v, err := interp.EvaluateTopLevel(value)
		if err != nil {
			printRuntimeError(out, err)
			return
		}
		promptColor.Fprintln(out, interpreter.Stringify(v))
		return
	}

	if err := interp.Interpret(statements); err != nil {
		printRuntimeError(out, err)
	}
}

func asBareExpression(statements []ast.Stmt) (ast.Expr, bool) {
	if len(statements) != 1 {
		return nil, false
	}
	if exprStmt, ok := statements[0].(*ast.ExpressionStmt); ok {
		return exprStmt.Expression, true
	}
	return nil, false
}

func printRuntimeError(out io.Writer, err error) {
	if rt, ok := err.(*interpreter.RuntimeError); ok {
		errorColor.Fprintf(out, "%s\n[line %d]\n", rt.Message, rt.Token.Line)
		return
	}
	errorColor.Fprintln(out, err.Error())
}

// errColorWriter tints diagnostic lines red without changing
// diag.Reporter's plain-text rendering contract.
type errColorWriter struct {
	out io.Writer
}

func (w errColorWriter) Write(p []byte) (int, error) {
	errorColor.Fprint(w.out, string(p))
	return len(p), nil
}
