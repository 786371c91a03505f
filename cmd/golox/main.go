// Command golox is the Lox interpreter's entry point.
//
// Grounded on the teacher lineage's main/main.go: the same
// zero-args-means-REPL / one-arg-means-run-file dispatch, the same
// --help/--version sugar, and the same red/cyan stderr coloring via
// fatih/color. Unlike the teacher, nothing here wraps execution in a
// recover(): the whole scan/parse/resolve/interpret pipeline already
// reports failure through ordinary error returns, so there is nothing
// left for a recover() to catch. The teacher's extra `server`
// subcommand (a networked REPL) is dropped — spec.md §6 defines exactly
// three CLI shapes (no args, one arg, N args) and a TCP server is not
// one of them, nor does it serve any ambient concern this repo carries
// — see DESIGN.md.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/golox/builtins"
	"github.com/akashmaji946/golox/internal/golox/config"
	"github.com/akashmaji946/golox/internal/golox/diag"
	"github.com/akashmaji946/golox/internal/golox/repl"
	"github.com/akashmaji946/golox/interpreter"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/resolver"
)

const version = "0.1.0"

const banner = `  __ _  ___ | | _____  __
 / _' |/ _ \| |/ _ \ \/ /
| (_| | (_) | | (_) >  <
 \__, |\___/|_|\___/_/\_\
 |___/`

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

func main() {
	args := os.Args[1:]

	if len(args) > 0 && (args[0] == "--help" || args[0] == "-h") {
		printUsage(os.Stdout)
		os.Exit(0)
	}
	if len(args) > 0 && (args[0] == "--version" || args[0] == "-v") {
		cyanColor.Printf("golox %s\n", version)
		os.Exit(0)
	}

	switch len(args) {
	case 0:
		cfg := config.Parse(nil)
		r := repl.New(cfg.Prompt, banner, version, cfg.ShowBanner)
		if err := r.Start(os.Stdin, os.Stdout); err != nil {
			redColor.Fprintf(os.Stderr, "repl error: %v\n", err)
			os.Exit(70)
		}
	case 1:
		os.Exit(runFile(args[0]))
	default:
		printUsage(os.Stderr)
		os.Exit(64)
	}
}

func printUsage(w *os.File) {
	fmt.Fprintln(w, "Usage: golox [script]")
}

// runFile reads and executes a single Lox source file, returning the
// process exit code spec.md §6 mandates: 65 on any syntax/resolution
// error, 70 on any runtime error, 0 otherwise. A file that cannot be
// read yields 64.
func runFile(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read file %q: %v\n", path, err)
		return 64
	}

	reporter := diag.NewReporter()

	scan := lexer.New(string(source), reporter)
	tokens := scan.ScanTokens()

	par := parser.New(tokens, reporter)
	statements := par.Parse()

	if reporter.HadError() {
		reporter.Print(os.Stderr)
		return 65
	}

	res := resolver.New(reporter)
	locals := res.Resolve(statements)
	if reporter.HadError() {
		reporter.Print(os.Stderr)
		return 65
	}

	interp := interpreter.New(os.Stdout, builtins.Register)
	interp.SetLocals(locals)

	if err := interp.Interpret(statements); err != nil {
		if rt, ok := err.(*interpreter.RuntimeError); ok {
			diag.PrintRuntimeError(os.Stderr, rt.Message, rt.Token.Line)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		return 70
	}
	return 0
}
