// Package diag centralizes diagnostic collection and rendering for the
// scanner, parser, resolver, and interpreter.
//
// It mirrors the teacher lineage's pattern of accumulating error strings
// on the parser (see the "Errors []string" field the original go-mix
// parser carries) but generalizes it into a struct so every stage of the
// pipeline can feed one shared reporter instead of each stage inventing
// its own error slice.
package diag

import (
	"fmt"
	"io"
)

// Diagnostic is a single scanner, parser, or resolver error.
type Diagnostic struct {
	Line    int
	Where   string // "" for scanner errors, " at end", or " at '<lexeme>'"
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[line %d] Error%s: %s", d.Line, d.Where, d.Message)
}

// Reporter accumulates Diagnostics and tracks whether a runtime error
// has also occurred, so the CLI can pick the right exit code.
type Reporter struct {
	diagnostics  []Diagnostic
	hadRuntime   bool
	runtimeLines []int
}

// NewReporter returns an empty Reporter.
func NewReporter() *Reporter {
	return &Reporter{}
}

// ScanError records a lexical error (no location suffix).
func (r *Reporter) ScanError(line int, message string) {
	r.diagnostics = append(r.diagnostics, Diagnostic{Line: line, Message: message})
}

// ParseErrorAtEOF records a syntactic error located at end of input.
func (r *Reporter) ParseErrorAtEOF(line int, message string) {
	r.diagnostics = append(r.diagnostics, Diagnostic{Line: line, Where: " at end", Message: message})
}

// ParseErrorAt records a syntactic or semantic error located at a lexeme.
func (r *Reporter) ParseErrorAt(line int, lexeme, message string) {
	r.diagnostics = append(r.diagnostics, Diagnostic{
		Line:    line,
		Where:   fmt.Sprintf(" at '%s'", lexeme),
		Message: message,
	})
}

// ResolveError records a static/semantic error located at a lexeme.
func (r *Reporter) ResolveError(line int, lexeme, message string) {
	r.ParseErrorAt(line, lexeme, message)
}

// RuntimeError records that a runtime error occurred on the given line.
// Runtime errors are rendered separately (see PrintRuntimeError) since
// their format differs from scan/parse/resolve diagnostics.
func (r *Reporter) RuntimeError(line int) {
	r.hadRuntime = true
	r.runtimeLines = append(r.runtimeLines, line)
}

// HadError reports whether any scan/parse/resolve diagnostic was raised.
func (r *Reporter) HadError() bool {
	return len(r.diagnostics) > 0
}

// HadRuntimeError reports whether RuntimeError was ever called.
func (r *Reporter) HadRuntimeError() bool {
	return r.hadRuntime
}

// Diagnostics returns the accumulated diagnostics in report order.
func (r *Reporter) Diagnostics() []Diagnostic {
	return r.diagnostics
}

// Reset clears all accumulated state. The REPL calls this between lines
// so one bad line does not poison exit-code bookkeeping for the next.
func (r *Reporter) Reset() {
	r.diagnostics = nil
	r.hadRuntime = false
	r.runtimeLines = nil
}

// Print writes every collected diagnostic to w, one per line, in
// "[line N] Error<loc>: message" form.
func (r *Reporter) Print(w io.Writer) {
	for _, d := range r.diagnostics {
		fmt.Fprintln(w, d.String())
	}
}

// PrintRuntimeError writes a runtime error in "<message>\n[line N]" form.
func PrintRuntimeError(w io.Writer, message string, line int) {
	fmt.Fprintf(w, "%s\n[line %d]\n", message, line)
}
