/*
File    : golox/diag/diag.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package diag holds the diagnostic contract shared by the scanner,
// parser, and evaluator: the had-error / had-runtime-error flags and the
// three fixed message shapes external test harnesses assert against.
//
// The flag pair is modeled as a context object threaded through the
// pipeline rather than as package-level mutable state, so a driver can
// run multiple independent pipelines (e.g. one per REPL line) without
// flags leaking between them.
package diag

import (
	"fmt"
	"io"

	"github.com/akashmaji946/golox/token"
)

// Context accumulates error flags for a single pipeline run and formats
// diagnostics to Out.
type Context struct {
	Out             io.Writer
	hadError        bool
	hadRuntimeError bool
}

// New creates a Context that writes diagnostics to out.
func New(out io.Writer) *Context {
	return &Context{Out: out}
}

// HadError reports whether a scan or parse error was reported.
func (c *Context) HadError() bool { return c.hadError }

// HadRuntimeError reports whether a runtime error was reported.
func (c *Context) HadRuntimeError() bool { return c.hadRuntimeError }

// ReportLex reports a scan-time error: "[line N] Error: message".
func (c *Context) ReportLex(line int, message string) {
	c.hadError = true
	fmt.Fprintf(c.Out, "[line %d] Error: %s\n", line, message)
}

// ReportParse reports a parse-time error attributed to tok:
// "[line N] Error at 'lexeme': message", or "...Error at end: message"
// when tok is EOF.
func (c *Context) ReportParse(tok token.Token, message string) {
	c.hadError = true
	where := "at end"
	if tok.Kind != token.EOF {
		where = fmt.Sprintf("at '%s'", tok.Lexeme)
	}
	fmt.Fprintf(c.Out, "[line %d] Error %s: %s\n", tok.Line, where, message)
}

// ReportRuntime reports a runtime error: "message\n[line N]".
func (c *Context) ReportRuntime(line int, message string) {
	c.hadRuntimeError = true
	fmt.Fprintf(c.Out, "%s\n[line %d]\n", message, line)
}
