/*
File    : golox/driver/driver.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package driver wires the scanner, parser, and evaluator into the three
// commands the CLI exposes, and maps pipeline outcomes to the fixed exit
// codes spec.md §6 defines. Selecting a later stage implicitly runs all
// earlier stages, halting before the later stage if an earlier one
// flagged an error.
package driver

import (
	"fmt"
	"io"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/diag"
	"github.com/akashmaji946/golox/eval"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
)

// Exit codes, per spec.md §6.
const (
	ExitOK       = 0
	ExitUsage    = 1
	ExitDataErr  = 65 // EX_DATAERR: scan or parse error
	ExitSoftware = 70 // EX_SOFTWARE: runtime error
)

// Tokenize scans source and writes one line per token (terminated by
// EOF) to out. It returns ExitDataErr if any lexical error was reported,
// else ExitOK.
func Tokenize(source string, out, diagOut io.Writer) int {
	ctx := diag.New(diagOut)
	tokens := lexer.New(source, ctx).ScanTokens()
	for _, tok := range tokens {
		fmt.Fprintln(out, tok.String())
	}
	if ctx.HadError() {
		return ExitDataErr
	}
	return ExitOK
}

// Parse scans then parses source, printing the pretty-printed AST to
// out. It halts before parsing (and returns ExitDataErr) if scanning
// produced any error.
func Parse(source string, out, diagOut io.Writer) int {
	ctx := diag.New(diagOut)
	tokens := lexer.New(source, ctx).ScanTokens()
	if ctx.HadError() {
		return ExitDataErr
	}
	expr, ok := parser.New(tokens, ctx).Parse()
	if !ok || ctx.HadError() {
		return ExitDataErr
	}
	fmt.Fprintln(out, ast.Print(expr))
	return ExitOK
}

// Evaluate scans, parses, and evaluates source, printing the resulting
// value to out. It halts at the first stage that flagged an error,
// returning ExitDataErr for a scan/parse error and ExitSoftware for a
// runtime error.
func Evaluate(source string, out, diagOut io.Writer) int {
	ctx := diag.New(diagOut)
	tokens := lexer.New(source, ctx).ScanTokens()
	if ctx.HadError() {
		return ExitDataErr
	}
	expr, ok := parser.New(tokens, ctx).Parse()
	if !ok || ctx.HadError() {
		return ExitDataErr
	}
	result, runtimeErr := eval.New().Eval(expr)
	if runtimeErr != nil {
		ctx.ReportRuntime(runtimeErr.Token.Line, runtimeErr.Message)
		return ExitSoftware
	}
	fmt.Fprintln(out, result.String())
	return ExitOK
}

// Command names the three pipeline stages the CLI can select.
type Command string

const (
	CommandTokenize Command = "tokenize"
	CommandParse    Command = "parse"
	CommandEvaluate Command = "evaluate"
)

// Run dispatches source to the stage named by cmd, returning ExitUsage
// for any other command name.
func Run(cmd string, source string, out, diagOut io.Writer) int {
	switch Command(cmd) {
	case CommandTokenize:
		return Tokenize(source, out, diagOut)
	case CommandParse:
		return Parse(source, out, diagOut)
	case CommandEvaluate:
		return Evaluate(source, out, diagOut)
	default:
		return ExitUsage
	}
}
