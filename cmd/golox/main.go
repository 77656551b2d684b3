/*
File    : golox/cmd/golox/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for golox, an interpreter for a small
expression-only subset of Lox. It provides two modes of operation:
1. File mode: `golox <command> <filename>` runs one of the three
   pipeline stages (tokenize/parse/evaluate) against a source file.
2. REPL mode (default, no arguments): an interactive read-eval-print
   loop for trying expressions line by line.
*/
package main

import (
	"os"

	"github.com/akashmaji946/golox/driver"
	"github.com/akashmaji946/golox/repl"
	"github.com/fatih/color"
)

// VERSION represents the current version of golox.
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the interpreter's author.
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENCE specifies the software license.
var LICENCE = "MIT"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "golox> "

// BANNER is the ASCII art logo displayed when starting the REPL.
var BANNER = `
   ▄████  ▄▄▄▄▄   ▄▄▄▄▄    ▄████▄  ▀██  ██▀
  ██▀ ▀██ ██  ██     ██▀  ██▀  ▀██   ████
  ██   ██ ██  ██  ▄█▀██   ██    ██   ▄██▄
  ▀██▄██▀ ██  ██ ██▄▄▄██▄ ▀██▄▄██▀  ▄█▀▀█▄
    ▀▀▀   ▀▀  ▀▀ ▀▀   ▀▀▀   ▀▀▀▀   ▀▀▀  ▀▀▀
`

// LINE is a separator line used for visual formatting in the REPL.
var LINE = "----------------------------------------------------------------"

var redColor = color.New(color.FgRed)

// main dispatches on os.Args:
//
//	golox                       - start the REPL
//	golox <command> <filename>  - run tokenize/parse/evaluate on a file
//
// Any other argument shape exits 1 with no output, per spec.
func main() {
	switch len(os.Args) {
	case 1:
		repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
		repler.Start(os.Stdin, os.Stdout)
	case 3:
		os.Exit(runFile(os.Args[1], os.Args[2]))
	default:
		os.Exit(driver.ExitUsage)
	}
}

// runFile reads filename and runs it through the pipeline stage named by
// cmd, writing results to stdout and diagnostics to stderr.
func runFile(cmd, filename string) int {
	source, err := os.ReadFile(filename)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read file '%s': %v\n", filename, err)
		return driver.ExitUsage
	}
	return driver.Run(cmd, string(source), os.Stdout, os.Stderr)
}
