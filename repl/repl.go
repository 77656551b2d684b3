/*
File    : golox/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop (REPL) for golox.
The REPL provides an interactive environment where users can:
- Enter an expression line by line
- See its evaluated result immediately
- Navigate command history using arrow keys
- Receive colored feedback for different types of output

The REPL uses the readline library for enhanced line editing capabilities
and runs each line through the same scan/parse/eval pipeline as file mode.
*/
package repl

import (
	"bytes"
	"io"
	"strings"

	"github.com/akashmaji946/golox/driver"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Color definitions for REPL output
// These colors provide visual feedback to enhance user experience:
// - blueColor: Decorative lines and separators
// - yellowColor: Expression results and version info
// - redColor: Error messages and warnings
// - greenColor: Banner
// - cyanColor: Informational messages and instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents the Read-Eval-Print Loop instance.
// It encapsulates all the configuration needed to run an interactive session.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // Version string of the interpreter
	Author  string // Author contact information
	Line    string // Separator line for visual formatting
	License string // Software license information
	Prompt  string // Command prompt shown to the user (e.g., "golox> ")
}

// NewRepl creates and initializes a new REPL instance.
func NewRepl(banner string, version string, author string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to golox!")
	cyanColor.Fprintf(writer, "%s\n", "Type an expression and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop.
// This is the core function that handles the interactive session:
// 1. Displays the welcome banner
// 2. Sets up readline for line editing and history
// 3. Enters the main read-eval-print loop, one expression per line
// 4. Processes user input until exit
//
// The loop continues until the user types '.exit', EOF is encountered
// (Ctrl+D), or an error occurs in readline. Unlike file mode, a bad line
// never terminates the session — it is reported and the prompt returns.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.execute(writer, line)
	}
}

// execute runs one line through the scan/parse/eval pipeline and prints
// its result or diagnostic, coloring success yellow and any reported
// error red. Diagnostics are formatted by driver.Evaluate via a private
// diag.Context, so they carry the exact messages file mode reports.
func (r *Repl) execute(writer io.Writer, line string) {
	var diagBuf bytes.Buffer
	var resultBuf bytes.Buffer

	code := driver.Evaluate(line, &resultBuf, &diagBuf)

	if diagBuf.Len() > 0 {
		redColor.Fprint(writer, diagBuf.String())
	}
	if code == driver.ExitOK && resultBuf.Len() > 0 {
		yellowColor.Fprint(writer, resultBuf.String())
	}
}
