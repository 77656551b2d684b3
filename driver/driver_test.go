/*
File    : golox/driver/driver_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package driver

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize_UnbalancedParentheses(t *testing.T) {
	var out, diagOut bytes.Buffer
	code := Tokenize("(()", &out, &diagOut)

	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "LEFT_PAREN ( null\nLEFT_PAREN ( null\nRIGHT_PAREN ) null\nEOF  null\n", out.String())
}

func TestTokenize_UnterminatedString(t *testing.T) {
	var out, diagOut bytes.Buffer
	code := Tokenize(`"foo`, &out, &diagOut)

	assert.Equal(t, ExitDataErr, code)
	assert.Equal(t, "[line 1] Error: Unterminated string.\n", diagOut.String())
	assert.Equal(t, "EOF  null\n", out.String())
}

func TestParse_Arithmetic(t *testing.T) {
	var out, diagOut bytes.Buffer
	code := Parse("1 + 2 * 3", &out, &diagOut)

	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "(+ 1 (* 2 3))\n", out.String())
}

func TestParse_UnclosedGrouping(t *testing.T) {
	var out, diagOut bytes.Buffer
	code := Parse("(1 + 2", &out, &diagOut)

	assert.Equal(t, ExitDataErr, code)
	assert.Equal(t, "[line 1] Error at end: Expect ')' after expression.\n", diagOut.String())
	assert.Equal(t, "", out.String())
}

func TestEvaluate_StringConcatenation(t *testing.T) {
	var out, diagOut bytes.Buffer
	code := Evaluate(`"hello" + " world"`, &out, &diagOut)

	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "hello world\n", out.String())
}

func TestEvaluate_NegateNonNumberIsRuntimeError(t *testing.T) {
	var out, diagOut bytes.Buffer
	code := Evaluate(`-"a"`, &out, &diagOut)

	assert.Equal(t, ExitSoftware, code)
	assert.Equal(t, "Operand must be a number.\n[line 1]\n", diagOut.String())
}

func TestEvaluate_Truthiness(t *testing.T) {
	var out, diagOut bytes.Buffer
	assert.Equal(t, ExitOK, Evaluate("!nil", &out, &diagOut))
	assert.Equal(t, "true\n", out.String())

	out.Reset()
	diagOut.Reset()
	assert.Equal(t, ExitOK, Evaluate("!0", &out, &diagOut))
	assert.Equal(t, "false\n", out.String())
}

func TestRun_UnknownCommandExitsUsage(t *testing.T) {
	var out, diagOut bytes.Buffer
	code := Run("bogus", "1", &out, &diagOut)

	assert.Equal(t, ExitUsage, code)
	assert.Equal(t, "", out.String())
	assert.Equal(t, "", diagOut.String())
}

func TestEvaluate_HaltsBeforeRunningOnScanError(t *testing.T) {
	var out, diagOut bytes.Buffer
	code := Evaluate(`"unterminated`, &out, &diagOut)

	assert.Equal(t, ExitDataErr, code)
	assert.Equal(t, "", out.String())
}
