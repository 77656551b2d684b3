/*
File    : golox/eval/eval_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/golox/diag"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
	"github.com/stretchr/testify/assert"
)

func evalSource(t *testing.T, src string) (string, *RuntimeError) {
	var out bytes.Buffer
	ctx := diag.New(&out)
	tokens := lexer.New(src, ctx).ScanTokens()
	expr, ok := parser.New(tokens, ctx).Parse()
	if !ok {
		t.Fatalf("unexpected parse failure for %q: %s", src, out.String())
	}
	result, err := New().Eval(expr)
	if err != nil {
		return "", err
	}
	return result.String(), nil
}

func TestEval_Arithmetic(t *testing.T) {
	result, err := evalSource(t, "1 + 2 * 3")
	assert.Nil(t, err)
	assert.Equal(t, "7", result)
}

func TestEval_StringConcatenation(t *testing.T) {
	result, err := evalSource(t, `"hello" + " world"`)
	assert.Nil(t, err)
	assert.Equal(t, "hello world", result)
}

func TestEval_Comparison(t *testing.T) {
	result, err := evalSource(t, "1 < 2")
	assert.Nil(t, err)
	assert.Equal(t, "true", result)
}

func TestEval_Equality(t *testing.T) {
	result, err := evalSource(t, `"a" == "a"`)
	assert.Nil(t, err)
	assert.Equal(t, "true", result)

	result, err = evalSource(t, "1 == \"1\"")
	assert.Nil(t, err)
	assert.Equal(t, "false", result)
}

func TestEval_Truthiness(t *testing.T) {
	result, err := evalSource(t, "!nil")
	assert.Nil(t, err)
	assert.Equal(t, "true", result)

	result, err = evalSource(t, "!0")
	assert.Nil(t, err)
	assert.Equal(t, "false", result)
}

func TestEval_UnaryNegation(t *testing.T) {
	result, err := evalSource(t, "-(-5)")
	assert.Nil(t, err)
	assert.Equal(t, "5", result)
}

func TestEval_NegateNonNumberIsRuntimeError(t *testing.T) {
	_, err := evalSource(t, `-"a"`)
	assert.NotNil(t, err)
	assert.Equal(t, "Operand must be a number.", err.Message)
}

func TestEval_AddMixedTypesIsRuntimeError(t *testing.T) {
	_, err := evalSource(t, `1 + "a"`)
	assert.NotNil(t, err)
	assert.Equal(t, "Operands must be two numbers or two strings.", err.Message)
}

func TestEval_CompareNonNumbersIsRuntimeError(t *testing.T) {
	_, err := evalSource(t, `"a" < "b"`)
	assert.NotNil(t, err)
	assert.Equal(t, "Operands must be numbers.", err.Message)
}

func TestEval_DivisionByZero(t *testing.T) {
	result, err := evalSource(t, "1 / 0")
	assert.Nil(t, err)
	assert.Equal(t, "+Inf", result)
}
