/*
File    : golox/value/value_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthy(t *testing.T) {
	assert.False(t, Nil{}.Truthy())
	assert.False(t, Bool(false).Truthy())
	assert.True(t, Bool(true).Truthy())
	assert.True(t, Number(0).Truthy())
	assert.True(t, Str("").Truthy())
}

func TestString(t *testing.T) {
	assert.Equal(t, "nil", Nil{}.String())
	assert.Equal(t, "true", Bool(true).String())
	assert.Equal(t, "false", Bool(false).String())
	assert.Equal(t, "42", Number(42).String())
	assert.Equal(t, "42.5", Number(42.5).String())
	assert.Equal(t, "hello", Str("hello").String())
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(Nil{}, Nil{}))
	assert.True(t, Equal(Number(1), Number(1)))
	assert.False(t, Equal(Number(1), Number(2)))
	assert.False(t, Equal(Number(1), Str("1")))
	assert.True(t, Equal(Str("a"), Str("a")))
	assert.False(t, Equal(Bool(true), Nil{}))
}

func TestFromLiteral(t *testing.T) {
	assert.Equal(t, Nil{}, FromLiteral(nil))
	assert.Equal(t, Bool(true), FromLiteral(true))
	assert.Equal(t, Number(3), FromLiteral(float64(3)))
	assert.Equal(t, Str("x"), FromLiteral("x"))
}
