package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestIs(t *testing.T) {
	err1 := New("error 1")
	err2 := New("error 2")
	wrapped := Wrap(err1, "wrapped")

	assert.True(t, Is(wrapped, err1))
	assert.False(t, Is(wrapped, err2))
	assert.False(t, Is(nil, err1))
}

func TestWithHint(t *testing.T) {
	err := New("error")
	withHint := WithHint(err, "try this fix")

	hints := GetAllHints(withHint)
	require.Len(t, hints, 1)
	assert.Equal(t, "try this fix", hints[0])
}

func TestInvalidExpressionSentinel(t *testing.T) {
	err := NewInvalidExpressionError("segment %q has no '='", "severity")
	require.NotNil(t, err)

	assert.True(t, IsInvalidExpressionError(err))
	assert.Contains(t, err.Error(), `segment "severity" has no '='`)

	// Further wrapping preserves the sentinel
	wrapped := Wrap(err, "parsing filter")
	assert.True(t, IsInvalidExpressionError(wrapped))

	assert.False(t, IsInvalidExpressionError(nil))
	assert.False(t, IsInvalidExpressionError(New("unrelated")))
}

func TestWrapInvalidExpression(t *testing.T) {
	cause := New("month out of range")
	err := WrapInvalidExpression(cause, "parsing center instant")

	assert.True(t, IsInvalidExpressionError(err))
	assert.Contains(t, err.Error(), "parsing center instant")
	assert.Contains(t, err.Error(), "month out of range")
}

func TestNotFoundSentinel(t *testing.T) {
	err := Wrap(ErrNotFound, "object logs/2019/x.json")

	assert.True(t, IsNotFoundError(err))
	assert.False(t, IsNotFoundError(New("present")))
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
	assert.Nil(t, WithStack(nil))
	assert.Nil(t, WithHint(nil, "hint"))
}

func TestStackTrace(t *testing.T) {
	err := New("with stack")

	// Format with stack trace
	detailed := fmt.Sprintf("%+v", err)
	assert.Contains(t, detailed, "errors_test.go")
}

func ExampleWrap() {
	baseErr := New("no such file or directory")
	err := Wrap(baseErr, "opening input")
	fmt.Println(err)
	// Output: opening input: no such file or directory
}

func ExampleWithHint() {
	err := New("no input files matched")
	err = WithHint(err, "pass --recurse to search subdirectories")

	hints := GetAllHints(err)
	fmt.Println(hints[0])
	// Output: pass --recurse to search subdirectories
}
