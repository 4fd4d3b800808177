package hspec

import (
	"fmt"
	"strings"

	"github.com/stretchr/testify/assert"
)

// failT adapts testify's assert package to examples: the first failed
// assertion stops the example with an AssertionFailure.
type failT struct{}

func (failT) Errorf(format string, args ...any) {
	panic(&AssertionFailure{Message: strings.TrimSpace(fmt.Sprintf(format, args...))})
}

func (failT) Helper() {}

// Assert provides fail-fast assertions for examples. Every method stops
// the example on the first failed check.
type Assert struct{}

// Equal asserts that expected and actual are equal (ObjectsAreEqual).
func (a *Assert) Equal(expected, actual any, msgAndArgs ...any) {
	assert.Equal(failT{}, expected, actual, msgAndArgs...)
}

// NotEqual asserts that expected and actual differ.
func (a *Assert) NotEqual(expected, actual any, msgAndArgs ...any) {
	assert.NotEqual(failT{}, expected, actual, msgAndArgs...)
}

// Nil asserts value is nil.
func (a *Assert) Nil(value any, msgAndArgs ...any) {
	assert.Nil(failT{}, value, msgAndArgs...)
}

// NotNil asserts value is not nil.
func (a *Assert) NotNil(value any, msgAndArgs ...any) {
	assert.NotNil(failT{}, value, msgAndArgs...)
}

// True asserts condition is true.
func (a *Assert) True(condition bool, msgAndArgs ...any) {
	assert.True(failT{}, condition, msgAndArgs...)
}

// False asserts condition is false.
func (a *Assert) False(condition bool, msgAndArgs ...any) {
	assert.False(failT{}, condition, msgAndArgs...)
}

// NoError asserts err is nil.
func (a *Assert) NoError(err error, msgAndArgs ...any) {
	assert.NoError(failT{}, err, msgAndArgs...)
}

// Error asserts err is not nil.
func (a *Assert) Error(err error, msgAndArgs ...any) {
	assert.Error(failT{}, err, msgAndArgs...)
}

// ErrorIs asserts that err matches target using errors.Is.
func (a *Assert) ErrorIs(err, target error, msgAndArgs ...any) {
	assert.ErrorIs(failT{}, err, target, msgAndArgs...)
}

// ErrorContains asserts that err is non-nil and its message contains substr.
func (a *Assert) ErrorContains(err error, substr string, msgAndArgs ...any) {
	assert.ErrorContains(failT{}, err, substr, msgAndArgs...)
}

// Contains asserts that a string, slice, array or map contains the element.
func (a *Assert) Contains(s, contains any, msgAndArgs ...any) {
	assert.Contains(failT{}, s, contains, msgAndArgs...)
}

// NotContains asserts the opposite of Contains.
func (a *Assert) NotContains(s, contains any, msgAndArgs ...any) {
	assert.NotContains(failT{}, s, contains, msgAndArgs...)
}

// Len asserts collection has the expected length.
func (a *Assert) Len(collection any, length int, msgAndArgs ...any) {
	assert.Len(failT{}, collection, length, msgAndArgs...)
}

// Empty asserts value is empty.
func (a *Assert) Empty(value any, msgAndArgs ...any) {
	assert.Empty(failT{}, value, msgAndArgs...)
}

// NotEmpty asserts value is not empty.
func (a *Assert) NotEmpty(value any, msgAndArgs ...any) {
	assert.NotEmpty(failT{}, value, msgAndArgs...)
}

// Greater asserts that e1 > e2.
func (a *Assert) Greater(e1, e2 any, msgAndArgs ...any) {
	assert.Greater(failT{}, e1, e2, msgAndArgs...)
}

// Less asserts that e1 < e2.
func (a *Assert) Less(e1, e2 any, msgAndArgs ...any) {
	assert.Less(failT{}, e1, e2, msgAndArgs...)
}

// Fail fails the example with the given message.
func (a *Assert) Fail(message string, msgAndArgs ...any) {
	assert.Fail(failT{}, message, msgAndArgs...)
}
