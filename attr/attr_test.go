package attr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/godjot/djot/attr"
)

func TestClass(t *testing.T) {
	n, ok := attr.Valid("{.def}abc")
	assert.Equal(t, len("{.def}"), n)
	assert.True(t, ok)
}

func TestId(t *testing.T) {
	n, ok := attr.Valid("{#main}")
	assert.Equal(t, len("{#main}"), n)
	assert.True(t, ok)
}

func TestKeyValue(t *testing.T) {
	n, ok := attr.Valid("{a=b}")
	assert.Equal(t, len("{a=b}"), n)
	assert.True(t, ok)
}

func TestKeyQuotedValue(t *testing.T) {
	n, ok := attr.Valid(`{a="b c"}`)
	assert.Equal(t, len(`{a="b c"}`), n)
	assert.True(t, ok)
}

func TestQuotedValueWithEscape(t *testing.T) {
	n, ok := attr.Valid(`{a="b\"c"}`)
	assert.Equal(t, len(`{a="b\"c"}`), n)
	assert.True(t, ok)
}

func TestEmptyIsNotNonEmpty(t *testing.T) {
	n, ok := attr.Valid("{}")
	assert.Equal(t, 2, n)
	assert.False(t, ok)
}

func TestCommentIsNotNonEmpty(t *testing.T) {
	n, ok := attr.Valid("{ % comment % }")
	assert.Equal(t, len("{ % comment % }"), n)
	assert.False(t, ok)
}

func TestUnclosedIsZero(t *testing.T) {
	n, ok := attr.Valid("{.def")
	assert.Equal(t, 0, n)
	assert.False(t, ok)
}

func TestNotABraceIsZero(t *testing.T) {
	n, ok := attr.Valid("abc")
	assert.Equal(t, 0, n)
	assert.False(t, ok)
}

func TestMultipleAttributes(t *testing.T) {
	n, ok := attr.Valid("{.a #b c=d}")
	assert.Equal(t, len("{.a #b c=d}"), n)
	assert.True(t, ok)
}

func TestMalformedKeyNoEquals(t *testing.T) {
	n, ok := attr.Valid("{abc}")
	assert.Equal(t, 0, n)
	assert.False(t, ok)
}
