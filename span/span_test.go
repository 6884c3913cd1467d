package span_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/godjot/djot/span"
)

func TestNewPanicsOnInvertedRange(t *testing.T) {
	require.Panics(t, func() {
		span.New(5, 2)
	})
}

func TestByLenAndOf(t *testing.T) {
	src := "hello world"
	s := span.ByLen(6, 5)
	assert.Equal(t, "world", s.Of(src))
	assert.Equal(t, 5, s.Len())
	assert.False(t, s.IsEmpty())
}

func TestEmptyAt(t *testing.T) {
	s := span.EmptyAt(3)
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 3, s.Start())
	assert.Equal(t, 3, s.End())
}

func TestExtendAndWith(t *testing.T) {
	s := span.New(0, 1).Extend(2)
	assert.Equal(t, span.New(0, 3), s)

	s = s.WithStart(1)
	assert.Equal(t, 1, s.Start())
	s = s.WithEnd(2)
	assert.Equal(t, 2, s.End())
}

func TestTranslate(t *testing.T) {
	s := span.New(2, 5).Translate(10)
	assert.Equal(t, span.New(12, 15), s)
}

func TestUnion(t *testing.T) {
	a := span.New(0, 3)
	b := span.New(3, 7)
	assert.Equal(t, span.New(0, 7), a.Union(b))
	assert.Equal(t, span.New(0, 7), b.Union(a))
}

func TestString(t *testing.T) {
	assert.Equal(t, "[2:5)", span.New(2, 5).String())
}
