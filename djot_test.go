package djot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/godjot/djot"
)

func TestParseParagraph(t *testing.T) {
	events := djot.Parse("hello world")
	assert.Equal(t, djot.Enter, events[0].Kind)
	assert.Equal(t, djot.ContainerParagraph, events[0].Container)
	assert.Equal(t, djot.Str, events[1].Kind)
	assert.Equal(t, "hello world", events[1].Of("hello world"))
	assert.Equal(t, djot.Exit, events[2].Kind)
}

func TestParseEmphasisInsideParagraph(t *testing.T) {
	src := "a _b_ c"
	events := djot.Parse(src)
	var kinds []string
	for _, e := range events {
		if e.Kind == djot.Enter || e.Kind == djot.Exit {
			kinds = append(kinds, e.Kind.String()+":"+e.Container.String())
		}
	}
	assert.Equal(t, []string{
		"Enter:Paragraph",
		"Enter:Emphasis", "Exit:Emphasis",
		"Exit:Paragraph",
	}, kinds)
}

func TestSpansAreDocumentAbsolute(t *testing.T) {
	src := "first\n\n_second_"
	events := djot.Parse(src)
	for _, e := range events {
		if e.Kind == djot.Str && e.Of(src) == "second" {
			assert.Equal(t, "second", src[e.Span.Start():e.Span.End()])
			return
		}
	}
	t.Fatal("did not find second paragraph's Str event")
}

func TestHeadingLevel(t *testing.T) {
	events := djot.Parse("### three")
	assert.Equal(t, 3, events[0].HeadingLevel)
}

func TestThematicBreakAtom(t *testing.T) {
	events := djot.Parse("---")
	assert.Equal(t, djot.AtomKind, events[0].Kind)
	assert.Equal(t, djot.AtomThematicBreak, events[0].Atom)
}

func TestCodeBlockLang(t *testing.T) {
	events := djot.Parse("```go\nx\n```")
	assert.Equal(t, "go", events[0].Lang)
}
