// Package inline is the core of the parser: it drives the lexer over a
// leaf block's text span, tracks candidate container openers, and emits a
// flat, correctly-nested stream of Events whose spans reference back into
// the original source.
package inline

import (
	"fmt"

	"github.com/godjot/djot/span"
)

// Container is the closed set of inline container kinds an Enter/Exit
// event pair can carry.
type Container int

const (
	ContainerSpan Container = iota
	ContainerSubscript
	ContainerSuperscript
	ContainerInsert
	ContainerDelete
	ContainerEmphasis
	ContainerStrong
	ContainerMark
	ContainerSingleQuoted
	ContainerDoubleQuoted
	ContainerVerbatim
	// ContainerRawFormat's event span holds the format tag, e.g. "html".
	ContainerRawFormat
	ContainerInlineMath
	ContainerDisplayMath
	// ContainerReferenceLink/Image's event span holds the reference tag.
	ContainerReferenceLink
	ContainerReferenceImage
	// ContainerInlineLink/Image's event span holds the URL.
	ContainerInlineLink
	ContainerInlineImage
	ContainerAutolink
)

func (c Container) String() string {
	switch c {
	case ContainerSpan:
		return "Span"
	case ContainerSubscript:
		return "Subscript"
	case ContainerSuperscript:
		return "Superscript"
	case ContainerInsert:
		return "Insert"
	case ContainerDelete:
		return "Delete"
	case ContainerEmphasis:
		return "Emphasis"
	case ContainerStrong:
		return "Strong"
	case ContainerMark:
		return "Mark"
	case ContainerSingleQuoted:
		return "SingleQuoted"
	case ContainerDoubleQuoted:
		return "DoubleQuoted"
	case ContainerVerbatim:
		return "Verbatim"
	case ContainerRawFormat:
		return "RawFormat"
	case ContainerInlineMath:
		return "InlineMath"
	case ContainerDisplayMath:
		return "DisplayMath"
	case ContainerReferenceLink:
		return "ReferenceLink"
	case ContainerReferenceImage:
		return "ReferenceImage"
	case ContainerInlineLink:
		return "InlineLink"
	case ContainerInlineImage:
		return "InlineImage"
	case ContainerAutolink:
		return "Autolink"
	default:
		return fmt.Sprintf("Container(%d)", int(c))
	}
}

// Atom is an atomic, non-container inline element.
type Atom int

const (
	AtomSoftbreak Atom = iota
	AtomHardbreak
	AtomEscape
	AtomNbsp
	AtomEllipsis
	AtomEnDash
	AtomEmDash
)

func (a Atom) String() string {
	switch a {
	case AtomSoftbreak:
		return "Softbreak"
	case AtomHardbreak:
		return "Hardbreak"
	case AtomEscape:
		return "Escape"
	case AtomNbsp:
		return "Nbsp"
	case AtomEllipsis:
		return "Ellipsis"
	case AtomEnDash:
		return "EnDash"
	case AtomEmDash:
		return "EmDash"
	default:
		return fmt.Sprintf("Atom(%d)", int(a))
	}
}

// Kind classifies an Event. Container is only meaningful for Enter/Exit;
// Atom only for AtomKind.
type Kind int

const (
	Enter Kind = iota
	Exit
	AtomKind
	Str
	Whitespace
	Attributes
	Placeholder
)

func (k Kind) String() string {
	switch k {
	case Enter:
		return "Enter"
	case Exit:
		return "Exit"
	case AtomKind:
		return "Atom"
	case Str:
		return "Str"
	case Whitespace:
		return "Whitespace"
	case Attributes:
		return "Attributes"
	case Placeholder:
		return "Placeholder"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Event is a single item of the parser's output stream.
type Event struct {
	Kind      Kind
	Container Container
	Atom      Atom
	Span      span.Span
}

func (e Event) String() string {
	switch e.Kind {
	case Enter, Exit:
		return fmt.Sprintf("%s(%s) %s", e.Kind, e.Container, e.Span)
	case AtomKind:
		return fmt.Sprintf("Atom(%s) %s", e.Atom, e.Span)
	default:
		return fmt.Sprintf("%s %s", e.Kind, e.Span)
	}
}

// Of returns the source text the event's span covers.
func (e Event) Of(src string) string {
	return e.Span.Of(src)
}
