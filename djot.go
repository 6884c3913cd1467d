// Package djot is the public facade: it stitches the block parser and the
// inline parser together into a single flat Event stream whose spans are
// always document-absolute, the way the reference implementation's own
// top-level Parser does.
package djot

import (
	"github.com/godjot/djot/attr"
	"github.com/godjot/djot/block"
	"github.com/godjot/djot/inline"
	"github.com/godjot/djot/span"
)

// Container mirrors the closed set of container kinds an Enter/Exit event
// pair can carry, block and inline alike.
type Container int

const (
	ContainerParagraph Container = iota
	ContainerHeading
	ContainerCodeBlock
	ContainerRawBlock
	ContainerTableCell
	ContainerDescriptionTerm
	ContainerBlockquote
	ContainerList
	ContainerListItem
	ContainerDescriptionList
	ContainerDescriptionDetails
	ContainerFootnote
	ContainerTable
	ContainerTableRow
	ContainerDiv

	ContainerSpan
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
	ContainerRawInline
	ContainerInlineMath
	ContainerDisplayMath
	ContainerReferenceLink
	ContainerReferenceImage
	ContainerInlineLink
	ContainerInlineImage
	ContainerAutolink
)

func (c Container) String() string {
	names := [...]string{
		"Paragraph", "Heading", "CodeBlock", "RawBlock", "TableCell", "DescriptionTerm",
		"Blockquote", "List", "ListItem", "DescriptionList", "DescriptionDetails",
		"Footnote", "Table", "TableRow", "Div",
		"Span", "Subscript", "Superscript", "Insert", "Delete", "Emphasis", "Strong",
		"Mark", "SingleQuoted", "DoubleQuoted", "Verbatim", "RawInline", "InlineMath",
		"DisplayMath", "ReferenceLink", "ReferenceImage", "InlineLink", "InlineImage", "Autolink",
	}
	if int(c) < 0 || int(c) >= len(names) {
		return "Container(?)"
	}
	return names[c]
}

// Atom mirrors inline.Atom plus the block-level atoms (Blankline,
// ThematicBreak) that have no inline equivalent.
type Atom int

const (
	AtomSoftbreak Atom = iota
	AtomHardbreak
	AtomEscape
	AtomNbsp
	AtomEllipsis
	AtomEnDash
	AtomEmDash
	AtomBlankline
	AtomThematicBreak
)

func (a Atom) String() string {
	names := [...]string{
		"Softbreak", "Hardbreak", "Escape", "Nbsp", "Ellipsis", "EnDash", "EmDash",
		"Blankline", "ThematicBreak",
	}
	if int(a) < 0 || int(a) >= len(names) {
		return "Atom(?)"
	}
	return names[a]
}

// Kind classifies an Event.
type Kind int

const (
	Enter Kind = iota
	Exit
	AtomKind
	Str
	Attributes
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
	case Attributes:
		return "Attributes"
	default:
		return "Kind(?)"
	}
}

// Event is a single item of the parser's output stream. Span is always
// relative to the original document, regardless of how deep in nested
// blocks the event originated.
type Event struct {
	Kind      Kind
	Container Container
	Atom      Atom

	// Lang/HeadingLevel/ListKind/FootnoteTag/DivClass carry the per-Enter
	// metadata a block carried that doesn't fit in Span (info-string
	// language, heading level, ordering scheme, footnote tag, div
	// class). Only the field matching Container is meaningful.
	Lang         string
	HeadingLevel int
	ListKind     block.ListKind
	FootnoteTag  string
	DivClass     string

	Span span.Span
}

func (e Event) Of(src string) string { return e.Span.Of(src) }

var blockContainer = [...]Container{
	block.Paragraph:          ContainerParagraph,
	block.Heading:            ContainerHeading,
	block.CodeBlock:          ContainerCodeBlock,
	block.RawBlock:           ContainerRawBlock,
	block.TableCell:          ContainerTableCell,
	block.DescriptionTerm:    ContainerDescriptionTerm,
	block.Blockquote:         ContainerBlockquote,
	block.List:               ContainerList,
	block.ListItem:           ContainerListItem,
	block.DescriptionList:    ContainerDescriptionList,
	block.DescriptionDetails: ContainerDescriptionDetails,
	block.Footnote:           ContainerFootnote,
	block.Table:              ContainerTable,
	block.TableRow:           ContainerTableRow,
	block.Div:                ContainerDiv,
}

var inlineContainer = [...]Container{
	inline.ContainerSpan:           ContainerSpan,
	inline.ContainerSubscript:      ContainerSubscript,
	inline.ContainerSuperscript:    ContainerSuperscript,
	inline.ContainerInsert:         ContainerInsert,
	inline.ContainerDelete:         ContainerDelete,
	inline.ContainerEmphasis:       ContainerEmphasis,
	inline.ContainerStrong:         ContainerStrong,
	inline.ContainerMark:           ContainerMark,
	inline.ContainerSingleQuoted:   ContainerSingleQuoted,
	inline.ContainerDoubleQuoted:   ContainerDoubleQuoted,
	inline.ContainerVerbatim:       ContainerVerbatim,
	inline.ContainerRawFormat:      ContainerRawInline,
	inline.ContainerInlineMath:     ContainerInlineMath,
	inline.ContainerDisplayMath:    ContainerDisplayMath,
	inline.ContainerReferenceLink:  ContainerReferenceLink,
	inline.ContainerReferenceImage: ContainerReferenceImage,
	inline.ContainerInlineLink:     ContainerInlineLink,
	inline.ContainerInlineImage:    ContainerInlineImage,
	inline.ContainerAutolink:       ContainerAutolink,
}

var inlineAtom = [...]Atom{
	inline.AtomSoftbreak: AtomSoftbreak,
	inline.AtomHardbreak: AtomHardbreak,
	inline.AtomEscape:    AtomEscape,
	inline.AtomNbsp:      AtomNbsp,
	inline.AtomEllipsis:  AtomEllipsis,
	inline.AtomEnDash:    AtomEnDash,
	inline.AtomEmDash:    AtomEmDash,
}

// Parser lazily drives the block tree and, for each leaf block, an inline
// parser over that leaf's text, translating inline spans back to
// document-absolute offsets as it goes.
type Parser struct {
	src    string
	tree   *block.Tree
	inline *inline.Parser
	// inlineStart is the document offset the active inline parser's
	// spans must be translated by.
	inlineStart int
	// closing holds the block Exit event pending once the active
	// inline parser is drained.
	closing block.Event
}

// NewParser builds a Parser over src. Parsing proceeds lazily as Next is
// called; constructing a Parser itself runs the (eager) block scan, same
// as the reference implementation.
func NewParser(src string) *Parser {
	return &Parser{src: src, tree: block.Parse(src)}
}

// Next returns the next event, or (Event{}, false) once the document is
// exhausted.
func (p *Parser) Next() (Event, bool) {
	for {
		if p.inline != nil {
			if ev, ok := p.inline.Next(); ok {
				ev.Span = ev.Span.Translate(p.inlineStart)
				return eventFromInline(ev), true
			}
			p.inline = nil
			return eventFromBlockExit(p.closing), true
		}

		ev, ok := p.tree.Next()
		if !ok {
			return Event{}, false
		}

		switch ev.Kind {
		case block.Atom:
			switch ev.Atom {
			case block.Blankline:
				return Event{Kind: AtomKind, Atom: AtomBlankline, Span: ev.Span}, true
			case block.ThematicBreak:
				return Event{Kind: AtomKind, Atom: AtomThematicBreak, Span: ev.Span}, true
			case block.Inline:
				p.inline = inline.New("", ev.Span.Of(p.src))
				p.inlineStart = ev.Span.Start()
				// The Inline atom is always immediately followed by the
				// leaf's Exit in the tree; consume it now and hold it
				// until the inline parser drains, the way the reference
				// implementation's top-level Parser does.
				if closingEv, ok := p.tree.Next(); ok {
					p.closing = closingEv
				}
				continue
			}
		case block.Enter:
			return eventFromBlockEnter(ev), true
		case block.Exit:
			return eventFromBlockExit(ev), true
		}
	}
}

// Parse runs a Parser over src to completion and returns every event.
func Parse(src string) []Event {
	p := NewParser(src)
	var out []Event
	for {
		ev, ok := p.Next()
		if !ok {
			return out
		}
		out = append(out, ev)
	}
}

func eventFromBlockEnter(ev block.Event) Event {
	return Event{
		Kind:         Enter,
		Container:    blockContainer[ev.Block.Kind],
		Lang:         ev.Block.Lang,
		HeadingLevel: ev.Block.HeadingLevel,
		ListKind:     ev.Block.ListKind,
		FootnoteTag:  ev.Block.FootnoteTag,
		DivClass:     ev.Block.DivClass,
		Span:         ev.Span,
	}
}

func eventFromBlockExit(ev block.Event) Event {
	return Event{
		Kind:         Exit,
		Container:    blockContainer[ev.Block.Kind],
		HeadingLevel: ev.Block.HeadingLevel,
		ListKind:     ev.Block.ListKind,
		Span:         ev.Span,
	}
}

func eventFromInline(ev inline.Event) Event {
	switch ev.Kind {
	case inline.Enter:
		return Event{Kind: Enter, Container: inlineContainer[ev.Container], Span: ev.Span}
	case inline.Exit:
		return Event{Kind: Exit, Container: inlineContainer[ev.Container], Span: ev.Span}
	case inline.AtomKind:
		return Event{Kind: AtomKind, Atom: inlineAtom[ev.Atom], Span: ev.Span}
	case inline.Attributes:
		return Event{Kind: Attributes, Span: ev.Span}
	default: // inline.Str, inline.Whitespace (Placeholder never escapes Next)
		return Event{Kind: Str, Span: ev.Span}
	}
}

// Attr exposes the attribute-block scanner attr.Valid for callers that
// need to interpret an Attributes event's span.
func Attr(src string) (consumed int, nonEmpty bool) {
	return attr.Valid(src)
}
