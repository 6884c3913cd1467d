// Package block is the inline parser's collaborator: it scans a document
// line by line, in the stateFn style of the teacher's own line-oriented
// lexer, and produces a flat stream of block Events. Leaf blocks carry an
// Inline atom whose span is the text to be handed to package inline; the
// public djot facade stitches the two streams together.
package block

import "fmt"

// Kind is the closed set of block container and leaf kinds.
type Kind int

const (
	// Leaves: contain inline content (or raw text), never child blocks.
	Paragraph Kind = iota
	Heading
	CodeBlock
	RawBlock
	TableCell
	DescriptionTerm

	// Containers: contain child blocks.
	Blockquote
	List
	ListItem
	DescriptionList
	DescriptionDetails
	Footnote
	Table
	TableRow
	Div
)

func (k Kind) String() string {
	switch k {
	case Paragraph:
		return "Paragraph"
	case Heading:
		return "Heading"
	case CodeBlock:
		return "CodeBlock"
	case RawBlock:
		return "RawBlock"
	case TableCell:
		return "TableCell"
	case DescriptionTerm:
		return "DescriptionTerm"
	case Blockquote:
		return "Blockquote"
	case List:
		return "List"
	case ListItem:
		return "ListItem"
	case DescriptionList:
		return "DescriptionList"
	case DescriptionDetails:
		return "DescriptionDetails"
	case Footnote:
		return "Footnote"
	case Table:
		return "Table"
	case TableRow:
		return "TableRow"
	case Div:
		return "Div"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// IsLeaf reports whether a Kind holds inline content directly rather than
// child blocks.
func (k Kind) IsLeaf() bool {
	switch k {
	case Paragraph, Heading, CodeBlock, RawBlock, TableCell, DescriptionTerm:
		return true
	default:
		return false
	}
}

// ListKind distinguishes the bullet/ordering scheme of a List container.
type ListKind int

const (
	ListUnordered ListKind = iota
	ListOrdered
	ListDescription
	ListTask
)

func (k ListKind) String() string {
	switch k {
	case ListUnordered:
		return "Unordered"
	case ListOrdered:
		return "Ordered"
	case ListDescription:
		return "Description"
	case ListTask:
		return "Task"
	default:
		return fmt.Sprintf("ListKind(%d)", int(k))
	}
}

// Block is a single container or leaf instance. Fields outside a Kind's
// relevant subset are zero.
type Block struct {
	Kind Kind

	HeadingLevel int      // Heading
	Lang         string   // CodeBlock: info-string language, may be empty
	Format       string   // RawBlock: output-format tag
	ListKind     ListKind // List
	FootnoteTag  string   // Footnote
	DivClass     string   // Div, may be empty
}

// AtomKind is a non-container, non-leaf marker emitted in the tree's flat
// event stream.
type AtomKind int

const (
	// Blankline marks a blank-line separator; carries no inline content.
	Blankline AtomKind = iota
	// Attributes holds an attribute-block span attached to the block
	// that follows it.
	Attributes
	// Inline marks a leaf's content span; the consumer runs package
	// inline over Span.Of(src) to obtain the leaf's inline events.
	Inline
	// ThematicBreak marks a horizontal-rule line; carries no content.
	ThematicBreak
)

func (a AtomKind) String() string {
	switch a {
	case Blankline:
		return "Blankline"
	case Attributes:
		return "Attributes"
	case Inline:
		return "Inline"
	case ThematicBreak:
		return "ThematicBreak"
	default:
		return fmt.Sprintf("AtomKind(%d)", int(a))
	}
}
