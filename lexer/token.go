package lexer

import "fmt"

// Kind classifies a Token. Some kinds carry auxiliary data (Seq, Sym,
// Delim) on the Token itself rather than as a payload on Kind, since Go
// enums can't carry per-variant fields the way the Rust original does.
type Kind int

const (
	// Text is any run of characters with no special inline meaning.
	Text Kind = iota
	// Newline is a single line-ending character.
	Newline
	// Hardbreak is a backslash, a run of spaces/tabs, then a newline.
	Hardbreak
	// Escape is a backslash followed by a punctuation character or a newline.
	Escape
	// Nbsp is a non-breaking space character.
	Nbsp
	// Whitespace is a run of ASCII space/tab characters.
	Whitespace
	// Seq is a run of a significant repeatable character; see Sequence.
	Seq
	// Sym is a single significant character; see Symbol.
	Sym
	// Open is the opening form of a bracket/brace delimiter; see Delimiter.
	Open
	// Close is the closing form of a bracket/brace delimiter; see Delimiter.
	Close
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "Text"
	case Newline:
		return "Newline"
	case Hardbreak:
		return "Hardbreak"
	case Escape:
		return "Escape"
	case Nbsp:
		return "Nbsp"
	case Whitespace:
		return "Whitespace"
	case Seq:
		return "Seq"
	case Sym:
		return "Sym"
	case Open:
		return "Open"
	case Close:
		return "Close"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Sequence identifies which repeatable character a Seq token is a run of.
type Sequence int

const (
	Backtick Sequence = iota
	Dollar
	Period
	Hyphen
)

func (s Sequence) String() string {
	switch s {
	case Backtick:
		return "Backtick"
	case Dollar:
		return "Dollar"
	case Period:
		return "Period"
	case Hyphen:
		return "Hyphen"
	default:
		return fmt.Sprintf("Sequence(%d)", int(s))
	}
}

// Symbol identifies a single significant character token.
type Symbol int

const (
	Asterisk Symbol = iota
	Underscore
	Caret
	Tilde
	Quote1
	Quote2
	Lt
	ExclaimBracket
)

func (s Symbol) String() string {
	switch s {
	case Asterisk:
		return "Asterisk"
	case Underscore:
		return "Underscore"
	case Caret:
		return "Caret"
	case Tilde:
		return "Tilde"
	case Quote1:
		return "Quote1"
	case Quote2:
		return "Quote2"
	case Lt:
		return "Lt"
	case ExclaimBracket:
		return "ExclaimBracket"
	default:
		return fmt.Sprintf("Symbol(%d)", int(s))
	}
}

// Delimiter identifies which bracket/brace form an Open or Close token is.
type Delimiter int

const (
	Bracket Delimiter = iota
	Brace
	BraceAsterisk
	BraceUnderscore
	BraceCaret
	BraceTilde
	BraceEqual
	BraceHyphen
	BracePlus
)

func (d Delimiter) String() string {
	switch d {
	case Bracket:
		return "Bracket"
	case Brace:
		return "Brace"
	case BraceAsterisk:
		return "BraceAsterisk"
	case BraceUnderscore:
		return "BraceUnderscore"
	case BraceCaret:
		return "BraceCaret"
	case BraceTilde:
		return "BraceTilde"
	case BraceEqual:
		return "BraceEqual"
	case BraceHyphen:
		return "BraceHyphen"
	case BracePlus:
		return "BracePlus"
	default:
		return fmt.Sprintf("Delimiter(%d)", int(d))
	}
}

// Token is a single lexical item produced by the Lexer. Len is its byte
// length in the source; Seq/Sym/Delim are only meaningful for the Kind
// that produces them (Seq, Sym, and Open/Close respectively).
type Token struct {
	Kind  Kind
	Len   int
	Seq   Sequence
	Sym   Symbol
	Delim Delimiter
}

func (t Token) String() string {
	switch t.Kind {
	case Seq:
		return fmt.Sprintf("Seq(%s, %d)", t.Seq, t.Len)
	case Sym:
		return fmt.Sprintf("Sym(%s)", t.Sym)
	case Open:
		return fmt.Sprintf("Open(%s)", t.Delim)
	case Close:
		return fmt.Sprintf("Close(%s)", t.Delim)
	default:
		return fmt.Sprintf("%s(len=%d)", t.Kind, t.Len)
	}
}
