// Package delim classifies lexer tokens as potential inline container
// delimiters. It is a single pure mapping function, grounded on the same
// small-switch style the teacher uses for its own enum conversions (e.g.
// Status.ToSmi() in parser/common.go).
package delim

import "github.com/godjot/djot/lexer"

// Directionality records whether a delimiter's open and close forms share
// one token spelling (symmetric, e.g. '*') or are distinguished by the
// brace spelling (e.g. '{*' vs '*}').
type Directionality int

const (
	Uni Directionality = iota
	Bi
)

// SpanType distinguishes an image-opening span delimiter from a general
// one; both close on the same ']' token, but only the decision of which
// container kind to produce depends on which it was.
type SpanType int

const (
	General SpanType = iota
	Image
)

// Kind is the closed set of delimiter classifications.
type Kind int

const (
	Span Kind = iota
	Strong
	Emphasis
	Superscript
	Subscript
	SingleQuoted
	DoubleQuoted
	Mark
	Delete
	Insert
)

// Delim is a classified delimiter candidate: its Kind plus, where
// applicable, its SpanType or Directionality.
type Delim struct {
	Kind  Kind
	Span  SpanType
	Dir   Directionality
}

// Dir is which direction(s) a token may act as for a given Delim.
type Dir int

const (
	Open Dir = iota
	Close
	Both
)

// Matches reports whether other is an acceptable closer for an opener of
// kind d, applying the one relaxation the spec calls out: any Span
// opener matches any Span closer regardless of SpanType.
func (d Delim) Matches(other Delim) bool {
	if d.Kind == Span && other.Kind == Span {
		return true
	}
	return d == other
}

// FromToken maps a lexer.Token to its Delim classification and direction,
// if it has one.
func FromToken(t lexer.Token) (Delim, Dir, bool) {
	switch t.Kind {
	case lexer.Sym:
		switch t.Sym {
		case lexer.Asterisk:
			return Delim{Kind: Strong, Dir: Bi}, Both, true
		case lexer.Underscore:
			return Delim{Kind: Emphasis, Dir: Bi}, Both, true
		case lexer.Caret:
			return Delim{Kind: Superscript, Dir: Bi}, Both, true
		case lexer.Tilde:
			return Delim{Kind: Subscript, Dir: Bi}, Both, true
		case lexer.Quote1:
			return Delim{Kind: SingleQuoted}, Both, true
		case lexer.Quote2:
			return Delim{Kind: DoubleQuoted}, Both, true
		case lexer.ExclaimBracket:
			return Delim{Kind: Span, Span: Image}, Open, true
		}
	case lexer.Open:
		switch t.Delim {
		case lexer.Bracket:
			return Delim{Kind: Span, Span: General}, Open, true
		case lexer.BraceAsterisk:
			return Delim{Kind: Strong, Dir: Uni}, Open, true
		case lexer.BraceUnderscore:
			return Delim{Kind: Emphasis, Dir: Uni}, Open, true
		case lexer.BraceCaret:
			return Delim{Kind: Superscript, Dir: Uni}, Open, true
		case lexer.BraceTilde:
			return Delim{Kind: Subscript, Dir: Uni}, Open, true
		case lexer.BraceEqual:
			return Delim{Kind: Mark}, Open, true
		case lexer.BraceHyphen:
			return Delim{Kind: Delete}, Open, true
		case lexer.BracePlus:
			return Delim{Kind: Insert}, Open, true
		}
	case lexer.Close:
		switch t.Delim {
		case lexer.Bracket:
			return Delim{Kind: Span, Span: General}, Close, true
		case lexer.BraceAsterisk:
			return Delim{Kind: Strong, Dir: Uni}, Close, true
		case lexer.BraceUnderscore:
			return Delim{Kind: Emphasis, Dir: Uni}, Close, true
		case lexer.BraceCaret:
			return Delim{Kind: Superscript, Dir: Uni}, Close, true
		case lexer.BraceTilde:
			return Delim{Kind: Subscript, Dir: Uni}, Close, true
		case lexer.BraceEqual:
			return Delim{Kind: Mark}, Close, true
		case lexer.BraceHyphen:
			return Delim{Kind: Delete}, Close, true
		case lexer.BracePlus:
			return Delim{Kind: Insert}, Close, true
		}
	}
	return Delim{}, 0, false
}
