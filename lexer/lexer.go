// Package lexer turns a UTF-8 source string into the stream of Tokens the
// inline parser consumes. It is a hand-rolled rune scanner in the style of
// the teacher's own parser/lexer package: next/peek rune primitives
// driving a single big recognition switch, rather than a generated or
// regex-table lexer.
package lexer

import (
	"unicode/utf8"

	plexer "github.com/alecthomas/participle/v2/lexer"
)

const nbsp = ' '

// CharIter is a cheap, clonable cursor over a source string. Cloning it is
// just copying a string header and an int, which is what makes the
// parser's speculative lookahead (autolink, raw-format tags, link/image
// targets, attribute blocks) inexpensive.
type CharIter struct {
	s   string
	pos int
}

// NewCharIter returns an iterator over s starting at byte 0.
func NewCharIter(s string) CharIter {
	return CharIter{s: s}
}

// Next consumes and returns the next rune, or (0, false) at end of input.
func (c *CharIter) Next() (rune, bool) {
	if c.pos >= len(c.s) {
		return 0, false
	}
	r, w := utf8.DecodeRuneInString(c.s[c.pos:])
	c.pos += w
	return r, true
}

// Clone returns an independent copy positioned at the same offset.
func (c CharIter) Clone() CharIter {
	return c
}

// Pos returns the iterator's current byte offset into its source.
func (c CharIter) Pos() int {
	return c.pos
}

// Source returns the full source string the iterator was built over.
func (c CharIter) Source() string {
	return c.s
}

// Remainder returns the not-yet-consumed tail of the source.
func (c CharIter) Remainder() string {
	return c.s[c.pos:]
}

// CharIterAt builds an iterator over s positioned at byte offset pos.
func CharIterAt(s string, pos int) CharIter {
	return CharIter{s: s, pos: pos}
}

// Lexer drives a CharIter and recognizes Tokens from it. It supports one
// token of lookahead (Peek) and exposes Inner so callers can clone the
// remaining input for speculative scanning, or rebuild a Lexer from an
// arbitrary CharIter to seek.
type Lexer struct {
	filename string
	src      string
	pos      int // byte offset of raw scan progress (past any peeked token)
	line     int
	col      int

	peeked *Token
}

// New creates a Lexer over src. filename is used only for Position
// reporting and may be empty.
func New(filename, src string) *Lexer {
	return &Lexer{filename: filename, src: src, line: 1, col: 1}
}

// FromIter rebuilds a Lexer positioned at iter's offset into the same
// source, discarding any pending peek. This is how the parser "seeks" the
// lexer after a successful speculative scan.
func FromIter(filename string, iter CharIter) *Lexer {
	l := &Lexer{filename: filename, src: iter.s, pos: iter.pos, line: 1, col: 1}
	for _, r := range iter.s[:iter.pos] {
		if r == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}
	}
	return l
}

// Inner returns a clone of the underlying character iterator, positioned
// at the byte immediately after the last token produced (including one
// that is only sitting in the peek buffer, since producing it already
// consumed the underlying characters).
func (l *Lexer) Inner() CharIter {
	return CharIter{s: l.src, pos: l.pos}
}

// Position reports the current raw-scan position. Callers use this to
// enrich an invariant-violation panic with a line/column location, the
// same participle Position type the teacher's own parser attaches to its
// tokens and AST nodes.
func (l *Lexer) Position() plexer.Position {
	return plexer.Position{Filename: l.filename, Offset: l.pos, Line: l.line, Column: l.col}
}

func (l *Lexer) nextRune() (rune, int) {
	if l.pos >= len(l.src) {
		return 0, 0
	}
	r, w := utf8.DecodeRuneInString(l.src[l.pos:])
	l.pos += w
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r, w
}

func (l *Lexer) peekRuneAt(offset int) (rune, int) {
	if l.pos+offset >= len(l.src) {
		return 0, 0
	}
	r, w := utf8.DecodeRuneInString(l.src[l.pos+offset:])
	return r, w
}

func isASCIIPunct(r rune) bool {
	return (r >= '!' && r <= '/') || (r >= ':' && r <= '@') || (r >= '[' && r <= '`') || (r >= '{' && r <= '~')
}

// isSpecialStart reports whether r can begin a non-Text token, i.e. must
// terminate a run of plain text being batched into one Text token.
func isSpecialStart(r rune) bool {
	switch r {
	case '\\', nbsp, '\n', ' ', '\t', '`', '$', '.', '-', '{', '[', ']', '!', '*', '_', '^', '~', '\'', '"', '<', '=', '+':
		return true
	default:
		return false
	}
}

// Peek returns the next token without consuming it from subsequent Next
// calls.
func (l *Lexer) Peek() (Token, bool) {
	if l.peeked != nil {
		return *l.peeked, true
	}
	tok, ok := l.scan()
	if !ok {
		return Token{}, false
	}
	l.peeked = &tok
	return tok, true
}

// Next returns and consumes the next token.
func (l *Lexer) Next() (Token, bool) {
	if l.peeked != nil {
		tok := *l.peeked
		l.peeked = nil
		return tok, true
	}
	return l.scan()
}

// scan performs the actual recognition, advancing l.pos past whatever it
// reads. Peek and Next both funnel through this so that raw scan progress
// (and therefore Inner's view of the tail) always reflects characters
// that have actually been tokenized, peeked or not.
func (l *Lexer) scan() (Token, bool) {
	if l.pos >= len(l.src) {
		return Token{}, false
	}
	r, w := l.peekRuneAt(0)

	switch {
	case r == '\\':
		return l.scanBackslash(), true
	case r == nbsp:
		l.nextRune()
		return Token{Kind: Nbsp, Len: w}, true
	case r == '\n':
		l.nextRune()
		return Token{Kind: Newline, Len: 1}, true
	case r == ' ' || r == '\t':
		return l.scanWhitespace(), true
	case r == '`':
		return l.scanSeq(Backtick), true
	case r == '$':
		return l.scanSeq(Dollar), true
	case r == '.':
		return l.scanSeq(Period), true
	case r == '-':
		return l.scanHyphen(), true
	case r == '{':
		return l.scanBraceOpen(), true
	case r == '*':
		return l.scanBraceSymOrClose(Asterisk, BraceAsterisk), true
	case r == '_':
		return l.scanBraceSymOrClose(Underscore, BraceUnderscore), true
	case r == '^':
		return l.scanBraceSymOrClose(Caret, BraceCaret), true
	case r == '~':
		return l.scanBraceSymOrClose(Tilde, BraceTilde), true
	case r == '=':
		if r2, w2 := l.peekRuneAt(w); r2 == '}' {
			l.nextRune()
			l.nextRune()
			return Token{Kind: Close, Delim: BraceEqual, Len: w + w2}, true
		}
		return l.scanText(), true
	case r == '+':
		if r2, w2 := l.peekRuneAt(w); r2 == '}' {
			l.nextRune()
			l.nextRune()
			return Token{Kind: Close, Delim: BracePlus, Len: w + w2}, true
		}
		return l.scanText(), true
	case r == '\'':
		l.nextRune()
		return Token{Kind: Sym, Sym: Quote1, Len: w}, true
	case r == '"':
		l.nextRune()
		return Token{Kind: Sym, Sym: Quote2, Len: w}, true
	case r == '<':
		l.nextRune()
		return Token{Kind: Sym, Sym: Lt, Len: w}, true
	case r == '!':
		if r2, w2 := l.peekRuneAt(w); r2 == '[' {
			l.nextRune()
			l.nextRune()
			return Token{Kind: Sym, Sym: ExclaimBracket, Len: w + w2}, true
		}
		return l.scanText(), true
	case r == '[':
		l.nextRune()
		return Token{Kind: Open, Delim: Bracket, Len: w}, true
	case r == ']':
		l.nextRune()
		return Token{Kind: Close, Delim: Bracket, Len: w}, true
	default:
		return l.scanText(), true
	}
}

// scanBackslash handles Escape and Hardbreak, falling back to a literal
// one-byte backslash Text token.
func (l *Lexer) scanBackslash() Token {
	start := l.pos
	colStart := l.col
	_, bw := l.nextRune() // consume '\\'
	r2, w2 := l.peekRuneAt(0)

	if r2 == '\n' {
		l.nextRune()
		return Token{Kind: Escape, Len: bw + w2}
	}

	if r2 == ' ' || r2 == '\t' {
		savePos := l.pos
		for {
			r, _ := l.peekRuneAt(0)
			if r == ' ' || r == '\t' {
				l.nextRune()
				continue
			}
			break
		}
		if r, _ := l.peekRuneAt(0); r == '\n' {
			l.nextRune()
			return Token{Kind: Hardbreak, Len: l.pos - start}
		}
		// No newline follows the run of spaces: not a hardbreak after all.
		// Rewind; the lone backslash is literal text.
		l.pos = savePos
		l.col = colStart + 1
		return Token{Kind: Text, Len: bw}
	}

	if isASCIIPunct(r2) {
		l.nextRune()
		return Token{Kind: Escape, Len: bw + w2}
	}

	return Token{Kind: Text, Len: bw}
}

func (l *Lexer) scanWhitespace() Token {
	start := l.pos
	for {
		r, _ := l.peekRuneAt(0)
		if r == ' ' || r == '\t' {
			l.nextRune()
			continue
		}
		break
	}
	return Token{Kind: Whitespace, Len: l.pos - start}
}

func (l *Lexer) scanSeq(seq Sequence) Token {
	r0, _ := l.peekRuneAt(0)
	start := l.pos
	for {
		r, _ := l.peekRuneAt(0)
		if r != r0 {
			break
		}
		l.nextRune()
	}
	return Token{Kind: Seq, Seq: seq, Len: l.pos - start}
}

// scanHyphen special-cases a single hyphen immediately followed by '}'
// (the Delete closer) ahead of forming a longer Seq(Hyphen, n) run.
func (l *Lexer) scanHyphen() Token {
	n, runeLen := l.countRun('-')
	if n == 1 {
		if r, w2 := l.peekRuneAt(runeLen); r == '}' {
			l.nextRune()
			l.nextRune()
			return Token{Kind: Close, Delim: BraceHyphen, Len: runeLen + w2}
		}
	}
	start := l.pos
	for i := 0; i < n; i++ {
		l.nextRune()
	}
	return Token{Kind: Seq, Seq: Hyphen, Len: l.pos - start}
}

// countRun reports how many consecutive runes equal to r appear starting
// at the current position, without consuming them, and the byte length of
// that run.
func (l *Lexer) countRun(r0 rune) (count, byteLen int) {
	off := 0
	for {
		r, w := l.peekRuneAt(off)
		if r != r0 || w == 0 {
			break
		}
		off += w
		count++
	}
	return count, off
}

// scanBraceOpen handles '{' possibly followed by one of *_^~=-+ to form a
// brace-prefixed opener, else a bare Open(Brace).
func (l *Lexer) scanBraceOpen() Token {
	_, bw := l.nextRune() // consume '{'
	r2, w2 := l.peekRuneAt(0)
	var delim Delimiter
	switch r2 {
	case '*':
		delim = BraceAsterisk
	case '_':
		delim = BraceUnderscore
	case '^':
		delim = BraceCaret
	case '~':
		delim = BraceTilde
	case '=':
		delim = BraceEqual
	case '-':
		delim = BraceHyphen
	case '+':
		delim = BracePlus
	default:
		return Token{Kind: Open, Delim: Brace, Len: bw}
	}
	l.nextRune()
	return Token{Kind: Open, Delim: delim, Len: bw + w2}
}

// scanBraceSymOrClose handles a single significant char (*, _, ^, ~) that
// is either a bare Sym or, if immediately followed by '}', a brace closer.
func (l *Lexer) scanBraceSymOrClose(sym Symbol, delim Delimiter) Token {
	_, w := l.nextRune()
	if r2, w2 := l.peekRuneAt(0); r2 == '}' {
		l.nextRune()
		return Token{Kind: Close, Delim: delim, Len: w + w2}
	}
	return Token{Kind: Sym, Sym: sym, Len: w}
}

func (l *Lexer) scanText() Token {
	start := l.pos
	// A special rune that did not form its own token ('!' not before '[',
	// '=' or '+' not before '}') stands alone as one-rune text.
	if r, _ := l.nextRune(); isSpecialStart(r) {
		return Token{Kind: Text, Len: l.pos - start}
	}
	for {
		r, w := l.peekRuneAt(0)
		if w == 0 || isSpecialStart(r) {
			break
		}
		l.nextRune()
	}
	return Token{Kind: Text, Len: l.pos - start}
}
