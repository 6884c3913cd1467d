package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/godjot/djot/lexer"
)

func collect(t *testing.T, src string) []lexer.Token {
	t.Helper()
	l := lexer.New("", src)
	var toks []lexer.Token
	for {
		tok, ok := l.Next()
		if !ok {
			break
		}
		toks = append(toks, tok)
	}
	return toks
}

func TestPlainTextRun(t *testing.T) {
	toks := collect(t, "hello")
	require.Len(t, toks, 1)
	assert.Equal(t, lexer.Text, toks[0].Kind)
	assert.Equal(t, 5, toks[0].Len)
}

func TestTextStopsAtSpecial(t *testing.T) {
	toks := collect(t, "ab*cd")
	require.Len(t, toks, 3)
	assert.Equal(t, lexer.Text, toks[0].Kind)
	assert.Equal(t, 2, toks[0].Len)
	assert.Equal(t, lexer.Sym, toks[1].Kind)
	assert.Equal(t, lexer.Asterisk, toks[1].Sym)
	assert.Equal(t, lexer.Text, toks[2].Kind)
}

func TestBacktickRun(t *testing.T) {
	toks := collect(t, "```")
	require.Len(t, toks, 1)
	assert.Equal(t, lexer.Seq, toks[0].Kind)
	assert.Equal(t, lexer.Backtick, toks[0].Seq)
	assert.Equal(t, 3, toks[0].Len)
}

func TestEscapePunct(t *testing.T) {
	toks := collect(t, `\*`)
	require.Len(t, toks, 1)
	assert.Equal(t, lexer.Escape, toks[0].Kind)
	assert.Equal(t, 2, toks[0].Len)
}

func TestEscapeNewline(t *testing.T) {
	toks := collect(t, "\\\n")
	require.Len(t, toks, 1)
	assert.Equal(t, lexer.Escape, toks[0].Kind)
	assert.Equal(t, 2, toks[0].Len)
}

func TestBackslashLiteralWhenNotEscapeOrHardbreak(t *testing.T) {
	toks := collect(t, `\a`)
	require.Len(t, toks, 2)
	assert.Equal(t, lexer.Text, toks[0].Kind)
	assert.Equal(t, 1, toks[0].Len)
	assert.Equal(t, lexer.Text, toks[1].Kind)
}

func TestHardbreak(t *testing.T) {
	toks := collect(t, "\\  \nnext")
	require.Len(t, toks, 2)
	assert.Equal(t, lexer.Hardbreak, toks[0].Kind)
	assert.Equal(t, len("\\  \n"), toks[0].Len)
	assert.Equal(t, lexer.Text, toks[1].Kind)
}

func TestBackslashSpaceNoNewlineIsLiteral(t *testing.T) {
	toks := collect(t, "\\  x")
	require.Len(t, toks, 3)
	assert.Equal(t, lexer.Text, toks[0].Kind)
	assert.Equal(t, 1, toks[0].Len)
	assert.Equal(t, lexer.Whitespace, toks[1].Kind)
}

func TestNbsp(t *testing.T) {
	toks := collect(t, " ")
	require.Len(t, toks, 1)
	assert.Equal(t, lexer.Nbsp, toks[0].Kind)
}

func TestNewline(t *testing.T) {
	toks := collect(t, "\n")
	require.Len(t, toks, 1)
	assert.Equal(t, lexer.Newline, toks[0].Kind)
}

func TestWhitespaceRun(t *testing.T) {
	toks := collect(t, "  \t ")
	require.Len(t, toks, 1)
	assert.Equal(t, lexer.Whitespace, toks[0].Kind)
	assert.Equal(t, 4, toks[0].Len)
}

func TestHyphenRunVsCloser(t *testing.T) {
	toks := collect(t, "---")
	require.Len(t, toks, 1)
	assert.Equal(t, lexer.Seq, toks[0].Kind)
	assert.Equal(t, lexer.Hyphen, toks[0].Seq)
	assert.Equal(t, 3, toks[0].Len)

	toks = collect(t, "-}")
	require.Len(t, toks, 1)
	assert.Equal(t, lexer.Close, toks[0].Kind)
	assert.Equal(t, lexer.BraceHyphen, toks[0].Delim)

	toks = collect(t, "--}")
	require.Len(t, toks, 2)
	assert.Equal(t, lexer.Seq, toks[0].Kind)
	assert.Equal(t, 2, toks[0].Len)
	assert.Equal(t, lexer.Text, toks[1].Kind)
}

func TestBraceOpenForms(t *testing.T) {
	cases := map[string]lexer.Delimiter{
		"{*": lexer.BraceAsterisk,
		"{_": lexer.BraceUnderscore,
		"{^": lexer.BraceCaret,
		"{~": lexer.BraceTilde,
		"{=": lexer.BraceEqual,
		"{-": lexer.BraceHyphen,
		"{+": lexer.BracePlus,
	}
	for src, delim := range cases {
		toks := collect(t, src)
		require.Len(t, toks, 1, src)
		assert.Equal(t, lexer.Open, toks[0].Kind, src)
		assert.Equal(t, delim, toks[0].Delim, src)
	}
}

func TestBareBraceOpen(t *testing.T) {
	toks := collect(t, "{a")
	require.Len(t, toks, 2)
	assert.Equal(t, lexer.Open, toks[0].Kind)
	assert.Equal(t, lexer.Brace, toks[0].Delim)
	assert.Equal(t, 1, toks[0].Len)
}

func TestSymOrCloseForms(t *testing.T) {
	toks := collect(t, "*}")
	require.Len(t, toks, 1)
	assert.Equal(t, lexer.Close, toks[0].Kind)
	assert.Equal(t, lexer.BraceAsterisk, toks[0].Delim)

	toks = collect(t, "*a")
	require.Len(t, toks, 2)
	assert.Equal(t, lexer.Sym, toks[0].Kind)
	assert.Equal(t, lexer.Asterisk, toks[0].Sym)
}

func TestEqualAndPlusOnlyMeaningfulAsBraceCloser(t *testing.T) {
	toks := collect(t, "=}")
	require.Len(t, toks, 1)
	assert.Equal(t, lexer.Close, toks[0].Kind)
	assert.Equal(t, lexer.BraceEqual, toks[0].Delim)

	toks = collect(t, "=")
	require.Len(t, toks, 1)
	assert.Equal(t, lexer.Text, toks[0].Kind)

	toks = collect(t, "+}")
	require.Len(t, toks, 1)
	assert.Equal(t, lexer.Close, toks[0].Kind)
	assert.Equal(t, lexer.BracePlus, toks[0].Delim)

	toks = collect(t, "+")
	require.Len(t, toks, 1)
	assert.Equal(t, lexer.Text, toks[0].Kind)
}

func TestQuotesAndLt(t *testing.T) {
	toks := collect(t, `'"<`)
	require.Len(t, toks, 3)
	assert.Equal(t, lexer.Quote1, toks[0].Sym)
	assert.Equal(t, lexer.Quote2, toks[1].Sym)
	assert.Equal(t, lexer.Lt, toks[2].Sym)
}

func TestExclaimBracketVsBareExclaim(t *testing.T) {
	toks := collect(t, "![")
	require.Len(t, toks, 1)
	assert.Equal(t, lexer.Sym, toks[0].Kind)
	assert.Equal(t, lexer.ExclaimBracket, toks[0].Sym)

	toks = collect(t, "!a")
	require.Len(t, toks, 2)
	assert.Equal(t, lexer.Text, toks[0].Kind)
	assert.Equal(t, 1, toks[0].Len)
}

func TestBrackets(t *testing.T) {
	toks := collect(t, "[]")
	require.Len(t, toks, 2)
	assert.Equal(t, lexer.Open, toks[0].Kind)
	assert.Equal(t, lexer.Bracket, toks[0].Delim)
	assert.Equal(t, lexer.Close, toks[1].Kind)
	assert.Equal(t, lexer.Bracket, toks[1].Delim)
}

func TestPeekDoesNotConsume(t *testing.T) {
	l := lexer.New("", "ab")
	p1, ok := l.Peek()
	require.True(t, ok)
	p2, ok := l.Peek()
	require.True(t, ok)
	assert.Equal(t, p1, p2)
	n, ok := l.Next()
	require.True(t, ok)
	assert.Equal(t, p1, n)
}

func TestInnerReflectsConsumedBytes(t *testing.T) {
	l := lexer.New("", "abc def")
	_, ok := l.Next()
	require.True(t, ok)
	inner := l.Inner()
	assert.Equal(t, 3, inner.Pos())
}

func TestInnerAfterPeekIsPastPeekedToken(t *testing.T) {
	l := lexer.New("", "{=abc")
	_, ok := l.Peek()
	require.True(t, ok)
	inner := l.Inner()
	assert.Equal(t, 2, inner.Pos())
}

func TestFromIterReseeds(t *testing.T) {
	iter := lexer.NewCharIter("xy*z")
	iter.Next()
	iter.Next()
	l := lexer.FromIter("", iter)
	tok, ok := l.Next()
	require.True(t, ok)
	assert.Equal(t, lexer.Sym, tok.Kind)
	assert.Equal(t, lexer.Asterisk, tok.Sym)
}

func TestCharIterCloneIndependence(t *testing.T) {
	iter := lexer.NewCharIter("hello")
	clone := iter.Clone()
	iter.Next()
	assert.Equal(t, 0, clone.Pos())
	assert.Equal(t, 1, iter.Pos())
}

func TestTokenStringForms(t *testing.T) {
	assert.Equal(t, "Seq(Backtick, 3)", lexer.Token{Kind: lexer.Seq, Seq: lexer.Backtick, Len: 3}.String())
	assert.Equal(t, "Sym(Asterisk)", lexer.Token{Kind: lexer.Sym, Sym: lexer.Asterisk}.String())
	assert.Equal(t, "Open(Bracket)", lexer.Token{Kind: lexer.Open, Delim: lexer.Bracket}.String())
}
