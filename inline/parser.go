package inline

import (
	"fmt"
	"unicode"

	"github.com/godjot/djot/attr"
	"github.com/godjot/djot/delim"
	"github.com/godjot/djot/lexer"
	"github.com/godjot/djot/span"
)

// opener is a candidate container opener sitting on the stack: d is its
// delimiter classification, eventIndex points at the reserved Placeholder
// slot in the event buffer (eventIndex+1 holds the tentative Str that gets
// rewritten to Enter(container) on a successful close).
type opener struct {
	d          delim.Delim
	eventIndex int
}

// Parser scans the inline content of a single leaf block and yields a
// flat, nested Event stream. It is created bound to the block's text and
// discarded once exhausted; nothing about it is safe for concurrent use.
type Parser struct {
	filename string
	lexer    *lexer.Lexer

	span    span.Span
	openers []opener
	events  []Event
}

// New creates a Parser over src. filename is attached to the underlying
// lexer purely for diagnostics and may be empty.
func New(filename, src string) *Parser {
	return &Parser{
		filename: filename,
		lexer:    lexer.New(filename, src),
	}
}

func (p *Parser) eat() (lexer.Token, bool) {
	tok, ok := p.lexer.Next()
	if ok {
		p.span = p.span.Extend(tok.Len)
	}
	return tok, ok
}

func (p *Parser) resetSpan() {
	p.span = span.EmptyAt(p.span.End())
}

// Next returns the next Event, or false once the block is exhausted. It
// implements the release/coalesce discipline: events stay buffered while
// the opener stack is non-empty or the tail could still extend into a
// merged Str, then adjacent Str/Whitespace/Placeholder runs are merged
// into one Str on the way out.
func (p *Parser) Next() (Event, bool) {
	for len(p.events) == 0 || len(p.openers) != 0 || lastIsStrLike(p.events) {
		ev, ok := p.parseEvent()
		if !ok {
			break
		}
		p.events = append(p.events, ev)
	}

	if len(p.events) == 0 {
		return Event{}, false
	}

	e := p.events[0]
	p.events = p.events[1:]

	switch e.Kind {
	case Str, Whitespace:
		sp := e.Span
		for len(p.events) > 0 {
			front := p.events[0]
			if front.Kind != Str && front.Kind != Whitespace && front.Kind != Placeholder {
				break
			}
			p.events = p.events[1:]
			if sp.End() != front.Span.Start() {
				panic(fmt.Sprintf("inline: non-contiguous coalesce span at %s", p.lexer.Position()))
			}
			sp = sp.Union(front.Span)
		}
		return Event{Kind: Str, Span: sp}, true
	case Placeholder:
		return p.Next()
	default:
		return e, true
	}
}

func lastIsStrLike(events []Event) bool {
	if len(events) == 0 {
		return false
	}
	k := events[len(events)-1].Kind
	return k == Str || k == Whitespace
}

func (p *Parser) parseEvent() (Event, bool) {
	p.resetSpan()
	first, ok := p.eat()
	if !ok {
		return Event{}, false
	}
	if ev, ok := p.parseVerbatim(first); ok {
		return ev, true
	}
	if ev, ok := p.parseAttributes(first); ok {
		return ev, true
	}
	if ev, ok := p.parseAutolink(first); ok {
		return ev, true
	}
	if ev, ok := p.parseContainer(first); ok {
		return ev, true
	}
	if ev, ok := p.parseAtom(first); ok {
		return ev, true
	}
	kind := Str
	if first.Kind == lexer.Whitespace {
		kind = Whitespace
	}
	return Event{Kind: kind, Span: p.span}, true
}

func isWhitespaceRune(r rune) bool {
	return unicode.IsSpace(r)
}

// parseVerbatim handles backtick-delimited verbatim/math spans (§4.4.1),
// including whitespace trimming and raw-format promotion.
func (p *Parser) parseVerbatim(first lexer.Token) (Event, bool) {
	var kind Container
	var openerLen int
	matched := false

	switch {
	case first.Kind == lexer.Seq && first.Seq == lexer.Dollar && first.Len <= 2:
		if peek, ok := p.lexer.Peek(); ok && peek.Kind == lexer.Seq && peek.Seq == lexer.Backtick {
			if first.Len == 2 {
				kind = ContainerDisplayMath
			} else {
				kind = ContainerInlineMath
			}
			openerLen = peek.Len
			matched = true
			p.eat() // consume the backtick run
		}
	case first.Kind == lexer.Seq && first.Seq == lexer.Backtick:
		kind = ContainerVerbatim
		openerLen = first.Len
		matched = true
	}
	if !matched {
		return Event{}, false
	}

	openerEvent := len(p.events)
	p.events = append(p.events, Event{Kind: Enter, Container: kind, Span: p.span})

	spanInner := span.EmptyAt(p.span.End())
	var spanOuter *span.Span

	type tracked struct {
		backtick bool
		pos      int
	}
	var nonWSFirst, nonWSLast *tracked

	for {
		tok, ok := p.eat()
		if !ok {
			break
		}
		if tok.Kind == lexer.Seq && tok.Seq == lexer.Backtick && tok.Len == openerLen {
			if kind == ContainerVerbatim {
				if peek, ok := p.lexer.Peek(); ok && peek.Kind == lexer.Open && peek.Delim == lexer.BraceEqual {
					ahead := p.lexer.Inner()
					startPos := ahead.Pos()
					goodPos := startPos
					end := false
					for {
						r, ok := ahead.Next()
						if !ok {
							break
						}
						if r == '{' {
							break
						}
						if r == '}' {
							end = true
						}
						if !end && !isWhitespaceRune(r) {
							goodPos = ahead.Pos()
							continue
						}
						break
					}
					length := goodPos - startPos
					if length > 0 && end {
						p.lexer = lexer.FromIter(p.filename, ahead)
						spanFormat := span.ByLen(p.span.End()+len("{="), length)
						kind = ContainerRawFormat
						p.events[openerEvent].Container = kind
						p.events[openerEvent].Span = spanFormat
						p.span = spanFormat.Translate(1)
						spanOuter = &spanFormat
					}
				}
			}
			break
		}
		if tok.Kind != lexer.Whitespace {
			isBacktick := tok.Kind == lexer.Seq && tok.Seq == lexer.Backtick
			if nonWSFirst == nil {
				nonWSFirst = &tracked{backtick: isBacktick, pos: spanInner.End()}
			}
			nonWSLast = &tracked{backtick: isBacktick, pos: spanInner.End() + tok.Len}
		}
		spanInner = spanInner.Extend(tok.Len)
		p.resetSpan()
	}

	if nonWSFirst != nil && nonWSFirst.backtick {
		spanInner = spanInner.WithStart(nonWSFirst.pos)
	}
	if nonWSLast != nil && nonWSLast.backtick {
		spanInner = spanInner.WithEnd(nonWSLast.pos)
	}

	p.events = append(p.events, Event{Kind: Str, Span: spanInner})

	exitSpan := p.span
	if spanOuter != nil {
		exitSpan = *spanOuter
	}
	return Event{Kind: Exit, Container: kind, Span: exitSpan}, true
}

// parseAttributes handles a `{...}` attribute block immediately following
// a Str event (§4.4.2), merging adjacent blocks into one Attributes event.
func (p *Parser) parseAttributes(first lexer.Token) (Event, bool) {
	if !(first.Kind == lexer.Open && first.Delim == lexer.Brace) {
		return Event{}, false
	}
	if len(p.events) == 0 || p.events[len(p.events)-1].Kind != Str {
		return Event{}, false
	}

	ahead := p.lexer.Inner()
	src := ahead.Source()
	pos0 := ahead.Pos()

	firstLen, hasAttr := attr.Valid("{" + src[pos0:])
	attrLen := firstLen - 1
	if attrLen <= 0 {
		return Event{}, false
	}

	pos := pos0
	for attrLen > 0 {
		p.span = p.span.Extend(attrLen)
		pos += attrLen
		p.lexer = lexer.FromIter(p.filename, lexer.CharIterAt(src, pos))
		l, nonEmpty := attr.Valid(src[pos:])
		hasAttr = hasAttr || nonEmpty
		attrLen = l
	}

	if hasAttr {
		i := lastNonStrIndex(p.events)
		spanStr := span.New(p.events[i].Span.Start(), p.events[len(p.events)-1].Span.End())
		p.events = p.events[:i]
		p.events = append(p.events, Event{Kind: Attributes, Span: p.span})
		p.events = append(p.events, Event{Kind: Enter, Container: ContainerSpan, Span: span.EmptyAt(spanStr.Start())})
		p.events = append(p.events, Event{Kind: Str, Span: spanStr})
		return Event{Kind: Exit, Container: ContainerSpan, Span: span.EmptyAt(spanStr.End())}, true
	}
	return Event{Kind: Placeholder, Span: span.EmptyAt(p.span.Start())}, true
}

// lastNonStrIndex finds the index just after the nearest non-Str event
// from the back of events, or 0 if every event is Str.
func lastNonStrIndex(events []Event) int {
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Kind != Str {
			return i + 1
		}
	}
	return 0
}

// parseAutolink handles `<...>` autolinks (§4.4.3).
func (p *Parser) parseAutolink(first lexer.Token) (Event, bool) {
	if !(first.Kind == lexer.Sym && first.Sym == lexer.Lt) {
		return Event{}, false
	}

	ahead := p.lexer.Inner()
	startPos := ahead.Pos()
	goodPos := startPos
	end := false
	isURL := false
	for {
		r, ok := ahead.Next()
		if !ok {
			break
		}
		if r == '>' {
			end = true
		}
		if r == ':' || r == '@' {
			isURL = true
		}
		if !end && !isWhitespaceRune(r) {
			goodPos = ahead.Pos()
			continue
		}
		break
	}
	if !(end && isURL) {
		return Event{}, false
	}

	length := goodPos - startPos
	p.lexer = lexer.FromIter(p.filename, ahead)
	p.events = append(p.events, Event{Kind: Enter, Container: ContainerAutolink, Span: p.span})
	p.span = span.ByLen(p.span.End(), length)
	p.events = append(p.events, Event{Kind: Str, Span: p.span})
	p.span = span.ByLen(p.span.End(), 1)
	return Event{Kind: Exit, Container: ContainerAutolink, Span: p.span}, true
}

// parseContainer handles delimiter tokens: matching against the opener
// stack, closing containers, and pushing new candidate openers (§4.4.4).
func (p *Parser) parseContainer(first lexer.Token) (Event, bool) {
	d, dir, ok := delim.FromToken(first)
	if !ok {
		return Event{}, false
	}

	oIdx := -1
	for i := len(p.openers) - 1; i >= 0; i-- {
		od := p.openers[i].d
		if od.Matches(d) {
			oIdx = i
			break
		}
	}

	var event Event
	haveEvent := false

	if oIdx >= 0 && (dir == delim.Close || dir == delim.Both) {
		o := p.openers[oIdx]
		eAttr := o.eventIndex
		eOpener := eAttr + 1

		if cont, isC := containerFromDelim(o.d); isC {
			p.events[eOpener].Kind = Enter
			p.events[eOpener].Container = cont
			event = Event{Kind: Exit, Container: cont, Span: p.span}
			haveEvent = true
		} else {
			event, haveEvent = p.postSpan(o.d.Span, eOpener)
		}

		p.openers = p.openers[:oIdx]

		ahead := p.lexer.Inner()
		src := ahead.Source()
		pos := ahead.Pos()
		attrLen, hasAttr := attr.Valid(src[pos:])
		if attrLen > 0 {
			spanCloser := p.span
			p.span = span.EmptyAt(p.span.End())
			for attrLen > 0 {
				p.span = p.span.Extend(attrLen)
				pos += attrLen
				p.lexer = lexer.FromIter(p.filename, lexer.CharIterAt(src, pos))
				l, nonEmpty := attr.Valid(src[pos:])
				hasAttr = hasAttr || nonEmpty
				attrLen = l
			}
			if hasAttr {
				p.events[eAttr] = Event{Kind: Attributes, Span: p.span}
			}
			if !haveEvent {
				if hasAttr {
					p.events[eOpener].Kind = Enter
					p.events[eOpener].Container = ContainerSpan
					event = Event{Kind: Exit, Container: ContainerSpan, Span: spanCloser}
				} else {
					event = Event{Kind: Str, Span: spanCloser}
				}
				haveEvent = true
			}
		}
	}

	if haveEvent {
		return event, true
	}

	p.openers = append(p.openers, opener{d: d, eventIndex: len(p.events)})
	p.events = append(p.events, Event{Kind: Placeholder, Span: span.EmptyAt(p.span.Start())})
	return Event{Kind: Str, Span: p.span}, true
}

// postSpan resolves a closed Span(ty) delimiter into a reference or
// inline link/image, per §4.4.5.
func (p *Parser) postSpan(ty delim.SpanType, openerEvent int) (Event, bool) {
	ahead := p.lexer.Inner()
	openerChar, ok := ahead.Next()
	if !ok || (openerChar != '[' && openerChar != '(') {
		return Event{}, false
	}

	img := ty == delim.Image
	var closer rune
	var kind Container
	if openerChar == '[' {
		closer = ']'
		if img {
			kind = ContainerReferenceImage
		} else {
			kind = ContainerReferenceLink
		}
	} else {
		closer = ')'
		if img {
			kind = ContainerInlineImage
		} else {
			kind = ContainerInlineLink
		}
	}

	startPos := ahead.Pos()
	goodPos := startPos
	end := false
	for {
		r, ok := ahead.Next()
		if !ok {
			break
		}
		if r == openerChar {
			break
		}
		if r == closer {
			end = true
		}
		if !end {
			goodPos = ahead.Pos()
			continue
		}
		break
	}
	if !end {
		return Event{}, false
	}

	length := goodPos - startPos
	sp := span.ByLen(p.span.End()+1, length)
	p.lexer = lexer.FromIter(p.filename, ahead)
	p.events[openerEvent].Kind = Enter
	p.events[openerEvent].Container = kind
	p.events[openerEvent].Span = sp
	p.span = sp.Translate(1)
	return Event{Kind: Exit, Container: kind, Span: sp}, true
}

// containerFromDelim maps a resolved Delim to its Container, failing only
// for Span (which needs post-resolution to know which container it is).
func containerFromDelim(d delim.Delim) (Container, bool) {
	switch d.Kind {
	case delim.Span:
		return 0, false
	case delim.Strong:
		return ContainerStrong, true
	case delim.Emphasis:
		return ContainerEmphasis, true
	case delim.Superscript:
		return ContainerSuperscript, true
	case delim.Subscript:
		return ContainerSubscript, true
	case delim.SingleQuoted:
		return ContainerSingleQuoted, true
	case delim.DoubleQuoted:
		return ContainerDoubleQuoted, true
	case delim.Mark:
		return ContainerMark, true
	case delim.Delete:
		return ContainerDelete, true
	case delim.Insert:
		return ContainerInsert, true
	default:
		return 0, false
	}
}

// parseAtom handles the fixed set of single-token atomic elements (§4.4.6).
func (p *Parser) parseAtom(first lexer.Token) (Event, bool) {
	var atom Atom
	switch {
	case first.Kind == lexer.Newline:
		atom = AtomSoftbreak
	case first.Kind == lexer.Hardbreak:
		atom = AtomHardbreak
	case first.Kind == lexer.Escape:
		atom = AtomEscape
	case first.Kind == lexer.Nbsp:
		atom = AtomNbsp
	case first.Kind == lexer.Seq && first.Seq == lexer.Period && first.Len == 3:
		atom = AtomEllipsis
	case first.Kind == lexer.Seq && first.Seq == lexer.Hyphen && first.Len == 2:
		atom = AtomEnDash
	case first.Kind == lexer.Seq && first.Seq == lexer.Hyphen && first.Len == 3:
		atom = AtomEmDash
	default:
		return Event{}, false
	}
	return Event{Kind: AtomKind, Atom: atom, Span: p.span}, true
}
