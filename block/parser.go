package block

import (
	"strings"

	"github.com/godjot/djot/span"
)

// line is one line of source, as a span excluding its trailing newline.
// Stripping a container's marker (blockquote `>`, list bullet, footnote
// tag) never rewrites bytes: it only moves a line's start offset forward,
// so spans handed to nested parsing still index straight into src.
type line struct {
	span span.Span
}

func splitLines(src string) []line {
	var out []line
	start := 0
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			out = append(out, line{span: span.New(start, i)})
			start = i + 1
		}
	}
	if start < len(src) {
		out = append(out, line{span: span.New(start, len(src))})
	}
	return out
}

// builder accumulates the flat event stream as blocks() and its helpers
// recursively walk nested line ranges, in the style of the teacher's
// stateFn dispatch: each line is classified once, and the classification
// decides which scanning routine consumes it (and however many of its
// neighbors belong to the same block).
type builder struct {
	src    string
	events []Event
}

// Parse scans src into a flat block event tree. Leaf blocks are followed
// by an Inline atom whose span is the text package inline should run over.
func Parse(src string) *Tree {
	b := &builder{src: src}
	b.blocks(splitLines(src))
	return &Tree{events: b.events}
}

func (b *builder) enter(blk Block, sp span.Span) { b.events = append(b.events, Event{Kind: Enter, Block: blk, Span: sp}) }
func (b *builder) exit(blk Block, sp span.Span)  { b.events = append(b.events, Event{Kind: Exit, Block: blk, Span: sp}) }
func (b *builder) atom(a AtomKind, sp span.Span) { b.events = append(b.events, Event{Kind: Atom, Atom: a, Span: sp}) }

func isBlank(s string) bool { return s == "" }

func isThematicBreak(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) < 3 {
		return false
	}
	c := s[0]
	if c != '-' && c != '*' && c != '_' {
		return false
	}
	count := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' {
			continue
		}
		if s[i] != c {
			return false
		}
		count++
	}
	return count >= 3
}

// parseFence recognizes a code-fence opening or closing line: 3+ of the
// same fence char, optionally followed by an info string.
func parseFence(s string) (ch byte, n int, info string, ok bool) {
	if len(s) == 0 {
		return
	}
	c := s[0]
	if c != '`' && c != '~' {
		return
	}
	i := 0
	for i < len(s) && s[i] == c {
		i++
	}
	if i < 3 {
		return
	}
	return c, i, strings.TrimSpace(s[i:]), true
}

func allBytesEqual(s string, c byte) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != c {
			return false
		}
	}
	return true
}

func parseDivFence(s string) (n int, class string, ok bool) {
	i := 0
	for i < len(s) && s[i] == ':' {
		i++
	}
	if i < 3 {
		return
	}
	return i, strings.TrimSpace(s[i:]), true
}

func isATXHeading(s string) bool {
	n := 0
	for n < len(s) && s[n] == '#' {
		n++
	}
	if n == 0 || n > 6 {
		return false
	}
	if n == len(s) {
		return true
	}
	return s[n] == ' ' || s[n] == '\t'
}

func isBlockquoteStart(text string) bool {
	i := 0
	for i < len(text) && text[i] == ' ' && i < 3 {
		i++
	}
	return i < len(text) && text[i] == '>'
}

// footnoteTag recognizes a `[^tag]:` definition marker and reports the
// byte offset, relative to text, where the definition's content begins.
func footnoteTag(text string) (tag string, contentOffset int, ok bool) {
	i := 0
	for i < len(text) && text[i] == ' ' && i < 3 {
		i++
	}
	if i >= len(text) || text[i] != '[' {
		return
	}
	i++
	if i >= len(text) || text[i] != '^' {
		return
	}
	i++
	j := i
	for j < len(text) && text[j] != ']' {
		j++
	}
	if j >= len(text) || j == i {
		return
	}
	tag = text[i:j]
	k := j + 1
	if k >= len(text) || text[k] != ':' {
		return "", 0, false
	}
	k++
	for k < len(text) && text[k] == ' ' {
		k++
	}
	return tag, k, true
}

// listMarkerWidth recognizes a bullet or ordered-list marker at the start
// of text and reports its byte width including the trailing space.
func listMarkerWidth(text string) (width int, kind ListKind, ok bool) {
	i := 0
	for i < len(text) && text[i] == ' ' && i < 3 {
		i++
	}
	if i >= len(text) {
		return
	}
	c := text[i]
	if c == '-' || c == '*' || c == '+' {
		if i+1 < len(text) && (text[i+1] == ' ' || text[i+1] == '\t') {
			return i + 2, ListUnordered, true
		}
		return
	}
	j := i
	for j < len(text) && text[j] >= '0' && text[j] <= '9' {
		j++
	}
	if j > i && j < len(text) && (text[j] == '.' || text[j] == ')') {
		if j+1 < len(text) && (text[j+1] == ' ' || text[j+1] == '\t') {
			return j + 2, ListOrdered, true
		}
	}
	return
}

func isTableRow(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), "|")
}

func isTableSeparator(s string) bool {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "|") {
		return false
	}
	for i := 0; i < len(t); i++ {
		switch t[i] {
		case '|', '-', ':', ' ':
		default:
			return false
		}
	}
	return true
}

func isBlockStart(text, trimmed string) bool {
	if isBlank(strings.TrimSpace(trimmed)) {
		return true
	}
	if isThematicBreak(trimmed) {
		return true
	}
	if _, _, _, ok := parseFence(trimmed); ok {
		return true
	}
	if _, _, ok := parseDivFence(trimmed); ok {
		return true
	}
	if isATXHeading(trimmed) {
		return true
	}
	if isBlockquoteStart(text) {
		return true
	}
	if _, _, ok := footnoteTag(text); ok {
		return true
	}
	if _, _, ok := listMarkerWidth(text); ok {
		return true
	}
	if isTableRow(trimmed) {
		return true
	}
	return false
}

func trimSpan(src string, sp span.Span) span.Span {
	start, end := sp.Start(), sp.End()
	for start < end && (src[start] == ' ' || src[start] == '\t') {
		start++
	}
	for end > start && (src[end-1] == ' ' || src[end-1] == '\t') {
		end--
	}
	return span.New(start, end)
}

// blocks dispatches each line in lines to the scanning routine its
// classification selects, recursing into container routines for the
// lines that belong inside them.
func (b *builder) blocks(lines []line) {
	i := 0
	for i < len(lines) {
		text := lines[i].span.Of(b.src)
		trimmed := strings.TrimRight(text, " \t\r")
		ts := strings.TrimSpace(trimmed)

		switch {
		case isBlank(ts):
			b.atom(Blankline, lines[i].span)
			i++
		case isThematicBreak(trimmed):
			b.atom(ThematicBreak, lines[i].span)
			i++
		default:
			if _, _, _, ok := parseFence(trimmed); ok {
				i = b.codeBlock(lines, i)
			} else if _, _, ok := parseDivFence(trimmed); ok {
				i = b.div(lines, i)
			} else if isATXHeading(trimmed) {
				i = b.heading(lines, i)
			} else if isBlockquoteStart(text) {
				i = b.blockquote(lines, i)
			} else if tag, off, ok := footnoteTag(text); ok {
				i = b.footnote(lines, i, tag, off)
			} else if _, _, ok := listMarkerWidth(text); ok {
				i = b.list(lines, i)
			} else if isTableRow(trimmed) {
				i = b.table(lines, i)
			} else {
				i = b.paragraph(lines, i)
			}
		}
	}
}

func (b *builder) codeBlock(lines []line, i int) int {
	openSpan := lines[i].span
	ch, n, info, _ := parseFence(strings.TrimSpace(openSpan.Of(b.src)))

	start := i + 1
	end := start
	closed := false
	for end < len(lines) {
		t := strings.TrimSpace(lines[end].span.Of(b.src))
		if cch, cn, _, ok := parseFence(t); ok && cch == ch && cn >= n && allBytesEqual(t, ch) {
			closed = true
			break
		}
		end++
	}

	contentStart := openSpan.End()
	if contentStart < len(b.src) && b.src[contentStart] == '\n' {
		contentStart++
	}
	contentEnd := contentStart
	if end > start {
		contentEnd = lines[end-1].span.End()
	}

	blk := Block{Kind: CodeBlock, Lang: info}
	b.enter(blk, openSpan)
	b.atom(Inline, span.New(contentStart, contentEnd))
	if closed {
		b.exit(blk, lines[end].span)
		return end + 1
	}
	b.exit(blk, span.EmptyAt(len(b.src)))
	return end
}

func (b *builder) div(lines []line, i int) int {
	openSpan := lines[i].span
	n, class, _ := parseDivFence(strings.TrimSpace(openSpan.Of(b.src)))

	start := i + 1
	var inner []line
	j := start
	for j < len(lines) {
		t := strings.TrimSpace(lines[j].span.Of(b.src))
		if cn, _, ok := parseDivFence(t); ok && cn >= n && allBytesEqual(t, ':') {
			break
		}
		inner = append(inner, lines[j])
		j++
	}

	blk := Block{Kind: Div, DivClass: class}
	b.enter(blk, openSpan)
	b.blocks(inner)
	if j < len(lines) {
		b.exit(blk, lines[j].span)
		return j + 1
	}
	b.exit(blk, span.EmptyAt(len(b.src)))
	return j
}

func (b *builder) heading(lines []line, i int) int {
	ln := lines[i].span
	text := ln.Of(b.src)
	level := 0
	for level < len(text) && text[level] == '#' && level < 6 {
		level++
	}
	contentStart := ln.Start() + level
	for contentStart < ln.End() && (b.src[contentStart] == ' ' || b.src[contentStart] == '\t') {
		contentStart++
	}
	content := trimSpan(b.src, span.New(contentStart, ln.End()))

	blk := Block{Kind: Heading, HeadingLevel: level}
	b.enter(blk, ln)
	b.atom(Inline, content)
	b.exit(blk, ln)
	return i + 1
}

func (b *builder) blockquote(lines []line, i int) int {
	start := i
	var inner []line
	for i < len(lines) {
		text := lines[i].span.Of(b.src)
		if !isBlockquoteStart(text) {
			break
		}
		lead := 0
		for lead < len(text) && text[lead] == ' ' && lead < 3 {
			lead++
		}
		contentStart := lines[i].span.Start() + lead + 1 // past the '>'
		if contentStart < lines[i].span.End() && b.src[contentStart] == ' ' {
			contentStart++
		}
		inner = append(inner, line{span: span.New(contentStart, lines[i].span.End())})
		i++
	}

	blk := Block{Kind: Blockquote}
	b.enter(blk, lines[start].span)
	b.blocks(inner)
	endSpan := lines[start].span
	if i > start {
		endSpan = lines[i-1].span
	}
	b.exit(blk, endSpan)
	return i
}

func (b *builder) footnote(lines []line, i int, tag string, contentOffset int) int {
	start := i
	firstSpan := lines[i].span
	contentStart := firstSpan.Start() + contentOffset
	var inner []line
	inner = append(inner, line{span: span.New(contentStart, firstSpan.End())})
	i++
	for i < len(lines) {
		text := lines[i].span.Of(b.src)
		indent := 0
		for indent < len(text) && text[indent] == ' ' && indent < 4 {
			indent++
		}
		if indent < 1 {
			break
		}
		inner = append(inner, line{span: span.New(lines[i].span.Start()+indent, lines[i].span.End())})
		i++
	}

	blk := Block{Kind: Footnote, FootnoteTag: tag}
	b.enter(blk, firstSpan)
	b.blocks(inner)
	endSpan := firstSpan
	if i > start {
		endSpan = lines[i-1].span
	}
	b.exit(blk, endSpan)
	return i
}

func (b *builder) list(lines []line, i int) int {
	start := i
	_, kind, _ := listMarkerWidth(lines[i].span.Of(b.src))

	blk := Block{Kind: List, ListKind: kind}
	b.enter(blk, lines[i].span)

	for i < len(lines) {
		w, k, ok := listMarkerWidth(lines[i].span.Of(b.src))
		if !ok || k != kind {
			break
		}
		i = b.listItem(lines, i, w)

		if i < len(lines) && isBlank(strings.TrimSpace(lines[i].span.Of(b.src))) {
			if i+1 < len(lines) {
				if _, k2, ok2 := listMarkerWidth(lines[i+1].span.Of(b.src)); ok2 && k2 == kind {
					b.atom(Blankline, lines[i].span)
					i++
					continue
				}
			}
			break
		}
	}

	endSpan := lines[start].span
	if i > start {
		endSpan = lines[i-1].span
	}
	b.exit(blk, endSpan)
	return i
}

func (b *builder) listItem(lines []line, i int, width int) int {
	itemStart := i
	firstSpan := lines[i].span
	contentStart := firstSpan.Start() + width
	if contentStart > firstSpan.End() {
		contentStart = firstSpan.End()
	}
	inner := []line{{span: span.New(contentStart, firstSpan.End())}}
	i++
	for i < len(lines) {
		text := lines[i].span.Of(b.src)
		indent := 0
		for indent < len(text) && text[indent] == ' ' && indent < width {
			indent++
		}
		if indent < width {
			break
		}
		inner = append(inner, line{span: span.New(lines[i].span.Start()+width, lines[i].span.End())})
		i++
	}

	blk := Block{Kind: ListItem}
	b.enter(blk, firstSpan)
	b.blocks(inner)
	endSpan := firstSpan
	if i > itemStart {
		endSpan = lines[i-1].span
	}
	b.exit(blk, endSpan)
	return i
}

func (b *builder) table(lines []line, i int) int {
	start := i
	blk := Block{Kind: Table}
	b.enter(blk, lines[i].span)

	for i < len(lines) && isTableRow(lines[i].span.Of(b.src)) {
		text := lines[i].span.Of(b.src)
		if isTableSeparator(text) {
			i++
			continue
		}
		b.tableRow(lines[i])
		i++
	}

	endSpan := lines[start].span
	if i > start {
		endSpan = lines[i-1].span
	}
	b.exit(blk, endSpan)
	return i
}

func (b *builder) tableRow(ln line) {
	full := ln.span.Of(b.src)
	s := ln.span.Start()

	li := 0
	for li < len(full) && (full[li] == ' ' || full[li] == '\t') {
		li++
	}
	ri := len(full)
	for ri > li && (full[ri-1] == ' ' || full[ri-1] == '\t' || full[ri-1] == '\r') {
		ri--
	}
	if li < ri && full[li] == '|' {
		li++
	}
	if ri > li && full[ri-1] == '|' {
		ri--
	}

	rowBlk := Block{Kind: TableRow}
	b.enter(rowBlk, ln.span)
	cellStart := s + li
	for pos := s + li; pos <= s+ri; pos++ {
		if pos == s+ri || b.src[pos] == '|' {
			cell := span.New(cellStart, pos)
			cellBlk := Block{Kind: TableCell}
			b.enter(cellBlk, cell)
			b.atom(Inline, trimSpan(b.src, cell))
			b.exit(cellBlk, cell)
			cellStart = pos + 1
		}
	}
	b.exit(rowBlk, ln.span)
}

func (b *builder) paragraph(lines []line, i int) int {
	start := i
	i++
	for i < len(lines) {
		text := lines[i].span.Of(b.src)
		trimmed := strings.TrimRight(text, " \t\r")
		if isBlockStart(text, trimmed) {
			break
		}
		i++
	}

	contentSpan := span.New(lines[start].span.Start(), lines[i-1].span.End())
	blk := Block{Kind: Paragraph}
	b.enter(blk, lines[start].span)
	b.atom(Inline, contentSpan)
	b.exit(blk, lines[i-1].span)
	return i
}
