// Package djothtml renders a djot Event stream to HTML. It is a minimal,
// stdlib-only renderer: no templating library is warranted here, since
// the whole job is "map container kinds to tag names and escape text",
// which html.EscapeString and a small tag table already do cleanly.
package djothtml

import (
	"fmt"
	"html"
	"io"

	"github.com/godjot/djot/block"
	"github.com/godjot/djot"
)

var blockTag = map[djot.Container]string{
	djot.ContainerParagraph:  "p",
	djot.ContainerBlockquote: "blockquote",
	djot.ContainerListItem:   "li",
	djot.ContainerTable:      "table",
	djot.ContainerTableRow:   "tr",
	djot.ContainerTableCell:  "td",
	djot.ContainerFootnote:   "aside",
}

var inlineTag = map[djot.Container]string{
	djot.ContainerEmphasis:    "em",
	djot.ContainerStrong:      "strong",
	djot.ContainerSuperscript: "sup",
	djot.ContainerSubscript:   "sub",
	djot.ContainerInsert:      "ins",
	djot.ContainerDelete:      "del",
	djot.ContainerMark:        "mark",
	djot.ContainerVerbatim:    "code",
	djot.ContainerSpan:        "span",
}

// Render writes the HTML form of events to w. src is the original source
// the events' spans index into.
func Render(w io.Writer, src string, events []djot.Event) error {
	r := &renderer{w: w, src: src}
	for _, ev := range events {
		if err := r.event(ev); err != nil {
			return err
		}
	}
	return r.err
}

type renderer struct {
	w   io.Writer
	src string
	err error
}

func (r *renderer) write(s string) {
	if r.err != nil {
		return
	}
	_, r.err = io.WriteString(r.w, s)
}

func (r *renderer) escape(s string) {
	r.write(html.EscapeString(s))
}

func (r *renderer) event(ev djot.Event) error {
	if r.err != nil {
		return r.err
	}
	switch ev.Kind {
	case djot.Enter:
		r.enter(ev)
	case djot.Exit:
		r.exit(ev)
	case djot.Str:
		r.escape(ev.Of(r.src))
	case djot.AtomKind:
		r.atom(ev)
	case djot.Attributes:
		// Attribute spans carry no renderable text of their own; a
		// fuller renderer would fold them into the next tag's class
		// and id. Left unattached here since djot.Event doesn't yet
		// thread attributes onto their owning container.
	}
	return r.err
}

func (r *renderer) enter(ev djot.Event) {
	switch ev.Container {
	case djot.ContainerHeading:
		fmt.Fprintf(r.w, "<h%d>", clampHeading(ev.HeadingLevel))
	case djot.ContainerCodeBlock:
		r.write("<pre><code")
		if ev.Lang != "" {
			r.write(` class="language-`)
			r.escape(ev.Lang)
			r.write(`"`)
		}
		r.write(">")
	case djot.ContainerList:
		if ev.ListKind == block.ListOrdered {
			r.write("<ol>")
		} else {
			r.write("<ul>")
		}
	case djot.ContainerDiv:
		r.write("<div")
		if ev.DivClass != "" {
			r.write(` class="`)
			r.escape(ev.DivClass)
			r.write(`"`)
		}
		r.write(">")
	case djot.ContainerInlineLink, djot.ContainerReferenceLink:
		r.write(`<a href="`)
		r.escape(ev.Of(r.src))
		r.write(`">`)
	case djot.ContainerInlineImage, djot.ContainerReferenceImage:
		r.write(`<img src="`)
		r.escape(ev.Of(r.src))
		r.write(`" alt="`)
	case djot.ContainerAutolink:
		r.write(`<a href="`)
		r.escape(ev.Of(r.src))
		r.write(`">`)
	case djot.ContainerSingleQuoted:
		r.write("&lsquo;")
	case djot.ContainerDoubleQuoted:
		r.write("&ldquo;")
	default:
		if tag, ok := blockTag[ev.Container]; ok {
			fmt.Fprintf(r.w, "<%s>", tag)
		} else if tag, ok := inlineTag[ev.Container]; ok {
			fmt.Fprintf(r.w, "<%s>", tag)
		}
	}
}

func (r *renderer) exit(ev djot.Event) {
	switch ev.Container {
	case djot.ContainerHeading:
		fmt.Fprintf(r.w, "</h%d>", clampHeading(ev.HeadingLevel))
	case djot.ContainerCodeBlock:
		r.write("</code></pre>")
	case djot.ContainerList:
		if ev.ListKind == block.ListOrdered {
			r.write("</ol>")
		} else {
			r.write("</ul>")
		}
	case djot.ContainerDiv:
		r.write("</div>")
	case djot.ContainerInlineLink, djot.ContainerReferenceLink, djot.ContainerAutolink:
		r.write("</a>")
	case djot.ContainerInlineImage, djot.ContainerReferenceImage:
		r.write(`">`)
	case djot.ContainerSingleQuoted:
		r.write("&rsquo;")
	case djot.ContainerDoubleQuoted:
		r.write("&rdquo;")
	default:
		if tag, ok := blockTag[ev.Container]; ok {
			fmt.Fprintf(r.w, "</%s>", tag)
		} else if tag, ok := inlineTag[ev.Container]; ok {
			fmt.Fprintf(r.w, "</%s>", tag)
		}
	}
}

func (r *renderer) atom(ev djot.Event) {
	switch ev.Atom {
	case djot.AtomSoftbreak:
		r.write("\n")
	case djot.AtomHardbreak:
		r.write("<br>\n")
	case djot.AtomNbsp:
		r.write("&nbsp;")
	case djot.AtomEllipsis:
		r.write("&hellip;")
	case djot.AtomEnDash:
		r.write("&ndash;")
	case djot.AtomEmDash:
		r.write("&mdash;")
	case djot.AtomThematicBreak:
		r.write("<hr>\n")
	case djot.AtomBlankline, djot.AtomEscape:
		// Not visible in output.
	}
}

func clampHeading(level int) int {
	if level < 1 {
		return 1
	}
	if level > 6 {
		return 6
	}
	return level
}
