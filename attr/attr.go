// Package attr validates and measures a single `{...}` attribute block
// without building any structured representation of it; the inline parser
// only needs to know how many bytes the block occupies and whether it held
// any real attribute (as opposed to pure whitespace or a comment).
//
// Grammar recognized inside the braces, space-separated:
//   - .class   (a class name)
//   - #id      (an identifier)
//   - key=value or key="quoted value"
//   - % a comment %, closed by the next % (no escapes inside)
package attr

import "unicode/utf8"

// Valid scans src starting at offset 0, which must hold '{', and reports
// the number of bytes consumed (0 if the block is malformed or src does
// not start with '{') and whether at least one syntactic attribute
// (class, id, or key=value pair) was found between the braces. Pure
// whitespace and comments do not count as non-empty.
func Valid(src string) (consumed int, nonEmpty bool) {
	if len(src) == 0 || src[0] != '{' {
		return 0, false
	}
	pos := 1
	nonEmpty = false

	for {
		if pos >= len(src) {
			return 0, false
		}
		r, w := utf8.DecodeRuneInString(src[pos:])

		switch {
		case r == '}':
			return pos + w, nonEmpty

		case r == ' ' || r == '\t' || r == '\n':
			pos += w

		case r == '%':
			end, ok := scanComment(src, pos)
			if !ok {
				return 0, false
			}
			pos = end

		case r == '.':
			end, ok := scanName(src, pos+w)
			if !ok || end == pos+w {
				return 0, false
			}
			pos = end
			nonEmpty = true

		case r == '#':
			end, ok := scanName(src, pos+w)
			if !ok || end == pos+w {
				return 0, false
			}
			pos = end
			nonEmpty = true

		case isNameStart(r):
			end, ok := scanName(src, pos)
			if !ok {
				return 0, false
			}
			if end >= len(src) || src[end] != '=' {
				return 0, false
			}
			end++ // consume '='
			end, ok = scanValue(src, end)
			if !ok {
				return 0, false
			}
			pos = end
			nonEmpty = true

		default:
			return 0, false
		}
	}
}

// scanComment consumes a '%'-delimited comment starting at pos (which must
// point at the opening '%') and returns the offset just past the closing
// '%'.
func scanComment(src string, pos int) (int, bool) {
	pos++ // opening '%'
	for pos < len(src) {
		r, w := utf8.DecodeRuneInString(src[pos:])
		if r == '%' {
			return pos + w, true
		}
		pos += w
	}
	return 0, false
}

func isNameStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func isNameCont(r rune) bool {
	return isNameStart(r) || r == '-' || r == ':' || r == '.'
}

// scanName consumes a bare class/id/key name starting at pos and returns
// the offset just past it. A zero-length name is reported as ok == true
// with end == pos so the caller can detect emptiness itself.
func scanName(src string, pos int) (int, bool) {
	for pos < len(src) {
		r, w := utf8.DecodeRuneInString(src[pos:])
		if !isNameCont(r) {
			break
		}
		pos += w
	}
	return pos, true
}

// scanValue consumes a key=value value, either a quoted string (allowing
// backslash escapes) or a bare run of characters ending at whitespace,
// '}' or '"'.
func scanValue(src string, pos int) (int, bool) {
	if pos >= len(src) {
		return 0, false
	}
	if src[pos] == '"' {
		pos++
		for pos < len(src) {
			r, w := utf8.DecodeRuneInString(src[pos:])
			switch r {
			case '\\':
				pos += w
				if pos >= len(src) {
					return 0, false
				}
				_, w2 := utf8.DecodeRuneInString(src[pos:])
				pos += w2
			case '"':
				return pos + w, true
			default:
				pos += w
			}
		}
		return 0, false
	}

	start := pos
	for pos < len(src) {
		r, w := utf8.DecodeRuneInString(src[pos:])
		if r == ' ' || r == '\t' || r == '\n' || r == '}' || r == '"' {
			break
		}
		pos += w
	}
	if pos == start {
		return 0, false
	}
	return pos, true
}
