// Package span provides the half-open byte range used throughout the
// parser to refer back into the original source instead of copying text.
package span

import "fmt"

// Span is a half-open byte range [Start, End) into some source string.
// The zero value is the empty span at offset 0.
type Span struct {
	start int
	end   int
}

// New returns the span [start, end). Panics if start > end.
func New(start, end int) Span {
	if start > end {
		panic(fmt.Sprintf("span: start %d > end %d", start, end))
	}
	return Span{start: start, end: end}
}

// EmptyAt returns the zero-width span at pos.
func EmptyAt(pos int) Span {
	return Span{start: pos, end: pos}
}

// ByLen returns the span [start, start+n).
func ByLen(start, n int) Span {
	return Span{start: start, end: start + n}
}

// Start returns the inclusive start offset.
func (s Span) Start() int { return s.start }

// End returns the exclusive end offset.
func (s Span) End() int { return s.end }

// Len returns End - Start.
func (s Span) Len() int { return s.end - s.start }

// IsEmpty reports whether the span has zero width.
func (s Span) IsEmpty() bool { return s.start == s.end }

// Extend returns the span with its end moved forward by n bytes.
func (s Span) Extend(n int) Span {
	return Span{start: s.start, end: s.end + n}
}

// WithStart returns a copy of s with its start replaced.
func (s Span) WithStart(start int) Span {
	return Span{start: start, end: s.end}
}

// WithEnd returns a copy of s with its end replaced.
func (s Span) WithEnd(end int) Span {
	return Span{start: s.start, end: end}
}

// Translate shifts both endpoints by n bytes, e.g. to map an inline span
// local to a leaf block back into document-absolute offsets.
func (s Span) Translate(n int) Span {
	return Span{start: s.start + n, end: s.end + n}
}

// Union returns the smallest span covering both s and other. The caller is
// responsible for the two spans being adjacent or overlapping; Union does
// not validate contiguity.
func (s Span) Union(other Span) Span {
	start := s.start
	if other.start < start {
		start = other.start
	}
	end := s.end
	if other.end > end {
		end = other.end
	}
	return Span{start: start, end: end}
}

// Of slices src by the span's offsets.
func (s Span) Of(src string) string {
	return src[s.start:s.end]
}

func (s Span) String() string {
	return fmt.Sprintf("[%d:%d)", s.start, s.end)
}
