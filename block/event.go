package block

import (
	"fmt"

	"github.com/godjot/djot/span"
)

// EventKind classifies a tree Event.
type EventKind int

const (
	Enter EventKind = iota
	Exit
	Atom
)

func (k EventKind) String() string {
	switch k {
	case Enter:
		return "Enter"
	case Exit:
		return "Exit"
	case Atom:
		return "Atom"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is one item of a Tree's flat, depth-first event stream.
type Event struct {
	Kind  EventKind
	Block Block    // Enter, Exit
	Atom  AtomKind // Atom
	Span  span.Span
}

func (e Event) String() string {
	switch e.Kind {
	case Enter, Exit:
		return fmt.Sprintf("%s(%s) %s", e.Kind, e.Block.Kind, e.Span)
	case Atom:
		return fmt.Sprintf("Atom(%s) %s", e.Atom, e.Span)
	default:
		return fmt.Sprintf("%s %s", e.Kind, e.Span)
	}
}

// Tree is the fully-scanned, flat event stream produced by Parse. Its
// shape mirrors a depth-first walk of the document's block structure:
// every Container Enter is matched by an Exit once its children (and any
// nested containers) have been emitted.
type Tree struct {
	events []Event
	pos    int
}

// Next returns the next event and advances the cursor, or reports false
// once the stream is exhausted.
func (t *Tree) Next() (Event, bool) {
	if t.pos >= len(t.events) {
		return Event{}, false
	}
	ev := t.events[t.pos]
	t.pos++
	return ev, true
}

// Peek returns the next event without advancing.
func (t *Tree) Peek() (Event, bool) {
	if t.pos >= len(t.events) {
		return Event{}, false
	}
	return t.events[t.pos], true
}

// Events returns the tree's full event slice.
func (t *Tree) Events() []Event {
	return t.events
}
