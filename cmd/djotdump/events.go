package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/repr"
	"github.com/charmbracelet/lipgloss"

	"github.com/godjot/djot"
)

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))

// EventsCmd dumps the parsed event stream of a document, either as the
// teacher-style repr.String() pretty form or as plain one-line-per-event
// text.
type EventsCmd struct {
	File string `arg:"" optional:"" help:"Document to parse (default: stdin)"`
	Repr bool   `help:"Use repr-style struct dump instead of one line per event"`
}

func (c *EventsCmd) Run() error {
	src, err := readSource(c.File)
	if err != nil {
		return err
	}
	events := djot.Parse(src)
	if c.Repr {
		repr.Println(events)
		return nil
	}
	if isTerminal(os.Stdout) {
		fmt.Println(titleStyle.Render(fmt.Sprintf("%d events", len(events))))
	}
	for _, ev := range events {
		label := ev.Container.String()
		if ev.Kind == djot.AtomKind {
			label = ev.Atom.String()
		}
		fmt.Printf("%-12s %-16s %q\n", ev.Kind, label, ev.Of(src))
	}
	return nil
}
