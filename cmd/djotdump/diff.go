package main

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/godjot/djot"
	"github.com/godjot/djot/djothtml"
)

// DiffCmd compares the parse of two documents, either their event streams
// or their rendered HTML, and prints a unified diff the way the teacher's
// mibdump AST comparison does.
type DiffCmd struct {
	A    string `arg:"" help:"First document"`
	B    string `arg:"" help:"Second document"`
	HTML bool   `help:"Diff rendered HTML instead of the event stream"`
}

func (c *DiffCmd) Run() error {
	srcA, err := readSource(c.A)
	if err != nil {
		return err
	}
	srcB, err := readSource(c.B)
	if err != nil {
		return err
	}

	textA, err := c.dump(srcA)
	if err != nil {
		return err
	}
	textB, err := c.dump(srcB)
	if err != nil {
		return err
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(textA),
		B:        difflib.SplitLines(textB),
		FromFile: c.A,
		ToFile:   c.B,
		Context:  3,
	}
	diffStr, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return fmt.Errorf("generate diff: %w", err)
	}
	if diffStr == "" {
		fmt.Println("no differences")
		return nil
	}
	fmt.Print(diffStr)
	return nil
}

func (c *DiffCmd) dump(src string) (string, error) {
	events := djot.Parse(src)
	if c.HTML {
		var b strings.Builder
		if err := djothtml.Render(&b, src, events); err != nil {
			return "", err
		}
		return b.String(), nil
	}
	var b strings.Builder
	for _, ev := range events {
		label := ev.Container.String()
		if ev.Kind == djot.AtomKind {
			label = ev.Atom.String()
		}
		fmt.Fprintf(&b, "%s %s %q\n", ev.Kind, label, ev.Of(src))
	}
	return b.String(), nil
}
