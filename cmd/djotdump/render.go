package main

import (
	"os"

	"github.com/godjot/djot"
	"github.com/godjot/djot/djothtml"
)

// RenderCmd renders a document to HTML on stdout.
type RenderCmd struct {
	File string `arg:"" optional:"" help:"Document to render (default: stdin)"`
}

func (c *RenderCmd) Run() error {
	src, err := readSource(c.File)
	if err != nil {
		return err
	}
	return djothtml.Render(os.Stdout, src, djot.Parse(src))
}
