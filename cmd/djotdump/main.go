// Command djotdump drives the parser from the command line: it dumps the
// event stream of a document, renders it to HTML, or diffs the event
// streams (or rendered HTML) of two documents.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"
)

// cli is the root command structure for Kong, in the teacher's style of
// one exported field per subcommand struct.
type cli struct {
	Events EventsCmd `cmd:"" help:"Dump the event stream of a document"`
	Render RenderCmd `cmd:"" help:"Render a document to HTML"`
	Diff   DiffCmd   `cmd:"" help:"Diff the parse of two documents"`
}

func main() {
	c := &cli{}
	ctx := kong.Parse(c,
		kong.Name("djotdump"),
		kong.Description("Inspect and render djot documents"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
	if err != nil {
		os.Exit(1)
	}
}

func readSource(path string) (string, error) {
	if path == "-" || path == "" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(b), nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd())
}
