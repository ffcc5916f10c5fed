package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/mdpad/internal/core/document"
	"github.com/colonyops/mdpad/internal/core/markup"
	"github.com/colonyops/mdpad/internal/store/textfile"
	"github.com/colonyops/mdpad/internal/tui"
	"github.com/colonyops/mdpad/pkg/iojson"
)

// Render output modes.
const (
	renderPlain   = "plain"
	renderStyled  = "styled"
	renderGlamour = "glamour"
	renderSpans   = "spans"
)

type RenderCmd struct {
	flags *Flags

	glamour bool
	spans   bool
	force   bool
	width   int
}

// NewRenderCmd creates a new render command
func NewRenderCmd(flags *Flags) *RenderCmd {
	return &RenderCmd{flags: flags}
}

// Register adds the render command to the application
func (cmd *RenderCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "render",
		Usage:     "Print a document with markup highlighting",
		UsageText: "mdpad render [--glamour | --spans] <file>",
		Description: `Prints a document from the documents directory the way the editor paints
it. --glamour renders it as full markdown instead, and --spans prints the
style spans of each line as JSON lines.

When stdout is not a terminal the raw text is printed unless --force is set.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "glamour",
				Aliases:     []string{"g"},
				Usage:       "render as full markdown",
				Destination: &cmd.glamour,
			},
			&cli.BoolFlag{
				Name:        "spans",
				Usage:       "print tokenizer spans as JSON lines",
				Destination: &cmd.spans,
			},
			&cli.BoolFlag{
				Name:        "force",
				Usage:       "style output even when stdout is not a terminal",
				Destination: &cmd.force,
			},
			&cli.IntFlag{
				Name:        "width",
				Usage:       "wrap width for --glamour (defaults to terminal width)",
				Destination: &cmd.width,
			},
		},
		ShellComplete: DocumentNameCompleter(cmd.flags),
		Action:        cmd.run,
	})
	return app
}

func (cmd *RenderCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one document name")
	}
	name := c.Args().First()

	cfg := cmd.flags.Config
	doc, err := textfile.New(cfg.DocsDir, cfg.MaxListed).Load(ctx, name)
	if err != nil {
		return fmt.Errorf("load %s: %w", name, err)
	}

	fd := int(os.Stdout.Fd())
	isTTY := term.IsTerminal(fd)

	width := cmd.width
	if width <= 0 {
		width = document.LineCapacity
		if isTTY {
			if w, _, err := term.GetSize(fd); err == nil && w > 0 {
				width = w
			}
		}
	}

	return renderDocument(c.Root().Writer, doc, cmd.mode(isTTY), width)
}

func (cmd *RenderCmd) mode(isTTY bool) string {
	switch {
	case cmd.spans:
		return renderSpans
	case !isTTY && !cmd.force:
		return renderPlain
	case cmd.glamour:
		return renderGlamour
	default:
		return renderStyled
	}
}

// spanLine is one row of render --spans output.
type spanLine struct {
	Row   int        `json:"row"`
	Spans []spanInfo `json:"spans"`
}

type spanInfo struct {
	Style string `json:"style"`
	Text  string `json:"text"`
}

func renderDocument(w io.Writer, doc *document.Document, mode string, width int) error {
	switch mode {
	case renderPlain:
		_, err := io.WriteString(w, doc.Text())
		return err

	case renderGlamour:
		out, err := tui.RenderMarkdown(doc.Text(), width)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, out)
		return err

	case renderSpans:
		for row, line := range doc.Lines() {
			spans := markup.Compact(markup.Tokenize(line))
			info := spanLine{Row: row, Spans: make([]spanInfo, len(spans))}
			for i, sp := range spans {
				info.Spans[i] = spanInfo{Style: sp.Style.String(), Text: sp.Text}
			}
			if err := iojson.WriteLine(w, info); err != nil {
				return err
			}
		}
		return nil

	default:
		out := tui.RenderDocument(doc)
		if out == "" {
			return nil
		}
		_, err := fmt.Fprintln(w, out)
		return err
	}
}
