package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/mdpad/internal/store/textfile"
	"github.com/colonyops/mdpad/pkg/iojson"
)

type LsCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
	pattern    string
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags) *LsCmd {
	return &LsCmd{flags: flags}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List documents",
		UsageText: "mdpad ls [--pattern glob] [--json]",
		Description: `Lists the documents the load dialog would offer: files in the documents
directory matching the configured pattern, sorted by name.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "pattern",
				Usage:       "glob to match (defaults to the configured pattern)",
				Destination: &cmd.pattern,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config
	pattern := cmd.pattern
	if pattern == "" {
		pattern = cfg.Pattern
	}

	entries, err := textfile.New(cfg.DocsDir, cfg.MaxListed).List(ctx, pattern)
	if err != nil {
		return fmt.Errorf("list documents: %w", err)
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, e := range entries {
			if err := iojson.WriteLine(out, docInfo{Name: e.Name, Size: e.Size}); err != nil {
				return fmt.Errorf("encode entry: %w", err)
			}
		}
		return nil
	}

	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "No documents matching %s in %s\n", pattern, cfg.DocsDir)
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tSIZE")
	for _, e := range entries {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", e.Name, humanize.Bytes(uint64(max(e.Size, 0))))
	}
	return w.Flush()
}

// docInfo is the JSON output format for mdpad ls --json.
type docInfo struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}
