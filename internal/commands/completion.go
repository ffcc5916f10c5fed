package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/mdpad/internal/store/textfile"
)

// DocumentNameCompleter returns a ShellCompleteFunc that suggests stored
// document names as positional completions. Set this as the ShellComplete
// field on any cli.Command that accepts a document name.
//
// When the user's last typed argument starts with "-", it falls back to the
// default flag completion behavior.
func DocumentNameCompleter(flags *Flags) cli.ShellCompleteFunc {
	return func(ctx context.Context, cmd *cli.Command) {
		if args := cmd.Args(); args.Present() {
			last := args.Slice()[args.Len()-1]
			if len(last) > 0 && last[0] == '-' {
				cli.DefaultCompleteWithFlags(ctx, cmd)
				return
			}
		}

		cfg := flags.Config
		if cfg == nil {
			return
		}

		entries, err := textfile.New(cfg.DocsDir, cfg.MaxListed).List(ctx, cfg.Pattern)
		if err != nil {
			return
		}

		w := cmd.Root().Writer
		for _, e := range entries {
			_, _ = fmt.Fprintln(w, e.Name)
		}
	}
}
