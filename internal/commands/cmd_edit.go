package commands

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/mdpad/internal/core/document"
	"github.com/colonyops/mdpad/internal/core/editor"
	"github.com/colonyops/mdpad/internal/store/textfile"
	"github.com/colonyops/mdpad/internal/tui"
)

type EditCmd struct {
	flags *Flags
	build tui.BuildInfo
}

// NewEditCmd creates the editor command, which is also the default action.
func NewEditCmd(flags *Flags, build tui.BuildInfo) *EditCmd {
	return &EditCmd{flags: flags, build: build}
}

// Register adds the edit command to the application
func (cmd *EditCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "edit",
		Usage:     "Open the editor",
		UsageText: "mdpad edit [file]",
		Description: `Opens the full-screen editor. With a file argument the document is
loaded from the documents directory; a missing file starts empty and is
created on first save.`,
		ShellComplete: DocumentNameCompleter(cmd.flags),
		Action:        cmd.Run,
	})
	return app
}

// Run executes the editor. Exported for use as default command.
func (cmd *EditCmd) Run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config
	store := textfile.New(cfg.DocsDir, cfg.MaxListed)

	var (
		doc  *document.Document
		name string
	)
	if c.Args().Len() > 0 {
		name = c.Args().First()
		loaded, err := store.Load(ctx, name)
		switch {
		case err == nil:
			doc = loaded
		case errors.Is(err, editor.ErrNotFound):
			log.Info().Str("name", name).Msg("starting new document")
		default:
			return fmt.Errorf("open %s: %w", name, err)
		}
	}

	m := tui.New(cfg, tui.Options{
		Context:  ctx,
		Store:    store,
		Document: doc,
		Name:     name,
		Build:    cmd.build,
	})

	log.Info().Str("docs_dir", cfg.DocsDir).Str("name", name).Msg("starting editor")

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	if model, ok := finalModel.(tui.Model); ok && model.Session().Modified() {
		log.Warn().Str("name", model.Session().Name()).Msg("exited with unsaved changes")
	}
	return nil
}
