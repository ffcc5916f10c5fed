package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	initcmd "github.com/colonyops/mdpad/internal/commands/init"
)

type InitCmd struct {
	flags   *Flags
	yes     bool
	force   bool
	docsDir string
}

func NewInitCmd(flags *Flags) *InitCmd {
	return &InitCmd{flags: flags}
}

func (cmd *InitCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "init",
		Usage:     "Create a configuration file with an interactive wizard",
		UsageText: "mdpad init [options]",
		Description: `Sets up mdpad for first-time use.

The wizard asks for the documents directory, the default file name offered
by the save prompt, the glob the load dialog matches, and a color theme, then
writes ~/.config/mdpad/config.yaml.

Use --yes to accept all defaults without prompts.
Use --force to overwrite existing configuration (a .bak copy is kept).`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "accept defaults without prompting",
				Destination: &cmd.yes,
			},
			&cli.BoolFlag{
				Name:        "force",
				Aliases:     []string{"f"},
				Usage:       "overwrite existing configuration",
				Destination: &cmd.force,
			},
			&cli.StringFlag{
				Name:        "docs-dir",
				Usage:       "documents directory to preset",
				Destination: &cmd.docsDir,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *InitCmd) run(ctx context.Context, c *cli.Command) error {
	wizard := initcmd.NewWizard(initcmd.WizardOptions{
		ConfigPath: cmd.flags.ConfigPath,
		DataDir:    cmd.flags.DataDir,
		Yes:        cmd.yes,
		Force:      cmd.force,
		DocsDir:    cmd.docsDir,
	})
	return wizard.Run(ctx)
}
