package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/mdpad/internal/core/editor"
	"github.com/colonyops/mdpad/internal/core/logging"
	"github.com/colonyops/mdpad/internal/store/textfile"
)

type ApplyCmd struct {
	flags *Flags

	// flags
	keys       string
	scriptFile string
	in         string
	out        string
	quiet      bool
}

// NewApplyCmd creates a new apply command
func NewApplyCmd(flags *Flags) *ApplyCmd {
	return &ApplyCmd{flags: flags}
}

// Register adds the apply command to the application
func (cmd *ApplyCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "apply",
		Usage:     "Replay a key script against a document without a terminal",
		UsageText: "mdpad apply [--in name] [--out name] (--keys script | --script file | < script)",
		Description: `Runs the editor headless. Keys come from --keys, from --script (use - for
stdin), or from piped stdin. Printable characters type themselves, a newline
is Enter, and named keys are written in angle brackets:

  <enter> <bs> <left> <right> <up> <down> <save> <new> <quit> <lt>

<save> writes the document under --out, the loaded name, or the configured
default name. <new> clears it. Other function keys are ignored. When --out is
set the final document is also saved there once the script ends.

The resulting text is printed to stdout unless --quiet is set.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "keys",
				Aliases:     []string{"k"},
				Usage:       "key script to replay",
				Destination: &cmd.keys,
			},
			&cli.StringFlag{
				Name:        "script",
				Aliases:     []string{"f"},
				Usage:       "read the key script from a file (- for stdin)",
				Destination: &cmd.scriptFile,
			},
			&cli.StringFlag{
				Name:        "in",
				Usage:       "document to load before replaying",
				Destination: &cmd.in,
			},
			&cli.StringFlag{
				Name:        "out",
				Usage:       "document name to save to",
				Destination: &cmd.out,
			},
			&cli.BoolFlag{
				Name:        "quiet",
				Aliases:     []string{"q"},
				Usage:       "do not print the resulting document",
				Destination: &cmd.quiet,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ApplyCmd) run(ctx context.Context, c *cli.Command) error {
	script, err := cmd.readScript(c.Root().Reader)
	if err != nil {
		return err
	}

	events, err := editor.ParseScript(script)
	if err != nil {
		return fmt.Errorf("parse key script: %w", err)
	}

	cfg := cmd.flags.Config
	st := textfile.New(cfg.DocsDir, cfg.MaxListed)

	session, err := replay(ctx, st, events, replayOptions{
		In:          cmd.in,
		Out:         cmd.out,
		DefaultName: cfg.DefaultName,
	})
	if err != nil {
		return err
	}

	if cmd.quiet {
		return nil
	}
	_, err = io.WriteString(c.Root().Writer, session.Snapshot().Text())
	return err
}

// readScript picks the script source: --keys, then --script, then stdin when
// it is not a terminal.
func (cmd *ApplyCmd) readScript(stdin io.Reader) (string, error) {
	if cmd.keys != "" && cmd.scriptFile != "" {
		return "", errors.New("--keys and --script are mutually exclusive")
	}

	if cmd.keys != "" {
		return cmd.keys, nil
	}

	if cmd.scriptFile != "" && cmd.scriptFile != "-" {
		data, err := os.ReadFile(cmd.scriptFile)
		if err != nil {
			return "", fmt.Errorf("read key script: %w", err)
		}
		return string(data), nil
	}

	if cmd.scriptFile == "" {
		if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return "", errors.New("no key script: use --keys, --script, or pipe one on stdin")
		}
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read key script from stdin: %w", err)
	}
	return string(data), nil
}

type replayOptions struct {
	In          string // document to start from
	Out         string // save target; also saved once the script ends
	DefaultName string // save target when neither Out nor In is set
}

// replay runs events through a headless session backed by st.
func replay(ctx context.Context, st editor.Storage, events []editor.KeyEvent, opts replayOptions) (*editor.Session, error) {
	log := logging.Component("apply")

	session := editor.NewSession(editor.Options{Logger: &log})
	if opts.In != "" {
		if err := session.Load(ctx, st, opts.In); err != nil {
			return nil, err
		}
	}

	saveName := func(s *editor.Session) string {
		switch {
		case opts.Out != "":
			return opts.Out
		case s.Name() != "":
			return s.Name()
		default:
			return opts.DefaultName
		}
	}

	handle := func(ctx context.Context, s *editor.Session, req editor.Request) error {
		switch req {
		case editor.RequestSave:
			return s.Save(ctx, st, saveName(s))
		case editor.RequestNew:
			s.Reset()
		default:
			log.Debug().Stringer("request", req).Msg("ignoring request in headless mode")
		}
		return nil
	}

	if err := session.Run(ctx, editor.NewScriptInput(events), handle); err != nil {
		return nil, err
	}

	if opts.Out != "" {
		if err := session.Save(ctx, st, opts.Out); err != nil {
			return nil, err
		}
	}

	log.Info().
		Str("name", session.Name()).
		Int("keys", len(events)).
		Bool("modified", session.Modified()).
		Msg("key script applied")

	return session, nil
}
