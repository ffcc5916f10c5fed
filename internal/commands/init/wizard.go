// Package initcmd implements the first-run setup wizard behind mdpad init.
package initcmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/huh"

	"github.com/colonyops/mdpad/internal/core/config"
	"github.com/colonyops/mdpad/internal/core/styles"
	"github.com/colonyops/mdpad/internal/printer"
)

// WizardOptions configures the wizard behavior.
type WizardOptions struct {
	ConfigPath string
	DataDir    string
	Yes        bool   // skip prompts, use defaults
	Force      bool   // overwrite existing config
	DocsDir    string // pre-specified documents directory ("" = prompt)
}

// Answers holds the values collected by the wizard.
type Answers struct {
	DocsDir     string
	DefaultName string
	Pattern     string
	Theme       string
}

// DefaultAnswers returns the values offered when nothing was preset.
func DefaultAnswers() Answers {
	cfg := config.DefaultConfig()
	return Answers{
		DocsDir:     DefaultDocsDir(),
		DefaultName: cfg.DefaultName,
		Pattern:     cfg.Pattern,
		Theme:       cfg.Theme,
	}
}

// DefaultDocsDir is ~/Documents/mdpad, or the working directory when the home
// directory is unknown.
func DefaultDocsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Documents", "mdpad")
}

// Wizard orchestrates the init process.
type Wizard struct {
	opts WizardOptions
}

// NewWizard creates a new init wizard.
func NewWizard(opts WizardOptions) *Wizard {
	return &Wizard{opts: opts}
}

// Run executes the wizard.
func (w *Wizard) Run(ctx context.Context) error {
	p := printer.Ctx(ctx)

	if ConfigExists(w.opts.ConfigPath) && !w.opts.Force {
		if w.opts.Yes {
			return fmt.Errorf("config exists at %s; use --force to overwrite", w.opts.ConfigPath)
		}

		var overwrite bool
		err := huh.NewConfirm().
			Title("Config file already exists").
			Description(w.opts.ConfigPath + "\nOverwrite? (a backup will be created)").
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			p.Infof("Init cancelled")
			return nil
		}
	}

	answers := DefaultAnswers()
	if w.opts.DocsDir != "" {
		answers.DocsDir = w.opts.DocsDir
	}

	if !w.opts.Yes {
		if err := w.prompt(&answers); err != nil {
			return err
		}
	}

	cfg, err := GenerateConfig(answers, w.opts.DataDir)
	if err != nil {
		return err
	}

	if ConfigExists(w.opts.ConfigPath) {
		backupPath, err := BackupConfig(w.opts.ConfigPath)
		if err != nil {
			return fmt.Errorf("backup config: %w", err)
		}
		if backupPath != "" {
			p.Successf("Backed up config to: %s", backupPath)
		}
	}

	if err := cfg.Write(w.opts.ConfigPath); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	p.Successf("Created config: %s", w.opts.ConfigPath)

	if err := os.MkdirAll(cfg.DocsDir, 0o755); err != nil {
		p.Warnf("Could not create documents directory: %v", err)
	} else {
		p.Successf("Documents directory: %s", cfg.DocsDir)
	}

	p.Printf("")
	if err := cfg.ValidateDeep(w.opts.ConfigPath); err != nil {
		p.Warnf("Config has problems: %v", err)
	} else {
		p.Successf("Configuration is valid")
	}

	w.printNextSteps(p)
	return nil
}

func (w *Wizard) prompt(a *Answers) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Documents directory").
				Description("Where documents are saved and listed from").
				Value(&a.DocsDir).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("directory is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Default file name").
				Description("Prefilled in the save prompt").
				CharLimit(config.MaxNameLen).
				Value(&a.DefaultName).
				Validate(config.ValidateName),
			huh.NewInput().
				Title("Document pattern").
				Description("Glob the load dialog matches").
				Value(&a.Pattern).
				Validate(validatePattern),
			huh.NewSelect[string]().
				Title("Theme").
				Options(huh.NewOptions(styles.ThemeNames()...)...).
				Value(&a.Theme),
		),
	)
	return form.Run()
}

// GenerateConfig builds a validated config from wizard answers.
func GenerateConfig(a Answers, dataDir string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.DataDir = dataDir
	cfg.DocsDir = expandHome(strings.TrimSpace(a.DocsDir))
	cfg.DefaultName = a.DefaultName
	cfg.Pattern = a.Pattern
	cfg.Theme = a.Theme

	if err := validatePattern(cfg.Pattern); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid answers: %w", err)
	}
	return &cfg, nil
}

func validatePattern(s string) error {
	if s == "" || !doublestar.ValidatePattern(s) {
		return fmt.Errorf("invalid glob %q", s)
	}
	return nil
}

func (w *Wizard) printNextSteps(p *printer.Printer) {
	p.Printf("")
	p.Section("Next Steps")
	p.Printf("  1. Run 'mdpad' to open the editor")
	p.Printf("  2. Press F7 inside the editor for the key reference")
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}
