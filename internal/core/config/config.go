// Package config handles configuration loading and validation for mdpad.
package config

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/mdpad/internal/core/styles"
)

// Editor actions that can be bound to keys.
const (
	ActionSave    = "save"
	ActionLoad    = "load"
	ActionNew     = "new"
	ActionHelp    = "help"
	ActionPreview = "preview"
	ActionQuit    = "quit"
)

// MaxNameLen is the longest document name the save prompt accepts.
const MaxNameLen = 16

// Actions lists every bindable action in display order.
var Actions = []string{ActionSave, ActionLoad, ActionNew, ActionHelp, ActionPreview, ActionQuit}

// defaultKeybindings follows the classic function-key layout with ctrl
// fallbacks for terminals that swallow F-keys.
var defaultKeybindings = map[string][]string{
	ActionSave:    {"f1", "ctrl+s"},
	ActionLoad:    {"f3", "ctrl+o"},
	ActionNew:     {"f5", "ctrl+n"},
	ActionHelp:    {"f7"},
	ActionPreview: {"f9", "ctrl+p"},
	ActionQuit:    {"ctrl+c", "ctrl+q"},
}

// DefaultKeybindings returns a copy of the built-in keybindings.
func DefaultKeybindings() map[string][]string {
	return mergeKeybindings(defaultKeybindings, nil)
}

// Config holds the application configuration.
type Config struct {
	DocsDir     string              `yaml:"docs_dir"`     // where documents are saved and listed
	DefaultName string              `yaml:"default_name"` // prefilled name in the save prompt
	Pattern     string              `yaml:"pattern"`      // glob for the load dialog and ls
	MaxListed   int                 `yaml:"max_listed"`   // cap on listed documents
	Theme       string              `yaml:"theme"`
	Keybindings map[string][]string `yaml:"keybindings"` // action -> keys
	DataDir     string              `yaml:"-"`           // set by caller, not from config file
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DocsDir:     ".",
		DefaultName: "md.txt",
		Pattern:     "*.md",
		MaxListed:   50,
		Theme:       styles.DefaultTheme,
		Keybindings: map[string][]string{},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	// Merge user keybindings into defaults (user config overrides defaults)
	cfg.Keybindings = mergeKeybindings(defaultKeybindings, cfg.Keybindings)

	// Apply defaults for zero values
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Write serializes the config as YAML to path, creating parent directories.
func (c *Config) Write(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.DocsDir == "" {
		c.DocsDir = defaults.DocsDir
	}
	if c.DefaultName == "" {
		c.DefaultName = defaults.DefaultName
	}
	if c.Pattern == "" {
		c.Pattern = defaults.Pattern
	}
	if c.MaxListed == 0 {
		c.MaxListed = defaults.MaxListed
	}
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
}

// mergeKeybindings merges user keybindings into defaults.
// User keybindings replace the defaults for the same action.
func mergeKeybindings(defaults, user map[string][]string) map[string][]string {
	result := make(map[string][]string, len(defaults)+len(user))

	for k, v := range defaults {
		result[k] = slices.Clone(v)
	}

	for k, v := range user {
		result[k] = v
	}

	return result
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	if c.MaxListed < 1 {
		return fmt.Errorf("max_listed must be at least 1")
	}

	if err := ValidateName(c.DefaultName); err != nil {
		return fmt.Errorf("default_name: %w", err)
	}

	if _, ok := styles.GetPalette(c.Theme); !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", c.Theme, styles.ThemeNames())
	}

	owner := make(map[string]string)
	for _, action := range slices.Sorted(maps.Keys(c.Keybindings)) {
		if !isValidAction(action) {
			return fmt.Errorf("keybinding for unknown action %q", action)
		}
		keys := c.Keybindings[action]
		if len(keys) == 0 {
			return fmt.Errorf("action %q has no keys", action)
		}
		for _, k := range keys {
			if prev, taken := owner[k]; taken {
				return fmt.Errorf("key %q bound to both %q and %q", k, prev, action)
			}
			owner[k] = action
		}
	}

	return nil
}

// ValidateName checks a document name as accepted by the save prompt.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) > MaxNameLen {
		return fmt.Errorf("name longer than %d characters", MaxNameLen)
	}
	for i := 0; i < len(name); i++ {
		if name[i] < 32 || name[i] > 126 {
			return fmt.Errorf("name contains non-printable characters")
		}
	}
	if name != filepath.Base(name) || name == "." || name == ".." {
		return fmt.Errorf("name must not contain path separators")
	}
	return nil
}

// LogFile returns the default log file path inside the data directory.
func (c *Config) LogFile() string {
	return filepath.Join(c.DataDir, "mdpad.log")
}

func isValidAction(action string) bool {
	return slices.Contains(Actions, action)
}
