package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/lox/internal/logging"
)

// Config represents lox.yaml.
type Config struct {
	// LogLevel is the level of the diagnostic logger on stderr.
	LogLevel string `yaml:"log_level,omitempty"`

	// Color is one of auto, always or never. auto colors diagnostics only
	// when stderr is a terminal.
	Color string `yaml:"color,omitempty"`

	// MaxCallDepth bounds nested calls. 0 disables the limit; a missing
	// field means DefaultMaxCallDepth.
	MaxCallDepth *int `yaml:"max_call_depth,omitempty"`

	REPL REPLConfig `yaml:"repl"`
}

type REPLConfig struct {
	Prompt       string `yaml:"prompt,omitempty"`
	Continuation string `yaml:"continuation,omitempty"`

	// HistoryFile may start with ~/ for the home directory. "-" disables
	// history.
	HistoryFile string `yaml:"history_file,omitempty"`
}

// Default returns the configuration used when no lox.yaml exists.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// CallDepth returns the effective call depth limit.
func (c *Config) CallDepth() int {
	if c.MaxCallDepth == nil {
		return DefaultMaxCallDepth
	}
	return *c.MaxCallDepth
}

// LoadConfig reads and parses a lox.yaml file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses lox.yaml content from bytes.
// The path argument is used only for error messages.
func ParseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	cfg.setDefaults()
	return &cfg, nil
}

// FindConfig searches for lox.yaml starting from dir and walking up to
// parent directories. It returns an empty path and nil error when there
// is none.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", nil
		}
		dir = parent
	}
}

// ExpandHome replaces a leading ~/ with the user's home directory.
func ExpandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// validate checks the configuration for semantic errors.
func (c *Config) validate(path string) error {
	if c.LogLevel != "" && !logging.ValidLevel(c.LogLevel) {
		return fmt.Errorf("%s: log_level: unknown level %q", path, c.LogLevel)
	}
	switch c.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("%s: color: must be auto, always or never, got %q", path, c.Color)
	}
	if c.MaxCallDepth != nil && *c.MaxCallDepth < 0 {
		return fmt.Errorf("%s: max_call_depth: must not be negative", path)
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Color == "" {
		c.Color = DefaultColorMode
	}
	if c.MaxCallDepth == nil {
		depth := DefaultMaxCallDepth
		c.MaxCallDepth = &depth
	}
	if c.REPL.Prompt == "" {
		c.REPL.Prompt = DefaultPrompt
	}
	if c.REPL.Continuation == "" {
		c.REPL.Continuation = DefaultContinuation
	}
	if c.REPL.HistoryFile == "" {
		c.REPL.HistoryFile = DefaultHistoryFile
	}
}
