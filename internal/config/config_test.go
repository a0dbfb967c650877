package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/lox/internal/config"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := config.ParseConfig([]byte(""), "lox.yaml")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, config.DefaultColorMode, cfg.Color)
	assert.Equal(t, config.DefaultMaxCallDepth, cfg.CallDepth())
	assert.Equal(t, config.DefaultPrompt, cfg.REPL.Prompt)
	assert.Equal(t, config.DefaultContinuation, cfg.REPL.Continuation)
	assert.Equal(t, config.DefaultHistoryFile, cfg.REPL.HistoryFile)

	assert.Equal(t, cfg, config.Default())
}

func TestParseConfigFields(t *testing.T) {
	data := `
log_level: debug
color: never
max_call_depth: 0
repl:
  prompt: "lox> "
  history_file: "-"
`
	cfg, err := config.ParseConfig([]byte(data), "lox.yaml")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "never", cfg.Color)
	assert.Equal(t, 0, cfg.CallDepth(), "an explicit 0 disables the limit")
	assert.Equal(t, "lox> ", cfg.REPL.Prompt)
	assert.Equal(t, config.DefaultContinuation, cfg.REPL.Continuation)
	assert.Equal(t, "-", cfg.REPL.HistoryFile)
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad yaml", "log_level: [", "parsing lox.yaml"},
		{"bad level", "log_level: loud", "log_level"},
		{"bad color", "color: sometimes", "color"},
		{"negative depth", "max_call_depth: -1", "max_call_depth"},
		{"depth not a number", "max_call_depth: deep", "parsing lox.yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.ParseConfig([]byte(tt.data), "lox.yaml")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestFindAndLoadConfig(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))

	path, err := config.FindConfig(nested)
	require.NoError(t, err)
	if path != "" {
		// A lox.yaml above the temp dir; nothing to assert about it.
		t.Skipf("found unrelated %s", path)
	}

	want := filepath.Join(root, config.ConfigFileName)
	require.NoError(t, os.WriteFile(want, []byte("color: always\n"), 0644))

	path, err = config.FindConfig(nested)
	require.NoError(t, err)
	assert.Equal(t, want, path)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "always", cfg.Color)

	_, err = config.LoadConfig(filepath.Join(root, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestExpandHome(t *testing.T) {
	assert.Equal(t, "/abs/path", config.ExpandHome("/abs/path"))
	assert.Equal(t, "-", config.ExpandHome("-"))

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	assert.Equal(t, filepath.Join(home, ".lox_history"), config.ExpandHome("~/.lox_history"))
}
