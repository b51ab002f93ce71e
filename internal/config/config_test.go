package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultOutputDir, cfg.Output.DefaultDir)
	assert.Equal(t, DefaultOutputSuffix, cfg.Output.Suffix)
	assert.Equal(t, DefaultLineEnding, cfg.Output.LineEnding)
	assert.Equal(t, DefaultToolsPath, cfg.Tools.Path)
	assert.False(t, cfg.Output.Timestamp)
	assert.Empty(t, cfg.Format.StartBlock)
	assert.Empty(t, cfg.Format.RedundantPatterns)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
output:
  defaultDir: cleaned
  lineEnding: crlf
  timestamp: true
format:
  startBlock:
    - START
    - "{program}"
  endBlock:
    - M99
    - "%"
  redundantPatterns:
    - value: G80
    - value: M30
      match: exact
  preambleMarkers:
    - T
tools:
  path: lathe-tools.yaml
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "cleaned", cfg.Output.DefaultDir)
	assert.Equal(t, "crlf", cfg.Output.LineEnding)
	assert.True(t, cfg.Output.Timestamp)
	assert.Equal(t, []string{"START", "{program}"}, cfg.Format.StartBlock)
	assert.Equal(t, []string{"M99", "%"}, cfg.Format.EndBlock)
	require.Len(t, cfg.Format.RedundantPatterns, 2)
	assert.Equal(t, "G80", cfg.Format.RedundantPatterns[0].Value)
	assert.Equal(t, "exact", cfg.Format.RedundantPatterns[1].Match)
	assert.Equal(t, "lathe-tools.yaml", cfg.Tools.Path)

	// Unset fields keep their defaults
	assert.Equal(t, DefaultOutputSuffix, cfg.Output.Suffix)
	assert.Equal(t, DefaultExtensionList, cfg.Input.Extensions)
}

func TestLoadConfigEmptyName(t *testing.T) {
	_, err := LoadConfig("")
	assert.ErrorIs(t, err, ErrEmptyConfigName)
}

func TestLoadConfigNotFound(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestLoadConfigNameNotFound(t *testing.T) {
	// A bare name is resolved against search paths; the error lists what
	// was tried.
	_, err := LoadConfig("definitely-not-a-real-config-name")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
	assert.Contains(t, err.Error(), "definitely-not-a-real-config-name.yaml")
}

func TestLoadConfigParseError(t *testing.T) {
	path := writeConfig(t, "output: [broken\n")
	_, err := LoadConfig(path)
	assert.ErrorIs(t, err, ErrConfigParse)
}

func TestLoadConfigRejectsUnknownFields(t *testing.T) {
	path := writeConfig(t, "outputs:\n  defaultDir: x\n")
	_, err := LoadConfig(path)
	assert.ErrorIs(t, err, ErrConfigParse)
}

func TestExtensions(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected []string
	}{
		{"defaults", DefaultExtensionList, []string{".nc", ".gcode", ".tap"}},
		{"missing dots added", "nc, gcode", []string{".nc", ".gcode"}},
		{"case normalized", ".NC,.Tap", []string{".nc", ".tap"}},
		{"empty entries skipped", ".nc,,", []string{".nc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Input.Extensions = tt.value
			assert.Equal(t, tt.expected, cfg.Extensions())
		})
	}
}
