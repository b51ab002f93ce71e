// Package config loads fusionfmt configuration from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dkarlsen/fusionfmt/internal/fileutil"
	"github.com/dkarlsen/fusionfmt/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Defaults applied when the config file leaves fields empty.
const (
	DefaultOutputDir     = "Output"
	DefaultOutputSuffix  = "_cleaned"
	DefaultLineEnding    = "lf"
	DefaultToolsPath     = "tools.yaml"
	DefaultExtensionList = ".nc,.gcode,.tap"
)

// Config holds all configuration for NC formatting.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Format FormatConfig `yaml:"format"`
	Tools  ToolsConfig  `yaml:"tools"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
	Extensions string `yaml:"extensions"` // Comma-separated NC extensions to pick up in directory scans
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir      string `yaml:"defaultDir"`      // Output directory (default "Output")
	Suffix          string `yaml:"suffix"`          // Appended to the base name (default "_cleaned")
	Timestamp       bool   `yaml:"timestamp"`       // Append a run timestamp to the base name
	TimestampFormat string `yaml:"timestampFormat"` // Token format, empty = HH-MM-SS_DD-MM-YYYY
	LineEnding      string `yaml:"lineEnding"`      // "lf" or "crlf" (default "lf")
}

// FormatConfig defines the transformation itself. Empty slices fall back
// to the library defaults; the values here come from the deployment's shop
// conventions, not from the code.
type FormatConfig struct {
	StartBlock        []string        `yaml:"startBlock"`
	EndBlock          []string        `yaml:"endBlock"`
	RedundantPatterns []PatternConfig `yaml:"redundantPatterns"`
	PreambleMarkers   []string        `yaml:"preambleMarkers"`
}

// PatternConfig defines one redundant-line pattern.
type PatternConfig struct {
	Value string `yaml:"value"`
	Match string `yaml:"match"` // "prefix" (default) or "exact"
}

// ToolsConfig defines tool database options.
type ToolsConfig struct {
	Path string `yaml:"path"` // Tool database YAML (default "tools.yaml")
}

// DefaultConfig returns a neutral configuration. Format fields stay empty
// so the library defaults apply.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{Extensions: DefaultExtensionList},
		Output: OutputConfig{
			DefaultDir: DefaultOutputDir,
			Suffix:     DefaultOutputSuffix,
			LineEnding: DefaultLineEnding,
		},
		Tools: ToolsConfig{Path: DefaultToolsPath},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns error if the file is not found (no silent fallback).
// Empty fields in the loaded file fall back to the defaults.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		configPath = resolved
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	cfg.applyDefaults()

	return cfg, nil
}

// applyDefaults restores defaults for fields the file set to empty.
func (c *Config) applyDefaults() {
	if c.Input.Extensions == "" {
		c.Input.Extensions = DefaultExtensionList
	}
	if c.Output.DefaultDir == "" {
		c.Output.DefaultDir = DefaultOutputDir
	}
	if c.Output.Suffix == "" {
		c.Output.Suffix = DefaultOutputSuffix
	}
	if c.Output.LineEnding == "" {
		c.Output.LineEnding = DefaultLineEnding
	}
	if c.Tools.Path == "" {
		c.Tools.Path = DefaultToolsPath
	}
}

// Extensions returns the configured NC file extensions, normalized to
// lowercase with a leading dot.
func (c *Config) Extensions() []string {
	parts := strings.Split(c.Input.Extensions, ",")
	exts := make([]string, 0, len(parts))
	for _, p := range parts {
		e := strings.ToLower(strings.TrimSpace(p))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		exts = append(exts, e)
	}
	return exts
}

// resolveConfigPath searches for a config file by name in standard
// locations. Tries extensions in order: .yaml, .yml. Tries locations in
// order: current directory, ~/.config/fusionfmt/.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "fusionfmt", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
