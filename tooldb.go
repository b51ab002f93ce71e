package fusionfmt

import (
	"fmt"
	"os"
	"strings"

	"github.com/dkarlsen/fusionfmt/internal/yamlutil"
)

// Tool default cutting parameters, used when the database entry omits them.
const (
	DefaultToolDisplay = "(UNKNOWN TOOL)"
	DefaultToolType    = "G96"
	DefaultToolSpeed   = "200"
	DefaultToolFeed    = ".25"
)

// Tool holds the cutting parameters for one tool key.
type Tool struct {
	Display string `yaml:"display"` // operator-readable comment, e.g. "(U-DRILL 50MM)"
	Type    string `yaml:"type"`    // spindle mode: "G96" or "G97"
	Speed   string `yaml:"speed"`   // surface speed or RPM
	Feed    string `yaml:"feed"`    // feed per revolution
}

// ToolDB maps lowercased tool keys to cutting parameters.
type ToolDB map[string]Tool

// LoadToolDB reads a YAML tool database and normalizes keys to lowercase.
// Returns ErrToolDBNotFound when the path does not exist so callers can
// treat a missing database as non-fatal.
func LoadToolDB(path string) (ToolDB, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- tool database path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrToolDBNotFound, path)
		}
		return nil, fmt.Errorf("reading tool database: %w", err)
	}

	var raw map[string]Tool
	if err := yamlutil.UnmarshalStrict(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrToolDBParse, err)
	}

	db := make(ToolDB, len(raw))
	for k, v := range raw {
		db[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return db, nil
}

// Lookup returns the tool for a key, case-insensitively.
func (db ToolDB) Lookup(key string) (Tool, bool) {
	t, ok := db[strings.ToLower(strings.TrimSpace(key))]
	return t, ok
}

// withDefaults fills empty tool fields with the package defaults.
func (t Tool) withDefaults() Tool {
	if t.Display == "" {
		t.Display = DefaultToolDisplay
	}
	if t.Type == "" {
		t.Type = DefaultToolType
	}
	if t.Speed == "" {
		t.Speed = DefaultToolSpeed
	}
	if t.Feed == "" {
		t.Feed = DefaultToolFeed
	}
	return t
}
