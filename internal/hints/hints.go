// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/fusionfmt/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/fusionfmt") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForToolDBNotFound returns hints for a missing tool database.
func ForToolDBNotFound(path string) string {
	return format("create " + path + " or pass --tools; formatting continues with (UNKNOWN TOOL) blocks")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForNoFilesFound returns hints when a directory scan matches nothing.
func ForNoFilesFound(extensions []string) string {
	if len(extensions) == 0 {
		return ""
	}
	return format("looked for " + strings.Join(extensions, ", ") + " files; adjust input.extensions in config")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
