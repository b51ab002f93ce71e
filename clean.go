package fusionfmt

import "strings"

// relevantPrefixes are the line starts that carry machining content:
// G/M-codes under G, block numbers, tool calls, program numbers, comments.
var relevantPrefixes = []string{"G", "N", "T", "O", "("}

// relevantExact are lines kept verbatim even though they match no prefix.
// M30/M99 pass through here so the tool injector can close toolpaths on
// them before the footer supplies the real program end.
var relevantExact = map[string]bool{
	Terminator: true,
	"M99":      true,
	"M30":      true,
}

// FilterRelevant keeps machining-relevant lines, trimmed, and drops blanks
// and post-processor chatter. Returns the kept lines and the removed count.
func FilterRelevant(lines []string) ([]string, int) {
	kept := make([]string, 0, len(lines))
	removed := 0
	for _, line := range lines {
		s := strings.TrimSpace(line)
		if s == "" {
			continue
		}
		if isRelevant(s) {
			kept = append(kept, s)
		} else {
			removed++
		}
	}
	return kept, removed
}

// isRelevant reports whether a trimmed, non-empty line is machining content.
func isRelevant(s string) bool {
	if relevantExact[s] {
		return true
	}
	for _, p := range relevantPrefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// CollapseBlankLines limits consecutive blank lines to one.
func CollapseBlankLines(lines []string) []string {
	tidy := make([]string, 0, len(lines))
	prevBlank := false
	for _, line := range lines {
		if line == "" {
			if !prevBlank {
				tidy = append(tidy, "")
			}
			prevBlank = true
			continue
		}
		tidy = append(tidy, line)
		prevBlank = false
	}
	return tidy
}

// RemoveRedundant drops lines matching any of the patterns. Order of
// surviving lines is preserved. Returns the survivors and the removed count.
func RemoveRedundant(lines []string, patterns []Pattern) ([]string, int) {
	if len(patterns) == 0 {
		return lines, 0
	}
	filtered := make([]string, 0, len(lines))
	removed := 0
	for _, line := range lines {
		if matchesAny(line, patterns) {
			removed++
			continue
		}
		filtered = append(filtered, line)
	}
	return filtered, removed
}

// matchesAny reports whether the line matches at least one pattern.
func matchesAny(line string, patterns []Pattern) bool {
	for _, p := range patterns {
		if p.Matches(line) {
			return true
		}
	}
	return false
}
