package fusionfmt

import "strings"

// programNumberLine reports whether the trimmed line is an O-number
// program identifier (O followed by digits only).
func programNumberLine(s string) bool {
	if len(s) < 2 || s[0] != 'O' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// CaptureProgramNumber returns the first O-number line in the input, or
// FallbackProgramNumber when none exists.
func CaptureProgramNumber(lines []string) string {
	for _, line := range lines {
		if s := strings.TrimSpace(line); programNumberLine(s) {
			return s
		}
	}
	return FallbackProgramNumber
}

// StripPreamble removes every line before the first line matching a
// preamble marker prefix. Terminator lines never count as content and are
// dropped from the preamble region. When no marker matches, the input is
// returned unchanged (minus nothing): an unrecognizable file is passed
// through rather than emptied.
func StripPreamble(lines []string, markers []string) []string {
	if len(markers) == 0 {
		return lines
	}

	start := -1
	for i, line := range lines {
		s := strings.TrimSpace(line)
		if s == "" || s == Terminator {
			continue
		}
		if matchesMarker(s, markers) {
			start = i
			break
		}
	}
	if start < 0 {
		return lines
	}
	return lines[start:]
}

// matchesMarker reports whether the trimmed line starts real machining
// content. Comment lines never match: a "(TOOL...)" note is not a tool call.
func matchesMarker(s string, markers []string) bool {
	if strings.HasPrefix(s, "(") {
		return false
	}
	for _, m := range markers {
		if strings.HasPrefix(s, m) {
			return true
		}
	}
	return false
}
