package fusionfmt

import (
	"regexp"
	"strings"
)

// Precompiled patterns for line normalization.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// SplitLines normalizes line endings and splits content into lines.
// Empty content yields no lines rather than a single empty line.
func SplitLines(content string) []string {
	normalized := NormalizeLineEndings(content)
	if normalized == "" {
		return nil
	}
	return strings.Split(normalized, "\n")
}
