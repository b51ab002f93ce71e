package fusionfmt

import "strings"

// StripTerminators removes stray "%" lines from the body. Fusion output
// sometimes carries mid-file terminators; the end block supplies the real
// one. Returns the survivors and the removed count.
func StripTerminators(lines []string) ([]string, int) {
	out := make([]string, 0, len(lines))
	removed := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == Terminator {
			removed++
			continue
		}
		out = append(out, line)
	}
	return out, removed
}

// InjectTemplates wraps the body with the start and end blocks. Start-block
// lines containing the {program} token get the captured program number
// substituted; everything else is copied verbatim.
func InjectTemplates(body []string, tmpl Templates, programNumber string) []string {
	out := make([]string, 0, len(tmpl.StartBlock)+len(body)+len(tmpl.EndBlock))
	for _, line := range tmpl.StartBlock {
		out = append(out, strings.ReplaceAll(line, ProgramNumberToken, programNumber))
	}
	out = append(out, body...)
	out = append(out, tmpl.EndBlock...)
	return out
}

// EnsureFinalTerminator guarantees the program ends with exactly one "%"
// line: trailing duplicates are collapsed and a missing terminator is
// appended.
func EnsureFinalTerminator(lines []string) []string {
	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == Terminator {
		end--
	}
	return append(lines[:end:end], Terminator)
}
