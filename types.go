package fusionfmt

import (
	"fmt"
	"strings"
)

// Line ending constants.
const (
	LineEndingLF   = "lf"
	LineEndingCRLF = "crlf"
)

// Pattern match mode constants.
const (
	MatchPrefix = "prefix"
	MatchExact  = "exact"
)

// Terminator is the FANUC program start/end character.
const Terminator = "%"

// Pattern identifies lines to remove from the program body.
type Pattern struct {
	Value string // text to match against the trimmed line
	Match string // "prefix" (default) or "exact"
}

// Validate checks that the pattern is well-formed.
func (p Pattern) Validate() error {
	if p.Value == "" {
		return fmt.Errorf("%w: empty value", ErrInvalidPattern)
	}
	switch p.Match {
	case "", MatchPrefix, MatchExact:
		return nil
	default:
		return fmt.Errorf("%w: unknown match mode %q", ErrInvalidPattern, p.Match)
	}
}

// Matches reports whether the trimmed line matches the pattern.
func (p Pattern) Matches(line string) bool {
	s := strings.TrimSpace(line)
	if p.Match == MatchExact {
		return s == p.Value
	}
	return strings.HasPrefix(s, p.Value)
}

// ProgramNumberToken is replaced in start-block lines by the O-number
// captured from the input (or the fallback O0000).
const ProgramNumberToken = "{program}"

// Templates holds the literal start and end blocks wrapped around the body.
type Templates struct {
	StartBlock []string
	EndBlock   []string
}

// DefaultStartBlock returns the standard lathe program header.
// The {program} token is replaced by the captured program number.
func DefaultStartBlock() []string {
	return []string{
		"START",
		"%",
		ProgramNumberToken,
		"N01G50S2000",
		"N02G28U0",
		"N03G28W0",
		"N04M00",
		"",
	}
}

// DefaultEndBlock returns the standard lathe program footer.
func DefaultEndBlock() []string {
	return []string{
		"",
		"M05S1500",
		"G28U0W0M40",
		"M99",
		"%",
	}
}

// DefaultRedundantPatterns returns the setup codes the start block already
// covers. G96/G97 are stripped as prefixes so injected G99G96... speed
// lines survive.
func DefaultRedundantPatterns() []Pattern {
	return []Pattern{
		{Value: "G80"},
		{Value: "G54"},
		{Value: "G50"},
		{Value: "G90"},
		{Value: "G95"},
		{Value: "G18"},
		{Value: "G96"},
		{Value: "G97"},
	}
}

// DefaultPreambleMarkers returns the line prefixes that mark the start of
// real machining content. Everything before the first match is preamble.
func DefaultPreambleMarkers() []string {
	return []string{"T"}
}

// FallbackProgramNumber is used when the input carries no O-number.
const FallbackProgramNumber = "O0000"

// Input contains formatting parameters for one NC program.
type Input struct {
	Source            string    // raw NC text (may be empty)
	Templates         Templates // start/end blocks (zero = defaults)
	RedundantPatterns []Pattern // nil = defaults; empty non-nil = none
	PreambleMarkers   []string  // nil = defaults; empty non-nil = no stripping
	Tools             ToolDB    // optional cutting-parameter database
}

// Stats reports what the pipeline did to one program.
type Stats struct {
	LinesIn       int    // lines in the raw input
	LinesKept     int    // lines surviving the relevance filter
	Redundant     int    // lines removed as redundant setup codes
	ToolChanges   int    // tool headers injected
	ProgramNumber string // captured O-number (or the fallback)
}

// Result holds the formatted program.
type Result struct {
	Lines []string
	Stats Stats
}

// Render joins the result lines using the given line ending and appends a
// final newline. Callers should validate the ending with ValidateLineEnding.
func (r *Result) Render(lineEnding string) string {
	sep := "\n"
	if lineEnding == LineEndingCRLF {
		sep = "\r\n"
	}
	return strings.Join(r.Lines, sep) + sep
}

// ValidateLineEnding checks that the value names a supported line ending.
func ValidateLineEnding(v string) error {
	switch v {
	case LineEndingLF, LineEndingCRLF:
		return nil
	default:
		return fmt.Errorf("%w: %q (must be %s or %s)", ErrInvalidLineEnding, v, LineEndingLF, LineEndingCRLF)
	}
}

// Option configures a Service.
type Option func(*Service)
