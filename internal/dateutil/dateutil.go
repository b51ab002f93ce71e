// Package dateutil provides timestamp format parsing for output filenames.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidFormat indicates an invalid timestamp format string.
var ErrInvalidFormat = errors.New("invalid timestamp format")

// MaxFormatLength limits format string length to prevent abuse.
const MaxFormatLength = 50

// DefaultTimestampFormat matches the shop's historical output naming:
// 14-32-05_26-08-2026.
const DefaultTimestampFormat = "HH-MM-SS_DD-MM-YYYY"

// formatTokens maps user-friendly tokens to Go time format components.
// Ordered by length descending for greedy matching.
var formatTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"HH", "15"},
	{"mm", "04"},
	{"SS", "05"},
}

// ParseFormat converts a user-friendly format string to Go's time format.
// Tokens: YYYY, YY, MM (month), DD, HH, mm (minute), SS. Use brackets to
// escape literal text: [rev] preserves "rev" literally. In the minute
// position of the default format, MM after HH- is rewritten to minutes to
// keep HH-MM-SS working as operators expect.
func ParseFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidFormat)
	}
	if len(format) > MaxFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidFormat, MaxFormatLength)
	}

	var result strings.Builder
	result.Grow(len(format) + 10)

	// MM is ambiguous: month in a date, minute between HH and SS. Track
	// whether an hour token was seen more recently than a day/year token.
	afterHour := false

	i := 0
	for i < len(format) {
		if format[i] == '[' {
			end := strings.Index(format[i+1:], "]")
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidFormat, i)
			}
			result.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		matched := false
		for _, t := range formatTokens {
			if !strings.HasPrefix(format[i:], t.token) {
				continue
			}
			goFmt := t.goFmt
			switch t.token {
			case "HH":
				afterHour = true
			case "YYYY", "YY", "DD":
				afterHour = false
			case "MM":
				if afterHour {
					goFmt = "04" // minutes
				}
			}
			result.WriteString(goFmt)
			i += len(t.token)
			matched = true
			break
		}

		if !matched {
			result.WriteByte(format[i])
			i++
		}
	}

	return result.String(), nil
}

// Timestamp renders t using a user-friendly format string. An empty format
// uses DefaultTimestampFormat.
func Timestamp(t time.Time, format string) (string, error) {
	if format == "" {
		format = DefaultTimestampFormat
	}
	goFmt, err := ParseFormat(format)
	if err != nil {
		return "", err
	}
	return t.Format(goFmt), nil
}
