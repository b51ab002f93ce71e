package fusionfmt

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Tool detection and TOOL_KEY comment parsing.
var (
	toolCallRe = regexp.MustCompile(`^T(\d+)`)
	toolKeyRe  = regexp.MustCompile(`(?i)tool[\s_\-]*key\s*[:=]\s*(.+)`)
)

// Lookup windows for TOOL_KEY comments around a tool change.
const (
	toolKeyLookahead  = 30
	toolKeyLookbehind = 15
)

// IsToolCall reports whether the trimmed line is a tool change
// (T followed by at least two digits).
func IsToolCall(s string) bool {
	m := toolCallRe.FindStringSubmatch(s)
	return m != nil && len(m[1]) >= 2
}

// BlockNumberForTool derives the N-number heading a tool block from the
// first two digits of the tool number: T0700 -> N700, T0300 -> N300.
func BlockNumberForTool(toolLine string) string {
	m := toolCallRe.FindStringSubmatch(toolLine)
	if m == nil {
		return "N100"
	}
	digits := m[1]
	if len(digits) > 2 {
		digits = digits[:2]
	}
	num, err := strconv.Atoi(digits)
	if err != nil {
		num = 1
	}
	return fmt.Sprintf("N%d", num*100)
}

// ParseToolKey extracts a tool key from a parenthetical comment.
// Accepted forms: (TOOL_KEY=UDRILL50), (Tool Key: UDRILL50), (UDRILL50).
// The key is returned lowercased and trimmed; empty when the comment is
// blank.
func ParseToolKey(raw string) string {
	content := strings.TrimSpace(raw)
	content = strings.TrimPrefix(content, "(")
	content = strings.TrimSuffix(content, ")")
	content = strings.TrimSpace(content)

	if m := toolKeyRe.FindStringSubmatch(content); m != nil {
		content = strings.TrimSpace(m[1])
	}
	return strings.ToLower(content)
}

// BuildToolBlock returns the per-tool header emitted before a toolpath.
// Unknown keys get a minimal block without the speed/feed line so the
// operator sets parameters at the control.
func BuildToolBlock(toolLine, key string, db ToolDB) []string {
	tool, ok := db.Lookup(key)
	if !ok || key == "" {
		return []string{
			BlockNumberForTool(toolLine) + " " + DefaultToolDisplay,
			"G30U0W0",
			toolLine,
			"G140M08",
		}
	}

	tool = tool.withDefaults()
	return []string{
		BlockNumberForTool(toolLine) + " " + tool.Display,
		"G30U0W0",
		toolLine,
		"G140M08",
		fmt.Sprintf("G99%sS%sF%s", tool.Type, tool.Speed, tool.Feed),
	}
}

// toolpathClose is emitted after each toolpath: return to reference,
// optional stop.
var toolpathClose = []string{"G30U0W0", "M01", ""}

// InjectToolBlocks rewrites the body around tool changes: each tool call
// is replaced by its full header block, the previous toolpath is closed
// with G30U0W0+M01, parenthetical comments are consumed (they carry tool
// keys, not machining moves), and body M30/M99 lines are suppressed since
// the end block terminates the program. Returns the rewritten body and
// the number of tool changes seen.
func InjectToolBlocks(lines []string, db ToolDB) ([]string, int) {
	out := make([]string, 0, len(lines))
	toolChanges := 0

	var currentKey string
	activeTool := false

	for i := 0; i < len(lines); i++ {
		s := strings.TrimSpace(lines[i])

		// Comments carry tool keys; remember the latest and drop the line.
		if isComment(s) {
			if k := ParseToolKey(s); k != "" {
				currentKey = k
			}
			continue
		}

		if IsToolCall(s) {
			if activeTool {
				out = append(out, toolpathClose...)
			}

			key := currentKey
			if key == "" {
				key = findNearbyToolKey(lines, i)
			}

			out = append(out, BuildToolBlock(s, key, db)...)
			toolChanges++
			activeTool = true
			currentKey = ""
			continue
		}

		// End-of-program markers close the toolpath; the end block emits
		// the real M99.
		if s == "M30" || s == "M99" {
			if activeTool {
				out = append(out, toolpathClose...)
				activeTool = false
			}
			continue
		}

		out = append(out, s)
	}

	if activeTool {
		out = append(out, "G30U0W0", "M01")
	}

	return out, toolChanges
}

// isComment reports whether the trimmed line is a parenthetical comment.
func isComment(s string) bool {
	return strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")")
}

// findNearbyToolKey searches comments around a tool call for a key:
// ahead first (Fusion posts the tool note after the call), then behind.
func findNearbyToolKey(lines []string, i int) string {
	for j := i + 1; j < len(lines) && j <= i+toolKeyLookahead; j++ {
		s := strings.TrimSpace(lines[j])
		if isComment(s) {
			if k := ParseToolKey(s); k != "" {
				return k
			}
		}
	}
	for j := i - 1; j >= 0 && j >= i-toolKeyLookbehind; j-- {
		s := strings.TrimSpace(lines[j])
		if isComment(s) {
			if k := ParseToolKey(s); k != "" {
				return k
			}
		}
	}
	return ""
}
