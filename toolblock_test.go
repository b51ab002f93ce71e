package fusionfmt

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIsToolCall(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"T0101", true},
		{"T07", true},
		{"T0700M06", true},
		{"T1", false},
		{"TOOL", false},
		{"G0T0101", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if got := IsToolCall(tt.line); got != tt.want {
				t.Errorf("IsToolCall(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestBlockNumberForTool(t *testing.T) {
	tests := []struct {
		toolLine string
		want     string
	}{
		{"T0700", "N700"},
		{"T0300", "N300"},
		{"T0101", "N100"},
		{"T12", "N1200"},
		{"T7", "N700"},
		{"no tool", "N100"},
	}

	for _, tt := range tests {
		t.Run(tt.toolLine, func(t *testing.T) {
			if got := BlockNumberForTool(tt.toolLine); got != tt.want {
				t.Errorf("BlockNumberForTool(%q) = %q, want %q", tt.toolLine, got, tt.want)
			}
		})
	}
}

func TestParseToolKey(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"key-value form", "(TOOL_KEY=UDRILL50)", "udrill50"},
		{"spaced key-value", "(TOOL_KEY = UDRILL50)", "udrill50"},
		{"colon form", "(Tool Key: UDRILL50)", "udrill50"},
		{"hyphenated label", "(tool-key=CNMG432)", "cnmg432"},
		{"bare key", "(UDRILL50)", "udrill50"},
		{"surrounding whitespace", "  ( UDRILL50 )  ", "udrill50"},
		{"empty comment", "()", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseToolKey(tt.raw); got != tt.want {
				t.Errorf("ParseToolKey(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func testToolDB() ToolDB {
	return ToolDB{
		"udrill50": {Display: "(U-DRILL 50MM)", Type: "G97", Speed: "450", Feed: ".12"},
		"cnmg432":  {Display: "(CNMG 432 ROUGHER)"},
	}
}

func TestBuildToolBlock(t *testing.T) {
	tests := []struct {
		name     string
		toolLine string
		key      string
		expected []string
	}{
		{
			name:     "known tool gets full header",
			toolLine: "T0700",
			key:      "UDRILL50",
			expected: []string{"N700 (U-DRILL 50MM)", "G30U0W0", "T0700", "G140M08", "G99G97S450F.12"},
		},
		{
			name:     "sparse entry falls back to default cutting parameters",
			toolLine: "T0300",
			key:      "cnmg432",
			expected: []string{"N300 (CNMG 432 ROUGHER)", "G30U0W0", "T0300", "G140M08", "G99G96S200F.25"},
		},
		{
			name:     "unknown key gets minimal block",
			toolLine: "T0500",
			key:      "missing",
			expected: []string{"N500 (UNKNOWN TOOL)", "G30U0W0", "T0500", "G140M08"},
		},
		{
			name:     "empty key gets minimal block",
			toolLine: "T0500",
			key:      "",
			expected: []string{"N500 (UNKNOWN TOOL)", "G30U0W0", "T0500", "G140M08"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildToolBlock(tt.toolLine, tt.key, testToolDB())
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("BuildToolBlock() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInjectToolBlocks(t *testing.T) {
	tests := []struct {
		name      string
		input     []string
		expected  []string
		wantTools int
	}{
		{
			name:      "empty body",
			input:     nil,
			expected:  []string{},
			wantTools: 0,
		},
		{
			name:  "key comment before tool call",
			input: []string{"(TOOL_KEY=UDRILL50)", "T0700", "G0X10"},
			expected: []string{
				"N700 (U-DRILL 50MM)", "G30U0W0", "T0700", "G140M08", "G99G97S450F.12",
				"G0X10",
				"G30U0W0", "M01",
			},
			wantTools: 1,
		},
		{
			name:  "key found by lookahead",
			input: []string{"T0700", "G0X10", "(TOOL_KEY=UDRILL50)", "G1Z-5"},
			expected: []string{
				"N700 (U-DRILL 50MM)", "G30U0W0", "T0700", "G140M08", "G99G97S450F.12",
				"G0X10",
				"G1Z-5",
				"G30U0W0", "M01",
			},
			wantTools: 1,
		},
		{
			name: "second tool closes the first toolpath",
			input: []string{
				"(TOOL_KEY=UDRILL50)", "T0700", "G0X10",
				"(TOOL_KEY=CNMG432)", "T0300", "G1Z-5",
			},
			expected: []string{
				"N700 (U-DRILL 50MM)", "G30U0W0", "T0700", "G140M08", "G99G97S450F.12",
				"G0X10",
				"G30U0W0", "M01", "",
				"N300 (CNMG 432 ROUGHER)", "G30U0W0", "T0300", "G140M08", "G99G96S200F.25",
				"G1Z-5",
				"G30U0W0", "M01",
			},
			wantTools: 2,
		},
		{
			name:  "M30 closes the toolpath and is suppressed",
			input: []string{"T0500", "G0X10", "M30"},
			expected: []string{
				"N500 (UNKNOWN TOOL)", "G30U0W0", "T0500", "G140M08",
				"G0X10",
				"G30U0W0", "M01", "",
			},
			wantTools: 1,
		},
		{
			name:      "M99 suppressed outside a toolpath",
			input:     []string{"G0X10", "M99"},
			expected:  []string{"G0X10"},
			wantTools: 0,
		},
		{
			name:      "plain comments are consumed",
			input:     []string{"(SETUP NOTES)", "G0X10"},
			expected:  []string{"G0X10"},
			wantTools: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, tools := InjectToolBlocks(tt.input, testToolDB())
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("InjectToolBlocks() mismatch (-want +got):\n%s", diff)
			}
			if tools != tt.wantTools {
				t.Errorf("InjectToolBlocks() tools = %d, want %d", tools, tt.wantTools)
			}
		})
	}
}

func TestInjectToolBlocksRemembersEarlierKey(t *testing.T) {
	// The most recent key comment applies even when machining lines sit
	// between it and the tool call.
	input := []string{"G0X50", "(UDRILL50)", "G0Z5", "T0700"}
	got, tools := InjectToolBlocks(input, testToolDB())

	want := []string{
		"G0X50",
		"G0Z5",
		"N700 (U-DRILL 50MM)", "G30U0W0", "T0700", "G140M08", "G99G97S450F.12",
		"G30U0W0", "M01",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("InjectToolBlocks() mismatch (-want +got):\n%s", diff)
	}
	if tools != 1 {
		t.Errorf("InjectToolBlocks() tools = %d, want 1", tools)
	}
}

func TestInjectToolBlocksLookbehind(t *testing.T) {
	// The second tool has no key of its own; the backward search reuses
	// the nearest earlier key comment.
	input := []string{"(UDRILL50)", "T0700", "G0X10", "T0300"}
	got, tools := InjectToolBlocks(input, testToolDB())

	want := []string{
		"N700 (U-DRILL 50MM)", "G30U0W0", "T0700", "G140M08", "G99G97S450F.12",
		"G0X10",
		"G30U0W0", "M01", "",
		"N300 (U-DRILL 50MM)", "G30U0W0", "T0300", "G140M08", "G99G97S450F.12",
		"G30U0W0", "M01",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("InjectToolBlocks() mismatch (-want +got):\n%s", diff)
	}
	if tools != 2 {
		t.Errorf("InjectToolBlocks() tools = %d, want 2", tools)
	}
}
