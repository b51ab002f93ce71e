package main

import (
	"fmt"
	"io"
)

// printUsage writes the CLI usage text.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `fusionfmt - clean Fusion 360 NC output for FANUC lathe controls

Usage:
  fusionfmt [flags] <input>

The input is a single NC file or a directory. Directories are walked
recursively; every matching file (.nc, .gcode, .tap by default) is
formatted into the output directory. Files are processed one at a time;
a failed file is reported and the batch continues.

Flags:
  -o, --output DIR          output directory (default: Output)
  -c, --config NAME|PATH    config file name or path
      --tools PATH          tool database YAML (default: tools.yaml)
      --suffix TEXT         output base-name suffix (default: _cleaned)
      --timestamp           append a run timestamp to output names
      --timestamp-format F  timestamp tokens, e.g. HH-MM-SS_DD-MM-YYYY
      --line-ending MODE    output line ending: lf, crlf
  -q, --quiet               only show errors
  -v, --verbose             show per-file line counts and timing
      --version             print version and exit
  -h, --help                show this help

Exit codes:
  0  all files formatted
  1  unexpected error
  2  invalid flags, config, or validation
  3  I/O error (unreadable input, write failure)

Examples:
  fusionfmt part1.nc
  fusionfmt -o cleaned --timestamp ./posts
  fusionfmt -c shopfloor --tools lathe-tools.yaml ./posts
`)
}
