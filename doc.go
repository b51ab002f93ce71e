// Package fusionfmt rewrites Fusion 360 post-processor output for
// FANUC-style lathe controls.
//
// # Quick Start
//
// Create a service and format a program:
//
//	svc := fusionfmt.New()
//	result, err := svc.Format(ctx, fusionfmt.Input{
//	    Source: ncText,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("cleaned.nc", []byte(result.Render(fusionfmt.LineEndingLF)), 0o644)
//
// # Formatting Pipeline
//
// The formatter follows these stages:
//
//  1. Line normalization (CRLF/CR to LF, split into lines)
//  2. Relevance filtering (keep machining-relevant lines only)
//  3. Preamble stripping (drop CAM boilerplate before the first tool call,
//     capture the O-number program identifier)
//  4. Redundant-code removal (configured prefix/exact patterns)
//  5. Tool-block injection (per-tool headers from the tool database,
//     G30U0W0+M01 after each toolpath)
//  6. Start/end block injection and terminator normalization (the output
//     always ends with a single "%" line)
//
// # Configuration
//
// Input carries the template blocks, redundant patterns, preamble markers,
// and tool database. Zero values fall back to the deployment defaults
// (DefaultStartBlock, DefaultEndBlock, DefaultRedundantPatterns,
// DefaultPreambleMarkers).
//
// # Tool Database
//
// Tool headers are built from a ToolDB, a map of tool keys to cutting
// parameters loaded from YAML via LoadToolDB. A missing database is not an
// error: unknown tools get a minimal header marked "(UNKNOWN TOOL)".
package fusionfmt
