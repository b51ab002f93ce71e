package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	fusionfmt "github.com/dkarlsen/fusionfmt"
	"github.com/dkarlsen/fusionfmt/internal/fileutil"
	"github.com/dkarlsen/fusionfmt/internal/hints"
)

// Sentinel errors for batch operations.
var (
	ErrReadInput   = errors.New("failed to read input file")
	ErrWriteOutput = errors.New("failed to write output file")
)

// Formatter is the interface for the formatting service.
type Formatter interface {
	Format(ctx context.Context, input fusionfmt.Input) (*fusionfmt.Result, error)
}

// Compile-time interface implementation check.
var _ Formatter = (*fusionfmt.Service)(nil)

// FormatResult holds the outcome of formatting a single file.
type FormatResult struct {
	InputPath  string
	OutputPath string
	Stats      fusionfmt.Stats
	Err        error
	Duration   time.Duration
}

// formatFiles processes files strictly in order. One file's failure does
// not stop the batch; every file gets a result.
func formatFiles(ctx context.Context, svc Formatter, files []FileToFormat, params *runParams) []FormatResult {
	results := make([]FormatResult, len(files))
	for i, f := range files {
		if ctx.Err() != nil {
			results[i] = FormatResult{InputPath: f.InputPath, Err: ctx.Err()}
			continue
		}
		results[i] = formatFile(ctx, svc, f, params)
	}
	return results
}

// formatFile reads, formats, and atomically writes one NC file.
func formatFile(ctx context.Context, svc Formatter, f FileToFormat, params *runParams) (result FormatResult) {
	start := time.Now()
	result = FormatResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	defer func() { result.Duration = time.Since(start) }()

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadInput, err)
		return result
	}

	formatted, err := svc.Format(ctx, fusionfmt.Input{
		Source:            string(content),
		Templates:         params.templates,
		RedundantPatterns: params.patterns,
		PreambleMarkers:   params.markers,
		Tools:             params.tools,
	})
	if err != nil {
		result.Err = err
		return result
	}
	result.Stats = formatted.Stats

	if err := fileutil.EnsureDir(filepath.Dir(f.OutputPath)); err != nil {
		result.Err = fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
		return result
	}
	if err := fileutil.WriteFileAtomic(f.OutputPath, []byte(formatted.Render(params.lineEnding))); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
		return result
	}

	return result
}

// ResultSummary holds the count of succeeded and failed files.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed files.
func countResults(results []FormatResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults writes per-file outcomes and a batch summary.
func printResults(results []FormatResult, params *runParams, env *Environment) {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}
		if params.quiet {
			continue
		}
		if params.verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%s, %d tools, %d redundant lines removed, %v)\n",
				r.InputPath, r.OutputPath, r.Stats.ProgramNumber, r.Stats.ToolChanges,
				r.Stats.Redundant, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "%s -> %s\n", r.InputPath, r.OutputPath)
		}
	}

	if !params.quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "%d formatted, %d failed\n", summary.Succeeded, summary.Failed)
	}
}
