package main

import (
	"errors"
	"fmt"

	fusionfmt "github.com/dkarlsen/fusionfmt"
	"github.com/dkarlsen/fusionfmt/internal/config"
	"github.com/dkarlsen/fusionfmt/internal/dateutil"
	"github.com/dkarlsen/fusionfmt/internal/hints"
)

// runParams is the merged view of config file and CLI flags for one run.
type runParams struct {
	outputDir  string
	suffix     string
	timestamp  string // rendered timestamp fragment, empty when disabled
	lineEnding string
	extensions []string

	templates fusionfmt.Templates
	patterns  []fusionfmt.Pattern
	markers   []string
	tools     fusionfmt.ToolDB

	quiet   bool
	verbose bool
}

// buildParams merges CLI flags over the loaded config. Flags win; empty
// flag values defer to config; empty config values defer to library
// defaults (left nil here, resolved inside the service).
func buildParams(flags *rootFlags, env *Environment) (*runParams, error) {
	cfg := env.Config

	p := &runParams{
		outputDir:  firstNonEmpty(flags.output.dir, cfg.Output.DefaultDir),
		suffix:     firstNonEmpty(flags.output.suffix, cfg.Output.Suffix),
		lineEnding: firstNonEmpty(flags.output.lineEnding, cfg.Output.LineEnding),
		extensions: cfg.Extensions(),
		quiet:      flags.common.quiet,
		verbose:    flags.common.verbose,
	}

	if err := fusionfmt.ValidateLineEnding(p.lineEnding); err != nil {
		return nil, err
	}

	if flags.output.timestamp || cfg.Output.Timestamp {
		format := firstNonEmpty(flags.output.timestampFormat, cfg.Output.TimestampFormat)
		ts, err := dateutil.Timestamp(env.Now(), format)
		if err != nil {
			return nil, err
		}
		p.timestamp = "_" + ts
	}

	p.templates = fusionfmt.Templates{
		StartBlock: cfg.Format.StartBlock,
		EndBlock:   cfg.Format.EndBlock,
	}
	p.markers = cfg.Format.PreambleMarkers

	if len(cfg.Format.RedundantPatterns) > 0 {
		p.patterns = make([]fusionfmt.Pattern, 0, len(cfg.Format.RedundantPatterns))
		for _, pc := range cfg.Format.RedundantPatterns {
			pat := fusionfmt.Pattern{Value: pc.Value, Match: pc.Match}
			if err := pat.Validate(); err != nil {
				return nil, err
			}
			p.patterns = append(p.patterns, pat)
		}
	}

	toolsPath := firstNonEmpty(flags.tools, cfg.Tools.Path)
	db, err := fusionfmt.LoadToolDB(toolsPath)
	switch {
	case errors.Is(err, fusionfmt.ErrToolDBNotFound):
		// Not fatal: format with unknown-tool blocks, matching shop practice
		// of filling parameters at the control.
		if !p.quiet {
			fmt.Fprintf(env.Stderr, "no tool database at %s%s\n", toolsPath, hints.ForToolDBNotFound(toolsPath))
		}
	case err != nil:
		return nil, err
	default:
		p.tools = db
	}

	return p, nil
}

// loadRunConfig loads the config named by flags into the environment.
// Without --config the compiled-in defaults apply.
func loadRunConfig(flags *rootFlags, env *Environment) error {
	if flags.common.config == "" {
		return nil
	}
	cfg, err := config.LoadConfig(flags.common.config)
	if err != nil {
		return err
	}
	env.Config = cfg
	return nil
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
