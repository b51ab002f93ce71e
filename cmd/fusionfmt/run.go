package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	fusionfmt "github.com/dkarlsen/fusionfmt"
	"github.com/dkarlsen/fusionfmt/internal/config"
	"github.com/dkarlsen/fusionfmt/internal/hints"
)

// run parses arguments, resolves configuration, and formats the inputs.
// It returns the process exit code and an optional error to print.
func run(args []string, env *Environment) (int, error) {
	flags, positional, err := parseFlags(args)
	if err != nil {
		return ExitUsage, nil // pflag already printed the error and usage
	}

	if flags.version {
		fmt.Fprintf(env.Stdout, "fusionfmt %s\n", Version)
		return ExitSuccess, nil
	}

	if err := loadRunConfig(flags, env); err != nil {
		return exitCodeFor(err), decorateConfigError(err)
	}

	params, err := buildParams(flags, env)
	if err != nil {
		return exitCodeFor(err), err
	}

	inputPath, err := resolveInputPath(positional, env.Config)
	if err != nil {
		printUsage(env.Stderr)
		return exitCodeFor(err), err
	}

	files, err := discoverFiles(inputPath, params)
	if err != nil {
		if errors.Is(err, ErrNoFilesFound) {
			err = fmt.Errorf("%w%s", err, hints.ForNoFilesFound(params.extensions))
		}
		return exitCodeFor(err), err
	}

	svc := fusionfmt.New()
	results := formatFiles(context.Background(), svc, files, params)
	printResults(results, params, env)

	return exitCodeForResults(results), nil
}

// resolveInputPath picks the input from the positional argument or the
// configured default directory.
func resolveInputPath(positional []string, cfg *config.Config) (string, error) {
	if len(positional) > 0 {
		return positional[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// decorateConfigError appends a search-path hint to config lookup failures.
func decorateConfigError(err error) error {
	if !errors.Is(err, config.ErrConfigNotFound) {
		return err
	}
	// The error message carries the tried paths; reuse them for the hint.
	paths := strings.Split(err.Error(), ", ")
	hint := hints.ForConfigNotFound(paths)
	if hint == "" {
		return err
	}
	return fmt.Errorf("%w%s", err, hint)
}
