package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across behaviors.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// outputFlags holds output naming and placement flags.
type outputFlags struct {
	dir             string
	suffix          string
	timestamp       bool
	timestampFormat string
	lineEnding      string
}

// rootFlags holds all CLI flags.
type rootFlags struct {
	common  commonFlags
	output  outputFlags
	tools   string
	version bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file line counts and timing")
}

// addOutputFlags adds output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.dir, "output", "o", "", "output directory (default: Output)")
	fs.StringVar(&f.suffix, "suffix", "", "output base-name suffix (default: _cleaned)")
	fs.BoolVar(&f.timestamp, "timestamp", false, "append a run timestamp to output names")
	fs.StringVar(&f.timestampFormat, "timestamp-format", "", "timestamp token format (default: HH-MM-SS_DD-MM-YYYY)")
	fs.StringVar(&f.lineEnding, "line-ending", "", "output line ending: lf, crlf")
}

// parseFlags parses CLI flags and returns positional args.
func parseFlags(args []string) (*rootFlags, []string, error) {
	fs := flag.NewFlagSet("fusionfmt", flag.ContinueOnError)
	f := &rootFlags{}

	addCommonFlags(fs, &f.common)
	addOutputFlags(fs, &f.output)
	fs.StringVar(&f.tools, "tools", "", "tool database YAML path (default: tools.yaml)")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
