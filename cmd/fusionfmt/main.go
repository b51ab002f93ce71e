package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues
	// safely. The logger is silenced; formatting runs are too short for
	// the notice to matter.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	env := DefaultEnv()
	code, err := run(os.Args[1:], env)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
	}
	os.Exit(code)
}
