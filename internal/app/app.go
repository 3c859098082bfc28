// Package app wires hashsum application execution.
package app

import (
	"fmt"
	"os"
	"slices"

	"hashsum/internal/cli"
	apperrors "hashsum/internal/errors"
	"hashsum/internal/logging"
)

// App wires CLI execution.
type App struct{}

// New creates an App.
func New() App {
	return App{}
}

// Run executes the application and returns a process exit code.
func (a App) Run(args []string) int {
	logger := logging.New(os.Stderr, logging.Level(verboseRequested(args)))

	root := cli.NewOSRootCommand(logger)
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return apperrors.ExitCode(err)
	}

	return 0
}

// verboseRequested scans ahead of flag parsing so the logger exists
// before any command runs.
func verboseRequested(args []string) bool {
	return slices.Contains(args, "--verbose")
}
