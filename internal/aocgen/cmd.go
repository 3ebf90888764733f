package aocgen

import (
	"errors"
	"fmt"

	"github.com/aockit/aocgen/internal/cmd/factory"
	"github.com/aockit/aocgen/internal/cmd/root"
	"github.com/aockit/aocgen/internal/cmdutil"
	"github.com/aockit/aocgen/internal/logger"
)

// Build-time variables injected via ldflags
var (
	Version   = "dev"
	BuildDate = ""
)

const (
	exitOK    = 0
	exitError = 1
)

// Main is the entry point for the aocgen CLI.
// It initializes the Factory, creates the root command, and executes it.
func Main() int {
	// Ensure logs are flushed on exit
	defer logger.CloseFileWriter()

	f := factory.New(Version, BuildDate)

	rootCmd, err := root.NewCmdRoot(f, Version, BuildDate)
	if err != nil {
		fmt.Fprintf(f.IOStreams.ErrOut, "Error: %v\n", err)
		return exitError
	}

	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return exitOK
	}

	var exitErr *cmdutil.ExitError
	var flagErr *cmdutil.FlagError
	switch {
	case errors.Is(err, cmdutil.SilentError):
		// The command already rendered its own diagnostic.
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.As(err, &flagErr):
		fmt.Fprintf(f.IOStreams.ErrOut, "%s\n\n%s", err, cmd.UsageString())
	default:
		fmt.Fprintf(f.IOStreams.ErrOut, "Error: %v\n", err)
	}

	return exitError
}
