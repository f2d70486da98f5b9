package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/cyclo/internal/logger"
)

// Build metadata, overridable via -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootFlags carries the persistent flags shared by every subcommand.
type rootFlags struct {
	verbose bool
	noColor bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "cyclo",
		Short: "cyclo tells whether a directed graph contains a cycle",
		Long: "cyclo classifies a directed graph, given as a square 0/1 adjacency\n" +
			"matrix, as empty, acyclic or cyclic — and when cyclic, prints one\n" +
			"witness cycle, e.g. 1 -> 3 -> 1.",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "Disable styled output")

	cmd.AddCommand(newCheckCmd(flags))
	cmd.AddCommand(newDemoCmd(flags))

	return cmd
}

// newRunLogger builds the per-invocation logger: debug level under
// --verbose, pretty console format when stderr is a terminal.
func newRunLogger(flags *rootFlags) (*logger.Logger, error) {
	level := "info"
	if flags.verbose {
		level = "debug"
	}

	return logger.New(logger.Options{
		Level:  level,
		Pretty: term.IsTerminal(int(os.Stderr.Fd())),
	})
}

// styledOutput reports whether stdout should carry lipgloss styling.
func styledOutput(flags *rootFlags) bool {
	return !flags.noColor && term.IsTerminal(int(os.Stdout.Fd()))
}
