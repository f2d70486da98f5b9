package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes form the scripting contract: a cyclic graph is a finding, not
// a failure, and gets its own code so shell pipelines can branch on it.
const (
	exitOK     = 0
	exitCyclic = 1
	exitError  = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the root command against args and maps the outcome to an
// exit code.
func run(args []string) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)

	return exitCode(cmd.Execute())
}

// exitCode translates a command error into the process exit code. The
// cyclic marker is silent — its report is already on stdout — while every
// other error is printed to stderr.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errCyclicGraph):
		return exitCyclic
	default:
		fmt.Fprintln(os.Stderr, err)

		return exitError
	}
}
