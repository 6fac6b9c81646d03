package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Version information (set via ldflags during build)
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Exit codes.
//
//	0 = selection accepted (result on stdout)
//	1 = cancelled by user
//	2 = error (bad flags, no TTY, unreadable catalog)
const (
	exitSuccess   = 0
	exitCancelled = 1
	exitError     = 2
)

// errCancelled is returned by the prompt command when the user abandons it
var errCancelled = errors.New("cancelled")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns an exit code.
// It is separated from main() to enable testing.
func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args when given nil
		args = []string{}
	}

	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, errCancelled):
		return exitCancelled
	default:
		fmt.Fprintf(stderr, "multiselect: %v\n", err)
		return exitError
	}
}
