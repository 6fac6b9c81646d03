//go:build !windows

package main

import (
	"fmt"
	"os"
)

// checkTERM verifies that the TERM environment variable is not "dumb"
func checkTERM() error {
	if os.Getenv("TERM") == "dumb" {
		return fmt.Errorf("TERM=dumb is not supported")
	}
	return nil
}

// openTTY opens the controlling terminal for the prompt
func openTTY() (*os.File, error) {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("no TTY available: %w", err)
	}
	return tty, nil
}
