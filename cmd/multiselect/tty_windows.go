//go:build windows

package main

import (
	"errors"
	"os"
)

func checkTERM() error {
	return nil
}

func openTTY() (*os.File, error) {
	return nil, errors.New("interactive prompt requires a unix terminal")
}
