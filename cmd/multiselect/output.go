package main

import (
	"encoding/json"
	"fmt"
	"io"
)

const (
	outputLines = "lines"
	outputJSON  = "json"
)

func checkOutput(format string) error {
	switch format {
	case outputLines, outputJSON:
		return nil
	default:
		return fmt.Errorf("--output must be %q or %q (got %q)", outputLines, outputJSON, format)
	}
}

// writeResult prints values one per line, or as a JSON array
func writeResult(w io.Writer, format string, values []string) error {
	switch format {
	case outputJSON:
		if values == nil {
			values = []string{}
		}
		return json.NewEncoder(w).Encode(values)
	default:
		for _, v := range values {
			if _, err := fmt.Fprintln(w, v); err != nil {
				return err
			}
		}
		return nil
	}
}
