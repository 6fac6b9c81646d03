package main

import (
	"errors"
	"fmt"

	"multiselect/internal/ui/services/selection"
)

var errNothingSelected = errors.New("Please select at least one option.") //nolint:staticcheck // shown to the user as is

// buildValidator turns the --required, --min and --max flags into a
// selection validator. It returns nil when no rule is set.
func buildValidator(required bool, min, max int) (selection.Validator, error) {
	if min < 0 {
		return nil, fmt.Errorf("--min must not be negative")
	}
	if max < 0 {
		return nil, fmt.Errorf("--max must not be negative")
	}
	if max > 0 && min > max {
		return nil, fmt.Errorf("--min (%d) is greater than --max (%d)", min, max)
	}
	if !required && min == 0 && max == 0 {
		return nil, nil
	}

	return func(values []string) error {
		n := len(values)
		switch {
		case required && n == 0:
			return errNothingSelected
		case min > 0 && n < min:
			return fmt.Errorf("Select at least %d options.", min) //nolint:staticcheck
		case max > 0 && n > max:
			return fmt.Errorf("Select at most %d options.", max) //nolint:staticcheck
		}
		return nil
	}, nil
}
