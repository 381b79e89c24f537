// Package validate provides shared validation functions for criterio.Run.
package validate

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/hay-kot/criterio"
)

// Required validates s is non-empty after trimming whitespace.
func Required(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("is required")
	}
	return nil
}

// RequiredField returns a criterio validator for a required string field.
func RequiredField(field, s string) error {
	return criterio.Run(field, s, Required)
}

// OneOf returns a validator accepting only the given values.
func OneOf[T comparable](allowed ...T) func(T) error {
	return func(v T) error {
		if !slices.Contains(allowed, v) {
			return fmt.Errorf("invalid value %v, must be one of %v", v, allowed)
		}
		return nil
	}
}

// AtLeast returns a validator rejecting values below n.
func AtLeast(n int) func(int) error {
	return func(v int) error {
		if v < n {
			return fmt.Errorf("must be at least %d", n)
		}
		return nil
	}
}

// PositiveDuration rejects zero and negative durations.
func PositiveDuration(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}
