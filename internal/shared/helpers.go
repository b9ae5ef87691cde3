// Package shared provides common utility functions used across multiple
// packages in the check-compromised codebase.
package shared

import (
	"fmt"
	"regexp"
	"strings"
)

var pipSeparators = regexp.MustCompile(`[-_.]+`)

// Key builds the name@version string used for compromised-set lookups.
func Key(name string, version string) string {
	return name + "@" + version
}

// NormalizePipName lowercases a Python package name and collapses every
// run of hyphens, underscores and dots into one hyphen (PEP 503).
func NormalizePipName(value string) string {
	lower := strings.ToLower(strings.TrimSpace(value))
	return pipSeparators.ReplaceAllString(lower, "-")
}

// CommandError wraps a command execution error with its trimmed output
// for cleaner error messages.
func CommandError(output []byte, err error) error {
	trimmed := strings.TrimSpace(string(output))
	if trimmed == "" {
		return err
	}
	return fmt.Errorf("%s: %w", trimmed, err)
}
